package constraint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-orderedview/internal/geometry"
)

// Item is anything a constraint can reference. Names must be unique among the
// items of one layout; they key solved frames during verification.
type Item interface {
	Name() string
}

// Relation is the comparison between the two sides of a constraint.
type Relation uint8

const (
	Equal Relation = iota
	LessOrEqual
	GreaterOrEqual
)

// String returns the relation operator.
func (r Relation) String() string {
	switch r {
	case Equal:
		return "=="
	case LessOrEqual:
		return "<="
	case GreaterOrEqual:
		return ">="
	default:
		return "?"
	}
}

// Kind records which derivation step produced a constraint.
type Kind uint8

const (
	KindMainSize Kind = iota
	KindCrossSize
	KindChain
	KindExpansion
)

var kindNames = [...]string{
	KindMainSize:  "main-size",
	KindCrossSize: "cross-size",
	KindChain:     "chain",
	KindExpansion: "expansion",
}

// Kinds lists every kind in derivation order.
func Kinds() []Kind {
	return []Kind{KindMainSize, KindCrossSize, KindChain, KindExpansion}
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Anchor is a symbolic reference to one attribute of an item.
type Anchor struct {
	Item      Item
	Attribute geometry.Attribute
}

// Of returns the anchor for attr on item.
func Of(item Item, attr geometry.Attribute) Anchor {
	return Anchor{Item: item, Attribute: attr}
}

// IsZero reports whether the anchor references no item.
func (a Anchor) IsZero() bool {
	return a.Item == nil
}

// String renders the anchor as item.attribute.
func (a Anchor) String() string {
	if a.Item == nil {
		return "<none>"
	}
	return a.Item.Name() + "." + a.Attribute.String()
}

// Constraint is a single linear relation:
//
//	First Relation Second*Multiplier + Constant
//
// A zero Second makes it a constant constraint: First Relation Constant.
type Constraint struct {
	Kind       Kind
	First      Anchor
	Relation   Relation
	Second     Anchor
	Multiplier float64
	Constant   float64
	Priority   Priority
}

// IsConstant reports whether the constraint compares against a constant only.
func (c Constraint) IsConstant() bool {
	return c.Second.IsZero()
}

// Times returns a copy with the multiplier set.
func (c Constraint) Times(m float64) Constraint {
	c.Multiplier = m
	return c
}

// Plus returns a copy with the constant set.
func (c Constraint) Plus(constant float64) Constraint {
	c.Constant = constant
	return c
}

// WithPriority returns a copy with the priority set.
func (c Constraint) WithPriority(p Priority) Constraint {
	c.Priority = p
	return c
}

// As returns a copy tagged with kind.
func (c Constraint) As(kind Kind) Constraint {
	c.Kind = kind
	return c
}

// String renders the constraint, e.g. "a.width == b.width * 0.5 + 4 @250".
func (c Constraint) String() string {
	var b strings.Builder
	b.WriteString(c.First.String())
	b.WriteByte(' ')
	b.WriteString(c.Relation.String())
	b.WriteByte(' ')

	if c.IsConstant() {
		b.WriteString(formatFloat(c.Constant))
	} else {
		b.WriteString(c.Second.String())
		if c.Multiplier != 1 {
			b.WriteString(" * ")
			b.WriteString(formatFloat(c.Multiplier))
		}
		switch {
		case c.Constant > 0:
			b.WriteString(" + ")
			b.WriteString(formatFloat(c.Constant))
		case c.Constant < 0:
			b.WriteString(" - ")
			b.WriteString(formatFloat(-c.Constant))
		}
	}

	if !c.Priority.IsRequired() {
		fmt.Fprintf(&b, " @%s", c.Priority)
	}
	return b.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Equal returns "a == b" with multiplier 1 at required priority.
func (a Anchor) Equal(b Anchor) Constraint {
	return relate(a, Equal, b)
}

// LessOrEqual returns "a <= b".
func (a Anchor) LessOrEqual(b Anchor) Constraint {
	return relate(a, LessOrEqual, b)
}

// GreaterOrEqual returns "a >= b".
func (a Anchor) GreaterOrEqual(b Anchor) Constraint {
	return relate(a, GreaterOrEqual, b)
}

// EqualConstant returns "a == v".
func (a Anchor) EqualConstant(v float64) Constraint {
	return relate(a, Equal, Anchor{}).Plus(v)
}

// LessOrEqualConstant returns "a <= v".
func (a Anchor) LessOrEqualConstant(v float64) Constraint {
	return relate(a, LessOrEqual, Anchor{}).Plus(v)
}

// GreaterOrEqualConstant returns "a >= v".
func (a Anchor) GreaterOrEqualConstant(v float64) Constraint {
	return relate(a, GreaterOrEqual, Anchor{}).Plus(v)
}

func relate(first Anchor, rel Relation, second Anchor) Constraint {
	return Constraint{
		First:      first,
		Relation:   rel,
		Second:     second,
		Multiplier: 1,
		Priority:   PriorityRequired,
	}
}

// Filter returns the constraints of the given kind, in order.
func Filter(set []Constraint, kind Kind) []Constraint {
	var out []Constraint
	for _, c := range set {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// CountByKind tallies a set per kind.
func CountByKind(set []Constraint) map[Kind]int {
	counts := make(map[Kind]int, len(kindNames))
	for _, c := range set {
		counts[c.Kind]++
	}
	return counts
}
