package constraint

import (
	"fmt"
	"math"
	"slices"

	"github.com/grindlemire/go-orderedview/internal/geometry"
)

// Frames maps item names to their solved rectangles. All rectangles,
// including the parent's, must share one coordinate space.
type Frames map[string]geometry.Rect

// Outside returns the names of frames that are not fully inside the parent's
// frame, sorted. Empty frames never count as outside.
func (f Frames) Outside(parent string) ([]string, error) {
	bounds, ok := f[parent]
	if !ok {
		return nil, fmt.Errorf("no frame for %q", parent)
	}
	var out []string
	for name, r := range f {
		if name != parent && !bounds.ContainsRect(r) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out, nil
}

// Violation describes a constraint a frame assignment does not satisfy.
type Violation struct {
	Constraint Constraint
	LHS        float64
	RHS        float64
}

// Required reports whether the violated constraint was mandatory.
func (v Violation) Required() bool {
	return v.Constraint.Priority.IsRequired()
}

// String renders the violation with both evaluated sides.
func (v Violation) String() string {
	return fmt.Sprintf("%s (got %s vs %s)", v.Constraint, formatFloat(v.LHS), formatFloat(v.RHS))
}

// Evaluate computes both sides of c against frames.
func (c Constraint) Evaluate(frames Frames) (lhs, rhs float64, err error) {
	lhs, err = frames.value(c.First)
	if err != nil {
		return 0, 0, err
	}
	if c.IsConstant() {
		return lhs, c.Constant, nil
	}
	second, err := frames.value(c.Second)
	if err != nil {
		return 0, 0, err
	}
	return lhs, second*c.Multiplier + c.Constant, nil
}

// Satisfied reports whether c holds against frames within tolerance.
func (c Constraint) Satisfied(frames Frames, tolerance float64) (bool, error) {
	lhs, rhs, err := c.Evaluate(frames)
	if err != nil {
		return false, err
	}
	return holds(c.Relation, lhs, rhs, tolerance), nil
}

// Check verifies every constraint in set and returns the violations in order.
// A constraint referencing an item with no frame is an error.
func Check(set []Constraint, frames Frames, tolerance float64) ([]Violation, error) {
	var violations []Violation
	for _, c := range set {
		lhs, rhs, err := c.Evaluate(frames)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate %s: %w", c, err)
		}
		if !holds(c.Relation, lhs, rhs, tolerance) {
			violations = append(violations, Violation{Constraint: c, LHS: lhs, RHS: rhs})
		}
	}
	return violations, nil
}

func holds(rel Relation, lhs, rhs, tolerance float64) bool {
	switch rel {
	case Equal:
		return math.Abs(lhs-rhs) <= tolerance
	case LessOrEqual:
		return lhs <= rhs+tolerance
	case GreaterOrEqual:
		return lhs >= rhs-tolerance
	default:
		return false
	}
}

func (f Frames) value(a Anchor) (float64, error) {
	if a.Item == nil {
		return 0, fmt.Errorf("anchor has no item")
	}
	r, ok := f[a.Item.Name()]
	if !ok {
		return 0, fmt.Errorf("no frame for %q", a.Item.Name())
	}
	return r.Value(a.Attribute), nil
}
