package layout

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-orderedview/internal/constraint"
	"github.com/grindlemire/go-orderedview/internal/geometry"
)

// Direction specifies the main axis along which components are chained.
type Direction uint8

const (
	Row    Direction = iota // Components laid out leading to trailing
	Column                  // Components laid out top to bottom
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Row:
		return "row"
	case Column:
		return "column"
	default:
		return "unknown"
	}
}

// ErrUnknownDirection is returned for a Direction other than Row or Column.
var ErrUnknownDirection = errors.New("unknown layout direction")

// Valid reports whether d is Row or Column.
func (d Direction) Valid() bool {
	return d == Row || d == Column
}

// Orientation returns the constraint generators for the direction. It panics
// if d is not Row or Column.
func (d Direction) Orientation() Orientation {
	switch d {
	case Row:
		return orientation{direction: Row, main: geometry.Horizontal}
	case Column:
		return orientation{direction: Column, main: geometry.Vertical}
	default:
		panic(fmt.Errorf("%w: %d", ErrUnknownDirection, uint8(d)))
	}
}

// ErrPolicyMismatch is returned when a Size policy is used on an axis where
// it has no meaning. It signals a mistake in the declared rules.
var ErrPolicyMismatch = errors.New("size policy not supported on this axis")

// PolicyMismatchError reports which policy was misused, and where.
type PolicyMismatchError struct {
	Direction Direction
	Axis      string // "main" or "cross"
	Policy    Policy
	Element   string
}

func (e *PolicyMismatchError) Error() string {
	return fmt.Sprintf("%s layout can't use %s on the %s axis (element %q)",
		e.Direction, e.Policy, e.Axis, e.Element)
}

func (e *PolicyMismatchError) Unwrap() error {
	return ErrPolicyMismatch
}

// Orientation generates the constraints of one component along a fixed pair
// of axes. Implementations are stateless.
type Orientation interface {
	// MainAxis returns the axis components are chained along.
	MainAxis() geometry.Axis

	// CrossAxis returns the perpendicular axis.
	CrossAxis() geometry.Axis

	// MainSizeConstraints sizes the component along the main axis.
	MainSizeConstraints(c Component, parent Element) ([]constraint.Constraint, error)

	// CrossSizeConstraints sizes and positions the component along the cross axis.
	CrossSizeConstraints(c Component, parent Element) ([]constraint.Constraint, error)

	// ChainConstraints places the component at index right before next, or
	// against the parent's trailing edge when next is nil. The first
	// component is also pinned to the parent's leading edge.
	ChainConstraints(c Component, index int, next *Component, parent Element) []constraint.Constraint

	// ExpansionConstraints keeps adjacent adaptable components in the ratio
	// of their declared sizes.
	ExpansionConstraints(adaptable []Component) []constraint.Constraint
}

// orientation implements Orientation for either direction; the direction
// only decides which geometric axis is main.
type orientation struct {
	direction Direction
	main      geometry.Axis
}

func (o orientation) MainAxis() geometry.Axis  { return o.main }
func (o orientation) CrossAxis() geometry.Axis { return o.main.Other() }

func (o orientation) mismatch(axis string, c Component, p Policy) error {
	return &PolicyMismatchError{
		Direction: o.direction,
		Axis:      axis,
		Policy:    p,
		Element:   c.element.Name(),
	}
}

func (o orientation) MainSizeConstraints(c Component, parent Element) ([]constraint.Constraint, error) {
	el := c.element
	main, cross := o.main, o.main.Other()
	size := c.rules.main
	extent := constraint.Of(el, main.Size())

	var out []constraint.Constraint
	switch size.Policy() {
	case PolicyFixedSize:
		if c.IsAdaptable() {
			el.SetGrowthResistance(main, constraint.PriorityHigh)
			out = append(out, extent.GreaterOrEqualConstant(size.Amount()).WithPriority(constraint.PriorityLow))
		} else {
			out = append(out, extent.EqualConstant(size.Amount()))
		}
	case PolicyFixedOffset, PolicyAnyButSmaller:
		return nil, o.mismatch("main", c, size.Policy())
	case PolicyRelational:
		out = append(out, extent.Equal(constraint.Of(parent, main.Size())).Times(size.Multiplier()))
	case PolicyAspectRatio:
		out = append(out, extent.Equal(constraint.Of(el, cross.Size())).Times(size.Multiplier()))
		if inset, ok := size.Limit(); ok {
			out = append(out, insetBounds(el, parent, main, inset)...)
		}
	case PolicyFreeFalling:
		el.SetGrowthResistance(main, size.Growth().Priority())
		out = append(out, extent.GreaterOrEqualConstant(size.Amount()))
		if maxValue, ok := size.Limit(); ok {
			out = append(out, extent.LessOrEqualConstant(maxValue))
		}
	default:
		return nil, o.mismatch("main", c, size.Policy())
	}
	return tag(out, constraint.KindMainSize), nil
}

func (o orientation) CrossSizeConstraints(c Component, parent Element) ([]constraint.Constraint, error) {
	el := c.element
	main, cross := o.main, o.main.Other()
	size := c.rules.cross
	extent := constraint.Of(el, cross.Size())
	centered := constraint.Of(el, cross.Center()).Equal(constraint.Of(parent, cross.Center()))

	var out []constraint.Constraint
	switch size.Policy() {
	case PolicyFixedSize:
		out = append(out, extent.EqualConstant(size.Amount()), centered)
	case PolicyFixedOffset:
		offset := size.Amount()
		out = append(out,
			constraint.Of(el, cross.Leading()).Equal(constraint.Of(parent, cross.Leading())).Plus(offset),
			constraint.Of(el, cross.Trailing()).Equal(constraint.Of(parent, cross.Trailing())).Plus(-offset),
		)
	case PolicyRelational:
		out = append(out, extent.Equal(constraint.Of(parent, cross.Size())).Times(size.Multiplier()), centered)
	case PolicyAspectRatio:
		out = append(out, extent.Equal(constraint.Of(el, main.Size())).Times(size.Multiplier()), centered)
		if inset, ok := size.Limit(); ok {
			out = append(out, insetBounds(el, parent, cross, inset)...)
		}
	case PolicyAnyButSmaller:
		out = append(out,
			constraint.Of(el, cross.Leading()).Equal(constraint.Of(parent, cross.Leading())),
			constraint.Of(el, cross.Trailing()).LessOrEqual(constraint.Of(parent, cross.Trailing())),
		)
	case PolicyFreeFalling:
		return nil, o.mismatch("cross", c, size.Policy())
	default:
		return nil, o.mismatch("cross", c, size.Policy())
	}
	return tag(out, constraint.KindCrossSize), nil
}

func (o orientation) ChainConstraints(c Component, index int, next *Component, parent Element) []constraint.Constraint {
	el := c.element
	var out []constraint.Constraint
	if index == 0 {
		out = append(out, constraint.Of(el, o.main.Leading()).Equal(constraint.Of(parent, o.main.Leading())))
	}

	trailing := constraint.Of(parent, o.main.Trailing())
	if next != nil {
		trailing = constraint.Of(next.element, o.main.Leading())
	}
	out = append(out, constraint.Of(el, o.main.Trailing()).Equal(trailing))
	return tag(out, constraint.KindChain)
}

func (o orientation) ExpansionConstraints(adaptable []Component) []constraint.Constraint {
	if len(adaptable) < 2 {
		return nil
	}

	out := make([]constraint.Constraint, 0, len(adaptable)-1)
	for i := 0; i < len(adaptable)-1; i++ {
		first, second := adaptable[i], adaptable[i+1]
		if !first.rules.main.IsFixedSize() || !second.rules.main.IsFixedSize() {
			continue
		}
		ratio := first.rules.main.Amount() / second.rules.main.Amount()
		out = append(out, constraint.Of(first.element, o.main.Size()).
			Equal(constraint.Of(second.element, o.main.Size())).
			Times(ratio))
	}
	return tag(out, constraint.KindExpansion)
}

// insetBounds keeps both edges of el on axis at least inset inside parent.
func insetBounds(el, parent Element, axis geometry.Axis, inset float64) []constraint.Constraint {
	return []constraint.Constraint{
		constraint.Of(el, axis.Leading()).GreaterOrEqual(constraint.Of(parent, axis.Leading())).Plus(inset),
		constraint.Of(el, axis.Trailing()).LessOrEqual(constraint.Of(parent, axis.Trailing())).Plus(-inset),
	}
}

func tag(set []constraint.Constraint, kind constraint.Kind) []constraint.Constraint {
	for i := range set {
		set[i] = set[i].As(kind)
	}
	return set
}
