// layout.go re-exports the engine types from internal/layout and
// internal/constraint. Any changes to those types must be mirrored here.
package orderedview

import (
	"github.com/rs/zerolog"

	"github.com/grindlemire/go-orderedview/internal/constraint"
	"github.com/grindlemire/go-orderedview/internal/geometry"
	"github.com/grindlemire/go-orderedview/internal/layout"
)

// Direction selects the main axis of an ordered layout.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Axis is a layout axis.
type Axis = geometry.Axis

const (
	Horizontal = geometry.Horizontal
	Vertical   = geometry.Vertical
)

// Policy identifies how a size is interpreted.
type Policy = layout.Policy

const (
	PolicyFixedSize     = layout.PolicyFixedSize
	PolicyFixedOffset   = layout.PolicyFixedOffset
	PolicyRelational    = layout.PolicyRelational
	PolicyAspectRatio   = layout.PolicyAspectRatio
	PolicyAnyButSmaller = layout.PolicyAnyButSmaller
	PolicyFreeFalling   = layout.PolicyFreeFalling
)

// Growth controls how readily a free-falling element grows past its minimum.
type Growth = layout.Growth

const (
	GrowVeryMuch    = layout.GrowVeryMuch
	GrowNotThatMuch = layout.GrowNotThatMuch
	GrowNope        = layout.GrowNope
)

// Size is one axis of a component's sizing rules.
type Size = layout.Size

// Rules pairs the main-axis and cross-axis sizes of a component.
type Rules = layout.Rules

// Component is one entry in an ordered layout.
type Component = layout.Component

// ComponentOption configures a spacer.
type ComponentOption = layout.ComponentOption

// Element is anything the engine can place.
type Element = layout.Element

// Container is an element that can hold children.
type Container = layout.Container

// Node is a plain Container implementation.
type Node = layout.Node

// Engine derives and activates the constraints of one ordered layout.
type Engine = layout.Engine

// Option configures an Engine.
type Option = layout.Option

// PolicyMismatchError reports a size policy used on an axis that can't express it.
type PolicyMismatchError = layout.PolicyMismatchError

var (
	ErrPolicyMismatch   = layout.ErrPolicyMismatch
	ErrAlreadyAttached  = layout.ErrAlreadyAttached
	ErrUnknownDirection = layout.ErrUnknownDirection
)

// Constraint is one linear relation handed to the solver.
type Constraint = constraint.Constraint

// Priority is a constraint strength.
type Priority = constraint.Priority

const (
	PriorityLow      = constraint.PriorityLow
	PriorityHigh     = constraint.PriorityHigh
	PriorityRequired = constraint.PriorityRequired
)

// Solver receives constraint batches.
type Solver = constraint.Solver

// SolverFunc adapts a function to Solver.
type SolverFunc = constraint.SolverFunc

// Recorder is a Solver that keeps everything it is given.
type Recorder = constraint.Recorder

// Frames maps element names to solved rectangles.
type Frames = constraint.Frames

// Violation is a constraint that solved frames fail to satisfy.
type Violation = constraint.Violation

// Rect is a solved rectangle.
type Rect = geometry.Rect

// New creates an engine for the components in display order.
func New(direction Direction, components []Component, opts ...Option) *Engine {
	return layout.New(direction, components, opts...)
}

// NewNode creates a named container node.
func NewNode(name string) *Node {
	return layout.NewNode(name)
}

// NewRecorder creates an empty recording solver.
func NewRecorder() *Recorder {
	return constraint.NewRecorder()
}

// View wraps an element with its sizing rules.
func View(el Element, main, cross Size) Component {
	return layout.View(el, layout.NewRules(main, cross))
}

// Spacer creates an invisible component with a main-axis size.
func Spacer(size Size, opts ...ComponentOption) Component {
	return layout.Spacer(size, opts...)
}

// Adaptable marks a spacer as absorbing leftover main-axis space.
func Adaptable() ComponentOption {
	return layout.Adaptable()
}

// Named gives a spacer a stable name instead of a generated one.
func Named(name string) ComponentOption {
	return layout.Named(name)
}

// WithLogger sets the logger used to trace derivation.
func WithLogger(log zerolog.Logger) Option {
	return layout.WithLogger(log)
}

// FixedSize is an exact size in points.
func FixedSize(v float64) Size { return layout.FixedSize(v) }

// FixedOffset insets the element from both cross-axis edges of the parent.
func FixedOffset(o float64) Size { return layout.FixedOffset(o) }

// Relational sizes the element as a percentage of the parent.
func Relational(percent float64) Size { return layout.Relational(percent) }

// AspectRatio sizes the element relative to its own other axis.
func AspectRatio(m float64) Size { return layout.AspectRatio(m) }

// AspectRatioInset is AspectRatio kept at least inset from the parent's edges.
func AspectRatioInset(m, inset float64) Size { return layout.AspectRatioInset(m, inset) }

// AnyButSmaller pins the leading edge and lets the element fit inside the parent.
func AnyButSmaller() Size { return layout.AnyButSmaller() }

// FreeFalling lets the element grow from a minimum.
func FreeFalling(growth Growth, minValue float64) Size { return layout.FreeFalling(growth, minValue) }

// FreeFallingBounded is FreeFalling with an upper bound.
func FreeFallingBounded(growth Growth, minValue, maxValue float64) Size {
	return layout.FreeFallingBounded(growth, minValue, maxValue)
}

// Check verifies solved frames against a constraint set.
func Check(set []Constraint, frames Frames, tolerance float64) ([]Violation, error) {
	return constraint.Check(set, frames, tolerance)
}
