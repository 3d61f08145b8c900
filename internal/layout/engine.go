package layout

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/grindlemire/go-orderedview/internal/constraint"
)

// ErrAlreadyAttached is returned when an engine is attached a second time.
// A changed component sequence needs a new Engine.
var ErrAlreadyAttached = errors.New("layout engine already attached")

// Engine lays out an ordered sequence of components along one direction.
// It derives its constraints exactly once, when attached to a parent.
type Engine struct {
	direction   Direction
	components  []Component
	constraints []constraint.Constraint
	attached    bool
	log         zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used to trace derivation at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New creates an engine for components in display order. The slice is
// copied; later changes to it have no effect.
func New(direction Direction, components []Component, opts ...Option) *Engine {
	e := &Engine{
		direction:  direction,
		components: append([]Component(nil), components...),
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Direction returns the direction the engine chains components along.
func (e *Engine) Direction() Direction {
	return e.direction
}

// Len returns the number of components.
func (e *Engine) Len() int {
	return len(e.components)
}

// Components returns a copy of the component sequence.
func (e *Engine) Components() []Component {
	return append([]Component(nil), e.components...)
}

// Constraints returns a copy of the constraints activated by Attach.
// It is empty before a successful Attach.
func (e *Engine) Constraints() []constraint.Constraint {
	return append([]constraint.Constraint(nil), e.constraints...)
}

// Attach adds every component's element to parent, derives the full
// constraint set, and activates it on solver in one batch.
//
// A policy used on an axis where it has no meaning fails the whole attach
// with an error wrapping ErrPolicyMismatch; nothing is activated then. An
// unknown direction fails with ErrUnknownDirection before parent is touched.
func (e *Engine) Attach(parent Container, solver constraint.Solver) error {
	if e.attached {
		return ErrAlreadyAttached
	}
	if !e.direction.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownDirection, uint8(e.direction))
	}

	set, err := e.derive(parent)
	if err != nil {
		return err
	}

	if err := solver.Activate(set); err != nil {
		return fmt.Errorf("failed to activate %d constraints: %w", len(set), err)
	}

	e.constraints = set
	e.attached = true
	e.log.Debug().
		Str("parent", parent.Name()).
		Stringer("direction", e.direction).
		Int("components", len(e.components)).
		Int("constraints", len(set)).
		Msg("layout attached")
	return nil
}

// MustAttach is like Attach but panics on error. Use it where the rules are
// static and a mismatch is a programming mistake.
func (e *Engine) MustAttach(parent Container, solver constraint.Solver) {
	if err := e.Attach(parent, solver); err != nil {
		panic(err)
	}
}

// derive runs the per-component pass and then the expansion pass.
func (e *Engine) derive(parent Container) ([]constraint.Constraint, error) {
	o := e.direction.Orientation()

	var set []constraint.Constraint
	for i, c := range e.components {
		el := c.element
		parent.AddChild(el)
		el.DisableAutoSizing()

		mainSet, err := o.MainSizeConstraints(c, parent)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		crossSet, err := o.CrossSizeConstraints(c, parent)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		chainSet := o.ChainConstraints(c, i, at(e.components, i+1), parent)

		e.log.Debug().
			Int("index", i).
			Str("element", el.Name()).
			Stringer("main", c.rules.main.Policy()).
			Stringer("cross", c.rules.cross.Policy()).
			Bool("adaptable", c.IsAdaptable()).
			Msg("component derived")

		set = append(set, mainSet...)
		set = append(set, crossSet...)
		set = append(set, chainSet...)
	}

	set = append(set, o.ExpansionConstraints(adaptableSubset(e.components))...)
	return set, nil
}
