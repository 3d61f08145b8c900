package layout

import (
	"github.com/google/uuid"
)

// Component is one entry of an ordered layout: an element with its rules.
// Components are created by View or Spacer and never change afterwards.
type Component struct {
	element   Element
	rules     Rules
	adaptable bool
}

// ComponentOption configures a spacer.
type ComponentOption func(*spacerConfig)

type spacerConfig struct {
	name      string
	adaptable bool
}

// Adaptable marks a spacer as a candidate for proportional redistribution of
// free space. It only has an effect on FixedSize spacers: free space is shared
// among adaptable spacers in the ratio of their sizes (10, 20, 20 can become
// 35, 70, 70).
func Adaptable() ComponentOption {
	return func(c *spacerConfig) { c.adaptable = true }
}

// Named gives the spacer's element a fixed name instead of a generated one.
func Named(name string) ComponentOption {
	return func(c *spacerConfig) { c.name = name }
}

// View creates a component for an existing element.
func View(el Element, rules Rules) Component {
	return Component{element: el, rules: rules}
}

// Spacer creates a component with an empty element that occupies main-axis
// space. It spans the parent's full cross axis.
func Spacer(size Size, opts ...ComponentOption) Component {
	cfg := spacerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.name == "" {
		cfg.name = "spacer-" + uuid.NewString()
	}
	return Component{
		element:   NewNode(cfg.name),
		rules:     NewRules(size, Relational(100)),
		adaptable: cfg.adaptable,
	}
}

// Element returns the component's element.
func (c Component) Element() Element {
	return c.element
}

// Rules returns the component's sizing rules.
func (c Component) Rules() Rules {
	return c.rules
}

// IsAdaptable reports whether the component takes part in proportional
// expansion: its main-axis policy is FixedSize and it opted in.
func (c Component) IsAdaptable() bool {
	return c.rules.main.IsFixedSize() && c.adaptable
}

// adaptableSubset filters components down to the adaptable ones, keeping order.
func adaptableSubset(components []Component) []Component {
	var out []Component
	for _, c := range components {
		if c.IsAdaptable() {
			out = append(out, c)
		}
	}
	return out
}

// at returns the component at index i, or nil when i is out of range.
func at(components []Component, i int) *Component {
	if i < 0 || i >= len(components) {
		return nil
	}
	return &components[i]
}
