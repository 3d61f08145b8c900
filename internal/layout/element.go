package layout

import (
	"github.com/grindlemire/go-orderedview/internal/constraint"
	"github.com/grindlemire/go-orderedview/internal/geometry"
)

// Element is the interface for anything an ordered layout can place.
// The engine works entirely with this interface, so any visual system can
// supply its own implementation.
type Element interface {
	// Name identifies the element in emitted constraints.
	// It must be unique within one layout.
	Name() string

	// DisableAutoSizing turns off any sizing the element would apply on its
	// own that could conflict with the emitted constraints.
	DisableAutoSizing()

	// SetGrowthResistance sets how strongly the element resists growing
	// past its minimum along axis.
	SetGrowthResistance(axis geometry.Axis, p constraint.Priority)
}

// Container is an Element that can hold children. Its anchors are the frame
// of reference for relational and offset policies.
type Container interface {
	Element

	// AddChild registers el as a child of the container.
	AddChild(el Element)
}

// Node is an in-process Element and Container. It records what the engine
// does to it, which makes it suitable for headless derivation.
type Node struct {
	name       string
	autoSizing bool
	resistance [2]constraint.Priority
	children   []Element
}

// NewNode creates a node with auto-sizing enabled and the default (low)
// growth resistance on both axes.
func NewNode(name string) *Node {
	return &Node{
		name:       name,
		autoSizing: true,
		resistance: [2]constraint.Priority{constraint.PriorityLow, constraint.PriorityLow},
	}
}

// Name returns the node name.
func (n *Node) Name() string { return n.name }

// DisableAutoSizing turns off auto-sizing.
func (n *Node) DisableAutoSizing() { n.autoSizing = false }

// AutoSizing reports whether auto-sizing is still enabled.
func (n *Node) AutoSizing() bool { return n.autoSizing }

// SetGrowthResistance records the resistance for axis.
func (n *Node) SetGrowthResistance(axis geometry.Axis, p constraint.Priority) {
	n.resistance[axis] = p
}

// GrowthResistance returns the resistance recorded for axis.
func (n *Node) GrowthResistance(axis geometry.Axis) constraint.Priority {
	return n.resistance[axis]
}

// AddChild appends el to the node's children.
func (n *Node) AddChild(el Element) {
	n.children = append(n.children, el)
}

// Children returns the registered children in insertion order.
func (n *Node) Children() []Element {
	return append([]Element(nil), n.children...)
}
