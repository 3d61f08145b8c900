// Package document loads ordered layouts and solved frames from YAML files.
//
// A layout document names its parent, picks a direction, and lists the
// components in display order:
//
//	name: toolbar
//	direction: row
//	components:
//	  - spacer: 8
//	    adaptable: true
//	  - view: icon
//	    main: {aspect: {multiplier: 1}}
//	    cross: {offset: 4}
//	  - view: title
//	    main: {free: {growth: very-much, min: 40, max: 240}}
//	    cross: {percent: 100}
//	  - spacer: 8
//	    adaptable: true
package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-orderedview/internal/layout"
)

// DefaultParentName is used when a document does not name its parent.
const DefaultParentName = "parent"

// Document is the YAML form of an ordered layout.
type Document struct {
	Name       string          `yaml:"name,omitempty"`
	Direction  string          `yaml:"direction"`
	Components []ComponentSpec `yaml:"components"`
}

// ComponentSpec describes one component. Exactly one of View and Spacer is set.
type ComponentSpec struct {
	View      string    `yaml:"view,omitempty"`
	Main      *SizeSpec `yaml:"main,omitempty"`
	Cross     *SizeSpec `yaml:"cross,omitempty"`
	Spacer    *SizeSpec `yaml:"spacer,omitempty"`
	Name      string    `yaml:"name,omitempty"`
	Adaptable bool      `yaml:"adaptable,omitempty"`
}

// SizeSpec describes a size policy. Exactly one field is set. A bare number
// is shorthand for {fixed: n}.
type SizeSpec struct {
	Fixed         *float64    `yaml:"fixed,omitempty"`
	Offset        *float64    `yaml:"offset,omitempty"`
	Percent       *float64    `yaml:"percent,omitempty"`
	Aspect        *AspectSpec `yaml:"aspect,omitempty"`
	AnyButSmaller bool        `yaml:"any-but-smaller,omitempty"`
	Free          *FreeSpec   `yaml:"free,omitempty"`
}

// AspectSpec is the YAML form of an aspect-ratio policy.
type AspectSpec struct {
	Multiplier float64  `yaml:"multiplier"`
	Inset      *float64 `yaml:"inset,omitempty"`
}

// FreeSpec is the YAML form of a free-falling policy.
type FreeSpec struct {
	Growth string   `yaml:"growth"`
	Min    float64  `yaml:"min"`
	Max    *float64 `yaml:"max,omitempty"`
}

// UnmarshalYAML accepts either a mapping or a bare number.
func (s *SizeSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var v float64
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("line %d: size must be a number or a mapping: %w", value.Line, err)
		}
		*s = SizeSpec{Fixed: &v}
		return nil
	}

	if err := knownKeys(value, "size", "fixed", "offset", "percent", "aspect", "any-but-smaller", "free"); err != nil {
		return err
	}
	type plain SizeSpec
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*s = SizeSpec(p)
	return nil
}

func (a *AspectSpec) UnmarshalYAML(value *yaml.Node) error {
	if err := knownKeys(value, "aspect", "multiplier", "inset"); err != nil {
		return err
	}
	type plain AspectSpec
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*a = AspectSpec(p)
	return nil
}

func (f *FreeSpec) UnmarshalYAML(value *yaml.Node) error {
	if err := knownKeys(value, "free", "growth", "min", "max"); err != nil {
		return err
	}
	type plain FreeSpec
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*f = FreeSpec(p)
	return nil
}

// knownKeys rejects mapping keys outside known. yaml.Node.Decode does not
// carry the decoder's KnownFields setting into custom unmarshalers.
func knownKeys(node *yaml.Node, what string, known ...string) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(known, key.Value) {
			return fmt.Errorf("line %d: unknown field %q in %s", key.Line, key.Value, what)
		}
	}
	return nil
}

// Load reads and parses a layout document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout document: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a layout document. Unknown fields are rejected.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse layout document: %w", err)
	}
	return &doc, nil
}

// Layout is a document resolved into engine inputs.
type Layout struct {
	Parent     *layout.Node
	Direction  layout.Direction
	Components []layout.Component
}

// Engine creates a layout engine for the resolved components.
func (l *Layout) Engine(opts ...layout.Option) *layout.Engine {
	return layout.New(l.Direction, l.Components, opts...)
}

// Build validates the document and resolves it into a Layout. Policy/axis
// mismatches are not checked here; they surface when the engine attaches.
func (d *Document) Build() (*Layout, error) {
	direction, err := ParseDirection(d.Direction)
	if err != nil {
		return nil, err
	}
	if len(d.Components) == 0 {
		return nil, errors.New("layout has no components")
	}

	parentName := d.Name
	if parentName == "" {
		parentName = DefaultParentName
	}
	seen := map[string]bool{parentName: true}

	out := &Layout{Parent: layout.NewNode(parentName), Direction: direction}
	for i, spec := range d.Components {
		c, err := spec.build(i)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		name := c.Element().Name()
		if seen[name] {
			return nil, fmt.Errorf("component %d: duplicate element name %q", i, name)
		}
		seen[name] = true
		out.Components = append(out.Components, c)
	}
	return out, nil
}

func (c ComponentSpec) build(index int) (layout.Component, error) {
	switch {
	case c.View != "" && c.Spacer != nil:
		return layout.Component{}, errors.New("view and spacer are mutually exclusive")
	case c.Spacer != nil:
		if c.Main != nil || c.Cross != nil {
			return layout.Component{}, errors.New("spacer takes its size from the spacer field, not main/cross")
		}
		size, err := c.Spacer.Size()
		if err != nil {
			return layout.Component{}, fmt.Errorf("spacer: %w", err)
		}
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("spacer-%d", index)
		}
		opts := []layout.ComponentOption{layout.Named(name)}
		if c.Adaptable {
			opts = append(opts, layout.Adaptable())
		}
		return layout.Spacer(size, opts...), nil
	case c.View != "":
		if c.Adaptable {
			return layout.Component{}, errors.New("only spacers can be adaptable")
		}
		if c.Main == nil || c.Cross == nil {
			return layout.Component{}, fmt.Errorf("view %q needs both main and cross sizes", c.View)
		}
		main, err := c.Main.Size()
		if err != nil {
			return layout.Component{}, fmt.Errorf("view %q main: %w", c.View, err)
		}
		cross, err := c.Cross.Size()
		if err != nil {
			return layout.Component{}, fmt.Errorf("view %q cross: %w", c.View, err)
		}
		return layout.View(layout.NewNode(c.View), layout.NewRules(main, cross)), nil
	default:
		return layout.Component{}, errors.New("component needs either view or spacer")
	}
}

// Size converts the spec into a layout.Size.
func (s *SizeSpec) Size() (layout.Size, error) {
	var sizes []layout.Size
	if s.Fixed != nil {
		sizes = append(sizes, layout.FixedSize(*s.Fixed))
	}
	if s.Offset != nil {
		sizes = append(sizes, layout.FixedOffset(*s.Offset))
	}
	if s.Percent != nil {
		sizes = append(sizes, layout.Relational(*s.Percent))
	}
	if s.Aspect != nil {
		if s.Aspect.Inset != nil {
			sizes = append(sizes, layout.AspectRatioInset(s.Aspect.Multiplier, *s.Aspect.Inset))
		} else {
			sizes = append(sizes, layout.AspectRatio(s.Aspect.Multiplier))
		}
	}
	if s.AnyButSmaller {
		sizes = append(sizes, layout.AnyButSmaller())
	}
	if s.Free != nil {
		growth, err := ParseGrowth(s.Free.Growth)
		if err != nil {
			return layout.Size{}, err
		}
		if s.Free.Max != nil {
			sizes = append(sizes, layout.FreeFallingBounded(growth, s.Free.Min, *s.Free.Max))
		} else {
			sizes = append(sizes, layout.FreeFalling(growth, s.Free.Min))
		}
	}

	switch len(sizes) {
	case 0:
		return layout.Size{}, errors.New("size sets no policy")
	case 1:
		return sizes[0], nil
	default:
		return layout.Size{}, fmt.Errorf("size sets %d policies, want exactly one", len(sizes))
	}
}

// ParseDirection parses "row" or "column" (case-insensitive). Horizontal and
// vertical are accepted as aliases.
func ParseDirection(s string) (layout.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row", "horizontal":
		return layout.Row, nil
	case "column", "vertical":
		return layout.Column, nil
	default:
		return 0, fmt.Errorf("unknown direction %q (want row or column)", s)
	}
}

// ParseGrowth parses a growth preference. An empty string means very-much.
func ParseGrowth(s string) (layout.Growth, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "very-much":
		return layout.GrowVeryMuch, nil
	case "not-that-much":
		return layout.GrowNotThatMuch, nil
	case "nope":
		return layout.GrowNope, nil
	default:
		return 0, fmt.Errorf("unknown growth %q (want very-much, not-that-much, or nope)", s)
	}
}
