package layout

import (
	"errors"
	"slices"
	"testing"

	"github.com/grindlemire/go-orderedview/internal/constraint"
	"github.com/grindlemire/go-orderedview/internal/geometry"
)

func render(set []constraint.Constraint) []string {
	out := make([]string, len(set))
	for i, c := range set {
		out[i] = c.String()
	}
	return out
}

func TestDirection_Orientation(t *testing.T) {
	type tc struct {
		direction Direction
		main      geometry.Axis
		cross     geometry.Axis
	}

	tests := map[string]tc{
		"row":    {direction: Row, main: geometry.Horizontal, cross: geometry.Vertical},
		"column": {direction: Column, main: geometry.Vertical, cross: geometry.Horizontal},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			o := tt.direction.Orientation()
			if o.MainAxis() != tt.main {
				t.Errorf("MainAxis() = %v, want %v", o.MainAxis(), tt.main)
			}
			if o.CrossAxis() != tt.cross {
				t.Errorf("CrossAxis() = %v, want %v", o.CrossAxis(), tt.cross)
			}
		})
	}
}

func TestDirection_OrientationUnknownPanics(t *testing.T) {
	d := Direction(7)
	if d.Valid() {
		t.Fatalf("Direction(7).Valid() = true, want false")
	}
	if d.String() != "unknown" {
		t.Errorf("String() = %q, want unknown", d.String())
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnknownDirection) {
			t.Errorf("recover() = %v, want ErrUnknownDirection", r)
		}
	}()
	d.Orientation()
	t.Error("Orientation() did not panic")
}

func TestOrientation_MainSizeConstraints(t *testing.T) {
	type tc struct {
		size   Size
		row    []string
		column []string
	}

	tests := map[string]tc{
		"fixed size": {
			size:   FixedSize(50),
			row:    []string{"a.width == 50"},
			column: []string{"a.height == 50"},
		},
		"relational": {
			size:   Relational(30),
			row:    []string{"a.width == p.width * 0.3"},
			column: []string{"a.height == p.height * 0.3"},
		},
		"aspect ratio": {
			size:   AspectRatio(2),
			row:    []string{"a.width == a.height * 2"},
			column: []string{"a.height == a.width * 2"},
		},
		"aspect ratio with inset": {
			size: AspectRatioInset(2, 4),
			row: []string{
				"a.width == a.height * 2",
				"a.leading >= p.leading + 4",
				"a.trailing <= p.trailing - 4",
			},
			column: []string{
				"a.height == a.width * 2",
				"a.top >= p.top + 4",
				"a.bottom <= p.bottom - 4",
			},
		},
		"free falling": {
			size:   FreeFalling(GrowVeryMuch, 10),
			row:    []string{"a.width >= 10"},
			column: []string{"a.height >= 10"},
		},
		"free falling bounded": {
			size:   FreeFallingBounded(GrowNotThatMuch, 10, 90),
			row:    []string{"a.width >= 10", "a.width <= 90"},
			column: []string{"a.height >= 10", "a.height <= 90"},
		},
	}

	for name, tt := range tests {
		for _, d := range []Direction{Row, Column} {
			t.Run(name+"/"+d.String(), func(t *testing.T) {
				el, parent := NewNode("a"), NewNode("p")
				c := View(el, NewRules(tt.size, Relational(100)))

				set, err := d.Orientation().MainSizeConstraints(c, parent)
				if err != nil {
					t.Fatalf("MainSizeConstraints() error = %v", err)
				}

				want := tt.row
				if d == Column {
					want = tt.column
				}
				if got := render(set); !slices.Equal(got, want) {
					t.Errorf("MainSizeConstraints() = %q, want %q", got, want)
				}
				for _, c := range set {
					if c.Kind != constraint.KindMainSize {
						t.Errorf("Kind = %v, want %v", c.Kind, constraint.KindMainSize)
					}
				}
			})
		}
	}
}

func TestOrientation_MainSize_AdaptableFixedSize(t *testing.T) {
	for _, d := range []Direction{Row, Column} {
		t.Run(d.String(), func(t *testing.T) {
			c := Spacer(FixedSize(50), Named("a"), Adaptable())
			parent := NewNode("p")
			o := d.Orientation()

			set, err := o.MainSizeConstraints(c, parent)
			if err != nil {
				t.Fatalf("MainSizeConstraints() error = %v", err)
			}
			if len(set) != 1 {
				t.Fatalf("len(set) = %d, want 1", len(set))
			}

			got := set[0]
			if got.Relation != constraint.GreaterOrEqual {
				t.Errorf("Relation = %v, want >=", got.Relation)
			}
			if got.Constant != 50 {
				t.Errorf("Constant = %v, want 50", got.Constant)
			}
			if got.Priority != constraint.PriorityLow {
				t.Errorf("Priority = %v, want %v", got.Priority, constraint.PriorityLow)
			}

			node := c.Element().(*Node)
			if p := node.GrowthResistance(o.MainAxis()); p != constraint.PriorityHigh {
				t.Errorf("main GrowthResistance = %v, want %v", p, constraint.PriorityHigh)
			}
			if p := node.GrowthResistance(o.CrossAxis()); p != constraint.PriorityLow {
				t.Errorf("cross GrowthResistance = %v, want %v", p, constraint.PriorityLow)
			}
		})
	}
}

func TestOrientation_MainSize_FreeFallingResistance(t *testing.T) {
	type tc struct {
		growth Growth
		want   constraint.Priority
	}

	tests := map[string]tc{
		"very much":     {growth: GrowVeryMuch, want: constraint.PriorityLow},
		"not that much": {growth: GrowNotThatMuch, want: constraint.PriorityHigh},
		"nope":          {growth: GrowNope, want: constraint.PriorityRequired},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			el := NewNode("a")
			c := View(el, NewRules(FreeFalling(tt.growth, 0), Relational(100)))

			if _, err := Column.Orientation().MainSizeConstraints(c, NewNode("p")); err != nil {
				t.Fatalf("MainSizeConstraints() error = %v", err)
			}
			if got := el.GrowthResistance(geometry.Vertical); got != tt.want {
				t.Errorf("GrowthResistance(vertical) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrientation_CrossSizeConstraints(t *testing.T) {
	type tc struct {
		size   Size
		row    []string
		column []string
	}

	tests := map[string]tc{
		"fixed size": {
			size:   FixedSize(20),
			row:    []string{"a.height == 20", "a.centerY == p.centerY"},
			column: []string{"a.width == 20", "a.centerX == p.centerX"},
		},
		"fixed offset": {
			size:   FixedOffset(8),
			row:    []string{"a.top == p.top + 8", "a.bottom == p.bottom - 8"},
			column: []string{"a.leading == p.leading + 8", "a.trailing == p.trailing - 8"},
		},
		"relational": {
			size:   Relational(50),
			row:    []string{"a.height == p.height * 0.5", "a.centerY == p.centerY"},
			column: []string{"a.width == p.width * 0.5", "a.centerX == p.centerX"},
		},
		"aspect ratio": {
			size:   AspectRatio(0.5),
			row:    []string{"a.height == a.width * 0.5", "a.centerY == p.centerY"},
			column: []string{"a.width == a.height * 0.5", "a.centerX == p.centerX"},
		},
		"aspect ratio with inset": {
			size: AspectRatioInset(1, 2),
			row: []string{
				"a.height == a.width",
				"a.centerY == p.centerY",
				"a.top >= p.top + 2",
				"a.bottom <= p.bottom - 2",
			},
			column: []string{
				"a.width == a.height",
				"a.centerX == p.centerX",
				"a.leading >= p.leading + 2",
				"a.trailing <= p.trailing - 2",
			},
		},
		"any but smaller": {
			size:   AnyButSmaller(),
			row:    []string{"a.top == p.top", "a.bottom <= p.bottom"},
			column: []string{"a.leading == p.leading", "a.trailing <= p.trailing"},
		},
	}

	for name, tt := range tests {
		for _, d := range []Direction{Row, Column} {
			t.Run(name+"/"+d.String(), func(t *testing.T) {
				c := View(NewNode("a"), NewRules(FixedSize(10), tt.size))

				set, err := d.Orientation().CrossSizeConstraints(c, NewNode("p"))
				if err != nil {
					t.Fatalf("CrossSizeConstraints() error = %v", err)
				}

				want := tt.row
				if d == Column {
					want = tt.column
				}
				if got := render(set); !slices.Equal(got, want) {
					t.Errorf("CrossSizeConstraints() = %q, want %q", got, want)
				}
				for _, c := range set {
					if c.Kind != constraint.KindCrossSize {
						t.Errorf("Kind = %v, want %v", c.Kind, constraint.KindCrossSize)
					}
				}
			})
		}
	}
}

func TestOrientation_AspectRatioBoundCounts(t *testing.T) {
	type tc struct {
		size        Size
		equalities  int
		inequations int
	}

	tests := map[string]tc{
		"without inset": {size: AspectRatio(3), equalities: 1, inequations: 0},
		"with inset":    {size: AspectRatioInset(3, 1), equalities: 1, inequations: 2},
	}

	for name, tt := range tests {
		for _, d := range []Direction{Row, Column} {
			t.Run(name+"/"+d.String(), func(t *testing.T) {
				el, parent := NewNode("a"), NewNode("p")
				set, err := d.Orientation().MainSizeConstraints(View(el, NewRules(tt.size, FixedSize(1))), parent)
				if err != nil {
					t.Fatalf("MainSizeConstraints() error = %v", err)
				}

				var eq, ineq int
				for _, c := range set {
					if c.Relation == constraint.Equal {
						eq++
					} else {
						ineq++
					}
				}
				if eq != tt.equalities || ineq != tt.inequations {
					t.Errorf("equalities/inequalities = %d/%d, want %d/%d", eq, ineq, tt.equalities, tt.inequations)
				}
			})
		}
	}
}

func TestOrientation_PolicyMismatch(t *testing.T) {
	type tc struct {
		rules  Rules
		axis   string
		policy Policy
	}

	tests := map[string]tc{
		"main fixed offset": {
			rules:  NewRules(FixedOffset(4), Relational(100)),
			axis:   "main",
			policy: PolicyFixedOffset,
		},
		"main any but smaller": {
			rules:  NewRules(AnyButSmaller(), Relational(100)),
			axis:   "main",
			policy: PolicyAnyButSmaller,
		},
		"cross free falling": {
			rules:  NewRules(FixedSize(10), FreeFalling(GrowVeryMuch, 0)),
			axis:   "cross",
			policy: PolicyFreeFalling,
		},
	}

	for name, tt := range tests {
		for _, d := range []Direction{Row, Column} {
			t.Run(name+"/"+d.String(), func(t *testing.T) {
				c := View(NewNode("a"), tt.rules)
				o := d.Orientation()

				var err error
				if tt.axis == "main" {
					_, err = o.MainSizeConstraints(c, NewNode("p"))
				} else {
					_, err = o.CrossSizeConstraints(c, NewNode("p"))
				}

				if !errors.Is(err, ErrPolicyMismatch) {
					t.Fatalf("error = %v, want ErrPolicyMismatch", err)
				}
				var mismatch *PolicyMismatchError
				if !errors.As(err, &mismatch) {
					t.Fatalf("error %T is not *PolicyMismatchError", err)
				}
				if mismatch.Axis != tt.axis || mismatch.Policy != tt.policy || mismatch.Direction != d {
					t.Errorf("mismatch = %+v, want axis %s policy %v direction %v", mismatch, tt.axis, tt.policy, d)
				}
				if mismatch.Element != "a" {
					t.Errorf("mismatch.Element = %q, want %q", mismatch.Element, "a")
				}
			})
		}
	}
}

func TestOrientation_ChainConstraints(t *testing.T) {
	type tc struct {
		index  int
		next   bool
		row    []string
		column []string
	}

	tests := map[string]tc{
		"only component": {
			index:  0,
			row:    []string{"a.leading == p.leading", "a.trailing == p.trailing"},
			column: []string{"a.top == p.top", "a.bottom == p.bottom"},
		},
		"first of many": {
			index:  0,
			next:   true,
			row:    []string{"a.leading == p.leading", "a.trailing == b.leading"},
			column: []string{"a.top == p.top", "a.bottom == b.top"},
		},
		"middle": {
			index:  1,
			next:   true,
			row:    []string{"a.trailing == b.leading"},
			column: []string{"a.bottom == b.top"},
		},
		"last": {
			index:  2,
			row:    []string{"a.trailing == p.trailing"},
			column: []string{"a.bottom == p.bottom"},
		},
	}

	for name, tt := range tests {
		for _, d := range []Direction{Row, Column} {
			t.Run(name+"/"+d.String(), func(t *testing.T) {
				c := View(NewNode("a"), NewRules(FixedSize(1), FixedSize(1)))
				var next *Component
				if tt.next {
					n := View(NewNode("b"), NewRules(FixedSize(1), FixedSize(1)))
					next = &n
				}

				set := d.Orientation().ChainConstraints(c, tt.index, next, NewNode("p"))

				want := tt.row
				if d == Column {
					want = tt.column
				}
				if got := render(set); !slices.Equal(got, want) {
					t.Errorf("ChainConstraints() = %q, want %q", got, want)
				}
			})
		}
	}
}

func TestOrientation_ExpansionConstraints(t *testing.T) {
	type tc struct {
		sizes  []float64
		row    []string
		column []string
	}

	tests := map[string]tc{
		"none": {
			sizes: nil,
		},
		"single": {
			sizes: []float64{10},
		},
		"pair": {
			sizes:  []float64{10, 20},
			row:    []string{"s0.width == s1.width * 0.5"},
			column: []string{"s0.height == s1.height * 0.5"},
		},
		"ten twenty twenty": {
			sizes:  []float64{10, 20, 20},
			row:    []string{"s0.width == s1.width * 0.5", "s1.width == s2.width"},
			column: []string{"s0.height == s1.height * 0.5", "s1.height == s2.height"},
		},
	}

	for name, tt := range tests {
		for _, d := range []Direction{Row, Column} {
			t.Run(name+"/"+d.String(), func(t *testing.T) {
				var adaptable []Component
				for i, s := range tt.sizes {
					adaptable = append(adaptable, Spacer(FixedSize(s), Named("s"+string(rune('0'+i))), Adaptable()))
				}

				set := d.Orientation().ExpansionConstraints(adaptable)

				want := tt.row
				if d == Column {
					want = tt.column
				}
				if got := render(set); !slices.Equal(got, want) {
					t.Errorf("ExpansionConstraints() = %q, want %q", got, want)
				}
				for _, c := range set {
					if c.Kind != constraint.KindExpansion {
						t.Errorf("Kind = %v, want %v", c.Kind, constraint.KindExpansion)
					}
				}
			})
		}
	}
}
