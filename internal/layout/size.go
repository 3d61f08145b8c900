package layout

import "github.com/grindlemire/go-orderedview/internal/constraint"

// Policy tags how a Size determines an extent.
type Policy uint8

const (
	PolicyFixedSize     Policy = iota // Constant extent
	PolicyFixedOffset                 // Inset from both parent edges
	PolicyRelational                  // Percentage of the parent's extent
	PolicyAspectRatio                 // Multiple of the element's other extent
	PolicyAnyButSmaller               // Pinned to the leading edge, never past the trailing edge
	PolicyFreeFalling                 // Bounded range with a growth preference
)

var policyNames = [...]string{
	PolicyFixedSize:     "fixed-size",
	PolicyFixedOffset:   "fixed-offset",
	PolicyRelational:    "relational",
	PolicyAspectRatio:   "aspect-ratio",
	PolicyAnyButSmaller: "any-but-smaller",
	PolicyFreeFalling:   "free-falling",
}

// String returns the policy name.
func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return "unknown"
}

// Growth expresses how willing a free-falling element is to grow past its
// minimum.
type Growth uint8

const (
	GrowVeryMuch    Growth = iota // Grows first
	GrowNotThatMuch               // Grows when others cannot
	GrowNope                      // Stays at its minimum
)

// Priority maps the growth preference to a growth-resistance priority.
func (g Growth) Priority() constraint.Priority {
	switch g {
	case GrowVeryMuch:
		return constraint.PriorityLow
	case GrowNotThatMuch:
		return constraint.PriorityHigh
	default:
		return constraint.PriorityRequired
	}
}

// String returns the growth name.
func (g Growth) String() string {
	switch g {
	case GrowVeryMuch:
		return "very-much"
	case GrowNotThatMuch:
		return "not-that-much"
	case GrowNope:
		return "nope"
	default:
		return "unknown"
	}
}

// Size is a per-axis sizing policy. It is built only through the constructors
// below and cannot be changed afterwards.
type Size struct {
	policy   Policy
	amount   float64 // size, offset, percent, multiplier, or minimum
	limit    float64 // aspect-ratio inset or free-falling maximum
	hasLimit bool
	growth   Growth
}

// FixedSize returns a policy for a constant extent.
func FixedSize(v float64) Size {
	return Size{policy: PolicyFixedSize, amount: v}
}

// FixedOffset returns a policy insetting the element by o from both parent edges.
func FixedOffset(o float64) Size {
	return Size{policy: PolicyFixedOffset, amount: o}
}

// Relational returns a policy for a percentage of the parent's extent.
// The percentage is on a 0-100 scale (50 = half).
func Relational(percent float64) Size {
	return Size{policy: PolicyRelational, amount: percent}
}

// AspectRatio returns a policy tying the extent to the element's extent on
// the other axis times m.
func AspectRatio(m float64) Size {
	return Size{policy: PolicyAspectRatio, amount: m}
}

// AspectRatioInset is AspectRatio with both edges kept at least inset away
// from the parent's edges.
func AspectRatioInset(m, inset float64) Size {
	return Size{policy: PolicyAspectRatio, amount: m, limit: inset, hasLimit: true}
}

// AnyButSmaller returns a policy pinning the element to the parent's leading
// edge and keeping it within the trailing edge.
func AnyButSmaller() Size {
	return Size{policy: PolicyAnyButSmaller}
}

// FreeFalling returns a policy with a minimum extent and a growth preference.
func FreeFalling(growth Growth, minValue float64) Size {
	return Size{policy: PolicyFreeFalling, amount: minValue, growth: growth}
}

// FreeFallingBounded is FreeFalling with a maximum extent.
func FreeFallingBounded(growth Growth, minValue, maxValue float64) Size {
	return Size{policy: PolicyFreeFalling, amount: minValue, limit: maxValue, hasLimit: true, growth: growth}
}

// Policy returns the sizing mode.
func (s Size) Policy() Policy {
	return s.policy
}

// IsFixedSize reports whether the policy is FixedSize. Only fixed sizes can
// take part in proportional expansion.
func (s Size) IsFixedSize() bool {
	return s.policy == PolicyFixedSize
}

// Amount returns the policy's primary number: the size, the offset, the
// percentage, the multiplier, or the minimum, depending on the policy.
func (s Size) Amount() float64 {
	return s.amount
}

// Multiplier returns the factor applied to the related extent: percent/100
// for relational sizes, the ratio for aspect ratios, and 1 otherwise.
func (s Size) Multiplier() float64 {
	switch s.policy {
	case PolicyRelational:
		return s.amount / 100
	case PolicyAspectRatio:
		return s.amount
	default:
		return 1
	}
}

// Limit returns the aspect-ratio inset or the free-falling maximum, if set.
func (s Size) Limit() (float64, bool) {
	return s.limit, s.hasLimit
}

// Growth returns the growth preference of a free-falling size.
func (s Size) Growth() Growth {
	return s.growth
}

// Rules pairs the main-axis and cross-axis sizing policies of a component.
type Rules struct {
	main  Size
	cross Size
}

// NewRules creates Rules from a main-axis and a cross-axis policy.
func NewRules(main, cross Size) Rules {
	return Rules{main: main, cross: cross}
}

// Main returns the policy along the direction of the ordered layout.
func (r Rules) Main() Size {
	return r.main
}

// Cross returns the policy perpendicular to the ordered layout.
func (r Rules) Cross() Size {
	return r.cross
}
