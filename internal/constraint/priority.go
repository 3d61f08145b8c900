package constraint

import "strconv"

// Priority is the solver weight of a constraint or a growth-resistance hint.
// Values follow the usual 1-1000 scale where 1000 is mandatory.
type Priority float64

const (
	PriorityLow      Priority = 250  // Yields to almost everything
	PriorityHigh     Priority = 750  // Yields only to required constraints
	PriorityRequired Priority = 1000 // Must be satisfied
)

// IsRequired reports whether the priority is mandatory.
func (p Priority) IsRequired() bool {
	return p >= PriorityRequired
}

// String returns the numeric weight.
func (p Priority) String() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64)
}
