// Package constraint models the linear layout constraints the engine emits.
//
// A [Constraint] relates an [Anchor] (an item plus a geometric attribute) to a
// second anchor or to a constant:
//
//	first REL second * multiplier + constant @priority
//
// Constraints are plain values. They are handed to an external [Solver] in a
// single batch; this package never solves them. [Check] verifies a solved
// frame assignment against a set, which keeps derivation testable headlessly.
package constraint
