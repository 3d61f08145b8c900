// Package layout derives layout constraints for an ordered row or column of
// components.
//
// Each [Component] pairs an [Element] with [Rules]: one [Size] policy for the
// main axis and one for the cross axis. An [Engine] bound to a [Direction]
// walks the components once, when it is attached to a [Container], and emits:
//
//   - main-axis and cross-axis sizing constraints per component,
//   - chaining constraints placing each component right after the previous one,
//     covering the parent's main axis edge to edge,
//   - expansion constraints keeping adaptable fixed-size components in the
//     ratio of their declared sizes.
//
// The resulting set is handed to a [constraint.Solver] in one batch. Solving
// is left to that external system.
package layout
