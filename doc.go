// Package orderedview derives the layout constraints for an ordered row or
// column of views and spacers.
//
// Users import this single package for the public API: size policies,
// components, the engine, and the constraint values it produces. Solving is
// left to an external constraint solver reached through the Solver seam.
package orderedview
