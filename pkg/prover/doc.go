// Package prover implements a branch-and-bound search engine over
// multi-dimensional interval boxes. A Prover repeatedly pops a box from a
// LIFO work stack, runs registered propagators to a fixed point, checks
// registered constraints, and either reports the box as decided or splits
// it and pushes the children back onto the stack.
//
// # Variable sets
//
// A concrete box type embeds Box[T] by value and supplies one change
// handler per variable (see Box.Init); this is the Go-generics translation
// of the original's CRTP BasicVariableSet<ConcreteVariableSet, NumVars> —
// see DESIGN.md for the full grounding.
package prover
