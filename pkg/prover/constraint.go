package prover

import "github.com/gitrdm/ivarpgo/pkg/interval"

// Constraint is a checkable, optionally propagatable fact about a box of
// type T. CanPropagate classifies a constraint once, before the search
// begins (see Prover.setupProof): constraints that can propagate are run
// to a fixed point before every check; the rest are only ever checked.
type Constraint[T any] interface {
	// Name identifies the constraint, chiefly for tracing.
	Name() string

	// CanPropagate reports whether Propagate does anything useful for
	// this constraint. A constraint that always returns Unchanged from
	// Propagate should return false here so it is run only once, as a
	// checker, instead of every fixed-point iteration.
	CanPropagate() bool

	// Satisfied reports, as a three-valued Bool, whether the constraint
	// holds over every point in the box.
	Satisfied(vars *T) interval.Bool

	// Propagate tightens vars in place using whatever this constraint
	// can rigorously deduce, and reports what happened. Constraints that
	// never propagate may leave this as a no-op returning Unchanged.
	Propagate(vars *T) PropagateResult
}

// Named provides the common Name/CanPropagate boilerplate for a
// checker-only constraint (one that never propagates); embed it by value
// and implement Satisfied (and, for a propagator, override CanPropagate
// and add a Propagate method) on the concrete type.
type Named struct {
	ConstraintName string
}

// Name returns the constraint's configured name.
func (n Named) Name() string { return n.ConstraintName }

// CanPropagate defaults to false: a pure checker.
func (n Named) CanPropagate() bool { return false }
