package prover

// PropagateResult reports what a Constraint's Propagate call did to a box,
// as a bitmask so that results from multiple propagators run in a single
// pass can be OR-combined cheaply.
type PropagateResult uint

const (
	// Unchanged means the propagator found nothing to tighten.
	Unchanged PropagateResult = 0
	// Changed means the propagator tightened at least one variable and
	// the box remains non-empty.
	Changed PropagateResult = 1
	// Empty means the propagator discovered the box can be pruned
	// entirely (some variable's bounds became inconsistent).
	Empty PropagateResult = 2
)

// Union returns the bitwise union of r and other, used to accumulate the
// combined effect of running every propagator once in a single pass.
func (r PropagateResult) Union(other PropagateResult) PropagateResult {
	return r | other
}

// HasEmpty reports whether the Empty bit is set.
func (r PropagateResult) HasEmpty() bool {
	return r&Empty != 0
}
