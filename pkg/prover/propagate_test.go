package prover_test

import (
	"testing"

	"github.com/gitrdm/ivarpgo/pkg/interval"
	"github.com/gitrdm/ivarpgo/pkg/prover"
)

// coupledLE enforces a <= b on a pair box by the standard two-sided
// interval narrowing (a.ub = min(a.ub, b.ub), b.lb = max(b.lb, a.lb)),
// reporting Empty whenever that narrowing makes either side inconsistent.
// It exists to exercise Prover's propagate-to-fixed-point loop and its
// Empty short-circuit (spec §4.5 step 1, §7, §8), which no checker-only
// constraint in the tree (FormulaViolated, GreaterThan) touches.
type coupledLE struct {
	prover.Named
}

func newCoupledLE() *coupledLE {
	return &coupledLE{Named: prover.Named{ConstraintName: "a <= b"}}
}

func (c *coupledLE) CanPropagate() bool { return true }

func (c *coupledLE) Propagate(vars *pair) prover.PropagateResult {
	a := vars.Get(idxA)
	b := vars.Get(idxB)

	result := prover.Unchanged
	if vars.RestrictUB(vars, idxA, b.UB()) {
		result = result.Union(prover.Changed)
	}
	if vars.RestrictLB(vars, idxB, a.LB()) {
		result = result.Union(prover.Changed)
	}

	if vars.Get(idxA).PossiblyUndefined() || vars.Get(idxB).PossiblyUndefined() {
		return prover.Empty
	}
	return result
}

func (c *coupledLE) Satisfied(vars *pair) interval.Bool {
	return vars.Get(idxA).Le(vars.Get(idxB))
}

func TestPropagateRunsToFixedPointAndTightensBox(t *testing.T) {
	var v pair
	v.Init(&v, []interval.Interval{interval.New(5, 20), interval.New(0, 10)}, []prover.ChangeHandler[pair]{nil, nil})

	p := prover.New[pair]()
	p.AddVariableSet(v)
	p.AddConstraint(newCoupledLE())
	p.AbortAtHeight(0)

	var reported pair
	var gotReport, definitely bool
	p.SetReporter(func(box pair, def bool) {
		reported = box
		definitely = def
		gotReport = true
	})

	result := p.Prove()

	if !gotReport {
		t.Fatalf("expected the height-0 cutoff to report the box")
	}
	if definitely {
		t.Fatalf("a <= b is only indeterminate after narrowing, should not be definitely satisfiable")
	}
	if result {
		t.Fatalf("Prove() should return false once a box is reported")
	}

	a := reported.Get(idxA)
	b := reported.Get(idxB)
	if a.LB() != 5 || a.UB() != 10 {
		t.Fatalf("expected a narrowed to [5,10] by propagation, got %v", a)
	}
	if b.LB() != 5 || b.UB() != 10 {
		t.Fatalf("expected b narrowed to [5,10] by propagation, got %v", b)
	}
}

func TestPropagateEmptyPrunesBoxWithoutReporting(t *testing.T) {
	var v pair
	v.Init(&v, []interval.Interval{interval.New(8, 20), interval.New(0, 5)}, []prover.ChangeHandler[pair]{nil, nil})

	p := prover.New[pair]()
	p.AddVariableSet(v)
	p.AddConstraint(newCoupledLE())
	p.AbortAtHeight(0)

	gotReport := false
	p.SetReporter(func(box pair, def bool) {
		gotReport = true
	})

	result := p.Prove()

	if gotReport {
		t.Fatalf("a box pruned as Empty by propagation must never be reported")
	}
	if !result {
		t.Fatalf("Prove() should return true when every box is pruned before any decision")
	}
}
