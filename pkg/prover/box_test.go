package prover_test

import (
	"testing"

	"github.com/gitrdm/ivarpgo/pkg/interval"
	"github.com/gitrdm/ivarpgo/pkg/prover"
)

type pair struct {
	prover.Box[pair]
	sumOfSquares interval.Interval
}

const (
	idxA = iota
	idxB
)

func recompute(p *pair, _ int, _, _ bool) {
	a := p.Get(idxA)
	b := p.Get(idxB)
	p.sumOfSquares = a.Square().Add(b.Square())
}

func newPair(a, b interval.Interval) pair {
	var p pair
	p.Init(&p, []interval.Interval{a, b}, []prover.ChangeHandler[pair]{recompute, recompute})
	return p
}

func (p pair) Split(height uint64) (pair, pair) {
	return prover.Split(p, func(t *pair) *prover.Box[pair] { return &t.Box }, height)
}

func TestBoxInitFiresHandlersOnConstruction(t *testing.T) {
	p := newPair(interval.New(1, 2), interval.New(3, 4))
	if p.sumOfSquares.LB() > 1.0+9.0 || p.sumOfSquares.UB() < 4.0+16.0 {
		t.Fatalf("sumOfSquares = %v does not enclose [10,20]", p.sumOfSquares)
	}
}

func TestBoxRestrictFiresHandler(t *testing.T) {
	p := newPair(interval.New(0, 10), interval.New(0, 10))
	p.sumOfSquares = interval.Undefined()
	p.RestrictUB(&p, idxA, 2)
	if p.sumOfSquares.PossiblyUndefined() {
		t.Fatalf("expected sumOfSquares to be recomputed after RestrictUB")
	}
}

func TestSplitClonesVariablesIndependently(t *testing.T) {
	p := newPair(interval.New(0, 10), interval.New(5, 5))
	child1, child2 := prover.Split(p, func(t *pair) *prover.Box[pair] { return &t.Box }, 0)

	if child1.Get(idxA).UB() >= child2.Get(idxA).LB() && child1.Get(idxA).UB() != child2.Get(idxA).LB() {
		t.Fatalf("split children should partition dimension 0 at its midpoint")
	}
	// mutating child1 must not affect child2's backing array
	child1.Set(&child1, idxB, interval.Point(99))
	if child2.Get(idxB).LB() == 99 {
		t.Fatalf("split children must not alias the same backing array")
	}
}
