package prover

import (
	"log/slog"
	"math"

	"github.com/gitrdm/ivarpgo/pkg/interval"
)

// VariableSet is implemented by a concrete box type T: it must know how to
// split itself into two children at a given search-tree height. Everything
// else a box needs (storage, change-handler firing, accessors) comes from
// embedding Box[T] by value and is exposed through whatever named
// accessor methods the concrete type chooses to declare.
type VariableSet[T any] interface {
	Split(height uint64) (T, T)
}

// Tracer is an optional capability a box type T can implement to support
// Prover.Trace: TraceString is called once per popped frame and its result
// is logged if tracing is enabled. This is the Go counterpart of the
// original's compile-time SFINAE check for a trace_string member —
// checked here with a single type assertion instead.
type Tracer interface {
	TraceString(id, parentID uint64) string
}

// ReportFunc is called once for every box the search decides on, either
// because a constraint was definitely satisfied or because the search was
// cut off at the configured height limit.
type ReportFunc[T any] func(box T, definitelySatisfiable bool)

type frame[T any] struct {
	domain   T
	height   uint64
	id       uint64
	parentID uint64
}

// Prover is a branch-and-bound search engine over boxes of type T. Build
// one with New, register the box(es) to search and the constraints to
// enforce, configure its policies, and call Prove.
type Prover[T VariableSet[T]] struct {
	basic       []T
	constraints []Constraint[T]
	propagators []Constraint[T]
	checkers    []Constraint[T]

	stack []frame[T]

	reporter         ReportFunc[T]
	abortSatisfiable bool
	abortHeight      uint64
	trace            bool
	logger           *slog.Logger
	idCounter        uint64
}

// New returns a Prover with no registered variable sets or constraints and
// the default policies (no height limit, no abort-on-satisfiable, no
// tracing, reporter discards results).
func New[T VariableSet[T]]() *Prover[T] {
	return &Prover[T]{
		abortHeight: math.MaxUint64,
		reporter:    func(T, bool) {},
		logger:      slog.Default(),
	}
}

// AddVariableSet registers an initial box to search.
func (p *Prover[T]) AddVariableSet(vars T) {
	p.basic = append(p.basic, vars)
}

// AddConstraint registers a constraint to enforce across every box in the
// search.
func (p *Prover[T]) AddConstraint(c Constraint[T]) {
	p.constraints = append(p.constraints, c)
}

// AbortOnSatisfiable stops the search as soon as any box is decided
// (definitely satisfiable, or cut off at the height limit), discarding the
// remaining work stack.
func (p *Prover[T]) AbortOnSatisfiable(value bool) {
	p.abortSatisfiable = value
}

// AbortAtHeight bounds the search depth: a box reaching this height
// without being decided is reported as undecided (definitelySatisfiable =
// false) instead of being split further.
func (p *Prover[T]) AbortAtHeight(height uint64) {
	p.abortHeight = height
}

// Trace enables or disables per-frame tracing. Tracing only produces
// output when T also implements Tracer; otherwise it is silently a no-op,
// mirroring the original's compile-time tracing_supported check.
func (p *Prover[T]) Trace(active bool) {
	p.trace = active
}

// SetLogger overrides the *slog.Logger used for tracing. The zero value
// leaves the default logger in place.
func (p *Prover[T]) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	p.logger = logger
}

// SetReporter overrides the callback invoked for every decided box.
func (p *Prover[T]) SetReporter(r ReportFunc[T]) {
	p.reporter = r
}

// Prove runs the branch-and-bound search to completion (or until aborted)
// and reports whether every initial box was proven to violate the
// registered constraints everywhere: it returns false if any box is found
// definitely satisfiable, or is cut off undecided at the height limit. The
// search still runs to completion after such a box unless
// AbortOnSatisfiable is set.
func (p *Prover[T]) Prove() bool {
	p.setupProof()
	result := true
	for len(p.stack) > 0 {
		last := len(p.stack) - 1
		element := p.stack[last]
		p.stack = p.stack[:last]

		p.traceNode(element)

		if p.runPropagators(&element.domain) {
			continue
		}

		cresult := p.runCheckers(&element.domain)
		if !cresult.IsPossibly() {
			continue
		}

		def := cresult.IsDefinitely()
		if def {
			cresult = cresult.And(p.runPropagatorsAsCheckers(&element.domain))
			if !cresult.IsPossibly() {
				continue
			}
			def = cresult.IsDefinitely()
		}

		switch {
		case def:
			result = false
			p.reporter(element.domain, true)
			if p.abortSatisfiable {
				p.stack = nil
			}
		case element.height == p.abortHeight:
			result = false
			p.reporter(element.domain, false)
			if p.abortSatisfiable {
				p.stack = nil
			}
		default:
			child1, child2 := element.domain.Split(element.height)
			p.idCounter++
			id1 := p.idCounter
			p.idCounter++
			id2 := p.idCounter
			p.stack = append(p.stack,
				frame[T]{domain: child1, height: element.height + 1, id: id1, parentID: element.id},
				frame[T]{domain: child2, height: element.height + 1, id: id2, parentID: element.id},
			)
		}
	}
	return result
}

func (p *Prover[T]) setupProof() {
	p.propagators = p.propagators[:0]
	p.checkers = p.checkers[:0]
	for _, c := range p.constraints {
		if c.CanPropagate() {
			p.propagators = append(p.propagators, c)
		} else {
			p.checkers = append(p.checkers, c)
		}
	}

	p.stack = p.stack[:0]
	for _, v := range p.basic {
		p.idCounter++
		p.stack = append(p.stack, frame[T]{domain: v, height: 0, id: p.idCounter, parentID: 0})
	}
}

func (p *Prover[T]) traceNode(element frame[T]) {
	if !p.trace {
		return
	}
	t, ok := any(&element.domain).(Tracer)
	if !ok {
		return
	}
	p.logger.Debug("prove: visiting frame",
		"id", element.id,
		"parent_id", element.parentID,
		"height", element.height,
		"trace", t.TraceString(element.id, element.parentID))
}

// runPropagators runs every registered propagator to a fixed point,
// short-circuiting a pass as soon as one propagator reports the box is
// empty. It reports whether the box was found empty.
func (p *Prover[T]) runPropagators(domain *T) bool {
	anyChange := Unchanged
	for {
		anyChange = Unchanged
		for _, c := range p.propagators {
			pr := c.Propagate(domain)
			anyChange = anyChange.Union(pr)
			if pr.HasEmpty() {
				break
			}
		}
		if anyChange != Changed {
			break
		}
	}
	return anyChange.HasEmpty()
}

func (p *Prover[T]) runCheckerCollection(domain *T, collection []Constraint[T]) interval.Bool {
	result := interval.Definitely()
	for _, c := range collection {
		r := c.Satisfied(domain)
		result = result.And(r)
		if !r.IsPossibly() {
			break
		}
	}
	return result
}

func (p *Prover[T]) runCheckers(domain *T) interval.Bool {
	return p.runCheckerCollection(domain, p.checkers)
}

func (p *Prover[T]) runPropagatorsAsCheckers(domain *T) interval.Bool {
	return p.runCheckerCollection(domain, p.propagators)
}
