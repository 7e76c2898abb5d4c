package prover

import "github.com/gitrdm/ivarpgo/pkg/interval"

// ChangeHandler is notified whenever the variable at index changes; lbChanged
// and ubChanged report which bound(s) moved. Handlers typically re-derive
// cached quantities on t or tighten sibling variables via t's own Box.
//
// This is the Go-generics stand-in for the original's pointer-to-member-
// function table (OnChangeHandler = void(ConcreteVariableSet::*)(bool,bool)):
// instead of a vtable of bound member-function pointers, a concrete box
// type T supplies a plain function slice at construction time, each taking
// *T so it can mutate both the embedded Box and any other field on T.
type ChangeHandler[T any] func(t *T, index int, lbChanged, ubChanged bool)

// Box is the fixed-length vector of interval variables embedded by value in
// a concrete variable-set type T, together with the per-variable change
// handlers that couple variables to each other and to derived caches on T.
type Box[T any] struct {
	vars     []interval.Interval
	handlers []ChangeHandler[T]
}

// Init sets vars and handlers and fires every handler once with
// (lbChanged, ubChanged) = (true, true), matching the constructor behavior
// of the original's BasicVariableSet. Call this once, from the concrete
// type's own constructor, immediately after populating its other fields.
func (b *Box[T]) Init(owner *T, vars []interval.Interval, handlers []ChangeHandler[T]) {
	b.vars = append([]interval.Interval(nil), vars...)
	b.handlers = handlers
	for i := range b.handlers {
		b.fire(owner, i, true, true)
	}
}

// NumVars returns the number of variables in the box.
func (b *Box[T]) NumVars() int { return len(b.vars) }

// Get returns the current interval of the variable at index.
func (b *Box[T]) Get(index int) interval.Interval { return b.vars[index] }

func (b *Box[T]) fire(owner *T, index int, lbChanged, ubChanged bool) {
	if h := b.handlers[index]; h != nil {
		h(owner, index, lbChanged, ubChanged)
	}
}

// Set replaces the variable at index outright and fires its handler with
// both bounds marked changed.
func (b *Box[T]) Set(owner *T, index int, value interval.Interval) {
	b.vars[index] = value
	b.fire(owner, index, true, true)
}

// RestrictLB tightens the lower bound of the variable at index to the
// larger of its current lower bound and lowerBound, firing the variable's
// change handler if anything moved. It reports whether a change occurred.
func (b *Box[T]) RestrictLB(owner *T, index int, lowerBound float64) bool {
	cur := b.vars[index]
	if cur.LB() < lowerBound {
		b.vars[index] = cur.RestrictLB(lowerBound)
		b.fire(owner, index, true, false)
		return true
	}
	return false
}

// RestrictUB tightens the upper bound of the variable at index to the
// smaller of its current upper bound and upperBound, firing the variable's
// change handler if anything moved. It reports whether a change occurred.
func (b *Box[T]) RestrictUB(owner *T, index int, upperBound float64) bool {
	cur := b.vars[index]
	if cur.UB() > upperBound {
		b.vars[index] = cur.RestrictUB(upperBound)
		b.fire(owner, index, false, true)
		return true
	}
	return false
}

// Restrict intersects the variable at index with bounds, firing the change
// handler once for whichever side(s) moved. It reports whether a change
// occurred.
func (b *Box[T]) Restrict(owner *T, index int, bounds interval.Interval) bool {
	cur := b.vars[index]
	lbChanged := cur.LB() < bounds.LB()
	ubChanged := cur.UB() > bounds.UB()
	if !lbChanged && !ubChanged {
		return false
	}
	next := cur
	if lbChanged {
		next = next.RestrictLB(bounds.LB())
	}
	if ubChanged {
		next = next.RestrictUB(bounds.UB())
	}
	b.vars[index] = next
	b.fire(owner, index, lbChanged, ubChanged)
	return true
}

// cloneVars deep-copies the variable slice so that a struct-value copy of
// the owning T (which only copies the slice header) can be mutated
// independently. Plain Go assignment of a struct containing Box[T] aliases
// the same backing array across copies; Split relies on cloneVars to avoid
// that hazard when producing the two halves of a split box.
func (b *Box[T]) cloneVars() {
	b.vars = append([]interval.Interval(nil), b.vars...)
}

// Split produces the two children of splitting owner at the variable
// selected by height (round-robin over the variables, by height modulo
// NumVars), at that variable's midpoint. Each child is a full value copy
// of owner with its Box's variable slice independently cloned, the split
// dimension replaced by one half of the original interval, and that
// dimension's change handler fired to re-derive anything coupled to it —
// the Go counterpart of the original's BasicVariableSet::default_split.
func Split[T any](owner T, box func(*T) *Box[T], height uint64) (T, T) {
	b := box(&owner)
	idx := int(height % uint64(b.NumVars()))
	whole := b.vars[idx]
	mid := whole.Center()
	lo := interval.New(whole.LB(), mid)
	hi := interval.New(mid, whole.UB())

	child1 := owner
	b1 := box(&child1)
	b1.cloneVars()
	b1.vars[idx] = lo
	b1.fire(&child1, idx, false, true)

	child2 := owner
	b2 := box(&child2)
	b2.cloneVars()
	b2.vars[idx] = hi
	b2.fire(&child2, idx, true, false)

	return child1, child2
}
