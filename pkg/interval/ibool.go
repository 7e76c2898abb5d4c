package interval

import "fmt"

// Bool is a three-valued ("Kleene") boolean: a pair (possible, definitely)
// tracking whether a predicate might hold and whether it is guaranteed to
// hold across an entire interval. Every comparison on Interval, and every
// Constraint check in package prover, returns a Bool instead of a plain
// Go bool.
type Bool struct {
	definitely bool
	possible   bool
}

// NewBool constructs a Bool directly from its (definitely, possible) pair.
// definitely implies possible; callers that only know one side should use
// Definitely or Possibly instead.
func NewBool(definitely, possible bool) Bool {
	return Bool{definitely: definitely, possible: possible || definitely}
}

// Definitely returns the Bool that is true in every case (definitely and
// possibly both true).
func Definitely() Bool { return Bool{definitely: true, possible: true} }

// Possibly returns the Bool that might hold but is not guaranteed
// (possibly true, definitely false).
func Possibly() Bool { return Bool{definitely: false, possible: true} }

// Never returns the Bool that never holds (definitely and possibly false).
func Never() Bool { return Bool{definitely: false, possible: false} }

// Indeterminate is an alias for Possibly: a value that might be true and
// might be false, with no further information.
func Indeterminate() Bool { return Possibly() }

// IsDefinitely reports whether b is guaranteed to hold.
func (b Bool) IsDefinitely() bool { return b.definitely }

// IsPossibly reports whether b might hold.
func (b Bool) IsPossibly() bool { return b.possible }

// IsIndeterminate reports whether b is neither guaranteed true nor
// guaranteed false.
func (b Bool) IsIndeterminate() bool { return b.possible && !b.definitely }

// Not returns the logical negation of b: swap the "possible"/"definitely"
// roles and negate each.
func (b Bool) Not() Bool {
	return Bool{definitely: !b.possible, possible: !b.definitely}
}

// And returns the componentwise conjunction of b and other.
func (b Bool) And(other Bool) Bool {
	return Bool{definitely: b.definitely && other.definitely, possible: b.possible && other.possible}
}

// Or returns the componentwise disjunction of b and other.
func (b Bool) Or(other Bool) Bool {
	return Bool{definitely: b.definitely || other.definitely, possible: b.possible || other.possible}
}

// Xor returns the exclusive-or of b and other. If either operand is
// indeterminate the result is indeterminate; otherwise it is the classical
// two-valued xor of the (coincident) definitely/possible pairs.
func (b Bool) Xor(other Bool) Bool {
	if b.IsIndeterminate() || other.IsIndeterminate() {
		return Indeterminate()
	}
	r := b.definitely != other.definitely
	return Bool{definitely: r, possible: r}
}

// Eq implements the three-valued equality used throughout this package: if
// either operand is indeterminate the result is indeterminate, otherwise
// it is the classical two-valued equality of the operands' (coincident)
// truth value. This is deliberately NOT reflexive on indeterminate values
// (Indeterminate().Eq(Indeterminate()) is itself indeterminate, not
// Definitely) — preserved exactly as designed upstream.
func (b Bool) Eq(other Bool) Bool {
	if b.IsIndeterminate() || other.IsIndeterminate() {
		return Indeterminate()
	}
	r := b.definitely == other.definitely
	return Bool{definitely: r, possible: r}
}

// Same reports plain Go-bool equality of the underlying (definitely,
// possible) representation — i.e. whether b and other are literally the
// same three-valued state. Unlike Eq, this is a normal reflexive equality
// and is what code should use when comparing Bool values as data rather
// than combining them as predicates.
func Same(a, b Bool) bool {
	return a.definitely == b.definitely && a.possible == b.possible
}

func (b Bool) String() string {
	switch {
	case b.definitely:
		return "definitely"
	case b.possible:
		return "possibly"
	default:
		return "never"
	}
}

// GoString supports %#v formatting with the raw pair visible, useful when
// debugging an unexpected indeterminate result.
func (b Bool) GoString() string {
	return fmt.Sprintf("Bool{definitely:%v, possible:%v}", b.definitely, b.possible)
}
