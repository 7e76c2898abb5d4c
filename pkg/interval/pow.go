package interval

import "math"

// Square returns x*x, computed as a dedicated squaring (rather than a
// general multiplication) so that a straddles-zero interval always yields
// a lower bound of exactly 0 instead of a value that merely rounds close
// to it.
func (x Interval) Square() Interval {
	return x.Pow(2)
}

// Cube returns x*x*x.
func (x Interval) Cube() Interval {
	return x.Pow(3)
}

// powBoundDown and powBoundUp raise the single value b to the n-th power,
// rounding the result in the requested direction via repeated squaring —
// the same repeated-squaring structure as the original's PowSingle/PowInterval
// templates, translated out of inline asm into Nextafter-based widening.
func powBoundDown(b float64, n uint) float64 {
	return powSingle(b, n, false)
}

func powBoundUp(b float64, n uint) float64 {
	return powSingle(b, n, true)
}

func powSingle(b float64, n uint, up bool) float64 {
	if n == 0 {
		return 1
	}
	result := 1.0
	base := b
	for n > 0 {
		if n&1 == 1 {
			result = mulCross(result, base, up)
		}
		n >>= 1
		if n > 0 {
			base = mulCross(base, base, up)
		}
	}
	return result
}

// Pow raises x to the fixed non-negative integer power n, ported from the
// original's fixed_pow<N> case analysis: N=0 is the constant 1; N=1 is the
// identity; even N folds any sign of the operand into a non-negative
// result (with the straddles-zero case forcing a lower bound of 0); odd N
// preserves sign and is monotone, so bounds map through in operand order.
func (x Interval) Pow(n uint) Interval {
	if x.PossiblyUndefined() {
		return Undefined()
	}
	switch n {
	case 0:
		return Point(1)
	case 1:
		return x
	}
	if n%2 == 0 {
		if x.lb >= 0 {
			return newRaw(math.Max(0, powBoundDown(x.lb, n)), powBoundUp(x.ub, n))
		}
		if x.ub <= 0 {
			return newRaw(math.Max(0, powBoundDown(-x.ub, n)), powBoundUp(-x.lb, n))
		}
		maxAbs := -x.lb
		if x.ub > maxAbs {
			maxAbs = x.ub
		}
		return newRaw(0, powBoundUp(maxAbs, n))
	}
	// odd exponent: monotone increasing, negative base handled by sign flip
	lo := signedPow(x.lb, n, false)
	hi := signedPow(x.ub, n, true)
	return newRaw(lo, hi)
}

// signedPow raises a (possibly negative) base to the odd power n, rounding
// in the requested direction, by computing the unsigned power with the
// rounding direction flipped under negation.
func signedPow(base float64, n uint, up bool) float64 {
	if base >= 0 {
		return powSingle(base, n, up)
	}
	return -powSingle(-base, n, !up)
}
