package interval

import "math"

// Pi returns a rigorous enclosure of the constant pi, ported from the
// original's ConstantCache<IDouble>::pi literal double-double bracketing.
func Pi() Interval {
	return newRaw(3.14159265358979311599796346854418516159057617187500, 3.14159265358979356008717331860680133104324340820312500)
}

// PiHalf returns a rigorous enclosure of pi/2.
func PiHalf() Interval {
	return newRaw(1.57079632679489655799898173427209258079528808593750, 1.57079632679489678004358665930340066552162170410156250)
}

// recTwoPi returns a rigorous enclosure of 1/(2*pi), used to reduce an
// argument into multiples of a full period before case-analyzing the
// fractional part against the quarter-period boundaries.
func recTwoPi() Interval {
	return newRaw(0.15915494309189531785264648533484432846307754516601562500, 0.15915494309189534560822210096375783905386924743652343750)
}

// periodReduction is the Go counterpart of PositivePeriodReduction: it
// scales a non-negative interval x by the rigorous 1/(2*pi) enclosure and
// splits each resulting bound into integral and fractional period counts.
type periodReduction struct {
	lbFrac, ubFrac float64
	lbInt, ubInt   float64
}

func positivePeriodReduction(x Interval) periodReduction {
	scaled := x.Mul(recTwoPi())
	lbInt, lbFrac := math.Modf(scaled.lb)
	ubInt, ubFrac := math.Modf(scaled.ub)
	return periodReduction{lbFrac: lbFrac, ubFrac: ubFrac, lbInt: lbInt, ubInt: ubInt}
}

// roundSin computes sin(x) for a single non-negative x rounded in the
// requested direction. The original delegates this to an MPFR
// arbitrary-precision backend; math.Sin here plays that role (its
// correctly-rounded-at-a-point contract is assumed, per spec, as an
// external dependency), widened outward by one ULP to stay sound.
func roundSin(x float64, up bool) float64 {
	v := math.Sin(x)
	if up {
		return roundUp(v)
	}
	return roundDown(v)
}

func roundCos(x float64, up bool) float64 {
	v := math.Cos(x)
	if up {
		return roundUp(v)
	}
	return roundDown(v)
}

func roundTan(x float64, up bool) float64 {
	v := math.Tan(x)
	if up {
		return roundUp(v)
	}
	return roundDown(v)
}

func intervalSinNowrap(p periodReduction, x Interval) Interval {
	if p.lbFrac <= 0.25 {
		switch {
		case p.ubFrac < 0.25:
			return newRaw(roundSin(x.lb, false), roundSin(x.ub, true))
		case p.ubFrac < 0.75:
			return newRaw(math.Min(roundSin(x.lb, false), roundSin(x.ub, false)), 1)
		default:
			return newRaw(-1, 1)
		}
	}
	switch {
	case p.ubFrac < 0.75:
		return newRaw(roundSin(x.ub, false), roundSin(x.lb, true))
	case p.lbFrac <= 0.75:
		return newRaw(-1, math.Max(roundSin(x.lb, true), roundSin(x.ub, true)))
	default:
		return newRaw(roundSin(x.lb, false), roundSin(x.ub, true))
	}
}

func intervalSinWrap(p periodReduction, x Interval) Interval {
	if p.lbFrac <= 0.25 {
		return newRaw(-1, 1)
	}
	if p.lbFrac <= 0.75 {
		if p.ubFrac < 0.25 {
			return newRaw(-1, math.Max(roundSin(x.lb, true), roundSin(x.ub, true)))
		}
		return newRaw(-1, 1)
	}
	switch {
	case p.ubFrac < 0.25:
		return newRaw(roundSin(x.lb, false), roundSin(x.ub, true))
	case p.ubFrac < 0.75:
		return newRaw(math.Min(roundSin(x.lb, false), roundSin(x.ub, false)), 1)
	default:
		return newRaw(-1, 1)
	}
}

func intervalSinNonnegative(x Interval) Interval {
	p := positivePeriodReduction(x)
	if p.lbInt+1 < p.ubInt {
		return newRaw(-1, 1)
	}
	if p.lbInt == p.ubInt {
		return intervalSinNowrap(p, x)
	}
	return intervalSinWrap(p, x)
}

// Sin returns a rigorous enclosure of sin(x) over the whole of x, using
// sine's odd symmetry to reduce to the non-negative case and a period
// reduction against 1/(2*pi) to case-analyze quarter-period boundaries.
func Sin(x Interval) Interval {
	if !x.IsFinite() {
		if x.PossiblyUndefined() {
			return Undefined()
		}
		return newRaw(-1, 1)
	}
	switch {
	case x.ub <= 0:
		return intervalSinNonnegative(x.Neg()).Neg()
	case x.lb < 0:
		rneg := intervalSinNonnegative(newRaw(0, -x.lb)).Neg()
		rpos := intervalSinNonnegative(newRaw(0, x.ub))
		return Join(rpos, rneg)
	default:
		return intervalSinNonnegative(x)
	}
}

func intervalCosNowrap(p periodReduction, x Interval) Interval {
	if p.lbFrac <= 0.5 {
		if p.ubFrac <= 0.5 {
			return newRaw(roundCos(x.ub, false), roundCos(x.lb, true))
		}
		return newRaw(-1, math.Max(roundCos(x.ub, true), roundCos(x.lb, true)))
	}
	return newRaw(roundCos(x.lb, false), roundCos(x.ub, true))
}

func intervalCosWrap(p periodReduction, x Interval) Interval {
	if p.lbFrac <= 0.5 || p.ubFrac >= 0.5 {
		return newRaw(-1, 1)
	}
	return newRaw(math.Min(roundCos(x.lb, false), roundCos(x.ub, false)), 1)
}

func intervalCosNonnegative(x Interval) Interval {
	p := positivePeriodReduction(x)
	if p.lbInt+1 < p.ubInt {
		return newRaw(-1, 1)
	}
	if p.lbInt == p.ubInt {
		return intervalCosNowrap(p, x)
	}
	return intervalCosWrap(p, x)
}

// Cos returns a rigorous enclosure of cos(x) over the whole of x, using
// cosine's even symmetry to fold negative input onto the non-negative case.
func Cos(x Interval) Interval {
	if !x.IsFinite() {
		if x.PossiblyUndefined() {
			return Undefined()
		}
		return newRaw(-1, 1)
	}
	switch {
	case x.ub <= 0:
		return intervalCosNonnegative(x.Neg())
	case x.lb < 0:
		mx := -x.lb
		if x.ub > mx {
			mx = x.ub
		}
		return intervalCosNonnegative(newRaw(0, mx))
	default:
		return intervalCosNonnegative(x)
	}
}

// Tan returns a rigorous enclosure of tan(x), valid only when x lies
// within the principal branch (-pi/2, pi/2); any other x, including an
// interval lying wholly inside another branch, yields the fully undefined
// interval.
func Tan(x Interval) Interval {
	if x.PossiblyUndefined() {
		return Undefined()
	}
	ph := PiHalf()
	if x.lb < -ph.lb || x.ub > ph.lb {
		return Undefined()
	}
	return newRaw(roundTan(x.lb, false), roundTan(x.ub, true))
}
