// Package geometry provides interval-valued planar geometry helpers for
// Prover constraints whose satisfaction depends on circle and line
// relationships, ported from the worked constraint files in the original
// source that recompute these quantities by hand inline.
package geometry

import (
	"math"

	"github.com/gitrdm/ivarpgo/pkg/interval"
)

// Point is a planar point with interval-valued coordinates.
type Point struct {
	X, Y interval.Interval
}

// Circle is a planar circle with an interval-valued center and radius.
type Circle struct {
	Center Point
	Radius interval.Interval
}

// CenterOf returns the midpoint of p1 and p2.
func CenterOf(p1, p2 Point) Point {
	half := interval.New(0.5, 0.5)
	return Point{
		X: half.Mul(p1.X.Add(p2.X)),
		Y: half.Mul(p1.Y.Add(p2.Y)),
	}
}

// SquaredDistance returns the squared Euclidean distance between p1 and p2.
func SquaredDistance(p1, p2 Point) interval.Interval {
	dx := p1.X.Sub(p2.X)
	dy := p1.Y.Sub(p2.Y)
	return dx.Square().Add(dy.Square())
}

// CircleResult is the outcome of CircleRightOf: a candidate circle center,
// plus a three-valued existence flag (a circle of the requested radius
// might not fit to the right of p -> q at all).
type CircleResult struct {
	Center Point
	Exists interval.Bool
}

// CircleRightOf finds the center of a circle of radius r passing through p
// and q, lying to the right of the directed segment p -> q.
func CircleRightOf(p, q Point, r interval.Interval) CircleResult {
	lc := CenterOf(p, q)
	ellSq := SquaredDistance(p, q)
	musq := r.Square().Div(ellSq).Sub(interval.New(0.25, 0.25))
	if musq.UB() < 0.0 {
		return CircleResult{
			Center: Point{X: interval.Undefined(), Y: interval.Undefined()},
			Exists: interval.Never(),
		}
	}
	exists := interval.NewBool(musq.LB() >= 0.0, true)
	musq = musq.RestrictLB(0.0)
	cwrotDx := q.Y.Sub(p.Y)
	cwrotDy := p.X.Sub(q.X)
	mu := musq.Sqrt()
	cx := lc.X.Add(mu.Mul(cwrotDx))
	cy := lc.Y.Add(mu.Mul(cwrotDy))
	return CircleResult{Center: Point{X: cx, Y: cy}, Exists: exists}
}

// IntersectionResult is the outcome of LineCircleIntersection: the two
// candidate intersection points (undefined if no intersection is
// possible) and a three-valued existence flag.
type IntersectionResult struct {
	FirstOnLine, SecondOnLine Point
	Exists                    interval.Bool
}

func undefinedPoint() Point {
	return Point{X: interval.Undefined(), Y: interval.Undefined()}
}

// LineCircleIntersection finds where the line through anchor in direction
// orientation intersects circle, ported from the algebraic derivation in
// the original's line_circle_intersection (solving the quadratic for the
// line parameter mu directly rather than via a generic quadratic-formula
// helper).
func LineCircleIntersection(anchor, orientation Point, circle Circle) IntersectionResult {
	result := IntersectionResult{
		FirstOnLine:  undefinedPoint(),
		SecondOnLine: undefinedPoint(),
		Exists:       interval.Never(),
	}

	ax, ay := anchor.X, anchor.Y
	dx, dy := orientation.X, orientation.Y
	cx, cy, r := circle.Center.X, circle.Center.Y, circle.Radius

	x0 := dx.Square()
	x1 := dy.Square()
	orCheck := x0.Add(x1)
	orExists := orCheck.Gt(interval.Point(0))
	if !orExists.IsPossibly() {
		result.Exists = interval.NewBool(false, true)
		return result
	}

	x2 := interval.Point(1.0).Div(orCheck)
	if !x2.DefinitelyDefined() {
		x2 = interval.New(0.0, math.Inf(1))
	}

	x3 := ay.Mul(dy)
	x4 := ax.Mul(dx)
	x5 := interval.Point(2.0).Mul(x4)
	x6 := cy.Mul(dy)
	x7 := cx.Mul(dx)
	x8 := interval.Point(2.0).Mul(x7)
	x9 := r.Square()

	two := interval.Point(2.0)
	x10sq := ax.Square().Neg().Mul(x1).
		Add(two.Mul(ax).Mul(cx).Mul(x1)).
		Sub(ay.Square().Mul(x0)).
		Add(two.Mul(ay).Mul(cy).Mul(x0)).
		Sub(cx.Square().Mul(x1)).
		Sub(cy.Square().Mul(x0)).
		Add(x0.Mul(x9)).
		Add(x1.Mul(x9)).
		Add(x3.Mul(x5)).
		Sub(x3.Mul(x8)).
		Sub(x5.Mul(x6)).
		Add(x6.Mul(x8))

	x10sqNonneg := x10sq.Ge(interval.Point(0))
	if !x10sqNonneg.IsPossibly() {
		return result
	}
	x10sq = x10sq.RestrictLB(0.0)
	x10 := x10sq.Sqrt()
	x11 := x3.Neg().Sub(x4).Add(x6).Add(x7)

	result.Exists = orExists.And(x10sqNonneg)
	muFirst := x2.Mul(x11.Sub(x10))
	muSecond := x2.Mul(x10.Add(x11))
	result.FirstOnLine = Point{X: ax.Add(muFirst.Mul(dx)), Y: ay.Add(muFirst.Mul(dy))}
	result.SecondOnLine = Point{X: ax.Add(muSecond.Mul(dx)), Y: ay.Add(muSecond.Mul(dy))}
	return result
}
