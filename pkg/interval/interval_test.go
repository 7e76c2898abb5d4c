package interval

import (
	"math"
	"testing"
)

func TestAddEnclosesSum(t *testing.T) {
	x := New(1.0, 2.0)
	y := New(3.0, 4.0)
	r := x.Add(y)
	if r.LB() > 4.0 || r.UB() < 6.0 {
		t.Fatalf("Add(%v,%v) = %v does not enclose [4,6]", x, y, r)
	}
}

func TestSubEnclosesDifference(t *testing.T) {
	x := New(5.0, 10.0)
	y := New(1.0, 2.0)
	r := x.Sub(y)
	if r.LB() > 3.0 || r.UB() < 9.0 {
		t.Fatalf("Sub(%v,%v) = %v does not enclose [3,9]", x, y, r)
	}
}

func TestMulStraddlingZero(t *testing.T) {
	x := New(-2.0, 3.0)
	y := New(-1.0, 4.0)
	r := x.Mul(y)
	// true range of products is [-8, 12]
	if r.LB() > -8.0 || r.UB() < 12.0 {
		t.Fatalf("Mul(%v,%v) = %v does not enclose [-8,12]", x, y, r)
	}
}

func TestMulZeroTimesInfinityAbsorbs(t *testing.T) {
	x := Point(0)
	y := newRaw(math.Inf(-1), math.Inf(1))
	r := x.Mul(y)
	if r.PossiblyUndefined() {
		t.Fatalf("0 * [-inf,inf] should be absorbed to a defined interval, got %v", r)
	}
}

func TestDivByIntervalContainingZeroIsUndefined(t *testing.T) {
	x := New(1.0, 2.0)
	y := New(-1.0, 1.0)
	r := x.Div(y)
	if !r.PossiblyUndefined() {
		t.Fatalf("Div by interval containing 0 should be undefined, got %v", r)
	}
}

func TestDivWithInfinities(t *testing.T) {
	x := New(2.0, 4.0)
	y := newRaw(1.0, math.Inf(1))
	r := x.Div(y)
	if r.PossiblyUndefined() {
		t.Fatalf("Div(%v,%v) should be defined, got undefined", x, y)
	}
	if r.LB() > 0 || r.UB() < 4.0 {
		t.Fatalf("Div(%v,%v) = %v does not enclose [0,4]", x, y, r)
	}
}

func TestSqrtOfNegativeIsUndefined(t *testing.T) {
	x := New(-4.0, -1.0)
	r := x.Sqrt()
	if !r.PossiblyUndefined() {
		t.Fatalf("Sqrt of strictly negative interval should be undefined, got %v", r)
	}
}

func TestSqrtStraddlingZeroIsUndefined(t *testing.T) {
	x := New(-1.0, 4.0)
	r := x.Sqrt()
	if !r.PossiblyUndefined() {
		t.Fatalf("Sqrt(%v) should be undefined (lb < 0, no auto-clamping), got %v", x, r)
	}
}

func TestSqrtAfterExplicitRestrictLB(t *testing.T) {
	x := New(-1.0, 4.0).RestrictLB(0.0)
	r := x.Sqrt()
	if r.PossiblyUndefined() {
		t.Fatalf("Sqrt(%v) after RestrictLB(0.0) should be defined, got undefined", x)
	}
	if r.LB() > 0 || r.UB() < 2.0 {
		t.Fatalf("Sqrt(%v) = %v does not enclose [0,2]", x, r)
	}
}

func TestPowEvenStraddlingZero(t *testing.T) {
	x := New(-3.0, 2.0)
	r := x.Pow(2)
	if r.LB() > 0 || r.UB() < 9.0 {
		t.Fatalf("Pow(%v,2) = %v does not enclose [0,9]", x, r)
	}
}

func TestPowOddPreservesSign(t *testing.T) {
	x := New(-2.0, 3.0)
	r := x.Pow(3)
	if r.LB() > -8.0 || r.UB() < 27.0 {
		t.Fatalf("Pow(%v,3) = %v does not enclose [-8,27]", x, r)
	}
}

func TestJoinAndIntersection(t *testing.T) {
	x := New(0.0, 2.0)
	y := New(1.0, 3.0)
	j := Join(x, y)
	if j.LB() != 0.0 || j.UB() != 3.0 {
		t.Fatalf("Join(%v,%v) = %v, want [0,3]", x, y, j)
	}
	i := Intersection(x, y)
	if i.LB() != 1.0 || i.UB() != 2.0 {
		t.Fatalf("Intersection(%v,%v) = %v, want [1,2]", x, y, i)
	}
	disjoint := Intersection(New(0, 1), New(2, 3))
	if !disjoint.PossiblyUndefined() {
		t.Fatalf("Intersection of disjoint intervals should be undefined, got %v", disjoint)
	}
}

func TestComparisons(t *testing.T) {
	a := New(0.0, 1.0)
	b := New(2.0, 3.0)
	if !a.Lt(b).IsDefinitely() {
		t.Fatalf("[0,1] < [2,3] should be definitely true")
	}
	c := New(0.5, 2.5)
	lt := a.Lt(c)
	if lt.IsDefinitely() || !lt.IsPossibly() {
		t.Fatalf("[0,1] < [0.5,2.5] should be indeterminate, got %v", lt)
	}
}

func TestRestrictBounds(t *testing.T) {
	x := New(0.0, 10.0)
	r := x.RestrictLB(5.0)
	if r.LB() != 5.0 || r.UB() != 10.0 {
		t.Fatalf("RestrictLB(5) on %v = %v, want [5,10]", x, r)
	}
	empty := x.RestrictLB(20.0)
	if !empty.PossiblyUndefined() {
		t.Fatalf("RestrictLB beyond current UB should be undefined, got %v", empty)
	}
}

func TestFromInt64Large(t *testing.T) {
	r := FromInt64(1 << 60)
	if r.LB() > float64(int64(1)<<60) || r.UB() < float64(int64(1)<<60) {
		t.Fatalf("FromInt64(2^60) = %v does not enclose 2^60", r)
	}
}
