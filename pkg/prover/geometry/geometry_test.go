package geometry_test

import (
	"testing"

	"github.com/gitrdm/ivarpgo/pkg/interval"
	"github.com/gitrdm/ivarpgo/pkg/prover/geometry"
)

func pt(x, y float64) geometry.Point {
	return geometry.Point{X: interval.Point(x), Y: interval.Point(y)}
}

func TestSquaredDistance(t *testing.T) {
	d := geometry.SquaredDistance(pt(0, 0), pt(3, 4))
	if d.LB() > 25.0 || d.UB() < 25.0 {
		t.Fatalf("SquaredDistance((0,0),(3,4)) = %v, want enclosure of 25", d)
	}
}

func TestCenterOf(t *testing.T) {
	c := geometry.CenterOf(pt(0, 0), pt(2, 4))
	if c.X.LB() > 1.0 || c.X.UB() < 1.0 || c.Y.LB() > 2.0 || c.Y.UB() < 2.0 {
		t.Fatalf("CenterOf((0,0),(2,4)) = (%v,%v), want (1,2)", c.X, c.Y)
	}
}

func TestCircleRightOfExists(t *testing.T) {
	p := pt(0, 0)
	q := pt(2, 0)
	r := interval.Point(2)
	res := geometry.CircleRightOf(p, q, r)
	if !res.Exists.IsPossibly() {
		t.Fatalf("expected a circle of radius 2 to exist for segment of length 2")
	}
}

func TestCircleRightOfTooSmallRadius(t *testing.T) {
	p := pt(0, 0)
	q := pt(10, 0)
	r := interval.Point(1)
	res := geometry.CircleRightOf(p, q, r)
	if res.Exists.IsPossibly() {
		t.Fatalf("a circle of radius 1 cannot pass through points 10 apart")
	}
}
