package interval

import "testing"

func TestSinAtZero(t *testing.T) {
	r := Sin(Point(0))
	if r.LB() > 0 || r.UB() < 0 {
		t.Fatalf("Sin(0) = %v does not enclose 0", r)
	}
}

func TestSinFullPeriodIsFullRange(t *testing.T) {
	pi := Pi()
	full := New(0, 2*pi.UB())
	r := Sin(full)
	if r.LB() > -1 || r.UB() < 1 {
		t.Fatalf("Sin over a full period should enclose [-1,1], got %v", r)
	}
}

func TestCosAtZero(t *testing.T) {
	r := Cos(Point(0))
	if r.LB() > 1 || r.UB() < 1 {
		t.Fatalf("Cos(0) = %v does not enclose 1", r)
	}
}

func TestTanWithinBranchDefined(t *testing.T) {
	r := Tan(New(-0.5, 0.5))
	if r.PossiblyUndefined() {
		t.Fatalf("Tan(-0.5,0.5) should be defined, got undefined")
	}
}

func TestTanOutsideBranchUndefined(t *testing.T) {
	ph := PiHalf()
	r := Tan(New(0, ph.UB()+1))
	if !r.PossiblyUndefined() {
		t.Fatalf("Tan crossing pi/2 should be undefined, got %v", r)
	}
}
