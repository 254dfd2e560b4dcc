package contour

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Vec(3.0, 4.0), Pt(4.0, 6.0).Sub(Pt(1.0, 2.0)))
	diff(t, Pt(4.0, 6.0), Pt(1.0, 2.0).Translate(Vec(3.0, 4.0)))
	diff(t, Pt(2.0, 3.0), Pt(1.0, 2.0).Midpoint(Pt(3.0, 4.0)))
	diff(t, Pt(1.5, 2.5), Pt(1.0, 2.0).Lerp(Pt(2.0, 3.0), 0.5))
}

func TestPointDistance(t *testing.T) {
	p := Pt(0.0, 0.0)
	q := Pt(3.0, 4.0)
	if d := p.Distance(q); d != 5.0 {
		t.Errorf("got distance %v, want %v", d, 5.0)
	}
	if d := p.DistanceSquared(q); d != 25.0 {
		t.Errorf("got squared distance %v, want %v", d, 25.0)
	}
}

func TestPointIsNaN(t *testing.T) {
	if Pt(0.0, 1.0).IsNaN() {
		t.Error("point is NaN but shouldn't be")
	}
	if !Pt(0.0, math.NaN()).IsNaN() {
		t.Error("point isn't NaN but should be")
	}
	if !Pt(math.Inf(1), 0.0).IsInf() {
		t.Error("point isn't infinite but should be")
	}
}
