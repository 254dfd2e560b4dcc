package contour

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func square(x, y, size float64) Polygon {
	return Polygon{
		Pt(x, y),
		Pt(x+size, y),
		Pt(x+size, y+size),
		Pt(x, y+size),
	}
}

func TestPolygonLength(t *testing.T) {
	p := square(0, 0, 10)
	if l := p.Length(); l != 40.0 {
		t.Errorf("got perimeter %v, want %v", l, 40.0)
	}
}

func TestPolygonArea(t *testing.T) {
	p := square(0, 0, 10)
	if a := p.Area(); a != 100.0 {
		t.Errorf("got area %v, want %v", a, 100.0)
	}

	// Reversing the vertex order flips the sign.
	rev := Polygon{p[3], p[2], p[1], p[0]}
	if a := rev.Area(); a != -100.0 {
		t.Errorf("got area %v, want %v", a, -100.0)
	}
}

func TestPolygonBoundingBox(t *testing.T) {
	p := Polygon{Pt(3, -1), Pt(7, 2), Pt(0, 5)}
	diff(t, Rect{0, -1, 7, 5}, p.BoundingBox())
}

func TestPolygonSegment(t *testing.T) {
	p := square(0, 0, 10)
	diff(t, Line{Pt(0, 0), Pt(10, 0)}, p.Segment(0))
	// The last segment closes the polygon.
	diff(t, Line{Pt(0, 10), Pt(0, 0)}, p.Segment(3))
}

func TestPolygonClosestPoint(t *testing.T) {
	p := square(0, 0, 10)

	got := p.ClosestPoint(Pt(15, 5))
	want := PolygonPoint{Seg: 1, T: 0.5, Pos: Pt(10, 5)}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-9))

	got = p.ClosestPoint(Pt(5, -3))
	want = PolygonPoint{Seg: 0, T: 0.5, Pos: Pt(5, 0)}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-9))

	// A query beyond a corner snaps to the corner, located at the end
	// of the earlier of the two segments meeting there.
	got = p.ClosestPoint(Pt(12, 12))
	want = PolygonPoint{Seg: 1, T: 1, Pos: Pt(10, 10)}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-9))
}

func TestContourDirection(t *testing.T) {
	p := square(0, 0, 10)

	f := func(from, to location, want int) {
		t.Helper()
		if got := contourDirection(p, from, to); got != want {
			t.Errorf("got direction %d, want %d", got, want)
		}
	}

	// Within one segment.
	f(location{seg: 1, t: 0.1, pos: Pt(10, 1)}, location{seg: 1, t: 0.3, pos: Pt(10, 3)}, 1)
	f(location{seg: 1, t: 0.3, pos: Pt(10, 3)}, location{seg: 1, t: 0.1, pos: Pt(10, 1)}, -1)

	// Across a vertex, in both directions.
	f(location{seg: 0, t: 0.9, pos: Pt(9, 0)}, location{seg: 1, t: 0.1, pos: Pt(10, 1)}, 1)
	f(location{seg: 1, t: 0.1, pos: Pt(10, 1)}, location{seg: 0, t: 0.9, pos: Pt(9, 0)}, -1)

	// Wrapping around the stored vertex order.
	f(location{seg: 3, t: 0.9, pos: Pt(0, 1)}, location{seg: 0, t: 0.1, pos: Pt(1, 0)}, 1)
}

func TestWalkToOffset(t *testing.T) {
	pool := []Polygon{square(0, 0, 10)}
	carrier := Line{Pt(20, 0), Pt(10, 0)}
	start := location{poly: 0, seg: 0, t: 1, pos: Pt(10, 0)}

	loc, ok := walkToOffset(pool, start, carrier, 2, 1)
	if !ok {
		t.Fatal("expected to find an offset point")
	}
	diff(t, Pt(10, 2), loc.pos, cmpopts.EquateApprox(0, 1e-9))

	loc, ok = walkToOffset(pool, start, carrier, 2, -1)
	if !ok {
		t.Fatal("expected to find an offset point")
	}
	diff(t, Pt(0, 2), loc.pos, cmpopts.EquateApprox(0, 1e-9))

	// An offset beyond the polygon's extent is never reached.
	if _, ok := walkToOffset(pool, start, carrier, 11, 1); ok {
		t.Error("expected no offset point beyond the polygon's extent")
	}
}
