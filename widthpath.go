package contour

import "fmt"

// Junction is a single vertex of a variable-width path: a position
// together with the stroke width of the path at that position.
type Junction struct {
	P     Point
	Width float64
}

// Jct returns the junction at (x, y) with the given width.
func Jct(x, y, width float64) Junction {
	return Junction{P: Pt(x, y), Width: width}
}

func (j Junction) String() string {
	return fmt.Sprintf("(%g, %g)⨉%g", j.P.X, j.P.Y, j.Width)
}

// Pos returns the junction's position. It makes Junction satisfy the
// same vertex interface as [Point].
func (j Junction) Pos() Point {
	return j.P
}

// Lerp linearly interpolates between two junctions, interpolating both
// position and width.
func (j Junction) Lerp(o Junction, t float64) Junction {
	return Junction{
		P:     j.P.Lerp(o.P, t),
		Width: j.Width + t*(o.Width-j.Width),
	}
}

// WidthPath is a polyline in which every vertex carries its own stroke
// width, as opposed to a [Polygon]'s single implicit width.
//
// Unlike Polygon there is no implicit closing edge: a WidthPath is
// closed if and only if its first and last junctions coincide.
type WidthPath []Junction

// Closed reports whether the path forms a closed loop, that is, whether
// its first and last junctions share a position.
func (w WidthPath) Closed() bool {
	return len(w) > 2 && w[0].P == w[len(w)-1].P
}

// Length returns the total length of the path's segments.
func (w WidthPath) Length() float64 {
	var length float64
	for i := 1; i < len(w); i++ {
		length += w[i].P.Distance(w[i-1].P)
	}
	return length
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the
// path.
func (w WidthPath) BoundingBox() Rect {
	return boundingBox(w)
}
