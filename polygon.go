package contour

// Polygon is a closed contour, stored as its vertices in order. The
// closing edge from the last vertex back to the first is implicit.
type Polygon []Point

// Segment returns the i'th edge of the polygon, from vertex i to vertex
// i+1, where the edge starting at the last vertex closes the polygon.
func (p Polygon) Segment(i int) Line {
	return Line{p[i], p[(i+1)%len(p)]}
}

// Length returns the perimeter of the polygon, including the implicit
// closing edge.
func (p Polygon) Length() float64 {
	var length float64
	for i := range p {
		length += p.Segment(i).Length()
	}
	return length
}

// Area returns the signed area of the polygon.
//
// The convention for positive area is that y increases when x is
// positive. Thus, it is clockwise when down is increasing y (the usual
// convention for graphics), and anticlockwise when up is increasing y
// (the usual convention for math).
func (p Polygon) Area() float64 {
	var area float64
	for i := range p {
		seg := p.Segment(i)
		area += Vec2(seg.P0).Cross(Vec2(seg.P1))
	}
	return area * 0.5
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the
// polygon.
func (p Polygon) BoundingBox() Rect {
	return boundingBox(p)
}

// ClosestPoint returns the point on the polygon's boundary nearest to
// the query point.
func (p Polygon) ClosestPoint(q Point) PolygonPoint {
	loc, _ := closestOn(p, 0, q)
	return PolygonPoint{Seg: loc.seg, T: loc.t, Pos: loc.pos}
}

// PolygonPoint is a point on a polygon's boundary: the index of the
// segment it lies on, the fraction along that segment, and the resolved
// position. It is a position token, not a pointer; it stays valid for
// as long as the polygon's vertices are unchanged and must not outlive
// them.
type PolygonPoint struct {
	Seg int
	T   float64
	Pos Point
}
