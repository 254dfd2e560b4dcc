package contour

import "math"

// vertex describes the vertex types the connector can operate on:
// [Point] for plain polygons and [Junction] for variable-width paths.
// Lerp interpolates between a vertex and the next one along a contour,
// carrying any per-vertex payload (such as a junction's width) along.
type vertex[V any] interface {
	Pos() Point
	Lerp(o V, t float64) V
}

// location is a point on one of the contours of a search pool: a handle
// to the contour, the index of the segment the point lies on, the
// fraction along that segment, and the resolved position. Locations
// hold handles rather than pointers so that the pool can reorder and
// shrink while locations remain valid.
type location struct {
	poly int
	seg  int
	t    float64
	pos  Point
}

// connection is a single segment connecting two different contours of a
// pool. Two connections form a bridge.
type connection struct {
	from location
	to   location
}

// length2 returns the squared length of the connection.
//
// The squared length is faster to compute than the real length. Compare
// it only with squared distances.
func (c connection) length2() float64 {
	return c.from.pos.DistanceSquared(c.to.pos)
}

func (c connection) line() Line {
	return Line{c.from.pos, c.to.pos}
}

// bridge connects two contours twice so that both can be cut open
// between the connections and reassembled into a single contour.
//
//	-----o-----o-----
//	     ^     ^
//	   a ^     ^ b
//	     ^     ^
//	-----o-----o-----
//
// a runs from the source contour to the destination contour, b runs
// back from the destination to the source.
type bridge struct {
	a connection
	b connection
}

// segmentOf returns the i'th edge of a contour, with the edge starting
// at the last vertex closing the contour.
func segmentOf[V vertex[V], C ~[]V](p C, i int) Line {
	return Line{p[i].Pos(), p[(i+1)%len(p)].Pos()}
}

// boundingBox returns the smallest axis-aligned rectangle enclosing the
// contour's vertices.
func boundingBox[V vertex[V], C ~[]V](p C) Rect {
	bbox := NewRectFromPoints(p[0].Pos(), p[0].Pos())
	for _, v := range p[1:] {
		bbox = bbox.UnionPoint(v.Pos())
	}
	return bbox
}

// closestOn returns the location on contour p (pool handle pi) nearest
// to the query point, along with the squared distance to it.
func closestOn[V vertex[V], C ~[]V](p C, pi int, q Point) (location, float64) {
	var best location
	bestDistSq := math.MaxFloat64
	for i := range p {
		seg := segmentOf(p, i)
		distSq, t := seg.Nearest(q)
		if distSq < bestDistSq {
			bestDistSq = distSq
			best = location{poly: pi, seg: i, t: t, pos: seg.Eval(t)}
		}
	}
	return best, bestDistSq
}

// vertexAt resolves a location to a concrete vertex, interpolating
// between the two vertices of the segment it lies on. For junctions
// this interpolates the stroke width as well.
func vertexAt[V vertex[V], C ~[]V](p C, loc location) V {
	return p[loc.seg].Lerp(p[(loc.seg+1)%len(p)], loc.t)
}
