package contour

// spliceAlongBridge cuts the two contours connected by the bridge open
// at the bridge's four endpoints and stitches them into a single closed
// contour: along the destination contour from a.to around to b.from,
// across the bridge, along the source contour from b.to around to
// a.from, and across the bridge again back to the start. The short arcs
// between the two cut points on each contour are dropped; everything
// else of both contours survives.
//
// This is surgery on vertex order, not a boolean operation: it keeps
// the winding sense of the walked stretches and introduces no duplicate
// vertices at the cut points.
func spliceAlongBridge[V vertex[V], C ~[]V](pool []C, br bridge) C {
	var result C
	result = appendSegment(result, pool, br.a.to, br.b.from)
	result = appendSegment(result, pool, br.b.to, br.a.from)
	if len(result) > 1 && coincident(result[0].Pos(), result[len(result)-1].Pos()) {
		result = result[:len(result)-1]
	}
	return result
}

// appendSegment appends the stretch of start's contour between start
// and end to out: the vertex at start, the original vertices in
// between, and the vertex at end. start and end must be on the same
// contour. The short arc from start to end is the one the bridge
// replaces, so the walk runs the other way around, keeping the rest of
// the contour. Vertices coinciding with the previously appended one are
// dropped.
func appendSegment[V vertex[V], C ~[]V](out C, pool []C, start, end location) C {
	p := pool[start.poly]
	n := len(p)
	dir := -contourDirection(p, start, end)
	out = appendVertex(out, vertexAt(p, start))
	var count, i int
	if dir > 0 {
		count = (end.seg - start.seg + n) % n
		i = (start.seg + 1) % n
	} else {
		count = (start.seg - end.seg + n) % n
		i = start.seg
	}
	// Both cut points on one segment, with the walk leading away from
	// end: the walk goes a full lap around the contour.
	if count == 0 && ((dir > 0 && end.t < start.t) || (dir < 0 && end.t > start.t)) {
		count = n
	}
	for k := 0; k < count; k++ {
		out = appendVertex(out, p[i])
		i = (i + dir + n) % n
	}
	return appendVertex(out, vertexAt(p, end))
}

// appendVertex appends v to out, unless it coincides with the vertex
// appended last.
func appendVertex[V vertex[V], C ~[]V](out C, v V) C {
	if len(out) > 0 && coincident(out[len(out)-1].Pos(), v.Pos()) {
		return out
	}
	return append(out, v)
}

// Positions closer together than this are considered the same vertex.
const coincidenceEpsilon = 1e-9

func coincident(a, b Point) bool {
	return a.DistanceSquared(b) < coincidenceEpsilon*coincidenceEpsilon
}

// contourDirection reports whether the short way around the contour
// from one location to another follows the stored vertex order (+1) or
// runs against it (-1), by comparing the forward arc between them with
// half the contour's perimeter.
//
// This is only reliable for locations that are close together along the
// contour; for locations separated by nearly half the perimeter the
// choice is essentially arbitrary. The connector only ever asks about
// the cut points of a bridge, which sit within a line width of each
// other.
func contourDirection[V vertex[V], C ~[]V](p C, from, to location) int {
	n := len(p)
	var forward float64
	if from.seg == to.seg && from.t <= to.t {
		forward = from.pos.Distance(to.pos)
	} else {
		forward = from.pos.Distance(p[(from.seg+1)%n].Pos())
		for i := (from.seg + 1) % n; i != to.seg; i = (i + 1) % n {
			forward += segmentOf(p, i).Length()
		}
		forward += p[to.seg].Pos().Distance(to.pos)
	}
	var total float64
	for i := range p {
		total += segmentOf(p, i).Length()
	}
	if forward <= total/2 {
		return 1
	}
	return -1
}
