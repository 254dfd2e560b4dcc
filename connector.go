package contour

import (
	"math"
	"slices"
)

// Connector connects polygons and variable-width paths together into
// fewer contours, by bridging contours that pass within a maximum
// distance of each other. See the package documentation for an overview
// of the algorithm.
//
// A Connector owns the contours added to it until [Connector.Connect]
// hands them back. It is not safe for concurrent use, but independent
// Connectors share no state and can run in parallel on independent
// layers.
type Connector struct {
	// The distance between the two segments that connect two contours.
	lineWidth float64
	// The maximal length of connecting segments. Should be larger than
	// lineWidth in order to accommodate curved contours.
	maxDist float64

	polygons []Polygon
	paths    []WidthPath

	bridges []Bridge
}

// Bridge is one applied connection between two contours: the two
// roughly parallel segments along which the contours were cut open and
// joined. A runs from the source contour to the destination, B runs
// back.
type Bridge struct {
	A Line
	B Line
}

// NewConnector returns a connector that joins contours with bridges of
// the given line width. Contours that can only be connected by bridges
// longer than maxDist are left unconnected.
func NewConnector(lineWidth, maxDist float64) *Connector {
	return &Connector{
		lineWidth: lineWidth,
		maxDist:   maxDist,
	}
}

// Add queues polygons to be connected by a future call to
// [Connector.Connect]. The polygons are copied; the caller's slices are
// not retained.
func (c *Connector) Add(polygons []Polygon) {
	for _, p := range polygons {
		c.polygons = append(c.polygons, slices.Clone(p))
	}
}

// AddPaths queues variable-width paths to be connected by a future call
// to [Connector.Connect]. Only paths that form closed loops will be
// connected to each other; open paths are passed through unmodified.
// The paths are copied; the caller's slices are not retained.
func (c *Connector) AddPaths(paths []WidthPath) {
	for _, p := range paths {
		c.paths = append(c.paths, slices.Clone(p))
	}
}

// Connect connects as many of the added contours together as possible
// and returns the results: the connected polygons and the connected
// variable-width paths. Polygons are never connected to variable-width
// paths, since the result could not be represented by either type
// alone.
//
// Connect drains the connector; afterwards new contours can be added
// and connected independently.
func (c *Connector) Connect() ([]Polygon, []WidthPath) {
	outPolygons := connectAll(c.polygons, c.lineWidth, c.maxDist, &c.bridges)
	c.polygons = nil

	// Only closed loops take part in the search. A loop's duplicated
	// closing junction is dropped on the way into the pool and restored
	// on the way out, so that the pool uniformly holds implicitly
	// closed contours.
	var pool []WidthPath
	var outPaths []WidthPath
	for _, p := range c.paths {
		if p.Closed() {
			pool = append(pool, p[:len(p)-1])
		} else {
			outPaths = append(outPaths, p)
		}
	}
	c.paths = nil
	for _, p := range connectAll(pool, c.lineWidth, c.maxDist, &c.bridges) {
		outPaths = append(outPaths, append(p, p[0]))
	}
	return outPolygons, outPaths
}

// Bridges returns the bridges applied during all calls to
// [Connector.Connect] so far. The returned slice is shared with the
// connector and must not be modified.
func (c *Connector) Bridges() []Bridge {
	return c.bridges
}

// connectAll greedily connects the contours of one pool.
//
// It repeatedly takes a contour from the pool and searches for a bridge
// to any of the others. If one is found the two contours are spliced
// and the result goes back into the pool, where it may be connected
// further. If none is found the contour is finished and moved to the
// output. Every iteration shrinks the pool by one, so the loop runs at
// most len(pool) times.
func connectAll[V vertex[V], C ~[]V](pool []C, lineWidth, maxDist float64, applied *[]Bridge) []C {
	out := make([]C, 0, len(pool))
	work := slices.Clone(pool)
	for len(work) > 0 {
		qi := len(work) - 1
		br, ok := findBridge(work, qi, lineWidth, maxDist)
		if !ok {
			out = append(out, work[qi])
			work = work[:qi]
			continue
		}
		merged := spliceAlongBridge(work, br)
		*applied = append(*applied, Bridge{A: br.a.line(), B: br.b.line()})
		// The merged contour replaces the query slot and stays pending;
		// the partner is always below qi, so qi survives the delete.
		work[qi] = merged
		pi := br.a.to.poly
		work = slices.Delete(work, pi, pi+1)
	}
	return out
}

// findBridge finds the cheapest bridge from the contour at qi to any
// other contour in the pool: the shortest connection between the query
// contour and the rest of the pool, paired with a second connection
// parallel to it at a line width away.
//
// If no parallel connection exists at the full line width, the second
// connection is retried at half the line width and the first connection
// is relocated to a full line width away from it, on the side of the
// originally found closest approach. That centers the bridge around the
// closest approach instead of anchoring it at one edge, which helps
// with tightly curved contours.
func findBridge[V vertex[V], C ~[]V](pool []C, qi int, lineWidth, maxDist float64) (bridge, bool) {
	first, ok := findConnection(pool, qi, maxDist)
	if !ok {
		return bridge{}, false
	}
	if second, ok := secondConnection(pool, first, lineWidth, maxDist, 0); ok {
		return bridge{a: first, b: second}, true
	}
	second, ok := secondConnection(pool, first, lineWidth/2, maxDist, 0)
	if !ok {
		return bridge{}, false
	}
	side := second.line().SignedDistance(first.from.pos)
	relocated, ok := secondConnection(pool, second, lineWidth, maxDist, side)
	if !ok {
		return bridge{}, false
	}
	return bridge{a: relocated, b: second}, true
}

// findConnection finds the shortest connection between the contour at
// qi and any other contour in the pool, measured from the query
// contour's vertices to the nearest point on each candidate. Candidates
// whose bounding box, inflated by maxDist, cannot reach the query
// contour are skipped without a distance computation.
func findConnection[V vertex[V], C ~[]V](pool []C, qi int, maxDist float64) (connection, bool) {
	q := pool[qi]
	qbb := boundingBox(q).Inflate(maxDist, maxDist)
	var best option[connection]
	bestDistSq := maxDist * maxDist
	for pi, p := range pool {
		if pi == qi {
			continue
		}
		if !qbb.Overlaps(boundingBox(p)) {
			continue
		}
		for vi, v := range q {
			loc, distSq := closestOn(p, pi, v.Pos())
			if distSq > bestDistSq {
				continue
			}
			if !best.isSet || distSq < bestDistSq {
				bestDistSq = distSq
				best.set(connection{
					from: location{poly: qi, seg: vi, t: 0, pos: v.Pos()},
					to:   loc,
				})
			}
		}
	}
	return best.value, best.isSet
}

// secondConnection finds a connection roughly parallel to first, at an
// orthogonal distance of width from it, running in the opposite
// direction.
//
// From both endpoints of first, walk along the endpoint's contour in
// both directions until the orthogonal offset from first's carrier line
// reaches width. Of the up to four points found this way, consider
// every pairing with one point on each contour whose points lie on the
// same side of the carrier line, and pick the pairing that forms the
// smallest bridge.
//
// A non-zero side restricts the result to pairs on the given side of
// the carrier line, matching the sign convention of
// [Line.SignedDistance].
func secondConnection[V vertex[V], C ~[]V](pool []C, first connection, width, maxDist float64, side float64) (connection, bool) {
	carrier := first.line()
	var fromCands, toCands []location
	for _, dir := range [2]int{1, -1} {
		if loc, ok := walkToOffset(pool, first.from, carrier, width, dir); ok {
			fromCands = append(fromCands, loc)
		}
		if loc, ok := walkToOffset(pool, first.to, carrier, width, dir); ok {
			toCands = append(toCands, loc)
		}
	}
	var best option[connection]
	bestDistSq := maxDist * maxDist
	for _, f := range fromCands {
		fs := carrier.SignedDistance(f.pos)
		if side != 0 && fs*side <= 0 {
			continue
		}
		for _, t := range toCands {
			ts := carrier.SignedDistance(t.pos)
			if fs*ts <= 0 {
				continue
			}
			distSq := f.pos.DistanceSquared(t.pos)
			if distSq > bestDistSq {
				continue
			}
			if !best.isSet || distSq < bestDistSq {
				bestDistSq = distSq
				// The second connection runs antiparallel to the
				// first, back from the destination contour to the
				// source.
				best.set(connection{from: t, to: f})
			}
		}
	}
	return best.value, best.isSet
}

// walkToOffset walks along start's contour, from start in the given
// direction over the stored vertex order, until the orthogonal distance
// from the carrier line reaches the wanted offset. The exact offset
// point is interpolated on the segment that crosses it. It reports
// failure if the walk completes a full lap without reaching the offset.
func walkToOffset[V vertex[V], C ~[]V](pool []C, start location, carrier Line, offset float64, dir int) (location, bool) {
	p := pool[start.poly]
	n := len(p)
	seg := start.seg
	t := start.t
	pos := start.pos
	prevOff := math.Abs(carrier.SignedDistance(pos))
	for k := 0; k < n+1; k++ {
		var next int
		if dir > 0 {
			next = (seg + 1) % n
		} else {
			next = seg
		}
		nextPos := p[next].Pos()
		nextOff := math.Abs(carrier.SignedDistance(nextPos))
		if nextOff >= offset && nextOff > prevOff {
			// The offset is crossed between pos and nextPos. Solve for
			// the crossing and convert it to a fraction of the full
			// segment.
			f := (offset - prevOff) / (nextOff - prevOff)
			var at float64
			if dir > 0 {
				at = t + f*(1-t)
			} else {
				at = t * (1 - f)
			}
			return location{
				poly: start.poly,
				seg:  seg,
				t:    at,
				pos:  segmentOf(p, seg).Eval(at),
			}, true
		}
		pos = nextPos
		prevOff = nextOff
		if dir > 0 {
			seg = next
			t = 0
		} else {
			seg = (seg - 1 + n) % n
			t = 1
		}
	}
	return location{}, false
}
