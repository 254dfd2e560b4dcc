// Package contour connects disjoint closed 2D contours into as few
// continuous contours as possible, for use in toolpath generation for
// layered manufacturing.
//
// Fewer, longer contours mean fewer start/stop transitions per layer,
// which materially affects both output quality and production time. The
// package joins contours by inserting bridges: pairs of short parallel
// segments, roughly a line width apart, between two contours that pass
// close to each other.
//
//	                         /.
//	\                       /
//	 \                     /
//	  o-------+ . +-------o
//	          |   |        > bridge which connects the two contours
//	    o-----+ . +-----o
//	   /                 \
//	  /                   \
//
// Cutting both contours open between the bridge segments and stitching
// them back together along the bridge turns the two contours into one.
// Repeating the procedure connects many contours into a single
// continuous line.
//
// # Usage
//
// [Connector] is the entry point. Construct it with the nominal line
// width and the maximum bridge length, add the [Polygon] and
// [WidthPath] values to connect, then call [Connector.Connect]:
//
//	c := contour.NewConnector(lineWidth, maxDist)
//	c.Add(polygons)
//	c.AddPaths(paths)
//	outPolygons, outPaths := c.Connect()
//
// Plain polygons and variable-width paths are connected as two
// independent pools; the two kinds are never connected to each other,
// since that would force polygons to become partially variable-width.
// Of the variable-width paths, only those forming closed loops
// participate; open paths are passed through untouched.
//
// The search is a greedy heuristic: the cheapest connection available
// at each step wins, and the result depends on processing order. It
// makes no attempt at a globally optimal matching.
//
// The package also provides the small set of 2D primitives the
// connector is built on: [Point], [Vec2], [Line], [Rect], [Polygon]
// and [WidthPath].
package contour
