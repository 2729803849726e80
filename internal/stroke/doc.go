// Package stroke converts stroked polylines into fill polygons.
//
// A stroke is expanded into a union of convex pieces:
//   - one quadrilateral per segment, offset by half the width on each side
//   - one join piece per interior vertex (every vertex of a closed ring)
//   - one cap piece at each end of an open polyline
//
// All pieces are wound the same way, so a non-zero (or clamped
// absolute-coverage) rasterizer renders their union without seams and
// without the holes opposite windings would cut.
//
// # Line Caps
//
//   - CapButt: flat cap ending exactly at the endpoint
//   - CapRound: semicircular cap with radius = width/2
//   - CapSquare: square cap extending width/2 beyond the endpoint
//
// # Line Joins
//
//   - JoinMiter: sharp corner, falling back to bevel past the miter limit
//   - JoinRound: circular piece at the corner
//   - JoinBevel: straight line across the corner
package stroke
