package shape

import (
	"math"

	"shapelab/internal/geom"
)

// axisAlignedTolerance is how far (in radians) a rectangular polygon's
// accumulated rotation may drift from a multiple of pi/2 and still take the
// O(1) bounding-box fast path. Roughly 1% angular tolerance, about a 1-unit
// positional error on a 100-unit side: a deliberate precision/performance
// trade-off, since unrotated rectangles dominate real scenes.
const axisAlignedTolerance = 0.01

// Intersects reports whether two shapes overlap. The test is symmetric:
// a.Intersects(b) equals b.Intersects(a). Boundaries are inclusive
// throughout: tangent circles and touching rectangles intersect.
//
// Exact tests exist for circle-circle, rectangular-polygon-circle, and
// rectangular-rectangular pairs. Any pair involving a non-rectangular
// polygon is approximated by bounding-box overlap; this is a known,
// documented incompleteness, kept rather than silently upgraded to full
// convex-polygon SAT.
func (s *Shape) Intersects(other *Shape) bool {
	// Fast path: two still-axis-aligned rectangles reduce to box overlap.
	if s.isAxisAlignedRectangle() && other.isAxisAlignedRectangle() {
		return s.BoundingBox().Intersects(other.BoundingBox())
	}

	switch {
	case s.kind == KindCircle && other.kind == KindCircle:
		return circlesIntersect(s, other)
	case s.kind == KindCircle && other.kind == KindPolygon:
		if other.rectangular {
			return rectanglePolygonIntersectsCircle(other, s)
		}
	case s.kind == KindPolygon && other.kind == KindCircle:
		if s.rectangular {
			return rectanglePolygonIntersectsCircle(s, other)
		}
	case s.rectangular && other.rectangular:
		return quadrilateralsIntersectSAT(s, other)
	}

	// Remaining combinations involve a non-rectangular polygon: approximate.
	return s.BoundingBox().Intersects(other.BoundingBox())
}

// isAxisAlignedRectangle reports whether the shape is a rectangular polygon
// whose accumulated rotation is within tolerance of a multiple of pi/2.
func (s *Shape) isAxisAlignedRectangle() bool {
	if s.kind != KindPolygon || !s.rectangular {
		return false
	}
	return math.Abs(math.Remainder(s.rotation, math.Pi/2)) <= axisAlignedTolerance
}

// circlesIntersect is boundary-inclusive: tangent circles intersect.
func circlesIntersect(a, b *Shape) bool {
	distSq := a.center.To(b.center).LengthSquared()
	radiusSum := a.radius + b.radius
	return distSq <= radiusSum*radiusSum
}

// rectanglePolygonIntersectsCircle tests a rectangular polygon against a
// circle exactly. Three cases, in order:
//
//  1. The circle's center projects onto an edge segment and the
//     perpendicular distance to the edge line is within the radius.
//  2. The center is within the radius of an edge endpoint (the nearest point
//     on the polygon is a vertex, not an edge interior).
//  3. Neither edge test fires, so the shapes intersect only if the center
//     lies strictly inside the polygon.
func rectanglePolygonIntersectsCircle(poly, circle *Shape) bool {
	verts := poly.vertices
	n := len(verts)
	center := circle.center
	radius := circle.radius

	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%n]
		edge := a.To(b)
		toCenter := a.To(center)

		// Center projects onto the segment when both endpoint-to-center
		// vectors have a non-negative component along the edge and its
		// inverse respectively.
		if toCenter.Dot(edge) >= 0 && b.To(center).Dot(edge.Neg()) >= 0 {
			if distancePointToLine(a, b, center) <= radius {
				return true
			}
		}

		// Independently of projection, the nearest feature may be the
		// vertex itself.
		if toCenter.LengthSquared() <= radius*radius {
			return true
		}
	}

	return polygonContainsPoint(verts, center)
}

// distancePointToLine returns the perpendicular distance from p to the
// infinite line through a and b.
func distancePointToLine(a, b, p geom.Point) float64 {
	edge := a.To(b)
	toP := a.To(p)
	cross := edge.DX*toP.DY - edge.DY*toP.DX
	return math.Abs(cross) / edge.Length()
}

// polygonContainsPoint reports whether p lies strictly inside the clockwise
// polygon. For each edge the outward-facing normal (consistent with
// clockwise winding in y-down coordinates) is tested: a point on or outside
// any edge is not contained.
func polygonContainsPoint(verts []geom.Point, p geom.Point) bool {
	n := len(verts)
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%n]
		edge := a.To(b)
		normal := geom.Vector{DX: edge.DY, DY: -edge.DX}
		if a.To(p).Dot(normal) >= 0 {
			return false
		}
	}
	return true
}

// quadrilateralsIntersectSAT runs the separating-axis test for two
// rectangular polygons. The routine is deliberately restricted to
// quadrilaterals: the only producers of rectangular shapes are the rectangle
// constructors (always 4 vertices) and vertex-count-preserving transforms,
// so any other count signals a caller bug and fails fast.
func quadrilateralsIntersectSAT(a, b *Shape) bool {
	if len(a.vertices) != 4 || len(b.vertices) != 4 {
		panic("shape: SAT test requires rectangular polygons with exactly 4 vertices")
	}
	if hasSeparatingEdge(a.vertices, b.vertices) {
		return false
	}
	if hasSeparatingEdge(b.vertices, a.vertices) {
		return false
	}
	return true
}

// hasSeparatingEdge reports whether any edge of verts separates the two
// vertex sets: every vertex of others lies strictly in front of the edge's
// outward normal. Strict comparison keeps touching quads intersecting,
// matching the inclusive box test.
//
// The normal is oriented away from the previous vertex (with wraparound)
// rather than by a fixed winding rule: the rotation convention flips the
// winding of rotated polygons, so only the neighboring vertex reliably marks
// the inside.
func hasSeparatingEdge(verts, others []geom.Point) bool {
	n := len(verts)
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%n]
		prev := verts[(i+n-1)%n]
		edge := a.To(b)
		normal := geom.Vector{DX: edge.DY, DY: -edge.DX}
		if a.To(prev).Dot(normal) > 0 {
			normal = normal.Neg()
		}

		separates := true
		for _, w := range others {
			if a.To(w).Dot(normal) <= 0 {
				separates = false
				break
			}
		}
		if separates {
			return true
		}
	}
	return false
}
