package shape

import "shapelab/internal/geom"

// PathKind discriminates the renderable outline variants.
type PathKind int

const (
	// PathEmpty is produced by degenerate polygons (fewer than 2 vertices).
	PathEmpty PathKind = iota
	// PathEllipse is an ellipse inscribed in Bounds.
	PathEllipse
	// PathPolyline is a closed polyline through Points in order.
	PathPolyline
)

// Path is the render hand-off for a shape: a resolution-independent outline
// in the shape's own coordinate space. Rendering collaborators decide how to
// rasterize it; the core makes no further guarantee about the format.
type Path struct {
	Kind   PathKind
	Bounds geom.Rect    // ellipse bounds, set when Kind is PathEllipse
	Points []geom.Point // vertices in order, set when Kind is PathPolyline
}

// Path returns the shape's outline. A circle yields an ellipse inscribed in
// its bounding box; a polygon yields a closed polyline through its vertices.
// Polygons with fewer than 2 vertices degenerate to an empty path rather
// than crashing.
func (s *Shape) Path() Path {
	if s.kind == KindCircle {
		return Path{Kind: PathEllipse, Bounds: s.BoundingBox()}
	}
	if len(s.vertices) < 2 {
		return Path{Kind: PathEmpty}
	}
	pts := make([]geom.Point, len(s.vertices))
	copy(pts, s.vertices)
	return Path{Kind: PathPolyline, Points: pts}
}
