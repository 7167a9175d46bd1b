// Package shape implements the collision core: an immutable 2D shape value
// that is either a circle or a convex polygon, its rigid transforms, its
// axis-aligned bounding box, and exact pairwise intersection tests.
//
// Shapes are produced by the constructors and never mutated; Moved and
// Rotated return fresh values. Polygon vertices must be supplied in clockwise
// order (screen convention, y grows downward). Convexity is a caller
// obligation and is not enforced.
package shape

import (
	"math"
	"sync"

	"shapelab/internal/geom"
)

// Kind discriminates the shape variants. The set is closed: every consuming
// algorithm switches exhaustively over it.
type Kind int

const (
	// KindCircle is a circle described by center and radius.
	KindCircle Kind = iota
	// KindPolygon is a convex polygon described by clockwise vertices.
	KindPolygon
)

// vertexEqualityEpsilon is the per-coordinate tolerance used when comparing
// polygon vertices. It absorbs the floating-point error accumulated by
// repeated rotations without being mistaken for exact equality.
const vertexEqualityEpsilon = 1e-5

// Shape is an immutable 2D shape. The zero value is not usable; construct
// shapes with NewCircle, NewRectangle, NewRectangleFromRect or NewPolygon.
//
// Shape values are handed around by pointer so the memoized bounding box is
// computed at most once per instance, which matters when collision queries
// run many times per simulation tick.
type Shape struct {
	kind Kind

	// Circle variant.
	center geom.Point
	radius float64

	// Polygon variant.
	vertices []geom.Point
	// rectangular marks polygons produced by a rectangle constructor or by
	// transforming such a polygon. It is propagated, never recomputed from
	// geometry, and enables the axis-aligned fast path and the quad SAT test.
	rectangular bool
	// rotation accumulates additively across Rotated calls. It is only
	// meaningful on rectangular polygons, as a fast-path hint.
	rotation float64

	bboxOnce sync.Once
	bbox     geom.Rect
}

// NewCircle creates a circle shape. Radius must be non-negative.
func NewCircle(center geom.Point, radius float64) *Shape {
	return &Shape{
		kind:   KindCircle,
		center: center,
		radius: radius,
	}
}

// NewRectangle creates an axis-aligned rectangular polygon. Vertices are
// emitted clockwise starting from the top-left corner.
func NewRectangle(x, y, width, height float64) *Shape {
	return &Shape{
		kind: KindPolygon,
		vertices: []geom.Point{
			{X: x, Y: y},
			{X: x + width, Y: y},
			{X: x + width, Y: y + height},
			{X: x, Y: y + height},
		},
		rectangular: true,
	}
}

// NewRectangleFromRect creates an axis-aligned rectangular polygon covering
// the given rectangle.
func NewRectangleFromRect(r geom.Rect) *Shape {
	return NewRectangle(r.X, r.Y, r.Width, r.Height)
}

// NewPolygon creates a polygon from caller-supplied clockwise vertices.
// The resulting shape is never rectangular, even if the vertices happen to
// form a rectangle.
func NewPolygon(vertices []geom.Point) *Shape {
	vs := make([]geom.Point, len(vertices))
	copy(vs, vertices)
	return &Shape{
		kind:     KindPolygon,
		vertices: vs,
	}
}

// Kind returns the variant tag.
func (s *Shape) Kind() Kind { return s.kind }

// Center returns the circle's center. Only meaningful for circles.
func (s *Shape) Center() geom.Point { return s.center }

// Radius returns the circle's radius. Only meaningful for circles.
func (s *Shape) Radius() float64 { return s.radius }

// Vertices returns the polygon's vertices in clockwise order. The returned
// slice is shared with the shape and must not be modified.
func (s *Shape) Vertices() []geom.Point { return s.vertices }

// Rectangular reports whether the polygon originated from a rectangle
// constructor (possibly rotated or moved since).
func (s *Shape) Rectangular() bool { return s.rectangular }

// Rotation returns the accumulated rotation in radians. It is a hint for
// axis-alignment detection, not ground truth about the geometry.
func (s *Shape) Rotation() float64 { return s.rotation }

// Moved returns a copy of the shape translated by (dx, dy). The variant tag,
// rectangular flag and accumulated rotation are preserved.
func (s *Shape) Moved(dx, dy float64) *Shape {
	switch s.kind {
	case KindCircle:
		return &Shape{
			kind:   KindCircle,
			center: geom.Point{X: s.center.X + dx, Y: s.center.Y + dy},
			radius: s.radius,
		}
	default:
		vs := make([]geom.Point, len(s.vertices))
		for i, v := range s.vertices {
			vs[i] = geom.Point{X: v.X + dx, Y: v.Y + dy}
		}
		return &Shape{
			kind:        KindPolygon,
			vertices:    vs,
			rectangular: s.rectangular,
			rotation:    s.rotation,
		}
	}
}

// Rotated returns the shape rotated by angle radians about the global
// coordinate origin, not the shape's own centroid. Callers wanting rotation
// about the shape's center must translate to the origin, rotate, and
// translate back themselves.
//
// A circle is returned unchanged (rotational symmetry). For a polygon, each
// vertex is mapped with the fixed convention
//
//	x' = y*sin(angle) - x*cos(angle)
//	y' = x*sin(angle) + y*cos(angle)
//
// This formula is load-bearing: callers compensate for it, so it must not be
// swapped for the textbook rotation matrix.
func (s *Shape) Rotated(angle float64) *Shape {
	if s.kind == KindCircle {
		return s
	}

	sin, cos := math.Sin(angle), math.Cos(angle)
	vs := make([]geom.Point, len(s.vertices))
	for i, v := range s.vertices {
		vs[i] = geom.Point{
			X: v.Y*sin - v.X*cos,
			Y: v.X*sin + v.Y*cos,
		}
	}
	return &Shape{
		kind:        KindPolygon,
		vertices:    vs,
		rectangular: s.rectangular,
		rotation:    s.rotation + angle,
	}
}

// BoundingBox returns the axis-aligned rectangle enclosing the shape.
// The box is computed once per shape instance and cached; concurrent callers
// are safe.
func (s *Shape) BoundingBox() geom.Rect {
	s.bboxOnce.Do(func() {
		s.bbox = s.computeBounds()
	})
	return s.bbox
}

func (s *Shape) computeBounds() geom.Rect {
	switch s.kind {
	case KindCircle:
		return geom.Rect{
			X:      s.center.X - s.radius,
			Y:      s.center.Y - s.radius,
			Width:  2 * s.radius,
			Height: 2 * s.radius,
		}
	default:
		if len(s.vertices) == 0 {
			return geom.Rect{}
		}
		minX, maxX := s.vertices[0].X, s.vertices[0].X
		minY, maxY := s.vertices[0].Y, s.vertices[0].Y
		for _, v := range s.vertices[1:] {
			minX = math.Min(minX, v.X)
			maxX = math.Max(maxX, v.X)
			minY = math.Min(minY, v.Y)
			maxY = math.Max(maxY, v.Y)
		}
		return geom.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
	}
}

// Equal reports whether two shapes render the same geometry. Shapes of
// different variants are never equal. Circles compare exactly; polygons
// compare vertex by vertex within vertexEqualityEpsilon per coordinate, so a
// shape survives a rotate/unrotate round trip. The rectangular flag and
// accumulated rotation are deliberately not compared.
func (s *Shape) Equal(other *Shape) bool {
	if s.kind != other.kind {
		return false
	}
	if s.kind == KindCircle {
		return s.center == other.center && s.radius == other.radius
	}
	if len(s.vertices) != len(other.vertices) {
		return false
	}
	for i, v := range s.vertices {
		w := other.vertices[i]
		if math.Abs(v.X-w.X) > vertexEqualityEpsilon || math.Abs(v.Y-w.Y) > vertexEqualityEpsilon {
			return false
		}
	}
	return true
}
