// Package geom provides the floating-point primitives the collision core is
// built on. It contains no external dependencies (especially no Bubble Tea)
// to keep shape math pure and testable.
package geom

import "math"

// Point is a position in 2D space. The coordinate system is screen-style:
// y grows downward.
type Point struct {
	X, Y float64
}

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point displaced by the given vector.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// To returns the displacement vector from p to q.
func (p Point) To(q Point) Vector {
	return Vector{DX: q.X - p.X, DY: q.Y - p.Y}
}

// Vector is a displacement in 2D space.
type Vector struct {
	DX, DY float64
}

// Dot returns the dot product with another vector.
func (v Vector) Dot(w Vector) float64 {
	return v.DX*w.DX + v.DY*w.DY
}

// LengthSquared returns the squared length of the vector.
// Prefer this over Length when comparing distances.
func (v Vector) LengthSquared() float64 {
	return v.DX*v.DX + v.DY*v.DY
}

// Length returns the length of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Neg returns the vector pointing the opposite way.
func (v Vector) Neg() Vector {
	return Vector{DX: -v.DX, DY: -v.DY}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// Width and Height must be non-negative.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// MinX returns the x-coordinate of the left edge.
func (r Rect) MinX() float64 { return r.X }

// MaxX returns the x-coordinate of the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MinY returns the y-coordinate of the top edge.
func (r Rect) MinY() float64 { return r.Y }

// MaxY returns the y-coordinate of the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Intersects reports whether this rectangle overlaps another.
// Boundaries are inclusive: rectangles that merely touch count as
// intersecting, which keeps the axis-aligned fast path consistent with the
// exact SAT test for touching quads.
func (r Rect) Intersects(other Rect) bool {
	if r.MinX() > other.MaxX() || other.MinX() > r.MaxX() {
		return false
	}
	if r.MinY() > other.MaxY() || other.MinY() > r.MaxY() {
		return false
	}
	return true
}
