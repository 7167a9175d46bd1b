// Package scene provides the minimal collision-pipeline glue around the
// shape core: bodies that expose a current shape on demand, and a naive
// pairwise coordinator. There is deliberately no broad phase, spatial index
// or event dispatch here; scenes are small enough that O(n^2) pairing is the
// honest answer.
package scene

import (
	"fmt"

	"shapelab/internal/shape"
)

// Collider is the capability through which any object supplies its current
// shape for collision testing.
type Collider interface {
	CurrentShape() *shape.Shape
}

// Body is a named object in a scene. Bodies are mutable holders of an
// immutable shape value: transforms swap the held shape for a new one.
type Body struct {
	ID    string
	shape *shape.Shape
}

// NewBody creates a body holding the given shape.
func NewBody(id string, s *shape.Shape) *Body {
	return &Body{ID: id, shape: s}
}

// CurrentShape returns the body's shape.
func (b *Body) CurrentShape() *shape.Shape {
	return b.shape
}

// MoveBy translates the body's shape.
func (b *Body) MoveBy(dx, dy float64) {
	b.shape = b.shape.Moved(dx, dy)
}

// RotateBy rotates the body's shape in place: the shape core rotates about
// the global origin, so the body translates to the origin around its
// bounding-box center, rotates, and translates back.
func (b *Body) RotateBy(angle float64) {
	bb := b.shape.BoundingBox()
	cx := bb.X + bb.Width/2
	cy := bb.Y + bb.Height/2
	b.shape = b.shape.Moved(-cx, -cy).Rotated(angle).Moved(cx, cy)
}

var _ Collider = (*Body)(nil)

// Pair names two bodies found intersecting.
type Pair struct {
	A, B string
}

func (p Pair) String() string {
	return fmt.Sprintf("%s <-> %s", p.A, p.B)
}

// Scene is an ordered collection of bodies.
type Scene struct {
	Name   string
	Bodies []*Body
}

// New creates an empty scene.
func New(name string) *Scene {
	return &Scene{Name: name}
}

// Add appends a body and returns it for chaining.
func (sc *Scene) Add(b *Body) *Body {
	sc.Bodies = append(sc.Bodies, b)
	return b
}

// Body returns the body with the given id, or nil.
func (sc *Scene) Body(id string) *Body {
	for _, b := range sc.Bodies {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// CollidingPairs tests every unordered pair of bodies and returns the
// intersecting ones, in insertion order.
func (sc *Scene) CollidingPairs() []Pair {
	var pairs []Pair
	for i := 0; i < len(sc.Bodies); i++ {
		for j := i + 1; j < len(sc.Bodies); j++ {
			a, b := sc.Bodies[i], sc.Bodies[j]
			if a.CurrentShape().Intersects(b.CurrentShape()) {
				pairs = append(pairs, Pair{A: a.ID, B: b.ID})
			}
		}
	}
	return pairs
}

// CollidingWith returns the ids of bodies intersecting the given body.
func (sc *Scene) CollidingWith(id string) []string {
	target := sc.Body(id)
	if target == nil {
		return nil
	}
	var hits []string
	for _, b := range sc.Bodies {
		if b == target {
			continue
		}
		if target.CurrentShape().Intersects(b.CurrentShape()) {
			hits = append(hits, b.ID)
		}
	}
	return hits
}

// PairCount returns the number of unordered body pairs tested by
// CollidingPairs.
func (sc *Scene) PairCount() int {
	n := len(sc.Bodies)
	return n * (n - 1) / 2
}
