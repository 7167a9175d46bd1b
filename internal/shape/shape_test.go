package shape

import (
	"math"
	"testing"

	"shapelab/internal/geom"
)

func TestRectangleConstructorVertexOrder(t *testing.T) {
	s := NewRectangle(-50, -25, 100, 50)

	expected := []geom.Point{
		{X: -50, Y: -25}, // top-left
		{X: 50, Y: -25},  // top-right
		{X: 50, Y: 25},   // bottom-right
		{X: -50, Y: 25},  // bottom-left
	}

	verts := s.Vertices()
	if len(verts) != 4 {
		t.Fatalf("len(Vertices()) = %d, expected 4", len(verts))
	}
	for i, v := range verts {
		if v != expected[i] {
			t.Errorf("vertex %d = %+v, expected %+v", i, v, expected[i])
		}
	}
	if !s.Rectangular() {
		t.Error("rectangle constructor should set the rectangular flag")
	}
	if s.Rotation() != 0 {
		t.Errorf("Rotation() = %v, expected 0", s.Rotation())
	}
}

func TestRectangleFromRect(t *testing.T) {
	a := NewRectangleFromRect(geom.NewRect(10, 20, 30, 40))
	b := NewRectangle(10, 20, 30, 40)
	if !a.Equal(b) {
		t.Errorf("NewRectangleFromRect produced %+v, expected %+v", a.Vertices(), b.Vertices())
	}
}

func TestPolygonConstructorIsNeverRectangular(t *testing.T) {
	// Even vertices that happen to form a rectangle: the flag is propagated
	// from the rectangle constructors only, never recomputed from geometry.
	s := NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}})
	if s.Rectangular() {
		t.Error("NewPolygon must not set the rectangular flag")
	}
}

func TestBoundingBox(t *testing.T) {
	tests := []struct {
		name     string
		shape    *Shape
		expected geom.Rect
	}{
		{
			name:     "circle",
			shape:    NewCircle(geom.Pt(10, -20), 50),
			expected: geom.NewRect(-40, -70, 100, 100),
		},
		{
			name:     "rectangle",
			shape:    NewRectangle(-50, -25, 100, 50),
			expected: geom.NewRect(-50, -25, 100, 50),
		},
		{
			name:     "triangle",
			shape:    NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 2}, {X: -4, Y: 8}}),
			expected: geom.NewRect(-4, 0, 14, 8),
		},
		{
			name:     "empty polygon degenerates to zero rect",
			shape:    NewPolygon(nil),
			expected: geom.Rect{},
		},
		{
			name:     "single vertex",
			shape:    NewPolygon([]geom.Point{{X: 3, Y: 4}}),
			expected: geom.NewRect(3, 4, 0, 0),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.shape.BoundingBox()
			if got != tc.expected {
				t.Errorf("BoundingBox() = %+v, expected %+v", got, tc.expected)
			}
			// Memoized: a second read returns the same value.
			if again := tc.shape.BoundingBox(); again != got {
				t.Errorf("second BoundingBox() = %+v, expected %+v", again, got)
			}
		})
	}
}

func TestMovedTranslationRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		shape *Shape
	}{
		{"circle", NewCircle(geom.Pt(5, 5), 20)},
		{"rectangle", NewRectangle(-50, -25, 100, 50)},
		{"polygon", NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 4, Y: 8}})},
		{"rotated rectangle", NewRectangle(-50, -25, 100, 50).Rotated(0.3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			moved := tc.shape.Moved(17.5, -42.25)
			back := moved.Moved(-17.5, 42.25)
			if !back.Equal(tc.shape) {
				t.Errorf("moved round trip changed the shape: %+v", back)
			}
		})
	}
}

func TestMovedPreservesFlagAndRotation(t *testing.T) {
	s := NewRectangle(0, 0, 10, 10).Rotated(0.7)
	m := s.Moved(100, 200)
	if !m.Rectangular() {
		t.Error("Moved dropped the rectangular flag")
	}
	if m.Rotation() != 0.7 {
		t.Errorf("Moved changed rotation: %v", m.Rotation())
	}
}

func TestRotatedCircleIsUnchanged(t *testing.T) {
	c := NewCircle(geom.Pt(30, 40), 12)
	for _, angle := range []float64{0, 0.5, math.Pi / 2, math.Pi, -2.7} {
		if got := c.Rotated(angle); !got.Equal(c) {
			t.Errorf("Rotated(%v) changed the circle: %+v", angle, got)
		}
	}
}

// TestRotationFormulaExactness pins the origin-anchored rotation convention:
// x' = y*sin - x*cos, y' = x*sin + y*cos, applied about the global origin.
// The mapped vertices must match the closed form bit for bit.
func TestRotationFormulaExactness(t *testing.T) {
	original := NewRectangle(-50, -25, 100, 50)
	angle := math.Pi / 2
	rotated := original.Rotated(angle)

	sin, cos := math.Sin(angle), math.Cos(angle)
	verts := rotated.Vertices()
	for i, v := range original.Vertices() {
		want := geom.Point{X: v.Y*sin - v.X*cos, Y: v.X*sin + v.Y*cos}
		if verts[i] != want {
			t.Errorf("vertex %d = %+v, expected exactly %+v", i, verts[i], want)
		}
	}

	// With sin(pi/2)=1 the result is (y, x) up to float error in cos(pi/2):
	// clearly anchored at the origin, not the rectangle's center.
	ideal := []geom.Point{{X: -25, Y: -50}, {X: -25, Y: 50}, {X: 25, Y: 50}, {X: 25, Y: -50}}
	for i, v := range verts {
		if math.Abs(v.X-ideal[i].X) > 1e-9 || math.Abs(v.Y-ideal[i].Y) > 1e-9 {
			t.Errorf("vertex %d = %+v, expected about %+v", i, v, ideal[i])
		}
	}

	if rotated.Rotation() != angle {
		t.Errorf("Rotation() = %v, expected %v", rotated.Rotation(), angle)
	}
}

func TestRotationAccumulates(t *testing.T) {
	s := NewRectangle(0, 0, 10, 10).Rotated(0.25).Rotated(0.5).Rotated(-0.1)
	if got := s.Rotation(); math.Abs(got-0.65) > 1e-12 {
		t.Errorf("Rotation() = %v, expected 0.65", got)
	}
	if !s.Rectangular() {
		t.Error("Rotated dropped the rectangular flag")
	}
}

func TestEqual(t *testing.T) {
	rect := NewRectangle(-50, -25, 100, 50)

	tests := []struct {
		name     string
		a, b     *Shape
		expected bool
	}{
		{
			name:     "identical circles",
			a:        NewCircle(geom.Pt(1, 2), 3),
			b:        NewCircle(geom.Pt(1, 2), 3),
			expected: true,
		},
		{
			name:     "circles compare exactly",
			a:        NewCircle(geom.Pt(1, 2), 3),
			b:        NewCircle(geom.Pt(1, 2), 3+1e-9),
			expected: false,
		},
		{
			name:     "different variants",
			a:        NewCircle(geom.Pt(0, 0), 5),
			b:        NewRectangle(-5, -5, 10, 10),
			expected: false,
		},
		{
			name:     "identical rectangles",
			a:        rect,
			b:        NewRectangle(-50, -25, 100, 50),
			expected: true,
		},
		{
			name:     "polygon within tolerance",
			a:        rect,
			b:        NewRectangle(-50+5e-6, -25-5e-6, 100, 50),
			expected: true,
		},
		{
			name:     "polygon beyond tolerance",
			a:        rect,
			b:        NewRectangle(-50+2e-5, -25, 100, 50),
			expected: false,
		},
		{
			name:     "vertex count mismatch",
			a:        NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}),
			b:        NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}),
			expected: false,
		},
		{
			name: "flag and rotation are not compared",
			a:    rect,
			// Same geometry but built through the plain polygon constructor.
			b:        NewPolygon([]geom.Point{{X: -50, Y: -25}, {X: 50, Y: -25}, {X: 50, Y: 25}, {X: -50, Y: 25}}),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.expected {
				t.Errorf("Equal() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Equal(tc.a); got != tc.expected {
				t.Errorf("Equal() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPath(t *testing.T) {
	t.Run("circle yields inscribed ellipse", func(t *testing.T) {
		p := NewCircle(geom.Pt(10, 20), 5).Path()
		if p.Kind != PathEllipse {
			t.Fatalf("Kind = %v, expected PathEllipse", p.Kind)
		}
		if want := geom.NewRect(5, 15, 10, 10); p.Bounds != want {
			t.Errorf("Bounds = %+v, expected %+v", p.Bounds, want)
		}
	})

	t.Run("polygon yields closed polyline", func(t *testing.T) {
		verts := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}}
		p := NewPolygon(verts).Path()
		if p.Kind != PathPolyline {
			t.Fatalf("Kind = %v, expected PathPolyline", p.Kind)
		}
		if len(p.Points) != len(verts) {
			t.Fatalf("len(Points) = %d, expected %d", len(p.Points), len(verts))
		}
		for i, v := range verts {
			if p.Points[i] != v {
				t.Errorf("point %d = %+v, expected %+v", i, p.Points[i], v)
			}
		}
	})

	t.Run("degenerate polygon yields empty path", func(t *testing.T) {
		for _, verts := range [][]geom.Point{nil, {{X: 3, Y: 4}}} {
			if p := NewPolygon(verts).Path(); p.Kind != PathEmpty {
				t.Errorf("Path() of %d-vertex polygon = %v, expected PathEmpty", len(verts), p.Kind)
			}
		}
	})
}
