// Package config provides YAML-based scene definitions for the collision
// sandbox: declarative bodies (circles, rectangles, polygons) with ordered
// transform steps, loaded with the usual search-path fallbacks.
package config

import (
	"fmt"

	"shapelab/internal/geom"
	"shapelab/internal/scene"
	"shapelab/internal/shape"
)

// SceneConfig is the root of a scene YAML document.
type SceneConfig struct {
	Name   string       `yaml:"name"`
	Bodies []BodyConfig `yaml:"bodies"`
}

// BodyConfig declares a single body. Kind selects which of the variant
// fields are read.
type BodyConfig struct {
	ID   string `yaml:"id"`
	Kind string `yaml:"kind"` // "circle", "rectangle" or "polygon"

	// Circle fields.
	Center PointConfig `yaml:"center"`
	Radius float64     `yaml:"radius"`

	// Rectangle fields.
	Rect RectConfig `yaml:"rect"`

	// Polygon fields. Vertices must be in clockwise order (y-down).
	Vertices []PointConfig `yaml:"vertices"`

	// Transform steps applied in order after construction.
	Transform []TransformStep `yaml:"transform"`
}

// PointConfig is a YAML point.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RectConfig is a YAML rectangle.
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TransformStep is one rigid transform. A step may set both fields; the
// rotation is applied first.
type TransformStep struct {
	Rotate float64      `yaml:"rotate"` // radians, about the body's own center
	Move   *PointConfig `yaml:"move"`
}

// Build validates the config and constructs the scene.
func (c *SceneConfig) Build() (*scene.Scene, error) {
	sc := scene.New(c.Name)
	seen := make(map[string]bool, len(c.Bodies))

	for i, bc := range c.Bodies {
		if bc.ID == "" {
			return nil, fmt.Errorf("config: body %d has no id", i)
		}
		if seen[bc.ID] {
			return nil, fmt.Errorf("config: duplicate body id %q", bc.ID)
		}
		seen[bc.ID] = true

		s, err := bc.buildShape()
		if err != nil {
			return nil, fmt.Errorf("config: body %q: %w", bc.ID, err)
		}

		body := scene.NewBody(bc.ID, s)
		for _, step := range bc.Transform {
			if step.Rotate != 0 {
				body.RotateBy(step.Rotate)
			}
			if step.Move != nil {
				body.MoveBy(step.Move.X, step.Move.Y)
			}
		}
		sc.Add(body)
	}
	return sc, nil
}

func (bc *BodyConfig) buildShape() (*shape.Shape, error) {
	switch bc.Kind {
	case "circle":
		if bc.Radius < 0 {
			return nil, fmt.Errorf("negative radius %v", bc.Radius)
		}
		return shape.NewCircle(geom.Pt(bc.Center.X, bc.Center.Y), bc.Radius), nil
	case "rectangle":
		if bc.Rect.Width < 0 || bc.Rect.Height < 0 {
			return nil, fmt.Errorf("negative rectangle size %vx%v", bc.Rect.Width, bc.Rect.Height)
		}
		return shape.NewRectangle(bc.Rect.X, bc.Rect.Y, bc.Rect.Width, bc.Rect.Height), nil
	case "polygon":
		if len(bc.Vertices) < 3 {
			return nil, fmt.Errorf("polygon needs at least 3 vertices, got %d", len(bc.Vertices))
		}
		pts := make([]geom.Point, len(bc.Vertices))
		for i, v := range bc.Vertices {
			pts[i] = geom.Pt(v.X, v.Y)
		}
		return shape.NewPolygon(pts), nil
	default:
		return nil, fmt.Errorf("unknown kind %q", bc.Kind)
	}
}
