package scene

import (
	"testing"

	"shapelab/internal/geom"
	"shapelab/internal/shape"
)

func buildTestScene() *Scene {
	sc := New("test")
	sc.Add(NewBody("crate", shape.NewRectangle(-50, -25, 100, 50)))
	sc.Add(NewBody("ball", shape.NewCircle(geom.Pt(60, 0), 20)))
	sc.Add(NewBody("far", shape.NewCircle(geom.Pt(500, 500), 10)))
	return sc
}

func TestCollidingPairs(t *testing.T) {
	sc := buildTestScene()

	pairs := sc.CollidingPairs()
	if len(pairs) != 1 {
		t.Fatalf("CollidingPairs() = %v, expected exactly one pair", pairs)
	}
	if pairs[0].A != "crate" || pairs[0].B != "ball" {
		t.Errorf("pair = %v, expected crate <-> ball", pairs[0])
	}
}

func TestCollidingWith(t *testing.T) {
	sc := buildTestScene()

	hits := sc.CollidingWith("ball")
	if len(hits) != 1 || hits[0] != "crate" {
		t.Errorf("CollidingWith(ball) = %v, expected [crate]", hits)
	}

	if hits := sc.CollidingWith("far"); len(hits) != 0 {
		t.Errorf("CollidingWith(far) = %v, expected none", hits)
	}

	if hits := sc.CollidingWith("missing"); hits != nil {
		t.Errorf("CollidingWith(missing) = %v, expected nil", hits)
	}
}

func TestPairCount(t *testing.T) {
	sc := buildTestScene()
	if got := sc.PairCount(); got != 3 {
		t.Errorf("PairCount() = %d, expected 3", got)
	}
}

func TestBodyMoveSeparates(t *testing.T) {
	sc := buildTestScene()

	sc.Body("ball").MoveBy(200, 0)
	if pairs := sc.CollidingPairs(); len(pairs) != 0 {
		t.Errorf("after moving ball away, CollidingPairs() = %v, expected none", pairs)
	}

	sc.Body("ball").MoveBy(-200, 0)
	if pairs := sc.CollidingPairs(); len(pairs) != 1 {
		t.Errorf("after moving ball back, CollidingPairs() = %v, expected one pair", pairs)
	}
}

// RotateBy compensates for the core's origin-anchored rotation, so a body
// must stay in place (same bounding-box center) when spun.
func TestBodyRotateByStaysPut(t *testing.T) {
	b := NewBody("crate", shape.NewRectangle(100, 200, 40, 20))
	before := b.CurrentShape().BoundingBox()
	bcx, bcy := before.X+before.Width/2, before.Y+before.Height/2

	b.RotateBy(0.7)

	after := b.CurrentShape().BoundingBox()
	acx, acy := after.X+after.Width/2, after.Y+after.Height/2
	const eps = 1e-9
	if diff := acx - bcx; diff > eps || diff < -eps {
		t.Errorf("center x drifted by %v", diff)
	}
	if diff := acy - bcy; diff > eps || diff < -eps {
		t.Errorf("center y drifted by %v", diff)
	}
	if !b.CurrentShape().Rectangular() {
		t.Error("rotation dropped the rectangular flag")
	}
}
