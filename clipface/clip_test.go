package clipface

import (
	"math"
	"testing"

	"github.com/gogpu/alpenglow/program"
)

func TestBinaryXClipSplitsUnitSquare(t *testing.T) {
	f := NewPolygonalFace(square(0, 0, 2, 2), nil)
	lo, hi := binaryXClip(f, 1, 0)
	if !closeFloat(lo.Area(), 2) {
		t.Errorf("minFace.Area() = %v, want 2", lo.Area())
	}
	if !closeFloat(hi.Area(), 2) {
		t.Errorf("maxFace.Area() = %v, want 2", hi.Area())
	}
}

func TestBinaryXClipOutsideBoundsYieldsEmptySide(t *testing.T) {
	f := NewPolygonalFace(square(0, 0, 2, 2), nil)
	lo, hi := binaryXClip(f, 5, 0)
	if !closeFloat(lo.Area(), 4) {
		t.Errorf("minFace.Area() = %v, want full 4", lo.Area())
	}
	if hi.Area() != 0 {
		t.Errorf("maxFace.Area() = %v, want 0", hi.Area())
	}
}

func TestStripeLineClipProducesKPlusOneFaces(t *testing.T) {
	f := NewPolygonalFace(square(0, 0, 4, 1), nil)
	faces := stripeLineClip(f, program.Vector2{X: 1, Y: 0}, []float64{1, 2, 3}, 0)
	if len(faces) != 4 {
		t.Fatalf("len(faces) = %d, want 4", len(faces))
	}
	total := 0.0
	for _, sf := range faces {
		total += sf.Area()
		if !closeFloat(sf.Area(), 1) {
			t.Errorf("stripe area = %v, want 1", sf.Area())
		}
	}
	if !closeFloat(total, 4) {
		t.Errorf("total stripe area = %v, want 4", total)
	}
}

func TestClipToBoundsIntersectsRectangle(t *testing.T) {
	f := NewPolygonalFace(square(-5, -5, 5, 5), nil)
	bounds := program.Rect{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}
	clipped := ClipToBounds(f, bounds)
	if !closeFloat(clipped.Area(), 4) {
		t.Errorf("ClipToBounds area = %v, want 4", clipped.Area())
	}
	b := clipped.Bounds()
	if !closeFloat(b.MinX, 0) || !closeFloat(b.MaxX, 2) || !closeFloat(b.MinY, 0) || !closeFloat(b.MaxY, 2) {
		t.Errorf("ClipToBounds bounds = %+v, want %+v", b, bounds)
	}
}

func TestClipToBoundsDisjointYieldsEmpty(t *testing.T) {
	f := NewPolygonalFace(square(0, 0, 1, 1), nil)
	bounds := program.Rect{MinX: 10, MinY: 10, MaxX: 12, MaxY: 12}
	clipped := ClipToBounds(f, bounds)
	if clipped.Area() != 0 {
		t.Errorf("ClipToBounds disjoint area = %v, want 0", clipped.Area())
	}
}

func TestBinaryCircularClipAreaSumsToOriginal(t *testing.T) {
	f := NewPolygonalFace(square(-10, -10, 10, 10), nil)
	inside, outside := binaryCircularClip(f, program.Vector2{}, 5, math.Pi/32)
	total := inside.Area() + outside.Area()
	if !closeFloat(total, 400) {
		t.Errorf("inside+outside area = %v, want 400", total)
	}
	circleArea := math.Pi * 25
	if math.Abs(inside.Area()-circleArea) > 1 {
		t.Errorf("inside.Area() = %v, want close to %v", inside.Area(), circleArea)
	}
}
