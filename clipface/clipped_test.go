package clipface

import (
	"testing"

	"github.com/gogpu/alpenglow/program"
)

func TestEdgedClippedFaceResolvesChain(t *testing.T) {
	f := NewPolygonalFace(square(0, 0, 4, 4), nil)
	clipped := NewEdgedClippedFace(f).
		WithClip(program.Vector2{X: 1, Y: 0}, 2, true).  // keep x<=2
		WithClip(program.Vector2{X: 0, Y: 1}, 2, true)   // keep y<=2
	if !closeFloat(clipped.Area(), 4) {
		t.Errorf("Area() = %v, want 4", clipped.Area())
	}
}

func TestEdgedClippedFaceCachesResolution(t *testing.T) {
	f := NewPolygonalFace(square(0, 0, 2, 2), nil)
	clipped := NewEdgedClippedFace(f)
	a1 := clipped.Area()
	a2 := clipped.Area()
	if a1 != a2 {
		t.Errorf("Area() not stable across calls: %v vs %v", a1, a2)
	}
	if clipped.resolved == nil {
		t.Error("resolved cache was not populated after Area()")
	}
}

func TestEdgedClippedFaceNoOpWithNoClips(t *testing.T) {
	f := NewPolygonalFace(square(0, 0, 3, 3), nil)
	clipped := NewEdgedClippedFace(f)
	if !closeFloat(clipped.Area(), 9) {
		t.Errorf("Area() = %v, want 9", clipped.Area())
	}
}

func TestEdgedClippedFaceIsFullAreaForBounds(t *testing.T) {
	f := NewPolygonalFace(square(0, 0, 4, 4), nil)
	clipped := NewEdgedClippedFace(f)
	inner := program.Rect{MinX: -1, MinY: -1, MaxX: 5, MaxY: 5}
	if !clipped.IsFullAreaForBounds(inner) {
		t.Error("IsFullAreaForBounds() = false, want true when bounds strictly contain the parent")
	}
	outer := program.Rect{MinX: 1, MinY: 1, MaxX: 2, MaxY: 2}
	if clipped.IsFullAreaForBounds(outer) {
		t.Error("IsFullAreaForBounds() = true, want false when bounds are smaller than the parent")
	}
}
