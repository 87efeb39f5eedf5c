package clipface

import (
	"math"
	"testing"

	"github.com/gogpu/alpenglow/program"
)

func square(x0, y0, x1, y1 float64) []program.Vector2 {
	return []program.Vector2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func closeFloat(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestPolygonalFaceAreaUnitSquare(t *testing.T) {
	f := NewPolygonalFace(square(0, 0, 1, 1), nil)
	if !closeFloat(f.Area(), 1) {
		t.Errorf("Area() = %v, want 1", f.Area())
	}
}

func TestPolygonalFaceAreaWithHole(t *testing.T) {
	outer := square(0, 0, 10, 10)
	hole := []program.Vector2{{X: 4, Y: 4}, {X: 4, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 4}} // wound opposite
	f := NewPolygonalFace(outer, [][]program.Vector2{hole})
	got := f.Area()
	want := 100.0 - 4.0
	if !closeFloat(got, want) {
		t.Errorf("Area() with hole = %v, want %v", got, want)
	}
}

func TestPolygonalFaceCentroidUnitSquare(t *testing.T) {
	f := NewPolygonalFace(square(0, 0, 2, 2), nil)
	c := f.Centroid()
	if !closeFloat(c.X, 1) || !closeFloat(c.Y, 1) {
		t.Errorf("Centroid() = %+v, want (1,1)", c)
	}
}

func TestPolygonalFaceBounds(t *testing.T) {
	f := NewPolygonalFace(square(-1, -2, 3, 4), nil)
	b := f.Bounds()
	want := program.Rect{MinX: -1, MinY: -2, MaxX: 3, MaxY: 4}
	if b != want {
		t.Errorf("Bounds() = %+v, want %+v", b, want)
	}
}

func TestAverageDistanceTransformedToOriginAtCentroidForSymmetricSquare(t *testing.T) {
	// A square centered at (5,0) transformed by identity: every sample's
	// distance to the origin averages close to the centroid distance
	// because of left-right symmetry around x=5.
	f := NewPolygonalFace(square(4, -1, 6, 1), nil)
	got := f.AverageDistanceTransformedToOrigin(program.Identity())
	if got <= 0 {
		t.Errorf("AverageDistanceTransformedToOrigin() = %v, want > 0", got)
	}
	centroidDist := math.Hypot(5, 0)
	if math.Abs(got-centroidDist) > 0.5 {
		t.Errorf("AverageDistanceTransformedToOrigin() = %v, too far from centroid distance %v", got, centroidDist)
	}
}

func TestEdgedFaceIsFullArea(t *testing.T) {
	bounds := program.Rect{MinX: 0, MinY: 0, MaxX: 4, MaxY: 4}
	f := EdgedFace{geom: faceGeometry{Outer: square(0, 0, 4, 4)}}
	if !f.IsFullArea(bounds) {
		t.Error("IsFullArea() = false, want true for exact-bounds loop")
	}
	partial := EdgedFace{geom: faceGeometry{Outer: square(0, 0, 2, 2)}}
	if partial.IsFullArea(bounds) {
		t.Error("IsFullArea() = true, want false for a strictly smaller loop")
	}
}
