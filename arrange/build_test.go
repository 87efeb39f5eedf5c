// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package arrange

import (
	"math"
	"testing"
)

func square(x0, y0, x1, y1 float64) []Vector2 {
	return []Vector2{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func booleanTags(op string) (GetFaceData, IsFaceDataCompatible) {
	inA := func(w WindingMap) bool { return w[0] != 0 }
	inB := func(w WindingMap) bool { return w[1] != 0 }

	getTag := func(w WindingMap) FaceTag {
		a, b := inA(w), inB(w)
		switch op {
		case "union":
			return a || b
		case "intersection":
			return a && b
		case "difference":
			return a && !b
		}
		return false
	}
	compatible := func(x, y FaceTag) bool { return x.(bool) == y.(bool) }
	return getTag, compatible
}

func polygonArea(b Boundary, edges []RationalHalfEdge) float64 {
	area := 0.0
	for _, idx := range b.EdgeIdxs {
		e := &edges[idx]
		area += e.p0f.X*e.p1f.Y - e.p1f.X*e.p0f.Y
	}
	return math.Abs(area) / 2
}

func taggedFaceArea(tf TaggedFace, edges []RationalHalfEdge) float64 {
	var area float64
	for _, o := range tf.Outers {
		area += polygonArea(o, edges)
	}
	for _, h := range tf.Holes {
		area -= polygonArea(h, edges)
	}
	return area
}

func TestBuild_UnionOfTwoOffsetSquares(t *testing.T) {
	paths := []InputPath{
		{PathID: 0, Points: square(0, 0, 1, 1)},
		{PathID: 1, Points: square(0.5, 0, 1.5, 1)},
	}
	arr := Build(paths, Options{})
	boundaryFace := arr.BoundaryFace
	getTag, compatible := booleanTags("union")
	tagged := TagFaces(arr, boundaryFace, getTag, compatible)

	var unionArea float64
	for _, tf := range tagged {
		if tf.Tag == true {
			unionArea += taggedFaceArea(tf, arr.Edges)
		}
	}
	if math.Abs(unionArea-1.5) > 1e-6 {
		t.Errorf("union area = %v, want 1.5", unionArea)
	}
}

func TestBuild_IntersectionOfTwoOffsetSquares(t *testing.T) {
	paths := []InputPath{
		{PathID: 0, Points: square(0, 0, 1, 1)},
		{PathID: 1, Points: square(0.5, 0, 1.5, 1)},
	}
	arr := Build(paths, Options{})
	boundaryFace := arr.BoundaryFace
	getTag, compatible := booleanTags("intersection")
	tagged := TagFaces(arr, boundaryFace, getTag, compatible)

	var area float64
	for _, tf := range tagged {
		if tf.Tag == true {
			area += taggedFaceArea(tf, arr.Edges)
		}
	}
	if math.Abs(area-0.5) > 1e-6 {
		t.Errorf("intersection area = %v, want 0.5", area)
	}
}

func TestBuild_DifferenceOfTwoOffsetSquares(t *testing.T) {
	paths := []InputPath{
		{PathID: 0, Points: square(0, 0, 1, 1)},
		{PathID: 1, Points: square(0.5, 0, 1.5, 1)},
	}
	arr := Build(paths, Options{})
	boundaryFace := arr.BoundaryFace
	getTag, compatible := booleanTags("difference")
	tagged := TagFaces(arr, boundaryFace, getTag, compatible)

	var area float64
	for _, tf := range tagged {
		if tf.Tag == true {
			area += taggedFaceArea(tf, arr.Edges)
		}
	}
	if math.Abs(area-0.5) > 1e-6 {
		t.Errorf("difference area = %v, want 0.5", area)
	}
}

// TestHalfEdge_ReverseInvolutionAndWindingSum checks property 2: reversing
// twice is the identity and a half-edge's winding map sums to zero with its
// reverse's, on every path.
func TestHalfEdge_ReverseInvolutionAndWindingSum(t *testing.T) {
	paths := []InputPath{{PathID: 0, Points: square(0, 0, 1, 1)}}
	arr := Build(paths, Options{})

	for i := range arr.Edges {
		e := &arr.Edges[i]
		rev := &arr.Edges[e.ReverseIdx]
		if rev.ReverseIdx != i {
			t.Fatalf("edge %d: reverse.reverse = %d, want %d", i, rev.ReverseIdx, i)
		}
		sum := e.Winding.Add(rev.Winding)
		if !sum.IsZero() {
			t.Errorf("edge %d: winding + reverse.winding = %v, want zero", i, sum)
		}
	}
}

func TestGridSnapper_DropsZeroLengthSegments(t *testing.T) {
	paths := []InputPath{{PathID: 0, Points: []Vector2{{0, 0}, {0, 0}, {1, 0}, {1, 1}, {0, 1}}}}
	s := NewGridSnapper(paths, 20)
	snapped := s.SnapPath(paths[0])
	if len(snapped) != 4 {
		t.Errorf("len(snapped) = %d, want 4 (duplicate point dropped)", len(snapped))
	}
}
