// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package program implements the RenderProgram expression tree: an
// immutable, structurally-hashable description of how to compute a pixel's
// color, with simplification, transformation, evaluation, and both a
// reference stack-machine interpreter and a binary instruction encoding for
// GPU consumption.
package program

// Vector2 is a float64 point (internal copy; see arrange.Vector2 for why
// this is duplicated instead of imported).
type Vector2 struct{ X, Y float64 }

// Matrix is a 2x3 row-major affine transform: [x' y'] = [x y 1] * M.
// Duplicated from the root package's Matrix to avoid an import cycle
// (program is a dependency of the root package, not the reverse).
type Matrix struct{ A, B, C, D, E, F float64 }

// Identity returns the identity transform.
func Identity() Matrix { return Matrix{A: 1, D: 1} }

// TransformPoint applies m to p.
func (m Matrix) TransformPoint(p Vector2) Vector2 {
	return Vector2{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Multiply returns m composed with other, applying other first (other then m).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

// Vec4 is a straight (non-premultiplied) RGBA color in the evaluation
// context's working color space.
type Vec4 struct{ R, G, B, A float64 }

// Transparent is the zero color.
var Transparent = Vec4{}

// Equal reports exact equality (used only by Simplify's structural-equality
// property, not for comparing evaluated pixel colors).
func (c Vec4) Equal(o Vec4) bool { return c == o }

// Scale multiplies every channel by a.
func (c Vec4) Scale(a float64) Vec4 {
	return Vec4{R: c.R * a, G: c.G * a, B: c.B * a, A: c.A * a}
}

// Rect is an axis-aligned bounding box.
type Rect struct{ MinX, MinY, MaxX, MaxY float64 }

// Face is the capability set shared by PolygonalFace, EdgedFace, and
// EdgedClippedFace (package clipface); program depends only on this
// interface so clipface can depend on program without a cycle.
type Face interface {
	Area() float64
	Centroid() Vector2
	Bounds() Rect
	// AverageDistanceTransformedToOrigin supports radial-gradient mean
	// accuracy: the area-weighted average of |T(p)| over the face.
	AverageDistanceTransformedToOrigin(t Matrix) float64
}

// Accuracy selects how precisely a node's evaluation must match a
// continuous integral over its face versus a cheaper centroid/AABB sample.
type Accuracy int

const (
	AccuracyFast Accuracy = iota
	AccuracyAccurate
)

// EvalContext carries everything a node's Evaluate may need. A node that
// declares NeedsFace/NeedsArea/NeedsCentroid but finds the corresponding
// field unset is a programming error (see node.go).
type EvalContext struct {
	Face     Face
	HasFace  bool
	Area     float64
	HasArea  bool
	Centroid Vector2
	HasCentroid bool
	Bounds   Rect
	Accuracy Accuracy
	PathTest func(pathID int) bool
}
