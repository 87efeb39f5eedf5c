// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bignum

// Vec2 is an ordered pair of BigRationals (BigRationalVector2).
type Vec2 struct {
	X, Y Rat
}

// NewVec2 returns a Vec2 from integer coordinates.
func NewVec2(x, y int64) Vec2 {
	return Vec2{X: NewInt(x), Y: NewInt(y)}
}

// Equal reports whether two vectors are equal by cross-multiplying each
// component.
func (v Vec2) Equal(other Vec2) bool {
	return v.X.Equal(other.X) && v.Y.Equal(other.Y)
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X.Sub(other.X), Y: v.Y.Sub(other.Y)}
}

// Cross returns the scalar 2D cross product v.X*other.Y - v.Y*other.X,
// used for orientation tests during slope comparison.
func (v Vec2) Cross(other Vec2) Rat {
	return v.X.Mul(other.Y).Sub(v.Y.Mul(other.X))
}

// ToFloat64 converts to a plain (float64, float64) pair, used for the
// cached f32-ish projections half-edges carry for area/angle computation.
func (v Vec2) ToFloat64() (x, y float64) {
	return v.X.ToFloat(), v.Y.ToFloat()
}
