// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bignum

// Q128 is the 128-bit packed rational form used when arrangement data
// crosses to a GPU-shaped buffer: a 64-bit signed numerator and a 64-bit
// unsigned denominator, matching §3.1's "numerator.i64 || denominator.u64"
// wire layout.
type Q128 struct {
	Num int64
	Den uint64
}

// FromRat packs a Rat into its Q128 wire form. Den must already be
// non-negative (New's normalization guarantees this).
func FromRat(r Rat) Q128 {
	return Q128{Num: r.Num, Den: uint64(r.Den)}
}

// ToRat unpacks a Q128 back into a Rat.
func (q Q128) ToRat() Rat {
	return Rat{Num: q.Num, Den: int64(q.Den)}
}

// Add returns q + other via the equivalent Rat operation, repacked.
func (q Q128) Add(other Q128) Q128 {
	return FromRat(q.ToRat().Add(other.ToRat()))
}

// Sub returns q - other via the equivalent Rat operation, repacked.
func (q Q128) Sub(other Q128) Q128 {
	return FromRat(q.ToRat().Sub(other.ToRat()))
}

// Mul returns q * other via the equivalent Rat operation, repacked.
func (q Q128) Mul(other Q128) Q128 {
	return FromRat(q.ToRat().Mul(other.ToRat()))
}

// Div returns q / other via the equivalent Rat operation, repacked.
func (q Q128) Div(other Q128) Q128 {
	return FromRat(q.ToRat().Div(other.ToRat()))
}

// Reduce returns q with its Rat form reduced and repacked.
func (q Q128) Reduce() Q128 {
	return FromRat(q.ToRat().Reduce())
}
