// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import "math/bits"

// Rat is a signed rational number with integer numerator and denominator.
// Reduction is deferred: Rat does not maintain a canonical form, and most
// operations (Equal, CompareCrossMul) work correctly on unreduced values by
// cross-multiplying rather than comparing reduced forms.
//
// The zero value is not a valid Rat (Den == 0); use New or NewInt.
type Rat struct {
	Num int64
	Den int64
}

// New returns num/den. Den must be non-zero — division by zero is a
// programming error, never produced by the intersection routines because
// every edge has distinct endpoints, so New panics rather than returning
// an error.
func New(num, den int64) Rat {
	if den == 0 {
		panic("bignum: zero denominator")
	}
	if den < 0 {
		num, den = -num, -den
	}
	return Rat{Num: num, Den: den}
}

// NewInt returns a Rat representing the integer n.
func NewInt(n int64) Rat {
	return Rat{Num: n, Den: 1}
}

// mul128 returns the signed 128-bit product a*b as (hi, lo) two's-complement
// words, used by cross-multiplication to avoid overflow when both Num and
// Den can be up to ~2^44 in magnitude (a 2^20 grid plus doubled intersection
// precision).
func mul128(a, b int64) (hi, lo int64) {
	neg := false
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
		neg = !neg
	}
	if b < 0 {
		ub = uint64(-b)
		neg = !neg
	}
	h, l := bits.Mul64(ua, ub)
	if neg {
		// Negate the 128-bit (h,l) pair.
		l = ^l + 1
		h = ^h
		if l == 0 {
			h++
		}
	}
	return int64(h), int64(l)
}

// cmp128 compares two signed 128-bit values given as (hi, lo) pairs.
func cmp128(h1, l1, h2, l2 int64) int {
	switch {
	case h1 != h2:
		if h1 < h2 {
			return -1
		}
		return 1
	case l1 != l2:
		if uint64(l1) < uint64(l2) {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Equal reports whether r == other by cross-multiplication, without
// reducing either operand.
func (r Rat) Equal(other Rat) bool {
	h1, l1 := mul128(r.Num, other.Den)
	h2, l2 := mul128(other.Num, r.Den)
	return cmp128(h1, l1, h2, l2) == 0
}

// CompareCrossMul returns -1, 0, or 1 as r is less than, equal to, or
// greater than other, establishing the total order used for arrangement
// tie-breaks (vertex sort, slope comparison).
func (r Rat) CompareCrossMul(other Rat) int {
	h1, l1 := mul128(r.Num, other.Den)
	h2, l2 := mul128(other.Num, r.Den)
	return cmp128(h1, l1, h2, l2)
}

// Add returns r + other.
func (r Rat) Add(other Rat) Rat {
	return New(r.Num*other.Den+other.Num*r.Den, r.Den*other.Den)
}

// Sub returns r - other.
func (r Rat) Sub(other Rat) Rat {
	return New(r.Num*other.Den-other.Num*r.Den, r.Den*other.Den)
}

// Mul returns r * other.
func (r Rat) Mul(other Rat) Rat {
	return New(r.Num*other.Num, r.Den*other.Den)
}

// Div returns r / other. Panics if other is zero, per New's contract.
func (r Rat) Div(other Rat) Rat {
	return New(r.Num*other.Den, r.Den*other.Num)
}

// Negate returns -r.
func (r Rat) Negate() Rat {
	return Rat{Num: -r.Num, Den: r.Den}
}

// Sign returns -1, 0, or 1 as r is negative, zero, or positive.
func (r Rat) Sign() int {
	switch {
	case r.Num < 0:
		return -1
	case r.Num > 0:
		return 1
	default:
		return 0
	}
}

// ToFloat converts r to a float64, losing precision.
func (r Rat) ToFloat() float64 {
	return float64(r.Num) / float64(r.Den)
}

// gcd returns the greatest common divisor of a and b (both treated as
// non-negative); gcd(0, 0) is defined as 0.
func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Reduce returns r divided by gcd(|Num|, Den). Reduction is never implicit
// — callers opt in where canonical form matters (e.g. map keys, hashing).
func (r Rat) Reduce() Rat {
	if r.Num == 0 {
		return Rat{Num: 0, Den: 1}
	}
	g := gcd(r.Num, r.Den)
	if g <= 1 {
		return r
	}
	return Rat{Num: r.Num / g, Den: r.Den / g}
}
