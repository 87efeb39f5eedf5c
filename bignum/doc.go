// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package bignum provides the exact rational arithmetic the CAG arrangement
// pipeline is built on: a reducible-but-not-canonical BigRational, a
// BigRationalVector2 pair, and the 128-bit packed rational form (q128) used
// when the same data crosses to a GPU-shaped buffer.
//
// Operands are bounded to roughly 128 bits: the arrangement grid snaps
// coordinates to 2^20, and intersection arithmetic at most doubles that
// precision, so int64 numerators/denominators (with 128-bit intermediate
// products for cross-multiplication) are sufficient — there is no need for
// math/big's arbitrary-size allocation on this hot path.
package bignum
