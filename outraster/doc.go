// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package outraster implements the output raster: an f64x4
// premultiplied-linear accumulation buffer plus the resolve step that
// unpremultiplies, applies the linear-to-output OETF (sRGB or Display P3),
// and additively composes into a u8 RGBA image, so a caller can mix
// analytically-accumulated partial pixels with directly-written full ones.
package outraster
