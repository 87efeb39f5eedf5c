// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package rasterclip implements the raster-clip segmented reduction: given
// a stream of RasterEdgeClip values produced by clipping each face's edges
// against the tile/bin grid, it classifies, scans, and scatters them into
// per-chunk contiguous [startEdge, endEdge) ranges split into reducible and
// complete categories, plus a RasterChunkReduceQuad segmented min/max
// tracker over chunk-local axis extents.
//
// Grounded on internal/gpu/tilecompute/ptcl.go's per-tile contiguous
// command-range bookkeeping (generalized here to per-face edge ranges) and
// coarse.go's backdrop running-total idea (the segmented reduce), built on
// top of the parallel package's Scan rather than a hand-rolled ladder.
package rasterclip
