// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tileraster implements the two-pass tiled rasterizer: a coarse
// pass clips every tagged face against each 16x16-bin tile it overlaps,
// and a fine pass clips each surviving face against each 1x1 bin within
// its tile, either writing a fully-covered opaque bin directly or
// integrating the RenderProgram analytically and accumulating a
// premultiplied, area-weighted partial contribution.
//
// Grounded on internal/gpu/tilecompute/coarse.go's per-path tile
// allocation and internal/gpu/tilecompute/fine.go's per-bin command
// walk, generalized from Vello's packed-scene draw-object model to
// clipface.PolygonalFace plus a program.Node color expression per face.
package tileraster

// TileWidth and TileHeight are the coarse tile's bin grid dimensions,
// matching the teacher's TileWidth/TileHeight constants.
const (
	TileWidth  = 16
	TileHeight = 16
)
