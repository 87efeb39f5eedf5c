// Package alpenglow implements a numerically-exact constructive-area-geometry
// rasterizer: an integer/rational planar arrangement of input paths feeds a
// winding/face engine, whose tagged faces are colored by a RenderProgram
// expression tree and rasterized through a two-pass tiled pipeline driven by
// data-parallel primitives, accumulating in premultiplied f64 and resolving
// into a straight-alpha RGBA8 output raster.
//
// # Overview
//
// The pipeline is, in order:
//
//  1. arrange    — exact-rational segment intersection and winding-number
//     face construction (package arrange).
//  2. program    — an immutable expression tree describing each face's
//     color, with simplification, transformation, and a reference evaluator
//     (package program).
//  3. clipface   — the clippable-face algebra (polygonal, edged, and
//     edge-clipped faces) with analytic area/centroid integrals
//     (package clipface).
//  4. tileraster/rasterclip — the coarse-tile and fine-bin rasterizer
//     passes, backed by the segmented-reduction raster-clip pipeline
//     (packages tileraster, rasterclip).
//  5. outraster  — premultiplied-linear accumulation and resolve to an
//     RGBA8 image in sRGB or Display P3 (package outraster).
//
// Stages 3-5's workgroup-parallel steps are expressed as pure functions over
// array slots (package parallel), dispatched by either a goroutine-backed
// Executor or a cooperative randomized-interleaving Executor that tests use
// to flush out ordering-dependent bugs.
//
// # Quick start
//
//	pipeline := alpenglow.NewPipeline()
//	raster, err := pipeline.Rasterize(paths, prog, width, height)
//
// # Coordinate system
//
// Matches the input RenderPath's coordinate space directly: no implicit
// flip. Origin, axis direction, and units are the caller's choice; the
// arrangement only requires that every vertex coordinate be finite and fit
// within the grid-snap precision budget (2^20 units by default, configurable
// via WithGridBits).
//
// # Error handling
//
// See errors.go for the typed error hierarchy. Everything except
// ResourceExhausted is an unrecoverable failure of Rasterize;
// ResourceExhausted is the one error a caller can retry past, with a larger
// buffer.
package alpenglow
