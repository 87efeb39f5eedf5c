// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package parallel implements the data-parallel primitive algebra the
// rasterizer's coarse/fine passes and the raster-clip segmented reduction
// are built from: reduce, scan, histogram, radix sort, merge, and a
// coalesced raked iteration helper, all expressed over a 1D dispatch grid
// of workgroups in the GPU compute-kernel (SIMT) style.
//
// Two interchangeable Executors drive a dispatch: GoroutineExecutor runs
// workgroups as real goroutines for production throughput, and
// CooperativeExecutor gives every thread its own goroutine but resumes only
// one at a time, in randomized interleaving order between suspension points (start, the two
// barrier kinds, and every shared-array get/set) — a fiber-style scheduler
// used to fuzz ordering-sensitive bugs in the algorithms above, mirroring
// the reference executor's role in the source design.
package parallel
