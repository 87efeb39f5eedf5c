// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package clipface implements the clippable-face algebra: three
// representations of a planar region (PolygonalFace, the direct arrangement
// output; EdgedFace, the result of a clip operation; EdgedClippedFace, a
// memoized composition of pending clips against a parent face) sharing one
// set of half-plane and circular clip operations and one set of analytic
// area/centroid/distance integrals, all satisfying program.Face.
package clipface
