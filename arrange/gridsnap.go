// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package arrange

import (
	"math"

	"github.com/gogpu/alpenglow/bignum"
)

// GridSnapper maps float64 coordinates onto an integer grid sized so that
// the overall bounding box occupies close to gridBits bits of precision,
// centering the grid on the box.
type GridSnapper struct {
	scale       float64
	originX     float64
	originY     float64
	gridBits    uint
}

// NewGridSnapper computes scale and origin from the AABB of every point in
// paths, targeting gridBits bits of integer precision across the larger of
// the box's two dimensions.
func NewGridSnapper(paths []InputPath, gridBits uint) *GridSnapper {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range paths {
		for _, v := range p.Points {
			minX = math.Min(minX, v.X)
			minY = math.Min(minY, v.Y)
			maxX = math.Max(maxX, v.X)
			maxY = math.Max(maxY, v.Y)
		}
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}
	w, h := maxX-minX, maxY-minY
	maxDim := math.Max(w, h)
	if maxDim <= 0 {
		maxDim = 1
	}

	exp := int(math.Ceil(math.Log2(maxDim)))
	scaleExp := int(gridBits) - exp
	scale := math.Ldexp(1, scaleExp)

	return &GridSnapper{
		scale:    scale,
		originX:  minX + w/2,
		originY:  minY + h/2,
		gridBits: gridBits,
	}
}

// Snap rounds v onto the integer grid using round-half-away-from-zero
// (symmetric rounding), returning an exact rational in grid units.
func (g *GridSnapper) Snap(v Vector2) bignum.Vec2 {
	x := symmetricRound((v.X - g.originX) * g.scale)
	y := symmetricRound((v.Y - g.originY) * g.scale)
	return bignum.NewVec2(x, y)
}

func symmetricRound(v float64) int64 {
	if v >= 0 {
		return int64(math.Floor(v + 0.5))
	}
	return int64(math.Ceil(v - 0.5))
}

// SnapPath snaps every vertex of p in order, dropping zero-length segments
// (consecutive duplicate snapped vertices) including the closing edge back
// to the first point.
func (g *GridSnapper) SnapPath(p InputPath) []bignum.Vec2 {
	out := make([]bignum.Vec2, 0, len(p.Points))
	for _, v := range p.Points {
		s := g.Snap(v)
		if len(out) > 0 && out[len(out)-1].Equal(s) {
			continue
		}
		out = append(out, s)
	}
	if len(out) > 1 && out[0].Equal(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}
