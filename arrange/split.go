// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package arrange

import (
	"sort"

	"github.com/gogpu/alpenglow/bignum"
)

// splitEdges turns each integerEdge into one RationalHalfEdge per
// sub-segment between consecutive intersection points (sorted by t), plus
// its reverse. The forward half-edge carries winding +1 * ccwSign for its
// path; the reverse carries the negation.
func splitEdges(edges []*integerEdge) []RationalHalfEdge {
	var out []RationalHalfEdge
	for _, e := range edges {
		sort.Slice(e.intersections, func(i, j int) bool {
			return e.intersections[i].t.CompareCrossMul(e.intersections[j].t) < 0
		})

		verts := make([]bignum.Vec2, 0, len(e.intersections)+2)
		verts = append(verts, e.p0)
		for _, s := range e.intersections {
			verts = append(verts, s.point)
		}
		verts = append(verts, e.p1)

		for i := 0; i+1 < len(verts); i++ {
			p0, p1 := verts[i], verts[i+1]
			if p0.Equal(p1) {
				continue
			}
			p0x, p0y := p0.ToFloat64()
			p1x, p1y := p1.ToFloat64()
			fwd := RationalHalfEdge{
				P0: p0, P1: p1, Winding: WindingMap{e.pathID: e.ccwSign},
				p0f: Vector2{X: p0x, Y: p0y}, p1f: Vector2{X: p1x, Y: p1y},
			}
			rev := RationalHalfEdge{
				P0: p1, P1: p0, Winding: WindingMap{e.pathID: -e.ccwSign},
				p0f: Vector2{X: p1x, Y: p1y}, p1f: Vector2{X: p0x, Y: p0y},
			}
			fwdIdx := len(out)
			revIdx := fwdIdx + 1
			fwd.ReverseIdx = revIdx
			rev.ReverseIdx = fwdIdx
			fwd.NextIdx, rev.NextIdx = -1, -1
			fwd.Boundary, rev.Boundary = -1, -1
			out = append(out, fwd, rev)
		}
	}
	return out
}

// mergeDuplicates sorts all half-edges by (P0 lexicographic, discriminator,
// slope, index) and merges runs that share the same P0/P1 pair by summing
// their winding maps; runs whose summed winding is zero on every path are
// discarded. The reverse-pointer invariant is re-established for the
// surviving edges once the final index assignment is known.
func mergeDuplicates(edges []RationalHalfEdge) []RationalHalfEdge {
	type keyed struct {
		idx int
		key sortKey
	}
	keys := make([]keyed, len(edges))
	for i := range edges {
		keys[i] = keyed{idx: i, key: edgeSortKey(&edges[i])}
		keys[i].key.idx = i
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].key.less(keys[j].key) })

	var merged []RationalHalfEdge
	i := 0
	for i < len(keys) {
		j := i + 1
		acc := edges[keys[i].idx]
		for j < len(keys) && sameEndpoints(&edges[keys[i].idx], &edges[keys[j].idx]) {
			acc.Winding = acc.Winding.Add(edges[keys[j].idx].Winding)
			j++
		}
		if !acc.Winding.IsZero() {
			acc.NextIdx = -1
			acc.Boundary = -1
			merged = append(merged, acc)
		}
		i = j
	}

	// Re-pair reverses: a merged forward edge's reverse is the merged
	// half-edge with swapped endpoints, if it survived; otherwise this
	// edge is a dangling boundary of the winding-zero region and is
	// dropped too, since a half-edge with no reverse cannot participate
	// in boundary tracing.
	index := make(map[[2]bignum.Vec2]int, len(merged))
	for i := range merged {
		index[[2]bignum.Vec2{merged[i].P0, merged[i].P1}] = i
	}
	final := merged[:0]
	for i := range merged {
		revKey := [2]bignum.Vec2{merged[i].P1, merged[i].P0}
		if revIdx, ok := index[revKey]; ok {
			merged[i].ReverseIdx = revIdx
			final = append(final, merged[i])
		}
	}
	return final
}

func sameEndpoints(a, b *RationalHalfEdge) bool {
	return a.P0.Equal(b.P0) && a.P1.Equal(b.P1)
}

// sortKey captures the spec's ordering tuple: P0 lexicographic, then
// discriminator (quadrant of the direction vector), then slope via
// cross-multiplication, with index as the final, stable tie-break.
type sortKey struct {
	p0x, p0y       bignum.Rat
	discriminator  int
	dir            bignum.Vec2
	idx            int
}

func edgeSortKey(e *RationalHalfEdge) sortKey {
	dir := bignum.Vec2{X: e.P1.X.Sub(e.P0.X), Y: e.P1.Y.Sub(e.P0.Y)}
	return sortKey{p0x: e.P0.X, p0y: e.P0.Y, discriminator: quadrant(dir), dir: dir}
}

// quadrant buckets a direction vector into one of four discriminator
// classes so that edges are grouped by rough direction ahead of the exact
// slope comparison: 0 = +x half (dy>=0 closer to +x), 1 = +y, 2 = -x, 3 = -y.
func quadrant(d bignum.Vec2) int {
	xs, ys := d.X.Sign(), d.Y.Sign()
	switch {
	case xs > 0 || (xs == 0 && ys > 0):
		if ys >= 0 {
			return 0
		}
		return 3
	default:
		if ys >= 0 {
			return 1
		}
		return 2
	}
}

func (k sortKey) less(o sortKey) bool {
	if c := k.p0x.CompareCrossMul(o.p0x); c != 0 {
		return c < 0
	}
	if c := k.p0y.CompareCrossMul(o.p0y); c != 0 {
		return c < 0
	}
	if k.discriminator != o.discriminator {
		return k.discriminator < o.discriminator
	}
	// Slope comparison via cross product of the two direction vectors,
	// sharing a quadrant so the sign of the cross product is a consistent
	// rotational ordering within that quadrant.
	cross := k.dir.Cross(o.dir)
	if c := cross.Sign(); c != 0 {
		return c > 0
	}
	return k.idx < o.idx
}
