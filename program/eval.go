// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package program

import "math"

// ExecuteInstructions interprets the word stream WriteInstructions produced
// and returns the resulting color, given the evaluation point p (used by
// gradient opcodes) and an optional converter for OpColorSpaceMatrix. It is
// a reference executor only: production rasterization evaluates the Node
// tree directly via Evaluate.
func ExecuteInstructions(words []uint32, p Vector2, converter ColorSpaceConverter) Vec4 {
	exec := &instructionExecutor{words: words, point: p, converter: converter}
	return exec.run()
}

type instructionExecutor struct {
	words     []uint32
	pos       int
	point     Vector2
	converter ColorSpaceConverter
	stack     []Vec4
	ratio     float64
	hasRatio  bool
}

func (e *instructionExecutor) run() Vec4 {
	for e.pos < len(e.words) {
		op := Opcode(e.words[e.pos])
		e.pos++
		switch op {
		case OpConstColor:
			e.push(Vec4{R: e.nextFloat(), G: e.nextFloat(), B: e.nextFloat(), A: e.nextFloat()})
		case OpMulScalar:
			c := e.pop()
			s := e.nextFloat()
			e.push(c.Scale(s))
		case OpColorSpaceMatrix:
			c := e.pop()
			kind := ColorSpaceKind(e.nextWord())
			if e.converter != nil {
				c = e.converter.Convert(kind, c)
			}
			e.push(c)
		case OpComputeLinearBlendRatio:
			sx, sy, ex, ey := e.nextFloat(), e.nextFloat(), e.nextFloat(), e.nextFloat()
			e.ratio = linearRatio(Vector2{X: sx, Y: sy}, Vector2{X: ex, Y: ey}, e.point)
			e.hasRatio = true
		case OpComputeGradientRatio:
			e.push(e.execGradientRatio())
		case OpBarycentricBlend:
			e.push(e.execBarycentricBlend())
		case OpPathBooleanSelect:
			e.execPathBooleanSelect()
		case OpBlend:
			mode := BlendMode(e.nextWord())
			a, b := e.pop(), e.pop()
			e.push(blendOver(a, b, mode))
		case OpCompose:
			op := CompositeOp(e.nextWord())
			a, b := premultiplyColor(e.pop()), premultiplyColor(e.pop())
			fa, fb := porterDuffFactors(op, a.A, b.A)
			e.push(unpremultiplyColor(Vec4{
				R: a.R*fa + b.R*fb, G: a.G*fa + b.G*fb, B: a.B*fa + b.B*fb, A: a.A*fa + b.A*fb,
			}))
		case OpBarycentricPerspectiveBlend:
			e.push(e.execBarycentricPerspectiveBlend())
		case OpComputeAxisBlendRatio:
			e.ratio = e.execAxisBlendRatio()
			zero, one := e.pop(), e.pop()
			e.push(Vec4{
				R: zero.R + e.ratio*(one.R-zero.R),
				G: zero.G + e.ratio*(one.G-zero.G),
				B: zero.B + e.ratio*(one.B-zero.B),
				A: zero.A + e.ratio*(one.A-zero.A),
			})
		case OpPremultiply:
			e.push(premultiplyColor(e.pop()))
		case OpUnpremultiply:
			e.push(unpremultiplyColor(e.pop()))
		case OpStackBlend:
			e.push(e.execStackBlend())
		case OpFilter:
			e.push(e.execFilter())
		case OpNormalize:
			e.push(clampColor(e.pop()))
		case OpImageSample:
			// The reference interpreter has no bound ImageSource, only a
			// Transform/extend/resample payload; like OpPathBooleanSelect's
			// missing pathTest oracle, image sampling requires evaluating
			// the Node tree directly instead of the instruction stream.
			for i := 0; i < 9; i++ {
				e.nextWord()
			}
			e.push(Transparent)
		case OpReturn, OpExit:
			return e.pop()
		default:
			panic("program: unknown opcode in instruction stream")
		}
	}
	if len(e.stack) == 0 {
		return Transparent
	}
	return e.pop()
}

func (e *instructionExecutor) execGradientRatio() Vec4 {
	kind := e.nextWord()
	var t float64
	switch kind {
	case gradientKindLinear:
		if !e.hasRatio {
			panic("program: OpComputeGradientRatio(linear) without a preceding OpComputeLinearBlendRatio")
		}
		t = e.ratio
		e.hasRatio = false
	case gradientKindRadial:
		cx, cy, radius := e.nextFloat(), e.nextFloat(), e.nextFloat()
		dist := math.Hypot(e.point.X-cx, e.point.Y-cy)
		if radius != 0 {
			t = dist / radius
		}
	case gradientKindSweep:
		cx, cy, startAngle := e.nextFloat(), e.nextFloat(), e.nextFloat()
		t = (math.Atan2(e.point.Y-cy, e.point.X-cx) - startAngle) / (2 * math.Pi)
	default:
		panic("program: unknown gradient kind in instruction stream")
	}
	count := int(e.nextWord())
	stops := make([]ColorStop, count)
	for i := 0; i < count; i++ {
		offset := e.nextFloat()
		c := Vec4{R: e.nextFloat(), G: e.nextFloat(), B: e.nextFloat(), A: e.nextFloat()}
		stops[i] = ColorStop{Offset: offset, Color: c}
	}
	extend := ExtendMode(e.nextWord())
	return colorAtOffset(stops, t, extend)
}

func (e *instructionExecutor) execBarycentricBlend() Vec4 {
	var pts [3]Vector2
	for i := range pts {
		pts[i] = Vector2{X: e.nextFloat(), Y: e.nextFloat()}
	}
	var cols [3]Vec4
	for i := range cols {
		cols[i] = Vec4{R: e.nextFloat(), G: e.nextFloat(), B: e.nextFloat(), A: e.nextFloat()}
	}
	w0, w1, w2 := barycentricWeights(pts[0], pts[1], pts[2], e.point)
	return Vec4{
		R: w0*cols[0].R + w1*cols[1].R + w2*cols[2].R,
		G: w0*cols[0].G + w1*cols[1].G + w2*cols[2].G,
		B: w0*cols[0].B + w1*cols[1].B + w2*cols[2].B,
		A: w0*cols[0].A + w1*cols[1].A + w2*cols[2].A,
	}
}

func (e *instructionExecutor) execBarycentricPerspectiveBlend() Vec4 {
	var pts [3]Vector2
	for i := range pts {
		pts[i] = Vector2{X: e.nextFloat(), Y: e.nextFloat()}
	}
	var ws [3]float64
	for i := range ws {
		ws[i] = e.nextFloat()
	}
	var cols [3]Vec4
	for i := range cols {
		cols[i] = Vec4{R: e.nextFloat(), G: e.nextFloat(), B: e.nextFloat(), A: e.nextFloat()}
	}
	w0, w1, w2 := barycentricWeights(pts[0], pts[1], pts[2], e.point)
	iw0, iw1, iw2 := safeInv(ws[0]), safeInv(ws[1]), safeInv(ws[2])
	denom := w0*iw0 + w1*iw1 + w2*iw2
	if denom == 0 {
		return cols[0]
	}
	mix := func(c0, c1, c2 float64) float64 { return (w0*iw0*c0 + w1*iw1*c1 + w2*iw2*c2) / denom }
	return Vec4{R: mix(cols[0].R, cols[1].R, cols[2].R), G: mix(cols[0].G, cols[1].G, cols[2].G),
		B: mix(cols[0].B, cols[1].B, cols[2].B), A: mix(cols[0].A, cols[1].A, cols[2].A)}
}

func (e *instructionExecutor) execAxisBlendRatio() float64 {
	kind := e.nextWord()
	switch kind {
	case axisBlendKindLinear:
		nx, ny, offset := e.nextFloat(), e.nextFloat(), e.nextFloat()
		return clamp01(nx*e.point.X + ny*e.point.Y - offset)
	case axisBlendKindRadial:
		r0, r1 := e.nextFloat(), e.nextFloat()
		if r1 == r0 {
			return 0
		}
		dist := math.Hypot(e.point.X, e.point.Y)
		return clamp01((dist - r0) / (r1 - r0))
	default:
		panic("program: unknown axis-blend kind in instruction stream")
	}
}

func (e *instructionExecutor) execStackBlend() Vec4 {
	count := int(e.nextWord())
	layers := make([]Vec4, count)
	for i := 0; i < count; i++ {
		layers[i] = e.pop()
	}
	out := Transparent
	for _, l := range layers {
		out = blendOver(out, l, BlendNormal)
	}
	return out
}

func (e *instructionExecutor) execFilter() Vec4 {
	c := e.pop()
	var m ColorMatrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			m[row][col] = e.nextFloat()
		}
	}
	bias := Vec4{R: e.nextFloat(), G: e.nextFloat(), B: e.nextFloat(), A: e.nextFloat()}
	return m.apply(c, bias)
}

// execPathBooleanSelect pops (and, if two-sided, discards) the inactive
// branch's color so the stack ends with exactly the active branch's color;
// the reference interpreter has no path membership oracle of its own, so
// callers that care about the pathTest result should evaluate the tree
// directly instead of through the instruction stream.
func (e *instructionExecutor) execPathBooleanSelect() {
	_ = e.nextWord() // path id
	oneSided := e.nextWord() == 1
	inside := e.pop()
	if oneSided {
		e.push(inside)
		return
	}
	_ = e.pop() // outside, discarded: no pathTest oracle available here
	e.push(inside)
}

func (e *instructionExecutor) push(c Vec4) { e.stack = append(e.stack, c) }

func (e *instructionExecutor) pop() Vec4 {
	n := len(e.stack)
	c := e.stack[n-1]
	e.stack = e.stack[:n-1]
	return c
}

func (e *instructionExecutor) nextWord() uint32 {
	w := e.words[e.pos]
	e.pos++
	return w
}

func (e *instructionExecutor) nextFloat() float64 {
	return float64(math.Float32frombits(e.nextWord()))
}
