// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package program

import (
	"encoding/binary"
	"math"
)

func float32bits(f float32) uint32 { return math.Float32bits(f) }

// Opcode identifies one stack-machine instruction. The instruction stream
// is little-endian u32 words: an opcode word followed by its fixed payload
// words, produced by walking the tree and emitting each node's children
// (in reverse) before the node's own opcode, per WriteInstructions.
type Opcode uint32

const (
	OpConstColor Opcode = iota
	OpMulScalar
	OpColorSpaceMatrix
	OpComputeLinearBlendRatio
	OpComputeGradientRatio
	OpBarycentricBlend
	OpPathBooleanSelect
	OpReturn
	OpExit
	OpBlend
	OpCompose
	OpBarycentricPerspectiveBlend
	OpComputeAxisBlendRatio
	OpPremultiply
	OpUnpremultiply
	OpStackBlend
	OpFilter
	OpNormalize
	OpImageSample
)

// Label is a patched-post-hoc jump target, resolved to an instruction index
// once the full stream has been written.
type Label struct{ resolved bool; index uint32 }

// InstructionWriter accumulates the flat u32 word stream WriteInstructions
// produces, plus pending jump patches.
type InstructionWriter struct {
	words   []uint32
	patches []patch
}

type patch struct {
	wordIndex int
	label     *Label
}

// NewInstructionWriter returns an empty writer.
func NewInstructionWriter() *InstructionWriter { return &InstructionWriter{} }

// Emit appends a raw u32 word.
func (w *InstructionWriter) Emit(word uint32) { w.words = append(w.words, word) }

// EmitOp appends an opcode word.
func (w *InstructionWriter) EmitOp(op Opcode) { w.Emit(uint32(op)) }

// EmitFloat32 appends the IEEE-754 bit pattern of f as a u32 word.
func (w *InstructionWriter) EmitFloat32(f float32) {
	w.Emit(float32bits(f))
}

// NewLabel allocates an unresolved jump label.
func (w *InstructionWriter) NewLabel() *Label { return &Label{} }

// MarkLabel resolves lbl to the current instruction position.
func (w *InstructionWriter) MarkLabel(lbl *Label) {
	lbl.resolved = true
	lbl.index = uint32(len(w.words))
}

// EmitJump appends a placeholder word for a jump to lbl, patched once lbl
// is marked (or immediately, if already marked).
func (w *InstructionWriter) EmitJump(lbl *Label) {
	idx := len(w.words)
	w.Emit(0)
	if lbl.resolved {
		w.words[idx] = lbl.index
		return
	}
	w.patches = append(w.patches, patch{wordIndex: idx, label: lbl})
}

// Finish resolves all pending jump patches and returns the encoded
// little-endian byte stream.
func (w *InstructionWriter) Finish() []byte {
	for _, p := range w.patches {
		if !p.label.resolved {
			panic("program: unresolved jump label in instruction stream")
		}
		w.words[p.wordIndex] = p.label.index
	}
	buf := make([]byte, 4*len(w.words))
	for i, word := range w.words {
		binary.LittleEndian.PutUint32(buf[i*4:], word)
	}
	return buf
}

// Words exposes the raw word stream (pre-byte-encoding), used by the
// reference stack executor.
func (w *InstructionWriter) Words() []uint32 { return w.words }
