// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"encoding/binary"
	"math"

	"github.com/cogentcore/webgpu/wgpu"
)

// Vertex is one vertex of the quad: a clip-space position and an RGB color.
// It is laid out exactly as the shader reads it, with no padding.
type Vertex struct {
	Position [2]float32
	Color    [3]float32
}

// VertexSize is the size of a [Vertex] in bytes.
const VertexSize = 20

// vertexAttributes are the shader inputs of [Vertex], in field order.
var vertexAttributes = []VertexAttribute{
	{Location: 0, Type: Float32Vector2},
	{Location: 1, Type: Float32Vector3},
}

// QuadMesh is the quad drawn every frame, as two triangles
// sharing the diagonal between the bottom-right and top-left corners.
var QuadMesh = [6]Vertex{
	{Position: [2]float32{-0.5, -0.5}, Color: [3]float32{1, 0, 0}}, // bottom left, red
	{Position: [2]float32{0.5, -0.5}, Color: [3]float32{0, 1, 0}},  // bottom right, green
	{Position: [2]float32{-0.5, 0.5}, Color: [3]float32{1, 1, 0}},  // top left, yellow
	{Position: [2]float32{-0.5, 0.5}, Color: [3]float32{1, 1, 0}},
	{Position: [2]float32{0.5, -0.5}, Color: [3]float32{0, 1, 0}},
	{Position: [2]float32{0.5, 0.5}, Color: [3]float32{0, 0, 1}}, // top right, blue
}

// VertexBytes returns the vertices tightly packed in little-endian order,
// ready for upload to a vertex buffer.
func VertexBytes(vs []Vertex) []byte {
	b := make([]byte, 0, len(vs)*VertexSize)
	for _, v := range vs {
		for _, f := range v.Position {
			b = binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
		}
		for _, f := range v.Color {
			b = binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
		}
	}
	return b
}

// VertexLayout returns the vertex buffer layout for [Vertex]:
// position as Float32x2 at offset 0 and color as Float32x3 at offset 8,
// stepped per vertex.
func VertexLayout() wgpu.VertexBufferLayout {
	attrs, stride := VertexAttributes(vertexAttributes...)
	return wgpu.VertexBufferLayout{
		ArrayStride: stride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  attrs,
	}
}
