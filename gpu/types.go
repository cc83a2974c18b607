// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Types is a list of GPU data types that can be used as
// vertex attributes, with their WebGPU VertexFormat and byte size.
// Float32Vector3 is only valid for vertex data; it is not properly
// aligned for uniforms.
type Types int32

const (
	UndefinedType Types = iota

	Uint32
	Uint32Vector2
	Uint32Vector4

	Float32
	Float32Vector2
	Float32Vector3
	Float32Vector4
)

// VertexFormat returns the WebGPU VertexFormat for given type.
func (tp Types) VertexFormat() wgpu.VertexFormat {
	return TypeToVertexFormat[tp]
}

// Bytes returns number of bytes for this type
func (tp Types) Bytes() int {
	return TypeSizes[tp]
}

func (tp Types) String() string {
	if nm, ok := typeNames[tp]; ok {
		return nm
	}
	return "UndefinedType"
}

var typeNames = map[Types]string{
	Uint32:         "Uint32",
	Uint32Vector2:  "Uint32Vector2",
	Uint32Vector4:  "Uint32Vector4",
	Float32:        "Float32",
	Float32Vector2: "Float32Vector2",
	Float32Vector3: "Float32Vector3",
	Float32Vector4: "Float32Vector4",
}

// TypeSizes gives our data type sizes in bytes
var TypeSizes = map[Types]int{
	Uint32:        4,
	Uint32Vector2: 8,
	Uint32Vector4: 16,

	Float32:        4,
	Float32Vector2: 8,
	Float32Vector3: 12,
	Float32Vector4: 16,
}

// TypeToVertexFormat maps gpu.Types to WebGPU VertexFormat
var TypeToVertexFormat = map[Types]wgpu.VertexFormat{
	UndefinedType:  wgpu.VertexFormatUndefined,
	Uint32:         wgpu.VertexFormatUint32,
	Uint32Vector2:  wgpu.VertexFormatUint32x2,
	Uint32Vector4:  wgpu.VertexFormatUint32x4,
	Float32:        wgpu.VertexFormatFloat32,
	Float32Vector2: wgpu.VertexFormatFloat32x2,
	Float32Vector3: wgpu.VertexFormatFloat32x3,
	Float32Vector4: wgpu.VertexFormatFloat32x4,
}

// VertexAttribute describes one field of a vertex struct.
type VertexAttribute struct {
	// shader @location of the attribute
	Location uint32

	// data type of the attribute
	Type Types
}

// VertexAttributes returns the WebGPU attribute descriptors for the given
// tightly packed attributes, with offsets accumulated in order,
// along with the total stride in bytes.
func VertexAttributes(attrs ...VertexAttribute) ([]wgpu.VertexAttribute, uint64) {
	va := make([]wgpu.VertexAttribute, len(attrs))
	off := uint64(0)
	for i, at := range attrs {
		va[i] = wgpu.VertexAttribute{
			Format:         at.Type.VertexFormat(),
			Offset:         off,
			ShaderLocation: at.Location,
		}
		off += uint64(at.Type.Bytes())
	}
	return va, off
}
