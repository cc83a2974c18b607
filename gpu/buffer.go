// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/quad/base/errors"
)

// VertexBuffer is an immutable GPU buffer holding vertex data,
// uploaded once at creation.
type VertexBuffer struct {
	// Name is the buffer label, used in driver diagnostics.
	Name string

	count  int
	buffer Buffer
}

// NewVertexBuffer uploads the given vertices to a new vertex buffer on the device.
func NewVertexBuffer(dev Device, name string, vs []Vertex) (*VertexBuffer, error) {
	if len(vs) == 0 {
		return nil, fmt.Errorf("gpu: vertex buffer %q: no vertices", name)
	}
	buf, err := dev.CreateVertexBuffer(name, VertexBytes(vs))
	if errors.Log(err) != nil {
		return nil, err
	}
	return &VertexBuffer{Name: name, count: len(vs), buffer: buf}, nil
}

// Count returns the number of vertices in the buffer.
func (vb *VertexBuffer) Count() int { return vb.count }

// Size returns the buffer size in bytes, which is always
// Count * [VertexSize].
func (vb *VertexBuffer) Size() uint64 { return vb.buffer.Size() }

// Bind sets this buffer as the vertex data at the given slot of the render pass.
func (vb *VertexBuffer) Bind(rp RenderPass, slot uint32) {
	rp.SetVertexBuffer(slot, vb.buffer)
}

func (vb *VertexBuffer) Release() {
	if vb.buffer != nil {
		vb.buffer.Release()
		vb.buffer = nil
	}
}
