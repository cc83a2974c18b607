// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// ClearColor is the background color each frame is cleared to.
var ClearColor = wgpu.Color{R: 0.05, G: 0.062, B: 0.08, A: 1.0}

// ClearRenderPass returns a render pass descriptor that clears the
// given view to [ClearColor] and stores the result.
func ClearRenderPass(view TextureView) *RenderPassDescriptor {
	return &RenderPassDescriptor{
		View:       view,
		LoadOp:     wgpu.LoadOpClear,
		StoreOp:    wgpu.StoreOpStore,
		ClearValue: ClearColor,
	}
}

// FrameRenderer encodes, submits and presents one frame at a time:
// a single render pass that clears the surface image and draws the
// vertex buffer once with the pipeline.
type FrameRenderer struct {
	gc       *Context
	surface  *Surface
	pipeline *Pipeline
	vertices *VertexBuffer

	frames uint64
}

// NewFrameRenderer returns a renderer drawing the given vertices with
// the given pipeline to the surface.
func NewFrameRenderer(gc *Context, sf *Surface, pl *Pipeline, vb *VertexBuffer) *FrameRenderer {
	return &FrameRenderer{gc: gc, surface: sf, pipeline: pl, vertices: vb}
}

// RenderFrame renders one frame. If the surface image cannot be
// acquired, the acquisition error is returned and nothing is submitted
// or presented; it wraps [ErrSurfaceOutdated], [ErrSurfaceLost] or
// [ErrTimeout]. A surface whose format no longer matches the pipeline
// returns [ErrFormatMismatch].
func (fr *FrameRenderer) RenderFrame() error {
	if err := fr.pipeline.CheckFormat(fr.surface.Config().Format); err != nil {
		return err
	}
	view, err := fr.surface.Acquire()
	if err != nil {
		return err
	}
	defer view.Release()

	cmd, err := fr.gc.Device.CreateCommandEncoder(fr.pipeline.Name)
	if err != nil {
		return fmt.Errorf("gpu: creating command encoder: %w", err)
	}
	defer cmd.Release()

	rp := cmd.BeginRenderPass(ClearRenderPass(view))
	fr.pipeline.BindPipeline(rp)
	fr.vertices.Bind(rp, 0)
	rp.Draw(uint32(fr.vertices.Count()), 1, 0, 0)
	rp.End()
	if err := fr.SubmitRender(cmd, rp); err != nil {
		return err
	}
	fr.surface.Present()
	fr.frames++
	slog.Debug("gpu: frame presented", "frame", fr.frames)
	return nil
}

// SubmitRender submits the render commands to the device queue and
// releases the render pass. rp.End must have been called.
func (fr *FrameRenderer) SubmitRender(cmd CommandEncoder, rp RenderPass) error {
	rp.Release() // must happen before Finish
	cb, err := cmd.Finish()
	if err != nil {
		return fmt.Errorf("gpu: finishing command encoder: %w", err)
	}
	fr.gc.Queue.Submit(cb)
	cb.Release()
	return nil
}

// Frames returns the number of frames presented.
func (fr *FrameRenderer) Frames() uint64 { return fr.frames }
