// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
)

// Bundle is everything needed to render the quad to one window.
// All of it is created together on activation and released together.
type Bundle struct {
	Context      *Context
	Surface      *Surface
	Pipeline     *Pipeline
	VertexBuffer *VertexBuffer
	Renderer     *FrameRenderer
}

// NewBundle sets up rendering for the given window: it creates an instance,
// binds a surface to the window, negotiates a context compatible with that
// surface, configures the surface at the window's current size, and builds
// the shader, pipeline and vertex buffer. On failure everything created so
// far is released and the error is returned.
func NewBundle(drv Driver, src SurfaceSource, opts *Options) (*Bundle, error) {
	if opts == nil {
		opts = NewOptions()
	}
	inst, err := drv.NewInstance()
	if err != nil {
		return nil, fmt.Errorf("gpu: creating instance: %w", err)
	}
	b := &Bundle{}
	err = b.build(inst, src, opts)
	if err != nil {
		ownsInstance := b.Context != nil
		b.Release()
		if !ownsInstance {
			inst.Release()
		}
		return nil, err
	}
	return b, nil
}

func (b *Bundle) build(inst Instance, src SurfaceSource, opts *Options) error {
	sf, err := BindSurface(inst, src)
	if err != nil {
		return err
	}
	b.Surface = sf
	gc, err := NewContext(inst, sf, opts)
	if err != nil {
		return err
	}
	b.Context = gc

	w, h := src.FramebufferSize()
	cfg, err := DefaultSurfaceConfig(sf.Capabilities(gc.Adapter), w, h, opts)
	if err != nil {
		return err
	}
	if !sf.Configure(gc, cfg) {
		slog.Info("gpu: window has zero size, deferring surface configuration", "width", w, "height", h)
	}

	sh, err := CompileShader(gc.Device, opts.Label+" shader", opts.Shader)
	if err != nil {
		return err
	}
	pl, err := BuildPipeline(gc.Device, opts.Label+" pipeline", sh, VertexLayout(), cfg.Format)
	if err != nil {
		sh.Release()
		return err
	}
	b.Pipeline = pl

	vb, err := NewVertexBuffer(gc.Device, opts.Label+" vertices", QuadMesh[:])
	if err != nil {
		return err
	}
	b.VertexBuffer = vb
	b.Renderer = NewFrameRenderer(gc, sf, pl, vb)
	return nil
}

// Release releases all resources, the surface before the context
// and the instance last.
func (b *Bundle) Release() {
	if b.VertexBuffer != nil {
		b.VertexBuffer.Release()
		b.VertexBuffer = nil
	}
	if b.Pipeline != nil {
		b.Pipeline.Release()
		b.Pipeline = nil
	}
	if b.Surface != nil {
		b.Surface.Release()
		b.Surface = nil
	}
	b.Renderer = nil
	if b.Context != nil {
		inst := b.Context.Instance
		b.Context.Release()
		b.Context = nil
		if inst != nil {
			inst.Release()
		}
	}
}
