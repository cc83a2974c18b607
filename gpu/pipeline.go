// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// Shader entry point names in the quad shader module.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

// CompileShader creates a shader module from WGSL source.
// Errors wrap [ErrShader].
func CompileShader(dev Device, label, wgsl string) (ShaderModule, error) {
	if wgsl == "" {
		return nil, fmt.Errorf("%w: %s: empty source", ErrShader, label)
	}
	sh, err := dev.CreateShaderModule(label, wgsl)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrShader, label, err)
	}
	return sh, nil
}

// Pipeline is an immutable render pipeline drawing a triangle list from
// one vertex buffer into one color target, with no blending, no depth
// and no multisampling.
type Pipeline struct {
	// unique name of this pipeline
	Name string

	// Format is the color target format the pipeline was built for.
	Format wgpu.TextureFormat

	// Primitive has the settings for graphics primitives: TriangleList
	Primitive wgpu.PrimitiveState

	Multisample wgpu.MultisampleState

	// ColorTarget is the single color target state
	ColorTarget wgpu.ColorTargetState

	shader         ShaderModule
	renderPipeline RenderPipeline
}

// BuildPipeline builds the render pipeline from the vs_main and fs_main
// entry points of the given shader, using the given vertex layout and
// color target format. Errors wrap [ErrPipeline].
func BuildPipeline(dev Device, name string, shader ShaderModule, layout wgpu.VertexBufferLayout, format wgpu.TextureFormat) (*Pipeline, error) {
	pl := &Pipeline{Name: name, Format: format, shader: shader}
	pl.SetGraphicsDefaults()
	pd := &RenderPipelineDescriptor{
		Label:         pl.Name,
		Module:        shader,
		VertexEntry:   VertexEntry,
		FragmentEntry: FragmentEntry,
		Buffers:       []wgpu.VertexBufferLayout{layout},
		Primitive:     pl.Primitive,
		Multisample:   pl.Multisample,
		Targets:       []wgpu.ColorTargetState{pl.ColorTarget},
	}
	rp, err := dev.CreateRenderPipeline(pd)
	if err != nil {
		slog.Error(err.Error())
		return nil, fmt.Errorf("%w: %s: %w", ErrPipeline, name, err)
	}
	pl.renderPipeline = rp
	return pl, nil
}

// SetGraphicsDefaults sets the fixed-function state: triangle list with
// counter-clockwise front faces and no culling, a single sample,
// and replace blending writing all channels of the target format.
func (pl *Pipeline) SetGraphicsDefaults() *Pipeline {
	pl.Primitive = wgpu.PrimitiveState{
		Topology:         wgpu.PrimitiveTopologyTriangleList,
		StripIndexFormat: wgpu.IndexFormatUndefined,
		FrontFace:        wgpu.FrontFaceCCW,
		CullMode:         wgpu.CullModeNone,
	}
	pl.Multisample = wgpu.MultisampleState{
		Count:                  1,
		Mask:                   0xFFFFFFFF,
		AlphaToCoverageEnabled: false,
	}
	pl.ColorTarget = wgpu.ColorTargetState{
		Format:    pl.Format,
		Blend:     &wgpu.BlendStateReplace,
		WriteMask: wgpu.ColorWriteMaskAll,
	}
	return pl
}

// CheckFormat returns [ErrFormatMismatch] if the given surface format
// is not the one this pipeline targets.
func (pl *Pipeline) CheckFormat(format wgpu.TextureFormat) error {
	if format != pl.Format {
		return fmt.Errorf("%w: pipeline %s targets %s, surface is %s", ErrFormatMismatch, pl.Name, FormatName(pl.Format), FormatName(format))
	}
	return nil
}

// BindPipeline binds this pipeline as the one to use for next commands in
// the given render pass.
func (pl *Pipeline) BindPipeline(rp RenderPass) {
	rp.SetPipeline(pl.renderPipeline)
}

func (pl *Pipeline) Release() {
	if pl.renderPipeline != nil {
		pl.renderPipeline.Release()
		pl.renderPipeline = nil
	}
	if pl.shader != nil {
		pl.shader.Release()
		pl.shader = nil
	}
}
