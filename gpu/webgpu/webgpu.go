// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package webgpu implements [gpu.Driver] with WebGPU, through
// the wgpu-native bindings of github.com/cogentcore/webgpu.
package webgpu

import (
	"fmt"

	"cogentcore.org/quad/base/errors"
	"cogentcore.org/quad/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

var (
	_ gpu.Driver         = (*Driver)(nil)
	_ gpu.Instance       = (*Instance)(nil)
	_ gpu.Adapter        = (*Adapter)(nil)
	_ gpu.Chain          = (*Chain)(nil)
	_ gpu.Device         = (*Device)(nil)
	_ gpu.CommandEncoder = (*CommandEncoder)(nil)
	_ gpu.RenderPass     = (*RenderPass)(nil)
)

// Driver is the WebGPU [gpu.Driver]. The zero value is ready to use.
type Driver struct{}

// NewInstance creates a new WebGPU instance using the default backends
// for the platform (Vulkan, Metal, DX12 or GL).
func (d *Driver) NewInstance() (gpu.Instance, error) {
	inst := wgpu.CreateInstance(nil)
	if inst == nil {
		return nil, errors.New("webgpu: could not create instance")
	}
	return &Instance{inst: inst}, nil
}

// Instance wraps a [wgpu.Instance].
type Instance struct {
	inst *wgpu.Instance
}

func (in *Instance) CreateSurface(src gpu.SurfaceSource) (gpu.Chain, error) {
	desc := src.SurfaceDescriptor()
	if desc == nil {
		return nil, errors.New("webgpu: window has no surface descriptor")
	}
	sf := in.inst.CreateSurface(desc)
	if sf == nil {
		return nil, errors.New("webgpu: CreateSurface returned nil")
	}
	return &Chain{surface: sf, src: src}, nil
}

func (in *Instance) RequestAdapter(opts *gpu.AdapterOptions) (gpu.Adapter, error) {
	ro := &wgpu.RequestAdapterOptions{
		PowerPreference: opts.PowerPreference,
	}
	if ch, ok := opts.CompatibleSurface.(*Chain); ok {
		ro.CompatibleSurface = ch.surface
	}
	a, err := in.inst.RequestAdapter(ro)
	if err != nil {
		return nil, err
	}
	return &Adapter{adapter: a}, nil
}

func (in *Instance) Release() {
	in.inst.Release()
}

// Adapter wraps a [wgpu.Adapter].
type Adapter struct {
	adapter *wgpu.Adapter
}

func (a *Adapter) Info() gpu.AdapterInfo {
	info := a.adapter.GetInfo()
	return gpu.AdapterInfo{
		Name:        info.Name,
		Vendor:      info.VendorName,
		Driver:      info.DriverDescription,
		AdapterType: info.AdapterType.String(),
		Backend:     info.BackendType.String(),
	}
}

func (a *Adapter) RequestDevice(label string) (gpu.Device, error) {
	dev, err := a.adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: label,
	})
	if err != nil {
		return nil, err
	}
	return &Device{device: dev, queue: &Queue{queue: dev.GetQueue()}}, nil
}

func (a *Adapter) Release() {
	a.adapter.Release()
}

// Chain wraps a [wgpu.Surface].
type Chain struct {
	surface *wgpu.Surface
	src     gpu.SurfaceSource
}

func (c *Chain) Capabilities(a gpu.Adapter) gpu.Capabilities {
	caps := c.surface.GetCapabilities(a.(*Adapter).adapter)
	return gpu.Capabilities{
		Formats:      caps.Formats,
		PresentModes: caps.PresentModes,
		AlphaModes:   caps.AlphaModes,
	}
}

// Configure applies the configuration to the surface. The binding
// manages the number of images in flight itself, so MaxFrameLatency
// is not passed on.
func (c *Chain) Configure(a gpu.Adapter, d gpu.Device, cfg *gpu.SurfaceConfig) {
	c.surface.Configure(a.(*Adapter).adapter, d.(*Device).device, &wgpu.SurfaceConfiguration{
		Usage:       cfg.Usage,
		Format:      cfg.Format,
		Width:       cfg.Width,
		Height:      cfg.Height,
		PresentMode: cfg.PresentMode,
		AlphaMode:   cfg.AlphaMode,
	})
}

// closer is implemented by windows that can report being closed.
type closer interface {
	Closed() bool
}

// CurrentTexture acquires the next surface image. The binding does not
// report the acquisition status, so failures are reported as outdated,
// which the caller handles by reconfiguring, unless the window has
// been closed, which is reported as lost.
func (c *Chain) CurrentTexture() (gpu.TextureView, error) {
	tex, err := c.surface.GetCurrentTexture()
	if err != nil {
		if cw, ok := c.src.(closer); ok && cw.Closed() {
			return nil, fmt.Errorf("%w: %w", gpu.ErrSurfaceLost, err)
		}
		return nil, fmt.Errorf("%w: %w", gpu.ErrSurfaceOutdated, err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, fmt.Errorf("%w: %w", gpu.ErrSurfaceOutdated, err)
	}
	return &TextureView{texture: tex, view: view}, nil
}

func (c *Chain) Present() {
	c.surface.Present()
}

func (c *Chain) Release() {
	c.surface.Release()
}

// TextureView wraps an acquired surface texture and its view.
type TextureView struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
}

func (tv *TextureView) Release() {
	tv.view.Release()
	tv.texture.Release()
}

// Device wraps a [wgpu.Device].
type Device struct {
	device *wgpu.Device
	queue  *Queue
}

func (d *Device) Queue() gpu.Queue { return d.queue }

func (d *Device) CreateVertexBuffer(label string, contents []byte) (gpu.Buffer, error) {
	buf, err := d.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: contents,
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return nil, err
	}
	return &Buffer{buffer: buf, size: uint64(len(contents))}, nil
}

func (d *Device) CreateShaderModule(label, wgsl string) (gpu.ShaderModule, error) {
	sm, err := d.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: wgsl},
	})
	if err != nil {
		return nil, err
	}
	return &ShaderModule{module: sm}, nil
}

func (d *Device) CreateRenderPipeline(desc *gpu.RenderPipelineDescriptor) (gpu.RenderPipeline, error) {
	sm := desc.Module.(*ShaderModule).module
	layout, err := d.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: desc.Label,
	})
	if err != nil {
		return nil, err
	}
	rp, err := d.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  desc.Label,
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     sm,
			EntryPoint: desc.VertexEntry,
			Buffers:    desc.Buffers,
		},
		Primitive:   desc.Primitive,
		Multisample: desc.Multisample,
		Fragment: &wgpu.FragmentState{
			Module:     sm,
			EntryPoint: desc.FragmentEntry,
			Targets:    desc.Targets,
		},
	})
	if err != nil {
		layout.Release()
		return nil, err
	}
	return &RenderPipeline{pipeline: rp, layout: layout}, nil
}

func (d *Device) CreateCommandEncoder(label string) (gpu.CommandEncoder, error) {
	cmd, err := d.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: label,
	})
	if err != nil {
		return nil, err
	}
	return &CommandEncoder{encoder: cmd}, nil
}

func (d *Device) Release() {
	d.queue.queue.Release()
	d.device.Release()
}

// Queue wraps a [wgpu.Queue].
type Queue struct {
	queue *wgpu.Queue
}

func (q *Queue) Submit(cb gpu.CommandBuffer) {
	q.queue.Submit(cb.(*CommandBuffer).buffer)
}

// Buffer wraps a [wgpu.Buffer].
type Buffer struct {
	buffer *wgpu.Buffer
	size   uint64
}

func (b *Buffer) Size() uint64 { return b.size }

func (b *Buffer) Release() {
	b.buffer.Release()
}

// ShaderModule wraps a [wgpu.ShaderModule].
type ShaderModule struct {
	module *wgpu.ShaderModule
}

func (sm *ShaderModule) Release() {
	sm.module.Release()
}

// RenderPipeline wraps a [wgpu.RenderPipeline] and its layout.
type RenderPipeline struct {
	pipeline *wgpu.RenderPipeline
	layout   *wgpu.PipelineLayout
}

func (rp *RenderPipeline) Release() {
	rp.pipeline.Release()
	rp.layout.Release()
}

// CommandEncoder wraps a [wgpu.CommandEncoder].
type CommandEncoder struct {
	encoder *wgpu.CommandEncoder
}

func (ce *CommandEncoder) BeginRenderPass(desc *gpu.RenderPassDescriptor) gpu.RenderPass {
	rp := ce.encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       desc.View.(*TextureView).view,
			LoadOp:     desc.LoadOp,
			StoreOp:    desc.StoreOp,
			ClearValue: desc.ClearValue,
		}},
	})
	return &RenderPass{pass: rp}
}

func (ce *CommandEncoder) Finish() (gpu.CommandBuffer, error) {
	cb, err := ce.encoder.Finish(nil)
	if err != nil {
		return nil, err
	}
	return &CommandBuffer{buffer: cb}, nil
}

func (ce *CommandEncoder) Release() {
	ce.encoder.Release()
}

// CommandBuffer wraps a [wgpu.CommandBuffer].
type CommandBuffer struct {
	buffer *wgpu.CommandBuffer
}

func (cb *CommandBuffer) Release() {
	cb.buffer.Release()
}

// RenderPass wraps a [wgpu.RenderPassEncoder].
type RenderPass struct {
	pass *wgpu.RenderPassEncoder
}

func (rp *RenderPass) SetPipeline(pl gpu.RenderPipeline) {
	rp.pass.SetPipeline(pl.(*RenderPipeline).pipeline)
}

func (rp *RenderPass) SetVertexBuffer(slot uint32, buf gpu.Buffer) {
	rp.pass.SetVertexBuffer(slot, buf.(*Buffer).buffer, 0, wgpu.WholeSize)
}

func (rp *RenderPass) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	rp.pass.Draw(vertexCount, instanceCount, firstVertex, firstInstance)
}

func (rp *RenderPass) End() {
	rp.pass.End()
}

func (rp *RenderPass) Release() {
	rp.pass.Release()
}
