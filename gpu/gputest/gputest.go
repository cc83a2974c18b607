// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides a fake [gpu.Driver] that records every call
// instead of talking to a GPU, with hooks to inject failures.
// It is not safe for concurrent use.
package gputest

import (
	"fmt"

	"cogentcore.org/quad/base/errors"
	"cogentcore.org/quad/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// ErrInjected is the default error returned by injected failures.
var ErrInjected = errors.New("gputest: injected failure")

// Draw is a recorded draw call.
type Draw struct {
	VertexCount, InstanceCount, FirstVertex, FirstInstance uint32
}

// Pass is a recorded render pass.
type Pass struct {
	LoadOp     wgpu.LoadOp
	StoreOp    wgpu.StoreOp
	ClearValue wgpu.Color

	// Pipeline is the label of the bound pipeline, if any.
	Pipeline string

	// VertexBuffers maps slot to the size of the bound buffer.
	VertexBuffers map[uint32]uint64

	Draws []Draw
	Ended bool
}

// Submission is a recorded command buffer submitted to the queue.
type Submission struct {
	Label  string
	Passes []*Pass
}

// Driver is a recording fake [gpu.Driver].
type Driver struct {

	// Capabilities reported for every surface.
	Caps gpu.Capabilities

	// Info reported by the adapter.
	Info gpu.AdapterInfo

	// injected failures: a non-nil error makes the matching call fail
	InstanceErr error
	SurfaceErr  error
	AdapterErr  error
	DeviceErr   error
	ShaderErr   error
	PipelineErr error
	EncoderErr  error

	// AcquireErrs are returned by successive image acquisitions;
	// a nil entry succeeds. Once exhausted, acquisitions succeed.
	AcquireErrs []error

	// AdapterOptions is the last adapter request.
	AdapterOptions gpu.AdapterOptions

	// Configs records every configuration applied to a chain.
	Configs []gpu.SurfaceConfig

	// Pipelines records every pipeline descriptor.
	Pipelines []gpu.RenderPipelineDescriptor

	// BufferContents records the contents of every vertex buffer.
	BufferContents [][]byte

	// Submissions records every submitted command buffer.
	Submissions []*Submission

	Instances int
	Acquires  int
	Presents  int

	// Released records the kind of every released object, in order.
	Released []string
}

// New returns a new Driver whose surfaces support two sRGB formats,
// FIFO and mailbox presentation, and opaque alpha.
func New() *Driver {
	return &Driver{
		Caps: gpu.Capabilities{
			Formats:      []wgpu.TextureFormat{wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatRGBA8UnormSrgb},
			PresentModes: []wgpu.PresentMode{wgpu.PresentModeFifo, wgpu.PresentModeMailbox},
			AlphaModes:   []wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModeOpaque},
		},
		Info: gpu.AdapterInfo{
			Name:        "gputest adapter",
			Vendor:      "gputest",
			Driver:      "recording",
			AdapterType: "CPU",
			Backend:     "Null",
		},
	}
}

// Draws returns all draw calls across all submissions.
func (d *Driver) Draws() []Draw {
	var ds []Draw
	for _, s := range d.Submissions {
		for _, p := range s.Passes {
			ds = append(ds, p.Draws...)
		}
	}
	return ds
}

// LastConfig returns the last applied configuration, or the zero value.
func (d *Driver) LastConfig() gpu.SurfaceConfig {
	if len(d.Configs) == 0 {
		return gpu.SurfaceConfig{}
	}
	return d.Configs[len(d.Configs)-1]
}

// ReleaseCount returns how many objects of the given kind were released.
func (d *Driver) ReleaseCount(kind string) int {
	n := 0
	for _, k := range d.Released {
		if k == kind {
			n++
		}
	}
	return n
}

func (d *Driver) release(kind string) {
	d.Released = append(d.Released, kind)
}

func (d *Driver) NewInstance() (gpu.Instance, error) {
	if d.InstanceErr != nil {
		return nil, d.InstanceErr
	}
	d.Instances++
	return &instance{d: d}, nil
}

type instance struct{ d *Driver }

func (in *instance) CreateSurface(src gpu.SurfaceSource) (gpu.Chain, error) {
	if in.d.SurfaceErr != nil {
		return nil, in.d.SurfaceErr
	}
	return &chain{d: in.d}, nil
}

func (in *instance) RequestAdapter(opts *gpu.AdapterOptions) (gpu.Adapter, error) {
	in.d.AdapterOptions = *opts
	if in.d.AdapterErr != nil {
		return nil, in.d.AdapterErr
	}
	return &adapter{d: in.d}, nil
}

func (in *instance) Release() { in.d.release("instance") }

type adapter struct{ d *Driver }

func (a *adapter) Info() gpu.AdapterInfo { return a.d.Info }

func (a *adapter) RequestDevice(label string) (gpu.Device, error) {
	if a.d.DeviceErr != nil {
		return nil, a.d.DeviceErr
	}
	return &device{d: a.d, queue: &queue{d: a.d}}, nil
}

func (a *adapter) Release() { a.d.release("adapter") }

type chain struct {
	d          *Driver
	configured bool
}

func (c *chain) Capabilities(a gpu.Adapter) gpu.Capabilities { return c.d.Caps }

func (c *chain) Configure(a gpu.Adapter, dev gpu.Device, cfg *gpu.SurfaceConfig) {
	c.configured = true
	c.d.Configs = append(c.d.Configs, *cfg)
}

func (c *chain) CurrentTexture() (gpu.TextureView, error) {
	c.d.Acquires++
	if len(c.d.AcquireErrs) > 0 {
		err := c.d.AcquireErrs[0]
		c.d.AcquireErrs = c.d.AcquireErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	if !c.configured {
		return nil, fmt.Errorf("%w: chain not configured", gpu.ErrSurfaceOutdated)
	}
	return &view{d: c.d}, nil
}

func (c *chain) Present() { c.d.Presents++ }

func (c *chain) Release() { c.d.release("surface") }

type view struct{ d *Driver }

func (v *view) Release() { v.d.release("view") }

type device struct {
	d     *Driver
	queue *queue
}

func (dv *device) Queue() gpu.Queue { return dv.queue }

func (dv *device) CreateVertexBuffer(label string, contents []byte) (gpu.Buffer, error) {
	b := make([]byte, len(contents))
	copy(b, contents)
	dv.d.BufferContents = append(dv.d.BufferContents, b)
	return &buffer{d: dv.d, size: uint64(len(b))}, nil
}

func (dv *device) CreateShaderModule(label, wgsl string) (gpu.ShaderModule, error) {
	if dv.d.ShaderErr != nil {
		return nil, dv.d.ShaderErr
	}
	return &shader{d: dv.d}, nil
}

func (dv *device) CreateRenderPipeline(desc *gpu.RenderPipelineDescriptor) (gpu.RenderPipeline, error) {
	if dv.d.PipelineErr != nil {
		return nil, dv.d.PipelineErr
	}
	dv.d.Pipelines = append(dv.d.Pipelines, *desc)
	return &pipeline{d: dv.d, label: desc.Label}, nil
}

func (dv *device) CreateCommandEncoder(label string) (gpu.CommandEncoder, error) {
	if dv.d.EncoderErr != nil {
		return nil, dv.d.EncoderErr
	}
	return &encoder{d: dv.d, sub: &Submission{Label: label}}, nil
}

func (dv *device) Release() { dv.d.release("device") }

type queue struct{ d *Driver }

func (q *queue) Submit(cb gpu.CommandBuffer) {
	q.d.Submissions = append(q.d.Submissions, cb.(*commandBuffer).sub)
}

type buffer struct {
	d    *Driver
	size uint64
}

func (b *buffer) Size() uint64 { return b.size }
func (b *buffer) Release()     { b.d.release("buffer") }

type shader struct{ d *Driver }

func (s *shader) Release() { s.d.release("shader") }

type pipeline struct {
	d     *Driver
	label string
}

func (p *pipeline) Release() { p.d.release("pipeline") }

type encoder struct {
	d   *Driver
	sub *Submission
}

func (e *encoder) BeginRenderPass(desc *gpu.RenderPassDescriptor) gpu.RenderPass {
	p := &Pass{
		LoadOp:        desc.LoadOp,
		StoreOp:       desc.StoreOp,
		ClearValue:    desc.ClearValue,
		VertexBuffers: map[uint32]uint64{},
	}
	e.sub.Passes = append(e.sub.Passes, p)
	return &renderPass{d: e.d, pass: p}
}

func (e *encoder) Finish() (gpu.CommandBuffer, error) {
	return &commandBuffer{d: e.d, sub: e.sub}, nil
}

func (e *encoder) Release() { e.d.release("encoder") }

type commandBuffer struct {
	d   *Driver
	sub *Submission
}

func (cb *commandBuffer) Release() { cb.d.release("commandbuffer") }

type renderPass struct {
	d    *Driver
	pass *Pass
}

func (rp *renderPass) SetPipeline(pl gpu.RenderPipeline) {
	rp.pass.Pipeline = pl.(*pipeline).label
}

func (rp *renderPass) SetVertexBuffer(slot uint32, buf gpu.Buffer) {
	rp.pass.VertexBuffers[slot] = buf.Size()
}

func (rp *renderPass) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	rp.pass.Draws = append(rp.pass.Draws, Draw{vertexCount, instanceCount, firstVertex, firstInstance})
}

func (rp *renderPass) End() { rp.pass.Ended = true }

func (rp *renderPass) Release() { rp.d.release("pass") }

// Window is a fake window of a fixed framebuffer size.
type Window struct {
	Width, Height uint32
}

func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return &wgpu.SurfaceDescriptor{} }

func (w *Window) FramebufferSize() (width, height uint32) { return w.Width, w.Height }
