// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "github.com/cogentcore/webgpu/wgpu"

// Driver creates graphics instances. It is the entry point of a
// graphics backend: gpu/webgpu provides the real one, and
// gpu/gputest provides a recording fake for tests.
type Driver interface {
	NewInstance() (Instance, error)
}

// SurfaceSource is anything a presentation surface can be created for,
// typically an OS window.
type SurfaceSource interface {
	// SurfaceDescriptor returns the platform descriptor of the native window.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// FramebufferSize returns the current drawable size in pixels.
	FramebufferSize() (width, height uint32)
}

// Instance is the root graphics object, from which surfaces
// and adapters are obtained.
type Instance interface {
	CreateSurface(src SurfaceSource) (Chain, error)
	RequestAdapter(opts *AdapterOptions) (Adapter, error)
	Release()
}

// AdapterOptions are the hints used when selecting an adapter.
type AdapterOptions struct {
	// the adapter must be able to present to this chain
	CompatibleSurface Chain

	PowerPreference wgpu.PowerPreference
}

// AdapterInfo describes the selected physical device.
type AdapterInfo struct {
	Name        string
	Vendor      string
	Driver      string
	AdapterType string
	Backend     string
}

// Adapter is a physical device handle.
type Adapter interface {
	Info() AdapterInfo
	RequestDevice(label string) (Device, error)
	Release()
}

// Capabilities is the set of presentation options an adapter
// supports for a given surface, in preference order.
type Capabilities struct {
	Formats      []wgpu.TextureFormat
	PresentModes []wgpu.PresentMode
	AlphaModes   []wgpu.CompositeAlphaMode
}

// Chain is the driver side of a presentation surface:
// the chain of presentable images bound to a window.
type Chain interface {
	Capabilities(a Adapter) Capabilities
	Configure(a Adapter, d Device, cfg *SurfaceConfig)

	// CurrentTexture acquires the next presentable image. Errors wrap
	// one of ErrSurfaceOutdated, ErrSurfaceLost or ErrTimeout.
	CurrentTexture() (TextureView, error)

	Present()
	Release()
}

// TextureView is a view onto an acquired surface image. Releasing it
// releases the underlying image as well.
type TextureView interface {
	Release()
}

// Device is a logical device, the factory for all GPU resources.
type Device interface {
	Queue() Queue
	CreateVertexBuffer(label string, contents []byte) (Buffer, error)
	CreateShaderModule(label, wgsl string) (ShaderModule, error)
	CreateRenderPipeline(desc *RenderPipelineDescriptor) (RenderPipeline, error)
	CreateCommandEncoder(label string) (CommandEncoder, error)
	Release()
}

// Queue is the device submission queue.
type Queue interface {
	Submit(cb CommandBuffer)
}

type Buffer interface {
	Size() uint64
	Release()
}

type ShaderModule interface {
	Release()
}

type RenderPipeline interface {
	Release()
}

type CommandBuffer interface {
	Release()
}

// RenderPipelineDescriptor holds everything needed to build a
// single-target render pipeline from one shader module.
type RenderPipelineDescriptor struct {
	Label string

	Module        ShaderModule
	VertexEntry   string
	FragmentEntry string

	Buffers     []wgpu.VertexBufferLayout
	Primitive   wgpu.PrimitiveState
	Multisample wgpu.MultisampleState
	Targets     []wgpu.ColorTargetState
}

// RenderPassDescriptor describes a render pass with one color attachment.
type RenderPassDescriptor struct {
	View       TextureView
	LoadOp     wgpu.LoadOp
	StoreOp    wgpu.StoreOp
	ClearValue wgpu.Color
}

// CommandEncoder records render passes into a command buffer.
type CommandEncoder interface {
	BeginRenderPass(desc *RenderPassDescriptor) RenderPass
	Finish() (CommandBuffer, error)
	Release()
}

// RenderPass records draw commands.
type RenderPass interface {
	SetPipeline(pl RenderPipeline)
	SetVertexBuffer(slot uint32, buf Buffer)
	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)
	End()
	Release()
}
