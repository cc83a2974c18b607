// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu_test

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	. "cogentcore.org/quad/gpu"
	"cogentcore.org/quad/gpu/gputest"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBundle(t *testing.T, drv *gputest.Driver, w, h uint32) *Bundle {
	t.Helper()
	b, err := NewBundle(drv, &gputest.Window{Width: w, Height: h}, nil)
	require.NoError(t, err)
	t.Cleanup(b.Release)
	return b
}

func TestVertexLayout(t *testing.T) {
	vl := VertexLayout()
	assert.Equal(t, uint64(VertexSize), vl.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, vl.StepMode)
	require.Len(t, vl.Attributes, 2)
	assert.Equal(t, wgpu.VertexAttribute{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, vl.Attributes[0])
	assert.Equal(t, wgpu.VertexAttribute{Format: wgpu.VertexFormatFloat32x3, Offset: 8, ShaderLocation: 1}, vl.Attributes[1])
}

func TestVertexBytes(t *testing.T) {
	b := VertexBytes(QuadMesh[:])
	require.Len(t, b, 6*VertexSize)

	f := func(i int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	// first vertex: position then color
	assert.Equal(t, []float32{-0.5, -0.5, 1, 0, 0}, []float32{f(0), f(1), f(2), f(3), f(4)})
	// last vertex
	assert.Equal(t, []float32{0.5, 0.5, 0, 0, 1}, []float32{f(25), f(26), f(27), f(28), f(29)})
}

func TestQuadMesh(t *testing.T) {
	// the two triangles share the bottom-right / top-left diagonal
	assert.Equal(t, QuadMesh[1], QuadMesh[4])
	assert.Equal(t, QuadMesh[2], QuadMesh[3])
	corners := map[[2]float32]bool{}
	for _, v := range QuadMesh {
		corners[v.Position] = true
	}
	assert.Len(t, corners, 4)
}

func TestTypes(t *testing.T) {
	assert.Equal(t, 8, Float32Vector2.Bytes())
	assert.Equal(t, 12, Float32Vector3.Bytes())
	assert.Equal(t, wgpu.VertexFormatFloat32x3, Float32Vector3.VertexFormat())
	assert.Equal(t, "Float32Vector2", Float32Vector2.String())
	assert.Equal(t, "UndefinedType", Types(100).String())
}

func TestDefaultSurfaceConfig(t *testing.T) {
	caps := gputest.New().Caps
	opts := NewOptions()

	cfg, err := DefaultSurfaceConfig(caps, 800, 600, opts)
	require.NoError(t, err)
	assert.Equal(t, caps.Formats[0], cfg.Format)
	assert.Equal(t, caps.AlphaModes[0], cfg.AlphaMode)
	assert.Equal(t, wgpu.TextureUsageRenderAttachment, cfg.Usage)
	assert.Equal(t, wgpu.PresentModeFifo, cfg.PresentMode)
	assert.Equal(t, uint32(2), cfg.MaxFrameLatency)
	assert.True(t, cfg.Valid())

	opts.PresentMode = wgpu.PresentModeMailbox
	cfg, err = DefaultSurfaceConfig(caps, 800, 600, opts)
	require.NoError(t, err)
	assert.Equal(t, wgpu.PresentModeMailbox, cfg.PresentMode)

	opts.PresentMode = wgpu.PresentModeImmediate // not supported
	cfg, err = DefaultSurfaceConfig(caps, 800, 600, opts)
	require.NoError(t, err)
	assert.Equal(t, wgpu.PresentModeFifo, cfg.PresentMode)

	cfg, err = DefaultSurfaceConfig(caps, 0, 600, opts)
	require.NoError(t, err)
	assert.False(t, cfg.Valid())

	_, err = DefaultSurfaceConfig(Capabilities{}, 800, 600, opts)
	assert.ErrorIs(t, err, ErrNoSurfaceFormat)
}

func TestParseOptions(t *testing.T) {
	pp, err := ParsePowerPreference("high-performance")
	require.NoError(t, err)
	assert.Equal(t, wgpu.PowerPreferenceHighPerformance, pp)
	pp, err = ParsePowerPreference("balanced")
	require.NoError(t, err)
	assert.Equal(t, wgpu.PowerPreferenceUndefined, pp)
	_, err = ParsePowerPreference("turbo")
	assert.Error(t, err)

	pm, err := ParsePresentMode("mailbox")
	require.NoError(t, err)
	assert.Equal(t, wgpu.PresentModeMailbox, pm)
	pm, err = ParsePresentMode("")
	require.NoError(t, err)
	assert.Equal(t, wgpu.PresentModeFifo, pm)
	_, err = ParsePresentMode("vsync")
	assert.Error(t, err)

	assert.Equal(t, "mailbox", PresentModeName(wgpu.PresentModeMailbox))
}

func TestNewContext(t *testing.T) {
	drv := gputest.New()
	inst, err := drv.NewInstance()
	require.NoError(t, err)
	sf, err := BindSurface(inst, &gputest.Window{Width: 10, Height: 10})
	require.NoError(t, err)

	opts := NewOptions()
	opts.PowerPreference = wgpu.PowerPreferenceLowPower
	gc, err := NewContext(inst, sf, opts)
	require.NoError(t, err)
	assert.Equal(t, sf.Chain(), drv.AdapterOptions.CompatibleSurface)
	assert.Equal(t, wgpu.PowerPreferenceLowPower, drv.AdapterOptions.PowerPreference)
	assert.Equal(t, "gputest adapter", gc.Info.Name)
	assert.NotNil(t, gc.Queue)

	gc.Release()
	assert.Equal(t, []string{"device", "adapter"}, drv.Released)
}

func TestNewContextErrors(t *testing.T) {
	drv := gputest.New()
	drv.AdapterErr = gputest.ErrInjected
	_, err := NewBundle(drv, &gputest.Window{Width: 10, Height: 10}, nil)
	assert.ErrorIs(t, err, ErrNoAdapter)
	assert.ErrorIs(t, err, gputest.ErrInjected)
	assert.Equal(t, []string{"surface", "instance"}, drv.Released)

	drv = gputest.New()
	drv.DeviceErr = gputest.ErrInjected
	_, err = NewBundle(drv, &gputest.Window{Width: 10, Height: 10}, nil)
	assert.ErrorIs(t, err, ErrDeviceCreation)
	assert.Equal(t, 1, drv.ReleaseCount("adapter"))
	assert.Equal(t, 1, drv.ReleaseCount("instance"))

	drv = gputest.New()
	drv.SurfaceErr = gputest.ErrInjected
	_, err = NewBundle(drv, &gputest.Window{Width: 10, Height: 10}, nil)
	assert.ErrorIs(t, err, ErrSurfaceCreation)

	drv = gputest.New()
	drv.ShaderErr = gputest.ErrInjected
	_, err = NewBundle(drv, &gputest.Window{Width: 10, Height: 10}, nil)
	assert.ErrorIs(t, err, ErrShader)
	assert.Equal(t, 1, drv.ReleaseCount("instance"))

	drv = gputest.New()
	drv.PipelineErr = gputest.ErrInjected
	_, err = NewBundle(drv, &gputest.Window{Width: 10, Height: 10}, nil)
	assert.ErrorIs(t, err, ErrPipeline)
	assert.Equal(t, 1, drv.ReleaseCount("shader"))

	drv = gputest.New()
	drv.Caps = Capabilities{}
	_, err = NewBundle(drv, &gputest.Window{Width: 10, Height: 10}, nil)
	assert.ErrorIs(t, err, ErrNoSurfaceFormat)
}

func TestBuildPipeline(t *testing.T) {
	drv := gputest.New()
	b := newBundle(t, drv, 800, 600)

	require.Len(t, drv.Pipelines, 1)
	pd := drv.Pipelines[0]
	assert.Equal(t, VertexEntry, pd.VertexEntry)
	assert.Equal(t, FragmentEntry, pd.FragmentEntry)
	assert.Equal(t, []wgpu.VertexBufferLayout{VertexLayout()}, pd.Buffers)
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, pd.Primitive.Topology)
	assert.Equal(t, wgpu.IndexFormatUndefined, pd.Primitive.StripIndexFormat)
	assert.Equal(t, uint32(1), pd.Multisample.Count)
	require.Len(t, pd.Targets, 1)
	assert.Equal(t, b.Surface.Config().Format, pd.Targets[0].Format)
	assert.Equal(t, &wgpu.BlendStateReplace, pd.Targets[0].Blend)
	assert.Equal(t, wgpu.ColorWriteMaskAll, pd.Targets[0].WriteMask)

	assert.NoError(t, b.Pipeline.CheckFormat(b.Surface.Config().Format))
	assert.ErrorIs(t, b.Pipeline.CheckFormat(wgpu.TextureFormatRGBA16Float), ErrFormatMismatch)
}

func TestVertexBuffer(t *testing.T) {
	drv := gputest.New()
	b := newBundle(t, drv, 800, 600)
	assert.Equal(t, 6, b.VertexBuffer.Count())
	assert.Equal(t, uint64(6*VertexSize), b.VertexBuffer.Size())
	require.Len(t, drv.BufferContents, 1)
	assert.Equal(t, VertexBytes(QuadMesh[:]), drv.BufferContents[0])
}

func TestSurfaceResize(t *testing.T) {
	drv := gputest.New()
	b := newBundle(t, drv, 800, 600)
	sf := b.Surface
	require.Equal(t, 1, sf.Configured())

	assert.True(t, sf.Resize(1024, 768))
	w, h := sf.Size()
	assert.Equal(t, uint32(1024), w)
	assert.Equal(t, uint32(768), h)
	assert.Equal(t, 2, sf.Configured())
	last := drv.LastConfig()
	assert.Equal(t, uint32(1024), last.Width)
	assert.Equal(t, uint32(768), last.Height)
	assert.Equal(t, drv.Configs[0].Format, last.Format)

	// minimized: ignored, previous config kept
	assert.False(t, sf.Resize(0, 768))
	assert.False(t, sf.Resize(1024, 0))
	assert.Equal(t, 2, sf.Configured())
	w, h = sf.Size()
	assert.Equal(t, uint32(1024), w)
	assert.Equal(t, uint32(768), h)

	// restored to the size before the minimize
	assert.True(t, sf.Resize(1024, 768))
	assert.Equal(t, 3, sf.Configured())
	assert.Equal(t, uint32(1024), drv.LastConfig().Width)

	assert.True(t, sf.Reconfigure())
	assert.Equal(t, 4, sf.Configured())
}

func TestSurfaceDeferredConfigure(t *testing.T) {
	drv := gputest.New()
	b := newBundle(t, drv, 0, 0)
	sf := b.Surface
	assert.Equal(t, 0, sf.Configured())
	assert.False(t, sf.Ready())
	assert.False(t, sf.Reconfigure())

	_, err := sf.Acquire()
	assert.ErrorIs(t, err, ErrSurfaceOutdated)
	assert.Equal(t, 0, drv.Acquires)

	assert.True(t, sf.Resize(640, 480))
	assert.True(t, sf.Ready())
	assert.NoError(t, b.Renderer.RenderFrame())
}

func TestRenderFrame(t *testing.T) {
	drv := gputest.New()
	b := newBundle(t, drv, 800, 600)

	require.NoError(t, b.Renderer.RenderFrame())
	require.NoError(t, b.Renderer.RenderFrame())
	assert.Equal(t, uint64(2), b.Renderer.Frames())
	assert.Equal(t, 2, drv.Presents)
	require.Len(t, drv.Submissions, 2)

	for _, s := range drv.Submissions {
		require.Len(t, s.Passes, 1)
		p := s.Passes[0]
		assert.Equal(t, wgpu.LoadOpClear, p.LoadOp)
		assert.Equal(t, wgpu.StoreOpStore, p.StoreOp)
		assert.Equal(t, wgpu.Color{R: 0.05, G: 0.062, B: 0.08, A: 1.0}, p.ClearValue)
		assert.Equal(t, b.Pipeline.Name, p.Pipeline)
		assert.Equal(t, map[uint32]uint64{0: 6 * VertexSize}, p.VertexBuffers)
		assert.Equal(t, []gputest.Draw{{VertexCount: 6, InstanceCount: 1}}, p.Draws)
		assert.True(t, p.Ended)
	}
	assert.Equal(t, 2, drv.ReleaseCount("view"))
	assert.Equal(t, 2, drv.ReleaseCount("pass"))
	assert.Equal(t, 2, drv.ReleaseCount("encoder"))
}

func TestRenderFrameAcquireErrors(t *testing.T) {
	for _, want := range []error{ErrSurfaceOutdated, ErrSurfaceLost, ErrTimeout} {
		drv := gputest.New()
		b := newBundle(t, drv, 800, 600)
		drv.AcquireErrs = []error{want}

		err := b.Renderer.RenderFrame()
		assert.ErrorIs(t, err, want)
		assert.Empty(t, drv.Submissions, "nothing submitted on %v", want)
		assert.Zero(t, drv.Presents)
		assert.Zero(t, b.Renderer.Frames())

		assert.NoError(t, b.Renderer.RenderFrame())
		assert.Len(t, drv.Submissions, 1)
	}
}

func TestRenderFrameEncoderError(t *testing.T) {
	drv := gputest.New()
	b := newBundle(t, drv, 800, 600)
	drv.EncoderErr = gputest.ErrInjected
	err := b.Renderer.RenderFrame()
	assert.True(t, errors.Is(err, gputest.ErrInjected))
	assert.Zero(t, drv.Presents)
	assert.Equal(t, 1, drv.ReleaseCount("view"))
}

func TestBundleRelease(t *testing.T) {
	drv := gputest.New()
	b, err := NewBundle(drv, &gputest.Window{Width: 800, Height: 600}, nil)
	require.NoError(t, err)
	b.Release()
	assert.Equal(t, []string{"buffer", "pipeline", "shader", "surface", "device", "adapter", "instance"}, drv.Released)
	b.Release()
	assert.Len(t, drv.Released, 7)
}
