// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"slices"

	"github.com/cogentcore/webgpu/wgpu"
)

// SurfaceConfig is the configuration of the presentable image chain.
// It is created once when the surface is first configured and only
// its size changes afterwards.
type SurfaceConfig struct {
	// Usage of the images: RenderAttachment
	Usage wgpu.TextureUsage

	// Format of the images, fixed for the life of the surface
	Format wgpu.TextureFormat

	// size of the images in pixels
	Width  uint32
	Height uint32

	PresentMode wgpu.PresentMode
	AlphaMode   wgpu.CompositeAlphaMode

	// maximum number of images in flight
	MaxFrameLatency uint32
}

// Valid returns true if both dimensions are non-zero, which is
// required before the config can be applied to the chain.
func (sc *SurfaceConfig) Valid() bool {
	return sc.Width > 0 && sc.Height > 0
}

// Size32 returns size as uint32 values
func (sc *SurfaceConfig) Size32() (width, height uint32) {
	return sc.Width, sc.Height
}

// String returns human-readable version of config
func (sc *SurfaceConfig) String() string {
	return fmt.Sprintf("Size: %dx%d  Format: %s  PresentMode: %s  MaxFrameLatency: %d", sc.Width, sc.Height, FormatName(sc.Format), PresentModeName(sc.PresentMode), sc.MaxFrameLatency)
}

// DefaultSurfaceConfig returns the surface config for the given capabilities
// and size: the first supported format and alpha mode, render attachment usage,
// and the requested present mode if supported, else FIFO which every
// surface supports.
func DefaultSurfaceConfig(caps Capabilities, width, height uint32, opts *Options) (SurfaceConfig, error) {
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		return SurfaceConfig{}, ErrNoSurfaceFormat
	}
	pm := wgpu.PresentModeFifo
	if opts.PresentMode != pm && slices.Contains(caps.PresentModes, opts.PresentMode) {
		pm = opts.PresentMode
	}
	lat := opts.MaxFrameLatency
	if lat == 0 {
		lat = DefaultMaxFrameLatency
	}
	return SurfaceConfig{
		Usage:           wgpu.TextureUsageRenderAttachment,
		Format:          caps.Formats[0],
		Width:           width,
		Height:          height,
		PresentMode:     pm,
		AlphaMode:       caps.AlphaModes[0],
		MaxFrameLatency: lat,
	}, nil
}

// FormatName returns a human-readable name for the texture format.
func FormatName(f wgpu.TextureFormat) string {
	if nm, ok := TextureFormatNames[f]; ok {
		return nm
	}
	return fmt.Sprintf("TextureFormat(%d)", f)
}

// PresentModeName returns the config name of the present mode.
func PresentModeName(pm wgpu.PresentMode) string {
	for nm, m := range presentModes {
		if m == pm {
			return nm
		}
	}
	return fmt.Sprintf("PresentMode(%d)", pm)
}

// most commonly available formats: https://WebGPU.gpuinfo.org/listsurfaceformats.php

// TextureFormatNames translates image format into human-readable string
// for most commonly available surface formats
var TextureFormatNames = map[wgpu.TextureFormat]string{
	wgpu.TextureFormatRGBA8UnormSrgb: "RGBA 8bit sRGB colorspace",
	wgpu.TextureFormatRGBA8Unorm:     "RGBA 8bit unsigned linear colorspace",
	wgpu.TextureFormatBGRA8UnormSrgb: "BGRA 8bit sRGB colorspace",
	wgpu.TextureFormatBGRA8Unorm:     "BGRA 8bit unsigned linear colorspace",
	wgpu.TextureFormatRGBA16Float:    "RGBA 16bit floating point linear colorspace",
	wgpu.TextureFormatRGB10A2Unorm:   "RGB 10bit, 2bit alpha, unsigned linear colorspace",
}
