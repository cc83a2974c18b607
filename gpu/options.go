// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/quad/shaders"
	"github.com/cogentcore/webgpu/wgpu"
)

// DefaultMaxFrameLatency is the default number of images in flight.
const DefaultMaxFrameLatency = 2

// Options are the settings used to build a [Bundle].
type Options struct {
	// Label prefixes the names of all created GPU objects.
	Label string

	// adapter selection hint; Undefined means balanced
	PowerPreference wgpu.PowerPreference

	// requested present mode; falls back to FIFO if unsupported
	PresentMode wgpu.PresentMode

	MaxFrameLatency uint32

	// WGSL source with vs_main and fs_main entry points
	Shader string
}

// Defaults sets the default options: balanced power, FIFO presentation,
// two frames of latency and the quad shader.
func (o *Options) Defaults() {
	o.Label = "quad"
	o.PowerPreference = wgpu.PowerPreferenceUndefined
	o.PresentMode = wgpu.PresentModeFifo
	o.MaxFrameLatency = DefaultMaxFrameLatency
	o.Shader = shaders.Quad
}

// NewOptions returns new [Options] with default values.
func NewOptions() *Options {
	o := &Options{}
	o.Defaults()
	return o
}

var powerPreferences = map[string]wgpu.PowerPreference{
	"":                 wgpu.PowerPreferenceUndefined,
	"balanced":         wgpu.PowerPreferenceUndefined,
	"low-power":        wgpu.PowerPreferenceLowPower,
	"high-performance": wgpu.PowerPreferenceHighPerformance,
}

var presentModes = map[string]wgpu.PresentMode{
	"fifo":      wgpu.PresentModeFifo,
	"mailbox":   wgpu.PresentModeMailbox,
	"immediate": wgpu.PresentModeImmediate,
}

// ParsePowerPreference returns the power preference for the given config name.
func ParsePowerPreference(s string) (wgpu.PowerPreference, error) {
	if pp, ok := powerPreferences[s]; ok {
		return pp, nil
	}
	return wgpu.PowerPreferenceUndefined, fmt.Errorf("gpu: unknown power preference %q", s)
}

// ParsePresentMode returns the present mode for the given config name.
// The empty string is FIFO.
func ParsePresentMode(s string) (wgpu.PresentMode, error) {
	if s == "" {
		return wgpu.PresentModeFifo, nil
	}
	if pm, ok := presentModes[s]; ok {
		return pm, nil
	}
	return wgpu.PresentModeFifo, fmt.Errorf("gpu: unknown present mode %q", s)
}
