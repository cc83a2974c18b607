// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
)

// Surface manages the presentation surface of a window: the chain of
// presentable images and its current configuration. WebGPU does not
// track window size changes, so [Surface.Resize] must be driven from
// window events, and the surface must be reconfigured before the next
// image is acquired.
type Surface struct {
	chain  Chain
	config SurfaceConfig

	// context the surface was configured against, set by Configure
	gc *Context

	// number of times the configuration was applied to the chain
	configured int
}

// BindSurface creates the presentation surface for the given window.
// It must be called before the adapter is requested, so that the
// adapter can be chosen to be compatible with it.
func BindSurface(inst Instance, src SurfaceSource) (*Surface, error) {
	ch, err := inst.CreateSurface(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSurfaceCreation, err)
	}
	if ch == nil {
		return nil, ErrSurfaceCreation
	}
	return &Surface{chain: ch}, nil
}

// Chain returns the driver chain of this surface.
func (sf *Surface) Chain() Chain { return sf.chain }

// Capabilities returns the formats, present modes and alpha modes
// that the adapter supports for this surface.
func (sf *Surface) Capabilities(a Adapter) Capabilities {
	return sf.chain.Capabilities(a)
}

// Configure stores the given configuration and applies it to the chain.
// A config with a zero dimension is stored but not applied, and
// Configure returns false; the chain is then configured by the first
// valid [Surface.Resize].
func (sf *Surface) Configure(gc *Context, cfg SurfaceConfig) bool {
	sf.gc = gc
	sf.config = cfg
	return sf.apply()
}

func (sf *Surface) apply() bool {
	if sf.gc == nil || !sf.config.Valid() {
		return false
	}
	sf.chain.Configure(sf.gc.Adapter, sf.gc.Device, &sf.config)
	sf.configured++
	slog.Debug("gpu: configured surface", "config", sf.config.String())
	return true
}

// Resize updates the surface size and reconfigures the chain. Every
// resize notification with a non-zero size reconfigures, including one
// that restores the size from before a minimize. A zero width or height
// (a minimized window) is skipped and the previous size is kept.
// It returns true if the chain was reconfigured.
func (sf *Surface) Resize(width, height uint32) bool {
	if width == 0 || height == 0 {
		slog.Debug("gpu: skipping zero-size resize", "width", width, "height", height)
		return false
	}
	sf.config.Width = width
	sf.config.Height = height
	return sf.apply()
}

// Reconfigure reapplies the current configuration, as needed after
// the chain reports that it is outdated. It returns false if the
// current size is not valid.
func (sf *Surface) Reconfigure() bool {
	return sf.apply()
}

// Ready returns true if the chain has been configured with a valid size,
// so that images can be acquired.
func (sf *Surface) Ready() bool {
	return sf.configured > 0 && sf.config.Valid()
}

// Acquire returns a view onto the next presentable image.
// Errors wrap one of [ErrSurfaceOutdated], [ErrSurfaceLost] or [ErrTimeout].
func (sf *Surface) Acquire() (TextureView, error) {
	if !sf.Ready() {
		return nil, fmt.Errorf("%w: not configured", ErrSurfaceOutdated)
	}
	return sf.chain.CurrentTexture()
}

// Present schedules the acquired image for display.
func (sf *Surface) Present() {
	sf.chain.Present()
}

// Config returns the current configuration.
func (sf *Surface) Config() SurfaceConfig { return sf.config }

// Size returns the current configured size.
func (sf *Surface) Size() (width, height uint32) { return sf.config.Size32() }

// Configured returns the number of times the configuration
// has been applied to the chain.
func (sf *Surface) Configured() int { return sf.configured }

func (sf *Surface) Release() {
	if sf.chain != nil {
		sf.chain.Release()
		sf.chain = nil
	}
	sf.gc = nil
}
