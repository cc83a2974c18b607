// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "cogentcore.org/quad/base/errors"

// Setup errors. These are fatal: the app cannot render without
// a context, a surface and a pipeline.
var (
	// ErrNoAdapter is returned when no adapter compatible with the
	// surface is available.
	ErrNoAdapter = errors.New("gpu: no compatible adapter")

	// ErrDeviceCreation is returned when the adapter refuses to create a device.
	ErrDeviceCreation = errors.New("gpu: device creation failed")

	// ErrSurfaceCreation is returned when a presentation surface
	// cannot be bound to the window.
	ErrSurfaceCreation = errors.New("gpu: surface creation failed")

	// ErrShader is returned when the shader module fails to compile.
	ErrShader = errors.New("gpu: shader compilation failed")

	// ErrPipeline is returned when the render pipeline fails to build.
	ErrPipeline = errors.New("gpu: pipeline creation failed")

	// ErrNoSurfaceFormat is returned when the surface reports no
	// supported format or alpha mode for the adapter.
	ErrNoSurfaceFormat = errors.New("gpu: surface has no supported format")

	// ErrFormatMismatch is returned when a pipeline is used with a surface
	// whose format differs from the pipeline's color target.
	ErrFormatMismatch = errors.New("gpu: pipeline format does not match surface format")
)

// Per-frame acquisition errors. A frame that fails with one of these
// has submitted nothing.
var (
	// ErrSurfaceOutdated means the surface no longer matches the window
	// and must be reconfigured before the next frame.
	ErrSurfaceOutdated = errors.New("gpu: surface outdated")

	// ErrSurfaceLost means the surface is permanently unusable.
	ErrSurfaceLost = errors.New("gpu: surface lost")

	// ErrTimeout means no image became available in time.
	// The frame is skipped and the next one may succeed.
	ErrTimeout = errors.New("gpu: surface acquire timeout")
)
