// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app runs the quad: it reacts to window lifecycle events by
// setting up rendering on first activation, reconfiguring the surface
// on resize, rendering a frame on each redraw request, and stopping
// on close.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"cogentcore.org/quad/base/errors"
	"cogentcore.org/quad/config"
	"cogentcore.org/quad/events"
	"cogentcore.org/quad/gpu"
	"cogentcore.org/quad/system"
)

// States are the states of an [App].
type States int32

const (
	// Uninitialized is the initial state: no GPU resources exist yet.
	Uninitialized States = iota

	// Active means the window has been activated and the
	// rendering bundle exists.
	Active

	// Closing means the app is shutting down; no more events are handled.
	Closing
)

func (st States) String() string {
	switch st {
	case Uninitialized:
		return "Uninitialized"
	case Active:
		return "Active"
	case Closing:
		return "Closing"
	}
	return fmt.Sprintf("States(%d)", int32(st))
}

// App is the application state machine. It is driven from one thread:
// all of its methods must be called on the thread that owns the window.
type App struct {
	// Config is the app configuration.
	Config *config.Config

	driver gpu.Driver
	window system.Window
	queue  *events.Queue
	opts   *gpu.Options

	state States

	// bundle is non-nil exactly when state is Active.
	bundle *gpu.Bundle

	// consecutive outdated image acquisitions
	outdated int
}

// New returns a new App rendering to the given window with the given driver.
// Events sent to the queue by the window are handled by [App.Run].
func New(cfg *config.Config, drv gpu.Driver, win system.Window, q *events.Queue) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := Options(cfg)
	if err != nil {
		return nil, err
	}
	return &App{Config: cfg, driver: drv, window: win, queue: q, opts: opts}, nil
}

// Options returns the GPU options for the given config.
func Options(cfg *config.Config) (*gpu.Options, error) {
	opts := gpu.NewOptions()
	if cfg.Title != "" {
		opts.Label = cfg.Title
	}
	pp, err := gpu.ParsePowerPreference(cfg.PowerPreference)
	if err != nil {
		return nil, err
	}
	opts.PowerPreference = pp
	pm, err := gpu.ParsePresentMode(cfg.PresentMode)
	if err != nil {
		return nil, err
	}
	opts.PresentMode = pm
	opts.MaxFrameLatency = cfg.MaxFrameLatency
	return opts, nil
}

// State returns the current state.
func (a *App) State() States { return a.state }

// Bundle returns the rendering bundle, which is nil unless Active.
func (a *App) Bundle() *gpu.Bundle { return a.bundle }

// Handle handles one window event. The returned error is fatal: it is
// only returned when activation fails or a frame cannot possibly be
// rendered. Events are ignored while Closing, and events other than
// activation and close are ignored before activation.
func (a *App) Handle(ev events.Event) error {
	if a.state == Closing {
		return nil
	}
	switch ev.Type() {
	case events.Activate:
		return a.activate()
	case events.CloseRequested:
		a.close("close requested")
	case events.Resize:
		if a.state != Active {
			return nil
		}
		re, ok := ev.(events.ResizeEvent)
		if !ok {
			return fmt.Errorf("app: unexpected resize event type %T", ev)
		}
		a.resize(re.Width, re.Height)
	case events.RedrawRequested:
		if a.state != Active {
			return nil
		}
		return a.redraw()
	}
	return nil
}

// activate creates the rendering bundle, once.
func (a *App) activate() error {
	if a.state == Active {
		slog.Debug("app: already active")
		return nil
	}
	b, err := gpu.NewBundle(a.driver, a.window, a.opts)
	if err != nil {
		return err
	}
	a.bundle = b
	a.state = Active
	cfg := b.Surface.Config()
	slog.Info("app: active", "surface", cfg.String())
	a.window.RequestRedraw()
	return nil
}

func (a *App) resize(width, height uint32) {
	sf := a.bundle.Surface
	if sf.Resize(width, height) {
		slog.Debug("app: resized", "width", width, "height", height, "configured", sf.Configured())
		a.window.RequestRedraw()
	}
}

// redraw renders one frame, handling acquisition failures: an outdated
// surface is reconfigured and the frame skipped, and a timeout skips the
// frame. A lost surface closes the app, as does a surface that is still
// outdated after Config.MaxOutdated consecutive reconfigurations.
func (a *App) redraw() error {
	sf := a.bundle.Surface
	if !sf.Ready() {
		return nil // minimized
	}
	err := a.bundle.Renderer.RenderFrame()
	switch {
	case err == nil:
		a.outdated = 0
	case errors.Is(err, gpu.ErrSurfaceLost):
		slog.Error("app: surface lost", "err", err)
		a.close("surface lost")
		return nil
	case errors.Is(err, gpu.ErrSurfaceOutdated):
		a.outdated++
		if limit := a.Config.MaxOutdated; limit > 0 && a.outdated > limit {
			slog.Error("app: surface still outdated after reconfiguring", "reconfigurations", limit, "err", err)
			a.close("surface lost")
			return nil
		}
		slog.Debug("app: surface outdated, reconfiguring", "err", err)
		sf.Reconfigure()
	case errors.Is(err, gpu.ErrTimeout):
		slog.Warn("app: frame skipped", "err", err)
	case errors.Is(err, gpu.ErrFormatMismatch):
		return err
	default:
		errors.Log(err)
	}
	if a.Config.Continuous {
		a.window.RequestRedraw()
	}
	return nil
}

func (a *App) close(reason string) {
	var frames uint64
	if a.bundle != nil {
		frames = a.bundle.Renderer.Frames()
	}
	slog.Info("app: closing", "reason", reason, "frames", frames)
	a.state = Closing
}

// Run handles window events in arrival order until the app is Closing,
// a fatal error occurs, or the context is canceled. It releases all
// GPU resources before returning; the window is left to the caller.
func (a *App) Run(ctx context.Context) error {
	defer a.Release()
	stop := context.AfterFunc(ctx, a.window.Wake)
	defer stop()
	for {
		var err error
		a.queue.Drain(func(ev events.Event) bool {
			err = a.Handle(ev)
			return err == nil && a.state != Closing
		})
		if err != nil {
			return err
		}
		if a.state == Closing {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		a.window.PollEvents(a.queue.Len() == 0)
	}
}

// Release releases the rendering bundle, if any.
func (a *App) Release() {
	if a.bundle != nil {
		a.bundle.Release()
		a.bundle = nil
	}
	if a.state == Active {
		a.state = Closing
	}
}
