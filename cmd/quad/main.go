// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command quad opens a window and renders a colored quad to it
// with WebGPU until the window is closed.
//
// Settings are read from the TOML or YAML file named by the QUAD_CONFIG
// environment variable, if set. The log level is reloaded when that
// file changes; other settings take effect on the next start.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"cogentcore.org/quad/app"
	"cogentcore.org/quad/base/errors"
	"cogentcore.org/quad/base/logx"
	"cogentcore.org/quad/config"
	"cogentcore.org/quad/events"
	"cogentcore.org/quad/gpu/webgpu"
	"cogentcore.org/quad/system"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "quad:", err)
		os.Exit(1)
	}
}

func run() error {
	logx.SetDefaultLogger()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	lv, err := logx.LevelFromString(cfg.LogLevel)
	if errors.Log(err) == nil {
		logx.SetLevel(lv)
	}

	q := events.NewQueue()
	win, err := system.NewWindow(cfg.Title, cfg.Width, cfg.Height, q)
	if err != nil {
		return err
	}
	defer win.Destroy()

	a, err := app.New(cfg, &webgpu.Driver{}, win, q)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if fn := os.Getenv(config.EnvFile); fn != "" {
		errors.Log(config.Watch(ctx, fn, reloadLogLevel))
	}
	err = a.Run(ctx)
	if errors.Is(err, context.Canceled) {
		slog.Info("quad: interrupted")
		return nil
	}
	return err
}

func reloadLogLevel(c *config.Config) {
	lv, err := logx.LevelFromString(c.LogLevel)
	if errors.Log(err) != nil {
		return
	}
	logx.SetLevel(lv)
	slog.Info("quad: log level reloaded", "level", lv)
}
