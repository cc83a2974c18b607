// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the process-wide slog setup: a user
// verbosity level and a text handler with colored level names.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging messages should be shown. Messages at levels at or above
// this level will be shown. The default is [slog.LevelInfo].
var UserLevel = slog.LevelInfo

// LevelFromString parses a level name (debug, info, warn, error),
// case-insensitively. An empty string returns [UserLevel].
func LevelFromString(s string) (slog.Level, error) {
	if s == "" {
		return UserLevel, nil
	}
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return UserLevel, fmt.Errorf("logx: invalid level %q: %w", s, err)
	}
	return lv, nil
}

// levelColors are the termenv colors for each level name.
var levelColors = map[slog.Level]string{
	slog.LevelDebug: "#8a8a8a",
	slog.LevelInfo:  "#5fafff",
	slog.LevelWarn:  "#ffaf00",
	slog.LevelError: "#ff5f5f",
}

// NewHandler returns a [slog.TextHandler] writing to w at [UserLevel].
// Level names are colored when w is a terminal that supports color.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{Level: &levelVar}
	levelVar.Set(UserLevel)
	if out.Profile != termenv.Ascii {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			lv, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			clr, ok := levelColors[lv]
			if !ok {
				return a
			}
			a.Value = slog.StringValue(out.String(lv.String()).Foreground(out.Color(clr)).Bold().String())
			return a
		}
	}
	return slog.NewTextHandler(w, opts)
}

// levelVar backs the handlers made by [NewHandler], so that
// [SetLevel] takes effect on an installed logger.
var levelVar slog.LevelVar

// SetLevel sets [UserLevel] and updates any handler made by [NewHandler].
func SetLevel(lv slog.Level) {
	UserLevel = lv
	levelVar.Set(lv)
}

// SetDefaultLogger sets the default [slog] logger to one
// writing to [os.Stderr] through [NewHandler].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
