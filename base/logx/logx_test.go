// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromString(t *testing.T) {
	lv, err := LevelFromString("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lv)

	lv, err = LevelFromString("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lv)

	lv, err = LevelFromString("")
	require.NoError(t, err)
	assert.Equal(t, UserLevel, lv)

	_, err = LevelFromString("loud")
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	defer SetLevel(slog.LevelInfo)
	SetLevel(slog.LevelWarn)

	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf))
	lg.Info("hidden")
	lg.Warn("shown", "w", 800)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "w=800")

	SetLevel(slog.LevelDebug)
	lg.Debug("now shown")
	assert.Contains(t, buf.String(), "now shown")
}
