// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen || !((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package system

import "cogentcore.org/quad/events"

// NewWindow returns [ErrNoDisplay]: this platform has no glfw windowing.
func NewWindow(title string, width, height int, q *events.Queue) (Window, error) {
	return nil, ErrNoDisplay
}
