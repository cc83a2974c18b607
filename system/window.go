// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the OS window that the quad is presented to,
// translating its lifecycle into [events.Event] values.
package system

import (
	"sync/atomic"

	"cogentcore.org/quad/base/errors"
	"cogentcore.org/quad/events"
	"cogentcore.org/quad/gpu"
)

// ErrNoDisplay is returned by [NewWindow] on platforms without
// a desktop windowing system.
var ErrNoDisplay = errors.New("system: no display available on this platform")

// Window is an OS window that a surface can be created for.
// All methods except Wake must be called on the main thread.
type Window interface {
	gpu.SurfaceSource

	// PollEvents processes pending OS events, sending the resulting
	// events to the window's queue. If wait is true and no redraw is
	// pending, it blocks until at least one OS event arrives or Wake is called.
	PollEvents(wait bool)

	// RequestRedraw schedules a [events.RedrawEvent]. Requests made before
	// the next PollEvents are coalesced into a single event.
	RequestRedraw()

	// Wake unblocks a waiting PollEvents. It is safe to call from any goroutine.
	Wake()

	// Closed returns true once the user has asked to close the window.
	Closed() bool

	// Destroy closes the window and releases the windowing system.
	Destroy()
}

// redrawLatch coalesces redraw requests between event polls.
type redrawLatch struct {
	pending atomic.Bool
}

// request marks a redraw as pending.
func (rl *redrawLatch) request() {
	rl.pending.Store(true)
}

// isPending returns true if a redraw has been requested and not yet flushed.
func (rl *redrawLatch) isPending() bool {
	return rl.pending.Load()
}

// flush sends one redraw event if any were requested, and clears the request.
func (rl *redrawLatch) flush(q *events.Queue) bool {
	if !rl.pending.Swap(false) {
		return false
	}
	q.Send(events.RedrawEvent{})
	return true
}
