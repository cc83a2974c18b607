// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package system

import (
	"log/slog"

	"cogentcore.org/quad/base/errors"
	"cogentcore.org/quad/events"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: this file contains the glfw dependencies, for desktop platform builds.

// GLFWWindow is a [Window] implemented with glfw.
type GLFWWindow struct {
	win    *glfw.Window
	queue  *events.Queue
	redraw redrawLatch
	closed bool
}

// NewWindow initializes glfw and opens a window with no client graphics API,
// so that a WebGPU surface can be created for it. Window events are sent to
// the given queue, starting with an [events.ActivateEvent].
// IMPORTANT: must be called on the main initial thread!
func NewWindow(title string, width, height int, q *events.Queue) (Window, error) {
	err := glfw.Init()
	if err != nil {
		return nil, errors.Log(err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Log(err)
	}
	w := &GLFWWindow{win: win, queue: q}
	win.SetFramebufferSizeCallback(w.sizeEvent)
	win.SetCloseCallback(w.closeEvent)
	win.SetRefreshCallback(w.refreshEvent)
	q.Send(events.ActivateEvent{})
	return w, nil
}

func (w *GLFWWindow) sizeEvent(gw *glfw.Window, width, height int) {
	slog.Debug("system: framebuffer resized", "width", width, "height", height)
	w.queue.Send(events.ResizeEvent{Width: uint32(max(width, 0)), Height: uint32(max(height, 0))})
}

func (w *GLFWWindow) closeEvent(gw *glfw.Window) {
	w.closed = true
	w.queue.Send(events.CloseEvent{})
}

func (w *GLFWWindow) refreshEvent(gw *glfw.Window) {
	w.redraw.request()
}

func (w *GLFWWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	if w.win == nil {
		return nil
	}
	return wgpuglfw.GetSurfaceDescriptor(w.win)
}

func (w *GLFWWindow) FramebufferSize() (width, height uint32) {
	if w.win == nil {
		return 0, 0
	}
	fw, fh := w.win.GetFramebufferSize()
	return uint32(max(fw, 0)), uint32(max(fh, 0))
}

func (w *GLFWWindow) PollEvents(wait bool) {
	if wait && !w.redraw.isPending() {
		glfw.WaitEvents()
	} else {
		glfw.PollEvents()
	}
	w.redraw.flush(w.queue)
}

func (w *GLFWWindow) RequestRedraw() {
	w.redraw.request()
	glfw.PostEmptyEvent()
}

func (w *GLFWWindow) Wake() {
	glfw.PostEmptyEvent()
}

func (w *GLFWWindow) Closed() bool {
	return w.closed || (w.win != nil && w.win.ShouldClose())
}

func (w *GLFWWindow) Destroy() {
	if w.win == nil {
		return
	}
	w.win.Destroy()
	w.win = nil
	glfw.Terminate()
}
