// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the window lifecycle events that drive
// the application state machine, and a FIFO queue to deliver them.
package events

import "fmt"

// Types is the kind of a window lifecycle [Event].
type Types int32

const (
	// UnknownType is the zero value.
	UnknownType Types = iota

	// Activate is sent when the platform has a renderable surface
	// for the window: once at startup, and again whenever the
	// platform regains the surface.
	Activate

	// Resize is sent when the window's physical pixel size changes.
	// A minimized window is reported as 0x0.
	Resize

	// RedrawRequested is sent when the window should be rendered.
	RedrawRequested

	// CloseRequested is sent when the user asks to close the window.
	CloseRequested
)

var typeNames = map[Types]string{
	UnknownType:     "UnknownType",
	Activate:        "Activate",
	Resize:          "Resize",
	RedrawRequested: "RedrawRequested",
	CloseRequested:  "CloseRequested",
}

func (tp Types) String() string {
	if nm, ok := typeNames[tp]; ok {
		return nm
	}
	return fmt.Sprintf("Types(%d)", int32(tp))
}

// Event is a window lifecycle event.
type Event interface {
	fmt.Stringer

	// Type returns the kind of event.
	Type() Types
}

// ActivateEvent is an [Activate] event.
type ActivateEvent struct{}

func (ActivateEvent) Type() Types    { return Activate }
func (ActivateEvent) String() string { return "Activate" }

// ResizeEvent is a [Resize] event, carrying the new size
// in physical pixels.
type ResizeEvent struct {
	Width  uint32
	Height uint32
}

func (ev ResizeEvent) Type() Types { return Resize }
func (ev ResizeEvent) String() string {
	return fmt.Sprintf("Resize(%dx%d)", ev.Width, ev.Height)
}

// RedrawEvent is a [RedrawRequested] event.
type RedrawEvent struct{}

func (RedrawEvent) Type() Types    { return RedrawRequested }
func (RedrawEvent) String() string { return "RedrawRequested" }

// CloseEvent is a [CloseRequested] event.
type CloseEvent struct{}

func (CloseEvent) Type() Types    { return CloseRequested }
func (CloseEvent) String() string { return "CloseRequested" }
