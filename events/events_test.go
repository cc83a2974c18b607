// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypes(t *testing.T) {
	assert.Equal(t, Activate, ActivateEvent{}.Type())
	assert.Equal(t, Resize, ResizeEvent{800, 600}.Type())
	assert.Equal(t, RedrawRequested, RedrawEvent{}.Type())
	assert.Equal(t, CloseRequested, CloseEvent{}.Type())
	assert.Equal(t, "Resize(800x600)", ResizeEvent{800, 600}.String())
	assert.Equal(t, "Types(42)", Types(42).String())
}

func TestQueueOrder(t *testing.T) {
	q := NewQueue()
	assert.Nil(t, q.NextEvent())

	q.Send(ActivateEvent{})
	q.Send(ResizeEvent{0, 0})
	q.Send(ResizeEvent{800, 600})
	q.Send(RedrawEvent{})
	assert.Equal(t, 4, q.Len())

	var got []Event
	n := q.Drain(func(ev Event) bool {
		got = append(got, ev)
		return true
	})
	assert.Equal(t, 4, n)
	assert.Equal(t, []Event{ActivateEvent{}, ResizeEvent{0, 0}, ResizeEvent{800, 600}, RedrawEvent{}}, got)
	assert.Equal(t, 0, q.Len())
}

func TestQueueDrainStop(t *testing.T) {
	q := NewQueue()
	q.Send(CloseEvent{})
	q.Send(RedrawEvent{})

	n := q.Drain(func(ev Event) bool {
		return ev.Type() != CloseRequested
	})
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, RedrawEvent{}, q.NextEvent())
}

func TestQueueReuse(t *testing.T) {
	var q Queue
	q.Send(RedrawEvent{})
	assert.Equal(t, RedrawEvent{}, q.NextEvent())
	assert.Zero(t, q.Len())
	assert.Nil(t, q.NextEvent())

	q.Send(CloseEvent{})
	q.Send(ActivateEvent{})
	assert.Equal(t, CloseEvent{}, q.NextEvent())
	q.Send(RedrawEvent{})
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, ActivateEvent{}, q.NextEvent())
	assert.Equal(t, RedrawEvent{}, q.NextEvent())
	assert.Nil(t, q.NextEvent())
}
