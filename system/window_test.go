// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"testing"

	"cogentcore.org/quad/events"
	"github.com/stretchr/testify/assert"
)

func TestRedrawLatch(t *testing.T) {
	q := events.NewQueue()
	var rl redrawLatch

	assert.False(t, rl.flush(q))
	assert.Equal(t, 0, q.Len())

	rl.request()
	rl.request()
	rl.request()
	assert.True(t, rl.isPending())
	assert.True(t, rl.flush(q))
	assert.False(t, rl.isPending())
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, events.RedrawRequested, q.NextEvent().Type())

	assert.False(t, rl.flush(q))
	assert.Equal(t, 0, q.Len())
}
