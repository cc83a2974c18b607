// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webgpu

import (
	"testing"

	"cogentcore.org/quad/gpu"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// headless has no native window, so no surface can be created for it.
type headless struct{}

func (headless) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (headless) FramebufferSize() (uint32, uint32)          { return 0, 0 }

func TestHeadlessSurface(t *testing.T) {
	t.Skip("Need software GPU on CI")
	var drv Driver
	inst, err := drv.NewInstance()
	require.NoError(t, err)
	defer inst.Release()
	_, err = gpu.BindSurface(inst, headless{})
	assert.ErrorIs(t, err, gpu.ErrSurfaceCreation)
}
