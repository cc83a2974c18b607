// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders contains the WGSL shader sources.
package shaders

import _ "embed"

// Quad is the WGSL source of the quad shader. Its vs_main entry point
// takes a vec2 position at location 0 and a vec3 color at location 1,
// and fs_main outputs the interpolated color with full alpha.
//
//go:embed quad.wgsl
var Quad string
