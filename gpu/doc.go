// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package gpu renders a colored quad to a window surface.

The setup order is fixed by the graphics API: an [Instance] is created,
a [Surface] is bound to the window, and only then is an adapter requested
that can present to that surface ([NewContext]). The surface is configured
from its [Capabilities], the shader and [Pipeline] are built for the
surface format, and the quad is uploaded into a [VertexBuffer].
[NewBundle] does all of this.

Each frame, [FrameRenderer.RenderFrame] acquires the next surface image,
clears it to [ClearColor], draws the six vertices of [QuadMesh] in one
render pass, submits the commands and presents the image.

When the window is resized, [Surface.Resize] must be called before the
next frame. Zero sizes (minimized windows) are ignored. When acquisition
reports [ErrSurfaceOutdated], call [Surface.Reconfigure] and skip the frame.

All graphics calls go through the [Driver] interfaces: package gpu/webgpu
implements them with WebGPU, and package gpu/gputest provides a recording
fake for tests.
*/
package gpu
