// Package gfxres provides unique-ownership resource handles and streaming
// uniform helpers for GPU programming in the GoGPU ecosystem.
//
// # Overview
//
// Rendering code juggles many short-lived GPU objects: buffers, images,
// samplers, pipelines. Each one must be destroyed exactly once, and uniform
// data must be streamed to the GPU without overwriting slots a previous
// frame is still reading. gfxres packages those two concerns as small,
// backend-agnostic primitives:
//
//   - Handle: a generic single-owner wrapper over one device object,
//     bound to a create/destroy pair at construction. Ownership moves,
//     it is never shared.
//   - StreamedUniform: a ring of per-frame slots inside one uniform
//     buffer, sized to the device's offset alignment, written once per
//     frame with map/flush/unmap.
//   - BindOp builders: value types describing a single resource binding
//     (texture, sampler, texture+sampler, uniform buffer range) at a
//     fixed set/binding index.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gfxres"
//	    "github.com/gogpu/gfxres/backend/native"
//	)
//
//	dev, err := native.New()
//	if err != nil { ... }
//	defer dev.Close()
//
//	su, err := gfxres.NewStreamedUniform[FrameUniforms](dev, 3)
//	if err != nil { ... }
//	defer su.Destroy()
//
//	// Once per frame:
//	su.Write(uniforms)
//	gfxres.BindResources(dev, cmd, su.BindOpAtCurrentOffset(0, 0))
//
// # Ownership Model
//
// A Handle owns at most one live device object. Initialize destroys any
// previous object before creating the next, Release hands the raw ID to
// the caller without destroying it, and MoveTo transfers ownership between
// handles. Handles must not be copied after first use; they carry a noCopy
// marker so "go vet" reports copies.
//
// # Frame Pacing
//
// StreamedUniform performs no GPU synchronization of its own. The caller
// must choose a frame count large enough that the GPU has finished reading
// a slot before it is rewritten; see StreamedUniform.Write.
//
// # Backends
//
// The root package speaks only the Device interface. backend/native
// implements it over gogpu/wgpu's HAL (Vulkan, Metal, DX12), and any other
// implementation of Device works the same way, including test fakes.
//
// # Logging
//
// gfxres is silent by default. Call SetLogger to enable structured logging
// via log/slog.
package gfxres
