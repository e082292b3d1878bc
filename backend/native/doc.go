// Package native implements the gfxres device contract on top of
// gogpu/wgpu's hardware abstraction layer.
//
// The adapter owns the mapping between opaque gfxres IDs and hal resources.
// Acquire one either from an already-open device pair (NewWithDevice), from
// a gpucontext device provider shared with a host application
// (FromProvider), or by opening a device directly (New).
package native
