package gfxres

import "fmt"

// Resource IDs
//
// These opaque IDs name device objects. Each Device implementation maintains
// the mapping between IDs and actual backend resources. IDs are uint64 to
// accommodate various backend handle sizes; the zero value is never a live
// object.

// BufferID is an opaque handle to a device buffer.
type BufferID uint64

// ImageID is an opaque handle to a device image (texture).
type ImageID uint64

// SamplerID is an opaque handle to a device sampler.
type SamplerID uint64

// ShaderStageID is an opaque handle to a compiled shader stage.
type ShaderStageID uint64

// PipelineID is an opaque handle to a graphics pipeline.
type PipelineID uint64

// RenderTargetID is an opaque handle to a render target.
type RenderTargetID uint64

// CmdBufferID is an opaque handle to a command buffer.
type CmdBufferID uint64

// ContextID is an opaque handle to a presentation context. Contexts are
// created by the platform layer, not by a Device; the ID type exists so a
// Handle can own one that was acquired externally.
type ContextID uint64

// InvalidID is the zero value, representing an invalid/null resource.
const InvalidID = 0

// BufferStorage is a bitmask describing host visibility of buffer memory.
type BufferStorage uint32

// Buffer storage flags.
const (
	// BufferStorageHostReadable indicates the host may map the buffer
	// for reading.
	BufferStorageHostReadable BufferStorage = 1 << 0

	// BufferStorageHostWritable indicates the host may map the buffer
	// for writing.
	BufferStorageHostWritable BufferStorage = 1 << 1

	// BufferStorageHostReadableWritable combines both host access modes.
	// This is the storage required by StreamedUniform.
	BufferStorageHostReadableWritable = BufferStorageHostReadable | BufferStorageHostWritable
)

// BufferUsage is a bitmask specifying how a buffer will be used.
type BufferUsage uint32

// Buffer usage flags.
const (
	// BufferUsageAttribute marks the buffer as a vertex attribute source.
	BufferUsageAttribute BufferUsage = 1 << 0

	// BufferUsageIndex marks the buffer as an index source.
	BufferUsageIndex BufferUsage = 1 << 1

	// BufferUsageUniform marks the buffer as a uniform data source.
	BufferUsageUniform BufferUsage = 1 << 2

	// BufferUsagePixel marks the buffer as a pixel transfer buffer.
	BufferUsagePixel BufferUsage = 1 << 3

	// BufferUsageCopySrc allows the buffer as a copy source.
	BufferUsageCopySrc BufferUsage = 1 << 4

	// BufferUsageCopyDst allows the buffer as a copy destination.
	BufferUsageCopyDst BufferUsage = 1 << 5
)

// MapFlags controls a MapBufferRange call.
type MapFlags uint32

// Map flags.
const (
	// MapFlagWrite requests host write access to the mapped range.
	MapFlagWrite MapFlags = 1 << 0

	// MapFlagDiscard tells the backend prior contents of the mapped
	// region may be invalidated rather than preserved, so it need not
	// wait on outstanding reads.
	MapFlagDiscard MapFlags = 1 << 1
)

// ImageFormat specifies the pixel format of an image.
type ImageFormat uint32

// Image formats.
const (
	// ImageFormatRGBA8 is 8-bit RGBA, normalized unsigned integer.
	ImageFormatRGBA8 ImageFormat = iota + 1

	// ImageFormatBGRA8 is 8-bit BGRA, normalized unsigned integer.
	ImageFormatBGRA8

	// ImageFormatR8 is single-channel 8-bit, normalized unsigned integer.
	ImageFormatR8
)

// String returns the string representation of ImageFormat.
func (f ImageFormat) String() string {
	switch f {
	case ImageFormatRGBA8:
		return "RGBA8"
	case ImageFormatBGRA8:
		return "BGRA8"
	case ImageFormatR8:
		return "R8"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(f))
	}
}

// Filter selects a sampler filtering mode.
type Filter uint32

// Filter modes.
const (
	// FilterNearest samples the nearest texel.
	FilterNearest Filter = iota
	// FilterLinear interpolates between texels.
	FilterLinear
)

// String returns the string representation of Filter.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "Nearest"
	case FilterLinear:
		return "Linear"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(f))
	}
}

// WrapMode selects how sampling treats coordinates outside [0, 1].
type WrapMode uint32

// Wrap modes.
const (
	// WrapClampToEdge clamps coordinates to the edge texel.
	WrapClampToEdge WrapMode = iota
	// WrapRepeat tiles the image.
	WrapRepeat
)

// Limits reports backend capability values the root package consumes.
type Limits struct {
	// MinUniformBufferOffsetAlignment is the required alignment, in
	// bytes, of uniform buffer binding offsets. Zero means the backend
	// did not report a value; consumers fall back to
	// DefaultUniformOffsetAlignment.
	MinUniformBufferOffsetAlignment uint32

	// MaxBufferSize is the largest allowed buffer allocation in bytes.
	// Zero means unlimited/unreported.
	MaxBufferSize uint64
}

// DefaultUniformOffsetAlignment is the fallback uniform offset alignment
// used when a backend reports no value. 256 satisfies every backend the
// gogpu stack targets, but a reported limit always wins.
const DefaultUniformOffsetAlignment = 256

// BufferInfo describes a buffer to create.
type BufferInfo struct {
	// Label is an optional debug name.
	Label string

	// Size is the buffer size in bytes.
	Size uint64

	// Storage specifies host visibility of the buffer memory.
	Storage BufferStorage

	// Usage specifies how the buffer will be used.
	Usage BufferUsage
}

// ImageInfo describes an image to create.
type ImageInfo struct {
	// Label is an optional debug name.
	Label string

	// Width and Height are the image dimensions in texels.
	Width  uint32
	Height uint32

	// MipLevels is the mip chain length. Zero means 1.
	MipLevels uint32

	// Format is the pixel format.
	Format ImageFormat
}

// SamplerInfo describes a sampler to create.
type SamplerInfo struct {
	// Label is an optional debug name.
	Label string

	// MinFilter and MagFilter select minification/magnification filtering.
	MinFilter Filter
	MagFilter Filter

	// WrapU and WrapV select coordinate wrapping per axis.
	WrapU WrapMode
	WrapV WrapMode
}

// ShaderStageInfo describes a shader stage to create.
type ShaderStageInfo struct {
	// Label is an optional debug name.
	Label string

	// WGSL is the shader source.
	WGSL string

	// EntryPoint is the entry function name within the source.
	EntryPoint string
}

// PipelineInfo describes a graphics pipeline to create.
type PipelineInfo struct {
	// Label is an optional debug name.
	Label string

	// Vertex and Fragment are the pipeline's shader stages.
	Vertex   ShaderStageID
	Fragment ShaderStageID

	// ColorFormat is the format of the color attachment the pipeline
	// renders to. Zero means ImageFormatBGRA8.
	ColorFormat ImageFormat
}

// RenderTargetInfo describes a render target to create.
type RenderTargetInfo struct {
	// Label is an optional debug name.
	Label string

	// Width and Height are the target dimensions in texels.
	Width  uint32
	Height uint32

	// Format is the color attachment format. Zero means ImageFormatBGRA8.
	Format ImageFormat
}

// CmdBufferInfo describes a command buffer to create.
type CmdBufferInfo struct {
	// Label is an optional debug name.
	Label string
}
