package gfxres

import "errors"

// Package errors.
var (
	// ErrNilDevice is returned when constructing a component without a device.
	ErrNilDevice = errors.New("gfxres: device is nil")

	// ErrInvalidFrameCount is returned when a StreamedUniform is created
	// with zero frames.
	ErrInvalidFrameCount = errors.New("gfxres: frame count must be at least 1")

	// ErrZeroSizePayload is returned when a StreamedUniform payload type
	// has size zero.
	ErrZeroSizePayload = errors.New("gfxres: payload type has zero size")
)

// Device is the contract gfxres expects from a graphics backend.
//
// Every object kind comes as a create/destroy pair. Create returns an opaque
// ID and an error; the error travels through Handle.Initialize unmodified.
// Destroy of an ID that is not live is a no-op.
//
// MapBufferRange, FlushBufferRange and UnmapBuffer cannot fail at this
// layer: a backend resolves internal problems itself or treats the call as
// a no-op. MapBufferRange returns a writable window of length at least the
// requested length, or nil for an unknown buffer.
//
// Implementations decide their own thread-safety; backend/native is safe
// for concurrent use. The gfxres root types add no locking of their own.
type Device interface {
	CreateBuffer(*BufferInfo) (BufferID, error)
	DestroyBuffer(BufferID)

	CreateImage(*ImageInfo) (ImageID, error)
	DestroyImage(ImageID)

	CreateSampler(*SamplerInfo) (SamplerID, error)
	DestroySampler(SamplerID)

	CreateShaderStage(*ShaderStageInfo) (ShaderStageID, error)
	DestroyShaderStage(ShaderStageID)

	CreatePipeline(*PipelineInfo) (PipelineID, error)
	DestroyPipeline(PipelineID)

	CreateRenderTarget(*RenderTargetInfo) (RenderTargetID, error)
	DestroyRenderTarget(RenderTargetID)

	CreateCmdBuffer(*CmdBufferInfo) (CmdBufferID, error)
	DestroyCmdBuffer(CmdBufferID)

	// MapBufferRange maps [offset, offset+length) of a host-visible
	// buffer for writing and returns the window. MapFlagDiscard signals
	// that prior contents of the region need not be preserved.
	MapBufferRange(buf BufferID, offset, length uint64, flags MapFlags) []byte

	// FlushBufferRange makes host writes in [offset, offset+length)
	// visible to the device. The range must lie inside the window
	// returned by the preceding MapBufferRange.
	FlushBufferRange(buf BufferID, offset, length uint64)

	// UnmapBuffer ends the current mapping. Windows returned by
	// MapBufferRange are invalid afterwards.
	UnmapBuffer(buf BufferID)

	// BindResources attaches the described resources to the command
	// buffer for subsequent draws. The ops slice is only read during
	// the call.
	BindResources(cmd CmdBufferID, ops []BindOp)

	// Limits reports backend capability values.
	Limits() Limits
}
