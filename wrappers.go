package gfxres

// Per-kind handle aliases and constructors.
//
// Each constructor binds a Handle to the matching create/destroy pair of a
// Device. The buffer flavors (attribute, index, uniform, pixel) share one
// underlying buffer kind and differ only in the usage bit stamped onto the
// BufferInfo at creation, so a caller can keep the classic per-kind
// vocabulary without the backend multiplying object types.

// BufferHandle owns one device buffer.
type BufferHandle = Handle[BufferID, BufferInfo]

// ImageHandle owns one device image.
type ImageHandle = Handle[ImageID, ImageInfo]

// SamplerHandle owns one device sampler.
type SamplerHandle = Handle[SamplerID, SamplerInfo]

// ShaderStageHandle owns one compiled shader stage.
type ShaderStageHandle = Handle[ShaderStageID, ShaderStageInfo]

// PipelineHandle owns one graphics pipeline.
type PipelineHandle = Handle[PipelineID, PipelineInfo]

// RenderTargetHandle owns one render target.
type RenderTargetHandle = Handle[RenderTargetID, RenderTargetInfo]

// CmdBufferHandle owns one command buffer.
type CmdBufferHandle = Handle[CmdBufferID, CmdBufferInfo]

// NewBufferHandle returns an empty handle over dev's buffer pair.
func NewBufferHandle(dev Device) *BufferHandle {
	return New(dev.CreateBuffer, dev.DestroyBuffer)
}

// NewImageHandle returns an empty handle over dev's image pair.
func NewImageHandle(dev Device) *ImageHandle {
	return New(dev.CreateImage, dev.DestroyImage)
}

// NewSamplerHandle returns an empty handle over dev's sampler pair.
func NewSamplerHandle(dev Device) *SamplerHandle {
	return New(dev.CreateSampler, dev.DestroySampler)
}

// NewShaderStageHandle returns an empty handle over dev's shader stage pair.
func NewShaderStageHandle(dev Device) *ShaderStageHandle {
	return New(dev.CreateShaderStage, dev.DestroyShaderStage)
}

// NewPipelineHandle returns an empty handle over dev's pipeline pair.
func NewPipelineHandle(dev Device) *PipelineHandle {
	return New(dev.CreatePipeline, dev.DestroyPipeline)
}

// NewRenderTargetHandle returns an empty handle over dev's render target pair.
func NewRenderTargetHandle(dev Device) *RenderTargetHandle {
	return New(dev.CreateRenderTarget, dev.DestroyRenderTarget)
}

// NewCmdBufferHandle returns an empty handle over dev's command buffer pair.
func NewCmdBufferHandle(dev Device) *CmdBufferHandle {
	return New(dev.CreateCmdBuffer, dev.DestroyCmdBuffer)
}

// NewAttribBufferHandle returns a buffer handle whose Initialize stamps
// BufferUsageAttribute onto the info it forwards.
func NewAttribBufferHandle(dev Device) *BufferHandle {
	return newUsageBufferHandle(dev, BufferUsageAttribute)
}

// NewIndexBufferHandle returns a buffer handle whose Initialize stamps
// BufferUsageIndex onto the info it forwards.
func NewIndexBufferHandle(dev Device) *BufferHandle {
	return newUsageBufferHandle(dev, BufferUsageIndex)
}

// NewUniformBufferHandle returns a buffer handle whose Initialize stamps
// BufferUsageUniform onto the info it forwards.
func NewUniformBufferHandle(dev Device) *BufferHandle {
	return newUsageBufferHandle(dev, BufferUsageUniform)
}

// NewPixelBufferHandle returns a buffer handle whose Initialize stamps
// BufferUsagePixel onto the info it forwards.
func NewPixelBufferHandle(dev Device) *BufferHandle {
	return newUsageBufferHandle(dev, BufferUsagePixel)
}

func newUsageBufferHandle(dev Device, usage BufferUsage) *BufferHandle {
	create := func(info *BufferInfo) (BufferID, error) {
		stamped := *info
		stamped.Usage |= usage
		return dev.CreateBuffer(&stamped)
	}
	return New(create, dev.DestroyBuffer)
}
