//go:build !nogpu

package native

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gfxres"
)

// HALAdapter implements gfxres.Device using gogpu/wgpu/hal directly.
// It maintains the mapping between gfxres IDs and hal resources.
//
// Thread Safety: HALAdapter is safe for concurrent use from multiple
// goroutines. All resource operations are protected by a mutex.
type HALAdapter struct {
	mu     sync.RWMutex
	device hal.Device
	queue  hal.Queue

	limits gputypes.Limits

	// ID generation
	nextID atomic.Uint64

	// Resource tracking maps gfxres IDs to hal resources
	buffers   map[gfxres.BufferID]*bufferEntry
	images    map[gfxres.ImageID]*imageEntry
	samplers  map[gfxres.SamplerID]hal.Sampler
	shaders   map[gfxres.ShaderStageID]hal.ShaderModule
	pipelines map[gfxres.PipelineID]*pipelineEntry
	targets   map[gfxres.RenderTargetID]*imageEntry
	cmds      map[gfxres.CmdBufferID]*cmdEntry

	// Bind group layouts are derived from the op kinds of a set and
	// cached by signature, so repeated BindResources calls with the
	// same shape reuse one layout.
	layouts map[string]hal.BindGroupLayout
}

// bufferEntry tracks a hal buffer together with its host shadow.
//
// hal has no synchronous map operation, so host-visible buffers keep a
// CPU-side shadow copy. MapBufferRange hands out a window of the shadow
// and FlushBufferRange replays exactly that range to the device through
// queue.WriteBuffer.
type bufferEntry struct {
	buf  hal.Buffer
	size uint64

	shadow []byte // nil for device-local buffers
	mapped bool
	mapOff uint64
	mapLen uint64
}

// imageEntry tracks a hal texture with its default view. Render targets
// reuse the same shape.
type imageEntry struct {
	tex    hal.Texture
	view   hal.TextureView
	width  uint32
	height uint32
	format gputypes.TextureFormat
}

// pipelineEntry tracks a render pipeline and the layout it was built with.
type pipelineEntry struct {
	pipeline hal.RenderPipeline
	layout   hal.PipelineLayout
}

// cmdEntry tracks a command encoder that is open for recording, plus the
// bind groups derived for it. The groups must outlive encoding, so they
// are parked here and destroyed with the command buffer.
type cmdEntry struct {
	encoder hal.CommandEncoder
	label   string
	groups  []hal.BindGroup
}

var _ gfxres.Device = (*HALAdapter)(nil)

// NewWithDevice wraps an already-open hal device and queue. The limits
// parameter provides the adapter's capability limits; if nil, default
// limits are used.
//
// The adapter does not take ownership of the device: Destroy releases the
// tracked resources but leaves the device itself to the caller.
func NewWithDevice(device hal.Device, queue hal.Queue, limits *gputypes.Limits) *HALAdapter {
	var lim gputypes.Limits
	if limits != nil {
		lim = *limits
	} else {
		lim = gputypes.DefaultLimits()
	}

	a := &HALAdapter{
		device:    device,
		queue:     queue,
		limits:    lim,
		buffers:   make(map[gfxres.BufferID]*bufferEntry),
		images:    make(map[gfxres.ImageID]*imageEntry),
		samplers:  make(map[gfxres.SamplerID]hal.Sampler),
		shaders:   make(map[gfxres.ShaderStageID]hal.ShaderModule),
		pipelines: make(map[gfxres.PipelineID]*pipelineEntry),
		targets:   make(map[gfxres.RenderTargetID]*imageEntry),
		cmds:      make(map[gfxres.CmdBufferID]*cmdEntry),
		layouts:   make(map[string]hal.BindGroupLayout),
	}

	// Start ID generation at 1 (0 is invalid)
	a.nextID.Store(1)

	return a
}

// newID generates a unique resource ID.
func (a *HALAdapter) newID() uint64 {
	return a.nextID.Add(1) - 1
}

// Limits reports the capability values gfxres consumes.
func (a *HALAdapter) Limits() gfxres.Limits {
	return gfxres.Limits{
		MinUniformBufferOffsetAlignment: a.limits.MinUniformBufferOffsetAlignment,
		MaxBufferSize:                   a.limits.MaxBufferSize,
	}
}

// === Buffers ===

// CreateBuffer creates a device buffer. Host-visible buffers additionally
// allocate a shadow copy backing MapBufferRange.
func (a *HALAdapter) CreateBuffer(info *gfxres.BufferInfo) (gfxres.BufferID, error) {
	if info == nil {
		return gfxres.InvalidID, fmt.Errorf("nil buffer info")
	}
	if info.Size == 0 {
		return gfxres.InvalidID, fmt.Errorf("buffer size must be positive")
	}
	if a.limits.MaxBufferSize > 0 && info.Size > a.limits.MaxBufferSize {
		return gfxres.InvalidID, fmt.Errorf("buffer size %d exceeds device limit %d", info.Size, a.limits.MaxBufferSize)
	}

	buf, err := a.device.CreateBuffer(&hal.BufferDescriptor{
		Label: info.Label,
		Size:  info.Size,
		Usage: convertBufferUsage(info.Usage, info.Storage),
	})
	if err != nil {
		return gfxres.InvalidID, fmt.Errorf("failed to create buffer: %w", err)
	}

	entry := &bufferEntry{buf: buf, size: info.Size}
	if info.Storage&gfxres.BufferStorageHostWritable != 0 ||
		info.Storage&gfxres.BufferStorageHostReadable != 0 {
		entry.shadow = make([]byte, info.Size)
	}

	id := gfxres.BufferID(a.newID())

	a.mu.Lock()
	a.buffers[id] = entry
	a.mu.Unlock()

	gfxres.Logger().Debug("buffer created",
		slog.Uint64("id", uint64(id)),
		slog.String("label", info.Label),
		slog.Uint64("size", info.Size))

	return id, nil
}

// DestroyBuffer releases a device buffer. Unknown IDs are ignored.
func (a *HALAdapter) DestroyBuffer(id gfxres.BufferID) {
	a.mu.Lock()
	entry, ok := a.buffers[id]
	if ok {
		delete(a.buffers, id)
	}
	a.mu.Unlock()

	if ok {
		a.device.DestroyBuffer(entry.buf)
		gfxres.Logger().Debug("buffer destroyed", slog.Uint64("id", uint64(id)))
	} else {
		gfxres.Logger().Warn("destroy of unknown buffer", slog.Uint64("id", uint64(id)))
	}
}

// MapBufferRange maps [offset, offset+length) of a host-visible buffer
// for writing. The returned window aliases the buffer's shadow copy;
// nothing reaches the device until FlushBufferRange. Returns nil for
// unknown, device-local or out-of-range requests.
func (a *HALAdapter) MapBufferRange(id gfxres.BufferID, offset, length uint64, flags gfxres.MapFlags) []byte {
	a.mu.Lock()
	defer a.mu.Unlock()

	entry, ok := a.buffers[id]
	if !ok || entry.shadow == nil {
		gfxres.Logger().Warn("map of unknown or device-local buffer", slog.Uint64("id", uint64(id)))
		return nil
	}
	if offset+length > entry.size {
		gfxres.Logger().Warn("map range out of bounds",
			slog.Uint64("id", uint64(id)),
			slog.Uint64("offset", offset),
			slog.Uint64("length", length))
		return nil
	}

	// The discard hint needs no action here: the shadow is host memory,
	// and flushes overwrite the device range wholesale anyway.
	_ = flags

	entry.mapped = true
	entry.mapOff = offset
	entry.mapLen = length

	return entry.shadow[offset : offset+length]
}

// FlushBufferRange uploads [offset, offset+length) of the shadow to the
// device. The range must lie inside the active map window; flushes on an
// unmapped buffer are dropped.
func (a *HALAdapter) FlushBufferRange(id gfxres.BufferID, offset, length uint64) {
	a.mu.RLock()
	entry, ok := a.buffers[id]
	var data []byte
	if ok && entry.shadow != nil && length != 0 &&
		entry.mapped && offset >= entry.mapOff && offset+length <= entry.mapOff+entry.mapLen {
		data = entry.shadow[offset : offset+length]
	}
	a.mu.RUnlock()

	if data == nil {
		gfxres.Logger().Warn("flush outside mapped range",
			slog.Uint64("id", uint64(id)),
			slog.Uint64("offset", offset),
			slog.Uint64("length", length))
		return
	}

	a.queue.WriteBuffer(entry.buf, offset, data)
}

// UnmapBuffer ends the current mapping.
func (a *HALAdapter) UnmapBuffer(id gfxres.BufferID) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if entry, ok := a.buffers[id]; ok {
		entry.mapped = false
		entry.mapOff = 0
		entry.mapLen = 0
	}
}

// === Images ===

// CreateImage creates a sampleable 2D texture together with its default
// view. The view is what bind ops reference.
func (a *HALAdapter) CreateImage(info *gfxres.ImageInfo) (gfxres.ImageID, error) {
	if info == nil {
		return gfxres.InvalidID, fmt.Errorf("nil image info")
	}
	if info.Width == 0 || info.Height == 0 {
		return gfxres.InvalidID, fmt.Errorf("image dimensions must be positive")
	}

	mips := info.MipLevels
	if mips == 0 {
		mips = 1
	}
	format := convertImageFormat(info.Format)

	tex, err := a.device.CreateTexture(&hal.TextureDescriptor{
		Label: info.Label,
		Size: hal.Extent3D{
			Width:              info.Width,
			Height:             info.Height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: mips,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return gfxres.InvalidID, fmt.Errorf("failed to create image: %w", err)
	}

	view, err := a.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         info.Label,
		Format:        format,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: mips,
	})
	if err != nil {
		a.device.DestroyTexture(tex)
		return gfxres.InvalidID, fmt.Errorf("failed to create image view: %w", err)
	}

	id := gfxres.ImageID(a.newID())

	a.mu.Lock()
	a.images[id] = &imageEntry{
		tex:    tex,
		view:   view,
		width:  info.Width,
		height: info.Height,
		format: format,
	}
	a.mu.Unlock()

	return id, nil
}

// DestroyImage releases an image and its default view.
func (a *HALAdapter) DestroyImage(id gfxres.ImageID) {
	a.mu.Lock()
	entry, ok := a.images[id]
	if ok {
		delete(a.images, id)
	}
	a.mu.Unlock()

	if ok {
		a.device.DestroyTextureView(entry.view)
		a.device.DestroyTexture(entry.tex)
	}
}

// WriteImage uploads tightly-packed texel data to mip level 0.
// Extends the gfxres.Device contract; callers holding the concrete
// adapter use it to populate images.
func (a *HALAdapter) WriteImage(id gfxres.ImageID, data []byte) error {
	a.mu.RLock()
	entry, ok := a.images[id]
	a.mu.RUnlock()

	if !ok {
		return fmt.Errorf("image %d not found", id)
	}

	bpp := bytesPerTexel(entry.format)
	want := uint64(entry.width) * uint64(entry.height) * uint64(bpp)
	if uint64(len(data)) < want {
		return fmt.Errorf("image %d: got %d bytes, need %d", id, len(data), want)
	}

	a.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  entry.tex,
			MipLevel: 0,
		},
		data[:want],
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  entry.width * bpp,
			RowsPerImage: entry.height,
		},
		&hal.Extent3D{Width: entry.width, Height: entry.height, DepthOrArrayLayers: 1},
	)

	return nil
}

// === Samplers ===

// CreateSampler creates a texture sampler.
func (a *HALAdapter) CreateSampler(info *gfxres.SamplerInfo) (gfxres.SamplerID, error) {
	if info == nil {
		return gfxres.InvalidID, fmt.Errorf("nil sampler info")
	}

	sampler, err := a.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        info.Label,
		AddressModeU: convertWrapMode(info.WrapU),
		AddressModeV: convertWrapMode(info.WrapV),
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    convertFilter(info.MagFilter),
		MinFilter:    convertFilter(info.MinFilter),
		MipmapFilter: convertFilter(info.MinFilter),
	})
	if err != nil {
		return gfxres.InvalidID, fmt.Errorf("failed to create sampler: %w", err)
	}

	id := gfxres.SamplerID(a.newID())

	a.mu.Lock()
	a.samplers[id] = sampler
	a.mu.Unlock()

	return id, nil
}

// DestroySampler releases a sampler.
func (a *HALAdapter) DestroySampler(id gfxres.SamplerID) {
	a.mu.Lock()
	sampler, ok := a.samplers[id]
	if ok {
		delete(a.samplers, id)
	}
	a.mu.Unlock()

	if ok {
		a.device.DestroySampler(sampler)
	}
}

// === Shader stages ===

// CreateShaderStage compiles a WGSL shader module.
func (a *HALAdapter) CreateShaderStage(info *gfxres.ShaderStageInfo) (gfxres.ShaderStageID, error) {
	if info == nil {
		return gfxres.InvalidID, fmt.Errorf("nil shader stage info")
	}
	if info.WGSL == "" {
		return gfxres.InvalidID, fmt.Errorf("empty shader source")
	}

	module, err := a.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  info.Label,
		Source: hal.ShaderSource{WGSL: info.WGSL},
	})
	if err != nil {
		return gfxres.InvalidID, fmt.Errorf("failed to create shader module: %w", err)
	}

	id := gfxres.ShaderStageID(a.newID())

	a.mu.Lock()
	a.shaders[id] = module
	a.mu.Unlock()

	return id, nil
}

// DestroyShaderStage releases a shader module.
func (a *HALAdapter) DestroyShaderStage(id gfxres.ShaderStageID) {
	a.mu.Lock()
	module, ok := a.shaders[id]
	if ok {
		delete(a.shaders, id)
	}
	a.mu.Unlock()

	if ok {
		a.device.DestroyShaderModule(module)
	}
}

// === Pipelines ===

// CreatePipeline creates a render pipeline from previously created vertex
// and fragment stages. Resource layouts are supplied per draw through
// BindResources, so the pipeline itself carries an empty layout.
func (a *HALAdapter) CreatePipeline(info *gfxres.PipelineInfo) (gfxres.PipelineID, error) {
	if info == nil {
		return gfxres.InvalidID, fmt.Errorf("nil pipeline info")
	}

	a.mu.RLock()
	vertex, vok := a.shaders[info.Vertex]
	fragment, fok := a.shaders[info.Fragment]
	a.mu.RUnlock()

	if !vok {
		return gfxres.InvalidID, fmt.Errorf("vertex stage %d not found", info.Vertex)
	}
	if !fok {
		return gfxres.InvalidID, fmt.Errorf("fragment stage %d not found", info.Fragment)
	}

	layout, err := a.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            info.Label,
		BindGroupLayouts: nil,
	})
	if err != nil {
		return gfxres.InvalidID, fmt.Errorf("failed to create pipeline layout: %w", err)
	}

	format := info.ColorFormat
	if format == 0 {
		format = gfxres.ImageFormatBGRA8
	}

	pipeline, err := a.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  info.Label,
		Layout: layout,
		Vertex: hal.VertexState{
			Module:     vertex,
			EntryPoint: "vs_main",
		},
		Fragment: &hal.FragmentState{
			Module:     fragment,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    convertImageFormat(format),
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		a.device.DestroyPipelineLayout(layout)
		return gfxres.InvalidID, fmt.Errorf("failed to create render pipeline: %w", err)
	}

	id := gfxres.PipelineID(a.newID())

	a.mu.Lock()
	a.pipelines[id] = &pipelineEntry{pipeline: pipeline, layout: layout}
	a.mu.Unlock()

	return id, nil
}

// DestroyPipeline releases a render pipeline and its layout.
func (a *HALAdapter) DestroyPipeline(id gfxres.PipelineID) {
	a.mu.Lock()
	entry, ok := a.pipelines[id]
	if ok {
		delete(a.pipelines, id)
	}
	a.mu.Unlock()

	if ok {
		a.device.DestroyRenderPipeline(entry.pipeline)
		a.device.DestroyPipelineLayout(entry.layout)
	}
}

// === Render targets ===

// CreateRenderTarget creates an offscreen color attachment with a view
// suitable for render passes and readback copies.
func (a *HALAdapter) CreateRenderTarget(info *gfxres.RenderTargetInfo) (gfxres.RenderTargetID, error) {
	if info == nil {
		return gfxres.InvalidID, fmt.Errorf("nil render target info")
	}
	if info.Width == 0 || info.Height == 0 {
		return gfxres.InvalidID, fmt.Errorf("render target dimensions must be positive")
	}

	fmtID := info.Format
	if fmtID == 0 {
		fmtID = gfxres.ImageFormatBGRA8
	}
	format := convertImageFormat(fmtID)

	tex, err := a.device.CreateTexture(&hal.TextureDescriptor{
		Label: info.Label,
		Size: hal.Extent3D{
			Width:              info.Width,
			Height:             info.Height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return gfxres.InvalidID, fmt.Errorf("failed to create render target: %w", err)
	}

	view, err := a.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: info.Label,
	})
	if err != nil {
		a.device.DestroyTexture(tex)
		return gfxres.InvalidID, fmt.Errorf("failed to create render target view: %w", err)
	}

	id := gfxres.RenderTargetID(a.newID())

	a.mu.Lock()
	a.targets[id] = &imageEntry{
		tex:    tex,
		view:   view,
		width:  info.Width,
		height: info.Height,
		format: format,
	}
	a.mu.Unlock()

	return id, nil
}

// DestroyRenderTarget releases a render target.
func (a *HALAdapter) DestroyRenderTarget(id gfxres.RenderTargetID) {
	a.mu.Lock()
	entry, ok := a.targets[id]
	if ok {
		delete(a.targets, id)
	}
	a.mu.Unlock()

	if ok {
		a.device.DestroyTextureView(entry.view)
		a.device.DestroyTexture(entry.tex)
	}
}

// === Command buffers ===

// CreateCmdBuffer opens a command encoder ready for recording.
func (a *HALAdapter) CreateCmdBuffer(info *gfxres.CmdBufferInfo) (gfxres.CmdBufferID, error) {
	label := ""
	if info != nil {
		label = info.Label
	}

	encoder, err := a.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: label,
	})
	if err != nil {
		return gfxres.InvalidID, fmt.Errorf("failed to create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding(label); err != nil {
		return gfxres.InvalidID, fmt.Errorf("failed to begin encoding: %w", err)
	}

	id := gfxres.CmdBufferID(a.newID())

	a.mu.Lock()
	a.cmds[id] = &cmdEntry{encoder: encoder, label: label}
	a.mu.Unlock()

	return id, nil
}

// DestroyCmdBuffer abandons a command buffer without submitting it.
func (a *HALAdapter) DestroyCmdBuffer(id gfxres.CmdBufferID) {
	a.mu.Lock()
	entry, ok := a.cmds[id]
	if ok {
		delete(a.cmds, id)
	}
	a.mu.Unlock()

	if ok {
		entry.encoder.DiscardEncoding()
		a.releaseGroups(entry)
		gfxres.Logger().Debug("command buffer discarded", slog.String("label", entry.label))
	}
}

// Submit finishes encoding and hands the command buffer to the queue.
// The ID is consumed: it is invalid after Submit regardless of outcome.
func (a *HALAdapter) Submit(id gfxres.CmdBufferID) error {
	a.mu.Lock()
	entry, ok := a.cmds[id]
	if ok {
		delete(a.cmds, id)
	}
	a.mu.Unlock()

	if !ok {
		return fmt.Errorf("command buffer %d not found", id)
	}

	cmdBuffer, err := entry.encoder.EndEncoding()
	if err != nil {
		a.releaseGroups(entry)
		return fmt.Errorf("failed to end encoding: %w", err)
	}

	if _, err := a.queue.Submit([]hal.CommandBuffer{cmdBuffer}); err != nil {
		cmdBuffer.Destroy()
		a.releaseGroups(entry)
		return fmt.Errorf("failed to submit: %w", err)
	}

	cmdBuffer.Destroy()
	a.releaseGroups(entry)
	gfxres.Logger().Debug("command buffer submitted", slog.String("label", entry.label))
	return nil
}

// WaitIdle blocks until all submitted work completes.
func (a *HALAdapter) WaitIdle() {
	if err := a.device.WaitIdle(); err != nil {
		gfxres.Logger().Warn("wait idle failed", "error", err)
	}
}

// releaseGroups destroys the bind groups parked on a command buffer.
func (a *HALAdapter) releaseGroups(entry *cmdEntry) {
	for _, g := range entry.groups {
		a.device.DestroyBindGroup(g)
	}
	entry.groups = nil
}

// Destroy releases every tracked resource. The wrapped hal device is left
// open; whoever opened it closes it.
func (a *HALAdapter) Destroy() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for id, entry := range a.cmds {
		entry.encoder.DiscardEncoding()
		for _, g := range entry.groups {
			a.device.DestroyBindGroup(g)
		}
		delete(a.cmds, id)
	}
	for id, entry := range a.pipelines {
		a.device.DestroyRenderPipeline(entry.pipeline)
		a.device.DestroyPipelineLayout(entry.layout)
		delete(a.pipelines, id)
	}
	for id, module := range a.shaders {
		a.device.DestroyShaderModule(module)
		delete(a.shaders, id)
	}
	for id, sampler := range a.samplers {
		a.device.DestroySampler(sampler)
		delete(a.samplers, id)
	}
	for id, entry := range a.targets {
		a.device.DestroyTextureView(entry.view)
		a.device.DestroyTexture(entry.tex)
		delete(a.targets, id)
	}
	for id, entry := range a.images {
		a.device.DestroyTextureView(entry.view)
		a.device.DestroyTexture(entry.tex)
		delete(a.images, id)
	}
	for id, entry := range a.buffers {
		a.device.DestroyBuffer(entry.buf)
		delete(a.buffers, id)
	}
	for key, layout := range a.layouts {
		a.device.DestroyBindGroupLayout(layout)
		delete(a.layouts, key)
	}
}

// === Type conversion helpers ===

// convertBufferUsage maps gfxres usage and storage flags to hal usage.
// Host-visible buffers always get CopyDst, since their flushes arrive via
// queue.WriteBuffer.
func convertBufferUsage(usage gfxres.BufferUsage, storage gfxres.BufferStorage) gputypes.BufferUsage {
	var result gputypes.BufferUsage

	if usage&gfxres.BufferUsageAttribute != 0 {
		result |= gputypes.BufferUsageVertex
	}
	if usage&gfxres.BufferUsageIndex != 0 {
		result |= gputypes.BufferUsageIndex
	}
	if usage&gfxres.BufferUsageUniform != 0 {
		result |= gputypes.BufferUsageUniform
	}
	if usage&gfxres.BufferUsagePixel != 0 {
		result |= gputypes.BufferUsageCopySrc | gputypes.BufferUsageCopyDst
	}
	if usage&gfxres.BufferUsageCopySrc != 0 {
		result |= gputypes.BufferUsageCopySrc
	}
	if usage&gfxres.BufferUsageCopyDst != 0 {
		result |= gputypes.BufferUsageCopyDst
	}
	if storage&gfxres.BufferStorageHostWritable != 0 {
		result |= gputypes.BufferUsageCopyDst
	}
	if storage&gfxres.BufferStorageHostReadable != 0 {
		result |= gputypes.BufferUsageCopySrc
	}

	return result
}

// convertImageFormat maps gfxres.ImageFormat to gputypes.TextureFormat.
func convertImageFormat(format gfxres.ImageFormat) gputypes.TextureFormat {
	switch format {
	case gfxres.ImageFormatRGBA8:
		return gputypes.TextureFormatRGBA8Unorm
	case gfxres.ImageFormatBGRA8:
		return gputypes.TextureFormatBGRA8Unorm
	case gfxres.ImageFormatR8:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatRGBA8Unorm
	}
}

// bytesPerTexel returns the texel size for the formats gfxres exposes.
func bytesPerTexel(format gputypes.TextureFormat) uint32 {
	if format == gputypes.TextureFormatR8Unorm {
		return 1
	}
	return 4
}

// convertFilter maps gfxres.Filter to gputypes.FilterMode.
func convertFilter(f gfxres.Filter) gputypes.FilterMode {
	if f == gfxres.FilterLinear {
		return gputypes.FilterModeLinear
	}
	return gputypes.FilterModeNearest
}

// convertWrapMode maps gfxres.WrapMode to gputypes.AddressMode.
func convertWrapMode(w gfxres.WrapMode) gputypes.AddressMode {
	if w == gfxres.WrapRepeat {
		return gputypes.AddressModeRepeat
	}
	return gputypes.AddressModeClampToEdge
}
