package gfxres

import (
	"log/slog"
	"unsafe"
)

// StreamedUniform multiplexes per-frame uniform data through one buffer.
//
// The backing buffer is divided into frameCount slots of alignedSize bytes,
// where alignedSize is sizeof(T) rounded up to the device's uniform offset
// alignment. Write fills the current slot and advances round-robin; the
// binding ops it yields reference the slot just written, so several
// in-flight frames each read their own region of the same buffer.
//
// StreamedUniform performs no GPU synchronization. Slot reuse is purely
// modular: the caller must call Write at most once per frame and pick a
// frame count that covers the GPU's real in-flight latency, otherwise a
// write races a pending read and the data is silently corrupted.
type StreamedUniform[T any] struct {
	dev         Device
	buf         *BufferHandle
	frames      uint32
	frame       uint32
	alignedSize uint64
	offset      uint64
}

// StreamedUniformOption configures NewStreamedUniform.
type StreamedUniformOption func(*streamedUniformOptions)

type streamedUniformOptions struct {
	label     string
	alignment uint32
}

// WithLabel sets the debug label of the backing buffer.
func WithLabel(label string) StreamedUniformOption {
	return func(o *streamedUniformOptions) {
		o.label = label
	}
}

// WithAlignment overrides the slot alignment in bytes. Without this option
// the alignment comes from Device.Limits, falling back to
// DefaultUniformOffsetAlignment when the backend reports zero. Use only
// when the device value is known to be wrong for a specific target.
func WithAlignment(alignment uint32) StreamedUniformOption {
	return func(o *streamedUniformOptions) {
		o.alignment = alignment
	}
}

// NewStreamedUniform creates the backing buffer for frames slots of T and
// returns the ring positioned at slot 0.
//
// The buffer is created host-readable/writable through a uniform buffer
// handle; a creation failure from the backend is returned as-is.
func NewStreamedUniform[T any](dev Device, frames uint32, opts ...StreamedUniformOption) (*StreamedUniform[T], error) {
	if dev == nil {
		return nil, ErrNilDevice
	}
	if frames == 0 {
		return nil, ErrInvalidFrameCount
	}

	var o streamedUniformOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.label == "" {
		o.label = "streamed_uniform"
	}

	var zero T
	size := uint64(unsafe.Sizeof(zero))
	if size == 0 {
		return nil, ErrZeroSizePayload
	}

	align := uint64(o.alignment)
	if align == 0 {
		align = uint64(dev.Limits().MinUniformBufferOffsetAlignment)
	}
	if align == 0 {
		align = DefaultUniformOffsetAlignment
		Logger().Warn("streamed uniform: backend reports no offset alignment, using fallback",
			slog.Uint64("alignment", align))
	}
	alignedSize := alignUp(size, align)

	buf := NewUniformBufferHandle(dev)
	err := buf.Initialize(&BufferInfo{
		Label:   o.label,
		Size:    alignedSize * uint64(frames),
		Storage: BufferStorageHostReadableWritable,
	})
	if err != nil {
		return nil, err
	}

	Logger().Debug("streamed uniform created",
		slog.String("label", o.label),
		slog.Uint64("slot_size", alignedSize),
		slog.Uint64("frames", uint64(frames)))

	return &StreamedUniform[T]{
		dev:         dev,
		buf:         buf,
		frames:      frames,
		alignedSize: alignedSize,
	}, nil
}

// Write copies value into the current slot and advances the ring.
//
// The slot's byte range is mapped for writing, exactly sizeof(T) bytes of
// value are copied in (the slot's padding is left undefined), the range is
// flushed, and the buffer unmapped. When the ring wraps back to slot 0 the
// map additionally carries MapFlagDiscard, telling the backend the whole
// buffer's prior contents are disposable; slots 1..frames-1 have no such
// hint and rely entirely on the caller's frame pacing.
func (s *StreamedUniform[T]) Write(value T) {
	s.offset = uint64(s.frame) * s.alignedSize

	flags := MapFlagWrite
	if s.offset == 0 {
		flags |= MapFlagDiscard
	}

	buf := s.buf.Get()
	dst := s.dev.MapBufferRange(buf, s.offset, s.alignedSize, flags)
	size := unsafe.Sizeof(value)
	src := unsafe.Slice((*byte)(unsafe.Pointer(&value)), size)
	copy(dst, src)
	s.dev.FlushBufferRange(buf, s.offset, s.alignedSize)
	s.dev.UnmapBuffer(buf)

	s.frame = (s.frame + 1) % s.frames
}

// BindOpAtCurrentOffset returns a UniformBuffer-kind op referencing the
// slot established by the most recent Write, with range equal to the
// aligned slot size. Before the first Write it references the unwritten
// slot 0; the bound contents are then undefined, not an error.
func (s *StreamedUniform[T]) BindOpAtCurrentOffset(set, binding uint32) BindOp {
	return At(set, binding).UniformBuffer(s.buf.Get(), s.offset, s.alignedSize)
}

// Buffer returns the backing buffer ID. Ownership stays with the ring.
func (s *StreamedUniform[T]) Buffer() BufferID {
	return s.buf.Get()
}

// AlignedSize returns the byte size of one slot.
func (s *StreamedUniform[T]) AlignedSize() uint64 {
	return s.alignedSize
}

// FrameCount returns the number of slots in the ring.
func (s *StreamedUniform[T]) FrameCount() uint32 {
	return s.frames
}

// CurrentOffset returns the byte offset of the most recently written slot,
// or 0 before the first Write.
func (s *StreamedUniform[T]) CurrentOffset() uint64 {
	return s.offset
}

// Destroy releases the backing buffer. Idempotent.
func (s *StreamedUniform[T]) Destroy() {
	s.buf.Destroy()
}

// alignUp rounds n up to the next multiple of align. align must be
// non-zero but need not be a power of two.
func alignUp(n, align uint64) uint64 {
	return (n + align - 1) / align * align
}
