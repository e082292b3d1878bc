package gfxres

import (
	"errors"
	"testing"
)

func TestHandleEmptyByDefault(t *testing.T) {
	dev := newFakeDevice()
	h := NewImageHandle(dev)

	if h.Valid() {
		t.Error("new handle reports Valid() = true, want false")
	}
	if got := h.Get(); got != InvalidID {
		t.Errorf("Get() = %d, want InvalidID", got)
	}

	h.Destroy()
	if got := dev.destroyCalls["image"]; got != 0 {
		t.Errorf("empty handle issued %d destroy calls, want 0", got)
	}
}

func TestHandleInitializeAndDestroy(t *testing.T) {
	dev := newFakeDevice()
	h := NewImageHandle(dev)

	if err := h.Initialize(&ImageInfo{Width: 4, Height: 4, Format: ImageFormatRGBA8}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if !h.Valid() {
		t.Fatal("handle empty after successful Initialize")
	}

	h.Destroy()
	if got := dev.destroyCalls["image"]; got != 1 {
		t.Errorf("destroy calls = %d, want 1", got)
	}

	// Idempotent.
	h.Destroy()
	if got := dev.destroyCalls["image"]; got != 1 {
		t.Errorf("destroy calls after second Destroy = %d, want 1", got)
	}
	if err := dev.balance(); err != nil {
		t.Error(err)
	}
}

func TestHandleInitializeReplacesOldObject(t *testing.T) {
	dev := newFakeDevice()
	h := NewImageHandle(dev)

	if err := h.Initialize(&ImageInfo{Width: 1, Height: 1}); err != nil {
		t.Fatalf("first Initialize failed: %v", err)
	}
	first := h.Get()

	if err := h.Initialize(&ImageInfo{Width: 2, Height: 2}); err != nil {
		t.Fatalf("second Initialize failed: %v", err)
	}
	second := h.Get()

	if second == first {
		t.Error("second Initialize returned the first object")
	}
	if got := dev.destroyCalls["image"]; got != 1 {
		t.Errorf("destroy calls after re-Initialize = %d, want 1", got)
	}
	if len(dev.destroyedImages) != 1 || dev.destroyedImages[0] != first {
		t.Errorf("destroyed %v, want exactly the first object %d", dev.destroyedImages, first)
	}

	h.Destroy()
	if err := dev.balance(); err != nil {
		t.Error(err)
	}
}

func TestHandleInitializeFailure(t *testing.T) {
	dev := newFakeDevice()
	wantErr := errors.New("out of device memory")

	h := NewImageHandle(dev)
	if err := h.Initialize(&ImageInfo{Width: 1, Height: 1}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	// The old object is destroyed even when the new creation fails,
	// and the backend error comes back unmodified.
	dev.failImageCreate = wantErr
	err := h.Initialize(&ImageInfo{Width: 2, Height: 2})
	if err != wantErr { //nolint:errorlint // pass-through must be the identical error
		t.Errorf("Initialize error = %v, want the backend error unmodified", err)
	}
	if h.Valid() {
		t.Error("handle not empty after failed Initialize")
	}
	if got := dev.destroyCalls["image"]; got != 1 {
		t.Errorf("destroy calls = %d, want 1 (the replaced object)", got)
	}

	h.Destroy()
	if got := dev.destroyCalls["image"]; got != 1 {
		t.Errorf("destroy calls after Destroy of empty handle = %d, want 1", got)
	}
}

func TestHandleRelease(t *testing.T) {
	dev := newFakeDevice()
	h := NewImageHandle(dev)
	if err := h.Initialize(&ImageInfo{Width: 1, Height: 1}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	want := h.Get()

	got := h.Release()
	if got != want {
		t.Errorf("Release() = %d, want %d", got, want)
	}
	if h.Valid() {
		t.Error("handle still valid after Release")
	}
	if h.Get() != InvalidID {
		t.Errorf("Get() after Release = %d, want InvalidID", h.Get())
	}

	h.Destroy()
	if gotCalls := dev.destroyCalls["image"]; gotCalls != 0 {
		t.Errorf("destroy calls after Release+Destroy = %d, want 0", gotCalls)
	}

	// The caller owns the released object now.
	dev.DestroyImage(got)
	if err := dev.balance(); err != nil {
		t.Error(err)
	}
}

func TestHandleReset(t *testing.T) {
	dev := newFakeDevice()
	h := NewImageHandle(dev)
	if err := h.Initialize(&ImageInfo{Width: 1, Height: 1}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	old := h.Get()

	raw, err := dev.CreateImage(&ImageInfo{Width: 2, Height: 2})
	if err != nil {
		t.Fatalf("CreateImage failed: %v", err)
	}

	h.Reset(raw)
	if got := dev.destroyCalls["image"]; got != 1 {
		t.Errorf("destroy calls after Reset = %d, want 1", got)
	}
	if len(dev.destroyedImages) != 1 || dev.destroyedImages[0] != old {
		t.Errorf("destroyed %v, want exactly the previous object %d", dev.destroyedImages, old)
	}
	if h.Get() != raw {
		t.Errorf("Get() after Reset = %d, want %d", h.Get(), raw)
	}

	// Reset on an empty handle destroys nothing.
	empty := NewImageHandle(dev)
	raw2, err := dev.CreateImage(&ImageInfo{Width: 3, Height: 3})
	if err != nil {
		t.Fatalf("CreateImage failed: %v", err)
	}
	empty.Reset(raw2)
	if got := dev.destroyCalls["image"]; got != 1 {
		t.Errorf("destroy calls after Reset of empty handle = %d, want still 1", got)
	}

	h.Destroy()
	empty.Destroy()
	if err := dev.balance(); err != nil {
		t.Error(err)
	}
}

func TestHandleAdopt(t *testing.T) {
	dev := newFakeDevice()
	raw, err := dev.CreateImage(&ImageInfo{Width: 1, Height: 1})
	if err != nil {
		t.Fatalf("CreateImage failed: %v", err)
	}

	h := Adopt(dev.CreateImage, dev.DestroyImage, raw)
	if h.Get() != raw {
		t.Errorf("Get() = %d, want adopted %d", h.Get(), raw)
	}

	h.Destroy()
	if err := dev.balance(); err != nil {
		t.Error(err)
	}
}

func TestHandleMoveTo(t *testing.T) {
	dev := newFakeDevice()

	src := NewImageHandle(dev)
	if err := src.Initialize(&ImageInfo{Width: 1, Height: 1}); err != nil {
		t.Fatalf("Initialize src failed: %v", err)
	}
	moved := src.Get()

	dst := NewImageHandle(dev)
	if err := dst.Initialize(&ImageInfo{Width: 2, Height: 2}); err != nil {
		t.Fatalf("Initialize dst failed: %v", err)
	}
	replaced := dst.Get()

	src.MoveTo(dst)

	if src.Valid() {
		t.Error("source still valid after MoveTo")
	}
	if dst.Get() != moved {
		t.Errorf("destination owns %d, want %d", dst.Get(), moved)
	}
	if len(dev.destroyedImages) != 1 || dev.destroyedImages[0] != replaced {
		t.Errorf("destroyed %v, want exactly the replaced object %d", dev.destroyedImages, replaced)
	}

	// Both destructors run; only the surviving object is destroyed again.
	src.Destroy()
	dst.Destroy()
	if got := dev.destroyCalls["image"]; got != 2 {
		t.Errorf("total destroy calls = %d, want 2", got)
	}
	if err := dev.balance(); err != nil {
		t.Error(err)
	}
}

func TestHandleMoveChainDestroysEachObjectOnce(t *testing.T) {
	dev := newFakeDevice()

	// Shuffle one object through a chain of handles; no matter how many
	// moves happen, it is destroyed exactly once at the end.
	a := NewImageHandle(dev)
	if err := a.Initialize(&ImageInfo{Width: 1, Height: 1}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	b := NewImageHandle(dev)
	c := NewImageHandle(dev)
	a.MoveTo(b)
	b.MoveTo(c)
	c.MoveTo(c) // self-move is a no-op

	if !c.Valid() {
		t.Fatal("object lost in move chain")
	}

	a.Destroy()
	b.Destroy()
	c.Destroy()
	if got := dev.destroyCalls["image"]; got != 1 {
		t.Errorf("destroy calls = %d, want 1", got)
	}
	if err := dev.balance(); err != nil {
		t.Error(err)
	}
}

func TestHandleMoveToUnboundHandle(t *testing.T) {
	dev := newFakeDevice()

	src := NewImageHandle(dev)
	if err := src.Initialize(&ImageInfo{Width: 1, Height: 1}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	// Destination was never bound to a device; the move carries the
	// create/destroy pair along with ownership.
	var dst ImageHandle
	src.MoveTo(&dst)

	dst.Destroy()
	if err := dev.balance(); err != nil {
		t.Error(err)
	}
}

func TestUsageBufferHandlesStampUsage(t *testing.T) {
	tests := []struct {
		name string
		ctor func(Device) *BufferHandle
		want BufferUsage
	}{
		{"attribute", NewAttribBufferHandle, BufferUsageAttribute},
		{"index", NewIndexBufferHandle, BufferUsageIndex},
		{"uniform", NewUniformBufferHandle, BufferUsageUniform},
		{"pixel", NewPixelBufferHandle, BufferUsagePixel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := newFakeDevice()
			h := tt.ctor(dev)
			if err := h.Initialize(&BufferInfo{Size: 64}); err != nil {
				t.Fatalf("Initialize failed: %v", err)
			}
			defer h.Destroy()

			b, ok := dev.buffers[h.Get()]
			if !ok {
				t.Fatal("buffer not tracked by device")
			}
			if b.info.Usage&tt.want == 0 {
				t.Errorf("usage = %b, missing bit %b", b.info.Usage, tt.want)
			}
		})
	}
}
