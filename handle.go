package gfxres

// noCopy is embedded in types that must not be copied after first use.
// It triggers the copylocks check in "go vet".
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Handle is a single-owner wrapper over one device object.
//
// A Handle is bound at construction to the create/destroy pair for its
// object kind and owns at most one live object at any time. Whatever the
// handle owns when Destroy runs is destroyed exactly once; an empty handle
// destroys nothing. Ownership is exclusive: it can be transferred with
// MoveTo or surrendered with Release, never duplicated. Handles must not
// be copied after first use ("go vet" reports copies via the embedded
// marker).
//
// The guarantee this type maintains: for every object a handle
// ever created or adopted, the destroy function runs at most once, and it
// runs unless the object left through Release or MoveTo.
//
// Handle performs no locking. If one is shared across goroutines, all
// access including destruction must be externally serialized.
type Handle[T ~uint64, I any] struct {
	noCopy noCopy //nolint:unused // vet marker, never read

	create  func(*I) (T, error)
	destroy func(T)
	id      T
}

// New returns an empty handle bound to the given create/destroy pair.
// Both functions must be non-nil for the handle to be usable; typically
// they are method values of a Device, as in
//
//	h := gfxres.New(dev.CreateImage, dev.DestroyImage)
//
// The per-kind constructors (NewBufferHandle, NewImageHandle, ...) wrap
// this for the standard object kinds.
func New[T ~uint64, I any](create func(*I) (T, error), destroy func(T)) *Handle[T, I] {
	return &Handle[T, I]{create: create, destroy: destroy}
}

// Adopt returns a handle that owns raw, assumed already created through the
// same pair. No create call is made; destruction of raw becomes the
// handle's responsibility.
func Adopt[T ~uint64, I any](create func(*I) (T, error), destroy func(T), raw T) *Handle[T, I] {
	return &Handle[T, I]{create: create, destroy: destroy, id: raw}
}

// Initialize destroys the currently owned object, if any, then creates a
// new one from info. On success the handle owns the new object. On failure
// the handle is left empty and the backend's error is returned unmodified;
// Initialize adds no wrapping, retry or translation.
func (h *Handle[T, I]) Initialize(info *I) error {
	h.destroyIfOwned()
	id, err := h.create(info)
	if err != nil {
		return err
	}
	h.id = id
	return nil
}

// Get returns the owned object ID, or InvalidID if the handle is empty.
// Ownership does not transfer; the caller must not destroy the object.
func (h *Handle[T, I]) Get() T {
	return h.id
}

// Valid reports whether the handle currently owns an object.
func (h *Handle[T, I]) Valid() bool {
	return h.id != InvalidID
}

// Release returns the owned object ID and empties the handle without
// destroying the object. The caller becomes responsible for its eventual
// destruction.
func (h *Handle[T, I]) Release() T {
	id := h.id
	h.id = InvalidID
	return id
}

// Reset destroys the currently owned object, if any, then takes ownership
// of raw without a create call.
func (h *Handle[T, I]) Reset(raw T) {
	h.destroyIfOwned()
	h.id = raw
}

// MoveTo transfers ownership from h to dst. Whatever dst owned before is
// destroyed first, using dst's own destroy function. Afterwards dst owns
// h's object (and uses h's create/destroy pair for it), and h is empty.
// Moving to an unbound (zero) handle is allowed; moving a handle onto
// itself is a no-op.
func (h *Handle[T, I]) MoveTo(dst *Handle[T, I]) {
	if h == dst {
		return
	}
	dst.destroyIfOwned()
	dst.create = h.create
	dst.destroy = h.destroy
	dst.id = h.id
	h.id = InvalidID
}

// Destroy destroys the owned object, if any, and empties the handle.
// It is idempotent and the usual companion of defer:
//
//	h := gfxres.NewBufferHandle(dev)
//	defer h.Destroy()
func (h *Handle[T, I]) Destroy() {
	h.destroyIfOwned()
}

func (h *Handle[T, I]) destroyIfOwned() {
	if h.id != InvalidID {
		h.destroy(h.id)
		h.id = InvalidID
	}
}
