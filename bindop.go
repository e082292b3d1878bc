package gfxres

import "fmt"

// BindKind discriminates the payload of a BindOp.
type BindKind uint32

// Bind kinds.
const (
	// BindKindTexture binds an image for sampling.
	BindKindTexture BindKind = iota + 1

	// BindKindSampler binds a sampler.
	BindKindSampler

	// BindKindTextureAndSampler binds an image together with a sampler.
	BindKindTextureAndSampler

	// BindKindUniformBuffer binds a byte range of a uniform buffer.
	BindKindUniformBuffer
)

// String returns the string representation of BindKind.
func (k BindKind) String() string {
	switch k {
	case BindKindTexture:
		return "Texture"
	case BindKindSampler:
		return "Sampler"
	case BindKindTextureAndSampler:
		return "TextureAndSampler"
	case BindKindUniformBuffer:
		return "UniformBuffer"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(k))
	}
}

// BindOp describes a single resource binding at a set/binding index.
// It is produced by value, consumed by BindResources, and carries no
// ownership. Only the payload fields matching Kind are populated.
type BindOp struct {
	// Kind selects which payload fields are meaningful.
	Kind BindKind

	// Set and Binding address the descriptor slot.
	Set     uint32
	Binding uint32

	// Image is set for Texture and TextureAndSampler kinds.
	Image ImageID

	// Sampler is set for Sampler and TextureAndSampler kinds.
	Sampler SamplerID

	// Buffer, Offset and Range are set for the UniformBuffer kind.
	Buffer BufferID
	Offset uint64
	Range  uint64
}

// BindingPoint pins a set/binding pair so every builder call site states
// its indices once and cannot mix them up between ops:
//
//	materialColor := gfxres.At(1, 2)
//	op := materialColor.UniformBuffer(buf, 0, 256)
type BindingPoint struct {
	Set     uint32
	Binding uint32
}

// At returns the BindingPoint for a set/binding pair.
func At(set, binding uint32) BindingPoint {
	return BindingPoint{Set: set, Binding: binding}
}

// Texture builds a Texture-kind op binding img at this point.
func (p BindingPoint) Texture(img ImageID) BindOp {
	return BindOp{
		Kind:    BindKindTexture,
		Set:     p.Set,
		Binding: p.Binding,
		Image:   img,
	}
}

// Sampler builds a Sampler-kind op binding s at this point.
func (p BindingPoint) Sampler(s SamplerID) BindOp {
	return BindOp{
		Kind:    BindKindSampler,
		Set:     p.Set,
		Binding: p.Binding,
		Sampler: s,
	}
}

// TextureAndSampler builds a combined-kind op binding img and s at this point.
func (p BindingPoint) TextureAndSampler(img ImageID, s SamplerID) BindOp {
	return BindOp{
		Kind:    BindKindTextureAndSampler,
		Set:     p.Set,
		Binding: p.Binding,
		Image:   img,
		Sampler: s,
	}
}

// UniformBuffer builds a UniformBuffer-kind op binding the byte range
// [offset, offset+rng) of buf at this point.
func (p BindingPoint) UniformBuffer(buf BufferID, offset, rng uint64) BindOp {
	return BindOp{
		Kind:    BindKindUniformBuffer,
		Set:     p.Set,
		Binding: p.Binding,
		Buffer:  buf,
		Offset:  offset,
		Range:   rng,
	}
}

// BindResources collects any number of ops and issues one bind call against
// cmd. The ops only need to live through the call:
//
//	gfxres.BindResources(dev, cmd,
//	    gfxres.At(0, 0).UniformBuffer(ubo, off, rng),
//	    gfxres.At(0, 1).TextureAndSampler(tex, smp),
//	)
func BindResources(dev Device, cmd CmdBufferID, ops ...BindOp) {
	dev.BindResources(cmd, ops)
}
