//go:build !nogpu

package native

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gfxres"
)

// BindResources derives bind group layouts and bind groups from the given
// ops and attaches them to the command buffer. Ops are grouped by set; the
// layout of each set is derived from the op kinds at its bindings and
// cached by signature, so repeated calls with the same shape reuse one
// hal layout.
//
// WebGPU has no combined image-sampler binding, so a TextureAndSampler op
// occupies two consecutive bindings: the texture view at Binding and the
// sampler at Binding+1. Shaders targeting this adapter declare their
// bindings accordingly.
//
// Errors at this layer (unknown IDs, backend failures) are logged and the
// offending set is skipped; the gfxres contract keeps binding fire-and-
// forget.
func (a *HALAdapter) BindResources(cmd gfxres.CmdBufferID, ops []gfxres.BindOp) {
	if len(ops) == 0 {
		return
	}

	a.mu.RLock()
	entry, ok := a.cmds[cmd]
	a.mu.RUnlock()
	if !ok {
		gfxres.Logger().Warn("bind on unknown command buffer", slog.Uint64("cmd", uint64(cmd)))
		return
	}

	sets := make(map[uint32][]gfxres.BindOp)
	var order []uint32
	for _, op := range ops {
		if _, seen := sets[op.Set]; !seen {
			order = append(order, op.Set)
		}
		sets[op.Set] = append(sets[op.Set], op)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	for _, set := range order {
		group, err := a.bindSet(sets[set])
		if err != nil {
			gfxres.Logger().Warn("bind set skipped",
				slog.Uint64("cmd", uint64(cmd)),
				slog.Uint64("set", uint64(set)),
				slog.String("error", err.Error()))
			continue
		}

		// The command buffer may have been destroyed while the group was
		// built; park the group only if it is still tracked, otherwise
		// releaseGroups has already run and the group must go now.
		a.mu.Lock()
		_, alive := a.cmds[cmd]
		if alive {
			entry.groups = append(entry.groups, group)
		}
		a.mu.Unlock()

		if !alive {
			a.device.DestroyBindGroup(group)
			gfxres.Logger().Warn("bind on destroyed command buffer", slog.Uint64("cmd", uint64(cmd)))
			return
		}
	}
}

// bindSet builds one bind group for the ops of a single set.
func (a *HALAdapter) bindSet(ops []gfxres.BindOp) (hal.BindGroup, error) {
	sort.Slice(ops, func(i, j int) bool { return ops[i].Binding < ops[j].Binding })

	layout, err := a.layoutFor(ops)
	if err != nil {
		return nil, err
	}

	a.mu.RLock()
	entries := make([]gputypes.BindGroupEntry, 0, len(ops))
	for _, op := range ops {
		converted, convErr := a.convertOp(op)
		if convErr != nil {
			a.mu.RUnlock()
			return nil, convErr
		}
		entries = append(entries, converted...)
	}
	a.mu.RUnlock()

	group, err := a.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:   "gfxres_bind",
		Layout:  layout,
		Entries: entries,
	})
	if err != nil {
		return nil, fmt.Errorf("create bind group: %w", err)
	}
	return group, nil
}

// layoutFor returns the cached bind group layout for the op shape,
// creating it on first use.
func (a *HALAdapter) layoutFor(ops []gfxres.BindOp) (hal.BindGroupLayout, error) {
	key := layoutKey(ops)

	a.mu.RLock()
	layout, ok := a.layouts[key]
	a.mu.RUnlock()
	if ok {
		return layout, nil
	}

	var entries []gputypes.BindGroupLayoutEntry
	for _, op := range ops {
		switch op.Kind {
		case gfxres.BindKindTexture:
			entries = append(entries, textureLayoutEntry(op.Binding))
		case gfxres.BindKindSampler:
			entries = append(entries, samplerLayoutEntry(op.Binding))
		case gfxres.BindKindTextureAndSampler:
			entries = append(entries,
				textureLayoutEntry(op.Binding),
				samplerLayoutEntry(op.Binding+1))
		case gfxres.BindKindUniformBuffer:
			entries = append(entries, gputypes.BindGroupLayoutEntry{
				Binding:    op.Binding,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			})
		default:
			return nil, fmt.Errorf("op at binding %d has invalid kind %v", op.Binding, op.Kind)
		}
	}

	created, err := a.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   "gfxres_layout",
		Entries: entries,
	})
	if err != nil {
		return nil, fmt.Errorf("create bind group layout: %w", err)
	}

	a.mu.Lock()
	if existing, raced := a.layouts[key]; raced {
		a.mu.Unlock()
		a.device.DestroyBindGroupLayout(created)
		return existing, nil
	}
	a.layouts[key] = created
	a.mu.Unlock()

	return created, nil
}

func textureLayoutEntry(binding uint32) gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: gputypes.ShaderStageFragment,
		Texture: &gputypes.TextureBindingLayout{
			SampleType:    gputypes.TextureSampleTypeFloat,
			ViewDimension: gputypes.TextureViewDimension2D,
		},
	}
}

func samplerLayoutEntry(binding uint32) gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: gputypes.ShaderStageFragment,
		Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
	}
}

// layoutKey builds the cache signature for a sorted op slice.
func layoutKey(ops []gfxres.BindOp) string {
	var b strings.Builder
	for _, op := range ops {
		fmt.Fprintf(&b, "%d:%d;", op.Binding, op.Kind)
	}
	return b.String()
}

// convertOp resolves one op's IDs into hal bind group entries.
// Must be called with mu.RLock held.
func (a *HALAdapter) convertOp(op gfxres.BindOp) ([]gputypes.BindGroupEntry, error) {
	switch op.Kind {
	case gfxres.BindKindTexture:
		img, ok := a.images[op.Image]
		if !ok {
			return nil, fmt.Errorf("image %d not found", op.Image)
		}
		return []gputypes.BindGroupEntry{{
			Binding:  op.Binding,
			Resource: gputypes.TextureViewBinding{TextureView: img.view.NativeHandle()},
		}}, nil

	case gfxres.BindKindSampler:
		sampler, ok := a.samplers[op.Sampler]
		if !ok {
			return nil, fmt.Errorf("sampler %d not found", op.Sampler)
		}
		return []gputypes.BindGroupEntry{{
			Binding:  op.Binding,
			Resource: gputypes.SamplerBinding{Sampler: sampler.NativeHandle()},
		}}, nil

	case gfxres.BindKindTextureAndSampler:
		img, ok := a.images[op.Image]
		if !ok {
			return nil, fmt.Errorf("image %d not found", op.Image)
		}
		sampler, ok := a.samplers[op.Sampler]
		if !ok {
			return nil, fmt.Errorf("sampler %d not found", op.Sampler)
		}
		return []gputypes.BindGroupEntry{
			{
				Binding:  op.Binding,
				Resource: gputypes.TextureViewBinding{TextureView: img.view.NativeHandle()},
			},
			{
				Binding:  op.Binding + 1,
				Resource: gputypes.SamplerBinding{Sampler: sampler.NativeHandle()},
			},
		}, nil

	case gfxres.BindKindUniformBuffer:
		buf, ok := a.buffers[op.Buffer]
		if !ok {
			return nil, fmt.Errorf("buffer %d not found", op.Buffer)
		}
		return []gputypes.BindGroupEntry{{
			Binding: op.Binding,
			Resource: gputypes.BufferBinding{
				Buffer: buf.buf.NativeHandle(),
				Offset: op.Offset,
				Size:   op.Range,
			},
		}}, nil

	default:
		return nil, fmt.Errorf("op at binding %d has invalid kind %v", op.Binding, op.Kind)
	}
}
