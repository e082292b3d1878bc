package gfxres

import "fmt"

// fakeDevice is an instrumented in-memory Device. Buffers get a real byte
// backing store so tests can verify exactly what a write put where; the
// other kinds are counted create/destroy pairs.
type fakeDevice struct {
	nextID uint64
	limits Limits

	// Failure injection.
	failBufferCreate error
	failImageCreate  error

	buffers map[BufferID]*fakeBuffer
	live    map[uint64]string // id -> kind, for every non-buffer kind

	createCalls  map[string]int
	destroyCalls map[string]int

	destroyedImages []ImageID

	maps    []mapCall
	flushes []flushCall
	unmaps  []BufferID
	binds   []bindCall
}

type fakeBuffer struct {
	info   BufferInfo
	data   []byte
	mapped bool
	mapOff uint64
	mapLen uint64
}

type mapCall struct {
	buf            BufferID
	offset, length uint64
	flags          MapFlags
}

type flushCall struct {
	buf            BufferID
	offset, length uint64
}

type bindCall struct {
	cmd CmdBufferID
	ops []BindOp
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		nextID:       1,
		buffers:      make(map[BufferID]*fakeBuffer),
		live:         make(map[uint64]string),
		createCalls:  make(map[string]int),
		destroyCalls: make(map[string]int),
	}
}

func (d *fakeDevice) newID() uint64 {
	id := d.nextID
	d.nextID++
	return id
}

func (d *fakeDevice) CreateBuffer(info *BufferInfo) (BufferID, error) {
	if d.failBufferCreate != nil {
		return InvalidID, d.failBufferCreate
	}
	d.createCalls["buffer"]++
	id := BufferID(d.newID())
	d.buffers[id] = &fakeBuffer{info: *info, data: make([]byte, info.Size)}
	return id, nil
}

func (d *fakeDevice) DestroyBuffer(id BufferID) {
	d.destroyCalls["buffer"]++
	delete(d.buffers, id)
}

func (d *fakeDevice) CreateImage(*ImageInfo) (ImageID, error) {
	if d.failImageCreate != nil {
		return InvalidID, d.failImageCreate
	}
	d.createCalls["image"]++
	id := d.newID()
	d.live[id] = "image"
	return ImageID(id), nil
}

func (d *fakeDevice) DestroyImage(id ImageID) {
	d.destroyCalls["image"]++
	d.destroyedImages = append(d.destroyedImages, id)
	delete(d.live, uint64(id))
}

func (d *fakeDevice) CreateSampler(*SamplerInfo) (SamplerID, error) {
	d.createCalls["sampler"]++
	id := d.newID()
	d.live[id] = "sampler"
	return SamplerID(id), nil
}

func (d *fakeDevice) DestroySampler(id SamplerID) {
	d.destroyCalls["sampler"]++
	delete(d.live, uint64(id))
}

func (d *fakeDevice) CreateShaderStage(*ShaderStageInfo) (ShaderStageID, error) {
	d.createCalls["shader_stage"]++
	id := d.newID()
	d.live[id] = "shader_stage"
	return ShaderStageID(id), nil
}

func (d *fakeDevice) DestroyShaderStage(id ShaderStageID) {
	d.destroyCalls["shader_stage"]++
	delete(d.live, uint64(id))
}

func (d *fakeDevice) CreatePipeline(*PipelineInfo) (PipelineID, error) {
	d.createCalls["pipeline"]++
	id := d.newID()
	d.live[id] = "pipeline"
	return PipelineID(id), nil
}

func (d *fakeDevice) DestroyPipeline(id PipelineID) {
	d.destroyCalls["pipeline"]++
	delete(d.live, uint64(id))
}

func (d *fakeDevice) CreateRenderTarget(*RenderTargetInfo) (RenderTargetID, error) {
	d.createCalls["render_target"]++
	id := d.newID()
	d.live[id] = "render_target"
	return RenderTargetID(id), nil
}

func (d *fakeDevice) DestroyRenderTarget(id RenderTargetID) {
	d.destroyCalls["render_target"]++
	delete(d.live, uint64(id))
}

func (d *fakeDevice) CreateCmdBuffer(*CmdBufferInfo) (CmdBufferID, error) {
	d.createCalls["cmd_buffer"]++
	id := d.newID()
	d.live[id] = "cmd_buffer"
	return CmdBufferID(id), nil
}

func (d *fakeDevice) DestroyCmdBuffer(id CmdBufferID) {
	d.destroyCalls["cmd_buffer"]++
	delete(d.live, uint64(id))
}

func (d *fakeDevice) MapBufferRange(buf BufferID, offset, length uint64, flags MapFlags) []byte {
	d.maps = append(d.maps, mapCall{buf: buf, offset: offset, length: length, flags: flags})
	b, ok := d.buffers[buf]
	if !ok {
		return nil
	}
	b.mapped = true
	b.mapOff = offset
	b.mapLen = length
	return b.data[offset : offset+length]
}

func (d *fakeDevice) FlushBufferRange(buf BufferID, offset, length uint64) {
	d.flushes = append(d.flushes, flushCall{buf: buf, offset: offset, length: length})
}

func (d *fakeDevice) UnmapBuffer(buf BufferID) {
	d.unmaps = append(d.unmaps, buf)
	if b, ok := d.buffers[buf]; ok {
		b.mapped = false
	}
}

func (d *fakeDevice) BindResources(cmd CmdBufferID, ops []BindOp) {
	copied := make([]BindOp, len(ops))
	copy(copied, ops)
	d.binds = append(d.binds, bindCall{cmd: cmd, ops: copied})
}

func (d *fakeDevice) Limits() Limits {
	return d.limits
}

// balance returns an error if any kind has mismatched create/destroy counts.
func (d *fakeDevice) balance() error {
	for kind, created := range d.createCalls {
		if destroyed := d.destroyCalls[kind]; destroyed != created {
			return fmt.Errorf("%s: %d created, %d destroyed", kind, created, destroyed)
		}
	}
	return nil
}
