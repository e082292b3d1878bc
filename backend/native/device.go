//go:build !nogpu

package native

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gfxres"
)

// OwnedDevice is a HALAdapter that opened its own hal device and is
// responsible for closing it.
type OwnedDevice struct {
	*HALAdapter

	instance hal.Instance
	device   hal.Device
}

// New opens a GPU device through the Vulkan hal backend and wraps it in
// an adapter. Discrete GPUs are preferred over integrated ones.
//
// The returned OwnedDevice owns the device: call Close when done.
func New() (*OwnedDevice, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("native: vulkan backend not available")
	}

	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("native: create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("native: no GPU adapters found")
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	limits := gputypes.DefaultLimits()
	openDev, err := selected.Adapter.Open(gputypes.Features(0), limits)
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("native: open device: %w", err)
	}

	gfxres.Logger().Info("device opened",
		slog.String("adapter", selected.Info.Name))

	return &OwnedDevice{
		HALAdapter: NewWithDevice(openDev.Device, openDev.Queue, &limits),
		instance:   instance,
		device:     openDev.Device,
	}, nil
}

// Close destroys all tracked resources, the device and the instance.
func (d *OwnedDevice) Close() {
	d.HALAdapter.Destroy()
	d.device.Destroy()
	d.instance.Destroy()
}

// FromProvider wraps a shared GPU device owned by a host application.
// The provider must additionally expose the underlying hal pair as
// HalDevice() any and HalQueue() any returning hal.Device and hal.Queue.
//
// The host keeps ownership of the device.
func FromProvider(provider gpucontext.DeviceProvider) (*HALAdapter, error) {
	if provider == nil {
		return nil, fmt.Errorf("native: nil device provider")
	}

	hp, ok := provider.(interface {
		HalDevice() any
		HalQueue() any
	})
	if !ok {
		return nil, fmt.Errorf("native: provider does not expose hal device/queue")
	}

	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("native: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("native: provider HalQueue is not hal.Queue")
	}

	return NewWithDevice(device, queue, nil), nil
}
