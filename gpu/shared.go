package gpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"
)

// ErrNoGPU indicates that no usable GPU adapter was found.
var ErrNoGPU = errors.New("gpu: no adapter available")

// SharedDevice is a reference-counted offscreen wgpu device for window
// backends that are not handed a provider by the host.
//
// Ownership is shared: every holder calls Retain when it takes the handle
// and Release when done. The underlying device and adapter are dropped only
// when the last holder releases; releasing more times than retained is a
// no-op after the first teardown.
//
// SharedDevice is safe for concurrent use.
type SharedDevice struct {
	mu   sync.Mutex
	refs int

	instance *core.Instance
	adapter  core.AdapterID
	device   core.DeviceID
	queue    core.QueueID

	name string
}

// Open bootstraps an offscreen GPU device: instance, adapter (preferring a
// high performance GPU), logical device, queue. The returned handle has one
// reference.
func Open(label string) (*SharedDevice, error) {
	instance := core.NewInstance(&gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
		Flags:    0,
	})

	adapterID, err := instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoGPU, err)
	}

	deviceID, err := core.RequestDevice(adapterID, &gputypes.DeviceDescriptor{
		Label:            label,
		RequiredFeatures: nil,
		RequiredLimits:   gputypes.DefaultLimits(),
	})
	if err != nil {
		_ = core.AdapterDrop(adapterID)
		return nil, fmt.Errorf("gpu: device creation failed: %w", err)
	}

	queueID, err := core.GetDeviceQueue(deviceID)
	if err != nil {
		_ = core.DeviceDrop(deviceID)
		_ = core.AdapterDrop(adapterID)
		return nil, fmt.Errorf("gpu: queue retrieval failed: %w", err)
	}

	name := label
	if info, err := core.GetAdapterInfo(adapterID); err == nil {
		name = info.Name
	}

	return &SharedDevice{
		refs:     1,
		instance: instance,
		adapter:  adapterID,
		device:   deviceID,
		queue:    queueID,
		name:     name,
	}, nil
}

// Retain adds a reference and returns the same handle for convenience.
// Retaining a torn-down handle returns nil.
func (d *SharedDevice) Retain() *SharedDevice {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.refs == 0 {
		return nil
	}
	d.refs++
	return d
}

// Release drops one reference. The device and adapter are destroyed when
// the last reference goes away. Extra releases are no-ops.
func (d *SharedDevice) Release() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.refs == 0 {
		return
	}
	d.refs--
	if d.refs > 0 {
		return
	}

	// Queue is released when the device is dropped.
	_ = core.DeviceDrop(d.device)
	_ = core.AdapterDrop(d.adapter)
	d.device = core.DeviceID{}
	d.adapter = core.AdapterID{}
	d.instance = nil
}

// Refs returns the current reference count.
func (d *SharedDevice) Refs() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.refs
}

// Alive reports whether the underlying device is still up.
func (d *SharedDevice) Alive() bool {
	return d.Refs() > 0
}

// Name returns the adapter name, or the open label when adapter info was
// unavailable.
func (d *SharedDevice) Name() string {
	return d.name
}

// DeviceID returns the wgpu device id. Zero once torn down.
func (d *SharedDevice) DeviceID() core.DeviceID {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.device
}

// QueueID returns the wgpu queue id.
func (d *SharedDevice) QueueID() core.QueueID {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.queue
}

// Device returns the device handle, or nil after teardown. Part of the
// DeviceHandle surface, so a SharedDevice can back Window.Device.
func (d *SharedDevice) Device() gpucontext.Device {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.refs == 0 {
		return nil
	}
	return d.device
}

// Queue returns the queue handle, or nil after teardown.
func (d *SharedDevice) Queue() gpucontext.Queue {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.refs == 0 {
		return nil
	}
	return d.queue
}

// Adapter returns the adapter handle, or nil after teardown.
func (d *SharedDevice) Adapter() gpucontext.Adapter {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.refs == 0 {
		return nil
	}
	return d.adapter
}

// SurfaceFormat returns Undefined: the shared device is offscreen, no
// surface is attached.
func (d *SharedDevice) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure SharedDevice implements DeviceHandle.
var _ DeviceHandle = (*SharedDevice)(nil)
