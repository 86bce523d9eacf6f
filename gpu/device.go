// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu carries the shared GPU handle that crosses the windowing
// boundary: the device both the compositor and the platform backend issue
// work against.
package gpu

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access across the windowing boundary.
//
// The handle is shared, not owned: the compositor and the windowing backend
// may both hold it, and neither side tears the device down while the other
// still holds a reference. Window backends either receive a provider from
// the host application (the usual arrangement under gogpu.App) or bootstrap
// their own offscreen device (see SharedDevice).
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, giving the
// windowing layer its own name for the interface while staying fully
// compatible with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle with nil implementations, for backends
// that run without a GPU (headless runs, tests).
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
