// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
)

// Context is the graphics context: the instance, the adapter chosen
// for a particular surface, and the device and queue created on it.
type Context struct {
	Instance Instance
	Adapter  Adapter
	Device   Device
	Queue    Queue

	// Info describes the selected adapter.
	Info AdapterInfo
}

// NewContext requests an adapter that can present to the given surface,
// and then a device and queue on that adapter. Both requests block.
// On failure nothing is retained: the returned error wraps
// [ErrNoAdapter] or [ErrDeviceCreation].
func NewContext(inst Instance, sf *Surface, opts *Options) (*Context, error) {
	ad, err := inst.RequestAdapter(&AdapterOptions{
		CompatibleSurface: sf.Chain(),
		PowerPreference:   opts.PowerPreference,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}
	if ad == nil {
		return nil, ErrNoAdapter
	}
	info := ad.Info()
	slog.Info("gpu: selected adapter", "name", info.Name, "vendor", info.Vendor, "type", info.AdapterType, "backend", info.Backend, "driver", info.Driver)

	dev, q, err := RequestDevice(ad, opts.Label)
	if err != nil {
		ad.Release()
		return nil, err
	}
	return &Context{Instance: inst, Adapter: ad, Device: dev, Queue: q, Info: info}, nil
}

// RequestDevice creates a device with default features and limits on
// the given adapter, and returns it with its queue.
// Errors wrap [ErrDeviceCreation].
func RequestDevice(ad Adapter, label string) (Device, Queue, error) {
	dev, err := ad.RequestDevice(label)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrDeviceCreation, err)
	}
	if dev == nil {
		return nil, nil, ErrDeviceCreation
	}
	q := dev.Queue()
	if q == nil {
		dev.Release()
		return nil, nil, fmt.Errorf("%w: device has no queue", ErrDeviceCreation)
	}
	return dev, q, nil
}

// Release releases the device and the adapter. The instance is
// released separately, after any surface created from it.
func (gc *Context) Release() {
	if gc.Device != nil {
		gc.Device.Release()
		gc.Device = nil
		gc.Queue = nil
	}
	if gc.Adapter != nil {
		gc.Adapter.Release()
		gc.Adapter = nil
	}
}
