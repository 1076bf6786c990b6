// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

import "github.com/devblok/gfx"

// Fence implements gfx.Fence. WebGL 1 exposes no native sync
// objects, and the backend submits synchronously, so the fence is a
// host-side flag signalled by queue submission.
type Fence struct {
	device    *Device
	signalled bool
}

func (d *Device) newFence(cfg gfx.FenceConfig) (*Fence, error) {
	return &Fence{device: d, signalled: cfg.Signalled}, nil
}

// Signalled implements gfx.Fence.
func (f *Fence) Signalled() bool { return f.signalled }

// Reset implements gfx.Fence.
func (f *Fence) Reset() { f.signalled = false }

func (f *Fence) signal() { f.signalled = true }

// Destroy implements gfx.Fence.
func (f *Fence) Destroy() {}
