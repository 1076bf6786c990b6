// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

import (
	"fmt"

	"github.com/devblok/gfx"
)

// Buffer implements gfx.Buffer. Vertex and index buffers are backed
// by native buffer objects; uniform and transfer buffers live in
// host memory because WebGL 1 has no uniform buffer objects.
type Buffer struct {
	device *Device
	handle Handle

	usage  gfx.BufferUsage
	memory gfx.MemoryUsage
	size   uint32
	stride uint32

	glTarget Enum
	glUsage  Enum

	// host shadow for usages without a native object
	data []byte
}

func (d *Device) newBuffer(cfg gfx.BufferConfig) (*Buffer, error) {
	b := &Buffer{device: d}
	if err := b.initialise(cfg); err != nil {
		b.Destroy()
		return nil, err
	}
	d.memory.BufferBytes += uint64(b.size)
	return b, nil
}

func (b *Buffer) initialise(cfg gfx.BufferConfig) error {
	if cfg.Size == 0 {
		return fmt.Errorf("%w: zero-size buffer", gfx.ErrResourceInitialisation)
	}
	b.usage = cfg.Usage
	b.memory = cfg.Memory
	b.size = cfg.Size
	b.stride = cfg.Stride

	switch cfg.Usage {
	case gfx.BufferUsageVertex:
		b.glTarget = ARRAY_BUFFER
	case gfx.BufferUsageIndex:
		b.glTarget = ELEMENT_ARRAY_BUFFER
	case gfx.BufferUsageUniform, gfx.BufferUsageTransferSrc:
		b.data = make([]byte, cfg.Size)
		return nil
	default:
		return fmt.Errorf("%w: unknown buffer usage %d", gfx.ErrResourceInitialisation, cfg.Usage)
	}

	b.glUsage = STATIC_DRAW
	if cfg.Memory == gfx.MemoryUsageDynamic {
		b.glUsage = DYNAMIC_DRAW
	}

	d := b.device
	b.handle = d.ctx.CreateBuffer()
	if b.handle == nil {
		return fmt.Errorf("%w: gl.createBuffer() returned nothing", gfx.ErrResourceInitialisation)
	}
	d.cache.bindBuffer(d.ctx, b.glTarget, b.handle)
	d.ctx.BufferDataSize(b.glTarget, int(b.size), b.glUsage)
	return nil
}

// Update implements gfx.Buffer.
func (b *Buffer) Update(data []byte, offset uint32) error {
	if int(offset)+len(data) > int(b.size) {
		return fmt.Errorf("%w: update of %d bytes at %d exceeds buffer size %d",
			gfx.ErrInvalidConfig, len(data), offset, b.size)
	}
	if b.data != nil {
		copy(b.data[offset:], data)
		return nil
	}
	d := b.device
	d.cache.bindBuffer(d.ctx, b.glTarget, b.handle)
	d.ctx.BufferSubData(b.glTarget, int(offset), data)
	return nil
}

// Size implements gfx.Buffer.
func (b *Buffer) Size() uint32 { return b.size }

// Usage implements gfx.Buffer.
func (b *Buffer) Usage() gfx.BufferUsage { return b.usage }

// Destroy implements gfx.Buffer.
func (b *Buffer) Destroy() {
	if b.handle != nil {
		b.device.cache.forgetBuffer(b.handle)
		b.device.ctx.DeleteBuffer(b.handle)
		b.handle = nil
		b.device.memory.BufferBytes -= uint64(b.size)
	} else if b.data != nil {
		b.device.memory.BufferBytes -= uint64(b.size)
	}
	b.data = nil
}
