// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

import (
	"fmt"

	"github.com/devblok/gfx"
)

// InputAssembler implements gfx.InputAssembler. Attribute pointers
// are established at draw time from the recorded layout; the
// assembler itself validates the layout and derives the geometry
// counts draws are accounted with.
type InputAssembler struct {
	device *Device

	attributes    []gfx.Attribute
	vertexBuffers []*Buffer
	indexBuffer   *Buffer

	vertexCount uint32
	indexCount  uint32
}

func (d *Device) newInputAssembler(cfg gfx.InputAssemblerConfig) (*InputAssembler, error) {
	ia := &InputAssembler{device: d}
	if err := ia.initialise(cfg); err != nil {
		return nil, err
	}
	return ia, nil
}

func (ia *InputAssembler) initialise(cfg gfx.InputAssemblerConfig) error {
	if len(cfg.Attributes) == 0 {
		return fmt.Errorf("%w: input assembler needs attributes", gfx.ErrResourceInitialisation)
	}
	if len(cfg.VertexBuffers) == 0 {
		return fmt.Errorf("%w: input assembler needs vertex buffers", gfx.ErrResourceInitialisation)
	}
	if ia.device.limits.MaxVertexAttributes > 0 && len(cfg.Attributes) > ia.device.limits.MaxVertexAttributes {
		return fmt.Errorf("%w: %d attributes exceed the device limit of %d",
			gfx.ErrResourceInitialisation, len(cfg.Attributes), ia.device.limits.MaxVertexAttributes)
	}
	for _, attr := range cfg.Attributes {
		if attr.IsInstanced && !ia.device.features.Has(gfx.FeatureInstancedArrays) {
			return fmt.Errorf("%w: instanced attribute %q without instancing support",
				gfx.ErrResourceInitialisation, attr.Name)
		}
		if int(attr.Stream) >= len(cfg.VertexBuffers) {
			return fmt.Errorf("%w: attribute %q references stream %d of %d",
				gfx.ErrResourceInitialisation, attr.Name, attr.Stream, len(cfg.VertexBuffers))
		}
	}
	ia.attributes = append([]gfx.Attribute(nil), cfg.Attributes...)

	for i, vb := range cfg.VertexBuffers {
		buf, ok := vb.(*Buffer)
		if !ok || buf.device != ia.device {
			return fmt.Errorf("%w: vertex buffer %d does not belong to this device", gfx.ErrResourceInitialisation, i)
		}
		if buf.usage != gfx.BufferUsageVertex {
			return fmt.Errorf("%w: buffer %d is not a vertex buffer", gfx.ErrResourceInitialisation, i)
		}
		ia.vertexBuffers = append(ia.vertexBuffers, buf)
	}

	stride := ia.vertexBuffers[0].stride
	if stride == 0 {
		stride = streamStride(ia.attributes, 0)
	}
	if stride > 0 {
		ia.vertexCount = ia.vertexBuffers[0].size / stride
	}

	if cfg.IndexBuffer != nil {
		buf, ok := cfg.IndexBuffer.(*Buffer)
		if !ok || buf.device != ia.device {
			return fmt.Errorf("%w: index buffer does not belong to this device", gfx.ErrResourceInitialisation)
		}
		if buf.usage != gfx.BufferUsageIndex {
			return fmt.Errorf("%w: buffer is not an index buffer", gfx.ErrResourceInitialisation)
		}
		elemSize := buf.stride
		if elemSize == 0 {
			elemSize = 2
		}
		if elemSize == 4 && !ia.device.features.Has(gfx.FeatureElementIndexUint) {
			return fmt.Errorf("%w: 32-bit indices without element index uint support", gfx.ErrResourceInitialisation)
		}
		ia.indexBuffer = buf
		ia.indexCount = buf.size / elemSize
	}
	return nil
}

// streamStride sums the byte sizes of the attributes sourced from one
// vertex stream.
func streamStride(attributes []gfx.Attribute, stream uint32) uint32 {
	var stride uint32
	for _, attr := range attributes {
		if attr.Stream == stream {
			stride += attr.Format.Size(1, 1)
		}
	}
	return stride
}

// VertexCount implements gfx.InputAssembler.
func (ia *InputAssembler) VertexCount() uint32 { return ia.vertexCount }

// IndexCount implements gfx.InputAssembler.
func (ia *InputAssembler) IndexCount() uint32 { return ia.indexCount }

// Destroy implements gfx.InputAssembler. The assembler does not own
// its buffers.
func (ia *InputAssembler) Destroy() {
	ia.vertexBuffers = nil
	ia.indexBuffer = nil
	ia.attributes = nil
}
