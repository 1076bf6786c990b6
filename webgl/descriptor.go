// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

import (
	"fmt"

	"github.com/devblok/gfx"
)

// DescriptorSetLayout implements gfx.DescriptorSetLayout as a
// validated copy of the binding slots.
type DescriptorSetLayout struct {
	device   *Device
	bindings []gfx.DescriptorBinding
}

func (d *Device) newDescriptorSetLayout(cfg gfx.DescriptorSetLayoutConfig) (*DescriptorSetLayout, error) {
	seen := make(map[uint32]bool, len(cfg.Bindings))
	for _, b := range cfg.Bindings {
		if seen[b.Binding] {
			return nil, fmt.Errorf("%w: duplicate binding slot %d", gfx.ErrResourceInitialisation, b.Binding)
		}
		seen[b.Binding] = true
	}
	return &DescriptorSetLayout{
		device:   d,
		bindings: append([]gfx.DescriptorBinding(nil), cfg.Bindings...),
	}, nil
}

// Bindings implements gfx.DescriptorSetLayout.
func (l *DescriptorSetLayout) Bindings() []gfx.DescriptorBinding { return l.bindings }

// Destroy implements gfx.DescriptorSetLayout.
func (l *DescriptorSetLayout) Destroy() { l.bindings = nil }

// descriptorSlot is one bound resource of a descriptor set.
type descriptorSlot struct {
	binding gfx.DescriptorBinding
	buffer  *Buffer
	texture *Texture
	sampler *Sampler
	dirty   bool
}

// DescriptorSet implements gfx.DescriptorSet. Bind calls stage
// resources against the layout's slots; Update marks them current so
// draws can resolve them onto the flat native binding model.
type DescriptorSet struct {
	device *Device
	layout *DescriptorSetLayout
	slots  map[uint32]*descriptorSlot
}

func (d *Device) newDescriptorSet(cfg gfx.DescriptorSetConfig) (*DescriptorSet, error) {
	layout, ok := cfg.Layout.(*DescriptorSetLayout)
	if !ok || layout.device != d {
		return nil, fmt.Errorf("%w: layout does not belong to this device", gfx.ErrResourceInitialisation)
	}
	slots := make(map[uint32]*descriptorSlot, len(layout.bindings))
	for _, b := range layout.bindings {
		slots[b.Binding] = &descriptorSlot{binding: b}
	}
	return &DescriptorSet{device: d, layout: layout, slots: slots}, nil
}

func (s *DescriptorSet) slot(binding uint32, want gfx.DescriptorType) (*descriptorSlot, error) {
	slot, ok := s.slots[binding]
	if !ok {
		return nil, fmt.Errorf("%w: binding %d is not in the layout", gfx.ErrInvalidConfig, binding)
	}
	if slot.binding.Type != want {
		return nil, fmt.Errorf("%w: binding %d holds type %d, not %d",
			gfx.ErrInvalidConfig, binding, slot.binding.Type, want)
	}
	return slot, nil
}

// BindBuffer implements gfx.DescriptorSet.
func (s *DescriptorSet) BindBuffer(binding uint32, buffer gfx.Buffer) error {
	slot, err := s.slot(binding, gfx.DescriptorUniformBuffer)
	if err != nil {
		return err
	}
	buf, ok := buffer.(*Buffer)
	if !ok || buf.device != s.device {
		return fmt.Errorf("%w: buffer does not belong to this device", gfx.ErrInvalidConfig)
	}
	if buf.usage != gfx.BufferUsageUniform {
		return fmt.Errorf("%w: binding %d needs a uniform buffer", gfx.ErrInvalidConfig, binding)
	}
	slot.buffer = buf
	slot.dirty = true
	return nil
}

// BindTexture implements gfx.DescriptorSet.
func (s *DescriptorSet) BindTexture(binding uint32, texture gfx.Texture) error {
	slot, err := s.slot(binding, gfx.DescriptorSampledTexture)
	if err != nil {
		return err
	}
	tex, ok := texture.(*Texture)
	if !ok || tex.device != s.device {
		return fmt.Errorf("%w: texture does not belong to this device", gfx.ErrInvalidConfig)
	}
	slot.texture = tex
	slot.dirty = true
	return nil
}

// BindSampler implements gfx.DescriptorSet.
func (s *DescriptorSet) BindSampler(binding uint32, sampler gfx.Sampler) error {
	slot, err := s.slot(binding, gfx.DescriptorSampledTexture)
	if err != nil {
		return err
	}
	smp, ok := sampler.(*Sampler)
	if !ok || smp.device != s.device {
		return fmt.Errorf("%w: sampler does not belong to this device", gfx.ErrInvalidConfig)
	}
	slot.sampler = smp
	slot.dirty = true
	return nil
}

// Update implements gfx.DescriptorSet. Texture slots without a bound
// texture fall back to the device null texture, and sampler
// parameters are written onto their paired texture, WebGL 1 having no
// standalone sampler objects.
func (s *DescriptorSet) Update() {
	d := s.device
	for _, slot := range s.slots {
		if !slot.dirty || slot.binding.Type != gfx.DescriptorSampledTexture {
			slot.dirty = false
			continue
		}
		tex := slot.texture
		if tex == nil {
			tex = d.nullTex2D
		}
		if tex != nil && slot.sampler != nil {
			smp := slot.sampler
			d.cache.bindTexture(d.ctx, 0, tex.glTarget, tex.handle)
			d.ctx.TexParameteri(tex.glTarget, TEXTURE_MIN_FILTER, int(smp.glMinFilter))
			d.ctx.TexParameteri(tex.glTarget, TEXTURE_MAG_FILTER, int(smp.glMagFilter))
			d.ctx.TexParameteri(tex.glTarget, TEXTURE_WRAP_S, int(smp.glWrapS))
			d.ctx.TexParameteri(tex.glTarget, TEXTURE_WRAP_T, int(smp.glWrapT))
			if smp.anisotropy > 1 {
				d.ctx.TexParameteri(tex.glTarget, TEXTURE_MAX_ANISOTROPY, int(smp.anisotropy))
			}
		}
		slot.dirty = false
	}
}

// Destroy implements gfx.DescriptorSet. Bound resources are owned by
// their creators.
func (s *DescriptorSet) Destroy() { s.slots = nil }
