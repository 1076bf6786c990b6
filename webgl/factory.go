// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

import "github.com/devblok/gfx"

// The device is the factory for every resource kind. Constructors
// return the interface's literal nil on failure so callers never see
// a typed-nil resource.

// CreateQueue implements gfx.Device.
func (d *Device) CreateQueue(cfg gfx.QueueConfig) (gfx.Queue, error) {
	q, err := d.newQueue(cfg)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// CreateBuffer implements gfx.Device.
func (d *Device) CreateBuffer(cfg gfx.BufferConfig) (gfx.Buffer, error) {
	b, err := d.newBuffer(cfg)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// CreateTexture implements gfx.Device.
func (d *Device) CreateTexture(cfg gfx.TextureConfig) (gfx.Texture, error) {
	t, err := d.newTexture(cfg)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// CreateSampler implements gfx.Device.
func (d *Device) CreateSampler(cfg gfx.SamplerConfig) (gfx.Sampler, error) {
	s, err := d.newSampler(cfg)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateShader implements gfx.Device.
func (d *Device) CreateShader(cfg gfx.ShaderConfig) (gfx.Shader, error) {
	s, err := d.newShader(cfg)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateInputAssembler implements gfx.Device.
func (d *Device) CreateInputAssembler(cfg gfx.InputAssemblerConfig) (gfx.InputAssembler, error) {
	ia, err := d.newInputAssembler(cfg)
	if err != nil {
		return nil, err
	}
	return ia, nil
}

// CreateRenderPass implements gfx.Device.
func (d *Device) CreateRenderPass(cfg gfx.RenderPassConfig) (gfx.RenderPass, error) {
	rp, err := d.newRenderPass(cfg)
	if err != nil {
		return nil, err
	}
	return rp, nil
}

// CreateFramebuffer implements gfx.Device.
func (d *Device) CreateFramebuffer(cfg gfx.FramebufferConfig) (gfx.Framebuffer, error) {
	fb, err := d.newFramebuffer(cfg)
	if err != nil {
		return nil, err
	}
	return fb, nil
}

// CreateDescriptorSetLayout implements gfx.Device.
func (d *Device) CreateDescriptorSetLayout(cfg gfx.DescriptorSetLayoutConfig) (gfx.DescriptorSetLayout, error) {
	l, err := d.newDescriptorSetLayout(cfg)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// CreateDescriptorSet implements gfx.Device.
func (d *Device) CreateDescriptorSet(cfg gfx.DescriptorSetConfig) (gfx.DescriptorSet, error) {
	s, err := d.newDescriptorSet(cfg)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreatePipelineLayout implements gfx.Device.
func (d *Device) CreatePipelineLayout(cfg gfx.PipelineLayoutConfig) (gfx.PipelineLayout, error) {
	pl, err := d.newPipelineLayout(cfg)
	if err != nil {
		return nil, err
	}
	return pl, nil
}

// CreatePipelineState implements gfx.Device.
func (d *Device) CreatePipelineState(cfg gfx.PipelineStateConfig) (gfx.PipelineState, error) {
	ps, err := d.newPipelineState(cfg)
	if err != nil {
		return nil, err
	}
	return ps, nil
}

// CreateCommandBuffer implements gfx.Device.
func (d *Device) CreateCommandBuffer(cfg gfx.CommandBufferConfig) (gfx.CommandBuffer, error) {
	return d.newCommandBuffer(cfg)
}

// CreateFence implements gfx.Device.
func (d *Device) CreateFence(cfg gfx.FenceConfig) (gfx.Fence, error) {
	f, err := d.newFence(cfg)
	if err != nil {
		return nil, err
	}
	return f, nil
}

var (
	_ gfx.Device              = (*Device)(nil)
	_ gfx.Queue               = (*Queue)(nil)
	_ gfx.Buffer              = (*Buffer)(nil)
	_ gfx.Texture             = (*Texture)(nil)
	_ gfx.Sampler             = (*Sampler)(nil)
	_ gfx.Shader              = (*Shader)(nil)
	_ gfx.InputAssembler      = (*InputAssembler)(nil)
	_ gfx.RenderPass          = (*RenderPass)(nil)
	_ gfx.Framebuffer         = (*Framebuffer)(nil)
	_ gfx.DescriptorSetLayout = (*DescriptorSetLayout)(nil)
	_ gfx.DescriptorSet       = (*DescriptorSet)(nil)
	_ gfx.PipelineLayout      = (*PipelineLayout)(nil)
	_ gfx.PipelineState       = (*PipelineState)(nil)
	_ gfx.CommandBuffer       = (*PrimaryCommandBuffer)(nil)
	_ gfx.CommandBuffer       = (*SecondaryCommandBuffer)(nil)
	_ gfx.Fence               = (*Fence)(nil)
)
