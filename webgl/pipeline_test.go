// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

import (
	"errors"
	"testing"

	"github.com/devblok/gfx"
)

func testShader(t *testing.T, d *Device) gfx.Shader {
	t.Helper()
	shader, err := d.CreateShader(gfx.ShaderConfig{
		Name: "test",
		Stages: []gfx.ShaderStage{
			{Type: gfx.VertexStage, Source: "void main() {}"},
			{Type: gfx.FragmentStage, Source: "void main() {}"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return shader
}

func TestPipelineStateBlendMinMaxGating(t *testing.T) {
	d, _ := newTestDevice(t, Platform{}, nil)
	_, err := d.CreatePipelineState(gfx.PipelineStateConfig{
		Shader: testShader(t, d),
		Blend:  gfx.BlendState{Blend: true, Op: gfx.BlendOpMin},
	})
	if !errors.Is(err, gfx.ErrResourceInitialisation) {
		t.Errorf("min blend equation without the extension should fail, got %v", err)
	}

	d, _ = newTestDevice(t, Platform{}, func(ctx *fakeContext) {
		ctx.addExtension("EXT_blend_minmax")
	})
	ps, err := d.CreatePipelineState(gfx.PipelineStateConfig{
		Shader: testShader(t, d),
		Blend:  gfx.BlendState{Blend: true, Op: gfx.BlendOpMax, AlphaOp: gfx.BlendOpMin},
	})
	if err != nil {
		t.Fatalf("min/max blending should work with the extension: %v", err)
	}
	native := ps.(*PipelineState)
	if native.blendOp != MAX_EXT || native.blendAlphaOp != MIN_EXT {
		t.Error("blend equations did not resolve to the extension enums")
	}
}

func TestPipelineStateResolvesNativeEnums(t *testing.T) {
	d, _ := newTestDevice(t, Platform{}, nil)
	ps, err := d.CreatePipelineState(gfx.PipelineStateConfig{
		Shader: testShader(t, d),
		Rasterizer: gfx.RasterizerState{
			CullMode: gfx.CullFront,
			FrontCCW: true,
		},
		DepthStencil: gfx.DepthStencilState{
			DepthTest: true,
			DepthFunc: gfx.ComparisonLessEqual,
		},
		Blend: gfx.BlendState{
			Blend:     true,
			SrcFactor: gfx.BlendSrcAlpha,
			DstFactor: gfx.BlendOneMinusSrcAlpha,
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	native := ps.(*PipelineState)
	if native.cullMode != FRONT || native.frontFace != CCW {
		t.Error("rasterizer state did not resolve")
	}
	if !native.depthTest || native.depthFunc != LEQUAL {
		t.Error("depth state did not resolve")
	}
	if native.blendSrc != SRC_ALPHA || native.blendDst != ONE_MINUS_SRC_ALPHA {
		t.Error("blend factors did not resolve")
	}
}

func TestRenderPassMRTGating(t *testing.T) {
	d, _ := newTestDevice(t, Platform{}, nil)
	attachments := []gfx.ColorAttachment{
		{Format: gfx.FormatRGBA8}, {Format: gfx.FormatRGBA8},
	}
	_, err := d.CreateRenderPass(gfx.RenderPassConfig{ColorAttachments: attachments})
	if !errors.Is(err, gfx.ErrResourceInitialisation) {
		t.Errorf("multiple attachments without draw buffers should fail, got %v", err)
	}

	d, _ = newTestDevice(t, Platform{}, func(ctx *fakeContext) {
		ctx.addExtension("WEBGL_draw_buffers")
	})
	if _, err := d.CreateRenderPass(gfx.RenderPassConfig{ColorAttachments: attachments}); err != nil {
		t.Errorf("multiple attachments should work with draw buffers: %v", err)
	}
}

func TestDescriptorSetTypeChecking(t *testing.T) {
	d, _ := newTestDevice(t, Platform{}, nil)

	layout, err := d.CreateDescriptorSetLayout(gfx.DescriptorSetLayoutConfig{
		Bindings: []gfx.DescriptorBinding{
			{Binding: 0, Type: gfx.DescriptorUniformBuffer, Count: 1},
			{Binding: 1, Type: gfx.DescriptorSampledTexture, Count: 1},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	set, err := d.CreateDescriptorSet(gfx.DescriptorSetConfig{Layout: layout})
	if err != nil {
		t.Fatal(err)
	}

	uniform, err := d.CreateBuffer(gfx.BufferConfig{Usage: gfx.BufferUsageUniform, Size: 64})
	if err != nil {
		t.Fatal(err)
	}
	tex, err := d.CreateTexture(gfx.TextureConfig{Format: gfx.FormatRGBA8, Width: 4, Height: 4})
	if err != nil {
		t.Fatal(err)
	}

	if err := set.BindBuffer(0, uniform); err != nil {
		t.Errorf("uniform buffer on a buffer slot: %v", err)
	}
	if err := set.BindTexture(1, tex); err != nil {
		t.Errorf("texture on a texture slot: %v", err)
	}
	if err := set.BindTexture(0, tex); !errors.Is(err, gfx.ErrInvalidConfig) {
		t.Errorf("texture on a buffer slot should fail, got %v", err)
	}
	if err := set.BindBuffer(2, uniform); !errors.Is(err, gfx.ErrInvalidConfig) {
		t.Errorf("binding outside the layout should fail, got %v", err)
	}

	vertex, err := d.CreateBuffer(gfx.BufferConfig{Usage: gfx.BufferUsageVertex, Size: 64})
	if err != nil {
		t.Fatal(err)
	}
	if err := set.BindBuffer(0, vertex); !errors.Is(err, gfx.ErrInvalidConfig) {
		t.Errorf("vertex buffer on a uniform slot should fail, got %v", err)
	}
	set.Update()
}

func TestDescriptorSetLayoutDuplicateBinding(t *testing.T) {
	d, _ := newTestDevice(t, Platform{}, nil)
	_, err := d.CreateDescriptorSetLayout(gfx.DescriptorSetLayoutConfig{
		Bindings: []gfx.DescriptorBinding{
			{Binding: 0, Type: gfx.DescriptorUniformBuffer},
			{Binding: 0, Type: gfx.DescriptorSampledTexture},
		},
	})
	if !errors.Is(err, gfx.ErrResourceInitialisation) {
		t.Errorf("duplicate binding slots should fail, got %v", err)
	}
}

func TestInputAssemblerIndexGating(t *testing.T) {
	d, _ := newTestDevice(t, Platform{}, nil)
	vb, err := d.CreateBuffer(gfx.BufferConfig{Usage: gfx.BufferUsageVertex, Size: 36, Stride: 12})
	if err != nil {
		t.Fatal(err)
	}
	ib, err := d.CreateBuffer(gfx.BufferConfig{Usage: gfx.BufferUsageIndex, Size: 24, Stride: 4})
	if err != nil {
		t.Fatal(err)
	}

	cfg := gfx.InputAssemblerConfig{
		Attributes:    []gfx.Attribute{{Name: "position", Format: gfx.FormatRGB32F}},
		VertexBuffers: []gfx.Buffer{vb},
		IndexBuffer:   ib,
	}
	if _, err := d.CreateInputAssembler(cfg); !errors.Is(err, gfx.ErrResourceInitialisation) {
		t.Errorf("32-bit indices without the extension should fail, got %v", err)
	}

	d, _ = newTestDevice(t, Platform{}, func(ctx *fakeContext) {
		ctx.addExtension("OES_element_index_uint")
	})
	vb, err = d.CreateBuffer(gfx.BufferConfig{Usage: gfx.BufferUsageVertex, Size: 36, Stride: 12})
	if err != nil {
		t.Fatal(err)
	}
	ib, err = d.CreateBuffer(gfx.BufferConfig{Usage: gfx.BufferUsageIndex, Size: 24, Stride: 4})
	if err != nil {
		t.Fatal(err)
	}
	cfg.VertexBuffers = []gfx.Buffer{vb}
	cfg.IndexBuffer = ib
	ia, err := d.CreateInputAssembler(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if ia.IndexCount() != 6 {
		t.Errorf("index count = %d, want 6", ia.IndexCount())
	}
}

func TestInputAssemblerInstancingGating(t *testing.T) {
	d, _ := newTestDevice(t, Platform{}, nil)
	vb, err := d.CreateBuffer(gfx.BufferConfig{Usage: gfx.BufferUsageVertex, Size: 36, Stride: 12})
	if err != nil {
		t.Fatal(err)
	}
	_, err = d.CreateInputAssembler(gfx.InputAssemblerConfig{
		Attributes:    []gfx.Attribute{{Name: "offset", Format: gfx.FormatRGB32F, IsInstanced: true}},
		VertexBuffers: []gfx.Buffer{vb},
	})
	if !errors.Is(err, gfx.ErrResourceInitialisation) {
		t.Errorf("instanced attribute without the extension should fail, got %v", err)
	}
}
