// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

import (
	"fmt"

	"github.com/devblok/gfx"
)

// PipelineLayout implements gfx.PipelineLayout as the ordered list of
// set layouts visible to a pipeline.
type PipelineLayout struct {
	device     *Device
	setLayouts []*DescriptorSetLayout
}

func (d *Device) newPipelineLayout(cfg gfx.PipelineLayoutConfig) (*PipelineLayout, error) {
	pl := &PipelineLayout{device: d}
	for i, sl := range cfg.SetLayouts {
		layout, ok := sl.(*DescriptorSetLayout)
		if !ok || layout.device != d {
			return nil, fmt.Errorf("%w: set layout %d does not belong to this device", gfx.ErrResourceInitialisation, i)
		}
		pl.setLayouts = append(pl.setLayouts, layout)
	}
	return pl, nil
}

// Destroy implements gfx.PipelineLayout.
func (pl *PipelineLayout) Destroy() { pl.setLayouts = nil }

// PipelineState implements gfx.PipelineState. All fixed-function
// state is resolved to native enumerants at creation, so binding the
// pipeline is a straight replay of pre-validated values.
type PipelineState struct {
	device *Device
	shader *Shader
	layout *PipelineLayout

	cullMode  Enum
	cullNone  bool
	frontFace Enum

	depthTest  bool
	depthWrite bool
	depthFunc  Enum

	stencilTest bool
	stencilFunc Enum
	stencilRef  int
	stencilMask uint32
	stencilFail Enum
	stencilZFl  Enum
	stencilPass Enum

	blend           bool
	alphaToCoverage bool
	blendSrc        Enum
	blendDst        Enum
	blendOp         Enum
	blendSrcAlpha   Enum
	blendDstAlpha   Enum
	blendAlphaOp    Enum

	depthBias      float32
	depthBiasSlope float32
}

func (d *Device) newPipelineState(cfg gfx.PipelineStateConfig) (*PipelineState, error) {
	ps := &PipelineState{device: d}
	if err := ps.initialise(cfg); err != nil {
		return nil, err
	}
	return ps, nil
}

func (ps *PipelineState) initialise(cfg gfx.PipelineStateConfig) error {
	d := ps.device

	shader, ok := cfg.Shader.(*Shader)
	if !ok || shader.device != d {
		return fmt.Errorf("%w: shader does not belong to this device", gfx.ErrResourceInitialisation)
	}
	ps.shader = shader

	if cfg.Layout != nil {
		layout, ok := cfg.Layout.(*PipelineLayout)
		if !ok || layout.device != d {
			return fmt.Errorf("%w: pipeline layout does not belong to this device", gfx.ErrResourceInitialisation)
		}
		ps.layout = layout
	}

	minmax := cfg.Blend.Op == gfx.BlendOpMin || cfg.Blend.Op == gfx.BlendOpMax ||
		cfg.Blend.AlphaOp == gfx.BlendOpMin || cfg.Blend.AlphaOp == gfx.BlendOpMax
	if minmax && !d.features.Has(gfx.FeatureBlendMinMax) {
		return fmt.Errorf("%w: min/max blend equation without blend minmax support", gfx.ErrResourceInitialisation)
	}

	switch cfg.Rasterizer.CullMode {
	case gfx.CullFront:
		ps.cullMode = FRONT
	case gfx.CullBack:
		ps.cullMode = BACK
	default:
		ps.cullNone = true
	}
	ps.frontFace = CW
	if cfg.Rasterizer.FrontCCW {
		ps.frontFace = CCW
	}
	ps.depthBias = cfg.Rasterizer.DepthBias
	ps.depthBiasSlope = cfg.Rasterizer.DepthBiasSlope

	ps.depthTest = cfg.DepthStencil.DepthTest
	ps.depthWrite = cfg.DepthStencil.DepthWrite
	ps.depthFunc = glComparison(cfg.DepthStencil.DepthFunc)

	ps.stencilTest = cfg.DepthStencil.StencilTest
	ps.stencilFunc = glComparison(cfg.DepthStencil.StencilFunc)
	ps.stencilRef = int(cfg.DepthStencil.StencilRef)
	ps.stencilMask = cfg.DepthStencil.StencilMask
	ps.stencilFail = glStencilOp(cfg.DepthStencil.FailOp)
	ps.stencilZFl = glStencilOp(cfg.DepthStencil.ZFailOp)
	ps.stencilPass = glStencilOp(cfg.DepthStencil.PassOp)

	ps.blend = cfg.Blend.Blend
	ps.alphaToCoverage = cfg.Blend.AlphaToCoverage
	ps.blendSrc = glBlendFactor(cfg.Blend.SrcFactor)
	ps.blendDst = glBlendFactor(cfg.Blend.DstFactor)
	ps.blendOp = glBlendOp(cfg.Blend.Op)
	ps.blendSrcAlpha = glBlendFactor(cfg.Blend.SrcAlphaFactor)
	ps.blendDstAlpha = glBlendFactor(cfg.Blend.DstAlphaFactor)
	ps.blendAlphaOp = glBlendOp(cfg.Blend.AlphaOp)
	return nil
}

// bind replays the resolved state onto the native context. Command
// buffers record it and the queue invokes it on submission.
func (ps *PipelineState) bind() {
	d := ps.device
	ctx := d.ctx

	d.cache.useProgram(ctx, ps.shader.program)

	if ps.cullNone {
		ctx.Disable(CULL_FACE)
	} else {
		ctx.Enable(CULL_FACE)
		ctx.CullFace(ps.cullMode)
	}
	ctx.FrontFace(ps.frontFace)

	if ps.depthBias != 0 || ps.depthBiasSlope != 0 {
		ctx.Enable(POLYGON_OFFSET_FILL)
		ctx.PolygonOffset(ps.depthBiasSlope, ps.depthBias)
	} else {
		ctx.Disable(POLYGON_OFFSET_FILL)
	}

	if ps.depthTest {
		ctx.Enable(DEPTH_TEST)
		ctx.DepthFunc(ps.depthFunc)
	} else {
		ctx.Disable(DEPTH_TEST)
	}
	ctx.DepthMask(ps.depthWrite)

	if ps.stencilTest {
		ctx.Enable(STENCIL_TEST)
		ctx.StencilFuncSeparate(FRONT, ps.stencilFunc, ps.stencilRef, ps.stencilMask)
		ctx.StencilOpSeparate(FRONT, ps.stencilFail, ps.stencilZFl, ps.stencilPass)
		ctx.StencilFuncSeparate(BACK, ps.stencilFunc, ps.stencilRef, ps.stencilMask)
		ctx.StencilOpSeparate(BACK, ps.stencilFail, ps.stencilZFl, ps.stencilPass)
	} else {
		ctx.Disable(STENCIL_TEST)
	}

	if ps.alphaToCoverage {
		ctx.Enable(SAMPLE_ALPHA_TO_COVERAGE)
	} else {
		ctx.Disable(SAMPLE_ALPHA_TO_COVERAGE)
	}
	if ps.blend {
		ctx.Enable(BLEND)
		ctx.BlendEquationSeparate(ps.blendOp, ps.blendAlphaOp)
		ctx.BlendFuncSeparate(ps.blendSrc, ps.blendDst, ps.blendSrcAlpha, ps.blendDstAlpha)
	} else {
		ctx.Disable(BLEND)
	}
}

// Destroy implements gfx.PipelineState. The shader outlives the
// pipeline; it is owned by its creator.
func (ps *PipelineState) Destroy() {
	ps.shader = nil
	ps.layout = nil
}
