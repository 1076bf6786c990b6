// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

import (
	"fmt"

	"github.com/devblok/gfx"
)

// RenderPass implements gfx.RenderPass. WebGL has no render pass
// objects; the pass is a validated description consumed when pipeline
// states and framebuffers are built against it.
type RenderPass struct {
	device *Device

	colorAttachments []gfx.ColorAttachment
	depthStencil     *gfx.DepthStencilAttachment
}

func (d *Device) newRenderPass(cfg gfx.RenderPassConfig) (*RenderPass, error) {
	rp := &RenderPass{device: d}
	if err := rp.initialise(cfg); err != nil {
		return nil, err
	}
	return rp, nil
}

func (rp *RenderPass) initialise(cfg gfx.RenderPassConfig) error {
	if len(cfg.ColorAttachments) == 0 {
		return fmt.Errorf("%w: render pass needs at least one color attachment", gfx.ErrResourceInitialisation)
	}
	if len(cfg.ColorAttachments) > 1 && !rp.device.features.Has(gfx.FeatureMultipleRenderTargets) {
		return fmt.Errorf("%w: %d color attachments without multiple render target support",
			gfx.ErrResourceInitialisation, len(cfg.ColorAttachments))
	}
	rp.colorAttachments = append([]gfx.ColorAttachment(nil), cfg.ColorAttachments...)
	if cfg.DepthStencil != nil {
		ds := *cfg.DepthStencil
		rp.depthStencil = &ds
	}
	return nil
}

// Destroy implements gfx.RenderPass.
func (rp *RenderPass) Destroy() {
	rp.colorAttachments = nil
	rp.depthStencil = nil
}
