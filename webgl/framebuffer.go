// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

import (
	"fmt"

	"github.com/devblok/gfx"
)

// Framebuffer implements gfx.Framebuffer. A nil handle selects the
// surface default framebuffer; offscreen framebuffers own a native
// object with texture attachments.
type Framebuffer struct {
	device *Device
	handle Handle

	offscreen bool
}

func (d *Device) newFramebuffer(cfg gfx.FramebufferConfig) (*Framebuffer, error) {
	fb := &Framebuffer{device: d}
	if err := fb.initialise(cfg); err != nil {
		fb.Destroy()
		return nil, err
	}
	return fb, nil
}

func (fb *Framebuffer) initialise(cfg gfx.FramebufferConfig) error {
	if len(cfg.ColorTextures) == 0 && cfg.DepthStencilTexture == nil {
		// Default framebuffer of the surface.
		return nil
	}
	d := fb.device

	if len(cfg.ColorTextures) > 1 && !d.features.Has(gfx.FeatureMultipleRenderTargets) {
		return fmt.Errorf("%w: %d color attachments without multiple render target support",
			gfx.ErrResourceInitialisation, len(cfg.ColorTextures))
	}

	fb.offscreen = true
	fb.handle = d.ctx.CreateFramebuffer()
	if fb.handle == nil {
		return fmt.Errorf("%w: gl.createFramebuffer() returned nothing", gfx.ErrResourceInitialisation)
	}

	prev := d.cache.framebuffer
	d.cache.bindFramebuffer(d.ctx, fb.handle)
	defer d.cache.bindFramebuffer(d.ctx, prev)

	for i, color := range cfg.ColorTextures {
		tex, err := fb.attachment(color)
		if err != nil {
			return err
		}
		d.ctx.FramebufferTexture2D(FRAMEBUFFER, COLOR_ATTACHMENT0+Enum(i), TEXTURE_2D, tex.handle, 0)
	}

	if cfg.DepthStencilTexture != nil {
		tex, err := fb.attachment(cfg.DepthStencilTexture)
		if err != nil {
			return err
		}
		attachment := DEPTH_ATTACHMENT
		if tex.format.HasStencil() {
			attachment = DEPTH_STENCIL_ATTACHMENT
		}
		d.ctx.FramebufferTexture2D(FRAMEBUFFER, attachment, TEXTURE_2D, tex.handle, 0)
	}

	if status := d.ctx.CheckFramebufferStatus(FRAMEBUFFER); status != FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("%w: gl.checkFramebufferStatus(): 0x%04x", gfx.ErrResourceInitialisation, uint32(status))
	}
	return nil
}

func (fb *Framebuffer) attachment(t gfx.Texture) (*Texture, error) {
	tex, ok := t.(*Texture)
	if !ok || tex.device != fb.device {
		return nil, fmt.Errorf("%w: attachment texture does not belong to this device", gfx.ErrResourceInitialisation)
	}
	if tex.typ != gfx.TextureType2D {
		return nil, fmt.Errorf("%w: only 2D textures can be framebuffer attachments", gfx.ErrResourceInitialisation)
	}
	return tex, nil
}

// IsOffscreen implements gfx.Framebuffer.
func (fb *Framebuffer) IsOffscreen() bool { return fb.offscreen }

// Destroy implements gfx.Framebuffer. The default framebuffer carries
// no native object, so destroying it is a no-op.
func (fb *Framebuffer) Destroy() {
	if fb.handle != nil {
		fb.device.cache.forgetFramebuffer(fb.handle)
		fb.device.ctx.DeleteFramebuffer(fb.handle)
		fb.handle = nil
	}
}
