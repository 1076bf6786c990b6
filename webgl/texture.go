// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

import (
	"fmt"

	"github.com/devblok/gfx"
)

// Texture implements gfx.Texture.
type Texture struct {
	device *Device
	handle Handle

	typ       gfx.TextureType
	usage     gfx.TextureUsage
	format    gfx.Format
	width     uint32
	height    uint32
	mipLevels uint32

	glTarget Enum
}

func (d *Device) newTexture(cfg gfx.TextureConfig) (*Texture, error) {
	t := &Texture{device: d}
	if err := t.initialise(cfg); err != nil {
		t.Destroy()
		return nil, err
	}
	d.memory.TextureBytes += t.byteSize()
	return t, nil
}

// byteSize sums the storage of every level and layer.
func (t *Texture) byteSize() uint64 {
	var total uint64
	for level := uint32(0); level < t.mipLevels; level++ {
		w, h := mipExtent(t.width, level), mipExtent(t.height, level)
		total += uint64(t.format.Size(w, h))
	}
	return total * uint64(t.typ.LayerCount())
}

func (t *Texture) initialise(cfg gfx.TextureConfig) error {
	if cfg.Width == 0 || cfg.Height == 0 {
		return fmt.Errorf("%w: zero-extent texture", gfx.ErrResourceInitialisation)
	}
	d := t.device
	if err := d.checkTextureFormat(cfg.Format); err != nil {
		return err
	}
	t.typ = cfg.Type
	t.usage = cfg.Usage
	t.format = cfg.Format
	t.width = cfg.Width
	t.height = cfg.Height
	t.mipLevels = cfg.MipLevels
	if t.mipLevels == 0 {
		t.mipLevels = 1
	}
	t.glTarget = TEXTURE_2D
	if cfg.Type == gfx.TextureTypeCube {
		t.glTarget = TEXTURE_CUBE_MAP
	}

	t.handle = d.ctx.CreateTexture()
	if t.handle == nil {
		return fmt.Errorf("%w: gl.createTexture() returned nothing", gfx.ErrResourceInitialisation)
	}
	d.cache.bindTexture(d.ctx, 0, t.glTarget, t.handle)

	minFilter := glMinFilter(gfx.FilterLinear, gfx.FilterLinear, t.mipLevels > 1)
	d.ctx.TexParameteri(t.glTarget, TEXTURE_MIN_FILTER, int(minFilter))
	d.ctx.TexParameteri(t.glTarget, TEXTURE_MAG_FILTER, int(LINEAR))
	d.ctx.TexParameteri(t.glTarget, TEXTURE_WRAP_S, int(CLAMP_TO_EDGE))
	d.ctx.TexParameteri(t.glTarget, TEXTURE_WRAP_T, int(CLAMP_TO_EDGE))

	// Compressed storage is defined by the first upload; only
	// uncompressed levels are allocated up front.
	if !t.format.IsCompressed() {
		triple := glTriple(t.format)
		for level := uint32(0); level < t.mipLevels; level++ {
			w, h := mipExtent(t.width, level), mipExtent(t.height, level)
			for _, face := range t.faces() {
				d.ctx.TexImage2D(face, int(level), triple.internal, int(w), int(h), triple.format, triple.typ, nil)
			}
		}
	}
	return nil
}

// checkTextureFormat rejects formats the negotiated capability
// surface cannot back.
func (d *Device) checkTextureFormat(f gfx.Format) error {
	var need gfx.Feature
	switch f {
	case gfx.FormatETC1RGB8:
		need = gfx.FeatureFormatETC1
	case gfx.FormatETC2RGB8, gfx.FormatETC2RGBA8:
		need = gfx.FeatureFormatETC2
	case gfx.FormatDXT1, gfx.FormatDXT3, gfx.FormatDXT5:
		need = gfx.FeatureFormatDXT
	case gfx.FormatPVRTC4BPPRGBA:
		need = gfx.FeatureFormatPVRTC
	case gfx.FormatASTC4x4:
		need = gfx.FeatureFormatASTC
	case gfx.FormatSRGB8A8:
		need = gfx.FeatureFormatSRGB
	case gfx.FormatR16F, gfx.FormatRGB16F, gfx.FormatRGBA16F:
		need = gfx.FeatureTextureHalfFloat
	case gfx.FormatR32F, gfx.FormatRGB32F, gfx.FormatRGBA32F:
		need = gfx.FeatureTextureFloat
	case gfx.FormatD16, gfx.FormatD16S8, gfx.FormatD24, gfx.FormatD24S8:
		need = gfx.FeatureDepthTexture
	default:
		return nil
	}
	if !d.features.Has(need) {
		return fmt.Errorf("%w: format %d is not supported on this device", gfx.ErrResourceInitialisation, f)
	}
	return nil
}

// faces lists the native upload targets, one per cube face or a
// single 2D target.
func (t *Texture) faces() []Enum {
	if t.typ != gfx.TextureTypeCube {
		return []Enum{TEXTURE_2D}
	}
	faces := make([]Enum, 6)
	for i := range faces {
		faces[i] = TEXTURE_CUBE_MAP_POSITIVE_X + Enum(i)
	}
	return faces
}

// upload applies one copy region from host memory.
func (t *Texture) upload(buf []byte, region gfx.BufferTextureCopy) error {
	if region.TexSubres.MipLevel >= t.mipLevels {
		return fmt.Errorf("%w: mip level %d out of range", gfx.ErrInvalidConfig, region.TexSubres.MipLevel)
	}
	d := t.device
	level := region.TexSubres.MipLevel
	w, h := region.TexExtent.Width, region.TexExtent.Height
	need := t.format.Size(w, h)
	if int(region.BuffOffset+need) > len(buf) {
		return fmt.Errorf("%w: region needs %d bytes at offset %d, buffer has %d",
			gfx.ErrInvalidConfig, need, region.BuffOffset, len(buf))
	}
	data := buf[region.BuffOffset : region.BuffOffset+need]

	target := TEXTURE_2D
	if t.typ == gfx.TextureTypeCube {
		target = TEXTURE_CUBE_MAP_POSITIVE_X + Enum(region.TexSubres.BaseLayer)
	}
	d.cache.bindTexture(d.ctx, 0, t.glTarget, t.handle)

	x, y := int(region.TexOffset.X), int(region.TexOffset.Y)
	if t.format.IsCompressed() {
		cf := glCompressedFormat(t.format)
		full := x == 0 && y == 0 &&
			w == mipExtent(t.width, level) && h == mipExtent(t.height, level)
		if full || d.noCompressedSubUpload {
			d.ctx.CompressedTexImage2D(target, int(level), cf, int(w), int(h), data)
		} else {
			d.ctx.CompressedTexSubImage2D(target, int(level), x, y, int(w), int(h), cf, data)
		}
		return nil
	}
	triple := glTriple(t.format)
	d.ctx.TexSubImage2D(target, int(level), x, y, int(w), int(h), triple.format, triple.typ, data)
	return nil
}

// Type implements gfx.Texture.
func (t *Texture) Type() gfx.TextureType { return t.typ }

// Format implements gfx.Texture.
func (t *Texture) Format() gfx.Format { return t.format }

// Width implements gfx.Texture.
func (t *Texture) Width() uint32 { return t.width }

// Height implements gfx.Texture.
func (t *Texture) Height() uint32 { return t.height }

// MipLevels implements gfx.Texture.
func (t *Texture) MipLevels() uint32 { return t.mipLevels }

// Destroy implements gfx.Texture.
func (t *Texture) Destroy() {
	if t.handle != nil {
		t.device.cache.forgetTexture(t.handle)
		t.device.ctx.DeleteTexture(t.handle)
		t.handle = nil
		t.device.memory.TextureBytes -= t.byteSize()
	}
}

func mipExtent(base, level uint32) uint32 {
	e := base >> level
	if e == 0 {
		return 1
	}
	return e
}
