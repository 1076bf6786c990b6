// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

import (
	"fmt"
	"image"
	"image/draw"
	"strings"

	"github.com/devblok/gfx"
	log "github.com/sirupsen/logrus"
)

// Device implements gfx.Device on a WebGL 1 context. One device owns
// exactly one native context; everything else in this package is
// created through the device's factory methods and carries a pointer
// back to it.
type Device struct {
	ctx      Context
	platform Platform

	width        uint32
	height       uint32
	nativeWidth  uint32
	nativeHeight uint32
	pixelRatio   float32

	renderer string
	vendor   string
	version  string
	limits   gfx.DeviceLimits

	colorFormat        gfx.Format
	depthStencilFormat gfx.Format

	caps     capTable
	features gfx.FeatureSet

	deferShaderDestroy    bool
	noCompressedSubUpload bool

	bindingMappings gfx.BindingMappingInfo

	cache *stateCache

	queue       *Queue
	nullTex2D   *Texture
	nullTexCube *Texture

	// shaders queued for deferred native destruction, flushed at
	// the next Acquire.
	retiredShaders []Handle

	memory MemoryStatus

	stats gfx.FrameStats

	initialised bool
}

// NewDevice returns an uninitialised device for the given platform
// identity. The native context is acquired during Initialise through
// the linked-in platform binding.
func NewDevice(platform Platform) *Device {
	return &Device{platform: platform, pixelRatio: 1}
}

// NewDeviceWithContext returns an uninitialised device bound to an
// already-acquired native context. Embedders with their own context
// plumbing use this; so do tests.
func NewDeviceWithContext(platform Platform, ctx Context) *Device {
	d := NewDevice(platform)
	d.ctx = ctx
	return d
}

// Initialise implements gfx.Device. The steps run strictly in order,
// each one a precondition for the next; on any failure the device is
// left safe to Destroy and the error is returned to the caller.
func (d *Device) Initialise(cfg gfx.DeviceConfig) error {
	d.pixelRatio = cfg.PixelRatio
	if d.pixelRatio <= 0 {
		d.pixelRatio = 1
	}
	d.width = cfg.Width
	d.height = cfg.Height
	d.nativeWidth = cfg.NativeWidth
	d.nativeHeight = cfg.NativeHeight
	if d.nativeWidth == 0 {
		d.nativeWidth = uint32(float32(d.width) * d.pixelRatio)
	}
	if d.nativeHeight == 0 {
		d.nativeHeight = uint32(float32(d.height) * d.pixelRatio)
	}
	d.bindingMappings = cfg.BindingMappings

	/* Context acquisition */
	if d.ctx == nil {
		if newContext == nil {
			return fmt.Errorf("%w: no platform binding linked in", gfx.ErrContextCreation)
		}
		ctx, err := newContext(cfg, ContextAttributes{
			Alpha:              cfg.Alpha,
			Depth:              true,
			Stencil:            true,
			Antialias:          cfg.Antialias,
			PremultipliedAlpha: cfg.PremultipliedAlpha,
		})
		if err != nil {
			return fmt.Errorf("%w: %v", gfx.ErrContextCreation, err)
		}
		d.ctx = ctx
	}

	/* Identity and limits */
	d.queryIdentity()

	/* Capability probing and quirks */
	exts := d.ctx.SupportedExtensions()
	log.Debugf("webgl: context reports %d extensions: %s", len(exts), strings.Join(exts, " "))
	d.caps = resolveCapabilities(d.ctx)
	overrides := applyQuirks(d.platform, &d.caps)
	d.deferShaderDestroy = overrides.deferShaderDestroy
	d.noCompressedSubUpload = overrides.noCompressedSubUpload
	if overrides.depthBits != 0 {
		d.limits.DepthBits = overrides.depthBits
	}

	/* Surface formats */
	d.colorFormat = gfx.FormatRGBA8
	d.depthStencilFormat = gfx.DepthStencilFormat(d.limits.DepthBits, d.limits.StencilBits)

	/* Feature-flag vector */
	d.buildFeatures()

	/* Baseline render state */
	d.cache = newStateCache(d.limits.MaxTextureUnits)
	d.applyBaselineState()

	/* Default queue */
	queue, err := d.newQueue(gfx.QueueConfig{Name: "default"})
	if err != nil {
		return err
	}
	d.queue = queue

	/* Null textures */
	if d.nullTex2D, err = d.newNullTexture(gfx.TextureType2D); err != nil {
		return fmt.Errorf("webgl: null 2D texture: %w", err)
	}
	if d.nullTexCube, err = d.newNullTexture(gfx.TextureTypeCube); err != nil {
		return fmt.Errorf("webgl: null cube texture: %w", err)
	}

	d.initialised = true
	log.WithFields(log.Fields{
		"renderer": d.renderer,
		"vendor":   d.vendor,
		"version":  d.version,
	}).Info("webgl: device initialised")
	return nil
}

func (d *Device) queryIdentity() {
	// The unmasked queries name the actual GPU instead of the
	// browser's masked strings; resolve just that extension ahead
	// of full probing.
	if debugInfo := lookupExtension(d.ctx, extensionNames[capDebugRendererInfo]); debugInfo != nil {
		d.renderer = d.ctx.GetParameterstr(UNMASKED_RENDERER_WEBGL)
		d.vendor = d.ctx.GetParameterstr(UNMASKED_VENDOR_WEBGL)
	}
	if d.renderer == "" {
		d.renderer = d.ctx.GetParameterstr(RENDERER)
	}
	if d.vendor == "" {
		d.vendor = d.ctx.GetParameterstr(VENDOR)
	}
	d.version = d.ctx.GetParameterstr(VERSION)

	d.limits = gfx.DeviceLimits{
		MaxVertexAttributes:       d.ctx.GetParameteri(MAX_VERTEX_ATTRIBS),
		MaxVertexUniformVectors:   d.ctx.GetParameteri(MAX_VERTEX_UNIFORM_VECTORS),
		MaxFragmentUniformVectors: d.ctx.GetParameteri(MAX_FRAGMENT_UNIFORM_VECTORS),
		MaxTextureUnits:           d.ctx.GetParameteri(MAX_COMBINED_TEXTURE_IMAGE_UNITS),
		MaxVertexTextureUnits:     d.ctx.GetParameteri(MAX_VERTEX_TEXTURE_IMAGE_UNITS),
		MaxTextureSize:            d.ctx.GetParameteri(MAX_TEXTURE_SIZE),
		MaxCubeMapTextureSize:     d.ctx.GetParameteri(MAX_CUBE_MAP_TEXTURE_SIZE),
		DepthBits:                 d.ctx.GetParameteri(DEPTH_BITS),
		StencilBits:               d.ctx.GetParameteri(STENCIL_BITS),
	}
}

// buildFeatures translates the resolved capability table into the
// immutable feature-flag vector. A linear-filtering flag is only set
// when its base format flag is set too; FormatRGB8 is the baseline
// guarantee that holds on every context.
func (d *Device) buildFeatures() {
	set := func(f gfx.Feature, c capability) {
		d.features.Set(f, d.caps.has(c))
	}
	d.features.Set(gfx.FeatureFormatRGB8, true)

	set(gfx.FeatureColorFloat, capColorBufferFloat)
	set(gfx.FeatureColorHalfFloat, capColorBufferHalfFloat)
	set(gfx.FeatureTextureFloat, capTextureFloat)
	set(gfx.FeatureTextureHalfFloat, capTextureHalfFloat)
	d.features.Set(gfx.FeatureTextureFloatLinear,
		d.caps.has(capTextureFloat) && d.caps.has(capTextureFloatLinear))
	d.features.Set(gfx.FeatureTextureHalfFloatLinear,
		d.caps.has(capTextureHalfFloat) && d.caps.has(capTextureHalfFloatLinear))

	set(gfx.FeatureFormatETC1, capCompressedETC1)
	set(gfx.FeatureFormatETC2, capCompressedETC)
	d.features.Set(gfx.FeatureFormatDXT,
		d.caps.has(capCompressedS3TC) || d.caps.has(capCompressedS3TCSRGB))
	set(gfx.FeatureFormatPVRTC, capCompressedPVRTC)
	set(gfx.FeatureFormatASTC, capCompressedASTC)
	set(gfx.FeatureFormatSRGB, capSRGB)
	set(gfx.FeatureFormatD16, capDepthTexture)
	set(gfx.FeatureFormatD24S8, capDepthTexture)
	set(gfx.FeatureDepthTexture, capDepthTexture)

	set(gfx.FeatureElementIndexUint, capElementIndexUint)
	set(gfx.FeatureInstancedArrays, capInstancedArrays)
	set(gfx.FeatureMultipleRenderTargets, capDrawBuffers)
	set(gfx.FeatureBlendMinMax, capBlendMinMax)
	set(gfx.FeatureVertexArrayObject, capVertexArrayObject)
	set(gfx.FeatureAnisotropicFilter, capAnisotropicFilter)
}

// applyBaselineState establishes the known-good default for every
// stateful toggle, so later relative state changes are well defined.
// Upper layers assume exactly this baseline for incremental diffing.
func (d *Device) applyBaselineState() {
	ctx := d.ctx

	ctx.PixelStorei(PACK_ALIGNMENT, 1)
	ctx.PixelStorei(UNPACK_ALIGNMENT, 1)
	ctx.PixelStorei(UNPACK_FLIP_Y_WEBGL, 0)

	d.cache.bindFramebuffer(ctx, nil)

	ctx.Enable(CULL_FACE)
	ctx.CullFace(BACK)
	ctx.FrontFace(CCW)

	ctx.Disable(POLYGON_OFFSET_FILL)
	ctx.PolygonOffset(0, 0)

	ctx.Enable(DEPTH_TEST)
	ctx.DepthMask(true)
	ctx.DepthFunc(LESS)
	ctx.DepthRange(0, 1)

	ctx.Disable(STENCIL_TEST)
	ctx.StencilFuncSeparate(FRONT, ALWAYS, 1, 0xffff)
	ctx.StencilOpSeparate(FRONT, KEEP, KEEP, KEEP)
	ctx.StencilMaskSeparate(FRONT, 0xffff)
	ctx.StencilFuncSeparate(BACK, ALWAYS, 1, 0xffff)
	ctx.StencilOpSeparate(BACK, KEEP, KEEP, KEEP)
	ctx.StencilMaskSeparate(BACK, 0xffff)

	ctx.Disable(SAMPLE_ALPHA_TO_COVERAGE)
	ctx.Disable(BLEND)
	ctx.BlendEquationSeparate(FUNC_ADD, FUNC_ADD)
	ctx.BlendFuncSeparate(ONE, ZERO, ONE, ZERO)
	ctx.BlendColor(0, 0, 0, 0)
	ctx.ColorMask(true, true, true, true)
}

func (d *Device) newNullTexture(typ gfx.TextureType) (*Texture, error) {
	tex, err := d.newTexture(gfx.TextureConfig{
		Type:      typ,
		Usage:     gfx.TextureUsageSampled,
		Format:    d.colorFormat,
		Width:     2,
		Height:    2,
		MipLevels: 2,
	})
	if err != nil {
		return nil, err
	}
	layers := typ.LayerCount()
	for level := uint32(0); level < tex.MipLevels(); level++ {
		extent := uint32(2) >> level
		if extent == 0 {
			extent = 1
		}
		zero := make([]byte, d.colorFormat.Size(extent, extent))
		buffers := make([][]byte, layers)
		regions := make([]gfx.BufferTextureCopy, layers)
		for layer := uint32(0); layer < layers; layer++ {
			buffers[layer] = zero
			regions[layer] = gfx.BufferTextureCopy{
				TexExtent: gfx.Extent{Width: extent, Height: extent, Depth: 1},
				TexSubres: gfx.TextureSubres{MipLevel: level, BaseLayer: layer, LayerCount: 1},
			}
		}
		if err := d.CopyBuffersToTexture(buffers, tex, regions); err != nil {
			tex.Destroy()
			return nil, err
		}
	}
	return tex, nil
}

// Destroy implements gfx.Device. Safe to call after a failed
// Initialise; the native context handle is released exactly once.
func (d *Device) Destroy() {
	if d.nullTex2D != nil {
		d.nullTex2D.Destroy()
		d.nullTex2D = nil
	}
	if d.nullTexCube != nil {
		d.nullTexCube.Destroy()
		d.nullTexCube = nil
	}
	if d.queue != nil {
		d.queue.Destroy()
		d.queue = nil
	}
	d.flushRetiredShaders()
	if d.ctx != nil {
		if ext := d.caps.handle(capLoseContext); ext != nil {
			d.ctx.LoseContext(ext)
		}
	}
	d.initialised = false
	d.ctx = nil
}

// Resize implements gfx.Device. Purely a state update; existing
// resources are reallocated by their owners on next use.
func (d *Device) Resize(width, height uint32) {
	if d.width == width && d.height == height {
		return
	}
	d.width = width
	d.height = height
	d.nativeWidth = uint32(float32(width) * d.pixelRatio)
	d.nativeHeight = uint32(float32(height) * d.pixelRatio)
}

// Acquire implements gfx.Device.
func (d *Device) Acquire() {
	d.flushRetiredShaders()
	if d.queue != nil {
		d.queue.releaseAllocations()
	}
}

// Present implements gfx.Device.
func (d *Device) Present() {
	if d.queue == nil {
		d.stats = gfx.FrameStats{}
		return
	}
	d.stats = d.queue.Stats()
	d.queue.Clear()
}

// retireShader queues or performs native shader destruction,
// depending on the platform workaround negotiated at initialisation.
func (d *Device) retireShader(prog Handle) {
	if prog == nil {
		return
	}
	if d.cache != nil {
		d.cache.forgetProgram(prog)
	}
	if d.deferShaderDestroy {
		d.retiredShaders = append(d.retiredShaders, prog)
		return
	}
	d.ctx.DeleteProgram(prog)
}

func (d *Device) flushRetiredShaders() {
	if d.ctx == nil {
		d.retiredShaders = nil
		return
	}
	for _, prog := range d.retiredShaders {
		d.ctx.DeleteProgram(prog)
	}
	d.retiredShaders = nil
}

// HasFeature implements gfx.Device.
func (d *Device) HasFeature(f gfx.Feature) bool { return d.features.Has(f) }

// Queue implements gfx.Device.
func (d *Device) Queue() gfx.Queue { return d.queue }

// Renderer implements gfx.Device.
func (d *Device) Renderer() string { return d.renderer }

// Vendor implements gfx.Device.
func (d *Device) Vendor() string { return d.vendor }

// Version implements gfx.Device.
func (d *Device) Version() string { return d.version }

// Limits implements gfx.Device.
func (d *Device) Limits() gfx.DeviceLimits { return d.limits }

// ColorFormat implements gfx.Device.
func (d *Device) ColorFormat() gfx.Format { return d.colorFormat }

// DepthStencilFormat implements gfx.Device.
func (d *Device) DepthStencilFormat() gfx.Format { return d.depthStencilFormat }

// Width implements gfx.Device.
func (d *Device) Width() uint32 { return d.width }

// Height implements gfx.Device.
func (d *Device) Height() uint32 { return d.height }

// NativeWidth implements gfx.Device.
func (d *Device) NativeWidth() uint32 { return d.nativeWidth }

// NativeHeight implements gfx.Device.
func (d *Device) NativeHeight() uint32 { return d.nativeHeight }

// Stats implements gfx.Device.
func (d *Device) Stats() gfx.FrameStats { return d.stats }

// MemoryStatus tallies the bytes the device has handed out to live
// buffer and texture resources.
type MemoryStatus struct {
	BufferBytes  uint64
	TextureBytes uint64
}

// Memory returns the current resource allocation tallies.
func (d *Device) Memory() MemoryStatus { return d.memory }

// NullTexture2D returns the 2x2 fallback texture bound in place of a
// missing 2D texture.
func (d *Device) NullTexture2D() gfx.Texture { return d.nullTex2D }

// NullTextureCube returns the 2x2 fallback cube texture.
func (d *Device) NullTextureCube() gfx.Texture { return d.nullTexCube }

// CopyBuffersToTexture implements gfx.Device.
func (d *Device) CopyBuffersToTexture(buffers [][]byte, dst gfx.Texture, regions []gfx.BufferTextureCopy) error {
	tex, ok := dst.(*Texture)
	if !ok || tex.device != d {
		return fmt.Errorf("%w: texture does not belong to this device", gfx.ErrInvalidConfig)
	}
	layered := tex.Type().LayerCount() > 1
	if layered && len(buffers) != len(regions) {
		return fmt.Errorf("%w: layered upload needs one buffer per region, got %d buffers for %d regions",
			gfx.ErrInvalidConfig, len(buffers), len(regions))
	}
	if !layered && len(buffers) != 1 && len(buffers) != len(regions) {
		return fmt.Errorf("%w: got %d buffers for %d regions", gfx.ErrInvalidConfig, len(buffers), len(regions))
	}
	for i, region := range regions {
		buf := buffers[0]
		if len(buffers) > 1 {
			buf = buffers[i]
		}
		if err := tex.upload(buf, region); err != nil {
			return err
		}
	}
	return nil
}

// CopyTexImagesToTexture implements gfx.Device.
func (d *Device) CopyTexImagesToTexture(images []image.Image, dst gfx.Texture, regions []gfx.BufferTextureCopy) error {
	buffers := make([][]byte, len(images))
	for i, img := range images {
		buffers[i] = rgbaPixels(img)
	}
	return d.CopyBuffersToTexture(buffers, dst, regions)
}

// CopyFramebufferToBuffer implements gfx.Device. The framebuffer
// binding active before the call is restored through the state cache
// once the read completes.
func (d *Device) CopyFramebufferToBuffer(src gfx.Framebuffer, dst []byte, regions []gfx.BufferTextureCopy) error {
	fb, ok := src.(*Framebuffer)
	if !ok || fb.device != d {
		return fmt.Errorf("%w: framebuffer does not belong to this device", gfx.ErrInvalidConfig)
	}
	prev := d.cache.framebuffer
	d.cache.bindFramebuffer(d.ctx, fb.handle)
	for _, region := range regions {
		size := d.colorFormat.Size(region.TexExtent.Width, region.TexExtent.Height)
		off := region.BuffOffset
		if int(off+size) > len(dst) {
			d.cache.bindFramebuffer(d.ctx, prev)
			return fmt.Errorf("%w: region exceeds destination buffer", gfx.ErrInvalidConfig)
		}
		d.ctx.ReadPixels(
			int(region.TexOffset.X), int(region.TexOffset.Y),
			int(region.TexExtent.Width), int(region.TexExtent.Height),
			RGBA, UNSIGNED_BYTE, dst[off:off+size])
	}
	d.cache.bindFramebuffer(d.ctx, prev)
	return nil
}

// rgbaPixels redraws an image onto a tightly packed RGBA canvas.
func rgbaPixels(img image.Image) []byte {
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != rgba.Bounds().Dx()*4 {
		rgba = image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	}
	return rgba.Pix
}
