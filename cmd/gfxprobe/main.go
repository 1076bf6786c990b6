// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

//go:build js && wasm
// +build js,wasm

// Command gfxprobe brings a WebGL device up on the page's canvas,
// reports the negotiated capability surface and draws one frame of a
// test triangle. It is the quickest way to see what a given browser
// and runtime combination actually supports.
package main

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"syscall/js"

	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/gobuffalo/envy"
	"github.com/gobuffalo/packr"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/gfx"
	"github.com/devblok/gfx/utility/apak"
	"github.com/devblok/gfx/webgl"
)

// StaticResources holds the embedded probe shaders.
var StaticResources packr.Box

func init() {
	StaticResources = packr.NewBox("./shaders")
}

var featureNames = map[gfx.Feature]string{
	gfx.FeatureColorFloat:             "color-float",
	gfx.FeatureColorHalfFloat:         "color-half-float",
	gfx.FeatureTextureFloat:           "texture-float",
	gfx.FeatureTextureFloatLinear:     "texture-float-linear",
	gfx.FeatureTextureHalfFloat:       "texture-half-float",
	gfx.FeatureTextureHalfFloatLinear: "texture-half-float-linear",
	gfx.FeatureFormatETC1:             "format-etc1",
	gfx.FeatureFormatETC2:             "format-etc2",
	gfx.FeatureFormatDXT:              "format-dxt",
	gfx.FeatureFormatPVRTC:            "format-pvrtc",
	gfx.FeatureFormatASTC:             "format-astc",
	gfx.FeatureFormatRGB8:             "format-rgb8",
	gfx.FeatureFormatSRGB:             "format-srgb",
	gfx.FeatureFormatD16:              "format-d16",
	gfx.FeatureFormatD24S8:            "format-d24s8",
	gfx.FeatureElementIndexUint:       "element-index-uint",
	gfx.FeatureInstancedArrays:        "instanced-arrays",
	gfx.FeatureMultipleRenderTargets:  "multiple-render-targets",
	gfx.FeatureBlendMinMax:            "blend-minmax",
	gfx.FeatureDepthTexture:           "depth-texture",
	gfx.FeatureVertexArrayObject:      "vertex-array-object",
	gfx.FeatureAnisotropicFilter:      "anisotropic-filter",
}

func float32Bytes(f float32) []byte {
	bits := math.Float32bits(f)
	return []byte{byte(bits), byte(bits >> 8), byte(bits >> 16), byte(bits >> 24)}
}

func envUint(key string, fallback uint32) uint32 {
	value, err := strconv.ParseUint(envy.Get(key, ""), 10, 32)
	if err != nil {
		return fallback
	}
	return uint32(value)
}

// detectPlatform derives the quirk-table identity from the browser's
// user agent string. Coarse on purpose: only the fields the quirk
// rules inspect are filled in.
func detectPlatform() webgl.Platform {
	ua := strings.ToLower(js.Global().Get("navigator").Get("userAgent").String())

	var p webgl.Platform
	switch {
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"):
		p.OS = "ios"
	case strings.Contains(ua, "android"):
		p.OS = "android"
	case strings.Contains(ua, "mac os"):
		p.OS = "macos"
	case strings.Contains(ua, "windows"):
		p.OS = "windows"
	default:
		p.OS = "linux"
	}
	switch {
	case strings.Contains(ua, "ucbrowser"):
		p.Browser = "ucbrowser"
	case strings.Contains(ua, "firefox"):
		p.Browser = "firefox"
	case strings.Contains(ua, "chrome"):
		p.Browser = "chrome"
	case strings.Contains(ua, "safari"):
		p.Browser = "safari"
	}
	if strings.Contains(ua, "minigame") || !js.Global().Get("wx").IsUndefined() {
		p.AppRuntime = "wechatgame"
	}
	return p
}

func probeTriangle(device gfx.Device) error {
	vert, err := StaticResources.FindString("basic.vert")
	if err != nil {
		return err
	}
	frag, err := StaticResources.FindString("basic.frag")
	if err != nil {
		return err
	}
	shader, err := device.CreateShader(gfx.ShaderConfig{
		Name: "probe",
		Stages: []gfx.ShaderStage{
			{Type: gfx.VertexStage, Source: vert},
			{Type: gfx.FragmentStage, Source: frag},
		},
	})
	if err != nil {
		return err
	}
	defer shader.Destroy()

	pipeline, err := device.CreatePipelineState(gfx.PipelineStateConfig{
		Shader:     shader,
		Rasterizer: gfx.RasterizerState{CullMode: gfx.CullBack, FrontCCW: true},
	})
	if err != nil {
		return err
	}
	defer pipeline.Destroy()

	vertices := []glm.Vec3{
		{0, 0.5, 0},
		{-0.5, -0.5, 0},
		{0.5, -0.5, 0},
	}
	data := make([]byte, 0, len(vertices)*12)
	for _, v := range vertices {
		for _, f := range v {
			data = append(data, float32Bytes(f)...)
		}
	}
	vb, err := device.CreateBuffer(gfx.BufferConfig{
		Usage:  gfx.BufferUsageVertex,
		Size:   uint32(len(data)),
		Stride: 12,
	})
	if err != nil {
		return err
	}
	defer vb.Destroy()
	if err := vb.Update(data, 0); err != nil {
		return err
	}

	ia, err := device.CreateInputAssembler(gfx.InputAssemblerConfig{
		Attributes:    []gfx.Attribute{{Name: "position", Format: gfx.FormatRGB32F}},
		VertexBuffers: []gfx.Buffer{vb},
	})
	if err != nil {
		return err
	}
	defer ia.Destroy()

	cb, err := device.CreateCommandBuffer(gfx.CommandBufferConfig{Type: gfx.CommandBufferPrimary})
	if err != nil {
		return err
	}
	defer cb.Destroy()

	device.Acquire()
	cb.Begin()
	cb.SetViewport(0, 0, int(device.NativeWidth()), int(device.NativeHeight()))
	cb.BindPipelineState(pipeline)
	cb.Draw(ia, 0)
	cb.End()
	if err := device.Queue().Submit(cb); err != nil {
		return err
	}
	device.Present()

	log.WithFields(log.Fields{
		"drawCalls": device.Stats().DrawCalls,
		"triangles": device.Stats().Triangles,
	}).Info("probe frame submitted")
	return nil
}

// probeTexture round-trips a generated checkerboard through the asset
// pack format and uploads it, exercising the same unpack path shipped
// assets take on this runtime.
func probeTexture(device gfx.Device) error {
	const side = 4
	pixels := make([]byte, side*side*4)
	for i := 0; i < side*side; i++ {
		if (i/side+i%side)%2 == 0 {
			pixels[i*4] = 0xff
		} else {
			pixels[i*4+1] = 0xff
		}
		pixels[i*4+3] = 0xff
	}

	builder := apak.NewBuilder(apak.Header{Tool: "gfxprobe", Version: 1})
	err := builder.AddTexture("checker", apak.TextureInfo{
		Width:     side,
		Height:    side,
		MipLevels: 1,
		Format:    gfx.FormatRGBA8,
	}, pixels)
	if err != nil {
		return err
	}
	var packed bytes.Buffer
	if _, err := builder.WriteTo(&packed); err != nil {
		return err
	}

	pack, err := apak.Open(bytes.NewReader(packed.Bytes()))
	if err != nil {
		return err
	}
	info, blob, err := pack.Texture("checker")
	if err != nil {
		return err
	}

	tex, err := device.CreateTexture(gfx.TextureConfig{
		Type:      gfx.TextureType2D,
		Usage:     gfx.TextureUsageSampled,
		Format:    info.Format,
		Width:     info.Width,
		Height:    info.Height,
		MipLevels: info.MipLevels,
	})
	if err != nil {
		return err
	}
	defer tex.Destroy()

	regions := []gfx.BufferTextureCopy{{
		TexExtent: gfx.Extent{Width: info.Width, Height: info.Height, Depth: 1},
	}}
	if err := device.CopyBuffersToTexture([][]byte{blob}, tex, regions); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"asset":  "checker",
		"packed": packed.Len(),
		"raw":    len(blob),
	}).Info("asset pack upload succeeded")
	return nil
}

func main() {
	// A .env next to the served wasm binary can override the probe
	// defaults; missing files are fine.
	godotenv.Load()

	canvas := js.Global().Get("document").Call("getElementById", envy.Get("GFX_CANVAS_ID", "canvas"))

	device := webgl.NewDevice(detectPlatform())
	cfg := gfx.DeviceConfig{
		Surface:    canvas,
		Alpha:      envy.Get("GFX_ALPHA", "") == "1",
		Antialias:  envy.Get("GFX_ANTIALIAS", "1") == "1",
		PixelRatio: float32(js.Global().Get("devicePixelRatio").Float()),
		Width:      envUint("GFX_WIDTH", 800),
		Height:     envUint("GFX_HEIGHT", 600),
	}
	if err := device.Initialise(cfg); err != nil {
		log.WithError(err).Fatal("device initialisation failed")
	}
	defer device.Destroy()

	log.WithFields(log.Fields{
		"renderer":     device.Renderer(),
		"vendor":       device.Vendor(),
		"version":      device.Version(),
		"colorFormat":  int(device.ColorFormat()),
		"depthStencil": int(device.DepthStencilFormat()),
	}).Info("device ready")

	for feature, name := range featureNames {
		log.WithField("supported", device.HasFeature(feature)).Info(name)
	}

	if err := probeTriangle(device); err != nil {
		log.WithError(err).Error("probe draw failed")
	}
	if err := probeTexture(device); err != nil {
		log.WithError(err).Error("probe texture upload failed")
	}

	// Keep the wasm instance alive for inspection from the console.
	select {}
}
