// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package webgl implements the gfx device API on top of a WebGL 1
// rendering context. The device negotiates the browser's extension
// surface into the stable gfx feature-flag vector, applies
// platform-specific workarounds for drivers that misreport their
// capabilities, and acts as the factory for every other resource.
package webgl

import "github.com/devblok/gfx"

// Enum is a native WebGL enumerant.
type Enum uint32

// Handle is an opaque reference to a native context object. A nil
// handle means "no object"; for framebuffers it selects the surface
// default framebuffer.
type Handle interface{}

// The subset of WebGL enumerants the device core touches.
const (
	DEPTH_BUFFER_BIT   Enum = 0x00000100
	STENCIL_BUFFER_BIT Enum = 0x00000400
	COLOR_BUFFER_BIT   Enum = 0x00004000

	ZERO Enum = 0
	ONE  Enum = 1

	FRONT Enum = 0x0404
	BACK  Enum = 0x0405
	CW    Enum = 0x0900
	CCW   Enum = 0x0901

	CULL_FACE                Enum = 0x0B44
	BLEND                    Enum = 0x0BE2
	DEPTH_TEST               Enum = 0x0B71
	STENCIL_TEST             Enum = 0x0B90
	SCISSOR_TEST             Enum = 0x0C11
	POLYGON_OFFSET_FILL      Enum = 0x8037
	SAMPLE_ALPHA_TO_COVERAGE Enum = 0x809E

	NEVER    Enum = 0x0200
	LESS     Enum = 0x0201
	EQUAL    Enum = 0x0202
	LEQUAL   Enum = 0x0203
	GREATER  Enum = 0x0204
	NOTEQUAL Enum = 0x0205
	GEQUAL   Enum = 0x0206
	ALWAYS   Enum = 0x0207

	KEEP                  Enum = 0x1E00
	REPLACE               Enum = 0x1E01
	INCR                  Enum = 0x1E02
	DECR                  Enum = 0x1E03
	INVERT                Enum = 0x150A
	FUNC_ADD              Enum = 0x8006
	MIN_EXT               Enum = 0x8007
	MAX_EXT               Enum = 0x8008
	FUNC_SUBTRACT         Enum = 0x800A
	FUNC_REVERSE_SUBTRACT Enum = 0x800B

	SRC_ALPHA           Enum = 0x0302
	ONE_MINUS_SRC_ALPHA Enum = 0x0303
	DST_ALPHA           Enum = 0x0304
	ONE_MINUS_DST_ALPHA Enum = 0x0305

	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	STATIC_DRAW          Enum = 0x88E4
	DYNAMIC_DRAW         Enum = 0x88E8

	FRAMEBUFFER              Enum = 0x8D40
	COLOR_ATTACHMENT0        Enum = 0x8CE0
	DEPTH_ATTACHMENT         Enum = 0x8D00
	STENCIL_ATTACHMENT       Enum = 0x8D20
	DEPTH_STENCIL_ATTACHMENT Enum = 0x821A
	FRAMEBUFFER_COMPLETE     Enum = 0x8CD5

	TEXTURE0                    Enum = 0x84C0
	TEXTURE_2D                  Enum = 0x0DE1
	TEXTURE_CUBE_MAP            Enum = 0x8513
	TEXTURE_CUBE_MAP_POSITIVE_X Enum = 0x8515
	TEXTURE_MAG_FILTER          Enum = 0x2800
	TEXTURE_MIN_FILTER          Enum = 0x2801
	TEXTURE_WRAP_S              Enum = 0x2802
	TEXTURE_WRAP_T              Enum = 0x2803
	NEAREST                     Enum = 0x2600
	LINEAR                      Enum = 0x2601
	NEAREST_MIPMAP_NEAREST      Enum = 0x2700
	LINEAR_MIPMAP_NEAREST       Enum = 0x2701
	NEAREST_MIPMAP_LINEAR       Enum = 0x2702
	LINEAR_MIPMAP_LINEAR        Enum = 0x2703
	CLAMP_TO_EDGE               Enum = 0x812F
	REPEAT                      Enum = 0x2901
	MIRRORED_REPEAT             Enum = 0x8370

	RGB           Enum = 0x1907
	RGBA          Enum = 0x1908
	UNSIGNED_BYTE Enum = 0x1401
	FLOAT         Enum = 0x1406

	VERTEX_SHADER   Enum = 0x8B31
	FRAGMENT_SHADER Enum = 0x8B30
	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82

	PACK_ALIGNMENT                 Enum = 0x0D05
	UNPACK_ALIGNMENT               Enum = 0x0CF5
	UNPACK_FLIP_Y_WEBGL            Enum = 0x9240
	UNPACK_PREMULTIPLY_ALPHA_WEBGL Enum = 0x9241

	VENDOR                           Enum = 0x1F00
	RENDERER                         Enum = 0x1F01
	VERSION                          Enum = 0x1F02
	UNMASKED_VENDOR_WEBGL            Enum = 0x9245
	UNMASKED_RENDERER_WEBGL          Enum = 0x9246
	MAX_VERTEX_ATTRIBS               Enum = 0x8869
	MAX_VERTEX_UNIFORM_VECTORS       Enum = 0x8DFB
	MAX_FRAGMENT_UNIFORM_VECTORS     Enum = 0x8DFD
	MAX_COMBINED_TEXTURE_IMAGE_UNITS Enum = 0x8B4D
	MAX_VERTEX_TEXTURE_IMAGE_UNITS   Enum = 0x8B4C
	MAX_TEXTURE_SIZE                 Enum = 0x0D33
	MAX_CUBE_MAP_TEXTURE_SIZE        Enum = 0x851C
	DEPTH_BITS                       Enum = 0x0D56
	STENCIL_BITS                     Enum = 0x0D57
)

// ContextAttributes is the fixed attribute set the device requests
// when acquiring the native context.
type ContextAttributes struct {
	Alpha                        bool
	Depth                        bool
	Stencil                      bool
	Antialias                    bool
	PremultipliedAlpha           bool
	PreserveDrawingBuffer        bool
	FailIfMajorPerformanceCaveat bool
}

// Context is the boundary with the backend-specific native WebGL
// context. The production implementation wraps a browser context via
// syscall/js; tests inject fakes, which is what keeps capability
// negotiation and the state cache testable off the browser.
type Context interface {
	// SupportedExtensions lists the extension names the context
	// reports as supported.
	SupportedExtensions() []string

	// GetExtension resolves an extension name to its handle, nil
	// when the extension is unavailable.
	GetExtension(name string) Handle

	// LoseContext releases the native context through the given
	// WEBGL_lose_context extension handle.
	LoseContext(ext Handle)

	GetParameteri(pname Enum) int
	GetParameterstr(pname Enum) string

	Enable(cap Enum)
	Disable(cap Enum)
	PixelStorei(pname Enum, value int)
	Viewport(x, y, width, height int)
	CullFace(mode Enum)
	FrontFace(mode Enum)
	PolygonOffset(factor, units float32)
	DepthFunc(fn Enum)
	DepthMask(write bool)
	DepthRange(near, far float32)
	StencilFuncSeparate(face, fn Enum, ref int, mask uint32)
	StencilOpSeparate(face, fail, zfail, pass Enum)
	StencilMaskSeparate(face Enum, mask uint32)
	BlendEquationSeparate(rgb, alpha Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	BlendColor(r, g, b, a float32)
	ColorMask(r, g, b, a bool)

	CreateBuffer() Handle
	DeleteBuffer(buf Handle)
	BindBuffer(target Enum, buf Handle)
	BufferDataSize(target Enum, size int, usage Enum)
	BufferData(target Enum, data []byte, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)

	CreateTexture() Handle
	DeleteTexture(tex Handle)
	ActiveTexture(unit Enum)
	BindTexture(target Enum, tex Handle)
	TexParameteri(target, pname Enum, param int)
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, typ Enum, data []byte)
	TexSubImage2D(target Enum, level, x, y, width, height int, format, typ Enum, data []byte)
	CompressedTexImage2D(target Enum, level int, internalFormat Enum, width, height int, data []byte)
	CompressedTexSubImage2D(target Enum, level, x, y, width, height int, internalFormat Enum, data []byte)

	CreateFramebuffer() Handle
	DeleteFramebuffer(fb Handle)
	BindFramebuffer(target Enum, fb Handle)
	FramebufferTexture2D(target, attachment, texTarget Enum, tex Handle, level int)
	CheckFramebufferStatus(target Enum) Enum
	ReadPixels(x, y, width, height int, format, typ Enum, data []byte)

	CreateShader(typ Enum) Handle
	DeleteShader(sh Handle)
	ShaderSource(sh Handle, src string)
	CompileShader(sh Handle)
	GetShaderParameteri(sh Handle, pname Enum) int
	GetShaderInfoLog(sh Handle) string

	CreateProgram() Handle
	DeleteProgram(prog Handle)
	UseProgram(prog Handle)
	AttachShader(prog, sh Handle)
	LinkProgram(prog Handle)
	GetProgramParameteri(prog Handle, pname Enum) int
	GetProgramInfoLog(prog Handle) string
}

// newContext acquires a native context for the configured surface.
// It is assigned by the platform binding; when no binding is linked
// in, context creation fails.
var newContext func(cfg gfx.DeviceConfig, attrs ContextAttributes) (Context, error)
