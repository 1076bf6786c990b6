// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

//go:build js && wasm

package webgl

import (
	"errors"
	"syscall/js"

	"github.com/devblok/gfx"
)

func init() {
	newContext = func(cfg gfx.DeviceConfig, attrs ContextAttributes) (Context, error) {
		canvas, ok := cfg.Surface.(js.Value)
		if !ok {
			return nil, errors.New("webgl: config surface is not a js canvas")
		}
		return NewContext(canvas, attrs)
	}
}

// jsObject wraps a native js object behind the opaque Handle type.
// Pointer identity stands in for native object identity; js.Value
// itself is not comparable.
type jsObject struct {
	v js.Value
}

func jsval(h Handle) js.Value {
	if h == nil {
		return js.Null()
	}
	return h.(*jsObject).v
}

func wrap(v js.Value) Handle {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &jsObject{v: v}
}

// jsContext implements Context over a browser WebGLRenderingContext.
type jsContext struct {
	gl js.Value

	// uint8Array is grown on demand and reused for byte uploads.
	uint8Array js.Value
}

// NewContext acquires a WebGL 1 context from the given canvas with
// the requested attribute set. Returns an error when the browser
// throws or yields no context.
func NewContext(canvas js.Value, attrs ContextAttributes) (Context, error) {
	if canvas.IsNull() || canvas.IsUndefined() {
		return nil, errors.New("canvas.getContext(): no canvas element")
	}
	opts := js.Global().Get("Object").New()
	opts.Set("alpha", attrs.Alpha)
	opts.Set("depth", attrs.Depth)
	opts.Set("stencil", attrs.Stencil)
	opts.Set("antialias", attrs.Antialias)
	opts.Set("premultipliedAlpha", attrs.PremultipliedAlpha)
	opts.Set("preserveDrawingBuffer", attrs.PreserveDrawingBuffer)
	opts.Set("failIfMajorPerformanceCaveat", attrs.FailIfMajorPerformanceCaveat)

	gl := canvas.Call("getContext", "webgl", opts)
	if gl.IsNull() || gl.IsUndefined() {
		gl = canvas.Call("getContext", "experimental-webgl", opts)
	}
	if gl.IsNull() || gl.IsUndefined() {
		return nil, errors.New("canvas.getContext(): no webgl context returned")
	}
	return &jsContext{gl: gl}, nil
}

func (c *jsContext) bytes(data []byte) js.Value {
	if c.uint8Array.IsUndefined() || c.uint8Array.Get("length").Int() < len(data) {
		c.uint8Array = js.Global().Get("Uint8Array").New(len(data))
	}
	js.CopyBytesToJS(c.uint8Array, data)
	return c.uint8Array.Call("subarray", 0, len(data))
}

func (c *jsContext) SupportedExtensions() []string {
	v := c.gl.Call("getSupportedExtensions")
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	exts := make([]string, v.Length())
	for i := range exts {
		exts[i] = v.Index(i).String()
	}
	return exts
}

func (c *jsContext) GetExtension(name string) Handle {
	return wrap(c.gl.Call("getExtension", name))
}

func (c *jsContext) LoseContext(ext Handle) {
	jsval(ext).Call("loseContext")
}

func (c *jsContext) GetParameteri(pname Enum) int {
	v := c.gl.Call("getParameter", int(pname))
	if v.IsNull() || v.IsUndefined() {
		return 0
	}
	return v.Int()
}

func (c *jsContext) GetParameterstr(pname Enum) string {
	v := c.gl.Call("getParameter", int(pname))
	if v.IsNull() || v.IsUndefined() {
		return ""
	}
	return v.String()
}

func (c *jsContext) Enable(cap Enum)  { c.gl.Call("enable", int(cap)) }
func (c *jsContext) Disable(cap Enum) { c.gl.Call("disable", int(cap)) }

func (c *jsContext) PixelStorei(pname Enum, value int) {
	c.gl.Call("pixelStorei", int(pname), value)
}

func (c *jsContext) Viewport(x, y, width, height int) {
	c.gl.Call("viewport", x, y, width, height)
}

func (c *jsContext) CullFace(mode Enum)  { c.gl.Call("cullFace", int(mode)) }
func (c *jsContext) FrontFace(mode Enum) { c.gl.Call("frontFace", int(mode)) }

func (c *jsContext) PolygonOffset(factor, units float32) {
	c.gl.Call("polygonOffset", factor, units)
}

func (c *jsContext) DepthFunc(fn Enum)    { c.gl.Call("depthFunc", int(fn)) }
func (c *jsContext) DepthMask(write bool) { c.gl.Call("depthMask", write) }

func (c *jsContext) DepthRange(near, far float32) {
	c.gl.Call("depthRange", near, far)
}

func (c *jsContext) StencilFuncSeparate(face, fn Enum, ref int, mask uint32) {
	c.gl.Call("stencilFuncSeparate", int(face), int(fn), ref, mask)
}

func (c *jsContext) StencilOpSeparate(face, fail, zfail, pass Enum) {
	c.gl.Call("stencilOpSeparate", int(face), int(fail), int(zfail), int(pass))
}

func (c *jsContext) StencilMaskSeparate(face Enum, mask uint32) {
	c.gl.Call("stencilMaskSeparate", int(face), mask)
}

func (c *jsContext) BlendEquationSeparate(rgb, alpha Enum) {
	c.gl.Call("blendEquationSeparate", int(rgb), int(alpha))
}

func (c *jsContext) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum) {
	c.gl.Call("blendFuncSeparate", int(srcRGB), int(dstRGB), int(srcAlpha), int(dstAlpha))
}

func (c *jsContext) BlendColor(r, g, b, a float32) {
	c.gl.Call("blendColor", r, g, b, a)
}

func (c *jsContext) ColorMask(r, g, b, a bool) {
	c.gl.Call("colorMask", r, g, b, a)
}

func (c *jsContext) CreateBuffer() Handle {
	return wrap(c.gl.Call("createBuffer"))
}

func (c *jsContext) DeleteBuffer(buf Handle) {
	c.gl.Call("deleteBuffer", jsval(buf))
}

func (c *jsContext) BindBuffer(target Enum, buf Handle) {
	c.gl.Call("bindBuffer", int(target), jsval(buf))
}

func (c *jsContext) BufferDataSize(target Enum, size int, usage Enum) {
	c.gl.Call("bufferData", int(target), size, int(usage))
}

func (c *jsContext) BufferData(target Enum, data []byte, usage Enum) {
	c.gl.Call("bufferData", int(target), c.bytes(data), int(usage))
}

func (c *jsContext) BufferSubData(target Enum, offset int, data []byte) {
	c.gl.Call("bufferSubData", int(target), offset, c.bytes(data))
}

func (c *jsContext) CreateTexture() Handle {
	return wrap(c.gl.Call("createTexture"))
}

func (c *jsContext) DeleteTexture(tex Handle) {
	c.gl.Call("deleteTexture", jsval(tex))
}

func (c *jsContext) ActiveTexture(unit Enum) {
	c.gl.Call("activeTexture", int(unit))
}

func (c *jsContext) BindTexture(target Enum, tex Handle) {
	c.gl.Call("bindTexture", int(target), jsval(tex))
}

func (c *jsContext) TexParameteri(target, pname Enum, param int) {
	c.gl.Call("texParameteri", int(target), int(pname), param)
}

func (c *jsContext) TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, typ Enum, data []byte) {
	if data == nil {
		c.gl.Call("texImage2D", int(target), level, int(internalFormat), width, height, 0, int(format), int(typ), js.Null())
		return
	}
	c.gl.Call("texImage2D", int(target), level, int(internalFormat), width, height, 0, int(format), int(typ), c.bytes(data))
}

func (c *jsContext) TexSubImage2D(target Enum, level, x, y, width, height int, format, typ Enum, data []byte) {
	c.gl.Call("texSubImage2D", int(target), level, x, y, width, height, int(format), int(typ), c.bytes(data))
}

func (c *jsContext) CompressedTexImage2D(target Enum, level int, internalFormat Enum, width, height int, data []byte) {
	c.gl.Call("compressedTexImage2D", int(target), level, int(internalFormat), width, height, 0, c.bytes(data))
}

func (c *jsContext) CompressedTexSubImage2D(target Enum, level, x, y, width, height int, internalFormat Enum, data []byte) {
	c.gl.Call("compressedTexSubImage2D", int(target), level, x, y, width, height, int(internalFormat), c.bytes(data))
}

func (c *jsContext) CreateFramebuffer() Handle {
	return wrap(c.gl.Call("createFramebuffer"))
}

func (c *jsContext) DeleteFramebuffer(fb Handle) {
	c.gl.Call("deleteFramebuffer", jsval(fb))
}

func (c *jsContext) BindFramebuffer(target Enum, fb Handle) {
	c.gl.Call("bindFramebuffer", int(target), jsval(fb))
}

func (c *jsContext) FramebufferTexture2D(target, attachment, texTarget Enum, tex Handle, level int) {
	c.gl.Call("framebufferTexture2D", int(target), int(attachment), int(texTarget), jsval(tex), level)
}

func (c *jsContext) CheckFramebufferStatus(target Enum) Enum {
	return Enum(c.gl.Call("checkFramebufferStatus", int(target)).Int())
}

func (c *jsContext) ReadPixels(x, y, width, height int, format, typ Enum, data []byte) {
	arr := js.Global().Get("Uint8Array").New(len(data))
	c.gl.Call("readPixels", x, y, width, height, int(format), int(typ), arr)
	js.CopyBytesToGo(data, arr)
}

func (c *jsContext) CreateShader(typ Enum) Handle {
	return wrap(c.gl.Call("createShader", int(typ)))
}

func (c *jsContext) DeleteShader(sh Handle) {
	c.gl.Call("deleteShader", jsval(sh))
}

func (c *jsContext) ShaderSource(sh Handle, src string) {
	c.gl.Call("shaderSource", jsval(sh), src)
}

func (c *jsContext) CompileShader(sh Handle) {
	c.gl.Call("compileShader", jsval(sh))
}

func (c *jsContext) GetShaderParameteri(sh Handle, pname Enum) int {
	v := c.gl.Call("getShaderParameter", jsval(sh), int(pname))
	if v.Type() == js.TypeBoolean {
		if v.Bool() {
			return 1
		}
		return 0
	}
	return v.Int()
}

func (c *jsContext) GetShaderInfoLog(sh Handle) string {
	return c.gl.Call("getShaderInfoLog", jsval(sh)).String()
}

func (c *jsContext) CreateProgram() Handle {
	return wrap(c.gl.Call("createProgram"))
}

func (c *jsContext) DeleteProgram(prog Handle) {
	c.gl.Call("deleteProgram", jsval(prog))
}

func (c *jsContext) UseProgram(prog Handle) {
	c.gl.Call("useProgram", jsval(prog))
}

func (c *jsContext) AttachShader(prog, sh Handle) {
	c.gl.Call("attachShader", jsval(prog), jsval(sh))
}

func (c *jsContext) LinkProgram(prog Handle) {
	c.gl.Call("linkProgram", jsval(prog))
}

func (c *jsContext) GetProgramParameteri(prog Handle, pname Enum) int {
	v := c.gl.Call("getProgramParameter", jsval(prog), int(pname))
	if v.Type() == js.TypeBoolean {
		if v.Bool() {
			return 1
		}
		return 0
	}
	return v.Int()
}

func (c *jsContext) GetProgramInfoLog(prog Handle) string {
	return c.gl.Call("getProgramInfoLog", jsval(prog)).String()
}
