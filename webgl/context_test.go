// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

// fakeContext implements Context in host memory, recording enough of
// what the device does to it for behavioural assertions.
type fakeContext struct {
	extensions map[string]Handle
	params     map[Enum]int
	strs       map[Enum]string

	nextID int

	boundFramebuffer Handle
	framebufferBinds int
	bufferBinds      int
	textureBinds     int

	enabled       map[Enum]bool
	cullFace      Enum
	viewport      [4]int
	viewportCalls int

	boundProgram Handle
	programBinds int

	extensionLists int
	lostContexts   int

	uploads []fakeUpload

	compressedFull int
	compressedSub  int
	subImages      int

	deletedPrograms []Handle
	deletedShaders  []Handle

	compileOK bool
	linkOK    bool
	infoLog   string

	readFill byte
}

type fakeUpload struct {
	target Enum
	level  int
	width  int
	height int
	data   []byte
}

type fakeHandle int

func newFakeContext() *fakeContext {
	return &fakeContext{
		extensions: map[string]Handle{},
		enabled:    map[Enum]bool{},
		params: map[Enum]int{
			MAX_VERTEX_ATTRIBS:               16,
			MAX_VERTEX_UNIFORM_VECTORS:       128,
			MAX_FRAGMENT_UNIFORM_VECTORS:     64,
			MAX_COMBINED_TEXTURE_IMAGE_UNITS: 8,
			MAX_VERTEX_TEXTURE_IMAGE_UNITS:   4,
			MAX_TEXTURE_SIZE:                 4096,
			MAX_CUBE_MAP_TEXTURE_SIZE:        4096,
			DEPTH_BITS:                       24,
			STENCIL_BITS:                     8,
		},
		strs: map[Enum]string{
			RENDERER: "fake renderer",
			VENDOR:   "fake vendor",
			VERSION:  "WebGL 1.0 (fake)",
		},
		compileOK: true,
		linkOK:    true,
	}
}

func (c *fakeContext) addExtension(name string) {
	c.nextID++
	c.extensions[name] = fakeHandle(c.nextID)
}

func (c *fakeContext) handle() Handle {
	c.nextID++
	return fakeHandle(c.nextID)
}

func (c *fakeContext) SupportedExtensions() []string {
	c.extensionLists++
	names := make([]string, 0, len(c.extensions))
	for name := range c.extensions {
		names = append(names, name)
	}
	return names
}

func (c *fakeContext) GetExtension(name string) Handle {
	if h, ok := c.extensions[name]; ok {
		return h
	}
	return nil
}

func (c *fakeContext) GetParameteri(pname Enum) int { return c.params[pname] }
func (c *fakeContext) GetParameterstr(pname Enum) string { return c.strs[pname] }

func (c *fakeContext) LoseContext(ext Handle) { c.lostContexts++ }

func (c *fakeContext) Enable(cap Enum) { c.enabled[cap] = true }
func (c *fakeContext) Disable(cap Enum) { c.enabled[cap] = false }
func (c *fakeContext) PixelStorei(pname Enum, v int) {}
func (c *fakeContext) Viewport(x, y, w, h int) {
	c.viewport = [4]int{x, y, w, h}
	c.viewportCalls++
}
func (c *fakeContext) CullFace(mode Enum) { c.cullFace = mode }
func (c *fakeContext) FrontFace(mode Enum) {}
func (c *fakeContext) PolygonOffset(f, u float32) {}
func (c *fakeContext) DepthFunc(fn Enum) {}
func (c *fakeContext) DepthMask(write bool) {}
func (c *fakeContext) DepthRange(near, far float32) {}
func (c *fakeContext) BlendEquationSeparate(r, a Enum) {}
func (c *fakeContext) BlendColor(r, g, b, a float32) {}
func (c *fakeContext) ColorMask(r, g, b, a bool) {}

func (c *fakeContext) StencilFuncSeparate(face, fn Enum, ref int, mask uint32) {}
func (c *fakeContext) StencilOpSeparate(face, fail, zfail, pass Enum) {}
func (c *fakeContext) StencilMaskSeparate(face Enum, mask uint32) {}
func (c *fakeContext) BlendFuncSeparate(sr, dr, sa, da Enum) {}

func (c *fakeContext) CreateBuffer() Handle { return c.handle() }
func (c *fakeContext) DeleteBuffer(buf Handle) {}
func (c *fakeContext) BindBuffer(target Enum, buf Handle) {
	c.bufferBinds++
}
func (c *fakeContext) BufferDataSize(target Enum, size int, usage Enum) {}
func (c *fakeContext) BufferData(target Enum, data []byte, usage Enum) {}
func (c *fakeContext) BufferSubData(target Enum, off int, data []byte) {}

func (c *fakeContext) CreateTexture() Handle { return c.handle() }
func (c *fakeContext) DeleteTexture(tex Handle) {}
func (c *fakeContext) ActiveTexture(unit Enum) {}
func (c *fakeContext) BindTexture(target Enum, tex Handle) {
	c.textureBinds++
}
func (c *fakeContext) TexParameteri(target, pname Enum, param int) {}

func (c *fakeContext) TexImage2D(target Enum, level int, internal Enum, w, h int, format, typ Enum, data []byte) {
	c.record(target, level, w, h, data)
}

func (c *fakeContext) TexSubImage2D(target Enum, level, x, y, w, h int, format, typ Enum, data []byte) {
	c.subImages++
	c.record(target, level, w, h, data)
}

func (c *fakeContext) CompressedTexImage2D(target Enum, level int, internal Enum, w, h int, data []byte) {
	c.compressedFull++
	c.record(target, level, w, h, data)
}

func (c *fakeContext) CompressedTexSubImage2D(target Enum, level, x, y, w, h int, internal Enum, data []byte) {
	c.compressedSub++
	c.record(target, level, w, h, data)
}

func (c *fakeContext) record(target Enum, level, w, h int, data []byte) {
	c.uploads = append(c.uploads, fakeUpload{
		target: target,
		level:  level,
		width:  w,
		height: h,
		data:   append([]byte(nil), data...),
	})
}

func (c *fakeContext) CreateFramebuffer() Handle { return c.handle() }
func (c *fakeContext) DeleteFramebuffer(fb Handle) {}
func (c *fakeContext) BindFramebuffer(target Enum, fb Handle) {
	c.boundFramebuffer = fb
	c.framebufferBinds++
}
func (c *fakeContext) FramebufferTexture2D(target, attachment, texTarget Enum, tex Handle, level int) {
}
func (c *fakeContext) CheckFramebufferStatus(target Enum) Enum { return FRAMEBUFFER_COMPLETE }

func (c *fakeContext) ReadPixels(x, y, w, h int, format, typ Enum, data []byte) {
	for i := range data {
		data[i] = c.readFill
	}
}

func (c *fakeContext) CreateShader(typ Enum) Handle { return c.handle() }
func (c *fakeContext) DeleteShader(sh Handle) {
	c.deletedShaders = append(c.deletedShaders, sh)
}
func (c *fakeContext) ShaderSource(sh Handle, src string) {}
func (c *fakeContext) CompileShader(sh Handle) {}
func (c *fakeContext) GetShaderParameteri(sh Handle, pname Enum) int {
	if c.compileOK {
		return 1
	}
	return 0
}
func (c *fakeContext) GetShaderInfoLog(sh Handle) string { return c.infoLog }

func (c *fakeContext) CreateProgram() Handle { return c.handle() }
func (c *fakeContext) DeleteProgram(prog Handle) {
	c.deletedPrograms = append(c.deletedPrograms, prog)
}
func (c *fakeContext) UseProgram(prog Handle) {
	c.boundProgram = prog
	c.programBinds++
}
func (c *fakeContext) AttachShader(prog, sh Handle) {}
func (c *fakeContext) LinkProgram(prog Handle) {}
func (c *fakeContext) GetProgramParameteri(prog Handle, pname Enum) int {
	if c.linkOK {
		return 1
	}
	return 0
}
func (c *fakeContext) GetProgramInfoLog(prog Handle) string { return c.infoLog }

var _ Context = (*fakeContext)(nil)
