// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

// stateCache mirrors the native binding points this device has
// written, so redundant state changes can be elided. Every mutation
// happens in the same call that changes the underlying native state;
// a stale entry would either skip a needed change or re-issue one.
// Not synchronized: the device model is single-threaded.
type stateCache struct {
	framebuffer   Handle
	arrayBuffer   Handle
	elementBuffer Handle
	vertexArray   Handle
	program       Handle

	activeUnit   int
	textures2D   []Handle
	texturesCube []Handle

	viewport [4]int
}

func newStateCache(maxTextureUnits int) *stateCache {
	if maxTextureUnits < 1 {
		maxTextureUnits = 1
	}
	return &stateCache{
		textures2D:   make([]Handle, maxTextureUnits),
		texturesCube: make([]Handle, maxTextureUnits),
	}
}

// bindFramebuffer binds fb unless it is already bound. A nil handle
// selects the surface default framebuffer.
func (s *stateCache) bindFramebuffer(ctx Context, fb Handle) {
	if s.framebuffer == fb {
		return
	}
	ctx.BindFramebuffer(FRAMEBUFFER, fb)
	s.framebuffer = fb
}

func (s *stateCache) bindBuffer(ctx Context, target Enum, buf Handle) {
	switch target {
	case ARRAY_BUFFER:
		if s.arrayBuffer == buf {
			return
		}
		s.arrayBuffer = buf
	case ELEMENT_ARRAY_BUFFER:
		if s.elementBuffer == buf {
			return
		}
		s.elementBuffer = buf
	}
	ctx.BindBuffer(target, buf)
}

func (s *stateCache) activeTexture(ctx Context, unit int) {
	if unit == s.activeUnit {
		return
	}
	ctx.ActiveTexture(TEXTURE0 + Enum(unit))
	s.activeUnit = unit
}

func (s *stateCache) bindTexture(ctx Context, unit int, target Enum, tex Handle) {
	if unit < 0 || unit >= len(s.textures2D) {
		unit = 0
	}
	units := s.textures2D
	if target == TEXTURE_CUBE_MAP {
		units = s.texturesCube
	}
	if units[unit] == tex {
		return
	}
	s.activeTexture(ctx, unit)
	ctx.BindTexture(target, tex)
	units[unit] = tex
}

func (s *stateCache) useProgram(ctx Context, prog Handle) {
	if s.program == prog {
		return
	}
	ctx.UseProgram(prog)
	s.program = prog
}

func (s *stateCache) setViewport(ctx Context, x, y, width, height int) {
	v := [4]int{x, y, width, height}
	if s.viewport == v {
		return
	}
	ctx.Viewport(x, y, width, height)
	s.viewport = v
}

// forgetTexture clears any cached binding of a deleted texture, the
// native context unbinds deleted objects implicitly.
func (s *stateCache) forgetTexture(tex Handle) {
	for i := range s.textures2D {
		if s.textures2D[i] == tex {
			s.textures2D[i] = nil
		}
		if s.texturesCube[i] == tex {
			s.texturesCube[i] = nil
		}
	}
}

// forgetBuffer clears any cached binding of a deleted buffer.
func (s *stateCache) forgetBuffer(buf Handle) {
	if s.arrayBuffer == buf {
		s.arrayBuffer = nil
	}
	if s.elementBuffer == buf {
		s.elementBuffer = nil
	}
}

// forgetProgram clears the cached binding of a deleted program.
func (s *stateCache) forgetProgram(prog Handle) {
	if s.program == prog {
		s.program = nil
	}
}

// forgetFramebuffer clears the cached binding of a deleted
// framebuffer, falling back to the default framebuffer mirror.
func (s *stateCache) forgetFramebuffer(fb Handle) {
	if s.framebuffer == fb {
		s.framebuffer = nil
	}
}
