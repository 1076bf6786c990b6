// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

import (
	"fmt"

	"github.com/devblok/gfx"
)

// Shader implements gfx.Shader as one linked native program.
type Shader struct {
	device  *Device
	name    string
	program Handle
}

func (d *Device) newShader(cfg gfx.ShaderConfig) (*Shader, error) {
	s := &Shader{device: d}
	if err := s.initialise(cfg); err != nil {
		s.Destroy()
		return nil, err
	}
	return s, nil
}

func (s *Shader) initialise(cfg gfx.ShaderConfig) error {
	if len(cfg.Stages) == 0 {
		return fmt.Errorf("%w: shader %q has no stages", gfx.ErrResourceInitialisation, cfg.Name)
	}
	s.name = cfg.Name
	d := s.device

	prog := d.ctx.CreateProgram()
	if prog == nil {
		return fmt.Errorf("%w: gl.createProgram() returned nothing", gfx.ErrResourceInitialisation)
	}

	stages := make([]Handle, 0, len(cfg.Stages))
	// Stage objects are only needed until linking; they are always
	// deleted eagerly, the deferred-destroy workaround concerns the
	// linked program.
	defer func() {
		for _, st := range stages {
			d.ctx.DeleteShader(st)
		}
	}()

	for _, stage := range cfg.Stages {
		glType := VERTEX_SHADER
		if stage.Type == gfx.FragmentStage {
			glType = FRAGMENT_SHADER
		}
		sh := d.ctx.CreateShader(glType)
		if sh == nil {
			d.ctx.DeleteProgram(prog)
			return fmt.Errorf("%w: gl.createShader() returned nothing", gfx.ErrResourceInitialisation)
		}
		stages = append(stages, sh)
		d.ctx.ShaderSource(sh, stage.Source)
		d.ctx.CompileShader(sh)
		if d.ctx.GetShaderParameteri(sh, COMPILE_STATUS) == 0 {
			info := d.ctx.GetShaderInfoLog(sh)
			d.ctx.DeleteProgram(prog)
			return fmt.Errorf("%w: gl.compileShader(): %s", gfx.ErrResourceInitialisation, info)
		}
		d.ctx.AttachShader(prog, sh)
	}

	d.ctx.LinkProgram(prog)
	if d.ctx.GetProgramParameteri(prog, LINK_STATUS) == 0 {
		info := d.ctx.GetProgramInfoLog(prog)
		d.ctx.DeleteProgram(prog)
		return fmt.Errorf("%w: gl.linkProgram(): %s", gfx.ErrResourceInitialisation, info)
	}
	s.program = prog
	return nil
}

// Name implements gfx.Shader.
func (s *Shader) Name() string { return s.name }

// Destroy implements gfx.Shader. Native destruction may be deferred
// to the next frame boundary on platforms where eager deletion is
// unsafe.
func (s *Shader) Destroy() {
	if s.program != nil {
		s.device.retireShader(s.program)
		s.program = nil
	}
}
