// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

import "github.com/devblok/gfx"

// Sampler implements gfx.Sampler. WebGL 1 has no sampler objects, so
// the sampler only carries resolved native parameters; they are
// written onto textures when descriptor sets bind the pair.
type Sampler struct {
	device *Device

	glMinFilter Enum
	glMagFilter Enum
	glWrapS     Enum
	glWrapT     Enum
	anisotropy  uint32
}

func (d *Device) newSampler(cfg gfx.SamplerConfig) (*Sampler, error) {
	s := &Sampler{device: d}
	if err := s.initialise(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sampler) initialise(cfg gfx.SamplerConfig) error {
	s.glMinFilter = glMinFilter(cfg.MinFilter, cfg.MipFilter, true)
	s.glMagFilter = glMagFilter(cfg.MagFilter)
	s.glWrapS = glAddress(cfg.AddressU)
	s.glWrapT = glAddress(cfg.AddressV)

	s.anisotropy = cfg.MaxAnisotropy
	if !s.device.features.Has(gfx.FeatureAnisotropicFilter) {
		s.anisotropy = 0
	}
	return nil
}

// Destroy implements gfx.Sampler.
func (s *Sampler) Destroy() {}
