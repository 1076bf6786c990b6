// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

// Feature names one unit of optional capability that a backend may or
// may not be able to rely on after initialisation. Every flag starts
// false and is proven true at most once, during capability
// negotiation; quirk rules may only keep a flag false, never raise it.
type Feature int

// The negotiated capability surface.
const (
	FeatureColorFloat Feature = iota
	FeatureColorHalfFloat
	FeatureTextureFloat
	FeatureTextureFloatLinear
	FeatureTextureHalfFloat
	FeatureTextureHalfFloatLinear
	FeatureFormatETC1
	FeatureFormatETC2
	FeatureFormatDXT
	FeatureFormatPVRTC
	FeatureFormatASTC
	FeatureFormatRGB8
	FeatureFormatSRGB
	FeatureFormatD16
	FeatureFormatD24S8
	FeatureElementIndexUint
	FeatureInstancedArrays
	FeatureMultipleRenderTargets
	FeatureBlendMinMax
	FeatureDepthTexture
	FeatureVertexArrayObject
	FeatureAnisotropicFilter

	FeatureCount
)

// FeatureSet is a fixed-size feature-flag vector. The zero value has
// every flag false. Once a device finishes initialising, its set is
// read-only for the lifetime of the device.
type FeatureSet [FeatureCount]bool

// Has reports whether the given feature was proven supported.
func (s *FeatureSet) Has(f Feature) bool {
	if f < 0 || f >= FeatureCount {
		return false
	}
	return s[f]
}

// Set marks a feature as proven. Only capability negotiation may call
// this; it has no effect on out-of-range features.
func (s *FeatureSet) Set(f Feature, supported bool) {
	if f < 0 || f >= FeatureCount {
		return
	}
	s[f] = supported
}
