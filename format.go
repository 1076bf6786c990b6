// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

// Format identifies a texture or attachment pixel format.
type Format int

// Recognized pixel formats. The list covers what the WebGL backend
// can negotiate; other backends may support a subset.
const (
	FormatUnknown Format = iota
	FormatR8
	FormatRG8
	FormatRGB8
	FormatRGBA8
	FormatSRGB8A8
	FormatR16F
	FormatRGB16F
	FormatRGBA16F
	FormatR32F
	FormatRGB32F
	FormatRGBA32F
	FormatD16
	FormatD16S8
	FormatD24
	FormatD24S8
	FormatETC1RGB8
	FormatETC2RGB8
	FormatETC2RGBA8
	FormatDXT1
	FormatDXT3
	FormatDXT5
	FormatPVRTC4BPPRGBA
	FormatASTC4x4
)

// IsCompressed reports whether the format is a block-compressed one.
func (f Format) IsCompressed() bool {
	switch f {
	case FormatETC1RGB8, FormatETC2RGB8, FormatETC2RGBA8,
		FormatDXT1, FormatDXT3, FormatDXT5,
		FormatPVRTC4BPPRGBA, FormatASTC4x4:
		return true
	}
	return false
}

// HasDepth reports whether the format carries a depth aspect.
func (f Format) HasDepth() bool {
	switch f {
	case FormatD16, FormatD16S8, FormatD24, FormatD24S8:
		return true
	}
	return false
}

// HasStencil reports whether the format carries a stencil aspect.
func (f Format) HasStencil() bool {
	return f == FormatD16S8 || f == FormatD24S8
}

// Size returns the byte size of a width by height region in the
// given format. Compressed formats round the extent up to whole
// blocks.
func (f Format) Size(width, height uint32) uint32 {
	switch f {
	case FormatR8:
		return width * height
	case FormatRG8:
		return width * height * 2
	case FormatRGB8:
		return width * height * 3
	case FormatRGBA8, FormatSRGB8A8, FormatD24S8, FormatD24, FormatD16S8:
		return width * height * 4
	case FormatR16F, FormatD16:
		return width * height * 2
	case FormatRGB16F:
		return width * height * 6
	case FormatRGBA16F:
		return width * height * 8
	case FormatR32F:
		return width * height * 4
	case FormatRGB32F:
		return width * height * 12
	case FormatRGBA32F:
		return width * height * 16
	case FormatETC1RGB8, FormatETC2RGB8, FormatDXT1:
		return blocks(width) * blocks(height) * 8
	case FormatETC2RGBA8, FormatDXT3, FormatDXT5, FormatASTC4x4:
		return blocks(width) * blocks(height) * 16
	case FormatPVRTC4BPPRGBA:
		// PVRTC addresses a minimum of two blocks per axis.
		bw, bh := blocks(width), blocks(height)
		if bw < 2 {
			bw = 2
		}
		if bh < 2 {
			bh = 2
		}
		return bw * bh * 8
	}
	return 0
}

func blocks(texels uint32) uint32 {
	return (texels + 3) / 4
}

// DepthStencilFormat derives the depth-stencil format assumed to be
// attached to the default framebuffer from the bit depths queried off
// the native context. The mapping is exact for the four expected
// combinations; unexpected values fall back through the same rule on
// depthBits >= 24, so a 32 bit depth buffer is treated as 24 bit.
func DepthStencilFormat(depthBits, stencilBits int) Format {
	if depthBits >= 24 {
		if stencilBits > 0 {
			return FormatD24S8
		}
		return FormatD24
	}
	if stencilBits > 0 {
		return FormatD16S8
	}
	return FormatD16
}
