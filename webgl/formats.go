// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

import "github.com/devblok/gfx"

// Native enumerants for optional texture formats, defined by their
// extensions rather than the core context.
const (
	HALF_FLOAT_OES         Enum = 0x8D61
	SRGB_ALPHA_EXT         Enum = 0x8C42
	TEXTURE_MAX_ANISOTROPY Enum = 0x84FE

	COMPRESSED_RGB_ETC1          Enum = 0x8D64
	COMPRESSED_RGB8_ETC2         Enum = 0x9274
	COMPRESSED_RGBA8_ETC2_EAC    Enum = 0x9278
	COMPRESSED_RGB_S3TC_DXT1     Enum = 0x83F0
	COMPRESSED_RGBA_S3TC_DXT3    Enum = 0x83F2
	COMPRESSED_RGBA_S3TC_DXT5    Enum = 0x83F3
	COMPRESSED_RGBA_PVRTC_4BPPV1 Enum = 0x8C02
	COMPRESSED_RGBA_ASTC_4x4     Enum = 0x93B0
)

// formatTriple holds the (internalFormat, format, type) settings for
// a texImage2D call.
type formatTriple struct {
	internal Enum
	format   Enum
	typ      Enum
}

// glTriple translates an uncompressed gfx format to its native
// upload triple. WebGL 1 requires internalFormat == format for the
// core formats.
func glTriple(f gfx.Format) formatTriple {
	switch f {
	case gfx.FormatRGB8:
		return formatTriple{RGB, RGB, UNSIGNED_BYTE}
	case gfx.FormatSRGB8A8:
		return formatTriple{SRGB_ALPHA_EXT, SRGB_ALPHA_EXT, UNSIGNED_BYTE}
	case gfx.FormatR16F, gfx.FormatRGB16F, gfx.FormatRGBA16F:
		return formatTriple{RGBA, RGBA, HALF_FLOAT_OES}
	case gfx.FormatR32F, gfx.FormatRGB32F, gfx.FormatRGBA32F:
		return formatTriple{RGBA, RGBA, FLOAT}
	default:
		return formatTriple{RGBA, RGBA, UNSIGNED_BYTE}
	}
}

// glCompressedFormat translates a compressed gfx format to its
// native internalFormat, 0 when the format is not compressed.
func glCompressedFormat(f gfx.Format) Enum {
	switch f {
	case gfx.FormatETC1RGB8:
		return COMPRESSED_RGB_ETC1
	case gfx.FormatETC2RGB8:
		return COMPRESSED_RGB8_ETC2
	case gfx.FormatETC2RGBA8:
		return COMPRESSED_RGBA8_ETC2_EAC
	case gfx.FormatDXT1:
		return COMPRESSED_RGB_S3TC_DXT1
	case gfx.FormatDXT3:
		return COMPRESSED_RGBA_S3TC_DXT3
	case gfx.FormatDXT5:
		return COMPRESSED_RGBA_S3TC_DXT5
	case gfx.FormatPVRTC4BPPRGBA:
		return COMPRESSED_RGBA_PVRTC_4BPPV1
	case gfx.FormatASTC4x4:
		return COMPRESSED_RGBA_ASTC_4x4
	default:
		return 0
	}
}

// glMinFilter translates a min/mip filter pair to a native filter
// enum.
func glMinFilter(min, mip gfx.Filter, mipmapped bool) Enum {
	if !mipmapped {
		if min == gfx.FilterLinear {
			return LINEAR
		}
		return NEAREST
	}
	switch {
	case min == gfx.FilterLinear && mip == gfx.FilterLinear:
		return LINEAR_MIPMAP_LINEAR
	case min == gfx.FilterLinear:
		return LINEAR_MIPMAP_NEAREST
	case mip == gfx.FilterLinear:
		return NEAREST_MIPMAP_LINEAR
	default:
		return NEAREST_MIPMAP_NEAREST
	}
}

func glMagFilter(mag gfx.Filter) Enum {
	if mag == gfx.FilterLinear {
		return LINEAR
	}
	return NEAREST
}

func glAddress(a gfx.Address) Enum {
	switch a {
	case gfx.AddressRepeat:
		return REPEAT
	case gfx.AddressMirror:
		return MIRRORED_REPEAT
	default:
		return CLAMP_TO_EDGE
	}
}

func glComparison(c gfx.ComparisonFunc) Enum {
	switch c {
	case gfx.ComparisonNever:
		return NEVER
	case gfx.ComparisonLess:
		return LESS
	case gfx.ComparisonEqual:
		return EQUAL
	case gfx.ComparisonLessEqual:
		return LEQUAL
	case gfx.ComparisonGreater:
		return GREATER
	case gfx.ComparisonNotEqual:
		return NOTEQUAL
	case gfx.ComparisonGreaterEqual:
		return GEQUAL
	default:
		return ALWAYS
	}
}

func glStencilOp(op gfx.StencilOp) Enum {
	switch op {
	case gfx.StencilOpZero:
		return ZERO
	case gfx.StencilOpReplace:
		return REPLACE
	case gfx.StencilOpIncr:
		return INCR
	case gfx.StencilOpDecr:
		return DECR
	case gfx.StencilOpInvert:
		return INVERT
	default:
		return KEEP
	}
}

func glBlendFactor(f gfx.BlendFactor) Enum {
	switch f {
	case gfx.BlendOne:
		return ONE
	case gfx.BlendSrcAlpha:
		return SRC_ALPHA
	case gfx.BlendDstAlpha:
		return DST_ALPHA
	case gfx.BlendOneMinusSrcAlpha:
		return ONE_MINUS_SRC_ALPHA
	case gfx.BlendOneMinusDstAlpha:
		return ONE_MINUS_DST_ALPHA
	default:
		return ZERO
	}
}

func glBlendOp(op gfx.BlendOp) Enum {
	switch op {
	case gfx.BlendOpSubtract:
		return FUNC_SUBTRACT
	case gfx.BlendOpReverseSubtract:
		return FUNC_REVERSE_SUBTRACT
	case gfx.BlendOpMin:
		return MIN_EXT
	case gfx.BlendOpMax:
		return MAX_EXT
	default:
		return FUNC_ADD
	}
}
