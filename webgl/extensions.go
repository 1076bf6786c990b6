// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

// capability enumerates every optional extension the device
// recognizes. The capability table maps each one to a nullable
// native handle, resolved once during initialisation.
type capability int

const (
	capAnisotropicFilter capability = iota
	capBlendMinMax
	capColorBufferFloat
	capColorBufferHalfFloat
	capCompressedASTC
	capCompressedETC
	capCompressedETC1
	capCompressedPVRTC
	capCompressedS3TC
	capCompressedS3TCSRGB
	capDebugRendererInfo
	capDepthTexture
	capDrawBuffers
	capElementIndexUint
	capFragDepth
	capInstancedArrays
	capLoseContext
	capShaderTextureLOD
	capSRGB
	capStandardDerivatives
	capTextureFloat
	capTextureFloatLinear
	capTextureHalfFloat
	capTextureHalfFloatLinear
	capVertexArrayObject

	capCount
)

// extensionNames maps each capability to the logical extension name
// it is resolved from. Vendor prefixes are handled by the registry,
// so only unprefixed names appear here.
var extensionNames = [capCount]string{
	capAnisotropicFilter:      "EXT_texture_filter_anisotropic",
	capBlendMinMax:            "EXT_blend_minmax",
	capColorBufferFloat:       "WEBGL_color_buffer_float",
	capColorBufferHalfFloat:   "EXT_color_buffer_half_float",
	capCompressedASTC:         "WEBGL_compressed_texture_astc",
	capCompressedETC:          "WEBGL_compressed_texture_etc",
	capCompressedETC1:         "WEBGL_compressed_texture_etc1",
	capCompressedPVRTC:        "WEBGL_compressed_texture_pvrtc",
	capCompressedS3TC:         "WEBGL_compressed_texture_s3tc",
	capCompressedS3TCSRGB:     "WEBGL_compressed_texture_s3tc_srgb",
	capDebugRendererInfo:      "WEBGL_debug_renderer_info",
	capDepthTexture:           "WEBGL_depth_texture",
	capDrawBuffers:            "WEBGL_draw_buffers",
	capElementIndexUint:       "OES_element_index_uint",
	capFragDepth:              "EXT_frag_depth",
	capInstancedArrays:        "ANGLE_instanced_arrays",
	capLoseContext:            "WEBGL_lose_context",
	capShaderTextureLOD:       "EXT_shader_texture_lod",
	capSRGB:                   "EXT_sRGB",
	capStandardDerivatives:    "OES_standard_derivatives",
	capTextureFloat:           "OES_texture_float",
	capTextureFloatLinear:     "OES_texture_float_linear",
	capTextureHalfFloat:       "OES_texture_half_float",
	capTextureHalfFloatLinear: "OES_texture_half_float_linear",
	capVertexArrayObject:      "OES_vertex_array_object",
}

// vendorPrefixes is the fixed, ordered alias search list. The
// unprefixed name always wins over a vendor-prefixed variant.
var vendorPrefixes = [...]string{"", "WEBKIT_", "MOZ_"}

// lookupExtension resolves a logical extension name to a native
// handle, trying each vendor prefix in order and returning the first
// non-nil result. Pure function of the context's extension surface;
// nil when no variant is present.
func lookupExtension(ctx Context, name string) Handle {
	for _, prefix := range vendorPrefixes {
		if ext := ctx.GetExtension(prefix + name); ext != nil {
			return ext
		}
	}
	return nil
}

// capTable holds one nullable handle per recognized capability.
type capTable [capCount]Handle

// resolveCapabilities fills a capability table off the given
// context. No handle ends up stored under more than one capability
// because every capability resolves its own logical name.
func resolveCapabilities(ctx Context) capTable {
	var t capTable
	for c := capability(0); c < capCount; c++ {
		t[c] = lookupExtension(ctx, extensionNames[c])
	}
	return t
}

// has reports whether the capability resolved to a handle.
func (t *capTable) has(c capability) bool {
	return t[c] != nil
}

// handle is the generic accessor for a capability's native handle,
// nil when unsupported.
func (t *capTable) handle(c capability) Handle {
	if c < 0 || c >= capCount {
		return nil
	}
	return t[c]
}
