// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

import "testing"

func TestLookupExtensionUnprefixedWins(t *testing.T) {
	ctx := newFakeContext()
	ctx.addExtension("WEBKIT_OES_texture_float")
	ctx.addExtension("OES_texture_float")

	got := lookupExtension(ctx, "OES_texture_float")
	if got != ctx.extensions["OES_texture_float"] {
		t.Error("expected the unprefixed extension handle to win")
	}
}

func TestLookupExtensionPrefixFallback(t *testing.T) {
	ctx := newFakeContext()
	ctx.addExtension("WEBKIT_WEBGL_depth_texture")

	got := lookupExtension(ctx, "WEBGL_depth_texture")
	if got != ctx.extensions["WEBKIT_WEBGL_depth_texture"] {
		t.Error("expected fallback to the WEBKIT_ prefixed handle")
	}

	ctx = newFakeContext()
	ctx.addExtension("MOZ_WEBGL_depth_texture")
	got = lookupExtension(ctx, "WEBGL_depth_texture")
	if got != ctx.extensions["MOZ_WEBGL_depth_texture"] {
		t.Error("expected fallback to the MOZ_ prefixed handle")
	}
}

func TestLookupExtensionMissing(t *testing.T) {
	ctx := newFakeContext()
	if got := lookupExtension(ctx, "OES_vertex_array_object"); got != nil {
		t.Errorf("expected nil for a missing extension, got %v", got)
	}
}

func TestResolveCapabilities(t *testing.T) {
	ctx := newFakeContext()
	ctx.addExtension("OES_texture_float")
	ctx.addExtension("ANGLE_instanced_arrays")
	ctx.addExtension("MOZ_EXT_blend_minmax")

	caps := resolveCapabilities(ctx)

	if !caps.has(capTextureFloat) {
		t.Error("texture float should resolve")
	}
	if !caps.has(capInstancedArrays) {
		t.Error("instanced arrays should resolve")
	}
	if !caps.has(capBlendMinMax) {
		t.Error("blend minmax should resolve through the MOZ_ prefix")
	}
	if caps.has(capDepthTexture) {
		t.Error("depth texture should stay unresolved")
	}
	if caps.handle(capTextureFloat) == nil {
		t.Error("resolved capability should expose its handle")
	}
	if caps.handle(capCount) != nil {
		t.Error("out of range capability should expose no handle")
	}
}
