// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

import "testing"

func fullCapTable(ctx *fakeContext) capTable {
	for _, name := range extensionNames {
		ctx.addExtension(name)
	}
	return resolveCapabilities(ctx)
}

func TestQuirkUCBrokenInstancing(t *testing.T) {
	caps := fullCapTable(newFakeContext())
	applyQuirks(Platform{OS: "android", Browser: "ucbrowser"}, &caps)
	if caps.has(capInstancedArrays) {
		t.Error("instancing should be suppressed on the UC browser")
	}

	caps = fullCapTable(newFakeContext())
	applyQuirks(Platform{OS: "android", Browser: "chrome"}, &caps)
	if !caps.has(capInstancedArrays) {
		t.Error("instancing should survive on other browsers")
	}
}

func TestQuirkIOSWeChatDepthTexture(t *testing.T) {
	caps := fullCapTable(newFakeContext())
	applyQuirks(Platform{OS: "ios", AppRuntime: "wechatgame"}, &caps)
	if caps.has(capDepthTexture) {
		t.Error("depth texture should be suppressed inside the iOS WeChat runtime")
	}

	caps = fullCapTable(newFakeContext())
	applyQuirks(Platform{OS: "android", AppRuntime: "wechatgame"}, &caps)
	if !caps.has(capDepthTexture) {
		t.Error("depth texture should survive outside iOS")
	}
}

func TestQuirkWeChatVAORevision(t *testing.T) {
	revision := func(rev string, ok bool) func(string) (string, bool) {
		return func(string) (string, bool) { return rev, ok }
	}
	tests := []struct {
		name     string
		platform Platform
		want     bool
	}{
		{"plain browser keeps vao", Platform{Browser: "chrome"}, true},
		{"wechat without query api", Platform{AppRuntime: "wechatgame"}, false},
		{"wechat unknown revision", Platform{AppRuntime: "wechatgame", FeatureRevision: revision("", false)}, false},
		{"wechat old revision", Platform{AppRuntime: "wechatgame", FeatureRevision: revision("2.15.9", true)}, false},
		{"wechat minimum revision", Platform{AppRuntime: "wechatgame", FeatureRevision: revision("2.16.0", true)}, true},
		{"wechat newer revision", Platform{AppRuntime: "wechatgame", FeatureRevision: revision("3.0.1", true)}, true},
	}
	for _, tt := range tests {
		caps := fullCapTable(newFakeContext())
		applyQuirks(tt.platform, &caps)
		if caps.has(capVertexArrayObject) != tt.want {
			t.Errorf("%s: vao support = %v, want %v", tt.name, caps.has(capVertexArrayObject), tt.want)
		}
	}
}

func TestQuirkBehaviouralFlags(t *testing.T) {
	caps := fullCapTable(newFakeContext())
	o := applyQuirks(Platform{OS: "ios", AppRuntime: "wechatgame"}, &caps)
	if !o.deferShaderDestroy {
		t.Error("iOS WeChat should defer shader destruction")
	}
	if !o.noCompressedSubUpload {
		t.Error("WeChat should disallow compressed sub-uploads")
	}

	caps = fullCapTable(newFakeContext())
	o = applyQuirks(Platform{OS: "macos", AppRuntime: "wechatgame"}, &caps)
	if o.deferShaderDestroy {
		t.Error("shader destruction deferral is iOS only")
	}
	if o.depthBits != 24 {
		t.Errorf("macOS WeChat should override depth bits to 24, got %d", o.depthBits)
	}

	caps = fullCapTable(newFakeContext())
	o = applyQuirks(Platform{OS: "windows", Browser: "chrome"}, &caps)
	if o.deferShaderDestroy || o.noCompressedSubUpload || o.depthBits != 0 {
		t.Error("plain browser should need no behavioural workarounds")
	}
}

func TestApplyQuirksIdempotent(t *testing.T) {
	platform := Platform{OS: "ios", AppRuntime: "wechatgame", Browser: "ucbrowser"}

	caps := fullCapTable(newFakeContext())
	first := applyQuirks(platform, &caps)
	snapshot := caps

	second := applyQuirks(platform, &caps)
	if caps != snapshot {
		t.Error("second application changed the capability table")
	}
	if first != second {
		t.Error("second application produced different overrides")
	}
}

func TestVersionLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"2.15.9", "2.16.0", true},
		{"2.16.0", "2.16.0", false},
		{"2.16.1", "2.16.0", false},
		{"2.16", "2.16.0", false},
		{"2", "2.16.0", true},
		{"3", "2.16.0", false},
		{"2.16.0.1", "2.16.0", false},
		{"junk", "2.16.0", true},
	}
	for _, tt := range tests {
		if got := versionLess(tt.a, tt.b); got != tt.want {
			t.Errorf("versionLess(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
