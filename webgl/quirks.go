// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

import (
	"strconv"
	"strings"
)

// Platform is the identity of the hosting OS, browser and app
// runtime, as reported by the platform layer. It is passed into
// device initialisation so every workaround rule stays a pure
// function of the identity instead of a compile-time branch.
type Platform struct {
	// OS is the normalized operating system name: "ios",
	// "android", "macos", "windows", "linux".
	OS string

	// OSVersion is the dotted OS version string, "12.1.4".
	OSVersion string

	// Browser is the normalized browser engine name: "chrome",
	// "safari", "firefox", "ucbrowser".
	Browser string

	// AppRuntime names the embedding app runtime, "wechatgame" for
	// the WeChat mini-game container. Empty for a plain browser.
	AppRuntime string

	// FeatureRevision queries the hosting runtime for the revision
	// of a named feature. Implementations back it with whatever
	// runtime query API exists; nil means no such API.
	FeatureRevision func(feature string) (revision string, ok bool)
}

// minVAORevision is the lowest app-runtime revision whose vertex
// array object binding is trusted.
const minVAORevision = "2.16.0"

// quirkOverrides is the combined effect of the quirk table: a set of
// capabilities forced unsupported plus behavioural flags consumed by
// later resource paths.
type quirkOverrides struct {
	disabled [capCount]bool

	// deferShaderDestroy postpones native shader deletion to the
	// next frame boundary; eager deletion crashes some runtimes.
	deferShaderDestroy bool

	// noCompressedSubUpload forces full re-uploads instead of
	// sub-region uploads for compressed textures.
	noCompressedSubUpload bool

	// depthBits, when non-zero, replaces the depth bit count
	// queried off the context.
	depthBits int
}

// quirkRule suppresses one capability or sets one behavioural flag
// when its platform predicate holds. Rules are independent: no
// predicate inspects another rule's effect, so application order
// does not matter and applying the table twice is a no-op the second
// time.
type quirkRule struct {
	name  string
	apply func(Platform, *quirkOverrides)
}

var quirkTable = []quirkRule{
	{
		// The UC browser engine exposes ANGLE_instanced_arrays
		// but draws nothing through it.
		name: "uc-broken-instancing",
		apply: func(p Platform, o *quirkOverrides) {
			if p.Browser == "ucbrowser" {
				o.disabled[capInstancedArrays] = true
			}
		},
	},
	{
		// Depth textures sample garbage inside the iOS WeChat
		// game container.
		name: "ios-wechat-depth-texture",
		apply: func(p Platform, o *quirkOverrides) {
			if p.OS == "ios" && p.AppRuntime == "wechatgame" {
				o.disabled[capDepthTexture] = true
			}
		},
	},
	{
		// The WeChat runtime rebinds vertex array objects
		// incorrectly before revision 2.16.0. When the runtime
		// cannot even report a revision, assume the worst.
		name: "wechat-vao-revision",
		apply: func(p Platform, o *quirkOverrides) {
			if p.AppRuntime != "wechatgame" {
				return
			}
			if p.FeatureRevision == nil {
				o.disabled[capVertexArrayObject] = true
				return
			}
			rev, ok := p.FeatureRevision("vao")
			if !ok || versionLess(rev, minVAORevision) {
				o.disabled[capVertexArrayObject] = true
			}
		},
	},
	{
		// Deleting a shader right after program linking corrupts
		// the iOS WeChat GL state; destruction is deferred to the
		// frame boundary there.
		name: "ios-wechat-defer-shader-destroy",
		apply: func(p Platform, o *quirkOverrides) {
			if p.OS == "ios" && p.AppRuntime == "wechatgame" {
				o.deferShaderDestroy = true
			}
		},
	},
	{
		// compressedTexSubImage2D is non-conformant in the WeChat
		// runtime; the texture upload path re-uploads whole levels
		// instead.
		name: "wechat-no-compressed-sub-upload",
		apply: func(p Platform, o *quirkOverrides) {
			if p.AppRuntime == "wechatgame" {
				o.noCompressedSubUpload = true
			}
		},
	},
	{
		// The macOS WeChat devtools report 16 depth bits for a 24
		// bit default depth buffer.
		name: "mac-wechat-depth-bits",
		apply: func(p Platform, o *quirkOverrides) {
			if p.OS == "macos" && p.AppRuntime == "wechatgame" {
				o.depthBits = 24
			}
		},
	},
}

// applyQuirks runs every rule against the platform identity and
// strips the suppressed capabilities from the table. Called once,
// after raw probing and before the feature-flag vector is built.
func applyQuirks(p Platform, caps *capTable) quirkOverrides {
	var o quirkOverrides
	for _, rule := range quirkTable {
		rule.apply(p, &o)
	}
	for c := capability(0); c < capCount; c++ {
		if o.disabled[c] {
			caps[c] = nil
		}
	}
	return o
}

// versionLess compares two dotted version strings numerically per
// segment. A missing segment counts as zero; non-numeric segments
// compare as zero.
func versionLess(a, b string) bool {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		var an, bn int
		if i < len(as) {
			an, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bn, _ = strconv.Atoi(bs[i])
		}
		if an != bn {
			return an < bn
		}
	}
	return false
}
