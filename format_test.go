// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx_test

import (
	"testing"

	"github.com/devblok/gfx"
)

func TestDepthStencilFormat(t *testing.T) {
	tests := []struct {
		depth, stencil int
		want           gfx.Format
	}{
		{24, 8, gfx.FormatD24S8},
		{24, 0, gfx.FormatD24},
		{16, 8, gfx.FormatD16S8},
		{16, 0, gfx.FormatD16},
		{32, 8, gfx.FormatD24S8},
		{32, 0, gfx.FormatD24},
		{0, 0, gfx.FormatD16},
	}
	for _, tt := range tests {
		if got := gfx.DepthStencilFormat(tt.depth, tt.stencil); got != tt.want {
			t.Errorf("DepthStencilFormat(%d, %d) = %d, want %d", tt.depth, tt.stencil, got, tt.want)
		}
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		format        gfx.Format
		width, height uint32
		want          uint32
	}{
		{gfx.FormatRGBA8, 4, 4, 64},
		{gfx.FormatRGB8, 3, 3, 27},
		{gfx.FormatRGBA32F, 2, 2, 64},
		{gfx.FormatETC1RGB8, 8, 8, 32},
		{gfx.FormatETC1RGB8, 5, 5, 32}, // rounds up to 2x2 blocks
		{gfx.FormatDXT5, 4, 4, 16},
		{gfx.FormatASTC4x4, 4, 4, 16},
		{gfx.FormatPVRTC4BPPRGBA, 4, 4, 32}, // minimum two blocks per axis
		{gfx.FormatPVRTC4BPPRGBA, 16, 16, 128},
		{gfx.FormatUnknown, 4, 4, 0},
	}
	for _, tt := range tests {
		if got := tt.format.Size(tt.width, tt.height); got != tt.want {
			t.Errorf("format %d size(%d, %d) = %d, want %d", tt.format, tt.width, tt.height, got, tt.want)
		}
	}
}

func TestFormatAspects(t *testing.T) {
	if !gfx.FormatD24S8.HasDepth() || !gfx.FormatD24S8.HasStencil() {
		t.Error("D24S8 should carry both aspects")
	}
	if !gfx.FormatD24.HasDepth() || gfx.FormatD24.HasStencil() {
		t.Error("D24 should carry only depth")
	}
	if gfx.FormatRGBA8.HasDepth() || gfx.FormatRGBA8.IsCompressed() {
		t.Error("RGBA8 is a plain color format")
	}
	if !gfx.FormatETC2RGBA8.IsCompressed() {
		t.Error("ETC2 is compressed")
	}
}

func TestTextureTypeLayerCount(t *testing.T) {
	if gfx.TextureType2D.LayerCount() != 1 {
		t.Error("2D textures have one layer")
	}
	if gfx.TextureTypeCube.LayerCount() != 6 {
		t.Error("cube textures have six faces")
	}
}
