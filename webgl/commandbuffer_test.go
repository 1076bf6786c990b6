// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

import (
	"testing"

	"github.com/devblok/gfx"
)

func testPrimary(t *testing.T, d *Device) gfx.CommandBuffer {
	t.Helper()
	cb, err := d.CreateCommandBuffer(gfx.CommandBufferConfig{Type: gfx.CommandBufferPrimary})
	if err != nil {
		t.Fatal(err)
	}
	return cb
}

func TestSubmitReplaysPipelineState(t *testing.T) {
	d, ctx := newTestDevice(t, Platform{}, nil)
	pipeline, err := d.CreatePipelineState(gfx.PipelineStateConfig{
		Shader:     testShader(t, d),
		Rasterizer: gfx.RasterizerState{CullMode: gfx.CullFront},
		Blend:      gfx.BlendState{Blend: true},
	})
	if err != nil {
		t.Fatal(err)
	}

	cb := testPrimary(t, d)
	cb.Begin()
	cb.BindPipelineState(pipeline)
	cb.End()
	if ctx.programBinds != 0 {
		t.Fatal("recording must not touch the context before submission")
	}
	if err := d.Queue().Submit(cb); err != nil {
		t.Fatal(err)
	}
	if ctx.programBinds != 1 || ctx.boundProgram == nil {
		t.Error("pipeline's program was not bound on submission")
	}
	if ctx.cullFace != FRONT {
		t.Error("cull mode was not replayed")
	}
	if !ctx.enabled[BLEND] {
		t.Error("blending was not enabled on replay")
	}
}

func TestSubmitElidesRedundantViewport(t *testing.T) {
	d, ctx := newTestDevice(t, Platform{}, nil)

	record := func(w, h int) gfx.CommandBuffer {
		cb := testPrimary(t, d)
		cb.Begin()
		cb.SetViewport(0, 0, w, h)
		cb.End()
		return cb
	}

	if err := d.Queue().Submit(record(64, 64)); err != nil {
		t.Fatal(err)
	}
	if ctx.viewportCalls != 1 || ctx.viewport != [4]int{0, 0, 64, 64} {
		t.Fatalf("viewport not applied, calls = %d", ctx.viewportCalls)
	}
	if err := d.Queue().Submit(record(64, 64)); err != nil {
		t.Fatal(err)
	}
	if ctx.viewportCalls != 1 {
		t.Error("unchanged viewport was re-issued")
	}
	if err := d.Queue().Submit(record(32, 32)); err != nil {
		t.Fatal(err)
	}
	if ctx.viewportCalls != 2 || ctx.viewport != [4]int{0, 0, 32, 32} {
		t.Error("changed viewport was not issued")
	}
}

func TestSecondaryStateReplaysThroughPrimary(t *testing.T) {
	d, ctx := newTestDevice(t, Platform{}, nil)

	sec, err := d.CreateCommandBuffer(gfx.CommandBufferConfig{Type: gfx.CommandBufferSecondary})
	if err != nil {
		t.Fatal(err)
	}
	sec.Begin()
	sec.SetViewport(0, 0, 128, 128)
	sec.End()

	cb := testPrimary(t, d)
	cb.Begin()
	if err := cb.Execute(sec); err != nil {
		t.Fatal(err)
	}
	cb.End()
	if err := d.Queue().Submit(cb); err != nil {
		t.Fatal(err)
	}
	if ctx.viewport != [4]int{0, 0, 128, 128} {
		t.Error("secondary recording did not replay through the primary")
	}
}

func TestStateRecordingOutsideBeginIgnored(t *testing.T) {
	d, ctx := newTestDevice(t, Platform{}, nil)
	pipeline, err := d.CreatePipelineState(gfx.PipelineStateConfig{Shader: testShader(t, d)})
	if err != nil {
		t.Fatal(err)
	}

	cb := testPrimary(t, d)
	cb.SetViewport(0, 0, 64, 64)
	cb.BindPipelineState(pipeline)
	cb.Begin()
	cb.End()
	if err := d.Queue().Submit(cb); err != nil {
		t.Fatal(err)
	}
	if ctx.viewportCalls != 0 || ctx.programBinds != 0 {
		t.Error("state recorded outside Begin/End must be dropped")
	}
}
