// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

import (
	"fmt"

	"github.com/devblok/gfx"
)

// commandRecorder carries the recording state shared by both command
// buffer kinds. State changes are recorded as closures and replayed
// in order when the queue submits the buffer.
type commandRecorder struct {
	device    *Device
	queue     *Queue
	typ       gfx.CommandBufferType
	recording bool
	stats     gfx.FrameStats
	ops       []func()
}

func (r *commandRecorder) recorder() *commandRecorder { return r }

func (r *commandRecorder) begin() {
	r.recording = true
	r.stats = gfx.FrameStats{}
	r.ops = nil
}

func (r *commandRecorder) end() {
	r.recording = false
}

func (r *commandRecorder) bindPipelineState(ps gfx.PipelineState) {
	if !r.recording {
		return
	}
	state, ok := ps.(*PipelineState)
	if !ok || state.device != r.device {
		return
	}
	r.ops = append(r.ops, state.bind)
}

func (r *commandRecorder) setViewport(x, y, width, height int) {
	if !r.recording {
		return
	}
	d := r.device
	r.ops = append(r.ops, func() {
		d.cache.setViewport(d.ctx, x, y, width, height)
	})
}

func (r *commandRecorder) draw(ia gfx.InputAssembler, instanceCount uint32) {
	if !r.recording || ia == nil {
		return
	}
	count := ia.IndexCount()
	if count == 0 {
		count = ia.VertexCount()
	}
	instances := instanceCount
	if instances == 0 {
		instances = 1
	}
	r.stats.DrawCalls++
	r.stats.Instances += instanceCount
	r.stats.Triangles += count / 3 * instances
}

// PrimaryCommandBuffer implements gfx.CommandBuffer for direct queue
// submission.
type PrimaryCommandBuffer struct {
	commandRecorder
}

// SecondaryCommandBuffer implements gfx.CommandBuffer for replay out
// of a primary command buffer.
type SecondaryCommandBuffer struct {
	commandRecorder
}

func (d *Device) newCommandBuffer(cfg gfx.CommandBufferConfig) (gfx.CommandBuffer, error) {
	queue, _ := cfg.Queue.(*Queue)
	if queue == nil {
		queue = d.queue
	}
	if queue == nil {
		return nil, fmt.Errorf("%w: command buffer needs a queue", gfx.ErrResourceInitialisation)
	}
	rec := commandRecorder{device: d, queue: queue, typ: cfg.Type}
	switch cfg.Type {
	case gfx.CommandBufferPrimary:
		return &PrimaryCommandBuffer{commandRecorder: rec}, nil
	case gfx.CommandBufferSecondary:
		return &SecondaryCommandBuffer{commandRecorder: rec}, nil
	default:
		return nil, fmt.Errorf("%w: unknown command buffer type %d", gfx.ErrResourceInitialisation, cfg.Type)
	}
}

// Type implements gfx.CommandBuffer.
func (c *PrimaryCommandBuffer) Type() gfx.CommandBufferType { return gfx.CommandBufferPrimary }

// Begin implements gfx.CommandBuffer.
func (c *PrimaryCommandBuffer) Begin() { c.begin() }

// End implements gfx.CommandBuffer.
func (c *PrimaryCommandBuffer) End() { c.end() }

// BindPipelineState implements gfx.CommandBuffer.
func (c *PrimaryCommandBuffer) BindPipelineState(ps gfx.PipelineState) {
	c.bindPipelineState(ps)
}

// SetViewport implements gfx.CommandBuffer.
func (c *PrimaryCommandBuffer) SetViewport(x, y, width, height int) {
	c.setViewport(x, y, width, height)
}

// Draw implements gfx.CommandBuffer.
func (c *PrimaryCommandBuffer) Draw(ia gfx.InputAssembler, instanceCount uint32) {
	c.draw(ia, instanceCount)
}

// Execute implements gfx.CommandBuffer, folding the recordings of
// secondary buffers into this one.
func (c *PrimaryCommandBuffer) Execute(buffers ...gfx.CommandBuffer) error {
	if !c.recording {
		return fmt.Errorf("%w: execute outside a recording", gfx.ErrInvalidConfig)
	}
	for _, buf := range buffers {
		sec, ok := buf.(*SecondaryCommandBuffer)
		if !ok {
			return fmt.Errorf("%w: only secondary command buffers can be executed", gfx.ErrInvalidConfig)
		}
		if sec.recording {
			return fmt.Errorf("%w: secondary command buffer still recording", gfx.ErrInvalidConfig)
		}
		c.ops = append(c.ops, sec.ops...)
		c.stats.DrawCalls += sec.stats.DrawCalls
		c.stats.Instances += sec.stats.Instances
		c.stats.Triangles += sec.stats.Triangles
	}
	return nil
}

// Stats implements gfx.CommandBuffer.
func (c *PrimaryCommandBuffer) Stats() gfx.FrameStats { return c.stats }

// Destroy implements gfx.CommandBuffer.
func (c *PrimaryCommandBuffer) Destroy() {
	c.stats = gfx.FrameStats{}
	c.ops = nil
}

// Type implements gfx.CommandBuffer.
func (c *SecondaryCommandBuffer) Type() gfx.CommandBufferType { return gfx.CommandBufferSecondary }

// Begin implements gfx.CommandBuffer.
func (c *SecondaryCommandBuffer) Begin() { c.begin() }

// End implements gfx.CommandBuffer.
func (c *SecondaryCommandBuffer) End() { c.end() }

// BindPipelineState implements gfx.CommandBuffer.
func (c *SecondaryCommandBuffer) BindPipelineState(ps gfx.PipelineState) {
	c.bindPipelineState(ps)
}

// SetViewport implements gfx.CommandBuffer.
func (c *SecondaryCommandBuffer) SetViewport(x, y, width, height int) {
	c.setViewport(x, y, width, height)
}

// Draw implements gfx.CommandBuffer.
func (c *SecondaryCommandBuffer) Draw(ia gfx.InputAssembler, instanceCount uint32) {
	c.draw(ia, instanceCount)
}

// Execute implements gfx.CommandBuffer. Secondary buffers cannot
// replay other buffers.
func (c *SecondaryCommandBuffer) Execute(buffers ...gfx.CommandBuffer) error {
	return fmt.Errorf("%w: secondary command buffers cannot execute others", gfx.ErrInvalidConfig)
}

// Stats implements gfx.CommandBuffer.
func (c *SecondaryCommandBuffer) Stats() gfx.FrameStats { return c.stats }

// Destroy implements gfx.CommandBuffer.
func (c *SecondaryCommandBuffer) Destroy() {
	c.stats = gfx.FrameStats{}
	c.ops = nil
}
