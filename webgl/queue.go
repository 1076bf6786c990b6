// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webgl

import (
	"fmt"

	"github.com/devblok/gfx"
)

// Queue implements gfx.Queue. Submission is synchronous; the queue's
// job in this backend is ordering and per-frame accounting.
type Queue struct {
	device *Device
	name   string

	stats gfx.FrameStats

	// command buffers retained since the last Acquire, so their
	// recordings stay valid until the frame boundary.
	retained []*commandRecorder
}

func (d *Device) newQueue(cfg gfx.QueueConfig) (*Queue, error) {
	return &Queue{device: d, name: cfg.Name}, nil
}

// Submit implements gfx.Queue.
func (q *Queue) Submit(buffers ...gfx.CommandBuffer) error {
	for _, buf := range buffers {
		cb, ok := buf.(interface{ recorder() *commandRecorder })
		if !ok {
			return fmt.Errorf("%w: command buffer does not belong to this backend", gfx.ErrInvalidConfig)
		}
		rec := cb.recorder()
		if rec.device != q.device {
			return fmt.Errorf("%w: command buffer belongs to another device", gfx.ErrInvalidConfig)
		}
		if rec.typ != gfx.CommandBufferPrimary {
			return fmt.Errorf("%w: only primary command buffers may be submitted", gfx.ErrInvalidConfig)
		}
		if rec.recording {
			return fmt.Errorf("%w: command buffer submitted while recording", gfx.ErrInvalidConfig)
		}
		// Replay the recorded state changes in order; the state
		// cache elides the ones already in effect.
		for _, op := range rec.ops {
			op()
		}
		q.stats.DrawCalls += rec.stats.DrawCalls
		q.stats.Instances += rec.stats.Instances
		q.stats.Triangles += rec.stats.Triangles
		q.retained = append(q.retained, rec)
	}
	return nil
}

// SubmitWithFence implements gfx.Queue. The backend executes
// synchronously, so the fence signals as soon as Submit returns.
func (q *Queue) SubmitWithFence(fence gfx.Fence, buffers ...gfx.CommandBuffer) error {
	if err := q.Submit(buffers...); err != nil {
		return err
	}
	if f, ok := fence.(*Fence); ok {
		f.signal()
	}
	return nil
}

// Stats implements gfx.Queue.
func (q *Queue) Stats() gfx.FrameStats { return q.stats }

// Clear implements gfx.Queue.
func (q *Queue) Clear() { q.stats = gfx.FrameStats{} }

// releaseAllocations drops the recordings retained from the previous
// frame. The device calls this from Acquire.
func (q *Queue) releaseAllocations() {
	for i := range q.retained {
		q.retained[i] = nil
	}
	q.retained = q.retained[:0]
}

// Destroy implements gfx.Queue.
func (q *Queue) Destroy() {
	q.retained = nil
	q.stats = gfx.FrameStats{}
}
