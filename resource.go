// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

// Queue describes a command queue that command buffers are submitted
// to. Each device owns one default graphics queue; additional queues
// can be created through the factory.
type Queue interface {
	Destroyable

	// Submit executes the given primary command buffers in order
	// and folds their counters into the queue's per-frame
	// statistics.
	Submit(buffers ...CommandBuffer) error

	// SubmitWithFence is Submit followed by signalling the fence
	// once the submitted work completes.
	SubmitWithFence(fence Fence, buffers ...CommandBuffer) error

	// Stats returns the counters accumulated since the last Clear.
	Stats() FrameStats

	// Clear resets the per-frame counters. The device calls this
	// from Present after collecting the statistics.
	Clear()
}

// Buffer describes a linear block of device-visible memory.
type Buffer interface {
	Destroyable

	// Update replaces size bytes at offset with the given data.
	Update(data []byte, offset uint32) error

	Size() uint32
	Usage() BufferUsage
}

// Texture describes an image resource.
type Texture interface {
	Destroyable

	Type() TextureType
	Format() Format
	Width() uint32
	Height() uint32
	MipLevels() uint32
}

// Sampler describes how a texture is filtered and addressed.
type Sampler interface {
	Destroyable
}

// Shader describes a compiled and linked set of pipeline stages.
type Shader interface {
	Destroyable

	Name() string
}

// InputAssembler binds vertex and index buffers to vertex input
// attributes.
type InputAssembler interface {
	Destroyable

	VertexCount() uint32
	IndexCount() uint32
}

// RenderPass describes attachment load and store behaviour over one
// rendering pass.
type RenderPass interface {
	Destroyable
}

// Framebuffer describes a render target, either the surface default
// framebuffer or an offscreen set of texture attachments.
type Framebuffer interface {
	Destroyable

	// IsOffscreen reports whether the framebuffer renders into
	// texture attachments rather than the surface.
	IsOffscreen() bool
}

// DescriptorSetLayout describes the binding slots of a descriptor
// set.
type DescriptorSetLayout interface {
	Destroyable

	Bindings() []DescriptorBinding
}

// DescriptorSet holds concrete resources bound to the slots of a
// layout.
type DescriptorSet interface {
	Destroyable

	BindBuffer(binding uint32, buffer Buffer) error
	BindTexture(binding uint32, texture Texture) error
	BindSampler(binding uint32, sampler Sampler) error

	// Update flushes pending slot writes so the set can be bound.
	Update()
}

// PipelineLayout aggregates the set layouts visible to a pipeline.
type PipelineLayout interface {
	Destroyable
}

// PipelineState bakes shader, vertex input, fixed-function and
// attachment state into one bindable object.
type PipelineState interface {
	Destroyable
}

// CommandBuffer records work for submission to a queue. Whether the
// buffer is primary or secondary is fixed at creation.
type CommandBuffer interface {
	Destroyable

	Type() CommandBufferType

	// Begin starts a new recording, discarding prior contents.
	Begin()

	// End finishes the recording.
	End()

	// BindPipelineState records a bind of the pipeline's baked state.
	// Recorded state changes replay in order on submission.
	BindPipelineState(ps PipelineState)

	// SetViewport records a viewport change for subsequent draws.
	SetViewport(x, y, width, height int)

	// Draw records one draw of the input assembler's geometry.
	Draw(ia InputAssembler, instanceCount uint32)

	// Execute replays secondary command buffers into this one.
	// Only primary command buffers accept it.
	Execute(buffers ...CommandBuffer) error

	// Stats returns the draw statistics of the last recording.
	Stats() FrameStats
}

// Fence is a synchronisation primitive signalled by queue
// completion. The single-threaded backends signal it on submit.
type Fence interface {
	Destroyable

	Signalled() bool
	Reset()
}
