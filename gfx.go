// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfx defines a device-agnostic graphics API that concrete
// backends must implement. Upper engine layers issue resource and
// frame-lifecycle commands against these interfaces without knowing
// which native graphics API is present at runtime.
package gfx

import "image"

// Destroyable defines any item holding native resources that must be
// released exactly once by its owner.
type Destroyable interface {

	// Destroy releases the native resources held by the
	// implementing structure.
	Destroy()
}

// Device describes a graphics device bound to one native context.
// It is created with internal values set only, it needs to be
// initialised with Initialise() before use. The device is the sole
// factory for every other resource type, which guarantees each
// resource is associated with exactly one owning device.
type Device interface {
	Destroyable

	// Initialise establishes the native context, negotiates the
	// capability surface and applies the baseline pipeline state.
	// On failure the device remains safe to Destroy.
	Initialise(DeviceConfig) error

	// Resize updates the surface pixel dimensions. Idempotent when
	// called with unchanged dimensions; never reallocates resources.
	Resize(width, height uint32)

	// Acquire prepares the per-frame command allocator for reuse.
	// Must be called before recording begins each frame.
	Acquire()

	// Present collects per-frame statistics from the default queue
	// and resets them. Must be called exactly once per frame after
	// all submission.
	Present()

	CreateQueue(QueueConfig) (Queue, error)
	CreateBuffer(BufferConfig) (Buffer, error)
	CreateTexture(TextureConfig) (Texture, error)
	CreateSampler(SamplerConfig) (Sampler, error)
	CreateShader(ShaderConfig) (Shader, error)
	CreateInputAssembler(InputAssemblerConfig) (InputAssembler, error)
	CreateRenderPass(RenderPassConfig) (RenderPass, error)
	CreateFramebuffer(FramebufferConfig) (Framebuffer, error)
	CreateDescriptorSetLayout(DescriptorSetLayoutConfig) (DescriptorSetLayout, error)
	CreateDescriptorSet(DescriptorSetConfig) (DescriptorSet, error)
	CreatePipelineLayout(PipelineLayoutConfig) (PipelineLayout, error)
	CreatePipelineState(PipelineStateConfig) (PipelineState, error)
	CreateCommandBuffer(CommandBufferConfig) (CommandBuffer, error)
	CreateFence(FenceConfig) (Fence, error)

	// CopyBuffersToTexture uploads host memory into a texture,
	// applying the given regions in list order. When the target is
	// layered, buffers and regions must pair up one to one.
	CopyBuffersToTexture(buffers [][]byte, dst Texture, regions []BufferTextureCopy) error

	// CopyTexImagesToTexture uploads decoded images into a texture,
	// with the same region pairing rules as CopyBuffersToTexture.
	CopyTexImagesToTexture(images []image.Image, dst Texture, regions []BufferTextureCopy) error

	// CopyFramebufferToBuffer reads framebuffer pixels back into
	// host memory. The framebuffer binding active before the call is
	// restored once the read completes.
	CopyFramebufferToBuffer(src Framebuffer, dst []byte, regions []BufferTextureCopy) error

	// HasFeature reports whether the negotiated capability surface
	// allows relying on the given feature.
	HasFeature(Feature) bool

	// Queue returns the default graphics queue owned by the device.
	Queue() Queue

	Renderer() string
	Vendor() string
	Version() string

	Limits() DeviceLimits
	ColorFormat() Format
	DepthStencilFormat() Format

	Width() uint32
	Height() uint32
	NativeWidth() uint32
	NativeHeight() uint32

	// Stats returns the counters accumulated since the last Present.
	Stats() FrameStats
}

// DeviceLimits holds the static numeric limits queried from the
// native context during initialisation.
type DeviceLimits struct {
	MaxVertexAttributes       int
	MaxVertexUniformVectors   int
	MaxFragmentUniformVectors int
	MaxTextureUnits           int
	MaxVertexTextureUnits     int
	MaxTextureSize            int
	MaxCubeMapTextureSize     int
	DepthBits                 int
	StencilBits               int
}

// FrameStats holds the per-frame counters collected by Present.
type FrameStats struct {
	DrawCalls uint32
	Instances uint32
	Triangles uint32
}
