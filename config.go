// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

// DeviceConfig is used to configure device initialisation.
type DeviceConfig struct {
	// Surface is the backend-specific target surface handle, a
	// canvas element for the WebGL backend.
	Surface interface{}

	// Alpha requests an alpha channel on the default framebuffer.
	Alpha bool

	// Antialias requests a multisampled default framebuffer.
	Antialias bool

	// PremultipliedAlpha marks the drawing buffer contents as
	// premultiplied when composited.
	PremultipliedAlpha bool

	// PixelRatio scales logical to native surface pixels.
	PixelRatio float32

	// Width and Height are the requested logical surface size.
	Width  uint32
	Height uint32

	// NativeWidth and NativeHeight override the native resolution.
	// Zero means derive from Width/Height and PixelRatio.
	NativeWidth  uint32
	NativeHeight uint32

	// BindingMappings remaps descriptor-set binding slots onto the
	// backend's flat binding model.
	BindingMappings BindingMappingInfo
}

// BindingMappingInfo remaps (set, binding) pairs of the descriptor
// binding model onto flat per-type binding indices.
type BindingMappingInfo struct {
	BufferOffsets  []int
	SamplerOffsets []int
	FlexibleSet    int
}

// QueueConfig configures a command queue.
type QueueConfig struct {
	Name string
}

// BufferConfig configures a buffer resource.
type BufferConfig struct {
	Usage  BufferUsage
	Memory MemoryUsage
	Size   uint32
	Stride uint32
}

// TextureConfig configures a texture resource.
type TextureConfig struct {
	Type      TextureType
	Usage     TextureUsage
	Format    Format
	Width     uint32
	Height    uint32
	MipLevels uint32
}

// SamplerConfig configures a sampler resource.
type SamplerConfig struct {
	MinFilter     Filter
	MagFilter     Filter
	MipFilter     Filter
	AddressU      Address
	AddressV      Address
	AddressW      Address
	MaxAnisotropy uint32
}

// ShaderStage pairs a pipeline stage with its source.
type ShaderStage struct {
	Type   ShaderStageType
	Source string
}

// ShaderConfig configures a shader resource.
type ShaderConfig struct {
	Name   string
	Stages []ShaderStage
}

// Attribute describes one vertex input attribute.
type Attribute struct {
	Name         string
	Format       Format
	Stream       uint32
	IsNormalized bool
	IsInstanced  bool
}

// InputAssemblerConfig configures an input assembler.
type InputAssemblerConfig struct {
	Attributes    []Attribute
	VertexBuffers []Buffer
	IndexBuffer   Buffer
}

// ColorAttachment describes one color attachment of a render pass.
type ColorAttachment struct {
	Format  Format
	LoadOp  LoadOp
	StoreOp StoreOp
}

// DepthStencilAttachment describes the depth-stencil attachment of a
// render pass.
type DepthStencilAttachment struct {
	Format         Format
	DepthLoadOp    LoadOp
	DepthStoreOp   StoreOp
	StencilLoadOp  LoadOp
	StencilStoreOp StoreOp
}

// RenderPassConfig configures a render pass.
type RenderPassConfig struct {
	ColorAttachments []ColorAttachment
	DepthStencil     *DepthStencilAttachment
}

// FramebufferConfig configures a framebuffer. A config without
// attachments denotes the default framebuffer of the surface.
type FramebufferConfig struct {
	RenderPass          RenderPass
	ColorTextures       []Texture
	DepthStencilTexture Texture
}

// DescriptorType selects what a descriptor-set binding holds.
type DescriptorType int

// Descriptor binding kinds.
const (
	DescriptorUniformBuffer DescriptorType = iota
	DescriptorSampledTexture
)

// DescriptorBinding describes one binding slot of a set layout.
type DescriptorBinding struct {
	Binding uint32
	Type    DescriptorType
	Count   uint32
	Stages  []ShaderStageType
}

// DescriptorSetLayoutConfig configures a descriptor-set layout.
type DescriptorSetLayoutConfig struct {
	Bindings []DescriptorBinding
}

// DescriptorSetConfig configures a descriptor set.
type DescriptorSetConfig struct {
	Layout DescriptorSetLayout
}

// PipelineLayoutConfig configures a pipeline layout.
type PipelineLayoutConfig struct {
	SetLayouts []DescriptorSetLayout
}

// DepthStencilState configures depth and stencil testing of a
// pipeline state.
type DepthStencilState struct {
	DepthTest   bool
	DepthWrite  bool
	DepthFunc   ComparisonFunc
	StencilTest bool
	StencilFunc ComparisonFunc
	StencilRef  uint32
	StencilMask uint32
	FailOp      StencilOp
	ZFailOp     StencilOp
	PassOp      StencilOp
}

// BlendState configures blending of a pipeline state.
type BlendState struct {
	Blend           bool
	AlphaToCoverage bool
	SrcFactor       BlendFactor
	DstFactor       BlendFactor
	Op              BlendOp
	SrcAlphaFactor  BlendFactor
	DstAlphaFactor  BlendFactor
	AlphaOp         BlendOp
}

// RasterizerState configures primitive rasterization of a pipeline
// state.
type RasterizerState struct {
	CullMode       CullMode
	FrontCCW       bool
	DepthBias      float32
	DepthBiasSlope float32
}

// PipelineStateConfig configures a pipeline state object.
type PipelineStateConfig struct {
	Shader       Shader
	Layout       PipelineLayout
	RenderPass   RenderPass
	InputState   []Attribute
	Rasterizer   RasterizerState
	DepthStencil DepthStencilState
	Blend        BlendState
}

// CommandBufferConfig configures a command buffer. Type selects
// between the primary and secondary implementations.
type CommandBufferConfig struct {
	Queue Queue
	Type  CommandBufferType
}

// FenceConfig configures a fence.
type FenceConfig struct {
	Signalled bool
}
