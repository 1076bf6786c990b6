// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

// TextureType selects the dimensionality of a texture resource.
type TextureType int

// Texture dimensionalities supported by the API.
const (
	TextureType2D TextureType = iota
	TextureTypeCube
)

// LayerCount returns the number of array layers implied by the type,
// 6 faces for a cube texture and 1 for everything else.
func (t TextureType) LayerCount() uint32 {
	if t == TextureTypeCube {
		return 6
	}
	return 1
}

// TextureUsage describes what a texture will be used for.
type TextureUsage int

// Texture usages.
const (
	TextureUsageSampled TextureUsage = iota
	TextureUsageColorAttachment
	TextureUsageDepthStencilAttachment
)

// BufferUsage describes what a buffer will be bound as.
type BufferUsage int

// Buffer usages.
const (
	BufferUsageVertex BufferUsage = iota
	BufferUsageIndex
	BufferUsageUniform
	BufferUsageTransferSrc
)

// MemoryUsage hints where buffer memory should live and how often it
// is rewritten.
type MemoryUsage int

// Memory usage hints.
const (
	MemoryUsageStatic MemoryUsage = iota
	MemoryUsageDynamic
)

// ShaderStageType identifies a programmable pipeline stage.
type ShaderStageType int

// Shader stages.
const (
	VertexStage ShaderStageType = iota
	FragmentStage
)

// Filter selects a texture sampling filter.
type Filter int

// Sampling filters.
const (
	FilterNearest Filter = iota
	FilterLinear
)

// Address selects a texture wrap mode.
type Address int

// Wrap modes.
const (
	AddressClamp Address = iota
	AddressRepeat
	AddressMirror
)

// ComparisonFunc selects a depth or stencil comparison.
type ComparisonFunc int

// Comparison functions, matching the native enum ordering.
const (
	ComparisonNever ComparisonFunc = iota
	ComparisonLess
	ComparisonEqual
	ComparisonLessEqual
	ComparisonGreater
	ComparisonNotEqual
	ComparisonGreaterEqual
	ComparisonAlways
)

// StencilOp selects the action taken on a stencil test result.
type StencilOp int

// Stencil operations.
const (
	StencilOpKeep StencilOp = iota
	StencilOpZero
	StencilOpReplace
	StencilOpIncr
	StencilOpDecr
	StencilOpInvert
)

// BlendFactor selects a blending coefficient.
type BlendFactor int

// Blend factors.
const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcAlpha
	BlendDstAlpha
	BlendOneMinusSrcAlpha
	BlendOneMinusDstAlpha
)

// BlendOp selects a blending equation.
type BlendOp int

// Blend equations.
const (
	BlendOpAdd BlendOp = iota
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax
)

// CullMode selects which primitive faces are discarded.
type CullMode int

// Cull modes.
const (
	CullNone CullMode = iota
	CullFront
	CullBack
)

// LoadOp describes what happens to an attachment when a render pass
// begins.
type LoadOp int

// Attachment load operations.
const (
	LoadOpLoad LoadOp = iota
	LoadOpClear
	LoadOpDiscard
)

// StoreOp describes what happens to an attachment when a render pass
// ends.
type StoreOp int

// Attachment store operations.
const (
	StoreOpStore StoreOp = iota
	StoreOpDiscard
)

// CommandBufferType distinguishes directly submittable command
// buffers from ones replayed out of another command buffer.
type CommandBufferType int

// Command buffer kinds.
const (
	CommandBufferPrimary CommandBufferType = iota
	CommandBufferSecondary
)

// Offset is a 3D offset into a texture resource, in texels.
type Offset struct {
	X, Y, Z int32
}

// Extent is a 3D extent of a texture region, in texels.
type Extent struct {
	Width, Height, Depth uint32
}

// TextureSubres addresses one mip level and a contiguous range of
// array layers of a texture.
type TextureSubres struct {
	MipLevel   uint32
	BaseLayer  uint32
	LayerCount uint32
}

// BufferTextureCopy describes one region of a host-to-texture or
// texture-to-host transfer. Regions are applied in list order.
type BufferTextureCopy struct {
	BuffOffset uint32
	BuffStride uint32
	TexOffset  Offset
	TexExtent  Extent
	TexSubres  TextureSubres
}

// Viewport describes the active viewport rectangle and depth range.
type Viewport struct {
	Left, Top     int32
	Width, Height uint32
	MinDepth      float32
	MaxDepth      float32
}
