// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

// Package graphics defines the interface render code uses to talk to the
// graphics hardware. Keeping the render pipeline behind this interface means
// the interesting parts of the frame can be exercised in tests without a
// window or a live GL context; the opengl subpackage provides the real
// implementation.
package graphics

import (
	"unsafe"

	mgl "github.com/go-gl/mathgl/mgl32"
)

// Enum is a graphics API enumeration value. The constants below carry the
// OpenGL values so the opengl implementation can pass them straight through.
type Enum uint32

// Buffer is an opaque buffer object handle.
type Buffer uint32

// Texture is an opaque texture object handle.
type Texture uint32

// Sampler is an opaque sampler object handle.
type Sampler uint32

// FrameBuffer is an opaque framebuffer object handle.
type FrameBuffer uint32

// RenderBuffer is an opaque renderbuffer object handle.
type RenderBuffer uint32

// VertexArray is an opaque vertex array object handle.
type VertexArray uint32

// Shader is an opaque shader object handle.
type Shader uint32

// Program is an opaque linked shader program handle.
type Program uint32

const (
	FALSE = 0
	TRUE  = 1

	COLOR_BUFFER_BIT Enum = 0x00004000
	DEPTH_BUFFER_BIT Enum = 0x00000100

	POINTS    Enum = 0x0000
	TRIANGLES Enum = 0x0004

	UNSIGNED_BYTE Enum = 0x1401
	UNSIGNED_INT  Enum = 0x1405
	FLOAT         Enum = 0x1406

	DEPTH_TEST       Enum = 0x0B71
	CULL_FACE        Enum = 0x0B44
	MULTISAMPLE      Enum = 0x809D
	FRAMEBUFFER_SRGB Enum = 0x8DB9

	BACK   Enum = 0x0405
	LESS   Enum = 0x0201
	LEQUAL Enum = 0x0203

	FRONT_AND_BACK Enum = 0x0408
	LINE           Enum = 0x1B01
	FILL           Enum = 0x1B02

	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	UNIFORM_BUFFER       Enum = 0x8A11

	STATIC_DRAW  Enum = 0x88E4
	DYNAMIC_DRAW Enum = 0x88E8

	WRITE_ONLY Enum = 0x88B9

	TEXTURE0               Enum = 0x84C0
	TEXTURE_2D             Enum = 0x0DE1
	TEXTURE_2D_MULTISAMPLE Enum = 0x9100

	TEXTURE_MAG_FILTER     Enum = 0x2800
	TEXTURE_MIN_FILTER     Enum = 0x2801
	TEXTURE_WRAP_S         Enum = 0x2802
	TEXTURE_WRAP_T         Enum = 0x2803
	TEXTURE_MAX_ANISOTROPY Enum = 0x84FE

	NEAREST              Enum = 0x2600
	LINEAR               Enum = 0x2601
	LINEAR_MIPMAP_LINEAR Enum = 0x2703
	REPEAT               Enum = 0x2901
	CLAMP_TO_EDGE        Enum = 0x812F

	RGB          Enum = 0x1907
	RGBA         Enum = 0x1908
	RGBA8        Enum = 0x8058
	SRGB8_ALPHA8 Enum = 0x8C43
	RGB16F       Enum = 0x881B

	DEPTH_COMPONENT32F Enum = 0x8CAC

	FRAMEBUFFER      Enum = 0x8D40
	READ_FRAMEBUFFER Enum = 0x8CA8
	DRAW_FRAMEBUFFER Enum = 0x8CA9
	RENDERBUFFER     Enum = 0x8D41

	COLOR_ATTACHMENT0 Enum = 0x8CE0
	DEPTH_ATTACHMENT  Enum = 0x8D00

	FRAMEBUFFER_COMPLETE Enum = 0x8CD5

	VERTEX_SHADER   Enum = 0x8B31
	FRAGMENT_SHADER Enum = 0x8B30

	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82
	INFO_LOG_LENGTH Enum = 0x8B84

	MAX_UNIFORM_BLOCK_SIZE Enum = 0x8A30

	// INVALID_INDEX is returned by GetUniformBlockIndex for unknown blocks.
	INVALID_INDEX uint32 = 0xFFFFFFFF
)

// GraphicsProvider is the collection of graphics calls the render code is
// built on. Method shapes match the underlying API closely so that the
// opengl implementation stays a thin pass-through.
type GraphicsProvider interface {
	// global state
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Enable(capability Enum)
	Disable(capability Enum)
	CullFace(mode Enum)
	DepthFunc(fn Enum)
	DepthMask(flag bool)
	PolygonMode(face, mode Enum)
	PointSize(size float32)
	GetInteger(name Enum) int32

	// vertex arrays
	GenVertexArray() VertexArray
	BindVertexArray(vao VertexArray)
	DeleteVertexArray(vao VertexArray)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, ty Enum, normalized bool, stride int32, offset int)

	// buffer objects
	GenBuffer() Buffer
	BindBuffer(target Enum, b Buffer)
	BindBufferBase(target Enum, index uint32, b Buffer)
	BufferData(target Enum, size int, data unsafe.Pointer, usage Enum)
	BufferSubData(target Enum, offset, size int, data unsafe.Pointer)
	MapBuffer(target, access Enum) unsafe.Pointer
	UnmapBuffer(target Enum) bool
	DeleteBuffer(b Buffer)

	// textures and samplers
	ActiveTexture(unit Enum)
	GenTexture() Texture
	BindTexture(target Enum, t Texture)
	DeleteTexture(t Texture)
	TexImage2D(target Enum, level int32, internalFormat Enum, width, height, border int32, format, ty Enum, data unsafe.Pointer)
	TexImage2DMultisample(target Enum, samples int32, internalFormat Enum, width, height int32, fixedLocations bool)
	TexParameteri(target, pname Enum, param int32)
	GenerateMipmap(target Enum)
	GenSampler() Sampler
	BindSampler(unit uint32, s Sampler)
	SamplerParameteri(s Sampler, pname Enum, param int32)
	SamplerParameterf(s Sampler, pname Enum, param float32)
	DeleteSampler(s Sampler)

	// framebuffers
	GenFramebuffer() FrameBuffer
	BindFramebuffer(target Enum, fb FrameBuffer)
	DeleteFramebuffer(fb FrameBuffer)
	FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int32)
	GenRenderbuffer() RenderBuffer
	BindRenderbuffer(target Enum, rb RenderBuffer)
	RenderbufferStorage(target, internalFormat Enum, width, height int32)
	RenderbufferStorageMultisample(target Enum, samples int32, internalFormat Enum, width, height int32)
	FramebufferRenderbuffer(target, attachment, rbTarget Enum, rb RenderBuffer)
	DeleteRenderbuffer(rb RenderBuffer)
	CheckFramebufferStatus(target Enum) Enum
	DrawBuffers(bufs []Enum)
	BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int32, mask, filter Enum)

	// shaders and programs
	CreateShader(ty Enum) Shader
	ShaderSource(s Shader, source string)
	CompileShader(s Shader)
	GetShaderiv(s Shader, pname Enum) int32
	GetShaderInfoLog(s Shader) string
	DeleteShader(s Shader)
	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	GetProgramiv(p Program, pname Enum) int32
	GetProgramInfoLog(p Program) string
	UseProgram(p Program)
	DeleteProgram(p Program)
	GetUniformLocation(p Program, name string) int32
	GetUniformBlockIndex(p Program, name string) uint32
	GetUniformBlockDataSize(p Program, index uint32) int32
	UniformBlockBinding(p Program, index, binding uint32)
	Uniform1i(location, v int32)
	Uniform1f(location int32, v float32)
	Uniform3f(location int32, x, y, z float32)
	Uniform4f(location int32, x, y, z, w float32)
	UniformMatrix4fv(location int32, m mgl.Mat4)
	UniformMatrix4x3fv(location int32, m mgl.Mat4x3)

	// draw calls
	DrawArrays(mode Enum, first, count int32)
	DrawElements(mode Enum, count int32, ty Enum, offset int)
	DrawElementsInstanced(mode Enum, count int32, ty Enum, offset int, instanceCount int32)
}
