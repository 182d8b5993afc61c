// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package graphics

import (
	"unsafe"

	mgl "github.com/go-gl/mathgl/mgl32"
)

// NullProvider is a GraphicsProvider that does nothing. Handle-creating
// calls hand out unique non-zero values so resource bookkeeping behaves the
// same as with a live context. Tests embed it and override the calls they
// want to observe.
type NullProvider struct {
	nextHandle uint32
}

// NewNullProvider creates a new do-nothing provider.
func NewNullProvider() *NullProvider {
	return &NullProvider{}
}

func (np *NullProvider) handle() uint32 {
	np.nextHandle++
	return np.nextHandle
}

func (np *NullProvider) Viewport(x, y, width, height int32)  {}
func (np *NullProvider) ClearColor(r, g, b, a float32)       {}
func (np *NullProvider) Clear(mask Enum)                     {}
func (np *NullProvider) Enable(capability Enum)              {}
func (np *NullProvider) Disable(capability Enum)             {}
func (np *NullProvider) CullFace(mode Enum)                  {}
func (np *NullProvider) DepthFunc(fn Enum)                   {}
func (np *NullProvider) DepthMask(flag bool)                 {}
func (np *NullProvider) PolygonMode(face, mode Enum)         {}
func (np *NullProvider) PointSize(size float32)              {}
func (np *NullProvider) GetInteger(name Enum) int32          { return 0 }

func (np *NullProvider) GenVertexArray() VertexArray            { return VertexArray(np.handle()) }
func (np *NullProvider) BindVertexArray(vao VertexArray)        {}
func (np *NullProvider) DeleteVertexArray(vao VertexArray)      {}
func (np *NullProvider) EnableVertexAttribArray(index uint32)   {}
func (np *NullProvider) VertexAttribPointer(index uint32, size int32, ty Enum, normalized bool, stride int32, offset int) {
}

func (np *NullProvider) GenBuffer() Buffer                                  { return Buffer(np.handle()) }
func (np *NullProvider) BindBuffer(target Enum, b Buffer)                   {}
func (np *NullProvider) BindBufferBase(target Enum, index uint32, b Buffer) {}
func (np *NullProvider) BufferData(target Enum, size int, data unsafe.Pointer, usage Enum) {}
func (np *NullProvider) BufferSubData(target Enum, offset, size int, data unsafe.Pointer)  {}
func (np *NullProvider) MapBuffer(target, access Enum) unsafe.Pointer       { return nil }
func (np *NullProvider) UnmapBuffer(target Enum) bool                       { return true }
func (np *NullProvider) DeleteBuffer(b Buffer)                              {}

func (np *NullProvider) ActiveTexture(unit Enum)           {}
func (np *NullProvider) GenTexture() Texture               { return Texture(np.handle()) }
func (np *NullProvider) BindTexture(target Enum, t Texture) {}
func (np *NullProvider) DeleteTexture(t Texture)           {}
func (np *NullProvider) TexImage2D(target Enum, level int32, internalFormat Enum, width, height, border int32, format, ty Enum, data unsafe.Pointer) {
}
func (np *NullProvider) TexImage2DMultisample(target Enum, samples int32, internalFormat Enum, width, height int32, fixedLocations bool) {
}
func (np *NullProvider) TexParameteri(target, pname Enum, param int32)        {}
func (np *NullProvider) GenerateMipmap(target Enum)                           {}
func (np *NullProvider) GenSampler() Sampler                                  { return Sampler(np.handle()) }
func (np *NullProvider) BindSampler(unit uint32, s Sampler)                   {}
func (np *NullProvider) SamplerParameteri(s Sampler, pname Enum, param int32) {}
func (np *NullProvider) SamplerParameterf(s Sampler, pname Enum, param float32) {}
func (np *NullProvider) DeleteSampler(s Sampler)                              {}

func (np *NullProvider) GenFramebuffer() FrameBuffer            { return FrameBuffer(np.handle()) }
func (np *NullProvider) BindFramebuffer(target Enum, fb FrameBuffer) {}
func (np *NullProvider) DeleteFramebuffer(fb FrameBuffer)       {}
func (np *NullProvider) FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int32) {
}
func (np *NullProvider) GenRenderbuffer() RenderBuffer             { return RenderBuffer(np.handle()) }
func (np *NullProvider) BindRenderbuffer(target Enum, rb RenderBuffer) {}
func (np *NullProvider) RenderbufferStorage(target, internalFormat Enum, width, height int32) {}
func (np *NullProvider) RenderbufferStorageMultisample(target Enum, samples int32, internalFormat Enum, width, height int32) {
}
func (np *NullProvider) FramebufferRenderbuffer(target, attachment, rbTarget Enum, rb RenderBuffer) {}
func (np *NullProvider) DeleteRenderbuffer(rb RenderBuffer) {}
func (np *NullProvider) CheckFramebufferStatus(target Enum) Enum { return FRAMEBUFFER_COMPLETE }
func (np *NullProvider) DrawBuffers(bufs []Enum)                 {}
func (np *NullProvider) BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int32, mask, filter Enum) {
}

func (np *NullProvider) CreateShader(ty Enum) Shader            { return Shader(np.handle()) }
func (np *NullProvider) ShaderSource(s Shader, source string)   {}
func (np *NullProvider) CompileShader(s Shader)                 {}
func (np *NullProvider) GetShaderiv(s Shader, pname Enum) int32 { return TRUE }
func (np *NullProvider) GetShaderInfoLog(s Shader) string       { return "" }
func (np *NullProvider) DeleteShader(s Shader)                  {}
func (np *NullProvider) CreateProgram() Program                 { return Program(np.handle()) }
func (np *NullProvider) AttachShader(p Program, s Shader)       {}
func (np *NullProvider) LinkProgram(p Program)                  {}
func (np *NullProvider) GetProgramiv(p Program, pname Enum) int32 { return TRUE }
func (np *NullProvider) GetProgramInfoLog(p Program) string     { return "" }
func (np *NullProvider) UseProgram(p Program)                   {}
func (np *NullProvider) DeleteProgram(p Program)                {}
func (np *NullProvider) GetUniformLocation(p Program, name string) int32 { return -1 }
func (np *NullProvider) GetUniformBlockIndex(p Program, name string) uint32 {
	return INVALID_INDEX
}
func (np *NullProvider) GetUniformBlockDataSize(p Program, index uint32) int32 { return 0 }
func (np *NullProvider) UniformBlockBinding(p Program, index, binding uint32)  {}
func (np *NullProvider) Uniform1i(location, v int32)                           {}
func (np *NullProvider) Uniform1f(location int32, v float32)                   {}
func (np *NullProvider) Uniform3f(location int32, x, y, z float32)             {}
func (np *NullProvider) Uniform4f(location int32, x, y, z, w float32)          {}
func (np *NullProvider) UniformMatrix4fv(location int32, m mgl.Mat4)           {}
func (np *NullProvider) UniformMatrix4x3fv(location int32, m mgl.Mat4x3)       {}

func (np *NullProvider) DrawArrays(mode Enum, first, count int32)              {}
func (np *NullProvider) DrawElements(mode Enum, count int32, ty Enum, offset int) {}
func (np *NullProvider) DrawElementsInstanced(mode Enum, count int32, ty Enum, offset int, instanceCount int32) {
}
