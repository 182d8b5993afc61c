// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

// Package opengl implements graphics.GraphicsProvider on top of the
// go-gl OpenGL 4.1 core bindings. Every method is a thin pass-through;
// the enum values in the graphics package are the GL values.
package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	mgl "github.com/go-gl/mathgl/mgl32"

	"github.com/tbogdala/cubelight/internal/graphics"
)

// GraphicsImpl is the OpenGL implementation of graphics.GraphicsProvider.
// A current GL context is required before calling InitOpenGL.
type GraphicsImpl struct{}

// InitOpenGL loads the OpenGL function pointers for the current context and
// returns the provider implementation.
func InitOpenGL() (*GraphicsImpl, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	return &GraphicsImpl{}, nil
}

func (impl *GraphicsImpl) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (impl *GraphicsImpl) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (impl *GraphicsImpl) Clear(mask graphics.Enum) {
	gl.Clear(uint32(mask))
}

func (impl *GraphicsImpl) Enable(capability graphics.Enum) {
	gl.Enable(uint32(capability))
}

func (impl *GraphicsImpl) Disable(capability graphics.Enum) {
	gl.Disable(uint32(capability))
}

func (impl *GraphicsImpl) CullFace(mode graphics.Enum) {
	gl.CullFace(uint32(mode))
}

func (impl *GraphicsImpl) DepthFunc(fn graphics.Enum) {
	gl.DepthFunc(uint32(fn))
}

func (impl *GraphicsImpl) DepthMask(flag bool) {
	gl.DepthMask(flag)
}

func (impl *GraphicsImpl) PolygonMode(face, mode graphics.Enum) {
	gl.PolygonMode(uint32(face), uint32(mode))
}

func (impl *GraphicsImpl) PointSize(size float32) {
	gl.PointSize(size)
}

func (impl *GraphicsImpl) GetInteger(name graphics.Enum) int32 {
	var v int32
	gl.GetIntegerv(uint32(name), &v)
	return v
}

func (impl *GraphicsImpl) GenVertexArray() graphics.VertexArray {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return graphics.VertexArray(vao)
}

func (impl *GraphicsImpl) BindVertexArray(vao graphics.VertexArray) {
	gl.BindVertexArray(uint32(vao))
}

func (impl *GraphicsImpl) DeleteVertexArray(vao graphics.VertexArray) {
	v := uint32(vao)
	gl.DeleteVertexArrays(1, &v)
}

func (impl *GraphicsImpl) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (impl *GraphicsImpl) VertexAttribPointer(index uint32, size int32, ty graphics.Enum, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, uint32(ty), normalized, stride, gl.PtrOffset(offset))
}

func (impl *GraphicsImpl) GenBuffer() graphics.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return graphics.Buffer(b)
}

func (impl *GraphicsImpl) BindBuffer(target graphics.Enum, b graphics.Buffer) {
	gl.BindBuffer(uint32(target), uint32(b))
}

func (impl *GraphicsImpl) BindBufferBase(target graphics.Enum, index uint32, b graphics.Buffer) {
	gl.BindBufferBase(uint32(target), index, uint32(b))
}

func (impl *GraphicsImpl) BufferData(target graphics.Enum, size int, data unsafe.Pointer, usage graphics.Enum) {
	gl.BufferData(uint32(target), size, data, uint32(usage))
}

func (impl *GraphicsImpl) BufferSubData(target graphics.Enum, offset, size int, data unsafe.Pointer) {
	gl.BufferSubData(uint32(target), offset, size, data)
}

func (impl *GraphicsImpl) MapBuffer(target, access graphics.Enum) unsafe.Pointer {
	return gl.MapBuffer(uint32(target), uint32(access))
}

func (impl *GraphicsImpl) UnmapBuffer(target graphics.Enum) bool {
	return gl.UnmapBuffer(uint32(target))
}

func (impl *GraphicsImpl) DeleteBuffer(b graphics.Buffer) {
	v := uint32(b)
	gl.DeleteBuffers(1, &v)
}

func (impl *GraphicsImpl) ActiveTexture(unit graphics.Enum) {
	gl.ActiveTexture(uint32(unit))
}

func (impl *GraphicsImpl) GenTexture() graphics.Texture {
	var t uint32
	gl.GenTextures(1, &t)
	return graphics.Texture(t)
}

func (impl *GraphicsImpl) BindTexture(target graphics.Enum, t graphics.Texture) {
	gl.BindTexture(uint32(target), uint32(t))
}

func (impl *GraphicsImpl) DeleteTexture(t graphics.Texture) {
	v := uint32(t)
	gl.DeleteTextures(1, &v)
}

func (impl *GraphicsImpl) TexImage2D(target graphics.Enum, level int32, internalFormat graphics.Enum, width, height, border int32, format, ty graphics.Enum, data unsafe.Pointer) {
	gl.TexImage2D(uint32(target), level, int32(internalFormat), width, height, border, uint32(format), uint32(ty), data)
}

func (impl *GraphicsImpl) TexImage2DMultisample(target graphics.Enum, samples int32, internalFormat graphics.Enum, width, height int32, fixedLocations bool) {
	gl.TexImage2DMultisample(uint32(target), samples, uint32(internalFormat), width, height, fixedLocations)
}

func (impl *GraphicsImpl) TexParameteri(target, pname graphics.Enum, param int32) {
	gl.TexParameteri(uint32(target), uint32(pname), param)
}

func (impl *GraphicsImpl) GenerateMipmap(target graphics.Enum) {
	gl.GenerateMipmap(uint32(target))
}

func (impl *GraphicsImpl) GenSampler() graphics.Sampler {
	var s uint32
	gl.GenSamplers(1, &s)
	return graphics.Sampler(s)
}

func (impl *GraphicsImpl) BindSampler(unit uint32, s graphics.Sampler) {
	gl.BindSampler(unit, uint32(s))
}

func (impl *GraphicsImpl) SamplerParameteri(s graphics.Sampler, pname graphics.Enum, param int32) {
	gl.SamplerParameteri(uint32(s), uint32(pname), param)
}

func (impl *GraphicsImpl) SamplerParameterf(s graphics.Sampler, pname graphics.Enum, param float32) {
	gl.SamplerParameterf(uint32(s), uint32(pname), param)
}

func (impl *GraphicsImpl) DeleteSampler(s graphics.Sampler) {
	v := uint32(s)
	gl.DeleteSamplers(1, &v)
}

func (impl *GraphicsImpl) GenFramebuffer() graphics.FrameBuffer {
	var fb uint32
	gl.GenFramebuffers(1, &fb)
	return graphics.FrameBuffer(fb)
}

func (impl *GraphicsImpl) BindFramebuffer(target graphics.Enum, fb graphics.FrameBuffer) {
	gl.BindFramebuffer(uint32(target), uint32(fb))
}

func (impl *GraphicsImpl) DeleteFramebuffer(fb graphics.FrameBuffer) {
	v := uint32(fb)
	gl.DeleteFramebuffers(1, &v)
}

func (impl *GraphicsImpl) FramebufferTexture2D(target, attachment, texTarget graphics.Enum, t graphics.Texture, level int32) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), uint32(t), level)
}

func (impl *GraphicsImpl) GenRenderbuffer() graphics.RenderBuffer {
	var rb uint32
	gl.GenRenderbuffers(1, &rb)
	return graphics.RenderBuffer(rb)
}

func (impl *GraphicsImpl) BindRenderbuffer(target graphics.Enum, rb graphics.RenderBuffer) {
	gl.BindRenderbuffer(uint32(target), uint32(rb))
}

func (impl *GraphicsImpl) RenderbufferStorage(target, internalFormat graphics.Enum, width, height int32) {
	gl.RenderbufferStorage(uint32(target), uint32(internalFormat), width, height)
}

func (impl *GraphicsImpl) RenderbufferStorageMultisample(target graphics.Enum, samples int32, internalFormat graphics.Enum, width, height int32) {
	gl.RenderbufferStorageMultisample(uint32(target), samples, uint32(internalFormat), width, height)
}

func (impl *GraphicsImpl) FramebufferRenderbuffer(target, attachment, rbTarget graphics.Enum, rb graphics.RenderBuffer) {
	gl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(rbTarget), uint32(rb))
}

func (impl *GraphicsImpl) DeleteRenderbuffer(rb graphics.RenderBuffer) {
	v := uint32(rb)
	gl.DeleteRenderbuffers(1, &v)
}

func (impl *GraphicsImpl) CheckFramebufferStatus(target graphics.Enum) graphics.Enum {
	return graphics.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (impl *GraphicsImpl) DrawBuffers(bufs []graphics.Enum) {
	raw := make([]uint32, len(bufs))
	for i, b := range bufs {
		raw[i] = uint32(b)
	}
	gl.DrawBuffers(int32(len(raw)), &raw[0])
}

func (impl *GraphicsImpl) BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int32, mask, filter graphics.Enum) {
	gl.BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1, uint32(mask), uint32(filter))
}

func (impl *GraphicsImpl) CreateShader(ty graphics.Enum) graphics.Shader {
	return graphics.Shader(gl.CreateShader(uint32(ty)))
}

func (impl *GraphicsImpl) ShaderSource(s graphics.Shader, source string) {
	cSources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(uint32(s), 1, cSources, nil)
	free()
}

func (impl *GraphicsImpl) CompileShader(s graphics.Shader) {
	gl.CompileShader(uint32(s))
}

func (impl *GraphicsImpl) GetShaderiv(s graphics.Shader, pname graphics.Enum) int32 {
	var v int32
	gl.GetShaderiv(uint32(s), uint32(pname), &v)
	return v
}

func (impl *GraphicsImpl) GetShaderInfoLog(s graphics.Shader) string {
	var logLength int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLength)
	if logLength < 1 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(uint32(s), logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (impl *GraphicsImpl) DeleteShader(s graphics.Shader) {
	gl.DeleteShader(uint32(s))
}

func (impl *GraphicsImpl) CreateProgram() graphics.Program {
	return graphics.Program(gl.CreateProgram())
}

func (impl *GraphicsImpl) AttachShader(p graphics.Program, s graphics.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (impl *GraphicsImpl) LinkProgram(p graphics.Program) {
	gl.LinkProgram(uint32(p))
}

func (impl *GraphicsImpl) GetProgramiv(p graphics.Program, pname graphics.Enum) int32 {
	var v int32
	gl.GetProgramiv(uint32(p), uint32(pname), &v)
	return v
}

func (impl *GraphicsImpl) GetProgramInfoLog(p graphics.Program) string {
	var logLength int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLength)
	if logLength < 1 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(uint32(p), logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (impl *GraphicsImpl) UseProgram(p graphics.Program) {
	gl.UseProgram(uint32(p))
}

func (impl *GraphicsImpl) DeleteProgram(p graphics.Program) {
	gl.DeleteProgram(uint32(p))
}

func (impl *GraphicsImpl) GetUniformLocation(p graphics.Program, name string) int32 {
	return gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
}

func (impl *GraphicsImpl) GetUniformBlockIndex(p graphics.Program, name string) uint32 {
	return gl.GetUniformBlockIndex(uint32(p), gl.Str(name+"\x00"))
}

func (impl *GraphicsImpl) GetUniformBlockDataSize(p graphics.Program, index uint32) int32 {
	var v int32
	gl.GetActiveUniformBlockiv(uint32(p), index, gl.UNIFORM_BLOCK_DATA_SIZE, &v)
	return v
}

func (impl *GraphicsImpl) UniformBlockBinding(p graphics.Program, index, binding uint32) {
	gl.UniformBlockBinding(uint32(p), index, binding)
}

func (impl *GraphicsImpl) Uniform1i(location, v int32) {
	gl.Uniform1i(location, v)
}

func (impl *GraphicsImpl) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (impl *GraphicsImpl) Uniform3f(location int32, x, y, z float32) {
	gl.Uniform3f(location, x, y, z)
}

func (impl *GraphicsImpl) Uniform4f(location int32, x, y, z, w float32) {
	gl.Uniform4f(location, x, y, z, w)
}

func (impl *GraphicsImpl) UniformMatrix4fv(location int32, m mgl.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (impl *GraphicsImpl) UniformMatrix4x3fv(location int32, m mgl.Mat4x3) {
	gl.UniformMatrix4x3fv(location, 1, false, &m[0])
}

func (impl *GraphicsImpl) DrawArrays(mode graphics.Enum, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (impl *GraphicsImpl) DrawElements(mode graphics.Enum, count int32, ty graphics.Enum, offset int) {
	gl.DrawElements(uint32(mode), count, uint32(ty), gl.PtrOffset(offset))
}

func (impl *GraphicsImpl) DrawElementsInstanced(mode graphics.Enum, count int32, ty graphics.Enum, offset int, instanceCount int32) {
	gl.DrawElementsInstanced(uint32(mode), count, uint32(ty), gl.PtrOffset(offset), instanceCount)
}
