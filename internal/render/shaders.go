// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package render

import (
	"fmt"

	mgl "github.com/go-gl/mathgl/mgl32"

	graphics "github.com/tbogdala/cubelight/internal/graphics"
)

// ProgramID identifies one of the fixed shader programs the pipeline uses.
type ProgramID int

const (
	// Default renders non-instanced lit geometry.
	Default ProgramID = iota
	// Instancing renders lit geometry once per instance record.
	Instancing
	// PointRendering renders a single sized point.
	PointRendering
	// Tonemapping resolves and tonemaps the offscreen target.
	Tonemapping

	numPrograms
)

// Program wraps a linked shader program with a uniform location cache.
type Program struct {
	gfx    graphics.GraphicsProvider
	handle graphics.Program

	uniforms map[string]int32
}

// Handle returns the underlying program object.
func (p *Program) Handle() graphics.Program {
	return p.handle
}

// Use makes the program current.
func (p *Program) Use() {
	p.gfx.UseProgram(p.handle)
}

// UniformLocation returns the cached location for a named uniform, or -1
// if the program does not use it.
func (p *Program) UniformLocation(name string) int32 {
	if loc, found := p.uniforms[name]; found {
		return loc
	}
	loc := p.gfx.GetUniformLocation(p.handle, name)
	p.uniforms[name] = loc
	return loc
}

// SetInt sets a named integer uniform if the program uses it.
func (p *Program) SetInt(name string, v int32) {
	if loc := p.UniformLocation(name); loc != -1 {
		p.gfx.Uniform1i(loc, v)
	}
}

// SetFloat sets a named float uniform if the program uses it.
func (p *Program) SetFloat(name string, v float32) {
	if loc := p.UniformLocation(name); loc != -1 {
		p.gfx.Uniform1f(loc, v)
	}
}

// SetVec3 sets a named vec3 uniform if the program uses it.
func (p *Program) SetVec3(name string, v mgl.Vec3) {
	if loc := p.UniformLocation(name); loc != -1 {
		p.gfx.Uniform3f(loc, v.X(), v.Y(), v.Z())
	}
}

// SetVec4 sets a named vec4 uniform if the program uses it.
func (p *Program) SetVec4(name string, v mgl.Vec4) {
	if loc := p.UniformLocation(name); loc != -1 {
		p.gfx.Uniform4f(loc, v.X(), v.Y(), v.Z(), v.W())
	}
}

// SetMat4x3 sets a named mat4x3 uniform if the program uses it.
func (p *Program) SetMat4x3(name string, m mgl.Mat4x3) {
	if loc := p.UniformLocation(name); loc != -1 {
		p.gfx.UniformMatrix4x3fv(loc, m)
	}
}

// ProgramSet holds the fixed programs used by the pipeline.
type ProgramSet struct {
	gfx      graphics.GraphicsProvider
	programs [numPrograms]*Program
}

// Get returns the program for the given id.
func (s *ProgramSet) Get(id ProgramID) *Program {
	return s.programs[id]
}

// Destroy releases every program in the set.
func (s *ProgramSet) Destroy() {
	for i, p := range s.programs {
		if p != nil {
			s.gfx.DeleteProgram(p.handle)
			s.programs[i] = nil
		}
	}
}

// CompileShaders builds every program the pipeline needs and assigns the
// uniform block binding points. Any compile or link failure is returned
// with the shader info log attached.
func CompileShaders(gfx graphics.GraphicsProvider) (*ProgramSet, error) {
	sources := [numPrograms]struct {
		name string
		vert string
		frag string
	}{
		{"Default", defaultVertexSource, litFragmentSource},
		{"Instancing", instancingVertexSource, litFragmentSource},
		{"PointRendering", pointVertexSource, pointFragmentSource},
		{"Tonemapping", tonemapVertexSource, tonemapFragmentSource},
	}

	set := &ProgramSet{gfx: gfx}
	for i, src := range sources {
		handle, err := linkProgram(gfx, src.vert, src.frag)
		if err != nil {
			set.Destroy()
			return nil, fmt.Errorf("failed to build the %s program: %w", src.name, err)
		}
		set.programs[i] = &Program{
			gfx:      gfx,
			handle:   handle,
			uniforms: make(map[string]int32),
		}
	}

	// Wire the shared transform block and the instance buffer to their
	// fixed binding points.
	for _, id := range []ProgramID{Default, Instancing, PointRendering} {
		p := set.Get(id).Handle()
		if index := gfx.GetUniformBlockIndex(p, "TransformBlock"); index != graphics.INVALID_INDEX {
			gfx.UniformBlockBinding(p, index, TransformBlockBinding)
		}
	}
	instancing := set.Get(Instancing).Handle()
	if index := gfx.GetUniformBlockIndex(instancing, "InstanceBuffer"); index != graphics.INVALID_INDEX {
		gfx.UniformBlockBinding(instancing, index, InstanceBlockBinding)
	}

	return set, nil
}

// compileShader builds a single shader stage, returning the info log on
// failure.
func compileShader(gfx graphics.GraphicsProvider, ty graphics.Enum, source string) (graphics.Shader, error) {
	shader := gfx.CreateShader(ty)
	gfx.ShaderSource(shader, source)
	gfx.CompileShader(shader)
	if gfx.GetShaderiv(shader, graphics.COMPILE_STATUS) == graphics.FALSE {
		log := gfx.GetShaderInfoLog(shader)
		gfx.DeleteShader(shader)
		return 0, fmt.Errorf("shader compilation failed:\n%s", log)
	}
	return shader, nil
}

// linkProgram compiles both stages and links them into a program.
func linkProgram(gfx graphics.GraphicsProvider, vertSource, fragSource string) (graphics.Program, error) {
	vert, err := compileShader(gfx, graphics.VERTEX_SHADER, vertSource)
	if err != nil {
		return 0, err
	}
	defer gfx.DeleteShader(vert)

	frag, err := compileShader(gfx, graphics.FRAGMENT_SHADER, fragSource)
	if err != nil {
		return 0, err
	}
	defer gfx.DeleteShader(frag)

	program := gfx.CreateProgram()
	gfx.AttachShader(program, vert)
	gfx.AttachShader(program, frag)
	gfx.LinkProgram(program)
	if gfx.GetProgramiv(program, graphics.LINK_STATUS) == graphics.FALSE {
		log := gfx.GetProgramInfoLog(program)
		gfx.DeleteProgram(program)
		return 0, fmt.Errorf("program link failed:\n%s", log)
	}
	return program, nil
}
