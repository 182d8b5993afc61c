// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package render

import (
	"fmt"
	"log/slog"

	mgl "github.com/go-gl/mathgl/mgl32"

	geometry "github.com/tbogdala/cubelight/internal/geometry"
	graphics "github.com/tbogdala/cubelight/internal/graphics"
	scene "github.com/tbogdala/cubelight/internal/scene"
)

// Camera is the view the pipeline renders from.
type Camera interface {
	WorldToView() mgl.Mat4
	ViewToWorld() mgl.Mat4
	Projection() mgl.Mat4
}

// Material is the set of texture maps bound for a lit draw, one per
// texture unit in order: diffuse, normal, specular, occlusion.
type Material struct {
	Diffuse   graphics.Texture
	Normal    graphics.Texture
	Specular  graphics.Texture
	Occlusion graphics.Texture
}

// clear color for the offscreen scene pass
var sceneClearColor = [4]float32{0.1, 0.2, 0.4, 1.0}

// Pipeline renders one frame of the scene into the offscreen target and
// puts the result on the screen surface, either through the tonemapping
// pass or through a plain blit. All per-frame buffer writes are sequenced
// strictly before the draws that read them.
type Pipeline struct {
	gfx graphics.GraphicsProvider
	log *slog.Logger
	ctx *Context

	programs     *ProgramSet
	frameBuffers *FrameBufferManager

	transforms *TransformBuffer
	instances  *InstanceBuffer

	floor *geometry.Mesh
	cube  *geometry.Mesh

	floorMaterial Material
	cubeMaterial  Material
	sampler       graphics.Sampler

	scn    *scene.Scene
	camera Camera

	// emptyVAO backs attribute-less draws: the light marker point and
	// the fullscreen tonemap triangles.
	emptyVAO graphics.VertexArray
}

// NewPipeline wires the pipeline together and allocates its uniform
// buffers. The scene's instance count is validated against the instance
// buffer capacity here, before the render loop ever runs.
func NewPipeline(gfx graphics.GraphicsProvider, log *slog.Logger, ctx *Context,
	programs *ProgramSet, frameBuffers *FrameBufferManager,
	floor, cube *geometry.Mesh, floorMaterial, cubeMaterial Material,
	sampler graphics.Sampler, scn *scene.Scene, cam Camera) (*Pipeline, error) {

	if scn.InstanceCount() > MaxInstances {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyInstances, scn.InstanceCount(), MaxInstances)
	}

	p := &Pipeline{
		gfx:           gfx,
		log:           log,
		ctx:           ctx,
		programs:      programs,
		frameBuffers:  frameBuffers,
		floor:         floor,
		cube:          cube,
		floorMaterial: floorMaterial,
		cubeMaterial:  cubeMaterial,
		sampler:       sampler,
		scn:           scn,
		camera:        cam,
	}
	p.transforms = NewTransformBuffer(gfx)
	p.instances = NewInstanceBuffer(gfx)
	p.emptyVAO = gfx.GenVertexArray()
	return p, nil
}

// RenderFrame runs the fixed frame sequence: update the per-frame uniform
// buffers, bind and clear the offscreen target, draw the floor, the
// instanced cubes and the light marker, then resolve or blit to the screen
// surface. The caller presents the frame afterwards.
func (p *Pipeline) RenderFrame() error {
	p.beginFrame()
	if err := p.updateFrameUniforms(); err != nil {
		return err
	}
	p.bindOffscreenTarget()
	p.clearTarget()
	p.drawFloor()
	p.drawInstancedCubes()
	p.drawLightMarker()
	p.resolveOrBlit()
	return nil
}

func (p *Pipeline) beginFrame() {
	p.gfx.Viewport(0, 0, int32(p.ctx.Width), int32(p.ctx.Height))
}

// updateFrameUniforms rewrites the transform block and the active instance
// range before anything draws.
func (p *Pipeline) updateFrameUniforms() error {
	p.transforms.Update(p.camera.WorldToView(), p.camera.Projection())
	return p.instances.Update(p.scn.InstanceTransforms())
}

// bindOffscreenTarget makes the offscreen target current and applies the
// per-frame feature toggles.
func (p *Pipeline) bindOffscreenTarget() {
	gfx := p.gfx
	p.frameBuffers.Bind()

	if p.ctx.DepthTest {
		gfx.Enable(graphics.DEPTH_TEST)
		gfx.DepthFunc(graphics.LEQUAL)
		gfx.DepthMask(true)
	} else {
		gfx.Disable(graphics.DEPTH_TEST)
	}

	if p.ctx.Culling {
		gfx.Enable(graphics.CULL_FACE)
		gfx.CullFace(graphics.BACK)
	} else {
		gfx.Disable(graphics.CULL_FACE)
	}

	if p.ctx.MSAASamples() > 1 {
		gfx.Enable(graphics.MULTISAMPLE)
	} else {
		gfx.Disable(graphics.MULTISAMPLE)
	}

	if p.ctx.Wireframe {
		gfx.PolygonMode(graphics.FRONT_AND_BACK, graphics.LINE)
	} else {
		gfx.PolygonMode(graphics.FRONT_AND_BACK, graphics.FILL)
	}
}

func (p *Pipeline) clearTarget() {
	gfx := p.gfx
	gfx.ClearColor(sceneClearColor[0], sceneClearColor[1], sceneClearColor[2], sceneClearColor[3])
	gfx.Clear(graphics.COLOR_BUFFER_BIT | graphics.DEPTH_BUFFER_BIT)
}

// setLightingUniforms updates the per-frame light and view positions on a
// lit program.
func (p *Pipeline) setLightingUniforms(prog *Program) {
	prog.SetVec3("lightPosWS", p.scn.LightPosition())
	prog.SetVec4("viewPosWS", p.camera.ViewToWorld().Col(3))
}

// bindMaterial binds the four material maps with the shared anisotropic
// sampler.
func (p *Pipeline) bindMaterial(m Material) {
	gfx := p.gfx
	maps := [4]graphics.Texture{m.Diffuse, m.Normal, m.Specular, m.Occlusion}
	for unit, tex := range maps {
		gfx.ActiveTexture(graphics.TEXTURE0 + graphics.Enum(unit))
		gfx.BindTexture(graphics.TEXTURE_2D, tex)
		gfx.BindSampler(uint32(unit), p.sampler)
	}
}

func (p *Pipeline) drawFloor() {
	gfx := p.gfx
	prog := p.programs.Get(Default)
	prog.Use()
	p.setLightingUniforms(prog)
	prog.SetMat4x3("modelToWorld", mat4ToMat4x3(p.scn.FloorTransform()))
	p.bindMaterial(p.floorMaterial)

	gfx.BindVertexArray(p.floor.VAO())
	gfx.DrawElements(graphics.TRIANGLES, p.floor.IndexCount(), graphics.UNSIGNED_INT, 0)
}

// drawInstancedCubes issues one draw covering every active instance,
// consuming the instance buffer written earlier this frame.
func (p *Pipeline) drawInstancedCubes() {
	gfx := p.gfx
	prog := p.programs.Get(Instancing)
	prog.Use()
	p.setLightingUniforms(prog)
	p.bindMaterial(p.cubeMaterial)

	gfx.BindVertexArray(p.cube.VAO())
	gfx.DrawElementsInstanced(graphics.TRIANGLES, p.cube.IndexCount(), graphics.UNSIGNED_INT, 0, p.instances.ActiveCount())
	p.instances.Unbind()
}

func (p *Pipeline) drawLightMarker() {
	gfx := p.gfx
	prog := p.programs.Get(PointRendering)
	prog.Use()
	prog.SetVec3("position", p.scn.LightPosition())
	prog.SetVec3("color", p.scn.LightColor())

	gfx.PointSize(scene.LightMarkerSize)
	gfx.BindVertexArray(p.emptyVAO)
	gfx.DrawArrays(graphics.POINTS, 0, 1)
}

// resolveOrBlit puts the offscreen contents on the screen surface. With
// tonemapping enabled a fullscreen pass resolves the samples and maps the
// HDR values in one step; otherwise the color contents are copied verbatim
// and keep their HDR values, which is an intentional quality difference.
func (p *Pipeline) resolveOrBlit() {
	gfx := p.gfx
	width := int32(p.ctx.Width)
	height := int32(p.ctx.Height)

	if !p.ctx.Tonemapping {
		gfx.BindFramebuffer(graphics.DRAW_FRAMEBUFFER, 0)
		gfx.BindFramebuffer(graphics.READ_FRAMEBUFFER, p.frameBuffers.FrameBuffer())
		gfx.BlitFramebuffer(0, 0, width, height, 0, 0, width, height, graphics.COLOR_BUFFER_BIT, graphics.LINEAR)
		gfx.BindFramebuffer(graphics.READ_FRAMEBUFFER, 0)
		return
	}

	gfx.BindFramebuffer(graphics.FRAMEBUFFER, 0)
	gfx.PolygonMode(graphics.FRONT_AND_BACK, graphics.FILL)
	gfx.Disable(graphics.MULTISAMPLE)
	gfx.Disable(graphics.DEPTH_TEST)

	gfx.ClearColor(0.0, 0.0, 0.0, 1.0)
	gfx.Clear(graphics.COLOR_BUFFER_BIT)

	prog := p.programs.Get(Tonemapping)
	prog.Use()
	prog.SetFloat("MSAALevel", float32(p.frameBuffers.Samples()))
	prog.SetInt("HDRTexture", 0)
	prog.SetInt("HDRTextureMS", 1)

	// Bind the HDR target to the unit matching its texture type; the
	// samplers on both units must stay unbound so texelFetch sees the
	// texture's own state.
	colorTarget, target := p.frameBuffers.ColorTarget()
	unit := uint32(0)
	if target == graphics.TEXTURE_2D_MULTISAMPLE {
		unit = 1
	}
	gfx.ActiveTexture(graphics.TEXTURE0 + graphics.Enum(unit))
	gfx.BindTexture(target, colorTarget)
	gfx.BindSampler(0, 0)
	gfx.BindSampler(1, 0)

	gfx.BindVertexArray(p.emptyVAO)
	gfx.DrawArrays(graphics.TRIANGLES, 0, 6)
}

// Destroy releases the uniform buffers and the shared VAO. The meshes,
// materials and programs are owned by the caller.
func (p *Pipeline) Destroy() {
	p.instances.Destroy()
	p.transforms.Destroy()
	p.gfx.DeleteVertexArray(p.emptyVAO)
	p.emptyVAO = 0
}

// mat4ToMat4x3 drops the last row of m, keeping four columns of three.
func mat4ToMat4x3(m mgl.Mat4) mgl.Mat4x3 {
	var out mgl.Mat4x3
	for col := 0; col < 4; col++ {
		for row := 0; row < 3; row++ {
			out[col*3+row] = m[col*4+row]
		}
	}
	return out
}
