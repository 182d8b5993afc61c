// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	mgl "github.com/go-gl/mathgl/mgl32"

	camera "github.com/tbogdala/cubelight/internal/camera"
	geometry "github.com/tbogdala/cubelight/internal/geometry"
	graphics "github.com/tbogdala/cubelight/internal/graphics"
	opengl "github.com/tbogdala/cubelight/internal/graphics/opengl"
	render "github.com/tbogdala/cubelight/internal/render"
	scene "github.com/tbogdala/cubelight/internal/scene"
	textures "github.com/tbogdala/cubelight/internal/textures"
)

const windowTitle = "cubelight"

// refresh the window title's FPS readout at this interval in seconds
const fpsUpdateInterval = 0.5

var cameraStartEye = mgl.Vec3{-3.0, 3.0, -5.0}

// RenderSystem owns the window, the graphics context and everything built
// on top of them, and renders one frame per Update call.
type RenderSystem struct {
	MainWindow *glfw.Window
	Camera     *camera.Camera

	gfx graphics.GraphicsProvider
	log *slog.Logger
	ctx *render.Context

	programs     *render.ProgramSet
	frameBuffers *render.FrameBufferManager
	bank         *textures.Bank
	floor        *geometry.Mesh
	cube         *geometry.Mesh
	pipeline     *render.Pipeline

	// title FPS accounting
	fpsTimer  float32
	fpsFrames int
}

// NewRenderSystem allocates a new RenderSystem object.
func NewRenderSystem(log *slog.Logger) *RenderSystem {
	rs := new(RenderSystem)
	rs.log = log
	return rs
}

// Initialize creates the main window, initializes OpenGL and builds the
// whole rendering stack from the configuration. Validation of the uniform
// block contract happens here so a driver mismatch fails at startup, not
// mid-frame.
func (rs *RenderSystem) Initialize(cfg Config) error {
	err := rs.initGraphics(windowTitle, cfg.Width, cfg.Height, cfg.VSync)
	if err != nil {
		return err
	}

	// sRGB conversion on writes to the default framebuffer
	rs.gfx.Enable(graphics.FRAMEBUFFER_SRGB)

	if err = render.ValidateUniformCapacity(rs.gfx); err != nil {
		return err
	}

	rs.programs, err = render.CompileShaders(rs.gfx)
	if err != nil {
		return fmt.Errorf("failed to compile the shaders: %w", err)
	}
	if err = render.ValidateBlockLayouts(rs.gfx, rs.programs); err != nil {
		return err
	}

	rs.ctx = render.NewContext(cfg.Width, cfg.Height, cfg.MSAASamples)
	rs.ctx.VSync = cfg.VSync

	rs.frameBuffers = render.NewFrameBufferManager(rs.gfx, rs.log)
	rs.frameBuffers.Resize(cfg.Width, cfg.Height, rs.ctx.MSAASamples())
	if !rs.frameBuffers.IsComplete() {
		return fmt.Errorf("the offscreen render target is not complete")
	}

	rs.floor = geometry.CreateQuad(rs.gfx)
	rs.cube = geometry.CreateCube(rs.gfx)

	rs.bank = textures.NewBank(rs.gfx)
	floorMaterial, cubeMaterial := rs.createMaterials(cfg.TexturePath)

	scn := scene.NewScene(cfg.CubeCount, cfg.Seed)

	rs.Camera = camera.NewCamera()
	rs.ResetCamera()

	rs.pipeline, err = render.NewPipeline(rs.gfx, rs.log, rs.ctx, rs.programs,
		rs.frameBuffers, rs.floor, rs.cube, floorMaterial, cubeMaterial,
		rs.bank.AnisotropicSampler(), scn, rs.Camera)
	if err != nil {
		return err
	}

	rs.log.Info("render system initialized",
		"width", cfg.Width, "height", cfg.Height,
		"msaa", rs.ctx.MSAASamples(), "cubes", scn.InstanceCount())
	return nil
}

// initGraphics creates an OpenGL window and initializes the required
// graphics libraries.
func (rs *RenderSystem) initGraphics(title string, w, h int, vsync bool) error {
	err := glfw.Init()
	if err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// request a OpenGL 4.1 core context; multisampling happens in the
	// offscreen target, not the window surface
	glfw.WindowHint(glfw.Samples, 0)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	rs.MainWindow, err = glfw.CreateWindow(w, h, title, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create the main window: %w", err)
	}

	rs.MainWindow.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		rs.resize(width, height)
	})

	rs.MainWindow.MakeContextCurrent()
	setSwapInterval(vsync)

	rs.gfx, err = opengl.InitOpenGL()
	if err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	return nil
}

// createMaterials builds the floor and cube material maps. When a texture
// directory was configured the color maps come from files there, otherwise
// everything is generated.
func (rs *RenderSystem) createMaterials(texturePath string) (floor, cube render.Material) {
	// data maps shared by both materials
	flatNormal := rs.bank.CreateSingleColor(128, 128, 255)
	dimSpecular := rs.bank.CreateSingleColor(32, 32, 32)
	fullOcclusion := rs.bank.CreateSingleColor(255, 255, 255)

	floor = render.Material{
		Diffuse:   rs.loadOrGenerate(texturePath, "floor.png", func() graphics.Texture { return rs.bank.CreateCheckerBoard(256, 8) }),
		Normal:    flatNormal,
		Specular:  dimSpecular,
		Occlusion: fullOcclusion,
	}
	cube = render.Material{
		Diffuse:   rs.loadOrGenerate(texturePath, "cube.png", func() graphics.Texture { return rs.bank.CreateSingleColor(200, 120, 60) }),
		Normal:    flatNormal,
		Specular:  dimSpecular,
		Occlusion: fullOcclusion,
	}
	return floor, cube
}

// loadOrGenerate tries the named texture file and falls back to the
// generated texture with a warning if it cannot be used.
func (rs *RenderSystem) loadOrGenerate(dir, name string, generate func() graphics.Texture) graphics.Texture {
	if dir == "" {
		return generate()
	}
	path := filepath.Join(dir, name)
	tex, err := rs.bank.LoadFile(path, true)
	if err != nil {
		rs.log.Warn("falling back to a generated texture", "path", path, "error", err)
		return generate()
	}
	return tex
}

// ResetCamera puts the camera back at its starting position looking at the
// scene origin.
func (rs *RenderSystem) ResetCamera() {
	rs.Camera.SetTransformation(cameraStartEye, mgl.Vec3{0, 0, 0}, mgl.Vec3{0, 1, 0})
}

// resize reacts to a window framebuffer size change by resizing the
// offscreen target to match.
func (rs *RenderSystem) resize(width, height int) {
	if width < 1 || height < 1 {
		return
	}
	rs.ctx.Resize(width, height)
	rs.frameBuffers.Resize(width, height, rs.ctx.MSAASamples())
}

// ApplyMSAA rebuilds the offscreen target after the MSAA toggle changed
// the sample count.
func (rs *RenderSystem) ApplyMSAA() {
	rs.frameBuffers.Resize(rs.ctx.Width, rs.ctx.Height, rs.ctx.MSAASamples())
	rs.log.Info("MSAA changed", "samples", rs.ctx.MSAASamples())
}

// ApplyVSync pushes the context's vsync toggle to the presentation layer.
func (rs *RenderSystem) ApplyVSync() {
	setSwapInterval(rs.ctx.VSync)
	rs.log.Info("vsync changed", "enabled", rs.ctx.VSync)
}

// Context returns the mutable render state shared with the input system.
func (rs *RenderSystem) Context() *render.Context {
	return rs.ctx
}

// Update renders and presents one frame and refreshes the FPS readout in
// the window title.
func (rs *RenderSystem) Update(frameDelta float32) error {
	// the field of view or window can change between frames
	rs.Camera.SetProjection(rs.ctx.FOV(), rs.ctx.Aspect(), render.NearClipPlane, render.FarClipPlane)

	if err := rs.pipeline.RenderFrame(); err != nil {
		return err
	}
	rs.MainWindow.SwapBuffers()

	rs.fpsFrames++
	rs.fpsTimer += frameDelta
	if rs.fpsTimer >= fpsUpdateInterval {
		fps := float32(rs.fpsFrames) / rs.fpsTimer
		ms := rs.fpsTimer / float32(rs.fpsFrames) * 1000.0
		rs.MainWindow.SetTitle(fmt.Sprintf("%s - %.0f fps (%.2f ms)", windowTitle, fps, ms))
		rs.fpsTimer = 0
		rs.fpsFrames = 0
	}
	return nil
}

// Shutdown releases the graphics objects and the window.
func (rs *RenderSystem) Shutdown() {
	if rs.pipeline != nil {
		rs.pipeline.Destroy()
	}
	if rs.bank != nil {
		rs.bank.Destroy()
	}
	if rs.floor != nil {
		rs.floor.Destroy()
	}
	if rs.cube != nil {
		rs.cube.Destroy()
	}
	if rs.frameBuffers != nil {
		rs.frameBuffers.Destroy()
	}
	if rs.programs != nil {
		rs.programs.Destroy()
	}
	if rs.MainWindow != nil {
		rs.MainWindow.Destroy()
	}
	glfw.Terminate()
}

func setSwapInterval(vsync bool) {
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}
