// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package main

import (
	"log/slog"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	mgl "github.com/go-gl/mathgl/mgl32"

	camera "github.com/tbogdala/cubelight/internal/camera"
)

// movement speed multiplier while the turbo key is held
const turboMovementSpeed = 50.0

// how many degrees of field of view one zoom key press is worth
const fovStepDegrees = 1.0

// inputAction identifies a discrete action triggered by a key press.
type inputAction int

const (
	actionToggleMSAA inputAction = iota
	actionToggleWireframe
	actionToggleCulling
	actionToggleDepthTest
	actionToggleVSync
	actionToggleTonemapping
	actionIncreaseFOV
	actionDecreaseFOV
	actionResetFOV
	actionResetCamera
	actionQuit
)

// InputSystem turns GLFW callbacks into a queue of typed events that are
// applied synchronously once per frame, so render state never changes in
// the middle of a draw sequence.
type InputSystem struct {
	window *glfw.Window
	rs     *RenderSystem
	log    *slog.Logger

	pending []inputAction

	// mouse look state; the cursor position resets to invalid whenever
	// the look button is released so deltas never span a drag gap
	lastCursor  mgl.Vec2
	cursorValid bool
}

// NewInputSystem allocates a new InputSystem object.
func NewInputSystem(log *slog.Logger) *InputSystem {
	is := new(InputSystem)
	is.log = log
	return is
}

// Initialize installs the GLFW callbacks on the render system's window.
func (is *InputSystem) Initialize(rs *RenderSystem) {
	is.rs = rs
	is.window = rs.MainWindow
	is.window.SetKeyCallback(is.onKey)
}

// onKey queues discrete actions on key press. Held movement keys are
// polled per frame instead, so they never queue.
func (is *InputSystem) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	switch key {
	case glfw.KeyF1:
		is.pending = append(is.pending, actionToggleMSAA)
	case glfw.KeyF2:
		is.pending = append(is.pending, actionToggleWireframe)
	case glfw.KeyF3:
		is.pending = append(is.pending, actionToggleCulling)
	case glfw.KeyF4:
		is.pending = append(is.pending, actionToggleDepthTest)
	case glfw.KeyF5:
		is.pending = append(is.pending, actionToggleVSync)
	case glfw.KeyF6:
		is.pending = append(is.pending, actionToggleTonemapping)
	case glfw.KeyKPAdd, glfw.KeyEqual:
		is.pending = append(is.pending, actionIncreaseFOV)
	case glfw.KeyKPSubtract, glfw.KeyMinus:
		is.pending = append(is.pending, actionDecreaseFOV)
	case glfw.KeyBackspace:
		is.pending = append(is.pending, actionResetFOV)
	case glfw.KeyEnter, glfw.KeyKPEnter:
		is.pending = append(is.pending, actionResetCamera)
	case glfw.KeyEscape:
		is.pending = append(is.pending, actionQuit)
	}
}

// Update applies all queued actions, then polls the held movement keys and
// the mouse to advance the camera for this frame.
func (is *InputSystem) Update(frameDelta float32) {
	for _, action := range is.pending {
		is.apply(action)
	}
	is.pending = is.pending[:0]

	is.moveCamera(frameDelta)
}

func (is *InputSystem) apply(action inputAction) {
	ctx := is.rs.Context()
	switch action {
	case actionToggleMSAA:
		ctx.ToggleMSAA()
		is.rs.ApplyMSAA()
	case actionToggleWireframe:
		ctx.Wireframe = !ctx.Wireframe
	case actionToggleCulling:
		ctx.Culling = !ctx.Culling
	case actionToggleDepthTest:
		ctx.DepthTest = !ctx.DepthTest
	case actionToggleVSync:
		ctx.VSync = !ctx.VSync
		is.rs.ApplyVSync()
	case actionToggleTonemapping:
		ctx.Tonemapping = !ctx.Tonemapping
		is.log.Info("tonemapping changed", "enabled", ctx.Tonemapping)
	case actionIncreaseFOV:
		ctx.AdjustFOV(fovStepDegrees)
	case actionDecreaseFOV:
		ctx.AdjustFOV(-fovStepDegrees)
	case actionResetFOV:
		ctx.ResetFOV()
	case actionResetCamera:
		is.rs.ResetCamera()
	case actionQuit:
		is.window.SetShouldClose(true)
	}
}

// moveCamera polls the movement keys and the look button and feeds one
// combined movement into the camera.
func (is *InputSystem) moveCamera(frameDelta float32) {
	var directions camera.MovementDirection
	if is.window.GetKey(glfw.KeyW) == glfw.Press {
		directions |= camera.Forward
	}
	if is.window.GetKey(glfw.KeyS) == glfw.Press {
		directions |= camera.Backward
	}
	if is.window.GetKey(glfw.KeyA) == glfw.Press {
		directions |= camera.Left
	}
	if is.window.GetKey(glfw.KeyD) == glfw.Press {
		directions |= camera.Right
	}
	if is.window.GetKey(glfw.KeyR) == glfw.Press {
		directions |= camera.Up
	}
	if is.window.GetKey(glfw.KeyF) == glfw.Press {
		directions |= camera.Down
	}

	if is.window.GetKey(glfw.KeyLeftShift) == glfw.Press {
		is.rs.Camera.SetMovementSpeed(turboMovementSpeed)
	} else {
		is.rs.Camera.SetMovementSpeed(camera.DefaultMovementSpeed)
	}

	// mouse look only while the right button is held
	var mouseDelta mgl.Vec2
	if is.window.GetMouseButton(glfw.MouseButtonRight) == glfw.Press {
		x, y := is.window.GetCursorPos()
		cursor := mgl.Vec2{float32(x), float32(y)}
		if is.cursorValid {
			mouseDelta = cursor.Sub(is.lastCursor)
		}
		is.lastCursor = cursor
		is.cursorValid = true
	} else {
		is.cursorValid = false
	}

	is.rs.Camera.Move(directions, mouseDelta, frameDelta)
}
