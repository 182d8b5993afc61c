// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

// Package camera implements a free-flying camera driven by direction flags
// and mouse deltas. Motion is integrated purely by elapsed time with no
// smoothing or inertia.
package camera

import (
	"math"

	mgl "github.com/go-gl/mathgl/mgl32"
)

// MovementDirection is a bit set of the local axes the camera should
// translate along during a Move call.
type MovementDirection int

const (
	// None requests no translation.
	None MovementDirection = 0
	// Forward moves along the view direction.
	Forward MovementDirection = 1 << iota
	// Backward moves against the view direction.
	Backward
	// Left strafes along the negative local right axis.
	Left
	// Right strafes along the local right axis.
	Right
	// Up moves along the world up axis.
	Up
	// Down moves against the world up axis.
	Down
)

const (
	// DefaultMovementSpeed is the camera translation speed in m/s.
	DefaultMovementSpeed = 5.0

	// mouse delta in pixels to orientation change in radians
	rotationSensitivity = 0.0025

	// keep the pitch short of straight up/down so the view basis
	// never degenerates
	maxPitch = float32(math.Pi/2.0) - 0.01
)

var worldUp = mgl.Vec3{0.0, 1.0, 0.0}

// Camera maintains the view and projection transforms for the scene and
// converts input deltas into movement.
type Camera struct {
	eye   mgl.Vec3
	yaw   float32 // radians around world Y, 0 looks down +X
	pitch float32 // radians, positive looks up

	projection mgl.Mat4
	moveSpeed  float32
}

// NewCamera returns a camera at the origin looking down +X with the default
// movement speed. SetProjection and SetTransformation should be called
// before the first frame.
func NewCamera() *Camera {
	return &Camera{
		projection: mgl.Ident4(),
		moveSpeed:  DefaultMovementSpeed,
	}
}

// SetMovementSpeed changes the translation speed in m/s.
func (c *Camera) SetMovementSpeed(speed float32) {
	c.moveSpeed = speed
}

// SetProjection recomputes the projection matrix. The field of view is in
// degrees.
func (c *Camera) SetProjection(fovDegrees, aspect, near, far float32) {
	c.projection = mgl.Perspective(mgl.DegToRad(fovDegrees), aspect, near, far)
}

// SetTransformation places the camera at eye looking at target. The up
// vector only disambiguates the initial roll; the camera keeps world Y up.
func (c *Camera) SetTransformation(eye, target, up mgl.Vec3) {
	c.eye = eye
	dir := target.Sub(eye)
	if dir.Len() > 0 {
		dir = dir.Normalize()
		c.pitch = float32(math.Asin(float64(dir.Y())))
		c.yaw = float32(math.Atan2(float64(dir.Z()), float64(dir.X())))
	}
}

// Move translates the camera along its local axes per the direction flags,
// scaled by the movement speed and dt, and turns it proportionally to the
// mouse delta. A zero mouse delta leaves the orientation unchanged.
func (c *Camera) Move(directions MovementDirection, mouseDelta mgl.Vec2, dt float32) {
	c.yaw += mouseDelta.X() * rotationSensitivity
	c.pitch -= mouseDelta.Y() * rotationSensitivity
	c.pitch = mgl.Clamp(c.pitch, -maxPitch, maxPitch)

	forward := c.forward()
	right := forward.Cross(worldUp).Normalize()

	var translation mgl.Vec3
	if directions&Forward != 0 {
		translation = translation.Add(forward)
	}
	if directions&Backward != 0 {
		translation = translation.Sub(forward)
	}
	if directions&Right != 0 {
		translation = translation.Add(right)
	}
	if directions&Left != 0 {
		translation = translation.Sub(right)
	}
	if directions&Up != 0 {
		translation = translation.Add(worldUp)
	}
	if directions&Down != 0 {
		translation = translation.Sub(worldUp)
	}

	c.eye = c.eye.Add(translation.Mul(c.moveSpeed * dt))
}

// forward returns the unit view direction for the current yaw and pitch.
func (c *Camera) forward() mgl.Vec3 {
	cosPitch := float32(math.Cos(float64(c.pitch)))
	return mgl.Vec3{
		cosPitch * float32(math.Cos(float64(c.yaw))),
		float32(math.Sin(float64(c.pitch))),
		cosPitch * float32(math.Sin(float64(c.yaw))),
	}
}

// WorldToView returns the view matrix.
func (c *Camera) WorldToView() mgl.Mat4 {
	return mgl.LookAtV(c.eye, c.eye.Add(c.forward()), worldUp)
}

// ViewToWorld returns the inverse of the view matrix.
func (c *Camera) ViewToWorld() mgl.Mat4 {
	return c.WorldToView().Inv()
}

// Projection returns the current projection matrix.
func (c *Camera) Projection() mgl.Mat4 {
	return c.projection
}

// Position returns the camera location in world space.
func (c *Camera) Position() mgl.Vec3 {
	return c.eye
}
