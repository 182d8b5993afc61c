// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

// Package render implements the per-frame rendering pipeline: the render
// context state, the fixed uniform buffer layouts, the offscreen target
// management and the draw pass sequencing.
package render

import (
	mgl "github.com/go-gl/mathgl/mgl32"
)

// Field of view limits in degrees.
const (
	MinFOV     = 5.0
	MaxFOV     = 179.0
	DefaultFOV = 45.0
)

// Clip plane distances shared by every projection update.
const (
	NearClipPlane = 0.1
	FarClipPlane  = 100.1
)

// Context holds the mutable render state for a window: current dimensions,
// field of view and the feature toggles driven by input. It is passed by
// reference to everything that renders; there is no package-level state.
type Context struct {
	// Width and Height are the current window dimensions in pixels.
	Width  int
	Height int

	// Feature toggles.
	VSync       bool
	DepthTest   bool
	Wireframe   bool
	Culling     bool
	Tonemapping bool

	// msaaSamples is the active sample count; maxSamples is what the
	// MSAA toggle restores.
	msaaSamples int
	maxSamples  int

	fov float32
}

// NewContext creates a render context with the default feature set: vsync,
// depth testing, backface culling and tonemapping on, wireframe off.
func NewContext(width, height, msaaSamples int) *Context {
	if msaaSamples < 1 {
		msaaSamples = 1
	}
	return &Context{
		Width:       width,
		Height:      height,
		VSync:       true,
		DepthTest:   true,
		Culling:     true,
		Tonemapping: true,
		msaaSamples: msaaSamples,
		maxSamples:  msaaSamples,
		fov:         DefaultFOV,
	}
}

// Resize records new window dimensions.
func (c *Context) Resize(width, height int) {
	c.Width = width
	c.Height = height
}

// Aspect returns the current width to height ratio.
func (c *Context) Aspect() float32 {
	if c.Height == 0 {
		return 1.0
	}
	return float32(c.Width) / float32(c.Height)
}

// MSAASamples returns the active sample count; 1 means no multisampling.
func (c *Context) MSAASamples() int {
	return c.msaaSamples
}

// ToggleMSAA switches between no multisampling and the configured sample
// count, returning the new active count.
func (c *Context) ToggleMSAA() int {
	if c.msaaSamples > 1 {
		c.msaaSamples = 1
	} else {
		c.msaaSamples = c.maxSamples
	}
	return c.msaaSamples
}

// FOV returns the field of view in degrees.
func (c *Context) FOV() float32 {
	return c.fov
}

// AdjustFOV changes the field of view in degrees, clamped to
// [MinFOV, MaxFOV].
func (c *Context) AdjustFOV(delta float32) {
	c.fov = mgl.Clamp(c.fov+delta, MinFOV, MaxFOV)
}

// ResetFOV restores the default field of view.
func (c *Context) ResetFOV() {
	c.fov = DefaultFOV
}
