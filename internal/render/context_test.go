// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package render

import "testing"

func TestContextDefaults(t *testing.T) {
	ctx := NewContext(800, 600, 4)

	if !ctx.VSync || !ctx.DepthTest || !ctx.Culling || !ctx.Tonemapping {
		t.Error("vsync, depth testing, culling and tonemapping should default on")
	}
	if ctx.Wireframe {
		t.Error("wireframe should default off")
	}
	if ctx.FOV() != DefaultFOV {
		t.Errorf("got FOV %f, want %f", ctx.FOV(), float32(DefaultFOV))
	}
}

func TestContextFOVClamping(t *testing.T) {
	ctx := NewContext(800, 600, 4)

	ctx.AdjustFOV(1000.0)
	if ctx.FOV() != MaxFOV {
		t.Errorf("got FOV %f, want the maximum %f", ctx.FOV(), float32(MaxFOV))
	}

	ctx.AdjustFOV(-1000.0)
	if ctx.FOV() != MinFOV {
		t.Errorf("got FOV %f, want the minimum %f", ctx.FOV(), float32(MinFOV))
	}

	ctx.ResetFOV()
	if ctx.FOV() != DefaultFOV {
		t.Errorf("got FOV %f after reset, want %f", ctx.FOV(), float32(DefaultFOV))
	}
}

func TestContextMSAAToggle(t *testing.T) {
	ctx := NewContext(800, 600, 8)

	if got := ctx.ToggleMSAA(); got != 1 {
		t.Errorf("first toggle gave %d samples, want 1", got)
	}
	if got := ctx.ToggleMSAA(); got != 8 {
		t.Errorf("second toggle gave %d samples, want the configured 8", got)
	}
}

func TestContextAspect(t *testing.T) {
	ctx := NewContext(800, 600, 1)
	if got := ctx.Aspect(); got != 800.0/600.0 {
		t.Errorf("got aspect %f, want %f", got, 800.0/600.0)
	}

	ctx.Resize(1024, 0)
	if got := ctx.Aspect(); got != 1.0 {
		t.Errorf("zero height should give aspect 1, got %f", got)
	}
}
