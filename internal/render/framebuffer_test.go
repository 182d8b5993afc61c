// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package render

import (
	"testing"

	graphics "github.com/tbogdala/cubelight/internal/graphics"
)

func TestFrameBufferResizeMultisampled(t *testing.T) {
	gfx := newRecordingProvider()
	m := NewFrameBufferManager(gfx, discardLogger())
	defer m.Destroy()

	m.Resize(800, 600, 4)

	if !m.IsComplete() {
		t.Fatal("target should be complete after Resize")
	}
	if m.Samples() != 4 {
		t.Errorf("got %d samples, want 4", m.Samples())
	}
	if gfx.multisampleUploads != 1 || gfx.plainUploads != 0 {
		t.Errorf("got %d multisampled and %d plain color uploads, want 1 and 0",
			gfx.multisampleUploads, gfx.plainUploads)
	}
	if _, target := m.ColorTarget(); target != graphics.TEXTURE_2D_MULTISAMPLE {
		t.Errorf("color target type is 0x%04X, want TEXTURE_2D_MULTISAMPLE", uint32(target))
	}
}

func TestFrameBufferResizeSingleSampled(t *testing.T) {
	gfx := newRecordingProvider()
	m := NewFrameBufferManager(gfx, discardLogger())
	defer m.Destroy()

	// zero samples clamps to one
	m.Resize(640, 480, 0)

	if m.Samples() != 1 {
		t.Errorf("got %d samples, want 1", m.Samples())
	}
	if gfx.plainUploads != 1 || gfx.multisampleUploads != 0 {
		t.Errorf("got %d plain and %d multisampled color uploads, want 1 and 0",
			gfx.plainUploads, gfx.multisampleUploads)
	}
	if _, target := m.ColorTarget(); target != graphics.TEXTURE_2D {
		t.Errorf("color target type is 0x%04X, want TEXTURE_2D", uint32(target))
	}
}

func TestFrameBufferResizeReleasesOldTargets(t *testing.T) {
	gfx := newRecordingProvider()
	m := NewFrameBufferManager(gfx, discardLogger())
	defer m.Destroy()

	m.Resize(800, 600, 4)
	m.Resize(800, 600, 1)

	if gfx.deletedTextures < 1 {
		t.Error("resizing should release the previous color target")
	}
	if gfx.deletedRenderbufs < 1 {
		t.Error("resizing should release the previous depth target")
	}
	if !m.IsComplete() {
		t.Error("target should be complete after the second Resize")
	}
}
