// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package render

import (
	"fmt"
	"log/slog"

	graphics "github.com/tbogdala/cubelight/internal/graphics"
)

// FrameBufferManager owns the offscreen HDR render target: an RGB16F color
// texture (multisampled when the sample count is above one) and a 32-bit
// float depth renderbuffer, both sized to the window. Resize replaces the
// prior targets so toggling antialiasing or resizing the window may be
// done every time it happens without leaking.
type FrameBufferManager struct {
	gfx graphics.GraphicsProvider
	log *slog.Logger

	fbo         graphics.FrameBuffer
	colorTarget graphics.Texture
	depthTarget graphics.RenderBuffer

	width   int32
	height  int32
	samples int32

	complete bool
}

// NewFrameBufferManager creates an empty manager; Resize must be called
// before the first frame to create the targets.
func NewFrameBufferManager(gfx graphics.GraphicsProvider, log *slog.Logger) *FrameBufferManager {
	return &FrameBufferManager{gfx: gfx, log: log}
}

// Resize recreates the color and depth targets at the given dimensions and
// sample count, releasing any prior targets first. It is safe to call on
// every resize event and antialiasing toggle. An incomplete resulting
// configuration is reported and remembered but not fatal.
func (m *FrameBufferManager) Resize(width, height, samples int) {
	if samples < 1 {
		samples = 1
	}
	gfx := m.gfx

	m.width = int32(width)
	m.height = int32(height)
	m.samples = int32(samples)

	gfx.BindFramebuffer(graphics.FRAMEBUFFER, 0)
	if m.fbo == 0 {
		m.fbo = gfx.GenFramebuffer()
	}
	gfx.BindFramebuffer(graphics.FRAMEBUFFER, m.fbo)

	// color target
	if m.colorTarget != 0 {
		gfx.DeleteTexture(m.colorTarget)
	}
	m.colorTarget = gfx.GenTexture()
	if m.samples > 1 {
		gfx.BindTexture(graphics.TEXTURE_2D_MULTISAMPLE, m.colorTarget)
		gfx.TexImage2DMultisample(graphics.TEXTURE_2D_MULTISAMPLE, m.samples, graphics.RGB16F, m.width, m.height, true)
		gfx.FramebufferTexture2D(graphics.FRAMEBUFFER, graphics.COLOR_ATTACHMENT0, graphics.TEXTURE_2D_MULTISAMPLE, m.colorTarget, 0)
	} else {
		gfx.BindTexture(graphics.TEXTURE_2D, m.colorTarget)
		gfx.TexImage2D(graphics.TEXTURE_2D, 0, graphics.RGB16F, m.width, m.height, 0, graphics.RGB, graphics.FLOAT, nil)
		gfx.TexParameteri(graphics.TEXTURE_2D, graphics.TEXTURE_MIN_FILTER, int32(graphics.LINEAR))
		gfx.TexParameteri(graphics.TEXTURE_2D, graphics.TEXTURE_MAG_FILTER, int32(graphics.LINEAR))
		gfx.FramebufferTexture2D(graphics.FRAMEBUFFER, graphics.COLOR_ATTACHMENT0, graphics.TEXTURE_2D, m.colorTarget, 0)
	}

	// depth target
	if m.depthTarget != 0 {
		gfx.DeleteRenderbuffer(m.depthTarget)
	}
	m.depthTarget = gfx.GenRenderbuffer()
	gfx.BindRenderbuffer(graphics.RENDERBUFFER, m.depthTarget)
	if m.samples > 1 {
		gfx.RenderbufferStorageMultisample(graphics.RENDERBUFFER, m.samples, graphics.DEPTH_COMPONENT32F, m.width, m.height)
	} else {
		gfx.RenderbufferStorage(graphics.RENDERBUFFER, graphics.DEPTH_COMPONENT32F, m.width, m.height)
	}
	gfx.FramebufferRenderbuffer(graphics.FRAMEBUFFER, graphics.DEPTH_ATTACHMENT, graphics.RENDERBUFFER, m.depthTarget)

	gfx.DrawBuffers([]graphics.Enum{graphics.COLOR_ATTACHMENT0})

	status := gfx.CheckFramebufferStatus(graphics.FRAMEBUFFER)
	m.complete = status == graphics.FRAMEBUFFER_COMPLETE
	if !m.complete {
		m.log.Error("failed to create a complete framebuffer",
			"status", fmt.Sprintf("0x%04X", uint32(status)),
			"width", width, "height", height, "samples", samples)
	} else {
		m.log.Debug("recreated offscreen target",
			"width", width, "height", height, "samples", samples)
	}

	gfx.BindFramebuffer(graphics.FRAMEBUFFER, 0)
}

// Bind makes the offscreen target the active draw target.
func (m *FrameBufferManager) Bind() {
	m.gfx.BindFramebuffer(graphics.FRAMEBUFFER, m.fbo)
}

// FrameBuffer returns the framebuffer handle, used as the read side when
// blitting to the screen surface.
func (m *FrameBufferManager) FrameBuffer() graphics.FrameBuffer {
	return m.fbo
}

// ColorTarget returns the color texture handle and the texture target enum
// it must be bound to, which depends on the active sample count.
func (m *FrameBufferManager) ColorTarget() (graphics.Texture, graphics.Enum) {
	if m.samples > 1 {
		return m.colorTarget, graphics.TEXTURE_2D_MULTISAMPLE
	}
	return m.colorTarget, graphics.TEXTURE_2D
}

// Samples returns the sample count of the current targets.
func (m *FrameBufferManager) Samples() int32 {
	return m.samples
}

// IsComplete reports whether the last Resize produced a complete target.
func (m *FrameBufferManager) IsComplete() bool {
	return m.complete
}

// Destroy releases the targets and the framebuffer object.
func (m *FrameBufferManager) Destroy() {
	if m.colorTarget != 0 {
		m.gfx.DeleteTexture(m.colorTarget)
		m.colorTarget = 0
	}
	if m.depthTarget != 0 {
		m.gfx.DeleteRenderbuffer(m.depthTarget)
		m.depthTarget = 0
	}
	if m.fbo != 0 {
		m.gfx.DeleteFramebuffer(m.fbo)
		m.fbo = 0
	}
}
