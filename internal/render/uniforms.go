// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package render

import (
	"unsafe"

	mgl "github.com/go-gl/mathgl/mgl32"

	graphics "github.com/tbogdala/cubelight/internal/graphics"
)

// TransformBuffer owns the uniform buffer holding the per-frame camera
// transforms. The buffer stays bound to TransformBlockBinding for the
// lifetime of the pipeline.
type TransformBuffer struct {
	gfx     graphics.GraphicsProvider
	buffer  graphics.Buffer
	staging [TransformBlockSize]byte
}

// NewTransformBuffer allocates the GL buffer at the fixed block size and
// binds it to the transform block binding point.
func NewTransformBuffer(gfx graphics.GraphicsProvider) *TransformBuffer {
	t := &TransformBuffer{gfx: gfx}
	t.buffer = gfx.GenBuffer()
	gfx.BindBuffer(graphics.UNIFORM_BUFFER, t.buffer)
	gfx.BufferData(graphics.UNIFORM_BUFFER, TransformBlockSize, nil, graphics.DYNAMIC_DRAW)
	gfx.BindBufferBase(graphics.UNIFORM_BUFFER, TransformBlockBinding, t.buffer)
	gfx.BindBuffer(graphics.UNIFORM_BUFFER, 0)
	return t
}

// Update packs the camera matrices per the declared layout and uploads the
// whole block. Called once per frame before any draw that consumes it.
func (t *TransformBuffer) Update(worldToView, projection mgl.Mat4) {
	PackTransformBlock(t.staging[:], worldToView, projection)

	gfx := t.gfx
	gfx.BindBuffer(graphics.UNIFORM_BUFFER, t.buffer)
	gfx.BufferSubData(graphics.UNIFORM_BUFFER, 0, TransformBlockSize, unsafe.Pointer(&t.staging[0]))
	gfx.BindBuffer(graphics.UNIFORM_BUFFER, 0)
}

// Destroy releases the GL buffer.
func (t *TransformBuffer) Destroy() {
	t.gfx.DeleteBuffer(t.buffer)
	t.buffer = 0
}

// InstanceBuffer owns the uniform buffer holding per-instance transforms.
// It is allocated at the maximum capacity; each frame only the prefix for
// the active instances is rewritten and drawn.
type InstanceBuffer struct {
	gfx     graphics.GraphicsProvider
	buffer  graphics.Buffer
	staging [InstanceBufferSize]byte

	activeCount int
}

// NewInstanceBuffer allocates the GL buffer sized for MaxInstances.
func NewInstanceBuffer(gfx graphics.GraphicsProvider) *InstanceBuffer {
	ib := &InstanceBuffer{gfx: gfx}
	ib.buffer = gfx.GenBuffer()
	gfx.BindBuffer(graphics.UNIFORM_BUFFER, ib.buffer)
	gfx.BufferData(graphics.UNIFORM_BUFFER, InstanceBufferSize, nil, graphics.DYNAMIC_DRAW)
	gfx.BindBuffer(graphics.UNIFORM_BUFFER, 0)
	return ib
}

// Update packs the transforms and rewrites the active range of the buffer
// through a map/write/unmap cycle, leaving the buffer bound to the
// instance block binding point for the draw that follows. The mapping may
// block until prior GPU reads of the buffer complete, which is the only
// synchronization the single-threaded frame needs.
func (ib *InstanceBuffer) Update(transforms []mgl.Mat4) error {
	written, err := PackInstanceTransforms(ib.staging[:], transforms)
	if err != nil {
		return err
	}
	ib.activeCount = len(transforms)

	gfx := ib.gfx
	gfx.BindBufferBase(graphics.UNIFORM_BUFFER, InstanceBlockBinding, ib.buffer)
	ptr := gfx.MapBuffer(graphics.UNIFORM_BUFFER, graphics.WRITE_ONLY)
	if ptr != nil && written > 0 {
		dst := unsafe.Slice((*byte)(ptr), written)
		copy(dst, ib.staging[:written])
	}
	gfx.UnmapBuffer(graphics.UNIFORM_BUFFER)
	return nil
}

// ActiveCount returns the number of instances written by the last Update.
func (ib *InstanceBuffer) ActiveCount() int32 {
	return int32(ib.activeCount)
}

// Unbind detaches the buffer from the instance block binding point after
// the consuming draw.
func (ib *InstanceBuffer) Unbind() {
	ib.gfx.BindBufferBase(graphics.UNIFORM_BUFFER, InstanceBlockBinding, 0)
}

// Destroy releases the GL buffer.
func (ib *InstanceBuffer) Destroy() {
	ib.gfx.DeleteBuffer(ib.buffer)
	ib.buffer = 0
}
