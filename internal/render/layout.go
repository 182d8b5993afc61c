// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package render

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	mgl "github.com/go-gl/mathgl/mgl32"

	graphics "github.com/tbogdala/cubelight/internal/graphics"
)

// The uniform buffer layouts below are a byte-level contract with the
// shader programs. Per std140 a column matrix is stored as an array of
// columns padded to vec4, so the 4x4 transforms are stored transposed as
// three vec4 columns to avoid wasting the padding.
const (
	// MaxInstances is the instance buffer capacity. It must match the
	// array length declared in the instancing vertex shader.
	MaxInstances = 1024

	// InstanceStride is the byte size of one instance record: a
	// transposed transform stored as three vec4 columns.
	InstanceStride = 3 * 4 * 4

	// InstanceBufferSize is the byte size of the full instance buffer.
	InstanceBufferSize = MaxInstances * InstanceStride

	// TransformViewOffset is the byte offset of the transposed
	// world-to-view matrix inside the transform block.
	TransformViewOffset = 0

	// TransformViewSize is the byte size of the transposed view matrix.
	TransformViewSize = 3 * 4 * 4

	// TransformProjectionOffset is the byte offset of the projection
	// matrix inside the transform block.
	TransformProjectionOffset = TransformViewOffset + TransformViewSize

	// TransformProjectionSize is the byte size of the projection matrix.
	TransformProjectionSize = 4 * 4 * 4

	// TransformBlockSize is the total byte size of the transform block.
	TransformBlockSize = TransformProjectionOffset + TransformProjectionSize

	// TransformBlockBinding is the uniform buffer binding point for the
	// per-frame transform block, shared by all scene programs.
	TransformBlockBinding = 0

	// InstanceBlockBinding is the uniform buffer binding point for the
	// instance buffer.
	InstanceBlockBinding = 1
)

// RequiredUniformBlockSize is the minimum implementation uniform block
// capacity in bytes the pipeline needs at startup.
const RequiredUniformBlockSize = 4096 * 4 * 4

// Errors reported by startup validation and the uniform packers.
var (
	ErrTooManyInstances     = errors.New("instance count exceeds the maximum supported capacity")
	ErrBlockSizeMismatch    = errors.New("shader uniform block size does not match the declared layout")
	ErrUniformBlockCapacity = errors.New("implementation uniform block capacity below required minimum")
)

// packMat3x4 writes the first three rows of m as three vec4 columns, which
// is the transposed compact form the shaders consume.
func packMat3x4(dst []byte, m mgl.Mat4) {
	// mgl matrices are column major: m[col*4+row]
	i := 0
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			binary.LittleEndian.PutUint32(dst[i:], math.Float32bits(m[col*4+row]))
			i += 4
		}
	}
}

// packMat4 writes m in column major order.
func packMat4(dst []byte, m mgl.Mat4) {
	for i, v := range m {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(v))
	}
}

// PackTransformBlock serializes the world-to-view and projection matrices
// into dst using the fixed transform block layout. dst must hold at least
// TransformBlockSize bytes.
func PackTransformBlock(dst []byte, worldToView, projection mgl.Mat4) {
	packMat3x4(dst[TransformViewOffset:], worldToView)
	packMat4(dst[TransformProjectionOffset:], projection)
}

// PackInstanceTransforms serializes the given transforms into dst as
// consecutive instance records and returns the number of bytes written.
// More transforms than MaxInstances is an error; only the written prefix
// of the buffer is ever consumed by the instanced draw.
func PackInstanceTransforms(dst []byte, transforms []mgl.Mat4) (int, error) {
	if len(transforms) > MaxInstances {
		return 0, fmt.Errorf("%w: %d > %d", ErrTooManyInstances, len(transforms), MaxInstances)
	}
	for i, transform := range transforms {
		packMat3x4(dst[i*InstanceStride:], transform)
	}
	return len(transforms) * InstanceStride, nil
}

// ValidateUniformCapacity checks the implementation-allowed uniform block
// size against the minimum the pipeline requires.
func ValidateUniformCapacity(gfx graphics.GraphicsProvider) error {
	maxSize := gfx.GetInteger(graphics.MAX_UNIFORM_BLOCK_SIZE)
	if maxSize < RequiredUniformBlockSize {
		return fmt.Errorf("%w: %d B allowed, %d B required",
			ErrUniformBlockCapacity, maxSize, RequiredUniformBlockSize)
	}
	return nil
}

// ValidateBlockLayouts compares the declared layout constants against the
// block sizes the linked programs report. Any disagreement would mean the
// packers and the shaders read different bytes, so a mismatch is fatal.
func ValidateBlockLayouts(gfx graphics.GraphicsProvider, programs *ProgramSet) error {
	checks := []struct {
		program ProgramID
		block   string
		size    int32
	}{
		{Default, "TransformBlock", TransformBlockSize},
		{Instancing, "InstanceBuffer", InstanceBufferSize},
	}

	for _, check := range checks {
		handle := programs.Get(check.program).Handle()
		index := gfx.GetUniformBlockIndex(handle, check.block)
		if index == graphics.INVALID_INDEX {
			return fmt.Errorf("%w: block %q not found", ErrBlockSizeMismatch, check.block)
		}
		reported := gfx.GetUniformBlockDataSize(handle, index)
		if reported != check.size {
			return fmt.Errorf("%w: block %q is %d B, declared %d B",
				ErrBlockSizeMismatch, check.block, reported, check.size)
		}
	}
	return nil
}
