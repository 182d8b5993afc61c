// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package render

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	mgl "github.com/go-gl/mathgl/mgl32"

	graphics "github.com/tbogdala/cubelight/internal/graphics"
)

// sequentialMat4 returns a matrix whose entry at (row, col) is
// row*4 + col, which makes packed bytes easy to predict.
func sequentialMat4() mgl.Mat4 {
	var m mgl.Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			m[col*4+row] = float32(row*4 + col)
		}
	}
	return m
}

func floatAt(data []byte, offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(data[offset:]))
}

func TestPackMat3x4(t *testing.T) {
	m := sequentialMat4()
	dst := make([]byte, InstanceStride)
	packMat3x4(dst, m)

	// transposed storage: vec4 i holds row i of the matrix
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			offset := (row*4 + col) * 4
			got := floatAt(dst, offset)
			want := m.At(row, col)
			if got != want {
				t.Errorf("row %d col %d: packed %f, want %f", row, col, got, want)
			}
		}
	}
}

func TestPackTransformBlock(t *testing.T) {
	view := sequentialMat4()
	projection := mgl.Perspective(mgl.DegToRad(45.0), 800.0/600.0, 0.1, 100.1)

	dst := make([]byte, TransformBlockSize)
	PackTransformBlock(dst, view, projection)

	// the view matrix fills the first 48 bytes transposed
	if got, want := floatAt(dst, TransformViewOffset), view.At(0, 0); got != want {
		t.Errorf("view[0][0]: packed %f, want %f", got, want)
	}
	if got, want := floatAt(dst, TransformViewOffset+44), view.At(2, 3); got != want {
		t.Errorf("view[2][3]: packed %f, want %f", got, want)
	}

	// the projection follows at offset 48 in column major order
	for i, v := range projection {
		got := floatAt(dst, TransformProjectionOffset+i*4)
		if got != v {
			t.Errorf("projection element %d: packed %f, want %f", i, got, v)
		}
	}
}

func TestTransformBlockLayoutConstants(t *testing.T) {
	if TransformBlockSize != 112 {
		t.Errorf("transform block is %d bytes, want 112", TransformBlockSize)
	}
	if TransformProjectionOffset != 48 {
		t.Errorf("projection offset is %d, want 48", TransformProjectionOffset)
	}
	if InstanceBufferSize != 1024*48 {
		t.Errorf("instance buffer is %d bytes, want %d", InstanceBufferSize, 1024*48)
	}
}

func TestPackInstanceTransforms(t *testing.T) {
	transforms := []mgl.Mat4{
		mgl.Translate3D(1, 2, 3),
		mgl.Translate3D(-4, 5, -6),
	}

	dst := make([]byte, InstanceBufferSize)
	written, err := PackInstanceTransforms(dst, transforms)
	if err != nil {
		t.Fatalf("failed to pack: %v", err)
	}
	if written != 2*InstanceStride {
		t.Fatalf("wrote %d bytes, want %d", written, 2*InstanceStride)
	}

	// translation lands in the last component of each transposed row
	for i, transform := range transforms {
		base := i * InstanceStride
		for row := 0; row < 3; row++ {
			got := floatAt(dst, base+(row*4+3)*4)
			want := transform.At(row, 3)
			if got != want {
				t.Errorf("instance %d row %d translation: packed %f, want %f", i, row, got, want)
			}
		}
	}
}

func TestPackInstanceTransformsOverCapacity(t *testing.T) {
	transforms := make([]mgl.Mat4, MaxInstances+1)
	dst := make([]byte, InstanceBufferSize)

	_, err := PackInstanceTransforms(dst, transforms)
	if !errors.Is(err, ErrTooManyInstances) {
		t.Fatalf("got error %v, want ErrTooManyInstances", err)
	}
}

func TestValidateUniformCapacity(t *testing.T) {
	gfx := newRecordingProvider()
	if err := ValidateUniformCapacity(gfx); err != nil {
		t.Errorf("capacity at the required minimum should pass: %v", err)
	}

	gfx.integers[graphics.MAX_UNIFORM_BLOCK_SIZE] = RequiredUniformBlockSize - 1
	if err := ValidateUniformCapacity(gfx); !errors.Is(err, ErrUniformBlockCapacity) {
		t.Errorf("got error %v, want ErrUniformBlockCapacity", err)
	}
}

func TestValidateBlockLayouts(t *testing.T) {
	gfx := newRecordingProvider()
	programs, err := CompileShaders(gfx)
	if err != nil {
		t.Fatalf("failed to compile shaders: %v", err)
	}
	defer programs.Destroy()

	if err = ValidateBlockLayouts(gfx, programs); err != nil {
		t.Errorf("matching block sizes should pass: %v", err)
	}

	gfx.blockSizes["InstanceBuffer"] = InstanceBufferSize + 16
	if err = ValidateBlockLayouts(gfx, programs); !errors.Is(err, ErrBlockSizeMismatch) {
		t.Errorf("got error %v, want ErrBlockSizeMismatch", err)
	}
}
