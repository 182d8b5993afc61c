// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package geometry

import (
	"testing"
	"unsafe"

	graphics "github.com/tbogdala/cubelight/internal/graphics"
)

// meshProvider records the buffer uploads and attribute declarations a
// mesh makes during creation.
type meshProvider struct {
	graphics.NullProvider

	uploads    map[graphics.Enum]int // target -> byte size
	attributes []attribDecl
}

type attribDecl struct {
	index  uint32
	size   int32
	stride int32
	offset int
}

func newMeshProvider() *meshProvider {
	return &meshProvider{uploads: map[graphics.Enum]int{}}
}

func (mp *meshProvider) BufferData(target graphics.Enum, size int, data unsafe.Pointer, usage graphics.Enum) {
	mp.uploads[target] = size
}

func (mp *meshProvider) VertexAttribPointer(index uint32, size int32, ty graphics.Enum, normalized bool, stride int32, offset int) {
	mp.attributes = append(mp.attributes, attribDecl{index, size, stride, offset})
}

func TestVertexLayoutConstants(t *testing.T) {
	if VertexFloats != 11 {
		t.Errorf("got %d floats per vertex, want 11", VertexFloats)
	}
	if VertexStride != 44 {
		t.Errorf("got stride %d, want 44", VertexStride)
	}
	if VertexNormalOffset != 12 || VertexTangentOffset != 24 || VertexTexCoordOffset != 36 {
		t.Errorf("got offsets %d/%d/%d, want 12/24/36",
			VertexNormalOffset, VertexTangentOffset, VertexTexCoordOffset)
	}
}

func TestNewMeshAttributeDeclarations(t *testing.T) {
	gfx := newMeshProvider()
	m := CreateQuad(gfx)
	defer m.Destroy()

	want := []attribDecl{
		{0, 3, VertexStride, 0},
		{1, 3, VertexStride, VertexNormalOffset},
		{2, 3, VertexStride, VertexTangentOffset},
		{3, 2, VertexStride, VertexTexCoordOffset},
	}
	if len(gfx.attributes) != len(want) {
		t.Fatalf("declared %d attributes, want %d", len(gfx.attributes), len(want))
	}
	for i, decl := range want {
		if gfx.attributes[i] != decl {
			t.Errorf("attribute %d declared as %+v, want %+v", i, gfx.attributes[i], decl)
		}
	}
}

func TestCreateQuad(t *testing.T) {
	gfx := newMeshProvider()
	m := CreateQuad(gfx)
	defer m.Destroy()

	if m.IndexCount() != 6 {
		t.Errorf("got %d indices, want 6", m.IndexCount())
	}
	if got := gfx.uploads[graphics.ARRAY_BUFFER]; got != 4*VertexStride {
		t.Errorf("uploaded %d vertex bytes, want %d", got, 4*VertexStride)
	}
	if got := gfx.uploads[graphics.ELEMENT_ARRAY_BUFFER]; got != 6*4 {
		t.Errorf("uploaded %d index bytes, want %d", got, 6*4)
	}
}

func TestCreateCube(t *testing.T) {
	gfx := newMeshProvider()
	m := CreateCube(gfx)
	defer m.Destroy()

	if m.IndexCount() != 36 {
		t.Errorf("got %d indices, want 36", m.IndexCount())
	}
	if got := gfx.uploads[graphics.ARRAY_BUFFER]; got != 24*VertexStride {
		t.Errorf("uploaded %d vertex bytes, want %d", got, 24*VertexStride)
	}
	if got := gfx.uploads[graphics.ELEMENT_ARRAY_BUFFER]; got != 36*4 {
		t.Errorf("uploaded %d index bytes, want %d", got, 36*4)
	}
}
