// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

// Package geometry builds the static meshes used by the scene. All meshes
// share one vertex layout: position, normal, tangent and texture coordinate.
package geometry

import (
	"unsafe"

	graphics "github.com/tbogdala/cubelight/internal/graphics"
)

// Vertex attribute layout shared by every mesh: three vec3s and a vec2,
// tightly packed, at attribute locations 0..3.
const (
	// VertexFloats is the number of float32 values per vertex.
	VertexFloats = 3 + 3 + 3 + 2

	// VertexStride is the byte stride between consecutive vertices.
	VertexStride = VertexFloats * 4

	// VertexNormalOffset is the byte offset of the normal attribute.
	VertexNormalOffset = 3 * 4

	// VertexTangentOffset is the byte offset of the tangent attribute.
	VertexTangentOffset = 6 * 4

	// VertexTexCoordOffset is the byte offset of the texture coordinate.
	VertexTexCoordOffset = 9 * 4
)

// Mesh owns a vertex buffer and an index buffer for a piece of static
// geometry. Meshes are immutable after creation and must be destroyed
// exactly once at shutdown.
type Mesh struct {
	gfx graphics.GraphicsProvider

	vao graphics.VertexArray
	vbo graphics.Buffer
	ibo graphics.Buffer

	indexCount int32
}

// NewMesh uploads the given interleaved vertex data and triangle indices
// into new buffer objects and records the attribute layout in a fresh VAO.
func NewMesh(gfx graphics.GraphicsProvider, verts []float32, indexes []uint32) *Mesh {
	m := &Mesh{
		gfx:        gfx,
		indexCount: int32(len(indexes)),
	}

	m.vao = gfx.GenVertexArray()
	gfx.BindVertexArray(m.vao)

	m.vbo = gfx.GenBuffer()
	gfx.BindBuffer(graphics.ARRAY_BUFFER, m.vbo)
	gfx.BufferData(graphics.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), graphics.STATIC_DRAW)

	m.ibo = gfx.GenBuffer()
	gfx.BindBuffer(graphics.ELEMENT_ARRAY_BUFFER, m.ibo)
	gfx.BufferData(graphics.ELEMENT_ARRAY_BUFFER, len(indexes)*4, unsafe.Pointer(&indexes[0]), graphics.STATIC_DRAW)

	gfx.EnableVertexAttribArray(0)
	gfx.VertexAttribPointer(0, 3, graphics.FLOAT, false, VertexStride, 0)
	gfx.EnableVertexAttribArray(1)
	gfx.VertexAttribPointer(1, 3, graphics.FLOAT, false, VertexStride, VertexNormalOffset)
	gfx.EnableVertexAttribArray(2)
	gfx.VertexAttribPointer(2, 3, graphics.FLOAT, false, VertexStride, VertexTangentOffset)
	gfx.EnableVertexAttribArray(3)
	gfx.VertexAttribPointer(3, 2, graphics.FLOAT, false, VertexStride, VertexTexCoordOffset)

	gfx.BindVertexArray(0)
	return m
}

// VAO returns the vertex array handle to bind for drawing.
func (m *Mesh) VAO() graphics.VertexArray {
	return m.vao
}

// IndexCount returns the number of indices to draw.
func (m *Mesh) IndexCount() int32 {
	return m.indexCount
}

// Destroy releases the GL objects owned by the mesh.
func (m *Mesh) Destroy() {
	m.gfx.DeleteBuffer(m.ibo)
	m.gfx.DeleteBuffer(m.vbo)
	m.gfx.DeleteVertexArray(m.vao)
	m.vao = 0
	m.vbo = 0
	m.ibo = 0
	m.indexCount = 0
}

// CreateQuad builds a unit quad in the XZ plane spanning [-1,1] on both
// axes, facing +Y. Used as the scene floor after scaling.
func CreateQuad(gfx graphics.GraphicsProvider) *Mesh {
	// position, normal, tangent, texcoord
	verts := []float32{
		-1.0, 0.0, -1.0, 0.0, 1.0, 0.0, 1.0, 0.0, 0.0, 0.0, 0.0,
		1.0, 0.0, -1.0, 0.0, 1.0, 0.0, 1.0, 0.0, 0.0, 1.0, 0.0,
		1.0, 0.0, 1.0, 0.0, 1.0, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0,
		-1.0, 0.0, 1.0, 0.0, 1.0, 0.0, 1.0, 0.0, 0.0, 0.0, 1.0,
	}
	indexes := []uint32{
		0, 3, 2,
		2, 1, 0,
	}
	return NewMesh(gfx, verts, indexes)
}

// CreateCube builds a unit cube centered on the origin with half extent
// 0.5, 24 vertices with per-face normals and tangents, 36 indices.
func CreateCube(gfx graphics.GraphicsProvider) *Mesh {
	const h = 0.5
	verts := []float32{
		// +X face
		h, -h, -h, 1, 0, 0, 0, 0, 1, 0, 0,
		h, h, -h, 1, 0, 0, 0, 0, 1, 0, 1,
		h, h, h, 1, 0, 0, 0, 0, 1, 1, 1,
		h, -h, h, 1, 0, 0, 0, 0, 1, 1, 0,
		// -X face
		-h, -h, h, -1, 0, 0, 0, 0, -1, 0, 0,
		-h, h, h, -1, 0, 0, 0, 0, -1, 0, 1,
		-h, h, -h, -1, 0, 0, 0, 0, -1, 1, 1,
		-h, -h, -h, -1, 0, 0, 0, 0, -1, 1, 0,
		// +Y face
		-h, h, -h, 0, 1, 0, 1, 0, 0, 0, 0,
		-h, h, h, 0, 1, 0, 1, 0, 0, 0, 1,
		h, h, h, 0, 1, 0, 1, 0, 0, 1, 1,
		h, h, -h, 0, 1, 0, 1, 0, 0, 1, 0,
		// -Y face
		-h, -h, h, 0, -1, 0, 1, 0, 0, 0, 0,
		-h, -h, -h, 0, -1, 0, 1, 0, 0, 0, 1,
		h, -h, -h, 0, -1, 0, 1, 0, 0, 1, 1,
		h, -h, h, 0, -1, 0, 1, 0, 0, 1, 0,
		// +Z face
		h, -h, h, 0, 0, 1, 1, 0, 0, 0, 0,
		h, h, h, 0, 0, 1, 1, 0, 0, 0, 1,
		-h, h, h, 0, 0, 1, 1, 0, 0, 1, 1,
		-h, -h, h, 0, 0, 1, 1, 0, 0, 1, 0,
		// -Z face
		-h, -h, -h, 0, 0, -1, -1, 0, 0, 0, 0,
		-h, h, -h, 0, 0, -1, -1, 0, 0, 0, 1,
		h, h, -h, 0, 0, -1, -1, 0, 0, 1, 1,
		h, -h, -h, 0, 0, -1, -1, 0, 0, 1, 0,
	}

	indexes := make([]uint32, 0, 36)
	for face := uint32(0); face < 6; face++ {
		base := face * 4
		indexes = append(indexes,
			base, base+1, base+2,
			base+2, base+3, base,
		)
	}
	return NewMesh(gfx, verts, indexes)
}
