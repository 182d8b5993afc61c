// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package render

import (
	"io"
	"log/slog"
	"unsafe"

	graphics "github.com/tbogdala/cubelight/internal/graphics"
)

// recordingProvider notes the calls the code under test makes so the tests
// can assert on ordering and arguments without a live GL context.
type recordingProvider struct {
	graphics.NullProvider

	calls []string

	// integer query results handed back by GetInteger
	integers map[graphics.Enum]int32

	// uniform block sizes reported per block name
	blockSizes map[string]int32
	blockNames map[uint32]string
	nextBlock  uint32

	enabled map[graphics.Enum]bool

	boundFramebuffers  []graphics.FrameBuffer
	instancedCount     int32
	drawArraysCounts   []int32
	multisampleUploads int
	plainUploads       int
	deletedTextures    int
	deletedRenderbufs  int
	mapScratch         []byte
}

func newRecordingProvider() *recordingProvider {
	return &recordingProvider{
		integers: map[graphics.Enum]int32{
			graphics.MAX_UNIFORM_BLOCK_SIZE: RequiredUniformBlockSize,
		},
		blockSizes: map[string]int32{
			"TransformBlock": TransformBlockSize,
			"InstanceBuffer": InstanceBufferSize,
		},
		blockNames: map[uint32]string{},
		enabled:    map[graphics.Enum]bool{},
	}
}

func (rp *recordingProvider) record(name string) {
	rp.calls = append(rp.calls, name)
}

// callIndex returns the position of the first occurrence of name at or
// after from, or -1.
func (rp *recordingProvider) callIndex(name string, from int) int {
	for i := from; i < len(rp.calls); i++ {
		if rp.calls[i] == name {
			return i
		}
	}
	return -1
}

func (rp *recordingProvider) Viewport(x, y, width, height int32) { rp.record("Viewport") }
func (rp *recordingProvider) ClearColor(r, g, b, a float32)      { rp.record("ClearColor") }
func (rp *recordingProvider) Clear(mask graphics.Enum)           { rp.record("Clear") }

func (rp *recordingProvider) Enable(capability graphics.Enum) {
	rp.enabled[capability] = true
	rp.record("Enable")
}

func (rp *recordingProvider) Disable(capability graphics.Enum) {
	rp.enabled[capability] = false
	rp.record("Disable")
}

func (rp *recordingProvider) GetInteger(name graphics.Enum) int32 {
	return rp.integers[name]
}

func (rp *recordingProvider) BufferSubData(target graphics.Enum, offset, size int, data unsafe.Pointer) {
	rp.record("BufferSubData")
}

func (rp *recordingProvider) MapBuffer(target, access graphics.Enum) unsafe.Pointer {
	rp.record("MapBuffer")
	rp.mapScratch = make([]byte, InstanceBufferSize)
	return unsafe.Pointer(&rp.mapScratch[0])
}

func (rp *recordingProvider) BindFramebuffer(target graphics.Enum, fb graphics.FrameBuffer) {
	rp.boundFramebuffers = append(rp.boundFramebuffers, fb)
	rp.record("BindFramebuffer")
}

func (rp *recordingProvider) BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int32, mask, filter graphics.Enum) {
	rp.record("BlitFramebuffer")
}

func (rp *recordingProvider) TexImage2D(target graphics.Enum, level int32, internalFormat graphics.Enum, width, height, border int32, format, ty graphics.Enum, data unsafe.Pointer) {
	rp.plainUploads++
	rp.record("TexImage2D")
}

func (rp *recordingProvider) TexImage2DMultisample(target graphics.Enum, samples int32, internalFormat graphics.Enum, width, height int32, fixedLocations bool) {
	rp.multisampleUploads++
	rp.record("TexImage2DMultisample")
}

func (rp *recordingProvider) DeleteTexture(t graphics.Texture) {
	rp.deletedTextures++
	rp.record("DeleteTexture")
}

func (rp *recordingProvider) DeleteRenderbuffer(rb graphics.RenderBuffer) {
	rp.deletedRenderbufs++
	rp.record("DeleteRenderbuffer")
}

func (rp *recordingProvider) GetUniformLocation(p graphics.Program, name string) int32 {
	return 0
}

func (rp *recordingProvider) GetUniformBlockIndex(p graphics.Program, name string) uint32 {
	if _, known := rp.blockSizes[name]; !known {
		return graphics.INVALID_INDEX
	}
	rp.nextBlock++
	rp.blockNames[rp.nextBlock] = name
	return rp.nextBlock
}

func (rp *recordingProvider) GetUniformBlockDataSize(p graphics.Program, index uint32) int32 {
	return rp.blockSizes[rp.blockNames[index]]
}

func (rp *recordingProvider) DrawArrays(mode graphics.Enum, first, count int32) {
	rp.drawArraysCounts = append(rp.drawArraysCounts, count)
	rp.record("DrawArrays")
}

func (rp *recordingProvider) DrawElements(mode graphics.Enum, count int32, ty graphics.Enum, offset int) {
	rp.record("DrawElements")
}

func (rp *recordingProvider) DrawElementsInstanced(mode graphics.Enum, count int32, ty graphics.Enum, offset int, instanceCount int32) {
	rp.instancedCount = instanceCount
	rp.record("DrawElementsInstanced")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
