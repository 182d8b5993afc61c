// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

// Package textures creates the 2D textures and sampler state for the scene:
// solid colors, a generated checkerboard and image-file-backed maps.
package textures

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"unsafe"

	_ "image/jpeg"
	_ "image/png"

	graphics "github.com/tbogdala/cubelight/internal/graphics"
)

const maxAnisotropy = 8.0

// Bank creates and owns texture and sampler objects. All of them are
// released together by Destroy, exactly once, at shutdown.
type Bank struct {
	gfx graphics.GraphicsProvider

	anisotropic graphics.Sampler
	created     []graphics.Texture
}

// NewBank creates the bank and its anisotropic sampler.
func NewBank(gfx graphics.GraphicsProvider) *Bank {
	b := &Bank{gfx: gfx}

	b.anisotropic = gfx.GenSampler()
	gfx.SamplerParameteri(b.anisotropic, graphics.TEXTURE_MIN_FILTER, int32(graphics.LINEAR_MIPMAP_LINEAR))
	gfx.SamplerParameteri(b.anisotropic, graphics.TEXTURE_MAG_FILTER, int32(graphics.LINEAR))
	gfx.SamplerParameteri(b.anisotropic, graphics.TEXTURE_WRAP_S, int32(graphics.REPEAT))
	gfx.SamplerParameteri(b.anisotropic, graphics.TEXTURE_WRAP_T, int32(graphics.REPEAT))
	gfx.SamplerParameterf(b.anisotropic, graphics.TEXTURE_MAX_ANISOTROPY, maxAnisotropy)

	return b
}

// AnisotropicSampler returns the sampler handle shared by all material
// texture units.
func (b *Bank) AnisotropicSampler() graphics.Sampler {
	return b.anisotropic
}

// CreateSingleColor makes a 1x1 texture of the given color.
func (b *Bank) CreateSingleColor(r, g, bl uint8) graphics.Texture {
	pix := []uint8{r, g, bl, 255}
	return b.upload(pix, 1, 1, graphics.RGBA8)
}

// CreateCheckerBoard makes a size x size black and white checkerboard with
// the given number of tiles per side.
func (b *Bank) CreateCheckerBoard(size, tiles int) graphics.Texture {
	pix := CheckerBoardPixels(size, tiles)
	return b.upload(pix, int32(size), int32(size), graphics.RGBA8)
}

// CheckerBoardPixels generates the RGBA pixel data for a checkerboard
// texture: size x size pixels, tiles x tiles alternating black and white
// squares starting with white in the corner.
func CheckerBoardPixels(size, tiles int) []uint8 {
	tileSize := size / tiles
	pix := make([]uint8, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var v uint8
			if ((x/tileSize)+(y/tileSize))%2 == 0 {
				v = 255
			}
			i := (y*size + x) * 4
			pix[i+0] = v
			pix[i+1] = v
			pix[i+2] = v
			pix[i+3] = 255
		}
	}
	return pix
}

// LoadFile decodes an image file and uploads it as a texture. Color data
// should pass srgb=true so sampling converts it to linear space; data maps
// such as normals and roughness stay linear.
func (b *Bank) LoadFile(path string, srgb bool) (graphics.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return 0, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}

	rgba, ok := img.(*image.RGBA)
	if !ok {
		bounds := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	internalFormat := graphics.RGBA8
	if srgb {
		internalFormat = graphics.SRGB8_ALPHA8
	}
	w := int32(rgba.Rect.Size().X)
	h := int32(rgba.Rect.Size().Y)
	return b.upload(rgba.Pix, w, h, internalFormat), nil
}

// upload creates a mipmapped GL texture from raw RGBA bytes and tracks the
// handle for release at shutdown.
func (b *Bank) upload(pix []uint8, width, height int32, internalFormat graphics.Enum) graphics.Texture {
	gfx := b.gfx
	tex := gfx.GenTexture()
	gfx.BindTexture(graphics.TEXTURE_2D, tex)
	gfx.TexImage2D(graphics.TEXTURE_2D, 0, internalFormat, width, height, 0,
		graphics.RGBA, graphics.UNSIGNED_BYTE, unsafe.Pointer(&pix[0]))
	gfx.GenerateMipmap(graphics.TEXTURE_2D)
	gfx.BindTexture(graphics.TEXTURE_2D, 0)

	b.created = append(b.created, tex)
	return tex
}

// Destroy releases every texture the bank created and its sampler.
func (b *Bank) Destroy() {
	for _, tex := range b.created {
		b.gfx.DeleteTexture(tex)
	}
	b.created = nil
	b.gfx.DeleteSampler(b.anisotropic)
	b.anisotropic = 0
}
