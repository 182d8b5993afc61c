// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package textures

import "testing"

func TestCheckerBoardPixels(t *testing.T) {
	const size, tiles = 8, 4
	pix := CheckerBoardPixels(size, tiles)

	if len(pix) != size*size*4 {
		t.Fatalf("got %d bytes, want %d", len(pix), size*size*4)
	}

	at := func(x, y int) uint8 {
		return pix[(y*size+x)*4]
	}

	// corner tile is white, neighbors alternate
	if at(0, 0) != 255 {
		t.Error("corner tile should be white")
	}
	if at(2, 0) != 0 {
		t.Error("next tile across should be black")
	}
	if at(0, 2) != 0 {
		t.Error("next tile down should be black")
	}
	if at(2, 2) != 255 {
		t.Error("diagonal neighbor should be white")
	}

	// every pixel is gray scale and opaque
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != pix[i+1] || pix[i] != pix[i+2] {
			t.Fatalf("pixel %d is not gray scale", i/4)
		}
		if pix[i+3] != 255 {
			t.Fatalf("pixel %d is not opaque", i/4)
		}
	}
}

func TestCheckerBoardTileSize(t *testing.T) {
	const size, tiles = 16, 2
	pix := CheckerBoardPixels(size, tiles)

	// every pixel within the first 8x8 tile matches the corner
	for y := 0; y < size/tiles; y++ {
		for x := 0; x < size/tiles; x++ {
			if pix[(y*size+x)*4] != 255 {
				t.Fatalf("pixel (%d, %d) should be inside the white corner tile", x, y)
			}
		}
	}
}
