// Package capture produces pixel buffers from native windows. Two
// strategies share one contract: Grab blits whatever is currently on
// screen, Render asks the compositor for the window's full content even
// when it is occluded or minimized.
package capture

import (
	"image"

	"github.com/GriffinCanCode/winlens/internal/errors"
)

// Region is a capture rectangle in window-client coordinates.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Validate rejects regions that could not produce a non-empty buffer.
// Runs before any OS resource is touched.
func (r Region) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return errors.Newf(errors.CodeInvalidArgument,
			"capture region %dx%d must have positive dimensions", r.Width, r.Height)
	}
	return nil
}

// PixelBuffer is a dense, row-major, top-down image of 0xAARRGGBB
// pixels. The alpha channel is always fully opaque regardless of the
// capture strategy. len(Pix) == Width*Height.
type PixelBuffer struct {
	Pix    []uint32
	Width  int
	Height int
}

// Rows returns the buffer as per-row views sharing the backing array.
func (b *PixelBuffer) Rows() [][]uint32 {
	rows := make([][]uint32, b.Height)
	for y := 0; y < b.Height; y++ {
		rows[y] = b.Pix[y*b.Width : (y+1)*b.Width]
	}
	return rows
}

// At returns the pixel at (x, y).
func (b *PixelBuffer) At(x, y int) uint32 {
	return b.Pix[y*b.Width+x]
}

// Image converts the buffer to an image.RGBA for the standard image
// ecosystem (PNG encoding, hashing, resizing).
func (b *PixelBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	i := 0
	for _, p := range b.Pix {
		img.Pix[i] = uint8(p >> 16)
		img.Pix[i+1] = uint8(p >> 8)
		img.Pix[i+2] = uint8(p)
		img.Pix[i+3] = 0xFF
		i += 4
	}
	return img
}

// fromBGRX packs top-down 4-byte BGRX samples into an opaque ARGB
// buffer. The source padding byte is discarded.
func fromBGRX(raw []byte, width, height int) *PixelBuffer {
	pix := make([]uint32, width*height)
	for i := range pix {
		o := i * 4
		pix[i] = 0xFF000000 | uint32(raw[o+2])<<16 | uint32(raw[o+1])<<8 | uint32(raw[o])
	}
	return &PixelBuffer{Pix: pix, Width: width, Height: height}
}

// crop copies a w×h sub-rectangle at (x, y) into a fresh buffer.
func crop(src *PixelBuffer, x, y, w, h int) *PixelBuffer {
	pix := make([]uint32, w*h)
	for row := 0; row < h; row++ {
		start := (y+row)*src.Width + x
		copy(pix[row*w:(row+1)*w], src.Pix[start:start+w])
	}
	return &PixelBuffer{Pix: pix, Width: w, Height: h}
}
