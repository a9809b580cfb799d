// SPDX-License-Identifier: EPL-2.0

package pixel

import (
	"image"
)

// Grid is a decoded raster image as a flat, row-major, interleaved byte
// array. Sample (col,row) channel c lives at (row*Width+col)*Channels+c.
// At least the first three channels are R, G, B at 8-bit depth; decoders
// must normalize any other layout before handing a Grid to the synthesis
// core. A Grid is read-only once built.
type Grid struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// NewGrid validates the dimensions against the pixel data and wraps it.
func NewGrid(width, height, channels int, pix []byte) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyImage
	}
	if channels < 3 {
		return nil, ErrTooFewChannels
	}
	if len(pix) != width*height*channels {
		return nil, ErrShortPixelData
	}

	return &Grid{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      pix,
	}, nil
}

// RGBAt returns the red, green and blue samples at (col, row).
// Bounds are the caller's responsibility.
func (g *Grid) RGBAt(col, row int) (r, gr, b byte) {
	i := (row*g.Width + col) * g.Channels
	return g.Pix[i], g.Pix[i+1], g.Pix[i+2]
}

// FromImage normalizes any image.Image into a 3-channel RGB grid.
// 16-bit source channels are reduced to their high byte.
func FromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	pix := make([]byte, w*h*3)

	for y := range h {
		for x := range w {
			r, gr, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*w + x) * 3
			pix[i] = byte(r >> 8)
			pix[i+1] = byte(gr >> 8)
			pix[i+2] = byte(b >> 8)
		}
	}

	return &Grid{Width: w, Height: h, Channels: 3, Pix: pix}
}
