// SPDX-License-Identifier: EPL-2.0

package gridtest

import (
	"github.com/ihalseide/img-to-sound/pixel"
)

// NewGrid builds a 3-channel test grid whose pixels come from paint,
// called once per (col, row).
func NewGrid(width, height int, paint func(col, row int) (r, g, b byte)) *pixel.Grid {
	pix := make([]byte, width*height*3)
	for row := range height {
		for col := range width {
			r, g, b := paint(col, row)
			i := (row*width + col) * 3
			pix[i] = r
			pix[i+1] = g
			pix[i+2] = b
		}
	}

	return &pixel.Grid{Width: width, Height: height, Channels: 3, Pix: pix}
}

// Black builds an all-black (silent) grid.
func Black(width, height int) *pixel.Grid {
	return NewGrid(width, height, func(col, row int) (byte, byte, byte) {
		return 0, 0, 0
	})
}

// Solid builds a grid with every pixel set to one color.
func Solid(width, height int, r, g, b byte) *pixel.Grid {
	return NewGrid(width, height, func(col, row int) (byte, byte, byte) {
		return r, g, b
	})
}

// SetRGB overwrites one pixel of a 3-channel grid in place.
func SetRGB(g *pixel.Grid, col, row int, r, gr, b byte) {
	i := (row*g.Width + col) * g.Channels
	g.Pix[i] = r
	g.Pix[i+1] = gr
	g.Pix[i+2] = b
}
