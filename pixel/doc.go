// SPDX-License-Identifier: EPL-2.0

// Package pixel holds the decoded image representation consumed by the
// synthesis core, plus the decoder registry that maps format names to
// image decoders.
//
// # Grid
//
// A Grid is a flat, row-major, interleaved RGB byte array:
//
//	g, err := pixel.NewGrid(width, height, 3, pix)
//	r, gr, b := g.RGBAt(col, row)
//
// The synthesis core treats a Grid as read-only and requires at least
// three 8-bit channels per pixel. FromImage normalizes any image.Image
// (including 16-bit and paletted sources) into that layout, so format
// packages only have to run their codec and hand the result over.
//
// # Decoder Registry
//
// The registry allows dynamic decoder registration by format key:
//
//	registry := pixel.NewRegistry()
//	registry.Register("png", png.Decoder{})
//	decoder, _ := registry.Get("png")
//
// All decode failures wrap ErrCannotLoad so callers can treat a broken
// or unsupported file as one opaque condition.
package pixel
