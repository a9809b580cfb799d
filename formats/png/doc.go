// SPDX-License-Identifier: EPL-2.0

// Package png decodes PNG images into pixel grids.
//
// All PNG color models are accepted; the standard library codec handles
// the format and pixel.FromImage normalizes the result to interleaved
// 8-bit RGB:
//
//	decoder := png.Decoder{}
//	file, _ := os.Open("score.png")
//	grid, err := decoder.Decode(file)
//
// Decode failures wrap pixel.ErrCannotLoad.
package png
