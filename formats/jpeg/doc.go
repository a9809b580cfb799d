// Package jpeg decodes JPEG images into pixel grids. Note that JPEG is
// lossy: a pixel painted pure black may decode slightly off-black and
// then count as a (very quiet) note instead of silence.
package jpeg
