// Package tiff decodes TIFF images into pixel grids using
// golang.org/x/image/tiff. 16-bit channels are reduced to 8 bits by
// the normalization in pixel.FromImage.
package tiff
