// Package bmp decodes Windows BMP images into pixel grids using
// golang.org/x/image/bmp.
package bmp
