package tiff

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/tiff"

	"github.com/ihalseide/img-to-sound/pixel"
)

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	img.SetNRGBA(2, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	var encoded bytes.Buffer
	if err := tiff.Encode(&encoded, img, nil); err != nil {
		t.Fatal(err)
	}

	grid, err := Decoder{}.Decode(&encoded)
	if err != nil {
		t.Fatal(err)
	}

	if grid.Width != 3 || grid.Height != 1 {
		t.Fatalf("grid dims = %dx%d, want 3x1", grid.Width, grid.Height)
	}

	r, g, b := grid.RGBAt(0, 0)
	if r != 1 || g != 2 || b != 3 {
		t.Errorf("pixel (0,0) = (%d,%d,%d), want (1,2,3)", r, g, b)
	}
	r, g, b = grid.RGBAt(2, 0)
	if r != 200 || g != 100 || b != 50 {
		t.Errorf("pixel (2,0) = (%d,%d,%d), want (200,100,50)", r, g, b)
	}
}

func TestDecoder_CorruptData(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("II*not a tiff")))
	if !errors.Is(err, pixel.ErrCannotLoad) {
		t.Errorf("Decode() error = %v, want wrapped pixel.ErrCannotLoad", err)
	}
}
