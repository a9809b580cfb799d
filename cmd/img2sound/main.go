package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ihalseide/img-to-sound/formats/bmp"
	"github.com/ihalseide/img-to-sound/formats/gif"
	"github.com/ihalseide/img-to-sound/formats/jpeg"
	"github.com/ihalseide/img-to-sound/formats/png"
	"github.com/ihalseide/img-to-sound/formats/tiff"
	"github.com/ihalseide/img-to-sound/pixel"
)

var rootCmd = &cobra.Command{
	Use:   "img2sound",
	Short: "Convert images to audio",
	Long: `img2sound reads an image as a piano roll (columns are time,
rows are pitch, colors are loudness and waveform) and renders it as
signed 8-bit PCM audio.`,
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}

// newRegistry wires up every built-in image format.
func newRegistry() *pixel.Registry {
	reg := pixel.NewRegistry()
	reg.Register("png", png.Decoder{})
	reg.Register("jpg", jpeg.Decoder{})
	reg.Register("jpeg", jpeg.Decoder{})
	reg.Register("gif", gif.Decoder{})
	reg.Register("bmp", bmp.Decoder{})
	reg.Register("tif", tiff.Decoder{})
	reg.Register("tiff", tiff.Decoder{})
	return reg
}

func decodeImage(path string) (*pixel.Grid, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	dec, ok := newRegistry().Get(ext)
	if !ok {
		return nil, fmt.Errorf("unsupported image format %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	grid, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return grid, nil
}
