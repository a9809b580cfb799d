package img2sound

import (
	"context"
	"fmt"
	"io"

	"github.com/ihalseide/img-to-sound/pixel"
	"github.com/ihalseide/img-to-sound/synth"
)

// Convert is the high-level entry point: it synthesizes every column of
// grid under cfg and appends the signed 8-bit PCM stream to out.
//
// The pipeline it runs:
//  1. Validate cfg against the grid (rate, tempo, start offsets)
//  2. Scan columns left to right, rows top to bottom
//  3. Mix each column's notes into a float buffer
//  4. Quantize to signed 8-bit and append to out
//
// It returns the number of bytes written. On success that is always
// (grid.Width - cfg.StartColumn) * cfg.SamplesPerPixel(). Nothing is
// written when validation fails.
//
// Polyphony-cap diagnostics are discarded here; build a synth.New
// Synthesizer directly and set Warnf to observe them.
//
// Example:
//
//	file, _ := os.Open("score.png")
//	grid, _ := png.Decoder{}.Decode(file)
//
//	out, _ := os.Create("score.pcm")
//	n, err := img2sound.Convert(grid, synth.DefaultConfig(), out)
func Convert(grid *pixel.Grid, cfg synth.Config, out io.Writer) (int64, error) {
	s, err := synth.New(grid, cfg)
	if err != nil {
		return 0, fmt.Errorf("convert: %w", err)
	}

	n, err := s.Render(out)
	if err != nil {
		return n, fmt.Errorf("convert: %w", err)
	}

	return n, nil
}

// ConvertParallel behaves exactly like Convert but renders columns on
// up to workers goroutines, reassembling the stream in column order.
// The output bytes are identical to Convert's.
func ConvertParallel(ctx context.Context, grid *pixel.Grid, cfg synth.Config, out io.Writer, workers int) (int64, error) {
	s, err := synth.New(grid, cfg)
	if err != nil {
		return 0, fmt.Errorf("convert: %w", err)
	}

	n, err := s.RenderParallel(ctx, out, workers)
	if err != nil {
		return n, fmt.Errorf("convert: %w", err)
	}

	return n, nil
}
