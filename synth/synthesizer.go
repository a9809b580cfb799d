// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"io"

	"github.com/ihalseide/img-to-sound/pcm"
	"github.com/ihalseide/img-to-sound/pixel"
)

// Synthesizer turns image columns into signed 8-bit PCM, one column per
// time slice. The grid is read-only and every column owns its own
// buffers, so SynthesizeColumn is safe to call from multiple goroutines
// at once.
type Synthesizer struct {
	grid *pixel.Grid
	cfg  Config
	spp  int

	// Warnf receives advisory diagnostics, currently only the polyphony
	// cap being hit. It never alters the produced samples. Leave nil to
	// discard diagnostics. During RenderParallel it may be called from
	// several goroutines concurrently.
	Warnf func(format string, args ...any)
}

// New validates cfg against the grid and builds a Synthesizer. Invalid
// rate, tempo or offsets are rejected here, before any column work.
func New(grid *pixel.Grid, cfg Config) (*Synthesizer, error) {
	if err := cfg.ValidateFor(grid); err != nil {
		return nil, fmt.Errorf("synth config: %w", err)
	}

	return &Synthesizer{
		grid: grid,
		cfg:  cfg,
		spp:  cfg.SamplesPerPixel(),
	}, nil
}

// Config returns the validated run parameters.
func (s *Synthesizer) Config() Config { return s.cfg }

// SamplesPerPixel returns how many bytes one column produces.
func (s *Synthesizer) SamplesPerPixel() int { return s.spp }

// Columns returns how many columns the run covers.
func (s *Synthesizer) Columns() int { return s.grid.Width - s.cfg.StartColumn }

// SynthesizeColumn renders column col into a fresh byte slice of
// SamplesPerPixel signed 8-bit samples. The result is deterministic:
// the same grid, config and column always yield identical bytes.
//
// Rows are scanned top to bottom inside the keyboard span, so when the
// polyphony cap cuts a column short it is the lower-pitched rows that
// get dropped, never the earlier ones.
func (s *Synthesizer) SynthesizeColumn(col int) []byte {
	buf := make([]float32, s.spp)
	note := make([]float32, s.spp)

	t := float64(col-s.cfg.StartColumn) * s.cfg.TimePerPixel()
	maxRow := min(s.grid.Height, s.cfg.StartRow+Keys)
	notes := 0

	for row := s.cfg.StartRow; row < maxRow; row++ {
		r, g, b := s.grid.RGBAt(col, row)
		if r == 0 && g == 0 && b == 0 {
			// silence, does not consume a polyphony slot
			continue
		}
		if notes == MaxPolyphony {
			s.warnf("maximum number of notes (%d) placed at one time at column %d", MaxPolyphony, col)
			break
		}
		notes++

		n := Note{
			Time:      t,
			Frequency: KeyFrequency(Keys - (row - s.cfg.StartRow)),
			Amplitude: ColorAmplitude(r, g, b) / MaxPolyphony,
			Waveform:  ClassifyColor(r, g, b),
		}
		Render(note, n.Waveform, n.Time, n.Frequency, n.Amplitude, s.cfg.SampleRate)
		for i := range buf {
			buf[i] += note[i]
		}
	}

	// A column with no notes stays all-zero: explicit silence.
	out := make([]byte, s.spp)
	for i, v := range buf {
		out[i] = byte(pcm.Float32ToInt8(v))
	}
	return out
}

// Render synthesizes every column from StartColumn to the right edge in
// order and appends the quantized bytes to w. It returns the number of
// bytes written, which on success is Columns()*SamplesPerPixel().
func (s *Synthesizer) Render(w io.Writer) (int64, error) {
	var written int64

	for col := s.cfg.StartColumn; col < s.grid.Width; col++ {
		n, err := w.Write(s.SynthesizeColumn(col))
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("write column %d: %w", col, err)
		}
	}

	return written, nil
}

func (s *Synthesizer) warnf(format string, args ...any) {
	if s.Warnf != nil {
		s.Warnf(format, args...)
	}
}
