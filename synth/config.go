// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/ihalseide/img-to-sound/pixel"
)

const (
	// Keys is the span of the mapped keyboard. Rows past the span are
	// inaudible regardless of image height.
	Keys = 88

	// MaxPolyphony caps how many notes one column may carry. Amplitudes
	// are pre-divided by it so a fully stacked chord stays in range.
	MaxPolyphony = 12

	DefaultSampleRate = 48000

	// DefaultTempo is 1920 pixels per minute, i.e. 32 columns per
	// second, matching the historical sampleRate/32 pixel length.
	DefaultTempo = 1920
)

// Config carries the immutable run parameters of one synthesis pass.
type Config struct {
	// SampleRate of the output stream in Hz.
	SampleRate int
	// Tempo in pixels (columns) per minute.
	Tempo int
	// StartColumn and StartRow skip the left and top edges of the image.
	StartColumn int
	StartRow    int
}

// DefaultConfig returns a Config with the historical defaults and zero
// offsets.
func DefaultConfig() Config {
	return Config{
		SampleRate: DefaultSampleRate,
		Tempo:      DefaultTempo,
	}
}

// SamplesPerPixel derives how many audio samples one column covers.
func (c Config) SamplesPerPixel() int {
	return int(math.Round(float64(c.SampleRate) * 60 / float64(c.Tempo)))
}

// TimePerPixel is the duration of one column in seconds.
func (c Config) TimePerPixel() float64 {
	return float64(c.SamplesPerPixel()) / float64(c.SampleRate)
}

// Validate checks the parameters that do not depend on the image.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if c.Tempo <= 0 {
		return ErrInvalidTempo
	}
	if c.StartColumn < 0 || c.StartRow < 0 {
		return ErrNegativeOffset
	}
	if c.SamplesPerPixel() <= 0 {
		return ErrZeroSamples
	}

	return nil
}

// ValidateFor additionally rejects offsets that fall outside the grid.
// Both checks run before any column is processed, so an invalid run
// never produces partial output.
func (c Config) ValidateFor(g *pixel.Grid) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.StartColumn >= g.Width || c.StartRow >= g.Height {
		return ErrOffsetOutOfRange
	}

	return nil
}
