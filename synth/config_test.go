// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"testing"

	"github.com/ihalseide/img-to-sound/internal/gridtest"
)

func TestConfig_SamplesPerPixel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rate  int
		tempo int
		want  int
	}{
		{
			name:  "historical default",
			rate:  48000,
			tempo: 1920,
			want:  1500, // 48000/32
		},
		{
			name:  "four columns per second",
			rate:  48000,
			tempo: 240,
			want:  12000,
		},
		{
			name:  "one column per minute",
			rate:  8000,
			tempo: 1,
			want:  480000,
		},
		{
			name:  "rounds to nearest",
			rate:  44100,
			tempo: 1920,
			want:  1378, // 44100/32 = 1378.125
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Config{SampleRate: tt.rate, Tempo: tt.tempo}
			if got := cfg.SamplesPerPixel(); got != tt.want {
				t.Errorf("SamplesPerPixel() = %d, want %d", got, tt.want)
			}
			if cfg.SamplesPerPixel() <= 0 {
				t.Error("SamplesPerPixel() must stay positive for valid configs")
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "defaults are valid",
			cfg:  DefaultConfig(),
		},
		{
			name:    "zero sample rate",
			cfg:     Config{SampleRate: 0, Tempo: 1920},
			wantErr: ErrInvalidSampleRate,
		},
		{
			name:    "negative sample rate",
			cfg:     Config{SampleRate: -8000, Tempo: 1920},
			wantErr: ErrInvalidSampleRate,
		},
		{
			name:    "zero tempo",
			cfg:     Config{SampleRate: 48000, Tempo: 0},
			wantErr: ErrInvalidTempo,
		},
		{
			name:    "negative tempo",
			cfg:     Config{SampleRate: 48000, Tempo: -60},
			wantErr: ErrInvalidTempo,
		},
		{
			name:    "negative column offset",
			cfg:     Config{SampleRate: 48000, Tempo: 1920, StartColumn: -1},
			wantErr: ErrNegativeOffset,
		},
		{
			name:    "negative row offset",
			cfg:     Config{SampleRate: 48000, Tempo: 1920, StartRow: -3},
			wantErr: ErrNegativeOffset,
		},
		{
			name: "tempo so fast spp rounds to zero",
			cfg:  Config{SampleRate: 10, Tempo: 6000},
			// 10*60/6000 = 0.1 rounds to 0
			wantErr: ErrZeroSamples,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateFor(t *testing.T) {
	t.Parallel()

	grid := gridtest.Black(10, 20)

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "offsets inside image",
			cfg:  Config{SampleRate: 48000, Tempo: 1920, StartColumn: 9, StartRow: 19},
		},
		{
			name:    "column offset at width",
			cfg:     Config{SampleRate: 48000, Tempo: 1920, StartColumn: 10},
			wantErr: ErrOffsetOutOfRange,
		},
		{
			name:    "row offset past height",
			cfg:     Config{SampleRate: 48000, Tempo: 1920, StartRow: 25},
			wantErr: ErrOffsetOutOfRange,
		},
		{
			name:    "base validation still applies",
			cfg:     Config{SampleRate: 0, Tempo: 1920},
			wantErr: ErrInvalidSampleRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.ValidateFor(grid)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateFor() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_TimePerPixel(t *testing.T) {
	t.Parallel()

	cfg := Config{SampleRate: 48000, Tempo: 240}
	// 12000 samples at 48kHz = 0.25s per pixel
	if got := cfg.TimePerPixel(); got != 0.25 {
		t.Errorf("TimePerPixel() = %v, want 0.25", got)
	}
}
