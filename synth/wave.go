// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// Waveform selects the oscillator shape of a note.
type Waveform int

const (
	Sine Waveform = iota
	Saw
	Triangle
	Square
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Saw:
		return "saw"
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	}
	return fmt.Sprintf("Waveform(%d)", int(w))
}

// KeyFrequency converts a piano key number to its equal-tempered
// frequency in Hz. Key 49 is A4 = 440 Hz; the playable range is 1..88.
func KeyFrequency(key int) float64 {
	return 440.0 * math.Pow(2, float64(key-49)/12.0)
}

// Sample evaluates one oscillator sample at time t (seconds) and
// frequency f (Hz).
//
// The sine shape is 0.5*(1+sin(f*t)): unipolar in [0,1], with the
// frequency multiplying time directly rather than through 2*pi*f*t.
// That is the shape the historical output format was built on, so it is
// kept as-is; changing it to a canonical sine would shift every pitch.
// The remaining shapes are bipolar in [-0.5, 0.5].
//
// t and f must be finite. A NaN or Inf here means the key-to-frequency
// derivation upstream already went wrong, so Sample panics instead of
// producing garbage audio.
func Sample(w Waveform, t, f float64) float64 {
	mustBeFinite(t, f)

	switch w {
	case Sine:
		return 0.5 * (1 + math.Sin(f*t))
	case Triangle:
		return 2*math.Abs(saw(t, f)) - 0.5
	case Square:
		if int64(math.Floor(2*t*f))&1 == 0 {
			return 0.5
		}
		return -0.5
	default:
		return saw(t, f)
	}
}

// saw ramps from -0.5 to 0.5 with period 1/f.
func saw(t, f float64) float64 {
	x := t * f
	return x - math.Floor(x) - 0.5
}

// Render fills dst with len(dst) consecutive samples of waveform w,
// starting at absolute time t0 and spaced 1/rate seconds apart, scaled
// by amp. Previous contents of dst are overwritten.
func Render(dst []float32, w Waveform, t0, f, amp float64, rate int) {
	mustBeFinite(t0, f)

	dt := 1.0 / float64(rate)
	for i := range dst {
		t := t0 + dt*float64(i)
		dst[i] = float32(amp * Sample(w, t, f))
	}
}

func mustBeFinite(t, f float64) {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		panic(fmt.Sprintf("synth: non-finite time %v", t))
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("synth: non-finite frequency %v", f))
	}
}
