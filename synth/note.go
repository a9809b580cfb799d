// SPDX-License-Identifier: EPL-2.0

package synth

// Note describes one pixel-derived tone for the duration of a column.
// Notes are built per qualifying pixel and consumed immediately by
// sample rendering; they are never persisted.
type Note struct {
	Time      float64 // start time in seconds
	Frequency float64 // Hz, from the piano-key mapping
	Amplitude float64 // 0..1, already divided by MaxPolyphony
	Waveform  Waveform
}

// ClassifyColor picks the waveform for a pixel by its dominant channel:
// red selects Sine, green Square, blue Triangle. Ties and balanced
// colors fall through to Saw.
func ClassifyColor(r, g, b byte) Waveform {
	switch {
	case r > g && r > b:
		return Sine
	case g > r && g > b:
		return Square
	case b > r && b > g:
		return Triangle
	default:
		return Saw
	}
}

// ColorAmplitude maps a color to a raw 0..1 amplitude using its
// brightest channel. The polyphony division happens at note creation.
func ColorAmplitude(r, g, b byte) float64 {
	x := max(r, g, b)
	return float64(x) / 255.0
}
