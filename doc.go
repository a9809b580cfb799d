// SPDX-License-Identifier: EPL-2.0

// Package img2sound converts raster images into raw audio by reading
// them as a piano roll: columns are time steps, rows are pitches, and
// colors pick the note's loudness and waveform.
//
// # How An Image Becomes Sound
//
// Each column of the image is one time slice. Within a column, up to 88
// rows map onto piano keys with the top row as the highest key; a pure
// black pixel is silence, anything else sounds a note:
//   - pitch comes from the row (equal-tempered, key 49 = A4 = 440 Hz)
//   - loudness comes from the brightest color channel
//   - the waveform comes from the dominant channel: red is a sine,
//     green a square, blue a triangle, and balanced colors a sawtooth
//
// At most 12 notes sound at once per column; amplitudes are divided by
// that cap so a full chord cannot clip. The mixed column is quantized
// to signed 8-bit PCM and appended to the output stream.
//
// # Quick Start
//
// The simplest way to convert an image is the Convert facade:
//
//	// Decode an image
//	decoder := png.Decoder{}
//	file, _ := os.Open("score.png")
//	grid, _ := decoder.Decode(file)
//
//	// Synthesize with the defaults (48 kHz, 32 columns per second)
//	out, _ := os.Create("score.pcm")
//	n, err := img2sound.Convert(grid, synth.DefaultConfig(), out)
//
// The output is headerless signed 8-bit PCM; play it with e.g.
//
//	aplay -f S8 -r 48000 score.pcm
//
// or write a WAV container instead with pcm.WriteWAV8 so the sample
// rate travels with the file.
//
// # Supported Image Formats
//
// Each format has its own decoder package:
//   - PNG via formats/png
//   - JPEG via formats/jpeg
//   - GIF via formats/gif
//   - BMP via formats/bmp
//   - TIFF via formats/tiff
//
// All decoders return a *pixel.Grid, and the pixel.Registry lets an
// application pick a decoder by file extension.
//
// # Custom Pipelines
//
// For more control, build the synthesizer directly:
//
//	s, err := synth.New(grid, synth.Config{
//	    SampleRate: 44100,
//	    Tempo:      960, // 16 columns per second
//	    StartRow:   4,
//	})
//	s.Warnf = log.Printf // observe polyphony-cap diagnostics
//	n, err := s.Render(out)
//
// Column synthesis is deterministic and shares no mutable state, so
// RenderParallel can spread the work over several goroutines and still
// produce a byte-identical stream.
//
// See the synth, pixel and pcm subpackages for detailed documentation.
package img2sound
