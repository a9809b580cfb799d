// SPDX-License-Identifier: EPL-2.0

// Package synth is the synthesis core: it reads an image column by
// column and renders each column as one slice of audio, treating rows
// as piano keys and colors as note parameters.
//
// # Pixel To Note Mapping
//
// Within a column, rows [StartRow, StartRow+88) map onto an 88-key
// keyboard with the top row as key 88 (highest pitch). A pure black
// pixel is silence; any other pixel becomes a Note:
//
//   - frequency: KeyFrequency(88 - relativeRow), equal-tempered with
//     key 49 = A4 = 440 Hz
//   - amplitude: brightest channel / 255, divided by MaxPolyphony
//   - waveform: dominant color channel (red=Sine, green=Square,
//     blue=Triangle, otherwise Saw)
//
// At most MaxPolyphony (12) notes sound per column. When a column has
// more lit rows than that, the lower-pitched rows are dropped and a
// diagnostic is emitted through Synthesizer.Warnf; output for the
// column is the truncated mix, not an error.
//
// # Timing
//
// Tempo is expressed in pixels per minute. One column covers
// SamplesPerPixel = round(rate*60/tempo) samples, and the running time
// handed to the oscillators grows by SamplesPerPixel/rate per column,
// so phase is continuous across the whole image.
//
// # Output
//
// Columns accumulate into a float32 buffer and quantize to signed
// 8-bit PCM (sample * 127, truncated toward zero). There is no
// saturation stage: the per-note division by MaxPolyphony is what keeps
// a full stack of notes inside range.
//
// # Concurrency
//
// SynthesizeColumn takes no locks and shares nothing but the read-only
// grid, so columns may be rendered concurrently. RenderParallel does
// exactly that and reassembles the results in column order before
// writing, producing byte-identical output to the sequential Render.
package synth
