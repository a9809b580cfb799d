// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteRaw appends the signed 8-bit samples to w as-is: one headerless
// sequential stream, no metadata. The sample rate must travel
// out-of-band to whatever plays the file.
func WriteRaw(w io.Writer, samples []byte) error {
	if _, err := w.Write(samples); err != nil {
		return fmt.Errorf("write raw pcm: %w", err)
	}
	return nil
}

// WriteWAV8 wraps the signed 8-bit samples into a mono WAV container at
// sampleRate. WAV stores 8-bit audio unsigned, so each sample is offset
// by +128 on the way in; the audible signal is unchanged.
//
// ws must support seeking because the RIFF sizes are patched on Close.
func WriteWAV8(ws io.WriteSeeker, sampleRate int, samples []byte) error {
	enc := wav.NewEncoder(ws, sampleRate, 8, 1, 1)

	// Convert in chunks to keep the staging buffer small for long runs.
	const chunkSize = 8192
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 8,
		Data:           make([]int, 0, min(len(samples), chunkSize)),
	}

	if len(samples) == 0 {
		// One empty write so the encoder still emits its header.
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("write wav data: %w", err)
		}
	}

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))

		buf.Data = buf.Data[:end-i]
		for j, s := range samples[i:end] {
			buf.Data[j] = int(int8(s)) + 128
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("write wav data: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("close wav encoder: %w", err)
	}

	return nil
}
