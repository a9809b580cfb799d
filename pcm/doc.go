// SPDX-License-Identifier: EPL-2.0

// Package pcm handles the output side: quantizing normalized float
// samples to signed 8-bit PCM and writing the result either as a raw
// headerless stream or inside an 8-bit mono WAV container.
package pcm
