// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"bytes"
	"context"
	"testing"

	"github.com/ihalseide/img-to-sound/internal/gridtest"
)

func TestRenderParallel_MatchesSequential(t *testing.T) {
	t.Parallel()

	grid := gridtest.NewGrid(32, 60, func(col, row int) (byte, byte, byte) {
		// Mix of silence and all four waveform classes.
		switch (col + row) % 5 {
		case 0:
			return 0, 0, 0
		case 1:
			return 250, 10, 10
		case 2:
			return 10, 250, 10
		case 3:
			return 10, 10, 250
		default:
			return 128, 128, 128
		}
	})

	cfg := Config{SampleRate: 8000, Tempo: 1920, StartColumn: 3, StartRow: 2}

	s, err := New(grid, cfg)
	if err != nil {
		t.Fatal(err)
	}

	var sequential bytes.Buffer
	if _, err := s.Render(&sequential); err != nil {
		t.Fatal(err)
	}

	for _, workers := range []int{2, 4, 16} {
		var parallel bytes.Buffer
		n, err := s.RenderParallel(context.Background(), &parallel, workers)
		if err != nil {
			t.Fatalf("RenderParallel(workers=%d): %v", workers, err)
		}
		if n != int64(sequential.Len()) {
			t.Errorf("RenderParallel(workers=%d) wrote %d bytes, want %d", workers, n, sequential.Len())
		}
		if !bytes.Equal(parallel.Bytes(), sequential.Bytes()) {
			t.Errorf("RenderParallel(workers=%d) output differs from sequential render", workers)
		}
	}
}

func TestRenderParallel_SingleWorkerFallsBack(t *testing.T) {
	t.Parallel()

	grid := gridtest.Solid(4, 4, 200, 0, 0)
	s, err := New(grid, Config{SampleRate: 8000, Tempo: 1920})
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	n, err := s.RenderParallel(context.Background(), &out, 1)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(4*s.SamplesPerPixel()) {
		t.Errorf("wrote %d bytes, want %d", n, 4*s.SamplesPerPixel())
	}
}

func TestRenderParallel_CanceledContext(t *testing.T) {
	t.Parallel()

	grid := gridtest.Solid(64, 88, 255, 255, 255)
	s, err := New(grid, Config{SampleRate: 48000, Tempo: 1920})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	if _, err := s.RenderParallel(ctx, &out, 4); err == nil {
		t.Error("RenderParallel() ignored a canceled context")
	}
}

// BenchmarkRenderParallel benchmarks rendering a densely lit image.
func BenchmarkRenderParallel(b *testing.B) {
	grid := gridtest.Solid(64, 88, 180, 60, 20)
	s, err := New(grid, Config{SampleRate: 48000, Tempo: 1920})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		var out bytes.Buffer
		if _, err := s.RenderParallel(context.Background(), &out, 8); err != nil {
			b.Fatal(err)
		}
	}
}
