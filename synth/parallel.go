// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// RenderParallel produces the same byte stream as Render but spreads
// column synthesis over up to workers goroutines. Columns only depend
// on the read-only grid and their own time offset, so they can be
// rendered in any order; the single ordering requirement is that the
// results reach w in column order, which happens in one pass after all
// workers finish.
//
// workers < 1 falls back to the sequential Render.
func (s *Synthesizer) RenderParallel(ctx context.Context, w io.Writer, workers int) (int64, error) {
	if workers < 2 {
		return s.Render(w)
	}

	cols := make([][]byte, s.Columns())

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range cols {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cols[i] = s.SynthesizeColumn(s.cfg.StartColumn + i)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("render columns: %w", err)
	}

	var written int64
	for i, col := range cols {
		n, err := w.Write(col)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("write column %d: %w", s.cfg.StartColumn+i, err)
		}
	}

	return written, nil
}
