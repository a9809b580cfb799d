package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ihalseide/img-to-sound/pcm"
	"github.com/ihalseide/img-to-sound/synth"
)

var (
	convertRate     int
	convertTempo    int
	convertStartCol int
	convertStartRow int
	convertJobs     int
	convertWAV      bool
)

func init() {
	convertCmd.Flags().IntVar(&convertRate, "rate", synth.DefaultSampleRate, "output sample rate in Hz")
	convertCmd.Flags().IntVar(&convertTempo, "tempo", synth.DefaultTempo, "tempo in pixels (columns) per minute")
	convertCmd.Flags().IntVar(&convertStartCol, "start-col", 0, "skip columns left of this index")
	convertCmd.Flags().IntVar(&convertStartRow, "start-row", 0, "skip rows above this index")
	convertCmd.Flags().IntVar(&convertJobs, "jobs", 1, "worker goroutines for column synthesis")
	convertCmd.Flags().BoolVar(&convertWAV, "wav", false, "wrap the output in a WAV container instead of raw PCM")

	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <input-image> <output-file>",
	Short: "Renders an image to 8-bit PCM audio",
	Long: `Renders an image to signed 8-bit PCM audio, one column at a
time. By default the output is a raw headerless stream; pass --wav to
write a WAV container that carries the sample rate.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args[0], args[1])
	},
}

func runConvert(inPath, outPath string) error {
	grid, err := decodeImage(inPath)
	if err != nil {
		return err
	}

	cfg := synth.Config{
		SampleRate:  convertRate,
		Tempo:       convertTempo,
		StartColumn: convertStartCol,
		StartRow:    convertStartRow,
	}

	s, err := synth.New(grid, cfg)
	if err != nil {
		return err
	}
	s.Warnf = func(format string, args ...any) {
		log.Printf("note: "+format, args...)
	}

	fmt.Printf("converting %s to %s at %d Hz where each pixel is %fs long\n",
		inPath, outPath, cfg.SampleRate, cfg.TimePerPixel())

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}

	ctx := context.Background()
	var renderErr error
	if convertWAV {
		// WAV needs the full stream up front for its RIFF sizes.
		var buf bytes.Buffer
		if _, renderErr = s.RenderParallel(ctx, &buf, convertJobs); renderErr == nil {
			renderErr = pcm.WriteWAV8(out, cfg.SampleRate, buf.Bytes())
		}
	} else {
		_, renderErr = s.RenderParallel(ctx, out, convertJobs)
	}

	closeErr := out.Close()
	if renderErr == nil {
		renderErr = closeErr
	}
	if renderErr != nil {
		// Do not leave a silently truncated file behind.
		os.Remove(outPath)
		return renderErr
	}

	return nil
}
