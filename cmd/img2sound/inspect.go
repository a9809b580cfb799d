package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ihalseide/img-to-sound/synth"
)

var (
	inspectRate  int
	inspectTempo int
)

func init() {
	inspectCmd.Flags().IntVar(&inspectRate, "rate", synth.DefaultSampleRate, "output sample rate in Hz")
	inspectCmd.Flags().IntVar(&inspectTempo, "tempo", synth.DefaultTempo, "tempo in pixels (columns) per minute")

	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <input-image>",
	Short: "Shows what a conversion of this image would produce",
	Long: `Shows image dimensions, derived timing and a note census
without rendering any audio.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(args[0])
	},
}

func runInspect(path string) error {
	grid, err := decodeImage(path)
	if err != nil {
		return err
	}

	cfg := synth.Config{SampleRate: inspectRate, Tempo: inspectTempo}
	if err := cfg.ValidateFor(grid); err != nil {
		return err
	}

	spp := cfg.SamplesPerPixel()
	audible := min(grid.Height, synth.Keys)

	var totalNotes, capped int
	for col := range grid.Width {
		notes := 0
		for row := range audible {
			r, g, b := grid.RGBAt(col, row)
			if r == 0 && g == 0 && b == 0 {
				continue
			}
			notes++
		}
		if notes > synth.MaxPolyphony {
			notes = synth.MaxPolyphony
			capped++
		}
		totalNotes += notes
	}

	fmt.Printf("image: %dx%d pixels, %d channels\n", grid.Width, grid.Height, grid.Channels)
	fmt.Printf("audible rows: %d of %d (keyboard span %d)\n", audible, grid.Height, synth.Keys)
	fmt.Printf("samples per pixel: %d at %d Hz\n", spp, cfg.SampleRate)
	fmt.Printf("output: %d bytes, %.2fs\n", grid.Width*spp, float64(grid.Width)*cfg.TimePerPixel())
	fmt.Printf("notes: %d total, %d column(s) over the polyphony cap\n", totalNotes, capped)

	return nil
}
