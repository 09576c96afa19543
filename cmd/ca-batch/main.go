package main

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"

	"cellular/internal/export"
	"cellular/internal/sims/elementary"
	"cellular/internal/sweep"
)

func main() {
	d := elementary.DefaultConfig()
	opts := sweep.Options{
		Width:      d.Width,
		Height:     d.Height,
		Init:       d.Init,
		NoiseScale: d.NoiseScale,
	}
	from, to := 0, 255
	workers := runtime.NumCPU()
	initial := string(d.Init)
	out := "out"

	flaggy.SetName("ca-batch")
	flaggy.SetDescription("Render a range of Wolfram codes to PNG files")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&opts.Width, "x", "width", "Field width in cells")
	flaggy.Int(&opts.Height, "y", "height", "Generations per image")
	flaggy.Int(&from, "f", "from", "First Wolfram code")
	flaggy.Int(&to, "t", "to", "Last Wolfram code")
	flaggy.String(&initial, "i", "init", "Initial condition: single-low, single-high, alternate, random, noise")
	flaggy.Int64(&opts.Seed, "s", "seed", "Seed shared by every run (0 uses the clock)")
	flaggy.Float64(&opts.NoiseScale, "n", "noise-scale", "Cell spacing in noise space for -init noise")
	flaggy.Bool(&opts.StopOnFixedPoint, "p", "stop-fixed", "Stop a run once a generation repeats")
	flaggy.Int(&workers, "w", "workers", "Codes rendered in parallel")
	flaggy.String(&out, "o", "out", "Output directory")
	flaggy.Parse()

	if from < 0 || from > 255 || to < 0 || to > 255 {
		flaggy.ShowHelpAndExit("codes must be between 0 and 255")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		flaggy.ShowHelpAndExit("width and height must be positive")
	}
	s, err := elementary.ParseStrategy(initial)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	opts.Init = s

	dir, err := export.NewDir(out)
	if err != nil {
		log.Fatal(err)
	}

	codes := sweep.Codes(uint8(from), uint8(to))
	fmt.Printf("Rendering %d codes at %dx%d (%s) into %s\n", len(codes), opts.Width, opts.Height, opts.Init, dir.Path)

	start := time.Now()
	results := sweep.Sweep(opts, codes, workers, func(code uint8, rgb []byte) error {
		return dir.SaveRGB(code, opts.Width, opts.Height, rgb)
	})

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Printf("  %s %3d: %v\n", aurora.Red("failed"), r.Code, r.Err)
			continue
		}
		note := ""
		if r.Fixed {
			note = aurora.Cyan(fmt.Sprintf(" (fixed after %d rows)", r.Rows)).String()
		}
		fmt.Printf("  %s %3d: %d live cells%s\n", aurora.Green("saved"), r.Code, r.Live, note)
	}
	fmt.Printf("Finished %d codes in %v\n", len(results), time.Since(start).Round(time.Millisecond))
	if failed > 0 {
		log.Fatalf("%d codes failed", failed)
	}
}
