package main

import (
	"io"
	"log"
	"os"
	"strconv"

	"github.com/integrii/flaggy"

	"cellular/internal/control"
	"cellular/internal/export"
	"cellular/internal/sims/elementary"
	"cellular/internal/term"
)

func main() {
	d := elementary.DefaultConfig()
	width, height, rule := 120, 60, int(d.Rule)
	initial, seed := string(d.Init), int64(0)
	tps := 30
	out := "out"
	logFile := ""

	flaggy.SetName("ca-term")
	flaggy.SetDescription("Elementary cellular automata in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&width, "x", "width", "Field width in cells")
	flaggy.Int(&height, "y", "height", "Generations kept per run")
	flaggy.Int(&rule, "r", "rule", "Starting Wolfram code (0-255)")
	flaggy.String(&initial, "i", "init", "Initial condition: single-low, single-high, alternate, random, noise")
	flaggy.Int64(&seed, "s", "seed", "Seed for random initial conditions (0 uses the clock)")
	flaggy.Int(&tps, "t", "tps", "Generations per second")
	flaggy.String(&out, "o", "out", "Directory for saved images")
	flaggy.String(&logFile, "l", "log", "Write log output to this file instead of discarding it")
	flaggy.Parse()

	if rule < 0 || rule > 255 {
		flaggy.ShowHelpAndExit("rule must be between 0 and 255")
	}
	if _, err := elementary.ParseStrategy(initial); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	// The terminal belongs to the UI while it runs.
	log.SetOutput(io.Discard)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	ec := elementary.FromMap(map[string]string{
		"w":    strconv.Itoa(width),
		"h":    strconv.Itoa(height),
		"rule": strconv.Itoa(rule),
		"seed": strconv.FormatInt(seed, 10),
		"init": initial,
	})
	engine, err := elementary.NewWithConfig(ec)
	if err != nil {
		fatal(err)
	}
	dir, err := export.NewDir(out)
	if err != nil {
		fatal(err)
	}
	ctrl, err := control.New(engine, dir, control.DefaultBindings(), control.Options{Init: ec.Init})
	if err != nil {
		fatal(err)
	}

	ui, err := term.NewConsoleUI(ctrl, tps)
	if err != nil {
		fatal(err)
	}
	if err := ui.Run(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	log.SetOutput(os.Stderr)
	log.Fatal(err)
}
