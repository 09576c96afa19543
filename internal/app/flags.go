package app

import (
	"flag"
	"strconv"

	"cellular/internal/sims/elementary"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	Rule   int
	Init   string
	Seed   int64

	Scale    int
	TPS      int
	HUDWidth int
	Out      string
	Batch    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := elementary.DefaultConfig()
	return &Config{
		Width:    d.Width,
		Height:   d.Height,
		Rule:     int(d.Rule),
		Init:     string(d.Init),
		Scale:    1,
		TPS:      60,
		HUDWidth: 200,
		Out:      "out",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "field width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "generations drawn per image")
	fs.IntVar(&c.Rule, "rule", c.Rule, "starting Wolfram code (0-255)")
	fs.StringVar(&c.Init, "init", c.Init, "initial condition: single-low, single-high, alternate, random, noise")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random initial conditions (0 uses the clock)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "side panel width in pixels (0 hides it)")
	fs.StringVar(&c.Out, "out", c.Out, "directory for saved images")
	fs.BoolVar(&c.Batch, "batch", c.Batch, "sweep every rule from -rule to 255, saving each image")
}

// Elementary converts the flags into an automaton config. Out-of-range values
// fall back to the defaults.
func (c *Config) Elementary() elementary.Config {
	return elementary.FromMap(map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"rule": strconv.Itoa(c.Rule),
		"seed": strconv.FormatInt(c.Seed, 10),
		"init": c.Init,
	})
}
