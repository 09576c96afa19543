//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"cellular/internal/app"
	"cellular/internal/control"
	"cellular/internal/export"
	"cellular/internal/sims/elementary"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ec := cfg.Elementary()
	engine, err := elementary.NewWithConfig(ec)
	if err != nil {
		log.Fatal(err)
	}
	out, err := export.NewDir(cfg.Out)
	if err != nil {
		log.Fatal(err)
	}
	ctrl, err := control.New(engine, out, control.DefaultBindings(), control.Options{
		Init:  ec.Init,
		Batch: cfg.Batch,
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wolfram code: %d", ec.Rule)

	game := app.New(ctrl, cfg.Scale, cfg.TPS, cfg.HUDWidth)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Cellular Automata — rule " + strconv.Itoa(int(ec.Rule)))
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
