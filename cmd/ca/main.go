//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"forest-ca/internal/app"
	"forest-ca/internal/core"
	_ "forest-ca/internal/sims/wildfire"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		log.Fatal(err)
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("forest-ca: " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, max(size.H*cfg.Scale, 420))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
