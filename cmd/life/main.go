//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"golife/internal/app"
	"golife/internal/game"
	"golife/internal/snapshot"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	g := game.New(cfg.NewBoard(), snapshot.DiskStore{}, snapshot.FixedPath(cfg.StatePath), cfg.Density)
	if err := g.Init(); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(cfg.ScreenW, cfg.ScreenH)
	if cfg.FPS > 0 {
		ebiten.SetTPS(cfg.FPS)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	if err := ebiten.RunGame(app.New(g, cfg.ScreenW, cfg.ScreenH)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
