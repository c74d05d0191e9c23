//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"cat-yarn/internal/app"
	"cat-yarn/internal/config"
	"cat-yarn/internal/core"
	"cat-yarn/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	tuning, err := cfg.LoadTuning()
	if err != nil {
		log.Fatalf("tuning: %v", err)
	}

	sc := tuning.SessionConfig()
	sc.Viewport = core.Size{W: cfg.Width, H: cfg.Height}
	s, err := session.New(sc, core.NewRNG(cfg.Seed))
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	var watcher *config.Watcher
	if cfg.Watch {
		watcher, err = config.NewWatcher(cfg.Tuning)
		if err != nil {
			log.Fatalf("watch: %v", err)
		}
		defer watcher.Close()
	}

	game := app.New(cfg, s, watcher)

	ebiten.SetWindowTitle("cat-yarn")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
