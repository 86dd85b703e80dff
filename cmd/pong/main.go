//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"github.com/kaymed/picklepong/internal/app"
	"github.com/kaymed/picklepong/internal/pong"
	"github.com/kaymed/picklepong/internal/theme"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	th, ok := theme.Lookup(cfg.Theme)
	if !ok {
		log.Fatalf("unknown theme %q (have %s)", cfg.Theme, strings.Join(theme.Names(), ", "))
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}

	engine := pong.NewEngine(pong.FromMap(cfg.Params()))
	game := app.New(engine, th, cfg.TPS, cfg.Verbose)
	size := engine.Size()

	ebiten.SetWindowTitle(th.Title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Print(game.State().Scoreline())
}
