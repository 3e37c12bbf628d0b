//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"exobio/internal/app"
)

func main() {
	log.SetPrefix("viewer: ")
	log.SetFlags(0)

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	gen, err := cfg.Generator()
	if err != nil {
		log.Fatal(err)
	}
	session, err := app.NewSession(gen, cfg.StartSeed(), cfg.Phrase)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(session, cfg.Scale, cfg.Interval, cfg.Auto)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("exobio — " + session.Title())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
