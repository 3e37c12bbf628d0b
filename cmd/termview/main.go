package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"

	"exobio/internal/app"
	"exobio/internal/termview"
)

func main() {
	log.SetPrefix("termview: ")
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	termview.NewViewer(screen, session).Run()
}
