package main

import (
	"fmt"
	"os"
	"time"

	"xmas-card/internal/cards"
	"xmas-card/internal/config"
	"xmas-card/internal/graphics"
	"xmas-card/internal/logger"
	"xmas-card/internal/particles"
)

func main() {
	log := logger.New()
	if n, err := config.LoadDotEnv(".env"); err != nil {
		log.Warnf(".env: %v", err)
	} else if n > 0 {
		log.Infof("loaded %d variables from .env", n)
	}

	prefs, err := config.Load(config.PrefsPath)
	if err != nil {
		log.Warnf("config: %v", err)
	}
	if !config.Exists(config.PrefsPath) {
		if err := config.Save(config.PrefsPath, prefs); err != nil {
			log.Warnf("save default config: %v", err)
		}
	}

	deck, warnings, err := cards.Load(prefs.DeckPath)
	if err != nil {
		log.Warnf("%v; using the built-in deck", err)
		deck = cards.Default()
	}
	for _, w := range warnings {
		log.Warnf("deck: %s", w)
	}

	seed := prefs.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	lib := particles.NewLibrary(seed)
	lib.Warm()
	log.Infof("generated %d shapes of %d points (seed %d)", len(particles.Shapes), particles.PointCount, seed)

	app := newApp(log, prefs, deck, lib)

	win := graphics.Window{
		Title:      "Merry Christmas",
		Width:      prefs.Width,
		Height:     prefs.Height,
		Fullscreen: prefs.Fullscreen,
		Background: backgroundColor,
	}
	graphics.Run(win, app.Init, app.Update, app.Draw)

	if err := app.Close(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
