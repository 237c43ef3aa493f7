package main

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"xmas-card/internal/cards"
	"xmas-card/internal/config"
	"xmas-card/internal/debug"
	"xmas-card/internal/fonts"
	"xmas-card/internal/intro"
	"xmas-card/internal/logger"
	"xmas-card/internal/morph"
	"xmas-card/internal/music"
	"xmas-card/internal/particles"
	"xmas-card/internal/scene"
	"xmas-card/internal/ui"
)

var backgroundColor = rl.NewColor(5, 5, 16, 255)

// app owns every frame-loop component and routes input between them.
type app struct {
	log    *logger.Logger
	prefs  config.Prefs
	deck   *cards.Deck
	engine *morph.Engine
	scene  *scene.Scene
	ui     *ui.Engine
	stack  *ui.CardStack
	modal  *intro.Modal
	debug  *debug.Debug
	player *music.Player // nil when muted or the track failed to open

	recipient string
	nodes     []*ui.Node
	views     []ui.CardView
}

func newApp(log *logger.Logger, prefs config.Prefs, deck *cards.Deck, lib *particles.Library) *app {
	a := &app{
		log:    log,
		prefs:  prefs,
		deck:   deck,
		engine: morph.New(lib, deck.Front().Shape),
		scene:  scene.New(lib.Seed()),
		ui:     ui.New(),
		stack:  ui.NewCardStack(),
		modal:  intro.New(log),
		debug:  debug.New(),
	}
	a.engine.OnSizeMismatch = func(current, target int) {
		log.Warnf("morph: current cloud has %d values, target has %d; frame skipped", current, target)
	}
	a.scene.PointSize = prefs.PointSize
	a.debug.SetShowFPS(prefs.ShowFPS)
	a.modal.OnSubmit = a.personalize

	sheet := ui.DefaultStylesheet()
	if prefs.StyleSheet != "" {
		if custom, err := ui.LoadCSS(prefs.StyleSheet); err != nil {
			log.Warnf("stylesheet: %v", err)
		} else {
			sheet = custom
		}
	}
	a.ui.SetStylesheet(sheet)

	if !prefs.Muted && prefs.MusicPath != "" {
		p, err := music.Open(prefs.MusicPath)
		if err != nil {
			log.Warnf("music disabled: %v", err)
		} else {
			a.player = p
		}
	}
	return a
}

// Init runs once the window exists: fonts need a GL context.
func (a *app) Init() {
	if a.prefs.FontName == "" {
		return
	}
	path, err := fonts.Resolve(a.prefs.FontName)
	if err != nil {
		a.log.Warnf("font %q not found", a.prefs.FontName)
		return
	}
	if !a.ui.LoadFont(path) {
		a.log.Warnf("font %s failed to load", path)
		return
	}
	a.modal.SetFont(a.ui.Font())
	a.debug.SetFont(a.ui.Font())
}

// personalize runs when the intro modal is submitted.
func (a *app) personalize(name string) {
	a.recipient = name
	a.deck.Personalize(name)
	if a.player != nil {
		a.player.Start()
	}
}

// advance rotates the deck and morphs toward the new front card's shape.
func (a *app) advance() {
	card := a.deck.Next()
	a.engine.SetTarget(card.Shape)
	a.log.Infof("card %d: %s", card.ID, card.Shape)
}

func (a *app) handleInput() {
	if rl.IsKeyPressed(rl.KeyF3) {
		a.debug.Toggle()
	}
	if a.modal.IsOpen() {
		a.modal.Update()
		return
	}
	clicked := rl.IsMouseButtonPressed(rl.MouseButtonLeft) && a.stack.FrontContains(rl.GetMousePosition())
	if clicked || rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyRight) {
		a.advance()
	}
	if rl.IsKeyPressed(rl.KeyM) && a.player != nil {
		a.player.Toggle()
	}
}

// Update is called once per frame with the frame time in seconds.
func (a *app) Update(dt float32) {
	a.handleInput()
	a.engine.Tick(dt)
	a.scene.Update(dt)
	if a.player != nil {
		a.player.Update(time.Duration(float64(dt) * float64(time.Second)))
	}
}

// overlayNodes rebuilds the card overlay for the current deck and recipient.
func (a *app) overlayNodes() []*ui.Node {
	a.views = a.views[:0]
	for _, c := range a.deck.Visible(ui.MaxStackDepth) {
		a.views = append(a.views, ui.CardView{Title: c.Title, Text: c.Text, Accent: c.Accent})
	}
	a.nodes = a.stack.AppendNodes(a.nodes[:0], a.recipient, a.views)
	return a.nodes
}

func (a *app) Draw() {
	a.scene.Draw(a.engine)
	a.ui.SetNodes(a.overlayNodes())
	a.ui.Draw()
	a.modal.Draw()
	a.debug.Draw(a.engine)
}

// Close stops the music. Safe to call more than once.
func (a *app) Close() error {
	if a.player == nil {
		return nil
	}
	p := a.player
	a.player = nil
	return p.Close()
}
