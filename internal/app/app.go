//go:build ebiten

package app

import (
	"image/color"
	"log"

	"cat-yarn/internal/config"
	"cat-yarn/internal/core"
	"cat-yarn/internal/input"
	"cat-yarn/internal/render"
	"cat-yarn/internal/session"
	"cat-yarn/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	skyColor  = color.RGBA{R: 120, G: 170, B: 225, A: 255}
	deadColor = color.RGBA{R: 140, G: 16, B: 16, A: 255}
)

// hudWidth is the width of the tuning panel.
const hudWidth = 240

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	session *session.Session
	input   input.Source
	clock   *core.Clock
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay
	watcher *config.Watcher

	size core.Size
}

// New constructs a Game for s that reads the keyboard. watcher may be nil.
func New(cfg *Config, s *session.Session, watcher *config.Watcher) *Game {
	return &Game{
		cfg:     cfg,
		session: s,
		input:   input.NewKeyboard(nil),
		clock:   core.NewClock(cfg.TPS),
		painter: render.NewPainter(),
		hud:     ui.NewHUD(s, hudWidth),
		overlay: ui.NewOverlay(),
		watcher: watcher,
		size:    core.Size{W: cfg.Width, H: cfg.Height},
	}
}

// Update polls input and advances the session by the elapsed frame time.
func (g *Game) Update() error {
	ev, quit := Advance(g.session, g.input, g.clock.Tick())
	if quit {
		return ebiten.Termination
	}
	switch {
	case ev.Has(session.EventDeath):
		log.Printf("fell off the world with %d fish", g.session.Score())
	case ev.Has(session.EventRespawn):
		log.Printf("respawned")
	}

	g.reload()
	g.hud.Update(g.size.W)
	g.overlay.Update(g.session.Cat(), g.session.Elapsed())
	return nil
}

func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Changed()
	if err != nil {
		log.Printf("tuning watch: %v", err)
	}
	if !changed {
		return
	}
	if err := Reload(g.session, g.cfg); err != nil {
		log.Printf("tuning reload rejected: %v", err)
		return
	}
	log.Printf("tuning reloaded from %s", g.cfg.Tuning)
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.session.Frame()
	if f.Dead {
		screen.Fill(deadColor)
	} else {
		screen.Fill(skyColor)
		g.painter.Draw(screen, f)
	}
	g.hud.Draw(screen, f)
	g.overlay.Draw(screen)
}

// Layout tracks the window size; a change only rebuilds the projection.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := core.Size{W: outsideWidth, H: outsideHeight}
	if size != g.size && size.Valid() {
		g.size = size
		g.session.Resize(size)
	}
	return g.size.W, g.size.H
}
