//go:build ebiten

package ui

import (
	"image/color"

	"cat-yarn/internal/cat"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Overlay prints movement state in the top-left corner. F3 toggles it.
type Overlay struct {
	visible bool
	lines   []string
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Update handles the toggle key and captures the lines to draw.
func (o *Overlay) Update(s cat.State, elapsed float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		o.visible = !o.visible
	}
	if o.visible {
		o.lines = DebugLines(s, elapsed, ebiten.ActualTPS())
	}
}

// Draw paints the captured lines when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	face := basicfont.Face7x13
	vector.DrawFilledRect(screen, 4, 4, 240, float32(len(o.lines)*lineStep+8), color.RGBA{A: 160}, false)
	for i, line := range o.lines {
		text.Draw(screen, line, face, 8, 18+i*lineStep, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}
}

const lineStep = 15
