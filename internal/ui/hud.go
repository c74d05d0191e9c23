//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"cat-yarn/internal/core"
	"cat-yarn/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Target is what the HUD reads tunables from and writes adjustments to.
type Target interface {
	Parameters() core.ParameterSnapshot
	core.ParameterControlsProvider
	core.FloatParameterSetter
}

// HUD draws the score, the death banner and a toggleable tuning panel on the
// right edge of the screen.
type HUD struct {
	target    Target
	width     int
	showPanel bool
	offsetX   int

	panel      *ebiten.Image
	lastHeight int
	controls   []controlState
	pixel      *ebiten.Image
}

type controlState struct {
	control  core.ParameterControl
	value    float64
	text     string
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for target with a tuning panel of the given width.
func NewHUD(target Target, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{target: target, width: width}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	for _, ctrl := range target.ParameterControls() {
		h.controls = append(h.controls, controlState{control: ctrl, text: "--"})
	}
	h.layoutControls()
	return h
}

// Update toggles the panel with Tab, refreshes values and handles clicks on
// the +/- buttons. screenWidth anchors the panel to the right edge.
func (h *HUD) Update(screenWidth int) {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.showPanel = !h.showPanel
	}
	h.offsetX = screenWidth - h.width
	h.refresh()
	if h.showPanel {
		h.handleInput()
	}
}

// Draw paints the HUD for frame f.
func (h *HUD) Draw(screen *ebiten.Image, f session.Frame) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	b := screen.Bounds()

	score := ScoreText(f.Score)
	sb := text.BoundString(face, score)
	text.Draw(screen, score, face, b.Dx()-sb.Dx()-hudMargin, b.Dy()-hudMargin, color.White)

	if f.Dead {
		db := text.BoundString(face, DeathBanner)
		text.Draw(screen, DeathBanner, face, (b.Dx()-db.Dx())/2, (b.Dy()+db.Dy())/2, BannerColor)
	}

	if h.showPanel && h.width > 0 {
		h.drawPanel(screen, b.Dy())
	}
}

func (h *HUD) refresh() {
	snap := h.target.Parameters()
	for i := range h.controls {
		st := &h.controls[i]
		param, ok := snap.Lookup(st.control.Key)
		if !ok {
			st.hasValue, st.text = false, "--"
			continue
		}
		v, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			st.hasValue, st.text = false, "--"
			continue
		}
		st.value = v
		st.text = FormatValue(st.control, v)
		st.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return
	}
	px := mx - h.offsetX
	for i := range h.controls {
		st := &h.controls[i]
		if !st.hasValue {
			continue
		}
		dir := 0
		switch {
		case image.Pt(px, my).In(st.minusRect):
			dir = -1
		case image.Pt(px, my).In(st.plusRect):
			dir = 1
		default:
			continue
		}
		if target, ok := Adjust(st.control, st.value, dir); ok && h.target.SetFloatParameter(st.control.Key, target) {
			st.value = target
			st.text = FormatValue(st.control, target)
		}
		return
	}
}

func (h *HUD) drawPanel(screen *ebiten.Image, height int) {
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 220})

	face := basicfont.Face7x13
	text.Draw(h.panel, "Tuning", face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i := range h.controls {
		st := &h.controls[i]
		y := st.top + labelBaseline
		text.Draw(h.panel, st.control.Label, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !st.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		vb := text.BoundString(face, st.text)
		text.Draw(h.panel, st.text, face, st.minusRect.Min.X-buttonGap-vb.Dx(), y, valueColor)

		_, canDown := Adjust(st.control, st.value, -1)
		_, canUp := Adjust(st.control, st.value, 1)
		h.drawButton(st.minusRect, "-", st.hasValue && canDown)
		h.drawButton(st.plusRect, "+", st.hasValue && canUp)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	lb := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-lb.Dx())/2
	y := rect.Min.Y + (rect.Dy()-lb.Dy())/2 + lb.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
}

const (
	hudMargin      = 10
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14
)
