//go:build ebiten

package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultBindings maps each action to its physical key.
var DefaultBindings = map[Action]ebiten.Key{
	CameraToggle: ebiten.KeyQ,
	LookLeft:     ebiten.KeyA,
	LookRight:    ebiten.KeyD,
	LookUp:       ebiten.KeyW,
	LookDown:     ebiten.KeyS,
	StepForward:  ebiten.KeyArrowUp,
	StepBack:     ebiten.KeyArrowDown,
	StepLeft:     ebiten.KeyArrowLeft,
	StepRight:    ebiten.KeyArrowRight,
	StepUp:       ebiten.KeySpace,
	StepDown:     ebiten.KeyShiftLeft,
	Quit:         ebiten.KeyEscape,
	Respawn:      ebiten.KeyR,
	Run:          ebiten.KeyControlLeft,
}

// Keyboard polls ebiten's keyboard state.
type Keyboard struct {
	bindings map[Action]ebiten.Key
}

// NewKeyboard returns a Keyboard using bindings, or DefaultBindings when nil.
func NewKeyboard(bindings map[Action]ebiten.Key) *Keyboard {
	if bindings == nil {
		bindings = DefaultBindings
	}
	return &Keyboard{bindings: bindings}
}

// Poll captures the current frame's key state.
func (k *Keyboard) Poll() Snapshot {
	var s Snapshot
	for action, key := range k.bindings {
		if inpututil.IsKeyJustPressed(key) {
			s = s.WithPressed(action)
		} else if ebiten.IsKeyPressed(key) {
			s = s.WithHeld(action)
		}
	}
	return s
}
