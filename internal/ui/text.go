package ui

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"cat-yarn/internal/cat"
	"cat-yarn/internal/core"

	"github.com/go-gl/mathgl/mgl64"
)

// DeathBanner is shown centered while the session is dead.
const DeathBanner = "YOU DIED"

// BannerColor is the death banner's text color.
var BannerColor = color.RGBA{R: 255, G: 48, B: 48, A: 255}

// ScoreText formats the pickup counter.
func ScoreText(score int) string {
	return "Fish: " + strconv.Itoa(score)
}

// defaultStep is used for controls that do not declare one.
const defaultStep = 0.05

// Adjust moves value one step in direction and clamps it to the control's
// bounds. ok is false when the value would not change.
func Adjust(ctrl core.ParameterControl, value float64, direction int) (target float64, ok bool) {
	if direction == 0 {
		return value, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = defaultStep
	}
	target = ctrl.Clamp(value + float64(direction)*step)
	if math.Abs(target-value) < 1e-9 {
		return value, false
	}
	return target, true
}

// FormatValue prints value with a precision suited to the control's step.
func FormatValue(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = defaultStep
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	case step >= 1 && step == math.Trunc(step):
		precision = 0
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// DebugLines describes the cat for the debug overlay.
func DebugLines(s cat.State, elapsed, tps float64) []string {
	p := s.Position
	return []string{
		fmt.Sprintf("mode  %s", s.Mode),
		fmt.Sprintf("pos   %.2f %.2f %.2f", p.X(), p.Y(), p.Z()),
		fmt.Sprintf("vvel  %.2f", s.VerticalVelocity),
		fmt.Sprintf("yaw   %.0f  pitch %.0f", mgl64.RadToDeg(s.Yaw), mgl64.RadToDeg(s.Pitch)),
		fmt.Sprintf("time  %.1fs  tps %.0f", elapsed, tps),
	}
}
