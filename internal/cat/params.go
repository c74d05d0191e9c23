package cat

import (
	"errors"
	"fmt"
)

// Params holds the movement tunables.
type Params struct {
	WalkSpeed      float64
	JumpSpeed      float64
	Gravity        float64
	DoubleTap      float64 // seconds between two presses that count as a double press
	RunMultiplier  float64 // applied only while flying
	LookRate       float64 // degrees per second
	PitchLimit     float64 // degrees
	Radius         float64
	LandBelow      float64 // landing band below the resting height; also the snap tolerance when falling
	LandAbove      float64 // flying landing band above the resting height
	RestEpsilon    float64 // |vertical velocity| under which a single press jumps
	InitialLastTap float64
}

// DefaultParams returns the standard cat tuning.
func DefaultParams() Params {
	return Params{
		WalkSpeed:      5,
		JumpSpeed:      4.5,
		Gravity:        12,
		DoubleTap:      0.3,
		RunMultiplier:  3,
		LookRate:       90,
		PitchLimit:     85,
		Radius:         0.0625,
		LandBelow:      0.2,
		LandAbove:      0.05,
		RestEpsilon:    1e-3,
		InitialLastTap: -10,
	}
}

// Validate reports tunables that would break the state machine.
func (p Params) Validate() error {
	var errs []error
	positive := []struct {
		name  string
		value float64
	}{
		{"walk_speed", p.WalkSpeed},
		{"jump_speed", p.JumpSpeed},
		{"gravity", p.Gravity},
		{"double_tap", p.DoubleTap},
		{"run_multiplier", p.RunMultiplier},
		{"radius", p.Radius},
	}
	for _, f := range positive {
		if f.value <= 0 {
			errs = append(errs, fmt.Errorf("cat: %s must be positive, got %g", f.name, f.value))
		}
	}
	if p.LandBelow < 0 || p.LandAbove < 0 {
		errs = append(errs, fmt.Errorf("cat: landing band [-%g, +%g] must not be negative", p.LandBelow, p.LandAbove))
	}
	if p.PitchLimit <= 0 || p.PitchLimit >= 90 {
		errs = append(errs, fmt.Errorf("cat: pitch_limit must be in (0, 90), got %g", p.PitchLimit))
	}
	return errors.Join(errs...)
}
