package session

import (
	"cat-yarn/internal/core"
)

// Parameters reports the live tunables and session counters.
func (s *Session) Parameters() core.ParameterSnapshot {
	c := s.cfg.Cat
	y := s.cfg.Yarn
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Session",
			Params: []core.Parameter{
				core.IntParam("score", "Score", s.score),
				core.BoolParam("dead", "Dead", s.phase == Dead),
				core.FloatParam("elapsed", "Elapsed", s.elapsed),
				core.FloatParam("death_height", "Death height", s.cfg.DeathHeight),
			},
		},
		{
			Name: "Cat",
			Params: []core.Parameter{
				core.FloatParam("walk_speed", "Walk speed", c.WalkSpeed),
				core.FloatParam("jump_speed", "Jump speed", c.JumpSpeed),
				core.FloatParam("gravity", "Gravity", c.Gravity),
				core.FloatParam("double_tap", "Double tap", c.DoubleTap),
				core.FloatParam("run_multiplier", "Run multiplier", c.RunMultiplier),
				core.FloatParam("land_below", "Land below", c.LandBelow),
				core.FloatParam("land_above", "Land above", c.LandAbove),
			},
		},
		{
			Name: "Yarn",
			Params: []core.Parameter{
				core.FloatParam("yarn_radius", "Yarn radius", y.Radius),
				core.FloatParam("yarn_clearance", "Yarn clearance", y.Clearance),
				core.FloatParam("yarn_spin", "Yarn spin", y.SpinSpeed),
			},
		},
	}}
}

// ParameterControls lists the tunables the HUD may adjust.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "walk_speed", Label: "Walk", Step: 0.5, Min: 0.5, Max: 20, HasMin: true, HasMax: true},
		{Key: "jump_speed", Label: "Jump", Step: 0.5, Min: 0.5, Max: 20, HasMin: true, HasMax: true},
		{Key: "gravity", Label: "Gravity", Step: 1, Min: 1, Max: 40, HasMin: true, HasMax: true},
		{Key: "double_tap", Label: "Double tap", Step: 0.05, Min: 0.05, Max: 1, HasMin: true, HasMax: true},
		{Key: "run_multiplier", Label: "Run x", Step: 0.5, Min: 1, Max: 10, HasMin: true, HasMax: true},
		{Key: "yarn_spin", Label: "Spin", Step: 90, Min: 0, Max: 2160, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a tunable by key. It reports false for unknown
// keys or values the cat or yarn tuning rejects.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	c := s.cfg.Cat
	y := s.cfg.Yarn
	death := s.cfg.DeathHeight
	switch key {
	case "walk_speed":
		c.WalkSpeed = value
	case "jump_speed":
		c.JumpSpeed = value
	case "gravity":
		c.Gravity = value
	case "double_tap":
		c.DoubleTap = value
	case "run_multiplier":
		c.RunMultiplier = value
	case "land_below":
		c.LandBelow = value
	case "land_above":
		c.LandAbove = value
	case "yarn_radius":
		y.Radius = value
	case "yarn_clearance":
		y.Clearance = value
	case "yarn_spin":
		y.SpinSpeed = value
	case "death_height":
		death = value
	default:
		return false
	}
	return s.Retune(c, y, s.cfg.Camera, death) == nil
}
