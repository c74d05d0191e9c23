package app

import (
	"cat-yarn/internal/input"
	"cat-yarn/internal/session"
)

// Advance polls src once and steps s by dt. A quit press stops the frame
// before the session sees it.
func Advance(s *session.Session, src input.Source, dt float64) (ev session.Event, quit bool) {
	in := src.Poll()
	if in.Pressed(input.Quit) {
		return 0, true
	}
	return s.Step(in, dt), false
}
