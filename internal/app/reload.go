package app

import (
	"fmt"

	"cat-yarn/internal/session"
)

// Reload rereads the tuning file, applies the -set overrides again and swaps
// the result into s. World settings are ignored because the island field is
// fixed for the session's lifetime.
func Reload(s *session.Session, cfg *Config) error {
	t, err := cfg.LoadTuning()
	if err != nil {
		return fmt.Errorf("app: reload: %w", err)
	}
	return s.Retune(t.CatParams(), t.YarnParams(), t.CameraParams(), t.Session.DeathHeight)
}
