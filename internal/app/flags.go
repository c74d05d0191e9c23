package app

import (
	"flag"

	"cat-yarn/internal/config"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Seed      int64
	TPS       int
	Width     int
	Height    int
	Tuning    string
	Watch     bool
	Overrides config.Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Seed: 42, TPS: 60, Width: 800, Height: 600, Tuning: config.DefaultFile}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for island generation and placement")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Width, "width", c.Width, "window width")
	fs.IntVar(&c.Height, "height", c.Height, "window height")
	fs.StringVar(&c.Tuning, "tuning", c.Tuning, "tuning file; embedded defaults are used when it does not exist")
	fs.BoolVar(&c.Watch, "watch", c.Watch, "reload the tuning file when it changes")
	fs.Var(&c.Overrides, "set", "tuning override in section.key=value form (repeatable)")
}

// LoadTuning reads the tuning file and applies the -set overrides on top.
func (c *Config) LoadTuning() (config.Tuning, error) {
	t, err := config.Load(c.Tuning)
	if err != nil {
		return config.Tuning{}, err
	}
	if err := t.ApplyOverrides(c.Overrides); err != nil {
		return config.Tuning{}, err
	}
	return t, nil
}
