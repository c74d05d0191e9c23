package config

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"cat-yarn/internal/camera"
	"cat-yarn/internal/cat"
	"cat-yarn/internal/session"
	"cat-yarn/internal/world"
	"cat-yarn/internal/yarn"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownKey is returned by ApplyOverride for keys it does not know.
	ErrUnknownKey = errors.New("config: unknown tuning key")
	// ErrInvalid wraps validation failures.
	ErrInvalid = errors.New("config: invalid tuning")
)

// DefaultFile is the name of the embedded tuning document.
const DefaultFile = "tuning.yaml"

//go:embed tuning.yaml
var defaults embed.FS

// CatSpec is the cat section of the tuning file.
type CatSpec struct {
	WalkSpeed     float64 `yaml:"walk_speed"`
	JumpSpeed     float64 `yaml:"jump_speed"`
	Gravity       float64 `yaml:"gravity"`
	DoubleTap     float64 `yaml:"double_tap"`
	RunMultiplier float64 `yaml:"run_multiplier"`
	LookRate      float64 `yaml:"look_rate"`
	PitchLimit    float64 `yaml:"pitch_limit"`
	Radius        float64 `yaml:"radius"`
	LandBelow     float64 `yaml:"land_below"`
	LandAbove     float64 `yaml:"land_above"`
	RestEpsilon   float64 `yaml:"rest_epsilon"`
}

// YarnSpec is the yarn section.
type YarnSpec struct {
	Radius    float64 `yaml:"radius"`
	Clearance float64 `yaml:"clearance"`
	Epsilon   float64 `yaml:"epsilon"`
	SpinSpeed float64 `yaml:"spin_speed"`
	Tilt      float64 `yaml:"tilt"`
}

// WorldSpec controls island generation. It is read once per session.
type WorldSpec struct {
	Count     int     `yaml:"count"`
	Extent    int     `yaml:"extent"`
	MinHeight float64 `yaml:"min_height"`
	MaxHeight float64 `yaml:"max_height"`
	MinSize   float64 `yaml:"min_size"`
	MaxSize   float64 `yaml:"max_size"`
}

// CameraSpec is the camera section.
type CameraSpec struct {
	FOV            float64 `yaml:"fov"`
	Near           float64 `yaml:"near"`
	Far            float64 `yaml:"far"`
	EyeHeight      float64 `yaml:"eye_height"`
	OverheadHeight float64 `yaml:"overhead_height"`
}

// SessionSpec holds session-wide rules.
type SessionSpec struct {
	DeathHeight float64 `yaml:"death_height"`
}

// Tuning is the whole tuning document.
type Tuning struct {
	Cat     CatSpec     `yaml:"cat"`
	Yarn    YarnSpec    `yaml:"yarn"`
	World   WorldSpec   `yaml:"world"`
	Camera  CameraSpec  `yaml:"camera"`
	Session SessionSpec `yaml:"session"`
}

// Default returns the embedded tuning.
func Default() (Tuning, error) {
	data, err := defaults.ReadFile(DefaultFile)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: read embedded %s: %w", DefaultFile, err)
	}
	return Parse(data)
}

// Load reads path from disk when it exists and falls back to the embedded
// defaults otherwise. Keys missing from the file keep their default values.
func Load(path string) (Tuning, error) {
	t, err := Default()
	if err != nil {
		return Tuning{}, err
	}
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		return Tuning{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes and validates a tuning document.
func Parse(data []byte) (Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate checks every section.
func (t Tuning) Validate() error {
	var errs []error
	if err := t.CatParams().Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := t.WorldParams().Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := t.YarnParams().Validate(); err != nil {
		errs = append(errs, err)
	}
	if t.Camera.FOV <= 0 || t.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera fov must be in (0, 180), got %g", t.Camera.FOV))
	}
	if t.Camera.Near <= 0 || t.Camera.Far <= t.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip planes [%g, %g] are invalid", t.Camera.Near, t.Camera.Far))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// CatParams converts the cat section.
func (t Tuning) CatParams() cat.Params {
	p := cat.DefaultParams()
	p.WalkSpeed = t.Cat.WalkSpeed
	p.JumpSpeed = t.Cat.JumpSpeed
	p.Gravity = t.Cat.Gravity
	p.DoubleTap = t.Cat.DoubleTap
	p.RunMultiplier = t.Cat.RunMultiplier
	p.LookRate = t.Cat.LookRate
	p.PitchLimit = t.Cat.PitchLimit
	p.Radius = t.Cat.Radius
	p.LandBelow = t.Cat.LandBelow
	p.LandAbove = t.Cat.LandAbove
	p.RestEpsilon = t.Cat.RestEpsilon
	return p
}

// YarnParams converts the yarn section.
func (t Tuning) YarnParams() yarn.Params {
	return yarn.Params{
		Radius:    t.Yarn.Radius,
		Clearance: t.Yarn.Clearance,
		Epsilon:   t.Yarn.Epsilon,
		SpinSpeed: t.Yarn.SpinSpeed,
		Tilt:      t.Yarn.Tilt,
	}
}

// WorldParams converts the world section.
func (t Tuning) WorldParams() world.Params {
	return world.Params{
		Count:   t.World.Count,
		Extent:  t.World.Extent,
		MinH:    t.World.MinHeight,
		MaxH:    t.World.MaxHeight,
		MinSize: t.World.MinSize,
		MaxSize: t.World.MaxSize,
	}
}

// CameraParams converts the camera section.
func (t Tuning) CameraParams() camera.Params {
	return camera.Params{
		FOV:            t.Camera.FOV,
		Near:           t.Camera.Near,
		Far:            t.Camera.Far,
		EyeHeight:      t.Camera.EyeHeight,
		OverheadHeight: t.Camera.OverheadHeight,
	}
}

// SessionConfig assembles a session configuration.
func (t Tuning) SessionConfig() session.Config {
	cfg := session.DefaultConfig()
	cfg.World = t.WorldParams()
	cfg.Cat = t.CatParams()
	cfg.Yarn = t.YarnParams()
	cfg.Camera = t.CameraParams()
	cfg.DeathHeight = t.Session.DeathHeight
	return cfg
}

// ApplyOverride sets a single value addressed as "section.key", for example
// "cat.jump_speed=6".
func (t *Tuning) ApplyOverride(key, value string) error {
	section, name, ok := strings.Cut(key, ".")
	if !ok {
		return fmt.Errorf("%w: %q (want section.key)", ErrUnknownKey, key)
	}
	var target any
	switch section {
	case "cat":
		target = &t.Cat
	case "yarn":
		target = &t.Yarn
	case "world":
		target = &t.World
	case "camera":
		target = &t.Camera
	case "session":
		target = &t.Session
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if !hasField(target, name) {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		return fmt.Errorf("config: override %s: %w", key, err)
	}
	// decode a one-key document into the section so yaml handles the
	// int/float distinction
	if err := yaml.Unmarshal([]byte(name+": "+value), target); err != nil {
		return fmt.Errorf("config: override %s: %w", key, err)
	}
	return nil
}

// hasField reports whether the yaml encoding of section contains name.
func hasField(section any, name string) bool {
	var fields map[string]any
	data, err := yaml.Marshal(section)
	if err != nil {
		return false
	}
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return false
	}
	_, ok := fields[name]
	return ok
}

// ParseOverride splits a "key=value" flag argument.
func ParseOverride(kv string) (key, value string, err error) {
	key, value, ok := strings.Cut(kv, "=")
	if !ok || key == "" {
		return "", "", fmt.Errorf("config: override %q: want key=value", kv)
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), nil
}

// Overrides collects repeatable key=value flags.
type Overrides []string

// String joins the collected overrides.
func (o *Overrides) String() string { return strings.Join(*o, ",") }

// Set checks the key=value shape; keys are checked when applied.
func (o *Overrides) Set(value string) error {
	if _, _, err := ParseOverride(value); err != nil {
		return err
	}
	*o = append(*o, value)
	return nil
}

// ApplyOverrides applies key=value pairs in order and revalidates.
func (t *Tuning) ApplyOverrides(kvs []string) error {
	for _, kv := range kvs {
		key, value, err := ParseOverride(kv)
		if err != nil {
			return err
		}
		if err := t.ApplyOverride(key, value); err != nil {
			return err
		}
	}
	return t.Validate()
}
