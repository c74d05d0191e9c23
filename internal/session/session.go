package session

import (
	"errors"
	"fmt"

	"cat-yarn/internal/camera"
	"cat-yarn/internal/cat"
	"cat-yarn/internal/core"
	"cat-yarn/internal/input"
	"cat-yarn/internal/world"
	"cat-yarn/internal/yarn"

	"github.com/go-gl/mathgl/mgl64"
)

// Phase is the session's top-level state.
type Phase uint8

const (
	// Playing means the cat is alive and input drives the simulation.
	Playing Phase = iota
	// Dead waits for the respawn action; nothing else advances.
	Dead
)

func (p Phase) String() string {
	if p == Dead {
		return "dead"
	}
	return "playing"
}

// Event reports what happened during a step.
type Event uint8

const (
	// EventPickup fires when the cat reaches the yarn.
	EventPickup Event = 1 << iota
	// EventDeath fires when the cat drops below the death height.
	EventDeath
	// EventRespawn fires when a dead session restarts.
	EventRespawn
	// EventCameraToggle fires when the view switches.
	EventCameraToggle
)

// Has reports whether e contains flag.
func (e Event) Has(flag Event) bool { return e&flag != 0 }

// Config gathers everything a session needs at construction.
type Config struct {
	World       world.Params
	Cat         cat.Params
	Yarn        yarn.Params
	Camera      camera.Params
	DeathHeight float64
	Viewport    core.Size
}

// DefaultConfig returns the standard game configuration.
func DefaultConfig() Config {
	return Config{
		World:       world.DefaultParams(),
		Cat:         cat.DefaultParams(),
		Yarn:        yarn.DefaultParams(),
		Camera:      camera.DefaultParams(),
		DeathHeight: -10,
		Viewport:    core.Size{W: 800, H: 600},
	}
}

// Session ties the island field, the cat, the yarn and the camera together
// and keeps score.
type Session struct {
	cfg     Config
	rng     *core.RNG
	islands *world.Set
	cat     *cat.Controller
	yarn    *yarn.Yarn
	cam     *camera.Camera

	phase   Phase
	score   int
	elapsed float64
}

// New generates an island field and starts a session on it.
func New(cfg Config, rng *core.RNG) (*Session, error) {
	islands, err := world.Generate(cfg.World, rng)
	if err != nil {
		return nil, fmt.Errorf("session: generate islands: %w", err)
	}
	return NewWithIslands(cfg, islands, rng)
}

// NewWithIslands starts a session on an existing island set.
func NewWithIslands(cfg Config, islands *world.Set, rng *core.RNG) (*Session, error) {
	if islands == nil || islands.Len() == 0 {
		return nil, fmt.Errorf("session: %w", world.ErrEmptySet)
	}
	if err := cfg.Cat.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if err := cfg.Yarn.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s := &Session{
		cfg:     cfg,
		rng:     rng,
		islands: islands,
		cat:     cat.New(cfg.Cat),
		yarn:    yarn.New(cfg.Yarn),
		cam:     camera.New(cfg.Camera, cfg.Viewport),
	}
	s.spawnCat()
	s.yarn.Respawn(s.islands, s.rng)
	return s, nil
}

func (s *Session) spawnCat() {
	s.cat.Spawn(s.islands.At(s.rng.IntN(s.islands.Len())))
	s.cam.FirstPerson = true
}

// Step advances the session by dt seconds. While dead only the respawn
// action is honored and time does not advance.
func (s *Session) Step(in input.Snapshot, dt float64) Event {
	var ev Event
	if s.phase == Dead {
		if in.Pressed(input.Respawn) {
			s.phase = Playing
			s.spawnCat()
			ev |= EventRespawn
		}
		return ev
	}

	s.elapsed += dt
	if in.Pressed(input.CameraToggle) {
		s.cam.Toggle()
		ev |= EventCameraToggle
	}

	s.cat.Step(in, dt, s.cam.FirstPerson, s.islands, s.elapsed)
	s.yarn.Spin(dt)

	if s.touchingYarn() {
		s.score++
		s.yarn.Respawn(s.islands, s.rng)
		ev |= EventPickup
	}
	if s.cat.State().Position.Y() < s.cfg.DeathHeight {
		s.phase = Dead
		ev |= EventDeath
	}
	return ev
}

// touchingYarn reports whether the cat and yarn spheres overlap. Touching
// exactly at the sum of the radii does not count.
func (s *Session) touchingYarn() bool {
	d := s.cat.State().Position.Sub(s.yarn.Position).Len()
	return d < s.cat.Radius()+s.yarn.Radius()
}

// Resize forwards a viewport change to the camera.
func (s *Session) Resize(size core.Size) {
	s.cfg.Viewport = size
	s.cam.Resize(size)
}

// Retune swaps movement, pickup and camera tuning in place. The island field
// is fixed for the session's lifetime and is not affected.
func (s *Session) Retune(c cat.Params, y yarn.Params, cam camera.Params, deathHeight float64) error {
	if err := errors.Join(c.Validate(), y.Validate()); err != nil {
		return fmt.Errorf("session: retune: %w", err)
	}
	s.cfg.Cat, s.cfg.Yarn, s.cfg.Camera, s.cfg.DeathHeight = c, y, cam, deathHeight
	s.cat.SetParams(c)
	s.yarn.SetParams(y)
	s.cam.SetParams(cam, s.cfg.Viewport)
	return nil
}

// Phase reports whether the cat is alive.
func (s *Session) Phase() Phase { return s.phase }

// Score is the number of pickups so far. It survives death.
func (s *Session) Score() int { return s.score }

// Elapsed is the playing time in seconds; it stops while dead.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Islands returns the session's fixed island field.
func (s *Session) Islands() *world.Set { return s.islands }

// Cat returns a copy of the movement state.
func (s *Session) Cat() cat.State { return s.cat.State() }

// Yarn returns the collectible's position.
func (s *Session) Yarn() mgl64.Vec3 { return s.yarn.Position }

// FirstPerson reports the current camera mode.
func (s *Session) FirstPerson() bool { return s.cam.FirstPerson }

// Config returns the live configuration including retuned values.
func (s *Session) Config() Config { return s.cfg }

// Frame is a read-only view of everything the renderer and HUD draw.
type Frame struct {
	View        mgl64.Mat4
	Projection  mgl64.Mat4
	Islands     []world.Island
	CatModel    mgl64.Mat4
	YarnModel   mgl64.Mat4
	FirstPerson bool
	Score       int
	Dead        bool
}

// Frame captures the current render state.
func (s *Session) Frame() Frame {
	st := s.cat.State()
	return Frame{
		View:        s.cam.View(st),
		Projection:  s.cam.Projection(),
		Islands:     s.islands.Islands(),
		CatModel:    st.Model(catScale),
		YarnModel:   s.yarn.Model(),
		FirstPerson: s.cam.FirstPerson,
		Score:       s.score,
		Dead:        s.phase == Dead,
	}
}

// the cat mesh is a unit cube scaled to roughly its collision diameter
const catScale = 0.15
