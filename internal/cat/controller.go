package cat

import (
	"math"

	"cat-yarn/internal/input"
	"cat-yarn/internal/world"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	worldUp      = mgl64.Vec3{0, 1, 0}
	startForward = mgl64.Vec3{0, 0, -1}
)

// Controller owns the cat's state and advances it one frame at a time.
type Controller struct {
	params Params
	state  State
}

// New returns a controller at the origin facing -Z.
func New(p Params) *Controller {
	c := &Controller{params: p}
	c.reset(mgl64.Vec3{})
	return c
}

// Params returns the active tuning.
func (c *Controller) Params() Params { return c.params }

// SetParams replaces the tuning without touching the state.
func (c *Controller) SetParams(p Params) { c.params = p }

// State returns a copy of the current state.
func (c *Controller) State() State { return c.state }

// Radius returns the cat's collision radius.
func (c *Controller) Radius() float64 { return c.params.Radius }

// Spawn places the cat on top of isl and resets all movement state.
func (c *Controller) Spawn(isl world.Island) {
	c.reset(mgl64.Vec3{isl.Center.X(), isl.TopHeight() + c.params.Radius, isl.Center.Z()})
}

func (c *Controller) reset(pos mgl64.Vec3) {
	c.state = State{
		Position:      pos,
		Forward:       startForward,
		Mode:          Grounded,
		LastJumpPress: c.params.InitialLastTap,
	}
}

// Step advances the cat by dt seconds. now is the session's elapsed time and
// only feeds double-press detection. Look input is honored only when
// firstPerson is set.
func (c *Controller) Step(in input.Snapshot, dt float64, firstPerson bool, islands *world.Set, now float64) {
	p := c.params
	s := &c.state

	if firstPerson {
		c.look(in, dt)
	}

	press := in.Pressed(input.StepUp)
	double := press && now-s.LastJumpPress <= p.DoubleTap
	if press {
		s.LastJumpPress = now
	}

	wasFlying := s.Mode == Flying
	speed := p.WalkSpeed
	if wasFlying && in.Held(input.Run) {
		speed *= p.RunMultiplier
	}

	move := c.planarMove(in)
	if wasFlying {
		if in.Held(input.StepUp) {
			move[1]++
		}
		if in.Held(input.StepDown) {
			move[1]--
		}
		if double {
			s.Mode = Airborne
			s.VerticalVelocity = 0
		}
	} else {
		if press && !double && math.Abs(s.VerticalVelocity) < p.RestEpsilon {
			s.VerticalVelocity = p.JumpSpeed
		}
		if double {
			s.Mode = Flying
			s.VerticalVelocity = p.JumpSpeed
		}
		s.VerticalVelocity -= p.Gravity * dt
		move[1] += s.VerticalVelocity * dt
	}

	fromY := s.Position.Y()
	if move.Len() > 0 {
		s.Position = s.Position.Add(move.Normalize().Mul(speed * dt))
	}

	c.resolve(move[1], fromY, islands)
}

// resolve applies the landing and resting rules after integration, using
// the mode as it stands after this frame's toggles. fromY is the height
// before this frame's movement: a falling cat only rests on a surface it
// passed through, never on one overhead.
func (c *Controller) resolve(moveY, fromY float64, islands *world.Set) {
	p := c.params
	s := &c.state

	if s.Mode == Flying {
		if islands != nil && (moveY < 0 || s.VerticalVelocity < 0) {
			if isl, ok := islands.LandingSurface(s.Position, p.Radius, p.LandBelow, p.LandAbove); ok {
				c.rest(isl)
			}
		}
		return
	}

	if islands != nil {
		if isl, ok := islands.SurfaceCrossed(s.Position, p.Radius, fromY, p.LandBelow); ok {
			c.rest(isl)
			return
		}
	}
	s.Mode = Airborne
}

func (c *Controller) rest(isl world.Island) {
	s := &c.state
	s.Position[1] = isl.TopHeight() + c.params.Radius
	s.VerticalVelocity = 0
	s.Mode = Grounded
}

func (c *Controller) look(in input.Snapshot, dt float64) {
	s := &c.state
	rate := mgl64.DegToRad(c.params.LookRate) * dt
	if in.Held(input.LookLeft) {
		s.Yaw -= rate
	}
	if in.Held(input.LookRight) {
		s.Yaw += rate
	}
	if in.Held(input.LookUp) {
		s.Pitch += rate
	}
	if in.Held(input.LookDown) {
		s.Pitch -= rate
	}
	limit := mgl64.DegToRad(c.params.PitchLimit)
	s.Pitch = mgl64.Clamp(s.Pitch, -limit, limit)
	s.Forward = ForwardFromAngles(s.Yaw, s.Pitch)
}

// planarMove sums directional input on the horizontal forward/right basis.
func (c *Controller) planarMove(in input.Snapshot) mgl64.Vec3 {
	forward := mgl64.Vec3{c.state.Forward.X(), 0, c.state.Forward.Z()}
	if forward.Len() == 0 {
		forward = startForward
	}
	forward = forward.Normalize()
	right := forward.Cross(worldUp).Normalize()

	var move mgl64.Vec3
	if in.Held(input.StepForward) {
		move = move.Add(forward)
	}
	if in.Held(input.StepBack) {
		move = move.Sub(forward)
	}
	if in.Held(input.StepLeft) {
		move = move.Sub(right)
	}
	if in.Held(input.StepRight) {
		move = move.Add(right)
	}
	return move
}

// ForwardFromAngles converts yaw and pitch (radians) into a unit view
// direction. Yaw 0, pitch 0 faces -Z.
func ForwardFromAngles(yaw, pitch float64) mgl64.Vec3 {
	return mgl64.Vec3{
		math.Sin(yaw) * math.Cos(pitch),
		math.Sin(pitch),
		-math.Cos(yaw) * math.Cos(pitch),
	}.Normalize()
}
