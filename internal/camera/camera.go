package camera

import (
	"cat-yarn/internal/cat"
	"cat-yarn/internal/core"

	"github.com/go-gl/mathgl/mgl64"
)

// Params controls the view and projection.
type Params struct {
	FOV            float64 // vertical, degrees
	Near, Far      float64
	EyeHeight      float64 // first-person offset above the cat
	OverheadHeight float64 // third-person offset above the cat
}

// DefaultParams returns the standard camera tuning.
func DefaultParams() Params {
	return Params{FOV: 60, Near: 0.1, Far: 100, EyeHeight: 0.6, OverheadHeight: 15}
}

// Camera derives view transforms from the cat. Apart from the mode flag and
// the cached projection it holds no state.
type Camera struct {
	FirstPerson bool

	params Params
	proj   mgl64.Mat4
}

// New returns a first-person camera with a projection for size.
func New(p Params, size core.Size) *Camera {
	c := &Camera{FirstPerson: true, params: p}
	c.Resize(size)
	return c
}

// SetParams replaces the tuning and rebuilds the projection for size.
func (c *Camera) SetParams(p Params, size core.Size) {
	c.params = p
	c.Resize(size)
}

// Params returns the active tuning.
func (c *Camera) Params() Params { return c.params }

// Toggle switches between first- and third-person.
func (c *Camera) Toggle() { c.FirstPerson = !c.FirstPerson }

// Resize recomputes the projection for a new viewport.
func (c *Camera) Resize(size core.Size) {
	c.proj = mgl64.Perspective(mgl64.DegToRad(c.params.FOV), size.Aspect(), c.params.Near, c.params.Far)
}

// Projection returns the cached projection matrix.
func (c *Camera) Projection() mgl64.Mat4 { return c.proj }

// Eye returns the eye position, look target and up vector for s.
func (c *Camera) Eye(s cat.State) (eye, target, up mgl64.Vec3) {
	if c.FirstPerson {
		eye = s.Position.Add(mgl64.Vec3{0, c.params.EyeHeight, 0})
		return eye, eye.Add(s.Forward), mgl64.Vec3{0, 1, 0}
	}
	// looking straight down, so world up would be parallel to the view axis
	eye = s.Position.Add(mgl64.Vec3{0, c.params.OverheadHeight, 0})
	return eye, s.Position, mgl64.Vec3{0, 0, 1}
}

// View returns the view matrix for s.
func (c *Camera) View(s cat.State) mgl64.Mat4 {
	eye, target, up := c.Eye(s)
	return mgl64.LookAtV(eye, target, up)
}
