package yarn

import (
	"errors"
	"fmt"

	"cat-yarn/internal/core"
	"cat-yarn/internal/world"

	"github.com/go-gl/mathgl/mgl64"
)

// Params controls placement and the spin animation.
type Params struct {
	Radius    float64
	Clearance float64 // gap between the yarn's bottom and the island top
	Epsilon   float64 // a higher island must rise more than this to occlude
	SpinSpeed float64 // degrees per second
	Tilt      float64 // degrees
}

// DefaultParams returns the standard yarn tuning.
func DefaultParams() Params {
	return Params{Radius: 0.3, Clearance: 0.05, Epsilon: 0.01, SpinSpeed: 720, Tilt: 10}
}

// Validate reports tunables that would break placement or make the spin
// angle run backwards.
func (p Params) Validate() error {
	var errs []error
	if p.Radius <= 0 {
		errs = append(errs, fmt.Errorf("yarn: radius must be positive, got %g", p.Radius))
	}
	nonNegative := []struct {
		name  string
		value float64
	}{
		{"clearance", p.Clearance},
		{"epsilon", p.Epsilon},
		{"spin_speed", p.SpinSpeed},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			errs = append(errs, fmt.Errorf("yarn: %s must not be negative, got %g", f.name, f.value))
		}
	}
	return errors.Join(errs...)
}

// Placement is the result of a respawn.
type Placement struct {
	Position mgl64.Vec3
	Island   int  // index into the island set
	Fallback bool // every random draw was occluded
}

// Yarn is the spinning pickup.
type Yarn struct {
	Position mgl64.Vec3
	Angle    float64 // radians, grows without bound

	params Params
}

// New returns a yarn at the origin.
func New(p Params) *Yarn { return &Yarn{params: p} }

// Params returns the active tuning.
func (y *Yarn) Params() Params { return y.params }

// SetParams replaces the tuning. The current position is kept.
func (y *Yarn) SetParams(p Params) { y.params = p }

// Radius returns the pickup radius.
func (y *Yarn) Radius() float64 { return y.params.Radius }

// Respawn picks a new resting place over islands and moves the yarn there.
func (y *Yarn) Respawn(islands *world.Set, rng *core.RNG) Placement {
	pl := Choose(islands, y.params, rng)
	y.Position = pl.Position
	return pl
}

// Spin advances the rotation angle.
func (y *Yarn) Spin(dt float64) {
	y.Angle += mgl64.DegToRad(y.params.SpinSpeed) * dt
}

// Model returns the render transform: spin about Y, tilt about X, scale by
// radius, then translate.
func (y *Yarn) Model() mgl64.Mat4 {
	r := y.params.Radius
	return mgl64.Translate3D(y.Position.X(), y.Position.Y(), y.Position.Z()).
		Mul4(mgl64.Scale3D(r, r, r)).
		Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(y.params.Tilt))).
		Mul4(mgl64.HomogRotate3DY(y.Angle))
}

// Choose draws up to islands.Len() random islands and accepts the first one
// that no other island overhangs. If every draw is occluded it falls back to
// the highest island, the earliest one on ties.
func Choose(islands *world.Set, p Params, rng *core.RNG) Placement {
	n := islands.Len()
	for draw := 0; draw < n; draw++ {
		idx := rng.IntN(n)
		if !islands.Occluded(idx, p.Epsilon) {
			return Placement{Position: Above(islands.At(idx), p), Island: idx}
		}
	}
	idx := islands.Highest()
	return Placement{Position: Above(islands.At(idx), p), Island: idx, Fallback: true}
}

// Above returns the resting position over isl's center.
func Above(isl world.Island, p Params) mgl64.Vec3 {
	return isl.Center.Add(mgl64.Vec3{0, isl.Size/2 + p.Radius + p.Clearance, 0})
}
