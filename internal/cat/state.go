package cat

import "github.com/go-gl/mathgl/mgl64"

// Mode is the movement mode of the cat.
type Mode uint8

const (
	// Grounded means the cat rests on an island top.
	Grounded Mode = iota
	// Airborne is ballistic motion under gravity: a jump, or a fall.
	Airborne
	// Flying grants free vertical control with gravity off.
	Flying
)

func (m Mode) String() string {
	switch m {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	case Flying:
		return "flying"
	}
	return "unknown"
}

// State is a snapshot of the cat. Values returned by Controller.State are
// copies.
type State struct {
	Position         mgl64.Vec3
	Forward          mgl64.Vec3
	VerticalVelocity float64
	Yaw, Pitch       float64 // radians
	Mode             Mode
	LastJumpPress    float64
}

// Flying reports whether the cat is in free flight.
func (s State) Flying() bool { return s.Mode == Flying }

// Model returns the render transform for the cat mesh.
func (s State) Model(scale float64) mgl64.Mat4 {
	return mgl64.Translate3D(s.Position.X(), s.Position.Y(), s.Position.Z()).
		Mul4(mgl64.HomogRotate3DY(-s.Yaw)).
		Mul4(mgl64.Scale3D(scale, scale, scale))
}
