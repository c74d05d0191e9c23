package core

// Size describes the dimensions of the viewport in pixels.
type Size struct {
	W int
	H int
}

// Aspect returns the width to height ratio, falling back to 1 for a
// degenerate viewport.
func (s Size) Aspect() float64 {
	if s.W <= 0 || s.H <= 0 {
		return 1
	}
	return float64(s.W) / float64(s.H)
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool { return s.W > 0 && s.H > 0 }
