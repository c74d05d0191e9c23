package world

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// ErrEmptySet is returned when an island set would contain no islands.
var ErrEmptySet = errors.New("world: island set is empty")

// Island is an axis-aligned cube platform. Its footprint is the square of
// side Size centered on Center in the x/z plane.
type Island struct {
	Center mgl64.Vec3
	Size   float64

	// height bounds of the whole field, shading only
	minH, maxH float64
}

// NewIsland constructs an island. minH and maxH are the height bounds of the
// field the island belongs to.
func NewIsland(center mgl64.Vec3, size, minH, maxH float64) Island {
	return Island{Center: center, Size: size, minH: minH, maxH: maxH}
}

// TopHeight returns the y coordinate of the island's top surface.
func (i Island) TopHeight() float64 { return i.Center.Y() + i.Size/2 }

// Footprint returns the island's square in the x/z plane. The cp.BB Y axis
// carries world z.
func (i Island) Footprint() cp.BB {
	half := i.Size / 2
	return cp.NewBBForExtents(cp.Vector{X: i.Center.X(), Y: i.Center.Z()}, half, half)
}

// ContainsColumn reports whether p lies within the footprint, boundary
// inclusive. Height is ignored.
func (i Island) ContainsColumn(p mgl64.Vec3) bool {
	return i.Footprint().ContainsVect(cp.Vector{X: p.X(), Y: p.Z()})
}

// Brightness maps the island's height within its field to [0.4, 1].
func (i Island) Brightness() float64 {
	span := i.maxH - i.minH
	t := 1.0
	if span > 0 {
		t = mgl64.Clamp((i.Center.Y()-i.minH)/span, 0, 1)
	}
	return 0.4 + 0.6*t
}

// Set is an immutable, non-empty, ordered collection of islands.
type Set struct {
	islands []Island
}

// NewSet copies islands into a Set.
func NewSet(islands []Island) (*Set, error) {
	if len(islands) == 0 {
		return nil, ErrEmptySet
	}
	return &Set{islands: append([]Island(nil), islands...)}, nil
}

// Len returns the number of islands.
func (s *Set) Len() int { return len(s.islands) }

// At returns the island at index i.
func (s *Set) At(i int) Island { return s.islands[i] }

// Islands returns a copy of the islands in stable order.
func (s *Set) Islands() []Island { return append([]Island(nil), s.islands...) }

// SurfaceCrossed returns the island a non-flying body of the given radius
// passed down through while moving from height fromY to p. An island
// qualifies when its footprint contains p and its resting height top+radius
// lies in (p.y, fromY+tolerance]; tolerance absorbs drift that left the body
// slightly under a surface. The highest qualifying island wins and the
// earliest one keeps ties.
func (s *Set) SurfaceCrossed(p mgl64.Vec3, radius, fromY, tolerance float64) (Island, bool) {
	best := -1
	for idx, isl := range s.islands {
		rest := isl.TopHeight() + radius
		if !isl.ContainsColumn(p) || p.Y() >= rest || rest > fromY+tolerance {
			continue
		}
		if best < 0 || isl.TopHeight() > s.islands[best].TopHeight() {
			best = idx
		}
	}
	if best < 0 {
		return Island{}, false
	}
	return s.islands[best], true
}

// LandingSurface returns the first island whose footprint contains p and
// whose resting height top+radius lies within [p.y-above, p.y+below].
func (s *Set) LandingSurface(p mgl64.Vec3, radius, below, above float64) (Island, bool) {
	for _, isl := range s.islands {
		if !isl.ContainsColumn(p) {
			continue
		}
		rest := isl.TopHeight() + radius
		if p.Y() >= rest-below && p.Y() <= rest+above {
			return isl, true
		}
	}
	return Island{}, false
}

// Occluded reports whether another island's top is higher than island idx's
// top by more than eps and that island's footprint contains idx's center.
func (s *Set) Occluded(idx int, eps float64) bool {
	target := s.islands[idx]
	for j, other := range s.islands {
		if j == idx {
			continue
		}
		if other.TopHeight() > target.TopHeight()+eps && other.ContainsColumn(target.Center) {
			return true
		}
	}
	return false
}

// Highest returns the index of the island with the greatest top surface.
// The earliest island wins ties.
func (s *Set) Highest() int {
	best := 0
	for idx, isl := range s.islands {
		if isl.TopHeight() > s.islands[best].TopHeight() {
			best = idx
		}
	}
	return best
}
