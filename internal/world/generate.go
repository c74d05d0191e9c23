package world

import (
	"fmt"

	"cat-yarn/internal/core"

	"github.com/go-gl/mathgl/mgl64"
)

// Params controls the random island field.
type Params struct {
	Count   int
	Extent  int // x and z are integers in [-Extent, Extent]
	MinH    float64
	MaxH    float64
	MinSize float64
	MaxSize float64
}

// DefaultParams returns the standard field layout.
func DefaultParams() Params {
	return Params{
		Count:   60,
		Extent:  25,
		MinH:    0.5,
		MaxH:    6,
		MinSize: 3,
		MaxSize: 7,
	}
}

// Validate reports parameter combinations that cannot produce a field.
func (p Params) Validate() error {
	if p.Count <= 0 {
		return fmt.Errorf("world: island count %d: %w", p.Count, ErrEmptySet)
	}
	if p.Extent < 0 {
		return fmt.Errorf("world: negative extent %d", p.Extent)
	}
	if p.MaxH < p.MinH {
		return fmt.Errorf("world: height range [%g, %g] is inverted", p.MinH, p.MaxH)
	}
	if p.MinSize <= 0 || p.MaxSize < p.MinSize {
		return fmt.Errorf("world: size range [%g, %g] is invalid", p.MinSize, p.MaxSize)
	}
	return nil
}

// Generate builds an island field using rng.
func Generate(p Params, rng *core.RNG) (*Set, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	islands := make([]Island, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		x := float64(rng.IntRange(-p.Extent, p.Extent))
		z := float64(rng.IntRange(-p.Extent, p.Extent))
		y := rng.FloatRange(p.MinH, p.MaxH)
		size := rng.FloatRange(p.MinSize, p.MaxSize)
		islands = append(islands, NewIsland(mgl64.Vec3{x, y, z}, size, p.MinH, p.MaxH))
	}
	return NewSet(islands)
}
