package yarn

import (
	"math"
	"testing"

	"cat-yarn/internal/core"
	"cat-yarn/internal/world"

	"github.com/go-gl/mathgl/mgl64"
)

func set(t *testing.T, islands ...world.Island) *world.Set {
	t.Helper()
	s, err := world.NewSet(islands)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	return s
}

func TestAboveHeight(t *testing.T) {
	p := DefaultParams()
	isl := world.NewIsland(mgl64.Vec3{3, 1, -4}, 4, 0, 6)
	got := Above(isl, p)
	want := mgl64.Vec3{3, 1 + 2 + p.Radius + p.Clearance, -4}
	if !got.ApproxEqual(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestStackedIslandsNeverChooseOccluded(t *testing.T) {
	a := world.NewIsland(mgl64.Vec3{0, 0, 0}, 4, 0, 5)
	b := world.NewIsland(mgl64.Vec3{0, 5, 0}, 4, 0, 5)
	s := set(t, a, b)
	p := DefaultParams()

	for seed := int64(0); seed < 200; seed++ {
		pl := Choose(s, p, core.NewRNG(seed))
		if pl.Island != 1 {
			t.Fatalf("seed %d: chose island %d, want B", seed, pl.Island)
		}
		want := 5 + 2 + p.Radius + p.Clearance
		if math.Abs(pl.Position.Y()-want) > 1e-9 {
			t.Fatalf("seed %d: height %f, want %f", seed, pl.Position.Y(), want)
		}
	}
}

func TestFallbackPicksFirstHighest(t *testing.T) {
	// each island overhangs the next one's center; the first is highest
	islands := []world.Island{
		world.NewIsland(mgl64.Vec3{0, 4, 0}, 4, 0, 5),
		world.NewIsland(mgl64.Vec3{0, 2, 0}, 4, 0, 5),
		world.NewIsland(mgl64.Vec3{0, 0, 0}, 4, 0, 5),
	}
	s := set(t, islands...)
	for seed := int64(0); seed < 100; seed++ {
		pl := Choose(s, DefaultParams(), core.NewRNG(seed))
		if pl.Island != 0 {
			t.Fatalf("seed %d: chose %d; only island 0 is unoccluded", seed, pl.Island)
		}
	}
}

func TestFallbackFlagged(t *testing.T) {
	// two islands, equal height, overlapping: both unoccluded
	s := set(t,
		world.NewIsland(mgl64.Vec3{0, 1, 0}, 4, 0, 5),
		world.NewIsland(mgl64.Vec3{1, 1, 0}, 4, 0, 5),
	)
	pl := Choose(s, DefaultParams(), core.NewRNG(1))
	if pl.Fallback {
		t.Fatal("unoccluded islands should never need the fallback")
	}

	// two draws over {A, B}: a seed that draws A twice exhausts the budget
	lowFirst := set(t,
		world.NewIsland(mgl64.Vec3{0, 0, 0}, 4, 0, 5),
		world.NewIsland(mgl64.Vec3{0, 5, 0}, 4, 0, 5),
	)
	seen := false
	for seed := int64(0); seed < 64 && !seen; seed++ {
		pl := Choose(lowFirst, DefaultParams(), core.NewRNG(seed))
		if pl.Fallback {
			seen = true
			if pl.Island != 1 {
				t.Fatalf("fallback chose %d, want the highest island", pl.Island)
			}
		}
	}
	if !seen {
		t.Fatal("expected at least one seed to draw the occluded island twice")
	}
}

func TestRespawnNeverLandsUnderAnOverhang(t *testing.T) {
	s, err := world.Generate(world.DefaultParams(), core.NewRNG(11))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	y := New(DefaultParams())
	rng := core.NewRNG(12)
	for i := 0; i < 500; i++ {
		pl := y.Respawn(s, rng)
		if y.Position != pl.Position {
			t.Fatal("Respawn must store the placement")
		}
		if !pl.Fallback && s.Occluded(pl.Island, DefaultParams().Epsilon) {
			t.Fatalf("draw %d placed over occluded island %d", i, pl.Island)
		}
		if pl.Fallback && pl.Island != s.Highest() {
			t.Fatalf("fallback must use the highest island")
		}
	}
}

func TestSpinMonotonic(t *testing.T) {
	y := New(DefaultParams())
	prev := y.Angle
	for i := 0; i < 10; i++ {
		y.Spin(1.0 / 60)
		if y.Angle <= prev {
			t.Fatalf("angle did not increase: %f -> %f", prev, y.Angle)
		}
		prev = y.Angle
	}
	if want := mgl64.DegToRad(720) * 10 / 60; math.Abs(y.Angle-want) > 1e-9 {
		t.Fatalf("angle %f, want %f", y.Angle, want)
	}
}

func TestModelTranslatesToPosition(t *testing.T) {
	y := New(DefaultParams())
	y.Position = mgl64.Vec3{1, 2, 3}
	y.Spin(0.37)
	got := y.Model().Mul4x1(mgl64.Vec4{0, 0, 0, 1}).Vec3()
	if !got.ApproxEqual(y.Position) {
		t.Fatalf("model origin %v, want %v", got, y.Position)
	}
}

func TestParamsValidate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero_radius", func(p *Params) { p.Radius = 0 }},
		{"negative_clearance", func(p *Params) { p.Clearance = -0.1 }},
		{"negative_epsilon", func(p *Params) { p.Epsilon = -0.01 }},
		{"negative_spin", func(p *Params) { p.SpinSpeed = -90 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
	p := DefaultParams()
	p.Clearance, p.SpinSpeed = 0, 0
	if err := p.Validate(); err != nil {
		t.Fatalf("zero clearance and spin are allowed: %v", err)
	}
}
