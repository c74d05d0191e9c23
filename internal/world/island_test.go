package world

import (
	"errors"
	"math"
	"testing"

	"cat-yarn/internal/core"

	"github.com/go-gl/mathgl/mgl64"
)

func mustSet(t *testing.T, islands ...Island) *Set {
	t.Helper()
	s, err := NewSet(islands)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	return s
}

func TestContainsColumn(t *testing.T) {
	isl := NewIsland(mgl64.Vec3{0, 0, 0}, 4, 0, 1)
	cases := []struct {
		name string
		p    mgl64.Vec3
		want bool
	}{
		{"center", mgl64.Vec3{0, 0, 0}, true},
		{"edge_x", mgl64.Vec3{2, 0, 0}, true},
		{"edge_neg_z", mgl64.Vec3{0, 0, -2}, true},
		{"corner", mgl64.Vec3{2, 0, 2}, true},
		{"outside_x", mgl64.Vec3{2.001, 0, 0}, false},
		{"outside_z", mgl64.Vec3{0, 0, -2.5}, false},
		{"far_above", mgl64.Vec3{1, 1000, 1}, true},
		{"far_below", mgl64.Vec3{1, -1000, 1}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := isl.ContainsColumn(c.p); got != c.want {
				t.Fatalf("ContainsColumn(%v) = %v, want %v", c.p, got, c.want)
			}
		})
	}
}

func TestContainsColumnMatchesAxisDistance(t *testing.T) {
	rng := core.NewRNG(3)
	isl := NewIsland(mgl64.Vec3{1.5, 2, -3.25}, 3.5, 0, 6)
	for i := 0; i < 500; i++ {
		p := mgl64.Vec3{rng.FloatRange(-4, 6), rng.FloatRange(-20, 20), rng.FloatRange(-8, 2)}
		want := math.Abs(p.X()-1.5) <= 1.75 && math.Abs(p.Z()+3.25) <= 1.75
		if got := isl.ContainsColumn(p); got != want {
			t.Fatalf("point %v: got %v, want %v", p, got, want)
		}
	}
}

func TestTopHeight(t *testing.T) {
	if got := NewIsland(mgl64.Vec3{0, 0, 0}, 4, 0, 1).TopHeight(); got != 2 {
		t.Fatalf("expected top 2, got %f", got)
	}
	if got := NewIsland(mgl64.Vec3{0, 5, 0}, 4, 0, 1).TopHeight(); got != 7 {
		t.Fatalf("expected top 7, got %f", got)
	}
}

func TestNewSetRejectsEmpty(t *testing.T) {
	if _, err := NewSet(nil); !errors.Is(err, ErrEmptySet) {
		t.Fatalf("expected ErrEmptySet, got %v", err)
	}
}

func TestSurfaceCrossed(t *testing.T) {
	lower := NewIsland(mgl64.Vec3{0, 0, 0}, 4, 0, 5)
	upper := NewIsland(mgl64.Vec3{0, 5, 0}, 4, 0, 5)
	const r, tol = 0.125, 0.25
	cases := []struct {
		name    string
		p       mgl64.Vec3
		fromY   float64
		wantTop float64
		wantOK  bool
	}{
		{"falls through lower top", mgl64.Vec3{0, 1.875, 0}, 2.5, 2, true},
		{"falls through upper top", mgl64.Vec3{0, 6.5, 0}, 8, 7, true},
		{"falls through both", mgl64.Vec3{0, 1, 0}, 8, 7, true},
		{"drift just under lower top", mgl64.Vec3{0, 2, 0}, 2, 2, true},
		{"rising off lower top", mgl64.Vec3{0, 2.25, 0}, 2.125, 0, false},
		{"under upper never reaches it", mgl64.Vec3{0, 2.5, 0}, 2.25, 0, false},
		{"well below lower top", mgl64.Vec3{0, 1, 0}, 1.5, 0, false},
		{"resting exactly on top", mgl64.Vec3{0, 2.125, 0}, 2.125, 0, false},
		{"outside every footprint", mgl64.Vec3{10, 0, 0}, 9, 0, false},
	}
	for _, order := range [][]Island{{lower, upper}, {upper, lower}} {
		s := mustSet(t, order...)
		for _, tc := range cases {
			got, ok := s.SurfaceCrossed(tc.p, r, tc.fromY, tol)
			if ok != tc.wantOK || (ok && got.TopHeight() != tc.wantTop) {
				t.Fatalf("%s: got top %f ok=%v, want top %f ok=%v", tc.name, got.TopHeight(), ok, tc.wantTop, tc.wantOK)
			}
		}
	}
}

func TestLandingSurfaceBand(t *testing.T) {
	s := mustSet(t, NewIsland(mgl64.Vec3{0, 0, 0}, 4, 0, 1))
	const r = 0.0625
	cases := []struct {
		y    float64
		want bool
	}{
		{2 + r, true},
		{2 + r - 0.2, true},
		{2 + r + 0.05, true},
		{2 + r - 0.21, false},
		{2 + r + 0.06, false},
	}
	for _, c := range cases {
		if _, ok := s.LandingSurface(mgl64.Vec3{0, c.y, 0}, r, 0.2, 0.05); ok != c.want {
			t.Fatalf("y=%f: landing=%v, want %v", c.y, ok, c.want)
		}
	}
}

func TestOccludedAndHighest(t *testing.T) {
	a := NewIsland(mgl64.Vec3{0, 0, 0}, 4, 0, 5)
	b := NewIsland(mgl64.Vec3{0, 5, 0}, 4, 0, 5)
	side := NewIsland(mgl64.Vec3{20, 5, 0}, 4, 0, 5)
	s := mustSet(t, a, b, side)

	if !s.Occluded(0, 0.01) {
		t.Fatal("A lies under B and must be occluded")
	}
	if s.Occluded(1, 0.01) || s.Occluded(2, 0.01) {
		t.Fatal("B and the side island have nothing above them")
	}
	if got := s.Highest(); got != 1 {
		t.Fatalf("expected first of the tied highest islands (1), got %d", got)
	}
}

func TestOccludedIgnoresEqualHeights(t *testing.T) {
	a := NewIsland(mgl64.Vec3{0, 1, 0}, 4, 0, 5)
	b := NewIsland(mgl64.Vec3{1, 1.005, 1}, 4, 0, 5)
	s := mustSet(t, a, b)
	if s.Occluded(0, 0.01) {
		t.Fatal("a rise within epsilon must not occlude")
	}
}

func TestBrightness(t *testing.T) {
	low := NewIsland(mgl64.Vec3{0, 0.5, 0}, 3, 0.5, 6)
	high := NewIsland(mgl64.Vec3{0, 6, 0}, 3, 0.5, 6)
	if math.Abs(low.Brightness()-0.4) > 1e-9 || math.Abs(high.Brightness()-1) > 1e-9 {
		t.Fatalf("unexpected brightness %f / %f", low.Brightness(), high.Brightness())
	}
}

func TestGenerateDeterministicAndInRange(t *testing.T) {
	p := DefaultParams()
	a, err := Generate(p, core.NewRNG(42))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(p, core.NewRNG(42))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a.Len() != p.Count {
		t.Fatalf("expected %d islands, got %d", p.Count, a.Len())
	}
	for i := 0; i < a.Len(); i++ {
		ia, ib := a.At(i), b.At(i)
		if ia.Center != ib.Center || ia.Size != ib.Size {
			t.Fatalf("island %d differs between equal seeds", i)
		}
		c := ia.Center
		if c.X() != math.Trunc(c.X()) || c.Z() != math.Trunc(c.Z()) {
			t.Fatalf("island %d x/z must be integral: %v", i, c)
		}
		if math.Abs(c.X()) > 25 || math.Abs(c.Z()) > 25 {
			t.Fatalf("island %d outside extent: %v", i, c)
		}
		if c.Y() < p.MinH || c.Y() >= p.MaxH || ia.Size < p.MinSize || ia.Size >= p.MaxSize {
			t.Fatalf("island %d out of range: %+v", i, ia)
		}
	}
}

func TestGenerateRejectsBadParams(t *testing.T) {
	p := DefaultParams()
	p.Count = 0
	if _, err := Generate(p, core.NewRNG(1)); !errors.Is(err, ErrEmptySet) {
		t.Fatalf("expected ErrEmptySet, got %v", err)
	}
	p = DefaultParams()
	p.MinSize = 5
	p.MaxSize = 4
	if _, err := Generate(p, core.NewRNG(1)); err == nil {
		t.Fatal("inverted size range should fail")
	}
}
