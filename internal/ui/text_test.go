package ui

import (
	"strings"
	"testing"

	"cat-yarn/internal/cat"
	"cat-yarn/internal/core"

	"github.com/go-gl/mathgl/mgl64"
)

func TestScoreText(t *testing.T) {
	if got := ScoreText(0); got != "Fish: 0" {
		t.Fatalf("got %q", got)
	}
	if got := ScoreText(12); got != "Fish: 12" {
		t.Fatalf("got %q", got)
	}
}

func TestBannerIsRed(t *testing.T) {
	c := BannerColor
	if c.R < 200 || c.G > 100 || c.B > 100 || c.A != 255 {
		t.Fatalf("death banner should be opaque red, got %v", c)
	}
}

func TestAdjust(t *testing.T) {
	ctrl := core.ParameterControl{Key: "gravity", Step: 1, Min: 1, Max: 3, HasMin: true, HasMax: true}
	cases := []struct {
		name   string
		value  float64
		dir    int
		want   float64
		wantOK bool
	}{
		{"up", 2, 1, 3, true},
		{"down", 2, -1, 1, true},
		{"at max", 3, 1, 3, false},
		{"at min", 1, -1, 1, false},
		{"clamped", 2.5, 1, 3, true},
		{"no direction", 2, 0, 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Adjust(ctrl, tc.value, tc.dir)
			if got != tc.want || ok != tc.wantOK {
				t.Fatalf("Adjust(%v, %d) = %v, %v; want %v, %v", tc.value, tc.dir, got, ok, tc.want, tc.wantOK)
			}
		})
	}

	unbounded := core.ParameterControl{Key: "x"}
	if got, ok := Adjust(unbounded, 1, 1); !ok || got != 1+defaultStep {
		t.Fatalf("default step not applied: %v %v", got, ok)
	}
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		step  float64
		value float64
		want  string
	}{
		{90, 720, "720"},
		{0.5, 4.5, "4.5"},
		{0.05, 0.3, "0.30"},
		{0.005, 0.0613, "0.061"},
	}
	for _, tc := range cases {
		if got := FormatValue(core.ParameterControl{Step: tc.step}, tc.value); got != tc.want {
			t.Fatalf("step %v value %v: got %q want %q", tc.step, tc.value, got, tc.want)
		}
	}
}

func TestDebugLines(t *testing.T) {
	lines := DebugLines(cat.State{Position: mgl64.Vec3{1, 2, 3}, Mode: cat.Flying}, 4, 60)
	if len(lines) == 0 || !strings.Contains(lines[0], "flying") {
		t.Fatalf("mode missing: %v", lines)
	}
	if !strings.Contains(lines[1], "1.00 2.00 3.00") {
		t.Fatalf("position missing: %v", lines)
	}
}
