package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cat-yarn/internal/cat"
	"cat-yarn/internal/session"
)

func TestDefaultMatchesPackageDefaults(t *testing.T) {
	tun, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if got, want := tun.CatParams(), cat.DefaultParams(); got != want {
		t.Fatalf("cat params %+v, want %+v", got, want)
	}
	want := session.DefaultConfig()
	got := tun.SessionConfig()
	if got.World != want.World || got.Yarn != want.Yarn || got.Camera != want.Camera || got.DeathHeight != want.DeathHeight {
		t.Fatalf("session config %+v, want %+v", got, want)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	tun, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tun.Cat.JumpSpeed != 4.5 {
		t.Fatalf("expected default jump speed, got %f", tun.Cat.JumpSpeed)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("cat:\n  jump_speed: 7\nworld:\n  count: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tun, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tun.Cat.JumpSpeed != 7 || tun.World.Count != 5 {
		t.Fatalf("override not applied: %+v", tun)
	}
	if tun.Cat.Gravity != 12 || tun.Yarn.Radius != 0.3 {
		t.Fatalf("unset keys lost their defaults: %+v", tun)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"bad_yaml":    "cat: [",
		"zero_grav":   "cat:\n  gravity: 0\n",
		"no_islands":  "world:\n  count: 0\n",
		"clip_planes": "camera:\n  near: 5\n  far: 1\n",
		"back_spin":   "yarn:\n  spin_speed: -720\n",
		"sunk_yarn":   "yarn:\n  clearance: -1\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tuning.yaml")
			if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Fatal("expected an error")
			}
		})
	}

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("yarn:\n  radius: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestApplyOverride(t *testing.T) {
	tun, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if err := tun.ApplyOverride("cat.jump_speed", "6.5"); err != nil {
		t.Fatalf("ApplyOverride: %v", err)
	}
	if err := tun.ApplyOverride("world.count", "12"); err != nil {
		t.Fatalf("ApplyOverride: %v", err)
	}
	if tun.Cat.JumpSpeed != 6.5 || tun.World.Count != 12 {
		t.Fatalf("overrides not applied: %+v", tun)
	}
	if tun.Cat.Gravity != 12 {
		t.Fatal("override clobbered a sibling key")
	}

	for _, key := range []string{"cat", "dog.speed", "cat.nope"} {
		if err := tun.ApplyOverride(key, "1"); !errors.Is(err, ErrUnknownKey) {
			t.Fatalf("%s: expected ErrUnknownKey, got %v", key, err)
		}
	}
	if err := tun.ApplyOverride("cat.gravity", "heavy"); err == nil {
		t.Fatal("non-numeric value should fail")
	}
	if err := tun.ApplyOverride("world.count", "2.5"); err == nil {
		t.Fatal("fractional island count should fail")
	}
}

func TestParseOverride(t *testing.T) {
	k, v, err := ParseOverride("cat.gravity= 9.5")
	if err != nil || k != "cat.gravity" || v != "9.5" {
		t.Fatalf("got %q %q %v", k, v, err)
	}
	if _, _, err := ParseOverride("gravity"); err == nil {
		t.Fatal("missing '=' should fail")
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("cat:\n  jump_speed: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("cat:\n  jump_speed: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		changed, err := w.Changed()
		if err != nil {
			t.Fatalf("watch error: %v", err)
		}
		if changed {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("no change reported for the tuning file")
}
