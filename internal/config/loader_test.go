package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	balls, err := LoadBalls("")
	if err != nil {
		t.Fatalf("LoadBalls: %v", err)
	}
	want := DefaultBallsConfig()
	if balls.Count != want.Count || balls.Velocity != want.Velocity || balls.Radius != want.Radius || balls.Cell != want.Cell {
		t.Errorf("embedded balls config %+v differs from hardcoded %+v", balls, want)
	}

	walk, err := LoadWalk("")
	if err != nil {
		t.Fatalf("LoadWalk: %v", err)
	}
	if walk != DefaultWalkConfig() {
		t.Errorf("embedded walk config %+v differs from hardcoded %+v", walk, DefaultWalkConfig())
	}

	plat, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer: %v", err)
	}
	def := DefaultPlatformerConfig()
	if plat.World != def.World || plat.Player != def.Player || plat.Goal != def.Goal {
		t.Errorf("embedded platformer config %+v differs from hardcoded %+v", plat, def)
	}
	if math.Abs(plat.Motion.DescendTime-def.Motion.DescendTime) > 1e-5 {
		t.Errorf("descend time = %v, expected %v", plat.Motion.DescendTime, def.Motion.DescendTime)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balls.yaml")
	data := []byte("count: 7\ncollisions: true\ncolor: [1, 0.5, 0]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBalls(path)
	if err != nil {
		t.Fatalf("LoadBalls: %v", err)
	}
	if cfg.Count != 7 || !cfg.Collisions {
		t.Errorf("custom values not applied: %+v", cfg)
	}
	if len(cfg.Color) != 3 || cfg.Color[1] != 0.5 {
		t.Errorf("color = %v, expected [1 0.5 0]", cfg.Color)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Radius != DefaultBallsConfig().Radius {
		t.Errorf("radius = %+v, expected default", cfg.Radius)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadWalk(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("fps: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWalk(path); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestLoadUserConfigDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, HomeDir, "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "walk.yaml"), []byte("fps: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWalk("")
	if err != nil {
		t.Fatalf("LoadWalk: %v", err)
	}
	if cfg.FPS != 12 {
		t.Errorf("FPS = %d, expected 12 from user config", cfg.FPS)
	}
	if cfg.ScrollSpeed != DefaultWalkConfig().ScrollSpeed {
		t.Errorf("unset fields should keep defaults, got %+v", cfg)
	}
}
