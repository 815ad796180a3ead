package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDodgeEmbeddedDefaults(t *testing.T) {
	cfg, err := LoadDodge("")
	if err != nil {
		t.Fatalf("LoadDodge: %v", err)
	}

	if cfg.Canvas.Width != 320 || cfg.Canvas.Height != 480 {
		t.Errorf("canvas = %+v, expected 320x480", cfg.Canvas)
	}
	if cfg.Obstacles.MinGap != 80 {
		t.Errorf("min gap = %v, expected 80", cfg.Obstacles.MinGap)
	}
	if cfg.Physics.JumpImpulse >= 0 {
		t.Error("jump impulse must be negative (upward)")
	}
	if cfg.Obstacles.GapDecrement <= 0 || cfg.Obstacles.SpeedIncrement <= 0 {
		t.Error("difficulty ramp increments must be positive")
	}
}

func TestLoadCollectorEmbeddedDefaults(t *testing.T) {
	cfg, err := LoadCollector("")
	if err != nil {
		t.Fatalf("LoadCollector: %v", err)
	}

	if cfg.Grid.Width != 20 || cfg.Grid.Height != 20 {
		t.Errorf("grid = %+v, expected 20x20", cfg.Grid)
	}
	if cfg.TickMillis != 200 {
		t.Errorf("tick_millis = %d, expected 200", cfg.TickMillis)
	}
	if cfg.InitialLength != 1 {
		t.Errorf("initial_length = %d, expected 1", cfg.InitialLength)
	}
}

func TestLoadDodgeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dodge.yaml")
	content := "canvas:\n  width: 288\n  height: 512\nobstacles:\n  min_gap: 90\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDodge(path)
	if err != nil {
		t.Fatalf("LoadDodge(%s): %v", path, err)
	}
	if cfg.Canvas.Width != 288 || cfg.Obstacles.MinGap != 90 {
		t.Errorf("custom values not applied: %+v", cfg)
	}
}

func TestLoadDodgeCustomPathMissing(t *testing.T) {
	if _, err := LoadDodge(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("an explicit config path that does not exist must fail")
	}
}

func TestLoadCollectorCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collector.yaml")
	if err := os.WriteFile(path, []byte("grid: [not a map]"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCollector(path); err == nil {
		t.Error("malformed YAML at an explicit path must fail")
	}
}
