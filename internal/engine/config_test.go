package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	raw := "seed: 7\nport: \"9000\"\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Seed)
	}
	if cfg.Port != "9000" {
		t.Errorf("Port = %s, want 9000", cfg.Port)
	}
	// Fields absent from the file keep their defaults
	if cfg.TickDurationMs != 100 {
		t.Errorf("TickDurationMs = %d, want default 100", cfg.TickDurationMs)
	}
	if cfg.MaxBumps != 5 {
		t.Errorf("MaxBumps = %d, want default 5", cfg.MaxBumps)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestConfigTickHelpers(t *testing.T) {
	cfg := NewConfig()
	cfg.TickDurationMs = 250

	if d := cfg.TickDuration(); d != 250*time.Millisecond {
		t.Errorf("TickDuration = %v, want 250ms", d)
	}
	if dt := cfg.Dt(); dt != 0.25 {
		t.Errorf("Dt = %f, want 0.25", dt)
	}
}
