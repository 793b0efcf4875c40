package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded defaults failed: %v", err)
	}
	if cfg.World.CellSize != 32 {
		t.Errorf("default cell size = %v, want 32", cfg.World.CellSize)
	}
	if !cfg.Generator.CreateCoast || !cfg.Generator.CreateLakes {
		t.Error("default generator should enable coast and lakes")
	}
	if cfg.Generator.Seed != 0 {
		t.Error("default seed should be 0 (time-based)")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	body := "world:\n  cell_size: 16\ngenerator:\n  seed: 99\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.World.CellSize != 16 {
		t.Errorf("cell size = %v, want override 16", cfg.World.CellSize)
	}
	if cfg.Generator.Seed != 99 {
		t.Errorf("seed = %v, want override 99", cfg.Generator.Seed)
	}
	// Fields absent from the file keep their defaults.
	if cfg.World.Width != 640 {
		t.Errorf("width = %v, want default 640", cfg.World.Width)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("loading a missing config file should fail")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Generator.Seed = 1234

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config failed: %v", err)
	}
	if loaded.Generator.Seed != 1234 {
		t.Errorf("seed = %v, want 1234", loaded.Generator.Seed)
	}
}
