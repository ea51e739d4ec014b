package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg == nil {
		t.Fatal("expected a default config")
	}
	if cfg.Scale != DefaultScale {
		t.Errorf("expected scale %g, got %g", DefaultScale, cfg.Scale)
	}
	if cfg.PhysicsInterval != DefaultPhysicsInterval {
		t.Errorf("expected interval %g, got %g", DefaultPhysicsInterval, cfg.PhysicsInterval)
	}
	if len(cfg.Bodies) != 3 {
		t.Errorf("expected 3 bodies in default config, got %d", len(cfg.Bodies))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	for _, name := range []string{"earth", "inner", "binary"} {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Errorf("preset %q missing", name)
			continue
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q invalid: %v", name, err)
		}
	}

	if GetPreset("nonexistent") != nil {
		t.Error("unknown preset must return nil")
	}
}

func TestGetPresetReturnsCopy(t *testing.T) {
	a := GetPreset("earth")
	a.Bodies[0].Mass = 1
	a.Scale = 99

	b := GetPreset("earth")
	if b.Bodies[0].Mass == 1 {
		t.Error("editing a preset copy leaked into the table")
	}
	if b.Scale == 99 {
		t.Error("editing a preset copy leaked into the table")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != 3 {
		t.Errorf("expected 3 presets, got %v", names)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config { return GetPreset("earth") }

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero scale", func(c *Config) { c.Scale = 0 }},
		{"negative interval", func(c *Config) { c.PhysicsInterval = -1 }},
		{"zero step days", func(c *Config) { c.StepDays = 0 }},
		{"zero trail capacity", func(c *Config) { c.TrailCapacity = 0 }},
		{"zero trail cadence", func(c *Config) { c.TrailEvery = 0 }},
		{"no bodies", func(c *Config) { c.Bodies = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			if cfg.Validate() == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestMakeBodies(t *testing.T) {
	cfg := GetPreset("earth")
	bodies := cfg.MakeBodies()
	if len(bodies) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(bodies))
	}
	earth := bodies[1]
	if earth.Name != "earth" || earth.Pos.X != 1.496e11 || earth.Vel.Y != 29780 {
		t.Errorf("body not built from config: %+v", earth)
	}
}

func TestMakeStepper(t *testing.T) {
	cfg := GetPreset("binary")
	s := cfg.MakeStepper(cfg.MakeBodies())
	if got := s.Timestep(); got != cfg.StepDays*86400 {
		t.Errorf("expected dt %g, got %g", cfg.StepDays*86400, got)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := GetPreset("binary")
	cfg.TrailCapacity = 77
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.TrailCapacity != 77 {
		t.Errorf("expected trail capacity 77, got %d", loaded.TrailCapacity)
	}
	if len(loaded.Bodies) != 2 || loaded.Bodies[0].Name != "alpha" {
		t.Errorf("bodies did not survive the roundtrip: %+v", loaded.Bodies)
	}
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("trail_every: 9\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TrailEvery != 9 {
		t.Errorf("expected override 9, got %d", cfg.TrailEvery)
	}
	if cfg.Scale != DefaultScale {
		t.Errorf("unset fields must keep defaults, got scale %g", cfg.Scale)
	}
	if len(cfg.Bodies) == 0 {
		t.Error("unset bodies must keep the defaults")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
