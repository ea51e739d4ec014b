package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitviz/internal/orbit"
)

const (
	DefaultScale           = 1e-11
	DefaultPhysicsInterval = 0.5
	DefaultStepDays        = 10.0
	DefaultTrailCapacity   = 200
	DefaultTrailEvery      = 5
	DefaultFrameRate       = 60
)

// BodyConfig describes one celestial body. Positions are meters, velocities
// meters/second.
type BodyConfig struct {
	Name          string     `yaml:"name"`
	Mass          float64    `yaml:"mass"`
	Radius        float64    `yaml:"radius"`
	Color         string     `yaml:"color"`
	Pos           [2]float64 `yaml:"pos"`
	Vel           [2]float64 `yaml:"vel"`
	RotationSpeed float64    `yaml:"rotation_speed"`
}

type Config struct {
	Scale           float64      `yaml:"scale"`            // scene units per meter
	PhysicsInterval float64      `yaml:"physics_interval"` // real seconds between steps
	StepDays        float64      `yaml:"step_days"`        // simulated days per step
	TrailCapacity   int          `yaml:"trail_capacity"`
	TrailEvery      int          `yaml:"trail_every"` // sample every N frames
	FrameRate       int          `yaml:"frame_rate"`
	Central         string       `yaml:"central"` // body the light tracks
	Focus           string       `yaml:"focus"`   // body published to readouts
	Bodies          []BodyConfig `yaml:"bodies"`
}

func DefaultConfig() *Config {
	return GetPreset("inner")
}

// Load reads a yaml config, layered over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %g", c.Scale)
	}
	if c.PhysicsInterval <= 0 {
		return fmt.Errorf("physics_interval must be positive, got %g", c.PhysicsInterval)
	}
	if c.StepDays <= 0 {
		return fmt.Errorf("step_days must be positive, got %g", c.StepDays)
	}
	if c.TrailCapacity <= 0 {
		return fmt.Errorf("trail_capacity must be positive, got %d", c.TrailCapacity)
	}
	if c.TrailEvery < 1 {
		return fmt.Errorf("trail_every must be at least 1, got %d", c.TrailEvery)
	}
	if len(c.Bodies) == 0 {
		return fmt.Errorf("at least one body required")
	}
	return nil
}

// MakeBodies builds the body set from the config table.
func (c *Config) MakeBodies() []*orbit.Body {
	bodies := make([]*orbit.Body, len(c.Bodies))
	for i, b := range c.Bodies {
		bodies[i] = orbit.NewBody(b.Name, b.Mass, b.Radius, b.Color,
			orbit.Vec2{X: b.Pos[0], Y: b.Pos[1]},
			orbit.Vec2{X: b.Vel[0], Y: b.Vel[1]})
	}
	return bodies
}

// MakeStepper builds the physics stepper over the given body set.
func (c *Config) MakeStepper(bodies []*orbit.Body) *orbit.Stepper {
	return orbit.NewStepper(bodies, c.StepDays*orbit.Day)
}
