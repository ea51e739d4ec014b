package config

// Presets are ready-made scenarios. Orbital elements are circular-orbit
// approximations, good enough for display.
var Presets = map[string]*Config{
	"earth": {
		Scale:           DefaultScale,
		PhysicsInterval: DefaultPhysicsInterval,
		StepDays:        DefaultStepDays,
		TrailCapacity:   DefaultTrailCapacity,
		TrailEvery:      DefaultTrailEvery,
		FrameRate:       DefaultFrameRate,
		Central:         "sun",
		Focus:           "earth",
		Bodies: []BodyConfig{
			{Name: "sun", Mass: 1.989e30, Radius: 6.963e8, Color: "#ffcc33", RotationSpeed: 0.05},
			{Name: "earth", Mass: 5.972e24, Radius: 6.371e6, Color: "#3399ff",
				Pos: [2]float64{1.496e11, 0}, Vel: [2]float64{0, 29780}, RotationSpeed: 0.5},
		},
	},
	"inner": {
		Scale:           DefaultScale,
		PhysicsInterval: DefaultPhysicsInterval,
		StepDays:        DefaultStepDays,
		TrailCapacity:   DefaultTrailCapacity,
		TrailEvery:      DefaultTrailEvery,
		FrameRate:       DefaultFrameRate,
		Central:         "sun",
		Focus:           "earth",
		Bodies: []BodyConfig{
			{Name: "sun", Mass: 1.989e30, Radius: 6.963e8, Color: "#ffcc33", RotationSpeed: 0.05},
			{Name: "earth", Mass: 5.972e24, Radius: 6.371e6, Color: "#3399ff",
				Pos: [2]float64{1.496e11, 0}, Vel: [2]float64{0, 29780}, RotationSpeed: 0.5},
			{Name: "mars", Mass: 6.417e23, Radius: 3.39e6, Color: "#cc5533",
				Pos: [2]float64{2.279e11, 0}, Vel: [2]float64{0, 24070}, RotationSpeed: 0.45},
		},
	},
	"binary": {
		Scale:           DefaultScale,
		PhysicsInterval: DefaultPhysicsInterval,
		StepDays:        1.0,
		TrailCapacity:   DefaultTrailCapacity,
		TrailEvery:      DefaultTrailEvery,
		FrameRate:       DefaultFrameRate,
		Central:         "alpha",
		Focus:           "beta",
		Bodies: []BodyConfig{
			{Name: "alpha", Mass: 1.0e30, Radius: 5e8, Color: "#ffaa55",
				Pos: [2]float64{-2.5e10, 0}, Vel: [2]float64{0, -18000}, RotationSpeed: 0.1},
			{Name: "beta", Mass: 1.0e30, Radius: 5e8, Color: "#55aaff",
				Pos: [2]float64{2.5e10, 0}, Vel: [2]float64{0, 18000}, RotationSpeed: 0.1},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown. The copy
// is deep enough that callers can edit bodies without touching the table.
func GetPreset(name string) *Config {
	src, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *src
	cfg.Bodies = make([]BodyConfig, len(src.Bodies))
	copy(cfg.Bodies, src.Bodies)
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
