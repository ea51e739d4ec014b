package main

import (
	"github.com/san-kum/orbitviz/internal/config"
	"github.com/san-kum/orbitviz/internal/export"
	"github.com/san-kum/orbitviz/internal/orbit"
	"github.com/san-kum/orbitviz/internal/storage"
	"github.com/san-kum/orbitviz/internal/trail"
	"github.com/san-kum/orbitviz/internal/units"
)

// headlessRun is the offline counterpart of the live loop: physics is stepped
// back to back with no render pacing, trails sampled on the same every-N
// cadence the live views use.
type headlessRun struct {
	bodies  []*orbit.Body
	stepper *orbit.Stepper
	trails  []*trail.Buffer
	conv    units.Converter
	series  storage.Series
}

func runHeadless(cfg *config.Config, days float64) *headlessRun {
	h := &headlessRun{
		bodies: cfg.MakeBodies(),
		conv:   units.NewConverter(cfg.Scale),
	}
	h.stepper = cfg.MakeStepper(h.bodies)

	for _, b := range h.bodies {
		h.trails = append(h.trails, trail.NewBuffer(cfg.TrailCapacity))
		h.series.Bodies = append(h.series.Bodies, b.Name)
	}

	steps := int(days / cfg.StepDays)
	simTime := 0.0
	for i := 0; i < steps; i++ {
		h.stepper.Step()
		simTime += h.stepper.Timestep()

		if (i+1)%cfg.TrailEvery == 0 {
			for j, b := range h.bodies {
				h.trails[j].Record(h.conv.ToScene(b.Pos))
			}
		}

		row := make([]float64, 0, 4*len(h.bodies))
		for _, b := range h.bodies {
			row = append(row, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y)
		}
		h.series.Append(simTime, row)
	}

	return h
}

func (h *headlessRun) paths() []export.Path {
	paths := make([]export.Path, len(h.bodies))
	for i, b := range h.bodies {
		paths[i] = export.Path{
			Name:   b.Name,
			Color:  b.Color,
			Verts:  h.trails[i].Vertices(),
			Marker: h.conv.ToScene(b.Pos),
			Radius: b.Radius * h.conv.Scale(),
		}
	}
	return paths
}

func (h *headlessRun) metrics() map[string]float64 {
	px, py := h.stepper.Momentum()
	return map[string]float64{
		"energy":           h.stepper.Energy(),
		"momentum_x":       px,
		"momentum_y":       py,
		"angular_momentum": h.stepper.AngularMomentum(),
	}
}
