// Package gui renders the orbital scene in a Raylib window.
package gui

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orbitviz/internal/config"
	"github.com/san-kum/orbitviz/internal/display"
	"github.com/san-kum/orbitviz/internal/loop"
	"github.com/san-kum/orbitviz/internal/scene"
	"github.com/san-kum/orbitviz/internal/simclock"
	"github.com/san-kum/orbitviz/internal/trail"
	"github.com/san-kum/orbitviz/internal/units"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	numStars     = 1500
)

type bodyView struct {
	name   string
	node   *scene.Transform
	line   *scene.LineGeometry
	color  rl.Color
	radius float32
}

// App owns the window, the render loop, and the retained scene it draws.
type App struct {
	loop     *loop.Loop
	clock    scene.Clock
	views    []bodyView
	light    *scene.Transform
	camera   rl.Camera3D
	readouts map[string]string
	stars    []rl.Vector3
	paused   bool
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	rl.InitWindow(screenWidth, screenHeight, "orbitviz")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FrameRate))
	rl.SetExitKey(0)

	app := newApp(cfg)
	app.runLoop()
	return nil
}

func newApp(cfg *config.Config) *App {
	bodies := cfg.MakeBodies()
	stepper := cfg.MakeStepper(bodies)
	conv := units.NewConverter(cfg.Scale)
	ck := simclock.New(cfg.PhysicsInterval, cfg.TrailEvery)
	lp := loop.New(stepper, ck, conv)

	readouts := make(map[string]string)
	out := display.NewRegistry()
	for _, name := range []string{"elapsed", "distance", "speed"} {
		name := name
		out.Register(name, display.TargetFunc(func(s string) { readouts[name] = s }))
	}
	lp.SetOutput(out)

	light := scene.NewTransform()
	lp.SetLight(light)

	views := make([]bodyView, 0, len(bodies))
	for i, b := range bodies {
		node := scene.NewTransform()
		line := scene.NewLineGeometry()
		bind := loop.NewBinding(b, node, trail.NewBuffer(cfg.TrailCapacity), line, cfg.Bodies[i].RotationSpeed)
		lp.Bind(bind)
		if b.Name == cfg.Central {
			lp.SetCentral(bind)
		}
		if b.Name == cfg.Focus {
			lp.SetFocus(bind)
		}
		views = append(views, bodyView{
			name:   b.Name,
			node:   node,
			line:   line,
			color:  parseColor(b.Color),
			radius: displayRadius(b.Radius),
		})
	}

	stars := make([]rl.Vector3, numStars)
	for i := range stars {
		stars[i] = rl.NewVector3(
			float32((rand.Float64()-0.5)*400),
			float32((rand.Float64()-0.5)*400),
			float32(-100-rand.Float64()*300),
		)
	}

	return &App{
		loop:  lp,
		clock: scene.NewRealClock(),
		views: views,
		light: light,
		camera: rl.NewCamera3D(
			rl.NewVector3(0, -6, 10),
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 0, 1),
			45.0,
			rl.CameraPerspective,
		),
		readouts: readouts,
		stars:    stars,
	}
}

func (a *App) runLoop() {
	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}
}

func (a *App) update() {
	if rl.IsKeyPressed(rl.KeySpace) {
		a.paused = !a.paused
	}
	rl.UpdateCamera(&a.camera, rl.CameraOrbital)

	if !a.paused {
		a.loop.Frame(a.clock.Elapsed())
	}
}

// displayRadius compresses real body radii (1e6..1e9 m) into scene-sized
// spheres; a log scale keeps the sun and the planets on screen together.
func displayRadius(r float64) float32 {
	if r <= 0 {
		return 0.05
	}
	return float32(math.Max(0.05, (math.Log10(r)-5.5)*0.12))
}

func parseColor(hex string) rl.Color {
	if len(hex) != 7 || hex[0] != '#' {
		return rl.White
	}
	val := func(c byte) uint8 {
		switch {
		case c >= '0' && c <= '9':
			return c - '0'
		case c >= 'a' && c <= 'f':
			return c - 'a' + 10
		case c >= 'A' && c <= 'F':
			return c - 'A' + 10
		}
		return 0
	}
	return rl.NewColor(
		val(hex[1])<<4|val(hex[2]),
		val(hex[3])<<4|val(hex[4]),
		val(hex[5])<<4|val(hex[6]),
		255,
	)
}
