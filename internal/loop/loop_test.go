package loop

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/san-kum/orbitviz/internal/display"
	"github.com/san-kum/orbitviz/internal/orbit"
	"github.com/san-kum/orbitviz/internal/scene"
	"github.com/san-kum/orbitviz/internal/simclock"
	"github.com/san-kum/orbitviz/internal/trail"
	"github.com/san-kum/orbitviz/internal/units"
)

type fakeStepper struct {
	steps  int
	dt     float64
	onStep func()
}

func (s *fakeStepper) Step() {
	s.steps++
	if s.onStep != nil {
		s.onStep()
	}
}

func (s *fakeStepper) Timestep() float64 { return s.dt }

type countingRenderer struct{ frames int }

func (r *countingRenderer) Render() { r.frames++ }

func newTestLoop(st Stepper) *Loop {
	return New(st, simclock.New(0.5, 5), units.NewConverter(1))
}

func TestPhysicsCadence(t *testing.T) {
	st := &fakeStepper{dt: 10 * orbit.Day}
	l := newTestLoop(st)
	body := orbit.NewBody("a", 1, 1, "#ffffff", orbit.Vec2{}, orbit.Vec2{})
	l.Bind(NewBinding(body, scene.NewTransform(), trail.NewBuffer(8), nil, 0))

	for _, now := range []float64{0.0, 0.3, 0.6, 0.9, 1.2} {
		l.Frame(now)
	}

	if st.steps != 2 {
		t.Errorf("expected 2 physics steps, got %d", st.steps)
	}
	if got := l.Clock().SimulationTime(); got != 2*st.dt {
		t.Errorf("expected %g simulated seconds, got %g", 2*st.dt, got)
	}
}

func TestNodeTracksBody(t *testing.T) {
	l := newTestLoop(&fakeStepper{dt: orbit.Day})
	body := orbit.NewBody("a", 1, 1, "#ffffff", orbit.Vec2{X: 3, Y: -4}, orbit.Vec2{})
	node := scene.NewTransform()
	l.Bind(NewBinding(body, node, trail.NewBuffer(8), nil, 0))

	l.Frame(0)
	if node.Pos != (scene.Vec3{X: 3, Y: -4}) {
		t.Errorf("node not synced to body: %+v", node.Pos)
	}

	body.Pos = orbit.Vec2{X: 5, Y: 6}
	l.Frame(0.1)
	if node.Pos != (scene.Vec3{X: 5, Y: 6}) {
		t.Errorf("node not resynced: %+v", node.Pos)
	}
}

func TestPhysicsAppliedBeforeScene(t *testing.T) {
	body := orbit.NewBody("a", 1, 1, "#ffffff", orbit.Vec2{X: 1}, orbit.Vec2{})
	st := &fakeStepper{dt: orbit.Day}
	st.onStep = func() { body.Pos.X = 42 }

	l := newTestLoop(st)
	node := scene.NewTransform()
	l.Bind(NewBinding(body, node, trail.NewBuffer(8), nil, 0))

	l.Frame(0.6)
	if node.Pos.X != 42 {
		t.Errorf("frame rendered stale physics: node at %f", node.Pos.X)
	}
}

func TestTrailSampling(t *testing.T) {
	l := newTestLoop(&fakeStepper{dt: orbit.Day})
	body := orbit.NewBody("a", 1, 1, "#ffffff", orbit.Vec2{X: 7}, orbit.Vec2{})
	tb := trail.NewBuffer(8)
	line := scene.NewLineGeometry()
	l.Bind(NewBinding(body, scene.NewTransform(), tb, line, 0))

	for i := 0; i < 12; i++ {
		l.Frame(float64(i) * 0.01)
	}

	// samples land on frames 5 and 10 only
	if tb.Cursor() != 2 {
		t.Errorf("expected 2 trail samples, got cursor %d", tb.Cursor())
	}
	if tb.At(0) != (scene.Vec3{X: 7}) {
		t.Errorf("sample missing body position: %+v", tb.At(0))
	}
	if !line.Dirty() {
		t.Error("line must be marked dirty after a sample")
	}
	if &line.Vertices()[0] != &tb.Vertices()[0] {
		t.Error("line must share the trail backing storage")
	}
}

func TestLightTracksCentral(t *testing.T) {
	l := newTestLoop(&fakeStepper{dt: orbit.Day})
	sun := orbit.NewBody("sun", 1, 1, "#ffcc33", orbit.Vec2{X: 2, Y: 3}, orbit.Vec2{})
	l.Bind(NewBinding(sun, scene.NewTransform(), trail.NewBuffer(8), nil, 0))

	light := scene.NewTransform()
	l.SetLight(light)

	l.Frame(0)
	if light.Pos != (scene.Vec3{X: 2, Y: 3}) {
		t.Errorf("light not tracking central body: %+v", light.Pos)
	}
}

func TestIdleRotationAccumulates(t *testing.T) {
	l := newTestLoop(&fakeStepper{dt: orbit.Day})
	body := orbit.NewBody("a", 1, 1, "#ffffff", orbit.Vec2{}, orbit.Vec2{})
	node := scene.NewTransform()
	l.Bind(NewBinding(body, node, trail.NewBuffer(8), nil, 2.0))

	l.Frame(0) // first frame has no delta
	if node.Rot.Y != 0 {
		t.Errorf("expected zero angle on first frame, got %f", node.Rot.Y)
	}

	l.Frame(1.0)
	l.Frame(1.5)
	if math.Abs(node.Rot.Y-3.0) > 1e-12 {
		t.Errorf("expected accumulated angle 3.0, got %f", node.Rot.Y)
	}
}

func TestPublishOnPhysicsStep(t *testing.T) {
	st := &fakeStepper{dt: 10 * orbit.Day}
	l := New(st, simclock.New(0.5, 5), units.NewConverter(1e-11))

	sun := orbit.NewBody("sun", 1, 1, "#ffcc33", orbit.Vec2{}, orbit.Vec2{})
	earth := orbit.NewBody("earth", 1, 1, "#3399ff",
		orbit.Vec2{X: orbit.AU}, orbit.Vec2{Y: 5000})
	l.Bind(NewBinding(sun, scene.NewTransform(), trail.NewBuffer(8), nil, 0))
	l.Bind(NewBinding(earth, scene.NewTransform(), trail.NewBuffer(8), nil, 0))

	got := map[string]string{}
	out := display.NewRegistry()
	for _, name := range []string{"elapsed", "distance", "speed"} {
		name := name
		out.Register(name, display.TargetFunc(func(s string) { got[name] = s }))
	}
	l.SetOutput(out)

	l.Frame(0.6)

	if got["elapsed"] != "10 days" {
		t.Errorf("elapsed: got %q", got["elapsed"])
	}
	if got["distance"] != "1.000 AU" {
		t.Errorf("distance: got %q", got["distance"])
	}
	if got["speed"] != "5.00 km/s" {
		t.Errorf("speed: got %q", got["speed"])
	}
}

func TestMissingOutputsTolerated(t *testing.T) {
	// no registry, no line, no light: the frame must still run
	l := newTestLoop(&fakeStepper{dt: orbit.Day})
	body := orbit.NewBody("a", 1, 1, "#ffffff", orbit.Vec2{}, orbit.Vec2{})
	l.Bind(NewBinding(body, scene.NewTransform(), trail.NewBuffer(8), nil, 0))

	for _, now := range []float64{0, 0.6, 1.2} {
		l.Frame(now)
	}
}

func TestRendererCalledEveryFrame(t *testing.T) {
	l := newTestLoop(&fakeStepper{dt: orbit.Day})
	body := orbit.NewBody("a", 1, 1, "#ffffff", orbit.Vec2{}, orbit.Vec2{})
	l.Bind(NewBinding(body, scene.NewTransform(), trail.NewBuffer(8), nil, 0))

	r := &countingRenderer{}
	l.SetRenderer(r)

	for i := 0; i < 7; i++ {
		l.Frame(float64(i) * 0.01)
	}
	if r.frames != 7 {
		t.Errorf("expected 7 renders, got %d", r.frames)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	l := newTestLoop(&fakeStepper{dt: orbit.Day})
	body := orbit.NewBody("a", 1, 1, "#ffffff", orbit.Vec2{}, orbit.Vec2{})
	l.Bind(NewBinding(body, scene.NewTransform(), trail.NewBuffer(8), nil, 0))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- l.Run(ctx, &scene.ManualClock{}, time.Millisecond)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
