package loop

import (
	"context"
	"time"

	"github.com/san-kum/orbitviz/internal/display"
	"github.com/san-kum/orbitviz/internal/orbit"
	"github.com/san-kum/orbitviz/internal/scene"
	"github.com/san-kum/orbitviz/internal/simclock"
	"github.com/san-kum/orbitviz/internal/trail"
	"github.com/san-kum/orbitviz/internal/units"
)

// Stepper is the external physics collaborator: one call advances every body
// by one fixed timestep. It is assumed to always succeed.
type Stepper interface {
	Step()
	Timestep() float64 // simulated seconds per step
}

// Renderer is invoked at the end of each frame with the scene already
// updated. TUI hosts that redraw on their own schedule leave it nil.
type Renderer interface {
	Render()
}

// Binding ties one physics body to its scene node and trail. Bindings are
// created once at setup and never reassigned.
type Binding struct {
	Body          *orbit.Body
	Node          scene.Node
	Trail         *trail.Buffer
	Line          scene.Line // optional
	RotationSpeed float64    // rad per real second, cosmetic idle spin

	angle float64
}

func NewBinding(body *orbit.Body, node scene.Node, tb *trail.Buffer, line scene.Line, rotationSpeed float64) *Binding {
	return &Binding{
		Body:          body,
		Node:          node,
		Trail:         tb,
		Line:          line,
		RotationSpeed: rotationSpeed,
	}
}

// Loop drives the whole visualization. Each Frame call runs synchronously on
// the caller's goroutine; all shared state (scene nodes, trails, cadence
// clock) is owned here and mutated only inside a frame, so the loop needs no
// locking. Physics always advances before scene positions are derived from
// it, so a frame never shows a body at new physics time with stale text.
type Loop struct {
	stepper  Stepper
	clock    *simclock.Clock
	conv     units.Converter
	bindings []*Binding

	light   scene.Node // optional, tracks the central body
	central *Binding   // the body the light follows
	focus   *Binding   // the body whose metrics are published
	out     *display.Registry
	render  Renderer

	lastFrame float64
	started   bool
}

func New(st Stepper, ck *simclock.Clock, conv units.Converter) *Loop {
	return &Loop{
		stepper: st,
		clock:   ck,
		conv:    conv,
	}
}

// Bind registers a body binding. The first binding becomes the central body
// and the second the metrics focus unless overridden.
func (l *Loop) Bind(b *Binding) {
	l.bindings = append(l.bindings, b)
	if l.central == nil {
		l.central = b
	} else if l.focus == nil {
		l.focus = b
	}
}

func (l *Loop) SetCentral(b *Binding)          { l.central = b }
func (l *Loop) SetFocus(b *Binding)            { l.focus = b }
func (l *Loop) SetLight(n scene.Node)          { l.light = n }
func (l *Loop) SetOutput(r *display.Registry)  { l.out = r }
func (l *Loop) SetRenderer(r Renderer)         { l.render = r }
func (l *Loop) Clock() *simclock.Clock         { return l.clock }
func (l *Loop) Bindings() []*Binding           { return l.bindings }

// Frame runs one render frame at real time now (seconds).
func (l *Loop) Frame(now float64) {
	// delta time feeds only the cosmetic idle rotation, never physics
	dt := 0.0
	if l.started {
		dt = now - l.lastFrame
	}
	l.started = true
	l.lastFrame = now

	if l.clock.PhysicsDue(now) {
		l.stepper.Step()
		l.clock.Advance(l.stepper.Timestep())
		l.publish()
	}

	for _, b := range l.bindings {
		p := l.conv.ToScene(b.Body.Pos)
		b.Node.SetPosition(p.X, p.Y, p.Z)
	}

	if l.clock.TickFrame() {
		for _, b := range l.bindings {
			b.Trail.Record(l.conv.ToScene(b.Body.Pos))
			if b.Line != nil {
				b.Line.SetVertices(b.Trail.Vertices())
			}
		}
	}

	if l.light != nil && l.central != nil {
		p := l.conv.ToScene(l.central.Body.Pos)
		l.light.SetPosition(p.X, p.Y, p.Z)
	}
	for _, b := range l.bindings {
		b.angle += dt * b.RotationSpeed
		b.Node.SetRotation(scene.AxisY, b.angle)
	}

	if l.render != nil {
		l.render.Render()
	}
}

func (l *Loop) publish() {
	if l.out == nil {
		return
	}
	l.out.Publish("elapsed", "%.0f days", l.clock.SimulationTime()/orbit.Day)
	if l.focus == nil {
		return
	}
	l.out.Publish("distance", "%.3f AU", l.focus.Body.DistanceAU())
	l.out.Publish("speed", "%.2f km/s", l.focus.Body.Speed()/1000)
}

// Run drives Frame from a ticker until ctx is canceled. This is the
// standalone scheduler; interactive hosts call Frame from their own tick
// instead.
func (l *Loop) Run(ctx context.Context, clock scene.Clock, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.Frame(clock.Elapsed())
		}
	}
}
