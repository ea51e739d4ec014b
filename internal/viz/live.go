// Package viz renders the orbital scene in the terminal.
//
// The package implements a live view using the Bubble Tea framework: a
// braille [Canvas] shows bodies and their ring-buffer trails projected
// through a rotatable [Camera], next to a lipgloss stats panel fed by the
// render loop's display targets.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	X/Y/Z - Rotate camera (shift reverses)
//	+/-   - Zoom
//	Q     - Quit
package viz

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbitviz/internal/config"
	"github.com/san-kum/orbitviz/internal/display"
	"github.com/san-kum/orbitviz/internal/loop"
	"github.com/san-kum/orbitviz/internal/orbit"
	"github.com/san-kum/orbitviz/internal/scene"
	"github.com/san-kum/orbitviz/internal/simclock"
	"github.com/san-kum/orbitviz/internal/trail"
	"github.com/san-kum/orbitviz/internal/units"
)

const (
	canvasWidth  = 80
	canvasHeight = 24
	historyCap   = 120
)

type TickMsg time.Time

type bodyView struct {
	name string
	node *scene.Transform
	line *scene.LineGeometry
}

// Model owns the render loop and the terminal view of its scene.
type Model struct {
	loop      *loop.Loop
	clock     scene.Clock
	views     []bodyView
	focus     *orbit.Body
	cam       *Camera
	canvas    *Canvas
	readouts  map[string]string
	speedHist []float64
	lastSim   float64
	running   bool
	fps       int
}

// NewModel assembles the full visualization from a config: bodies, stepper,
// cadence clock, unit converter, scene graph, and loop.
func NewModel(cfg *config.Config) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}

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

	var focus *orbit.Body
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
			focus = b
		}
		views = append(views, bodyView{name: b.Name, node: node, line: line})
	}

	fps := cfg.FrameRate
	if fps <= 0 {
		fps = config.DefaultFrameRate
	}

	return Model{
		loop:     lp,
		clock:    scene.NewRealClock(),
		views:    views,
		focus:    focus,
		cam:      NewCamera(),
		canvas:   NewCanvas(canvasWidth, canvasHeight),
		readouts: readouts,
		running:  true,
		fps:      fps,
	}, nil
}

// Run starts the Bubble Tea program and blocks until quit.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tick(m.fps)
}

func tick(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "x":
			m.cam.RotX += 0.1
		case "X":
			m.cam.RotX -= 0.1
		case "y":
			m.cam.RotY += 0.1
		case "Y":
			m.cam.RotY -= 0.1
		case "z":
			m.cam.RotZ += 0.1
		case "Z":
			m.cam.RotZ -= 0.1
		case "+", "=":
			m.cam.ZoomIn()
		case "-", "_":
			m.cam.ZoomOut()
		}
	case TickMsg:
		if m.running {
			m.loop.Frame(m.clock.Elapsed())
			m.sampleSpeed()
		}
		m.draw()
		return m, tick(m.fps)
	}
	return m, nil
}

// sampleSpeed appends one graph point per physics step, detected by the
// simulation time moving.
func (m *Model) sampleSpeed() {
	st := m.loop.Clock().SimulationTime()
	if st == m.lastSim || m.focus == nil {
		return
	}
	m.lastSim = st
	m.speedHist = append(m.speedHist, m.focus.Speed()/1000)
	if len(m.speedHist) > historyCap {
		m.speedHist = m.speedHist[1:]
	}
}

func (m *Model) draw() {
	m.canvas.Clear()
	sw, sh := m.canvas.Width*2, m.canvas.Height*4
	for _, v := range m.views {
		if verts := v.line.Vertices(); verts != nil {
			m.cam.DrawTrail(m.canvas, verts)
			v.line.ClearDirty()
		}
		if x, y, ok := m.cam.Project(v.node.Pos, sw, sh); ok {
			m.canvas.Marker(x, y, 1)
		}
	}
}

func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("ORBITVIZ") + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	s.WriteString(labelStyle.Render("Elapsed") + valueStyle.Render(m.readout("elapsed")) + "\n")
	s.WriteString(labelStyle.Render("Distance") + valueStyle.Render(m.readout("distance")) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(m.readout("speed")) + "\n")

	if len(m.speedHist) > 1 {
		chart := asciigraph.Plot(m.speedHist,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("speed km/s"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString("\nBODIES\n")
	for _, v := range m.views {
		s.WriteString("  " + bodyStyle.Render(v.name) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Pause Q:Quit +/-:Zoom X/Y/Z:Rotate"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

func (m Model) readout(name string) string {
	if s, ok := m.readouts[name]; ok {
		return s
	}
	return "-"
}
