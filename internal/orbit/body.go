package orbit

import "math"

// Physical constants in SI units.
const (
	// GravityConst is the Newtonian gravitational constant (m^3 kg^-1 s^-2).
	GravityConst = 6.674e-11

	// AU is one astronomical unit in meters.
	AU = 1.495978707e11

	// Day is one day in seconds.
	Day = 86400.0
)

// Vec2 is a position or velocity in physics space (meters, meters/second).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Norm() float64        { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Body is a celestial body owned by the Stepper. Position and velocity are
// mutated in place each step; everything else is fixed at creation.
type Body struct {
	Name   string
	Mass   float64 // kg
	Radius float64 // m, display only
	Color  string  // hex, display only
	Pos    Vec2
	Vel    Vec2
}

func NewBody(name string, mass, radius float64, color string, pos, vel Vec2) *Body {
	return &Body{
		Name:   name,
		Mass:   mass,
		Radius: radius,
		Color:  color,
		Pos:    pos,
		Vel:    vel,
	}
}

// Speed returns the magnitude of the body's velocity in m/s.
func (b *Body) Speed() float64 { return b.Vel.Norm() }

// DistanceAU returns the body's distance from the origin in astronomical
// units.
func (b *Body) DistanceAU() float64 { return b.Pos.Norm() / AU }
