package orbit

import "math"

// Stepper advances a fixed set of bodies by pairwise Newtonian gravity using
// a symplectic Euler step. One call to Step moves every body forward by Dt
// simulated seconds; there is no adaptive stepping and no failure path.
type Stepper struct {
	Bodies    []*Body
	G         float64
	Dt        float64 // simulated seconds per step
	Softening float64 // m, guards close encounters

	ax, ay []float64
}

func NewStepper(bodies []*Body, dt float64) *Stepper {
	return &Stepper{
		Bodies: bodies,
		G:      GravityConst,
		Dt:     dt,
		ax:     make([]float64, len(bodies)),
		ay:     make([]float64, len(bodies)),
	}
}

// Timestep returns the simulated seconds covered by one Step.
func (s *Stepper) Timestep() float64 { return s.Dt }

// Step advances all bodies by one fixed timestep. Velocities are kicked
// before positions drift, which keeps near-circular orbits bounded over long
// runs where plain Euler spirals out.
func (s *Stepper) Step() {
	n := len(s.Bodies)
	if len(s.ax) != n {
		s.ax = make([]float64, n)
		s.ay = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		s.ax[i], s.ay[i] = 0, 0
	}

	eps2 := s.Softening * s.Softening
	for i := 0; i < n; i++ {
		bi := s.Bodies[i]
		for j := i + 1; j < n; j++ {
			bj := s.Bodies[j]

			rx := bj.Pos.X - bi.Pos.X
			ry := bj.Pos.Y - bi.Pos.Y
			r2 := rx*rx + ry*ry + eps2

			rInv := 1.0 / math.Sqrt(r2)
			r3Inv := rInv * rInv * rInv

			fij := s.G * bj.Mass * r3Inv
			s.ax[i] += fij * rx
			s.ay[i] += fij * ry

			fji := s.G * bi.Mass * r3Inv
			s.ax[j] -= fji * rx
			s.ay[j] -= fji * ry
		}
	}

	for i, b := range s.Bodies {
		b.Vel.X += s.ax[i] * s.Dt
		b.Vel.Y += s.ay[i] * s.Dt
		b.Pos.X += b.Vel.X * s.Dt
		b.Pos.Y += b.Vel.Y * s.Dt
	}
}

// Energy returns total kinetic plus potential energy of the system.
func (s *Stepper) Energy() float64 {
	ke := 0.0
	pe := 0.0
	for i, bi := range s.Bodies {
		v2 := bi.Vel.X*bi.Vel.X + bi.Vel.Y*bi.Vel.Y
		ke += 0.5 * bi.Mass * v2

		for j := i + 1; j < len(s.Bodies); j++ {
			bj := s.Bodies[j]
			d := bj.Pos.Sub(bi.Pos)
			r := math.Sqrt(d.X*d.X + d.Y*d.Y + s.Softening*s.Softening)
			pe -= s.G * bi.Mass * bj.Mass / r
		}
	}
	return ke + pe
}

// Momentum returns total linear momentum.
func (s *Stepper) Momentum() (px, py float64) {
	for _, b := range s.Bodies {
		px += b.Mass * b.Vel.X
		py += b.Mass * b.Vel.Y
	}
	return
}

// AngularMomentum returns total angular momentum about the origin.
func (s *Stepper) AngularMomentum() float64 {
	L := 0.0
	for _, b := range s.Bodies {
		L += b.Mass * (b.Pos.X*b.Vel.Y - b.Pos.Y*b.Vel.X)
	}
	return L
}
