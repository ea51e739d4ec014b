package viz

import (
	"math"

	"github.com/san-kum/orbitviz/internal/scene"
)

// Camera projects scene space onto the canvas with a simple perspective
// divide. Rotation happens around the origin before projection.
type Camera struct {
	Distance         float64 // eye distance along +Z
	RotX, RotY, RotZ float64
	Zoom             float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 10, RotX: -0.9, Zoom: 1.0}
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

func (c *Camera) rotate(p scene.Vec3) scene.Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project maps a scene point to canvas sub-pixels. ok is false when the
// point lands behind the eye or off-canvas.
func (c *Camera) Project(p scene.Vec3, sw, sh int) (x, y int, ok bool) {
	rot := c.rotate(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-0.1 {
		return 0, 0, false
	}
	persp := c.Distance / (c.Distance - rot.Z)
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	px := minDim / 3.0
	x = int(rot.X*persp*px) + sw/2
	y = int(-rot.Y*persp*px) + sh/2
	return x, y, x >= 0 && x < sw && y >= 0 && y < sh
}

// DrawTrail draws a polyline over the flat vertex buffer in buffer order.
// The buffer is not chronological once the ring has wrapped, so the wrap
// point draws as one long segment; the windowed renderer does the same.
func (c *Camera) DrawTrail(cv *Canvas, verts []float64) {
	sw, sh := cv.Width*2, cv.Height*4
	var px, py int
	have := false
	for i := 0; i+2 < len(verts); i += 3 {
		p := scene.Vec3{X: verts[i], Y: verts[i+1], Z: verts[i+2]}
		x, y, ok := c.Project(p, sw, sh)
		if ok && have {
			cv.Line(px, py, x, y)
		}
		px, py, have = x, y, ok
	}
}
