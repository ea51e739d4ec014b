package scene

import "math"

// Vec3 is a point or direction in scene space.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Axis selects a rotation axis on a Node.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Node is a positionable object in the scene graph. The render loop writes
// into nodes; renderers read them back out.
type Node interface {
	SetPosition(x, y, z float64)
	SetRotation(axis Axis, value float64)
	SetScale(x, y, z float64)
}

// Line is a renderable polyline whose vertex buffer can be replaced
// wholesale. Setting vertices marks the line dirty so the renderer knows to
// re-upload.
type Line interface {
	SetVertices(verts []float64)
}

// Transform is the concrete retained-mode Node shared by all renderers.
type Transform struct {
	Pos Vec3
	Rot Vec3
	Scl Vec3
}

func NewTransform() *Transform {
	return &Transform{Scl: Vec3{1, 1, 1}}
}

func (t *Transform) SetPosition(x, y, z float64) { t.Pos = Vec3{x, y, z} }

func (t *Transform) SetRotation(axis Axis, value float64) {
	switch axis {
	case AxisX:
		t.Rot.X = value
	case AxisY:
		t.Rot.Y = value
	case AxisZ:
		t.Rot.Z = value
	}
}

func (t *Transform) SetScale(x, y, z float64) { t.Scl = Vec3{x, y, z} }

// LineGeometry is the concrete Line. The vertex slice is held by reference,
// so a caller that keeps writing into the same backing array only needs to
// re-mark the geometry dirty.
type LineGeometry struct {
	verts []float64
	dirty bool
}

func NewLineGeometry() *LineGeometry {
	return &LineGeometry{}
}

func (l *LineGeometry) SetVertices(verts []float64) {
	l.verts = verts
	l.dirty = true
}

func (l *LineGeometry) Vertices() []float64 { return l.verts }

func (l *LineGeometry) Dirty() bool { return l.dirty }

// ClearDirty acknowledges an upload; the renderer calls it after consuming
// the vertex buffer.
func (l *LineGeometry) ClearDirty() { l.dirty = false }
