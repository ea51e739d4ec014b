// Package trail provides the fixed-capacity ring buffer backing each body's
// rendered path.
package trail

import "github.com/san-kum/orbitviz/internal/scene"

// DefaultCapacity is the reference trail length in sampled points.
const DefaultCapacity = 200

// Buffer is a ring of 3D points with a flat float64 backing store. All slots
// start at the origin, so a fresh trail renders collapsed and invisible until
// samples fill it in. Record overwrites the oldest slot once the ring wraps.
//
// Vertices returns the backing store in buffer order, not chronological
// order: after wrapping, the polyline contains one long segment from the
// newest point back to the slot about to be overwritten. That jump is part of
// the look and is deliberately left alone.
type Buffer struct {
	verts []float64 // x,y,z triples, len = 3*capacity, fixed
	index int       // next write slot, in [0, capacity)
}

func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{verts: make([]float64, capacity*3)}
}

// Record writes p at the cursor and advances it modulo capacity. O(1), never
// reallocates.
func (b *Buffer) Record(p scene.Vec3) {
	i := b.index * 3
	b.verts[i] = p.X
	b.verts[i+1] = p.Y
	b.verts[i+2] = p.Z
	b.index = (b.index + 1) % b.Capacity()
}

// Vertices returns the live backing store as x,y,z triples in buffer order.
// The renderer may read it every frame whether or not anything changed.
func (b *Buffer) Vertices() []float64 { return b.verts }

func (b *Buffer) Capacity() int { return len(b.verts) / 3 }

// Cursor returns the slot the next Record will overwrite.
func (b *Buffer) Cursor() int { return b.index }

// At returns the point stored in slot i.
func (b *Buffer) At(i int) scene.Vec3 {
	return scene.Vec3{X: b.verts[i*3], Y: b.verts[i*3+1], Z: b.verts[i*3+2]}
}
