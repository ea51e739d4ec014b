package scene

import "testing"

func TestNewTransformDefaults(t *testing.T) {
	tr := NewTransform()
	if tr.Scl != (Vec3{1, 1, 1}) {
		t.Errorf("expected unit scale, got %+v", tr.Scl)
	}
}

func TestTransformSetters(t *testing.T) {
	tr := NewTransform()

	tr.SetPosition(1, 2, 3)
	if tr.Pos != (Vec3{1, 2, 3}) {
		t.Errorf("position not applied: %+v", tr.Pos)
	}

	tr.SetRotation(AxisX, 0.1)
	tr.SetRotation(AxisY, 0.2)
	tr.SetRotation(AxisZ, 0.3)
	if tr.Rot != (Vec3{0.1, 0.2, 0.3}) {
		t.Errorf("rotation not applied per axis: %+v", tr.Rot)
	}

	tr.SetScale(2, 2, 2)
	if tr.Scl != (Vec3{2, 2, 2}) {
		t.Errorf("scale not applied: %+v", tr.Scl)
	}
}

func TestLineGeometryDirtyLifecycle(t *testing.T) {
	lg := NewLineGeometry()
	if lg.Dirty() {
		t.Error("fresh geometry must start clean")
	}

	verts := []float64{0, 0, 0, 1, 1, 1}
	lg.SetVertices(verts)
	if !lg.Dirty() {
		t.Error("setting vertices must mark the geometry dirty")
	}
	if &lg.Vertices()[0] != &verts[0] {
		t.Error("vertices must be held by reference, not copied")
	}

	lg.ClearDirty()
	if lg.Dirty() {
		t.Error("ClearDirty must acknowledge the upload")
	}
}

func TestManualClock(t *testing.T) {
	c := &ManualClock{}
	c.Advance(1.5)
	c.Advance(0.5)
	if got := c.Elapsed(); got != 2.0 {
		t.Errorf("expected 2.0, got %f", got)
	}
}
