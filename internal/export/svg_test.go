package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/orbitviz/internal/scene"
)

func TestOrbitsToSVGEmpty(t *testing.T) {
	if got := OrbitsToSVG(nil, 800, 600); got != "" {
		t.Errorf("expected empty document for no paths, got %d bytes", len(got))
	}
}

func TestOrbitsToSVGBasic(t *testing.T) {
	paths := []Path{
		{
			Name:   "earth",
			Color:  "#3399ff",
			Verts:  []float64{1, 0, 0, 0, 1, 0, -1, 0, 0},
			Marker: scene.Vec3{X: 1},
			Radius: 0.01,
		},
	}
	svg := OrbitsToSVG(paths, 800, 600)

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="800" height="600"`,
		`stroke="#3399ff"`,
		`<circle`,
		`>earth</text>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestOrbitsToSVGMarkerOnly(t *testing.T) {
	// a trail with fewer than two points draws no polyline, just the marker
	svg := OrbitsToSVG([]Path{{Verts: []float64{1, 2, 3}, Marker: scene.Vec3{X: 1, Y: 2}}}, 400, 300)
	if strings.Contains(svg, "<path") {
		t.Error("single-point trail must not produce a path element")
	}
	if !strings.Contains(svg, "<circle") {
		t.Error("marker missing")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbits.svg")
	paths := []Path{{Name: "a", Verts: []float64{0, 0, 0, 1, 1, 0}, Marker: scene.Vec3{X: 1, Y: 1}}}

	if err := WriteFile(path, paths, 400, 300); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.HasPrefix(string(data), "<?xml") {
		t.Error("file does not start with an XML declaration")
	}

	if err := WriteFile(path, nil, 400, 300); err == nil {
		t.Error("expected an error for an empty export")
	}
}
