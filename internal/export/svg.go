// Package export renders orbit trails to standalone SVG files for sharing a
// snapshot outside the live views.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/orbitviz/internal/scene"
)

// Path is one body's trail plus its current position marker.
type Path struct {
	Name   string
	Color  string  // hex stroke color, e.g. "#3399ff"
	Verts  []float64 // flat xyz triples in buffer order
	Marker scene.Vec3
	Radius float64 // marker radius in scene units
}

// OrbitsToSVG renders the given trails into an SVG document of the requested
// pixel size. All paths share one bounding box so relative scale between
// orbits is preserved. Trail segments follow buffer order, so a wrapped ring
// shows its newest-to-oldest jump exactly like the live renderers.
func OrbitsToSVG(paths []Path, width, height int) string {
	if len(paths) == 0 {
		return ""
	}

	minX, maxX, minY, maxY := bounds(paths)

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	toPx := func(x, y float64) (float64, float64) {
		px := (x - minX) / rangeX * float64(width)
		py := float64(height) - (y-minY)/rangeY*float64(height)
		return px, py
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for _, p := range paths {
		color := p.Color
		if color == "" {
			color = "#00ff00"
		}

		if len(p.Verts) >= 6 {
			sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" stroke-opacity="0.6" d="M`, color))
			for i := 0; i+2 < len(p.Verts); i += 3 {
				x, y := toPx(p.Verts[i], p.Verts[i+1])
				if i == 0 {
					sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
				} else {
					sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
				}
			}
			sb.WriteString("\"/>\n")
		}

		cx, cy := toPx(p.Marker.X, p.Marker.Y)
		r := p.Radius / rangeX * float64(width)
		if r < 2 {
			r = 2
		}
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, r, color))
		if p.Name != "" {
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#aaaaaa" font-family="monospace" font-size="11">%s</text>
`, cx+r+4, cy+4, p.Name))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// WriteFile renders the paths and writes the document to path.
func WriteFile(path string, paths []Path, width, height int) error {
	svg := OrbitsToSVG(paths, width, height)
	if svg == "" {
		return fmt.Errorf("nothing to export")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}

func bounds(paths []Path) (minX, maxX, minY, maxY float64) {
	minX, maxX = paths[0].Marker.X, paths[0].Marker.X
	minY, maxY = paths[0].Marker.Y, paths[0].Marker.Y
	grow := func(x, y float64) {
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	for _, p := range paths {
		grow(p.Marker.X, p.Marker.Y)
		for i := 0; i+2 < len(p.Verts); i += 3 {
			grow(p.Verts[i], p.Verts[i+1])
		}
	}
	return
}
