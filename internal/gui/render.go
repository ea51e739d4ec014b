package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(8, 8, 12, 255))

	rl.BeginMode3D(a.camera)
	a.drawStars()
	a.drawGlow()
	for i := range a.views {
		a.drawBody(&a.views[i])
	}
	rl.EndMode3D()

	a.drawHUD()
	rl.EndDrawing()
}

func (a *App) drawStars() {
	for _, s := range a.stars {
		rl.DrawPoint3D(s, rl.NewColor(200, 200, 220, 160))
	}
}

// drawGlow marks the light position the loop keeps on the central body.
func (a *App) drawGlow() {
	p := a.light.Pos
	pos := rl.NewVector3(float32(p.X), float32(p.Y), float32(p.Z))
	rl.DrawSphereWires(pos, 0.6, 8, 8, rl.NewColor(255, 220, 120, 40))
}

func (a *App) drawBody(v *bodyView) {
	p := v.node.Pos
	pos := rl.NewVector3(float32(p.X), float32(p.Y), float32(p.Z))
	rl.DrawSphere(pos, v.radius, v.color)

	verts := v.line.Vertices()
	v.line.ClearDirty()
	if len(verts) < 6 {
		return
	}
	faded := rl.ColorAlpha(v.color, 0.5)
	// buffer order on purpose: the wrap segment is part of the look
	for i := 3; i+2 < len(verts); i += 3 {
		from := rl.NewVector3(float32(verts[i-3]), float32(verts[i-2]), float32(verts[i-1]))
		to := rl.NewVector3(float32(verts[i]), float32(verts[i+1]), float32(verts[i+2]))
		rl.DrawLine3D(from, to, faded)
	}
}

func (a *App) drawHUD() {
	y := int32(16)
	for _, name := range []string{"elapsed", "distance", "speed"} {
		if text, ok := a.readouts[name]; ok {
			rl.DrawText(fmt.Sprintf("%s  %s", name, text), 16, y, 20, rl.NewColor(180, 180, 180, 255))
			y += 26
		}
	}
	if a.paused {
		rl.DrawText("PAUSED", screenWidth-120, 16, 20, rl.NewColor(255, 180, 80, 255))
	}
	rl.DrawFPS(16, screenHeight-28)
}
