package main

import (
	"image/color"
	"sort"

	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	terrainColor    = color.RGBA{R: 70, G: 90, B: 70, A: 255}
	platformColor   = config.Orange
	transitionColor = config.Magenta
	itemColor       = config.Yellow
	characterColor  = config.Green
)

// drawTopDown draws every body seen from above, centred on focus. Higher
// bodies are drawn last.
func drawTopDown(screen *ebiten.Image, space *physics.Space, focus mgl64.Vec3, camera *components.CameraData) {
	var bodies []*physics.Body
	space.Each(func(b *physics.Body) {
		bodies = append(bodies, b)
	})
	sort.SliceStable(bodies, func(i, j int) bool {
		return bodies[i].Top() < bodies[j].Top()
	})

	ppu := config.UI.PixelsPerUnit
	w, h := float64(config.C.Width), float64(config.C.Height)
	toScreen := func(p mgl64.Vec3) (float32, float32) {
		return float32((p.X()-focus.X())*ppu + w/2), float32((p.Z()-focus.Z())*ppu + h/2)
	}

	for _, b := range bodies {
		x, y := toScreen(b.Position.Sub(b.HalfExtents))
		bw := float32(b.HalfExtents.X() * 2 * ppu)
		bh := float32(b.HalfExtents.Z() * 2 * ppu)
		clr := bodyColor(b)
		if b.Sensor {
			vector.StrokeRect(screen, x, y, bw, bh, 2, clr, false)
			continue
		}
		vector.DrawFilledRect(screen, x, y, bw, bh, clr, false)
	}

	if camera != nil {
		forward, _ := camera.Basis()
		cx, cy := toScreen(focus)
		tx, ty := toScreen(focus.Add(forward.Mul(2)))
		vector.StrokeLine(screen, cx, cy, tx, ty, 2, config.LightBlue, true)
	}
}

func bodyColor(b *physics.Body) color.Color {
	switch {
	case b.Layer.Has(config.LayerCharacter):
		return characterColor
	case b.Layer.Has(config.LayerItem):
		return itemColor
	case b.Layer.Has(config.LayerAreaTransition):
		return transitionColor
	case b.Kind == physics.Kinematic:
		return platformColor
	}
	// Lighter the higher the top face
	shade := terrainColor
	lift := uint8(max(0, min(b.Top()*25, 120)))
	shade.R += lift
	shade.G += lift
	shade.B += lift
	return shade
}
