package components

import "github.com/go-gl/mathgl/mgl64"

func mgl64Vec(x, y, z float64) mgl64.Vec3 {
	return mgl64.Vec3{x, y, z}
}
