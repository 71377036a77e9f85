package systems

import (
	"github.com/automoto/overworld/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFloatingPlatforms advances each platform's tween and hands the
// engine the velocity that reaches the tweened height this tick.
func UpdateFloatingPlatforms(ecs *ecs.ECS) {
	eng, ok := engine(ecs.World)
	if !ok {
		return
	}
	dt := delta(ecs.World)
	if dt <= 0 {
		return
	}
	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		platform := components.Platform.Get(e)
		if platform.Motion == nil {
			return
		}
		offset, _, _ := platform.Motion.Update(float32(dt))
		pos, ok := eng.Position(e.Entity())
		if !ok {
			return
		}
		target := platform.BaseY + float64(offset)
		eng.SetVelocity(e.Entity(), mgl64.Vec3{0, (target - pos.Y()) / dt, 0})
	})
}

func StepPhysics(ecs *ecs.ECS) {
	eng, ok := engine(ecs.World)
	if !ok {
		return
	}
	eng.Step(delta(ecs.World))
}
