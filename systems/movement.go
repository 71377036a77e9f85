package systems

import (
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var movementQuery = donburi.NewQuery(filter.Contains(
	components.MoveDirection,
	components.MoveSpeed,
	components.InputBuffer,
	components.Locomotion,
))

// UpdateMoveDirection resolves stick input into a camera-relative direction.
// The direction is only re-read on the ground; in the air the character keeps
// the direction it left with.
func UpdateMoveDirection(ecs *ecs.ECS) {
	camera := defaultCamera()
	if e, ok := components.Camera.First(ecs.World); ok {
		camera = components.Camera.Get(e)
	}

	movementQuery.Each(ecs.World, func(e *donburi.Entry) {
		locomotion := components.Locomotion.Get(e)
		if !locomotion.Grounded() {
			return
		}
		dir := components.MoveDirection.Get(e)
		speed := components.MoveSpeed.Get(e)
		input := components.InputBuffer.Get(e)

		dir.Set(camera.TranslateDirection(input.Axis()))
		switch {
		case dir.StartedMoving():
			speed.StartMoving()
		case dir.StoppedMoving():
			speed.StopMoving()
		}
	})
}

// UpdateMoveSpeed ticks the speed ramp and writes horizontal velocity.
func UpdateMoveSpeed(ecs *ecs.ECS) {
	eng, ok := engine(ecs.World)
	if !ok {
		return
	}
	dt := delta(ecs.World)

	movementQuery.Each(ecs.World, func(e *donburi.Entry) {
		speed := components.MoveSpeed.Get(e)
		dir := components.MoveDirection.Get(e)
		speed.Tick(dt)

		vel, ok := eng.Velocity(e.Entity())
		if !ok {
			return
		}

		horizontal := 0.0
		if speed.Moving() {
			horizontal = speed.Current
		}
		if e.HasComponent(components.Character) {
			character := components.Character.Get(e)
			switch {
			case e.HasComponent(tags.LongJump):
				horizontal += character.LongJumpBoost
			case e.HasComponent(tags.Diving):
				horizontal += character.DiveImpulse
			}
		}

		planar := dir.Heading.Mul(horizontal)
		eng.SetVelocity(e.Entity(), mgl64.Vec3{planar.X(), vel.Y(), planar.Z()})
	})
}

func defaultCamera() *components.CameraData {
	return &components.CameraData{Forward: mgl64.Vec3{0, 0, -1}}
}
