package systems

import (
	"math"

	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera applies mode and rotation input from the player's buffer.
func UpdateCamera(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || !playerEntry.HasComponent(components.InputBuffer) {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	input := components.InputBuffer.Get(playerEntry)
	dt := delta(ecs.World)

	if input.JustPressed(config.ActionCamModeUp) {
		camera.Mode = camera.Mode.ShiftUp()
	}
	if input.JustPressed(config.ActionCamModeDown) {
		camera.Mode = camera.Mode.ShiftDown()
	}

	switch camera.Mode {
	case config.CameraFixed:
		// Each press is consumed so a buffered press rotates one step only.
		if input.JustPressed(config.ActionCamRotateLeft) {
			camera.Angle -= config.Camera.SnapStep
			input.Consume(config.ActionCamRotateLeft)
		}
		if input.JustPressed(config.ActionCamRotateRight) {
			camera.Angle += config.Camera.SnapStep
			input.Consume(config.ActionCamRotateRight)
		}
		camera.Angle = components.SnapAngle(camera.Angle, config.Camera.SnapStep)
	case config.CameraFree:
		if input.Pressed(config.ActionCamRotateLeft) {
			camera.Angle -= config.Camera.RotateSpeed * dt
		}
		if input.Pressed(config.ActionCamRotateRight) {
			camera.Angle += config.Camera.RotateSpeed * dt
		}
	}
	camera.Wrap()
}

// UpdateCameraFollow eases the camera towards its desired position behind the
// published player snapshot and turns it to face the player.
func UpdateCameraFollow(ecs *ecs.ECS) {
	feedEntry, ok := components.PlayerFeed.First(ecs.World)
	if !ok {
		return
	}
	snapshot := components.PlayerFeed.Get(feedEntry).Snapshot()
	if snapshot.Version == 0 {
		return
	}
	dt := delta(ecs.World)

	components.Camera.Each(ecs.World, func(e *donburi.Entry) {
		camera := components.Camera.Get(e)
		camera.Desired = camera.DesiredPosition(snapshot.Position)
		if camera.Mode != config.CameraFollow {
			t := math.Min(dt*camera.Easing, 1)
			camera.Position = camera.Position.Add(camera.Desired.Sub(camera.Position).Mul(t))
		}
		camera.LookAt(snapshot.Position)
	})
}
