package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the main camera looking at target.
func CreateCamera(ecs *ecs.ECS, target mgl64.Vec3) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	data := components.NewCamera(config.Camera)
	data.Desired = data.DesiredPosition(target)
	data.Position = data.Desired
	data.LookAt(target)
	components.Camera.SetValue(camera, data)

	return camera
}
