package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGlobals spawns the clock, the physics world, the animation map and
// the player feed. The returned space is the engine installed in the world.
func CreateGlobals(ecs *ecs.ECS, cfg config.PhysicsConfig) (*donburi.Entry, *physics.Space) {
	globals := archetypes.Globals.Spawn(ecs)

	space := physics.NewSpace(cfg)
	components.Clock.SetValue(globals, components.ClockData{Delta: cfg.FixedStep})
	components.PhysicsWorld.SetValue(globals, components.PhysicsWorldData{Engine: space})
	components.AnimationMap.SetValue(globals, components.NewAnimationMap())
	components.PlayerFeed.SetValue(globals, components.PlayerFeedData{})

	return globals, space
}
