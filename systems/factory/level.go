package factory

import (
	"github.com/automoto/overworld/levels"
	"github.com/automoto/overworld/physics"
	"github.com/yohamta/donburi/ecs"
)

// LoadLevel spawns the static and moving parts of level into space. The
// player and camera are spawned separately.
func LoadLevel(ecs *ecs.ECS, space *physics.Space, level *levels.Level) {
	for _, box := range level.Terrain {
		CreateTerrain(ecs, space, box)
	}
	for _, p := range level.Platforms {
		CreateFloatingPlatform(ecs, space, p)
	}
	for _, t := range level.Transitions {
		CreateTransition(ecs, space, t)
	}
	for _, it := range level.Items {
		CreateItem(ecs, space, it)
	}
}
