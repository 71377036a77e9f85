package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/levels"
	"github.com/automoto/overworld/physics"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateTerrain(ecs *ecs.ECS, space *physics.Space, box levels.Box) *donburi.Entry {
	terrain := archetypes.Terrain.Spawn(ecs)

	space.Add(&physics.Body{
		Entity:      terrain.Entity(),
		Kind:        physics.Static,
		Layer:       config.LayerTerrain,
		Mask:        config.LayerAll,
		Position:    box.Center,
		HalfExtents: box.HalfExtents,
	})
	components.Body.SetValue(terrain, components.BodyData{Kind: physics.Static})

	return terrain
}

// CreateFloatingPlatform spawns a kinematic platform that travels up and back
// down forever.
func CreateFloatingPlatform(ecs *ecs.ECS, space *physics.Space, p levels.Platform) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)

	space.Add(&physics.Body{
		Entity:      platform.Entity(),
		Kind:        physics.Kinematic,
		Layer:       config.LayerObject,
		Mask:        config.LayerAll,
		Position:    p.Center,
		HalfExtents: p.HalfExtents,
	})
	components.Body.SetValue(platform, components.BodyData{Kind: physics.Kinematic})

	var motion *gween.Sequence
	if p.Travel != 0 && p.Period > 0 {
		motion = gween.NewSequence(
			gween.New(0, float32(p.Travel), float32(p.Period), ease.InOutSine),
			gween.New(float32(p.Travel), 0, float32(p.Period), ease.InOutSine),
		)
		motion.SetLoop(-1)
	}
	components.Platform.SetValue(platform, components.PlatformData{
		Motion: motion,
		BaseY:  p.Center.Y(),
	})

	return platform
}
