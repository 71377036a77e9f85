package archetypes

import (
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

var (
	// Globals holds the per-world singletons.
	Globals = newArchetype(
		components.Clock,
		components.PhysicsWorld,
		components.AnimationMap,
		components.PlayerFeed,
	)
	Player = newArchetype(
		tags.Player,
		tags.Animated,
		components.Player,
		components.Character,
		components.Locomotion,
		components.MoveDirection,
		components.MoveSpeed,
		components.GroundHits,
		components.Controller,
		components.InputBuffer,
		components.Body,
		transform.Transform,
	)
	// AnimationRig hangs below its owner in the transform hierarchy.
	AnimationRig = newArchetype(
		components.Animator,
		components.AnimationSlot,
		transform.Transform,
	)
	Terrain = newArchetype(
		tags.Terrain,
		components.Body,
	)
	FloatingPlatform = newArchetype(
		tags.Terrain,
		tags.FloatingPlatform,
		components.Body,
		components.Platform,
	)
	Transition = newArchetype(
		tags.Transition,
		components.Transition,
		components.Body,
	)
	Item = newArchetype(
		tags.Item,
		components.Item,
		components.Body,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.World.Create(all...))
}
