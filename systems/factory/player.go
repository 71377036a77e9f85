package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

// CreatePlayer spawns the player character riding above the ground point
// spawn, with a dynamic body registered in space.
func CreatePlayer(ecs *ecs.ECS, space *physics.Space, spawn mgl64.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	cfg := config.Character
	space.Add(&physics.Body{
		Entity:       player.Entity(),
		Kind:         physics.Dynamic,
		Layer:        config.LayerCharacter,
		Mask:         config.StandableMask,
		Position:     spawn.Add(mgl64.Vec3{0, cfg.RideHeight, 0}),
		HalfExtents:  mgl64.Vec3{cfg.HalfWidth, cfg.HalfHeight, cfg.HalfWidth},
		GravityScale: cfg.BaseGravityScale,
		Mass:         cfg.Mass,
	})
	components.Body.SetValue(player, components.BodyData{Kind: physics.Dynamic})

	components.Character.SetValue(player, components.NewCharacter(cfg))
	components.MoveSpeed.SetValue(player, components.NewMoveSpeed(cfg.BaseSpeed, config.MoveSpeed))
	components.InputBuffer.SetValue(player, components.NewInputBuffer(config.Input.BufferWindow))
	components.Player.SetValue(player, components.PlayerData{State: config.Idle})

	return player
}

// CreateAnimationRig spawns an animation player as a child of owner. The rig
// is bound to its animated ancestor by BindAnimationRigs.
func CreateAnimationRig(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	rig := archetypes.AnimationRig.Spawn(ecs)

	components.Animator.SetValue(rig, components.AnimatorData{
		Player: animations.NewPlayer(animations.ClipsFromConfig(config.Animation)),
	})
	transform.AppendChild(owner, rig, false)

	return rig
}
