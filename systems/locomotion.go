package systems

import (
	"math"

	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var jumperQuery = donburi.NewQuery(filter.Contains(
	components.Character,
	components.Locomotion,
	components.GroundHits,
	components.InputBuffer,
))

func UpdateCoyoteTime(ecs *ecs.ECS) {
	dt := delta(ecs.World)
	components.Locomotion.Each(ecs.World, func(e *donburi.Entry) {
		if components.Locomotion.Get(e).TickCoyote(dt) {
			log.WithField("entity", e.Entity()).Debug("coyote time expired")
		}
	})
}

// UpdateJump starts a jump from the ground or inside the coyote window.
// Crouch-jumps while moving are left to UpdateLongJump.
func UpdateJump(ecs *ecs.ECS) {
	eng, ok := engine(ecs.World)
	if !ok {
		return
	}
	jumperQuery.Each(ecs.World, func(e *donburi.Entry) {
		locomotion := components.Locomotion.Get(e)
		input := components.InputBuffer.Get(e)
		if !locomotion.CanJump() || !input.JustPressed(config.ActionJump) || wantsLongJump(e, input) {
			return
		}
		character := components.Character.Get(e)
		vel, ok := eng.Velocity(e.Entity())
		if !ok {
			return
		}

		if locomotion.Regrab() {
			eng.SetGravityScale(e.Entity(), character.BaseGravityScale)
		}
		coyote := locomotion.CoyoteTime()
		locomotion.StartJump()
		input.Consume(config.ActionJump)
		// The suspension force from this tick belongs to the landing, not the jump.
		eng.ClearForce(e.Entity())
		eng.SetVelocity(e.Entity(), mgl64.Vec3{vel.X(), character.JumpStrength, vel.Z()})

		log.WithFields(logrus.Fields{
			"entity": e.Entity(),
			"coyote": coyote,
		}).Debug("jump")
	})
}

func wantsLongJump(e *donburi.Entry, input *components.InputBufferData) bool {
	if !input.Pressed(config.ActionCrouch) || !e.HasComponent(components.MoveSpeed) {
		return false
	}
	if !components.Locomotion.Get(e).Grounded() {
		return false
	}
	return components.MoveSpeed.Get(e).Moving()
}

// UpdateLongJump starts a long jump: jump pressed while crouching and moving
// on the ground.
func UpdateLongJump(ecs *ecs.ECS) {
	eng, ok := engine(ecs.World)
	if !ok {
		return
	}
	for _, e := range collect(ecs.World, jumperQuery) {
		locomotion := components.Locomotion.Get(e)
		input := components.InputBuffer.Get(e)
		if !input.JustPressed(config.ActionJump) || !wantsLongJump(e, input) {
			continue
		}
		character := components.Character.Get(e)
		vel, ok := eng.Velocity(e.Entity())
		if !ok {
			continue
		}

		locomotion.StartJump()
		input.Consume(config.ActionJump)
		eng.ClearForce(e.Entity())
		eng.SetVelocity(e.Entity(), mgl64.Vec3{vel.X(), character.LongJumpStrength, vel.Z()})
		if !e.HasComponent(tags.LongJump) {
			e.AddComponent(tags.LongJump)
		}
		log.WithField("entity", e.Entity()).Debug("long jump")
	}
}

// UpdateDive starts a dive when crouch is pressed in the air.
func UpdateDive(ecs *ecs.ECS) {
	eng, ok := engine(ecs.World)
	if !ok {
		return
	}
	for _, e := range collect(ecs.World, jumperQuery) {
		hits := components.GroundHits.Get(e)
		input := components.InputBuffer.Get(e)
		if !hits.Empty() || e.HasComponent(tags.Diving) || e.HasComponent(tags.LongJump) {
			continue
		}
		if !input.JustPressed(config.ActionCrouch) {
			continue
		}
		character := components.Character.Get(e)
		vel, ok := eng.Velocity(e.Entity())
		if !ok {
			continue
		}

		input.Consume(config.ActionCrouch)
		eng.SetVelocity(e.Entity(), mgl64.Vec3{vel.X(), math.Max(vel.Y(), character.DiveLift), vel.Z()})
		e.AddComponent(tags.Diving)
		log.WithField("entity", e.Entity()).Debug("dive")
	}
}

// UpdateRegrab lowers gravity while jump is pressed again in the air, and
// restores it on touchdown or release.
func UpdateRegrab(ecs *ecs.ECS) {
	eng, ok := engine(ecs.World)
	if !ok {
		return
	}
	jumperQuery.Each(ecs.World, func(e *donburi.Entry) {
		locomotion := components.Locomotion.Get(e)
		hits := components.GroundHits.Get(e)
		input := components.InputBuffer.Get(e)
		character := components.Character.Get(e)

		if locomotion.Regrab() && (!hits.Empty() || input.Released(config.ActionJump)) {
			locomotion.ExitRegrab()
			eng.SetGravityScale(e.Entity(), character.BaseGravityScale)
		}

		if input.JustPressed(config.ActionJump) && hits.Empty() && locomotion.EnterRegrab() {
			eng.SetGravityScale(e.Entity(), character.RegrabGravityScale)
			log.WithField("entity", e.Entity()).Debug("regrab")
		}
	})
}

// UpdateJumpCutoff ends a jump at its apex or as soon as jump is released.
func UpdateJumpCutoff(ecs *ecs.ECS) {
	eng, ok := engine(ecs.World)
	if !ok {
		return
	}
	jumperQuery.Each(ecs.World, func(e *donburi.Entry) {
		locomotion := components.Locomotion.Get(e)
		if !locomotion.Jumping() {
			return
		}
		input := components.InputBuffer.Get(e)
		vel, ok := eng.Velocity(e.Entity())
		if !ok {
			return
		}
		if input.Released(config.ActionJump) || vel.Y() <= 0 {
			locomotion.EndJump()
			eng.SetVelocity(e.Entity(), mgl64.Vec3{vel.X(), 0, vel.Z()})
		}
	})
}

func ProcessLandingEvents(ecs *ecs.ECS) {
	LandingEvents.ProcessEvents(ecs.World)
}

// OnLanding clears the airborne markers and makes the next state resolution
// announce itself again so the ground animation restarts.
func OnLanding(w donburi.World, event components.LandingEvent) {
	if !w.Valid(event.Entity) {
		return
	}
	e := w.Entry(event.Entity)
	if e.HasComponent(components.Locomotion) {
		components.Locomotion.Get(e).EndJump()
	}
	if e.HasComponent(tags.LongJump) {
		e.RemoveComponent(tags.LongJump)
	}
	if e.HasComponent(tags.Diving) {
		e.RemoveComponent(tags.Diving)
	}
	if e.HasComponent(components.Player) {
		components.Player.Get(e).State = config.StateNone
	}
	log.WithFields(logrus.Fields{
		"entity": event.Entity,
		"impact": event.ImpactSpeed,
	}).Debug("landed")
}
