package systems

import (
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// StateFacts are the inputs of the player state decision.
type StateFacts struct {
	LongJump bool
	Diving   bool
	Airborne bool // no ground hits this tick
	Jumping  bool
	Moving   bool // move direction is non-zero
}

// ResolvePlayerState maps facts to exactly one state. Earlier rules win.
func ResolvePlayerState(f StateFacts) config.PlayerState {
	switch {
	case f.LongJump:
		return config.LongJumping
	case f.Diving:
		return config.Diving
	case f.Airborne && f.Jumping:
		return config.Rising
	case f.Airborne:
		// Falling without a jump shares the dive pose.
		return config.Diving
	case f.Jumping:
		return config.Rising
	case f.Moving:
		return config.Running
	}
	return config.Idle
}

var playerStateQuery = donburi.NewQuery(filter.Contains(
	tags.Player,
	components.Player,
	components.Locomotion,
	components.GroundHits,
	components.MoveDirection,
))

func factsFor(e *donburi.Entry) StateFacts {
	locomotion := components.Locomotion.Get(e)
	return StateFacts{
		LongJump: e.HasComponent(tags.LongJump),
		Diving:   e.HasComponent(tags.Diving),
		Airborne: components.GroundHits.Get(e).Empty(),
		Jumping:  locomotion.Jumping(),
		Moving:   components.MoveDirection.Get(e).IsAny(),
	}
}

// DeterminePlayerState publishes a transition whenever the resolved state
// differs from the recorded one.
func DeterminePlayerState(ecs *ecs.ECS) {
	playerStateQuery.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		state := ResolvePlayerState(factsFor(e))
		if state == player.State {
			return
		}
		PlayerStateTransitions.Publish(ecs.World, components.PlayerStateTransitionEvent{
			Entity: e.Entity(),
			State:  state,
		})
	})
}

func ProcessStateTransitions(ecs *ecs.ECS) {
	PlayerStateTransitions.ProcessEvents(ecs.World)
}
