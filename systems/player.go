package systems

import (
	"github.com/automoto/overworld/components"
	"github.com/yohamta/donburi/ecs"
)

// PublishPlayerData snapshots the first player into the read-only feed.
func PublishPlayerData(ecs *ecs.ECS) {
	eng, ok := engine(ecs.World)
	if !ok {
		return
	}
	feedEntry, ok := components.PlayerFeed.First(ecs.World)
	if !ok {
		return
	}
	ps := players(ecs.World)
	if len(ps) == 0 {
		return
	}
	e := ps[0]

	pos, ok := eng.Position(e.Entity())
	if !ok {
		return
	}
	vel, _ := eng.Velocity(e.Entity())

	snapshot := components.PlayerSnapshot{
		Entity:   e.Entity(),
		Position: pos,
		Velocity: vel,
	}
	if clockEntry, ok := components.Clock.First(ecs.World); ok {
		snapshot.Tick = components.Clock.Get(clockEntry).Tick
	}
	if e.HasComponent(components.GroundHits) {
		if hits := components.GroundHits.Get(e); !hits.Empty() {
			snapshot.DistanceFromFloor = hits.Nearest().TimeOfImpact
		}
	}
	if e.HasComponent(components.Locomotion) {
		snapshot.Grounded = components.Locomotion.Get(e).Grounded()
	}
	if e.HasComponent(components.Player) {
		snapshot.State = components.Player.Get(e).State
	}
	if e.HasComponent(components.MoveSpeed) {
		speed := components.MoveSpeed.Get(e)
		snapshot.SpeedState = speed.State
		snapshot.CurrentSpeed = speed.Current
		snapshot.BaseSpeed = speed.Base
		snapshot.MaxSpeed = speed.Max
	}

	components.PlayerFeed.Get(feedEntry).Publish(snapshot)
}
