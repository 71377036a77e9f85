package systems

import (
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HandleTransitions moves a player that touches a transition zone to the
// zone's destination. Destinations are ground points; the body is placed at
// ride height above them.
func HandleTransitions(ecs *ecs.ECS) {
	eng, ok := engine(ecs.World)
	if !ok {
		return
	}
	for _, player := range players(ecs.World) {
		for _, other := range eng.Contacts(player.Entity()) {
			if !ecs.World.Valid(other) {
				continue
			}
			zone := ecs.World.Entry(other)
			if !zone.HasComponent(components.Transition) {
				continue
			}
			dest := components.Transition.Get(zone).Destination
			if player.HasComponent(components.Character) {
				dest = dest.Add(mgl64.Vec3{0, components.Character.Get(player).RideHeight, 0})
			}
			eng.SetPosition(player.Entity(), dest)
			if vel, ok := eng.Velocity(player.Entity()); ok {
				eng.SetVelocity(player.Entity(), mgl64.Vec3{vel.X(), 0, vel.Z()})
			}
			Teleports.Publish(ecs.World, components.TeleportEvent{Entity: player.Entity(), Destination: dest})
			log.WithFields(logrus.Fields{
				"entity":      player.Entity(),
				"destination": dest,
			}).Debug("transition")
			break
		}
	}
}

// HandleItemPickups publishes a pickup for every item a player touches and
// removes the item.
func HandleItemPickups(ecs *ecs.ECS) {
	eng, ok := engine(ecs.World)
	if !ok {
		return
	}
	for _, player := range players(ecs.World) {
		for _, other := range eng.Contacts(player.Entity()) {
			if !ecs.World.Valid(other) {
				continue
			}
			item := ecs.World.Entry(other)
			if !item.HasComponent(components.Item) {
				continue
			}
			data := *components.Item.Get(item)
			ItemPickups.Publish(ecs.World, components.ItemPickedUpEvent{Player: player.Entity(), Item: data})
			log.WithFields(logrus.Fields{
				"entity": player.Entity(),
				"item":   data.ID,
			}).Debug("item picked up")

			eng.Remove(other)
			item.Remove()
		}
	}
}

// ProcessEnvironmentEvents drains pickup and teleport queues so outside
// subscribers see them once per tick.
func ProcessEnvironmentEvents(ecs *ecs.ECS) {
	ItemPickups.ProcessEvents(ecs.World)
	Teleports.ProcessEvents(ecs.World)
}

func players(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Player.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}
