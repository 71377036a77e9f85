package systems

import (
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var groundQuery = donburi.NewQuery(filter.Contains(
	components.Character,
	components.Locomotion,
	components.GroundHits,
))

// UpdateGroundSensing casts each character's footprint straight down.
func UpdateGroundSensing(ecs *ecs.ECS) {
	eng, ok := engine(ecs.World)
	if !ok {
		return
	}
	groundQuery.Each(ecs.World, func(e *donburi.Entry) {
		hits := components.GroundHits.Get(e)
		hits.Hits = eng.CastDown(e.Entity(), config.Ground.MaxDistance, physics.Filter{
			Mask:           config.StandableMask,
			Exclude:        e.Entity(),
			IncludeSensors: config.Ground.IncludeSensors,
			IncludeDynamic: config.Ground.IncludeDynamic,
		})
	})
}

// SpringForce is the vertical suspension force for a character whose body
// centre is distance above the ground, moving at relVel relative to it.
func SpringForce(c *components.CharacterData, distance, relVel float64) float64 {
	offset := c.RideHeight - distance
	return offset*c.SpringStrength - relVel*c.SpringDamper
}

// UpdateSuspension holds grounded characters at ride height and maintains
// the Grounded flag.
func UpdateSuspension(ecs *ecs.ECS) {
	eng, ok := engine(ecs.World)
	if !ok {
		return
	}
	groundQuery.Each(ecs.World, func(e *donburi.Entry) {
		vel, ok := eng.Velocity(e.Entity())
		if !ok {
			return
		}
		character := components.Character.Get(e)
		locomotion := components.Locomotion.Get(e)
		hits := components.GroundHits.Get(e)

		if hits.Empty() {
			if locomotion.Grounded() && locomotion.LeaveGround(config.Coyote.Duration) {
				log.WithField("entity", e.Entity()).Debug("left ground, coyote time started")
			}
			return
		}

		hit := hits.Nearest()
		force := SpringForce(character, hit.TimeOfImpact, vel.Y()-hit.Velocity.Y())
		eng.ApplyForce(e.Entity(), physics.Up.Mul(force))

		if locomotion.Land() && vel.Y() <= 0 {
			LandingEvents.Publish(ecs.World, components.LandingEvent{
				Entity:      e.Entity(),
				ImpactSpeed: -vel.Y(),
			})
		}
	})
}
