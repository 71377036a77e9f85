package systems

import (
	"github.com/automoto/overworld/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateClock(ecs *ecs.ECS) {
	components.Clock.Each(ecs.World, func(e *donburi.Entry) {
		clock := components.Clock.Get(e)
		clock.Tick++
		clock.Elapsed += clock.Delta
	})
}
