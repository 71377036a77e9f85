package systems

import (
	"math"

	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var inputQuery = donburi.NewQuery(filter.Contains(components.Controller, components.InputBuffer))

// UpdateInput turns device edges into buffer presses and releases.
func UpdateInput(ecs *ecs.ECS) {
	dt := delta(ecs.World)
	inputQuery.Each(ecs.World, func(e *donburi.Entry) {
		controller := components.Controller.Get(e)
		buffer := components.InputBuffer.Get(e)

		buffer.Tick(dt)
		for a := cfg.ActionID(1); a < cfg.ActionCount; a++ {
			switch {
			case controller.JustPressed(a):
				buffer.Press(a)
			case controller.JustReleased(a):
				buffer.Release(a)
			}
		}
		buffer.SetAxis(applyDeadzone(controller.MoveX, controller.MoveZ, cfg.Input.AnalogDeadzone))
		controller.Latch()
	})
}

func applyDeadzone(x, z, deadzone float64) (float64, float64) {
	if math.Hypot(x, z) < deadzone {
		return 0, 0
	}
	return x, z
}
