package systems

import (
	"testing"

	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/levels"
	"github.com/automoto/overworld/physics"
	"github.com/automoto/overworld/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// pipeline is the tick order used by the overworld scene.
var pipeline = []ecs.System{
	UpdateClock,
	UpdateInput,
	UpdateCamera,
	UpdateMoveDirection,
	UpdateGroundSensing,
	UpdateCoyoteTime,
	UpdateSuspension,
	ProcessLandingEvents,
	UpdateJump,
	UpdateLongJump,
	UpdateDive,
	UpdateRegrab,
	UpdateJumpCutoff,
	UpdateMoveSpeed,
	DeterminePlayerState,
	ProcessStateTransitions,
	ProcessAnimationTransitions,
	BindAnimationRigs,
	PlayQueuedAnimations,
	UpdateAnimators,
	UpdateFloatingPlatforms,
	StepPhysics,
	HandleTransitions,
	HandleItemPickups,
	ProcessEnvironmentEvents,
	PublishPlayerData,
	UpdateCameraFollow,
}

type testWorld struct {
	ecs    *ecs.ECS
	space  *physics.Space
	player *donburi.Entry
	camera *donburi.Entry
}

// newTestWorld builds a 100x100 floor with its top at y=0 and a player standing
// at the origin.
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	config.Apply(config.Defaults())

	e := ecs.NewECS(donburi.NewWorld())
	SubscribeEvents(e.World)

	_, space := factory.CreateGlobals(e, config.Physics)
	factory.CreateTerrain(e, space, levels.Box{
		Center:      mgl64.Vec3{0, -0.5, 0},
		HalfExtents: mgl64.Vec3{50, 0.5, 50},
	})
	player := factory.CreatePlayer(e, space, mgl64.Vec3{})
	camera := factory.CreateCamera(e, mgl64.Vec3{})

	return &testWorld{ecs: e, space: space, player: player, camera: camera}
}

func (w *testWorld) tick(n int) {
	for i := 0; i < n; i++ {
		for _, s := range pipeline {
			s(w.ecs)
		}
	}
}

// settle lets the player land and come to rest.
func (w *testWorld) settle() {
	w.tick(120)
}

func (w *testWorld) controller() *components.ControllerData {
	return components.Controller.Get(w.player)
}

func (w *testWorld) locomotion() *components.LocomotionData {
	return components.Locomotion.Get(w.player)
}

func (w *testWorld) velocity() mgl64.Vec3 {
	v, _ := w.space.Velocity(w.player.Entity())
	return v
}

func (w *testWorld) position() mgl64.Vec3 {
	p, _ := w.space.Position(w.player.Entity())
	return p
}

func (w *testWorld) press(a config.ActionID, down bool) {
	w.controller().Current[a] = down
}
