package scenes

import (
	"sync"

	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/levels"
	"github.com/automoto/overworld/physics"
	"github.com/automoto/overworld/systems"
	"github.com/automoto/overworld/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Overworld runs the character controller headless. Front ends write the
// controller snapshot, call Update once per fixed step and read back the
// published player snapshot.
type Overworld struct {
	ecs    *ecs.ECS
	level  *levels.Level
	logger *logrus.Logger
	once   sync.Once

	space  *physics.Space
	player *donburi.Entry
	camera *donburi.Entry

	score     int
	pickups   []components.ItemPickedUpEvent
	teleports int
}

// NewOverworld creates a scene for level. A nil logger keeps the systems'
// default logger.
func NewOverworld(level *levels.Level, logger *logrus.Logger) *Overworld {
	return &Overworld{level: level, logger: logger}
}

// Update advances the simulation by one fixed step.
func (o *Overworld) Update() {
	o.once.Do(o.configure)
	o.ecs.Update()
}

func (o *Overworld) configure() {
	systems.SetLogger(o.logger)

	ecs := ecs.NewECS(donburi.NewWorld())
	systems.SubscribeEvents(ecs.World)
	systems.ItemPickups.Subscribe(ecs.World, o.onItemPickedUp)
	systems.Teleports.Subscribe(ecs.World, o.onTeleport)

	// Input and camera basis for this tick
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateMoveDirection)

	// Ground and locomotion. Only these systems change the locomotion flags.
	ecs.AddSystem(systems.UpdateGroundSensing)
	ecs.AddSystem(systems.UpdateCoyoteTime)
	ecs.AddSystem(systems.UpdateSuspension)
	// Landing cleanup runs before jumps so a buffered press survives touchdown.
	ecs.AddSystem(systems.ProcessLandingEvents)
	ecs.AddSystem(systems.UpdateJump)
	ecs.AddSystem(systems.UpdateLongJump)
	ecs.AddSystem(systems.UpdateDive)
	ecs.AddSystem(systems.UpdateRegrab)
	ecs.AddSystem(systems.UpdateJumpCutoff)
	ecs.AddSystem(systems.UpdateMoveSpeed)

	// State and animation
	ecs.AddSystem(systems.DeterminePlayerState)
	ecs.AddSystem(systems.ProcessStateTransitions)
	ecs.AddSystem(systems.ProcessAnimationTransitions)
	ecs.AddSystem(systems.BindAnimationRigs)
	ecs.AddSystem(systems.PlayQueuedAnimations)
	ecs.AddSystem(systems.UpdateAnimators)

	// Physics and environment
	ecs.AddSystem(systems.UpdateFloatingPlatforms)
	ecs.AddSystem(systems.StepPhysics)
	ecs.AddSystem(systems.HandleTransitions)
	ecs.AddSystem(systems.HandleItemPickups)
	ecs.AddSystem(systems.ProcessEnvironmentEvents)

	// Readers of the published snapshot run last
	ecs.AddSystem(systems.PublishPlayerData)
	ecs.AddSystem(systems.UpdateCameraFollow)

	o.ecs = ecs

	_, space := factory.CreateGlobals(o.ecs, config.Physics)
	o.space = space

	factory.LoadLevel(o.ecs, space, o.level)
	o.player = factory.CreatePlayer(o.ecs, space, o.level.Spawn)
	factory.CreateAnimationRig(o.ecs, o.player)
	o.camera = factory.CreateCamera(o.ecs, o.level.Spawn)

	if o.logger != nil {
		o.logger.WithFields(logrus.Fields{
			"level":     o.level.Name,
			"terrain":   len(o.level.Terrain),
			"platforms": len(o.level.Platforms),
			"items":     len(o.level.Items),
		}).Info("overworld ready")
	}
}

func (o *Overworld) onItemPickedUp(w donburi.World, event components.ItemPickedUpEvent) {
	o.score += event.Item.Value
	o.pickups = append(o.pickups, event)
}

func (o *Overworld) onTeleport(w donburi.World, event components.TeleportEvent) {
	o.teleports++
}

// World exposes the entity store, mostly for tests and debug views.
func (o *Overworld) World() donburi.World {
	o.once.Do(o.configure)
	return o.ecs.World
}

// Space returns the reference physics engine backing the scene.
func (o *Overworld) Space() *physics.Space {
	o.once.Do(o.configure)
	return o.space
}

func (o *Overworld) Level() *levels.Level { return o.level }

func (o *Overworld) Player() *donburi.Entry {
	o.once.Do(o.configure)
	return o.player
}

// Controller returns the device snapshot the front end writes into.
func (o *Overworld) Controller() *components.ControllerData {
	return components.Controller.Get(o.Player())
}

func (o *Overworld) Camera() *components.CameraData {
	o.once.Do(o.configure)
	return components.Camera.Get(o.camera)
}

// Snapshot returns the player data published at the end of the last tick.
func (o *Overworld) Snapshot() components.PlayerSnapshot {
	o.once.Do(o.configure)
	e, ok := components.PlayerFeed.First(o.ecs.World)
	if !ok {
		return components.PlayerSnapshot{}
	}
	return components.PlayerFeed.Get(e).Snapshot()
}

func (o *Overworld) Score() int { return o.score }

func (o *Overworld) Pickups() []components.ItemPickedUpEvent { return o.pickups }

func (o *Overworld) Teleports() int { return o.teleports }

// Respawn puts the player back above the level spawn at rest.
func (o *Overworld) Respawn() {
	player := o.Player()
	ride := components.Character.Get(player).RideHeight
	o.space.SetPosition(player.Entity(), o.level.Spawn.Add(mgl64.Vec3{0, ride, 0}))
	o.space.SetVelocity(player.Entity(), mgl64.Vec3{})
}

// ApplyTuning installs t and refreshes the spawned player's copy of it. The
// locomotion flags, the ramp state and the collider size are kept.
func (o *Overworld) ApplyTuning(t config.Tuning) {
	config.Apply(t)
	o.once.Do(o.configure)

	player := o.player
	components.Character.SetValue(player, components.NewCharacter(t.Character))

	speed := components.MoveSpeed.Get(player)
	fresh := components.NewMoveSpeed(t.Character.BaseSpeed, t.MoveSpeed)
	fresh.State = speed.State
	fresh.Current = speed.Current
	fresh.Startup.Elapsed = speed.Startup.Elapsed
	fresh.Decelerate.Elapsed = speed.Decelerate.Elapsed
	components.MoveSpeed.SetValue(player, fresh)

	components.InputBuffer.Get(player).Window = t.Input.BufferWindow

	if e, ok := components.Clock.First(o.ecs.World); ok {
		components.Clock.Get(e).Delta = t.Physics.FixedStep
	}
	// A regrab owns the gravity scale until it ends.
	if !components.Locomotion.Get(player).Regrab() {
		o.space.SetGravityScale(player.Entity(), t.Character.BaseGravityScale)
	}
	if body, ok := o.space.Body(player.Entity()); ok {
		body.Mass = t.Character.Mass
	}
	if o.logger != nil {
		o.logger.Info("tuning applied")
	}
}
