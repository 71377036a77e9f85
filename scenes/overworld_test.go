package scenes

import (
	"math"
	"testing"

	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/levels"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func newOverworld(t *testing.T) *Overworld {
	t.Helper()
	config.Apply(config.Defaults())
	t.Cleanup(func() { config.Apply(config.Defaults()) })

	level, err := levels.Load("overworld")
	if err != nil {
		t.Fatalf("failed to load level: %v", err)
	}
	return NewOverworld(level, nil)
}

func step(o *Overworld, n int) {
	for i := 0; i < n; i++ {
		o.Update()
	}
}

func TestOverworldSettlesAtSpawn(t *testing.T) {
	o := newOverworld(t)
	step(o, 120)

	s := o.Snapshot()
	if s.Version != 120 {
		t.Errorf("expected version 120, got %d", s.Version)
	}
	if s.Tick != 120 {
		t.Errorf("expected tick 120, got %d", s.Tick)
	}
	if !s.Grounded {
		t.Fatal("expected player grounded")
	}
	if s.State != config.Idle {
		t.Errorf("expected %v, got %v", config.Idle, s.State)
	}
	if math.Abs(s.DistanceFromFloor-config.Character.RideHeight) > 0.05 {
		t.Errorf("expected distance near ride height, got %v", s.DistanceFromFloor)
	}
	spawn := o.Level().Spawn
	if s.Position.X() != spawn.X() || s.Position.Z() != spawn.Z() {
		t.Errorf("expected player above %v, got %v", spawn, s.Position)
	}
}

func TestOverworldBindsAnimationRig(t *testing.T) {
	o := newOverworld(t)
	step(o, 1)

	e, ok := components.AnimationMap.First(o.World())
	if !ok {
		t.Fatal("expected animation map")
	}
	if n := components.AnimationMap.Get(e).Len(); n != 1 {
		t.Errorf("expected 1 bound rig, got %d", n)
	}
}

func TestOverworldJump(t *testing.T) {
	o := newOverworld(t)
	step(o, 120)
	start := o.Snapshot().Position

	o.Controller().Current[config.ActionJump] = true
	step(o, 10)

	s := o.Snapshot()
	if s.Position.Y() <= start.Y()+0.5 {
		t.Errorf("expected player to rise, from %v to %v", start.Y(), s.Position.Y())
	}
	if s.State != config.Rising {
		t.Errorf("expected %v, got %v", config.Rising, s.State)
	}
	if s.Grounded {
		t.Error("expected player airborne")
	}

	o.Controller().Current[config.ActionJump] = false
	step(o, 120)
	if s := o.Snapshot(); !s.Grounded || s.State != config.Idle {
		t.Errorf("expected grounded idle after landing, got grounded=%v state=%v", s.Grounded, s.State)
	}
}

func TestOverworldRunsAndStops(t *testing.T) {
	o := newOverworld(t)
	step(o, 60)

	o.Controller().MoveZ = 1
	step(o, 30)
	s := o.Snapshot()
	if s.State != config.Running {
		t.Errorf("expected %v, got %v", config.Running, s.State)
	}
	if s.CurrentSpeed <= s.BaseSpeed {
		t.Errorf("expected speed above base %v, got %v", s.BaseSpeed, s.CurrentSpeed)
	}

	o.Controller().MoveZ = 0
	step(o, 180)
	s = o.Snapshot()
	if s.State != config.Idle {
		t.Errorf("expected %v, got %v", config.Idle, s.State)
	}
	if s.SpeedState != components.SpeedPaused {
		t.Errorf("expected %v, got %v", components.SpeedPaused, s.SpeedState)
	}
	if h := math.Hypot(s.Velocity.X(), s.Velocity.Z()); h != 0 {
		t.Errorf("expected no horizontal velocity, got %v", h)
	}
}

func TestOverworldPicksUpItem(t *testing.T) {
	o := newOverworld(t)
	step(o, 60)

	var target levels.Item
	for _, it := range o.Level().Items {
		if it.Kind == "milkshake" {
			target = it
			break
		}
	}
	pos := o.Snapshot().Position
	o.Space().SetPosition(o.Player().Entity(), mgl64.Vec3{target.Center.X(), pos.Y(), target.Center.Z()})
	step(o, 1)

	if got := len(o.Pickups()); got != 1 {
		t.Fatalf("expected 1 pickup, got %d", got)
	}
	if o.Score() != target.Value {
		t.Errorf("expected score %d, got %d", target.Value, o.Score())
	}
}

func TestOverworldTransition(t *testing.T) {
	o := newOverworld(t)
	step(o, 60)

	gate := o.Level().Transitions[0]
	pos := o.Snapshot().Position
	o.Space().SetPosition(o.Player().Entity(), mgl64.Vec3{gate.Center.X(), pos.Y(), gate.Center.Z()})
	step(o, 1)

	if o.Teleports() != 1 {
		t.Fatalf("expected 1 teleport, got %d", o.Teleports())
	}
	s := o.Snapshot()
	if s.Position.X() != gate.Destination.X() || s.Position.Z() != gate.Destination.Z() {
		t.Errorf("expected player at %v, got %v", gate.Destination, s.Position)
	}
}

func TestOverworldRespawn(t *testing.T) {
	o := newOverworld(t)
	step(o, 60)

	o.Space().SetPosition(o.Player().Entity(), mgl64.Vec3{5, 20, 5})
	o.Respawn()
	step(o, 60)

	s := o.Snapshot()
	spawn := o.Level().Spawn
	if s.Position.X() != spawn.X() || s.Position.Z() != spawn.Z() || !s.Grounded {
		t.Errorf("expected grounded at spawn, got %v grounded=%v", s.Position, s.Grounded)
	}
}

func TestOverworldApplyTuning(t *testing.T) {
	o := newOverworld(t)
	step(o, 60)

	tuning := config.Defaults()
	tuning.Character.JumpStrength = 12
	tuning.MoveSpeed.MaxMultiplier = 3
	tuning.Input.BufferWindow = 0.25
	o.ApplyTuning(tuning)

	player := o.Player()
	if got := components.Character.Get(player).JumpStrength; got != 12 {
		t.Errorf("expected jump strength 12, got %v", got)
	}
	speed := components.MoveSpeed.Get(player)
	if want := tuning.Character.BaseSpeed * 3; speed.Max != want {
		t.Errorf("expected max speed %v, got %v", want, speed.Max)
	}
	if got := components.InputBuffer.Get(player).Window; got != 0.25 {
		t.Errorf("expected buffer window 0.25, got %v", got)
	}
	if config.Character.JumpStrength != 12 {
		t.Error("expected tuning installed globally")
	}
}

func TestOverworldLogsLifecycle(t *testing.T) {
	config.Apply(config.Defaults())
	t.Cleanup(func() { config.Apply(config.Defaults()) })

	level, err := levels.Load("overworld")
	if err != nil {
		t.Fatalf("failed to load level: %v", err)
	}
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	o := NewOverworld(level, logger)
	step(o, 1)
	o.ApplyTuning(config.Defaults())

	var messages []string
	for _, e := range hook.AllEntries() {
		messages = append(messages, e.Message)
	}
	for _, want := range []string{"overworld ready", "tuning applied"} {
		found := false
		for _, m := range messages {
			if m == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected log %q, got %v", want, messages)
		}
	}
}
