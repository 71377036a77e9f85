package systems

import (
	"testing"

	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/systems/factory"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi/features/transform"
)

func animationMap(w *testWorld) *components.AnimationMapData {
	e, _ := components.AnimationMap.First(w.ecs.World)
	return components.AnimationMap.Get(e)
}

func TestBindAnimationRigReplaysRecordedState(t *testing.T) {
	w := newTestWorld(t)
	rig := factory.CreateAnimationRig(w.ecs, w.player)

	w.tick(1)

	if w.player.HasComponent(tags.Animated) {
		t.Error("expected Animated tag removed after binding")
	}
	bound, ok := animationMap(w).Rig(w.player.Entity())
	if !ok || bound != rig.Entity() {
		t.Fatalf("expected rig %v bound, got %v (%v)", rig.Entity(), bound, ok)
	}

	player := components.Animator.Get(rig).Player
	if got := player.Current(); got != animations.ClipIdle {
		t.Errorf("expected %q, got %q", animations.ClipIdle, got)
	}
	if got := player.Repeat(); got != animations.RepeatForever {
		t.Errorf("expected looping idle, got %v", got)
	}
}

func TestBindAnimationRigThroughIntermediateNode(t *testing.T) {
	w := newTestWorld(t)
	mid := w.ecs.World.Entry(w.ecs.World.Create(transform.Transform))
	transform.AppendChild(w.player, mid, false)
	rig := factory.CreateAnimationRig(w.ecs, mid)

	w.tick(1)

	bound, ok := animationMap(w).Rig(w.player.Entity())
	if !ok || bound != rig.Entity() {
		t.Fatalf("expected rig %v bound to the player, got %v (%v)", rig.Entity(), bound, ok)
	}
}

func TestFollowUpClipStartsWhenLeadFinishes(t *testing.T) {
	w := newTestWorld(t)
	rig := factory.CreateAnimationRig(w.ecs, w.player)
	w.settle()

	w.press(config.ActionJump, true)
	w.tick(1)

	player := components.Animator.Get(rig).Player
	slot := components.AnimationSlot.Get(rig)
	if got := player.Current(); got != animations.ClipJump {
		t.Fatalf("expected %q, got %q", animations.ClipJump, got)
	}
	if player.Repeat() != animations.RepeatNever {
		t.Error("expected the lead clip to play once")
	}
	if slot.Phase != components.SlotPendingFollowUp {
		t.Errorf("expected pending follow-up, got %v", slot.Phase)
	}

	w.tick(20)

	if got := player.Current(); got != animations.ClipRising {
		t.Fatalf("expected %q, got %q", animations.ClipRising, got)
	}
	if player.Repeat() != animations.RepeatForever {
		t.Error("expected the follow-up to loop")
	}
	if slot.Phase != components.SlotPlaying {
		t.Errorf("expected playing, got %v", slot.Phase)
	}
}

func TestAnimationRequestWithoutRigIsDropped(t *testing.T) {
	w := newTestWorld(t)
	w.settle()

	req, ok := AnimationFor(w.player.Entity(), config.Running)
	if !ok {
		t.Fatal("expected a clip for Running")
	}
	HandleAnimationTransition(w.ecs.World, req)

	if n := animationMap(w).Len(); n != 0 {
		t.Errorf("expected no bindings, got %d", n)
	}
}

func TestAnimationFor(t *testing.T) {
	cases := []struct {
		state    config.PlayerState
		clip     string
		followUp string
	}{
		{config.Idle, animations.ClipIdle, ""},
		{config.Running, animations.ClipRun, ""},
		{config.Rising, animations.ClipJump, animations.ClipRising},
		{config.LongJumping, animations.ClipLongJump, animations.ClipLongJumpHeld},
		{config.Diving, animations.ClipDive, animations.ClipDiveHeld},
	}

	for _, tc := range cases {
		t.Run(tc.state.String(), func(t *testing.T) {
			req, ok := AnimationFor(1, tc.state)
			if !ok {
				t.Fatal("expected a request")
			}
			if req.Clip != tc.clip || req.FollowUp != tc.followUp {
				t.Errorf("expected %q/%q, got %q/%q", tc.clip, tc.followUp, req.Clip, req.FollowUp)
			}
		})
	}

	if _, ok := AnimationFor(1, config.StateNone); ok {
		t.Error("expected no request for StateNone")
	}
}
