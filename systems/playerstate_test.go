package systems

import (
	"testing"

	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/yohamta/donburi"
)

func TestResolvePlayerState(t *testing.T) {
	cases := []struct {
		name  string
		facts StateFacts
		want  config.PlayerState
	}{
		{"idle", StateFacts{}, config.Idle},
		{"running", StateFacts{Moving: true}, config.Running},
		{"rising", StateFacts{Airborne: true, Jumping: true}, config.Rising},
		{"rising_with_hits", StateFacts{Jumping: true, Moving: true}, config.Rising},
		{"falling", StateFacts{Airborne: true}, config.Diving},
		{"falling_moving", StateFacts{Airborne: true, Moving: true}, config.Diving},
		{"diving", StateFacts{Diving: true, Airborne: true, Jumping: true}, config.Diving},
		{"long_jump", StateFacts{LongJump: true, Jumping: true, Airborne: true}, config.LongJumping},
		{"long_jump_wins", StateFacts{LongJump: true, Diving: true}, config.LongJumping},
		{"diving_on_ground", StateFacts{Diving: true, Moving: true}, config.Diving},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolvePlayerState(tc.facts); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestStateTransitionsPublishedOncePerChange(t *testing.T) {
	w := newTestWorld(t)
	w.settle()

	var got []config.PlayerState
	PlayerStateTransitions.Subscribe(w.ecs.World, func(_ donburi.World, e components.PlayerStateTransitionEvent) {
		got = append(got, e.State)
	})

	w.controller().MoveX = 1
	w.tick(30)
	w.controller().MoveX = 0
	w.tick(30)

	want := []config.PlayerState{config.Running, config.Idle}
	if len(got) != len(want) {
		t.Fatalf("expected %d transitions, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("transition %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if state := components.Player.Get(w.player).State; state != config.Idle {
		t.Errorf("expected recorded state %v, got %v", config.Idle, state)
	}
}

func TestRepeatedStateIsIgnored(t *testing.T) {
	w := newTestWorld(t)
	w.settle()

	var requests int
	AnimationTransitions.Subscribe(w.ecs.World, func(_ donburi.World, _ components.AnimationTransitionEvent) {
		requests++
	})

	for i := 0; i < 3; i++ {
		PlayerStateTransitions.Publish(w.ecs.World, components.PlayerStateTransitionEvent{
			Entity: w.player.Entity(),
			State:  config.Running,
		})
	}
	ProcessStateTransitions(w.ecs)
	ProcessAnimationTransitions(w.ecs)

	if requests != 1 {
		t.Errorf("expected 1 animation request, got %d", requests)
	}
}

func TestLandingReannouncesGroundState(t *testing.T) {
	w := newTestWorld(t)
	w.settle()

	var got []config.PlayerState
	PlayerStateTransitions.Subscribe(w.ecs.World, func(_ donburi.World, e components.PlayerStateTransitionEvent) {
		got = append(got, e.State)
	})

	w.press(config.ActionJump, true)
	w.tick(1)
	w.press(config.ActionJump, false)
	for i := 0; i < 120 && !w.locomotion().Grounded(); i++ {
		w.tick(1)
	}
	w.tick(1)

	if len(got) == 0 || got[0] != config.Rising {
		t.Fatalf("expected first transition %v, got %v", config.Rising, got)
	}
	if last := got[len(got)-1]; last != config.Idle {
		t.Errorf("expected last transition %v, got %v", config.Idle, last)
	}
}
