package components

import (
	"time"

	"github.com/automoto/overworld/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// PlayerStateTransitionEvent announces a newly resolved player state.
type PlayerStateTransitionEvent struct {
	Entity donburi.Entity
	State  config.PlayerState
}

// AnimationTransitionEvent asks the rig bound to Entity to play Clip.
type AnimationTransitionEvent struct {
	Entity donburi.Entity
	State  config.PlayerState
	Clip   string
	Blend  time.Duration
	// FollowUp is played looping once Clip finishes. Empty for looping clips.
	FollowUp string
}

// SingleClip requests a looping clip.
func SingleClip(e donburi.Entity, state config.PlayerState, clip string, blend time.Duration) AnimationTransitionEvent {
	return AnimationTransitionEvent{Entity: e, State: state, Clip: clip, Blend: blend}
}

// DoubleClip requests a one-shot clip followed by a looping one.
func DoubleClip(e donburi.Entity, state config.PlayerState, clip, followUp string, blend time.Duration) AnimationTransitionEvent {
	return AnimationTransitionEvent{Entity: e, State: state, Clip: clip, FollowUp: followUp, Blend: blend}
}

func (a AnimationTransitionEvent) Looping() bool { return a.FollowUp == "" }

// LandingEvent is published when a falling character touches ground.
type LandingEvent struct {
	Entity donburi.Entity
	// ImpactSpeed is the downward speed at touchdown.
	ImpactSpeed float64
}

// ItemPickedUpEvent is published when a character touches an item.
type ItemPickedUpEvent struct {
	Player donburi.Entity
	Item   ItemData
}

// TeleportEvent is published when a transition zone moves a character.
type TeleportEvent struct {
	Entity      donburi.Entity
	Destination mgl64.Vec3
}
