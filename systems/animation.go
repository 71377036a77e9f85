package systems

import (
	"time"

	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
)

func blendDuration() time.Duration {
	return time.Duration(config.Animation.Blend * float64(time.Second))
}

// AnimationFor maps a player state to its clip request.
func AnimationFor(e donburi.Entity, state config.PlayerState) (components.AnimationTransitionEvent, bool) {
	blend := blendDuration()
	switch state {
	case config.Idle:
		return components.SingleClip(e, state, animations.ClipIdle, blend), true
	case config.Running:
		return components.SingleClip(e, state, animations.ClipRun, blend), true
	case config.Rising:
		return components.DoubleClip(e, state, animations.ClipJump, animations.ClipRising, blend), true
	case config.LongJumping:
		return components.DoubleClip(e, state, animations.ClipLongJump, animations.ClipLongJumpHeld, blend), true
	case config.Diving:
		return components.DoubleClip(e, state, animations.ClipDive, animations.ClipDiveHeld, blend), true
	}
	return components.AnimationTransitionEvent{}, false
}

// HandlePlayerStateTransition records the new state and requests its clip.
// Repeating the recorded state does nothing.
func HandlePlayerStateTransition(w donburi.World, event components.PlayerStateTransitionEvent) {
	if !w.Valid(event.Entity) {
		return
	}
	e := w.Entry(event.Entity)
	if !e.HasComponent(components.Player) {
		return
	}
	player := components.Player.Get(e)
	if player.State == event.State {
		return
	}
	log.WithFields(logrus.Fields{
		"entity": event.Entity,
		"from":   player.State,
		"to":     event.State,
	}).Debug("player state")
	player.State = event.State

	if req, ok := AnimationFor(event.Entity, event.State); ok {
		AnimationTransitions.Publish(w, req)
	}
}

func ProcessAnimationTransitions(ecs *ecs.ECS) {
	AnimationTransitions.ProcessEvents(ecs.World)
}

// HandleAnimationTransition plays a request on the rig bound to its entity.
// Requests for unbound entities are dropped.
func HandleAnimationTransition(w donburi.World, event components.AnimationTransitionEvent) {
	rig, ok := boundRig(w, event.Entity)
	if !ok {
		log.WithField("entity", event.Entity).Debugf("dropped animation %q: no rig bound", event.Clip)
		return
	}
	play(rig, event)
}

func boundRig(w donburi.World, character donburi.Entity) (*donburi.Entry, bool) {
	mapEntry, ok := components.AnimationMap.First(w)
	if !ok {
		return nil, false
	}
	rigEntity, ok := components.AnimationMap.Get(mapEntry).Rig(character)
	if !ok || !w.Valid(rigEntity) {
		return nil, false
	}
	rig := w.Entry(rigEntity)
	if !rig.HasComponent(components.Animator) || !rig.HasComponent(components.AnimationSlot) {
		return nil, false
	}
	return rig, true
}

func play(rig *donburi.Entry, req components.AnimationTransitionEvent) {
	player := components.Animator.Get(rig).Player
	if player == nil {
		return
	}
	if err := player.PlayWithBlend(req.Clip, req.Blend); err != nil {
		log.WithError(err).WithField("rig", rig.Entity()).Warn("animation request failed")
		return
	}
	if req.Looping() {
		player.SetRepeat(animations.RepeatForever)
	} else {
		player.SetRepeat(animations.RepeatNever)
	}
	components.AnimationSlot.Get(rig).Start(req.Clip, req.FollowUp)
}

var rigQuery = donburi.NewQuery(filter.Contains(components.Animator, components.AnimationSlot))

// BindAnimationRigs binds each rig found below an Animated entity, then
// replays that entity's recorded state so the rig starts in the right clip.
func BindAnimationRigs(ecs *ecs.ECS) {
	mapEntry, ok := components.AnimationMap.First(ecs.World)
	if !ok {
		return
	}
	bindings := components.AnimationMap.Get(mapEntry)

	for _, rig := range collect(ecs.World, rigQuery) {
		owner, ok := animatedAncestor(rig)
		if !ok {
			continue
		}
		owner.RemoveComponent(tags.Animated)
		bindings.Bind(owner.Entity(), rig.Entity())
		log.WithFields(logrus.Fields{
			"entity": owner.Entity(),
			"rig":    rig.Entity(),
		}).Debug("animation rig bound")

		if !owner.HasComponent(components.Player) {
			continue
		}
		if req, ok := AnimationFor(owner.Entity(), components.Player.Get(owner).State); ok {
			play(rig, req)
		}
	}
}

func animatedAncestor(e *donburi.Entry) (*donburi.Entry, bool) {
	for e.HasComponent(transform.Transform) {
		parent, ok := transform.GetParent(e)
		if !ok || parent == nil || !parent.Valid() {
			return nil, false
		}
		if parent.HasComponent(tags.Animated) {
			return parent, true
		}
		e = parent
	}
	return nil, false
}

// PlayQueuedAnimations starts pending follow-up clips once the lead clip has
// finished.
func PlayQueuedAnimations(ecs *ecs.ECS) {
	rigQuery.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Animator.Get(e).Player
		slot := components.AnimationSlot.Get(e)
		if player == nil || slot.Phase != components.SlotPendingFollowUp || !player.IsFinished() {
			return
		}
		next, _ := slot.Advance()
		if err := player.PlayWithBlend(next, blendDuration()); err != nil {
			log.WithError(err).WithField("rig", e.Entity()).Warn("follow-up animation failed")
			return
		}
		player.SetRepeat(animations.RepeatForever)
	})
}

func UpdateAnimators(ecs *ecs.ECS) {
	dt := delta(ecs.World)
	components.Animator.Each(ecs.World, func(e *donburi.Entry) {
		if p := components.Animator.Get(e).Player; p != nil {
			p.Update(dt)
		}
	})
}
