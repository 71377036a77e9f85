package components

import (
	"github.com/automoto/overworld/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimatorData is the playback handle of an animation rig.
type AnimatorData struct {
	Player *animations.Player
}

var Animator = donburi.NewComponentType[AnimatorData]()

// SlotPhase is the playback slot state of a rig.
type SlotPhase int

const (
	// SlotPlaying: the current clip needs nothing further.
	SlotPlaying SlotPhase = iota
	// SlotPendingFollowUp: when the current clip finishes, FollowUp starts.
	SlotPendingFollowUp
)

// AnimationSlotData tracks what a rig was last asked to play.
type AnimationSlotData struct {
	Phase    SlotPhase
	Clip     string
	FollowUp string
}

var AnimationSlot = donburi.NewComponentType[AnimationSlotData]()

// Start records a new request. A non-empty follow-up moves the slot to
// SlotPendingFollowUp; otherwise any older follow-up is dropped.
func (s *AnimationSlotData) Start(clip, followUp string) {
	s.Clip = clip
	s.FollowUp = followUp
	if followUp != "" {
		s.Phase = SlotPendingFollowUp
		return
	}
	s.Phase = SlotPlaying
}

// Advance moves a pending slot on to its follow-up clip and returns it.
func (s *AnimationSlotData) Advance() (string, bool) {
	if s.Phase != SlotPendingFollowUp {
		return "", false
	}
	next := s.FollowUp
	s.Clip = next
	s.FollowUp = ""
	s.Phase = SlotPlaying
	return next, true
}

// AnimationMapData binds characters to the rig entity that animates them.
type AnimationMapData struct {
	rigs map[donburi.Entity]donburi.Entity
}

var AnimationMap = donburi.NewComponentType[AnimationMapData]()

func NewAnimationMap() AnimationMapData {
	return AnimationMapData{rigs: make(map[donburi.Entity]donburi.Entity)}
}

func (m *AnimationMapData) Bind(character, rig donburi.Entity) {
	if m.rigs == nil {
		m.rigs = make(map[donburi.Entity]donburi.Entity)
	}
	m.rigs[character] = rig
}

func (m *AnimationMapData) Rig(character donburi.Entity) (donburi.Entity, bool) {
	rig, ok := m.rigs[character]
	return rig, ok
}

func (m *AnimationMapData) Unbind(character donburi.Entity) {
	delete(m.rigs, character)
}

func (m *AnimationMapData) Len() int { return len(m.rigs) }
