package components

import (
	"github.com/automoto/overworld/config"
	"github.com/yohamta/donburi"
)

// CharacterData is the per-character tuning copied at spawn.
type CharacterData struct {
	RideHeight         float64
	SpringStrength     float64
	SpringDamper       float64
	JumpStrength       float64
	BaseGravityScale   float64
	RegrabGravityScale float64

	LongJumpStrength float64
	LongJumpBoost    float64
	DiveImpulse      float64
	DiveLift         float64
}

func NewCharacter(c config.CharacterConfig) CharacterData {
	return CharacterData{
		RideHeight:         c.RideHeight,
		SpringStrength:     c.SpringStrength,
		SpringDamper:       c.SpringDamper,
		JumpStrength:       c.JumpStrength,
		BaseGravityScale:   c.BaseGravityScale,
		RegrabGravityScale: c.RegrabGravityScale,
		LongJumpStrength:   c.LongJumpStrength,
		LongJumpBoost:      c.LongJumpBoost,
		DiveImpulse:        c.DiveImpulse,
		DiveLift:           c.DiveLift,
	}
}

var Character = donburi.NewComponentType[CharacterData]()
