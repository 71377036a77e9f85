package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TransitionData is a sensor zone that moves whoever enters it.
type TransitionData struct {
	Destination mgl64.Vec3
}

var Transition = donburi.NewComponentType[TransitionData]()

type ItemID int

const (
	ItemMilkshake ItemID = iota
	ItemCoin
)

func (i ItemID) String() string {
	switch i {
	case ItemMilkshake:
		return "milkshake"
	case ItemCoin:
		return "coin"
	}
	return "unknown"
}

// ItemData is a collectible lying in the level.
type ItemData struct {
	ID    ItemID
	Value int
}

var Item = donburi.NewComponentType[ItemData]()

// PlatformData drives a kinematic platform along Y.
type PlatformData struct {
	Motion *gween.Sequence
	BaseY  float64
}

var Platform = donburi.NewComponentType[PlatformData]()
