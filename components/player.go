package components

import (
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/physics"
	"github.com/yohamta/donburi"
)

// PlayerData records the last announced semantic state.
type PlayerData struct {
	State config.PlayerState
}

var Player = donburi.NewComponentType[PlayerData]()

// GroundHitsData holds this tick's ground cast, nearest first.
type GroundHitsData struct {
	Hits []physics.Hit
}

var GroundHits = donburi.NewComponentType[GroundHitsData]()

func (g *GroundHitsData) Empty() bool { return len(g.Hits) == 0 }

// Nearest returns the closest hit. Callers check Empty first.
func (g *GroundHitsData) Nearest() physics.Hit { return g.Hits[0] }
