package components

import (
	"github.com/automoto/overworld/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// PlayerSnapshot is a read-only copy of the player's physical and semantic
// state, taken once per tick.
type PlayerSnapshot struct {
	Version uint64
	Tick    uint64

	Entity            donburi.Entity
	Position          mgl64.Vec3
	Velocity          mgl64.Vec3
	DistanceFromFloor float64 // zero when airborne
	Grounded          bool
	State             config.PlayerState
	SpeedState        MoveSpeedState
	CurrentSpeed      float64
	BaseSpeed         float64
	MaxSpeed          float64
}

// PlayerFeedData publishes snapshots. Readers get copies, so a reader can
// never write back into gameplay state.
type PlayerFeedData struct {
	latest PlayerSnapshot
}

var PlayerFeed = donburi.NewComponentType[PlayerFeedData]()

// Publish stores s as the latest snapshot and stamps the next version.
func (f *PlayerFeedData) Publish(s PlayerSnapshot) {
	s.Version = f.latest.Version + 1
	f.latest = s
}

func (f *PlayerFeedData) Snapshot() PlayerSnapshot { return f.latest }
