// Package physics defines the rigid-body surface the character controller
// consumes and ships a small reference engine built on a resolv broad phase.
package physics

import (
	"github.com/automoto/overworld/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Up is the world-up axis. Ground casts travel along its negation.
var Up = mgl64.Vec3{0, 1, 0}

// Hit is one result of a downward shape cast.
type Hit struct {
	Entity       donburi.Entity
	TimeOfImpact float64
	Point        mgl64.Vec3
	Normal       mgl64.Vec3
	// Velocity of the hit body, zero for static terrain.
	Velocity mgl64.Vec3
}

// Filter narrows which bodies a cast may report.
type Filter struct {
	Mask           config.CollisionLayer
	Exclude        donburi.Entity
	IncludeSensors bool
	IncludeDynamic bool
}

// Engine is the query and mutation surface of the rigid-body collaborator.
// Every accessor reports false for entities the engine does not know about;
// callers treat that as "skip", never as a failure.
type Engine interface {
	Position(e donburi.Entity) (mgl64.Vec3, bool)
	SetPosition(e donburi.Entity, p mgl64.Vec3) bool
	Velocity(e donburi.Entity) (mgl64.Vec3, bool)
	SetVelocity(e donburi.Entity, v mgl64.Vec3) bool
	GravityScale(e donburi.Entity) (float64, bool)
	SetGravityScale(e donburi.Entity, scale float64) bool

	// ApplyForce adds to the force accumulator, which the next Step consumes
	// and clears.
	ApplyForce(e donburi.Entity, f mgl64.Vec3) bool
	// ClearForce drops whatever has accumulated since the last Step.
	ClearForce(e donburi.Entity) bool

	// CastDown sweeps the footprint of e downward from its centre and returns
	// hits ordered nearest first.
	CastDown(e donburi.Entity, maxDistance float64, filter Filter) []Hit

	// Contacts lists the bodies overlapping e after the last Step.
	Contacts(e donburi.Entity) []donburi.Entity

	Remove(e donburi.Entity)
	Step(dt float64)
}
