package components

import (
	"github.com/automoto/overworld/physics"
	"github.com/yohamta/donburi"
)

// PhysicsWorldData exposes the rigid-body engine to systems.
type PhysicsWorldData struct {
	Engine physics.Engine
}

var PhysicsWorld = donburi.NewComponentType[PhysicsWorldData]()

// BodyData marks an entity that owns a body in the engine.
type BodyData struct {
	Kind physics.BodyKind
}

var Body = donburi.NewComponentType[BodyData]()
