// Package levels loads overworld layouts from Tiled maps. A map is read top
// down: object X maps to world X, object Y to world Z, and heights come from
// object properties.
package levels

import "github.com/go-gl/mathgl/mgl64"

// Box is an axis-aligned volume in world units.
type Box struct {
	Center      mgl64.Vec3
	HalfExtents mgl64.Vec3
}

// Top is the Y of the upper face.
func (b Box) Top() float64 { return b.Center.Y() + b.HalfExtents.Y() }

// Platform is a box that bobs along Y.
type Platform struct {
	Box
	Travel float64 // distance covered each way
	Period float64 // seconds for one way
}

// Transition is a sensor zone that teleports whoever enters it.
type Transition struct {
	Box
	Destination mgl64.Vec3
}

// Item is a collectible placed in the level.
type Item struct {
	Box
	Kind  string
	Value int
}

// Level holds everything a scene needs to build the overworld.
type Level struct {
	Name        string
	Width       float64
	Depth       float64
	Terrain     []Box
	Platforms   []Platform
	Transitions []Transition
	Items       []Item
	// Spawn is the ground point under the player spawn.
	Spawn mgl64.Vec3
}
