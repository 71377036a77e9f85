package config

// CollisionLayer is a bitmask of collision groups.
type CollisionLayer uint32

const (
	LayerCharacter CollisionLayer = 1 << iota
	LayerObject
	LayerVehicle
	LayerTerrain
	LayerAreaTransition
	LayerItem

	LayerAll CollisionLayer = 0xFFFFFFFF
)

// StandableMask lists the layers a character can ride on.
const StandableMask = LayerObject | LayerTerrain

// Has reports whether any bit of other is set in l.
func (l CollisionLayer) Has(other CollisionLayer) bool {
	return l&other != 0
}
