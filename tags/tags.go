package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	Camera           = donburi.NewTag().SetName("Camera")
	Terrain          = donburi.NewTag().SetName("Terrain")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Transition       = donburi.NewTag().SetName("Transition")
	Item             = donburi.NewTag().SetName("Item")

	// Animated marks a character whose animation rig has not been bound yet.
	Animated = donburi.NewTag().SetName("Animated")

	// Locomotion markers layered on top of the jump flags.
	LongJump = donburi.NewTag().SetName("LongJump")
	Diving   = donburi.NewTag().SetName("Diving")
)

// Resolv tags for the broad phase
const (
	ResolvSolid   = "solid"
	ResolvSensor  = "sensor"
	ResolvDynamic = "dynamic"
)
