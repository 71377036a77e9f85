package components

import "github.com/yohamta/donburi"

// ClockData is the authoritative tick clock.
type ClockData struct {
	Delta   float64
	Elapsed float64
	Tick    uint64
}

var Clock = donburi.NewComponentType[ClockData]()
