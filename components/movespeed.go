package components

import (
	"fmt"
	"math"

	"github.com/automoto/overworld/config"
	"github.com/yohamta/donburi"
)

type MoveSpeedState int

const (
	SpeedPaused MoveSpeedState = iota
	SpeedStartup
	SpeedAccelerating
	SpeedDecelerating
)

func (s MoveSpeedState) String() string {
	switch s {
	case SpeedPaused:
		return "paused"
	case SpeedStartup:
		return "startup"
	case SpeedAccelerating:
		return "accelerating"
	case SpeedDecelerating:
		return "decelerating"
	}
	return fmt.Sprintf("MoveSpeedState(%d)", int(s))
}

// MoveSpeedData ramps the horizontal speed between Base and Max.
type MoveSpeedData struct {
	State   MoveSpeedState
	Base    float64
	Current float64
	Max     float64

	Acceleration  float64
	SettleEpsilon float64
	Startup       Timer
	Decelerate    Timer
}

var MoveSpeed = donburi.NewComponentType[MoveSpeedData]()

func NewMoveSpeed(base float64, c config.MoveSpeedConfig) MoveSpeedData {
	return MoveSpeedData{
		State:         SpeedPaused,
		Base:          base,
		Current:       base,
		Max:           base * c.MaxMultiplier,
		Acceleration:  c.Acceleration,
		SettleEpsilon: c.SettleEpsilon,
		Startup:       NewTimer(c.StartupDelay),
		Decelerate:    NewTimer(c.DecelerateDelay),
	}
}

// StartMoving is called on the tick movement input appears.
func (m *MoveSpeedData) StartMoving() {
	if m.State == SpeedDecelerating {
		m.State = SpeedAccelerating
		m.Decelerate.Reset()
		return
	}
	m.State = SpeedStartup
	m.Startup.Reset()
	m.Decelerate.Reset()
}

// StopMoving is called on the tick movement input disappears.
func (m *MoveSpeedData) StopMoving() {
	if m.State == SpeedAccelerating {
		m.State = SpeedDecelerating
		m.Decelerate.Reset()
		return
	}
	m.pause()
}

func (m *MoveSpeedData) pause() {
	m.State = SpeedPaused
	m.Current = m.Base
	m.Startup.Reset()
	m.Decelerate.Reset()
}

func (m *MoveSpeedData) Tick(dt float64) {
	switch m.State {
	case SpeedStartup:
		m.Startup.Tick(dt)
		if m.Startup.Finished() {
			m.State = SpeedAccelerating
		}
	case SpeedAccelerating:
		m.Current = lerp(m.Current, m.Max, m.Acceleration*dt)
	case SpeedDecelerating:
		m.Decelerate.Tick(dt)
		if !m.Decelerate.Finished() {
			break
		}
		m.Current = lerp(m.Current, m.Base, m.Acceleration*dt)
		if m.Current-m.Base <= m.SettleEpsilon {
			m.pause()
		}
	}
	m.Current = math.Min(math.Max(m.Current, m.Base), m.Max)
}

// Moving reports whether the ramp is driving horizontal motion.
func (m *MoveSpeedData) Moving() bool { return m.State != SpeedPaused }

func lerp(from, to, rate float64) float64 {
	return from + (to-from)*math.Min(rate, 1)
}
