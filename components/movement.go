package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// MoveDirectionData is the requested horizontal direction in world space.
type MoveDirectionData struct {
	Current  mgl64.Vec3
	Previous mgl64.Vec3
	// Heading is the last non-zero direction, kept while the ramp winds down.
	Heading mgl64.Vec3
}

var MoveDirection = donburi.NewComponentType[MoveDirectionData]()

// Set records a new direction. Y is dropped and the length clamped to 1.
func (d *MoveDirectionData) Set(v mgl64.Vec3) {
	v[1] = 0
	if l := v.Len(); l > 1 {
		v = v.Mul(1 / l)
	}
	d.Previous = d.Current
	d.Current = v
	if !isZero(v) {
		d.Heading = v
	}
}

func (d *MoveDirectionData) IsAny() bool { return !isZero(d.Current) }

func (d *MoveDirectionData) StartedMoving() bool {
	return isZero(d.Previous) && !isZero(d.Current)
}

func (d *MoveDirectionData) StoppedMoving() bool {
	return !isZero(d.Previous) && isZero(d.Current)
}

func isZero(v mgl64.Vec3) bool {
	return v.X() == 0 && v.Y() == 0 && v.Z() == 0
}

// Timer is a one-shot countdown in seconds.
type Timer struct {
	Duration float64
	Elapsed  float64
}

func NewTimer(d float64) Timer { return Timer{Duration: d} }

func (t *Timer) Tick(dt float64) {
	t.Elapsed += dt
	if t.Elapsed > t.Duration {
		t.Elapsed = t.Duration
	}
}

func (t *Timer) Finished() bool { return t.Elapsed >= t.Duration }

func (t *Timer) Reset() { t.Elapsed = 0 }
