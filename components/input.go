package components

import (
	cfg "github.com/automoto/overworld/config"
	"github.com/yohamta/donburi"
)

// ControllerData is the raw device snapshot written by the front end each
// frame. Previous is maintained by the input system.
type ControllerData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	MoveX    float64
	MoveZ    float64
}

var Controller = donburi.NewComponentType[ControllerData]()

func (c *ControllerData) JustPressed(a cfg.ActionID) bool {
	return c.Current[a] && !c.Previous[a]
}

func (c *ControllerData) JustReleased(a cfg.ActionID) bool {
	return !c.Current[a] && c.Previous[a]
}

// Latch copies the current snapshot into Previous.
func (c *ControllerData) Latch() {
	c.Previous = c.Current
}

// InputBufferData keeps a press "just pressed" for a short window so that
// presses slightly before a jump becomes legal still count.
type InputBufferData struct {
	Window float64

	pressed  [cfg.ActionCount]bool
	stale    [cfg.ActionCount]bool
	buffered [cfg.ActionCount]float64 // remaining seconds, zero when not buffered
	axisX    float64
	axisZ    float64
}

var InputBuffer = donburi.NewComponentType[InputBufferData]()

func NewInputBuffer(window float64) InputBufferData {
	return InputBufferData{Window: window}
}

// Press registers a fresh press and opens its buffer window.
func (b *InputBufferData) Press(a cfg.ActionID) {
	b.pressed[a] = true
	b.buffered[a] = b.Window
}

// Release clears every trace of a.
func (b *InputBufferData) Release(a cfg.ActionID) {
	b.pressed[a] = false
	b.stale[a] = false
	b.buffered[a] = 0
}

// Tick expires buffer windows. An expired press turns stale and stops
// reporting JustPressed until it is released.
func (b *InputBufferData) Tick(dt float64) {
	for a := range b.buffered {
		if b.buffered[a] <= 0 {
			continue
		}
		b.buffered[a] -= dt
		if b.buffered[a] <= 0 {
			b.buffered[a] = 0
			b.stale[a] = true
		}
	}
}

func (b *InputBufferData) Pressed(a cfg.ActionID) bool {
	return b.pressed[a]
}

func (b *InputBufferData) JustPressed(a cfg.ActionID) bool {
	if b.stale[a] {
		return false
	}
	return b.pressed[a] || b.buffered[a] > 0
}

func (b *InputBufferData) Released(a cfg.ActionID) bool {
	return !b.pressed[a] && b.buffered[a] <= 0
}

// Consume marks a buffered press as used so it cannot trigger again.
func (b *InputBufferData) Consume(a cfg.ActionID) {
	b.buffered[a] = 0
	b.stale[a] = true
}

func (b *InputBufferData) SetAxis(x, z float64) {
	b.axisX, b.axisZ = x, z
}

// Axis returns the movement stick in device space.
func (b *InputBufferData) Axis() (x, z float64) {
	return b.axisX, b.axisZ
}
