package components

import (
	"errors"

	"github.com/yohamta/donburi"
)

// ErrIllegalLocomotion is returned for flag combinations the controller never
// produces.
var ErrIllegalLocomotion = errors.New("locomotion: illegal flag combination")

// LocomotionFlags is the plain form of LocomotionData, used to build one.
type LocomotionFlags struct {
	Grounded bool
	Jumping  bool
	Regrab   bool
	// Coyote is the remaining coyote window in seconds. Zero means absent.
	Coyote float64
}

// LocomotionData holds the jump flags of a character. Fields are unexported
// so that every change goes through a transition that keeps Jumping and
// Grounded exclusive.
type LocomotionData struct {
	grounded bool
	jumping  bool
	regrab   bool
	coyote   float64
}

var Locomotion = donburi.NewComponentType[LocomotionData]()

// NewLocomotion validates f.
func NewLocomotion(f LocomotionFlags) (LocomotionData, error) {
	switch {
	case f.Grounded && f.Jumping:
		return LocomotionData{}, errors.Join(ErrIllegalLocomotion, errors.New("jumping while grounded"))
	case f.Regrab && f.Jumping:
		return LocomotionData{}, errors.Join(ErrIllegalLocomotion, errors.New("regrab while jumping"))
	case f.Coyote < 0:
		return LocomotionData{}, errors.Join(ErrIllegalLocomotion, errors.New("negative coyote time"))
	case f.Coyote > 0 && (f.Grounded || f.Jumping):
		return LocomotionData{}, errors.Join(ErrIllegalLocomotion, errors.New("coyote time while grounded or jumping"))
	}
	return LocomotionData{
		grounded: f.Grounded,
		jumping:  f.Jumping,
		regrab:   f.Regrab,
		coyote:   f.Coyote,
	}, nil
}

func (l *LocomotionData) Grounded() bool           { return l.grounded }
func (l *LocomotionData) Jumping() bool            { return l.jumping }
func (l *LocomotionData) Regrab() bool             { return l.regrab }
func (l *LocomotionData) CoyoteTime() bool         { return l.coyote > 0 }
func (l *LocomotionData) CoyoteRemaining() float64 { return l.coyote }

func (l *LocomotionData) Flags() LocomotionFlags {
	return LocomotionFlags{
		Grounded: l.grounded,
		Jumping:  l.jumping,
		Regrab:   l.regrab,
		Coyote:   l.coyote,
	}
}

// Land marks the character grounded. It is refused while jumping. Reports
// whether the flag was inserted.
func (l *LocomotionData) Land() bool {
	if l.jumping || l.grounded {
		return false
	}
	l.grounded = true
	l.coyote = 0
	return true
}

// LeaveGround removes Grounded. Walking off (not jumping) opens a coyote
// window of the given length. Reports whether the window was granted.
func (l *LocomotionData) LeaveGround(coyote float64) bool {
	if !l.grounded {
		return false
	}
	l.grounded = false
	if l.jumping || coyote <= 0 {
		return false
	}
	l.coyote = coyote
	return true
}

// CanJump reports whether a jump may start this tick.
func (l *LocomotionData) CanJump() bool {
	return l.grounded || l.coyote > 0
}

// StartJump inserts Jumping and drops Grounded and coyote time.
func (l *LocomotionData) StartJump() {
	l.jumping = true
	l.grounded = false
	l.coyote = 0
	l.regrab = false
}

// EndJump removes Jumping. Reports whether it was set.
func (l *LocomotionData) EndJump() bool {
	was := l.jumping
	l.jumping = false
	return was
}

// TickCoyote counts the window down. Reports true on the tick it expires.
func (l *LocomotionData) TickCoyote(dt float64) bool {
	if l.coyote <= 0 {
		return false
	}
	l.coyote -= dt
	if l.coyote <= 0 {
		l.coyote = 0
		return true
	}
	return false
}

// EnterRegrab is refused while jumping or already regrabbing.
func (l *LocomotionData) EnterRegrab() bool {
	if l.jumping || l.regrab {
		return false
	}
	l.regrab = true
	return true
}

func (l *LocomotionData) ExitRegrab() bool {
	was := l.regrab
	l.regrab = false
	return was
}
