package components

import (
	"errors"
	"testing"
)

func TestNewLocomotionRejectsIllegalFlags(t *testing.T) {
	cases := []struct {
		name  string
		flags LocomotionFlags
		ok    bool
	}{
		{"empty", LocomotionFlags{}, true},
		{"grounded", LocomotionFlags{Grounded: true}, true},
		{"jumping", LocomotionFlags{Jumping: true}, true},
		{"airborne_regrab", LocomotionFlags{Regrab: true}, true},
		{"coyote", LocomotionFlags{Coyote: 0.2}, true},
		{"jumping_grounded", LocomotionFlags{Grounded: true, Jumping: true}, false},
		{"jumping_regrab", LocomotionFlags{Jumping: true, Regrab: true}, false},
		{"negative_coyote", LocomotionFlags{Coyote: -1}, false},
		{"grounded_coyote", LocomotionFlags{Grounded: true, Coyote: 0.1}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l, err := NewLocomotion(c.flags)
			if c.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if l.Flags() != c.flags {
					t.Errorf("expected %+v, got %+v", c.flags, l.Flags())
				}
				return
			}
			if !errors.Is(err, ErrIllegalLocomotion) {
				t.Errorf("expected ErrIllegalLocomotion, got %v", err)
			}
		})
	}
}

func TestLocomotionLandRefusedWhileJumping(t *testing.T) {
	l, _ := NewLocomotion(LocomotionFlags{Grounded: true})
	l.StartJump()

	if l.Grounded() {
		t.Fatal("StartJump should clear Grounded")
	}
	if l.Land() {
		t.Error("Land should be refused while jumping")
	}
	if l.Grounded() && l.Jumping() {
		t.Error("Jumping and Grounded coexist")
	}

	l.EndJump()
	if !l.Land() {
		t.Error("Land should succeed once the jump ended")
	}
}

func TestLocomotionLeaveGroundCoyote(t *testing.T) {
	t.Run("walk_off", func(t *testing.T) {
		l, _ := NewLocomotion(LocomotionFlags{Grounded: true})
		if !l.LeaveGround(0.33) {
			t.Fatal("expected coyote time to be granted")
		}
		if !l.CoyoteTime() || l.CoyoteRemaining() != 0.33 {
			t.Errorf("expected a fresh 0.33s window, got %v", l.CoyoteRemaining())
		}
		if !l.CanJump() {
			t.Error("expected coyote time to allow a jump")
		}
	})

	t.Run("not_grounded", func(t *testing.T) {
		l, _ := NewLocomotion(LocomotionFlags{})
		if l.LeaveGround(0.33) || l.CoyoteTime() {
			t.Error("coyote time must only start on the grounded edge")
		}
	})

	t.Run("expires", func(t *testing.T) {
		l, _ := NewLocomotion(LocomotionFlags{Coyote: 0.1})
		if l.TickCoyote(0.05) {
			t.Error("expired too early")
		}
		if !l.TickCoyote(0.05) {
			t.Error("expected expiry on the second tick")
		}
		if l.CoyoteTime() {
			t.Error("expected coyote time to be gone")
		}
		if l.TickCoyote(0.05) {
			t.Error("expiry should be reported once")
		}
	})
}

func TestLocomotionRegrab(t *testing.T) {
	l, _ := NewLocomotion(LocomotionFlags{Jumping: true})
	if l.EnterRegrab() {
		t.Error("regrab must not start while jumping")
	}
	l.EndJump()
	if !l.EnterRegrab() {
		t.Error("expected regrab to start")
	}
	if l.EnterRegrab() {
		t.Error("regrab should not be entered twice")
	}
	if !l.ExitRegrab() || l.Regrab() {
		t.Error("expected regrab to end")
	}
}
