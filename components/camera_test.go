package components

import (
	"math"
	"testing"

	"github.com/automoto/overworld/config"
	"github.com/go-gl/mathgl/mgl64"
)

func TestSnapAngle(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{45, 45},
		{10, 0},
		{22.9, 0},
		{23, 45},
		{44, 45},
		{-10, 0},
		{-90, -90},
		{100, 90},
	}
	for _, c := range cases {
		if got := SnapAngle(c.in, 45); got != c.want {
			t.Errorf("SnapAngle(%v): expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestCameraWrap(t *testing.T) {
	c := NewCamera(config.Defaults().Camera)
	c.Angle = 370
	c.Wrap()
	if c.Angle != 10 {
		t.Errorf("expected 10, got %v", c.Angle)
	}
	c.Angle = -400
	c.Wrap()
	if c.Angle != -40 {
		t.Errorf("expected -40, got %v", c.Angle)
	}
}

func TestCameraTranslateDirection(t *testing.T) {
	c := NewCamera(config.Defaults().Camera)
	c.Position = mgl64.Vec3{0, 7, 10}
	c.LookAt(mgl64.Vec3{0, 0, 0})

	got := c.TranslateDirection(0, 1)
	want := mgl64.Vec3{0, 0, -1}
	if !got.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("forward: expected %v, got %v", want, got)
	}

	got = c.TranslateDirection(1, 0)
	want = mgl64.Vec3{1, 0, 0}
	if !got.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("right: expected %v, got %v", want, got)
	}
	if got.Y() != 0 {
		t.Errorf("expected a flat direction, got y %v", got.Y())
	}
}

func TestCameraDesiredPosition(t *testing.T) {
	c := NewCamera(config.Defaults().Camera)
	target := mgl64.Vec3{1, 0, 1}

	got := c.DesiredPosition(target)
	want := mgl64.Vec3{1, 7, -9}
	if !got.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("expected %v, got %v", want, got)
	}

	c.Angle = 180
	got = c.DesiredPosition(target)
	if math.Abs(got.Z()-11) > 1e-9 {
		t.Errorf("expected the camera behind at z 11, got %v", got.Z())
	}
}
