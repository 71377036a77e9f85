package components

import (
	"math"

	"github.com/automoto/overworld/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraData is the orbiting follow camera.
type CameraData struct {
	Mode     config.CameraMode
	Angle    float64 // degrees around Y
	Offset   mgl64.Vec3
	Easing   float64
	Desired  mgl64.Vec3
	Position mgl64.Vec3
	Forward  mgl64.Vec3
}

var Camera = donburi.NewComponentType[CameraData]()

func NewCamera(c config.CameraConfig) CameraData {
	return CameraData{
		Mode:    c.StartMode,
		Offset:  mgl64.Vec3{c.Offset[0], c.Offset[1], c.Offset[2]},
		Easing:  c.Easing,
		Forward: mgl64.Vec3{0, 0, -1},
	}
}

// Wrap keeps the angle within one turn either side of zero.
func (c *CameraData) Wrap() {
	if c.Angle > 360 {
		c.Angle -= 360
	}
	if c.Angle < -360 {
		c.Angle += 360
	}
}

// SnapAngle truncates angle to whole degrees and rounds it to a multiple of
// step, rounding down for remainders up to half a step.
func SnapAngle(angle, step float64) float64 {
	a := math.Trunc(angle)
	s := math.Trunc(step)
	if s <= 0 {
		return a
	}
	diff := math.Mod(a, s)
	if diff <= math.Floor(s/2) {
		return a - diff
	}
	return a + s - diff
}

// DesiredPosition places the camera Offset.Z along the rotated forward axis
// and Offset.Y above target.
func (c *CameraData) DesiredPosition(target mgl64.Vec3) mgl64.Vec3 {
	q := mgl64.QuatRotate(mgl64.DegToRad(c.Angle), mgl64.Vec3{0, 1, 0})
	forward := q.Rotate(mgl64.Vec3{0, 0, -1})
	return target.Add(forward.Mul(c.Offset.Z())).Add(mgl64.Vec3{0, c.Offset.Y(), 0})
}

// LookAt points the camera at target.
func (c *CameraData) LookAt(target mgl64.Vec3) {
	dir := target.Sub(c.Position)
	if dir.Len() == 0 {
		return
	}
	c.Forward = dir.Normalize()
}

// Basis returns the camera forward and right vectors flattened onto XZ.
func (c *CameraData) Basis() (forward, right mgl64.Vec3) {
	forward = flatten(c.Forward)
	right = forward.Cross(mgl64.Vec3{0, 1, 0})
	return forward, right
}

// TranslateDirection maps stick input (x right, z forward) into world space.
func (c *CameraData) TranslateDirection(x, z float64) mgl64.Vec3 {
	forward, right := c.Basis()
	return right.Mul(x).Add(forward.Mul(z))
}

func flatten(v mgl64.Vec3) mgl64.Vec3 {
	v[1] = 0
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}
