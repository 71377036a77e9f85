package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// PlayerState is the semantic locomotion state shown to the animation relay.
type PlayerState int

const (
	// StateNone is never resolved. It forces the next resolution to be
	// announced.
	StateNone PlayerState = iota
	Idle
	Running
	Rising
	LongJumping
	Diving
)

var playerStateNames = map[PlayerState]string{
	StateNone:   "none",
	Idle:        "idle",
	Running:     "running",
	Rising:      "rising",
	LongJumping: "long_jumping",
	Diving:      "diving",
}

func (s PlayerState) String() string {
	if name, ok := playerStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("PlayerState(%d)", int(s))
}

// CameraMode selects how the camera responds to rotation input.
type CameraMode int

const (
	CameraFixed CameraMode = iota
	CameraFree
	CameraFollow
)

func (m CameraMode) String() string {
	switch m {
	case CameraFixed:
		return "fixed"
	case CameraFree:
		return "free"
	case CameraFollow:
		return "follow"
	}
	return fmt.Sprintf("CameraMode(%d)", int(m))
}

// ShiftUp moves any mode to Free.
func (m CameraMode) ShiftUp() CameraMode { return CameraFree }

// ShiftDown moves any mode to Follow.
func (m CameraMode) ShiftDown() CameraMode { return CameraFollow }

// ParseCameraMode is the inverse of CameraMode.String.
func ParseCameraMode(s string) (CameraMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed":
		return CameraFixed, nil
	case "free":
		return CameraFree, nil
	case "follow":
		return CameraFollow, nil
	}
	return CameraFixed, fmt.Errorf("%w: unknown camera mode %q", ErrInvalidTuning, s)
}

func (m *CameraMode) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseCameraMode(value.Value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m CameraMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}
