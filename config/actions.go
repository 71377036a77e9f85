package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionJump
	ActionInteract
	ActionCrouch
	ActionCamRotateLeft
	ActionCamRotateRight
	ActionCamModeUp
	ActionCamModeDown
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:           "none",
	ActionJump:           "jump",
	ActionInteract:       "interact",
	ActionCrouch:         "crouch",
	ActionCamRotateLeft:  "cam_rotate_left",
	ActionCamRotateRight: "cam_rotate_right",
	ActionCamModeUp:      "cam_mode_up",
	ActionCamModeDown:    "cam_mode_down",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
