package config

import "image/color"

// CharacterConfig holds the spawn-time tuning copied into every character.
type CharacterConfig struct {
	// Suspension
	RideHeight     float64 `yaml:"ride_height"`
	SpringStrength float64 `yaml:"spring_strength"`
	SpringDamper   float64 `yaml:"spring_damper"`

	// Jumping
	JumpStrength       float64 `yaml:"jump_strength"`
	BaseGravityScale   float64 `yaml:"base_gravity_scale"`
	RegrabGravityScale float64 `yaml:"regrab_gravity_scale"`

	// Long jump and dive
	LongJumpStrength float64 `yaml:"long_jump_strength"`
	LongJumpBoost    float64 `yaml:"long_jump_boost"` // Horizontal speed added on take-off
	DiveImpulse      float64 `yaml:"dive_impulse"`
	DiveLift         float64 `yaml:"dive_lift"`

	// Body
	Mass       float64 `yaml:"mass"`
	HalfWidth  float64 `yaml:"half_width"` // X and Z half extent of the collider
	HalfHeight float64 `yaml:"half_height"`
	BaseSpeed  float64 `yaml:"base_speed"`
}

// MoveSpeedConfig drives the Paused/Startup/Accelerating/Decelerating ramp.
type MoveSpeedConfig struct {
	MaxMultiplier   float64 `yaml:"max_multiplier"` // Max speed = base * multiplier
	Acceleration    float64 `yaml:"acceleration"`
	StartupDelay    float64 `yaml:"startup_delay"`    // seconds
	DecelerateDelay float64 `yaml:"decelerate_delay"` // seconds
	SettleEpsilon   float64 `yaml:"settle_epsilon"`
}

// CoyoteConfig contains the grace window after walking off a ledge.
type CoyoteConfig struct {
	Duration float64 `yaml:"duration"` // seconds
}

// GroundConfig contains the ground cast configuration.
type GroundConfig struct {
	MaxDistance    float64 `yaml:"max_distance"` // Cast length from the body centre
	IncludeDynamic bool    `yaml:"include_dynamic"`
	IncludeSensors bool    `yaml:"include_sensors"`
}

// InputConfig contains input buffering values.
type InputConfig struct {
	BufferWindow   float64 `yaml:"buffer_window"` // seconds a press stays "just pressed"
	AnalogDeadzone float64 `yaml:"analog_deadzone"`
}

// CameraConfig contains camera behaviour configuration.
type CameraConfig struct {
	Offset      [3]float64 `yaml:"offset"`
	Easing      float64    `yaml:"easing"`
	RotateSpeed float64    `yaml:"rotate_speed"` // degrees per second in Free mode
	SnapStep    float64    `yaml:"snap_step"`    // degrees per press in Fixed mode
	StartMode   CameraMode `yaml:"start_mode"`
}

// ClipConfig describes one animation clip of the reference animation player.
type ClipConfig struct {
	Duration float64 `yaml:"duration"` // seconds
}

// AnimationConfig contains animation playback configuration.
type AnimationConfig struct {
	Blend float64               `yaml:"blend"` // blend duration in seconds
	Clips map[string]ClipConfig `yaml:"clips"`
}

// PhysicsConfig contains physics-related configuration values.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	FixedStep    float64 `yaml:"fixed_step"` // seconds per tick

	// Broad phase, sized in world units. SpaceUnit is the number of resolv
	// pixels per world unit.
	SpaceWidth  int `yaml:"space_width"`
	SpaceDepth  int `yaml:"space_depth"`
	SpaceCell   int `yaml:"space_cell"`
	SpaceUnit   int `yaml:"space_unit"`
	ContactSkin float64
}

// UIConfig contains HUD configuration values.
type UIConfig struct {
	HUDFontSize   float64
	HUDTextColor  color.RGBA
	PixelsPerUnit float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Tuning groups every hot-reloadable section. It mirrors the tuning file.
type Tuning struct {
	Character CharacterConfig `yaml:"character"`
	MoveSpeed MoveSpeedConfig `yaml:"move_speed"`
	Coyote    CoyoteConfig    `yaml:"coyote"`
	Ground    GroundConfig    `yaml:"ground"`
	Input     InputConfig     `yaml:"input"`
	Camera    CameraConfig    `yaml:"camera"`
	Animation AnimationConfig `yaml:"animation"`
	Physics   PhysicsConfig   `yaml:"physics"`
}

// Global configuration instances
var C *Config
var Character CharacterConfig
var MoveSpeed MoveSpeedConfig
var Coyote CoyoteConfig
var Ground GroundConfig
var Input InputConfig
var Camera CameraConfig
var Animation AnimationConfig
var Physics PhysicsConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue  = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Magenta   = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
)

// Defaults returns the built-in tuning.
func Defaults() Tuning {
	return Tuning{
		Character: CharacterConfig{
			RideHeight:     1.0,
			SpringStrength: 600,
			SpringDamper:   35,

			JumpStrength:       9,
			BaseGravityScale:   1,
			RegrabGravityScale: 0.3,

			LongJumpStrength: 7,
			LongJumpBoost:    4,
			DiveImpulse:      6,
			DiveLift:         2,

			Mass:       1,
			HalfWidth:  0.4,
			HalfHeight: 0.5,
			BaseSpeed:  4,
		},
		MoveSpeed: MoveSpeedConfig{
			MaxMultiplier:   2,
			Acceleration:    3,
			StartupDelay:    0.1,
			DecelerateDelay: 0.15,
			SettleEpsilon:   0.01,
		},
		Coyote: CoyoteConfig{
			Duration: 0.33,
		},
		Ground: GroundConfig{
			// Ride height plus a small margin. Kept tight so a jump leaves the
			// cast within a tick.
			MaxDistance: 1.05,
		},
		Input: InputConfig{
			BufferWindow:   0.166,
			AnalogDeadzone: 0.25,
		},
		Camera: CameraConfig{
			Offset:      [3]float64{0, 7, 10},
			Easing:      4,
			RotateSpeed: 180,
			SnapStep:    45,
			StartMode:   CameraFree,
		},
		Animation: AnimationConfig{
			Blend: 0.2,
			Clips: map[string]ClipConfig{
				"idle":           {Duration: 2.0},
				"run":            {Duration: 0.8},
				"jump":           {Duration: 0.25},
				"rising":         {Duration: 0.6},
				"long-jump":      {Duration: 0.3},
				"long-jump-held": {Duration: 0.6},
				"dive":           {Duration: 0.2},
				"dive-held":      {Duration: 0.5},
			},
		},
		Physics: PhysicsConfig{
			Gravity:      -20,
			MaxFallSpeed: 30,
			FixedStep:    1.0 / 60.0,
			SpaceWidth:   256,
			SpaceDepth:   256,
			SpaceCell:    4,
			SpaceUnit:    16,
			ContactSkin:  0.01,
		},
	}
}

// Current returns the tuning presently installed in the package variables.
func Current() Tuning {
	return Tuning{
		Character: Character,
		MoveSpeed: MoveSpeed,
		Coyote:    Coyote,
		Ground:    Ground,
		Input:     Input,
		Camera:    Camera,
		Animation: Animation,
		Physics:   Physics,
	}
}

// Apply installs t into the package variables. Characters keep the tuning
// they were spawned with.
func Apply(t Tuning) {
	Character = t.Character
	MoveSpeed = t.MoveSpeed
	Coyote = t.Coyote
	Ground = t.Ground
	Input = t.Input
	Camera = t.Camera
	Animation = t.Animation
	Physics = t.Physics
}

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	UI = UIConfig{
		HUDFontSize:   14,
		HUDTextColor:  White,
		PixelsPerUnit: 16,
	}

	Apply(Defaults())
}
