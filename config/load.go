package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is returned when a tuning file decodes to values the
// controller cannot run with.
var ErrInvalidTuning = errors.New("config: invalid tuning")

// LoadFile reads a YAML tuning file. Keys the file omits keep the value they
// have in base.
func LoadFile(filename string, base Tuning) (Tuning, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: load %s: %w", filename, err)
	}
	return Parse(data, base)
}

// Parse decodes YAML tuning over a copy of base and validates the result.
func Parse(data []byte, base Tuning) (Tuning, error) {
	t := base
	// Clip maps are merged key by key; copy so base is never aliased.
	if base.Animation.Clips != nil {
		t.Animation.Clips = make(map[string]ClipConfig, len(base.Animation.Clips))
		for k, v := range base.Animation.Clips {
			t.Animation.Clips[k] = v
		}
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate checks the ranges the controller relies on.
func (t Tuning) Validate() error {
	switch {
	case t.Character.RideHeight <= 0:
		return fmt.Errorf("%w: character.ride_height must be positive", ErrInvalidTuning)
	case t.Character.SpringStrength < 0 || t.Character.SpringDamper < 0:
		return fmt.Errorf("%w: spring strength and damper must not be negative", ErrInvalidTuning)
	case t.Character.Mass <= 0:
		return fmt.Errorf("%w: character.mass must be positive", ErrInvalidTuning)
	case t.Character.BaseSpeed <= 0:
		return fmt.Errorf("%w: character.base_speed must be positive", ErrInvalidTuning)
	case t.MoveSpeed.MaxMultiplier < 1:
		return fmt.Errorf("%w: move_speed.max_multiplier must be at least 1", ErrInvalidTuning)
	case t.MoveSpeed.Acceleration <= 0:
		return fmt.Errorf("%w: move_speed.acceleration must be positive", ErrInvalidTuning)
	case t.MoveSpeed.StartupDelay < 0 || t.MoveSpeed.DecelerateDelay < 0:
		return fmt.Errorf("%w: move_speed delays must not be negative", ErrInvalidTuning)
	case t.Coyote.Duration < 0:
		return fmt.Errorf("%w: coyote.duration must not be negative", ErrInvalidTuning)
	case t.Ground.MaxDistance < t.Character.RideHeight:
		return fmt.Errorf("%w: ground.max_distance %.3f is shorter than ride height %.3f",
			ErrInvalidTuning, t.Ground.MaxDistance, t.Character.RideHeight)
	case t.Input.BufferWindow <= 0:
		return fmt.Errorf("%w: input.buffer_window must be positive", ErrInvalidTuning)
	case t.Physics.FixedStep <= 0:
		return fmt.Errorf("%w: physics.fixed_step must be positive", ErrInvalidTuning)
	case t.Physics.SpaceCell <= 0 || t.Physics.SpaceWidth <= 0 || t.Physics.SpaceDepth <= 0 || t.Physics.SpaceUnit <= 0:
		return fmt.Errorf("%w: physics space dimensions must be positive", ErrInvalidTuning)
	}
	for name, clip := range t.Animation.Clips {
		if clip.Duration <= 0 {
			return fmt.Errorf("%w: clip %q has non-positive duration", ErrInvalidTuning, name)
		}
	}
	return nil
}
