package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseOverridesOnlyGivenKeys(t *testing.T) {
	base := Defaults()
	data := []byte(`
character:
  jump_strength: 12
move_speed:
  acceleration: 5
camera:
  start_mode: follow
animation:
  clips:
    idle:
      duration: 3
`)

	got, err := Parse(data, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Character.JumpStrength != 12 {
		t.Errorf("expected jump strength 12, got %v", got.Character.JumpStrength)
	}
	if got.Character.RideHeight != base.Character.RideHeight {
		t.Errorf("expected ride height to stay %v, got %v", base.Character.RideHeight, got.Character.RideHeight)
	}
	if got.MoveSpeed.Acceleration != 5 {
		t.Errorf("expected acceleration 5, got %v", got.MoveSpeed.Acceleration)
	}
	if got.Camera.StartMode != CameraFollow {
		t.Errorf("expected follow camera, got %v", got.Camera.StartMode)
	}
	if got.Animation.Clips["idle"].Duration != 3 {
		t.Errorf("expected idle duration 3, got %v", got.Animation.Clips["idle"].Duration)
	}
	if got.Animation.Clips["run"].Duration != base.Animation.Clips["run"].Duration {
		t.Errorf("expected run clip to be kept")
	}
	if base.Animation.Clips["idle"].Duration == 3 {
		t.Errorf("base clips were modified through an alias")
	}
}

func TestParseRejectsInvalidTuning(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"zero_ride_height", "character:\n  ride_height: 0\n"},
		{"negative_damper", "character:\n  spring_damper: -1\n"},
		{"short_ground_cast", "ground:\n  max_distance: 0.5\n"},
		{"max_below_base", "move_speed:\n  max_multiplier: 0.5\n"},
		{"zero_buffer", "input:\n  buffer_window: 0\n"},
		{"bad_camera_mode", "camera:\n  start_mode: orbit\n"},
		{"bad_clip", "animation:\n  clips:\n    run:\n      duration: 0\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.yaml), Defaults())
			if !errors.Is(err, ErrInvalidTuning) {
				t.Errorf("expected ErrInvalidTuning, got %v", err)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), Defaults())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a wrapped not-exist error, got %v", err)
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("coyote:\n  duration: 0.2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path, Defaults())
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	// Replace the file atomically so the reload never sees a truncated file.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte("coyote:\n  duration: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Tunings:
		if got.Coyote.Duration != 0.5 {
			t.Errorf("expected coyote duration 0.5, got %v", got.Coyote.Duration)
		}
	case err := <-w.Errors:
		t.Fatalf("unexpected watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}
