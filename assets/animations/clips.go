package animations

import "github.com/automoto/overworld/config"

// Clip keys requested by the animation relay.
const (
	ClipIdle         = "idle"
	ClipRun          = "run"
	ClipJump         = "jump"
	ClipRising       = "rising"
	ClipLongJump     = "long-jump"
	ClipLongJumpHeld = "long-jump-held"
	ClipDive         = "dive"
	ClipDiveHeld     = "dive-held"
)

// ClipsFromConfig builds the clip table of the configured clips.
func ClipsFromConfig(c config.AnimationConfig) map[string]Clip {
	clips := make(map[string]Clip, len(c.Clips))
	for name, clip := range c.Clips {
		clips[name] = Clip{Name: name, Duration: clip.Duration}
	}
	return clips
}
