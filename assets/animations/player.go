package animations

import (
	"fmt"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Player plays one clip at a time and cross-fades between clips.
type Player struct {
	clips    map[string]Clip
	current  *Animation
	previous *Animation
	blend    *gween.Tween
	weight   float64
}

func NewPlayer(clips map[string]Clip) *Player {
	return &Player{clips: clips, weight: 1}
}

// Play starts name immediately.
func (p *Player) Play(name string) error {
	return p.PlayWithBlend(name, 0)
}

// PlayWithBlend starts name and fades the current clip out over blend. The
// new clip starts with RepeatNever; callers set repeat afterwards.
func (p *Player) PlayWithBlend(name string, blend time.Duration) error {
	clip, ok := p.clips[name]
	if !ok {
		return fmt.Errorf("animations: unknown clip %q", name)
	}

	if blend > 0 && p.current != nil {
		p.previous = p.current
		p.blend = gween.New(0, 1, float32(blend.Seconds()), ease.InOutQuad)
		p.weight = 0
	} else {
		p.previous = nil
		p.blend = nil
		p.weight = 1
	}
	p.current = NewAnimation(clip, RepeatNever)
	return nil
}

func (p *Player) SetRepeat(r Repeat) {
	if p.current != nil {
		p.current.Repeat = r
	}
}

// IsFinished reports whether the current clip ran to its end. Looping clips
// never finish.
func (p *Player) IsFinished() bool {
	return p.current != nil && p.current.Finished()
}

func (p *Player) Update(dt float64) {
	if p.current == nil {
		return
	}
	p.current.Update(dt)
	if p.previous != nil {
		p.previous.Update(dt)
	}
	if p.blend != nil {
		w, done := p.blend.Update(float32(dt))
		p.weight = float64(w)
		if done {
			p.weight = 1
			p.blend = nil
			p.previous = nil
		}
	}
}

// Current returns the name of the clip playing, or "".
func (p *Player) Current() string {
	if p.current == nil {
		return ""
	}
	return p.current.Clip.Name
}

// Repeat returns the repeat mode of the current clip.
func (p *Player) Repeat() Repeat {
	if p.current == nil {
		return RepeatNever
	}
	return p.current.Repeat
}

// Weight is the blend weight of the current clip in [0, 1].
func (p *Player) Weight() float64 { return p.weight }

// Blending reports the clip being faded out, if any.
func (p *Player) Blending() (string, bool) {
	if p.previous == nil {
		return "", false
	}
	return p.previous.Clip.Name, true
}
