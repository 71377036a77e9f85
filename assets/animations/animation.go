package animations

// Repeat controls what a clip does when it reaches its end.
type Repeat int

const (
	RepeatNever Repeat = iota
	RepeatForever
)

// Clip is a named animation of fixed length.
type Clip struct {
	Name     string
	Duration float64 // seconds
}

// Animation is one clip being played.
type Animation struct {
	Clip   Clip
	Repeat Repeat
	Looped bool // Set once the clip has wrapped at least once

	time     float64
	finished bool
}

func NewAnimation(clip Clip, repeat Repeat) *Animation {
	return &Animation{Clip: clip, Repeat: repeat}
}

func (a *Animation) Update(dt float64) {
	if a.finished || a.Clip.Duration <= 0 {
		a.finished = a.Repeat == RepeatNever
		return
	}
	a.time += dt
	for a.time >= a.Clip.Duration {
		if a.Repeat == RepeatNever {
			// Stay on last frame
			a.time = a.Clip.Duration
			a.finished = true
			return
		}
		a.time -= a.Clip.Duration
		a.Looped = true
	}
}

// Progress is the normalised position in the clip.
func (a *Animation) Progress() float64 {
	if a.Clip.Duration <= 0 {
		return 1
	}
	return a.time / a.Clip.Duration
}

func (a *Animation) Finished() bool { return a.finished }

func (a *Animation) Restart() {
	a.time = 0
	a.finished = false
	a.Looped = false
}
