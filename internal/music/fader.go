package music

import (
	"math"
	"time"
)

const (
	// FadeStep is the volume change applied every FadeInterval.
	FadeStep = 0.05
	// MaxVolume is the level a fade-in stops at.
	MaxVolume = 0.4
	// FadeInterval is how often the fade advances by one step.
	FadeInterval = 100 * time.Millisecond
)

// maxLevel is MaxVolume expressed in fade steps.
const maxLevel = int(MaxVolume / FadeStep)

// Fader ramps a linear volume toward 0 or MaxVolume in fixed steps.
// Volume is tracked as a whole number of steps so ramps land exactly on their ends.
// It is driven by elapsed frame time rather than a timer goroutine.
type Fader struct {
	level  int
	target int
	acc    time.Duration
}

// FadeIn starts ramping up to MaxVolume from the current volume.
func (f *Fader) FadeIn() {
	f.target = maxLevel
	f.acc = 0
}

// FadeOut starts ramping down to silence.
func (f *Fader) FadeOut() {
	f.target = 0
	f.acc = 0
}

// Reset jumps to the step nearest volume v and stops any fade.
func (f *Fader) Reset(v float64) {
	f.level = min(max(int(math.Round(v/FadeStep)), 0), maxLevel)
	f.target = f.level
	f.acc = 0
}

// Volume returns the current linear volume in [0, MaxVolume].
func (f *Fader) Volume() float64 {
	return float64(f.level) * FadeStep
}

// Rising reports whether the fader is heading up (or holding above silence).
func (f *Fader) Rising() bool {
	return f.target > 0
}

// Fading reports whether the volume has not yet reached its target.
func (f *Fader) Fading() bool {
	return f.level != f.target
}

// Update advances the fade by dt and reports whether the volume changed.
func (f *Fader) Update(dt time.Duration) bool {
	if !f.Fading() {
		f.acc = 0
		return false
	}
	f.acc += dt
	changed := false
	for f.acc >= FadeInterval && f.Fading() {
		f.acc -= FadeInterval
		if f.level < f.target {
			f.level++
		} else {
			f.level--
		}
		changed = true
	}
	return changed
}
