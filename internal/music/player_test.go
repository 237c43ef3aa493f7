package music

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
)

// silentPlayer builds a Player around an endless silent stream without opening a device.
func silentPlayer() *Player {
	silence := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		clear(samples)
		return len(samples), true
	})
	gain := &linearGain{streamer: silence}
	return &Player{gain: gain, ctrl: &beep.Ctrl{Streamer: gain, Paused: true}}
}

func TestToggleBeforeFirstStepPauses(t *testing.T) {
	p := silentPlayer()
	p.Start()
	assert.True(t, p.Playing())

	p.Toggle()
	assert.False(t, p.Playing(), "a silent track pauses at once")

	p.Toggle()
	assert.True(t, p.Playing())
	p.Update(FadeInterval)
	assert.InDelta(t, FadeStep, p.Volume(), 1e-9)
}

func TestToggleFadesOutThenPauses(t *testing.T) {
	p := silentPlayer()
	p.Start()
	p.Update(time.Second)
	assert.InDelta(t, MaxVolume, p.Volume(), 1e-9)

	p.Toggle()
	assert.True(t, p.Playing(), "keeps playing while fading out")
	p.Update(time.Second)
	assert.Zero(t, p.Volume())
	assert.False(t, p.Playing())
}
