package music

import (
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
)

// Player loops one MP3 forever behind a linear gain stage.
// Start, Toggle and Update must be called from the frame loop; the speaker
// goroutine only reads the gain under speaker.Lock.
type Player struct {
	stream beep.StreamSeekCloser
	ctrl   *beep.Ctrl
	gain   *linearGain
	fader  Fader
}

// Open decodes the MP3 at path, initializes the speaker for its sample rate and
// queues the looped stream paused and silent.
func Open(path string) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open music: %w", err)
	}
	stream, format, err := mp3.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(100*time.Millisecond)); err != nil {
		_ = stream.Close()
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	gain := &linearGain{streamer: beep.Loop(-1, stream)}
	p := &Player{
		stream: stream,
		gain:   gain,
		ctrl:   &beep.Ctrl{Streamer: gain, Paused: true},
	}
	speaker.Play(p.ctrl)
	return p, nil
}

// Start begins playback from silence and fades in.
func (p *Player) Start() {
	speaker.Lock()
	if p.ctrl.Paused {
		p.fader.Reset(0)
		p.gain.volume = 0
		p.ctrl.Paused = false
	}
	speaker.Unlock()
	p.fader.FadeIn()
}

// Toggle fades out (then pauses) a playing track, or resumes and fades in a paused one.
func (p *Player) Toggle() {
	if p.Playing() && p.fader.Rising() {
		p.fader.FadeOut()
		if p.fader.Volume() == 0 {
			// Still silent: no fade step will come to pause the stream.
			speaker.Lock()
			p.ctrl.Paused = true
			speaker.Unlock()
		}
		return
	}
	p.Start()
}

// Playing reports whether the stream is unpaused.
func (p *Player) Playing() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return !p.ctrl.Paused
}

// Volume returns the current linear volume.
func (p *Player) Volume() float64 {
	return p.fader.Volume()
}

// Update advances any running fade by dt and pauses once a fade-out reaches silence.
func (p *Player) Update(dt time.Duration) {
	if !p.fader.Update(dt) {
		return
	}
	v := p.fader.Volume()
	speaker.Lock()
	p.gain.volume = v
	if v == 0 && !p.fader.Rising() {
		p.ctrl.Paused = true
	}
	speaker.Unlock()
}

// Close stops playback and releases the decoder.
func (p *Player) Close() error {
	speaker.Clear()
	return p.stream.Close()
}

// linearGain multiplies every sample by volume.
type linearGain struct {
	streamer beep.Streamer
	volume   float64
}

func (g *linearGain) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = g.streamer.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] *= g.volume
		samples[i][1] *= g.volume
	}
	return n, ok
}

func (g *linearGain) Err() error {
	return g.streamer.Err()
}
