package morph

import (
	"slices"

	"github.com/chewxy/math32"

	"xmas-card/internal/particles"
)

const (
	// PositionEpsilon is the distance below which a coordinate snaps onto its target.
	PositionEpsilon = 0.001
	// ColorEpsilon is the snap threshold for color channels.
	ColorEpsilon = 0.01
	// Rate is the fraction of the remaining distance covered per second.
	Rate = 3.0
	// SpinRate is the decorative rotation around +Y in radians per second.
	SpinRate = 0.15
)

// Targets supplies the immutable target cloud for a shape. *particles.Library implements it.
type Targets interface {
	Get(kind particles.Shape) *particles.PointCloud
}

// Engine owns the live point cloud and moves it toward the selected target every frame.
// It is not safe for concurrent use: Tick and reads of Current must happen on the same
// goroutine (the frame loop).
type Engine struct {
	targets Targets
	kind    particles.Shape
	target  *particles.PointCloud
	current *particles.PointCloud
	elapsed float32
	dirty   bool

	// OnSizeMismatch, if set, is called when a tick is skipped because the current
	// and target buffers differ in length.
	OnSizeMismatch func(current, target int)
}

// New returns an engine whose current cloud is a copy of the target for initial.
func New(targets Targets, initial particles.Shape) *Engine {
	initial = initial.OrDefault()
	target := targets.Get(initial)
	return &Engine{
		targets: targets,
		kind:    initial,
		target:  target,
		current: target.Clone(),
	}
}

// SetTarget switches the shape the engine converges toward. The current cloud is
// left where it is, so the next ticks morph from the in-flight state.
func (e *Engine) SetTarget(kind particles.Shape) {
	kind = kind.OrDefault()
	e.kind = kind
	e.target = e.targets.Get(kind)
}

// Target returns the shape currently being chased.
func (e *Engine) Target() particles.Shape {
	return e.kind
}

// Tick advances the morph by dt seconds and reports whether any value changed.
// Each coordinate closes Rate*dt of its remaining distance (capped at all of it)
// and snaps onto the target once within epsilon.
func (e *Engine) Tick(dt float32) bool {
	if dt < 0 || math32.IsNaN(dt) {
		dt = 0
	}
	e.elapsed += dt

	cur, tgt := e.current, e.target
	if len(cur.Positions) != len(tgt.Positions) || len(cur.Colors) != len(tgt.Colors) {
		e.dirty = false
		if e.OnSizeMismatch != nil {
			e.OnSizeMismatch(len(cur.Positions), len(tgt.Positions))
		}
		return false
	}

	speed := math32.Min(Rate*dt, 1)
	dirty := approach(cur.Positions, tgt.Positions, speed, PositionEpsilon)
	if approach(cur.Colors, tgt.Colors, speed, ColorEpsilon) {
		dirty = true
	}
	e.dirty = dirty
	return dirty
}

// approach moves every value of cur toward tgt in place.
func approach(cur, tgt []float32, speed, epsilon float32) bool {
	changed := false
	for i, want := range tgt {
		have := cur[i]
		diff := want - have
		if math32.Abs(diff) > epsilon {
			cur[i] = have + diff*speed
			changed = true
		} else if have != want {
			cur[i] = want
			changed = true
		}
	}
	return changed
}

// Current returns the live cloud. Callers must treat it as read-only.
func (e *Engine) Current() *particles.PointCloud {
	return e.current
}

// Dirty reports whether the last Tick changed the current cloud.
func (e *Engine) Dirty() bool {
	return e.dirty
}

// Settled reports whether the current cloud equals its target exactly.
func (e *Engine) Settled() bool {
	return slices.Equal(e.current.Positions, e.target.Positions) && slices.Equal(e.current.Colors, e.target.Colors)
}

// Rotation returns the decorative spin angle around +Y in radians.
func (e *Engine) Rotation() float32 {
	return e.elapsed * SpinRate
}
