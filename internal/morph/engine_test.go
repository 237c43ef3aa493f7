package morph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xmas-card/internal/particles"
)

// fixedTargets serves hand-built clouds by shape.
type fixedTargets map[particles.Shape]*particles.PointCloud

func (f fixedTargets) Get(kind particles.Shape) *particles.PointCloud {
	if c, ok := f[kind]; ok {
		return c
	}
	return f[particles.Tree]
}

func filled(n int, pos, col [3]float32) *particles.PointCloud {
	c := particles.NewPointCloud(n)
	for i := 0; i < n; i++ {
		copy(c.Positions[i*3:], pos[:])
		copy(c.Colors[i*3:], col[:])
	}
	return c
}

// halfStep is the dt that makes speed exactly 0.5.
const halfStep = float32(1.0 / 6.0)

func TestTickHalvesDistance(t *testing.T) {
	targets := fixedTargets{
		particles.Tree: filled(4, [3]float32{0, 0, 0}, [3]float32{0, 0, 0}),
		particles.Gift: filled(4, [3]float32{10, 0, 0}, [3]float32{0, 0, 0}),
	}
	e := New(targets, particles.Tree)
	e.SetTarget(particles.Gift)

	assert.True(t, e.Tick(halfStep))
	assert.InDelta(t, 5, e.Current().Positions[0], 1e-5)
	assert.True(t, e.Tick(halfStep))
	assert.InDelta(t, 7.5, e.Current().Positions[0], 1e-5)

	for i := 0; i < 100; i++ {
		e.Tick(halfStep)
		for p := 0; p < 4; p++ {
			assert.LessOrEqual(t, e.Current().Positions[p*3], float32(10), "overshoot at tick %d", i)
		}
	}
	assert.Equal(t, float32(10), e.Current().Positions[0])
}

func TestTickConvergesToFixedPoint(t *testing.T) {
	lib := particles.NewLibraryN(1, 500)
	e := New(lib, particles.Tree)
	e.SetTarget(particles.Sleigh)

	const dt = float32(1.0 / 60.0)
	ticks := 0
	for e.Tick(dt) {
		ticks++
		require.Less(t, ticks, 2000, "morph never settled")
	}
	assert.True(t, e.Settled())
	assert.Equal(t, lib.Get(particles.Sleigh).Positions, e.Current().Positions)
	assert.Equal(t, lib.Get(particles.Sleigh).Colors, e.Current().Colors)

	assert.False(t, e.Tick(dt))
	assert.False(t, e.Dirty())
}

func TestRetargetMidMorphIsContinuous(t *testing.T) {
	lib := particles.NewLibraryN(2, 200)
	e := New(lib, particles.Tree)
	e.SetTarget(particles.Gift)
	for i := 0; i < 10; i++ {
		e.Tick(1.0 / 60.0)
	}
	before := e.Current().Clone()

	e.SetTarget(particles.Sleigh)
	assert.Equal(t, particles.Sleigh, e.Target())
	assert.Equal(t, before, e.Current(), "SetTarget must not move the cloud")

	dt := float32(1.0 / 60.0)
	e.Tick(dt)
	sleigh := lib.Get(particles.Sleigh)
	speed := Rate * dt
	for i, v := range e.Current().Positions {
		prev := before.Positions[i]
		maxStep := max(abs(sleigh.Positions[i]-prev)*speed, PositionEpsilon) + 1e-5
		assert.LessOrEqual(t, abs(v-prev), maxStep, "coordinate %d jumped", i)
	}
}

func TestEpsilonSnap(t *testing.T) {
	targets := fixedTargets{
		particles.Tree: filled(1, [3]float32{1, 1, 1}, [3]float32{0.5, 0.5, 0.5}),
		particles.Gift: filled(1, [3]float32{1.0005, 1, 1}, [3]float32{0.5, 0.5, 0.5}),
	}
	e := New(targets, particles.Tree)
	e.SetTarget(particles.Gift)

	e.Tick(halfStep)
	assert.Equal(t, float32(1.0005), e.Current().Positions[0], "sub-epsilon difference snaps exactly")
	assert.False(t, e.Tick(halfStep), "snapped coordinate must not keep the cloud dirty")
	assert.True(t, e.Settled())
}

func TestColorEpsilonIsLooser(t *testing.T) {
	targets := fixedTargets{
		particles.Tree: filled(1, [3]float32{0, 0, 0}, [3]float32{0.5, 0.5, 0.5}),
		particles.Gift: filled(1, [3]float32{0, 0, 0}, [3]float32{0.508, 0.5, 0.5}),
	}
	e := New(targets, particles.Tree)
	e.SetTarget(particles.Gift)
	e.Tick(0.001)
	assert.Equal(t, float32(0.508), e.Current().Colors[0])
}

func TestSizeMismatchIsNoOp(t *testing.T) {
	targets := fixedTargets{
		particles.Tree: filled(4, [3]float32{0, 0, 0}, [3]float32{0, 0, 0}),
		particles.Gift: filled(3, [3]float32{10, 10, 10}, [3]float32{1, 1, 1}),
	}
	e := New(targets, particles.Tree)
	var gotCur, gotTgt int
	e.OnSizeMismatch = func(cur, tgt int) { gotCur, gotTgt = cur, tgt }
	e.SetTarget(particles.Gift)

	before := e.Current().Clone()
	assert.False(t, e.Tick(0.1))
	assert.Equal(t, before, e.Current())
	assert.Equal(t, 12, gotCur)
	assert.Equal(t, 9, gotTgt)
}

func TestLongFrameDoesNotOvershoot(t *testing.T) {
	targets := fixedTargets{
		particles.Tree: filled(2, [3]float32{0, 0, 0}, [3]float32{0, 0, 0}),
		particles.Gift: filled(2, [3]float32{4, -4, 2}, [3]float32{1, 1, 1}),
	}
	e := New(targets, particles.Tree)
	e.SetTarget(particles.Gift)
	e.Tick(2)
	assert.True(t, e.Settled())
	assert.False(t, e.Tick(-1))
}

func TestInvalidTargetFallsBackToTree(t *testing.T) {
	lib := particles.NewLibraryN(4, 60)
	e := New(lib, particles.Shape(-3))
	assert.Equal(t, particles.Tree, e.Target())
	assert.Equal(t, lib.Get(particles.Tree), e.Current())

	e.SetTarget(particles.Gift)
	e.SetTarget(particles.Shape(17))
	assert.Equal(t, particles.Tree, e.Target())
}

func TestRotationFollowsElapsedTime(t *testing.T) {
	e := New(particles.NewLibraryN(1, 30), particles.Tree)
	assert.Zero(t, e.Rotation())
	for i := 0; i < 10; i++ {
		e.Tick(0.5)
	}
	assert.InDelta(t, 5*SpinRate, e.Rotation(), 1e-5)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
