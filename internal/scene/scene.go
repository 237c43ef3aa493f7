package scene

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"xmas-card/internal/morph"
	"xmas-card/internal/particles"
)

const (
	StarCount  = 3000
	StarRadius = 100
	starDepth  = 50

	// orbitRate is the angular frequency of the camera swing in radians per second.
	orbitRate = 0.05
	// orbitSway is how far (radians) the camera swings left and right of its start.
	orbitSway = 0.35

	// DefaultPointSize is the edge length of one particle cube in world units.
	DefaultPointSize = 0.05
)

var (
	cameraStart = rl.NewVector3(0, 1, 8)
	cameraLook  = rl.NewVector3(0, 0.5, 0)
)

// Star is one background star: a position on the shell and a brightness in [0,1].
type Star struct {
	Pos        rl.Vector3
	Brightness float32
}

// Scene holds the camera, the star field and the raylib copy of the particle cloud.
// Draw renders between BeginMode3D and EndMode3D.
type Scene struct {
	Camera    rl.Camera3D
	PointSize float32

	stars   []Star
	elapsed float32

	// Raylib-side copy of the engine's buffers, refreshed only when the engine is dirty.
	points []rl.Vector3
	colors []rl.Color
	synced bool
}

// New returns a scene with a perspective camera at (0,1,8), fovy 45, and a star field
// generated from seed.
func New(seed uint64) *Scene {
	s := &Scene{PointSize: DefaultPointSize}
	s.Camera.Position = cameraStart
	s.Camera.Target = cameraLook
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	s.stars = StarField(seed, StarCount, StarRadius)
	return s
}

// StarField scatters count stars uniformly over directions, at distances between radius
// and radius+starDepth. Equal seeds give equal fields.
func StarField(seed uint64, count int, radius float32) []Star {
	rng := rand.New(rand.NewPCG(seed, 0x5eed57a5))
	stars := make([]Star, count)
	for i := range stars {
		// Uniform direction: z uniform in [-1,1], angle uniform.
		z := rng.Float32()*2 - 1
		angle := rng.Float32() * 2 * math32.Pi
		ring := math32.Sqrt(1 - z*z)
		sin, cos := math32.Sincos(angle)
		r := radius + rng.Float32()*starDepth
		stars[i] = Star{
			Pos:        rl.NewVector3(ring*cos*r, z*r, ring*sin*r),
			Brightness: 0.3 + 0.7*rng.Float32(),
		}
	}
	return stars
}

// Stars returns the star field.
func (s *Scene) Stars() []Star {
	return s.stars
}

// orbitPosition returns the camera position after t seconds: a slow swing around +Y
// keeping the start distance and height.
func orbitPosition(t float32) rl.Vector3 {
	angle := orbitSway * math32.Sin(t*orbitRate)
	sin, cos := math32.Sincos(angle)
	return rl.NewVector3(cameraStart.Z*sin, cameraStart.Y, cameraStart.Z*cos)
}

// Update advances the camera orbit by dt seconds.
func (s *Scene) Update(dt float32) {
	if dt > 0 {
		s.elapsed += dt
	}
	s.Camera.Position = orbitPosition(s.elapsed)
}

// Sync copies the engine's cloud into raylib vectors and colors when the engine changed
// it in the last tick (or on first use). It reports whether a copy was made.
func (s *Scene) Sync(e *morph.Engine) bool {
	if s.synced && !e.Dirty() {
		return false
	}
	s.points, s.colors = copyCloud(s.points, s.colors, e.Current())
	s.synced = true
	return true
}

// copyCloud converts cloud into points and colors, reusing their backing arrays.
func copyCloud(points []rl.Vector3, colors []rl.Color, cloud *particles.PointCloud) ([]rl.Vector3, []rl.Color) {
	n := cloud.Len()
	points = points[:0]
	colors = colors[:0]
	for i := range n {
		p, c := cloud.At(i)
		points = append(points, rl.NewVector3(p.X, p.Y, p.Z))
		colors = append(colors, rl.NewColor(channel(c[0]), channel(c[1]), channel(c[2]), 255))
	}
	return points, colors
}

func channel(v float32) uint8 {
	return uint8(math32.Round(max(0, min(1, v)) * 255))
}

// Draw renders the star field, then the particle cloud spun by the engine's rotation
// with additive blending. Call after ClearBackground and before the 2D overlay.
func (s *Scene) Draw(e *morph.Engine) {
	s.Sync(e)
	rl.BeginMode3D(s.Camera)

	for _, st := range s.stars {
		v := uint8(st.Brightness * 255)
		rl.DrawPoint3D(st.Pos, rl.NewColor(v, v, v, 255))
	}

	rl.BeginBlendMode(rl.BlendAdditive)
	rl.PushMatrix()
	rl.Rotatef(e.Rotation()*rl.Rad2deg, 0, 1, 0)
	size := rl.NewVector3(s.PointSize, s.PointSize, s.PointSize)
	for i, p := range s.points {
		rl.DrawCubeV(p, size, s.colors[i])
	}
	rl.PopMatrix()
	rl.EndBlendMode()

	rl.EndMode3D()
}
