package particles

import (
	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// PointCount is the number of points in every shape. All clouds share it so the
// morph buffers can be swapped and interpolated without reallocation.
const PointCount = 3000

// PointCloud is a fixed-size set of colored 3D points stored as flat buffers.
// Positions[3i..3i+2] is x,y,z of point i; Colors[3i..3i+2] is its r,g,b in [0,1].
type PointCloud struct {
	Positions []float32
	Colors    []float32
}

// NewPointCloud returns a zeroed cloud holding n points.
func NewPointCloud(n int) *PointCloud {
	if n < 0 {
		n = 0
	}
	return &PointCloud{
		Positions: make([]float32, n*3),
		Colors:    make([]float32, n*3),
	}
}

// Len returns the number of points.
func (c *PointCloud) Len() int {
	return len(c.Positions) / 3
}

// Clone returns a deep copy; the morph engine starts from a clone of its first target.
func (c *PointCloud) Clone() *PointCloud {
	out := &PointCloud{
		Positions: make([]float32, len(c.Positions)),
		Colors:    make([]float32, len(c.Colors)),
	}
	copy(out.Positions, c.Positions)
	copy(out.Colors, c.Colors)
	return out
}

// Set writes point i. The color is clamped into the displayable range.
func (c *PointCloud) Set(i int, p Vec3, col colorful.Color) {
	col = col.Clamped()
	j := i * 3
	c.Positions[j], c.Positions[j+1], c.Positions[j+2] = p.X, p.Y, p.Z
	c.Colors[j], c.Colors[j+1], c.Colors[j+2] = float32(col.R), float32(col.G), float32(col.B)
}

// At returns the position and color of point i.
func (c *PointCloud) At(i int) (Vec3, [3]float32) {
	j := i * 3
	return Vec3{c.Positions[j], c.Positions[j+1], c.Positions[j+2]},
		[3]float32{c.Colors[j], c.Colors[j+1], c.Colors[j+2]}
}

// Bounds returns the axis-aligned min and max corners of all positions.
func (c *PointCloud) Bounds() (lo, hi Vec3) {
	if c.Len() == 0 {
		return
	}
	lo, _ = c.At(0)
	hi = lo
	for i := 1; i < c.Len(); i++ {
		p, _ := c.At(i)
		lo = Vec3{math32.Min(lo.X, p.X), math32.Min(lo.Y, p.Y), math32.Min(lo.Z, p.Z)}
		hi = Vec3{math32.Max(hi.X, p.X), math32.Max(hi.Y, p.Y), math32.Max(hi.Z, p.Z)}
	}
	return lo, hi
}

// Vec3 is a plain 3D vector used while building shapes.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v*s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// RotateX rotates v by angle radians about the X axis (right-handed).
func (v Vec3) RotateX(angle float32) Vec3 {
	s, c := math32.Sincos(angle)
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

// RotateY rotates v by angle radians about the Y axis (right-handed).
func (v Vec3) RotateY(angle float32) Vec3 {
	s, c := math32.Sincos(angle)
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}
