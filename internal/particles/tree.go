package particles

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

const (
	treeScale      = 0.75
	treeBaseRadius = 3.0
	treeHeight     = 6.0
	treeBaseY      = -2.5
	// treeSpiralTurns is the angle multiplier (in half turns) of the foliage sweep.
	treeSpiralTurns = 50
	treeStarRadius  = 0.3
	treeStarY       = 3.5
)

// coneAt returns the point at height parameter t (0 base, 1 apex) and angle on a
// cone whose radius shrinks linearly to the apex, scaled by radiusFrac.
func coneAt(t, angle, radiusFrac float32) Vec3 {
	r := (1 - t) * treeBaseRadius * treeScale * radiusFrac
	s, c := math32.Sincos(angle)
	return Vec3{r * c, (t*treeHeight + treeBaseY) * treeScale, r * s}
}

func generateTree(c *PointCloud, regions []Region, rng *rand.Rand) {
	star, ornaments, foliage := regions[0], regions[1], regions[2]

	for i := star.Start; i < star.End; i++ {
		r := rng.Float32() * treeStarRadius * treeScale
		theta := rng.Float32() * 2 * math32.Pi
		phi := rng.Float32() * math32.Pi
		sinPhi, cosPhi := math32.Sincos(phi)
		p := Vec3{
			r * sinPhi * math32.Cos(theta),
			treeStarY*treeScale + r*cosPhi,
			r * sinPhi * math32.Sin(theta),
		}
		c.Set(i, p, gold)
	}

	for i := ornaments.Start; i < ornaments.End; i++ {
		t := rng.Float32()
		angle := rng.Float32() * 2 * math32.Pi
		p := jitterVec(rng, coneAt(t, angle, 1), 0.2)
		c.Set(i, p, ornamentColors[rng.IntN(len(ornamentColors))])
	}

	for i := foliage.Start; i < foliage.End; i++ {
		t := rng.Float32()
		angle := t*math32.Pi*treeSpiralTurns + rng.Float32()*0.5
		// sqrt keeps the fill uniform over the disc instead of piling up at the axis.
		p := jitterVec(rng, coneAt(t, angle, math32.Sqrt(rng.Float32())), 0.15)
		col := hsl(0.3+rng.Float64()*0.05, 0.8, 0.2+rng.Float64()*0.4)
		c.Set(i, p, col)
	}
}
