package particles

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

const (
	boxSize      = 2.0
	boxThickness = 0.1
	ribbonWidth  = 0.5
	ribbonLift   = 0.05
	bowScale     = 0.8
	bowLift      = 0.2
	bowArch      = 0.3
)

func generateGift(c *PointCloud, regions []Region, rng *rand.Rand) {
	box, ribbon, bow := regions[0], regions[1], regions[2]
	const half = boxSize / 2

	span := func() float32 { return (rng.Float32() - 0.5) * boxSize }

	for i := box.Start; i < box.End; i++ {
		u, v := span(), span()
		// Points sit slightly inside each face to give the shell some thickness.
		face := half - rng.Float32()*boxThickness
		var p Vec3
		switch rng.IntN(6) {
		case 0:
			p = Vec3{face, u, v}
		case 1:
			p = Vec3{-face, u, v}
		case 2:
			p = Vec3{u, face, v}
		case 3:
			p = Vec3{u, -face, v}
		case 4:
			p = Vec3{u, v, face}
		default:
			p = Vec3{u, v, -face}
		}
		c.Set(i, jitterVec(rng, p, 0.05), giftRed)
	}

	const outer = half + ribbonLift
	for i := ribbon.Start; i < ribbon.End; i++ {
		band := (rng.Float32() - 0.5) * ribbonWidth
		along := span()
		var p Vec3
		if (i-ribbon.Start)%2 == 0 {
			// Band in the YZ plane: over the lid, down the front and back.
			switch rng.IntN(3) {
			case 0:
				p = Vec3{band, outer, along}
			case 1:
				p = Vec3{band, along, outer}
			default:
				p = Vec3{band, along, -outer}
			}
		} else {
			// Band in the XY plane: over the lid, down both sides.
			switch rng.IntN(3) {
			case 0:
				p = Vec3{along, outer, band}
			case 1:
				p = Vec3{outer, along, band}
			default:
				p = Vec3{-outer, along, band}
			}
		}
		c.Set(i, jitterVec(rng, p, 0.02), gold)
	}

	for i := bow.Start; i < bow.End; i++ {
		t := rng.Float32() * 2 * math32.Pi
		// r = sin 2t traces four petals in the XZ plane.
		r := math32.Sin(2*t) * bowScale
		s, co := math32.Sincos(t)
		p := Vec3{r * co, half + bowLift + math32.Abs(r)*bowArch, r * s}
		c.Set(i, jitterVec(rng, p, 0.15), gold)
	}
}
