package particles

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

const (
	sleighScale = 0.9
	// sleighTilt pitches the finished sleigh toward the camera.
	sleighTilt = -math32.Pi / 6

	runnerOffset = 0.8
	runnerLength = 4.0
	runnerY      = -1.5
	runnerCurlZ  = 1.0

	bodyLength = 3.0
	bodyRadius = 0.9
	bodyY      = -0.8
	bodyBackZ  = -1.0
)

func generateSleigh(c *PointCloud, regions []Region, rng *rand.Rand) {
	runners, body, cargo := regions[0], regions[1], regions[2]

	for i := runners.Start; i < runners.End; i++ {
		k := i - runners.Start
		side := float32(1)
		if k%2 == 1 {
			side = -1
		}
		t := float32(k) / float32(runners.Size())
		z := (t - 0.5) * runnerLength
		y := float32(runnerY)
		if z > runnerCurlZ {
			d := z - runnerCurlZ
			y += d * d * 0.5
		}
		p := jitterVec(rng, Vec3{side * runnerOffset, y, z}, 0.08)
		c.Set(i, tiltSleigh(p), silver)
	}

	for i := body.Start; i < body.End; i++ {
		z := (rng.Float32() - 0.5) * bodyLength
		angle := (rng.Float32() - 0.5) * math32.Pi
		y := float32(bodyY)
		if z < bodyBackZ {
			y += (bodyBackZ - z) * 0.5
		}
		s, co := math32.Sincos(angle)
		p := jitterVec(rng, Vec3{s * bodyRadius, co*bodyRadius*0.6 + y, z}, 0.1)
		c.Set(i, tiltSleigh(p), sleighRed)
	}

	for i := cargo.Start; i < cargo.End; i++ {
		p := Vec3{
			(rng.Float32() - 0.5) * 1.2,
			-1.0 + rng.Float32()*0.5,
			(rng.Float32() - 0.5) * 2.0,
		}
		c.Set(i, tiltSleigh(p), hsl(rng.Float64(), 0.8, 0.5))
	}
}

func tiltSleigh(p Vec3) Vec3 {
	return p.RotateX(sleighTilt).Scale(sleighScale)
}
