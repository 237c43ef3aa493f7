package particles

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	gold         = mustHex("#ffd700")
	ornamentRed  = mustHex("#ff0000")
	ornamentBlue = mustHex("#0044ff")
	silver       = mustHex("#c0c0c0")
	sleighRed    = mustHex("#8b0000")
	giftRed      = mustHex("#b71c1c")

	ornamentColors = [...]colorful.Color{ornamentRed, gold, ornamentBlue}
)

// mustHex parses a palette constant; a bad literal is a programming error.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("particles: palette color " + s + ": " + err.Error())
	}
	return c
}

// jitter returns a uniform offset in [-amount/2, amount/2).
func jitter(rng *rand.Rand, amount float32) float32 {
	return (rng.Float32() - 0.5) * amount
}

// jitterVec offsets every component of p by jitter(amount).
func jitterVec(rng *rand.Rand, p Vec3, amount float32) Vec3 {
	return Vec3{
		p.X + jitter(rng, amount),
		p.Y + jitter(rng, amount),
		p.Z + jitter(rng, amount),
	}
}

// hsl converts a hue in turns [0,1) plus saturation and lightness to a color.
func hsl(hue, sat, light float64) colorful.Color {
	return colorful.Hsl(hue*360, sat, light)
}
