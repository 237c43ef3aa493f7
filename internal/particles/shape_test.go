package particles

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInvariants(t *testing.T) {
	for _, kind := range Shapes {
		t.Run(kind.String(), func(t *testing.T) {
			c := Generate(kind, NewRand(42, kind))
			require.Len(t, c.Positions, PointCount*3)
			require.Len(t, c.Colors, PointCount*3)
			assert.Equal(t, PointCount, c.Len())

			for i, v := range c.Positions {
				f := float64(v)
				if math.IsNaN(f) || math.IsInf(f, 0) {
					t.Fatalf("position component %d is %v", i, v)
				}
			}
			for i, v := range c.Colors {
				if v < 0 || v > 1 || math.IsNaN(float64(v)) {
					t.Fatalf("color channel %d out of range: %v", i, v)
				}
			}

			lo, hi := c.Bounds()
			for _, b := range []float32{lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z} {
				assert.InDelta(t, 0, b, 4, "shape should stay near the shared origin")
			}
		})
	}
}

func TestRegionsPartition(t *testing.T) {
	for _, kind := range Shapes {
		for _, n := range []int{4, 60, 1000, PointCount} {
			regions := Regions(kind, n)
			require.Len(t, regions, 3)
			next := 0
			for _, r := range regions {
				assert.Equal(t, next, r.Start, "%s/%d: %s starts off the end of the previous region", kind, n, r.Name)
				assert.GreaterOrEqual(t, r.Size(), 0)
				next = r.End
			}
			assert.Equal(t, n, next, "%s/%d: regions must cover every point", kind, n)
			assert.Equal(t, regions, Regions(kind, n))
		}
	}
}

func TestRegionsDefaultCounts(t *testing.T) {
	sizes := func(kind Shape) []int {
		var out []int
		for _, r := range Regions(kind, PointCount) {
			out = append(out, r.Size())
		}
		return out
	}
	assert.Equal(t, []int{50, 350, 2600}, sizes(Tree))
	assert.Equal(t, []int{800, 1400, 800}, sizes(Sleigh))
	assert.Equal(t, []int{2200, 400, 400}, sizes(Gift))
}

func TestGenerateDeterministic(t *testing.T) {
	for _, kind := range Shapes {
		a := Generate(kind, NewRand(7, kind))
		b := Generate(kind, NewRand(7, kind))
		assert.Equal(t, a, b, "%s: equal seeds must give equal clouds", kind)

		c := Generate(kind, NewRand(8, kind))
		assert.Equal(t, len(a.Positions), len(c.Positions))
		assert.NotEqual(t, a.Positions, c.Positions, "%s: different seeds should move points", kind)
	}
}

func TestGenerateInvalidFallsBackToTree(t *testing.T) {
	want := GenerateN(Tree, 300, NewRand(1, Tree))
	got := GenerateN(Shape(99), 300, NewRand(1, Tree))
	assert.Equal(t, want, got)

	got = GenerateN(Shape(-1), 300, NewRand(1, Tree))
	assert.Equal(t, want, got)
}

func TestTreeStarSitsOnTop(t *testing.T) {
	c := Generate(Tree, NewRand(3, Tree))
	regions := Regions(Tree, c.Len())
	star, foliage := regions[0], regions[2]

	minStar := float32(math.MaxFloat32)
	for i := star.Start; i < star.End; i++ {
		p, col := c.At(i)
		minStar = min(minStar, p.Y)
		assert.InDelta(t, 1.0, col[0], 1e-6)
		assert.InDelta(t, 215.0/255.0, col[1], 1e-6)
	}
	var meanFoliage float32
	for i := foliage.Start; i < foliage.End; i++ {
		p, col := c.At(i)
		meanFoliage += p.Y
		assert.Greater(t, col[1], col[0], "foliage should be green")
		assert.Greater(t, col[1], col[2], "foliage should be green")
	}
	meanFoliage /= float32(foliage.Size())
	assert.Greater(t, minStar, meanFoliage)
}

func TestSleighRunnersAreSilver(t *testing.T) {
	c := Generate(Sleigh, NewRand(5, Sleigh))
	runners := Regions(Sleigh, c.Len())[0]
	for i := runners.Start; i < runners.End; i++ {
		_, col := c.At(i)
		assert.InDelta(t, 192.0/255.0, col[0], 1e-6)
		assert.Equal(t, col[0], col[1])
		assert.Equal(t, col[1], col[2])
	}
}

func TestGiftBowAboveLid(t *testing.T) {
	c := Generate(Gift, NewRand(9, Gift))
	bow := Regions(Gift, c.Len())[2]
	for i := bow.Start; i < bow.End; i++ {
		p, _ := c.At(i)
		assert.Greater(t, p.Y, float32(boxSize/2), "bow point %d dipped into the box", i)
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in   string
		want Shape
		ok   bool
	}{
		{"tree", Tree, true},
		{" Sleigh ", Sleigh, true},
		{"GIFT", Gift, true},
		{"reindeer", Tree, false},
		{"", Tree, false},
	}
	for _, tt := range tests {
		got, ok := ParseShape(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
	assert.Equal(t, "unknown", Shape(12).String())
	assert.Equal(t, Tree, Shape(12).OrDefault())
}

func TestGeneratorTableComplete(t *testing.T) {
	for _, s := range Shapes {
		assert.NotNil(t, generators[s], s.String())
	}
}

func TestShapeText(t *testing.T) {
	var s Shape
	require.NoError(t, s.UnmarshalText([]byte("Sleigh")))
	assert.Equal(t, Sleigh, s)

	err := s.UnmarshalText([]byte("reindeer"))
	var unknown *UnknownShapeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "reindeer", unknown.Name)
	assert.Equal(t, Tree, s)

	text, err := Gift.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "gift", string(text))
}

func TestPaletteHex(t *testing.T) {
	r, g, b := gold.RGB255()
	assert.Equal(t, [3]uint8{0xff, 0xd7, 0x00}, [3]uint8{r, g, b})
	assert.Panics(t, func() { mustHex("gold") })
}
