package particles

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Shape identifies one of the fixed target silhouettes.
type Shape int

const (
	Tree Shape = iota
	Sleigh
	Gift

	numShapes
)

// Shapes lists every valid shape in card order.
var Shapes = [numShapes]Shape{Tree, Sleigh, Gift}

var shapeNames = [numShapes]string{
	Tree:   "tree",
	Sleigh: "sleigh",
	Gift:   "gift",
}

// Valid reports whether s is one of the defined shapes.
func (s Shape) Valid() bool {
	return s >= 0 && s < numShapes
}

// OrDefault returns s, or Tree when s is not a defined shape.
func (s Shape) OrDefault() Shape {
	if !s.Valid() {
		return Tree
	}
	return s
}

func (s Shape) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return shapeNames[s]
}

// ParseShape maps a case-insensitive name to a Shape. Unknown names return Tree and false.
func ParseShape(name string) (Shape, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range shapeNames {
		if n == name {
			return Shape(s), true
		}
	}
	return Tree, false
}

// UnknownShapeError is returned by UnmarshalText for a name that is not a shape.
type UnknownShapeError struct {
	Name string
}

func (e *UnknownShapeError) Error() string {
	return fmt.Sprintf("unknown shape %q", e.Name)
}

// MarshalText encodes s by name. Invalid shapes encode as the Tree.
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.OrDefault().String()), nil
}

// UnmarshalText decodes a shape name. An unknown name sets s to Tree and
// returns an *UnknownShapeError.
func (s *Shape) UnmarshalText(text []byte) error {
	kind, ok := ParseShape(string(text))
	*s = kind
	if !ok {
		return &UnknownShapeError{Name: string(text)}
	}
	return nil
}

// Region is a contiguous index range [Start, End) of a cloud that forms one visual part.
type Region struct {
	Name       string
	Start, End int
}

// Size returns the number of points in the region.
func (r Region) Size() int {
	return r.End - r.Start
}

// Regions returns the partition of n points used by the generator for kind.
// Regions are contiguous, ordered, and cover [0, n) exactly.
func Regions(kind Shape, n int) []Region {
	switch kind.OrDefault() {
	case Sleigh:
		runners, body := n*4/15, n*11/15
		return []Region{
			{Name: "runners", Start: 0, End: runners},
			{Name: "body", Start: runners, End: body},
			{Name: "cargo", Start: body, End: n},
		}
	case Gift:
		box, ribbon := n*11/15, n*13/15
		return []Region{
			{Name: "box", Start: 0, End: box},
			{Name: "ribbon", Start: box, End: ribbon},
			{Name: "bow", Start: ribbon, End: n},
		}
	default:
		star, ornaments := n/60, n*2/15
		return []Region{
			{Name: "star", Start: 0, End: star},
			{Name: "ornaments", Start: star, End: ornaments},
			{Name: "foliage", Start: ornaments, End: n},
		}
	}
}

// generatorFunc fills every point of c for one shape, drawing randomness only from rng.
type generatorFunc func(c *PointCloud, regions []Region, rng *rand.Rand)

var generators = [numShapes]generatorFunc{
	Tree:   generateTree,
	Sleigh: generateSleigh,
	Gift:   generateGift,
}

// Generate builds the PointCount-point cloud for kind. Invalid kinds build a Tree.
func Generate(kind Shape, rng *rand.Rand) *PointCloud {
	return GenerateN(kind, PointCount, rng)
}

// GenerateN builds a cloud of n points for kind. Equal rng state gives equal output.
func GenerateN(kind Shape, n int, rng *rand.Rand) *PointCloud {
	kind = kind.OrDefault()
	c := NewPointCloud(n)
	generators[kind](c, Regions(kind, n), rng)
	return c
}

// NewRand returns the seeded source used for one shape. Each shape gets its own
// stream so generation order does not change the result.
func NewRand(seed uint64, kind Shape) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(kind.OrDefault())+1))
}
