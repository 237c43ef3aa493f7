package particles

import "sync"

// Library maps shapes to their precomputed target clouds. Each cloud is generated
// on first request and never modified afterwards, so callers may share it freely
// but must not write to it.
type Library struct {
	seed   uint64
	n      int
	once   [numShapes]sync.Once
	clouds [numShapes]*PointCloud
}

// NewLibrary returns an empty library of PointCount-point clouds generated from seed.
func NewLibrary(seed uint64) *Library {
	return NewLibraryN(seed, PointCount)
}

// NewLibraryN is NewLibrary with a custom point count (small counts are handy in tests).
func NewLibraryN(seed uint64, n int) *Library {
	return &Library{seed: seed, n: n}
}

// Get returns the target cloud for kind, generating it once. Invalid kinds return the Tree.
func (l *Library) Get(kind Shape) *PointCloud {
	kind = kind.OrDefault()
	l.once[kind].Do(func() {
		l.clouds[kind] = GenerateN(kind, l.n, NewRand(l.seed, kind))
	})
	return l.clouds[kind]
}

// Warm generates every shape up front so the first card change does not stall a frame.
func (l *Library) Warm() {
	for _, s := range Shapes {
		l.Get(s)
	}
}

// Seed returns the seed the library was built with.
func (l *Library) Seed() uint64 {
	return l.seed
}
