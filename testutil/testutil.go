package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/gridest/summary"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// Float32Range returns a pseudo-random float32 in [minVal, maxVal).
func (r *RNG) Float32Range(minVal, maxVal float32) float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Float32()*(maxVal-minVal)
}

// GridSpec controls the shape of synthetic grids.
type GridSpec struct {
	// Resolution per axis; every axis must be >= 1.
	Resolution [3]uint32
	// MinBound and MaxBound span the grid in world space.
	MinBound summary.Vec3
	MaxBound summary.Vec3
	// Occupancy is the fraction of cells that receive objects, in [0, 1].
	Occupancy float64
	// MaxTouch bounds the per-cell touch count (counts drawn in [1, MaxTouch]).
	MaxTouch int
	// AvgSizeMin and AvgSizeMax bound the per-cell mean object size.
	AvgSizeMin float32
	AvgSizeMax float32
	// VolRatioMin and VolRatioMax bound the per-cell volume ratio.
	VolRatioMin float32
	VolRatioMax float32
}

// DefaultGridSpec is a moderately occupied 4x4x4 grid over a unit-16 cube.
func DefaultGridSpec() GridSpec {
	return GridSpec{
		Resolution:  [3]uint32{4, 4, 4},
		MaxBound:    summary.Vec3{16, 16, 16},
		Occupancy:   0.5,
		MaxTouch:    20,
		AvgSizeMin:  0.1,
		AvgSizeMax:  2,
		VolRatioMin: 0.2,
		VolRatioMax: 1,
	}
}

// RandomGrid generates a grid with randomly occupied cells per spec.
// Deterministic for a given RNG seed.
func (r *RNG) RandomGrid(spec GridSpec) *summary.Grid {
	g := &summary.Grid{
		MinBound:   spec.MinBound,
		MaxBound:   spec.MaxBound,
		Resolution: spec.Resolution,
	}
	numCells := int(spec.Resolution[0]) * int(spec.Resolution[1]) * int(spec.Resolution[2])
	g.Cells = make([]summary.Cell, numCells)

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range g.Cells {
		if r.rand.Float64() >= spec.Occupancy {
			continue
		}
		touch := uint32(1 + r.rand.Intn(spec.MaxTouch))
		center := touch / 2

		g.Cells[i] = summary.Cell{
			CenterCount: center,
			TouchCount:  touch,
			AvgSize:     spec.AvgSizeMin + r.rand.Float32()*(spec.AvgSizeMax-spec.AvgSizeMin),
			VolRatio:    spec.VolRatioMin + r.rand.Float32()*(spec.VolRatioMax-spec.VolRatioMin),
		}
	}

	return g
}

// RandomSummary generates a summary with numTriangles random triangles over
// numObjects objects and a grid per spec. Vertices fall inside the grid
// bounds so the mesh and the grid agree spatially.
func (r *RNG) RandomSummary(numObjects, numTriangles int, spec GridSpec) *summary.Summary {
	grid := r.RandomGrid(spec)

	r.mu.Lock()
	defer r.mu.Unlock()

	numVertices := numTriangles * 3
	s := &summary.Summary{
		Version:          1,
		ObjectCount:      uint64(numObjects),
		Vertices:         make([]summary.Vec3, numVertices),
		Triangles:        make([]summary.Triangle, numTriangles),
		TriangleToObject: make([]int32, numTriangles),
		Grid:             grid,
	}

	for i := range s.Vertices {
		for j := 0; j < 3; j++ {
			span := spec.MaxBound[j] - spec.MinBound[j]
			s.Vertices[i][j] = spec.MinBound[j] + r.rand.Float32()*span
		}
	}
	for i := range s.Triangles {
		base := uint32(i * 3)
		s.Triangles[i] = summary.Triangle{base, base + 1, base + 2}
		s.TriangleToObject[i] = int32(r.rand.Intn(numObjects))
	}

	return s
}
