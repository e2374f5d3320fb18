package gridstat

import (
	"math"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/stat"

	"github.com/hupe1980/gridest/summary"
)

// Distribution summarizes a set of per-cell values.
type Distribution struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Sum    float64
}

// NewDistribution computes a Distribution over values.
// It sorts values in place; callers keep ownership but lose the order.
func NewDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}

	sort.Float64s(values)

	var sum float64
	for _, v := range values {
		sum += v
	}

	return Distribution{
		Count:  len(values),
		Min:    values[0],
		Max:    values[len(values)-1],
		Mean:   stat.Mean(values, nil),
		Median: stat.Quantile(0.5, stat.Empirical, values, nil),
		Sum:    sum,
	}
}

// Stats holds the per-grid statistics.
type Stats struct {
	// CellSize is the per-axis cell extent, CellVolume its product and
	// CellDiagonal the cell-space diagonal length.
	CellSize     [3]float64
	CellVolume   float64
	CellDiagonal float64

	TotalCells     int
	NonEmptyCells  int // cells with TouchCount > 0
	OccupancyRatio float64

	// TouchCount and CenterCount are restricted to cells where the
	// respective count is nonzero; their Sum equals the grid-wide total
	// since zero cells contribute nothing.
	TouchCount  Distribution
	CenterCount Distribution

	// AvgSize and VolRatio are restricted to cells with TouchCount > 0.
	AvgSize  Distribution
	VolRatio Distribution

	// SizeDiagonalRatio compares the mean object size against the cell
	// diagonal; objects near or above 1 span whole cells.
	SizeDiagonalRatio float64

	// GlobalAvgSize is the touch-count-weighted mean of AvgSize over
	// non-empty cells, 0 when the grid is empty. GlobalAvgVolRatio is the
	// weighted mean of VolRatio, defaulting to the identity 1 when empty.
	GlobalAvgSize     float64
	GlobalAvgVolRatio float64
}

// Analyze reduces a grid to its Stats.
func Analyze(g *summary.Grid) Stats {
	s := Stats{
		CellSize:   g.CellSize(),
		CellVolume: g.CellVolume(),
		TotalCells: len(g.Cells),
	}
	s.CellDiagonal = math.Sqrt(s.CellSize[0]*s.CellSize[0] + s.CellSize[1]*s.CellSize[1] + s.CellSize[2]*s.CellSize[2])

	touch := make([]float64, 0, len(g.Cells))
	center := make([]float64, 0, len(g.Cells))
	avgSize := make([]float64, 0, len(g.Cells))
	volRatio := make([]float64, 0, len(g.Cells))

	// Single fold for the weighted global averages.
	var weightedSize, weightedRatio, totalWeight float64

	for _, c := range g.Cells {
		if c.CenterCount > 0 {
			center = append(center, float64(c.CenterCount))
		}
		if c.TouchCount == 0 {
			continue
		}
		w := float64(c.TouchCount)
		touch = append(touch, w)
		avgSize = append(avgSize, float64(c.AvgSize))
		volRatio = append(volRatio, float64(c.VolRatio))

		weightedSize += float64(c.AvgSize) * w
		weightedRatio += float64(c.VolRatio) * w
		totalWeight += w
	}

	s.NonEmptyCells = len(touch)
	if s.TotalCells > 0 {
		s.OccupancyRatio = float64(s.NonEmptyCells) / float64(s.TotalCells)
	}

	s.TouchCount = NewDistribution(touch)
	s.CenterCount = NewDistribution(center)
	s.AvgSize = NewDistribution(avgSize)
	s.VolRatio = NewDistribution(volRatio)

	if s.CellDiagonal > 0 {
		s.SizeDiagonalRatio = s.AvgSize.Mean / s.CellDiagonal
	}

	if totalWeight > 0 {
		s.GlobalAvgSize = weightedSize / totalWeight
		s.GlobalAvgVolRatio = weightedRatio / totalWeight
	} else {
		s.GlobalAvgVolRatio = 1
	}

	return s
}

// Occupancy returns the set of flat cell indexes with TouchCount > 0.
// The estimator intersects two occupancy sets to visit only cells where
// both datasets have geometric opportunity to intersect.
func Occupancy(g *summary.Grid) *roaring.Bitmap {
	bm := roaring.New()
	for i, c := range g.Cells {
		if c.TouchCount > 0 {
			bm.Add(uint32(i))
		}
	}
	return bm
}
