package gridstat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gridest/summary"
)

func TestNewDistribution(t *testing.T) {
	// Odd count, so the empirical median is the middle element.
	d := NewDistribution([]float64{5, 1, 3, 2, 4})

	require.Equal(t, 5, d.Count)
	require.Equal(t, 1.0, d.Min)
	require.Equal(t, 5.0, d.Max)
	require.InDelta(t, 3.0, d.Mean, 1e-12)
	require.InDelta(t, 3.0, d.Median, 1e-12)
	require.InDelta(t, 15.0, d.Sum, 1e-12)
}

func TestNewDistribution_Empty(t *testing.T) {
	require.Equal(t, Distribution{}, NewDistribution(nil))
}

func testGrid() *summary.Grid {
	return &summary.Grid{
		MinBound:   summary.Vec3{0, 0, 0},
		MaxBound:   summary.Vec3{8, 8, 8},
		Resolution: [3]uint32{2, 2, 2},
		Cells: []summary.Cell{
			{CenterCount: 2, TouchCount: 4, AvgSize: 1.0, VolRatio: 0.5},
			{CenterCount: 0, TouchCount: 2, AvgSize: 2.0, VolRatio: 1.0},
			{CenterCount: 1, TouchCount: 0, AvgSize: 0, VolRatio: 0},
			{}, {}, {}, {}, {},
		},
	}
}

func TestAnalyze(t *testing.T) {
	s := Analyze(testGrid())

	require.Equal(t, [3]float64{4, 4, 4}, s.CellSize)
	require.InDelta(t, 64.0, s.CellVolume, 1e-9)
	require.InDelta(t, 6.928203230275509, s.CellDiagonal, 1e-9) // 4*sqrt(3)

	require.Equal(t, 8, s.TotalCells)
	require.Equal(t, 2, s.NonEmptyCells)
	require.InDelta(t, 0.25, s.OccupancyRatio, 1e-12)

	// Touch distribution over the two non-empty cells.
	require.Equal(t, 2, s.TouchCount.Count)
	require.InDelta(t, 6.0, s.TouchCount.Sum, 1e-12)
	require.InDelta(t, 3.0, s.TouchCount.Mean, 1e-12)

	// Center distribution includes cell 2, which has centers but no touches.
	require.Equal(t, 2, s.CenterCount.Count)
	require.InDelta(t, 3.0, s.CenterCount.Sum, 1e-12)

	require.Equal(t, 2, s.AvgSize.Count)
	require.InDelta(t, 1.5, s.AvgSize.Mean, 1e-12)
	require.InDelta(t, 1.5/s.CellDiagonal, s.SizeDiagonalRatio, 1e-12)

	// Weighted globals: sizes weighted by touch counts.
	// (1.0*4 + 2.0*2) / 6 and (0.5*4 + 1.0*2) / 6.
	require.InDelta(t, 8.0/6.0, s.GlobalAvgSize, 1e-12)
	require.InDelta(t, 4.0/6.0, s.GlobalAvgVolRatio, 1e-12)
}

func TestAnalyze_EmptyGrid(t *testing.T) {
	g := testGrid()
	g.Cells = make([]summary.Cell, g.NumCells())

	s := Analyze(g)

	require.Equal(t, 0, s.NonEmptyCells)
	require.Equal(t, 0.0, s.OccupancyRatio)
	require.Equal(t, 0.0, s.GlobalAvgSize)
	// The identity default keeps the shape correction neutral downstream.
	require.Equal(t, 1.0, s.GlobalAvgVolRatio)
	require.Equal(t, Distribution{}, s.TouchCount)
}

func TestOccupancy(t *testing.T) {
	bm := Occupancy(testGrid())

	require.Equal(t, uint64(2), bm.GetCardinality())
	require.True(t, bm.Contains(0))
	require.True(t, bm.Contains(1))
	require.False(t, bm.Contains(2))
}
