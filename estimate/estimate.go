package estimate

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/gridest/gridstat"
	"github.com/hupe1980/gridest/summary"
)

const (
	// DefaultGamma is the shape-correction exponent.
	DefaultGamma = 0.8
	// DefaultEpsilon keeps the probability term alive when both cell
	// averages are zero.
	DefaultEpsilon = 0.001
)

// Options tunes the estimator. Non-positive Gamma or Epsilon fall back to
// the defaults.
type Options struct {
	Gamma   float64
	Epsilon float64

	// CollectProbStats additionally records the distribution of clamped
	// per-cell probabilities in Report.ProbStats.
	CollectProbStats bool
}

// DefaultOptions returns the estimator defaults.
func DefaultOptions() Options {
	return Options{Gamma: DefaultGamma, Epsilon: DefaultEpsilon}
}

// Report is the estimation result plus its diagnostic breakdown.
type Report struct {
	// RawEstimate is the uncorrected per-cell accumulation and
	// FinalEstimate is RawEstimate / Alpha. Alpha >= 1 always, so
	// FinalEstimate <= RawEstimate.
	RawEstimate   float64
	Alpha         float64
	FinalEstimate float64

	GlobalAvgSizeA     float64
	GlobalAvgSizeB     float64
	GlobalAvgVolRatioA float64
	GlobalAvgVolRatioB float64
	EffectiveSizeA     float64
	EffectiveSizeB     float64
	CellVolume         float64

	// Occupancy breakdown of the two grids.
	CoOccupiedCells uint64
	OnlyACells      uint64
	OnlyBCells      uint64

	// SaturatedCells counts co-occupied cells whose probability clamped
	// at 1 (the Minkowski cube filled the whole cell).
	SaturatedCells uint64

	// ProbStats is the distribution of clamped per-cell probabilities
	// over co-occupied cells, set only with Options.CollectProbStats.
	ProbStats *gridstat.Distribution
}

// Estimate predicts how many object pairs from a and b have intersecting
// bounding volumes.
//
// Both summaries must carry a grid with the same cell count. Dataset A's
// grid geometry is the reference frame: cell volume is derived from A's
// bounds and resolution, and cells are compared index-for-index.
func Estimate(a, b *summary.Summary, opts Options) (*Report, error) {
	if opts.Gamma <= 0 {
		opts.Gamma = DefaultGamma
	}
	if opts.Epsilon <= 0 {
		opts.Epsilon = DefaultEpsilon
	}

	if !a.HasGrid() {
		return nil, &MissingGridError{Dataset: "A"}
	}
	if !b.HasGrid() {
		return nil, &MissingGridError{Dataset: "B"}
	}

	ga, gb := a.Grid, b.Grid
	if len(ga.Cells) != len(gb.Cells) {
		return nil, &CellCountMismatchError{CellsA: len(ga.Cells), CellsB: len(gb.Cells)}
	}

	cellVolume := ga.CellVolume()
	if !(cellVolume > 0) {
		return nil, &DegenerateCellVolumeError{CellVolume: cellVolume}
	}

	occA := gridstat.Occupancy(ga)
	occB := gridstat.Occupancy(gb)
	co := roaring.And(occA, occB)

	r := &Report{
		CellVolume:      cellVolume,
		CoOccupiedCells: co.GetCardinality(),
		OnlyACells:      occA.GetCardinality() - co.GetCardinality(),
		OnlyBCells:      occB.GetCardinality() - co.GetCardinality(),
	}

	var probs []float64
	if opts.CollectProbStats {
		probs = make([]float64, 0, r.CoOccupiedCells)
	}

	// Per-cell pass, ascending flat index.
	it := co.Iterator()
	for it.HasNext() {
		i := it.Next()
		ca, cb := ga.Cells[i], gb.Cells[i]

		combined := float64(ca.AvgSize) + float64(cb.AvgSize) + opts.Epsilon
		prob := combined * combined * combined / cellVolume

		shape := math.Pow(math.Sqrt(float64(ca.VolRatio)*float64(cb.VolRatio)), opts.Gamma)
		prob *= shape
		if prob >= 1 {
			prob = 1
			r.SaturatedCells++
		}

		r.RawEstimate += float64(ca.TouchCount) * float64(cb.TouchCount) * prob

		if probs != nil {
			probs = append(probs, prob)
		}
	}

	// Global replication correction: objects spanning several cells are
	// counted once per shared cell above, so divide by the expected
	// footprint span of a typical pair.
	statsA := gridstat.Analyze(ga)
	statsB := gridstat.Analyze(gb)

	r.GlobalAvgSizeA = statsA.GlobalAvgSize
	r.GlobalAvgSizeB = statsB.GlobalAvgSize
	r.GlobalAvgVolRatioA = statsA.GlobalAvgVolRatio
	r.GlobalAvgVolRatioB = statsB.GlobalAvgVolRatio
	r.EffectiveSizeA = statsA.GlobalAvgSize * math.Cbrt(statsA.GlobalAvgVolRatio)
	r.EffectiveSizeB = statsB.GlobalAvgSize * math.Cbrt(statsB.GlobalAvgVolRatio)

	combined := r.EffectiveSizeA + r.EffectiveSizeB
	r.Alpha = math.Max(combined*combined*combined/cellVolume, 1)
	r.FinalEstimate = r.RawEstimate / r.Alpha

	if probs != nil {
		d := gridstat.NewDistribution(probs)
		r.ProbStats = &d
	}

	return r, nil
}
