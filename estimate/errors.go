package estimate

import "fmt"

// MissingGridError reports a summary that carries no spatial grid and
// therefore cannot participate in estimation.
type MissingGridError struct {
	Dataset string // "A" or "B"
}

func (e *MissingGridError) Error() string {
	return fmt.Sprintf("estimate: dataset %s has no spatial grid", e.Dataset)
}

// CellCountMismatchError reports two grids with different cell counts.
// The estimator compares cells index-for-index and does not resample
// mismatched layouts.
type CellCountMismatchError struct {
	CellsA int
	CellsB int
}

func (e *CellCountMismatchError) Error() string {
	return fmt.Sprintf("estimate: grid cell count mismatch: A has %d cells, B has %d", e.CellsA, e.CellsB)
}

// DegenerateCellVolumeError reports a reference grid whose cell volume is
// not positive. The reader's invariants normally prevent this; the
// estimator re-validates because it divides by the volume.
type DegenerateCellVolumeError struct {
	CellVolume float64
}

func (e *DegenerateCellVolumeError) Error() string {
	return fmt.Sprintf("estimate: degenerate cell volume %g: grid bounds or resolution are invalid", e.CellVolume)
}
