package gridest

import (
	"errors"
	"fmt"

	"github.com/hupe1980/gridest/blobstore"
	"github.com/hupe1980/gridest/estimate"
	"github.com/hupe1980/gridest/summary"
)

var (
	// ErrNotFound is returned when a named summary does not exist in the
	// configured store.
	ErrNotFound = errors.New("summary not found")

	// ErrMissingGrid is returned when an operation needs a spatial grid
	// and the summary carries none.
	ErrMissingGrid = errors.New("summary has no spatial grid")

	// ErrGridMismatch is returned when two grids cannot be compared
	// (different cell counts or degenerate geometry).
	ErrGridMismatch = errors.New("incompatible grid layouts")

	// ErrBadSummary is returned when a summary file is malformed.
	ErrBadSummary = errors.New("malformed summary file")
)

// translateError unifies subpackage errors into the facade sentinels.
// The original error stays reachable via errors.Is/As.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, blobstore.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var mg *estimate.MissingGridError
	if errors.As(err, &mg) {
		return fmt.Errorf("%w: %w", ErrMissingGrid, err)
	}
	var cm *estimate.CellCountMismatchError
	if errors.As(err, &cm) {
		return fmt.Errorf("%w: %w", ErrGridMismatch, err)
	}
	var dv *estimate.DegenerateCellVolumeError
	if errors.As(err, &dv) {
		return fmt.Errorf("%w: %w", ErrGridMismatch, err)
	}

	var bm *summary.BadMagicError
	if errors.As(err, &bm) {
		return fmt.Errorf("%w: %w", ErrBadSummary, err)
	}
	var tr *summary.TruncatedError
	if errors.As(err, &tr) {
		return fmt.Errorf("%w: %w", ErrBadSummary, err)
	}
	var ir *summary.InvalidResolutionError
	if errors.As(err, &ir) {
		return fmt.Errorf("%w: %w", ErrBadSummary, err)
	}

	return err
}
