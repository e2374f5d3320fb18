package gridest_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/gridest"
	"github.com/hupe1980/gridest/blobstore"
	"github.com/hupe1980/gridest/summary"
)

func Example() {
	ctx := context.Background()

	// Summaries normally come from .pre files on disk or in object
	// storage; an in-memory store keeps the example self-contained.
	store := blobstore.NewMemoryStore()

	grid := func(touch uint32, avgSize float32) *summary.Grid {
		g := &summary.Grid{
			MaxBound:   summary.Vec3{2, 2, 2},
			Resolution: [3]uint32{2, 2, 2},
			Cells:      make([]summary.Cell, 8),
		}
		g.Cells[0] = summary.Cell{TouchCount: touch, AvgSize: avgSize, VolRatio: 1}
		return g
	}

	a := &summary.Summary{Version: 1, Grid: grid(10, 0.5)}
	b := &summary.Summary{Version: 1, Grid: grid(5, 0.5)}

	_ = store.Put(ctx, "a.pre", summary.Encode(a))
	_ = store.Put(ctx, "b.pre", summary.Encode(b))

	ge := gridest.New(gridest.WithStore(store))

	loadedA, err := ge.LoadSummary(ctx, "a.pre")
	if err != nil {
		panic(err)
	}
	loadedB, err := ge.LoadSummary(ctx, "b.pre")
	if err != nil {
		panic(err)
	}

	report, err := ge.EstimateOverlap(ctx, loadedA, loadedB)
	if err != nil {
		panic(err)
	}

	fmt.Printf("co-occupied cells: %d\n", report.CoOccupiedCells)
	fmt.Printf("estimated intersecting pairs: %.0f\n", report.FinalEstimate)
	// Output:
	// co-occupied cells: 1
	// estimated intersecting pairs: 50
}
