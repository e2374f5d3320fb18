// Package gridest estimates how many object pairs from two preprocessed
// spatial datasets have intersecting bounding volumes, without executing
// the join.
//
// Datasets arrive as .pre summary files produced by an external
// preprocessor: compact binary snapshots of a mesh (vertices, triangles,
// triangle-to-object mapping) plus an optional uniform spatial grid whose
// cells carry occupancy counts, mean object size and a volume-ratio shape
// statistic. Gridest never sees the raw geometry; everything is derived
// from the grid summaries.
//
// # Quick Start
//
//	ctx := context.Background()
//	ge := gridest.New(
//	    gridest.WithStore(blobstore.NewLocalStore("./data")),
//	)
//
//	a, err := ge.LoadSummary(ctx, "buildings.pre")
//	if err != nil {
//	    panic(err)
//	}
//	b, err := ge.LoadSummary(ctx, "terrain.pre")
//	if err != nil {
//	    panic(err)
//	}
//
//	report, err := ge.EstimateOverlap(ctx, a, b)
//	if err != nil {
//	    panic(err)
//	}
//	fmt.Printf("estimated intersecting pairs: %.0f\n", report.FinalEstimate)
//
// Summaries can also be inspected on their own:
//
//	stats, err := ge.AnalyzeGrid(a)
//	fmt.Printf("occupancy: %.1f%%\n", stats.OccupancyRatio*100)
//
// Summary files may live on local disk (memory-mapped), in memory, or in
// S3-compatible object storage; see the blobstore package. Files may be
// stored zstd- or LZ4-compressed and are inflated transparently.
package gridest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/gridest/blobstore"
	"github.com/hupe1980/gridest/estimate"
	"github.com/hupe1980/gridest/gridstat"
	"github.com/hupe1980/gridest/summary"
)

// Gridest loads .pre summaries from a blob store and runs grid analysis
// and overlap estimation over them. All methods are safe for concurrent
// use.
type Gridest struct {
	store       blobstore.BlobStore
	logger      *Logger
	metrics     MetricsCollector
	estOpts     estimate.Options
	concurrency int
	limiter     limiter
}

// New creates a Gridest instance. Without WithStore, summaries are loaded
// from the current working directory.
func New(optFns ...Option) *Gridest {
	opts := applyOptions(optFns)

	return &Gridest{
		store:       opts.store,
		logger:      opts.logger,
		metrics:     opts.metrics,
		estOpts:     opts.estimate,
		concurrency: opts.concurrency,
		limiter:     opts.limiter,
	}
}

// LoadSummary reads and decodes the named summary from the configured
// store. Compressed files are inflated transparently.
func (g *Gridest) LoadSummary(ctx context.Context, name string) (*summary.Summary, error) {
	start := time.Now()
	s, err := g.loadSummary(ctx, name)
	g.metrics.RecordLoad(time.Since(start), err)
	g.logger.LogLoad(ctx, name, s, err)
	if err != nil {
		return nil, translateError(err)
	}
	return s, nil
}

func (g *Gridest) loadSummary(ctx context.Context, name string) (*summary.Summary, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	blob, err := g.store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer blob.Close()

	data, err := blobstore.ReadAll(ctx, blob)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	// Decode copies into fresh slices, so mmap-backed data may be
	// unmapped as soon as it returns.
	s, err := summary.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return s, nil
}

// LoadSummaries loads several summaries concurrently, keyed by name.
// Concurrency and request rate follow WithConcurrency and WithRateLimit.
// The first failure cancels the remaining loads.
func (g *Gridest) LoadSummaries(ctx context.Context, names []string) (map[string]*summary.Summary, error) {
	var (
		mu        sync.Mutex
		summaries = make(map[string]*summary.Summary, len(names))
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.concurrency)

	for _, name := range names {
		eg.Go(func() error {
			s, err := g.LoadSummary(ctx, name)
			if err != nil {
				return err
			}
			mu.Lock()
			summaries[name] = s
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

// LoadSummaryFromStore reads and decodes one summary from an arbitrary
// store, without constructing a Gridest instance.
func LoadSummaryFromStore(ctx context.Context, store blobstore.BlobStore, name string) (*summary.Summary, error) {
	g := New(WithStore(store))
	return g.LoadSummary(ctx, name)
}

// LoadSummaryFile decodes a single summary file from the local
// filesystem, outside any configured store.
func LoadSummaryFile(path string) (*summary.Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := summary.Decode(data)
	if err != nil {
		return nil, translateError(fmt.Errorf("decode %s: %w", filepath.Base(path), err))
	}
	return s, nil
}

// AnalyzeGrid reduces a summary's grid to its statistics.
func (g *Gridest) AnalyzeGrid(s *summary.Summary) (gridstat.Stats, error) {
	if !s.HasGrid() {
		return gridstat.Stats{}, ErrMissingGrid
	}

	stats := gridstat.Analyze(s.Grid)
	g.logger.LogAnalyze(context.Background(), stats)
	return stats, nil
}

// EstimateOverlap predicts the number of object pairs from a and b with
// intersecting bounding volumes. Dataset a's grid is the reference frame.
func (g *Gridest) EstimateOverlap(ctx context.Context, a, b *summary.Summary) (*estimate.Report, error) {
	start := time.Now()
	report, err := estimate.Estimate(a, b, g.estOpts)
	g.metrics.RecordEstimate(time.Since(start), err)
	g.logger.LogEstimate(ctx, report, err)
	if err != nil {
		return nil, translateError(err)
	}
	return report, nil
}

// Pair names two stored summaries to estimate against each other.
type Pair struct {
	A string
	B string
}

// PairReport is the estimation result for one Pair.
type PairReport struct {
	Pair   Pair
	Report *estimate.Report
}

// EstimatePairs loads every summary named by pairs (each file once) and
// estimates all pairs concurrently. Results are returned in input order.
func (g *Gridest) EstimatePairs(ctx context.Context, pairs []Pair) ([]PairReport, error) {
	summaries, err := g.LoadSummaries(ctx, uniqueNames(pairs))
	if err != nil {
		return nil, err
	}

	results := make([]PairReport, len(pairs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.concurrency)

	for i, p := range pairs {
		eg.Go(func() error {
			report, err := g.EstimateOverlap(ctx, summaries[p.A], summaries[p.B])
			if err != nil {
				return fmt.Errorf("estimate %s vs %s: %w", p.A, p.B, err)
			}
			results[i] = PairReport{Pair: p, Report: report}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func uniqueNames(pairs []Pair) []string {
	seen := make(map[string]struct{}, len(pairs)*2)
	for _, p := range pairs {
		seen[p.A] = struct{}{}
		seen[p.B] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
