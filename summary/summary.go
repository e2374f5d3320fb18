package summary

// Vec3 is a 3-component single-precision vector, matching the on-disk
// float32 triplets.
type Vec3 [3]float32

// Triangle holds three vertex indices.
type Triangle [3]uint32

// Cell is one grid cell's aggregate object statistics.
type Cell struct {
	// CenterCount is the number of objects whose centroid lies in the cell.
	CenterCount uint32
	// TouchCount is the number of objects whose bounding volume overlaps
	// the cell. TouchCount >= CenterCount is expected but not enforced.
	TouchCount uint32
	// AvgSize is the mean characteristic linear size of the objects
	// touching the cell; 0 when TouchCount == 0.
	AvgSize float32
	// VolRatio is the mean ratio of object volume to bounding-box volume,
	// a compactness factor in (0, 1]. Meaningless when TouchCount == 0.
	VolRatio float32
}

// Grid is the coarse per-cell statistics grid over an axis-aligned region.
type Grid struct {
	MinBound   Vec3
	MaxBound   Vec3
	Resolution [3]uint32

	// Cells is the flat cell array, indexed (x*ry + y)*rz + z.
	// len(Cells) == Resolution[0]*Resolution[1]*Resolution[2].
	Cells []Cell
}

// NumCells returns the total cell count of the grid.
func (g *Grid) NumCells() int {
	return int(g.Resolution[0]) * int(g.Resolution[1]) * int(g.Resolution[2])
}

// CellIndex returns the flat index of the cell at (x, y, z).
func (g *Grid) CellIndex(x, y, z int) int {
	return (x*int(g.Resolution[1])+y)*int(g.Resolution[2]) + z
}

// CellSize returns the per-axis cell extent.
func (g *Grid) CellSize() [3]float64 {
	var s [3]float64
	for i := 0; i < 3; i++ {
		s[i] = float64(g.MaxBound[i]-g.MinBound[i]) / float64(g.Resolution[i])
	}
	return s
}

// CellVolume returns the volume of a single cell.
// It is <= 0 for degenerate bounds; callers validating grids must check.
func (g *Grid) CellVolume() float64 {
	s := g.CellSize()
	return s[0] * s[1] * s[2]
}

// Summary is the parsed contents of one dataset's .pre file.
type Summary struct {
	// Version is the format version tag, passed through opaquely.
	Version uint32

	// ObjectCount is the total number of distinct objects in the dataset.
	ObjectCount uint64

	// Vertices, Triangles and TriangleToObject carry the mesh payload.
	// TriangleToObject is parallel to Triangles and maps each triangle to
	// its owning object id.
	Vertices         []Vec3
	Triangles        []Triangle
	TriangleToObject []int32

	// Grid is the optional spatial statistics grid; nil when the file was
	// written without one. Summaries without a grid cannot participate in
	// overlap estimation.
	Grid *Grid
}

// HasGrid reports whether the summary carries a spatial grid.
func (s *Summary) HasGrid() bool {
	return s.Grid != nil
}
