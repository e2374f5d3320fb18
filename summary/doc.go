// Package summary reads and writes .pre spatial summary files.
//
// A summary is the binary, per-dataset output of the mesh preprocessing
// tool: the full vertex/triangle soup plus an optional coarse spatial grid
// holding per-cell object statistics. The grid is what the overlap
// estimator consumes; the mesh payload is carried for exact-join tooling.
//
// # File Format
//
// All integers and floats are little-endian, no implicit alignment:
//
//	FileHeader (48 bytes):
//	  magic       uint32  0x52334442 ("R3DB")
//	  version     uint32
//	  numVertices uint64
//	  numIndices  uint64
//	  numMappings uint64
//	  numObjects  uint64
//	  hasGrid     uint8
//	  padding     [7]byte
//	Vertices:         numVertices × 12 bytes (3 × float32)
//	Triangles:        numIndices × 12 bytes (3 × uint32)
//	TriangleToObject: numMappings × 4 bytes (int32)
//	if hasGrid:
//	  GridHeader (40 bytes): minBound 3×float32, maxBound 3×float32,
//	                         resolution 3×uint32, 4 bytes padding
//	  Cells: rx·ry·rz × 16 bytes (centerCount u32, touchCount u32,
//	                              avgSize f32, volRatio f32)
//
// The layout is a bit-exact contract with the external preprocessor; field
// offsets and sizes must never drift.
//
// Decode additionally accepts zstd- or LZ4-compressed summary files and
// transparently decompresses them before parsing (see Compression).
//
// A decoded Summary is immutable by convention: nothing in this module
// mutates one after Decode returns, and callers must not either if they
// share it across goroutines.
package summary
