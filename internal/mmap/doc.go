// Package mmap provides read-only memory-mapped file access.
//
// Summary files for dense datasets run into the hundreds of megabytes
// (the mesh payload dominates); mapping them lets the decoder walk the
// file without an intermediate copy.
//
//	m, err := mmap.Open("buildings_a.pre")
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes() // zero-copy view, valid until Close
//	_ = m.Advise(mmap.AccessSequential)
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile (Advise is a no-op)
//
// # Thread Safety
//
// A Mapping is safe for concurrent reads. Close is idempotent, but
// callers must ensure no goroutine touches Bytes() after Close returns.
package mmap
