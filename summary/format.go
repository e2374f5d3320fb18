package summary

import (
	"fmt"
)

const (
	// FileMagic identifies a .pre summary file ("R3DB").
	FileMagic = 0x52334442

	// headerSize is the fixed file header: magic + version (8), four
	// uint64 counts (32), hasGrid flag (1), padding (7).
	headerSize = 48

	vertexStride   = 12 // 3 × float32
	triangleStride = 12 // 3 × uint32
	mappingStride  = 4  // int32
	gridHeaderSize = 40 // 3×f32 min, 3×f32 max, 3×u32 resolution, 4 pad
	cellStride     = 16 // 2 × uint32 + 2 × float32
)

// BadMagicError reports a file that does not start with FileMagic.
type BadMagicError struct {
	Got uint32
}

func (e *BadMagicError) Error() string {
	return fmt.Sprintf("summary: bad magic 0x%08X (want 0x%08X)", e.Got, uint32(FileMagic))
}

// TruncatedError reports a file whose declared counts require more bytes
// than the file holds.
type TruncatedError struct {
	Section string
	// Declared is the entry count (or byte count for fixed sections)
	// announced by the header.
	Declared uint64
	// Remaining is the number of bytes left in the file for the section.
	Remaining int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("summary: truncated %s section: %d declared, %d bytes remaining", e.Section, e.Declared, e.Remaining)
}

// InvalidResolutionError reports a grid header with a zero resolution axis.
type InvalidResolutionError struct {
	Resolution [3]uint32
}

func (e *InvalidResolutionError) Error() string {
	return fmt.Sprintf("summary: invalid grid resolution %dx%dx%d: all axes must be >= 1",
		e.Resolution[0], e.Resolution[1], e.Resolution[2])
}
