package summary

import (
	"encoding/binary"
	"math"
)

// Decode parses a .pre summary file.
//
// The input may be raw or compressed with zstd or LZ4 (detected by frame
// magic). Decode validates the magic, the declared section sizes against
// the available bytes, and the grid resolution; any failure aborts the
// parse, no partially populated Summary is ever returned.
func Decode(data []byte) (*Summary, error) {
	data, err := maybeDecompress(data)
	if err != nil {
		return nil, err
	}

	if len(data) < headerSize {
		return nil, &TruncatedError{Section: "header", Declared: headerSize, Remaining: len(data)}
	}

	magic := binary.LittleEndian.Uint32(data[0:])
	if magic != FileMagic {
		return nil, &BadMagicError{Got: magic}
	}

	numVertices := binary.LittleEndian.Uint64(data[8:])
	numIndices := binary.LittleEndian.Uint64(data[16:])
	numMappings := binary.LittleEndian.Uint64(data[24:])
	hasGrid := data[40] != 0

	s := &Summary{
		Version:     binary.LittleEndian.Uint32(data[4:]),
		ObjectCount: binary.LittleEndian.Uint64(data[32:]),
	}
	rest := data[headerSize:]

	var section []byte

	section, rest, err = take(rest, "vertices", numVertices, vertexStride)
	if err != nil {
		return nil, err
	}
	s.Vertices = make([]Vec3, numVertices)
	for i := range s.Vertices {
		off := i * vertexStride
		for j := 0; j < 3; j++ {
			s.Vertices[i][j] = math.Float32frombits(binary.LittleEndian.Uint32(section[off+4*j:]))
		}
	}

	section, rest, err = take(rest, "triangles", numIndices, triangleStride)
	if err != nil {
		return nil, err
	}
	s.Triangles = make([]Triangle, numIndices)
	for i := range s.Triangles {
		off := i * triangleStride
		for j := 0; j < 3; j++ {
			s.Triangles[i][j] = binary.LittleEndian.Uint32(section[off+4*j:])
		}
	}

	section, rest, err = take(rest, "mapping", numMappings, mappingStride)
	if err != nil {
		return nil, err
	}
	s.TriangleToObject = make([]int32, numMappings)
	for i := range s.TriangleToObject {
		s.TriangleToObject[i] = int32(binary.LittleEndian.Uint32(section[i*mappingStride:]))
	}

	if hasGrid {
		s.Grid, err = decodeGrid(rest)
		if err != nil {
			return nil, err
		}
	}

	return s, nil
}

func decodeGrid(data []byte) (*Grid, error) {
	if len(data) < gridHeaderSize {
		return nil, &TruncatedError{Section: "grid header", Declared: gridHeaderSize, Remaining: len(data)}
	}

	g := &Grid{}
	for i := 0; i < 3; i++ {
		g.MinBound[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
		g.MaxBound[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[12+4*i:]))
		g.Resolution[i] = binary.LittleEndian.Uint32(data[24+4*i:])
	}

	if g.Resolution[0] == 0 || g.Resolution[1] == 0 || g.Resolution[2] == 0 {
		return nil, &InvalidResolutionError{Resolution: g.Resolution}
	}

	xy := uint64(g.Resolution[0]) * uint64(g.Resolution[1])
	if xy > math.MaxUint64/uint64(g.Resolution[2]) {
		return nil, &TruncatedError{Section: "grid cells", Declared: xy, Remaining: len(data) - gridHeaderSize}
	}
	numCells := xy * uint64(g.Resolution[2])

	section, _, err := take(data[gridHeaderSize:], "grid cells", numCells, cellStride)
	if err != nil {
		return nil, err
	}
	g.Cells = make([]Cell, numCells)
	for i := range g.Cells {
		off := i * cellStride
		g.Cells[i] = Cell{
			CenterCount: binary.LittleEndian.Uint32(section[off:]),
			TouchCount:  binary.LittleEndian.Uint32(section[off+4:]),
			AvgSize:     math.Float32frombits(binary.LittleEndian.Uint32(section[off+8:])),
			VolRatio:    math.Float32frombits(binary.LittleEndian.Uint32(section[off+12:])),
		}
	}

	return g, nil
}

// take slices the next count×stride bytes off data. The division-based
// bounds check avoids overflow on hostile count values.
func take(data []byte, section string, count, stride uint64) (head, tail []byte, err error) {
	if count > uint64(len(data))/stride {
		return nil, nil, &TruncatedError{Section: section, Declared: count, Remaining: len(data)}
	}
	n := count * stride
	return data[:n], data[n:], nil
}
