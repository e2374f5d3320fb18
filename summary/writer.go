package summary

import (
	"encoding/binary"
	"math"
)

// Encode serializes a summary into the .pre binary layout.
//
// Counts are taken from the slice lengths; ObjectCount is written as-is.
// Encode is the exact inverse of Decode: decoding an encoded summary
// yields bit-identical fields.
func Encode(s *Summary) []byte {
	size := headerSize +
		len(s.Vertices)*vertexStride +
		len(s.Triangles)*triangleStride +
		len(s.TriangleToObject)*mappingStride
	if s.Grid != nil {
		size += gridHeaderSize + len(s.Grid.Cells)*cellStride
	}

	buf := make([]byte, 0, size)

	buf = binary.LittleEndian.AppendUint32(buf, FileMagic)
	buf = binary.LittleEndian.AppendUint32(buf, s.Version)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(s.Vertices)))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(s.Triangles)))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(s.TriangleToObject)))
	buf = binary.LittleEndian.AppendUint64(buf, s.ObjectCount)
	if s.Grid != nil {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	var pad [7]byte
	buf = append(buf, pad[:]...)

	for _, v := range s.Vertices {
		for j := 0; j < 3; j++ {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v[j]))
		}
	}
	for _, t := range s.Triangles {
		for j := 0; j < 3; j++ {
			buf = binary.LittleEndian.AppendUint32(buf, t[j])
		}
	}
	for _, id := range s.TriangleToObject {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(id))
	}

	if s.Grid != nil {
		buf = appendGrid(buf, s.Grid)
	}

	return buf
}

func appendGrid(buf []byte, g *Grid) []byte {
	for j := 0; j < 3; j++ {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(g.MinBound[j]))
	}
	for j := 0; j < 3; j++ {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(g.MaxBound[j]))
	}
	for j := 0; j < 3; j++ {
		buf = binary.LittleEndian.AppendUint32(buf, g.Resolution[j])
	}
	buf = binary.LittleEndian.AppendUint32(buf, 0) // padding

	for _, c := range g.Cells {
		buf = binary.LittleEndian.AppendUint32(buf, c.CenterCount)
		buf = binary.LittleEndian.AppendUint32(buf, c.TouchCount)
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(c.AvgSize))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(c.VolRatio))
	}

	return buf
}
