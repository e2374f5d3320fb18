package summary

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func testSummary() *Summary {
	return &Summary{
		Version:     1,
		ObjectCount: 42,
		Vertices: []Vec3{
			{0, 0, 0},
			{1.5, 2.25, -3.75},
			{-0.125, 10, 100.5},
		},
		Triangles: []Triangle{
			{0, 1, 2},
			{2, 1, 0},
		},
		TriangleToObject: []int32{0, -1},
		Grid: &Grid{
			MinBound:   Vec3{-4, -4, -4},
			MaxBound:   Vec3{4, 4, 4},
			Resolution: [3]uint32{2, 2, 2},
			Cells: []Cell{
				{CenterCount: 3, TouchCount: 10, AvgSize: 0.5, VolRatio: 1},
				{}, {}, {},
				{CenterCount: 1, TouchCount: 5, AvgSize: 0.25, VolRatio: 0.8},
				{}, {}, {},
			},
		},
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	want := testSummary()

	data := Encode(want)
	got, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestEncodeDecode_NoGrid(t *testing.T) {
	want := testSummary()
	want.Grid = nil

	data := Encode(want)

	// hasGrid flag must be zero and nothing must follow the mapping section.
	require.Equal(t, byte(0), data[40])

	got, err := Decode(data)
	require.NoError(t, err)
	require.False(t, got.HasGrid())
	require.Equal(t, want, got)
}

func TestDecode_BadMagic(t *testing.T) {
	data := Encode(testSummary())
	binary.LittleEndian.PutUint32(data[0:], 0xDEADBEEF)

	_, err := Decode(data)
	var bad *BadMagicError
	require.ErrorAs(t, err, &bad)
	require.Equal(t, uint32(0xDEADBEEF), bad.Got)
}

func TestDecode_TruncatedHeader(t *testing.T) {
	data := Encode(testSummary())

	_, err := Decode(data[:20])
	var trunc *TruncatedError
	require.ErrorAs(t, err, &trunc)
	require.Equal(t, "header", trunc.Section)
}

func TestDecode_TruncatedSections(t *testing.T) {
	full := Encode(testSummary())

	// Cut inside the vertex section.
	_, err := Decode(full[:headerSize+5])
	var trunc *TruncatedError
	require.ErrorAs(t, err, &trunc)
	require.Equal(t, "vertices", trunc.Section)

	// Cut inside the grid cell section.
	_, err = Decode(full[:len(full)-1])
	trunc = nil
	require.ErrorAs(t, err, &trunc)
	require.Equal(t, "grid cells", trunc.Section)
}

func TestDecode_HostileCounts(t *testing.T) {
	data := Encode(testSummary())

	// A vertex count near MaxUint64 must not overflow the bounds check.
	binary.LittleEndian.PutUint64(data[8:], ^uint64(0))

	_, err := Decode(data)
	var trunc *TruncatedError
	require.ErrorAs(t, err, &trunc)
	require.Equal(t, "vertices", trunc.Section)
}

func TestDecode_InvalidResolution(t *testing.T) {
	s := testSummary()
	s.Grid.Resolution = [3]uint32{2, 0, 2}
	data := Encode(s)

	_, err := Decode(data)
	var invalid *InvalidResolutionError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, [3]uint32{2, 0, 2}, invalid.Resolution)
}

func TestDecode_HugeResolution(t *testing.T) {
	s := testSummary()
	s.Grid.Cells = nil
	data := Encode(s)

	// Force a cell count the file cannot possibly hold.
	gridOff := len(data) - gridHeaderSize
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(data[gridOff+24+4*i:], 0xFFFFFFFF)
	}

	_, err := Decode(data)
	var trunc *TruncatedError
	require.ErrorAs(t, err, &trunc)
	require.Equal(t, "grid cells", trunc.Section)
}

func TestEncodeCompressed_RoundTrip(t *testing.T) {
	want := testSummary()

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		data, err := EncodeCompressed(want, c)
		require.NoError(t, err)

		if c != CompressionNone {
			// The frame magic must not be mistaken for a raw file.
			require.NotEqual(t, uint32(FileMagic), binary.LittleEndian.Uint32(data[0:4]))
		}

		got, err := Decode(data)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestEncodeCompressed_Unknown(t *testing.T) {
	_, err := EncodeCompressed(testSummary(), Compression(99))
	require.Error(t, err)
}

func TestGrid_CellGeometry(t *testing.T) {
	g := testSummary().Grid

	require.Equal(t, 8, g.NumCells())
	require.Equal(t, [3]float64{4, 4, 4}, g.CellSize())
	require.InDelta(t, 64.0, g.CellVolume(), 1e-9)

	// Row-major layout: x outermost, z innermost.
	require.Equal(t, 0, g.CellIndex(0, 0, 0))
	require.Equal(t, 1, g.CellIndex(0, 0, 1))
	require.Equal(t, 2, g.CellIndex(0, 1, 0))
	require.Equal(t, 4, g.CellIndex(1, 0, 0))
	require.Equal(t, 7, g.CellIndex(1, 1, 1))
}
