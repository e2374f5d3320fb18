package summary

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the optional whole-file compression applied by
// EncodeCompressed. Summary files compress well (cells are mostly zeros
// for sparse datasets), so cold storage usually wants ZSTD.
type Compression uint8

const (
	// CompressionNone stores the raw .pre layout.
	CompressionNone Compression = 0
	// CompressionLZ4 wraps the file in an LZ4 frame (fast, hot data).
	CompressionLZ4 Compression = 1
	// CompressionZSTD wraps the file in a zstd frame (better ratio, cold data).
	CompressionZSTD Compression = 2
)

// Frame magics, little-endian on disk. Neither collides with FileMagic,
// so Decode can dispatch on the first four bytes.
var (
	zstdFrameMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4FrameMagic  = []byte{0x04, 0x22, 0x4D, 0x18}
)

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// EncodeCompressed serializes a summary and applies the given compression.
func EncodeCompressed(s *Summary, c Compression) ([]byte, error) {
	raw := Encode(s)

	switch c {
	case CompressionNone:
		return raw, nil
	case CompressionZSTD:
		enc := getZstdEncoder()
		defer zstdEncoderPool.Put(enc)
		return enc.EncodeAll(raw, nil), nil
	case CompressionLZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(raw); err != nil {
			return nil, fmt.Errorf("summary: lz4 compress: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("summary: lz4 compress: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("summary: unknown compression %d", c)
	}
}

// maybeDecompress inflates zstd/LZ4 frames, passing raw data through.
func maybeDecompress(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, zstdFrameMagic):
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)
		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("summary: zstd decompress: %w", err)
		}
		return out, nil
	case bytes.HasPrefix(data, lz4FrameMagic):
		out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("summary: lz4 decompress: %w", err)
		}
		return out, nil
	default:
		return data, nil
	}
}
