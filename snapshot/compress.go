package snapshot

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects how the snapshot payload is compressed.
type Compression uint8

const (
	// CompressionNone stores the payload raw.
	CompressionNone Compression = iota
	// CompressionZstd compresses with zstd at the default level.
	CompressionZstd
	// CompressionLZ4 compresses with an lz4 block; incompressible payloads
	// are silently downgraded to CompressionNone.
	CompressionLZ4
)

// String returns a string representation of the Compression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// ErrUnknownCompression indicates a snapshot compressed with a scheme this
// build does not know.
type ErrUnknownCompression struct {
	Compression Compression
}

func (e *ErrUnknownCompression) Error() string {
	return fmt.Sprintf("unknown snapshot compression: %d", uint8(e.Compression))
}

// compressPayload compresses data with the requested scheme and returns the
// scheme actually used.
func compressPayload(c Compression, data []byte) (Compression, []byte, error) {
	switch c {
	case CompressionNone:
		return CompressionNone, data, nil

	case CompressionZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return 0, nil, err
		}
		out := enc.EncodeAll(data, nil)
		if err := enc.Close(); err != nil {
			return 0, nil, err
		}
		return CompressionZstd, out, nil

	case CompressionLZ4:
		out := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, out, nil)
		if err != nil {
			return 0, nil, err
		}
		if n == 0 || n >= len(data) {
			// Incompressible; store raw.
			return CompressionNone, data, nil
		}
		return CompressionLZ4, out[:n], nil

	default:
		return 0, nil, &ErrUnknownCompression{Compression: c}
	}
}

// decompressPayload reverses compressPayload. uncompressedLen comes from the
// snapshot header and bounds the output exactly.
func decompressPayload(c Compression, data []byte, uncompressedLen uint64) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil

	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()

		out, err := dec.DecodeAll(data, make([]byte, 0, uncompressedLen))
		if err != nil {
			return nil, err
		}
		if uint64(len(out)) != uncompressedLen {
			return nil, fmt.Errorf("%w: decompressed %d bytes, header says %d", ErrTruncated, len(out), uncompressedLen)
		}
		return out, nil

	case CompressionLZ4:
		out := make([]byte, uncompressedLen)
		n, err := lz4.UncompressBlock(data, out)
		if err != nil {
			return nil, err
		}
		if uint64(n) != uncompressedLen {
			return nil, fmt.Errorf("%w: decompressed %d bytes, header says %d", ErrTruncated, n, uncompressedLen)
		}
		return out, nil

	default:
		return nil, &ErrUnknownCompression{Compression: c}
	}
}
