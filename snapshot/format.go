package snapshot

import (
	"errors"
	"fmt"
)

const (
	// MagicNumber identifies langtab snapshot files (ASCII: "LTB1").
	MagicNumber = 0x4C544231
	// FormatVersion is the current file format version.
	FormatVersion = 1

	// MaxPayloadLen bounds the payload sizes a header may claim. Header
	// fields are untrusted input; without this cap a corrupt 48-byte blob
	// could demand an arbitrary-size allocation before checksum
	// verification ever runs.
	MaxPayloadLen = 1 << 30
)

var (
	// ErrInvalidMagic indicates the blob is not a langtab snapshot.
	ErrInvalidMagic = errors.New("invalid magic number")
	// ErrInvalidVersion indicates a snapshot written by an unknown format
	// version.
	ErrInvalidVersion = errors.New("unsupported snapshot version")
	// ErrTruncated indicates a snapshot shorter than its header claims.
	ErrTruncated = errors.New("truncated snapshot")
	// ErrInvalidHeader indicates a header with implausible field values.
	ErrInvalidHeader = errors.New("invalid snapshot header")
)

// ErrUnknownCodec indicates a snapshot whose codec name is not built in.
type ErrUnknownCodec struct {
	Name string
}

func (e *ErrUnknownCodec) Error() string {
	return fmt.Sprintf("unknown snapshot codec: %q", e.Name)
}

// ChecksumMismatchError is returned when payload verification fails.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

// IsChecksumMismatch returns true if err is a checksum mismatch error.
func IsChecksumMismatch(err error) bool {
	var cm *ChecksumMismatchError
	return errors.As(err, &cm)
}

// header is the fixed-size portion of the snapshot layout. The variable
// parts (codec name, backend kind, payload) follow it, and a CRC32 of the
// compressed payload trails the file.
type header struct {
	Magic           uint32
	Version         uint32
	Compression     uint8
	CodecNameLen    uint8
	KindLen         uint8
	Reserved        uint8
	RecordCount     uint32
	UncompressedLen uint64
	PayloadLen      uint64
}
