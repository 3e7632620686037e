package snapshot

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"

	"github.com/hupe1980/langtab/blobstore"
	"github.com/hupe1980/langtab/codec"
	"github.com/hupe1980/langtab/index"
	"github.com/hupe1980/langtab/model"
)

// Options configures snapshot encoding.
type Options struct {
	// Codec serializes the record payload.
	Codec codec.Codec

	// Compression applied to the serialized payload.
	Compression Compression
}

// Save serializes the index records and writes them to the store under name.
// The snapshot carries the backend kind, so Load restores the same backend.
func Save(ctx context.Context, store blobstore.BlobStore, name string, idx index.Index, optFns ...func(*Options)) error {
	opts := Options{
		Codec:       codec.Default,
		Compression: CompressionZstd,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	records := idx.Records()

	payload, err := opts.Codec.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}

	compression, compressed, err := compressPayload(opts.Compression, payload)
	if err != nil {
		return fmt.Errorf("compress payload: %w", err)
	}

	codecName := opts.Codec.Name()
	kind := string(idx.Kind())

	if len(codecName) > math.MaxUint8 {
		return fmt.Errorf("codec name too long: %q", codecName)
	}
	if len(kind) > math.MaxUint8 {
		return fmt.Errorf("backend kind too long: %q", kind)
	}
	if len(records) > math.MaxUint32 {
		return fmt.Errorf("too many records: %d", len(records))
	}
	if uint64(len(payload)) > MaxPayloadLen || uint64(len(compressed)) > MaxPayloadLen {
		return fmt.Errorf("snapshot payload too large: %d bytes", len(payload))
	}

	hdr := header{
		Magic:           MagicNumber,
		Version:         FormatVersion,
		Compression:     uint8(compression),
		CodecNameLen:    uint8(len(codecName)),
		KindLen:         uint8(len(kind)),
		RecordCount:     uint32(len(records)),
		UncompressedLen: uint64(len(payload)),
		PayloadLen:      uint64(len(compressed)),
	}

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	buf.WriteString(codecName)
	buf.WriteString(kind)
	buf.Write(compressed)

	checksum := crc32.ChecksumIEEE(compressed)
	if err := binary.Write(&buf, binary.LittleEndian, checksum); err != nil {
		return fmt.Errorf("write checksum: %w", err)
	}

	if err := store.Put(ctx, name, buf.Bytes()); err != nil {
		return fmt.Errorf("put snapshot %s: %w", name, err)
	}

	return nil
}

// Load reads the named snapshot from the store and rebuilds the index with
// the backend kind recorded in the file.
func Load(ctx context.Context, store blobstore.BlobStore, name string) (index.Index, error) {
	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", name, err)
	}

	r := bytes.NewReader(data)

	var hdr header
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}

	if hdr.Magic != MagicNumber {
		return nil, ErrInvalidMagic
	}

	if hdr.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, hdr.Version)
	}

	rest := data[len(data)-r.Len():]

	// Size fields are untrusted; validate in uint64 before any int
	// conversion, slicing, or allocation.
	if hdr.PayloadLen > MaxPayloadLen || hdr.UncompressedLen > MaxPayloadLen {
		return nil, fmt.Errorf("%w: payload %d/%d exceeds %d byte limit",
			ErrInvalidHeader, hdr.PayloadLen, hdr.UncompressedLen, MaxPayloadLen)
	}

	want := uint64(hdr.CodecNameLen) + uint64(hdr.KindLen) + hdr.PayloadLen + crc32.Size
	if uint64(len(rest)) < want {
		return nil, fmt.Errorf("%w: %d bytes after header, want %d", ErrTruncated, len(rest), want)
	}

	codecName := string(rest[:hdr.CodecNameLen])
	rest = rest[hdr.CodecNameLen:]

	kind := index.Kind(rest[:hdr.KindLen])
	rest = rest[hdr.KindLen:]

	compressed := rest[:hdr.PayloadLen]
	rest = rest[hdr.PayloadLen:]

	expected := binary.LittleEndian.Uint32(rest[:crc32.Size])
	if actual := crc32.ChecksumIEEE(compressed); actual != expected {
		return nil, &ChecksumMismatchError{Expected: expected, Actual: actual}
	}

	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, &ErrUnknownCodec{Name: codecName}
	}

	payload, err := decompressPayload(Compression(hdr.Compression), compressed, hdr.UncompressedLen)
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	var records []model.Record
	if err := c.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("unmarshal records: %w", err)
	}

	if uint32(len(records)) != hdr.RecordCount {
		return nil, fmt.Errorf("%w: %d records, header says %d", ErrTruncated, len(records), hdr.RecordCount)
	}

	return index.Build(kind, records)
}
