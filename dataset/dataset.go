package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/langtab/blobstore"
	"github.com/hupe1980/langtab/model"
)

// Options configures table parsing.
type Options struct {
	// Comma is the field delimiter.
	Comma rune

	// Comment, if non-zero, makes lines starting with it skipped.
	Comment rune

	// Header indicates the input starts with a header row to skip.
	Header bool
}

// Read parses records from r.
func Read(r io.Reader, optFns ...func(*Options)) ([]model.Record, error) {
	opts := Options{Comma: ',', Header: true}
	for _, fn := range optFns {
		fn(&opts)
	}

	cr := csv.NewReader(r)
	cr.Comma = opts.Comma
	cr.Comment = opts.Comment
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	if opts.Header {
		if _, err := cr.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}
			return nil, err
		}
	}

	var records []model.Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		// Position from the reader, not a row counter: comment and blank
		// lines are skipped silently and would drift a counter.
		line, _ := cr.FieldPos(0)

		if len(row) != 2 {
			return nil, model.InvalidRecord(line, "record", fmt.Sprintf("want 2 columns, got %d", len(row)), nil)
		}

		year, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, model.InvalidRecord(line, "year", fmt.Sprintf("not an integer: %q", row[0]), err)
		}

		language := strings.TrimSpace(row[1])
		if language == "" {
			return nil, model.InvalidRecord(line, "language", "empty language name", nil)
		}

		records = append(records, model.Record{Year: year, Language: language})
	}

	return records, nil
}

// ReadFile parses records from a local file.
func ReadFile(path string, optFns ...func(*Options)) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, optFns...)
}

// Fetch reads a table blob from the store and parses it.
func Fetch(ctx context.Context, store blobstore.BlobStore, name string, optFns ...func(*Options)) ([]model.Record, error) {
	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, err
	}
	return Read(bytes.NewReader(data), optFns...)
}

// FetchAll fetches and parses the named table shards concurrently and
// concatenates the results in shard order, so the combined sequence is
// deterministic regardless of fetch completion order.
func FetchAll(ctx context.Context, store blobstore.BlobStore, names []string, optFns ...func(*Options)) ([]model.Record, error) {
	shards := make([][]model.Record, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			records, err := Fetch(ctx, store, name, optFns...)
			if err != nil {
				return fmt.Errorf("shard %s: %w", name, err)
			}
			shards[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var total int
	for _, shard := range shards {
		total += len(shard)
	}

	records := make([]model.Record, 0, total)
	for _, shard := range shards {
		records = append(records, shard...)
	}
	return records, nil
}
