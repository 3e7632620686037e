package langtab

import (
	"context"
	"time"

	"github.com/hupe1980/langtab/blobstore"
	"github.com/hupe1980/langtab/index"
	_ "github.com/hupe1980/langtab/index/columnar"
	_ "github.com/hupe1980/langtab/index/flatscan"
	_ "github.com/hupe1980/langtab/index/grouped"
	"github.com/hupe1980/langtab/model"
	"github.com/hupe1980/langtab/snapshot"
)

// LangTab is a year→language creation index with pluggable backing
// representations.
//
// LangTab is not safe for concurrent mutation; callers needing concurrent
// writers must serialize externally. Read-only use after construction is
// safe from multiple goroutines.
type LangTab struct {
	idx     index.Index
	opts    options
	metrics MetricsCollector
	logger  *Logger
}

// New creates an empty LangTab backed by the given representation kind.
func New(kind index.Kind, optFns ...Option) (*LangTab, error) {
	idx, err := index.New(kind)
	if err != nil {
		return nil, err
	}
	return wrap(idx, applyOptions(optFns)), nil
}

// FromRecords creates a LangTab from an ordered record sequence.
//
// All records are validated before any reach the index, so a malformed
// record fails the whole construction and no partially built table escapes.
func FromRecords(kind index.Kind, records []model.Record, optFns ...Option) (*LangTab, error) {
	for i, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, model.InvalidRecord(i+1, "record", "invalid record in input", err)
		}
	}

	idx, err := index.Build(kind, records)
	if err != nil {
		return nil, err
	}

	return wrap(idx, applyOptions(optFns)), nil
}

func wrap(idx index.Index, opts options) *LangTab {
	return &LangTab{
		idx:     idx,
		opts:    opts,
		metrics: opts.metricsCollector,
		logger:  opts.logger.WithKind(string(idx.Kind())),
	}
}

// Insert adds one record to the table.
func (lt *LangTab) Insert(ctx context.Context, rec model.Record) error {
	start := time.Now()

	err := lt.insert(rec)

	lt.metrics.RecordInsert(time.Since(start), err)
	lt.logger.LogInsert(ctx, rec, err)

	return translateError(err)
}

func (lt *LangTab) insert(rec model.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	return lt.idx.Insert(rec)
}

// BatchInsert adds an ordered record sequence to the table.
//
// The batch is all-or-nothing: every record is validated up front, and a
// malformed record rejects the whole batch without mutating the table.
func (lt *LangTab) BatchInsert(ctx context.Context, records []model.Record) error {
	start := time.Now()

	err := lt.batchInsert(records)

	lt.metrics.RecordBatchInsert(len(records), time.Since(start), err)
	lt.logger.LogBatchInsert(ctx, len(records), err)

	return translateError(err)
}

func (lt *LangTab) batchInsert(records []model.Record) error {
	for i, rec := range records {
		if err := rec.Validate(); err != nil {
			return model.InvalidRecord(i+1, "record", "invalid record in batch", err)
		}
	}
	for _, rec := range records {
		if err := lt.idx.Insert(rec); err != nil {
			return err
		}
	}
	return nil
}

// YearCreated returns the creation year of the given language: the year of
// the first record, in input order, whose language matches exactly.
//
// It returns an error satisfying IsNotFound when the language has no record.
// No sentinel year is ever returned, so any year value (including zero or
// negative) is a valid answer.
func (lt *LangTab) YearCreated(ctx context.Context, language string) (int, error) {
	start := time.Now()

	year, err := lt.idx.YearCreated(language)

	lt.metrics.RecordLookup(time.Since(start), err)
	lt.logger.LogLookup(ctx, language, year, err)

	return year, translateError(err)
}

// CountCreatedInYear returns how many language entries the table records for
// the year. Duplicate entries are counted; an absent year yields 0.
func (lt *LangTab) CountCreatedInYear(ctx context.Context, year int) int {
	start := time.Now()

	count := lt.idx.CountCreatedInYear(year)

	lt.metrics.RecordCount(time.Since(start))
	lt.logger.LogCount(ctx, year, count)

	return count
}

// Len returns the number of records in the table.
func (lt *LangTab) Len() int {
	return lt.idx.Len()
}

// Kind returns the backing representation identifier.
func (lt *LangTab) Kind() index.Kind {
	return lt.idx.Kind()
}

// Records returns the held records in input order.
func (lt *LangTab) Records() []model.Record {
	return lt.idx.Records()
}

// SaveSnapshot persists the table to the store under name, using the codec
// and compression configured at construction.
func (lt *LangTab) SaveSnapshot(ctx context.Context, store blobstore.BlobStore, name string) error {
	start := time.Now()

	err := snapshot.Save(ctx, store, name, lt.idx, func(o *snapshot.Options) {
		o.Codec = lt.opts.codec
		o.Compression = lt.opts.compression
	})

	lt.metrics.RecordSnapshot(time.Since(start), err)
	lt.logger.LogSnapshot(ctx, name, err)

	return err
}

// LoadSnapshot reads a snapshot from the store and returns a LangTab backed
// by the representation kind recorded in the snapshot.
func LoadSnapshot(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (*LangTab, error) {
	opts := applyOptions(optFns)

	start := time.Now()

	idx, err := snapshot.Load(ctx, store, name)

	opts.metricsCollector.RecordSnapshot(time.Since(start), err)

	if err != nil {
		opts.logger.LogLoad(ctx, name, 0, err)
		return nil, err
	}

	opts.logger.LogLoad(ctx, name, idx.Len(), nil)

	return wrap(idx, opts), nil
}
