// Package flatscan implements the backing representation with no
// precomputed structure: both queries scan the raw record sequence.
package flatscan

import (
	"github.com/hupe1980/langtab/index"
	"github.com/hupe1980/langtab/model"
)

func init() {
	index.Register(index.KindFlatScan, func() index.Index { return New() })
}

// Index holds records in input order and answers queries by linear scan.
type Index struct {
	records []model.Record
}

// New creates an empty flat-scan index.
func New() *Index {
	return &Index{}
}

// Insert appends one record.
func (i *Index) Insert(rec model.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	i.records = append(i.records, rec)
	return nil
}

// YearCreated scans forward and returns the year of the first match.
func (i *Index) YearCreated(language string) (int, error) {
	for _, rec := range i.records {
		if rec.Language == language {
			return rec.Year, nil
		}
	}
	return 0, index.ErrNotFound
}

// CountCreatedInYear counts matching records.
func (i *Index) CountCreatedInYear(year int) int {
	count := 0
	for _, rec := range i.records {
		if rec.Year == year {
			count++
		}
	}
	return count
}

// Len returns the number of records.
func (i *Index) Len() int { return len(i.records) }

// Kind returns index.KindFlatScan.
func (i *Index) Kind() index.Kind { return index.KindFlatScan }

// Records returns a copy of the held records in input order.
func (i *Index) Records() []model.Record {
	out := make([]model.Record, len(i.records))
	copy(out, i.records)
	return out
}
