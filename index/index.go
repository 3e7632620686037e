// Package index provides the capability interface and registry for
// year→language index backends.
package index

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hupe1980/langtab/model"
)

// ErrNotFound is returned by YearCreated when no record matches the language.
//
// Absence is an error only for YearCreated: a caller must be able to
// distinguish "not found" from a valid zero or negative year, so no sentinel
// year value is ever returned. CountCreatedInYear has the opposite policy:
// an absent year is a valid answer of zero.
var ErrNotFound = errors.New("language not found")

// ErrUnknownKind indicates a backend kind that is not registered.
type ErrUnknownKind struct {
	Kind Kind
}

func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("unknown index kind: %q", string(e.Kind))
}

// Kind identifies a backing representation.
type Kind string

// Built-in backing representations.
const (
	// KindFlatScan keeps the raw record sequence; both queries scan it.
	KindFlatScan Kind = "flatscan"
	// KindColumnar keeps parallel year/language columns; queries scan one column.
	KindColumnar Kind = "columnar"
	// KindGrouped precomputes the year→languages mapping with per-year
	// ordinal bitmaps and a language→year first-seen lookup.
	KindGrouped Kind = "grouped"
)

// Index answers the two lookup queries over a (year, language) record set.
//
// All backing representations must produce identical answers to both queries
// over the same input, including NotFound outcomes and zero counts.
//
// Implementations are not safe for concurrent mutation; callers needing
// concurrent writers must serialize externally.
type Index interface {
	// Insert appends one record to the index.
	Insert(rec model.Record) error

	// YearCreated returns the year of the first record, in input order,
	// whose language equals the given string (exact, case-sensitive).
	// It returns ErrNotFound when no record matches.
	YearCreated(language string) (int, error)

	// CountCreatedInYear returns the number of language entries recorded for
	// the year. Duplicate entries are counted. An absent year yields 0.
	CountCreatedInYear(year int) int

	// Len returns the number of records held by the index.
	Len() int

	// Kind returns the backing representation identifier.
	Kind() Kind

	// Records returns the held records in input order.
	Records() []model.Record
}

// Factory constructs an empty index of one backing representation.
type Factory func() Index

var registry = map[Kind]Factory{}

// Register makes a backend kind constructible via New.
// Backend packages call it from init.
func Register(kind Kind, f Factory) {
	registry[kind] = f
}

// New returns an empty index of the given kind.
func New(kind Kind) (Index, error) {
	f, ok := registry[kind]
	if !ok {
		return nil, &ErrUnknownKind{Kind: kind}
	}
	return f(), nil
}

// Kinds returns the registered backend kinds in stable order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Build constructs an index of the given kind from an ordered record
// sequence. It fails on the first invalid record; no partially built index
// is returned.
func Build(kind Kind, records []model.Record) (Index, error) {
	idx, err := New(kind)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if err := idx.Insert(rec); err != nil {
			return nil, err
		}
	}
	return idx, nil
}
