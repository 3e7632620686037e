// Package testutil provides testing utilities for langtab.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating deterministic random record sets in
// sorted or shuffled order, so backend equivalence can be checked over
// inputs larger than hand-written fixtures.
package testutil

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/langtab/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Languages is a pool of real language names used by the generators.
var Languages = []string{
	"Fortran", "Lisp", "COBOL", "BASIC", "Pascal", "C", "Smalltalk",
	"Prolog", "ML", "Ada", "C++", "Objective-C", "Erlang", "Perl",
	"Haskell", "Python", "Ruby", "Lua", "Java", "JavaScript", "PHP",
	"OCaml", "C#", "Scala", "Groovy", "F#", "Clojure", "Go", "Rust",
	"Kotlin", "Elixir", "Dart", "Julia", "TypeScript", "Swift", "Zig",
}

// GenRecords generates n records with years drawn uniformly from
// [minYear, maxYear] and language names made unique by an ordinal suffix.
// The result order is random in year.
func (r *RNG) GenRecords(n, minYear, maxYear int) []model.Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxYear - minYear + 1
	records := make([]model.Record, n)

	for i := range records {
		records[i] = model.Record{
			Year:     minYear + r.rand.Intn(span),
			Language: fmt.Sprintf("%s-%d", Languages[i%len(Languages)], i),
		}
	}

	return records
}

// GenSortedRecords generates n records like GenRecords but in ascending
// year order, matching a pre-sorted input table.
func (r *RNG) GenSortedRecords(n, minYear, maxYear int) []model.Record {
	records := r.GenRecords(n, minYear, maxYear)
	sort.SliceStable(records, func(i, j int) bool { return records[i].Year < records[j].Year })
	return records
}

// Shuffle returns a shuffled copy of records, leaving the input intact.
func (r *RNG) Shuffle(records []model.Record) []model.Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Record, len(records))
	copy(out, records)

	r.rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return out
}

// WithDuplicates returns a copy of records with every k-th record repeated,
// so duplicate (year, language) pairs occur in the input.
func (r *RNG) WithDuplicates(records []model.Record, k int) []model.Record {
	out := make([]model.Record, 0, len(records)+len(records)/k+1)
	for i, rec := range records {
		out = append(out, rec)
		if i%k == 0 {
			out = append(out, rec)
		}
	}
	return out
}
