// Package grouped implements the precomputed backing representation: a
// year→languages mapping built as a fold over the record sequence.
//
// Each year's group keeps its languages in input order plus a roaring bitmap
// of the record ordinals that landed in it, so counts are a bitmap
// cardinality lookup. An auxiliary language→year map records the first
// occurrence of every language in input order; when malformed input repeats
// a language under two different years, the first occurrence wins.
package grouped

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/langtab/index"
	"github.com/hupe1980/langtab/model"
)

func init() {
	index.Register(index.KindGrouped, func() index.Index { return New() })
}

// group is one year's entry: languages in input order and the ordinals of
// the records that produced them. The k-th set ordinal corresponds to
// langs[k], which is what lets Records reconstruct input order.
type group struct {
	langs []string
	ords  *roaring.Bitmap
}

// Index is the grouped mapping backend.
type Index struct {
	groups    map[int]*group
	firstSeen map[string]int

	// cur/curYear cache the group of the current run of equal years, so a
	// year-sorted input builds in a single pass with one map lookup per
	// distinct year rather than one per record. Arbitrary input order
	// degrades to a lookup per year change and stays correct.
	cur     *group
	curYear int

	n uint32 // next record ordinal
}

// New creates an empty grouped index.
func New() *Index {
	return &Index{
		groups:    make(map[int]*group),
		firstSeen: make(map[string]int),
	}
}

// Insert folds one record into the mapping.
func (i *Index) Insert(rec model.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	if i.cur == nil || rec.Year != i.curYear {
		g, ok := i.groups[rec.Year]
		if !ok {
			g = &group{ords: roaring.New()}
			i.groups[rec.Year] = g
		}
		i.cur = g
		i.curYear = rec.Year
	}

	i.cur.langs = append(i.cur.langs, rec.Language)
	i.cur.ords.Add(i.n)
	i.n++

	if _, ok := i.firstSeen[rec.Language]; !ok {
		i.firstSeen[rec.Language] = rec.Year
	}

	return nil
}

// YearCreated resolves the language through the first-seen lookup.
func (i *Index) YearCreated(language string) (int, error) {
	year, ok := i.firstSeen[language]
	if !ok {
		return 0, index.ErrNotFound
	}
	return year, nil
}

// CountCreatedInYear returns the cardinality of the year's ordinal bitmap,
// or 0 when the year has no group.
func (i *Index) CountCreatedInYear(year int) int {
	g, ok := i.groups[year]
	if !ok {
		return 0
	}
	return int(g.ords.GetCardinality())
}

// Len returns the number of records folded in.
func (i *Index) Len() int { return int(i.n) }

// Kind returns index.KindGrouped.
func (i *Index) Kind() index.Kind { return index.KindGrouped }

// Languages returns the languages recorded for the year in input order.
// An absent year yields nil.
func (i *Index) Languages(year int) []string {
	g, ok := i.groups[year]
	if !ok {
		return nil
	}
	out := make([]string, len(g.langs))
	copy(out, g.langs)
	return out
}

// Records reconstructs the record sequence in input order. Ordinals are
// globally unique across groups, so placing each group's k-th ordinal next
// to its k-th language rebuilds the original sequence exactly.
func (i *Index) Records() []model.Record {
	out := make([]model.Record, i.n)
	for year, g := range i.groups {
		it := g.ords.Iterator()
		for k := 0; it.HasNext(); k++ {
			out[it.Next()] = model.Record{Year: year, Language: g.langs[k]}
		}
	}
	return out
}
