package langtab_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/langtab/index"
	_ "github.com/hupe1980/langtab/index/columnar"
	_ "github.com/hupe1980/langtab/index/flatscan"
	_ "github.com/hupe1980/langtab/index/grouped"
	"github.com/hupe1980/langtab/model"
	"github.com/hupe1980/langtab/testutil"
)

// forEachKind runs the same assertions against every registered backend, so
// the query contract is pinned down once and checked everywhere.
func forEachKind(t *testing.T, fn func(t *testing.T, kind index.Kind)) {
	t.Helper()

	for _, kind := range index.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			fn(t, kind)
		})
	}
}

func TestLookupAndCount(t *testing.T) {
	records := []model.Record{
		{Year: 2003, Language: "Scala"},
		{Year: 2003, Language: "Groovy"},
		{Year: 2011, Language: "Elixir"},
		{Year: 2012, Language: "Julia"},
	}

	forEachKind(t, func(t *testing.T, kind index.Kind) {
		idx, err := index.Build(kind, records)
		require.NoError(t, err)

		year, err := idx.YearCreated("Julia")
		require.NoError(t, err)
		require.Equal(t, 2012, year)

		_, err = idx.YearCreated("Python")
		require.ErrorIs(t, err, index.ErrNotFound)

		require.Equal(t, 2, idx.CountCreatedInYear(2003))
		require.Equal(t, 0, idx.CountCreatedInYear(1990))
	})
}

func TestEmptyRecordSet(t *testing.T) {
	forEachKind(t, func(t *testing.T, kind index.Kind) {
		idx, err := index.Build(kind, nil)
		require.NoError(t, err)
		require.Equal(t, 0, idx.Len())

		_, err = idx.YearCreated("anything")
		require.ErrorIs(t, err, index.ErrNotFound)

		require.Equal(t, 0, idx.CountCreatedInYear(2000))
	})
}

func TestDuplicateEntriesAreCounted(t *testing.T) {
	records := []model.Record{
		{Year: 1995, Language: "Ruby"},
		{Year: 1995, Language: "Ruby"},
	}

	forEachKind(t, func(t *testing.T, kind index.Kind) {
		idx, err := index.Build(kind, records)
		require.NoError(t, err)

		require.Equal(t, 2, idx.CountCreatedInYear(1995))

		year, err := idx.YearCreated("Ruby")
		require.NoError(t, err)
		require.Equal(t, 1995, year)
	})
}

func TestInvalidRecordRejectsBuild(t *testing.T) {
	records := []model.Record{
		{Year: 2003, Language: "Scala"},
		{Year: 2011}, // empty language
	}

	forEachKind(t, func(t *testing.T, kind index.Kind) {
		idx, err := index.Build(kind, records)
		require.Error(t, err)
		require.Nil(t, idx)

		var ir *model.ErrInvalidRecord
		require.ErrorAs(t, err, &ir)
	})
}

func TestFirstOccurrenceTieBreak(t *testing.T) {
	// A language repeated under two years resolves to the year of its first
	// record in input order, on every backend.
	records := []model.Record{
		{Year: 1991, Language: "Python"},
		{Year: 2000, Language: "Python"},
	}

	forEachKind(t, func(t *testing.T, kind index.Kind) {
		idx, err := index.Build(kind, records)
		require.NoError(t, err)

		year, err := idx.YearCreated("Python")
		require.NoError(t, err)
		require.Equal(t, 1991, year)
	})
}

func TestIncrementalInsertMatchesBuild(t *testing.T) {
	records := []model.Record{
		{Year: 2012, Language: "Julia"},
		{Year: 2003, Language: "Scala"},
		{Year: 2011, Language: "Elixir"},
		{Year: 2003, Language: "Groovy"},
	}

	forEachKind(t, func(t *testing.T, kind index.Kind) {
		built, err := index.Build(kind, records)
		require.NoError(t, err)

		inserted, err := index.New(kind)
		require.NoError(t, err)
		for _, rec := range records {
			require.NoError(t, inserted.Insert(rec))
		}

		requireSameAnswers(t, built, inserted, records)
	})
}

func TestRebuildFromRecordsIsIdempotent(t *testing.T) {
	rng := testutil.NewRNG(7)
	records := rng.GenSortedRecords(200, 1950, 2020)

	forEachKind(t, func(t *testing.T, kind index.Kind) {
		first, err := index.Build(kind, records)
		require.NoError(t, err)

		second, err := index.Build(kind, first.Records())
		require.NoError(t, err)

		require.Equal(t, first.Records(), second.Records())
		requireSameAnswers(t, first, second, records)
	})
}

func TestBackendsAgreeOnRandomizedInput(t *testing.T) {
	rng := testutil.NewRNG(1234)

	sorted := rng.GenSortedRecords(1000, 1950, 2020)
	withDupes := rng.WithDuplicates(sorted, 17)
	shuffled := rng.Shuffle(withDupes)

	inputs := map[string][]model.Record{
		"sorted":   sorted,
		"dupes":    withDupes,
		"shuffled": shuffled,
	}

	for name, records := range inputs {
		t.Run(name, func(t *testing.T) {
			reference, err := index.Build(index.KindFlatScan, records)
			require.NoError(t, err)

			for _, kind := range index.Kinds() {
				if kind == index.KindFlatScan {
					continue
				}

				idx, err := index.Build(kind, records)
				require.NoError(t, err)

				requireSameAnswers(t, reference, idx, records)
			}
		})
	}
}

// requireSameAnswers checks that two indexes give identical answers for every
// language and year present in records, plus probes for absent keys.
func requireSameAnswers(t *testing.T, want, got index.Index, records []model.Record) {
	t.Helper()

	require.Equal(t, want.Len(), got.Len())

	years := make(map[int]struct{})
	for _, rec := range records {
		years[rec.Year] = struct{}{}

		wantYear, wantErr := want.YearCreated(rec.Language)
		gotYear, gotErr := got.YearCreated(rec.Language)
		require.Equal(t, wantErr, gotErr, "language %q", rec.Language)
		require.Equal(t, wantYear, gotYear, "language %q", rec.Language)
	}

	for year := range years {
		require.Equal(t, want.CountCreatedInYear(year), got.CountCreatedInYear(year),
			fmt.Sprintf("year %d", year))
	}

	// Absent keys must miss identically.
	_, wantErr := want.YearCreated("no-such-language")
	_, gotErr := got.YearCreated("no-such-language")
	require.Equal(t, wantErr, gotErr)
	require.Equal(t, want.CountCreatedInYear(1), got.CountCreatedInYear(1))
}
