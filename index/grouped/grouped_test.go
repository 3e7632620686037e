package grouped

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/langtab/index"
	"github.com/hupe1980/langtab/model"
	"github.com/hupe1980/langtab/testutil"
)

var sample = []model.Record{
	{Year: 2003, Language: "Scala"},
	{Year: 2003, Language: "Groovy"},
	{Year: 2011, Language: "Elixir"},
	{Year: 2012, Language: "Julia"},
}

func build(t *testing.T, records []model.Record) *Index {
	t.Helper()

	idx := New()
	for _, rec := range records {
		require.NoError(t, idx.Insert(rec))
	}

	return idx
}

func TestYearCreated(t *testing.T) {
	idx := build(t, sample)

	year, err := idx.YearCreated("Groovy")
	require.NoError(t, err)
	require.Equal(t, 2003, year)

	_, err = idx.YearCreated("Python")
	require.ErrorIs(t, err, index.ErrNotFound)
}

func TestFirstSeenWinsAcrossYears(t *testing.T) {
	idx := build(t, []model.Record{
		{Year: 1991, Language: "Python"},
		{Year: 2000, Language: "Python"},
	})

	year, err := idx.YearCreated("Python")
	require.NoError(t, err)
	require.Equal(t, 1991, year)

	// Both occurrences still count in their years.
	require.Equal(t, 1, idx.CountCreatedInYear(1991))
	require.Equal(t, 1, idx.CountCreatedInYear(2000))
}

func TestCountCreatedInYear(t *testing.T) {
	idx := build(t, sample)

	require.Equal(t, 2, idx.CountCreatedInYear(2003))
	require.Equal(t, 1, idx.CountCreatedInYear(2011))
	require.Equal(t, 0, idx.CountCreatedInYear(1990))
}

func TestLanguages(t *testing.T) {
	idx := build(t, sample)

	require.Equal(t, []string{"Scala", "Groovy"}, idx.Languages(2003))
	require.Nil(t, idx.Languages(1990))
}

func TestRunCacheHandlesInterleavedYears(t *testing.T) {
	// Years alternate, so every insert leaves the current run. The cached
	// group pointer must re-resolve instead of appending to a stale group.
	idx := build(t, []model.Record{
		{Year: 2000, Language: "A"},
		{Year: 2001, Language: "B"},
		{Year: 2000, Language: "C"},
		{Year: 2001, Language: "D"},
		{Year: 2000, Language: "E"},
	})

	require.Equal(t, 3, idx.CountCreatedInYear(2000))
	require.Equal(t, 2, idx.CountCreatedInYear(2001))
	require.Equal(t, []string{"A", "C", "E"}, idx.Languages(2000))
	require.Equal(t, []string{"B", "D"}, idx.Languages(2001))
}

func TestRecordsPreservesInputOrder(t *testing.T) {
	in := []model.Record{
		{Year: 2012, Language: "Julia"},
		{Year: 2003, Language: "Scala"},
		{Year: 2011, Language: "Elixir"},
		{Year: 2003, Language: "Groovy"},
	}

	idx := build(t, in)
	require.Equal(t, in, idx.Records())
}

func TestRecordsRoundTripShuffled(t *testing.T) {
	rng := testutil.NewRNG(42)

	in := rng.Shuffle(rng.GenSortedRecords(500, 1950, 2020))
	idx := build(t, in)

	require.Equal(t, in, idx.Records())
}

func TestCountsDuplicates(t *testing.T) {
	idx := build(t, []model.Record{
		{Year: 1995, Language: "Ruby"},
		{Year: 1995, Language: "Ruby"},
	})

	require.Equal(t, 2, idx.CountCreatedInYear(1995))
	require.Equal(t, []string{"Ruby", "Ruby"}, idx.Languages(1995))
}

func TestInsertInvalidRecord(t *testing.T) {
	idx := New()

	err := idx.Insert(model.Record{Year: 2003})
	require.Error(t, err)

	var ir *model.ErrInvalidRecord
	require.ErrorAs(t, err, &ir)
	require.Equal(t, 0, idx.Len())
}

func TestEmptyIndex(t *testing.T) {
	idx := New()

	require.Equal(t, 0, idx.Len())
	require.Equal(t, 0, idx.CountCreatedInYear(2003))
	require.Empty(t, idx.Records())

	_, err := idx.YearCreated("Scala")
	require.ErrorIs(t, err, index.ErrNotFound)
}
