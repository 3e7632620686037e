package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/langtab/blobstore"
	"github.com/hupe1980/langtab/model"
)

const sample = `year,language
2003,Scala
2003,Groovy
2011,Elixir
2012,Julia
`

func TestRead(t *testing.T) {
	records, err := Read(strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, []model.Record{
		{Year: 2003, Language: "Scala"},
		{Year: 2003, Language: "Groovy"},
		{Year: 2011, Language: "Elixir"},
		{Year: 2012, Language: "Julia"},
	}, records)
}

func TestReadOptions(t *testing.T) {
	input := "# created-by: export\n1995\tRuby\n"

	records, err := Read(strings.NewReader(input), func(o *Options) {
		o.Comma = '\t'
		o.Comment = '#'
		o.Header = false
	})
	require.NoError(t, err)
	require.Equal(t, []model.Record{{Year: 1995, Language: "Ruby"}}, records)
}

func TestReadEmptyInput(t *testing.T) {
	records, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, records)

	// A header-only table is a valid empty record set.
	records, err = Read(strings.NewReader("year,language\n"))
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestReadInvalidYear(t *testing.T) {
	input := "year,language\n2003,Scala\nunknown,Foo\n"

	_, err := Read(strings.NewReader(input))
	require.Error(t, err)

	var ir *model.ErrInvalidRecord
	require.ErrorAs(t, err, &ir)
	require.Equal(t, 3, ir.Line)
	require.Equal(t, "year", ir.Field)
}

func TestReadErrorLineSkipsCommentsAndBlanks(t *testing.T) {
	// Comment and blank lines before the bad row must not shift the
	// reported position; it has to be the physical input line.
	input := "# exported 2024-01-01\n\n2003,Scala\noops,Go\n"

	_, err := Read(strings.NewReader(input), func(o *Options) {
		o.Comment = '#'
		o.Header = false
	})
	require.Error(t, err)

	var ir *model.ErrInvalidRecord
	require.ErrorAs(t, err, &ir)
	require.Equal(t, 4, ir.Line)
	require.Equal(t, "year", ir.Field)
}

func TestReadEmptyLanguage(t *testing.T) {
	input := "year,language\n2003,   \n"

	_, err := Read(strings.NewReader(input))

	var ir *model.ErrInvalidRecord
	require.ErrorAs(t, err, &ir)
	require.Equal(t, "language", ir.Field)
}

func TestReadWrongColumnCount(t *testing.T) {
	input := "year,language\n2003,Scala,extra\n"

	_, err := Read(strings.NewReader(input))

	var ir *model.ErrInvalidRecord
	require.ErrorAs(t, err, &ir)
	require.Equal(t, "record", ir.Field)
	require.Equal(t, 2, ir.Line)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "languages.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	records, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 4)
}

func TestFetch(t *testing.T) {
	ctx := context.Background()

	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "languages.csv", []byte(sample)))

	records, err := Fetch(ctx, store, "languages.csv")
	require.NoError(t, err)
	require.Len(t, records, 4)

	_, err = Fetch(ctx, store, "missing.csv")
	require.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestFetchAllPreservesShardOrder(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	var names []string
	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("shard-%d.csv", i)
		content := fmt.Sprintf("year,language\n%d,Lang%d\n", 2000+i, i)
		require.NoError(t, store.Put(ctx, name, []byte(content)))
		names = append(names, name)
	}

	records, err := FetchAll(ctx, store, names)
	require.NoError(t, err)
	require.Len(t, records, 8)
	for i, rec := range records {
		require.Equal(t, 2000+i, rec.Year)
		require.Equal(t, fmt.Sprintf("Lang%d", i), rec.Language)
	}
}

func TestFetchAllPropagatesShardError(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	require.NoError(t, store.Put(ctx, "good.csv", []byte(sample)))
	require.NoError(t, store.Put(ctx, "bad.csv", []byte("year,language\nnope,X\n")))

	_, err := FetchAll(ctx, store, []string{"good.csv", "bad.csv"})
	require.Error(t, err)

	var ir *model.ErrInvalidRecord
	require.ErrorAs(t, err, &ir)
}
