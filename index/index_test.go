package index_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/langtab/index"
	_ "github.com/hupe1980/langtab/index/columnar"
	_ "github.com/hupe1980/langtab/index/flatscan"
	_ "github.com/hupe1980/langtab/index/grouped"
	"github.com/hupe1980/langtab/model"
)

func TestRegisteredKinds(t *testing.T) {
	require.Equal(t, []index.Kind{
		index.KindColumnar,
		index.KindFlatScan,
		index.KindGrouped,
	}, index.Kinds())
}

func TestNew(t *testing.T) {
	for _, kind := range index.Kinds() {
		idx, err := index.New(kind)
		require.NoError(t, err)
		require.Equal(t, kind, idx.Kind())
		require.Equal(t, 0, idx.Len())
	}
}

func TestNewUnknownKind(t *testing.T) {
	_, err := index.New("btree")
	require.Error(t, err)

	var uk *index.ErrUnknownKind
	require.ErrorAs(t, err, &uk)
	require.Equal(t, index.Kind("btree"), uk.Kind)
}

func TestBuild(t *testing.T) {
	records := []model.Record{
		{Year: 2003, Language: "Scala"},
		{Year: 2012, Language: "Julia"},
	}

	idx, err := index.Build(index.KindFlatScan, records)
	require.NoError(t, err)
	require.Equal(t, 2, idx.Len())
	require.Equal(t, records, idx.Records())
}

func TestBuildFailsFast(t *testing.T) {
	records := []model.Record{
		{Year: 2003, Language: "Scala"},
		{Year: 2011}, // invalid
		{Year: 2012, Language: "Julia"},
	}

	idx, err := index.Build(index.KindGrouped, records)
	require.Error(t, err)
	require.Nil(t, idx)
}
