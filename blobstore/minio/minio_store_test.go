package minio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrimName(t *testing.T) {
	s := &Store{prefix: "langtab"}

	tests := []struct {
		key  string
		want string
		ok   bool
	}{
		{key: "langtab/languages.csv", want: "languages.csv", ok: true},
		{key: "langtab/snapshots/000001.ltb", want: "snapshots/000001.ltb", ok: true},
		// The prefix object itself must not list as an empty name.
		{key: "langtab", want: "", ok: false},
		{key: "langtab/", want: "", ok: false},
	}

	for _, tt := range tests {
		name, ok := s.trimName(tt.key)
		require.Equal(t, tt.ok, ok, "key %q", tt.key)
		require.Equal(t, tt.want, name, "key %q", tt.key)
	}
}

func TestTrimNameNoPrefix(t *testing.T) {
	s := &Store{}

	name, ok := s.trimName("languages.csv")
	require.True(t, ok)
	require.Equal(t, "languages.csv", name)
}
