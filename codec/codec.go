// Package codec centralizes payload encoding for persisted index snapshots.
//
// Codec selection is a breaking-change boundary: bytes persisted with one
// codec may not decode with another. Snapshot files are self-describing and
// store the codec name in their header, so the right codec is selected by
// name on load.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Default is the default codec used by the library.
//
// This affects newly-created snapshots only; existing files record their
// codec name and are decoded with it regardless of the default.
var Default Codec = GoJSON{}

// MustMarshal is a helper for internal tests.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
