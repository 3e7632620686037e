// Package manifest tracks the published snapshot set of an index.
//
// The manifest itself is immutable: every commit writes a new numbered
// MANIFEST file and then repoints CURRENT at it. On a plain blob store the
// CURRENT swap is last-writer-wins; backed by a conditional-commit store it
// becomes a compare-and-set, rejecting concurrent publishers.
package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/hupe1980/langtab/blobstore"
	"github.com/hupe1980/langtab/index"
)

const (
	// ManifestFileName is the prefix of numbered manifest blobs.
	ManifestFileName = "MANIFEST"
	// CurrentFileName is the pointer blob naming the live manifest.
	CurrentFileName = "CURRENT"
	// CurrentVersion is the manifest schema version.
	CurrentVersion = 1
)

// Manifest describes the published snapshots at a specific point in time.
type Manifest struct {
	Version   int            `json:"version"`
	ID        uint64         `json:"id"`
	Snapshots []SnapshotInfo `json:"snapshots"`
}

// SnapshotInfo describes a single published snapshot blob.
type SnapshotInfo struct {
	Name          string     `json:"name"` // Blob name relative to the store root
	Kind          index.Kind `json:"kind"`
	RecordCount   int        `json:"record_count"`
	CreatedAtUnix int64      `json:"created_at_unix"`
}

// Lookup returns the snapshot entry with the given name.
func (m *Manifest) Lookup(name string) (SnapshotInfo, bool) {
	for _, info := range m.Snapshots {
		if info.Name == name {
			return info, true
		}
	}
	return SnapshotInfo{}, false
}

// Add appends a snapshot entry, replacing an existing entry of the same name.
func (m *Manifest) Add(info SnapshotInfo) {
	for i, existing := range m.Snapshots {
		if existing.Name == info.Name {
			m.Snapshots[i] = info
			return
		}
	}
	m.Snapshots = append(m.Snapshots, info)
}

// Remove deletes the snapshot entry with the given name, reporting whether it
// was present.
func (m *Manifest) Remove(name string) bool {
	for i, info := range m.Snapshots {
		if info.Name == name {
			m.Snapshots = append(m.Snapshots[:i], m.Snapshots[i+1:]...)
			return true
		}
	}
	return false
}

// Store manages the manifest blobs and atomic updates.
type Store struct {
	store blobstore.BlobStore
	mu    sync.Mutex
}

// NewStore creates a new manifest store on top of a blob store.
func NewStore(store blobstore.BlobStore) *Store {
	return &Store{store: store}
}

// Load loads the current manifest. A store without a CURRENT pointer yields
// an empty manifest at the current schema version.
func (s *Store) Load(ctx context.Context) (*Manifest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

func (s *Store) load(ctx context.Context) (*Manifest, error) {
	current, err := blobstore.ReadAll(ctx, s.store, CurrentFileName)
	if errors.Is(err, blobstore.ErrNotFound) {
		return &Manifest{Version: CurrentVersion}, nil
	}
	if err != nil {
		return nil, err
	}

	data, err := blobstore.ReadAll(ctx, s.store, string(current))
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", current, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", current, err)
	}

	if m.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported manifest version: %d (expected %d)", m.Version, CurrentVersion)
	}

	return &m, nil
}

// Commit loads the current manifest, applies mutate, and publishes the
// result as a new numbered manifest blob before repointing CURRENT.
//
// When the underlying store rejects the CURRENT write (conditional-commit
// stores do on concurrent publishers), nothing is published: the numbered
// manifest blob becomes garbage and the store's error is returned unchanged.
func (s *Store) Commit(ctx context.Context, mutate func(m *Manifest) error) (*Manifest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if err := mutate(m); err != nil {
		return nil, err
	}

	m.Version = CurrentVersion
	m.ID++

	filename := fmt.Sprintf("%s-%06d.json", ManifestFileName, m.ID)

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}

	if err := s.store.Put(ctx, filename, data); err != nil {
		return nil, fmt.Errorf("put manifest %s: %w", filename, err)
	}

	if err := s.store.Put(ctx, CurrentFileName, []byte(filename)); err != nil {
		return nil, fmt.Errorf("update %s: %w", CurrentFileName, err)
	}

	return m, nil
}
