package blobstore

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// CachingStore wraps a BlobStore and caches whole blobs in memory.
//
// Source tables and snapshots are small and decoded sequentially, so caching
// whole blobs beats block granularity here. Concurrent first reads of the
// same blob are collapsed into one fetch from the inner store.
//
// Blobs larger than the budget are served straight from the inner store and
// never cached. Writes and deletes invalidate the cached copy.
type CachingStore struct {
	inner    BlobStore
	maxBytes int64

	mu       sync.RWMutex
	blobs    map[string][]byte
	curBytes int64

	group singleflight.Group
}

// NewCachingStore creates a new CachingStore.
// maxBytes defaults to 64MB if <= 0.
func NewCachingStore(inner BlobStore, maxBytes int64) *CachingStore {
	if maxBytes <= 0 {
		maxBytes = 64 << 20
	}
	return &CachingStore{
		inner:    inner,
		maxBytes: maxBytes,
		blobs:    make(map[string][]byte),
	}
}

// Open returns a handle backed by the cached bytes, fetching them from the
// inner store on first use.
func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	s.mu.RLock()
	data, ok := s.blobs[name]
	s.mu.RUnlock()
	if ok {
		return NewBytesBlob(data), nil
	}

	v, err, _ := s.group.Do(name, func() (any, error) {
		fetched, err := ReadAll(ctx, s.inner, name)
		if err != nil {
			return nil, err
		}
		s.admit(name, fetched)
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return NewBytesBlob(v.([]byte)), nil
}

// admit stores the blob if it fits the remaining budget.
func (s *CachingStore) admit(name string, data []byte) {
	size := int64(len(data))
	if size > s.maxBytes {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.blobs[name]; ok {
		s.curBytes -= int64(len(old))
	}
	if s.curBytes+size > s.maxBytes {
		// Budget exhausted; drop everything rather than track recency.
		// The cache refills on demand.
		s.blobs = make(map[string][]byte)
		s.curBytes = 0
	}
	s.blobs[name] = data
	s.curBytes += size
}

func (s *CachingStore) invalidate(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.blobs[name]; ok {
		s.curBytes -= int64(len(old))
		delete(s.blobs, name)
	}
}

// Create passes through to the inner store and invalidates the name, since
// the blob's content is about to change.
func (s *CachingStore) Create(ctx context.Context, name string) (WritableBlob, error) {
	s.invalidate(name)
	return s.inner.Create(ctx, name)
}

// Put writes through and invalidates the cached copy.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	s.invalidate(name)
	return s.inner.Put(ctx, name, data)
}

// Delete removes the blob and its cached copy.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	s.invalidate(name)
	return s.inner.Delete(ctx, name)
}

// List passes through to the inner store.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Stats returns the current cache occupancy.
func (s *CachingStore) Stats() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fmt.Sprintf("cached=%d bytes=%d/%d", len(s.blobs), s.curBytes, s.maxBytes)
}
