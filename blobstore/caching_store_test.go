package blobstore

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// countingStore counts Open calls reaching the inner store.
type countingStore struct {
	BlobStore
	opens atomic.Int64
}

func (c *countingStore) Open(ctx context.Context, name string) (Blob, error) {
	c.opens.Add(1)
	return c.BlobStore.Open(ctx, name)
}

func TestCachingStoreReadThrough(t *testing.T) {
	ctx := context.Background()

	inner := &countingStore{BlobStore: NewMemoryStore()}
	require.NoError(t, inner.Put(ctx, "a", []byte("payload-a")))

	store := NewCachingStore(inner, 1<<20)

	for i := 0; i < 3; i++ {
		data, err := ReadAll(ctx, store, "a")
		require.NoError(t, err)
		require.Equal(t, "payload-a", string(data))
	}

	// Only the first read hits the inner store.
	require.Equal(t, int64(1), inner.opens.Load())
}

func TestCachingStoreInvalidateOnPut(t *testing.T) {
	ctx := context.Background()

	inner := &countingStore{BlobStore: NewMemoryStore()}
	require.NoError(t, inner.Put(ctx, "a", []byte("v1")))

	store := NewCachingStore(inner, 1<<20)

	data, err := ReadAll(ctx, store, "a")
	require.NoError(t, err)
	require.Equal(t, "v1", string(data))

	require.NoError(t, store.Put(ctx, "a", []byte("v2")))

	data, err = ReadAll(ctx, store, "a")
	require.NoError(t, err)
	require.Equal(t, "v2", string(data))
}

func TestCachingStoreOversizedBlobNotCached(t *testing.T) {
	ctx := context.Background()

	inner := &countingStore{BlobStore: NewMemoryStore()}
	require.NoError(t, inner.Put(ctx, "big", make([]byte, 128)))

	store := NewCachingStore(inner, 16)

	for i := 0; i < 2; i++ {
		_, err := ReadAll(ctx, store, "big")
		require.NoError(t, err)
	}
	require.Equal(t, int64(2), inner.opens.Load())
}

func TestCachingStoreConcurrentFirstRead(t *testing.T) {
	ctx := context.Background()

	inner := &countingStore{BlobStore: NewMemoryStore()}
	require.NoError(t, inner.Put(ctx, "a", []byte("payload")))

	store := NewCachingStore(inner, 1<<20)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := ReadAll(ctx, store, "a")
			require.NoError(t, err)
			require.Equal(t, "payload", string(data))
		}()
	}
	wg.Wait()

	// Singleflight collapses the stampede; allow a little slack for reads
	// that start after the flight completes but before admit finishes.
	require.LessOrEqual(t, inner.opens.Load(), int64(2))
}

func TestCachingStoreMissPropagatesNotFound(t *testing.T) {
	store := NewCachingStore(NewMemoryStore(), 0)

	_, err := store.Open(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}
