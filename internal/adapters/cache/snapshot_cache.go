package cache

import (
	"fmt"
	"time"

	"unitconv/internal/domain"

	"github.com/dgraph-io/ristretto"
)

// RistrettoSnapshotCache keeps the latest rate snapshot per base currency.
// Snapshots are immutable values replaced wholesale, so concurrent readers
// observe either the old or the new snapshot, never a mix.
type RistrettoSnapshotCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewSnapshotCache(ttl time.Duration) (*RistrettoSnapshotCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 640,
		MaxCost:     64,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create snapshot cache failed: %w", err)
	}
	return &RistrettoSnapshotCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoSnapshotCache) Get(base string) (*domain.RateSnapshot, domain.SnapshotState) {
	v, ok := c.cache.Get(base)
	if !ok {
		return nil, domain.SnapshotMissing
	}
	snapshot, ok := v.(*domain.RateSnapshot)
	if !ok {
		return nil, domain.SnapshotMissing
	}
	if time.Since(snapshot.FetchedAt) > c.ttl {
		return snapshot, domain.SnapshotStale
	}
	return snapshot, domain.SnapshotFresh
}

// Put installs the snapshot and waits for the write to become visible,
// so a successful refresh is observable by the very next Get.
func (c *RistrettoSnapshotCache) Put(snapshot *domain.RateSnapshot) {
	c.cache.Set(snapshot.Base, snapshot, 1)
	c.cache.Wait()
}

func (c *RistrettoSnapshotCache) Close() { c.cache.Close() }
