package adapters

import (
	"context"

	"unitconv/internal/domain"
)

type RateClient interface {
	FetchRates(ctx context.Context, base string) (*domain.RateSnapshot, error)
}

type SnapshotCache interface {
	// Get returns the current snapshot for the base currency together with
	// its freshness state. A stale snapshot is still returned so callers
	// can decide whether to refresh or degrade.
	Get(base string) (*domain.RateSnapshot, domain.SnapshotState)
	// Put atomically replaces the snapshot for snapshot.Base.
	Put(snapshot *domain.RateSnapshot)
}
