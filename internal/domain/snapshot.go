package domain

import "time"

// RateSnapshot is an immutable set of exchange rates relative to Base.
// A snapshot is replaced wholesale on refresh, never edited in place.
type RateSnapshot struct {
	Base      string
	Rates     map[string]float64
	FetchedAt time.Time
}

// Rate returns the rate of code relative to the snapshot base.
// The base itself always has rate 1, even when absent from the map.
func (s *RateSnapshot) Rate(code string) (float64, bool) {
	if code == s.Base {
		return 1, true
	}
	v, ok := s.Rates[code]
	return v, ok
}

// Codes returns the currency codes covered by the snapshot, base included.
func (s *RateSnapshot) Codes() []string {
	codes := make([]string, 0, len(s.Rates)+1)
	if _, ok := s.Rates[s.Base]; !ok {
		codes = append(codes, s.Base)
	}
	for code := range s.Rates {
		codes = append(codes, code)
	}
	return codes
}

// SnapshotState classifies the cache's answer for a base currency.
type SnapshotState int

const (
	SnapshotMissing SnapshotState = iota
	SnapshotFresh
	SnapshotStale
)

// CacheStatus describes the currency subsystem health without fetching.
type CacheStatus struct {
	Present   bool
	FetchedAt time.Time
	Stale     bool
}
