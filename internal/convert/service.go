package convert

import (
	"context"
	"fmt"
	"slices"
	"time"

	"unitconv/internal/adapters"
	"unitconv/internal/domain"
	"unitconv/internal/metrics"

	"github.com/sirupsen/logrus"
)

// Service is the conversion dispatcher: it validates a request, routes it
// to the static converter or the currency path, and assembles the result.
type Service struct {
	registry     *Registry
	static       *StaticConverter
	validator    *RequestValidator
	rateClient   adapters.RateClient
	cache        adapters.SnapshotCache
	baseCurrency string
	fetchTimeout time.Duration
}

func NewService(registry *Registry, rateClient adapters.RateClient, cache adapters.SnapshotCache, baseCurrency string, fetchTimeout time.Duration) *Service {
	return &Service{
		registry:     registry,
		static:       NewStaticConverter(registry),
		validator:    NewRequestValidator(registry),
		rateClient:   rateClient,
		cache:        cache,
		baseCurrency: baseCurrency,
		fetchTimeout: fetchTimeout,
	}
}

func (s *Service) Convert(ctx context.Context, req domain.ConversionRequest) (domain.Conversion, error) {
	if err := s.validator.Validate(req); err != nil {
		return domain.Conversion{}, err
	}

	var (
		value float64
		err   error
	)
	if req.Category == domain.CategoryCurrency {
		value, err = s.convertCurrency(ctx, req)
	} else {
		value, err = s.static.Convert(req.Category, req.FromUnit, req.ToUnit, req.Value)
	}
	if err != nil {
		return domain.Conversion{}, err
	}

	return domain.Conversion{
		Category: req.Category,
		FromUnit: req.FromUnit,
		ToUnit:   req.ToUnit,
		Value:    value,
	}, nil
}

// convertCurrency pivots through the snapshot's base currency the same way
// the static converter pivots through a base unit.
func (s *Service) convertCurrency(ctx context.Context, req domain.ConversionRequest) (float64, error) {
	snapshot, err := s.freshSnapshot(ctx)
	if err != nil {
		return 0, err
	}

	fromRate, ok := snapshot.Rate(req.FromUnit)
	if !ok {
		return 0, fmt.Errorf("%w: currency %q not present in %s rates", domain.ErrUnitNotFound, req.FromUnit, snapshot.Base)
	}
	toRate, ok := snapshot.Rate(req.ToUnit)
	if !ok {
		return 0, fmt.Errorf("%w: currency %q not present in %s rates", domain.ErrUnitNotFound, req.ToUnit, snapshot.Base)
	}

	return req.Value * (toRate / fromRate), nil
}

// freshSnapshot reads the cache and, when the snapshot is missing or stale,
// refreshes once and retries the read. A failed refresh surfaces the fetch
// error; stale data is never served silently.
func (s *Service) freshSnapshot(ctx context.Context) (*domain.RateSnapshot, error) {
	snapshot, state := s.cache.Get(s.baseCurrency)
	if state == domain.SnapshotFresh {
		return snapshot, nil
	}

	if err := s.RefreshRates(ctx); err != nil {
		return nil, err
	}

	snapshot, state = s.cache.Get(s.baseCurrency)
	if state == domain.SnapshotMissing {
		return nil, domain.ErrSnapshotMissing
	}
	// The snapshot was installed by the refresh above; serve it even if an
	// extremely small TTL already marks it stale.
	return snapshot, nil
}

// RefreshRates fetches a new snapshot for the configured base currency and
// installs it into the cache. The fetch is detached from the caller's
// cancellation: a refresh that is already under way stays useful to other
// requests even if this caller goes away.
func (s *Service) RefreshRates(ctx context.Context) error {
	fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
	defer cancel()

	snapshot, err := s.rateClient.FetchRates(fetchCtx, s.baseCurrency)
	if err != nil {
		metrics.RateRefreshesTotal.WithLabelValues("error").Inc()
		return err
	}
	s.cache.Put(snapshot)
	metrics.RateRefreshesTotal.WithLabelValues("success").Inc()

	logrus.WithFields(logrus.Fields{
		"base":  snapshot.Base,
		"codes": len(snapshot.Rates),
	}).Info("Exchange rate snapshot refreshed")
	return nil
}

// ListUnits returns the ordered unit definitions of a static category.
// Currency discovery goes through CurrencyCodes instead, since its unit
// set is defined by the current snapshot rather than the registry.
func (s *Service) ListUnits(category domain.Category) ([]domain.Unit, error) {
	return s.registry.Units(category)
}

// CurrencyCodes lists the codes covered by the current snapshot, sorted.
// A stale snapshot is still good enough for discovery.
func (s *Service) CurrencyCodes() ([]string, error) {
	snapshot, state := s.cache.Get(s.baseCurrency)
	if state == domain.SnapshotMissing {
		return nil, domain.ErrSnapshotMissing
	}
	codes := snapshot.Codes()
	slices.Sort(codes)
	return codes, nil
}

// Categories lists every recognized category.
func (s *Service) Categories() []domain.Category {
	return s.registry.Categories()
}

// CacheStatus reports the currency subsystem health without fetching.
func (s *Service) CacheStatus() domain.CacheStatus {
	snapshot, state := s.cache.Get(s.baseCurrency)
	if state == domain.SnapshotMissing {
		return domain.CacheStatus{}
	}
	return domain.CacheStatus{
		Present:   true,
		FetchedAt: snapshot.FetchedAt,
		Stale:     state == domain.SnapshotStale,
	}
}
