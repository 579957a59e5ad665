package repositories

import (
	"context"

	"github.com/SscSPs/smart_converter/internal/core/domain"
)

// RateCacheReader defines read operations on the local rate cache.
type RateCacheReader interface {
	// LoadRates reads the cached snapshot. It returns apperrors.ErrNotFound
	// when nothing has been cached yet.
	LoadRates(ctx context.Context) (*domain.RateSnapshot, error)
}

// RateCacheWriter defines write operations on the local rate cache.
type RateCacheWriter interface {
	// SaveRates replaces the cached table in full.
	SaveRates(ctx context.Context, rates domain.RateTable) (*domain.RateSnapshot, error)
}

// RateCacheRepositoryFacade combines all rate cache operations
type RateCacheRepositoryFacade interface {
	RateCacheReader
	RateCacheWriter
}

// RateProvider fetches the latest rate table from a remote source.
type RateProvider interface {
	// FetchLatest returns every rate relative to the configured base currency.
	FetchLatest(ctx context.Context) (domain.RateTable, error)
}
