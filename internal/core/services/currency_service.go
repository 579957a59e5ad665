package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/smart_converter/internal/apperrors"
	"github.com/SscSPs/smart_converter/internal/catalog"
	"github.com/SscSPs/smart_converter/internal/core/domain"
	portsrepo "github.com/SscSPs/smart_converter/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/smart_converter/internal/core/ports/services"
	"github.com/SscSPs/smart_converter/internal/dto"
	"github.com/shopspring/decimal"
)

// currencyService converts amounts using a rate table cached on disk.
//
// The cache is Cold until the first conversion fetches the table and writes
// it; from then on every request reads the file and no network call is made.
// The table is only replaced by RefreshRates or when maxAge is set and the
// file has outlived it.
type currencyService struct {
	BaseService
	rateCache portsrepo.RateCacheRepositoryFacade
	provider  portsrepo.RateProvider
	catalog   *catalog.Catalog
	maxAge    time.Duration
	now       func() time.Time
}

// CurrencyServiceOption is a functional option for configuring the currency service
type CurrencyServiceOption func(*currencyService)

// WithRateMaxAge makes cached tables older than maxAge refresh on next use.
// Zero, the default, keeps a table forever.
func WithRateMaxAge(maxAge time.Duration) CurrencyServiceOption {
	return func(s *currencyService) {
		s.maxAge = maxAge
	}
}

// WithClock overrides the time source used for staleness checks.
func WithClock(now func() time.Time) CurrencyServiceOption {
	return func(s *currencyService) {
		s.now = now
	}
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(
	rateCache portsrepo.RateCacheRepositoryFacade,
	provider portsrepo.RateProvider,
	cat *catalog.Catalog,
	options ...CurrencyServiceOption,
) portssvc.CurrencySvcFacade {
	s := &currencyService{
		rateCache: rateCache,
		provider:  provider,
		catalog:   cat,
		now:       time.Now,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *currencyService) ListCurrencies(ctx context.Context) []string {
	return s.catalog.Currencies()
}

func (s *currencyService) GetRates(ctx context.Context) (*domain.RateSnapshot, error) {
	return s.loadRates(ctx)
}

func (s *currencyService) RefreshRates(ctx context.Context) (*domain.RateSnapshot, error) {
	return s.refresh(ctx)
}

// ConvertCurrency computes amount * rate[to] / rate[from], rounded to 2 places.
// The amount itself is rounded to 2 places first, so converting a currency to
// itself returns the amount unchanged. A code missing from the table yields
// apperrors.ErrUnsupportedPair.
func (s *currencyService) ConvertCurrency(ctx context.Context, req dto.ConvertCurrencyRequest) (*domain.CurrencyConversion, error) {
	from := strings.ToUpper(strings.TrimSpace(req.FromCurrencyCode))
	to := strings.ToUpper(strings.TrimSpace(req.ToCurrencyCode))
	if len(from) != 3 || len(to) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	amount := req.Amount.Round(2)

	snap, err := s.loadRates(ctx)
	if err != nil {
		return nil, err
	}

	fromRate, okFrom := snap.Rates.Rate(from)
	toRate, okTo := snap.Rates.Rate(to)
	if !okFrom || !okTo {
		return nil, fmt.Errorf("%w: conversion not available for %s to %s", apperrors.ErrUnsupportedPair, from, to)
	}

	converted := amount.
		Mul(decimal.NewFromFloat(toRate)).
		Div(decimal.NewFromFloat(fromRate)).
		Round(2)

	return &domain.CurrencyConversion{
		Amount:           amount,
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		FromRate:         fromRate,
		ToRate:           toRate,
		Converted:        converted,
		Text:             fmt.Sprintf("%s %s = %s %s", amount.String(), from, converted.String(), to),
	}, nil
}

func (s *currencyService) loadRates(ctx context.Context) (*domain.RateSnapshot, error) {
	snap, err := s.rateCache.LoadRates(ctx)
	switch {
	case err == nil && !snap.Stale(s.now(), s.maxAge):
		return snap, nil
	case err == nil:
		s.LogInfo(ctx, "Cached rates are stale, refreshing", slog.Time("fetched_at", snap.FetchedAt))
		fresh, rerr := s.refresh(ctx)
		if rerr != nil {
			// Serve the stale table rather than failing the conversion
			s.LogError(ctx, rerr, "Failed to refresh stale rates, using cached table")
			return snap, nil
		}
		return fresh, nil
	case errors.Is(err, apperrors.ErrNotFound):
		s.LogInfo(ctx, "Rate cache is cold, fetching latest rates")
		return s.refresh(ctx)
	default:
		s.LogError(ctx, err, "Failed to read rate cache")
		return nil, fmt.Errorf("%w: failed to read rate cache: %w", apperrors.ErrRatesUnavailable, err)
	}
}

func (s *currencyService) refresh(ctx context.Context) (*domain.RateSnapshot, error) {
	rates, err := s.provider.FetchLatest(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch latest rates")
		return nil, fmt.Errorf("%w: failed to fetch latest rates: %w", apperrors.ErrRatesUnavailable, err)
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: rate provider returned an empty table", apperrors.ErrRatesUnavailable)
	}

	snap, err := s.rateCache.SaveRates(ctx, rates)
	if err != nil {
		s.LogError(ctx, err, "Failed to write rate cache")
		return nil, fmt.Errorf("%w: failed to write rate cache: %w", apperrors.ErrRatesUnavailable, err)
	}

	s.LogInfo(ctx, "Rate cache refreshed", slog.Int("currencies", len(snap.Rates)))
	return snap, nil
}
