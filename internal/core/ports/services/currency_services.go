package services

import (
	"context"

	"github.com/SscSPs/smart_converter/internal/core/domain"
	"github.com/SscSPs/smart_converter/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// ListCurrencies returns the currency codes offered by the converter.
	ListCurrencies(ctx context.Context) []string

	// GetRates returns the cached rate snapshot, fetching it when the cache is cold.
	GetRates(ctx context.Context) (*domain.RateSnapshot, error)
}

// CurrencyConverterSvc converts amounts between currencies
type CurrencyConverterSvc interface {
	// ConvertCurrency converts req.Amount using the cached rate table.
	ConvertCurrency(ctx context.Context, req dto.ConvertCurrencyRequest) (*domain.CurrencyConversion, error)
}

// RateRefresherSvc replaces the cached rate table
type RateRefresherSvc interface {
	// RefreshRates fetches the latest table and overwrites the cache.
	RefreshRates(ctx context.Context) (*domain.RateSnapshot, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyConverterSvc
	RateRefresherSvc
}
