package dto

import (
	"time"

	"github.com/SscSPs/smart_converter/internal/core/domain"
)

// RateTableResponse defines the structure for API responses containing the cached rate table.
type RateTableResponse struct {
	BaseCurrencyCode string             `json:"baseCurrency"`
	FetchedAt        time.Time          `json:"fetchedAt"`
	Rates            map[string]float64 `json:"rates"`
}

// ToRateTableResponse converts a domain.RateSnapshot to RateTableResponse DTO
func ToRateTableResponse(base string, snap *domain.RateSnapshot) RateTableResponse {
	rates := make(map[string]float64, len(snap.Rates))
	for code, r := range snap.Rates {
		rates[code] = r
	}
	return RateTableResponse{
		BaseCurrencyCode: base,
		FetchedAt:        snap.FetchedAt,
		Rates:            rates,
	}
}
