package dto

import (
	"github.com/SscSPs/smart_converter/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateZakatRequest defines the data needed to compute zakat.
type CalculateZakatRequest struct {
	Wealth decimal.Decimal `json:"wealth"`
}

// ZakatResponse defines the data returned for a zakat calculation.
type ZakatResponse struct {
	Wealth     decimal.Decimal `json:"wealth"`
	Rate       decimal.Decimal `json:"rate"`
	Obligation string          `json:"obligation"`
	Text       string          `json:"text"`
}

// ToZakatResponse converts a domain.ZakatAssessment to ZakatResponse DTO
func ToZakatResponse(z domain.ZakatAssessment) ZakatResponse {
	return ZakatResponse{
		Wealth:     z.Wealth,
		Rate:       z.Rate,
		Obligation: z.Formatted(),
		Text:       "Your zakat obligation is: " + z.Formatted(),
	}
}
