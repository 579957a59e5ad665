package dto

import (
	"github.com/SscSPs/smart_converter/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertCurrencyRequest defines the data needed to convert an amount between currencies.
type ConvertCurrencyRequest struct {
	Amount           decimal.Decimal `json:"amount"`
	FromCurrencyCode string          `json:"fromCurrency" binding:"required,currency_code"`
	ToCurrencyCode   string          `json:"toCurrency" binding:"required,currency_code"`
}

// CurrencyConversionResponse defines the data returned for a currency conversion.
type CurrencyConversionResponse struct {
	Amount           decimal.Decimal `json:"amount"`
	FromCurrencyCode string          `json:"fromCurrency"`
	ToCurrencyCode   string          `json:"toCurrency"`
	Converted        decimal.Decimal `json:"converted"`
	Rate             decimal.Decimal `json:"rate"`
	Text             string          `json:"text"`
}

// ToCurrencyConversionResponse converts a domain.CurrencyConversion to its response DTO
func ToCurrencyConversionResponse(c *domain.CurrencyConversion) CurrencyConversionResponse {
	rate := decimal.NewFromFloat(c.ToRate).Div(decimal.NewFromFloat(c.FromRate))
	return CurrencyConversionResponse{
		Amount:           c.Amount,
		FromCurrencyCode: c.FromCurrencyCode,
		ToCurrencyCode:   c.ToCurrencyCode,
		Converted:        c.Converted,
		Rate:             rate.Round(6),
		Text:             c.Text,
	}
}

// ListCurrenciesResponse lists the currency codes offered by the converter.
type ListCurrenciesResponse struct {
	Currencies []string `json:"currencies"`
}
