package domain

import "github.com/shopspring/decimal"

// UnitConversion is the outcome of one completed unit conversion.
type UnitConversion struct {
	Category  string  `json:"category,omitempty"`
	Value     float64 `json:"value"`
	FromUnit  string  `json:"fromUnit"`
	ToUnit    string  `json:"toUnit"`
	Result    float64 `json:"result"`
	Formatted string  `json:"formatted"`
	Text      string  `json:"text"`
}

// ZakatAssessment is the levy computed on a declared wealth.
type ZakatAssessment struct {
	Wealth     decimal.Decimal
	Rate       decimal.Decimal
	Obligation decimal.Decimal
}

// Formatted renders the obligation with two decimals.
func (z ZakatAssessment) Formatted() string {
	return z.Obligation.StringFixed(2)
}
