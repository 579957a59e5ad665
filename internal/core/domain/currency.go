package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// RateTable maps a three-letter currency code to its rate relative to the
// base currency (USD). It is fetched, persisted and replaced wholesale.
type RateTable map[string]float64

// Rate returns the rate for code. A missing or non-positive rate is reported
// as absent.
func (t RateTable) Rate(code string) (float64, bool) {
	r, ok := t[code]
	if !ok || r <= 0 {
		return 0, false
	}
	return r, true
}

// Codes lists the currency codes in the table, sorted.
func (t RateTable) Codes() []string {
	codes := make([]string, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// RateSnapshot is a rate table together with the time it was written.
type RateSnapshot struct {
	Rates     RateTable
	FetchedAt time.Time
}

// Stale reports whether the snapshot is older than maxAge. A non-positive
// maxAge means snapshots never go stale.
func (s RateSnapshot) Stale(now time.Time, maxAge time.Duration) bool {
	if maxAge <= 0 {
		return false
	}
	return now.Sub(s.FetchedAt) > maxAge
}

// CurrencyConversion is the outcome of one completed currency conversion.
type CurrencyConversion struct {
	Amount           decimal.Decimal `json:"amount"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	FromRate         float64         `json:"fromRate"`
	ToRate           float64         `json:"toRate"`
	Converted        decimal.Decimal `json:"converted"`
	Text             string          `json:"text"`
}
