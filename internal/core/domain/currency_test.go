package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/smart_converter/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRateTable_Rate(t *testing.T) {
	table := domain.RateTable{"USD": 1, "EUR": 0.92, "BAD": 0, "NEG": -1}

	r, ok := table.Rate("EUR")
	assert.True(t, ok)
	assert.Equal(t, 0.92, r)

	for _, code := range []string{"BAD", "NEG", "XXX"} {
		_, ok := table.Rate(code)
		assert.False(t, ok, code)
	}
	assert.Equal(t, []string{"BAD", "EUR", "NEG", "USD"}, table.Codes())
}

func TestRateSnapshot_Stale(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	snap := domain.RateSnapshot{FetchedAt: now.Add(-2 * time.Hour)}

	assert.False(t, snap.Stale(now, 0), "zero max age never expires")
	assert.False(t, snap.Stale(now, 3*time.Hour))
	assert.True(t, snap.Stale(now, time.Hour))
}

func TestZakatAssessment_Formatted(t *testing.T) {
	z := domain.ZakatAssessment{}
	assert.Equal(t, "0.00", z.Formatted())
}
