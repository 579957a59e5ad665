package services

import (
	"context"

	"github.com/SscSPs/smart_converter/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ZakatSvc computes the zakat levy
type ZakatSvc interface {
	// CalculateZakat returns the obligation on the given total wealth.
	CalculateZakat(ctx context.Context, wealth decimal.Decimal) domain.ZakatAssessment
}
