package services

import (
	"context"

	"github.com/SscSPs/smart_converter/internal/core/domain"
	portssvc "github.com/SscSPs/smart_converter/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ZakatRate is the 2.5% levy applied to total wealth.
var ZakatRate = decimal.RequireFromString("0.025")

type zakatService struct{}

// NewZakatService creates a new zakat service.
func NewZakatService() portssvc.ZakatSvc {
	return zakatService{}
}

// CalculateZakat does not validate wealth; negative input yields a negative obligation.
func (zakatService) CalculateZakat(_ context.Context, wealth decimal.Decimal) domain.ZakatAssessment {
	return domain.ZakatAssessment{
		Wealth:     wealth,
		Rate:       ZakatRate,
		Obligation: wealth.Mul(ZakatRate),
	}
}
