package services

import (
	"context"

	"github.com/SscSPs/smart_converter/internal/catalog"
	"github.com/SscSPs/smart_converter/internal/core/domain"
	"github.com/SscSPs/smart_converter/internal/dto"
)

// UnitCatalogSvc exposes the static unit catalog
type UnitCatalogSvc interface {
	// ListCategories returns the unit categories in display order.
	ListCategories(ctx context.Context) []catalog.Category

	// GetCategory finds a category by label.
	GetCategory(ctx context.Context, label string) (catalog.Category, error)
}

// UnitConverterSvc converts values between units
type UnitConverterSvc interface {
	// ConvertUnits converts req.Value from req.FromUnit to req.ToUnit.
	ConvertUnits(ctx context.Context, req dto.ConvertUnitsRequest) (*domain.UnitConversion, error)
}

// UnitSvcFacade combines all unit-related service interfaces
type UnitSvcFacade interface {
	UnitCatalogSvc
	UnitConverterSvc
}
