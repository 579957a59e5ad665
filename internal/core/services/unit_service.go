package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/smart_converter/internal/apperrors"
	"github.com/SscSPs/smart_converter/internal/catalog"
	"github.com/SscSPs/smart_converter/internal/core/domain"
	portssvc "github.com/SscSPs/smart_converter/internal/core/ports/services"
	"github.com/SscSPs/smart_converter/internal/dto"
	"github.com/SscSPs/smart_converter/internal/utils"
	"github.com/SscSPs/smart_converter/pkg/units"
)

// unitService converts values between units of the catalog.
type unitService struct {
	BaseService
	registry *units.Registry
	catalog  *catalog.Catalog
}

// NewUnitService creates a new unit service backed by registry and cat.
func NewUnitService(registry *units.Registry, cat *catalog.Catalog) portssvc.UnitSvcFacade {
	return &unitService{registry: registry, catalog: cat}
}

func (s *unitService) ListCategories(ctx context.Context) []catalog.Category {
	return s.catalog.Categories()
}

func (s *unitService) GetCategory(ctx context.Context, label string) (catalog.Category, error) {
	cat, ok := s.catalog.Category(label)
	if !ok {
		return catalog.Category{}, fmt.Errorf("%w: category '%s'", apperrors.ErrNotFound, label)
	}
	return cat, nil
}

// ConvertUnits delegates the unit algebra to the registry. Registry errors
// are wrapped with apperrors.ErrConversion and keep their message.
func (s *unitService) ConvertUnits(ctx context.Context, req dto.ConvertUnitsRequest) (*domain.UnitConversion, error) {
	from := strings.TrimSpace(req.FromUnit)
	to := strings.TrimSpace(req.ToUnit)
	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: both units are required", apperrors.ErrValidation)
	}

	var label string
	if req.Category != "" {
		cat, ok := s.catalog.Category(req.Category)
		if !ok {
			return nil, fmt.Errorf("%w: unknown category '%s'", apperrors.ErrValidation, req.Category)
		}
		for _, u := range []string{from, to} {
			if !cat.HasUnit(u) {
				return nil, fmt.Errorf("%w: unit '%s' is not part of category '%s'", apperrors.ErrValidation, u, cat.Label)
			}
		}
		label = cat.Label
	}

	result, err := s.registry.Convert(req.Value, from, to)
	if err != nil {
		s.LogDebug(ctx, "Unit registry rejected conversion",
			slog.String("from", from), slog.String("to", to), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrConversion, err)
	}

	formatted := utils.FormatMagnitude(result)
	return &domain.UnitConversion{
		Category:  label,
		Value:     req.Value,
		FromUnit:  from,
		ToUnit:    to,
		Result:    result,
		Formatted: formatted,
		Text:      fmt.Sprintf("%s %s = %s %s", utils.FormatInput(req.Value), from, formatted, to),
	}, nil
}

// ConversionMessage returns the registry's own message for a conversion
// failure, or the error text when err did not come from the registry.
func ConversionMessage(err error) string {
	var undefined *units.UndefinedUnitError
	if errors.As(err, &undefined) {
		return undefined.Error()
	}
	var dim *units.DimensionalityError
	if errors.As(err, &dim) {
		return dim.Error()
	}
	return err.Error()
}
