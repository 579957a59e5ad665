package dto

import (
	"github.com/SscSPs/smart_converter/internal/catalog"
	"github.com/SscSPs/smart_converter/internal/core/domain"
)

// ConvertUnitsRequest defines the data needed to convert a value between units.
// Category is optional; when set both units must belong to it.
type ConvertUnitsRequest struct {
	Category string  `json:"category" form:"category"`
	Value    float64 `json:"value" form:"value"`
	FromUnit string  `json:"fromUnit" form:"from_unit" binding:"required"`
	ToUnit   string  `json:"toUnit" form:"to_unit" binding:"required"`
}

// UnitConversionResponse defines the data returned for a unit conversion.
type UnitConversionResponse struct {
	Value     float64 `json:"value"`
	FromUnit  string  `json:"fromUnit"`
	ToUnit    string  `json:"toUnit"`
	Result    float64 `json:"result"`
	Formatted string  `json:"formatted"`
	Text      string  `json:"text"`
}

// ToUnitConversionResponse converts a domain.UnitConversion to its response DTO
func ToUnitConversionResponse(c *domain.UnitConversion) UnitConversionResponse {
	return UnitConversionResponse{
		Value:     c.Value,
		FromUnit:  c.FromUnit,
		ToUnit:    c.ToUnit,
		Result:    c.Result,
		Formatted: c.Formatted,
		Text:      c.Text,
	}
}

// CategoryResponse defines the data returned for a unit category.
type CategoryResponse struct {
	Label   string   `json:"label"`
	Icon    string   `json:"icon"`
	Display string   `json:"display"`
	Units   []string `json:"units"`
}

// ToListCategoryResponse converts catalog categories to response DTOs
func ToListCategoryResponse(categories []catalog.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = CategoryResponse{
			Label:   c.Label,
			Icon:    c.Icon,
			Display: c.Display(),
			Units:   append([]string(nil), c.Units...),
		}
	}
	return res
}
