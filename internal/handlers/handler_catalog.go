package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/smart_converter/internal/core/ports/services"
	"github.com/SscSPs/smart_converter/internal/dto"
	"github.com/gin-gonic/gin"
)

// catalogHandler serves the static unit and currency catalog.
type catalogHandler struct {
	unitService     portssvc.UnitSvcFacade
	currencyService portssvc.CurrencySvcFacade
}

func registerCatalogRoutes(rg *gin.RouterGroup, unitService portssvc.UnitSvcFacade, currencyService portssvc.CurrencySvcFacade) {
	h := &catalogHandler{unitService: unitService, currencyService: currencyService}

	cat := rg.Group("/catalog")
	{
		cat.GET("/units", h.listUnitCategories)
		cat.GET("/currencies", h.listCurrencies)
	}
}

// listUnitCategories godoc
// @Summary List unit categories
// @Description Retrieves every unit category with its convertible units, in display order
// @Tags catalog
// @Produce  json
// @Success 200 {array} dto.CategoryResponse
// @Router /catalog/units [get]
func (h *catalogHandler) listUnitCategories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListCategoryResponse(h.unitService.ListCategories(c.Request.Context())))
}

// listCurrencies godoc
// @Summary List currencies
// @Description Retrieves the currency codes offered by the converter
// @Tags catalog
// @Produce  json
// @Success 200 {object} dto.ListCurrenciesResponse
// @Router /catalog/currencies [get]
func (h *catalogHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ListCurrenciesResponse{Currencies: h.currencyService.ListCurrencies(c.Request.Context())})
}
