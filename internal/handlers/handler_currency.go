package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/smart_converter/internal/core/domain"
	portssvc "github.com/SscSPs/smart_converter/internal/core/ports/services"
	"github.com/SscSPs/smart_converter/internal/dto"
	"github.com/SscSPs/smart_converter/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests for currency conversion and the rate cache.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
	historyService  portssvc.HistorySvcFacade
	baseCurrency    string
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade, hs portssvc.HistorySvcFacade, baseCurrency string) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
		historyService:  hs,
		baseCurrency:    baseCurrency,
	}
}

func registerCurrencyRoutes(rg *gin.RouterGroup, cs portssvc.CurrencySvcFacade, hs portssvc.HistorySvcFacade, baseCurrency string) {
	h := newCurrencyHandler(cs, hs, baseCurrency)

	cur := rg.Group("/currency")
	{
		cur.POST("/convert", h.convertCurrency)
		cur.GET("/rates", h.getRates)
		cur.POST("/rates/refresh", h.refreshRates)
	}
}

// convertCurrency godoc
// @Summary Convert an amount between currencies
// @Description Converts an amount using the cached rate table, fetching it on first use, and records it in the session history
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertCurrencyRequest true "Conversion details"
// @Success 200 {object} dto.CurrencyConversionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Conversion not available for the pair"
// @Failure 503 {object} map[string]string "Exchange rates unavailable"
// @Router /currency/convert [post]
func (h *currencyHandler) convertCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.ConvertCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConvertCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	conv, err := h.convert(c, req)
	if err != nil {
		respondError(c, logger, "Currency conversion failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyConversionResponse(conv))
}

func (h *currencyHandler) convert(c *gin.Context, req dto.ConvertCurrencyRequest) (*domain.CurrencyConversion, error) {
	ctx := c.Request.Context()
	conv, err := h.currencyService.ConvertCurrency(ctx, req)
	if err != nil {
		return nil, err
	}

	if sessionID, ok := middleware.GetSessionIDFromContext(c); ok {
		h.historyService.RecordConversion(ctx, sessionID, domain.CurrencyConversionKind, conv.Text)
	}
	middleware.GetLoggerFromContext(c).Info("Currency converted", slog.String("text", conv.Text))
	return conv, nil
}

// getRates godoc
// @Summary Get the cached rate table
// @Description Returns the rate table relative to the base currency, fetching it if the cache is cold
// @Tags currency
// @Produce  json
// @Success 200 {object} dto.RateTableResponse
// @Failure 503 {object} map[string]string "Exchange rates unavailable"
// @Router /currency/rates [get]
func (h *currencyHandler) getRates(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	snap, err := h.currencyService.GetRates(c.Request.Context())
	if err != nil {
		respondError(c, logger, "Failed to load rates", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRateTableResponse(h.baseCurrency, snap))
}

// refreshRates godoc
// @Summary Refresh the rate table
// @Description Fetches the latest rates from the upstream provider and overwrites the cache
// @Tags currency
// @Produce  json
// @Success 200 {object} dto.RateTableResponse
// @Failure 503 {object} map[string]string "Exchange rates unavailable"
// @Router /currency/rates/refresh [post]
func (h *currencyHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	snap, err := h.currencyService.RefreshRates(c.Request.Context())
	if err != nil {
		respondError(c, logger, "Failed to refresh rates", err)
		return
	}

	logger.Info("Rates refreshed", slog.Int("currencies", len(snap.Rates)))
	c.JSON(http.StatusOK, dto.ToRateTableResponse(h.baseCurrency, snap))
}
