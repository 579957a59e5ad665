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

// unitHandler handles HTTP requests for unit conversion.
type unitHandler struct {
	unitService    portssvc.UnitSvcFacade
	historyService portssvc.HistorySvcFacade
}

func newUnitHandler(us portssvc.UnitSvcFacade, hs portssvc.HistorySvcFacade) *unitHandler {
	return &unitHandler{unitService: us, historyService: hs}
}

func registerUnitRoutes(rg *gin.RouterGroup, us portssvc.UnitSvcFacade, hs portssvc.HistorySvcFacade) {
	h := newUnitHandler(us, hs)

	u := rg.Group("/units")
	{
		u.POST("/convert", h.convertUnits)
	}
}

// convertUnits godoc
// @Summary Convert a value between units
// @Description Converts a value from one unit to another of the same dimension and records it in the session history
// @Tags units
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertUnitsRequest true "Conversion details"
// @Success 200 {object} dto.UnitConversionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Units are undefined or incompatible"
// @Router /units/convert [post]
func (h *unitHandler) convertUnits(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.ConvertUnitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConvertUnits", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	conv, err := h.convert(c, req)
	if err != nil {
		respondError(c, logger, "Unit conversion failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUnitConversionResponse(conv))
}

// convert runs the conversion and records successful ones in the caller's history.
func (h *unitHandler) convert(c *gin.Context, req dto.ConvertUnitsRequest) (*domain.UnitConversion, error) {
	ctx := c.Request.Context()
	conv, err := h.unitService.ConvertUnits(ctx, req)
	if err != nil {
		return nil, err
	}

	if sessionID, ok := middleware.GetSessionIDFromContext(c); ok {
		h.historyService.RecordConversion(ctx, sessionID, domain.UnitConversionKind, conv.Text)
	}
	middleware.GetLoggerFromContext(c).Info("Units converted", slog.String("text", conv.Text))
	return conv, nil
}
