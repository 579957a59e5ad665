package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/smart_converter/internal/core/ports/services"
	"github.com/SscSPs/smart_converter/internal/dto"
	"github.com/SscSPs/smart_converter/internal/middleware"
	"github.com/gin-gonic/gin"
)

type zakatHandler struct {
	zakatService portssvc.ZakatSvc
}

func registerZakatRoutes(rg *gin.RouterGroup, zs portssvc.ZakatSvc) {
	h := &zakatHandler{zakatService: zs}
	rg.POST("/zakat", h.calculateZakat)
}

// calculateZakat godoc
// @Summary Calculate zakat
// @Description Computes the 2.5% zakat obligation on total wealth
// @Tags zakat
// @Accept  json
// @Produce  json
// @Param   wealth body dto.CalculateZakatRequest true "Total wealth"
// @Success 200 {object} dto.ZakatResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /zakat [post]
func (h *zakatHandler) calculateZakat(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CalculateZakatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CalculateZakat", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	assessment := h.zakatService.CalculateZakat(c.Request.Context(), req.Wealth)
	c.JSON(http.StatusOK, dto.ToZakatResponse(assessment))
}
