package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/smart_converter/internal/core/ports/services"
	"github.com/SscSPs/smart_converter/internal/dto"
	"github.com/SscSPs/smart_converter/internal/middleware"
	"github.com/gin-gonic/gin"
)

// historyHandler exposes the caller's session history.
type historyHandler struct {
	historyService portssvc.HistorySvcFacade
	session        middleware.SessionConfig
}

func registerHistoryRoutes(rg *gin.RouterGroup, hs portssvc.HistorySvcFacade, session middleware.SessionConfig) {
	h := &historyHandler{historyService: hs, session: session}

	rg.GET("/history", h.listHistory)
	rg.DELETE("/history", h.clearHistory)
	rg.DELETE("/session", h.endSession)
}

// listHistory godoc
// @Summary List conversion history
// @Description Returns the session's recent conversions, most recent first
// @Tags history
// @Produce  json
// @Success 200 {object} dto.HistoryResponse
// @Router /history [get]
func (h *historyHandler) listHistory(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)
	c.JSON(http.StatusOK, dto.ToHistoryResponse(h.historyService.ListHistory(c.Request.Context(), sessionID)))
}

// clearHistory godoc
// @Summary Clear conversion history
// @Description Removes all entries from the session's history
// @Tags history
// @Success 204
// @Router /history [delete]
func (h *historyHandler) clearHistory(c *gin.Context) {
	if sessionID, ok := middleware.GetSessionIDFromContext(c); ok {
		h.historyService.ClearHistory(c.Request.Context(), sessionID)
	}
	c.Status(http.StatusNoContent)
}

// endSession godoc
// @Summary End the session
// @Description Drops the session's history and expires the session cookie
// @Tags history
// @Success 204
// @Router /session [delete]
func (h *historyHandler) endSession(c *gin.Context) {
	if sessionID, ok := middleware.GetSessionIDFromContext(c); ok {
		h.historyService.EndSession(c.Request.Context(), sessionID)
		middleware.GetLoggerFromContext(c).Info("Session ended")
	}
	middleware.ExpireSession(c, h.session)
	c.Status(http.StatusNoContent)
}
