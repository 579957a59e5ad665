package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/smart_converter/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks successful
// requests with PostHog, keyed by the caller's session ID.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		sessionID, exists := GetSessionIDFromContext(c)
		if !exists {
			return
		}

		// "/api/v1/units/convert" -> "api_v1_units_convert"
		eventName := EventName(c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}

		posthogClient.Enqueue(sessionID, eventName, props)
	}
}

// EventName derives an analytics event name from a route path.
func EventName(fullPath string) string {
	name := strings.Trim(fullPath, "/")
	name = strings.ReplaceAll(name, "/", "_")
	return strings.ReplaceAll(name, "-", "_")
}
