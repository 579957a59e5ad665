package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sessionIDField is the session value holding the caller's session ID.
const sessionIDField = "sid"

// SessionConfig controls the session cookie.
type SessionConfig struct {
	CookieName string
	Secret     []byte
	MaxAge     time.Duration
	Secure     bool
}

func (cfg SessionConfig) options(maxAge int) sessions.Options {
	return sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Session returns the middleware chain that gives every caller a session ID
// kept in a signed cookie. An absent or unreadable cookie starts a new
// session.
func Session(cfg SessionConfig) []gin.HandlerFunc {
	store := cookie.NewStore(cfg.Secret)
	store.Options(cfg.options(int(cfg.MaxAge.Seconds())))
	return []gin.HandlerFunc{sessions.Sessions(cfg.CookieName, store), assignSessionID}
}

func assignSessionID(c *gin.Context) {
	session := sessions.Default(c)
	sessionID, _ := session.Get(sessionIDField).(string)
	if uuid.Validate(sessionID) != nil {
		sessionID = uuid.NewString()
		session.Set(sessionIDField, sessionID)
		GetLoggerFromContext(c).Debug("Starting new session", slog.String("session_id", sessionID))
	}

	// Saving on every request refreshes the cookie so active sessions do not expire
	if err := session.Save(); err != nil {
		GetLoggerFromContext(c).Warn("Failed to save session cookie", slog.String("error", err.Error()))
	}

	c.Set(string(sessionIDKey), sessionID)
	c.Request = c.Request.WithContext(WithSessionID(c.Request.Context(), sessionID))

	c.Next()
}

// ExpireSession clears the session and its cookie on the response.
func ExpireSession(c *gin.Context, cfg SessionConfig) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(cfg.options(-1))
	if err := session.Save(); err != nil {
		GetLoggerFromContext(c).Warn("Failed to expire session cookie", slog.String("error", err.Error()))
	}
}
