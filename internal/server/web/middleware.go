package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/noflow/engine/internal/logging"
	"github.com/noflow/engine/internal/server/sessions"
)

// MsgInternalError is the only detail clients see for unexpected failures.
// Specifics go to the log, keyed by request id.
const MsgInternalError = "Internal Server Error. Please contact support."

const (
	requestIDKey = "request_id"
	sessionKey   = "session"
)

// RequestLogger tags every request with a uuid request id and logs a summary
// line after the handler runs. Bodies are never logged; credential routes
// carry plaintext passwords.
func RequestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-Id", requestID)

		c.Next()

		logger.Info(c.Request.Context(), "request completed",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// Recovery converts panics into a 500 with the generic support message.
func Recovery(logger logging.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error(c.Request.Context(), "panic recovered",
			"request_id", c.GetString(requestIDKey),
			"error", fmt.Sprint(recovered),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": MsgInternalError})
	})
}

// RequireSession rejects requests without a valid session cookie and puts the
// decoded session into the gin context for downstream handlers.
func RequireSession(codec *sessions.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(codec.CookieName())
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		session, err := codec.Decode(token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// CurrentSession returns the session stored by RequireSession.
func CurrentSession(c *gin.Context) (sessions.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return sessions.Session{}, false
	}
	s, ok := v.(sessions.Session)
	return s, ok
}
