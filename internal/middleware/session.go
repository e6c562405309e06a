package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// LocalUserID identifies the single assumed-logged-in local user. There is
// no real authentication in this application; every request runs as this
// user.
const LocalUserID = "local"

// userIDKey is the key used to store the session user's ID in the request
// context.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the session user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok
}

// SessionMiddleware creates a Gin middleware handler that injects the fixed
// local user into the request context. It replaces a real auth layer, which
// is deliberately stubbed out.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		ctxWithUser := context.WithValue(c.Request.Context(), userIDKey, LocalUserID)

		// Add user ID to the logger
		enrichedLogger := logger.With(slog.String("user_id", LocalUserID))

		// Store the *enriched* logger back into the standard context
		ctxWithLoggerAndUser := context.WithValue(ctxWithUser, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctxWithLoggerAndUser)

		c.Next()
	}
}
