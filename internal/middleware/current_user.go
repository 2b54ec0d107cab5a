package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserIDHeader names the header the session layer in front of this service
// resolves the authenticated operator into.
const UserIDHeader = "X-User-ID"

// CurrentUser creates a Gin middleware handler that reads the authenticated
// user's ID from the request header and stores it in the request context.
// Session management happens upstream; requests without an identity are
// rejected here.
func CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			logger.Warn("User identity header missing", slog.String("header", UserIDHeader))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User identity required"})
			return
		}

		// Store the user ID and an enriched logger in the standard context
		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		enrichedLogger := logger.With(slog.String("user_id", userID))
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
