package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"secure_solicitudes/internal/client"

	"github.com/gin-gonic/gin"
)

// RemoteAuthMiddleware gates routes on the auth service verify endpoint.
// A missing token is rejected without any network call. Every other failure,
// including an unreachable auth service, rejects the request as invalid.
func RemoteAuthMiddleware(verifier client.TokenVerifier, logger *slog.Logger) gin.HandlerFunc {
	logger = logger.With(slog.String("component", "remote_auth"))

	return func(c *gin.Context) {
		tokenString := BearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgTokenMissing})
			return
		}

		if err := verifier.VerifyToken(c.Request.Context(), tokenString); err != nil {
			if errors.Is(err, client.ErrTokenRejected) {
				logger.Info("token rejected",
					slog.String("request_id", c.GetString(RequestIDKey)),
					slog.String("err", err.Error()))
			} else {
				logger.Warn("token could not be verified, denying",
					slog.String("request_id", c.GetString(RequestIDKey)),
					slog.String("err", err.Error()))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgTokenInvalid})
			return
		}

		c.Set(AuthTokenKey, tokenString)
		c.Next()
	}
}
