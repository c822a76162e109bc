package middleware

import (
	"net/http"
	"strings"

	"secure_solicitudes/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey  = "authUser"
	AuthTokenKey = "authToken"

	msgTokenMissing = "Token is missing!"
	msgTokenInvalid = "Token is invalid!"
)

// BearerToken returns the token of an "Authorization: Bearer <token>" header,
// or "" when the header is absent or not literally prefixed with "Bearer ".
func BearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.Split(header, " ")[1]
}

// JWTAuthMiddleware verifies the bearer token locally with the shared secret
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := BearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgTokenMissing})
			return
		}

		claims, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgTokenInvalid})
			return
		}

		c.Set(AuthUserKey, claims.UserID)
		c.Set(AuthTokenKey, tokenString)

		c.Next()
	}
}
