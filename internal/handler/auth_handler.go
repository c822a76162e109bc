package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"secure_solicitudes/internal/middleware"
	"secure_solicitudes/internal/model"
	"secure_solicitudes/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login and token verification
type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{service: s, logger: logger.With(slog.String("component", "auth_handler"))}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == nil || req.Password == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request: Missing username or password"})
		return
	}

	token, err := h.service.Login(c.Request.Context(), *req.Username, *req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		internalError(c, h.logger, "error during login", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Verify answers 200 with {"valid": bool} whenever a bearer token is presented.
// Only a missing token is signalled through the status code.
func (h *AuthHandler) Verify(c *gin.Context) {
	token := middleware.BearerToken(c.GetHeader("Authorization"))
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is missing!"})
		return
	}

	if _, err := h.service.VerifyToken(token); err != nil {
		h.logger.Debug("token failed verification", slog.String("err", err.Error()))
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
	rg.GET("/verify", h.Verify)
}
