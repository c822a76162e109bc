package handler

import (
	"log/slog"
	"net/http"

	"secure_solicitudes/internal/middleware"

	"github.com/gin-gonic/gin"
)

// internalError logs the cause and answers 500 without leaking it
func internalError(c *gin.Context, logger *slog.Logger, msg string, err error) {
	logger.Error(msg,
		slog.String("request_id", c.GetString(middleware.RequestIDKey)),
		slog.String("err", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}
