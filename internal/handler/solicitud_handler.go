package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"secure_solicitudes/internal/model"
	"secure_solicitudes/internal/service"

	"github.com/gin-gonic/gin"
)

// SolicitudHandler serves the solicitud lifecycle
type SolicitudHandler struct {
	service service.SolicitudService
	logger  *slog.Logger
}

// NewSolicitudHandler creates a new SolicitudHandler
func NewSolicitudHandler(s service.SolicitudService, logger *slog.Logger) *SolicitudHandler {
	return &SolicitudHandler{service: s, logger: logger.With(slog.String("component", "solicitud_handler"))}
}

func (h *SolicitudHandler) CreateSolicitud(c *gin.Context) {
	var req model.CreateSolicitudRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request: Missing required fields"})
		return
	}

	solicitud, err := h.service.CreateSolicitud(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request: Missing required fields"})
			return
		}
		internalError(c, h.logger, "error creating solicitud", err)
		return
	}
	c.JSON(http.StatusCreated, solicitud.ToResponse())
}

func (h *SolicitudHandler) GetSolicitud(c *gin.Context) {
	solicitudID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Solicitud no encontrada"})
		return
	}

	solicitud, err := h.service.GetSolicitud(c.Request.Context(), solicitudID)
	if err != nil {
		if errors.Is(err, service.ErrSolicitudNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Solicitud no encontrada"})
			return
		}
		internalError(c, h.logger, "error fetching solicitud", err)
		return
	}
	c.JSON(http.StatusOK, solicitud.ToResponse())
}

func (h *SolicitudHandler) UpdateEstado(c *gin.Context) {
	solicitudID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Solicitud no encontrada"})
		return
	}

	var req model.UpdateEstadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": `Bad Request: Missing "estado" field`})
		return
	}

	resp, err := h.service.UpdateEstado(c.Request.Context(), solicitudID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": `Bad Request: Missing "estado" field`})
		case errors.Is(err, service.ErrSolicitudNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Solicitud no encontrada"})
		default:
			internalError(c, h.logger, "error updating estado", err)
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegisterSolicitudRoutes registers solicitud routes; every route is gated by authMW
func (h *SolicitudHandler) RegisterSolicitudRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	solicitudes := rg.Group("/solicitudes")
	solicitudes.Use(authMW)
	{
		solicitudes.POST("", h.CreateSolicitud)
		solicitudes.GET("/:id", h.GetSolicitud)
		solicitudes.PATCH("/:id", h.UpdateEstado)
	}
}
