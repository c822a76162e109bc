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

// RoleHandler serves role CRUD. Routes are unauthenticated.
type RoleHandler struct {
	service service.RoleService
	logger  *slog.Logger
}

func NewRoleHandler(s service.RoleService, logger *slog.Logger) *RoleHandler {
	return &RoleHandler{service: s, logger: logger.With(slog.String("component", "role_handler"))}
}

func (h *RoleHandler) ListRoles(c *gin.Context) {
	roles, err := h.service.ListRoles(c.Request.Context())
	if err != nil {
		internalError(c, h.logger, "error fetching roles", err)
		return
	}
	if roles == nil {
		roles = []model.Role{}
	}
	c.JSON(http.StatusOK, roles)
}

func (h *RoleHandler) GetRole(c *gin.Context) {
	roleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
		return
	}

	role, err := h.service.GetRole(c.Request.Context(), roleID)
	if err != nil {
		if errors.Is(err, service.ErrRoleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
			return
		}
		internalError(c, h.logger, "error fetching role", err)
		return
	}
	c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req model.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request: Missing name"})
		return
	}

	role, err := h.service.CreateRole(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request: Missing name"})
			return
		}
		internalError(c, h.logger, "error creating role", err)
		return
	}
	c.JSON(http.StatusCreated, role)
}

func (h *RoleHandler) UpdateRole(c *gin.Context) {
	roleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
		return
	}

	var req model.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request: Missing name"})
		return
	}

	role, err := h.service.UpdateRole(c.Request.Context(), roleID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request: Missing name"})
		default:
			internalError(c, h.logger, "error updating role", err)
		}
		return
	}
	c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) DeleteRole(c *gin.Context) {
	roleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
		return
	}

	if err := h.service.DeleteRole(c.Request.Context(), roleID); err != nil {
		if errors.Is(err, service.ErrRoleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
			return
		}
		internalError(c, h.logger, "error deleting role", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role deleted successfully"})
}

func (h *RoleHandler) RegisterRoleRoutes(rg *gin.RouterGroup) {
	roles := rg.Group("/roles")
	{
		roles.GET("", h.ListRoles)
		roles.GET("/:id", h.GetRole)
		roles.POST("", h.CreateRole)
		roles.PUT("/:id", h.UpdateRole)
		roles.DELETE("/:id", h.DeleteRole)
	}
}
