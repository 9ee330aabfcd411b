package handlers

import (
	"net/http"

	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/internal/services"
	pkgerrors "github.com/estateline/estateline-api/pkg/errors"
	"github.com/gin-gonic/gin"
)

// SettingsHandler serves the public site settings and the admin settings editor
type SettingsHandler struct {
	service services.SettingsServiceInterface
}

func NewSettingsHandler(service services.SettingsServiceInterface) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// GetPublicSettings handles GET /api/v1/settings
func (h *SettingsHandler) GetPublicSettings(c *gin.Context) {
	groups, err := h.service.GetPublicGroups(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load settings", err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GetSettingsGroup handles GET /api/v1/admin/settings/:group
func (h *SettingsHandler) GetSettingsGroup(c *gin.Context) {
	group := models.SettingsGroup(c.Param("group"))

	settings, err := h.service.GetGroup(c.Request.Context(), group)
	if err != nil {
		if err == services.ErrUnknownSettingsGroup {
			respondError(c, http.StatusNotFound, "Unknown settings group", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to load settings", err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettingsGroup handles PUT /api/v1/admin/settings/:group
func (h *SettingsHandler) UpdateSettingsGroup(c *gin.Context) {
	group := models.SettingsGroup(c.Param("group"))

	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	if err := h.service.UpdateGroup(c.Request.Context(), group, req.Values); err != nil {
		if err == services.ErrUnknownSettingsGroup {
			respondError(c, http.StatusNotFound, "Unknown settings group", err)
			return
		}
		if pkgerrors.Is(err, pkgerrors.ErrInvalidInput) {
			respondError(c, http.StatusBadRequest, "Invalid settings payload", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to save settings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
