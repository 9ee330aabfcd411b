package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/internal/services"
	pkgerrors "github.com/estateline/estateline-api/pkg/errors"
	"github.com/estateline/estateline-api/pkg/storage"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// PropertyHandler serves the public catalogue and the admin property endpoints
type PropertyHandler struct {
	service services.PropertyServiceInterface
}

func NewPropertyHandler(service services.PropertyServiceInterface) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// ListProperties handles GET /api/v1/properties
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	filter := models.PropertyFilter{
		City:         c.Query("city"),
		PropertyType: c.Query("type"),
		OnlyFeatured: c.Query("featured") == "true",
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		id, err := strconv.Atoi(categoryID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid category_id", err)
			return
		}
		filter.CategoryID = id
	}

	properties, err := h.service.ListProperties(c.Request.Context(), filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list properties", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"properties": properties, "count": len(properties)})
}

// GetPropertyBySlug handles GET /api/v1/properties/:slug
func (h *PropertyHandler) GetPropertyBySlug(c *gin.Context) {
	slug := c.Param("slug")

	property, err := h.service.GetPropertyBySlug(c.Request.Context(), slug)
	if err != nil {
		if pkgerrors.Is(err, pkgerrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Property not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to get property", err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// ListAllProperties handles GET /api/v1/admin/properties
func (h *PropertyHandler) ListAllProperties(c *gin.Context) {
	forceRefresh := c.Query("refresh") == "true"

	properties, err := h.service.ListAllProperties(c.Request.Context(), forceRefresh)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list properties", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"properties": properties, "count": len(properties)})
}

// GetProperty handles GET /api/v1/admin/properties/:id
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid property ID", err)
		return
	}

	property, err := h.service.GetProperty(c.Request.Context(), id)
	if err != nil {
		if pkgerrors.Is(err, pkgerrors.ErrNotFound) || err == pgx.ErrNoRows {
			respondError(c, http.StatusNotFound, "Property not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to get property", err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// CreateProperty handles POST /api/v1/admin/properties
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req models.UpsertPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	property, err := h.service.CreateProperty(c.Request.Context(), &req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create property", err)
		return
	}

	c.JSON(http.StatusCreated, property)
}

// UpdateProperty handles PUT /api/v1/admin/properties/:id
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid property ID", err)
		return
	}

	var req models.UpsertPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	property, err := h.service.UpdateProperty(c.Request.Context(), id, &req)
	if err != nil {
		if err == pgx.ErrNoRows || pkgerrors.Is(err, pkgerrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Property not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update property", err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// DeleteProperty handles DELETE /api/v1/admin/properties/:id
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid property ID", err)
		return
	}

	if err := h.service.DeleteProperty(c.Request.Context(), id); err != nil {
		if err == pgx.ErrNoRows || pkgerrors.Is(err, pkgerrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Property not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete property", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UploadPropertyImage handles POST /api/v1/admin/properties/:id/image
func (h *PropertyHandler) UploadPropertyImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid property ID", err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Missing image file", err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to read image file", err)
		return
	}
	defer file.Close() //nolint:errcheck

	data, err := io.ReadAll(io.LimitReader(file, storage.MaxImageBytes+1))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to read image file", err)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")

	imageURL, err := h.service.UploadPropertyImage(c.Request.Context(), id, fileHeader.Filename, contentType, data)
	if err != nil {
		switch {
		case err == services.ErrImageTooLarge:
			respondError(c, http.StatusRequestEntityTooLarge, "Image too large", err)
		case err == services.ErrStorageNotConfigured:
			respondError(c, http.StatusServiceUnavailable, "Image uploads unavailable", err)
		case pkgerrors.Is(err, pkgerrors.ErrNotFound):
			respondError(c, http.StatusNotFound, "Property not found", err)
		case pkgerrors.Is(err, pkgerrors.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, "Unsupported image type", err)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to upload image", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "image_url": imageURL})
}
