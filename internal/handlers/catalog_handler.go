package handlers

import (
	"net/http"
	"strconv"

	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// CatalogHandler serves developers, categories and testimonials
type CatalogHandler struct {
	service services.CatalogServiceInterface
}

func NewCatalogHandler(service services.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListDevelopers handles GET /api/v1/developers
func (h *CatalogHandler) ListDevelopers(c *gin.Context) {
	developers, err := h.service.ListDevelopers(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list developers", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"developers": developers})
}

// CreateDeveloper handles POST /api/v1/admin/developers
func (h *CatalogHandler) CreateDeveloper(c *gin.Context) {
	var req models.UpsertDeveloperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	id, err := h.service.CreateDeveloper(c.Request.Context(), &req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create developer", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateDeveloper handles PUT /api/v1/admin/developers/:id
func (h *CatalogHandler) UpdateDeveloper(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid developer ID", err)
		return
	}

	var req models.UpsertDeveloperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	if err := h.service.UpdateDeveloper(c.Request.Context(), id, &req); err != nil {
		if err == pgx.ErrNoRows {
			respondError(c, http.StatusNotFound, "Developer not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update developer", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteDeveloper handles DELETE /api/v1/admin/developers/:id
func (h *CatalogHandler) DeleteDeveloper(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid developer ID", err)
		return
	}

	if err := h.service.DeleteDeveloper(c.Request.Context(), id); err != nil {
		if err == pgx.ErrNoRows {
			respondError(c, http.StatusNotFound, "Developer not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete developer", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListCategories handles GET /api/v1/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list categories", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateCategory handles POST /api/v1/admin/categories
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req models.UpsertCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	id, err := h.service.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create category", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateCategory handles PUT /api/v1/admin/categories/:id
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	var req models.UpsertCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	if err := h.service.UpdateCategory(c.Request.Context(), id, &req); err != nil {
		if err == pgx.ErrNoRows {
			respondError(c, http.StatusNotFound, "Category not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update category", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteCategory handles DELETE /api/v1/admin/categories/:id
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		if err == pgx.ErrNoRows {
			respondError(c, http.StatusNotFound, "Category not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete category", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListTestimonials handles GET /api/v1/testimonials (public, visible only)
func (h *CatalogHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.service.ListTestimonials(c.Request.Context(), false)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list testimonials", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

// ListAllTestimonials handles GET /api/v1/admin/testimonials
func (h *CatalogHandler) ListAllTestimonials(c *gin.Context) {
	testimonials, err := h.service.ListTestimonials(c.Request.Context(), true)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list testimonials", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

// CreateTestimonial handles POST /api/v1/admin/testimonials
func (h *CatalogHandler) CreateTestimonial(c *gin.Context) {
	var req models.UpsertTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	id, err := h.service.CreateTestimonial(c.Request.Context(), &req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create testimonial", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateTestimonial handles PUT /api/v1/admin/testimonials/:id
func (h *CatalogHandler) UpdateTestimonial(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid testimonial ID", err)
		return
	}

	var req models.UpsertTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	if err := h.service.UpdateTestimonial(c.Request.Context(), id, &req); err != nil {
		if err == pgx.ErrNoRows {
			respondError(c, http.StatusNotFound, "Testimonial not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update testimonial", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteTestimonial handles DELETE /api/v1/admin/testimonials/:id
func (h *CatalogHandler) DeleteTestimonial(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid testimonial ID", err)
		return
	}

	if err := h.service.DeleteTestimonial(c.Request.Context(), id); err != nil {
		if err == pgx.ErrNoRows {
			respondError(c, http.StatusNotFound, "Testimonial not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete testimonial", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
