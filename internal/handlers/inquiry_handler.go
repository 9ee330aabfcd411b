package handlers

import (
	"net/http"
	"strconv"

	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/internal/services"
	pkgerrors "github.com/estateline/estateline-api/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// InquiryHandler serves the public submission endpoint and the admin triage
// endpoints.
type InquiryHandler struct {
	service services.InquiryServiceInterface
}

func NewInquiryHandler(service services.InquiryServiceInterface) *InquiryHandler {
	return &InquiryHandler{service: service}
}

// CreateInquiry handles POST /api/v1/inquiries
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var req models.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	resp, err := h.service.SubmitInquiry(c.Request.Context(), &req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	if !resp.Success {
		status := http.StatusBadRequest
		if resp.Error == "Property not found" {
			status = http.StatusNotFound
		} else if resp.Error == "Failed to save enquiry" {
			status = http.StatusInternalServerError
		}
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListInquiries handles GET /api/v1/admin/inquiries
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	filter := models.InquiryListFilter{
		Status:      c.Query("status"),
		InquiryType: c.Query("type"),
	}
	if propertyID := c.Query("property_id"); propertyID != "" {
		id, err := strconv.Atoi(propertyID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid property_id", err)
			return
		}
		filter.PropertyID = id
	}

	inquiries, err := h.service.ListInquiries(c.Request.Context(), filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list inquiries", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"inquiries": inquiries, "count": len(inquiries)})
}

// GetInquiry handles GET /api/v1/admin/inquiries/:id
func (h *InquiryHandler) GetInquiry(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid inquiry ID", err)
		return
	}

	inquiry, err := h.service.GetInquiry(c.Request.Context(), id)
	if err != nil {
		if err == pgx.ErrNoRows || pkgerrors.Is(err, pkgerrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Inquiry not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to get inquiry", err)
		return
	}

	c.JSON(http.StatusOK, inquiry)
}

// UpdateInquiryStatus handles PATCH /api/v1/admin/inquiries/:id/status
func (h *InquiryHandler) UpdateInquiryStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid inquiry ID", err)
		return
	}

	var req models.UpdateInquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	inquiry, err := h.service.UpdateInquiryStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		if err == services.ErrInvalidInquiryStatus {
			respondError(c, http.StatusBadRequest, "Unknown inquiry status", err)
			return
		}
		if err == pgx.ErrNoRows {
			respondError(c, http.StatusNotFound, "Inquiry not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update inquiry", err)
		return
	}

	c.JSON(http.StatusOK, inquiry)
}
