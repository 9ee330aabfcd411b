package handlers

import (
	"net/http"
	"strconv"

	"github.com/estateline/estateline-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// NotificationHandler serves the admin notification feed
type NotificationHandler struct {
	service services.NotificationServiceInterface
}

func NewNotificationHandler(service services.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListNotifications handles GET /api/v1/admin/notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	onlyUnread := c.Query("unread") == "true"

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid limit", err)
			return
		}
		limit = parsed
	}

	notifications, err := h.service.List(c.Request.Context(), onlyUnread, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list notifications", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications, "count": len(notifications)})
}

// MarkNotificationRead handles POST /api/v1/admin/notifications/:id/read
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid notification ID", err)
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), id); err != nil {
		if err == pgx.ErrNoRows {
			respondError(c, http.StatusNotFound, "Notification not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to mark notification read", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// MarkAllNotificationsRead handles POST /api/v1/admin/notifications/read-all
func (h *NotificationHandler) MarkAllNotificationsRead(c *gin.Context) {
	count, err := h.service.MarkAllRead(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to mark notifications read", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "marked": count})
}
