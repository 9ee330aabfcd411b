package handlers

import (
	"net/http"

	"github.com/estateline/estateline-api/internal/middleware"
	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/internal/services"
	"github.com/gin-gonic/gin"
)

// AdminAuthHandler serves admin login, logout and session introspection
type AdminAuthHandler struct {
	service services.AdminAuthServiceInterface
}

func NewAdminAuthHandler(service services.AdminAuthServiceInterface) *AdminAuthHandler {
	return &AdminAuthHandler{service: service}
}

// Login handles POST /api/v1/admin/auth/login
func (h *AdminAuthHandler) Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	session, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case services.ErrInvalidCredentials, services.ErrAdminInactive:
			// Uniform response: do not reveal which check failed
			respondError(c, http.StatusUnauthorized, "Invalid email or password", err)
		case services.ErrJWTSecretNotSet:
			respondError(c, http.StatusServiceUnavailable, "Login unavailable", err)
		default:
			respondError(c, http.StatusInternalServerError, "Login failed", err)
		}
		return
	}

	middleware.SetAdminSessionCookie(c, token,
		h.service.GetSessionTTL(),
		h.service.GetCookieDomain(),
		h.service.GetCookieSecure())

	c.JSON(http.StatusOK, models.AdminLoginResponse{
		Success: true,
		Admin:   session,
	})
}

// Logout handles POST /api/v1/admin/auth/logout
func (h *AdminAuthHandler) Logout(c *gin.Context) {
	middleware.ClearAdminSessionCookie(c,
		h.service.GetCookieDomain(),
		h.service.GetCookieSecure())

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me handles GET /api/v1/admin/auth/me
func (h *AdminAuthHandler) Me(c *gin.Context) {
	session, err := middleware.GetAdminSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	c.JSON(http.StatusOK, session)
}
