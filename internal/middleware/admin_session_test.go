package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/pkg/jwt"
	"github.com/estateline/estateline-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	// Initialize logger for tests
	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

func newSessionRouter(tokenManager *jwt.TokenManager) (*gin.Engine, *models.AdminSession) {
	router := gin.New()
	captured := &models.AdminSession{}
	router.Use(AdminSessionMiddleware(tokenManager, "", false))
	router.GET("/admin/ping", func(c *gin.Context) {
		session, err := GetAdminSession(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		*captured = *session
		c.Status(http.StatusOK)
	})
	return router, captured
}

func TestAdminSessionMiddleware_ValidCookie(t *testing.T) {
	tokenManager := jwt.NewTokenManager("test-secret", "estateline-api", 1)
	token, err := tokenManager.GenerateToken("uuid-1", "owner@estateline.in", "Site Owner", "owner")
	assert.NoError(t, err)

	router, captured := newSessionRouter(tokenManager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/ping", http.NoBody)
	req.AddCookie(&http.Cookie{Name: AdminSessionCookieName, Value: token})

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "uuid-1", captured.AdminUUID)
	assert.Equal(t, models.AdminRoleOwner, captured.Role)
}

func TestAdminSessionMiddleware_MissingCookie(t *testing.T) {
	tokenManager := jwt.NewTokenManager("test-secret", "estateline-api", 1)
	router, _ := newSessionRouter(tokenManager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/ping", http.NoBody)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminSessionMiddleware_WrongSecret(t *testing.T) {
	otherManager := jwt.NewTokenManager("other-secret", "estateline-api", 1)
	token, err := otherManager.GenerateToken("uuid-1", "owner@estateline.in", "Site Owner", "owner")
	assert.NoError(t, err)

	tokenManager := jwt.NewTokenManager("test-secret", "estateline-api", 1)
	router, _ := newSessionRouter(tokenManager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/ping", http.NoBody)
	req.AddCookie(&http.Cookie{Name: AdminSessionCookieName, Value: token})

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Invalid token clears the cookie
	setCookie := w.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(setCookie, AdminSessionCookieName+"="))
	assert.Contains(t, setCookie, "Max-Age=0")
}

func TestAdminSessionMiddleware_UnknownRole(t *testing.T) {
	tokenManager := jwt.NewTokenManager("test-secret", "estateline-api", 1)
	token, err := tokenManager.GenerateToken("uuid-1", "owner@estateline.in", "Site Owner", "superuser")
	assert.NoError(t, err)

	router, _ := newSessionRouter(tokenManager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/ping", http.NoBody)
	req.AddCookie(&http.Cookie{Name: AdminSessionCookieName, Value: token})

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
