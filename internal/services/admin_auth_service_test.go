package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/estateline/estateline-api/config"
	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func adminAuthConfig() *config.Config {
	return &config.Config{
		AdminSession: config.AdminSessionConfig{
			JWTSecret:       "test-secret-key-for-admin-sessions",
			JWTIssuer:       "estateline-api",
			SessionTTLHours: 24,
		},
	}
}

func activeAdmin(t *testing.T, password string) *models.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &models.AdminUser{
		UUID:         "a3a0a2cc-6f0e-4c34-93d3-1f6fbd09f001",
		Email:        "owner@estateline.in",
		Name:         "Site Owner",
		Role:         models.AdminRoleOwner,
		PasswordHash: string(hash),
		IsActive:     true,
	}
}

func TestAdminAuthService_Login(t *testing.T) {
	mockAdminRepo := new(MockAdminRepository)
	service := services.NewAdminAuthService(mockAdminRepo, adminAuthConfig())
	ctx := context.Background()

	admin := activeAdmin(t, "correct horse battery staple")
	mockAdminRepo.On("GetByEmail", ctx, "owner@estateline.in").Return(admin, nil).Once()

	session, token, err := service.Login(ctx, "owner@estateline.in", "correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, admin.UUID, session.AdminUUID)
	assert.Equal(t, models.AdminRoleOwner, session.Role)
	assert.Greater(t, session.ExpiresAt, time.Now().Unix())

	mockAdminRepo.AssertExpectations(t)
}

func TestAdminAuthService_Login_WrongPassword(t *testing.T) {
	mockAdminRepo := new(MockAdminRepository)
	service := services.NewAdminAuthService(mockAdminRepo, adminAuthConfig())
	ctx := context.Background()

	admin := activeAdmin(t, "correct horse battery staple")
	mockAdminRepo.On("GetByEmail", ctx, "owner@estateline.in").Return(admin, nil).Once()

	session, token, err := service.Login(ctx, "owner@estateline.in", "guess")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	assert.Nil(t, session)
	assert.Empty(t, token)
}

func TestAdminAuthService_Login_UnknownEmail(t *testing.T) {
	mockAdminRepo := new(MockAdminRepository)
	service := services.NewAdminAuthService(mockAdminRepo, adminAuthConfig())
	ctx := context.Background()

	mockAdminRepo.On("GetByEmail", ctx, "nobody@estateline.in").
		Return(nil, assert.AnError).Once()

	// Unknown email and wrong password are indistinguishable to the caller
	session, _, err := service.Login(ctx, "nobody@estateline.in", "anything")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	assert.Nil(t, session)
}

func TestAdminAuthService_Login_InactiveAdmin(t *testing.T) {
	mockAdminRepo := new(MockAdminRepository)
	service := services.NewAdminAuthService(mockAdminRepo, adminAuthConfig())
	ctx := context.Background()

	admin := activeAdmin(t, "correct horse battery staple")
	admin.IsActive = false
	mockAdminRepo.On("GetByEmail", ctx, "owner@estateline.in").Return(admin, nil).Once()

	_, _, err := service.Login(ctx, "owner@estateline.in", "correct horse battery staple")
	assert.ErrorIs(t, err, services.ErrAdminInactive)
}

func TestAdminAuthService_Login_NoJWTSecret(t *testing.T) {
	mockAdminRepo := new(MockAdminRepository)
	service := services.NewAdminAuthService(mockAdminRepo, &config.Config{})
	ctx := context.Background()

	_, _, err := service.Login(ctx, "owner@estateline.in", "anything")
	assert.ErrorIs(t, err, services.ErrJWTSecretNotSet)

	mockAdminRepo.AssertNotCalled(t, "GetByEmail")
}

func TestAdminAuthService_GetSessionTTL(t *testing.T) {
	service := services.NewAdminAuthService(new(MockAdminRepository), adminAuthConfig())
	assert.Equal(t, 24*3600, service.GetSessionTTL())
}
