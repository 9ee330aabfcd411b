package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/estateline/estateline-api/config"
	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/internal/repository"
	"github.com/estateline/estateline-api/pkg/jwt"
	"github.com/estateline/estateline-api/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminInactive      = errors.New("admin account is inactive")
	ErrJWTSecretNotSet    = errors.New("JWT secret not configured")
)

// AdminAuthService handles admin password login and session issuance
type AdminAuthService struct {
	adminRepo    repository.AdminRepositoryInterface
	config       *config.Config
	tokenManager *jwt.TokenManager
}

// NewAdminAuthService creates a new admin auth service instance
func NewAdminAuthService(adminRepo repository.AdminRepositoryInterface, cfg *config.Config) *AdminAuthService {
	var tokenManager *jwt.TokenManager
	if cfg.AdminSession.JWTSecret != "" {
		tokenManager = jwt.NewTokenManager(
			cfg.AdminSession.JWTSecret,
			cfg.AdminSession.JWTIssuer,
			cfg.AdminSession.SessionTTLHours,
		)
	}

	return &AdminAuthService{
		adminRepo:    adminRepo,
		config:       cfg,
		tokenManager: tokenManager,
	}
}

// Login verifies credentials and returns a session plus a signed JWT
func (s *AdminAuthService) Login(ctx context.Context, email, password string) (*models.AdminSession, string, error) {
	if s.tokenManager == nil {
		return nil, "", ErrJWTSecretNotSet
	}

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.Warn("Admin login for unknown email", zap.String("email", email))
		// Equalize timing between unknown email and wrong password
		_ = bcrypt.CompareHashAndPassword(
			[]byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"),
			[]byte(password))
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		logger.Warn("Admin login with wrong password", zap.String("email", email))
		return nil, "", ErrInvalidCredentials
	}

	if !admin.IsActive {
		return nil, "", ErrAdminInactive
	}
	if !admin.Role.IsValid() {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokenManager.GenerateToken(admin.UUID, admin.Email, admin.Name, string(admin.Role))
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	now := time.Now()
	session := &models.AdminSession{
		AdminUUID: admin.UUID,
		Email:     admin.Email,
		Name:      admin.Name,
		Role:      admin.Role,
		ExpiresAt: now.Add(s.tokenManager.GetExpirationTime()).Unix(),
		IssuedAt:  now.Unix(),
	}

	logger.Info("Admin login successful",
		zap.String("admin_uuid", admin.UUID),
		zap.String("role", string(admin.Role)))

	return session, token, nil
}

// GetSessionTTL returns the session lifetime in seconds for the cookie
func (s *AdminAuthService) GetSessionTTL() int {
	return s.config.AdminSession.SessionTTLHours * 3600
}

func (s *AdminAuthService) GetCookieDomain() string {
	return s.config.AdminSession.CookieDomain
}

func (s *AdminAuthService) GetCookieSecure() bool {
	return s.config.AdminSession.CookieSecure
}

func (s *AdminAuthService) GetTokenManager() *jwt.TokenManager {
	return s.tokenManager
}
