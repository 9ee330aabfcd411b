package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/pkg/jwt"
)

var (
	ErrInvalidInquiryStatus = errors.New("unknown inquiry status")
	ErrUnknownSettingsGroup = errors.New("unknown settings group")
	ErrStorageNotConfigured = errors.New("object storage not configured")
	ErrImageTooLarge        = errors.New("image exceeds maximum size")
)

// InquiryServiceInterface defines the interface for inquiry service operations
type InquiryServiceInterface interface {
	SubmitInquiry(ctx context.Context, req *models.CreateInquiryRequest) (*models.CreateInquiryResponse, error)
	ListInquiries(ctx context.Context, filter models.InquiryListFilter) ([]*models.Inquiry, error)
	GetInquiry(ctx context.Context, id int) (*models.Inquiry, error)
	UpdateInquiryStatus(ctx context.Context, id int, status string) (*models.Inquiry, error)
}

// PropertyServiceInterface defines the interface for property service operations
type PropertyServiceInterface interface {
	ListProperties(ctx context.Context, filter models.PropertyFilter) ([]models.PublicPropertyResponse, error)
	GetPropertyBySlug(ctx context.Context, slug string) (*models.PublicPropertyResponse, error)
	ListAllProperties(ctx context.Context, forceRefresh bool) ([]*models.Property, error)
	GetProperty(ctx context.Context, id int) (*models.Property, error)
	CreateProperty(ctx context.Context, req *models.UpsertPropertyRequest) (*models.Property, error)
	UpdateProperty(ctx context.Context, id int, req *models.UpsertPropertyRequest) (*models.Property, error)
	DeleteProperty(ctx context.Context, id int) error
	UploadPropertyImage(ctx context.Context, id int, filename, contentType string, data []byte) (string, error)
}

// CatalogServiceInterface defines the interface for catalog service operations
type CatalogServiceInterface interface {
	ListDevelopers(ctx context.Context) ([]*models.Developer, error)
	CreateDeveloper(ctx context.Context, req *models.UpsertDeveloperRequest) (int, error)
	UpdateDeveloper(ctx context.Context, id int, req *models.UpsertDeveloperRequest) error
	DeleteDeveloper(ctx context.Context, id int) error

	ListCategories(ctx context.Context) ([]*models.Category, error)
	CreateCategory(ctx context.Context, req *models.UpsertCategoryRequest) (int, error)
	UpdateCategory(ctx context.Context, id int, req *models.UpsertCategoryRequest) error
	DeleteCategory(ctx context.Context, id int) error

	ListTestimonials(ctx context.Context, includeHidden bool) ([]*models.Testimonial, error)
	CreateTestimonial(ctx context.Context, req *models.UpsertTestimonialRequest) (int, error)
	UpdateTestimonial(ctx context.Context, id int, req *models.UpsertTestimonialRequest) error
	DeleteTestimonial(ctx context.Context, id int) error
}

// SettingsServiceInterface defines the interface for settings service operations
type SettingsServiceInterface interface {
	GetGroup(ctx context.Context, group models.SettingsGroup) (*models.Settings, error)
	GetPublicGroups(ctx context.Context) (map[string]json.RawMessage, error)
	UpdateGroup(ctx context.Context, group models.SettingsGroup, values json.RawMessage) error
}

// NotificationServiceInterface defines the interface for notification service operations
type NotificationServiceInterface interface {
	List(ctx context.Context, onlyUnread bool, limit int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id int) error
	MarkAllRead(ctx context.Context) (int, error)
}

// AdminAuthServiceInterface defines the interface for admin authentication
type AdminAuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (*models.AdminSession, string, error)
	GetSessionTTL() int
	GetCookieDomain() string
	GetCookieSecure() bool
	GetTokenManager() *jwt.TokenManager
}

// Ensure services implement their interfaces
var _ InquiryServiceInterface = (*InquiryService)(nil)
var _ PropertyServiceInterface = (*PropertyService)(nil)
var _ CatalogServiceInterface = (*CatalogService)(nil)
var _ SettingsServiceInterface = (*SettingsService)(nil)
var _ NotificationServiceInterface = (*NotificationService)(nil)
var _ AdminAuthServiceInterface = (*AdminAuthService)(nil)
