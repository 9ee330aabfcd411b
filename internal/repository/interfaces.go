package repository

import (
	"context"
	"encoding/json"

	"github.com/estateline/estateline-api/internal/models"
)

// PropertyStore defines the storage operations behind the property repository
type PropertyStore interface {
	GetAllProperties(ctx context.Context) ([]*models.Property, error)
	GetPropertyBySlug(ctx context.Context, slug string) (*models.Property, error)
	GetPropertyByID(ctx context.Context, id int) (*models.Property, error)
	CreateProperty(ctx context.Context, req *models.UpsertPropertyRequest) (*models.Property, error)
	UpdateProperty(ctx context.Context, id int, req *models.UpsertPropertyRequest) (*models.Property, error)
	UpdatePropertyImages(ctx context.Context, id int, imageURL, thumbnailURL string, galleryURLs []string) error
	DeleteProperty(ctx context.Context, id int) error
}

// InquiryStore defines the storage operations behind the inquiry repository
type InquiryStore interface {
	CreateInquiry(ctx context.Context, inquiry *models.Inquiry) (int, bool, error)
	GetInquiries(ctx context.Context, filter models.InquiryListFilter) ([]*models.Inquiry, error)
	GetInquiryByID(ctx context.Context, id int) (*models.Inquiry, error)
	UpdateInquiryStatus(ctx context.Context, id int, status models.InquiryStatus) error
}

// CatalogStore defines the storage operations for developers, categories and
// testimonials
type CatalogStore interface {
	GetDevelopers(ctx context.Context) ([]*models.Developer, error)
	CreateDeveloper(ctx context.Context, req *models.UpsertDeveloperRequest) (int, error)
	UpdateDeveloper(ctx context.Context, id int, req *models.UpsertDeveloperRequest) error
	DeleteDeveloper(ctx context.Context, id int) error

	GetCategories(ctx context.Context) ([]*models.Category, error)
	CreateCategory(ctx context.Context, req *models.UpsertCategoryRequest) (int, error)
	UpdateCategory(ctx context.Context, id int, req *models.UpsertCategoryRequest) error
	DeleteCategory(ctx context.Context, id int) error

	GetTestimonials(ctx context.Context, onlyVisible bool) ([]*models.Testimonial, error)
	CreateTestimonial(ctx context.Context, req *models.UpsertTestimonialRequest) (int, error)
	UpdateTestimonial(ctx context.Context, id int, req *models.UpsertTestimonialRequest) error
	DeleteTestimonial(ctx context.Context, id int) error
}

// SettingsStore defines the storage operations for settings groups
type SettingsStore interface {
	GetSettings(ctx context.Context, group models.SettingsGroup) (*models.Settings, error)
	UpsertSettings(ctx context.Context, group models.SettingsGroup, values json.RawMessage) error
}

// NotificationStore defines the storage operations for admin notifications
type NotificationStore interface {
	CreateNotification(ctx context.Context, n *models.Notification) (int, error)
	GetNotifications(ctx context.Context, onlyUnread bool, limit int) ([]*models.Notification, error)
	MarkNotificationRead(ctx context.Context, id int) error
	MarkAllNotificationsRead(ctx context.Context) (int, error)
}

// AdminStore defines the storage operations for admin accounts
type AdminStore interface {
	GetAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	GetAdminByUUID(ctx context.Context, adminUUID string) (*models.AdminUser, error)
}
