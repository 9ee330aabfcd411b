package services_test

import (
	"context"
	"encoding/json"

	"github.com/estateline/estateline-api/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockPropertyRepository is a mock implementation of PropertyRepositoryInterface
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) GetAll(ctx context.Context, opts models.FilterOptions) ([]*models.Property, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Property), args.Error(1)
}

func (m *MockPropertyRepository) GetByID(ctx context.Context, id int, opts models.FilterOptions) (*models.Property, error) {
	args := m.Called(ctx, id, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyRepository) GetBySlug(ctx context.Context, slug string, opts models.FilterOptions) (*models.Property, error) {
	args := m.Called(ctx, slug, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyRepository) Create(ctx context.Context, req *models.UpsertPropertyRequest) (*models.Property, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyRepository) Update(ctx context.Context, id int, req *models.UpsertPropertyRequest) (*models.Property, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyRepository) UpdateImages(ctx context.Context, id int, imageURL, thumbnailURL string, galleryURLs []string) error {
	args := m.Called(ctx, id, imageURL, thumbnailURL, galleryURLs)
	return args.Error(0)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPropertyRepository) InvalidateCache() {
	m.Called()
}

// MockInquiryRepository is a mock implementation of InquiryRepositoryInterface
type MockInquiryRepository struct {
	mock.Mock
}

func (m *MockInquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) (int, bool, error) {
	args := m.Called(ctx, inquiry)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockInquiryRepository) List(ctx context.Context, filter models.InquiryListFilter) ([]*models.Inquiry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) GetByID(ctx context.Context, id int) (*models.Inquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) UpdateStatus(ctx context.Context, id int, status models.InquiryStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockNotificationRepository is a mock implementation of NotificationRepositoryInterface
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *models.Notification) (int, error) {
	args := m.Called(ctx, n)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) List(ctx context.Context, onlyUnread bool, limit int) ([]*models.Notification, error) {
	args := m.Called(ctx, onlyUnread, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockAdminRepository is a mock implementation of AdminRepositoryInterface
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}

func (m *MockAdminRepository) GetByUUID(ctx context.Context, adminUUID string) (*models.AdminUser, error) {
	args := m.Called(ctx, adminUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}

// MockSettingsRepository is a mock implementation of SettingsRepositoryInterface
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context, group models.SettingsGroup) (*models.Settings, error) {
	args := m.Called(ctx, group)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Settings), args.Error(1)
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, group models.SettingsGroup, values json.RawMessage) error {
	args := m.Called(ctx, group, values)
	return args.Error(0)
}

// MockCatalogRepository is a mock implementation of CatalogRepositoryInterface
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListDevelopers(ctx context.Context) ([]*models.Developer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Developer), args.Error(1)
}

func (m *MockCatalogRepository) CreateDeveloper(ctx context.Context, req *models.UpsertDeveloperRequest) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogRepository) UpdateDeveloper(ctx context.Context, id int, req *models.UpsertDeveloperRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteDeveloper(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogRepository) ListCategories(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *MockCatalogRepository) CreateCategory(ctx context.Context, req *models.UpsertCategoryRequest) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogRepository) UpdateCategory(ctx context.Context, id int, req *models.UpsertCategoryRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteCategory(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogRepository) ListTestimonials(ctx context.Context, onlyVisible bool) ([]*models.Testimonial, error) {
	args := m.Called(ctx, onlyVisible)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Testimonial), args.Error(1)
}

func (m *MockCatalogRepository) CreateTestimonial(ctx context.Context, req *models.UpsertTestimonialRequest) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogRepository) UpdateTestimonial(ctx context.Context, id int, req *models.UpsertTestimonialRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteTestimonial(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
