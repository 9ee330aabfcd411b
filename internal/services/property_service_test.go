package services_test

import (
	"context"
	"testing"

	"github.com/estateline/estateline-api/config"
	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPropertyService(propertyRepo *MockPropertyRepository, notificationRepo *MockNotificationRepository) *services.PropertyService {
	cfg := &config.Config{
		Server: config.ServerConfig{
			AppEnv:  "development",
			BaseURL: "https://estateline.in",
		},
	}
	return services.NewPropertyService(propertyRepo, notificationRepo, nil, cfg, nil)
}

func TestPropertyService_ListProperties(t *testing.T) {
	mockPropertyRepo := new(MockPropertyRepository)
	mockNotificationRepo := new(MockNotificationRepository)
	service := newPropertyService(mockPropertyRepo, mockNotificationRepo)
	ctx := context.Background()

	properties := []*models.Property{
		{ID: 1, Slug: "sunrise-heights-1", Name: "Sunrise Heights", City: "Pune", PropertyType: "apartment", IsVisible: true},
		{ID: 2, Slug: "palm-villas-2", Name: "Palm Villas", City: "Goa", PropertyType: "villa", IsVisible: true},
	}

	mockPropertyRepo.On("GetAll", ctx, models.FilterOptions{OnlyVisible: true}).Return(properties, nil).Once()

	result, err := service.ListProperties(ctx, models.PropertyFilter{City: "pune"})
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "Sunrise Heights", result[0].Name)
	assert.Equal(t, "https://estateline.in/property/sunrise-heights-1", result[0].Link)

	mockPropertyRepo.AssertExpectations(t)
}

func TestPropertyService_ListProperties_FeaturedOnly(t *testing.T) {
	mockPropertyRepo := new(MockPropertyRepository)
	mockNotificationRepo := new(MockNotificationRepository)
	service := newPropertyService(mockPropertyRepo, mockNotificationRepo)
	ctx := context.Background()

	properties := []*models.Property{
		{ID: 1, Slug: "sunrise-heights-1", Name: "Sunrise Heights", IsVisible: true, IsFeatured: true},
		{ID: 2, Slug: "palm-villas-2", Name: "Palm Villas", IsVisible: true},
	}

	mockPropertyRepo.On("GetAll", ctx, models.FilterOptions{OnlyVisible: true}).Return(properties, nil).Once()

	result, err := service.ListProperties(ctx, models.PropertyFilter{OnlyFeatured: true})
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.True(t, result[0].IsFeatured)
}

func TestPropertyService_GetPropertyBySlug(t *testing.T) {
	mockPropertyRepo := new(MockPropertyRepository)
	mockNotificationRepo := new(MockNotificationRepository)
	service := newPropertyService(mockPropertyRepo, mockNotificationRepo)
	ctx := context.Background()

	property := &models.Property{
		ID:        1,
		Slug:      "sunrise-heights-1",
		Name:      "Sunrise Heights",
		Amenities: []string{"Pool", "Gym"},
		IsVisible: true,
	}

	mockPropertyRepo.On("GetBySlug", ctx, "sunrise-heights-1", models.FilterOptions{OnlyVisible: true}).
		Return(property, nil).Once()

	resp, err := service.GetPropertyBySlug(ctx, "sunrise-heights-1")
	assert.NoError(t, err)
	assert.Equal(t, "Sunrise Heights", resp.Name)
	assert.Equal(t, "Pool,Gym", resp.Amenities)

	mockPropertyRepo.AssertExpectations(t)
}

func TestPropertyService_CreateProperty_VisibleNotifies(t *testing.T) {
	mockPropertyRepo := new(MockPropertyRepository)
	mockNotificationRepo := new(MockNotificationRepository)
	service := newPropertyService(mockPropertyRepo, mockNotificationRepo)
	ctx := context.Background()

	req := &models.UpsertPropertyRequest{Name: "Sunrise Heights", IsVisible: true}
	created := &models.Property{ID: 1, Slug: "sunrise-heights-1", Name: "Sunrise Heights", IsVisible: true}

	mockPropertyRepo.On("Create", ctx, req).Return(created, nil).Once()
	mockNotificationRepo.On("Create", ctx, mock.AnythingOfType("*models.Notification")).Return(1, nil).Once()

	property, err := service.CreateProperty(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, "sunrise-heights-1", property.Slug)

	mockPropertyRepo.AssertExpectations(t)
	mockNotificationRepo.AssertExpectations(t)
}

func TestPropertyService_CreateProperty_HiddenDoesNotNotify(t *testing.T) {
	mockPropertyRepo := new(MockPropertyRepository)
	mockNotificationRepo := new(MockNotificationRepository)
	service := newPropertyService(mockPropertyRepo, mockNotificationRepo)
	ctx := context.Background()

	req := &models.UpsertPropertyRequest{Name: "Sunrise Heights"}
	created := &models.Property{ID: 1, Slug: "sunrise-heights-1", Name: "Sunrise Heights"}

	mockPropertyRepo.On("Create", ctx, req).Return(created, nil).Once()

	_, err := service.CreateProperty(ctx, req)
	assert.NoError(t, err)

	mockNotificationRepo.AssertNotCalled(t, "Create")
}

func TestPropertyService_UpdateProperty_PublishTransition(t *testing.T) {
	mockPropertyRepo := new(MockPropertyRepository)
	mockNotificationRepo := new(MockNotificationRepository)
	service := newPropertyService(mockPropertyRepo, mockNotificationRepo)
	ctx := context.Background()

	req := &models.UpsertPropertyRequest{Name: "Sunrise Heights", IsVisible: true}
	before := &models.Property{ID: 1, Slug: "sunrise-heights-1", Name: "Sunrise Heights"}
	after := &models.Property{ID: 1, Slug: "sunrise-heights-1", Name: "Sunrise Heights", IsVisible: true}

	mockPropertyRepo.On("GetByID", ctx, 1, models.FilterOptions{}).Return(before, nil).Once()
	mockPropertyRepo.On("Update", ctx, 1, req).Return(after, nil).Once()
	mockNotificationRepo.On("Create", ctx, mock.AnythingOfType("*models.Notification")).Return(1, nil).Once()

	property, err := service.UpdateProperty(ctx, 1, req)
	assert.NoError(t, err)
	assert.True(t, property.IsVisible)

	mockPropertyRepo.AssertExpectations(t)
	mockNotificationRepo.AssertExpectations(t)
}

func TestPropertyService_UpdateProperty_StayVisibleNoNotify(t *testing.T) {
	mockPropertyRepo := new(MockPropertyRepository)
	mockNotificationRepo := new(MockNotificationRepository)
	service := newPropertyService(mockPropertyRepo, mockNotificationRepo)
	ctx := context.Background()

	req := &models.UpsertPropertyRequest{Name: "Sunrise Heights", IsVisible: true}
	existing := &models.Property{ID: 1, Slug: "sunrise-heights-1", Name: "Sunrise Heights", IsVisible: true}

	mockPropertyRepo.On("GetByID", ctx, 1, models.FilterOptions{}).Return(existing, nil).Once()
	mockPropertyRepo.On("Update", ctx, 1, req).Return(existing, nil).Once()

	_, err := service.UpdateProperty(ctx, 1, req)
	assert.NoError(t, err)

	mockNotificationRepo.AssertNotCalled(t, "Create")
}

func TestPropertyService_UploadPropertyImage_NoStorage(t *testing.T) {
	mockPropertyRepo := new(MockPropertyRepository)
	mockNotificationRepo := new(MockNotificationRepository)
	service := newPropertyService(mockPropertyRepo, mockNotificationRepo)
	ctx := context.Background()

	_, err := service.UploadPropertyImage(ctx, 1, "photo.jpg", "image/jpeg", []byte("data"))
	assert.ErrorIs(t, err, services.ErrStorageNotConfigured)

	mockPropertyRepo.AssertNotCalled(t, "GetByID")
}
