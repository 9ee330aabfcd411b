package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/estateline/estateline-api/config"
	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/internal/repository"
	"github.com/estateline/estateline-api/pkg/circuitbreaker"
	pkgerrors "github.com/estateline/estateline-api/pkg/errors"
	"github.com/estateline/estateline-api/pkg/httpclient"
	"github.com/estateline/estateline-api/pkg/logger"
	"github.com/estateline/estateline-api/pkg/metrics"
	"github.com/estateline/estateline-api/pkg/storage"
	"github.com/estateline/estateline-api/pkg/trigger"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// PropertyService handles public property listing and admin property management
type PropertyService struct {
	propertyRepo     repository.PropertyRepositoryInterface
	notificationRepo repository.NotificationRepositoryInterface
	storageClient    *storage.Client
	config           *config.Config
	httpClient       httpclient.Client
	triggerBreaker   *gobreaker.CircuitBreaker
}

// NewPropertyService creates a new property service instance
func NewPropertyService(
	propertyRepo repository.PropertyRepositoryInterface,
	notificationRepo repository.NotificationRepositoryInterface,
	storageClient *storage.Client,
	cfg *config.Config,
	httpClient httpclient.Client,
) *PropertyService {
	return &PropertyService{
		propertyRepo:     propertyRepo,
		notificationRepo: notificationRepo,
		storageClient:    storageClient,
		config:           cfg,
		httpClient:       httpClient,
		triggerBreaker:   circuitbreaker.NewCircuitBreaker(circuitbreaker.DefaultConfig("property-trigger")),
	}
}

// ListProperties returns visible properties matching the public filters
func (s *PropertyService) ListProperties(ctx context.Context, filter models.PropertyFilter) ([]models.PublicPropertyResponse, error) {
	properties, err := s.propertyRepo.GetAll(ctx, models.FilterOptions{OnlyVisible: true})
	if err != nil {
		return nil, err
	}

	result := make([]models.PublicPropertyResponse, 0, len(properties))
	for _, p := range properties {
		if !matchesFilter(p, filter) {
			continue
		}
		result = append(result, p.ToPublicResponse(s.config.Server.BaseURL))
	}

	return result, nil
}

// GetPropertyBySlug returns a single visible property for the public detail page
func (s *PropertyService) GetPropertyBySlug(ctx context.Context, slug string) (*models.PublicPropertyResponse, error) {
	property, err := s.propertyRepo.GetBySlug(ctx, slug, models.FilterOptions{OnlyVisible: true})
	if err != nil {
		return nil, err
	}

	metrics.PropertyViews.WithLabelValues(property.Slug).Inc()

	resp := property.ToPublicResponse(s.config.Server.BaseURL)
	return &resp, nil
}

// ListAllProperties returns every property for the admin table, hidden included
func (s *PropertyService) ListAllProperties(ctx context.Context, forceRefresh bool) ([]*models.Property, error) {
	return s.propertyRepo.GetAll(ctx, models.FilterOptions{ForceRefresh: forceRefresh})
}

// GetProperty returns a property by ID for the admin edit view
func (s *PropertyService) GetProperty(ctx context.Context, id int) (*models.Property, error) {
	return s.propertyRepo.GetByID(ctx, id, models.FilterOptions{})
}

// CreateProperty creates a property and notifies the admin feed when it goes
// live immediately.
func (s *PropertyService) CreateProperty(ctx context.Context, req *models.UpsertPropertyRequest) (*models.Property, error) {
	property, err := s.propertyRepo.Create(ctx, req)
	if err != nil {
		logger.Error("Failed to create property", zap.Error(err))
		return nil, err
	}

	logger.Info("Property created",
		zap.Int("property_id", property.ID),
		zap.String("slug", property.Slug))

	if property.IsVisible {
		s.notifyPublished(ctx, property)
	}

	return property, nil
}

// UpdateProperty replaces the editable fields of a property
func (s *PropertyService) UpdateProperty(ctx context.Context, id int, req *models.UpsertPropertyRequest) (*models.Property, error) {
	before, err := s.propertyRepo.GetByID(ctx, id, models.FilterOptions{})
	if err != nil {
		return nil, err
	}

	property, err := s.propertyRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	// Hidden -> visible transition counts as publishing
	if !before.IsVisible && property.IsVisible {
		s.notifyPublished(ctx, property)
	}

	return property, nil
}

// DeleteProperty removes a property
func (s *PropertyService) DeleteProperty(ctx context.Context, id int) error {
	return s.propertyRepo.Delete(ctx, id)
}

// UploadPropertyImage stores an image and its thumbnail in object storage and
// records the URLs on the property.
func (s *PropertyService) UploadPropertyImage(ctx context.Context, id int, filename, contentType string, data []byte) (string, error) {
	if s.storageClient == nil {
		return "", ErrStorageNotConfigured
	}

	if err := storage.ValidateImageType(contentType); err != nil {
		return "", pkgerrors.InvalidInputError("image", err.Error())
	}
	if int64(len(data)) > storage.MaxImageBytes {
		return "", ErrImageTooLarge
	}

	property, err := s.propertyRepo.GetByID(ctx, id, models.FilterOptions{})
	if err != nil {
		return "", err
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(filename))
	imageURL, thumbURL, err := s.storageClient.UploadPropertyImage(ctx, id, name, data, contentType)
	if err != nil {
		logger.Error("Failed to upload property image",
			zap.Int("property_id", id),
			zap.Error(err))
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	if err := s.propertyRepo.UpdateImages(ctx, id, imageURL, thumbURL, property.GalleryURLs); err != nil {
		return "", err
	}

	logger.Info("Property image uploaded",
		zap.Int("property_id", id),
		zap.String("image_url", imageURL))

	return imageURL, nil
}

func (s *PropertyService) notifyPublished(ctx context.Context, property *models.Property) {
	if s.config.EventTriggers.PropertyPublishedTriggerURL != "" {
		trigger.CallAsync(
			s.config.EventTriggers.PropertyPublishedTriggerURL,
			property.Slug,
			s.httpClient,
			s.triggerBreaker,
		)
	}

	n := &models.Notification{
		Kind:  models.NotificationPropertyPublished,
		Title: "Property published: " + property.Name,
		Body:  property.Location,
		RefID: property.ID,
	}
	if _, err := s.notificationRepo.Create(ctx, n); err != nil {
		logger.Error("Failed to create publish notification",
			zap.Int("property_id", property.ID),
			zap.Error(err))
	}
}

func matchesFilter(p *models.Property, filter models.PropertyFilter) bool {
	if filter.City != "" && !strings.EqualFold(p.City, filter.City) {
		return false
	}
	if filter.PropertyType != "" && p.PropertyType != filter.PropertyType {
		return false
	}
	if filter.CategoryID != 0 && (p.CategoryID == nil || *p.CategoryID != filter.CategoryID) {
		return false
	}
	if filter.OnlyFeatured && !p.IsFeatured {
		return false
	}
	return true
}
