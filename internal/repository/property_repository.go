package repository

import (
	"context"
	"fmt"

	"github.com/estateline/estateline-api/internal/cache"
	"github.com/estateline/estateline-api/internal/models"
	pkgerrors "github.com/estateline/estateline-api/pkg/errors"
)

// PropertyRepositoryInterface defines the interface for property data access operations.
type PropertyRepositoryInterface interface {
	GetAll(ctx context.Context, opts models.FilterOptions) ([]*models.Property, error)
	GetByID(ctx context.Context, id int, opts models.FilterOptions) (*models.Property, error)
	GetBySlug(ctx context.Context, slug string, opts models.FilterOptions) (*models.Property, error)
	Create(ctx context.Context, req *models.UpsertPropertyRequest) (*models.Property, error)
	Update(ctx context.Context, id int, req *models.UpsertPropertyRequest) (*models.Property, error)
	UpdateImages(ctx context.Context, id int, imageURL, thumbnailURL string, galleryURLs []string) error
	Delete(ctx context.Context, id int) error
	InvalidateCache()
}

// PropertyRepository handles property data access through the cache, falling
// back to the store for writes. With caching disabled every read goes
// straight to the database.
type PropertyRepository struct {
	store         PropertyStore
	propertyCache cache.PropertyCacheInterface
	disableCache  bool
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(store PropertyStore, propertyCache cache.PropertyCacheInterface, disableCache bool) PropertyRepositoryInterface {
	return &PropertyRepository{
		store:         store,
		propertyCache: propertyCache,
		disableCache:  disableCache,
	}
}

// GetAll retrieves all properties with optional filtering
func (r *PropertyRepository) GetAll(ctx context.Context, opts models.FilterOptions) ([]*models.Property, error) {
	var properties []*models.Property
	var err error

	switch {
	case r.disableCache:
		properties, err = r.store.GetAllProperties(ctx)
	case opts.ForceRefresh:
		properties, err = r.propertyCache.ForceRefresh()
	default:
		properties, err = r.propertyCache.Get()
	}
	if err != nil {
		return nil, err
	}

	return r.applyFilters(properties, opts), nil
}

// GetByID retrieves a property by numeric ID
func (r *PropertyRepository) GetByID(ctx context.Context, id int, opts models.FilterOptions) (*models.Property, error) {
	properties, err := r.GetAll(ctx, opts)
	if err != nil {
		return nil, err
	}

	for _, property := range properties {
		if property.ID == id {
			return property, nil
		}
	}

	return nil, pkgerrors.NotFoundError(fmt.Sprintf("property with ID %d not found", id))
}

// GetBySlug retrieves a property by slug
func (r *PropertyRepository) GetBySlug(ctx context.Context, slug string, opts models.FilterOptions) (*models.Property, error) {
	var property *models.Property
	var err error

	if r.disableCache {
		property, err = r.store.GetPropertyBySlug(ctx, slug)
	} else {
		property, err = r.propertyCache.GetBySlug(slug)
	}
	if err != nil {
		return nil, pkgerrors.NotFoundError(fmt.Sprintf("property with slug %s not found", slug))
	}

	if opts.OnlyVisible && !property.IsVisible {
		return nil, pkgerrors.NotFoundError(fmt.Sprintf("property with slug %s not found", slug))
	}

	return property, nil
}

// Create inserts a new property and refreshes its cache entry
func (r *PropertyRepository) Create(ctx context.Context, req *models.UpsertPropertyRequest) (*models.Property, error) {
	property, err := r.store.CreateProperty(ctx, req)
	if err != nil {
		return nil, err
	}

	if cacheErr := r.propertyCache.UpdateSingleProperty(property.Slug); cacheErr != nil {
		// Cache catches up on next scheduled refresh
		_ = cacheErr
	}

	return property, nil
}

// Update replaces editable fields and refreshes the cache entry
func (r *PropertyRepository) Update(ctx context.Context, id int, req *models.UpsertPropertyRequest) (*models.Property, error) {
	property, err := r.store.UpdateProperty(ctx, id, req)
	if err != nil {
		return nil, err
	}

	if cacheErr := r.propertyCache.UpdateSingleProperty(property.Slug); cacheErr != nil {
		_ = cacheErr
	}

	return property, nil
}

// UpdateImages sets image URLs on a property and refreshes the cache entry
func (r *PropertyRepository) UpdateImages(ctx context.Context, id int, imageURL, thumbnailURL string, galleryURLs []string) error {
	if err := r.store.UpdatePropertyImages(ctx, id, imageURL, thumbnailURL, galleryURLs); err != nil {
		return err
	}

	property, err := r.store.GetPropertyByID(ctx, id)
	if err == nil {
		_ = r.propertyCache.UpdateSingleProperty(property.Slug)
	}

	return nil
}

// Delete removes a property and evicts it from cache
func (r *PropertyRepository) Delete(ctx context.Context, id int) error {
	property, err := r.store.GetPropertyByID(ctx, id)
	if err != nil {
		return err
	}

	if err := r.store.DeleteProperty(ctx, id); err != nil {
		return err
	}

	_ = r.propertyCache.RemoveProperty(property.Slug)

	return nil
}

// applyFilters applies filtering options to a property list
func (r *PropertyRepository) applyFilters(properties []*models.Property, opts models.FilterOptions) []*models.Property {
	result := make([]*models.Property, 0)

	for _, property := range properties {
		if opts.OnlyVisible && !property.IsVisible {
			continue
		}

		// Copy to avoid mutating cached data
		p := *property
		result = append(result, &p)
	}

	return result
}

// InvalidateCache forces cache invalidation
func (r *PropertyRepository) InvalidateCache() {
	r.propertyCache.Clear()
}
