package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/pkg/logger"
	"github.com/estateline/estateline-api/pkg/metrics"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// PropertyDataSource defines the interface for property data fetching
type PropertyDataSource interface {
	GetAllProperties(ctx context.Context) ([]*models.Property, error)
	GetPropertyBySlug(ctx context.Context, slug string) (*models.Property, error)
}

const (
	propertyKeyPrefix = "property:slug:"
	allPropertiesKey  = "property:all"
	metadataKey       = "property:metadata"
	cacheCheckPeriod  = 10 * time.Second
	maxRetries        = 3
	initialRetryWait  = 2 * time.Second
)

// Metadata stores cache-wide information
type Metadata struct {
	LastRefreshTime time.Time
	PropertyCount   int
	Version         int64
}

// PropertyCacheInterface abstracts the property cache for repositories and tests
type PropertyCacheInterface interface {
	Initialize() error
	IsReady() bool
	Get() ([]*models.Property, error)
	GetBySlug(slug string) (*models.Property, error)
	UpdateSingleProperty(slug string) error
	RemoveProperty(slug string) error
	ForceRefresh() ([]*models.Property, error)
	Clear()
}

// PropertyCache manages the in-memory cache for properties using slug-based storage
type PropertyCache struct {
	cache       *gocache.Cache
	dataSource  PropertyDataSource
	mu          sync.RWMutex
	refreshing  bool
	ready       bool
	ttl         time.Duration
	lastRefresh time.Time
}

// NewPropertyCache creates a new property cache with slug-based storage
func NewPropertyCache(dataSource PropertyDataSource, ttlSeconds int) *PropertyCache {
	ttl := time.Duration(ttlSeconds) * time.Second

	return &PropertyCache{
		cache:      gocache.New(gocache.NoExpiration, cacheCheckPeriod),
		dataSource: dataSource,
		ttl:        ttl,
	}
}

// Initialize performs initial cache population (synchronous, blocks until
// ready). Should be called during application startup before accepting
// requests.
func (pc *PropertyCache) Initialize() error {
	logger.Info("Initializing property cache...")
	startTime := time.Now()

	if err := pc.refreshWithRetry(); err != nil {
		logger.Error("Failed to initialize property cache", zap.Error(err))
		return err
	}

	pc.mu.Lock()
	pc.ready = true
	pc.lastRefresh = time.Now()
	pc.mu.Unlock()

	logger.Info("Property cache initialized successfully",
		zap.Duration("duration", time.Since(startTime)))

	go pc.schedulePeriodicRefresh()

	return nil
}

// IsReady returns true if the cache has been successfully initialized
func (pc *PropertyCache) IsReady() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.ready
}

// GetBySlug retrieves a single property by slug with O(1) complexity.
// Returns immediately without blocking, never triggers a database fetch.
func (pc *PropertyCache) GetBySlug(slug string) (*models.Property, error) {
	if !pc.IsReady() {
		return nil, fmt.Errorf("cache not initialized")
	}

	key := propertyKeyPrefix + slug

	data, found := pc.cache.Get(key)
	if !found {
		metrics.CacheMisses.WithLabelValues("property_by_slug").Inc()
		logger.Debug("Property not found in cache", zap.String("slug", slug))
		return nil, fmt.Errorf("property not found")
	}

	metrics.CacheHits.WithLabelValues("property_by_slug").Inc()

	property, ok := data.(*models.Property)
	if !ok {
		logger.Error("Invalid cache data type", zap.String("slug", slug))
		pc.cache.Delete(key)
		return nil, fmt.Errorf("invalid cache data")
	}

	return property, nil
}

// Get retrieves all properties from cache.
// Returns immediately without blocking, never triggers a database fetch.
func (pc *PropertyCache) Get() ([]*models.Property, error) {
	if !pc.IsReady() {
		return nil, fmt.Errorf("cache not initialized")
	}

	slugsData, found := pc.cache.Get(allPropertiesKey)
	if !found {
		metrics.CacheMisses.WithLabelValues("property_all").Inc()
		logger.Warn("All properties list not in cache (expired), returning empty")
		return []*models.Property{}, nil
	}

	slugs, ok := slugsData.([]string)
	if !ok {
		logger.Error("Invalid cache data type for all properties list")
		return []*models.Property{}, nil
	}

	metrics.CacheHits.WithLabelValues("property_all").Inc()

	properties := make([]*models.Property, 0, len(slugs))
	for _, slug := range slugs {
		property, err := pc.GetBySlug(slug)
		if err != nil {
			logger.Debug("Property missing from cache", zap.String("slug", slug))
			continue
		}
		properties = append(properties, property)
	}

	return properties, nil
}

// UpdateSingleProperty refreshes ONE property in cache after an admin edit
func (pc *PropertyCache) UpdateSingleProperty(slug string) error {
	if !pc.IsReady() {
		return fmt.Errorf("cache not initialized")
	}

	logger.Info("Updating single property in cache", zap.String("slug", slug))

	property, err := pc.dataSource.GetPropertyBySlug(context.Background(), slug)
	if err != nil {
		logger.Error("Failed to fetch property from data source",
			zap.String("slug", slug),
			zap.Error(err))
		return err
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()

	key := propertyKeyPrefix + slug
	pc.cache.Set(key, property, gocache.NoExpiration)

	if err := pc.ensurePropertyInListLocked(slug); err != nil {
		logger.Error("Failed to update all-properties list", zap.Error(err))
		// Non-fatal - property is still cached
	}

	metrics.CacheSize.WithLabelValues("property_single_update").Inc()
	logger.Info("Single property updated successfully", zap.String("slug", slug))

	return nil
}

// RemoveProperty removes a property from cache (for deletions)
func (pc *PropertyCache) RemoveProperty(slug string) error {
	if !pc.IsReady() {
		return fmt.Errorf("cache not initialized")
	}

	logger.Info("Removing property from cache", zap.String("slug", slug))

	pc.mu.Lock()
	defer pc.mu.Unlock()

	key := propertyKeyPrefix + slug
	pc.cache.Delete(key)

	slugsData, found := pc.cache.Get(allPropertiesKey)
	if !found {
		return nil // List expired
	}

	slugs, ok := slugsData.([]string)
	if !ok {
		return fmt.Errorf("invalid all-properties list type")
	}

	newSlugs := make([]string, 0, len(slugs))
	for _, s := range slugs {
		if s != slug {
			newSlugs = append(newSlugs, s)
		}
	}

	pc.cache.Set(allPropertiesKey, newSlugs, pc.ttl)

	return nil
}

// ForceRefresh triggers a background refresh and returns immediately
func (pc *PropertyCache) ForceRefresh() ([]*models.Property, error) {
	logger.Info("Force refresh requested, triggering background refresh")

	go func() {
		if err := pc.refreshInBackground(); err != nil {
			logger.Error("Background refresh failed", zap.Error(err))
		}
	}()

	return pc.Get()
}

// schedulePeriodicRefresh runs background refresh at TTL intervals
func (pc *PropertyCache) schedulePeriodicRefresh() {
	ticker := time.NewTicker(pc.ttl)
	defer ticker.Stop()

	for range ticker.C {
		logger.Info("Starting scheduled cache refresh")

		if err := pc.refreshInBackground(); err != nil {
			logger.Error("Scheduled cache refresh failed", zap.Error(err))
			// Keep the scheduler alive - will retry on next tick
		}
	}
}

// refreshInBackground performs non-blocking background refresh
func (pc *PropertyCache) refreshInBackground() error {
	pc.mu.Lock()

	if pc.refreshing {
		pc.mu.Unlock()
		logger.Debug("Refresh already in progress, skipping")
		return nil
	}

	pc.refreshing = true
	pc.mu.Unlock()

	defer func() {
		pc.mu.Lock()
		pc.refreshing = false
		pc.mu.Unlock()
	}()

	startTime := time.Now()

	properties, err := pc.dataSource.GetAllProperties(context.Background())
	if err != nil {
		logger.Error("Failed to fetch properties in background refresh", zap.Error(err))
		return err
	}

	pc.populateCache(properties)

	pc.mu.Lock()
	pc.lastRefresh = time.Now()
	pc.mu.Unlock()

	logger.Info("Background refresh completed",
		zap.Int("count", len(properties)),
		zap.Duration("duration", time.Since(startTime)))

	return nil
}

// refreshWithRetry performs a refresh with exponential backoff retry logic
func (pc *PropertyCache) refreshWithRetry() error {
	var err error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			//nolint:gosec // G115: attempt bounded by maxRetries (3), no overflow possible
			waitTime := initialRetryWait * time.Duration(1<<uint(attempt-1))
			logger.Info("Retrying cache refresh",
				zap.Int("attempt", attempt+1),
				zap.Int("max_attempts", maxRetries),
				zap.Duration("wait_time", waitTime))
			time.Sleep(waitTime)
		}

		properties, fetchErr := pc.dataSource.GetAllProperties(context.Background())
		if fetchErr != nil {
			err = fetchErr
			logger.Error("Cache refresh attempt failed",
				zap.Int("attempt", attempt+1),
				zap.Error(err))
			continue
		}

		pc.populateCache(properties)
		return nil
	}

	return fmt.Errorf("failed to refresh cache after %d attempts: %w", maxRetries, err)
}

// populateCache stores all properties in cache with individual keys
func (pc *PropertyCache) populateCache(properties []*models.Property) {
	slugs := make([]string, 0, len(properties))

	for _, property := range properties {
		key := propertyKeyPrefix + property.Slug

		// Individual entries never expire; expiration is controlled
		// through the all-properties list.
		pc.cache.Set(key, property, gocache.NoExpiration)

		slugs = append(slugs, property.Slug)
	}

	pc.cache.Set(allPropertiesKey, slugs, pc.ttl)

	pc.cache.Set(metadataKey, &Metadata{
		LastRefreshTime: time.Now(),
		PropertyCount:   len(properties),
		Version:         time.Now().Unix(),
	}, gocache.NoExpiration)

	metrics.CacheSize.WithLabelValues("properties").Set(float64(len(properties)))

	logger.Info("Cache populated successfully", zap.Int("count", len(properties)))
}

// ensurePropertyInListLocked ensures slug is in the all-properties list.
// MUST be called with pc.mu locked.
func (pc *PropertyCache) ensurePropertyInListLocked(slug string) error {
	slugsData, found := pc.cache.Get(allPropertiesKey)
	if !found {
		logger.Debug("All-properties list not found, skipping update")
		return nil
	}

	slugs, ok := slugsData.([]string)
	if !ok {
		return fmt.Errorf("invalid all-properties list type")
	}

	for _, s := range slugs {
		if s == slug {
			return nil
		}
	}

	slugs = append(slugs, slug)
	pc.cache.Set(allPropertiesKey, slugs, pc.ttl)

	return nil
}

// Clear clears the entire cache
func (pc *PropertyCache) Clear() {
	pc.cache.Flush()
	logger.Info("Property cache cleared")
}

// GetMetadata returns cache metadata
func (pc *PropertyCache) GetMetadata() (*Metadata, error) {
	data, found := pc.cache.Get(metadataKey)
	if !found {
		return nil, fmt.Errorf("metadata not found")
	}

	metadata, ok := data.(*Metadata)
	if !ok {
		return nil, fmt.Errorf("invalid metadata type")
	}

	return metadata, nil
}
