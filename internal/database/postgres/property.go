package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/pkg/logger"
	"github.com/estateline/estateline-api/pkg/metrics"
	"github.com/estateline/estateline-api/pkg/slug"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const propertyColumns = `
	id, slug, name, location, city, property_type, price_range,
	configurations, description, amenities, developer_id, category_id,
	image_url, thumbnail_url, gallery_urls, is_featured, is_visible,
	sort_order, created_at, updated_at
`

// GetAllProperties retrieves every property row (visibility filtering is a
// repository concern).
func (c *Client) GetAllProperties(ctx context.Context) ([]*models.Property, error) {
	start := time.Now()
	operation := "getAllProperties"

	rows, err := c.pool.Query(ctx,
		"SELECT "+propertyColumns+" FROM properties ORDER BY sort_order, id")
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	properties := make([]*models.Property, 0)
	for rows.Next() {
		p, scanErr := scanProperty(rows)
		if scanErr != nil {
			recordMetrics(operation, "error", metrics.MeasureDuration(start))
			return nil, scanErr
		}
		properties = append(properties, p)
	}
	if rows.Err() != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to read property rows: %w", rows.Err())
	}

	duration := metrics.MeasureDuration(start)
	recordMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration,
		zap.Int("count", len(properties)))

	return properties, nil
}

// GetPropertyBySlug retrieves a single property by slug
func (c *Client) GetPropertyBySlug(ctx context.Context, propertySlug string) (*models.Property, error) {
	start := time.Now()
	operation := "getPropertyBySlug"

	row := c.pool.QueryRow(ctx,
		"SELECT "+propertyColumns+" FROM properties WHERE slug = $1", propertySlug)

	p, err := scanProperty(row)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, err
	}

	recordMetrics(operation, "success", metrics.MeasureDuration(start))
	return p, nil
}

// GetPropertyByID retrieves a single property by numeric ID
func (c *Client) GetPropertyByID(ctx context.Context, id int) (*models.Property, error) {
	start := time.Now()
	operation := "getPropertyByID"

	row := c.pool.QueryRow(ctx,
		"SELECT "+propertyColumns+" FROM properties WHERE id = $1", id)

	p, err := scanProperty(row)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, err
	}

	recordMetrics(operation, "success", metrics.MeasureDuration(start))
	return p, nil
}

// CreateProperty inserts a new property and backfills its slug from the
// generated ID. Runs in a transaction so a slug collision rolls back the
// insert.
func (c *Client) CreateProperty(ctx context.Context, req *models.UpsertPropertyRequest) (*models.Property, error) {
	start := time.Now()
	operation := "createProperty"

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	// Unique placeholder keeps concurrent inserts from colliding on the
	// slug constraint before the backfill runs.
	var id int
	err = tx.QueryRow(ctx, `
		INSERT INTO properties (
			slug, name, location, city, property_type, price_range,
			configurations, description, amenities, developer_id,
			category_id, is_featured, is_visible, sort_order
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`,
		uuid.NewString(),
		req.Name, req.Location, req.City, req.PropertyType, req.PriceRange,
		req.Configurations, req.Description, req.Amenities, req.DeveloperID,
		req.CategoryID, req.IsFeatured, req.IsVisible, req.SortOrder,
	).Scan(&id)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	propertySlug := slug.GeneratePropertySlug(req.Name, id)
	if _, err := tx.Exec(ctx,
		"UPDATE properties SET slug = $1 WHERE id = $2", propertySlug, id); err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to set property slug: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to commit property: %w", err)
	}

	duration := metrics.MeasureDuration(start)
	recordMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration,
		zap.Int("property_id", id), zap.String("slug", propertySlug))

	return c.GetPropertyByID(ctx, id)
}

// UpdateProperty replaces the editable fields of a property
func (c *Client) UpdateProperty(ctx context.Context, id int, req *models.UpsertPropertyRequest) (*models.Property, error) {
	start := time.Now()
	operation := "updateProperty"

	tag, err := c.pool.Exec(ctx, `
		UPDATE properties SET
			name = $1, location = $2, city = $3, property_type = $4,
			price_range = $5, configurations = $6, description = $7,
			amenities = $8, developer_id = $9, category_id = $10,
			is_featured = $11, is_visible = $12, sort_order = $13,
			updated_at = now()
		WHERE id = $14
	`,
		req.Name, req.Location, req.City, req.PropertyType, req.PriceRange,
		req.Configurations, req.Description, req.Amenities, req.DeveloperID,
		req.CategoryID, req.IsFeatured, req.IsVisible, req.SortOrder, id,
	)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		recordMetrics(operation, "error", duration)
		return nil, pgx.ErrNoRows
	}

	recordMetrics(operation, "success", duration)
	return c.GetPropertyByID(ctx, id)
}

// UpdatePropertyImages sets the primary image, thumbnail and gallery URLs
func (c *Client) UpdatePropertyImages(ctx context.Context, id int, imageURL, thumbnailURL string, galleryURLs []string) error {
	start := time.Now()
	operation := "updatePropertyImages"

	tag, err := c.pool.Exec(ctx, `
		UPDATE properties
		SET image_url = $1, thumbnail_url = $2, gallery_urls = $3, updated_at = now()
		WHERE id = $4
	`, nilIfEmpty(imageURL), nilIfEmpty(thumbnailURL), galleryURLs, id)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		return fmt.Errorf("failed to update property images: %w", err)
	}
	if tag.RowsAffected() == 0 {
		recordMetrics(operation, "error", duration)
		return pgx.ErrNoRows
	}

	recordMetrics(operation, "success", duration)
	return nil
}

// DeleteProperty removes a property row
func (c *Client) DeleteProperty(ctx context.Context, id int) error {
	start := time.Now()
	operation := "deleteProperty"

	tag, err := c.pool.Exec(ctx, "DELETE FROM properties WHERE id = $1", id)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		return fmt.Errorf("failed to delete property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		recordMetrics(operation, "error", duration)
		return pgx.ErrNoRows
	}

	recordMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration,
		zap.Int("property_id", id))
	return nil
}

func scanProperty(row pgx.Row) (*models.Property, error) {
	var p models.Property
	var priceRange, description, imageURL, thumbnailURL *string

	err := row.Scan(
		&p.ID, &p.Slug, &p.Name, &p.Location, &p.City, &p.PropertyType,
		&priceRange, &p.Configurations, &description, &p.Amenities,
		&p.DeveloperID, &p.CategoryID, &imageURL, &thumbnailURL,
		&p.GalleryURLs, &p.IsFeatured, &p.IsVisible, &p.SortOrder,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan property row: %w", err)
	}

	p.PriceRange = emptyIfNil(priceRange)
	p.Description = emptyIfNil(description)
	p.ImageURL = emptyIfNil(imageURL)
	p.ThumbnailURL = emptyIfNil(thumbnailURL)

	if p.Configurations == nil {
		p.Configurations = []string{}
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}
	if p.GalleryURLs == nil {
		p.GalleryURLs = []string{}
	}

	return &p, nil
}
