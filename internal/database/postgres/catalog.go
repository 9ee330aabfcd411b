package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/pkg/metrics"
	"github.com/estateline/estateline-api/pkg/slug"
	"github.com/jackc/pgx/v5"
)

// Developers

func (c *Client) GetDevelopers(ctx context.Context) ([]*models.Developer, error) {
	start := time.Now()
	operation := "getDevelopers"

	rows, err := c.pool.Query(ctx, `
		SELECT id, name, description, logo_url, website, created_at
		FROM developers ORDER BY name
	`)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to query developers: %w", err)
	}
	defer rows.Close()

	developers := make([]*models.Developer, 0)
	for rows.Next() {
		var d models.Developer
		var description, logoURL, website *string
		if err := rows.Scan(&d.ID, &d.Name, &description, &logoURL, &website, &d.CreatedAt); err != nil {
			recordMetrics(operation, "error", metrics.MeasureDuration(start))
			return nil, fmt.Errorf("failed to scan developer row: %w", err)
		}
		d.Description = emptyIfNil(description)
		d.LogoURL = emptyIfNil(logoURL)
		d.Website = emptyIfNil(website)
		developers = append(developers, &d)
	}
	if rows.Err() != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to read developer rows: %w", rows.Err())
	}

	recordMetrics(operation, "success", metrics.MeasureDuration(start))
	return developers, nil
}

func (c *Client) CreateDeveloper(ctx context.Context, req *models.UpsertDeveloperRequest) (int, error) {
	start := time.Now()
	operation := "createDeveloper"

	var id int
	err := c.pool.QueryRow(ctx, `
		INSERT INTO developers (name, description, logo_url, website)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, req.Name, nilIfEmpty(req.Description), nilIfEmpty(req.LogoURL), nilIfEmpty(req.Website)).Scan(&id)

	duration := metrics.MeasureDuration(start)
	if err != nil {
		recordMetrics(operation, "error", duration)
		return 0, fmt.Errorf("failed to create developer: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return id, nil
}

func (c *Client) UpdateDeveloper(ctx context.Context, id int, req *models.UpsertDeveloperRequest) error {
	start := time.Now()
	operation := "updateDeveloper"

	tag, err := c.pool.Exec(ctx, `
		UPDATE developers
		SET name = $1, description = $2, logo_url = $3, website = $4
		WHERE id = $5
	`, req.Name, nilIfEmpty(req.Description), nilIfEmpty(req.LogoURL), nilIfEmpty(req.Website), id)

	duration := metrics.MeasureDuration(start)
	if err != nil {
		recordMetrics(operation, "error", duration)
		return fmt.Errorf("failed to update developer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		recordMetrics(operation, "error", duration)
		return pgx.ErrNoRows
	}

	recordMetrics(operation, "success", duration)
	return nil
}

func (c *Client) DeleteDeveloper(ctx context.Context, id int) error {
	start := time.Now()
	operation := "deleteDeveloper"

	tag, err := c.pool.Exec(ctx, "DELETE FROM developers WHERE id = $1", id)

	duration := metrics.MeasureDuration(start)
	if err != nil {
		recordMetrics(operation, "error", duration)
		return fmt.Errorf("failed to delete developer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		recordMetrics(operation, "error", duration)
		return pgx.ErrNoRows
	}

	recordMetrics(operation, "success", duration)
	return nil
}

// Categories

func (c *Client) GetCategories(ctx context.Context) ([]*models.Category, error) {
	start := time.Now()
	operation := "getCategories"

	rows, err := c.pool.Query(ctx, `
		SELECT id, name, slug, sort_order, created_at
		FROM categories ORDER BY sort_order, name
	`)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]*models.Category, 0)
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.SortOrder, &cat.CreatedAt); err != nil {
			recordMetrics(operation, "error", metrics.MeasureDuration(start))
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, &cat)
	}
	if rows.Err() != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to read category rows: %w", rows.Err())
	}

	recordMetrics(operation, "success", metrics.MeasureDuration(start))
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, req *models.UpsertCategoryRequest) (int, error) {
	start := time.Now()
	operation := "createCategory"

	var id int
	err := c.pool.QueryRow(ctx, `
		INSERT INTO categories (name, slug, sort_order)
		VALUES ($1, $2, $3)
		RETURNING id
	`, req.Name, slug.Generate(req.Name), req.SortOrder).Scan(&id)

	duration := metrics.MeasureDuration(start)
	if err != nil {
		recordMetrics(operation, "error", duration)
		return 0, fmt.Errorf("failed to create category: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return id, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int, req *models.UpsertCategoryRequest) error {
	start := time.Now()
	operation := "updateCategory"

	tag, err := c.pool.Exec(ctx, `
		UPDATE categories SET name = $1, slug = $2, sort_order = $3 WHERE id = $4
	`, req.Name, slug.Generate(req.Name), req.SortOrder, id)

	duration := metrics.MeasureDuration(start)
	if err != nil {
		recordMetrics(operation, "error", duration)
		return fmt.Errorf("failed to update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		recordMetrics(operation, "error", duration)
		return pgx.ErrNoRows
	}

	recordMetrics(operation, "success", duration)
	return nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	start := time.Now()
	operation := "deleteCategory"

	tag, err := c.pool.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)

	duration := metrics.MeasureDuration(start)
	if err != nil {
		recordMetrics(operation, "error", duration)
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		recordMetrics(operation, "error", duration)
		return pgx.ErrNoRows
	}

	recordMetrics(operation, "success", duration)
	return nil
}

// Testimonials

func (c *Client) GetTestimonials(ctx context.Context, onlyVisible bool) ([]*models.Testimonial, error) {
	start := time.Now()
	operation := "getTestimonials"

	query := `
		SELECT id, author_name, author_title, quote, rating, is_visible, created_at
		FROM testimonials
	`
	if onlyVisible {
		query += " WHERE is_visible = true"
	}
	query += " ORDER BY created_at DESC"

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to query testimonials: %w", err)
	}
	defer rows.Close()

	testimonials := make([]*models.Testimonial, 0)
	for rows.Next() {
		var t models.Testimonial
		var authorTitle *string
		if err := rows.Scan(&t.ID, &t.AuthorName, &authorTitle, &t.Quote, &t.Rating, &t.IsVisible, &t.CreatedAt); err != nil {
			recordMetrics(operation, "error", metrics.MeasureDuration(start))
			return nil, fmt.Errorf("failed to scan testimonial row: %w", err)
		}
		t.AuthorTitle = emptyIfNil(authorTitle)
		testimonials = append(testimonials, &t)
	}
	if rows.Err() != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to read testimonial rows: %w", rows.Err())
	}

	recordMetrics(operation, "success", metrics.MeasureDuration(start))
	return testimonials, nil
}

func (c *Client) CreateTestimonial(ctx context.Context, req *models.UpsertTestimonialRequest) (int, error) {
	start := time.Now()
	operation := "createTestimonial"

	var id int
	err := c.pool.QueryRow(ctx, `
		INSERT INTO testimonials (author_name, author_title, quote, rating, is_visible)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, req.AuthorName, nilIfEmpty(req.AuthorTitle), req.Quote, req.Rating, req.IsVisible).Scan(&id)

	duration := metrics.MeasureDuration(start)
	if err != nil {
		recordMetrics(operation, "error", duration)
		return 0, fmt.Errorf("failed to create testimonial: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return id, nil
}

func (c *Client) UpdateTestimonial(ctx context.Context, id int, req *models.UpsertTestimonialRequest) error {
	start := time.Now()
	operation := "updateTestimonial"

	tag, err := c.pool.Exec(ctx, `
		UPDATE testimonials
		SET author_name = $1, author_title = $2, quote = $3, rating = $4, is_visible = $5
		WHERE id = $6
	`, req.AuthorName, nilIfEmpty(req.AuthorTitle), req.Quote, req.Rating, req.IsVisible, id)

	duration := metrics.MeasureDuration(start)
	if err != nil {
		recordMetrics(operation, "error", duration)
		return fmt.Errorf("failed to update testimonial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		recordMetrics(operation, "error", duration)
		return pgx.ErrNoRows
	}

	recordMetrics(operation, "success", duration)
	return nil
}

func (c *Client) DeleteTestimonial(ctx context.Context, id int) error {
	start := time.Now()
	operation := "deleteTestimonial"

	tag, err := c.pool.Exec(ctx, "DELETE FROM testimonials WHERE id = $1", id)

	duration := metrics.MeasureDuration(start)
	if err != nil {
		recordMetrics(operation, "error", duration)
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		recordMetrics(operation, "error", duration)
		return pgx.ErrNoRows
	}

	recordMetrics(operation, "success", duration)
	return nil
}
