package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/pkg/logger"
	"github.com/estateline/estateline-api/pkg/metrics"
	"github.com/estateline/estateline-api/pkg/pgarray"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// CreateInquiry inserts a new inquiry record. Duplicate request IDs are
// absorbed: when a client resubmits the same request_id the existing row
// is returned and created is false.
func (c *Client) CreateInquiry(ctx context.Context, inq *models.Inquiry) (id int, created bool, err error) {
	start := time.Now()
	operation := "createInquiry"

	query := `
		INSERT INTO inquiries (
			request_id, inquiry_type, name, email, phone, message,
			property_id, property_name, property_location,
			configurations, tour_date, tour_time, tour_types, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (request_id) DO NOTHING
		RETURNING id
	`

	err = c.pool.QueryRow(ctx, query,
		inq.RequestID,
		inq.InquiryType,
		inq.Name,
		inq.Email,
		nilIfEmpty(inq.Phone),
		nilIfEmpty(inq.Message),
		inq.PropertyID,
		inq.PropertyName,
		inq.PropertyLocation,
		pgarray.Encode(inq.Configurations),
		nilIfEmpty(inq.TourDate),
		nilIfEmpty(inq.TourTime),
		pgarray.Encode(inq.TourTypes),
		models.InquiryStatusNew,
	).Scan(&id)

	duration := metrics.MeasureDuration(start)

	if err == pgx.ErrNoRows {
		// Conflict path: the request_id already exists
		selErr := c.pool.QueryRow(ctx,
			"SELECT id FROM inquiries WHERE request_id = $1", inq.RequestID).Scan(&id)
		if selErr != nil {
			recordMetrics(operation, "error", duration)
			return 0, false, fmt.Errorf("failed to resolve duplicate inquiry: %w", selErr)
		}
		recordMetrics(operation, "duplicate", duration)
		logger.LogAPICall("postgres", operation, "duplicate", duration,
			zap.String("request_id", inq.RequestID))
		return id, false, nil
	}

	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return 0, false, fmt.Errorf("failed to create inquiry: %w", err)
	}

	recordMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration)

	return id, true, nil
}

// GetInquiries retrieves inquiries for the admin feed, newest first.
func (c *Client) GetInquiries(ctx context.Context, filter models.InquiryListFilter) ([]*models.Inquiry, error) {
	start := time.Now()
	operation := "getInquiries"

	conditions := []string{}
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.InquiryType != "" {
		args = append(args, filter.InquiryType)
		conditions = append(conditions, fmt.Sprintf("inquiry_type = $%d", len(args)))
	}
	if filter.PropertyID != 0 {
		args = append(args, filter.PropertyID)
		conditions = append(conditions, fmt.Sprintf("property_id = $%d", len(args)))
	}

	query := `
		SELECT id, request_id, inquiry_type, name, email, phone, message,
		       property_id, property_name, property_location,
		       configurations, tour_date, tour_time, tour_types, status,
		       created_at, updated_at
		FROM inquiries
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to query inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := make([]*models.Inquiry, 0)
	for rows.Next() {
		inq, scanErr := scanInquiry(rows)
		if scanErr != nil {
			recordMetrics(operation, "error", metrics.MeasureDuration(start))
			return nil, scanErr
		}
		inquiries = append(inquiries, inq)
	}
	if rows.Err() != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to read inquiry rows: %w", rows.Err())
	}

	recordMetrics(operation, "success", metrics.MeasureDuration(start))
	return inquiries, nil
}

// GetInquiryByID retrieves a single inquiry
func (c *Client) GetInquiryByID(ctx context.Context, id int) (*models.Inquiry, error) {
	start := time.Now()
	operation := "getInquiryByID"

	row := c.pool.QueryRow(ctx, `
		SELECT id, request_id, inquiry_type, name, email, phone, message,
		       property_id, property_name, property_location,
		       configurations, tour_date, tour_time, tour_types, status,
		       created_at, updated_at
		FROM inquiries
		WHERE id = $1
	`, id)

	inq, err := scanInquiry(row)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, err
	}

	recordMetrics(operation, "success", metrics.MeasureDuration(start))
	return inq, nil
}

// UpdateInquiryStatus updates the triage status of an inquiry
func (c *Client) UpdateInquiryStatus(ctx context.Context, id int, status models.InquiryStatus) error {
	start := time.Now()
	operation := "updateInquiryStatus"

	tag, err := c.pool.Exec(ctx,
		"UPDATE inquiries SET status = $1, updated_at = now() WHERE id = $2",
		status, id)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return fmt.Errorf("failed to update inquiry status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		recordMetrics(operation, "error", duration)
		return pgx.ErrNoRows
	}

	recordMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration)
	return nil
}

func scanInquiry(row pgx.Row) (*models.Inquiry, error) {
	var inq models.Inquiry
	var phone, message, tourDate, tourTime *string
	var configurations, tourTypes string

	err := row.Scan(
		&inq.ID, &inq.RequestID, &inq.InquiryType, &inq.Name, &inq.Email,
		&phone, &message, &inq.PropertyID, &inq.PropertyName,
		&inq.PropertyLocation, &configurations, &tourDate, &tourTime,
		&tourTypes, &inq.Status, &inq.CreatedAt, &inq.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan inquiry row: %w", err)
	}

	inq.Phone = emptyIfNil(phone)
	inq.Message = emptyIfNil(message)
	inq.TourDate = emptyIfNil(tourDate)
	inq.TourTime = emptyIfNil(tourTime)

	if inq.Configurations, err = pgarray.Decode(configurations); err != nil {
		return nil, fmt.Errorf("bad configurations literal on inquiry %d: %w", inq.ID, err)
	}
	if inq.TourTypes, err = pgarray.Decode(tourTypes); err != nil {
		return nil, fmt.Errorf("bad tour_types literal on inquiry %d: %w", inq.ID, err)
	}

	return &inq, nil
}
