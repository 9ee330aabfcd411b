package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/pkg/metrics"
	"github.com/jackc/pgx/v5"
)

// CreateNotification inserts an admin notification row
func (c *Client) CreateNotification(ctx context.Context, n *models.Notification) (int, error) {
	start := time.Now()
	operation := "createNotification"

	var id int
	err := c.pool.QueryRow(ctx, `
		INSERT INTO notifications (kind, title, body, ref_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, string(n.Kind), n.Title, nilIfEmpty(n.Body), n.RefID).Scan(&id)

	duration := metrics.MeasureDuration(start)
	if err != nil {
		recordMetrics(operation, "error", duration)
		return 0, fmt.Errorf("failed to create notification: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return id, nil
}

// GetNotifications lists notifications, newest first
func (c *Client) GetNotifications(ctx context.Context, onlyUnread bool, limit int) ([]*models.Notification, error) {
	start := time.Now()
	operation := "getNotifications"

	query := `
		SELECT id, kind, title, body, ref_id, is_read, created_at
		FROM notifications
	`
	if onlyUnread {
		query += " WHERE is_read = false"
	}
	query += " ORDER BY created_at DESC LIMIT $1"

	rows, err := c.pool.Query(ctx, query, limit)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]*models.Notification, 0)
	for rows.Next() {
		var n models.Notification
		var body *string
		if err := rows.Scan(&n.ID, &n.Kind, &n.Title, &body, &n.RefID, &n.IsRead, &n.CreatedAt); err != nil {
			recordMetrics(operation, "error", metrics.MeasureDuration(start))
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		n.Body = emptyIfNil(body)
		notifications = append(notifications, &n)
	}
	if rows.Err() != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to read notification rows: %w", rows.Err())
	}

	recordMetrics(operation, "success", metrics.MeasureDuration(start))
	return notifications, nil
}

// MarkNotificationRead flags a single notification as read
func (c *Client) MarkNotificationRead(ctx context.Context, id int) error {
	start := time.Now()
	operation := "markNotificationRead"

	tag, err := c.pool.Exec(ctx,
		"UPDATE notifications SET is_read = true WHERE id = $1", id)

	duration := metrics.MeasureDuration(start)
	if err != nil {
		recordMetrics(operation, "error", duration)
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		recordMetrics(operation, "error", duration)
		return pgx.ErrNoRows
	}

	recordMetrics(operation, "success", duration)
	return nil
}

// MarkAllNotificationsRead flags every unread notification as read
func (c *Client) MarkAllNotificationsRead(ctx context.Context) (int, error) {
	start := time.Now()
	operation := "markAllNotificationsRead"

	tag, err := c.pool.Exec(ctx,
		"UPDATE notifications SET is_read = true WHERE is_read = false")

	duration := metrics.MeasureDuration(start)
	if err != nil {
		recordMetrics(operation, "error", duration)
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return int(tag.RowsAffected()), nil
}
