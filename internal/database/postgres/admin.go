package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/pkg/metrics"
	"github.com/jackc/pgx/v5"
)

// GetAdminByEmail retrieves an active admin account for login
func (c *Client) GetAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	start := time.Now()
	operation := "getAdminByEmail"

	var a models.AdminUser
	err := c.pool.QueryRow(ctx, `
		SELECT uuid, email, name, role, password_hash, is_active, created_at
		FROM admins WHERE email = $1
	`, email).Scan(&a.UUID, &a.Email, &a.Name, &a.Role, &a.PasswordHash, &a.IsActive, &a.CreatedAt)

	duration := metrics.MeasureDuration(start)
	if err != nil {
		if err == pgx.ErrNoRows {
			recordMetrics(operation, "success", duration)
			return nil, pgx.ErrNoRows
		}
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("failed to query admin by email: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return &a, nil
}

// GetAdminByUUID retrieves an admin account by its stable identifier
func (c *Client) GetAdminByUUID(ctx context.Context, adminUUID string) (*models.AdminUser, error) {
	start := time.Now()
	operation := "getAdminByUUID"

	var a models.AdminUser
	err := c.pool.QueryRow(ctx, `
		SELECT uuid, email, name, role, password_hash, is_active, created_at
		FROM admins WHERE uuid = $1
	`, adminUUID).Scan(&a.UUID, &a.Email, &a.Name, &a.Role, &a.PasswordHash, &a.IsActive, &a.CreatedAt)

	duration := metrics.MeasureDuration(start)
	if err != nil {
		if err == pgx.ErrNoRows {
			recordMetrics(operation, "success", duration)
			return nil, pgx.ErrNoRows
		}
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("failed to query admin by uuid: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return &a, nil
}
