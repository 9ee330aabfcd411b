package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/pkg/metrics"
	"github.com/jackc/pgx/v5"
)

// GetSettings retrieves the value blob for one settings group
func (c *Client) GetSettings(ctx context.Context, group models.SettingsGroup) (*models.Settings, error) {
	start := time.Now()
	operation := "getSettings"

	var s models.Settings
	var values []byte
	err := c.pool.QueryRow(ctx, `
		SELECT group_name, data, updated_at FROM settings WHERE group_name = $1
	`, string(group)).Scan(&s.Group, &values, &s.UpdatedAt)

	duration := metrics.MeasureDuration(start)
	if err != nil {
		if err == pgx.ErrNoRows {
			recordMetrics(operation, "success", duration)
			return nil, pgx.ErrNoRows
		}
		recordMetrics(operation, "error", duration)
		return nil, fmt.Errorf("failed to query settings group %s: %w", group, err)
	}

	s.Values = json.RawMessage(values)
	recordMetrics(operation, "success", duration)
	return &s, nil
}

// UpsertSettings replaces the value blob for a settings group
func (c *Client) UpsertSettings(ctx context.Context, group models.SettingsGroup, values json.RawMessage) error {
	start := time.Now()
	operation := "upsertSettings"

	_, err := c.pool.Exec(ctx, `
		INSERT INTO settings (group_name, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (group_name)
		DO UPDATE SET data = EXCLUDED.data, updated_at = now()
	`, string(group), []byte(values))

	duration := metrics.MeasureDuration(start)
	if err != nil {
		recordMetrics(operation, "error", duration)
		return fmt.Errorf("failed to upsert settings group %s: %w", group, err)
	}

	recordMetrics(operation, "success", duration)
	return nil
}
