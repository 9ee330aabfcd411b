package repository

import (
	"context"
	"encoding/json"

	"github.com/estateline/estateline-api/internal/models"
)

// SettingsRepositoryInterface defines the interface for settings data access operations.
type SettingsRepositoryInterface interface {
	Get(ctx context.Context, group models.SettingsGroup) (*models.Settings, error)
	Upsert(ctx context.Context, group models.SettingsGroup, values json.RawMessage) error
}

// SettingsRepository handles settings data access
type SettingsRepository struct {
	store SettingsStore
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(store SettingsStore) SettingsRepositoryInterface {
	return &SettingsRepository{store: store}
}

func (r *SettingsRepository) Get(ctx context.Context, group models.SettingsGroup) (*models.Settings, error) {
	return r.store.GetSettings(ctx, group)
}

func (r *SettingsRepository) Upsert(ctx context.Context, group models.SettingsGroup, values json.RawMessage) error {
	return r.store.UpsertSettings(ctx, group, values)
}
