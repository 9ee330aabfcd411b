package services

import (
	"context"
	"encoding/json"

	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/internal/repository"
	pkgerrors "github.com/estateline/estateline-api/pkg/errors"
	"github.com/jackc/pgx/v5"
)

// SettingsService handles site settings groups (theme, seo, contact)
type SettingsService struct {
	settingsRepo repository.SettingsRepositoryInterface
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(settingsRepo repository.SettingsRepositoryInterface) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetGroup returns the value blob for one settings group. A group that was
// never written reads as an empty object.
func (s *SettingsService) GetGroup(ctx context.Context, group models.SettingsGroup) (*models.Settings, error) {
	if !group.IsValid() {
		return nil, ErrUnknownSettingsGroup
	}

	settings, err := s.settingsRepo.Get(ctx, group)
	if err != nil {
		if err == pgx.ErrNoRows {
			return &models.Settings{
				Group:  group,
				Values: json.RawMessage("{}"),
			}, nil
		}
		return nil, err
	}

	return settings, nil
}

// GetPublicGroups returns the groups exposed to the public site
func (s *SettingsService) GetPublicGroups(ctx context.Context) (map[string]json.RawMessage, error) {
	result := make(map[string]json.RawMessage, len(models.PublicGroups))
	for _, group := range models.PublicGroups {
		settings, err := s.GetGroup(ctx, group)
		if err != nil {
			return nil, err
		}
		result[string(group)] = settings.Values
	}
	return result, nil
}

// UpdateGroup replaces the value blob for a settings group
func (s *SettingsService) UpdateGroup(ctx context.Context, group models.SettingsGroup, values json.RawMessage) error {
	if !group.IsValid() {
		return ErrUnknownSettingsGroup
	}
	if !json.Valid(values) {
		return pkgerrors.InvalidInputError("values", "must be a JSON object")
	}

	return s.settingsRepo.Upsert(ctx, group, values)
}
