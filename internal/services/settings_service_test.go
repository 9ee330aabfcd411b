package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/internal/services"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestSettingsService_GetGroup(t *testing.T) {
	mockSettingsRepo := new(MockSettingsRepository)
	service := services.NewSettingsService(mockSettingsRepo)
	ctx := context.Background()

	stored := &models.Settings{
		Group:  models.SettingsGroupTheme,
		Values: json.RawMessage(`{"primary_color":"#1a237e"}`),
	}

	mockSettingsRepo.On("Get", ctx, models.SettingsGroupTheme).Return(stored, nil).Once()

	settings, err := service.GetGroup(ctx, models.SettingsGroupTheme)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"primary_color":"#1a237e"}`, string(settings.Values))

	mockSettingsRepo.AssertExpectations(t)
}

func TestSettingsService_GetGroup_NeverWritten(t *testing.T) {
	mockSettingsRepo := new(MockSettingsRepository)
	service := services.NewSettingsService(mockSettingsRepo)
	ctx := context.Background()

	mockSettingsRepo.On("Get", ctx, models.SettingsGroupSEO).Return(nil, pgx.ErrNoRows).Once()

	settings, err := service.GetGroup(ctx, models.SettingsGroupSEO)
	assert.NoError(t, err)
	assert.Equal(t, json.RawMessage("{}"), settings.Values)
}

func TestSettingsService_GetGroup_Unknown(t *testing.T) {
	service := services.NewSettingsService(new(MockSettingsRepository))

	_, err := service.GetGroup(context.Background(), models.SettingsGroup("billing"))
	assert.ErrorIs(t, err, services.ErrUnknownSettingsGroup)
}

func TestSettingsService_UpdateGroup(t *testing.T) {
	mockSettingsRepo := new(MockSettingsRepository)
	service := services.NewSettingsService(mockSettingsRepo)
	ctx := context.Background()

	values := json.RawMessage(`{"phone":"+91 20 1234 5678"}`)
	mockSettingsRepo.On("Upsert", ctx, models.SettingsGroupContact, values).Return(nil).Once()

	err := service.UpdateGroup(ctx, models.SettingsGroupContact, values)
	assert.NoError(t, err)

	mockSettingsRepo.AssertExpectations(t)
}

func TestSettingsService_UpdateGroup_InvalidJSON(t *testing.T) {
	mockSettingsRepo := new(MockSettingsRepository)
	service := services.NewSettingsService(mockSettingsRepo)

	err := service.UpdateGroup(context.Background(), models.SettingsGroupContact, json.RawMessage(`{broken`))
	assert.Error(t, err)

	mockSettingsRepo.AssertNotCalled(t, "Upsert")
}
