package models

import (
	"encoding/json"
	"time"
)

// SettingsGroup identifies a named settings blob (one row per group)
type SettingsGroup string

const (
	SettingsGroupTheme   SettingsGroup = "theme"
	SettingsGroupSEO     SettingsGroup = "seo"
	SettingsGroupContact SettingsGroup = "contact"
)

// IsValid reports whether g is a known settings group
func (g SettingsGroup) IsValid() bool {
	return g == SettingsGroupTheme || g == SettingsGroupSEO || g == SettingsGroupContact
}

// PublicGroups are the settings groups exposed on the public API
var PublicGroups = []SettingsGroup{SettingsGroupTheme, SettingsGroupSEO, SettingsGroupContact}

// Settings represents one stored settings group
type Settings struct {
	Group     SettingsGroup   `json:"group"`
	Values    json.RawMessage `json:"values"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// UpdateSettingsRequest replaces a settings group atomically
type UpdateSettingsRequest struct {
	Values json.RawMessage `json:"values" binding:"required"`
}
