package slug_test

import (
	"testing"

	"github.com/estateline/estateline-api/pkg/slug"
	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Ready To Move", "ready-to-move"},
		{"Luxury", "luxury"},
		{"New Launches!", "new-launches"},
		{"  Plots &  Land  ", "plots-land"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, slug.Generate(tt.name))
	}
}

func TestGeneratePropertySlug(t *testing.T) {
	tests := []struct {
		name string
		id   int
		want string
	}{
		{"Green Valley Heights", 42, "green-valley-heights-42"},
		{"Skyline Towers Phase 2", 7, "skyline-towers-phase-2-7"},
		{"Oak & Pine Residences!", 13, "oak-pine-residences-13"},
		{"   Lakeview   ", 1, "lakeview-1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, slug.GeneratePropertySlug(tt.name, tt.id))
	}
}
