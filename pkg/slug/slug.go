package slug

import (
	"fmt"
	"regexp"
	"strings"
)

var nonAlphaNumRegex = regexp.MustCompile(`[^a-z0-9 ]+`)
var multiSpaceRegex = regexp.MustCompile(` +`)

// Generate normalizes a name into a URL-friendly slug: lowercased, with
// anything outside [a-z0-9] collapsed into single hyphens.
// Example: "Ready To Move!" -> "ready-to-move"
func Generate(name string) string {
	s := strings.ToLower(name)
	s = nonAlphaNumRegex.ReplaceAllString(s, "")
	s = multiSpaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
	return strings.ReplaceAll(s, " ", "-")
}

// GeneratePropertySlug generates a URL-friendly slug from a property name
// and its numeric ID.
// Format: {normalized-name}-{id}
// Example: "Green Valley Heights Phase 2" + 42 -> "green-valley-heights-phase-2-42"
func GeneratePropertySlug(name string, id int) string {
	// Append numeric ID for uniqueness
	return fmt.Sprintf("%s-%d", Generate(name), id)
}
