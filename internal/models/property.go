package models

import (
	"strings"
	"time"
)

// Property represents a real-estate listing in the system
type Property struct {
	ID             int       `json:"id"`
	Slug           string    `json:"slug"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	City           string    `json:"city"`
	PropertyType   string    `json:"propertyType"` // apartment, villa, plot, commercial
	PriceRange     string    `json:"priceRange"`
	Configurations []string  `json:"configurations"` // e.g. ["1BHK","2BHK"]
	Description    string    `json:"description"`
	Amenities      []string  `json:"amenities"`
	DeveloperID    *int      `json:"developerId"`
	CategoryID     *int      `json:"categoryId"`
	ImageURL       string    `json:"imageUrl"`
	ThumbnailURL   string    `json:"thumbnailUrl"`
	GalleryURLs    []string  `json:"galleryUrls"`
	IsFeatured     bool      `json:"isFeatured"`
	IsVisible      bool      `json:"isVisible"`
	SortOrder      int       `json:"sortOrder"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// PublicPropertyResponse represents the public API response format
type PublicPropertyResponse struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	City           string   `json:"city"`
	PropertyType   string   `json:"propertyType"`
	PriceRange     string   `json:"priceRange"`
	Configurations []string `json:"configurations"`
	Description    string   `json:"description"`
	Amenities      string   `json:"amenities"`
	ImageURL       string   `json:"imageUrl"`
	ThumbnailURL   string   `json:"thumbnailUrl"`
	GalleryURLs    []string `json:"galleryUrls"`
	IsFeatured     bool     `json:"isFeatured"`
	Link           string   `json:"link"`
}

// ToPublicResponse converts a Property to PublicPropertyResponse
func (p *Property) ToPublicResponse(baseURL string) PublicPropertyResponse {
	return PublicPropertyResponse{
		ID:             p.ID,
		Name:           p.Name,
		Location:       p.Location,
		City:           p.City,
		PropertyType:   p.PropertyType,
		PriceRange:     p.PriceRange,
		Configurations: p.Configurations,
		Description:    p.Description,
		Amenities:      strings.Join(p.Amenities, ","),
		ImageURL:       p.ImageURL,
		ThumbnailURL:   p.ThumbnailURL,
		GalleryURLs:    p.GalleryURLs,
		IsFeatured:     p.IsFeatured,
		Link:           baseURL + "/property/" + p.Slug,
	}
}

// PropertyFilter represents options for filtering the public listing feed
type PropertyFilter struct {
	City         string
	PropertyType string
	CategoryID   int
	OnlyFeatured bool
}

// FilterOptions represents repository-level read options. The zero value
// reads everything, hidden rows included.
type FilterOptions struct {
	OnlyVisible  bool
	ForceRefresh bool
}

// UpsertPropertyRequest is the admin create/update payload
type UpsertPropertyRequest struct {
	Name           string   `json:"name" binding:"required"`
	Location       string   `json:"location" binding:"required"`
	City           string   `json:"city" binding:"required"`
	PropertyType   string   `json:"property_type" binding:"required,oneof=apartment villa plot commercial"`
	PriceRange     string   `json:"price_range"`
	Configurations []string `json:"configurations"`
	Description    string   `json:"description"`
	Amenities      []string `json:"amenities"`
	DeveloperID    *int     `json:"developer_id"`
	CategoryID     *int     `json:"category_id"`
	IsFeatured     bool     `json:"is_featured"`
	IsVisible      bool     `json:"is_visible"`
	SortOrder      int      `json:"sort_order"`
}
