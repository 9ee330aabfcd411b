package models

import "time"

// Developer represents a property developer / seller profile
type Developer struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	LogoURL     string    `json:"logoUrl"`
	Website     string    `json:"website"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UpsertDeveloperRequest is the admin create/update payload
type UpsertDeveloperRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
	Website     string `json:"website" binding:"omitempty,url"`
}

// Category represents a browsing category (e.g. "Ready To Move", "Luxury")
type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpsertCategoryRequest is the admin create/update payload. The slug is
// derived from the name on write, never supplied by the client.
type UpsertCategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

// Testimonial represents a customer testimonial shown on the public site
type Testimonial struct {
	ID          int       `json:"id"`
	AuthorName  string    `json:"authorName"`
	AuthorTitle string    `json:"authorTitle"`
	Quote       string    `json:"quote"`
	Rating      int       `json:"rating"`
	IsVisible   bool      `json:"isVisible"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UpsertTestimonialRequest is the admin create/update payload
type UpsertTestimonialRequest struct {
	AuthorName  string `json:"author_name" binding:"required"`
	AuthorTitle string `json:"author_title"`
	Quote       string `json:"quote" binding:"required"`
	Rating      int    `json:"rating" binding:"min=0,max=5"`
	IsVisible   bool   `json:"is_visible"`
}
