package models

import (
	"regexp"
	"time"
)

// InquiryType distinguishes plain contact enquiries from tour requests
type InquiryType string

const (
	InquiryTypeContact InquiryType = "contact"
	InquiryTypeTour    InquiryType = "tour"
)

// IsValid reports whether t is a known inquiry type
func (t InquiryType) IsValid() bool {
	return t == InquiryTypeContact || t == InquiryTypeTour
}

// InquiryStatus represents the triage status of an inquiry
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusScheduled InquiryStatus = "scheduled"
	InquiryStatusClosed    InquiryStatus = "closed"
	InquiryStatusSpam      InquiryStatus = "spam"
)

// IsValid reports whether s is a known inquiry status
func (s InquiryStatus) IsValid() bool {
	switch s {
	case InquiryStatusNew, InquiryStatusContacted, InquiryStatusScheduled, InquiryStatusClosed, InquiryStatusSpam:
		return true
	}
	return false
}

// CreateInquiryRequest represents a public enquiry or tour-request submission.
// RequestID is a client-generated UUID used to deduplicate resubmissions.
type CreateInquiryRequest struct {
	RequestID              string   `json:"request_id" binding:"required,uuid"`
	InquiryType            string   `json:"inquiry_type" binding:"required,oneof=contact tour"`
	Name                   string   `json:"name"`
	Email                  string   `json:"email"`
	Phone                  string   `json:"phone"`
	Message                string   `json:"message"`
	PropertyID             int      `json:"property_id" binding:"required"`
	PropertyConfigurations []string `json:"property_configurations"`
	TourDate               string   `json:"tour_date"`
	TourTime               string   `json:"tour_time"`
	SiteVisit              bool     `json:"site_visit"`
	VideoChat              bool     `json:"video_chat"`
}

// CreateInquiryResponse represents the response after submitting an inquiry
type CreateInquiryResponse struct {
	Success     bool     `json:"success"`
	Message     string   `json:"message,omitempty"`
	ReferenceID string   `json:"reference_id,omitempty"`
	Error       string   `json:"error,omitempty"`
	Details     []string `json:"details,omitempty"`
}

// Inquiry represents a stored inquiry record
type Inquiry struct {
	ID               int           `json:"id"`
	RequestID        string        `json:"requestId"`
	InquiryType      InquiryType   `json:"inquiryType"`
	Name             string        `json:"name"`
	Email            string        `json:"email"`
	Phone            string        `json:"phone"`
	Message          string        `json:"message"`
	PropertyID       int           `json:"propertyId"`
	PropertyName     string        `json:"propertyName"`
	PropertyLocation string        `json:"propertyLocation"`
	Configurations   []string      `json:"configurations"`
	TourDate         string        `json:"tourDate"`
	TourTime         string        `json:"tourTime"`
	TourTypes        []string      `json:"tourTypes"`
	Status           InquiryStatus `json:"status"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// InquiryListFilter filters the admin inquiry feed
type InquiryListFilter struct {
	Status      string
	InquiryType string
	PropertyID  int
}

// UpdateInquiryStatusRequest is the admin triage payload
type UpdateInquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Tour type labels as stored with a tour inquiry
const (
	TourTypeSiteVisit = "Site Visit"
	TourTypeVideoChat = "Video Chat"
)

var configIndexSuffix = regexp.MustCompile(`-\d+$`)

// NormalizeConfigurationLabels strips the positional index suffix the
// selection UI appends to configuration labels ("2BHK-0" -> "2BHK") and
// drops empties.
func NormalizeConfigurationLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		label = configIndexSuffix.ReplaceAllString(label, "")
		if label != "" {
			out = append(out, label)
		}
	}
	return out
}

// TourTypes returns the selected tour type labels in fixed order.
func (r *CreateInquiryRequest) TourTypes() []string {
	types := []string{}
	if r.SiteVisit {
		types = append(types, TourTypeSiteVisit)
	}
	if r.VideoChat {
		types = append(types, TourTypeVideoChat)
	}
	return types
}
