package models

import "time"

// NotificationKind classifies admin feed events
type NotificationKind string

const (
	NotificationInquiryCreated    NotificationKind = "inquiry_created"
	NotificationPropertyPublished NotificationKind = "property_published"
)

// Notification represents an admin back-office feed entry
type Notification struct {
	ID        int              `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	RefID     int              `json:"refId"` // id of the originating inquiry or property
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}
