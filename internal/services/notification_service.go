package services

import (
	"context"

	"github.com/estateline/estateline-api/internal/models"
	"github.com/estateline/estateline-api/internal/repository"
)

const defaultNotificationLimit = 50

// NotificationService handles the admin notification feed
type NotificationService struct {
	notificationRepo repository.NotificationRepositoryInterface
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(notificationRepo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// List returns notifications, newest first
func (s *NotificationService) List(ctx context.Context, onlyUnread bool, limit int) ([]*models.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultNotificationLimit
	}
	return s.notificationRepo.List(ctx, onlyUnread, limit)
}

// MarkRead flags a single notification as read
func (s *NotificationService) MarkRead(ctx context.Context, id int) error {
	return s.notificationRepo.MarkRead(ctx, id)
}

// MarkAllRead flags every unread notification as read, returning the count
func (s *NotificationService) MarkAllRead(ctx context.Context) (int, error) {
	return s.notificationRepo.MarkAllRead(ctx)
}
