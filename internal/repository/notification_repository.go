package repository

import (
	"context"

	"github.com/estateline/estateline-api/internal/models"
)

// NotificationRepositoryInterface defines the interface for notification data access operations.
type NotificationRepositoryInterface interface {
	Create(ctx context.Context, n *models.Notification) (int, error)
	List(ctx context.Context, onlyUnread bool, limit int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id int) error
	MarkAllRead(ctx context.Context) (int, error)
}

// NotificationRepository handles notification data access
type NotificationRepository struct {
	store NotificationStore
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(store NotificationStore) NotificationRepositoryInterface {
	return &NotificationRepository{store: store}
}

func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) (int, error) {
	return r.store.CreateNotification(ctx, n)
}

func (r *NotificationRepository) List(ctx context.Context, onlyUnread bool, limit int) ([]*models.Notification, error) {
	return r.store.GetNotifications(ctx, onlyUnread, limit)
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id int) error {
	return r.store.MarkNotificationRead(ctx, id)
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context) (int, error) {
	return r.store.MarkAllNotificationsRead(ctx)
}
