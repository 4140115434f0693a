package repositories

import (
	"context"

	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
)

// NotificationReader defines read operations for notification data
type NotificationReader interface {
	// ListNotificationsByUser retrieves a user's notifications, newest first.
	ListNotificationsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Notification, error)
}

// NotificationWriter defines write operations for notification data
type NotificationWriter interface {
	// SaveNotification persists a new notification.
	SaveNotification(ctx context.Context, notification domain.Notification) error

	// MarkNotificationRead sets the read flag on one notification.
	MarkNotificationRead(ctx context.Context, userID, notificationID string) error

	// MarkAllNotificationsRead sets the read flag on all of a user's notifications.
	MarkAllNotificationsRead(ctx context.Context, userID string) error
}

// NotificationRepositoryFacade combines all notification repository interfaces.
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
