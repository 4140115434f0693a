package services

import (
	"context"

	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
)

// NotificationSvcFacade manages persisted user notifications.
type NotificationSvcFacade interface {
	// ListNotifications retrieves a page of the user's notifications,
	// newest first.
	ListNotifications(ctx context.Context, userID string, limit, offset int) ([]domain.Notification, error)

	// MarkRead flags one notification as read.
	MarkRead(ctx context.Context, userID, notificationID string) error

	// MarkAllRead flags every notification of the user as read.
	MarkAllRead(ctx context.Context, userID string) error
}
