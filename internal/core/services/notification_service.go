package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
	portsrepo "github.com/lunnorapp/lunnor_caixa/internal/core/ports/repositories"
	portssvc "github.com/lunnorapp/lunnor_caixa/internal/core/ports/services"
)

const defaultNotificationPageSize = 50

type notificationService struct {
	BaseService
	notifRepo portsrepo.NotificationRepositoryFacade
}

// NewNotificationService creates the notification service.
func NewNotificationService(notifRepo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{notifRepo: notifRepo}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// ListNotifications retrieves a page of the user's notifications, newest
// first.
func (s *notificationService) ListNotifications(ctx context.Context, userID string, limit, offset int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}
	if offset < 0 {
		offset = 0
	}
	notifs, err := s.notifRepo.ListNotificationsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifs, nil
}

// MarkRead flags one notification as read.
func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	if err := s.notifRepo.MarkNotificationRead(ctx, userID, notificationID); err != nil {
		s.LogError(ctx, err, "Failed to mark notification read",
			slog.String("notification_id", notificationID))
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead flags every notification of the user as read.
func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.notifRepo.MarkAllNotificationsRead(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to mark all notifications read",
			slog.String("user_id", userID))
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
