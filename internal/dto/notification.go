package dto

import (
	"time"

	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
)

// NotificationResponse is the API shape of a persisted notification.
type NotificationResponse struct {
	NotificationID       string    `json:"notificationID"`
	Message              string    `json:"message"`
	Type                 string    `json:"type"`
	RelatedTransactionID *string   `json:"relatedTransactionID,omitempty"`
	IsRead               bool      `json:"isRead"`
	CreatedAt            time.Time `json:"createdAt"`
}

// ToNotificationResponse converts a domain notification.
func ToNotificationResponse(n domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID:       n.NotificationID,
		Message:              n.Message,
		Type:                 n.Type,
		RelatedTransactionID: n.RelatedTransactionID,
		IsRead:               n.IsRead,
		CreatedAt:            n.CreatedAt,
	}
}

// ListNotificationsResponse wraps a page of notifications.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ToListNotificationsResponse converts a slice of notifications.
func ToListNotificationsResponse(ns []domain.Notification) ListNotificationsResponse {
	out := ListNotificationsResponse{Notifications: make([]NotificationResponse, len(ns))}
	for i, n := range ns {
		out.Notifications[i] = ToNotificationResponse(n)
	}
	return out
}
