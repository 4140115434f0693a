package domain

import "time"

// Notification is a persisted message shown to the user, typically created
// when a Peace Fund movement is recorded. Only the read flag is ever
// mutated.
type Notification struct {
	NotificationID       string    `json:"notificationID"` // Primary key (UUID)
	UserID               string    `json:"userID"`         // Owner (Not Null)
	Message              string    `json:"message"`
	Type                 string    `json:"type"`
	RelatedTransactionID *string   `json:"relatedTransactionID,omitempty"`
	IsRead               bool      `json:"isRead"`
	CreatedAt            time.Time `json:"createdAt"`
}
