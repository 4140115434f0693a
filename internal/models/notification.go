package models

import "time"

// Notification is a row of the notifications table.
type Notification struct {
	NotificationID       string    `db:"notification_id"`
	UserID               string    `db:"user_id"`
	Message              string    `db:"message"`
	Type                 string    `db:"type"`
	RelatedTransactionID *string   `db:"related_transaction_id"`
	IsRead               bool      `db:"is_read"`
	CreatedAt            time.Time `db:"created_at"`
}
