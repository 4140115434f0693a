// Package models holds the database row shapes scanned by the pgsql
// repositories. They mirror table columns; the repositories map them to
// and from the domain types.
package models

import "time"

// AuditFields are the bookkeeping columns shared by most tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}
