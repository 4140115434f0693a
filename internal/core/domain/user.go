package domain

// User is an account holder. Every other entity is scoped to a user.
type User struct {
	UserID       string `json:"userID"` // Primary key (UUID)
	Name         string `json:"name"`
	Email        string `json:"email"` // Unique
	PasswordHash string `json:"-"`     // Never serialized
	Phone        string `json:"phone,omitempty"`
	AuditFields
}
