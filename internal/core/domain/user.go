package domain

import "time"

// User represents a dashboard user. Role and the optional assigned store are
// fixed at provisioning time; there is no in-session role elevation.
type User struct {
	UserID       string  `json:"userID" db:"user_id"` // Primary key (UUID)
	Username     string  `json:"username" db:"username"`
	Email        string  `json:"email" db:"email"`
	PasswordHash string  `json:"-" db:"password_hash"`
	Role         Role    `json:"role" db:"role"`
	StoreName    *string `json:"storeName,omitempty" db:"store_name"` // Assigned store for store-admins, nil for admins
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
}
