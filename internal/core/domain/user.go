package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User is a record in the user directory. The password hash is opaque to
// every layer above the repository and never serialized outward.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Admin        bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
