package model

import "time"

const (
	RoleUser   = "user"
	RoleWorker = "worker"
	RoleAdmin  = "admin"
)

// User represents a registered resident account
type User struct {
	ID           int       `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Gender       *string   `json:"gender,omitempty"` // Pointer for optional field
	PasswordHash string    `json:"-"`                // Do not expose password hash in JSON responses
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterRequest is used for registering a new user account
type RegisterRequest struct {
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email" binding:"required,email"`
	Phone     string  `json:"phone" binding:"required,len=10,numeric"`
	Gender    *string `json:"gender"`
	Password  string  `json:"password" binding:"required,min=6"`
}

// PasswordReset holds the transient state of an in-flight password reset.
// With bearer auth there is no session to park it in, so it lives in its
// own table, at most one pending reset per user.
type PasswordReset struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}
