package model

import "time"

// Worker represents a field worker who resolves assigned complaints
type Worker struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	PasswordHash   string    `json:"-"`
	Specialization string    `json:"specialization"`
	CreatedAt      time.Time `json:"created_at"`
}

// Admin represents an administrator account
type Admin struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateWorkerRequest is used by admins to add a new worker
type CreateWorkerRequest struct {
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone" binding:"required,len=10,numeric"`
	Password       string `json:"password" binding:"required,min=6"`
	Specialization string `json:"specialization" binding:"required"`
}
