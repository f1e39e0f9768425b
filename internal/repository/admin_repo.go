package repository

import (
	"context"
	"errors"
	"fmt"

	"complaint_tracker/internal/model"

	"github.com/jackc/pgx/v5"
)

// AdminRepository defines operations for admin account data
type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)
}

type adminRepository struct {
	db DB
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db DB) AdminRepository {
	return &adminRepository{db: db}
}

// Create inserts a new admin account into the database
func (r *adminRepository) Create(ctx context.Context, admin *model.Admin) error {
	sql := `INSERT INTO admins (username, password_hash, created_at)
            VALUES ($1, $2, $3) RETURNING id`
	err := r.db.QueryRow(ctx, sql, admin.Username, admin.PasswordHash, admin.CreatedAt).Scan(&admin.ID)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// FindByUsername retrieves an admin account by username
func (r *adminRepository) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	admin := &model.Admin{}
	sql := `SELECT id, username, password_hash, created_at FROM admins WHERE username = $1`
	err := r.db.QueryRow(ctx, sql, username).Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find admin by username: %w", err)
	}
	return admin, nil
}
