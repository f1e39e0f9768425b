package repository

import (
	"context"
	"errors"
	"fmt"

	"complaint_tracker/internal/model"

	"github.com/jackc/pgx/v5"
)

// PasswordResetRepository stores the transient state of password reset flows
type PasswordResetRepository interface {
	Upsert(ctx context.Context, reset *model.PasswordReset) error
	FindByUserID(ctx context.Context, userID int) (*model.PasswordReset, error)
	DeleteByUserID(ctx context.Context, userID int) error
}

type passwordResetRepository struct {
	db DB
}

// NewPasswordResetRepository creates a new PasswordResetRepository
func NewPasswordResetRepository(db DB) PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

// Upsert stores a pending reset, replacing any previous one for the user.
// Starting the flow again overwrites the old code.
func (r *passwordResetRepository) Upsert(ctx context.Context, reset *model.PasswordReset) error {
	sql := `INSERT INTO password_resets (user_id, phone, code, created_at)
            VALUES ($1, $2, $3, $4)
            ON CONFLICT (user_id) DO UPDATE SET phone = EXCLUDED.phone, code = EXCLUDED.code, created_at = EXCLUDED.created_at
            RETURNING id`
	err := r.db.QueryRow(ctx, sql, reset.UserID, reset.Phone, reset.Code, reset.CreatedAt).Scan(&reset.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert password reset: %w", err)
	}
	return nil
}

// FindByUserID retrieves the pending reset for a user, if any
func (r *passwordResetRepository) FindByUserID(ctx context.Context, userID int) (*model.PasswordReset, error) {
	reset := &model.PasswordReset{}
	sql := `SELECT id, user_id, phone, code, created_at FROM password_resets WHERE user_id = $1`
	err := r.db.QueryRow(ctx, sql, userID).Scan(&reset.ID, &reset.UserID, &reset.Phone, &reset.Code, &reset.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No reset in flight
		}
		return nil, fmt.Errorf("failed to find password reset: %w", err)
	}
	return reset, nil
}

// DeleteByUserID clears the pending reset for a user
func (r *passwordResetRepository) DeleteByUserID(ctx context.Context, userID int) error {
	sql := `DELETE FROM password_resets WHERE user_id = $1`
	if _, err := r.db.Exec(ctx, sql, userID); err != nil {
		return fmt.Errorf("failed to delete password reset: %w", err)
	}
	return nil
}
