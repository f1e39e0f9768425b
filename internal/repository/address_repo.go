package repository

import (
	"context"
	"errors"
	"fmt"

	"complaint_tracker/internal/model"

	"github.com/jackc/pgx/v5"
)

// AddressRepository defines operations for address data
type AddressRepository interface {
	Create(ctx context.Context, address *model.Address) error
	FindByUserID(ctx context.Context, userID int) (*model.Address, error)
}

type addressRepository struct {
	db DB
}

// NewAddressRepository creates a new AddressRepository
func NewAddressRepository(db DB) AddressRepository {
	return &addressRepository{db: db}
}

// Create inserts a new address into the database
func (r *addressRepository) Create(ctx context.Context, a *model.Address) error {
	sql := `INSERT INTO addresses (user_id, house_no, tower, floor_no, locality, area, city, state, pincode, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	err := r.db.QueryRow(ctx, sql, a.UserID, a.HouseNo, a.Tower, a.FloorNo, a.Locality, a.Area, a.City, a.State, a.Pincode, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

// FindByUserID retrieves the address registered by a user, if any
func (r *addressRepository) FindByUserID(ctx context.Context, userID int) (*model.Address, error) {
	a := &model.Address{}
	sql := `SELECT id, user_id, house_no, tower, floor_no, locality, area, city, state, pincode, created_at
            FROM addresses WHERE user_id = $1`
	err := r.db.QueryRow(ctx, sql, userID).Scan(&a.ID, &a.UserID, &a.HouseNo, &a.Tower, &a.FloorNo, &a.Locality, &a.Area, &a.City, &a.State, &a.Pincode, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No address on file
		}
		return nil, fmt.Errorf("failed to find address by user ID: %w", err)
	}
	return a, nil
}
