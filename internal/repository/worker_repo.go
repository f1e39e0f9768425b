package repository

import (
	"context"
	"errors"
	"fmt"

	"complaint_tracker/internal/model"

	"github.com/jackc/pgx/v5"
)

// WorkerRepository defines operations for worker data
type WorkerRepository interface {
	Create(ctx context.Context, worker *model.Worker) error
	FindByPhone(ctx context.Context, phone string) (*model.Worker, error)
	FindByID(ctx context.Context, id int) (*model.Worker, error)
	FindAll(ctx context.Context) ([]model.Worker, error)
	Delete(ctx context.Context, id int) error
}

type workerRepository struct {
	db DB
}

// NewWorkerRepository creates a new WorkerRepository
func NewWorkerRepository(db DB) WorkerRepository {
	return &workerRepository{db: db}
}

// Create inserts a new worker into the database
func (r *workerRepository) Create(ctx context.Context, worker *model.Worker) error {
	sql := `INSERT INTO workers (name, phone, password_hash, specialization, created_at)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, sql, worker.Name, worker.Phone, worker.PasswordHash, worker.Specialization, worker.CreatedAt).Scan(&worker.ID)
	if err != nil {
		return fmt.Errorf("failed to create worker: %w", err)
	}
	return nil
}

// FindByPhone retrieves a worker by their phone number
func (r *workerRepository) FindByPhone(ctx context.Context, phone string) (*model.Worker, error) {
	worker := &model.Worker{}
	sql := `SELECT id, name, phone, password_hash, specialization, created_at FROM workers WHERE phone = $1`
	err := r.db.QueryRow(ctx, sql, phone).Scan(&worker.ID, &worker.Name, &worker.Phone, &worker.PasswordHash, &worker.Specialization, &worker.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find worker by phone: %w", err)
	}
	return worker, nil
}

// FindByID retrieves a worker by their ID
func (r *workerRepository) FindByID(ctx context.Context, id int) (*model.Worker, error) {
	worker := &model.Worker{}
	sql := `SELECT id, name, phone, password_hash, specialization, created_at FROM workers WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&worker.ID, &worker.Name, &worker.Phone, &worker.PasswordHash, &worker.Specialization, &worker.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find worker by ID: %w", err)
	}
	return worker, nil
}

// FindAll retrieves all workers ordered by name
func (r *workerRepository) FindAll(ctx context.Context) ([]model.Worker, error) {
	sql := `SELECT id, name, phone, password_hash, specialization, created_at FROM workers ORDER BY name`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	var workers []model.Worker
	for rows.Next() {
		var w model.Worker
		if err := rows.Scan(&w.ID, &w.Name, &w.Phone, &w.PasswordHash, &w.Specialization, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan worker row: %w", err)
		}
		workers = append(workers, w)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating worker rows: %w", err)
	}
	return workers, nil
}

// Delete removes a worker from the database
func (r *workerRepository) Delete(ctx context.Context, id int) error {
	sql := `DELETE FROM workers WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("worker not found for deletion")
	}
	return nil
}
