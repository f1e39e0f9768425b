package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"complaint_tracker/internal/model"
	"complaint_tracker/internal/repository"
	"complaint_tracker/internal/utils"
)

var (
	ErrWorkerAlreadyExists = errors.New("worker with this phone number already exists")
	ErrWorkerNotFound      = errors.New("worker not found")
	ErrAlreadyAssigned     = errors.New("complaint is either invalid or already assigned")
	ErrInvalidStatus       = errors.New("invalid status selected")
	ErrCannotDowngrade     = errors.New("cannot downgrade from Resolved")
)

// AdminService provides the administrator operations: complaint oversight,
// assignment, status overrides, and worker management
type AdminService interface {
	ListComplaints(ctx context.Context, filters model.ComplaintFilters) ([]model.Complaint, error)
	AssignComplaint(ctx context.Context, complaintID int64, workerID int) (*model.Worker, error)
	UpdateStatus(ctx context.Context, complaintID int64, status model.ComplaintStatus) error
	AddWorker(ctx context.Context, req model.CreateWorkerRequest) (*model.Worker, error)
	ListWorkers(ctx context.Context) ([]model.Worker, error)
	DeleteWorker(ctx context.Context, workerID int) error
}

type adminService struct {
	complaintRepo repository.ComplaintRepository
	workerRepo    repository.WorkerRepository
}

// NewAdminService creates a new AdminService
func NewAdminService(complaintRepo repository.ComplaintRepository, workerRepo repository.WorkerRepository) AdminService {
	return &adminService{complaintRepo: complaintRepo, workerRepo: workerRepo}
}

// ListComplaints returns all complaints matching the AND-combined filters
func (s *adminService) ListComplaints(ctx context.Context, filters model.ComplaintFilters) ([]model.Complaint, error) {
	complaints, err := s.complaintRepo.FindAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints for admin: %w", err)
	}
	return complaints, nil
}

// AssignComplaint hands an unassigned complaint to a worker. The worker's
// name and phone are denormalized onto the complaint and the status moves
// to In Progress. Fails when the worker id is unknown or the complaint is
// no longer unassigned.
func (s *adminService) AssignComplaint(ctx context.Context, complaintID int64, workerID int) (*model.Worker, error) {
	worker, err := s.workerRepo.FindByID(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up worker: %w", err)
	}
	if worker == nil {
		return nil, ErrWorkerNotFound
	}

	assigned, err := s.complaintRepo.Assign(ctx, complaintID, worker.ID, worker.Name, worker.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to assign complaint in repo: %w", err)
	}
	if !assigned {
		return nil, ErrAlreadyAssigned
	}
	return worker, nil
}

// UpdateStatus force-sets a complaint's status. A complaint that has
// reached Resolved is immutable.
func (s *adminService) UpdateStatus(ctx context.Context, complaintID int64, status model.ComplaintStatus) error {
	if !model.IsValidStatus(status) {
		return ErrInvalidStatus
	}

	complaint, err := s.complaintRepo.FindByID(ctx, complaintID)
	if err != nil {
		return fmt.Errorf("failed to find complaint for status update: %w", err)
	}
	if complaint == nil {
		return ErrComplaintNotFound
	}

	if complaint.Status == model.StatusResolved && status != model.StatusResolved {
		return ErrCannotDowngrade
	}

	if err := s.complaintRepo.UpdateStatus(ctx, complaintID, status); err != nil {
		return fmt.Errorf("failed to update status in repo: %w", err)
	}
	return nil
}

// AddWorker registers a new worker account
func (s *adminService) AddWorker(ctx context.Context, req model.CreateWorkerRequest) (*model.Worker, error) {
	existing, err := s.workerRepo.FindByPhone(ctx, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing worker: %w", err)
	}
	if existing != nil {
		return nil, ErrWorkerAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash worker password: %w", err)
	}

	worker := &model.Worker{
		Name:           req.Name,
		Phone:          req.Phone,
		PasswordHash:   hashedPassword,
		Specialization: req.Specialization,
		CreatedAt:      time.Now(),
	}
	if err := s.workerRepo.Create(ctx, worker); err != nil {
		return nil, fmt.Errorf("failed to create worker in repo: %w", err)
	}
	return worker, nil
}

// ListWorkers returns all workers
func (s *adminService) ListWorkers(ctx context.Context) ([]model.Worker, error) {
	workers, err := s.workerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	return workers, nil
}

// DeleteWorker removes a worker account
func (s *adminService) DeleteWorker(ctx context.Context, workerID int) error {
	worker, err := s.workerRepo.FindByID(ctx, workerID)
	if err != nil {
		return fmt.Errorf("failed to find worker for deletion: %w", err)
	}
	if worker == nil {
		return ErrWorkerNotFound
	}
	if err := s.workerRepo.Delete(ctx, workerID); err != nil {
		return fmt.Errorf("failed to delete worker in repo: %w", err)
	}
	return nil
}
