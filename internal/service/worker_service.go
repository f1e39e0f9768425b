package service

import (
	"context"
	"errors"
	"fmt"

	"complaint_tracker/internal/model"
	"complaint_tracker/internal/repository"
)

var (
	ErrNotAssignedToWorker      = errors.New("complaint not found or not assigned to you")
	ErrWrongVerificationCode    = errors.New("incorrect verification code")
	ErrComplaintAlreadyResolved = errors.New("complaint is already resolved")
)

// WorkerService provides the worker-facing operations
type WorkerService interface {
	ListAssigned(ctx context.Context, workerID int) ([]model.AssignedComplaint, error)
	Resolve(ctx context.Context, complaintID int64, workerID int, code string) error
}

type workerService struct {
	complaintRepo repository.ComplaintRepository
}

// NewWorkerService creates a new WorkerService
func NewWorkerService(complaintRepo repository.ComplaintRepository) WorkerService {
	return &workerService{complaintRepo: complaintRepo}
}

// ListAssigned returns the worker's open complaints, with the submitter's
// address attached when the scope is Personal
func (s *workerService) ListAssigned(ctx context.Context, workerID int) ([]model.AssignedComplaint, error) {
	complaints, err := s.complaintRepo.FindAssignedToWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned complaints: %w", err)
	}
	return complaints, nil
}

// Resolve closes a complaint when the submitted code exactly matches the
// stored verification code. A mismatch leaves the status untouched.
func (s *workerService) Resolve(ctx context.Context, complaintID int64, workerID int, code string) error {
	complaint, err := s.complaintRepo.FindByID(ctx, complaintID)
	if err != nil {
		return fmt.Errorf("failed to find complaint for resolution: %w", err)
	}
	if complaint == nil || complaint.WorkerID == nil || *complaint.WorkerID != workerID {
		return ErrNotAssignedToWorker
	}
	if complaint.Status == model.StatusResolved {
		return ErrComplaintAlreadyResolved
	}

	if code != complaint.VerificationCode {
		return ErrWrongVerificationCode
	}

	resolved, err := s.complaintRepo.Resolve(ctx, complaintID, workerID)
	if err != nil {
		return fmt.Errorf("failed to resolve complaint in repo: %w", err)
	}
	if !resolved {
		return ErrNotAssignedToWorker
	}
	return nil
}
