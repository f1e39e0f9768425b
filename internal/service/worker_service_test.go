package service

import (
	"context"
	"testing"

	"complaint_tracker/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func assignedComplaint(id int64, workerID int, status model.ComplaintStatus) *model.Complaint {
	return &model.Complaint{
		ID:               id,
		UserID:           1,
		Status:           status,
		WorkerID:         &workerID,
		VerificationCode: "123456",
	}
}

func TestWorkerService_Resolve(t *testing.T) {
	complaintRepo := &mockComplaintRepo{}
	svc := NewWorkerService(complaintRepo)

	complaintRepo.On("FindByID", mock.Anything, int64(1)).
		Return(assignedComplaint(1, 3, model.StatusInProgress), nil)
	complaintRepo.On("Resolve", mock.Anything, int64(1), 3).Return(true, nil)

	err := svc.Resolve(context.Background(), 1, 3, "123456")

	assert.NoError(t, err)
	complaintRepo.AssertExpectations(t)
}

func TestWorkerService_Resolve_WrongCode(t *testing.T) {
	complaintRepo := &mockComplaintRepo{}
	svc := NewWorkerService(complaintRepo)

	complaintRepo.On("FindByID", mock.Anything, int64(1)).
		Return(assignedComplaint(1, 3, model.StatusInProgress), nil)

	err := svc.Resolve(context.Background(), 1, 3, "000000")

	assert.ErrorIs(t, err, ErrWrongVerificationCode)
	// A mismatch must leave the complaint untouched
	complaintRepo.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkerService_Resolve_NotAssignedToWorker(t *testing.T) {
	complaintRepo := &mockComplaintRepo{}
	svc := NewWorkerService(complaintRepo)

	complaintRepo.On("FindByID", mock.Anything, int64(1)).
		Return(assignedComplaint(1, 9, model.StatusInProgress), nil)

	err := svc.Resolve(context.Background(), 1, 3, "123456")

	assert.ErrorIs(t, err, ErrNotAssignedToWorker)
}

func TestWorkerService_Resolve_Unknown(t *testing.T) {
	complaintRepo := &mockComplaintRepo{}
	svc := NewWorkerService(complaintRepo)

	complaintRepo.On("FindByID", mock.Anything, int64(404)).Return(nil, nil)

	err := svc.Resolve(context.Background(), 404, 3, "123456")

	assert.ErrorIs(t, err, ErrNotAssignedToWorker)
}

func TestWorkerService_Resolve_AlreadyResolved(t *testing.T) {
	complaintRepo := &mockComplaintRepo{}
	svc := NewWorkerService(complaintRepo)

	complaintRepo.On("FindByID", mock.Anything, int64(1)).
		Return(assignedComplaint(1, 3, model.StatusResolved), nil)

	err := svc.Resolve(context.Background(), 1, 3, "123456")

	assert.ErrorIs(t, err, ErrComplaintAlreadyResolved)
}

func TestWorkerService_ListAssigned(t *testing.T) {
	complaintRepo := &mockComplaintRepo{}
	svc := NewWorkerService(complaintRepo)

	complaintRepo.On("FindAssignedToWorker", mock.Anything, 3).
		Return([]model.AssignedComplaint{{UserPhone: "9876543210"}}, nil)

	complaints, err := svc.ListAssigned(context.Background(), 3)

	assert.NoError(t, err)
	assert.Len(t, complaints, 1)
}
