package service

import (
	"context"
	"testing"

	"complaint_tracker/internal/model"
	"complaint_tracker/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminServiceForTest() (AdminService, *mockComplaintRepo, *mockWorkerRepo) {
	complaintRepo := &mockComplaintRepo{}
	workerRepo := &mockWorkerRepo{}
	return NewAdminService(complaintRepo, workerRepo), complaintRepo, workerRepo
}

func TestAdminService_AssignComplaint(t *testing.T) {
	svc, complaintRepo, workerRepo := newAdminServiceForTest()
	worker := &model.Worker{ID: 3, Name: "Ravi", Phone: "9123456789"}

	workerRepo.On("FindByID", mock.Anything, 3).Return(worker, nil)
	complaintRepo.On("Assign", mock.Anything, int64(1), 3, "Ravi", "9123456789").Return(true, nil)

	got, err := svc.AssignComplaint(context.Background(), 1, 3)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, worker.ID, got.ID)
	complaintRepo.AssertExpectations(t)
}

func TestAdminService_AssignComplaint_WorkerNotFound(t *testing.T) {
	svc, complaintRepo, workerRepo := newAdminServiceForTest()

	workerRepo.On("FindByID", mock.Anything, 99).Return(nil, nil)

	_, err := svc.AssignComplaint(context.Background(), 1, 99)

	assert.ErrorIs(t, err, ErrWorkerNotFound)
	complaintRepo.AssertNotCalled(t, "Assign", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminService_AssignComplaint_AlreadyAssigned(t *testing.T) {
	svc, complaintRepo, workerRepo := newAdminServiceForTest()
	worker := &model.Worker{ID: 3, Name: "Ravi", Phone: "9123456789"}

	workerRepo.On("FindByID", mock.Anything, 3).Return(worker, nil)
	complaintRepo.On("Assign", mock.Anything, int64(1), 3, "Ravi", "9123456789").Return(false, nil)

	_, err := svc.AssignComplaint(context.Background(), 1, 3)

	assert.ErrorIs(t, err, ErrAlreadyAssigned)
}

func TestAdminService_UpdateStatus(t *testing.T) {
	svc, complaintRepo, _ := newAdminServiceForTest()

	complaintRepo.On("FindByID", mock.Anything, int64(1)).
		Return(&model.Complaint{ID: 1, Status: model.StatusPending}, nil)
	complaintRepo.On("UpdateStatus", mock.Anything, int64(1), model.StatusInProgress).Return(nil)

	err := svc.UpdateStatus(context.Background(), 1, model.StatusInProgress)

	assert.NoError(t, err)
	complaintRepo.AssertExpectations(t)
}

func TestAdminService_UpdateStatus_Invalid(t *testing.T) {
	svc, complaintRepo, _ := newAdminServiceForTest()

	err := svc.UpdateStatus(context.Background(), 1, model.ComplaintStatus("Closed"))

	assert.ErrorIs(t, err, ErrInvalidStatus)
	complaintRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminService_UpdateStatus_DowngradeFromResolved(t *testing.T) {
	svc, complaintRepo, _ := newAdminServiceForTest()

	complaintRepo.On("FindByID", mock.Anything, int64(1)).
		Return(&model.Complaint{ID: 1, Status: model.StatusResolved}, nil)

	err := svc.UpdateStatus(context.Background(), 1, model.StatusPending)

	assert.ErrorIs(t, err, ErrCannotDowngrade)
	complaintRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminService_AddWorker(t *testing.T) {
	svc, _, workerRepo := newAdminServiceForTest()
	req := model.CreateWorkerRequest{
		Name:           "Ravi",
		Phone:          "9123456789",
		Password:       "workerpass",
		Specialization: "Plumbing",
	}

	workerRepo.On("FindByPhone", mock.Anything, req.Phone).Return(nil, nil)
	workerRepo.On("Create", mock.Anything, mock.MatchedBy(func(w *model.Worker) bool {
		return w.Phone == req.Phone && utils.CheckPasswordHash(req.Password, w.PasswordHash)
	})).Return(nil)

	worker, err := svc.AddWorker(context.Background(), req)

	assert.NoError(t, err)
	require.NotNil(t, worker)
	assert.Equal(t, "Plumbing", worker.Specialization)
	workerRepo.AssertExpectations(t)
}

func TestAdminService_AddWorker_DuplicatePhone(t *testing.T) {
	svc, _, workerRepo := newAdminServiceForTest()
	req := model.CreateWorkerRequest{Name: "Ravi", Phone: "9123456789", Password: "workerpass", Specialization: "Plumbing"}

	workerRepo.On("FindByPhone", mock.Anything, req.Phone).Return(&model.Worker{ID: 3, Phone: req.Phone}, nil)

	_, err := svc.AddWorker(context.Background(), req)

	assert.ErrorIs(t, err, ErrWorkerAlreadyExists)
	workerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminService_DeleteWorker_NotFound(t *testing.T) {
	svc, _, workerRepo := newAdminServiceForTest()

	workerRepo.On("FindByID", mock.Anything, 99).Return(nil, nil)

	err := svc.DeleteWorker(context.Background(), 99)

	assert.ErrorIs(t, err, ErrWorkerNotFound)
	workerRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAdminService_ListComplaints_PassesFilters(t *testing.T) {
	svc, complaintRepo, _ := newAdminServiceForTest()
	status := model.StatusPending
	filters := model.ComplaintFilters{Status: &status, Unassigned: true}

	complaintRepo.On("FindAll", mock.Anything, filters).Return([]model.Complaint{{ID: 1}}, nil)

	complaints, err := svc.ListComplaints(context.Background(), filters)

	assert.NoError(t, err)
	assert.Len(t, complaints, 1)
	complaintRepo.AssertExpectations(t)
}
