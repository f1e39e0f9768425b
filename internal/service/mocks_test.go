package service

import (
	"context"

	"complaint_tracker/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	args := m.Called(ctx, phone)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

type mockWorkerRepo struct{ mock.Mock }

func (m *mockWorkerRepo) Create(ctx context.Context, worker *model.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}

func (m *mockWorkerRepo) FindByPhone(ctx context.Context, phone string) (*model.Worker, error) {
	args := m.Called(ctx, phone)
	if w := args.Get(0); w != nil {
		return w.(*model.Worker), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWorkerRepo) FindByID(ctx context.Context, id int) (*model.Worker, error) {
	args := m.Called(ctx, id)
	if w := args.Get(0); w != nil {
		return w.(*model.Worker), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWorkerRepo) FindAll(ctx context.Context) ([]model.Worker, error) {
	args := m.Called(ctx)
	if w := args.Get(0); w != nil {
		return w.([]model.Worker), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWorkerRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockAdminRepo struct{ mock.Mock }

func (m *mockAdminRepo) Create(ctx context.Context, admin *model.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *mockAdminRepo) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	args := m.Called(ctx, username)
	if a := args.Get(0); a != nil {
		return a.(*model.Admin), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAddressRepo struct{ mock.Mock }

func (m *mockAddressRepo) Create(ctx context.Context, address *model.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *mockAddressRepo) FindByUserID(ctx context.Context, userID int) (*model.Address, error) {
	args := m.Called(ctx, userID)
	if a := args.Get(0); a != nil {
		return a.(*model.Address), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockResetRepo struct{ mock.Mock }

func (m *mockResetRepo) Upsert(ctx context.Context, reset *model.PasswordReset) error {
	args := m.Called(ctx, reset)
	return args.Error(0)
}

func (m *mockResetRepo) FindByUserID(ctx context.Context, userID int) (*model.PasswordReset, error) {
	args := m.Called(ctx, userID)
	if r := args.Get(0); r != nil {
		return r.(*model.PasswordReset), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockResetRepo) DeleteByUserID(ctx context.Context, userID int) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockComplaintRepo struct{ mock.Mock }

func (m *mockComplaintRepo) Create(ctx context.Context, complaint *model.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

func (m *mockComplaintRepo) FindByID(ctx context.Context, id int64) (*model.Complaint, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*model.Complaint), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockComplaintRepo) FindByUser(ctx context.Context, userID int) ([]model.Complaint, error) {
	args := m.Called(ctx, userID)
	if c := args.Get(0); c != nil {
		return c.([]model.Complaint), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockComplaintRepo) FindAll(ctx context.Context, filters model.ComplaintFilters) ([]model.Complaint, error) {
	args := m.Called(ctx, filters)
	if c := args.Get(0); c != nil {
		return c.([]model.Complaint), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockComplaintRepo) DeletePending(ctx context.Context, id int64, userID int) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockComplaintRepo) Assign(ctx context.Context, id int64, workerID int, workerName, workerPhone string) (bool, error) {
	args := m.Called(ctx, id, workerID, workerName, workerPhone)
	return args.Bool(0), args.Error(1)
}

func (m *mockComplaintRepo) UpdateStatus(ctx context.Context, id int64, status model.ComplaintStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockComplaintRepo) SaveFeedback(ctx context.Context, id int64, userID int, rating int, text string) (bool, error) {
	args := m.Called(ctx, id, userID, rating, text)
	return args.Bool(0), args.Error(1)
}

func (m *mockComplaintRepo) FindAssignedToWorker(ctx context.Context, workerID int) ([]model.AssignedComplaint, error) {
	args := m.Called(ctx, workerID)
	if c := args.Get(0); c != nil {
		return c.([]model.AssignedComplaint), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockComplaintRepo) Resolve(ctx context.Context, id int64, workerID int) (bool, error) {
	args := m.Called(ctx, id, workerID)
	return args.Bool(0), args.Error(1)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendComplaintConfirmation(to string, complaintID int64, complaintType, description, priority, verificationCode string) error {
	args := m.Called(to, complaintID, complaintType, description, priority, verificationCode)
	return args.Error(0)
}

func (m *mockMailer) SendPasswordResetCode(to, code string) error {
	args := m.Called(to, code)
	return args.Error(0)
}
