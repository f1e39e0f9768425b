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

func newAuthServiceForTest() (AuthService, *mockUserRepo, *mockWorkerRepo, *mockAdminRepo, *mockResetRepo, *mockMailer) {
	userRepo := &mockUserRepo{}
	workerRepo := &mockWorkerRepo{}
	adminRepo := &mockAdminRepo{}
	resetRepo := &mockResetRepo{}
	mailer := &mockMailer{}
	jwtUtil := utils.NewJWTUtil("test-secret", 1)
	svc := NewAuthService(userRepo, workerRepo, adminRepo, resetRepo, mailer, jwtUtil)
	return svc, userRepo, workerRepo, adminRepo, resetRepo, mailer
}

func validRegisterRequest() model.RegisterRequest {
	return model.RegisterRequest{
		FirstName: "Asha",
		LastName:  "Verma",
		Email:     "asha@example.com",
		Phone:     "9876543210",
		Password:  "secret123",
	}
}

func TestAuthService_Register(t *testing.T) {
	svc, userRepo, _, _, _, _ := newAuthServiceForTest()
	req := validRegisterRequest()

	userRepo.On("FindByPhone", mock.Anything, req.Phone).Return(nil, nil)
	userRepo.On("FindByEmail", mock.Anything, req.Email).Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Phone == req.Phone && u.Email == req.Email && u.PasswordHash != req.Password
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.User).ID = 1
	}).Return(nil)

	user, token, err := svc.Register(context.Background(), req)

	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 1, user.ID)
	assert.NotEmpty(t, token)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicatePhone(t *testing.T) {
	svc, userRepo, _, _, _, _ := newAuthServiceForTest()
	req := validRegisterRequest()

	userRepo.On("FindByPhone", mock.Anything, req.Phone).Return(&model.User{ID: 2, Phone: req.Phone}, nil)

	_, _, err := svc.Register(context.Background(), req)

	assert.ErrorIs(t, err, ErrPhoneAlreadyRegistered)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, userRepo, _, _, _, _ := newAuthServiceForTest()
	req := validRegisterRequest()

	userRepo.On("FindByPhone", mock.Anything, req.Phone).Return(nil, nil)
	userRepo.On("FindByEmail", mock.Anything, req.Email).Return(&model.User{ID: 2, Email: req.Email}, nil)

	_, _, err := svc.Register(context.Background(), req)

	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_LoginUser(t *testing.T) {
	svc, userRepo, _, _, _, _ := newAuthServiceForTest()
	hash, _ := utils.HashPassword("secret123")

	userRepo.On("FindByPhone", mock.Anything, "9876543210").
		Return(&model.User{ID: 1, Phone: "9876543210", PasswordHash: hash}, nil)

	user, token, err := svc.LoginUser(context.Background(), "9876543210", "secret123")

	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, token)
}

func TestAuthService_LoginUser_WrongPassword(t *testing.T) {
	svc, userRepo, _, _, _, _ := newAuthServiceForTest()
	hash, _ := utils.HashPassword("secret123")

	userRepo.On("FindByPhone", mock.Anything, "9876543210").
		Return(&model.User{ID: 1, Phone: "9876543210", PasswordHash: hash}, nil)

	_, _, err := svc.LoginUser(context.Background(), "9876543210", "wrongpass")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LoginUser_UnknownPhone(t *testing.T) {
	svc, userRepo, _, _, _, _ := newAuthServiceForTest()

	userRepo.On("FindByPhone", mock.Anything, "0000000000").Return(nil, nil)

	_, _, err := svc.LoginUser(context.Background(), "0000000000", "secret123")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LoginAdmin_WrongPassword(t *testing.T) {
	svc, _, _, adminRepo, _, _ := newAuthServiceForTest()
	hash, _ := utils.HashPassword("adminpass")

	adminRepo.On("FindByUsername", mock.Anything, "admin").
		Return(&model.Admin{ID: 1, Username: "admin", PasswordHash: hash}, nil)

	_, _, err := svc.LoginAdmin(context.Background(), "admin", "wrongpass")

	assert.ErrorIs(t, err, ErrInvalidAdminLogin)
}

func TestAuthService_ForgotPassword(t *testing.T) {
	svc, userRepo, _, _, resetRepo, mailer := newAuthServiceForTest()
	user := &model.User{ID: 1, Email: "asha@example.com", Phone: "9876543210"}

	userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	resetRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(r *model.PasswordReset) bool {
		return r.UserID == 1 && len(r.Code) == 6
	})).Return(nil)
	mailer.On("SendPasswordResetCode", user.Email, mock.AnythingOfType("string")).Return(nil)

	err := svc.ForgotPassword(context.Background(), user.Email)

	assert.NoError(t, err)
	resetRepo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestAuthService_ForgotPassword_UnknownEmail(t *testing.T) {
	svc, userRepo, _, _, resetRepo, _ := newAuthServiceForTest()

	userRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	err := svc.ForgotPassword(context.Background(), "nobody@example.com")

	assert.ErrorIs(t, err, ErrEmailNotFound)
	resetRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestAuthService_VerifyResetCode_NotStarted(t *testing.T) {
	svc, userRepo, _, _, resetRepo, _ := newAuthServiceForTest()
	user := &model.User{ID: 1, Email: "asha@example.com"}

	userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	resetRepo.On("FindByUserID", mock.Anything, 1).Return(nil, nil)

	err := svc.VerifyResetCode(context.Background(), user.Email, "123456")

	assert.ErrorIs(t, err, ErrResetNotStarted)
}

func TestAuthService_VerifyResetCode_WrongCode(t *testing.T) {
	svc, userRepo, _, _, resetRepo, _ := newAuthServiceForTest()
	user := &model.User{ID: 1, Email: "asha@example.com"}

	userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	resetRepo.On("FindByUserID", mock.Anything, 1).Return(&model.PasswordReset{UserID: 1, Code: "654321"}, nil)

	err := svc.VerifyResetCode(context.Background(), user.Email, "123456")

	assert.ErrorIs(t, err, ErrInvalidResetCode)
}

func TestAuthService_ResetPassword(t *testing.T) {
	svc, userRepo, _, _, resetRepo, _ := newAuthServiceForTest()
	user := &model.User{ID: 1, Email: "asha@example.com"}

	userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	resetRepo.On("FindByUserID", mock.Anything, 1).Return(&model.PasswordReset{UserID: 1, Code: "123456"}, nil)
	userRepo.On("UpdatePassword", mock.Anything, 1, mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash("newsecret", hash)
	})).Return(nil)
	resetRepo.On("DeleteByUserID", mock.Anything, 1).Return(nil)

	err := svc.ResetPassword(context.Background(), user.Email, "123456", "newsecret")

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
	resetRepo.AssertExpectations(t)
}

func TestAuthService_ResetPassword_WrongCode(t *testing.T) {
	svc, userRepo, _, _, resetRepo, _ := newAuthServiceForTest()
	user := &model.User{ID: 1, Email: "asha@example.com"}

	userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	resetRepo.On("FindByUserID", mock.Anything, 1).Return(&model.PasswordReset{UserID: 1, Code: "654321"}, nil)

	err := svc.ResetPassword(context.Background(), user.Email, "123456", "newsecret")

	assert.ErrorIs(t, err, ErrInvalidResetCode)
	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_EnsureAdminAccount_AlreadyExists(t *testing.T) {
	svc, _, _, adminRepo, _, _ := newAuthServiceForTest()

	adminRepo.On("FindByUsername", mock.Anything, "admin").Return(&model.Admin{ID: 1, Username: "admin"}, nil)

	err := svc.EnsureAdminAccount(context.Background(), "admin", "adminpass")

	assert.NoError(t, err)
	adminRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
