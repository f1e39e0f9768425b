package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"complaint_tracker/internal/email"
	"complaint_tracker/internal/model"
	"complaint_tracker/internal/repository"
	"complaint_tracker/internal/utils"
)

var (
	ErrPhoneAlreadyRegistered = errors.New("an account with this phone number already exists")
	ErrEmailAlreadyRegistered = errors.New("this email is already registered")
	ErrInvalidCredentials     = errors.New("incorrect phone number or password")
	ErrInvalidAdminLogin      = errors.New("invalid username or password")
	ErrEmailNotFound          = errors.New("no user found with this email")
	ErrResetNotStarted        = errors.New("no password reset in progress, start the reset process again")
	ErrInvalidResetCode       = errors.New("incorrect verification code")
	ErrResetEmailFailed       = errors.New("could not send the verification code email")
)

// AuthService provides authentication for the three principal kinds and
// the password reset flow
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, string, error)
	LoginUser(ctx context.Context, phone, password string) (*model.User, string, error)
	LoginWorker(ctx context.Context, phone, password string) (*model.Worker, string, error)
	LoginAdmin(ctx context.Context, username, password string) (*model.Admin, string, error)

	ForgotPassword(ctx context.Context, emailAddr string) error
	VerifyResetCode(ctx context.Context, emailAddr, code string) error
	ResetPassword(ctx context.Context, emailAddr, code, newPassword string) error

	EnsureAdminAccount(ctx context.Context, username, password string) error
}

type authService struct {
	userRepo   repository.UserRepository
	workerRepo repository.WorkerRepository
	adminRepo  repository.AdminRepository
	resetRepo  repository.PasswordResetRepository
	mailer     email.Mailer
	jwtUtil    *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repository.UserRepository,
	workerRepo repository.WorkerRepository,
	adminRepo repository.AdminRepository,
	resetRepo repository.PasswordResetRepository,
	mailer email.Mailer,
	jwtUtil *utils.JWTUtil,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		workerRepo: workerRepo,
		adminRepo:  adminRepo,
		resetRepo:  resetRepo,
		mailer:     mailer,
		jwtUtil:    jwtUtil,
	}
}

// Register creates a new user account. Phone and email must both be
// unused; the unique constraints back up this check-then-insert.
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, string, error) {
	existing, err := s.userRepo.FindByPhone(ctx, req.Phone)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing phone: %w", err)
	}
	if existing != nil {
		return nil, "", ErrPhoneAlreadyRegistered
	}

	existing, err = s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, "", ErrEmailAlreadyRegistered
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Gender:       req.Gender,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create user in repository: %w", err)
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Phone, model.RoleUser)
	if err != nil {
		log.Printf("ERROR: User %s (ID: %d) created, but failed to generate token: %v", user.Phone, user.ID, err)
		return user, "", fmt.Errorf("user created, but failed to generate token: %w", err)
	}

	return user, token, nil
}

// LoginUser authenticates a user by phone and password
func (s *authService) LoginUser(ctx context.Context, phone, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by phone: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Phone, model.RoleUser)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// LoginWorker authenticates a worker by phone and password
func (s *authService) LoginWorker(ctx context.Context, phone, password string) (*model.Worker, string, error) {
	worker, err := s.workerRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, "", fmt.Errorf("error finding worker by phone: %w", err)
	}
	if worker == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, worker.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(worker.ID, worker.Phone, model.RoleWorker)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return worker, token, nil
}

// LoginAdmin authenticates an admin by username and password
func (s *authService) LoginAdmin(ctx context.Context, username, password string) (*model.Admin, string, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("error finding admin by username: %w", err)
	}
	if admin == nil {
		return nil, "", ErrInvalidAdminLogin
	}

	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		return nil, "", ErrInvalidAdminLogin
	}

	token, err := s.jwtUtil.GenerateToken(admin.ID, admin.Username, model.RoleAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return admin, token, nil
}

// ForgotPassword starts the reset flow: generate a 6-digit code, persist
// the pending reset, and email the code to the account's address
func (s *authService) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(ctx, emailAddr)
	if err != nil {
		return fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return ErrEmailNotFound
	}

	code := utils.GenerateCode()
	reset := &model.PasswordReset{
		UserID:    user.ID,
		Phone:     user.Phone,
		Code:      code,
		CreatedAt: time.Now(),
	}
	if err := s.resetRepo.Upsert(ctx, reset); err != nil {
		return fmt.Errorf("failed to store password reset: %w", err)
	}

	if err := s.mailer.SendPasswordResetCode(user.Email, code); err != nil {
		log.Printf("Error sending reset code to %s: %v", user.Email, err)
		return ErrResetEmailFailed
	}
	return nil
}

// VerifyResetCode checks the submitted code against the pending reset
func (s *authService) VerifyResetCode(ctx context.Context, emailAddr, code string) error {
	reset, err := s.findPendingReset(ctx, emailAddr)
	if err != nil {
		return err
	}
	if reset.Code != code {
		return ErrInvalidResetCode
	}
	return nil
}

// ResetPassword finishes the flow: the pending reset must still exist and
// the code must match; the new password follows the registration policy
// (enforced at the binding boundary) and the pending state is cleared.
func (s *authService) ResetPassword(ctx context.Context, emailAddr, code, newPassword string) error {
	reset, err := s.findPendingReset(ctx, emailAddr)
	if err != nil {
		return err
	}
	if reset.Code != code {
		return ErrInvalidResetCode
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, reset.UserID, hashedPassword); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if err := s.resetRepo.DeleteByUserID(ctx, reset.UserID); err != nil {
		// The password did change; losing the cleanup only leaves a stale row
		log.Printf("Error clearing password reset for user %d: %v", reset.UserID, err)
	}
	return nil
}

func (s *authService) findPendingReset(ctx context.Context, emailAddr string) (*model.PasswordReset, error) {
	user, err := s.userRepo.FindByEmail(ctx, emailAddr)
	if err != nil {
		return nil, fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, ErrEmailNotFound
	}
	reset, err := s.resetRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("error finding pending reset: %w", err)
	}
	if reset == nil {
		return nil, ErrResetNotStarted
	}
	return reset, nil
}

// EnsureAdminAccount seeds the admin account from configuration when it
// does not exist yet. Called once at startup.
func (s *authService) EnsureAdminAccount(ctx context.Context, username, password string) error {
	existing, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := &model.Admin{
		Username:     username,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now(),
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}
	log.Printf("INFO: Seeded admin account %q", username)
	return nil
}
