package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"complaint_tracker/internal/email"
	"complaint_tracker/internal/model"
	"complaint_tracker/internal/repository"
	"complaint_tracker/internal/utils"
)

var (
	ErrInvalidScope        = errors.New("invalid scope, use 'P' for Personal or 'C' for Community")
	ErrInvalidPriority     = errors.New("invalid priority, choose 'Urgent' or 'Normal'")
	ErrAddressRequired     = errors.New("you must add your address before submitting a personal complaint")
	ErrInvalidFileFormat   = errors.New("invalid file format. only .png, .jpg, .jpeg, .gif are allowed")
	ErrFileSizeExceeded    = errors.New("file size exceeds limit")
	ErrComplaintNotFound   = errors.New("complaint not found")
	ErrComplaintNotPending = errors.New("complaint not found or already processed")
	ErrFeedbackNotAllowed  = errors.New("complaint is not eligible for feedback")
	ErrNoImage             = errors.New("complaint has no image")
	ErrForbidden           = errors.New("forbidden: user does not have permission for this action")
)

// MaxImageSize bounds complaint image uploads to 2 MiB
const MaxImageSize = 2 * 1024 * 1024

// ComplaintService defines the resident-facing complaint operations
type ComplaintService interface {
	Submit(ctx context.Context, userID int, input model.CreateComplaintInput, image *multipart.FileHeader) (*model.Complaint, bool, error)
	ListByUser(ctx context.Context, userID int) ([]model.Complaint, error)
	Delete(ctx context.Context, complaintID int64, userID int) error
	GiveFeedback(ctx context.Context, complaintID int64, userID int, rating int, text string) error
	GetImagePath(ctx context.Context, complaintID int64, userID int) (string, string, error) // returns path and filename
}

type complaintService struct {
	complaintRepo repository.ComplaintRepository
	addressRepo   repository.AddressRepository
	userRepo      repository.UserRepository
	mailer        email.Mailer
	uploadsDir    string
}

// NewComplaintService creates a new ComplaintService
func NewComplaintService(
	complaintRepo repository.ComplaintRepository,
	addressRepo repository.AddressRepository,
	userRepo repository.UserRepository,
	mailer email.Mailer,
	uploadsDir string,
) ComplaintService {
	return &complaintService{
		complaintRepo: complaintRepo,
		addressRepo:   addressRepo,
		userRepo:      userRepo,
		mailer:        mailer,
		uploadsDir:    uploadsDir,
	}
}

// Submit files a complaint. Personal complaints require an address on file
// at submission time. A 6-digit verification code is generated and stored
// with the complaint, then disclosed to the submitter by email; the worker
// must present it to close the complaint. The second return value reports
// whether the confirmation email went out; a send failure does not undo
// the submission.
func (s *complaintService) Submit(ctx context.Context, userID int, input model.CreateComplaintInput, image *multipart.FileHeader) (*model.Complaint, bool, error) {
	var scope model.ComplaintScope
	switch input.ScopeFlag {
	case "P":
		scope = model.ScopePersonal
	case "C":
		scope = model.ScopeCommunity
	default:
		return nil, false, ErrInvalidScope
	}

	priority := model.ComplaintPriority(capitalize(input.Priority))
	if !model.IsValidPriority(priority) {
		return nil, false, ErrInvalidPriority
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load submitter: %w", err)
	}
	if user == nil {
		return nil, false, ErrForbidden
	}

	if scope == model.ScopePersonal {
		address, err := s.addressRepo.FindByUserID(ctx, userID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to check address: %w", err)
		}
		if address == nil {
			return nil, false, ErrAddressRequired
		}
	}

	var location *string
	if scope == model.ScopeCommunity && input.Location != "" {
		location = &input.Location
	}

	var imagePath *string
	if image != nil {
		saved, err := s.saveImage(user.Phone, image)
		if err != nil {
			return nil, false, err
		}
		imagePath = &saved
	}

	complaint := &model.Complaint{
		UserID:           userID,
		Type:             input.Type,
		Description:      input.Description,
		Priority:         priority,
		Status:           model.StatusPending,
		Scope:            scope,
		Location:         location,
		ImagePath:        imagePath,
		VerificationCode: utils.GenerateCode(),
		CreatedAt:        time.Now(),
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		if imagePath != nil {
			os.Remove(filepath.Join(s.uploadsDir, *imagePath)) // Attempt to clean up
		}
		return nil, false, fmt.Errorf("failed to create complaint in repo: %w", err)
	}

	emailSent := true
	if err := s.mailer.SendComplaintConfirmation(
		user.Email, complaint.ID, complaint.Type, complaint.Description,
		string(complaint.Priority), complaint.VerificationCode,
	); err != nil {
		// The complaint is filed either way; the caller reports the miss
		log.Printf("Error sending complaint confirmation to %s: %v", user.Email, err)
		emailSent = false
	}

	return complaint, emailSent, nil
}

// ListByUser returns the user's complaints, newest first
func (s *complaintService) ListByUser(ctx context.Context, userID int) ([]model.Complaint, error) {
	complaints, err := s.complaintRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user complaints from repo: %w", err)
	}
	return complaints, nil
}

// Delete removes one of the user's complaints while it is still Pending
func (s *complaintService) Delete(ctx context.Context, complaintID int64, userID int) error {
	deleted, err := s.complaintRepo.DeletePending(ctx, complaintID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete complaint in repo: %w", err)
	}
	if !deleted {
		return ErrComplaintNotPending
	}
	return nil
}

// GiveFeedback records a rating for one of the user's resolved complaints.
// A complaint that is not Resolved, not owned, or already rated is not
// eligible; there is no overwrite path.
func (s *complaintService) GiveFeedback(ctx context.Context, complaintID int64, userID int, rating int, text string) error {
	saved, err := s.complaintRepo.SaveFeedback(ctx, complaintID, userID, rating, strings.TrimSpace(text))
	if err != nil {
		return fmt.Errorf("failed to save feedback in repo: %w", err)
	}
	if !saved {
		return ErrFeedbackNotAllowed
	}
	return nil
}

// GetImagePath returns the stored path and filename of a complaint's image
func (s *complaintService) GetImagePath(ctx context.Context, complaintID int64, userID int) (string, string, error) {
	complaint, err := s.complaintRepo.FindByID(ctx, complaintID)
	if err != nil {
		return "", "", fmt.Errorf("failed to find complaint for image retrieval: %w", err)
	}
	if complaint == nil {
		return "", "", ErrComplaintNotFound
	}
	if complaint.UserID != userID {
		return "", "", ErrForbidden
	}
	if complaint.ImagePath == nil || *complaint.ImagePath == "" {
		return "", "", ErrNoImage
	}

	fullPath := filepath.Join(s.uploadsDir, filepath.FromSlash(*complaint.ImagePath))
	return fullPath, filepath.Base(fullPath), nil
}

// saveImage validates and persists an uploaded complaint image. The stored
// name embeds the submitter's phone and a timestamp so concurrent uploads
// cannot collide.
func (s *complaintService) saveImage(phone string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > MaxImageSize {
		return "", ErrFileSizeExceeded
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	allowedExts := map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true}
	if !allowedExts[ext] {
		return "", ErrInvalidFileFormat
	}

	if err := os.MkdirAll(s.uploadsDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	timestamp := time.Now().Format("20060102150405")
	fileName := fmt.Sprintf("complaint_%s_%s_%s", phone, timestamp, filepath.Base(fileHeader.Filename))
	filePath := filepath.Join(s.uploadsDir, fileName)

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file on server: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return fileName, nil
}

// capitalize uppercases the first letter and lowercases the rest, so
// "urgent" and "URGENT" both normalize to "Urgent"
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
