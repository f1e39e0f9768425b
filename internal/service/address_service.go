package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"complaint_tracker/internal/model"
	"complaint_tracker/internal/repository"
)

var (
	ErrAddressAlreadyAdded = errors.New("address already added")
	ErrAddressNotFound     = errors.New("no address on file")
	ErrAddressNotNumeric   = errors.New("house no., floor, and pincode must be numeric")
)

// AddressService manages the single address a user may register
type AddressService interface {
	Create(ctx context.Context, userID int, req model.CreateAddressRequest) (*model.Address, error)
	GetByUser(ctx context.Context, userID int) (*model.Address, error)
}

type addressService struct {
	addressRepo repository.AddressRepository
}

// NewAddressService creates a new AddressService
func NewAddressService(addressRepo repository.AddressRepository) AddressService {
	return &addressService{addressRepo: addressRepo}
}

// Create registers the user's address. There is no update or delete path:
// creation is rejected outright when an address already exists.
func (s *addressService) Create(ctx context.Context, userID int, req model.CreateAddressRequest) (*model.Address, error) {
	existing, err := s.addressRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing address: %w", err)
	}
	if existing != nil {
		return nil, ErrAddressAlreadyAdded
	}

	houseNo, err := strconv.Atoi(req.HouseNo)
	if err != nil {
		return nil, ErrAddressNotNumeric
	}
	floorNo, err := strconv.Atoi(req.FloorNo)
	if err != nil {
		return nil, ErrAddressNotNumeric
	}
	pincode, err := strconv.Atoi(req.Pincode)
	if err != nil {
		return nil, ErrAddressNotNumeric
	}

	address := &model.Address{
		UserID:    userID,
		HouseNo:   houseNo,
		Tower:     req.Tower,
		FloorNo:   floorNo,
		Locality:  req.Locality,
		Area:      req.Area,
		City:      req.City,
		State:     req.State,
		Pincode:   pincode,
		CreatedAt: time.Now(),
	}
	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, fmt.Errorf("failed to create address in repo: %w", err)
	}
	return address, nil
}

// GetByUser fetches the user's address
func (s *addressService) GetByUser(ctx context.Context, userID int) (*model.Address, error) {
	address, err := s.addressRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get address from repo: %w", err)
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}
	return address, nil
}
