package impl

import (
	"context"
	"strings"
	"time"

	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/repository"
	"nexus/internal/errors"
	"nexus/internal/usecase"

	"github.com/google/uuid"
)

// maxAddressesPerUser bounds the address book.
const maxAddressesPerUser = 20

type addressService struct {
	addressRepo repository.AddressRepository
}

// NewAddressService creates a new address service instance
func NewAddressService(addressRepo repository.AddressRepository) usecase.AddressUsecase {
	return &addressService{
		addressRepo: addressRepo,
	}
}

// ListAddresses retrieves all addresses of a user
func (s *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := s.addressRepo.FindAddressesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by user")
	}

	return addresses, nil
}

// AddAddress adds a new address for a user
func (s *addressService) AddAddress(ctx context.Context, userID uuid.UUID, input *usecase.AddAddressInput) (*entity.Address, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("address type must be billing or shipping")
	}
	if strings.TrimSpace(input.FullName) == "" || strings.TrimSpace(input.Street) == "" || strings.TrimSpace(input.City) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("full name, street and city are required")
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("latitude and longitude must be given together")
	}

	existing, err := s.addressRepo.FindAddressesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by user")
	}
	if len(existing) >= maxAddressesPerUser {
		return nil, domainerrors.ErrConflict.WrapMessage("address limit reached")
	}

	// The first address of a type is its default.
	isDefault := input.IsDefault
	if !isDefault {
		isDefault = true
		for _, a := range existing {
			if a.Type == input.Type {
				isDefault = false

				break
			}
		}
	}

	now := time.Now()
	address := &entity.Address{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      input.Type,
		FullName:  strings.TrimSpace(input.FullName),
		Street:    strings.TrimSpace(input.Street),
		City:      strings.TrimSpace(input.City),
		Region:    strings.TrimSpace(input.Region),
		Country:   strings.TrimSpace(input.Country),
		Phone:     strings.TrimSpace(input.Phone),
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		IsDefault: isDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.addressRepo.CreateAddress(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	return address, nil
}

// GetAddress returns an address owned by the user
func (s *addressService) GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := s.addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("address not found")
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	// Verify ownership
	if !address.BelongsTo(userID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("address belongs to another user")
	}

	return address, nil
}
