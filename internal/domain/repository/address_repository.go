package repository

import (
	"context"
	"errors"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines persistence for customer addresses.
type AddressRepository interface {
	// CreateAddress persists a new address. When IsDefault is set, other defaults of the same type are cleared.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its ID.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAddressesByUser lists a user's addresses.
	FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
}
