package usecase

import (
	"context"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
)

// AddAddressInput is a new billing or shipping address.
type AddAddressInput struct {
	Type      entity.AddressType
	FullName  string
	Street    string
	City      string
	Region    string
	Country   string
	Phone     string
	Latitude  *float64
	Longitude *float64
	IsDefault bool
}

// AddressUsecase manages the customer's address book used at checkout.
type AddressUsecase interface {
	// ListAddresses returns the caller's addresses, defaults first.
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// AddAddress stores an address. The first address of a type becomes its default.
	AddAddress(ctx context.Context, userID uuid.UUID, input *AddAddressInput) (*entity.Address, error)

	// GetAddress returns one of the caller's addresses.
	GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error)
}
