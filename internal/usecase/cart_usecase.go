package usecase

import (
	"context"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCartItemInput references exactly one of a product or a service package.
type AddCartItemInput struct {
	ProductID        *uuid.UUID `json:"product_id"`
	ServicePackageID *uuid.UUID `json:"service_package_id"`
	Quantity         int        `json:"quantity" validate:"min=1"`
}

// CartUsecase manages the customer's single open cart.
type CartUsecase interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// AddItem adds to the open cart, creating it on first use.
	AddItem(ctx context.Context, userID uuid.UUID, input *AddCartItemInput) (*entity.Cart, error)

	UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.Cart, error)

	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.Cart, error)
}
