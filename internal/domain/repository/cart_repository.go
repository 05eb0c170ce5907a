package repository

import (
	"context"
	"errors"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrCartNotFound is returned when the user has no open cart.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound is returned when a cart line is not found.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines persistence for carts.
type CartRepository interface {
	// FindOpenCart returns the user's open cart with its items.
	FindOpenCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// FindOrCreateOpenCart returns the open cart, creating an empty one if needed.
	FindOrCreateOpenCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// UpsertItem adds quantity to an existing line for the same product or package, or inserts a new line.
	UpsertItem(ctx context.Context, item *entity.CartItem) error

	// UpdateItemQuantity sets the quantity of a line of the cart.
	UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error

	// DeleteItem removes a line of the cart.
	DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) error

	// MarkOrdered closes the cart.
	MarkOrdered(ctx context.Context, cartID uuid.UUID) error
}
