package usecase

import (
	"context"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
)

// AssembleOrderInput is the checkout request. PaymentMethod is optional.
type AssembleOrderInput struct {
	BillingAddressID  uuid.UUID
	ShippingAddressID *uuid.UUID
	PaymentMethod     entity.PaymentMethod
}

// AssembledOrder is the created order together with its eligible payment methods.
type AssembledOrder struct {
	Order           *entity.Order
	EligibleMethods []entity.PaymentMethod
}

// OrderUsecase builds orders from carts and reads them back.
type OrderUsecase interface {
	// Assemble turns the customer's open cart into a PENDING order atomically.
	Assemble(ctx context.Context, userID uuid.UUID, input *AssembleOrderInput) (*AssembledOrder, error)

	// GetOrder returns an order owned by the customer.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// ListOrders lists the customer's orders, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error)
}
