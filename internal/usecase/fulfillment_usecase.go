package usecase

import (
	"context"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the caller of an order transition.
type Actor struct {
	UserID     uuid.UUID
	IsOperator bool
}

// FulfillmentUsecase drives the order status machine after payment.
type FulfillmentUsecase interface {
	// MarkShipped is reported by a vendor owning an item of a PROCESSING physical order.
	MarkShipped(ctx context.Context, vendorUserID, orderID uuid.UUID) (*entity.Order, error)

	// MarkInProgress is reported by a provider owning a line of a PROCESSING service order.
	MarkInProgress(ctx context.Context, providerUserID, orderID uuid.UUID) (*entity.Order, error)

	ConfirmDelivery(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error)

	ConfirmCompletion(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error)

	// Cancel cancels the order within the actor's policy and restores stock.
	Cancel(ctx context.Context, actor Actor, orderID uuid.UUID, reason string) (*entity.Order, error)

	Dispute(ctx context.Context, customerID, orderID uuid.UUID, reason string) (*entity.Order, error)

	// SettleOrder moves PENDING_PAYOUT to COMPLETED.
	SettleOrder(ctx context.Context, operatorID, orderID uuid.UUID) (*entity.Order, error)
}
