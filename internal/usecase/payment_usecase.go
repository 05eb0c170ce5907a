package usecase

import (
	"context"
	"net/url"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentUsecase drives payment-method choice and gateway reconciliation.
type PaymentUsecase interface {
	// EligibleMethods lists the methods allowed for the customer's order.
	EligibleMethods(ctx context.Context, userID, orderID uuid.UUID) ([]entity.PaymentMethod, error)

	// Choose applies a payment method to a PENDING order.
	Choose(ctx context.Context, userID, orderID uuid.UUID, method entity.PaymentMethod) (*entity.Order, error)

	// Initiate starts the escrow gateway payment and returns the authorization URL.
	Initiate(ctx context.Context, userID, orderID uuid.UUID) (string, error)

	// Confirm reconciles a gateway reference. It is idempotent and shared by callback and IPN.
	Confirm(ctx context.Context, reference string) (*entity.Order, error)

	// HandleIPN validates a server-to-server notification and reconciles it.
	HandleIPN(ctx context.Context, form url.Values) error

	// MarkDirectPaymentReceived records an off-platform payment.
	MarkDirectPaymentReceived(ctx context.Context, operatorID, orderID uuid.UUID) (*entity.Order, error)
}
