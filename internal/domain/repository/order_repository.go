package repository

import (
	"context"
	"errors"
	"time"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderUpdate lists the mutable columns of an order. Totals are not part of it.
type OrderUpdate struct {
	Status              *entity.OrderStatus
	PaymentMethod       entity.PaymentMethod
	GatewayRef          *string
	GatewayTxnID        *string
	CustomerConfirmedAt *time.Time
	CancelReason        *string
	DisputeReason       *string
}

// OrderRepository defines persistence for orders and their items.
type OrderRepository interface {
	// CreateOrder persists an order with its items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with its items.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByPublicID retrieves an order with its items by NEXUS-… identifier.
	FindOrderByPublicID(ctx context.Context, publicID string) (*entity.Order, error)

	// LockOrder selects the order row FOR UPDATE and returns it with its items.
	LockOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// LockOrderByGatewayRef selects the order holding the gateway reference FOR UPDATE.
	LockOrderByGatewayRef(ctx context.Context, reference string) (*entity.Order, error)

	// FindOrderByGatewayRef retrieves the order holding an escrow reference without locking it.
	FindOrderByGatewayRef(ctx context.Context, reference string) (*entity.Order, error)

	// UpdateOrder writes the non-nil fields of update.
	UpdateOrder(ctx context.Context, id uuid.UUID, update OrderUpdate) error

	// FindOrdersByUser lists a customer's orders, newest first.
	FindOrdersByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	// SumVendorSales sums line totals and item delivery charges of the vendor's lines in COMPLETED orders.
	SumVendorSales(ctx context.Context, vendorID uuid.UUID) (decimal.Decimal, error)

	// SumProviderSales sums line totals of the provider's service lines in COMPLETED orders.
	SumProviderSales(ctx context.Context, providerID uuid.UUID) (decimal.Decimal, error)
}
