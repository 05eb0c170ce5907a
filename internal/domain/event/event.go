// Package event defines the domain events emitted by state transitions and
// the in-process bus delivering them to handlers registered at start-up.
package event

import (
	"context"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event is a fact emitted after a state transition committed.
type Event interface {
	EventName() string
}

// Publisher delivers events to their registered handlers.
type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
}

// Event names.
const (
	NameOrderPlaced              = "order.placed"
	NameOrderPaid                = "order.paid"
	NameOrderStatusChanged       = "order.status_changed"
	NamePaymentFlagged           = "payment.flagged"
	NameRefundDue                = "order.refund_due"
	NameTaskAssigned             = "task.assigned"
	NameTaskPickedUp             = "task.picked_up"
	NameTaskDelivered            = "task.delivered"
	NameRiderApproved            = "rider.approved"
	NameRiderDeapproved          = "rider.deapproved"
	NameRiderAvailabilityChanged = "rider.availability_changed"
	NamePayoutRequested          = "payout.requested"
	NamePayoutStatusChanged      = "payout.status_changed"
	NameJobDeadLettered          = "job.dead_lettered"
)

// OrderPlaced is emitted when an order was assembled from a cart.
type OrderPlaced struct {
	OrderID  uuid.UUID
	PublicID string
	UserID   uuid.UUID
	Total    decimal.Decimal
	Currency string
}

// OrderPaid is emitted when an order enters PROCESSING.
type OrderPaid struct {
	OrderID  uuid.UUID
	PublicID string
	UserID   uuid.UUID
	Method   string
	Amount   decimal.Decimal
	Currency string
}

// OrderStatusChanged is emitted for every order status transition.
type OrderStatusChanged struct {
	OrderID  uuid.UUID
	PublicID string
	UserID   uuid.UUID
	From     entity.OrderStatus
	To       entity.OrderStatus
}

// PaymentFlagged is emitted when reconciliation found a mismatch that needs an operator.
type PaymentFlagged struct {
	OrderID   uuid.UUID
	PublicID  string
	Reference string
	Reason    string
}

// RefundDue is emitted when a paid escrow order was cancelled. ReversalID is the offsetting ledger
// entry, or uuid.Nil when no payment entry was found.
type RefundDue struct {
	OrderID    uuid.UUID
	PublicID   string
	UserID     uuid.UUID
	Amount     decimal.Decimal
	Currency   string
	ReversalID uuid.UUID
}

// TaskAssigned is emitted when a rider got a delivery task.
type TaskAssigned struct {
	TaskID        uuid.UUID
	OrderID       uuid.UUID
	RiderID       uuid.UUID
	RiderUserID   uuid.UUID
	AutoAssigned  bool
	PickupText    string
	OrderPublicID string
}

// TaskPickedUp is emitted when the rider collected the items.
type TaskPickedUp struct {
	TaskID  uuid.UUID
	OrderID uuid.UUID
	RiderID uuid.UUID
}

// TaskDelivered is emitted once per task, on the first transition into DELIVERED.
type TaskDelivered struct {
	TaskID             uuid.UUID
	OrderID            uuid.UUID
	RiderID            uuid.UUID
	RiderEarning       decimal.Decimal
	PlatformCommission decimal.Decimal
}

// RiderApproved is emitted when an application transitions to approved.
type RiderApproved struct {
	UserID        uuid.UUID
	ApplicationID uuid.UUID
}

// RiderDeapproved is emitted when a previously approved rider loses approval.
type RiderDeapproved struct {
	UserID        uuid.UUID
	ApplicationID uuid.UUID
}

// RiderAvailabilityChanged is emitted when a rider toggles availability.
type RiderAvailabilityChanged struct {
	RiderID   uuid.UUID
	Available bool
}

// PayoutRequested is emitted when a payout request was created.
type PayoutRequested struct {
	RequestID   uuid.UUID
	Beneficiary entity.Beneficiary
	Amount      decimal.Decimal
}

// PayoutStatusChanged is emitted on every operator transition of a payout request.
type PayoutStatusChanged struct {
	RequestID    uuid.UUID
	Beneficiary  entity.Beneficiary
	Amount       decimal.Decimal
	From         entity.PayoutStatus
	To           entity.PayoutStatus
	GatewayTxnID string
	Note         string
}

// JobDeadLettered is emitted when a background job exhausted its retries.
type JobDeadLettered struct {
	JobID          uuid.UUID
	Name           string
	IdempotencyKey string
	LastError      string
}

func (OrderPlaced) EventName() string              { return NameOrderPlaced }
func (OrderPaid) EventName() string                { return NameOrderPaid }
func (OrderStatusChanged) EventName() string       { return NameOrderStatusChanged }
func (PaymentFlagged) EventName() string           { return NamePaymentFlagged }
func (RefundDue) EventName() string                { return NameRefundDue }
func (TaskAssigned) EventName() string             { return NameTaskAssigned }
func (TaskPickedUp) EventName() string             { return NameTaskPickedUp }
func (TaskDelivered) EventName() string            { return NameTaskDelivered }
func (RiderApproved) EventName() string            { return NameRiderApproved }
func (RiderDeapproved) EventName() string          { return NameRiderDeapproved }
func (RiderAvailabilityChanged) EventName() string { return NameRiderAvailabilityChanged }
func (PayoutRequested) EventName() string          { return NamePayoutRequested }
func (PayoutStatusChanged) EventName() string      { return NamePayoutStatusChanged }
func (JobDeadLettered) EventName() string          { return NameJobDeadLettered }
