package entity

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// OrderStatus is the single canonical order status enum.
type OrderStatus string

const (
	OrderPending               OrderStatus = "PENDING"
	OrderAwaitingEscrowPayment OrderStatus = "AWAITING_ESCROW_PAYMENT"
	OrderAwaitingDirectPayment OrderStatus = "AWAITING_DIRECT_PAYMENT"
	OrderProcessing            OrderStatus = "PROCESSING"
	OrderInProgress            OrderStatus = "IN_PROGRESS"
	OrderShipped               OrderStatus = "SHIPPED"
	OrderDelivered             OrderStatus = "DELIVERED"
	OrderPendingPayout         OrderStatus = "PENDING_PAYOUT"
	OrderCompleted             OrderStatus = "COMPLETED"
	OrderCancelled             OrderStatus = "CANCELLED"
	OrderRefunded              OrderStatus = "REFUNDED"
	OrderDisputed              OrderStatus = "DISPUTED"
)

// ErrUnknownOrderStatus is returned by ParseOrderStatus for values outside the canonical set.
var ErrUnknownOrderStatus = errors.New("unknown order status")

//nolint:gochecknoglobals
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:               {OrderAwaitingEscrowPayment, OrderAwaitingDirectPayment, OrderCancelled},
	OrderAwaitingEscrowPayment: {OrderProcessing, OrderCancelled},
	OrderAwaitingDirectPayment: {OrderProcessing, OrderCancelled},
	OrderProcessing:            {OrderShipped, OrderInProgress, OrderPendingPayout, OrderCancelled, OrderDisputed},
	OrderShipped:               {OrderPendingPayout, OrderDisputed},
	OrderInProgress:            {OrderPendingPayout, OrderDisputed},
	OrderPendingPayout:         {OrderCompleted, OrderDisputed},
	OrderDisputed:              {OrderRefunded, OrderPendingPayout},
}

// legacyOrderStatuses maps historical lowercase values onto the canonical set.
//
//nolint:gochecknoglobals
var legacyOrderStatuses = map[string]OrderStatus{
	"pending":    OrderPending,
	"processing": OrderProcessing,
	"shipped":    OrderShipped,
	"delivered":  OrderDelivered,
	"cancelled":  OrderCancelled,
	"canceled":   OrderCancelled,
	"completed":  OrderCompleted,
	"refunded":   OrderRefunded,
}

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// Label renders the status for messages, e.g. "pending payout".
func (s OrderStatus) Label() string {
	return strings.ToLower(strings.ReplaceAll(string(s), "_", " "))
}

// IsValid checks if the status is part of the canonical set.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderAwaitingEscrowPayment, OrderAwaitingDirectPayment, OrderProcessing,
		OrderInProgress, OrderShipped, OrderDelivered, OrderPendingPayout, OrderCompleted,
		OrderCancelled, OrderRefunded, OrderDisputed:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return slices.Contains(orderTransitions[s], next)
}

// IsAwaitingPayment is true for PENDING and both AWAITING_* statuses.
func (s OrderStatus) IsAwaitingPayment() bool {
	return s == OrderPending || s == OrderAwaitingEscrowPayment || s == OrderAwaitingDirectPayment
}

// IsTerminal reports whether no further transitions are possible.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// ParseOrderStatus accepts canonical values and migrates legacy lowercase spellings.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	trimmed := strings.TrimSpace(raw)
	if status := OrderStatus(trimmed); status.IsValid() {
		return status, nil
	}
	if status, ok := legacyOrderStatuses[strings.ToLower(trimmed)]; ok {
		return status, nil
	}

	return "", errors.Wrapf(ErrUnknownOrderStatus, "%q", raw)
}
