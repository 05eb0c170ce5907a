package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaskStatus is the delivery task state.
type TaskStatus string

const (
	TaskPendingAssignment TaskStatus = "PENDING_ASSIGNMENT"
	TaskAcceptedByRider   TaskStatus = "ACCEPTED_BY_RIDER"
	TaskPickedUp          TaskStatus = "PICKED_UP"
	TaskOutForDelivery    TaskStatus = "OUT_FOR_DELIVERY"
	TaskDelivered         TaskStatus = "DELIVERED"
	TaskCancelled         TaskStatus = "CANCELLED"
	TaskFailed            TaskStatus = "FAILED"
)

// IsValid checks if the TaskStatus is a known state.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskPendingAssignment, TaskAcceptedByRider, TaskPickedUp, TaskOutForDelivery,
		TaskDelivered, TaskCancelled, TaskFailed:
		return true
	default:
		return false
	}
}

// ActiveTaskStatuses count towards a rider's load.
//
//nolint:gochecknoglobals
var ActiveTaskStatuses = []TaskStatus{TaskAcceptedByRider, TaskPickedUp, TaskOutForDelivery}

//nolint:gochecknoglobals
var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskPendingAssignment: {TaskAcceptedByRider, TaskCancelled},
	TaskAcceptedByRider:   {TaskPickedUp, TaskCancelled, TaskFailed},
	TaskPickedUp:          {TaskOutForDelivery, TaskDelivered, TaskFailed},
	TaskOutForDelivery:    {TaskDelivered, TaskFailed},
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	return slices.Contains(taskTransitions[s], next)
}

// IsActive reports whether the status counts towards rider load.
func (s TaskStatus) IsActive() bool {
	return slices.Contains(ActiveTaskStatuses, s)
}

// Location is a text snapshot with optional coordinates.
type Location struct {
	Text      string   `json:"text"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// HasCoordinates reports whether both coordinates are known.
func (l Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// DeliveryTask moves Nexus-fulfilled items from a vendor to a customer.
// RiderEarning and PlatformCommission are set once, on the first transition into DELIVERED.
type DeliveryTask struct {
	ID                  uuid.UUID
	OrderID             uuid.UUID
	RiderID             *uuid.UUID
	Status              TaskStatus
	Pickup              Location
	Dropoff             Location
	DistanceKm          *float64
	DeliveryFee         decimal.Decimal
	RiderEarning        *decimal.Decimal
	PlatformCommission  *decimal.Decimal
	HandoffCodeHash     string
	SpecialInstructions string
	AssignedAt          *time.Time
	ActualPickupTime    *time.Time
	ActualDeliveryTime  *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsAssignedTo reports whether riderID holds the task.
func (t *DeliveryTask) IsAssignedTo(riderID uuid.UUID) bool {
	return t.RiderID != nil && *t.RiderID == riderID
}

// EarningsSettled reports whether the commission split was already recorded.
func (t *DeliveryTask) EarningsSettled() bool {
	return t.RiderEarning != nil || t.PlatformCommission != nil
}
