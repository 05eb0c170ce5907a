package repository

import (
	"context"
	"errors"
	"time"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrTaskNotFound is returned when a delivery task is not found.
	ErrTaskNotFound = errors.New("delivery task not found")
	// ErrTaskLocked is returned when the task row is locked by another transaction.
	ErrTaskLocked = errors.New("delivery task locked")
	// ErrTaskExists is returned when the order already has a delivery task.
	ErrTaskExists = errors.New("delivery task already exists for order")
)

// TaskUpdate lists the mutable columns of a delivery task.
type TaskUpdate struct {
	Status             *entity.TaskStatus
	RiderID            *uuid.UUID
	AssignedAt         *time.Time
	ActualPickupTime   *time.Time
	ActualDeliveryTime *time.Time
	RiderEarning       *decimal.Decimal
	PlatformCommission *decimal.Decimal
	HandoffCodeHash    *string
}

// DeliveryTaskRepository defines persistence for delivery tasks.
type DeliveryTaskRepository interface {
	// CreateTask persists a task. Returns ErrTaskExists if the order already has one.
	CreateTask(ctx context.Context, task *entity.DeliveryTask) error

	// FindTaskByID retrieves a task.
	FindTaskByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryTask, error)

	// FindTaskByOrderID retrieves the task of an order.
	FindTaskByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.DeliveryTask, error)

	// LockTask selects the task FOR UPDATE, waiting for other holders.
	LockTask(ctx context.Context, id uuid.UUID) (*entity.DeliveryTask, error)

	// LockTaskSkipLocked selects the task FOR UPDATE SKIP LOCKED. Returns ErrTaskLocked when another transaction holds it.
	LockTaskSkipLocked(ctx context.Context, id uuid.UUID) (*entity.DeliveryTask, error)

	// FindPendingTaskIDs lists PENDING_ASSIGNMENT tasks, oldest first.
	FindPendingTaskIDs(ctx context.Context, limit int) ([]uuid.UUID, error)

	// UpdateTask writes the non-nil fields of update.
	UpdateTask(ctx context.Context, id uuid.UUID, update TaskUpdate) error

	// FindTasksByRider lists a rider's tasks filtered by status (all when empty), newest first.
	FindTasksByRider(ctx context.Context, riderID uuid.UUID, statuses []entity.TaskStatus) ([]*entity.DeliveryTask, error)

	// SumRiderEarnings sums rider_earning over the rider's DELIVERED tasks.
	SumRiderEarnings(ctx context.Context, riderID uuid.UUID) (decimal.Decimal, error)
}
