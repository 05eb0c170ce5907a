package usecase

import (
	"context"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
)

// DispatchUsecase creates delivery tasks, assigns riders and advances tasks.
type DispatchUsecase interface {
	// CreateTaskForOrder creates the order's delivery task if it has Nexus-fulfilled physical items,
	// then tries to auto-assign it. Returns nil without error when no task is needed.
	CreateTaskForOrder(ctx context.Context, orderID uuid.UUID) (*entity.DeliveryTask, error)

	// AutoAssign picks a rider for a pending task. Returns assigned=false when nobody is available.
	AutoAssign(ctx context.Context, taskID uuid.UUID) (assigned bool, err error)

	// AssignPending retries auto-assignment of pending tasks and returns how many were assigned.
	AssignPending(ctx context.Context, limit int) (int, error)

	// ClaimTask lets an available rider take a pending task.
	ClaimTask(ctx context.Context, riderUserID, taskID uuid.UUID) (*entity.DeliveryTask, error)

	MarkPickedUp(ctx context.Context, riderUserID, taskID uuid.UUID) (*entity.DeliveryTask, error)

	MarkOutForDelivery(ctx context.Context, riderUserID, taskID uuid.UUID) (*entity.DeliveryTask, error)

	// MarkDelivered completes the task. A non-empty handoffCode is checked against the stored hash.
	MarkDelivered(ctx context.Context, riderUserID, taskID uuid.UUID, handoffCode string) (*entity.DeliveryTask, error)

	// HandoffQR issues a fresh hand-off code for the customer's task and returns it as a PNG QR code.
	HandoffQR(ctx context.Context, customerID, orderID uuid.UUID) ([]byte, error)

	// ListRiderTasks lists the rider's tasks, filtered by status when statuses is not empty.
	ListRiderTasks(ctx context.Context, riderUserID uuid.UUID, statuses []entity.TaskStatus) ([]*entity.DeliveryTask, error)
}
