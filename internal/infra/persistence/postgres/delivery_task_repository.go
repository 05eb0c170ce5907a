package postgres

import (
	"context"
	"time"

	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/repository"
	"nexus/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deliveryTaskRepository implements the repository.DeliveryTaskRepository interface.
type deliveryTaskRepository struct {
	db *gorm.DB
}

// NewDeliveryTaskRepository is the constructor for deliveryTaskRepository.
func NewDeliveryTaskRepository(db *gorm.DB) repository.DeliveryTaskRepository {
	return &deliveryTaskRepository{
		db: db,
	}
}

// CreateTask persists a task; the unique order_id index turns a second task for the same order into ErrTaskExists.
func (repo *deliveryTaskRepository) CreateTask(ctx context.Context, task *entity.DeliveryTask) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrTaskExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// FindTaskByID retrieves a task by its unique ID.
func (repo *deliveryTaskRepository) FindTaskByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryTask, error) {
	return repo.findTask(repo.db.WithContext(ctx), "id = ?", id)
}

// FindTaskByOrderID retrieves the task of an order.
func (repo *deliveryTaskRepository) FindTaskByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.DeliveryTask, error) {
	return repo.findTask(repo.db.WithContext(ctx), "order_id = ?", orderID)
}

// LockTask selects the task FOR UPDATE.
func (repo *deliveryTaskRepository) LockTask(ctx context.Context, id uuid.UUID) (*entity.DeliveryTask, error) {
	return repo.findTask(
		repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}),
		"id = ?", id,
	)
}

// LockTaskSkipLocked selects the task FOR UPDATE SKIP LOCKED. An existing row that comes back
// empty is held by another transaction.
func (repo *deliveryTaskRepository) LockTaskSkipLocked(ctx context.Context, id uuid.UUID) (*entity.DeliveryTask, error) {
	task, err := repo.findTask(
		repo.db.WithContext(ctx).Clauses(clause.Locking{
			Strength: clause.LockingStrengthUpdate,
			Options:  clause.LockingOptionsSkipLocked,
		}),
		"id = ?", id,
	)
	if !errors.Is(err, repository.ErrTaskNotFound) {
		return task, err
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.DeliveryTaskModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return nil, errors.Wrap(err, "failed to check delivery task existence")
	}
	if count > 0 {
		return nil, repository.ErrTaskLocked
	}

	return nil, repository.ErrTaskNotFound
}

func (repo *deliveryTaskRepository) findTask(db *gorm.DB, cond string, arg uuid.UUID) (*entity.DeliveryTask, error) {
	var taskM model.DeliveryTaskModel

	if err := db.Where(cond, arg).First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery task")
	}

	return toTaskDomain(&taskM), nil
}

// FindPendingTaskIDs lists unassigned tasks, oldest first.
func (repo *deliveryTaskRepository) FindPendingTaskIDs(ctx context.Context, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	query := repo.db.WithContext(ctx).
		Model(&model.DeliveryTaskModel{}).
		Where("status = ?", string(entity.TaskPendingAssignment)).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending delivery tasks")
	}

	return ids, nil
}

// UpdateTask writes the non-nil fields of update.
func (repo *deliveryTaskRepository) UpdateTask(ctx context.Context, id uuid.UUID, update repository.TaskUpdate) error {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if update.Status != nil {
		updates["status"] = string(*update.Status)
	}
	if update.RiderID != nil {
		updates["rider_id"] = *update.RiderID
	}
	if update.AssignedAt != nil {
		updates["assigned_at"] = *update.AssignedAt
	}
	if update.ActualPickupTime != nil {
		updates["actual_pickup_time"] = *update.ActualPickupTime
	}
	if update.ActualDeliveryTime != nil {
		updates["actual_delivery_time"] = *update.ActualDeliveryTime
	}
	if update.RiderEarning != nil {
		updates["rider_earning"] = *update.RiderEarning
	}
	if update.PlatformCommission != nil {
		updates["platform_commission"] = *update.PlatformCommission
	}
	if update.HandoffCodeHash != nil {
		updates["handoff_code_hash"] = *update.HandoffCodeHash
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryTaskModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update delivery task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// FindTasksByRider lists a rider's tasks, newest first.
func (repo *deliveryTaskRepository) FindTasksByRider(ctx context.Context, riderID uuid.UUID, statuses []entity.TaskStatus) ([]*entity.DeliveryTask, error) {
	var taskModels []*model.DeliveryTaskModel

	query := repo.db.WithContext(ctx).
		Where("rider_id = ?", riderID).
		Order("created_at DESC")
	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, status := range statuses {
			values = append(values, string(status))
		}
		query = query.Where("status IN ?", values)
	}

	if err := query.Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find delivery tasks by rider")
	}

	tasks := make([]*entity.DeliveryTask, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, nil
}

// SumRiderEarnings sums rider_earning over the rider's delivered tasks.
func (repo *deliveryTaskRepository) SumRiderEarnings(ctx context.Context, riderID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal

	if err := repo.db.WithContext(ctx).
		Model(&model.DeliveryTaskModel{}).
		Select("COALESCE(SUM(rider_earning), 0)").
		Where("rider_id = ? AND status = ?", riderID, string(entity.TaskDelivered)).
		Row().Scan(&total); err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum rider earnings")
	}

	return total, nil
}

// --- Mapper Functions ---

func toTaskDomain(data *model.DeliveryTaskModel) *entity.DeliveryTask {
	if data == nil {
		return nil
	}

	return &entity.DeliveryTask{
		ID:      data.ID,
		OrderID: data.OrderID,
		RiderID: data.RiderID,
		Status:  entity.TaskStatus(data.Status),
		Pickup: entity.Location{
			Text:      data.PickupText,
			Latitude:  data.PickupLatitude,
			Longitude: data.PickupLongitude,
		},
		Dropoff: entity.Location{
			Text:      data.DropoffText,
			Latitude:  data.DropoffLatitude,
			Longitude: data.DropoffLongitude,
		},
		DistanceKm:          data.DistanceKm,
		DeliveryFee:         data.DeliveryFee,
		RiderEarning:        data.RiderEarning,
		PlatformCommission:  data.PlatformCommission,
		HandoffCodeHash:     data.HandoffCodeHash,
		SpecialInstructions: data.SpecialInstructions,
		AssignedAt:          data.AssignedAt,
		ActualPickupTime:    data.ActualPickupTime,
		ActualDeliveryTime:  data.ActualDeliveryTime,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromTaskDomain(data *entity.DeliveryTask) *model.DeliveryTaskModel {
	return &model.DeliveryTaskModel{
		ID:                  data.ID,
		OrderID:             data.OrderID,
		RiderID:             data.RiderID,
		Status:              string(data.Status),
		PickupText:          data.Pickup.Text,
		PickupLatitude:      data.Pickup.Latitude,
		PickupLongitude:     data.Pickup.Longitude,
		DropoffText:         data.Dropoff.Text,
		DropoffLatitude:     data.Dropoff.Latitude,
		DropoffLongitude:    data.Dropoff.Longitude,
		DistanceKm:          data.DistanceKm,
		DeliveryFee:         data.DeliveryFee,
		RiderEarning:        data.RiderEarning,
		PlatformCommission:  data.PlatformCommission,
		HandoffCodeHash:     data.HandoffCodeHash,
		SpecialInstructions: data.SpecialInstructions,
		AssignedAt:          data.AssignedAt,
		ActualPickupTime:    data.ActualPickupTime,
		ActualDeliveryTime:  data.ActualDeliveryTime,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
