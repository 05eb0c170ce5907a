package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math"
	"math/big"
	"slices"
	"time"

	deliverycontext "nexus/internal/delivery/context"
	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/event"
	"nexus/internal/domain/repository"
	"nexus/internal/domain/service"
	"nexus/internal/errors"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
)

const handoffCodeDigits = 6

type dispatchService struct {
	txManager   repository.TransactionManager
	taskRepo    repository.DeliveryTaskRepository
	orderRepo   repository.OrderRepository
	riderRepo   repository.RiderRepository
	catalogRepo repository.CatalogRepository
	hasher      service.CodeHasher
	qrcode      service.QRCodeService
	random      service.RandomSource
	publisher   event.Publisher
	policy      entity.MarketplacePolicy
	metrics     service.MetricsRecorder
	logger      *slog.Logger
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	TaskRepo    repository.DeliveryTaskRepository
	OrderRepo   repository.OrderRepository
	RiderRepo   repository.RiderRepository
	CatalogRepo repository.CatalogRepository
	Hasher      service.CodeHasher
	QRCode      service.QRCodeService
	Random      service.RandomSource
	Publisher   event.Publisher
	Policy      entity.MarketplacePolicy
	Metrics     service.MetricsRecorder
	Logger      *slog.Logger
}

// NewDispatchService creates the dispatch engine.
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	return &dispatchService{
		txManager:   params.TxManager,
		taskRepo:    params.TaskRepo,
		orderRepo:   params.OrderRepo,
		riderRepo:   params.RiderRepo,
		catalogRepo: params.CatalogRepo,
		hasher:      params.Hasher,
		qrcode:      params.QRCode,
		random:      params.Random,
		publisher:   params.Publisher,
		policy:      params.Policy,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

func (srv *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTaskForOrder creates the delivery task of a paid order and tries to assign it.
// Orders without Nexus-fulfilled physical items get no task and a nil result.
// Calling it twice for the same order returns the existing task.
func (srv *dispatchService) CreateTaskForOrder(ctx context.Context, orderID uuid.UUID) (*entity.DeliveryTask, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, notFound(err, repository.ErrOrderNotFound, "order")
	}

	items := order.NexusFulfilledPhysicalItems()
	if len(items) == 0 || items[0].VendorID == nil {
		srv.log(ctx).Info("Order is fulfilled by its vendors, no delivery task",
			slog.String("order_id", order.ID.String()))

		return nil, nil
	}

	existing, err := srv.taskRepo.FindTaskByOrderID(ctx, order.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrTaskNotFound) {
		return nil, errors.Wrap(err, "failed to look up delivery task")
	}

	vendor, err := srv.catalogRepo.FindVendorByID(ctx, *items[0].VendorID)
	if err != nil {
		return nil, notFound(err, repository.ErrVendorNotFound, "vendor")
	}

	_, hash, err := srv.newHandoffCode()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	task := &entity.DeliveryTask{
		ID:              uuid.New(),
		OrderID:         order.ID,
		Status:          entity.TaskPendingAssignment,
		Pickup:          entity.Location{Text: vendor.PickupText(), Latitude: vendor.Latitude, Longitude: vendor.Longitude},
		Dropoff:         entity.Location{Text: order.ShippingSnapshot, Latitude: order.ShippingLatitude, Longitude: order.ShippingLongitude},
		DeliveryFee:     order.PlatformDeliveryFee,
		HandoffCodeHash: hash,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	task.DistanceKm = distanceKm(task.Pickup, task.Dropoff)

	err = srv.taskRepo.CreateTask(ctx, task)
	if errors.Is(err, repository.ErrTaskExists) {
		return srv.taskRepo.FindTaskByOrderID(ctx, order.ID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create delivery task")
	}

	srv.log(ctx).Info("Delivery task created",
		slog.String("task_id", task.ID.String()),
		slog.String("order_id", order.ID.String()),
		slog.String("delivery_fee", task.DeliveryFee.StringFixed(2)),
	)

	if _, err := srv.AutoAssign(ctx, task.ID); err != nil {
		srv.log(ctx).Warn("Auto-assignment failed, task stays pending",
			slog.String("task_id", task.ID.String()),
			slog.Any("error", err),
		)

		return task, nil
	}

	return srv.taskRepo.FindTaskByID(ctx, task.ID)
}

// distanceKm is the great-circle distance between two snapshots, when both carry coordinates.
func distanceKm(from, to entity.Location) *float64 {
	if !from.HasCoordinates() || !to.HasCoordinates() {
		return nil
	}

	meters := geo.Distance(
		orb.Point{*from.Longitude, *from.Latitude},
		orb.Point{*to.Longitude, *to.Latitude},
	)
	km := math.Round(meters/10) / 100

	return &km
}

// AutoAssign picks the best available rider for a pending task. The task row is locked with
// SKIP LOCKED, so a task another request is assigning is skipped rather than waited for.
func (srv *dispatchService) AutoAssign(ctx context.Context, taskID uuid.UUID) (bool, error) {
	var assigned *event.TaskAssigned

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		taskRepo := factory.NewDeliveryTaskRepository()

		task, err := taskRepo.LockTaskSkipLocked(ctx, taskID)
		if errors.Is(err, repository.ErrTaskLocked) {
			srv.metrics.DispatchAttempt(service.OutcomeSkipped)

			return nil
		}
		if err != nil {
			return notFound(err, repository.ErrTaskNotFound, "delivery task")
		}
		if task.Status != entity.TaskPendingAssignment {
			srv.metrics.DispatchAttempt(service.OutcomeSkipped)

			return nil
		}

		candidates, err := factory.NewRiderRepository().FindDispatchCandidates(ctx, time.Now())
		if err != nil {
			return errors.Wrap(err, "failed to find dispatch candidates")
		}
		ranked := rankCandidates(candidates, srv.random)
		if len(ranked) == 0 {
			srv.metrics.DispatchAttempt(service.OutcomeNoRider)

			return nil
		}
		rider := ranked[0].Rider

		evt, err := assignTask(ctx, factory, task, rider, true)
		if err != nil {
			return err
		}
		assigned = &evt
		srv.metrics.DispatchAttempt(service.OutcomeAssigned)

		return nil
	})
	if err != nil {
		srv.metrics.DispatchAttempt(service.OutcomeError)

		return false, err
	}
	if assigned == nil {
		return false, nil
	}

	srv.log(ctx).Info("Delivery task auto-assigned",
		slog.String("task_id", taskID.String()),
		slog.String("rider_id", assigned.RiderID.String()),
	)
	publishCommitted(ctx, srv.publisher, srv.log(ctx), []event.Event{*assigned})

	return true, nil
}

// rankCandidates orders riders by (boosted desc, activeLoad asc). The shuffle before the stable sort
// breaks ties at random.
func rankCandidates(candidates []*entity.DispatchCandidate, random service.RandomSource) []*entity.DispatchCandidate {
	ranked := slices.Clone(candidates)
	random.Shuffle(len(ranked), func(i, j int) { ranked[i], ranked[j] = ranked[j], ranked[i] })

	slices.SortStableFunc(ranked, func(a, b *entity.DispatchCandidate) int {
		if a.Boosted != b.Boosted {
			if a.Boosted {
				return -1
			}

			return 1
		}

		return a.ActiveLoad - b.ActiveLoad
	})

	return ranked
}

// assignTask gives a locked pending task to rider.
func assignTask(
	ctx context.Context,
	factory repository.RepositoryFactory,
	task *entity.DeliveryTask,
	rider *entity.RiderProfile,
	auto bool,
) (event.TaskAssigned, error) {
	now := time.Now()
	status := entity.TaskAcceptedByRider
	if err := factory.NewDeliveryTaskRepository().UpdateTask(ctx, task.ID, repository.TaskUpdate{
		Status:     &status,
		RiderID:    &rider.ID,
		AssignedAt: &now,
	}); err != nil {
		return event.TaskAssigned{}, errors.Wrap(err, "failed to assign task")
	}
	task.Status = status
	task.RiderID = &rider.ID
	task.AssignedAt = &now

	publicID := ""
	if order, err := factory.NewOrderRepository().FindOrderByID(ctx, task.OrderID); err == nil {
		publicID = order.PublicID
	}

	return event.TaskAssigned{
		TaskID:        task.ID,
		OrderID:       task.OrderID,
		RiderID:       rider.ID,
		RiderUserID:   rider.UserID,
		AutoAssigned:  auto,
		PickupText:    task.Pickup.Text,
		OrderPublicID: publicID,
	}, nil
}

// AssignPending retries assignment of up to limit pending tasks and reports how many found a rider.
func (srv *dispatchService) AssignPending(ctx context.Context, limit int) (int, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}

	ids, err := srv.taskRepo.FindPendingTaskIDs(ctx, limit)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list pending tasks")
	}

	var (
		count int
		errs  []error
	)
	for _, id := range ids {
		ok, err := srv.AutoAssign(ctx, id)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "task %s", id))

			continue
		}
		if ok {
			count++
		}
	}

	return count, errors.Join(errs...)
}

// ClaimTask lets an available rider take a pending task.
func (srv *dispatchService) ClaimTask(ctx context.Context, riderUserID, taskID uuid.UUID) (*entity.DeliveryTask, error) {
	var (
		task     *entity.DeliveryTask
		assigned event.TaskAssigned
	)

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		rider, err := factory.NewRiderRepository().FindProfileByUserID(ctx, riderUserID)
		if errors.Is(err, repository.ErrRiderNotFound) {
			return domainerrors.ErrNotApproved
		}
		if err != nil {
			return errors.Wrap(err, "failed to load rider profile")
		}
		if !rider.IsApproved {
			return domainerrors.ErrNotApproved
		}
		if !rider.IsAvailable {
			return domainerrors.ErrNotAvailable
		}

		task, err = factory.NewDeliveryTaskRepository().LockTaskSkipLocked(ctx, taskID)
		if errors.Is(err, repository.ErrTaskLocked) {
			return domainerrors.ErrTaskAlreadyClaimed
		}
		if err != nil {
			return notFound(err, repository.ErrTaskNotFound, "delivery task")
		}
		if task.Status != entity.TaskPendingAssignment {
			return domainerrors.ErrTaskAlreadyClaimed
		}

		assigned, err = assignTask(ctx, factory, task, rider, false)

		return err
	})
	if err != nil {
		return nil, err
	}

	publishCommitted(ctx, srv.publisher, srv.log(ctx), []event.Event{assigned})

	return task, nil
}

// riderStep is the part of a rider-driven task transition specific to the target status.
type riderStep func(factory repository.RepositoryFactory, task *entity.DeliveryTask, update *repository.TaskUpdate, now time.Time) ([]event.Event, error)

// advance runs a task transition requested by the task's rider under the task row lock.
func (srv *dispatchService) advance(
	ctx context.Context,
	riderUserID, taskID uuid.UUID,
	next entity.TaskStatus,
	step riderStep,
) (*entity.DeliveryTask, error) {
	var (
		task   *entity.DeliveryTask
		events []event.Event
	)

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		rider, err := factory.NewRiderRepository().FindProfileByUserID(ctx, riderUserID)
		if errors.Is(err, repository.ErrRiderNotFound) {
			return domainerrors.ErrForbidden.WrapMessage("not a rider")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load rider profile")
		}

		taskRepo := factory.NewDeliveryTaskRepository()
		task, err = taskRepo.LockTask(ctx, taskID)
		if err != nil {
			return notFound(err, repository.ErrTaskNotFound, "delivery task")
		}
		if !task.IsAssignedTo(rider.ID) {
			return domainerrors.ErrForbidden.WrapMessage("task is assigned to another rider")
		}
		if !task.Status.CanTransitionTo(next) {
			return domainerrors.ErrInvalidTransition.WrapMessage(string(task.Status) + " -> " + string(next))
		}

		now := time.Now()
		update := repository.TaskUpdate{Status: &next}
		if step != nil {
			if events, err = step(factory, task, &update, now); err != nil {
				return err
			}
		}

		if err := taskRepo.UpdateTask(ctx, task.ID, update); err != nil {
			return errors.Wrap(err, "failed to update delivery task")
		}
		task.Status = next

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Delivery task advanced",
		slog.String("task_id", task.ID.String()),
		slog.String("status", string(task.Status)),
	)
	publishCommitted(ctx, srv.publisher, srv.log(ctx), events)

	return task, nil
}

// MarkPickedUp records the pickup. A PROCESSING order moves to SHIPPED with it.
func (srv *dispatchService) MarkPickedUp(ctx context.Context, riderUserID, taskID uuid.UUID) (*entity.DeliveryTask, error) {
	return srv.advance(ctx, riderUserID, taskID, entity.TaskPickedUp,
		func(factory repository.RepositoryFactory, task *entity.DeliveryTask, update *repository.TaskUpdate, now time.Time) ([]event.Event, error) {
			update.ActualPickupTime = &now
			task.ActualPickupTime = &now

			events := []event.Event{event.TaskPickedUp{TaskID: task.ID, OrderID: task.OrderID, RiderID: *task.RiderID}}

			orderRepo := factory.NewOrderRepository()
			order, err := orderRepo.LockOrder(ctx, task.OrderID)
			if err != nil {
				return nil, notFound(err, repository.ErrOrderNotFound, "order")
			}
			if order.Status == entity.OrderProcessing {
				changed, err := transitionOrder(ctx, orderRepo, order, entity.OrderShipped, repository.OrderUpdate{})
				if err != nil {
					return nil, err
				}
				events = append(events, changed)
			}

			return events, nil
		})
}

func (srv *dispatchService) MarkOutForDelivery(ctx context.Context, riderUserID, taskID uuid.UUID) (*entity.DeliveryTask, error) {
	return srv.advance(ctx, riderUserID, taskID, entity.TaskOutForDelivery, nil)
}

// MarkDelivered completes the task. A supplied hand-off code must match the one shown by the customer.
// The fee split and the platform commission entry are written once per task.
func (srv *dispatchService) MarkDelivered(ctx context.Context, riderUserID, taskID uuid.UUID, handoffCode string) (*entity.DeliveryTask, error) {
	return srv.advance(ctx, riderUserID, taskID, entity.TaskDelivered,
		func(factory repository.RepositoryFactory, task *entity.DeliveryTask, update *repository.TaskUpdate, now time.Time) ([]event.Event, error) {
			if handoffCode != "" && !srv.hasher.Check(handoffCode, task.HandoffCodeHash) {
				return nil, domainerrors.ErrInvalidHandoffCode
			}

			update.ActualDeliveryTime = &now
			task.ActualDeliveryTime = &now
			if task.EarningsSettled() {
				return nil, nil
			}

			earning, commission := srv.policy.SplitDeliveryFee(task.DeliveryFee)
			update.RiderEarning = &earning
			update.PlatformCommission = &commission
			task.RiderEarning = &earning
			task.PlatformCommission = &commission

			txn, err := newTransaction(&usecase.RecordTransactionInput{
				Kind:        entity.TxnPlatformCommission,
				Amount:      commission,
				Currency:    srv.policy.Currency(),
				Status:      entity.TxnCompleted,
				OrderID:     &task.OrderID,
				Description: "Platform commission for delivery task " + task.ID.String(),
			}, srv.policy.Currency())
			if err != nil {
				return nil, err
			}
			if err := factory.NewLedgerRepository().CreateTransaction(ctx, txn); err != nil {
				return nil, errors.Wrap(err, "failed to record platform commission")
			}

			return []event.Event{event.TaskDelivered{
				TaskID:             task.ID,
				OrderID:            task.OrderID,
				RiderID:            *task.RiderID,
				RiderEarning:       earning,
				PlatformCommission: commission,
			}}, nil
		})
}

// HandoffQR issues a fresh hand-off code for the customer's delivery and returns it as a PNG QR code.
// Only the hash of the code is stored.
func (srv *dispatchService) HandoffQR(ctx context.Context, customerID, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, notFound(err, repository.ErrOrderNotFound, "order")
	}
	if order.UserID != customerID {
		return nil, domainerrors.ErrNotFound.WrapMessage("order not found")
	}

	task, err := srv.taskRepo.FindTaskByOrderID(ctx, order.ID)
	if err != nil {
		return nil, notFound(err, repository.ErrTaskNotFound, "delivery task")
	}
	if task.Status != entity.TaskPendingAssignment && !task.Status.IsActive() {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage("delivery is already closed")
	}

	code, hash, err := srv.newHandoffCode()
	if err != nil {
		return nil, err
	}
	if err := srv.taskRepo.UpdateTask(ctx, task.ID, repository.TaskUpdate{HandoffCodeHash: &hash}); err != nil {
		return nil, errors.Wrap(err, "failed to store hand-off code")
	}

	png, err := srv.qrcode.GenerateHandoffQR(service.HandoffPayload{TaskID: task.ID, Code: code})
	if err != nil {
		return nil, errors.Wrap(err, "failed to render hand-off QR code")
	}

	return png, nil
}

func (srv *dispatchService) ListRiderTasks(ctx context.Context, riderUserID uuid.UUID, statuses []entity.TaskStatus) ([]*entity.DeliveryTask, error) {
	rider, err := srv.riderRepo.FindProfileByUserID(ctx, riderUserID)
	if err != nil {
		return nil, notFound(err, repository.ErrRiderNotFound, "rider profile")
	}

	tasks, err := srv.taskRepo.FindTasksByRider(ctx, rider.ID, statuses)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rider tasks")
	}

	return tasks, nil
}

// newHandoffCode returns a random numeric code and its hash.
func (srv *dispatchService) newHandoffCode() (code, hash string, err error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(math.Pow10(handoffCodeDigits))))
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate hand-off code")
	}
	code = fmt.Sprintf("%0*d", handoffCodeDigits, n.Int64())

	hash, err = srv.hasher.Hash(code)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to hash hand-off code")
	}

	return code, hash, nil
}
