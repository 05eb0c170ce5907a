package impl

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "nexus/internal/delivery/context"
	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/event"
	"nexus/internal/domain/repository"
	"nexus/internal/errors"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type fulfillmentService struct {
	txManager   repository.TransactionManager
	catalogRepo repository.CatalogRepository
	publisher   event.Publisher
	logger      *slog.Logger
}

// FulfillmentServiceParams holds dependencies for FulfillmentService, injected by Fx.
type FulfillmentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CatalogRepo repository.CatalogRepository
	Publisher   event.Publisher
	Logger      *slog.Logger
}

// NewFulfillmentService creates the order state machine usecase.
func NewFulfillmentService(params FulfillmentServiceParams) usecase.FulfillmentUsecase {
	return &fulfillmentService{
		txManager:   params.TxManager,
		catalogRepo: params.CatalogRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *fulfillmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// orderStep describes one order transition. before runs ahead of the order lock so rows that other
// paths lock first (delivery tasks) keep the same order here. guard runs on the locked order; a guard
// returning errNoChange ends the call successfully without writing. after runs in the same
// transaction and may add events.
type orderStep struct {
	next   entity.OrderStatus
	before func(factory repository.RepositoryFactory) error
	guard  func(order *entity.Order) error
	update repository.OrderUpdate
	after  func(factory repository.RepositoryFactory, order *entity.Order) ([]event.Event, error)
}

var errNoChange = errors.New("no change")

func (srv *fulfillmentService) apply(ctx context.Context, orderID uuid.UUID, step orderStep) (*entity.Order, error) {
	var (
		order   *entity.Order
		changed event.OrderStatusChanged
		extra   []event.Event
	)

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if step.before != nil {
			if err := step.before(factory); err != nil {
				return err
			}
		}
		orderRepo := factory.NewOrderRepository()

		var err error
		order, err = orderRepo.LockOrder(ctx, orderID)
		if err != nil {
			return notFound(err, repository.ErrOrderNotFound, "order")
		}
		if err := step.guard(order); err != nil {
			return err
		}

		changed, err = transitionOrder(ctx, orderRepo, order, step.next, step.update)
		if err != nil {
			return err
		}
		if step.after != nil {
			extra, err = step.after(factory, order)

			return err
		}

		return nil
	})
	if errors.Is(err, errNoChange) {
		return order, nil
	}
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order status changed",
		slog.String("order_id", order.ID.String()),
		slog.String("from", string(changed.From)),
		slog.String("to", string(changed.To)),
	)
	publishCommitted(ctx, srv.publisher, srv.log(ctx), append([]event.Event{changed}, extra...))

	return order, nil
}

// MarkShipped is reported by a vendor with an item in the order.
func (srv *fulfillmentService) MarkShipped(ctx context.Context, vendorUserID, orderID uuid.UUID) (*entity.Order, error) {
	vendor, err := srv.catalogRepo.FindVendorByUserID(ctx, vendorUserID)
	if errors.Is(err, repository.ErrVendorNotFound) {
		return nil, domainerrors.ErrForbidden.WrapMessage("not a vendor")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load vendor")
	}

	return srv.apply(ctx, orderID, orderStep{
		next: entity.OrderShipped,
		guard: func(order *entity.Order) error {
			if !order.HasItemFromVendor(vendor.ID) {
				return domainerrors.ErrForbidden.WrapMessage("order has no item from this vendor")
			}
			if !order.HasPhysicalItems() {
				return domainerrors.ErrInvalidTransition.WrapMessage("order has no physical items")
			}

			return nil
		},
	})
}

// MarkInProgress is reported by a service provider with a package in the order.
func (srv *fulfillmentService) MarkInProgress(ctx context.Context, providerUserID, orderID uuid.UUID) (*entity.Order, error) {
	provider, err := srv.catalogRepo.FindProviderByUserID(ctx, providerUserID)
	if errors.Is(err, repository.ErrProviderNotFound) {
		return nil, domainerrors.ErrForbidden.WrapMessage("not a service provider")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load service provider")
	}

	return srv.apply(ctx, orderID, orderStep{
		next: entity.OrderInProgress,
		guard: func(order *entity.Order) error {
			if !order.HasItemFromProvider(provider.ID) {
				return domainerrors.ErrForbidden.WrapMessage("order has no service from this provider")
			}
			if !order.HasServices() {
				return domainerrors.ErrInvalidTransition.WrapMessage("order has no services")
			}

			return nil
		},
	})
}

// ConfirmDelivery is the customer's confirmation that the physical items arrived.
func (srv *fulfillmentService) ConfirmDelivery(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error) {
	return srv.confirm(ctx, customerID, orderID, (*entity.Order).HasPhysicalItems,
		[]entity.OrderStatus{entity.OrderProcessing, entity.OrderShipped})
}

// ConfirmCompletion is the customer's confirmation that the services were rendered.
func (srv *fulfillmentService) ConfirmCompletion(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error) {
	return srv.confirm(ctx, customerID, orderID, (*entity.Order).HasServices,
		[]entity.OrderStatus{entity.OrderProcessing, entity.OrderInProgress})
}

// confirm moves an escrow order to PENDING_PAYOUT once. A second confirmation returns the order unchanged.
func (srv *fulfillmentService) confirm(
	ctx context.Context,
	customerID, orderID uuid.UUID,
	applies func(*entity.Order) bool,
	from []entity.OrderStatus,
) (*entity.Order, error) {
	now := time.Now()

	return srv.apply(ctx, orderID, orderStep{
		next: entity.OrderPendingPayout,
		guard: func(order *entity.Order) error {
			if order.UserID != customerID {
				return domainerrors.ErrNotFound.WrapMessage("order not found")
			}
			if order.CustomerConfirmedAt != nil {
				return errNoChange
			}
			if !order.IsEscrow() {
				return domainerrors.ErrInvalidTransition.WrapMessage("only escrow orders are confirmed by the customer")
			}
			if !applies(order) {
				return domainerrors.ErrInvalidTransition.WrapMessage("confirmation does not apply to this order")
			}
			if !slices.Contains(from, order.Status) {
				return domainerrors.ErrInvalidTransition.WrapMessage(string(order.Status) + " -> " + string(entity.OrderPendingPayout))
			}

			return nil
		},
		update: repository.OrderUpdate{CustomerConfirmedAt: &now},
		after: func(_ repository.RepositoryFactory, order *entity.Order) ([]event.Event, error) {
			order.CustomerConfirmedAt = &now

			return nil, nil
		},
	})
}

// Cancel cancels an order. Customers may cancel until the order is paid, operators until it is
// processed. Stock of physical items is put back and an open delivery task is cancelled. Cancelling
// a paid escrow order reverses its payment entry and raises a refund for staff.
//
// Locks are taken task, order, then products in id order.
func (srv *fulfillmentService) Cancel(ctx context.Context, actor usecase.Actor, orderID uuid.UUID, reason string) (*entity.Order, error) {
	reason = strings.TrimSpace(reason)

	var (
		task     *entity.DeliveryTask
		wasPaid  bool
		taskRepo repository.DeliveryTaskRepository
	)

	return srv.apply(ctx, orderID, orderStep{
		next: entity.OrderCancelled,
		before: func(factory repository.RepositoryFactory) error {
			taskRepo = factory.NewDeliveryTaskRepository()
			found, err := taskRepo.FindTaskByOrderID(ctx, orderID)
			if errors.Is(err, repository.ErrTaskNotFound) {
				return nil
			}
			if err != nil {
				return errors.Wrap(err, "failed to load delivery task")
			}
			task, err = taskRepo.LockTask(ctx, found.ID)

			return errors.Wrap(err, "failed to lock delivery task")
		},
		guard: func(order *entity.Order) error {
			wasPaid = order.Status == entity.OrderProcessing && order.IsEscrow()
			if actor.IsOperator {
				if !order.Status.IsAwaitingPayment() && order.Status != entity.OrderProcessing {
					return domainerrors.ErrInvalidTransition.WrapMessage("order can no longer be cancelled")
				}

				return nil
			}
			if order.UserID != actor.UserID {
				return domainerrors.ErrNotFound.WrapMessage("order not found")
			}
			if !order.Status.IsAwaitingPayment() {
				return domainerrors.ErrInvalidTransition.WrapMessage("paid orders can only be cancelled by an operator")
			}

			return nil
		},
		update: repository.OrderUpdate{CancelReason: &reason},
		after: func(factory repository.RepositoryFactory, order *entity.Order) ([]event.Event, error) {
			order.CancelReason = reason

			if err := restoreStock(ctx, factory.NewCatalogRepository(), order); err != nil {
				return nil, err
			}
			if task != nil && task.Status.CanTransitionTo(entity.TaskCancelled) {
				cancelled := entity.TaskCancelled
				if err := taskRepo.UpdateTask(ctx, task.ID, repository.TaskUpdate{Status: &cancelled}); err != nil {
					return nil, errors.Wrap(err, "failed to cancel delivery task")
				}
			}
			if !wasPaid {
				return nil, nil
			}

			refund, err := reversePayment(ctx, factory.NewLedgerRepository(), order)
			if err != nil {
				return nil, err
			}

			return []event.Event{refund}, nil
		},
	})
}

// restoreStock puts physical quantities back, one adjustment per product in id order.
func restoreStock(ctx context.Context, catalogRepo repository.CatalogRepository, order *entity.Order) error {
	quantities := make(map[uuid.UUID]int)
	for _, item := range order.Items {
		if item.IsPhysical() {
			quantities[*item.ProductID] += item.Quantity
		}
	}

	ids := make([]uuid.UUID, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })

	for _, id := range ids {
		err := catalogRepo.AdjustStock(ctx, id, quantities[id])
		if err != nil && !errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(err, "failed to restore stock")
		}
	}

	return nil
}

// reversePayment offsets the completed payment entry of a cancelled escrow order. The refund itself
// is paid out at the gateway by staff.
func reversePayment(ctx context.Context, ledgerRepo repository.LedgerRepository, order *entity.Order) (event.RefundDue, error) {
	refund := event.RefundDue{
		OrderID:  order.ID,
		PublicID: order.PublicID,
		UserID:   order.UserID,
		Amount:   order.Total,
		Currency: order.Currency,
	}

	if order.GatewayTxnID == "" {
		return refund, nil
	}
	payment, err := ledgerRepo.FindTransactionByGatewayTxnID(ctx, entity.TxnPayment, order.GatewayTxnID)
	if errors.Is(err, repository.ErrTransactionNotFound) {
		return refund, nil
	}
	if err != nil {
		return refund, errors.Wrap(err, "failed to load payment entry")
	}
	if !payment.IsCompleted() {
		return refund, nil
	}

	reversal := payment.Reversal("Reversal of " + payment.ID.String() + ": order " + order.PublicID + " cancelled")
	if err := ledgerRepo.CreateTransaction(ctx, reversal); err != nil {
		return refund, errors.Wrap(err, "failed to record payment reversal")
	}
	refund.ReversalID = reversal.ID

	return refund, nil
}

// Dispute is raised by the customer on a paid order.
func (srv *fulfillmentService) Dispute(ctx context.Context, customerID, orderID uuid.UUID, reason string) (*entity.Order, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("a reason is required")
	}

	return srv.apply(ctx, orderID, orderStep{
		next: entity.OrderDisputed,
		guard: func(order *entity.Order) error {
			if order.UserID != customerID {
				return domainerrors.ErrNotFound.WrapMessage("order not found")
			}

			return nil
		},
		update: repository.OrderUpdate{DisputeReason: &reason},
		after: func(_ repository.RepositoryFactory, order *entity.Order) ([]event.Event, error) {
			order.DisputeReason = reason

			return nil, nil
		},
	})
}

// SettleOrder completes an order awaiting payout.
func (srv *fulfillmentService) SettleOrder(ctx context.Context, operatorID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.apply(ctx, orderID, orderStep{
		next:  entity.OrderCompleted,
		guard: func(*entity.Order) error { return nil },
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order settled",
		slog.String("order_id", orderID.String()),
		slog.String("operator_id", operatorID.String()),
	)

	return order, nil
}
