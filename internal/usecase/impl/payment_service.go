package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"nexus/config"
	deliverycontext "nexus/internal/delivery/context"
	"nexus/internal/domain/constants"
	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/event"
	"nexus/internal/domain/repository"
	"nexus/internal/domain/service"
	"nexus/internal/errors"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const ipnStatusCompleted = "Completed"

type paymentService struct {
	txManager        repository.TransactionManager
	orderRepo        repository.OrderRepository
	userRepo         repository.UserRepository
	gateway          service.PaymentGateway
	publisher        event.Publisher
	policy           entity.MarketplacePolicy
	metrics          service.MetricsRecorder
	callbackURL      string
	ipnReceiverEmail string
	ipnInvoiceField  string
	logger           *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	Gateway   service.PaymentGateway
	Publisher event.Publisher
	Policy    entity.MarketplacePolicy
	Metrics   service.MetricsRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPaymentService creates the payment orchestrator.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	srv := &paymentService{
		txManager:       params.TxManager,
		orderRepo:       params.OrderRepo,
		userRepo:        params.UserRepo,
		gateway:         params.Gateway,
		publisher:       params.Publisher,
		policy:          params.Policy,
		metrics:         params.Metrics,
		ipnInvoiceField: constants.IPNInvoicePublicID,
		logger:          params.Logger,
	}
	if params.Config != nil {
		if params.Config.Gateway != nil {
			srv.callbackURL = params.Config.Gateway.CallbackURL
		}
		if params.Config.IPN != nil {
			srv.ipnReceiverEmail = params.Config.IPN.ReceiverEmail
			if params.Config.IPN.InvoiceField != "" {
				srv.ipnInvoiceField = params.Config.IPN.InvoiceField
			}
		}
	}

	return srv
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *paymentService) EligibleMethods(ctx context.Context, userID, orderID uuid.UUID) ([]entity.PaymentMethod, error) {
	order, err := srv.customerOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	return order.PaymentEligibility(srv.policy).Methods(), nil
}

// Choose sets the payment method of a PENDING order.
func (srv *paymentService) Choose(ctx context.Context, userID, orderID uuid.UUID, method entity.PaymentMethod) (*entity.Order, error) {
	var (
		order   *entity.Order
		changed event.OrderStatusChanged
	)

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orderRepo := factory.NewOrderRepository()

		var err error
		order, err = orderRepo.LockOrder(ctx, orderID)
		if err != nil {
			return notFound(err, repository.ErrOrderNotFound, "order")
		}
		if order.UserID != userID {
			return domainerrors.ErrNotFound.WrapMessage("order not found")
		}

		choice, err := order.PaymentEligibility(srv.policy).Choose(method)
		if err != nil {
			return paymentChoiceError(err)
		}

		changed, err = applyPaymentChoice(ctx, orderRepo, order, choice)

		return err
	})
	if err != nil {
		return nil, err
	}

	publishCommitted(ctx, srv.publisher, srv.log(ctx), []event.Event{changed})

	return order, nil
}

// Initiate starts the gateway payment of an escrow order and returns the authorization URL.
func (srv *paymentService) Initiate(ctx context.Context, userID, orderID uuid.UUID) (string, error) {
	order, err := srv.customerOrder(ctx, userID, orderID)
	if err != nil {
		return "", err
	}
	if !order.IsEscrow() || order.Status != entity.OrderAwaitingEscrowPayment || order.GatewayRef == "" {
		return "", domainerrors.ErrInvalidTransition.WrapMessage("order is not awaiting an escrow payment")
	}

	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return "", notFound(err, repository.ErrUserNotFound, "user")
	}

	authURL, err := srv.gateway.Initialize(ctx, service.InitializeRequest{
		Email:       user.Email,
		AmountMinor: entity.MinorUnits(order.Total),
		Currency:    order.Currency,
		Reference:   order.GatewayRef,
		CallbackURL: srv.callbackURL,
		Metadata: map[string]string{
			"order_id": order.ID.String(),
			"user_id":  userID.String(),
		},
	})
	if err != nil {
		return "", err
	}

	srv.log(ctx).Info("Escrow payment initiated",
		slog.String("order_id", order.ID.String()),
		slog.String("reference", order.GatewayRef),
	)

	return authURL, nil
}

// Confirm reconciles an escrow reference with the gateway. It is shared by the browser callback and
// is idempotent: a reference whose order already left AWAITING_ESCROW_PAYMENT returns the order unchanged.
func (srv *paymentService) Confirm(ctx context.Context, reference string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByGatewayRef(ctx, reference)
	if errors.Is(err, repository.ErrOrderNotFound) {
		srv.metrics.PaymentReconciled(service.OutcomeError)

		return nil, domainerrors.ErrUnknownReference
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order by reference")
	}
	if order.Status != entity.OrderAwaitingEscrowPayment {
		srv.metrics.PaymentReconciled(service.OutcomeDuplicate)

		return order, nil
	}

	verification, err := srv.gateway.Verify(ctx, reference)
	if err != nil {
		return nil, err
	}
	if !verification.IsSuccess() {
		srv.metrics.PaymentReconciled(service.OutcomeNotSuccess)
		srv.log(ctx).Warn("Gateway reports unsuccessful payment",
			slog.String("reference", reference),
			slog.String("status", verification.Status),
		)

		return nil, domainerrors.ErrPaymentNotSuccessful
	}
	if !verification.IsFor(reference) {
		return nil, srv.flag(ctx, order, reference, domainerrors.ErrUnknownReference)
	}
	if verification.AmountMinor != entity.MinorUnits(order.Total) {
		return nil, srv.flag(ctx, order, reference, domainerrors.ErrAmountMismatch)
	}
	if !strings.EqualFold(verification.Currency, order.Currency) {
		return nil, srv.flag(ctx, order, reference, domainerrors.ErrCurrencyMismatch)
	}

	return srv.markPaid(ctx, verification.GatewayTxnID, func(orders repository.OrderRepository) (*entity.Order, error) {
		return orders.LockOrderByGatewayRef(ctx, reference)
	})
}

// HandleIPN validates a gateway notification and reconciles the order it names.
// Notifications for payments that are not completed, or that were already applied, are ignored.
func (srv *paymentService) HandleIPN(ctx context.Context, form url.Values) error {
	msg, err := srv.gateway.VerifyIPN(ctx, form)
	if err != nil {
		return err
	}

	logger := srv.log(ctx).With(slog.String("invoice", msg.Invoice), slog.String("txn_id", msg.TxnID))

	if msg.PaymentStatus != ipnStatusCompleted {
		logger.Info("Ignoring IPN with non-completed status", slog.String("payment_status", msg.PaymentStatus))

		return nil
	}
	if srv.ipnReceiverEmail != "" && !strings.EqualFold(msg.ReceiverEmail, srv.ipnReceiverEmail) {
		logger.Warn("IPN receiver does not match", slog.String("receiver_email", msg.ReceiverEmail))

		return domainerrors.ErrValidationFailed.WrapMessage("unexpected ipn receiver")
	}

	order, err := srv.orderByInvoice(ctx, msg.Invoice)
	if err != nil {
		return err
	}
	if order.Status != entity.OrderAwaitingEscrowPayment {
		srv.metrics.PaymentReconciled(service.OutcomeDuplicate)
		logger.Info("IPN already applied", slog.String("status", order.Status.String()))

		return nil
	}
	if !msg.Gross.Round(2).Equal(order.Total.Round(2)) {
		return srv.flag(ctx, order, msg.Invoice, domainerrors.ErrAmountMismatch)
	}
	if !strings.EqualFold(msg.Currency, order.Currency) {
		return srv.flag(ctx, order, msg.Invoice, domainerrors.ErrCurrencyMismatch)
	}

	_, err = srv.markPaid(ctx, msg.TxnID, func(orders repository.OrderRepository) (*entity.Order, error) {
		return orders.LockOrder(ctx, order.ID)
	})

	return err
}

func (srv *paymentService) orderByInvoice(ctx context.Context, invoice string) (*entity.Order, error) {
	var (
		order *entity.Order
		err   error
	)

	switch srv.ipnInvoiceField {
	case constants.IPNInvoiceInternalID:
		id, parseErr := uuid.Parse(invoice)
		if parseErr != nil {
			return nil, domainerrors.ErrUnknownReference
		}
		order, err = srv.orderRepo.FindOrderByID(ctx, id)
	default:
		order, err = srv.orderRepo.FindOrderByPublicID(ctx, invoice)
	}
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrUnknownReference
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order by invoice")
	}

	return order, nil
}

// markPaid moves the locked order to PROCESSING and records the payment. A concurrent confirmation that
// won the lock first turns this call into a no-op.
func (srv *paymentService) markPaid(
	ctx context.Context,
	gatewayTxnID string,
	lock func(repository.OrderRepository) (*entity.Order, error),
) (*entity.Order, error) {
	var (
		order  *entity.Order
		events []event.Event
	)

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orderRepo := factory.NewOrderRepository()

		var err error
		order, err = lock(orderRepo)
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrUnknownReference
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock order")
		}
		if order.Status != entity.OrderAwaitingEscrowPayment {
			return domainerrors.ErrAlreadyProcessed
		}

		changed, err := transitionOrder(ctx, orderRepo, order, entity.OrderProcessing, repository.OrderUpdate{
			GatewayTxnID: &gatewayTxnID,
		})
		if err != nil {
			return err
		}
		order.GatewayTxnID = gatewayTxnID

		txn, err := newTransaction(&usecase.RecordTransactionInput{
			Kind:         entity.TxnPayment,
			Amount:       order.Total,
			Currency:     order.Currency,
			Status:       entity.TxnCompleted,
			UserID:       &order.UserID,
			OrderID:      &order.ID,
			GatewayTxnID: gatewayTxnID,
			Description:  "Payment for order " + order.PublicID,
		}, order.Currency)
		if err != nil {
			return err
		}
		if err := factory.NewLedgerRepository().CreateTransaction(ctx, txn); err != nil {
			return errors.Wrap(err, "failed to record payment")
		}

		events = append(events, changed, event.OrderPaid{
			OrderID:  order.ID,
			PublicID: order.PublicID,
			UserID:   order.UserID,
			Method:   entity.PaymentMethodName(order.PaymentMethod),
			Amount:   order.Total,
			Currency: order.Currency,
		})

		return nil
	})
	if errors.Is(err, domainerrors.ErrAlreadyProcessed) {
		srv.metrics.PaymentReconciled(service.OutcomeDuplicate)

		return order, nil
	}
	if err != nil {
		srv.metrics.PaymentReconciled(service.OutcomeError)

		return nil, err
	}

	srv.metrics.PaymentReconciled(service.OutcomeSuccess)
	srv.log(ctx).Info("Escrow payment confirmed",
		slog.String("order_id", order.ID.String()),
		slog.String("gateway_txn_id", gatewayTxnID),
	)
	publishCommitted(ctx, srv.publisher, srv.log(ctx), events)

	return order, nil
}

// flag leaves the order unchanged and hands it to operators for review.
func (srv *paymentService) flag(ctx context.Context, order *entity.Order, reference string, cause *domainerrors.BaseError) error {
	srv.metrics.PaymentReconciled(service.OutcomeMismatch)
	srv.log(ctx).Warn("Payment flagged for review",
		slog.String("order_id", order.ID.String()),
		slog.String("reference", reference),
		slog.String("reason", cause.ErrorCode()),
	)

	publishCommitted(ctx, srv.publisher, srv.log(ctx), []event.Event{event.PaymentFlagged{
		OrderID:   order.ID,
		PublicID:  order.PublicID,
		Reference: reference,
		Reason:    cause.ErrorCode(),
	}})

	return cause
}

// MarkDirectPaymentReceived records an off-platform payment. No ledger entry is written.
func (srv *paymentService) MarkDirectPaymentReceived(ctx context.Context, operatorID, orderID uuid.UUID) (*entity.Order, error) {
	var (
		order  *entity.Order
		events []event.Event
	)

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orderRepo := factory.NewOrderRepository()

		var err error
		order, err = orderRepo.LockOrder(ctx, orderID)
		if err != nil {
			return notFound(err, repository.ErrOrderNotFound, "order")
		}
		if order.Status != entity.OrderAwaitingDirectPayment {
			return domainerrors.ErrInvalidTransition.WrapMessage("order is not awaiting a direct payment")
		}

		changed, err := transitionOrder(ctx, orderRepo, order, entity.OrderProcessing, repository.OrderUpdate{})
		if err != nil {
			return err
		}
		events = append(events, changed, event.OrderPaid{
			OrderID:  order.ID,
			PublicID: order.PublicID,
			UserID:   order.UserID,
			Method:   entity.PaymentMethodName(order.PaymentMethod),
			Amount:   order.Total,
			Currency: order.Currency,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Direct payment marked as received",
		slog.String("order_id", order.ID.String()),
		slog.String("operator_id", operatorID.String()),
	)
	publishCommitted(ctx, srv.publisher, srv.log(ctx), events)

	return order, nil
}

func (srv *paymentService) customerOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, notFound(err, repository.ErrOrderNotFound, "order")
	}
	if order.UserID != userID {
		return nil, domainerrors.ErrNotFound.WrapMessage("order not found")
	}

	return order, nil
}

// applyPaymentChoice moves a PENDING order to the awaiting state of the chosen method.
// Escrow orders receive a fresh gateway reference.
func applyPaymentChoice(
	ctx context.Context,
	orders repository.OrderRepository,
	order *entity.Order,
	choice entity.PaymentChoice,
) (event.OrderStatusChanged, error) {
	if order.Status != entity.OrderPending {
		return event.OrderStatusChanged{}, domainerrors.ErrInvalidTransition.WrapMessage("payment method can only be chosen for a pending order")
	}

	method := choice.Method()
	next, err := entity.MatchPaymentMethod(method,
		func(entity.Escrow) entity.OrderStatus { return entity.OrderAwaitingEscrowPayment },
		func(entity.Direct) entity.OrderStatus { return entity.OrderAwaitingDirectPayment },
	)
	if err != nil {
		return event.OrderStatusChanged{}, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	update := repository.OrderUpdate{PaymentMethod: method}
	reference := ""
	if next == entity.OrderAwaitingEscrowPayment {
		reference = order.NewEscrowReference()
		update.GatewayRef = &reference
	}

	changed, err := transitionOrder(ctx, orders, order, next, update)
	if err != nil {
		return event.OrderStatusChanged{}, err
	}
	order.PaymentMethod = method
	order.GatewayRef = reference

	return changed, nil
}

func paymentChoiceError(err error) error {
	switch {
	case errors.Is(err, entity.ErrMethodNotEligible):
		return domainerrors.ErrMethodNotEligible
	case errors.Is(err, entity.ErrUnknownPaymentMethod):
		return domainerrors.ErrValidationFailed.WrapMessage("unknown payment method")
	default:
		return err
	}
}
