package impl

import (
	"context"
	"log/slog"
	"strings"
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
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type payoutService struct {
	txManager   repository.TransactionManager
	payoutRepo  repository.PayoutRepository
	riderRepo   repository.RiderRepository
	catalogRepo repository.CatalogRepository
	sources     balanceSources
	publisher   event.Publisher
	policy      entity.MarketplacePolicy
	metrics     service.MetricsRecorder
	logger      *slog.Logger
}

// PayoutServiceParams holds dependencies for PayoutService, injected by Fx.
type PayoutServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PayoutRepo  repository.PayoutRepository
	RiderRepo   repository.RiderRepository
	CatalogRepo repository.CatalogRepository
	TaskRepo    repository.DeliveryTaskRepository
	OrderRepo   repository.OrderRepository
	Publisher   event.Publisher
	Policy      entity.MarketplacePolicy
	Metrics     service.MetricsRecorder
	Logger      *slog.Logger
}

// NewPayoutService creates the payout workflow.
func NewPayoutService(params PayoutServiceParams) usecase.PayoutUsecase {
	return &payoutService{
		txManager:   params.TxManager,
		payoutRepo:  params.PayoutRepo,
		riderRepo:   params.RiderRepo,
		catalogRepo: params.CatalogRepo,
		sources: balanceSources{
			tasks:   params.TaskRepo,
			orders:  params.OrderRepo,
			payouts: params.PayoutRepo,
		},
		publisher: params.Publisher,
		policy:    params.Policy,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *payoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// beneficiary resolves the profile through which userID earns as kind.
func (srv *payoutService) beneficiary(ctx context.Context, userID uuid.UUID, kind entity.BeneficiaryKind) (entity.Beneficiary, error) {
	b := entity.Beneficiary{Kind: kind, UserID: userID}

	var err error
	switch kind {
	case entity.BeneficiaryRider:
		var profile *entity.RiderProfile
		if profile, err = srv.riderRepo.FindProfileByUserID(ctx, userID); err == nil {
			b.ProfileID = profile.ID
		}
	case entity.BeneficiaryVendor:
		var vendor *entity.Vendor
		if vendor, err = srv.catalogRepo.FindVendorByUserID(ctx, userID); err == nil {
			b.ProfileID = vendor.ID
		}
	case entity.BeneficiaryProvider:
		var provider *entity.ServiceProvider
		if provider, err = srv.catalogRepo.FindProviderByUserID(ctx, userID); err == nil {
			b.ProfileID = provider.ID
		}
	default:
		return b, domainerrors.ErrValidationFailed.WrapMessage("unknown beneficiary kind")
	}

	switch {
	case err == nil:
		return b, nil
	case errors.Is(err, repository.ErrRiderNotFound),
		errors.Is(err, repository.ErrVendorNotFound),
		errors.Is(err, repository.ErrProviderNotFound):
		return b, domainerrors.ErrForbidden.WrapMessage("no " + string(kind) + " profile")
	default:
		return b, errors.Wrap(err, "failed to resolve beneficiary")
	}
}

func (srv *payoutService) AvailableBalance(ctx context.Context, userID uuid.UUID, kind entity.BeneficiaryKind) (decimal.Decimal, error) {
	b, err := srv.beneficiary(ctx, userID, kind)
	if err != nil {
		return decimal.Zero, err
	}

	return deriveBalance(ctx, srv.sources, srv.policy, b)
}

// RequestPayout files a pending payout request. Requests of one beneficiary are serialised, and the
// checks run in a fixed order: no balance, an existing pending request, then the amount bounds.
func (srv *payoutService) RequestPayout(ctx context.Context, userID uuid.UUID, input *usecase.PayoutRequestInput) (*entity.PayoutRequest, error) {
	b, err := srv.beneficiary(ctx, userID, input.Kind)
	if err != nil {
		return nil, err
	}

	var req *entity.PayoutRequest
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		payoutRepo := factory.NewPayoutRepository()

		if err := payoutRepo.LockBeneficiary(ctx, b); err != nil {
			return errors.Wrap(err, "failed to lock beneficiary")
		}

		balance, err := deriveBalance(ctx, sourcesFrom(factory), srv.policy, b)
		if err != nil {
			return err
		}
		if !balance.IsPositive() {
			return domainerrors.ErrNoPendingBalance
		}

		pending, err := payoutRepo.HasPendingRequest(ctx, b)
		if err != nil {
			return errors.Wrap(err, "failed to check pending requests")
		}
		if pending {
			return domainerrors.ErrExistingPendingRequest
		}

		amount := input.Amount.Round(2)
		if amount.GreaterThan(balance) || amount.LessThan(srv.policy.MinPayoutAmount()) || !amount.IsPositive() {
			return domainerrors.ErrAmountExceedsBalance.WithDetails(
				"allowed range " + srv.policy.MinPayoutAmount().StringFixed(2) + " to " + balance.StringFixed(2))
		}

		now := time.Now()
		req = &entity.PayoutRequest{
			ID:              uuid.New(),
			Beneficiary:     b,
			AmountRequested: amount,
			Status:          entity.PayoutPending,
			PaymentDetails:  strings.TrimSpace(input.PaymentDetails),
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		return payoutRepo.CreatePayoutRequest(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	srv.metrics.PayoutRequested(string(b.Kind))
	srv.log(ctx).Info("Payout requested",
		slog.String("request_id", req.ID.String()),
		slog.String("kind", string(b.Kind)),
		slog.String("amount", req.AmountRequested.StringFixed(2)),
	)
	publishCommitted(ctx, srv.publisher, srv.log(ctx), []event.Event{event.PayoutRequested{
		RequestID:   req.ID,
		Beneficiary: b,
		Amount:      req.AmountRequested,
	}})

	return req, nil
}

func (srv *payoutService) ListRequests(ctx context.Context, userID uuid.UUID, kind entity.BeneficiaryKind) ([]*entity.PayoutRequest, error) {
	b, err := srv.beneficiary(ctx, userID, kind)
	if err != nil {
		return nil, err
	}

	reqs, err := srv.payoutRepo.FindPayoutRequestsByBeneficiary(ctx, b)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payout requests")
	}

	return reqs, nil
}

func (srv *payoutService) ListByStatus(ctx context.Context, status entity.PayoutStatus, limit, offset int) ([]*entity.PayoutRequest, error) {
	limit, offset = normalizePage(limit, offset)

	reqs, err := srv.payoutRepo.FindPayoutRequestsByStatus(ctx, status, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payout requests")
	}

	return reqs, nil
}

func (srv *payoutService) StartProcessing(ctx context.Context, operatorID, requestID uuid.UUID) (*entity.PayoutRequest, error) {
	return srv.transition(ctx, operatorID, requestID, entity.PayoutProcessing, "", "")
}

// Complete closes a processing request and writes the matching payout entry to the ledger.
func (srv *payoutService) Complete(ctx context.Context, operatorID, requestID uuid.UUID, gatewayTxnID string) (*entity.PayoutRequest, error) {
	return srv.transition(ctx, operatorID, requestID, entity.PayoutCompleted, "", strings.TrimSpace(gatewayTxnID))
}

func (srv *payoutService) Fail(ctx context.Context, operatorID, requestID uuid.UUID, note string) (*entity.PayoutRequest, error) {
	return srv.transition(ctx, operatorID, requestID, entity.PayoutFailed, note, "")
}

func (srv *payoutService) Reject(ctx context.Context, operatorID, requestID uuid.UUID, note string) (*entity.PayoutRequest, error) {
	return srv.transition(ctx, operatorID, requestID, entity.PayoutRejected, note, "")
}

// transition moves a request under its row lock. Repeating a transition the request already made is a no-op.
func (srv *payoutService) transition(
	ctx context.Context,
	operatorID, requestID uuid.UUID,
	next entity.PayoutStatus,
	note, gatewayTxnID string,
) (*entity.PayoutRequest, error) {
	var (
		req     *entity.PayoutRequest
		changed *event.PayoutStatusChanged
	)

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		payoutRepo := factory.NewPayoutRepository()

		var err error
		req, err = payoutRepo.LockPayoutRequest(ctx, requestID)
		if err != nil {
			return notFound(err, repository.ErrPayoutRequestNotFound, "payout request")
		}
		if req.Status == next {
			return nil
		}
		if !req.Status.CanTransitionTo(next) {
			return domainerrors.ErrInvalidTransition.WrapMessage(string(req.Status) + " -> " + string(next))
		}

		now := time.Now()
		from := req.Status
		req.Status = next
		req.UpdatedAt = now
		if note = strings.TrimSpace(note); note != "" {
			req.AdminNotes = note
		}
		if next != entity.PayoutProcessing {
			req.ProcessedAt = &now
		}

		if next == entity.PayoutCompleted {
			txn, err := newTransaction(&usecase.RecordTransactionInput{
				Kind:         entity.TxnPayout,
				Amount:       req.AmountRequested,
				Currency:     srv.policy.Currency(),
				Status:       entity.TxnCompleted,
				UserID:       &req.Beneficiary.UserID,
				GatewayTxnID: gatewayTxnID,
				Description:  "Payout " + req.ID.String() + " to " + string(req.Beneficiary.Kind),
			}, srv.policy.Currency())
			if err != nil {
				return err
			}
			if err := factory.NewLedgerRepository().CreateTransaction(ctx, txn); err != nil {
				return errors.Wrap(err, "failed to record payout")
			}
			req.TransactionID = &txn.ID
		}

		if err := payoutRepo.UpdatePayoutRequest(ctx, req); err != nil {
			return errors.Wrap(err, "failed to update payout request")
		}

		changed = &event.PayoutStatusChanged{
			RequestID:    req.ID,
			Beneficiary:  req.Beneficiary,
			Amount:       req.AmountRequested,
			From:         from,
			To:           next,
			GatewayTxnID: gatewayTxnID,
			Note:         req.AdminNotes,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	if changed == nil {
		return req, nil
	}

	srv.log(ctx).Info("Payout request updated",
		slog.String("request_id", req.ID.String()),
		slog.String("operator_id", operatorID.String()),
		slog.String("status", string(next)),
	)
	publishCommitted(ctx, srv.publisher, srv.log(ctx), []event.Event{*changed})

	return req, nil
}
