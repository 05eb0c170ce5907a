package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/repository"
	"nexus/internal/errors"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type ledgerService struct {
	txManager  repository.TransactionManager
	ledgerRepo repository.LedgerRepository
	sources    balanceSources
	policy     entity.MarketplacePolicy
	logger     *slog.Logger
}

// LedgerServiceParams holds dependencies for LedgerService, injected by Fx
type LedgerServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	LedgerRepo repository.LedgerRepository
	TaskRepo   repository.DeliveryTaskRepository
	OrderRepo  repository.OrderRepository
	PayoutRepo repository.PayoutRepository
	Policy     entity.MarketplacePolicy
	Logger     *slog.Logger
}

// NewLedgerService creates the ledger usecase
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	return &ledgerService{
		txManager:  params.TxManager,
		ledgerRepo: params.LedgerRepo,
		sources: balanceSources{
			tasks:   params.TaskRepo,
			orders:  params.OrderRepo,
			payouts: params.PayoutRepo,
		},
		policy: params.Policy,
		logger: params.Logger,
	}
}

// newTransaction validates input and builds the entry shared by every writer of the ledger.
func newTransaction(input *usecase.RecordTransactionInput, defaultCurrency string) (*entity.Transaction, error) {
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid transaction kind")
	}
	status := input.Status
	if status == "" {
		status = entity.TxnPending
	}
	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = defaultCurrency
	}

	now := time.Now()

	return &entity.Transaction{
		ID:           uuid.New(),
		Kind:         input.Kind,
		Amount:       input.Amount.Round(2),
		Currency:     currency,
		Status:       status,
		UserID:       input.UserID,
		OrderID:      input.OrderID,
		GatewayTxnID: input.GatewayTxnID,
		Description:  input.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Record appends an entry.
func (s *ledgerService) Record(ctx context.Context, input *usecase.RecordTransactionInput) (*entity.Transaction, error) {
	txn, err := newTransaction(input, s.policy.Currency())
	if err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.CreateTransaction(ctx, txn); err != nil {
		return nil, errors.Wrap(err, "failed to record transaction")
	}

	return txn, nil
}

// Complete moves a pending entry to completed.
func (s *ledgerService) Complete(ctx context.Context, id uuid.UUID, gatewayTxnID string) error {
	return s.setStatus(ctx, id, entity.TxnCompleted, gatewayTxnID)
}

// Fail moves a pending entry to failed.
func (s *ledgerService) Fail(ctx context.Context, id uuid.UUID) error {
	return s.setStatus(ctx, id, entity.TxnFailed, "")
}

func (s *ledgerService) setStatus(ctx context.Context, id uuid.UUID, status entity.TransactionStatus, gatewayTxnID string) error {
	err := s.ledgerRepo.UpdateTransactionStatus(ctx, id, status, gatewayTxnID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrTransactionImmutable):
		return domainerrors.ErrLedgerImmutable.WrapMessage(id.String())
	case errors.Is(err, repository.ErrTransactionNotFound):
		return domainerrors.ErrNotFound.WrapMessage("transaction not found")
	default:
		return errors.Wrap(err, "failed to update transaction status")
	}
}

// Reverse issues a completed offsetting entry. The original row is never touched.
func (s *ledgerService) Reverse(ctx context.Context, id uuid.UUID, reason string) (*entity.Transaction, error) {
	original, err := s.ledgerRepo.FindTransactionByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrTransactionNotFound, "transaction")
	}
	if !original.IsCompleted() {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage("only completed transactions can be reversed")
	}
	if original.ReversalOf != nil {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage("a reversal cannot be reversed")
	}

	description := "Reversal of " + original.ID.String()
	if reason = strings.TrimSpace(reason); reason != "" {
		description += ": " + reason
	}
	reversal := original.Reversal(description)

	if err := s.ledgerRepo.CreateTransaction(ctx, reversal); err != nil {
		return nil, errors.Wrap(err, "failed to record reversal")
	}

	s.logger.InfoContext(ctx, "Transaction reversed",
		slog.String("transaction_id", original.ID.String()),
		slog.String("reversal_id", reversal.ID.String()),
	)

	return reversal, nil
}

// Balance derives credits minus completed payouts.
func (s *ledgerService) Balance(ctx context.Context, beneficiary entity.Beneficiary) (decimal.Decimal, error) {
	return deriveBalance(ctx, s.sources, s.policy, beneficiary)
}

// ListForUser lists a user's entries, newest first.
func (s *ledgerService) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Transaction, error) {
	limit, offset = normalizePage(limit, offset)

	txns, err := s.ledgerRepo.FindTransactionsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return txns, nil
}
