package usecase

import (
	"context"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayoutRequestInput is a beneficiary's payout request.
type PayoutRequestInput struct {
	Kind           entity.BeneficiaryKind `json:"kind" validate:"required"`
	Amount         decimal.Decimal        `json:"amount"`
	PaymentDetails string                 `json:"payment_details"`
}

// PayoutUsecase manages payout requests and their settlement through the ledger.
type PayoutUsecase interface {
	// AvailableBalance resolves the caller's beneficiary profile and derives its balance.
	AvailableBalance(ctx context.Context, userID uuid.UUID, kind entity.BeneficiaryKind) (decimal.Decimal, error)

	RequestPayout(ctx context.Context, userID uuid.UUID, input *PayoutRequestInput) (*entity.PayoutRequest, error)

	ListRequests(ctx context.Context, userID uuid.UUID, kind entity.BeneficiaryKind) ([]*entity.PayoutRequest, error)

	ListByStatus(ctx context.Context, status entity.PayoutStatus, limit, offset int) ([]*entity.PayoutRequest, error)

	StartProcessing(ctx context.Context, operatorID, requestID uuid.UUID) (*entity.PayoutRequest, error)

	// Complete writes the payout ledger entry and links it. Completing a completed request is a no-op.
	Complete(ctx context.Context, operatorID, requestID uuid.UUID, gatewayTxnID string) (*entity.PayoutRequest, error)

	Fail(ctx context.Context, operatorID, requestID uuid.UUID, note string) (*entity.PayoutRequest, error)

	Reject(ctx context.Context, operatorID, requestID uuid.UUID, note string) (*entity.PayoutRequest, error)
}
