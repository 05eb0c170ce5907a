package impl

import (
	"context"
	"testing"

	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/event"
	"nexus/internal/domain/repository"
	mockRepo "nexus/internal/mocks/repository"
	mockSvc "nexus/internal/mocks/service"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type payoutServiceFixtures struct {
	service     usecase.PayoutUsecase
	tx          txFixture
	payoutRepo  *mockRepo.MockPayoutRepository
	riderRepo   *mockRepo.MockRiderRepository
	catalogRepo *mockRepo.MockCatalogRepository
	taskRepo    *mockRepo.MockDeliveryTaskRepository
	orderRepo   *mockRepo.MockOrderRepository
	ledgerRepo  *mockRepo.MockLedgerRepository
	metrics     *mockSvc.MockMetricsRecorder
	publisher   *recordingPublisher
}

func createTestPayoutService(t *testing.T) payoutServiceFixtures {
	fx := payoutServiceFixtures{
		tx:          newTxFixture(t),
		payoutRepo:  mockRepo.NewMockPayoutRepository(t),
		riderRepo:   mockRepo.NewMockRiderRepository(t),
		catalogRepo: mockRepo.NewMockCatalogRepository(t),
		taskRepo:    mockRepo.NewMockDeliveryTaskRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		ledgerRepo:  mockRepo.NewMockLedgerRepository(t),
		metrics:     mockSvc.NewMockMetricsRecorder(t),
		publisher:   &recordingPublisher{},
	}

	fx.tx.factory.EXPECT().NewPayoutRepository().Return(fx.payoutRepo).Maybe()
	fx.tx.factory.EXPECT().NewDeliveryTaskRepository().Return(fx.taskRepo).Maybe()
	fx.tx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo).Maybe()
	fx.tx.factory.EXPECT().NewLedgerRepository().Return(fx.ledgerRepo).Maybe()

	fx.service = NewPayoutService(PayoutServiceParams{
		TxManager:   fx.tx.txManager,
		PayoutRepo:  fx.payoutRepo,
		RiderRepo:   fx.riderRepo,
		CatalogRepo: fx.catalogRepo,
		TaskRepo:    fx.taskRepo,
		OrderRepo:   fx.orderRepo,
		Publisher:   fx.publisher,
		Policy:      newTestPolicy(t),
		Metrics:     fx.metrics,
		Logger:      newDiscardLogger(),
	})

	return fx
}

// riderWithBalance wires a rider whose earnings minus completed payouts equal earned - paid.
func (fx payoutServiceFixtures) riderWithBalance(earned, paid string) entity.Beneficiary {
	rider := availableRider()
	b := entity.Beneficiary{Kind: entity.BeneficiaryRider, ProfileID: rider.ID, UserID: rider.UserID}

	fx.riderRepo.EXPECT().FindProfileByUserID(mock.Anything, rider.UserID).Return(rider, nil).Maybe()
	fx.taskRepo.EXPECT().SumRiderEarnings(mock.Anything, rider.ID).Return(dec(earned), nil).Maybe()
	fx.payoutRepo.EXPECT().SumCompletedPayouts(mock.Anything, b).Return(dec(paid), nil).Maybe()
	fx.payoutRepo.EXPECT().LockBeneficiary(mock.Anything, b).Return(nil).Maybe()

	return b
}

func TestPayoutService_RequestPayout(t *testing.T) {
	fx := createTestPayoutService(t)
	b := fx.riderWithBalance("48.00", "8.00")

	fx.payoutRepo.EXPECT().HasPendingRequest(mock.Anything, b).Return(false, nil).Once()
	fx.payoutRepo.EXPECT().
		CreatePayoutRequest(mock.Anything, mock.MatchedBy(func(req *entity.PayoutRequest) bool {
			return req.Beneficiary == b && req.Status == entity.PayoutPending && req.AmountRequested.Equal(dec("40.00"))
		})).
		Return(nil).
		Once()
	fx.metrics.EXPECT().PayoutRequested(string(entity.BeneficiaryRider)).Once()

	req, err := fx.service.RequestPayout(context.Background(), b.UserID, &usecase.PayoutRequestInput{
		Kind:           entity.BeneficiaryRider,
		Amount:         dec("40.00"),
		PaymentDetails: " MTN 0240000000 ",
	})

	require.NoError(t, err)
	assert.Equal(t, "MTN 0240000000", req.PaymentDetails)
	assert.Equal(t, []string{event.NamePayoutRequested}, fx.publisher.names())
}

func TestPayoutService_RequestPayout_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		earned  string
		pending bool
		amount  string
		wantErr error
	}{
		{name: "nothing earned", earned: "0.00", amount: "10.00", wantErr: domainerrors.ErrNoPendingBalance},
		{name: "no balance beats pending request", earned: "8.00", pending: true, amount: "10.00", wantErr: domainerrors.ErrNoPendingBalance},
		{name: "pending request", earned: "30.00", pending: true, amount: "10.00", wantErr: domainerrors.ErrExistingPendingRequest},
		{name: "above balance", earned: "30.00", amount: "22.01", wantErr: domainerrors.ErrAmountExceedsBalance},
		{name: "below minimum", earned: "30.00", amount: "4.99", wantErr: domainerrors.ErrAmountExceedsBalance},
		{name: "negative amount", earned: "30.00", amount: "-1", wantErr: domainerrors.ErrAmountExceedsBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPayoutService(t)
			b := fx.riderWithBalance(tt.earned, "8.00")
			fx.payoutRepo.EXPECT().HasPendingRequest(mock.Anything, b).Return(tt.pending, nil).Maybe()

			_, err := fx.service.RequestPayout(context.Background(), b.UserID, &usecase.PayoutRequestInput{
				Kind:   entity.BeneficiaryRider,
				Amount: dec(tt.amount),
			})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, fx.publisher.names())
		})
	}
}

func TestPayoutService_Beneficiary(t *testing.T) {
	t.Run("user without a vendor profile", func(t *testing.T) {
		fx := createTestPayoutService(t)
		userID := uuid.New()
		fx.catalogRepo.EXPECT().FindVendorByUserID(mock.Anything, userID).Return(nil, repository.ErrVendorNotFound).Once()

		_, err := fx.service.AvailableBalance(context.Background(), userID, entity.BeneficiaryVendor)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unknown kind", func(t *testing.T) {
		fx := createTestPayoutService(t)

		_, err := fx.service.AvailableBalance(context.Background(), uuid.New(), entity.BeneficiaryKind("broker"))

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("provider balance is net of commission", func(t *testing.T) {
		fx := createTestPayoutService(t)
		provider := &entity.ServiceProvider{ID: uuid.New(), UserID: uuid.New()}
		b := entity.Beneficiary{Kind: entity.BeneficiaryProvider, ProfileID: provider.ID, UserID: provider.UserID}

		fx.catalogRepo.EXPECT().FindProviderByUserID(mock.Anything, provider.UserID).Return(provider, nil).Once()
		fx.orderRepo.EXPECT().SumProviderSales(mock.Anything, provider.ID).Return(dec("200.00"), nil).Once()
		fx.payoutRepo.EXPECT().SumCompletedPayouts(mock.Anything, b).Return(decimal.Zero, nil).Once()

		balance, err := fx.service.AvailableBalance(context.Background(), provider.UserID, entity.BeneficiaryProvider)

		require.NoError(t, err)
		assert.True(t, dec("180.00").Equal(balance), balance.String())
	})
}

func TestPayoutService_Complete_WritesLedgerOnce(t *testing.T) {
	fx := createTestPayoutService(t)

	ctx := context.Background()
	req := &entity.PayoutRequest{
		ID:              uuid.New(),
		Beneficiary:     entity.Beneficiary{Kind: entity.BeneficiaryRider, ProfileID: uuid.New(), UserID: uuid.New()},
		AmountRequested: dec("40.00"),
		Status:          entity.PayoutProcessing,
	}

	var txnID uuid.UUID
	fx.payoutRepo.EXPECT().LockPayoutRequest(ctx, req.ID).Return(req, nil).Times(2)
	fx.ledgerRepo.EXPECT().
		CreateTransaction(ctx, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Kind == entity.TxnPayout &&
				txn.Status == entity.TxnCompleted &&
				txn.Amount.Equal(dec("40.00")) &&
				*txn.UserID == req.Beneficiary.UserID &&
				txn.GatewayTxnID == "MOMO-77"
		})).
		RunAndReturn(func(_ context.Context, txn *entity.Transaction) error {
			txnID = txn.ID

			return nil
		}).
		Once()
	fx.payoutRepo.EXPECT().UpdatePayoutRequest(ctx, req).Return(nil).Once()

	completed, err := fx.service.Complete(ctx, uuid.New(), req.ID, " MOMO-77 ")
	require.NoError(t, err)
	assert.Equal(t, entity.PayoutCompleted, completed.Status)
	require.NotNil(t, completed.TransactionID)
	assert.Equal(t, txnID, *completed.TransactionID)
	assert.NotNil(t, completed.ProcessedAt)

	again, err := fx.service.Complete(ctx, uuid.New(), req.ID, "MOMO-77")
	require.NoError(t, err)
	assert.Equal(t, entity.PayoutCompleted, again.Status)
	assert.Equal(t, []string{event.NamePayoutStatusChanged}, fx.publisher.names())
}

func TestPayoutService_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    entity.PayoutStatus
		run     func(s usecase.PayoutUsecase, id uuid.UUID) (*entity.PayoutRequest, error)
		want    entity.PayoutStatus
		wantErr error
	}{
		{
			name: "start processing",
			from: entity.PayoutPending,
			run: func(s usecase.PayoutUsecase, id uuid.UUID) (*entity.PayoutRequest, error) {
				return s.StartProcessing(context.Background(), uuid.New(), id)
			},
			want: entity.PayoutProcessing,
		},
		{
			name: "reject pending",
			from: entity.PayoutPending,
			run: func(s usecase.PayoutUsecase, id uuid.UUID) (*entity.PayoutRequest, error) {
				return s.Reject(context.Background(), uuid.New(), id, "details incomplete")
			},
			want: entity.PayoutRejected,
		},
		{
			name: "fail processing",
			from: entity.PayoutProcessing,
			run: func(s usecase.PayoutUsecase, id uuid.UUID) (*entity.PayoutRequest, error) {
				return s.Fail(context.Background(), uuid.New(), id, "number not registered")
			},
			want: entity.PayoutFailed,
		},
		{
			name: "complete pending",
			from: entity.PayoutPending,
			run: func(s usecase.PayoutUsecase, id uuid.UUID) (*entity.PayoutRequest, error) {
				return s.Complete(context.Background(), uuid.New(), id, "")
			},
			wantErr: domainerrors.ErrInvalidTransition,
		},
		{
			name: "reject processing",
			from: entity.PayoutProcessing,
			run: func(s usecase.PayoutUsecase, id uuid.UUID) (*entity.PayoutRequest, error) {
				return s.Reject(context.Background(), uuid.New(), id, "")
			},
			wantErr: domainerrors.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPayoutService(t)
			req := &entity.PayoutRequest{ID: uuid.New(), AmountRequested: dec("10.00"), Status: tt.from}
			fx.payoutRepo.EXPECT().LockPayoutRequest(mock.Anything, req.ID).Return(req, nil).Once()
			if tt.wantErr == nil {
				fx.payoutRepo.EXPECT().UpdatePayoutRequest(mock.Anything, req).Return(nil).Once()
			}

			got, err := tt.run(fx.service, req.ID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, fx.publisher.names())

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)
			assert.Equal(t, []string{event.NamePayoutStatusChanged}, fx.publisher.names())
		})
	}
}
