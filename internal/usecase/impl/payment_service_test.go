package impl

import (
	"context"
	"net/url"
	"testing"

	"nexus/config"
	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/event"
	"nexus/internal/domain/repository"
	"nexus/internal/domain/service"
	mockRepo "nexus/internal/mocks/repository"
	mockSvc "nexus/internal/mocks/service"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// paymentServiceFixtures holds all test dependencies for payment service tests.
type paymentServiceFixtures struct {
	service    usecase.PaymentUsecase
	tx         txFixture
	orderRepo  *mockRepo.MockOrderRepository
	ledgerRepo *mockRepo.MockLedgerRepository
	userRepo   *mockRepo.MockUserRepository
	gateway    *mockSvc.MockPaymentGateway
	metrics    *mockSvc.MockMetricsRecorder
	publisher  *recordingPublisher
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	fx := paymentServiceFixtures{
		tx:         newTxFixture(t),
		orderRepo:  mockRepo.NewMockOrderRepository(t),
		ledgerRepo: mockRepo.NewMockLedgerRepository(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		gateway:    mockSvc.NewMockPaymentGateway(t),
		metrics:    mockSvc.NewMockMetricsRecorder(t),
		publisher:  &recordingPublisher{},
	}

	fx.tx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo).Maybe()
	fx.tx.factory.EXPECT().NewLedgerRepository().Return(fx.ledgerRepo).Maybe()

	fx.service = NewPaymentService(PaymentServiceParams{
		TxManager: fx.tx.txManager,
		OrderRepo: fx.orderRepo,
		UserRepo:  fx.userRepo,
		Gateway:   fx.gateway,
		Publisher: fx.publisher,
		Policy:    newTestPolicy(t),
		Metrics:   fx.metrics,
		Config: &config.Config{
			Gateway: &config.GatewayConfig{CallbackURL: "https://nexus.example/payments/callback"},
			IPN:     &config.IPNConfig{ReceiverEmail: "payments@nexus.example"},
		},
		Logger: newDiscardLogger(),
	})

	return fx
}

func physicalOrder(userID uuid.UUID, total string) *entity.Order {
	productID := uuid.New()

	return &entity.Order{
		ID:       uuid.New(),
		PublicID: "NEXUS-20260101-ABCDEF",
		UserID:   userID,
		Status:   entity.OrderPending,
		Currency: "GHS",
		Total:    dec(total),
		Items: []*entity.OrderItem{{
			ID:                uuid.New(),
			ProductID:         &productID,
			ProductKind:       entity.ProductPhysical,
			CategorySlug:      "textiles",
			UnitPrice:         dec(total),
			Quantity:          1,
			FulfillmentMethod: entity.FulfillmentNexus,
		}},
	}
}

// awaitingEscrow returns a copy of order as it looks after escrow was chosen.
func awaitingEscrow(order *entity.Order) *entity.Order {
	o := *order
	o.Status = entity.OrderAwaitingEscrowPayment
	o.PaymentMethod = entity.Escrow{}
	o.GatewayRef = "NEXUS_ORD_" + o.PublicID + "_ABC123"

	return &o
}

func TestPaymentService_EscrowHappyPath(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := physicalOrder(userID, "62.50")

	// PENDING -> AWAITING_ESCROW_PAYMENT
	fx.orderRepo.EXPECT().LockOrder(ctx, order.ID).Return(order, nil).Once()
	fx.orderRepo.EXPECT().
		UpdateOrder(ctx, order.ID, mock.MatchedBy(func(u repository.OrderUpdate) bool {
			return *u.Status == entity.OrderAwaitingEscrowPayment && u.GatewayRef != nil && u.PaymentMethod == entity.Escrow{}
		})).
		Return(nil).
		Once()

	chosen, err := fx.service.Choose(ctx, userID, order.ID, entity.Escrow{})
	require.NoError(t, err)
	require.Equal(t, entity.OrderAwaitingEscrowPayment, chosen.Status)
	reference := chosen.GatewayRef
	require.NotEmpty(t, reference)

	// AWAITING_ESCROW_PAYMENT -> PROCESSING
	fx.orderRepo.EXPECT().FindOrderByGatewayRef(ctx, reference).Return(chosen, nil)
	fx.gateway.EXPECT().Verify(ctx, reference).Return(&service.Verification{
		Status:       "success",
		Reference:    reference,
		GatewayTxnID: "98765",
		AmountMinor:  6250,
		Currency:     "GHS",
	}, nil)
	fx.orderRepo.EXPECT().LockOrderByGatewayRef(ctx, reference).Return(chosen, nil)
	fx.orderRepo.EXPECT().
		UpdateOrder(ctx, order.ID, mock.MatchedBy(func(u repository.OrderUpdate) bool {
			return *u.Status == entity.OrderProcessing && *u.GatewayTxnID == "98765"
		})).
		Return(nil).
		Once()
	fx.ledgerRepo.EXPECT().
		CreateTransaction(ctx, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Kind == entity.TxnPayment &&
				txn.Status == entity.TxnCompleted &&
				txn.Amount.Equal(dec("62.50")) &&
				*txn.OrderID == order.ID &&
				txn.GatewayTxnID == "98765"
		})).
		Return(nil).
		Once()
	fx.metrics.EXPECT().PaymentReconciled(service.OutcomeSuccess).Return().Once()

	paid, err := fx.service.Confirm(ctx, reference)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderProcessing, paid.Status)
	assert.Equal(t, []string{
		event.NameOrderStatusChanged,
		event.NameOrderStatusChanged,
		event.NameOrderPaid,
	}, fx.publisher.names())
}

func TestPaymentService_Confirm_Rejections(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name         string
		verification *service.Verification
		wantErr      error
		wantOutcome  string
		wantFlagged  bool
	}{
		{
			name:         "gateway reports failure",
			verification: &service.Verification{Status: "failed", AmountMinor: 6250, Currency: "GHS"},
			wantErr:      domainerrors.ErrPaymentNotSuccessful,
			wantOutcome:  service.OutcomeNotSuccess,
		},
		{
			name:         "gateway verified another reference",
			verification: &service.Verification{Status: "success", Reference: "NEXUS_ORD_NEXUS-20260101-OTHER1_FFFFFF", AmountMinor: 6250, Currency: "GHS"},
			wantErr:      domainerrors.ErrUnknownReference,
			wantOutcome:  service.OutcomeMismatch,
			wantFlagged:  true,
		},
		{
			name:         "amount mismatch",
			verification: &service.Verification{Status: "success", AmountMinor: 6000, Currency: "GHS"},
			wantErr:      domainerrors.ErrAmountMismatch,
			wantOutcome:  service.OutcomeMismatch,
			wantFlagged:  true,
		},
		{
			name:         "currency mismatch",
			verification: &service.Verification{Status: "success", AmountMinor: 6250, Currency: "NGN"},
			wantErr:      domainerrors.ErrCurrencyMismatch,
			wantOutcome:  service.OutcomeMismatch,
			wantFlagged:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPaymentService(t)

			ctx := context.Background()
			order := awaitingEscrow(physicalOrder(userID, "62.50"))
			verification := *tt.verification
			if verification.Reference == "" {
				verification.Reference = order.GatewayRef
			}
			fx.orderRepo.EXPECT().FindOrderByGatewayRef(ctx, order.GatewayRef).Return(order, nil)
			fx.gateway.EXPECT().Verify(ctx, order.GatewayRef).Return(&verification, nil)
			fx.metrics.EXPECT().PaymentReconciled(tt.wantOutcome).Return().Once()

			_, err := fx.service.Confirm(ctx, order.GatewayRef)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, entity.OrderAwaitingEscrowPayment, order.Status)
			if tt.wantFlagged {
				assert.Equal(t, []string{event.NamePaymentFlagged}, fx.publisher.names())
			} else {
				assert.Empty(t, fx.publisher.names())
			}
		})
	}
}

func TestPaymentService_Confirm_UnknownReference(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().FindOrderByGatewayRef(ctx, "NEXUS_ORD_NOPE").Return(nil, repository.ErrOrderNotFound)
	fx.metrics.EXPECT().PaymentReconciled(service.OutcomeError).Return().Once()

	_, err := fx.service.Confirm(ctx, "NEXUS_ORD_NOPE")

	assert.ErrorIs(t, err, domainerrors.ErrUnknownReference)
}

func ipnForm() url.Values {
	return url.Values{"invoice": {"NEXUS-20260101-ABCDEF"}, "txn_id": {"TX1"}}
}

func completedIPN() *service.IPNMessage {
	return &service.IPNMessage{
		Invoice:       "NEXUS-20260101-ABCDEF",
		PaymentStatus: "Completed",
		ReceiverEmail: "payments@nexus.example",
		TxnID:         "TX1",
		Gross:         dec("62.50"),
		Currency:      "GHS",
	}
}

func TestPaymentService_HandleIPN_Replay(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := awaitingEscrow(physicalOrder(uuid.New(), "62.50"))
	form := ipnForm()

	fx.gateway.EXPECT().VerifyIPN(ctx, form).Return(completedIPN(), nil).Times(3)
	fx.orderRepo.EXPECT().FindOrderByPublicID(ctx, order.PublicID).Return(order, nil).Times(3)
	fx.orderRepo.EXPECT().LockOrder(ctx, order.ID).Return(order, nil).Once()
	fx.orderRepo.EXPECT().UpdateOrder(ctx, order.ID, mock.Anything).Return(nil).Once()
	fx.ledgerRepo.EXPECT().CreateTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil).Once()
	fx.metrics.EXPECT().PaymentReconciled(service.OutcomeSuccess).Return().Once()
	fx.metrics.EXPECT().PaymentReconciled(service.OutcomeDuplicate).Return().Twice()

	for range 3 {
		require.NoError(t, fx.service.HandleIPN(ctx, form))
	}

	assert.Equal(t, entity.OrderProcessing, order.Status)
	assert.Equal(t, "TX1", order.GatewayTxnID)
	assert.Equal(t, []string{event.NameOrderStatusChanged, event.NameOrderPaid}, fx.publisher.names())
}

func TestPaymentService_HandleIPN_LosesRaceUnderLock(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	stale := awaitingEscrow(physicalOrder(uuid.New(), "62.50"))
	current := *stale
	current.Status = entity.OrderProcessing

	fx.gateway.EXPECT().VerifyIPN(ctx, mock.Anything).Return(completedIPN(), nil)
	fx.orderRepo.EXPECT().FindOrderByPublicID(ctx, stale.PublicID).Return(stale, nil)
	fx.orderRepo.EXPECT().LockOrder(ctx, stale.ID).Return(&current, nil)
	fx.metrics.EXPECT().PaymentReconciled(service.OutcomeDuplicate).Return().Once()

	require.NoError(t, fx.service.HandleIPN(ctx, ipnForm()))
	assert.Empty(t, fx.publisher.names())
}

func TestPaymentService_HandleIPN_Ignored(t *testing.T) {
	t.Run("pending status", func(t *testing.T) {
		fx := createTestPaymentService(t)

		msg := completedIPN()
		msg.PaymentStatus = "Pending"
		fx.gateway.EXPECT().VerifyIPN(mock.Anything, mock.Anything).Return(msg, nil)

		assert.NoError(t, fx.service.HandleIPN(context.Background(), ipnForm()))
	})

	t.Run("foreign receiver", func(t *testing.T) {
		fx := createTestPaymentService(t)

		msg := completedIPN()
		msg.ReceiverEmail = "someone@else.example"
		fx.gateway.EXPECT().VerifyIPN(mock.Anything, mock.Anything).Return(msg, nil)

		err := fx.service.HandleIPN(context.Background(), ipnForm())

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestPaymentService_Choose_NotEligible(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := physicalOrder(userID, "25.00")
	fx.orderRepo.EXPECT().LockOrder(ctx, order.ID).Return(order, nil)

	_, err := fx.service.Choose(ctx, userID, order.ID, entity.Direct{})

	assert.ErrorIs(t, err, domainerrors.ErrMethodNotEligible)
	assert.Equal(t, entity.OrderPending, order.Status)
}

func TestPaymentService_MarkDirectPaymentReceived(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := physicalOrder(uuid.New(), "80.00")
	order.Status = entity.OrderAwaitingDirectPayment
	order.PaymentMethod = entity.Direct{}

	fx.orderRepo.EXPECT().LockOrder(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateOrder(ctx, order.ID, mock.Anything).Return(nil)

	paid, err := fx.service.MarkDirectPaymentReceived(ctx, uuid.New(), order.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderProcessing, paid.Status)
	assert.Equal(t, []string{event.NameOrderStatusChanged, event.NameOrderPaid}, fx.publisher.names())
}
