package impl

import (
	"context"
	"testing"
	"time"

	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/event"
	"nexus/internal/domain/repository"
	mockRepo "nexus/internal/mocks/repository"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fulfillmentServiceFixtures struct {
	service     usecase.FulfillmentUsecase
	tx          txFixture
	orderRepo   *mockRepo.MockOrderRepository
	catalogRepo *mockRepo.MockCatalogRepository
	taskRepo    *mockRepo.MockDeliveryTaskRepository
	ledgerRepo  *mockRepo.MockLedgerRepository
	publisher   *recordingPublisher
}

func createTestFulfillmentService(t *testing.T) fulfillmentServiceFixtures {
	fx := fulfillmentServiceFixtures{
		tx:          newTxFixture(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		catalogRepo: mockRepo.NewMockCatalogRepository(t),
		taskRepo:    mockRepo.NewMockDeliveryTaskRepository(t),
		ledgerRepo:  mockRepo.NewMockLedgerRepository(t),
		publisher:   &recordingPublisher{},
	}

	fx.tx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo).Maybe()
	fx.tx.factory.EXPECT().NewCatalogRepository().Return(fx.catalogRepo).Maybe()
	fx.tx.factory.EXPECT().NewDeliveryTaskRepository().Return(fx.taskRepo).Maybe()
	fx.tx.factory.EXPECT().NewLedgerRepository().Return(fx.ledgerRepo).Maybe()

	fx.service = NewFulfillmentService(FulfillmentServiceParams{
		TxManager:   fx.tx.txManager,
		CatalogRepo: fx.catalogRepo,
		Publisher:   fx.publisher,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func paidEscrowOrder(customerID uuid.UUID) *entity.Order {
	order := awaitingEscrow(physicalOrder(customerID, "50.00"))
	order.Status = entity.OrderProcessing

	return order
}

func expectTransition(fx fulfillmentServiceFixtures, order *entity.Order, next entity.OrderStatus) {
	fx.orderRepo.EXPECT().
		UpdateOrder(mock.Anything, order.ID, mock.MatchedBy(func(u repository.OrderUpdate) bool {
			return *u.Status == next
		})).
		Return(nil).
		Once()
}

func TestFulfillmentService_ConfirmDelivery_Idempotent(t *testing.T) {
	fx := createTestFulfillmentService(t)

	ctx := context.Background()
	customerID := uuid.New()
	order := paidEscrowOrder(customerID)
	order.Status = entity.OrderShipped

	fx.orderRepo.EXPECT().LockOrder(ctx, order.ID).Return(order, nil).Times(2)
	fx.orderRepo.EXPECT().
		UpdateOrder(ctx, order.ID, mock.MatchedBy(func(u repository.OrderUpdate) bool {
			return *u.Status == entity.OrderPendingPayout && u.CustomerConfirmedAt != nil
		})).
		Return(nil).
		Once()

	confirmed, err := fx.service.ConfirmDelivery(ctx, customerID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPendingPayout, confirmed.Status)
	require.NotNil(t, confirmed.CustomerConfirmedAt)

	again, err := fx.service.ConfirmDelivery(ctx, customerID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPendingPayout, again.Status)
	assert.Equal(t, []string{event.NameOrderStatusChanged}, fx.publisher.names())
}

func TestFulfillmentService_ConfirmDelivery_Rejections(t *testing.T) {
	customerID := uuid.New()

	tests := []struct {
		name     string
		order    func() *entity.Order
		customer uuid.UUID
		wantErr  error
	}{
		{
			name:     "foreign order",
			order:    func() *entity.Order { return paidEscrowOrder(uuid.New()) },
			customer: customerID,
			wantErr:  domainerrors.ErrNotFound,
		},
		{
			name: "direct payment order",
			order: func() *entity.Order {
				o := paidEscrowOrder(customerID)
				o.PaymentMethod = entity.Direct{}

				return o
			},
			customer: customerID,
			wantErr:  domainerrors.ErrInvalidTransition,
		},
		{
			name: "service only order",
			order: func() *entity.Order {
				o := paidEscrowOrder(customerID)
				o.Items[0].ProductID = nil
				o.Items[0].ServicePackageID = ptr(uuid.New())

				return o
			},
			customer: customerID,
			wantErr:  domainerrors.ErrInvalidTransition,
		},
		{
			name: "not yet paid",
			order: func() *entity.Order {
				o := paidEscrowOrder(customerID)
				o.Status = entity.OrderAwaitingEscrowPayment

				return o
			},
			customer: customerID,
			wantErr:  domainerrors.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestFulfillmentService(t)
			order := tt.order()
			fx.orderRepo.EXPECT().LockOrder(mock.Anything, order.ID).Return(order, nil).Once()

			_, err := fx.service.ConfirmDelivery(context.Background(), tt.customer, order.ID)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, fx.publisher.names())
		})
	}
}

func TestFulfillmentService_MarkShipped(t *testing.T) {
	vendor := &entity.Vendor{ID: uuid.New(), UserID: uuid.New()}

	t.Run("vendor with an item ships", func(t *testing.T) {
		fx := createTestFulfillmentService(t)
		order := paidEscrowOrder(uuid.New())
		order.Items[0].VendorID = &vendor.ID

		fx.catalogRepo.EXPECT().FindVendorByUserID(mock.Anything, vendor.UserID).Return(vendor, nil).Once()
		fx.orderRepo.EXPECT().LockOrder(mock.Anything, order.ID).Return(order, nil).Once()
		expectTransition(fx, order, entity.OrderShipped)

		shipped, err := fx.service.MarkShipped(context.Background(), vendor.UserID, order.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderShipped, shipped.Status)
	})

	t.Run("vendor without an item", func(t *testing.T) {
		fx := createTestFulfillmentService(t)
		order := paidEscrowOrder(uuid.New())

		fx.catalogRepo.EXPECT().FindVendorByUserID(mock.Anything, vendor.UserID).Return(vendor, nil).Once()
		fx.orderRepo.EXPECT().LockOrder(mock.Anything, order.ID).Return(order, nil).Once()

		_, err := fx.service.MarkShipped(context.Background(), vendor.UserID, order.ID)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("caller is no vendor", func(t *testing.T) {
		fx := createTestFulfillmentService(t)
		fx.catalogRepo.EXPECT().FindVendorByUserID(mock.Anything, vendor.UserID).Return(nil, repository.ErrVendorNotFound).Once()

		_, err := fx.service.MarkShipped(context.Background(), vendor.UserID, uuid.New())

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestFulfillmentService_Cancel_RestoresStockAndTask(t *testing.T) {
	fx := createTestFulfillmentService(t)

	ctx := context.Background()
	order := paidEscrowOrder(uuid.New())
	order.Items[0].Quantity = 3
	task := pendingTask("10.00")
	task.OrderID = order.ID

	var locks []string
	fx.taskRepo.EXPECT().FindTaskByOrderID(ctx, order.ID).Return(task, nil).Once()
	fx.taskRepo.EXPECT().LockTask(ctx, task.ID).
		Run(func(context.Context, uuid.UUID) { locks = append(locks, "task") }).
		Return(task, nil).
		Once()
	fx.orderRepo.EXPECT().LockOrder(ctx, order.ID).
		Run(func(context.Context, uuid.UUID) { locks = append(locks, "order") }).
		Return(order, nil).
		Once()
	fx.orderRepo.EXPECT().
		UpdateOrder(ctx, order.ID, mock.MatchedBy(func(u repository.OrderUpdate) bool {
			return *u.Status == entity.OrderCancelled && *u.CancelReason == "customer unreachable"
		})).
		Return(nil).
		Once()
	fx.catalogRepo.EXPECT().AdjustStock(ctx, *order.Items[0].ProductID, 3).
		Run(func(context.Context, uuid.UUID, int) { locks = append(locks, "stock") }).
		Return(nil).
		Once()
	fx.taskRepo.EXPECT().
		UpdateTask(ctx, task.ID, mock.MatchedBy(func(u repository.TaskUpdate) bool {
			return *u.Status == entity.TaskCancelled
		})).
		Return(nil).
		Once()
	fx.ledgerRepo.EXPECT().FindTransactionByGatewayTxnID(ctx, entity.TxnPayment, mock.Anything).
		Return(nil, repository.ErrTransactionNotFound).
		Maybe()

	cancelled, err := fx.service.Cancel(ctx, usecase.Actor{UserID: uuid.New(), IsOperator: true}, order.ID, "  customer unreachable ")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, cancelled.Status)
	assert.Equal(t, "customer unreachable", cancelled.CancelReason)
	assert.Equal(t, []string{"task", "order", "stock"}, locks)
}

func TestFulfillmentService_Cancel_RestoresStockInProductOrder(t *testing.T) {
	fx := createTestFulfillmentService(t)

	ctx := context.Background()
	order := awaitingEscrow(physicalOrder(uuid.New(), "50.00"))
	low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	high := uuid.MustParse("ffffffff-0000-0000-0000-000000000000")

	first := *order.Items[0]
	first.ID = uuid.New()
	first.ProductID = &high
	first.Quantity = 1
	second := first
	second.ID = uuid.New()
	second.ProductID = &low
	second.Quantity = 2
	third := first
	third.ID = uuid.New()
	third.Quantity = 4
	order.Items = []*entity.OrderItem{&first, &second, &third}

	var adjusted []uuid.UUID
	record := func(_ context.Context, id uuid.UUID, _ int) { adjusted = append(adjusted, id) }

	fx.taskRepo.EXPECT().FindTaskByOrderID(ctx, order.ID).Return(nil, repository.ErrTaskNotFound).Once()
	fx.orderRepo.EXPECT().LockOrder(ctx, order.ID).Return(order, nil).Once()
	expectTransition(fx, order, entity.OrderCancelled)
	fx.catalogRepo.EXPECT().AdjustStock(ctx, low, 2).Run(record).Return(nil).Once()
	fx.catalogRepo.EXPECT().AdjustStock(ctx, high, 5).Run(record).Return(nil).Once()

	_, err := fx.service.Cancel(ctx, usecase.Actor{UserID: order.UserID}, order.ID, "")

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{low, high}, adjusted)
}

func TestFulfillmentService_Cancel_PaidOrderReversesPayment(t *testing.T) {
	customerID := uuid.New()

	t.Run("payment entry is reversed", func(t *testing.T) {
		fx := createTestFulfillmentService(t)
		order := paidEscrowOrder(customerID)
		order.GatewayTxnID = "GW-TXN-7"
		payment := &entity.Transaction{
			ID:           uuid.New(),
			Kind:         entity.TxnPayment,
			Amount:       order.Total,
			Currency:     order.Currency,
			Status:       entity.TxnCompleted,
			UserID:       &customerID,
			OrderID:      &order.ID,
			GatewayTxnID: order.GatewayTxnID,
		}

		fx.taskRepo.EXPECT().FindTaskByOrderID(mock.Anything, order.ID).Return(nil, repository.ErrTaskNotFound).Once()
		fx.orderRepo.EXPECT().LockOrder(mock.Anything, order.ID).Return(order, nil).Once()
		expectTransition(fx, order, entity.OrderCancelled)
		fx.catalogRepo.EXPECT().AdjustStock(mock.Anything, *order.Items[0].ProductID, 1).Return(nil).Once()
		fx.ledgerRepo.EXPECT().FindTransactionByGatewayTxnID(mock.Anything, entity.TxnPayment, "GW-TXN-7").Return(payment, nil).Once()
		fx.ledgerRepo.EXPECT().
			CreateTransaction(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
				return txn.ReversalOf != nil && *txn.ReversalOf == payment.ID &&
					txn.Amount.Equal(order.Total.Neg()) && txn.Status == entity.TxnCompleted
			})).
			Return(nil).
			Once()

		_, err := fx.service.Cancel(context.Background(), usecase.Actor{UserID: uuid.New(), IsOperator: true}, order.ID, "out of stock")

		require.NoError(t, err)
		assert.Equal(t, []string{event.NameOrderStatusChanged, event.NameRefundDue}, fx.publisher.names())
		refund, ok := fx.publisher.events[1].(event.RefundDue)
		require.True(t, ok)
		assert.Equal(t, order.PublicID, refund.PublicID)
		assert.NotEqual(t, uuid.Nil, refund.ReversalID)
	})

	t.Run("missing payment entry still raises a refund", func(t *testing.T) {
		fx := createTestFulfillmentService(t)
		order := paidEscrowOrder(customerID)
		order.GatewayTxnID = "GW-TXN-8"

		fx.taskRepo.EXPECT().FindTaskByOrderID(mock.Anything, order.ID).Return(nil, repository.ErrTaskNotFound).Once()
		fx.orderRepo.EXPECT().LockOrder(mock.Anything, order.ID).Return(order, nil).Once()
		expectTransition(fx, order, entity.OrderCancelled)
		fx.catalogRepo.EXPECT().AdjustStock(mock.Anything, *order.Items[0].ProductID, 1).Return(nil).Once()
		fx.ledgerRepo.EXPECT().FindTransactionByGatewayTxnID(mock.Anything, entity.TxnPayment, "GW-TXN-8").
			Return(nil, repository.ErrTransactionNotFound).
			Once()

		_, err := fx.service.Cancel(context.Background(), usecase.Actor{UserID: uuid.New(), IsOperator: true}, order.ID, "")

		require.NoError(t, err)
		assert.Equal(t, []string{event.NameOrderStatusChanged, event.NameRefundDue}, fx.publisher.names())
	})

	t.Run("reversal failure rolls back the cancel", func(t *testing.T) {
		fx := createTestFulfillmentService(t)
		order := paidEscrowOrder(customerID)
		order.GatewayTxnID = "GW-TXN-9"

		fx.taskRepo.EXPECT().FindTaskByOrderID(mock.Anything, order.ID).Return(nil, repository.ErrTaskNotFound).Once()
		fx.orderRepo.EXPECT().LockOrder(mock.Anything, order.ID).Return(order, nil).Once()
		expectTransition(fx, order, entity.OrderCancelled)
		fx.catalogRepo.EXPECT().AdjustStock(mock.Anything, *order.Items[0].ProductID, 1).Return(nil).Once()
		fx.ledgerRepo.EXPECT().FindTransactionByGatewayTxnID(mock.Anything, entity.TxnPayment, "GW-TXN-9").
			Return(nil, assert.AnError).
			Once()

		_, err := fx.service.Cancel(context.Background(), usecase.Actor{UserID: uuid.New(), IsOperator: true}, order.ID, "")

		require.ErrorIs(t, err, assert.AnError)
		assert.Empty(t, fx.publisher.names())
	})
}

func TestFulfillmentService_Cancel_CustomerPolicy(t *testing.T) {
	customerID := uuid.New()

	t.Run("unpaid order", func(t *testing.T) {
		fx := createTestFulfillmentService(t)
		order := awaitingEscrow(physicalOrder(customerID, "50.00"))

		fx.taskRepo.EXPECT().FindTaskByOrderID(mock.Anything, order.ID).Return(nil, repository.ErrTaskNotFound).Once()
		fx.orderRepo.EXPECT().LockOrder(mock.Anything, order.ID).Return(order, nil).Once()
		expectTransition(fx, order, entity.OrderCancelled)
		fx.catalogRepo.EXPECT().AdjustStock(mock.Anything, *order.Items[0].ProductID, 1).Return(nil).Once()

		_, err := fx.service.Cancel(context.Background(), usecase.Actor{UserID: customerID}, order.ID, "")

		require.NoError(t, err)
		assert.Equal(t, []string{event.NameOrderStatusChanged}, fx.publisher.names())
	})

	t.Run("paid order", func(t *testing.T) {
		fx := createTestFulfillmentService(t)
		order := paidEscrowOrder(customerID)
		fx.taskRepo.EXPECT().FindTaskByOrderID(mock.Anything, order.ID).Return(nil, repository.ErrTaskNotFound).Once()
		fx.orderRepo.EXPECT().LockOrder(mock.Anything, order.ID).Return(order, nil).Once()

		_, err := fx.service.Cancel(context.Background(), usecase.Actor{UserID: customerID}, order.ID, "")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})
}

func TestFulfillmentService_Dispute(t *testing.T) {
	customerID := uuid.New()

	t.Run("reason is required", func(t *testing.T) {
		fx := createTestFulfillmentService(t)

		_, err := fx.service.Dispute(context.Background(), customerID, uuid.New(), "   ")

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("shipped order is disputed", func(t *testing.T) {
		fx := createTestFulfillmentService(t)
		order := paidEscrowOrder(customerID)
		order.Status = entity.OrderShipped
		fx.orderRepo.EXPECT().LockOrder(mock.Anything, order.ID).Return(order, nil).Once()
		expectTransition(fx, order, entity.OrderDisputed)

		disputed, err := fx.service.Dispute(context.Background(), customerID, order.ID, "wrong colour")

		require.NoError(t, err)
		assert.Equal(t, entity.OrderDisputed, disputed.Status)
		assert.Equal(t, "wrong colour", disputed.DisputeReason)
	})
}

func TestFulfillmentService_SettleOrder(t *testing.T) {
	fx := createTestFulfillmentService(t)
	order := paidEscrowOrder(uuid.New())
	order.Status = entity.OrderPendingPayout
	order.CustomerConfirmedAt = ptr(time.Now())

	fx.orderRepo.EXPECT().LockOrder(mock.Anything, order.ID).Return(order, nil).Once()
	expectTransition(fx, order, entity.OrderCompleted)

	settled, err := fx.service.SettleOrder(context.Background(), uuid.New(), order.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, settled.Status)

	t.Run("settling twice is rejected", func(t *testing.T) {
		fx := createTestFulfillmentService(t)
		fx.orderRepo.EXPECT().LockOrder(mock.Anything, order.ID).Return(order, nil).Once()

		_, err := fx.service.SettleOrder(context.Background(), uuid.New(), order.ID)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})
}
