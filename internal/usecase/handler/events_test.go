package handler

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"nexus/internal/domain/constants"
	"nexus/internal/domain/entity"
	"nexus/internal/domain/event"
	mockRepo "nexus/internal/mocks/repository"
	mockSvc "nexus/internal/mocks/service"
	mockUsecase "nexus/internal/mocks/usecase"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixtures struct {
	bus           *event.Bus
	notifications *mockUsecase.MockNotificationUsecase
	dispatch      *mockUsecase.MockDispatchUsecase
	jobs          *mockUsecase.MockJobQueue
	orderRepo     *mockRepo.MockOrderRepository
	catalogRepo   *mockRepo.MockCatalogRepository
	riderRepo     *mockRepo.MockRiderRepository
	metrics       *mockSvc.MockMetricsRecorder
}

func createTestHandlers(t *testing.T) handlerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx := handlerFixtures{
		bus:           event.NewBus(logger),
		notifications: mockUsecase.NewMockNotificationUsecase(t),
		dispatch:      mockUsecase.NewMockDispatchUsecase(t),
		jobs:          mockUsecase.NewMockJobQueue(t),
		orderRepo:     mockRepo.NewMockOrderRepository(t),
		catalogRepo:   mockRepo.NewMockCatalogRepository(t),
		riderRepo:     mockRepo.NewMockRiderRepository(t),
		metrics:       mockSvc.NewMockMetricsRecorder(t),
	}

	Register(fx.bus, Deps{
		Notifications: fx.notifications,
		Dispatch:      fx.dispatch,
		Jobs:          fx.jobs,
		OrderRepo:     fx.orderRepo,
		CatalogRepo:   fx.catalogRepo,
		RiderRepo:     fx.riderRepo,
		Metrics:       fx.metrics,
		Logger:        logger,
	})

	return fx
}

func notificationFor(recipient uuid.UUID, kind entity.NotificationKind, contains string) any {
	return mock.MatchedBy(func(n *entity.Notification) bool {
		return n.RecipientID == recipient && n.Kind == kind && strings.Contains(n.Message, contains)
	})
}

func TestRegister_Table(t *testing.T) {
	fx := createTestHandlers(t)

	assert.Equal(t, 2, fx.bus.Handlers(event.NameOrderPaid))
	assert.Equal(t, 2, fx.bus.Handlers(event.NameOrderStatusChanged))
	for _, name := range []string{
		event.NameOrderPlaced, event.NamePaymentFlagged, event.NameTaskAssigned, event.NameTaskPickedUp,
		event.NameTaskDelivered, event.NameRiderApproved, event.NameRiderDeapproved,
		event.NameRiderAvailabilityChanged, event.NamePayoutRequested, event.NamePayoutStatusChanged,
		event.NameJobDeadLettered, event.NameRefundDue,
	} {
		assert.Equal(t, 1, fx.bus.Handlers(name), name)
	}

	assert.Panics(t, func() {
		fx.bus.Register(event.NameOrderPlaced, func(context.Context, event.Event) error { return nil })
	})
}

func TestOnOrderPaid_NotifiesAndDispatches(t *testing.T) {
	fx := createTestHandlers(t)

	ctx := context.Background()
	evt := event.OrderPaid{
		OrderID:  uuid.New(),
		PublicID: "NEXUS-20260101-ABCDEF",
		UserID:   uuid.New(),
		Amount:   decimal.RequireFromString("62.5"),
		Currency: "GHS",
	}

	fx.notifications.EXPECT().
		Notify(ctx, notificationFor(evt.UserID, entity.NotificationPaymentReceived, "62.50 GHS for order NEXUS-20260101-ABCDEF")).
		Return(nil).
		Once()
	fx.dispatch.EXPECT().CreateTaskForOrder(ctx, evt.OrderID).Return(nil, nil).Once()

	require.NoError(t, fx.bus.Publish(ctx, evt))
}

func TestOnOrderPaid_DispatchFailureIsQueued(t *testing.T) {
	fx := createTestHandlers(t)

	evt := event.OrderPaid{OrderID: uuid.New(), UserID: uuid.New()}
	fx.notifications.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Once()
	fx.dispatch.EXPECT().CreateTaskForOrder(mock.Anything, evt.OrderID).Return(nil, errors.New("db down")).Once()
	fx.jobs.EXPECT().
		Enqueue(mock.Anything, constants.JobDispatchCreateTask, evt.OrderID.String(), usecase.CreateTaskPayload{OrderID: evt.OrderID}).
		Return(&entity.Job{}, nil).
		Once()

	require.NoError(t, fx.bus.Publish(context.Background(), evt))
}

func TestOnOrderPaid_DispatchAndQueueFailureIsReported(t *testing.T) {
	fx := createTestHandlers(t)

	evt := event.OrderPaid{OrderID: uuid.New(), UserID: uuid.New()}
	fx.notifications.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Once()
	fx.dispatch.EXPECT().CreateTaskForOrder(mock.Anything, evt.OrderID).Return(nil, errors.New("db down")).Once()
	fx.jobs.EXPECT().
		Enqueue(mock.Anything, constants.JobDispatchCreateTask, evt.OrderID.String(), mock.Anything).
		Return(nil, errors.New("db still down")).
		Once()

	err := fx.bus.Publish(context.Background(), evt)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "handle order.paid")
	assert.Contains(t, err.Error(), "db still down")
}

func TestOnOrderStatusChanged(t *testing.T) {
	t.Run("customer is told the new status", func(t *testing.T) {
		fx := createTestHandlers(t)
		evt := event.OrderStatusChanged{
			OrderID:  uuid.New(),
			PublicID: "NEXUS-20260101-ABCDEF",
			UserID:   uuid.New(),
			From:     entity.OrderProcessing,
			To:       entity.OrderPendingPayout,
		}

		fx.metrics.EXPECT().OrderTransition("PROCESSING", "PENDING_PAYOUT").Once()
		fx.notifications.EXPECT().
			Notify(mock.Anything, notificationFor(evt.UserID, entity.NotificationOrderStatus, "is now pending payout.")).
			Return(nil).
			Once()

		require.NoError(t, fx.bus.Publish(context.Background(), evt))
	})

	t.Run("payment statuses are left to the payment notifications", func(t *testing.T) {
		fx := createTestHandlers(t)
		fx.metrics.EXPECT().OrderTransition("AWAITING_ESCROW_PAYMENT", "PROCESSING").Once()

		require.NoError(t, fx.bus.Publish(context.Background(), event.OrderStatusChanged{
			From: entity.OrderAwaitingEscrowPayment,
			To:   entity.OrderProcessing,
		}))
	})
}

func TestOnRefundDue_AlertsStaff(t *testing.T) {
	orderID := uuid.New()

	t.Run("reversed payment", func(t *testing.T) {
		fx := createTestHandlers(t)
		fx.notifications.EXPECT().
			NotifyStaff(mock.Anything, entity.NotificationPaymentReview,
				"Order NEXUS-20260101-ABCDEF was cancelled after payment. Refund 50.00 GHS to the customer.",
				"/orders/"+orderID.String()).
			Return(nil).
			Once()

		require.NoError(t, fx.bus.Publish(context.Background(), event.RefundDue{
			OrderID:    orderID,
			PublicID:   "NEXUS-20260101-ABCDEF",
			Amount:     decimal.NewFromInt(50),
			Currency:   "GHS",
			ReversalID: uuid.New(),
		}))
	})

	t.Run("no payment entry", func(t *testing.T) {
		fx := createTestHandlers(t)
		fx.notifications.EXPECT().
			NotifyStaff(mock.Anything, entity.NotificationPaymentReview,
				mock.MatchedBy(func(msg string) bool { return strings.HasSuffix(msg, "No payment entry was found to reverse.") }),
				mock.Anything).
			Return(nil).
			Once()

		require.NoError(t, fx.bus.Publish(context.Background(), event.RefundDue{
			OrderID:  orderID,
			PublicID: "NEXUS-20260101-ABCDEF",
			Amount:   decimal.NewFromInt(50),
			Currency: "GHS",
		}))
	})
}

func TestOnTaskAssigned_NotifiesRiderAndCustomer(t *testing.T) {
	fx := createTestHandlers(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), PublicID: "NEXUS-20260101-ABCDEF", UserID: uuid.New()}
	rider := &entity.RiderProfile{ID: uuid.New(), UserID: uuid.New(), VehicleType: entity.VehicleMotorcycle, VehicleRegistration: "GR-1"}
	evt := event.TaskAssigned{
		TaskID:        uuid.New(),
		OrderID:       order.ID,
		RiderID:       rider.ID,
		RiderUserID:   rider.UserID,
		PickupText:    "Kente House, Kumasi",
		OrderPublicID: order.PublicID,
	}

	fx.notifications.EXPECT().
		Notify(ctx, notificationFor(rider.UserID, entity.NotificationTaskAssigned, "Pickup: Kente House, Kumasi.")).
		Return(nil).
		Once()
	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil).Once()
	fx.riderRepo.EXPECT().FindProfileByID(ctx, rider.ID).Return(rider, nil).Once()
	fx.notifications.EXPECT().
		Notify(ctx, notificationFor(order.UserID, entity.NotificationTaskAssigned, "motorcycle (GR-1)")).
		Return(nil).
		Once()

	require.NoError(t, fx.bus.Publish(ctx, evt))
}

func TestOnTaskDelivered_NotifiesCustomerAndEachVendor(t *testing.T) {
	fx := createTestHandlers(t)

	ctx := context.Background()
	vendor := &entity.Vendor{ID: uuid.New(), UserID: uuid.New()}
	missingVendor := uuid.New()
	order := &entity.Order{
		ID:       uuid.New(),
		PublicID: "NEXUS-20260101-ABCDEF",
		UserID:   uuid.New(),
		Items: []*entity.OrderItem{
			{VendorID: &vendor.ID},
			{VendorID: &vendor.ID},
			{VendorID: &missingVendor},
			{},
		},
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil).Once()
	fx.catalogRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil).Once()
	fx.catalogRepo.EXPECT().FindVendorByID(ctx, missingVendor).Return(nil, errors.New("gone")).Once()
	fx.notifications.EXPECT().
		Notify(ctx,
			notificationFor(order.UserID, entity.NotificationTaskDelivered, "Please confirm receipt."),
			notificationFor(vendor.UserID, entity.NotificationTaskDelivered, "was delivered."),
		).
		Return(nil).
		Once()

	require.NoError(t, fx.bus.Publish(ctx, event.TaskDelivered{TaskID: uuid.New(), OrderID: order.ID}))
}

func TestOnRiderAvailabilityChanged(t *testing.T) {
	t.Run("available rider triggers assignment", func(t *testing.T) {
		fx := createTestHandlers(t)
		riderID := uuid.New()

		fx.jobs.EXPECT().
			Enqueue(mock.Anything, constants.JobDispatchAssignPending,
				mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, riderID.String()+":") }),
				usecase.AssignPendingPayload{RiderID: riderID, Limit: assignPendingBatch}).
			Return(&entity.Job{}, nil).
			Once()

		require.NoError(t, fx.bus.Publish(context.Background(), event.RiderAvailabilityChanged{RiderID: riderID, Available: true}))
	})

	t.Run("going offline does nothing", func(t *testing.T) {
		fx := createTestHandlers(t)

		require.NoError(t, fx.bus.Publish(context.Background(), event.RiderAvailabilityChanged{RiderID: uuid.New()}))
	})
}

func TestOnPayoutEvents(t *testing.T) {
	fx := createTestHandlers(t)

	b := entity.Beneficiary{Kind: entity.BeneficiaryVendor, ProfileID: uuid.New(), UserID: uuid.New()}
	fx.notifications.EXPECT().
		NotifyStaff(mock.Anything, entity.NotificationPayout, "New vendor payout request of 40.00.", mock.Anything).
		Return(nil).
		Once()
	fx.notifications.EXPECT().
		Notify(mock.Anything, notificationFor(b.UserID, entity.NotificationPayout, "is now rejected. Note: details incomplete")).
		Return(nil).
		Once()

	require.NoError(t, fx.bus.Publish(context.Background(),
		event.PayoutRequested{RequestID: uuid.New(), Beneficiary: b, Amount: decimal.NewFromInt(40)},
		event.PayoutStatusChanged{
			RequestID:   uuid.New(),
			Beneficiary: b,
			Amount:      decimal.NewFromInt(40),
			From:        entity.PayoutPending,
			To:          entity.PayoutRejected,
			Note:        "details incomplete",
		},
	))
}

func TestOnJobDeadLettered(t *testing.T) {
	t.Run("staff is alerted", func(t *testing.T) {
		fx := createTestHandlers(t)
		fx.notifications.EXPECT().
			NotifyStaff(mock.Anything, entity.NotificationJobFailed,
				"Background job media.enhance_image (img-1) failed permanently: timeout", "").
			Return(nil).
			Once()

		require.NoError(t, fx.bus.Publish(context.Background(), event.JobDeadLettered{
			JobID:          uuid.New(),
			Name:           constants.JobMediaEnhanceImage,
			IdempotencyKey: "img-1",
			LastError:      "timeout",
		}))
	})

	t.Run("dead push jobs are only logged", func(t *testing.T) {
		fx := createTestHandlers(t)

		require.NoError(t, fx.bus.Publish(context.Background(), event.JobDeadLettered{
			JobID: uuid.New(),
			Name:  constants.JobNotificationPush,
		}))
	})
}
