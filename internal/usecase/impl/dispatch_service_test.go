package impl

import (
	"context"
	"testing"

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

type dispatchServiceFixtures struct {
	service     usecase.DispatchUsecase
	tx          txFixture
	taskRepo    *mockRepo.MockDeliveryTaskRepository
	orderRepo   *mockRepo.MockOrderRepository
	riderRepo   *mockRepo.MockRiderRepository
	catalogRepo *mockRepo.MockCatalogRepository
	ledgerRepo  *mockRepo.MockLedgerRepository
	hasher      *mockSvc.MockCodeHasher
	qrcode      *mockSvc.MockQRCodeService
	random      *mockSvc.MockRandomSource
	metrics     *mockSvc.MockMetricsRecorder
	publisher   *recordingPublisher
}

func createTestDispatchService(t *testing.T) dispatchServiceFixtures {
	fx := dispatchServiceFixtures{
		tx:          newTxFixture(t),
		taskRepo:    mockRepo.NewMockDeliveryTaskRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		riderRepo:   mockRepo.NewMockRiderRepository(t),
		catalogRepo: mockRepo.NewMockCatalogRepository(t),
		ledgerRepo:  mockRepo.NewMockLedgerRepository(t),
		hasher:      mockSvc.NewMockCodeHasher(t),
		qrcode:      mockSvc.NewMockQRCodeService(t),
		random:      mockSvc.NewMockRandomSource(t),
		metrics:     mockSvc.NewMockMetricsRecorder(t),
		publisher:   &recordingPublisher{},
	}

	fx.tx.factory.EXPECT().NewDeliveryTaskRepository().Return(fx.taskRepo).Maybe()
	fx.tx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo).Maybe()
	fx.tx.factory.EXPECT().NewRiderRepository().Return(fx.riderRepo).Maybe()
	fx.tx.factory.EXPECT().NewLedgerRepository().Return(fx.ledgerRepo).Maybe()

	fx.service = NewDispatchService(DispatchServiceParams{
		TxManager:   fx.tx.txManager,
		TaskRepo:    fx.taskRepo,
		OrderRepo:   fx.orderRepo,
		RiderRepo:   fx.riderRepo,
		CatalogRepo: fx.catalogRepo,
		Hasher:      fx.hasher,
		QRCode:      fx.qrcode,
		Random:      fx.random,
		Publisher:   fx.publisher,
		Policy:      newTestPolicy(t),
		Metrics:     fx.metrics,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func availableRider() *entity.RiderProfile {
	return &entity.RiderProfile{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		VehicleType: entity.VehicleMotorcycle,
		IsApproved:  true,
		IsAvailable: true,
	}
}

func pendingTask(fee string) *entity.DeliveryTask {
	return &entity.DeliveryTask{
		ID:          uuid.New(),
		OrderID:     uuid.New(),
		Status:      entity.TaskPendingAssignment,
		Pickup:      entity.Location{Text: "Kente House, Kumasi, Ghana"},
		Dropoff:     entity.Location{Text: "12 Ring Road, Accra"},
		DeliveryFee: dec(fee),
	}
}

// noShuffle leaves the candidate order as returned by the repository.
func noShuffle(random *mockSvc.MockRandomSource) {
	random.EXPECT().Shuffle(mock.Anything, mock.Anything).Return().Maybe()
}

func TestDispatchService_AutoAssign_PrefersBoostedRider(t *testing.T) {
	fx := createTestDispatchService(t)
	noShuffle(fx.random)

	ctx := context.Background()
	task := pendingTask("10.00")
	r1, r2, r3 := availableRider(), availableRider(), availableRider()

	fx.taskRepo.EXPECT().LockTaskSkipLocked(ctx, task.ID).Return(task, nil).Once()
	fx.riderRepo.EXPECT().FindDispatchCandidates(ctx, mock.Anything).Return([]*entity.DispatchCandidate{
		{Rider: r1},
		{Rider: r2, Boosted: true},
		{Rider: r3},
	}, nil).Once()
	fx.taskRepo.EXPECT().
		UpdateTask(ctx, task.ID, mock.MatchedBy(func(u repository.TaskUpdate) bool {
			return *u.Status == entity.TaskAcceptedByRider && *u.RiderID == r2.ID && u.AssignedAt != nil
		})).
		Return(nil).
		Once()
	fx.orderRepo.EXPECT().FindOrderByID(ctx, task.OrderID).
		Return(&entity.Order{ID: task.OrderID, PublicID: "NEXUS-20260101-ABCDEF"}, nil).
		Once()
	fx.metrics.EXPECT().DispatchAttempt(service.OutcomeAssigned).Once()

	ok, err := fx.service.AutoAssign(ctx, task.ID)

	require.NoError(t, err)
	assert.True(t, ok)
	require.Equal(t, []string{event.NameTaskAssigned}, fx.publisher.names())
	assigned, _ := fx.publisher.events[0].(event.TaskAssigned)
	assert.Equal(t, r2.ID, assigned.RiderID)
	assert.Equal(t, r2.UserID, assigned.RiderUserID)
	assert.True(t, assigned.AutoAssigned)
	assert.Equal(t, "NEXUS-20260101-ABCDEF", assigned.OrderPublicID)
}

func TestDispatchService_AutoAssign_NothingToDo(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(fx dispatchServiceFixtures, task *entity.DeliveryTask)
		outcome string
	}{
		{
			name: "task locked by another assignment",
			setup: func(fx dispatchServiceFixtures, task *entity.DeliveryTask) {
				fx.taskRepo.EXPECT().LockTaskSkipLocked(mock.Anything, task.ID).Return(nil, repository.ErrTaskLocked).Once()
			},
			outcome: service.OutcomeSkipped,
		},
		{
			name: "task already assigned",
			setup: func(fx dispatchServiceFixtures, task *entity.DeliveryTask) {
				task.Status = entity.TaskAcceptedByRider
				fx.taskRepo.EXPECT().LockTaskSkipLocked(mock.Anything, task.ID).Return(task, nil).Once()
			},
			outcome: service.OutcomeSkipped,
		},
		{
			name: "no available rider",
			setup: func(fx dispatchServiceFixtures, task *entity.DeliveryTask) {
				noShuffle(fx.random)
				fx.taskRepo.EXPECT().LockTaskSkipLocked(mock.Anything, task.ID).Return(task, nil).Once()
				fx.riderRepo.EXPECT().FindDispatchCandidates(mock.Anything, mock.Anything).Return(nil, nil).Once()
			},
			outcome: service.OutcomeNoRider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDispatchService(t)
			task := pendingTask("10.00")
			tt.setup(fx, task)
			fx.metrics.EXPECT().DispatchAttempt(tt.outcome).Once()

			ok, err := fx.service.AutoAssign(context.Background(), task.ID)

			require.NoError(t, err)
			assert.False(t, ok)
			assert.Empty(t, fx.publisher.names())
		})
	}
}

func TestRankCandidates(t *testing.T) {
	random := mockSvc.NewMockRandomSource(t)
	noShuffle(random)

	busy := &entity.DispatchCandidate{Rider: availableRider(), ActiveLoad: 2}
	idle := &entity.DispatchCandidate{Rider: availableRider()}
	boostedBusy := &entity.DispatchCandidate{Rider: availableRider(), Boosted: true, ActiveLoad: 3}
	light := &entity.DispatchCandidate{Rider: availableRider(), ActiveLoad: 1}

	ranked := rankCandidates([]*entity.DispatchCandidate{busy, idle, boostedBusy, light}, random)

	assert.Equal(t, []*entity.DispatchCandidate{boostedBusy, idle, light, busy}, ranked)
}

func TestDispatchService_CreateTaskForOrder(t *testing.T) {
	t.Run("vendor fulfilled order gets no task", func(t *testing.T) {
		fx := createTestDispatchService(t)
		order := physicalOrder(uuid.New(), "50.00")
		order.Items[0].FulfillmentMethod = entity.FulfillmentVendor
		fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil).Once()

		task, err := fx.service.CreateTaskForOrder(context.Background(), order.ID)

		require.NoError(t, err)
		assert.Nil(t, task)
	})

	t.Run("existing task is returned", func(t *testing.T) {
		fx := createTestDispatchService(t)
		order := physicalOrder(uuid.New(), "50.00")
		vendorID := uuid.New()
		order.Items[0].VendorID = &vendorID
		existing := pendingTask("10.00")

		fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil).Once()
		fx.taskRepo.EXPECT().FindTaskByOrderID(mock.Anything, order.ID).Return(existing, nil).Once()

		task, err := fx.service.CreateTaskForOrder(context.Background(), order.ID)

		require.NoError(t, err)
		assert.Same(t, existing, task)
	})

	t.Run("new task stays pending without riders", func(t *testing.T) {
		fx := createTestDispatchService(t)
		noShuffle(fx.random)

		order := physicalOrder(uuid.New(), "50.00")
		vendorID := uuid.New()
		order.Items[0].VendorID = &vendorID
		order.ShippingSnapshot = "12 Ring Road, Accra"
		order.PlatformDeliveryFee = dec("10.00")
		vendor := &entity.Vendor{ID: vendorID, Name: "Kente House", City: "Kumasi", Country: "Ghana"}

		var created *entity.DeliveryTask
		fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil).Once()
		fx.taskRepo.EXPECT().FindTaskByOrderID(mock.Anything, order.ID).Return(nil, repository.ErrTaskNotFound).Once()
		fx.catalogRepo.EXPECT().FindVendorByID(mock.Anything, vendorID).Return(vendor, nil).Once()
		fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil).Once()
		fx.taskRepo.EXPECT().
			CreateTask(mock.Anything, mock.AnythingOfType("*entity.DeliveryTask")).
			RunAndReturn(func(_ context.Context, task *entity.DeliveryTask) error {
				created = task

				return nil
			}).
			Once()
		fx.taskRepo.EXPECT().
			LockTaskSkipLocked(mock.Anything, mock.Anything).
			RunAndReturn(func(context.Context, uuid.UUID) (*entity.DeliveryTask, error) { return created, nil }).
			Once()
		fx.riderRepo.EXPECT().FindDispatchCandidates(mock.Anything, mock.Anything).Return(nil, nil).Once()
		fx.metrics.EXPECT().DispatchAttempt(service.OutcomeNoRider).Once()
		fx.taskRepo.EXPECT().
			FindTaskByID(mock.Anything, mock.Anything).
			RunAndReturn(func(context.Context, uuid.UUID) (*entity.DeliveryTask, error) { return created, nil }).
			Once()

		task, err := fx.service.CreateTaskForOrder(context.Background(), order.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.TaskPendingAssignment, task.Status)
		assert.Equal(t, "Kente House, Kumasi, Ghana", task.Pickup.Text)
		assert.Equal(t, "12 Ring Road, Accra", task.Dropoff.Text)
		assert.True(t, dec("10.00").Equal(task.DeliveryFee))
		assert.Equal(t, "hashed", task.HandoffCodeHash)
		assert.Nil(t, task.DistanceKm)
	})
}

func TestDispatchService_ClaimTask(t *testing.T) {
	t.Run("available rider claims a pending task", func(t *testing.T) {
		fx := createTestDispatchService(t)
		rider := availableRider()
		task := pendingTask("10.00")

		fx.riderRepo.EXPECT().FindProfileByUserID(mock.Anything, rider.UserID).Return(rider, nil).Once()
		fx.taskRepo.EXPECT().LockTaskSkipLocked(mock.Anything, task.ID).Return(task, nil).Once()
		fx.taskRepo.EXPECT().UpdateTask(mock.Anything, task.ID, mock.Anything).Return(nil).Once()
		fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, task.OrderID).Return(nil, repository.ErrOrderNotFound).Once()

		claimed, err := fx.service.ClaimTask(context.Background(), rider.UserID, task.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.TaskAcceptedByRider, claimed.Status)
		assert.True(t, claimed.IsAssignedTo(rider.ID))
		require.Equal(t, []string{event.NameTaskAssigned}, fx.publisher.names())
		assigned, _ := fx.publisher.events[0].(event.TaskAssigned)
		assert.False(t, assigned.AutoAssigned)
	})

	tests := []struct {
		name    string
		rider   func() *entity.RiderProfile
		lock    func(fx dispatchServiceFixtures, task *entity.DeliveryTask)
		wantErr error
	}{
		{
			name: "unapproved rider",
			rider: func() *entity.RiderProfile {
				r := availableRider()
				r.IsApproved, r.IsAvailable = false, false

				return r
			},
			wantErr: domainerrors.ErrNotApproved,
		},
		{
			name: "unavailable rider",
			rider: func() *entity.RiderProfile {
				r := availableRider()
				r.IsAvailable = false

				return r
			},
			wantErr: domainerrors.ErrNotAvailable,
		},
		{
			name:  "task locked by a concurrent claim",
			rider: availableRider,
			lock: func(fx dispatchServiceFixtures, task *entity.DeliveryTask) {
				fx.taskRepo.EXPECT().LockTaskSkipLocked(mock.Anything, task.ID).Return(nil, repository.ErrTaskLocked).Once()
			},
			wantErr: domainerrors.ErrTaskAlreadyClaimed,
		},
		{
			name:  "task already taken",
			rider: availableRider,
			lock: func(fx dispatchServiceFixtures, task *entity.DeliveryTask) {
				task.Status = entity.TaskAcceptedByRider
				fx.taskRepo.EXPECT().LockTaskSkipLocked(mock.Anything, task.ID).Return(task, nil).Once()
			},
			wantErr: domainerrors.ErrTaskAlreadyClaimed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDispatchService(t)
			rider := tt.rider()
			task := pendingTask("10.00")
			fx.riderRepo.EXPECT().FindProfileByUserID(mock.Anything, rider.UserID).Return(rider, nil).Once()
			if tt.lock != nil {
				tt.lock(fx, task)
			}

			_, err := fx.service.ClaimTask(context.Background(), rider.UserID, task.ID)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, fx.publisher.names())
		})
	}
}

func TestDispatchService_MarkDelivered_SplitsFeeOnce(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	rider := availableRider()
	task := pendingTask("10.00")
	task.Status = entity.TaskOutForDelivery
	task.RiderID = &rider.ID
	task.HandoffCodeHash = "hashed"

	fx.riderRepo.EXPECT().FindProfileByUserID(ctx, rider.UserID).Return(rider, nil).Times(2)
	fx.taskRepo.EXPECT().LockTask(ctx, task.ID).Return(task, nil).Times(2)
	fx.hasher.EXPECT().Check("042137", "hashed").Return(true).Once()
	fx.ledgerRepo.EXPECT().
		CreateTransaction(ctx, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Kind == entity.TxnPlatformCommission &&
				txn.Amount.Equal(dec("2.00")) &&
				txn.Status == entity.TxnCompleted &&
				*txn.OrderID == task.OrderID
		})).
		Return(nil).
		Once()
	fx.taskRepo.EXPECT().
		UpdateTask(ctx, task.ID, mock.MatchedBy(func(u repository.TaskUpdate) bool {
			return *u.Status == entity.TaskDelivered &&
				u.RiderEarning.Equal(dec("8.00")) &&
				u.PlatformCommission.Equal(dec("2.00")) &&
				u.ActualDeliveryTime != nil
		})).
		Return(nil).
		Once()

	delivered, err := fx.service.MarkDelivered(ctx, rider.UserID, task.ID, "042137")

	require.NoError(t, err)
	assert.Equal(t, entity.TaskDelivered, delivered.Status)
	assert.True(t, dec("8.00").Equal(*delivered.RiderEarning))
	assert.True(t, dec("2.00").Equal(*delivered.PlatformCommission))
	require.Equal(t, []string{event.NameTaskDelivered}, fx.publisher.names())

	// A repeated delivery is rejected before any ledger write.
	_, err = fx.service.MarkDelivered(ctx, rider.UserID, task.ID, "")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	assert.Len(t, fx.publisher.names(), 1)
}

func TestDispatchService_MarkDelivered_Rejections(t *testing.T) {
	t.Run("wrong hand-off code", func(t *testing.T) {
		fx := createTestDispatchService(t)
		rider := availableRider()
		task := pendingTask("10.00")
		task.Status = entity.TaskPickedUp
		task.RiderID = &rider.ID
		task.HandoffCodeHash = "hashed"

		fx.riderRepo.EXPECT().FindProfileByUserID(mock.Anything, rider.UserID).Return(rider, nil).Once()
		fx.taskRepo.EXPECT().LockTask(mock.Anything, task.ID).Return(task, nil).Once()
		fx.hasher.EXPECT().Check("000000", "hashed").Return(false).Once()

		_, err := fx.service.MarkDelivered(context.Background(), rider.UserID, task.ID, "000000")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidHandoffCode)
	})

	t.Run("task of another rider", func(t *testing.T) {
		fx := createTestDispatchService(t)
		rider := availableRider()
		other := uuid.New()
		task := pendingTask("10.00")
		task.Status = entity.TaskOutForDelivery
		task.RiderID = &other

		fx.riderRepo.EXPECT().FindProfileByUserID(mock.Anything, rider.UserID).Return(rider, nil).Once()
		fx.taskRepo.EXPECT().LockTask(mock.Anything, task.ID).Return(task, nil).Once()

		_, err := fx.service.MarkDelivered(context.Background(), rider.UserID, task.ID, "")

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestDispatchService_MarkPickedUp_ShipsProcessingOrder(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	rider := availableRider()
	task := pendingTask("10.00")
	task.Status = entity.TaskAcceptedByRider
	task.RiderID = &rider.ID
	order := physicalOrder(uuid.New(), "50.00")
	order.ID = task.OrderID
	order.Status = entity.OrderProcessing

	fx.riderRepo.EXPECT().FindProfileByUserID(ctx, rider.UserID).Return(rider, nil).Once()
	fx.taskRepo.EXPECT().LockTask(ctx, task.ID).Return(task, nil).Once()
	fx.orderRepo.EXPECT().LockOrder(ctx, order.ID).Return(order, nil).Once()
	fx.orderRepo.EXPECT().
		UpdateOrder(ctx, order.ID, mock.MatchedBy(func(u repository.OrderUpdate) bool {
			return *u.Status == entity.OrderShipped
		})).
		Return(nil).
		Once()
	fx.taskRepo.EXPECT().
		UpdateTask(ctx, task.ID, mock.MatchedBy(func(u repository.TaskUpdate) bool {
			return *u.Status == entity.TaskPickedUp && u.ActualPickupTime != nil
		})).
		Return(nil).
		Once()

	picked, err := fx.service.MarkPickedUp(ctx, rider.UserID, task.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.TaskPickedUp, picked.Status)
	assert.Equal(t, entity.OrderShipped, order.Status)
	assert.Equal(t, []string{event.NameTaskPickedUp, event.NameOrderStatusChanged}, fx.publisher.names())
}

func TestDispatchService_HandoffQR(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	customerID := uuid.New()
	order := physicalOrder(customerID, "50.00")
	task := pendingTask("10.00")
	task.OrderID = order.ID
	task.Status = entity.TaskOutForDelivery

	var code string
	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil).Once()
	fx.taskRepo.EXPECT().FindTaskByOrderID(ctx, order.ID).Return(task, nil).Once()
	fx.hasher.EXPECT().
		Hash(mock.Anything).
		RunAndReturn(func(c string) (string, error) {
			code = c

			return "hash-" + c, nil
		}).
		Once()
	fx.taskRepo.EXPECT().
		UpdateTask(ctx, task.ID, mock.MatchedBy(func(u repository.TaskUpdate) bool {
			return u.HandoffCodeHash != nil && *u.HandoffCodeHash == "hash-"+code && u.Status == nil
		})).
		Return(nil).
		Once()
	fx.qrcode.EXPECT().
		GenerateHandoffQR(mock.MatchedBy(func(p service.HandoffPayload) bool {
			return p.TaskID == task.ID && p.Code == code
		})).
		Return([]byte("png"), nil).
		Once()

	png, err := fx.service.HandoffQR(ctx, customerID, order.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
	assert.Len(t, code, handoffCodeDigits)

	t.Run("foreign order is hidden", func(t *testing.T) {
		fx := createTestDispatchService(t)
		fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil).Once()

		_, err := fx.service.HandoffQR(context.Background(), uuid.New(), order.ID)

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}
