package impl

import (
	"context"
	"sync"
	"testing"

	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/event"
	"nexus/internal/domain/repository"
	mockRepo "nexus/internal/mocks/repository"
	mockSvc "nexus/internal/mocks/service"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	tx          txFixture
	orderRepo   *mockRepo.MockOrderRepository
	cartRepo    *mockRepo.MockCartRepository
	catalogRepo *mockRepo.MockCatalogRepository
	addressRepo *mockRepo.MockAddressRepository
	metrics     *mockSvc.MockMetricsRecorder
	publisher   *recordingPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fx := orderServiceFixtures{
		tx:          newTxFixture(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		cartRepo:    mockRepo.NewMockCartRepository(t),
		catalogRepo: mockRepo.NewMockCatalogRepository(t),
		addressRepo: mockRepo.NewMockAddressRepository(t),
		metrics:     mockSvc.NewMockMetricsRecorder(t),
		publisher:   &recordingPublisher{},
	}

	fx.tx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo).Maybe()
	fx.tx.factory.EXPECT().NewCartRepository().Return(fx.cartRepo).Maybe()
	fx.tx.factory.EXPECT().NewCatalogRepository().Return(fx.catalogRepo).Maybe()
	fx.tx.factory.EXPECT().NewAddressRepository().Return(fx.addressRepo).Maybe()

	fx.service = NewOrderService(OrderServiceParams{
		TxManager: fx.tx.txManager,
		OrderRepo: fx.orderRepo,
		Publisher: fx.publisher,
		Policy:    newTestPolicy(t),
		Metrics:   fx.metrics,
		Logger:    newDiscardLogger(),
	})

	return fx
}

func approvedVendor(method entity.FulfillmentMethod) *entity.Vendor {
	return &entity.Vendor{
		ID:                       uuid.New(),
		UserID:                   uuid.New(),
		Name:                     "Kente House",
		City:                     "Accra",
		VerificationStatus:       entity.VerificationApproved,
		DefaultFulfillmentMethod: method,
	}
}

func physicalProduct(vendor *entity.Vendor, stock int, price, category string) *entity.Product {
	return &entity.Product{
		ID:           uuid.New(),
		VendorID:     vendor.ID,
		Vendor:       vendor,
		Name:         "Kente cloth",
		Kind:         entity.ProductPhysical,
		Stock:        &stock,
		Price:        dec(price),
		CategorySlug: category,
		IsActive:     true,
	}
}

func cartWith(userID uuid.UUID, items ...*entity.CartItem) *entity.Cart {
	return &entity.Cart{ID: uuid.New(), UserID: userID, Status: entity.CartOpen, Items: items}
}

func (fx orderServiceFixtures) expectAddress(userID uuid.UUID) uuid.UUID {
	address := &entity.Address{ID: uuid.New(), UserID: userID, FullName: "Ama Mensah", City: "Accra", Latitude: ptr(5.6037), Longitude: ptr(-0.1870)}
	fx.addressRepo.EXPECT().FindAddressByID(mock.Anything, address.ID).Return(address, nil).Maybe()

	return address.ID
}

func TestOrderService_Assemble_FreezesTotals(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := fx.expectAddress(userID)

	nexusProduct := physicalProduct(approvedVendor(entity.FulfillmentNexus), 5, "50.00", "textiles")
	vendorProduct := physicalProduct(approvedVendor(entity.FulfillmentVendor), 5, "20.00", "textiles")
	vendorProduct.VendorDeliveryFee = ptr(dec("4.00"))
	cart := cartWith(userID,
		&entity.CartItem{ID: uuid.New(), ProductID: &nexusProduct.ID, Quantity: 2},
		&entity.CartItem{ID: uuid.New(), ProductID: &vendorProduct.ID, Quantity: 1},
	)

	fx.cartRepo.EXPECT().FindOpenCart(ctx, userID).Return(cart, nil)
	fx.catalogRepo.EXPECT().
		LockProducts(ctx, []uuid.UUID{nexusProduct.ID, vendorProduct.ID}).
		Return(map[uuid.UUID]*entity.Product{nexusProduct.ID: nexusProduct, vendorProduct.ID: vendorProduct}, nil)
	fx.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.catalogRepo.EXPECT().AdjustStock(ctx, nexusProduct.ID, -2).Return(nil)
	fx.catalogRepo.EXPECT().AdjustStock(ctx, vendorProduct.ID, -1).Return(nil)
	fx.cartRepo.EXPECT().MarkOrdered(ctx, cart.ID).Return(nil)
	fx.metrics.EXPECT().OrderPlaced("").Return()

	assembled, err := fx.service.Assemble(ctx, userID, &usecase.AssembleOrderInput{
		BillingAddressID:  addressID,
		ShippingAddressID: &addressID,
	})

	require.NoError(t, err)
	order := assembled.Order
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, "120.00", order.Subtotal.StringFixed(2))
	// one Nexus-fulfilled line: 10.00 + 2.50
	assert.Equal(t, "12.50", order.PlatformDeliveryFee.StringFixed(2))
	assert.Equal(t, "4.00", order.VendorDeliveryFeeSum.StringFixed(2))
	assert.Equal(t, "136.50", order.Total.StringFixed(2))
	assert.Equal(t, "GHS", order.Currency)
	assert.NotNil(t, order.ShippingLatitude)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, []entity.PaymentMethod{entity.Escrow{}}, assembled.EligibleMethods)
	assert.Equal(t, []string{event.NameOrderPlaced}, fx.publisher.names())
}

func TestOrderService_Assemble_OversellPrevention(t *testing.T) {
	fx := createTestOrderService(t)

	vendor := approvedVendor(entity.FulfillmentNexus)
	product := physicalProduct(vendor, 1, "40.00", "textiles")
	stock := 1

	fx.catalogRepo.EXPECT().
		LockProducts(mock.Anything, []uuid.UUID{product.ID}).
		RunAndReturn(func(context.Context, []uuid.UUID) (map[uuid.UUID]*entity.Product, error) {
			snapshot := *product
			snapshot.Stock = ptr(stock)

			return map[uuid.UUID]*entity.Product{product.ID: &snapshot}, nil
		})
	fx.catalogRepo.EXPECT().
		AdjustStock(mock.Anything, product.ID, -1).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, delta int) error {
			stock += delta

			return nil
		}).
		Once()
	fx.orderRepo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil).Once()
	fx.cartRepo.EXPECT().MarkOrdered(mock.Anything, mock.Anything).Return(nil).Once()
	fx.metrics.EXPECT().OrderPlaced("").Return().Once()

	users := []uuid.UUID{uuid.New(), uuid.New()}
	inputs := make([]*usecase.AssembleOrderInput, len(users))
	for i, userID := range users {
		addressID := fx.expectAddress(userID)
		inputs[i] = &usecase.AssembleOrderInput{BillingAddressID: addressID, ShippingAddressID: &addressID}
		fx.cartRepo.EXPECT().
			FindOpenCart(mock.Anything, userID).
			Return(cartWith(userID, &entity.CartItem{ID: uuid.New(), ProductID: &product.ID, Quantity: 1}), nil)
	}

	var (
		wg      sync.WaitGroup
		results = make([]*usecase.AssembledOrder, len(users))
		errs    = make([]error, len(users))
	)
	for i := range users {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = fx.service.Assemble(context.Background(), users[i], inputs[i])
		}(i)
	}
	wg.Wait()

	var succeeded, rejected int
	for i := range users {
		if errs[i] == nil {
			succeeded++
			assert.Equal(t, "52.50", results[i].Order.Total.StringFixed(2))

			continue
		}
		assert.ErrorIs(t, errs[i], domainerrors.ErrInsufficientStock)
		rejected++
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, 0, stock)
}

func TestOrderService_Assemble_DirectPaymentEligibility(t *testing.T) {
	t.Run("service-only cart may pay directly", func(t *testing.T) {
		fx := createTestOrderService(t)

		ctx := context.Background()
		userID := uuid.New()
		addressID := fx.expectAddress(userID)
		pkg := &entity.ServicePackage{
			ID:         uuid.New(),
			ProviderID: uuid.New(),
			Provider:   &entity.ServiceProvider{IsApproved: true},
			Title:      "Logo design",
			Price:      dec("300.00"),
			IsActive:   true,
		}
		cart := cartWith(userID, &entity.CartItem{ID: uuid.New(), ServicePackageID: &pkg.ID, Quantity: 1})

		fx.cartRepo.EXPECT().FindOpenCart(ctx, userID).Return(cart, nil)
		fx.catalogRepo.EXPECT().LockProducts(ctx, []uuid.UUID{}).Return(map[uuid.UUID]*entity.Product{}, nil)
		fx.catalogRepo.EXPECT().FindServicePackageByID(ctx, pkg.ID).Return(pkg, nil)
		fx.orderRepo.EXPECT().CreateOrder(ctx, mock.Anything).Return(nil)
		fx.cartRepo.EXPECT().MarkOrdered(ctx, cart.ID).Return(nil)
		fx.orderRepo.EXPECT().
			UpdateOrder(ctx, mock.Anything, mock.MatchedBy(func(u repository.OrderUpdate) bool {
				return u.Status != nil && *u.Status == entity.OrderAwaitingDirectPayment && u.GatewayRef == nil
			})).
			Return(nil)
		fx.metrics.EXPECT().OrderPlaced("direct").Return()

		assembled, err := fx.service.Assemble(ctx, userID, &usecase.AssembleOrderInput{
			BillingAddressID: addressID,
			PaymentMethod:    entity.Direct{},
		})

		require.NoError(t, err)
		assert.Equal(t, entity.OrderAwaitingDirectPayment, assembled.Order.Status)
		assert.Equal(t, entity.Direct{}, assembled.Order.PaymentMethod)
		assert.True(t, assembled.Order.PlatformDeliveryFee.IsZero())
		assert.Equal(t, []string{event.NameOrderPlaced, event.NameOrderStatusChanged}, fx.publisher.names())
	})

	t.Run("non-negotiable physical cart may not", func(t *testing.T) {
		fx := createTestOrderService(t)

		ctx := context.Background()
		userID := uuid.New()
		addressID := fx.expectAddress(userID)
		product := physicalProduct(approvedVendor(entity.FulfillmentVendor), 3, "25.00", "textiles")
		cart := cartWith(userID, &entity.CartItem{ID: uuid.New(), ProductID: &product.ID, Quantity: 1})

		fx.cartRepo.EXPECT().FindOpenCart(ctx, userID).Return(cart, nil)
		fx.catalogRepo.EXPECT().
			LockProducts(ctx, []uuid.UUID{product.ID}).
			Return(map[uuid.UUID]*entity.Product{product.ID: product}, nil)
		fx.orderRepo.EXPECT().CreateOrder(ctx, mock.Anything).Return(nil)
		fx.catalogRepo.EXPECT().AdjustStock(ctx, product.ID, -1).Return(nil)
		fx.cartRepo.EXPECT().MarkOrdered(ctx, cart.ID).Return(nil)

		_, err := fx.service.Assemble(ctx, userID, &usecase.AssembleOrderInput{
			BillingAddressID:  addressID,
			ShippingAddressID: &addressID,
			PaymentMethod:     entity.Direct{},
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrMethodNotEligible)
		assert.Empty(t, fx.publisher.names())
	})
}

func TestOrderService_Assemble_Failures(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		setup   func(fx orderServiceFixtures) *usecase.AssembleOrderInput
		wantErr error
	}{
		{
			name: "no open cart",
			setup: func(fx orderServiceFixtures) *usecase.AssembleOrderInput {
				fx.cartRepo.EXPECT().FindOpenCart(mock.Anything, userID).Return(nil, repository.ErrCartNotFound)

				return &usecase.AssembleOrderInput{BillingAddressID: uuid.New()}
			},
			wantErr: domainerrors.ErrEmptyCart,
		},
		{
			name: "empty cart",
			setup: func(fx orderServiceFixtures) *usecase.AssembleOrderInput {
				fx.cartRepo.EXPECT().FindOpenCart(mock.Anything, userID).Return(cartWith(userID), nil)

				return &usecase.AssembleOrderInput{BillingAddressID: uuid.New()}
			},
			wantErr: domainerrors.ErrEmptyCart,
		},
		{
			name: "inactive product",
			setup: func(fx orderServiceFixtures) *usecase.AssembleOrderInput {
				product := physicalProduct(approvedVendor(entity.FulfillmentNexus), 3, "10.00", "textiles")
				product.IsActive = false
				fx.cartRepo.EXPECT().
					FindOpenCart(mock.Anything, userID).
					Return(cartWith(userID, &entity.CartItem{ProductID: &product.ID, Quantity: 1}), nil)
				fx.catalogRepo.EXPECT().
					LockProducts(mock.Anything, mock.Anything).
					Return(map[uuid.UUID]*entity.Product{product.ID: product}, nil)

				return &usecase.AssembleOrderInput{BillingAddressID: uuid.New()}
			},
			wantErr: domainerrors.ErrUnavailable,
		},
		{
			name: "foreign billing address",
			setup: func(fx orderServiceFixtures) *usecase.AssembleOrderInput {
				product := physicalProduct(approvedVendor(entity.FulfillmentNexus), 3, "10.00", "textiles")
				fx.cartRepo.EXPECT().
					FindOpenCart(mock.Anything, userID).
					Return(cartWith(userID, &entity.CartItem{ProductID: &product.ID, Quantity: 1}), nil)
				fx.catalogRepo.EXPECT().
					LockProducts(mock.Anything, mock.Anything).
					Return(map[uuid.UUID]*entity.Product{product.ID: product}, nil)
				foreign := fx.expectAddress(uuid.New())

				return &usecase.AssembleOrderInput{BillingAddressID: foreign}
			},
			wantErr: domainerrors.ErrInvalidAddress,
		},
		{
			name: "physical item without shipping address",
			setup: func(fx orderServiceFixtures) *usecase.AssembleOrderInput {
				product := physicalProduct(approvedVendor(entity.FulfillmentNexus), 3, "10.00", "textiles")
				fx.cartRepo.EXPECT().
					FindOpenCart(mock.Anything, userID).
					Return(cartWith(userID, &entity.CartItem{ProductID: &product.ID, Quantity: 1}), nil)
				fx.catalogRepo.EXPECT().
					LockProducts(mock.Anything, mock.Anything).
					Return(map[uuid.UUID]*entity.Product{product.ID: product}, nil)

				return &usecase.AssembleOrderInput{BillingAddressID: fx.expectAddress(userID)}
			},
			wantErr: domainerrors.ErrInvalidAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			input := tt.setup(fx)

			_, err := fx.service.Assemble(context.Background(), userID, input)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, fx.publisher.names())
		})
	}
}

func TestOrderService_GetOrder_HidesForeignOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New()}
	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.GetOrder(ctx, uuid.New(), order.ID)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
