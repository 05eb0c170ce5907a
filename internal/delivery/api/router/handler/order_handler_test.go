package handler

import (
	"net/http"
	"testing"

	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	mockUsecase "nexus/internal/mocks/usecase"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderHandlerFixtures struct {
	handler  *OrderHandler
	orders   *mockUsecase.MockOrderUsecase
	payments *mockUsecase.MockPaymentUsecase
	dispatch *mockUsecase.MockDispatchUsecase
}

func createTestOrderHandler(t *testing.T) orderHandlerFixtures {
	fx := orderHandlerFixtures{
		orders:   mockUsecase.NewMockOrderUsecase(t),
		payments: mockUsecase.NewMockPaymentUsecase(t),
		dispatch: mockUsecase.NewMockDispatchUsecase(t),
	}
	fx.handler = NewOrderHandler(OrderHandlerParams{
		OrderUC:    fx.orders,
		PaymentUC:  fx.payments,
		DispatchUC: fx.dispatch,
	})

	return fx
}

func TestOrderHandler_Assemble(t *testing.T) {
	fx := createTestOrderHandler(t)

	userID := uuid.New()
	billingID := uuid.New()
	order := &entity.Order{
		ID:       uuid.New(),
		PublicID: "NEXUS-20260101-ABCDEF",
		Status:   entity.OrderAwaitingEscrowPayment,
		Currency: "GHS",
		Total:    decimal.RequireFromString("62.50"),
	}

	fx.orders.EXPECT().
		Assemble(mock.Anything, userID, &usecase.AssembleOrderInput{
			BillingAddressID: billingID,
			PaymentMethod:    entity.Escrow{},
		}).
		Return(&usecase.AssembledOrder{Order: order, EligibleMethods: []entity.PaymentMethod{entity.Escrow{}, entity.Direct{}}}, nil).
		Once()

	rec := serve(t, testRoute{http.MethodPost, "/orders", fx.handler.Assemble, customer(userID)},
		http.MethodPost, "/orders", `{"billing_address_id":"`+billingID.String()+`","payment_method":"escrow"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	out := decodeData[assembledOrderResponse](t, rec)
	assert.Equal(t, "NEXUS-20260101-ABCDEF", out.Order.PublicID)
	assert.Equal(t, []string{"escrow", "direct"}, out.EligibleMethods)
	assert.True(t, decimal.RequireFromString("62.5").Equal(out.Order.Total))
}

func TestOrderHandler_Assemble_Rejected(t *testing.T) {
	userID := uuid.New()

	t.Run("unknown payment method", func(t *testing.T) {
		fx := createTestOrderHandler(t)

		rec := serve(t, testRoute{http.MethodPost, "/orders", fx.handler.Assemble, customer(userID)},
			http.MethodPost, "/orders", `{"billing_address_id":"`+uuid.NewString()+`","payment_method":"cash"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})

	t.Run("missing billing address", func(t *testing.T) {
		fx := createTestOrderHandler(t)

		rec := serve(t, testRoute{http.MethodPost, "/orders", fx.handler.Assemble, customer(userID)},
			http.MethodPost, "/orders", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("domain error is rendered", func(t *testing.T) {
		fx := createTestOrderHandler(t)
		fx.orders.EXPECT().Assemble(mock.Anything, userID, mock.Anything).Return(nil, domainerrors.ErrInsufficientStock).Once()

		rec := serve(t, testRoute{http.MethodPost, "/orders", fx.handler.Assemble, customer(userID)},
			http.MethodPost, "/orders", `{"billing_address_id":"`+uuid.NewString()+`"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "INSUFFICIENT_STOCK", decode(t, rec).Error.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		fx := createTestOrderHandler(t)

		rec := serve(t, testRoute{http.MethodPost, "/orders", fx.handler.Assemble, nil},
			http.MethodPost, "/orders", `{}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOrderHandler_ListOrders_ClampsPage(t *testing.T) {
	fx := createTestOrderHandler(t)

	userID := uuid.New()
	fx.orders.EXPECT().ListOrders(mock.Anything, userID, maxPageSize, 40).Return([]*entity.Order{{ID: uuid.New()}}, nil).Once()

	rec := serve(t, testRoute{http.MethodGet, "/orders", fx.handler.ListOrders, customer(userID)},
		http.MethodGet, "/orders?limit=500&offset=40", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, maxPageSize, env.Meta.Limit)
	assert.Equal(t, 40, env.Meta.Offset)
}

func TestOrderHandler_GetOrder_InvalidID(t *testing.T) {
	fx := createTestOrderHandler(t)

	rec := serve(t, testRoute{http.MethodGet, "/orders/:id", fx.handler.GetOrder, customer(uuid.New())},
		http.MethodGet, "/orders/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid id", decode(t, rec).Error.Details)
}

func TestOrderHandler_InitiatePayment(t *testing.T) {
	fx := createTestOrderHandler(t)

	userID, orderID := uuid.New(), uuid.New()
	fx.payments.EXPECT().Initiate(mock.Anything, userID, orderID).Return("https://checkout.example/abc", nil).Once()

	rec := serve(t, testRoute{http.MethodPost, "/orders/:id/payment", fx.handler.InitiatePayment, customer(userID)},
		http.MethodPost, "/orders/"+orderID.String()+"/payment", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"authorization_url": "https://checkout.example/abc"}, decodeData[map[string]string](t, rec))
}

func TestOrderHandler_ChoosePayment(t *testing.T) {
	fx := createTestOrderHandler(t)

	userID, orderID := uuid.New(), uuid.New()
	fx.payments.EXPECT().
		Choose(mock.Anything, userID, orderID, entity.Direct{}).
		Return(&entity.Order{ID: orderID, PaymentMethod: entity.Direct{}, Status: entity.OrderAwaitingDirectPayment}, nil).
		Once()

	rec := serve(t, testRoute{http.MethodPut, "/orders/:id/payment-method", fx.handler.ChoosePayment, customer(userID)},
		http.MethodPut, "/orders/"+orderID.String()+"/payment-method", `{"payment_method":"direct"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "direct", decodeData[OrderResponse](t, rec).PaymentMethod)
}

func TestOrderHandler_HandoffQR(t *testing.T) {
	fx := createTestOrderHandler(t)

	userID, orderID := uuid.New(), uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	fx.dispatch.EXPECT().HandoffQR(mock.Anything, userID, orderID).Return(png, nil).Once()

	rec := serve(t, testRoute{http.MethodGet, "/orders/:id/handoff-qr", fx.handler.HandoffQR, customer(userID)},
		http.MethodGet, "/orders/"+orderID.String()+"/handoff-qr", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, png, rec.Body.Bytes())
}
