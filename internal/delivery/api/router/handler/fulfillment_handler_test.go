package handler

import (
	"net/http"
	"testing"

	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	mockUsecase "nexus/internal/mocks/usecase"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFulfillmentHandler_Cancel(t *testing.T) {
	orderID := uuid.New()
	target := "/orders/" + orderID.String() + "/cancel"

	t.Run("customer", func(t *testing.T) {
		fulfillment := mockUsecase.NewMockFulfillmentUsecase(t)
		h := NewFulfillmentHandler(fulfillment)
		userID := uuid.New()
		fulfillment.EXPECT().
			Cancel(mock.Anything, usecase.Actor{UserID: userID}, orderID, "changed my mind").
			Return(&entity.Order{ID: orderID, Status: entity.OrderCancelled}, nil).
			Once()

		rec := serve(t, testRoute{http.MethodPost, "/orders/:id/cancel", h.Cancel, customer(userID)},
			http.MethodPost, target, `{"reason":"changed my mind"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, entity.OrderCancelled, decodeData[OrderResponse](t, rec).Status)
	})

	t.Run("operator", func(t *testing.T) {
		fulfillment := mockUsecase.NewMockFulfillmentUsecase(t)
		h := NewFulfillmentHandler(fulfillment)
		operatorID := uuid.New()
		fulfillment.EXPECT().
			Cancel(mock.Anything, usecase.Actor{UserID: operatorID, IsOperator: true}, orderID, "fraud").
			Return(&entity.Order{ID: orderID, Status: entity.OrderCancelled}, nil).
			Once()

		rec := serve(t, testRoute{http.MethodPost, "/orders/:id/cancel", h.Cancel, withRoles(operatorID, entity.RoleOperator)},
			http.MethodPost, target, `{"reason":"fraud"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("reason is required", func(t *testing.T) {
		h := NewFulfillmentHandler(mockUsecase.NewMockFulfillmentUsecase(t))

		rec := serve(t, testRoute{http.MethodPost, "/orders/:id/cancel", h.Cancel, customer(uuid.New())},
			http.MethodPost, target, `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFulfillmentHandler_MarkShipped_WrongState(t *testing.T) {
	fulfillment := mockUsecase.NewMockFulfillmentUsecase(t)
	h := NewFulfillmentHandler(fulfillment)
	vendorID, orderID := uuid.New(), uuid.New()
	fulfillment.EXPECT().MarkShipped(mock.Anything, vendorID, orderID).Return(nil, domainerrors.ErrInvalidTransition).Once()

	rec := serve(t, testRoute{http.MethodPost, "/vendor/orders/:id/ship", h.MarkShipped, withRoles(vendorID, entity.RoleVendor)},
		http.MethodPost, "/vendor/orders/"+orderID.String()+"/ship", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_TRANSITION", decode(t, rec).Error.Code)
}

func TestFulfillmentHandler_ConfirmDelivery(t *testing.T) {
	fulfillment := mockUsecase.NewMockFulfillmentUsecase(t)
	h := NewFulfillmentHandler(fulfillment)
	userID, orderID := uuid.New(), uuid.New()
	fulfillment.EXPECT().
		ConfirmDelivery(mock.Anything, userID, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderPendingPayout}, nil).
		Once()

	rec := serve(t, testRoute{http.MethodPost, "/orders/:id/confirm-delivery", h.ConfirmDelivery, customer(userID)},
		http.MethodPost, "/orders/"+orderID.String()+"/confirm-delivery", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.OrderPendingPayout, decodeData[OrderResponse](t, rec).Status)
}
