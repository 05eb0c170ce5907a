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

func TestCartHandler_AddItem(t *testing.T) {
	userID, productID := uuid.New(), uuid.New()

	t.Run("added", func(t *testing.T) {
		carts := mockUsecase.NewMockCartUsecase(t)
		h := NewCartHandler(carts)
		carts.EXPECT().
			AddItem(mock.Anything, userID, &usecase.AddCartItemInput{ProductID: &productID, Quantity: 2}).
			Return(&entity.Cart{ID: uuid.New(), UserID: userID}, nil).
			Once()

		rec := serve(t, testRoute{http.MethodPost, "/cart/items", h.AddItem, customer(userID)},
			http.MethodPost, "/cart/items", `{"product_id":"`+productID.String()+`","quantity":2}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Empty(t, decodeData[CartResponse](t, rec).Items)
	})

	t.Run("zero quantity", func(t *testing.T) {
		h := NewCartHandler(mockUsecase.NewMockCartUsecase(t))

		rec := serve(t, testRoute{http.MethodPost, "/cart/items", h.AddItem, customer(userID)},
			http.MethodPost, "/cart/items", `{"product_id":"`+productID.String()+`","quantity":0}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("out of stock", func(t *testing.T) {
		carts := mockUsecase.NewMockCartUsecase(t)
		h := NewCartHandler(carts)
		carts.EXPECT().AddItem(mock.Anything, userID, mock.Anything).Return(nil, domainerrors.ErrInsufficientStock).Once()

		rec := serve(t, testRoute{http.MethodPost, "/cart/items", h.AddItem, customer(userID)},
			http.MethodPost, "/cart/items", `{"product_id":"`+productID.String()+`","quantity":9}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "INSUFFICIENT_STOCK", decode(t, rec).Error.Code)
	})
}

func TestCartHandler_UpdateQuantity_ZeroRemoves(t *testing.T) {
	carts := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(carts)
	userID, itemID := uuid.New(), uuid.New()
	carts.EXPECT().UpdateQuantity(mock.Anything, userID, itemID, 0).Return(&entity.Cart{ID: uuid.New()}, nil).Once()

	rec := serve(t, testRoute{http.MethodPatch, "/cart/items/:id", h.UpdateQuantity, customer(userID)},
		http.MethodPatch, "/cart/items/"+itemID.String(), `{"quantity":0}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}
