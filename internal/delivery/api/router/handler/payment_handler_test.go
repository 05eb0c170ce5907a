package handler

import (
	"net/http"
	"net/url"
	"testing"

	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	mockUsecase "nexus/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaymentHandler_OrderCallback(t *testing.T) {
	t.Run("trxref is accepted", func(t *testing.T) {
		payments := mockUsecase.NewMockPaymentUsecase(t)
		h := NewPaymentHandler(payments, mockUsecase.NewMockRiderUsecase(t))
		payments.EXPECT().
			Confirm(mock.Anything, "NEXUS-20260101-ABCDEF").
			Return(&entity.Order{ID: uuid.New(), PublicID: "NEXUS-20260101-ABCDEF", Status: entity.OrderProcessing}, nil).
			Once()

		rec := serve(t, testRoute{http.MethodGet, "/payments/callback", h.OrderCallback, nil},
			http.MethodGet, "/payments/callback?trxref=NEXUS-20260101-ABCDEF", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, entity.OrderProcessing, decodeData[OrderResponse](t, rec).Status)
	})

	t.Run("missing reference", func(t *testing.T) {
		h := NewPaymentHandler(mockUsecase.NewMockPaymentUsecase(t), mockUsecase.NewMockRiderUsecase(t))

		rec := serve(t, testRoute{http.MethodGet, "/payments/callback", h.OrderCallback, nil},
			http.MethodGet, "/payments/callback", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "reference is required", decode(t, rec).Error.Details)
	})

	t.Run("unknown reference", func(t *testing.T) {
		payments := mockUsecase.NewMockPaymentUsecase(t)
		h := NewPaymentHandler(payments, mockUsecase.NewMockRiderUsecase(t))
		payments.EXPECT().Confirm(mock.Anything, "nope").Return(nil, domainerrors.ErrUnknownReference).Once()

		rec := serve(t, testRoute{http.MethodGet, "/payments/callback", h.OrderCallback, nil},
			http.MethodGet, "/payments/callback?reference=nope", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPaymentHandler_BoostCallback(t *testing.T) {
	riders := mockUsecase.NewMockRiderUsecase(t)
	h := NewPaymentHandler(mockUsecase.NewMockPaymentUsecase(t), riders)
	riders.EXPECT().
		ConfirmBoostPayment(mock.Anything, "BOOST-1").
		Return(&entity.ActiveRiderBoost{ID: uuid.New()}, nil).
		Once()

	rec := serve(t, testRoute{http.MethodGet, "/payments/boost-callback", h.BoostCallback, nil},
		http.MethodGet, "/payments/boost-callback?reference=BOOST-1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPaymentHandler_IPN(t *testing.T) {
	payments := mockUsecase.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(payments, mockUsecase.NewMockRiderUsecase(t))
	payments.EXPECT().
		HandleIPN(mock.Anything, mock.MatchedBy(func(form url.Values) bool {
			return form.Get("order_id") == "NEXUS-20260101-ABCDEF" && form.Get("status_code") == "2"
		})).
		Return(nil).
		Once()

	form := url.Values{"order_id": {"NEXUS-20260101-ABCDEF"}, "status_code": {"2"}}
	rec := serve(t, testRoute{http.MethodPost, "/payments/ipn", h.IPN, nil},
		http.MethodPost, "/payments/ipn", form.Encode(), echo.MIMEApplicationForm)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
