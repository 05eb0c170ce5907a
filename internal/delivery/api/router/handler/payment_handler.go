package handler

import (
	"net/http"

	"nexus/internal/delivery/api/response"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PaymentHandler receives gateway redirects and notifications. Its routes are public.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	riderUC   usecase.RiderUsecase
}

func NewPaymentHandler(paymentUC usecase.PaymentUsecase, riderUC usecase.RiderUsecase) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC, riderUC: riderUC}
}

func reference(c echo.Context) (string, error) {
	ref := c.QueryParam("reference")
	if ref == "" {
		ref = c.QueryParam("trxref")
	}
	if ref == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("reference is required")
	}

	return ref, nil
}

// OrderCallback handles GET /payments/callback after the customer returns from the gateway
func (h *PaymentHandler) OrderCallback(c echo.Context) error {
	ref, err := reference(c)
	if err != nil {
		return err
	}

	order, err := h.paymentUC.Confirm(c.Request().Context(), ref)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

// BoostCallback handles GET /payments/boost-callback
func (h *PaymentHandler) BoostCallback(c echo.Context) error {
	ref, err := reference(c)
	if err != nil {
		return err
	}

	boost, err := h.riderUC.ConfirmBoostPayment(c.Request().Context(), ref)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBoostResponse(boost))
}

// IPN handles POST /payments/ipn, the gateway's server-to-server notification
func (h *PaymentHandler) IPN(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid form body")
	}

	if err := h.paymentUC.HandleIPN(c.Request().Context(), form); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.String(http.StatusOK, "OK")
}
