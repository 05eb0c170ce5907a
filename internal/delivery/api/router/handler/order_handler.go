package handler

import (
	"net/http"

	"nexus/internal/delivery/api/response"
	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC    usecase.OrderUsecase
	PaymentUC  usecase.PaymentUsecase
	DispatchUC usecase.DispatchUsecase
}

// OrderHandler serves checkout and the customer's orders
type OrderHandler struct {
	orderUC    usecase.OrderUsecase
	paymentUC  usecase.PaymentUsecase
	dispatchUC usecase.DispatchUsecase
}

func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC:    params.OrderUC,
		paymentUC:  params.PaymentUC,
		dispatchUC: params.DispatchUC,
	}
}

// AssembleOrderRequest is the checkout body
type AssembleOrderRequest struct {
	BillingAddressID  uuid.UUID  `json:"billing_address_id" validate:"required"`
	ShippingAddressID *uuid.UUID `json:"shipping_address_id"`
	PaymentMethod     string     `json:"payment_method" validate:"omitempty,oneof=escrow direct"`
}

// ChoosePaymentRequest selects the payment method of a pending order
type ChoosePaymentRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=escrow direct"`
}

type assembledOrderResponse struct {
	Order           OrderResponse `json:"order"`
	EligibleMethods []string      `json:"eligible_methods"`
}

func parseMethod(raw string) (entity.PaymentMethod, error) {
	method, err := entity.ParsePaymentMethod(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return method, nil
}

// Assemble handles POST /orders
func (h *OrderHandler) Assemble(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req AssembleOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	method, err := parseMethod(req.PaymentMethod)
	if err != nil {
		return err
	}

	assembled, err := h.orderUC.Assemble(c.Request().Context(), userID, &usecase.AssembleOrderInput{
		BillingAddressID:  req.BillingAddressID,
		ShippingAddressID: req.ShippingAddressID,
		PaymentMethod:     method,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, assembledOrderResponse{
		Order:           newOrderResponse(assembled.Order),
		EligibleMethods: methodNames(assembled.EligibleMethods),
	})
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	limit, offset := page(c)

	orders, err := h.orderUC.ListOrders(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, newOrderResponses(orders), limit, offset)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	orderID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

// EligibleMethods handles GET /orders/:id/payment-methods
func (h *OrderHandler) EligibleMethods(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	orderID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	methods, err := h.paymentUC.EligibleMethods(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, methodNames(methods))
}

// ChoosePayment handles PUT /orders/:id/payment-method
func (h *OrderHandler) ChoosePayment(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	orderID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req ChoosePaymentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	method, err := parseMethod(req.PaymentMethod)
	if err != nil {
		return err
	}

	order, err := h.paymentUC.Choose(c.Request().Context(), userID, orderID, method)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

// InitiatePayment handles POST /orders/:id/payment and returns the gateway authorization URL
func (h *OrderHandler) InitiatePayment(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	orderID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	authorizationURL, err := h.paymentUC.Initiate(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"authorization_url": authorizationURL})
}

// HandoffQR handles GET /orders/:id/handoff-qr and returns a PNG
func (h *OrderHandler) HandoffQR(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	orderID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.dispatchUC.HandoffQR(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}
