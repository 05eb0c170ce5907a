package handler

import (
	"net/http"

	"nexus/internal/delivery/api/response"
	deliverycontext "nexus/internal/delivery/context"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// FulfillmentHandler drives an order through fulfilment on behalf of its parties
type FulfillmentHandler struct {
	fulfillmentUC usecase.FulfillmentUsecase
}

func NewFulfillmentHandler(fulfillmentUC usecase.FulfillmentUsecase) *FulfillmentHandler {
	return &FulfillmentHandler{fulfillmentUC: fulfillmentUC}
}

// ReasonRequest carries the free-text reason of a cancellation or dispute
type ReasonRequest struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

type orderTransition func(c echo.Context, userID, orderID uuid.UUID) (any, error)

// transition resolves the caller and the :id order, then runs fn.
func transition(c echo.Context, fn orderTransition) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	orderID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	out, err := fn(c, userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// MarkShipped handles POST /vendor/orders/:id/ship
func (h *FulfillmentHandler) MarkShipped(c echo.Context) error {
	return transition(c, func(c echo.Context, userID, orderID uuid.UUID) (any, error) {
		order, err := h.fulfillmentUC.MarkShipped(c.Request().Context(), userID, orderID)
		if err != nil {
			return nil, err
		}

		return newOrderResponse(order), nil
	})
}

// MarkInProgress handles POST /provider/orders/:id/start
func (h *FulfillmentHandler) MarkInProgress(c echo.Context) error {
	return transition(c, func(c echo.Context, userID, orderID uuid.UUID) (any, error) {
		order, err := h.fulfillmentUC.MarkInProgress(c.Request().Context(), userID, orderID)
		if err != nil {
			return nil, err
		}

		return newOrderResponse(order), nil
	})
}

// ConfirmDelivery handles POST /orders/:id/confirm-delivery
func (h *FulfillmentHandler) ConfirmDelivery(c echo.Context) error {
	return transition(c, func(c echo.Context, userID, orderID uuid.UUID) (any, error) {
		order, err := h.fulfillmentUC.ConfirmDelivery(c.Request().Context(), userID, orderID)
		if err != nil {
			return nil, err
		}

		return newOrderResponse(order), nil
	})
}

// ConfirmCompletion handles POST /orders/:id/confirm-completion
func (h *FulfillmentHandler) ConfirmCompletion(c echo.Context) error {
	return transition(c, func(c echo.Context, userID, orderID uuid.UUID) (any, error) {
		order, err := h.fulfillmentUC.ConfirmCompletion(c.Request().Context(), userID, orderID)
		if err != nil {
			return nil, err
		}

		return newOrderResponse(order), nil
	})
}

// Cancel handles POST /orders/:id/cancel for the customer and the operator route of the same name.
func (h *FulfillmentHandler) Cancel(c echo.Context) error {
	var req ReasonRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	principal, _ := deliverycontext.GetPrincipal(c)

	return transition(c, func(c echo.Context, userID, orderID uuid.UUID) (any, error) {
		actor := usecase.Actor{UserID: userID, IsOperator: principal.IsOperator()}
		order, err := h.fulfillmentUC.Cancel(c.Request().Context(), actor, orderID, req.Reason)
		if err != nil {
			return nil, err
		}

		return newOrderResponse(order), nil
	})
}

// Dispute handles POST /orders/:id/dispute
func (h *FulfillmentHandler) Dispute(c echo.Context) error {
	var req ReasonRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	return transition(c, func(c echo.Context, userID, orderID uuid.UUID) (any, error) {
		order, err := h.fulfillmentUC.Dispute(c.Request().Context(), userID, orderID, req.Reason)
		if err != nil {
			return nil, err
		}

		return newOrderResponse(order), nil
	})
}

// SettleOrder handles POST /operator/orders/:id/settle
func (h *FulfillmentHandler) SettleOrder(c echo.Context) error {
	return transition(c, func(c echo.Context, userID, orderID uuid.UUID) (any, error) {
		order, err := h.fulfillmentUC.SettleOrder(c.Request().Context(), userID, orderID)
		if err != nil {
			return nil, err
		}

		return newOrderResponse(order), nil
	})
}
