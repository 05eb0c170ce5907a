package handler

import (
	"net/http"

	"nexus/internal/delivery/api/response"
	"nexus/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CartHandler serves the customer's open cart
type CartHandler struct {
	cartUC usecase.CartUsecase
}

func NewCartHandler(cartUC usecase.CartUsecase) *CartHandler {
	return &CartHandler{cartUC: cartUC}
}

// UpdateQuantityRequest sets a line quantity; zero removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartResponse(cart))
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req usecase.AddCartItemInput
	if err := bind(c, &req); err != nil {
		return err
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newCartResponse(cart))
}

// UpdateQuantity handles PATCH /cart/items/:id
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	itemID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateQuantityRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cart, err := h.cartUC.UpdateQuantity(c.Request().Context(), userID, itemID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartResponse(cart))
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	itemID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), userID, itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartResponse(cart))
}
