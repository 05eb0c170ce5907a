package handler

import (
	"net/http"
	"time"

	"nexus/internal/delivery/api/response"
	"nexus/internal/domain/entity"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AddressHandler struct {
	addressUC usecase.AddressUsecase
}

func NewAddressHandler(addressUC usecase.AddressUsecase) *AddressHandler {
	return &AddressHandler{addressUC: addressUC}
}

// AddAddressRequest is a new address book entry
type AddAddressRequest struct {
	Type      string   `json:"type" validate:"required,oneof=billing shipping"`
	FullName  string   `json:"full_name" validate:"required,max=100"`
	Street    string   `json:"street" validate:"required,max=255"`
	City      string   `json:"city" validate:"required,max=100"`
	Region    string   `json:"region" validate:"max=100"`
	Country   string   `json:"country" validate:"max=100"`
	Phone     string   `json:"phone" validate:"max=20"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
	IsDefault bool     `json:"is_default"`
}

type AddressResponse struct {
	ID        uuid.UUID          `json:"id"`
	Type      entity.AddressType `json:"type"`
	FullName  string             `json:"full_name"`
	Street    string             `json:"street"`
	City      string             `json:"city"`
	Region    string             `json:"region,omitempty"`
	Country   string             `json:"country,omitempty"`
	Phone     string             `json:"phone,omitempty"`
	Latitude  *float64           `json:"latitude,omitempty"`
	Longitude *float64           `json:"longitude,omitempty"`
	IsDefault bool               `json:"is_default"`
	CreatedAt time.Time          `json:"created_at"`
}

func newAddressResponse(a *entity.Address) AddressResponse {
	return AddressResponse{
		ID:        a.ID,
		Type:      a.Type,
		FullName:  a.FullName,
		Street:    a.Street,
		City:      a.City,
		Region:    a.Region,
		Country:   a.Country,
		Phone:     a.Phone,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
		IsDefault: a.IsDefault,
		CreatedAt: a.CreatedAt,
	}
}

// ListAddresses handles GET /addresses
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, newAddressResponse(a))
	}

	return response.Success(c, http.StatusOK, out)
}

// AddAddress handles POST /addresses
func (h *AddressHandler) AddAddress(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req AddAddressRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	address, err := h.addressUC.AddAddress(c.Request().Context(), userID, &usecase.AddAddressInput{
		Type:      entity.AddressType(req.Type),
		FullName:  req.FullName,
		Street:    req.Street,
		City:      req.City,
		Region:    req.Region,
		Country:   req.Country,
		Phone:     req.Phone,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newAddressResponse(address))
}

// GetAddress handles GET /addresses/:id
func (h *AddressHandler) GetAddress(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	addressID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	address, err := h.addressUC.GetAddress(c.Request().Context(), userID, addressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressResponse(address))
}
