package handler

import (
	"net/http"

	"nexus/internal/delivery/api/response"
	"nexus/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DeviceHandler manages the caller's push registrations
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(deviceUC usecase.DeviceUsecase) *DeviceHandler {
	return &DeviceHandler{deviceUC: deviceUC}
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// RegisterDevice handles POST /devices
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req usecase.RegisterDeviceInput
	if err := bind(c, &req); err != nil {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// ListDevices handles GET /devices
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// UpdateFCMToken handles PUT /devices/:id/token
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	deviceID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateFCMTokenRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), userID, deviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "FCM token updated"})
}

// DeactivateDevice handles DELETE /devices/:id
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	deviceID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
