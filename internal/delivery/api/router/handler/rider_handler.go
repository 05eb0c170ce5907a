package handler

import (
	"net/http"
	"strings"

	"nexus/internal/delivery/api/response"
	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RiderHandlerParams holds dependencies for RiderHandler, injected by Fx.
type RiderHandlerParams struct {
	fx.In

	RiderUC    usecase.RiderUsecase
	DispatchUC usecase.DispatchUsecase
}

// RiderHandler serves the rider application, profile, boosts and delivery tasks
type RiderHandler struct {
	riderUC    usecase.RiderUsecase
	dispatchUC usecase.DispatchUsecase
}

func NewRiderHandler(params RiderHandlerParams) *RiderHandler {
	return &RiderHandler{
		riderUC:    params.RiderUC,
		dispatchUC: params.DispatchUC,
	}
}

// RiderApplicationRequest is the application body
type RiderApplicationRequest struct {
	Phone               string                `json:"phone" validate:"required,max=20"`
	VehicleType         string                `json:"vehicle_type" validate:"required,vehicle"`
	VehicleRegistration string                `json:"vehicle_registration" validate:"max=20"`
	LicenseNumber       string                `json:"license_number" validate:"max=50"`
	Address             string                `json:"address" validate:"required"`
	Documents           entity.RiderDocuments `json:"documents"`
	AgreedToTerms       bool                  `json:"agreed_to_terms"`
}

// AvailabilityRequest toggles whether the rider takes tasks
type AvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// LocationRequest is a rider position update
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// ActivateBoostRequest selects a boost package
type ActivateBoostRequest struct {
	PackageID uuid.UUID `json:"package_id" validate:"required"`
}

// DeliverRequest carries the code shown on the customer's hand-off QR
type DeliverRequest struct {
	HandoffCode string `json:"handoff_code" validate:"required"`
}

type boostActivationResponse struct {
	Boost            *BoostResponse `json:"boost,omitempty"`
	AuthorizationURL string         `json:"authorization_url,omitempty"`
	Reference        string         `json:"reference,omitempty"`
}

// Apply handles POST /rider/application
func (h *RiderHandler) Apply(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req RiderApplicationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	application, err := h.riderUC.SubmitApplication(c.Request().Context(), userID, &usecase.RiderApplicationInput{
		Phone:               req.Phone,
		VehicleType:         entity.VehicleType(req.VehicleType),
		VehicleRegistration: req.VehicleRegistration,
		LicenseNumber:       req.LicenseNumber,
		Address:             req.Address,
		Documents:           req.Documents,
		AgreedToTerms:       req.AgreedToTerms,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newRiderApplicationResponse(application))
}

// GetProfile handles GET /rider/profile
func (h *RiderHandler) GetProfile(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	profile, err := h.riderUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRiderProfileResponse(profile))
}

// SetAvailability handles PUT /rider/availability
func (h *RiderHandler) SetAvailability(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req AvailabilityRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	profile, err := h.riderUC.SetAvailable(c.Request().Context(), userID, *req.Available)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRiderProfileResponse(profile))
}

// UpdateLocation handles PUT /rider/location
func (h *RiderHandler) UpdateLocation(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req LocationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.riderUC.UpdateLocation(c.Request().Context(), userID, *req.Latitude, *req.Longitude); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListBoostPackages handles GET /rider/boosts/packages
func (h *RiderHandler) ListBoostPackages(c echo.Context) error {
	packages, err := h.riderUC.ListBoostPackages(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBoostPackageResponses(packages))
}

// ActivateBoost handles POST /rider/boosts
func (h *RiderHandler) ActivateBoost(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req ActivateBoostRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	activation, err := h.riderUC.ActivateBoost(c.Request().Context(), userID, req.PackageID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusCreated
	if activation.Boost == nil {
		status = http.StatusAccepted
	}

	return response.Success(c, status, boostActivationResponse{
		Boost:            newBoostResponse(activation.Boost),
		AuthorizationURL: activation.AuthorizationURL,
		Reference:        activation.Reference,
	})
}

// parseTaskStatuses reads a comma separated ?status= filter.
func parseTaskStatuses(raw string) ([]entity.TaskStatus, error) {
	if raw == "" {
		return nil, nil
	}

	var statuses []entity.TaskStatus
	for part := range strings.SplitSeq(raw, ",") {
		status := entity.TaskStatus(strings.ToUpper(strings.TrimSpace(part)))
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown task status " + part)
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// ListTasks handles GET /rider/tasks
func (h *RiderHandler) ListTasks(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	statuses, err := parseTaskStatuses(c.QueryParam("status"))
	if err != nil {
		return err
	}

	tasks, err := h.dispatchUC.ListRiderTasks(c.Request().Context(), userID, statuses)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, newTaskResponse(task))
	}

	return response.Success(c, http.StatusOK, out)
}

type taskStep func(c echo.Context, riderUserID, taskID uuid.UUID) (*entity.DeliveryTask, error)

func (h *RiderHandler) step(c echo.Context, fn taskStep) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	taskID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	task, err := fn(c, userID, taskID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTaskResponse(task))
}

// ClaimTask handles POST /rider/tasks/:id/claim
func (h *RiderHandler) ClaimTask(c echo.Context) error {
	return h.step(c, func(c echo.Context, riderUserID, taskID uuid.UUID) (*entity.DeliveryTask, error) {
		return h.dispatchUC.ClaimTask(c.Request().Context(), riderUserID, taskID)
	})
}

// PickUp handles POST /rider/tasks/:id/pickup
func (h *RiderHandler) PickUp(c echo.Context) error {
	return h.step(c, func(c echo.Context, riderUserID, taskID uuid.UUID) (*entity.DeliveryTask, error) {
		return h.dispatchUC.MarkPickedUp(c.Request().Context(), riderUserID, taskID)
	})
}

// OutForDelivery handles POST /rider/tasks/:id/out-for-delivery
func (h *RiderHandler) OutForDelivery(c echo.Context) error {
	return h.step(c, func(c echo.Context, riderUserID, taskID uuid.UUID) (*entity.DeliveryTask, error) {
		return h.dispatchUC.MarkOutForDelivery(c.Request().Context(), riderUserID, taskID)
	})
}

// Deliver handles POST /rider/tasks/:id/deliver
func (h *RiderHandler) Deliver(c echo.Context) error {
	var req DeliverRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	return h.step(c, func(c echo.Context, riderUserID, taskID uuid.UUID) (*entity.DeliveryTask, error) {
		return h.dispatchUC.MarkDelivered(c.Request().Context(), riderUserID, taskID, req.HandoffCode)
	})
}
