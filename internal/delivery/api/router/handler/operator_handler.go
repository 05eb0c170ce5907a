package handler

import (
	"net/http"

	"nexus/internal/delivery/api/response"
	"nexus/internal/domain/constants"
	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OperatorHandlerParams holds dependencies for OperatorHandler, injected by Fx.
type OperatorHandlerParams struct {
	fx.In

	RiderUC   usecase.RiderUsecase
	PaymentUC usecase.PaymentUsecase
	PayoutUC  usecase.PayoutUsecase
	LedgerUC  usecase.LedgerUsecase
	Jobs      usecase.JobQueue
}

// OperatorHandler serves staff back-office actions
type OperatorHandler struct {
	riderUC   usecase.RiderUsecase
	paymentUC usecase.PaymentUsecase
	payoutUC  usecase.PayoutUsecase
	ledgerUC  usecase.LedgerUsecase
	jobs      usecase.JobQueue
}

func NewOperatorHandler(params OperatorHandlerParams) *OperatorHandler {
	return &OperatorHandler{
		riderUC:   params.RiderUC,
		paymentUC: params.PaymentUC,
		payoutUC:  params.PayoutUC,
		ledgerUC:  params.LedgerUC,
		jobs:      params.Jobs,
	}
}

// ReviewApplicationRequest is an operator decision on a rider application
type ReviewApplicationRequest struct {
	Approve *bool  `json:"approve" validate:"required"`
	Notes   string `json:"notes" validate:"max=1000"`
}

// PayoutNoteRequest annotates a failed or rejected payout
type PayoutNoteRequest struct {
	Note string `json:"note" validate:"required,max=1000"`
}

// CompletePayoutRequest records the gateway transfer that settled a payout
type CompletePayoutRequest struct {
	GatewayTxnID string `json:"gateway_txn_id" validate:"required,max=100"`
}

// MediaJobRequest asks for an image to be processed in the background
type MediaJobRequest struct {
	Operation string    `json:"operation" validate:"required,oneof=remove-background enhance"`
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	ImageURL  string    `json:"image_url" validate:"required,url"`
}

type jobResponse struct {
	ID     uuid.UUID        `json:"id"`
	Name   string           `json:"name"`
	Status entity.JobStatus `json:"status"`
}

// ReviewApplication handles POST /operator/rider-applications/:id/review
func (h *OperatorHandler) ReviewApplication(c echo.Context) error {
	operatorID, err := callerID(c)
	if err != nil {
		return err
	}
	applicationID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req ReviewApplicationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	application, err := h.riderUC.ReviewApplication(c.Request().Context(), operatorID, applicationID, *req.Approve, req.Notes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRiderApplicationResponse(application))
}

// MarkDirectPaymentReceived handles POST /operator/orders/:id/direct-payment
func (h *OperatorHandler) MarkDirectPaymentReceived(c echo.Context) error {
	return transition(c, func(c echo.Context, operatorID, orderID uuid.UUID) (any, error) {
		order, err := h.paymentUC.MarkDirectPaymentReceived(c.Request().Context(), operatorID, orderID)
		if err != nil {
			return nil, err
		}

		return newOrderResponse(order), nil
	})
}

// ListPayouts handles GET /operator/payouts?status=
func (h *OperatorHandler) ListPayouts(c echo.Context) error {
	status := entity.PayoutStatus(c.QueryParam("status"))
	if status == "" {
		status = entity.PayoutPending
	}
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown payout status " + string(status))
	}
	limit, offset := page(c)

	requests, err := h.payoutUC.ListByStatus(c.Request().Context(), status, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, newPayoutResponses(requests), limit, offset)
}

type payoutStep func(c echo.Context, operatorID, requestID uuid.UUID) (*entity.PayoutRequest, error)

func (h *OperatorHandler) payoutStep(c echo.Context, fn payoutStep) error {
	operatorID, err := callerID(c)
	if err != nil {
		return err
	}
	requestID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	request, err := fn(c, operatorID, requestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPayoutResponse(request))
}

// StartPayout handles POST /operator/payouts/:id/start
func (h *OperatorHandler) StartPayout(c echo.Context) error {
	return h.payoutStep(c, func(c echo.Context, operatorID, requestID uuid.UUID) (*entity.PayoutRequest, error) {
		return h.payoutUC.StartProcessing(c.Request().Context(), operatorID, requestID)
	})
}

// CompletePayout handles POST /operator/payouts/:id/complete
func (h *OperatorHandler) CompletePayout(c echo.Context) error {
	var req CompletePayoutRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	return h.payoutStep(c, func(c echo.Context, operatorID, requestID uuid.UUID) (*entity.PayoutRequest, error) {
		return h.payoutUC.Complete(c.Request().Context(), operatorID, requestID, req.GatewayTxnID)
	})
}

// FailPayout handles POST /operator/payouts/:id/fail
func (h *OperatorHandler) FailPayout(c echo.Context) error {
	var req PayoutNoteRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	return h.payoutStep(c, func(c echo.Context, operatorID, requestID uuid.UUID) (*entity.PayoutRequest, error) {
		return h.payoutUC.Fail(c.Request().Context(), operatorID, requestID, req.Note)
	})
}

// RejectPayout handles POST /operator/payouts/:id/reject
func (h *OperatorHandler) RejectPayout(c echo.Context) error {
	var req PayoutNoteRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	return h.payoutStep(c, func(c echo.Context, operatorID, requestID uuid.UUID) (*entity.PayoutRequest, error) {
		return h.payoutUC.Reject(c.Request().Context(), operatorID, requestID, req.Note)
	})
}

// ReverseTransaction handles POST /operator/transactions/:id/reverse
func (h *OperatorHandler) ReverseTransaction(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req ReasonRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	reversal, err := h.ledgerUC.Reverse(c.Request().Context(), id, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newTransactionResponse(reversal))
}

// EnqueueMediaJob handles POST /operator/media-jobs
func (h *OperatorHandler) EnqueueMediaJob(c echo.Context) error {
	var req MediaJobRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	name := constants.JobMediaEnhanceImage
	if req.Operation == "remove-background" {
		name = constants.JobMediaRemoveBackground
	}

	job, err := h.jobs.Enqueue(c.Request().Context(), name, req.ProductID.String()+":"+req.ImageURL, usecase.MediaJobPayload{
		ProductID: req.ProductID,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, jobResponse{ID: job.ID, Name: job.Name, Status: job.Status})
}
