package handler

import (
	"net/http"

	"nexus/internal/delivery/api/response"
	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// PayoutHandler serves beneficiary balances, payout requests and transaction history
type PayoutHandler struct {
	payoutUC usecase.PayoutUsecase
	ledgerUC usecase.LedgerUsecase
}

func NewPayoutHandler(payoutUC usecase.PayoutUsecase, ledgerUC usecase.LedgerUsecase) *PayoutHandler {
	return &PayoutHandler{payoutUC: payoutUC, ledgerUC: ledgerUC}
}

// PayoutRequest is a beneficiary's request to withdraw earnings
type PayoutRequest struct {
	Kind           string          `json:"kind" validate:"required,beneficiary"`
	Amount         decimal.Decimal `json:"amount" validate:"gt=0"`
	PaymentDetails string          `json:"payment_details" validate:"required,max=500"`
}

type balanceResponse struct {
	Kind      entity.BeneficiaryKind `json:"kind"`
	Available decimal.Decimal        `json:"available"`
}

func beneficiaryKind(c echo.Context) (entity.BeneficiaryKind, error) {
	kind := entity.BeneficiaryKind(c.QueryParam("kind"))
	if !kind.IsValid() {
		return "", domainerrors.ErrValidationFailed.WithDetails("kind must be rider, vendor or provider")
	}

	return kind, nil
}

// Balance handles GET /payouts/balance?kind=
func (h *PayoutHandler) Balance(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	kind, err := beneficiaryKind(c)
	if err != nil {
		return err
	}

	available, err := h.payoutUC.AvailableBalance(c.Request().Context(), userID, kind)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, balanceResponse{Kind: kind, Available: available})
}

// RequestPayout handles POST /payouts
func (h *PayoutHandler) RequestPayout(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req PayoutRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	request, err := h.payoutUC.RequestPayout(c.Request().Context(), userID, &usecase.PayoutRequestInput{
		Kind:           entity.BeneficiaryKind(req.Kind),
		Amount:         req.Amount,
		PaymentDetails: req.PaymentDetails,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newPayoutResponse(request))
}

// ListRequests handles GET /payouts?kind=
func (h *PayoutHandler) ListRequests(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	kind, err := beneficiaryKind(c)
	if err != nil {
		return err
	}

	requests, err := h.payoutUC.ListRequests(c.Request().Context(), userID, kind)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPayoutResponses(requests))
}

// ListTransactions handles GET /transactions
func (h *PayoutHandler) ListTransactions(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	limit, offset := page(c)

	txns, err := h.ledgerUC.ListForUser(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]TransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, newTransactionResponse(t))
	}

	return response.Page(c, out, limit, offset)
}
