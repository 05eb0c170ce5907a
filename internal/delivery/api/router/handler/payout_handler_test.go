package handler

import (
	"net/http"
	"testing"

	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	mockUsecase "nexus/internal/mocks/usecase"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPayoutHandler_Balance(t *testing.T) {
	userID := uuid.New()

	t.Run("available", func(t *testing.T) {
		payouts := mockUsecase.NewMockPayoutUsecase(t)
		h := NewPayoutHandler(payouts, mockUsecase.NewMockLedgerUsecase(t))
		payouts.EXPECT().
			AvailableBalance(mock.Anything, userID, entity.BeneficiaryVendor).
			Return(decimal.RequireFromString("120.5"), nil).
			Once()

		rec := serve(t, testRoute{http.MethodGet, "/payouts/balance", h.Balance, withRoles(userID, entity.RoleVendor)},
			http.MethodGet, "/payouts/balance?kind=vendor", "")

		require.Equal(t, http.StatusOK, rec.Code)
		out := decodeData[balanceResponse](t, rec)
		assert.Equal(t, entity.BeneficiaryVendor, out.Kind)
		assert.True(t, out.Available.Equal(decimal.RequireFromString("120.5")))
	})

	t.Run("unknown kind", func(t *testing.T) {
		h := NewPayoutHandler(mockUsecase.NewMockPayoutUsecase(t), mockUsecase.NewMockLedgerUsecase(t))

		rec := serve(t, testRoute{http.MethodGet, "/payouts/balance", h.Balance, withRoles(userID, entity.RoleVendor)},
			http.MethodGet, "/payouts/balance?kind=customer", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPayoutHandler_RequestPayout(t *testing.T) {
	userID := uuid.New()

	t.Run("created", func(t *testing.T) {
		payouts := mockUsecase.NewMockPayoutUsecase(t)
		h := NewPayoutHandler(payouts, mockUsecase.NewMockLedgerUsecase(t))
		payouts.EXPECT().
			RequestPayout(mock.Anything, userID, mock.MatchedBy(func(in *usecase.PayoutRequestInput) bool {
				return in.Kind == entity.BeneficiaryRider && in.Amount.Equal(decimal.NewFromInt(40)) && in.PaymentDetails == "MoMo 024"
			})).
			Return(&entity.PayoutRequest{
				ID:              uuid.New(),
				Beneficiary:     entity.Beneficiary{Kind: entity.BeneficiaryRider, ProfileID: uuid.New(), UserID: userID},
				AmountRequested: decimal.NewFromInt(40),
				Status:          entity.PayoutPending,
			}, nil).
			Once()

		rec := serve(t, testRoute{http.MethodPost, "/payouts", h.RequestPayout, withRoles(userID, entity.RoleRider)},
			http.MethodPost, "/payouts", `{"kind":"rider","amount":"40","payment_details":"MoMo 024"}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, entity.PayoutPending, decodeData[PayoutResponse](t, rec).Status)
	})

	t.Run("amount must be positive", func(t *testing.T) {
		h := NewPayoutHandler(mockUsecase.NewMockPayoutUsecase(t), mockUsecase.NewMockLedgerUsecase(t))

		rec := serve(t, testRoute{http.MethodPost, "/payouts", h.RequestPayout, withRoles(userID, entity.RoleRider)},
			http.MethodPost, "/payouts", `{"kind":"rider","amount":"0","payment_details":"MoMo 024"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"field":"amount"`)
	})

	t.Run("over balance", func(t *testing.T) {
		payouts := mockUsecase.NewMockPayoutUsecase(t)
		h := NewPayoutHandler(payouts, mockUsecase.NewMockLedgerUsecase(t))
		payouts.EXPECT().RequestPayout(mock.Anything, userID, mock.Anything).Return(nil, domainerrors.ErrAmountExceedsBalance).Once()

		rec := serve(t, testRoute{http.MethodPost, "/payouts", h.RequestPayout, withRoles(userID, entity.RoleRider)},
			http.MethodPost, "/payouts", `{"kind":"rider","amount":"4000","payment_details":"MoMo 024"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "AMOUNT_EXCEEDS_BALANCE", decode(t, rec).Error.Code)
	})
}

func TestPayoutHandler_ListTransactions(t *testing.T) {
	userID := uuid.New()
	ledger := mockUsecase.NewMockLedgerUsecase(t)
	h := NewPayoutHandler(mockUsecase.NewMockPayoutUsecase(t), ledger)
	ledger.EXPECT().
		ListForUser(mock.Anything, userID, defaultPageSize, 0).
		Return([]*entity.Transaction{{ID: uuid.New(), Amount: decimal.NewFromInt(10)}}, nil).
		Once()

	rec := serve(t, testRoute{http.MethodGet, "/transactions", h.ListTransactions, customer(userID)},
		http.MethodGet, "/transactions", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, defaultPageSize, env.Meta.Limit)
}
