package handler

import (
	"net/http"
	"testing"

	"nexus/internal/domain/constants"
	"nexus/internal/domain/entity"
	mockUsecase "nexus/internal/mocks/usecase"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type operatorHandlerFixtures struct {
	handler  *OperatorHandler
	riders   *mockUsecase.MockRiderUsecase
	payments *mockUsecase.MockPaymentUsecase
	payouts  *mockUsecase.MockPayoutUsecase
	ledger   *mockUsecase.MockLedgerUsecase
	jobs     *mockUsecase.MockJobQueue
}

func createTestOperatorHandler(t *testing.T) operatorHandlerFixtures {
	fx := operatorHandlerFixtures{
		riders:   mockUsecase.NewMockRiderUsecase(t),
		payments: mockUsecase.NewMockPaymentUsecase(t),
		payouts:  mockUsecase.NewMockPayoutUsecase(t),
		ledger:   mockUsecase.NewMockLedgerUsecase(t),
		jobs:     mockUsecase.NewMockJobQueue(t),
	}
	fx.handler = NewOperatorHandler(OperatorHandlerParams{
		RiderUC:   fx.riders,
		PaymentUC: fx.payments,
		PayoutUC:  fx.payouts,
		LedgerUC:  fx.ledger,
		Jobs:      fx.jobs,
	})

	return fx
}

func TestOperatorHandler_ReviewApplication(t *testing.T) {
	fx := createTestOperatorHandler(t)
	operatorID, applicationID := uuid.New(), uuid.New()
	fx.riders.EXPECT().
		ReviewApplication(mock.Anything, operatorID, applicationID, false, "blurry licence").
		Return(&entity.RiderApplication{ID: applicationID, Status: entity.ApplicationRejected}, nil).
		Once()

	rec := serve(t, testRoute{http.MethodPost, "/operator/rider-applications/:id/review", fx.handler.ReviewApplication, withRoles(operatorID, entity.RoleOperator)},
		http.MethodPost, "/operator/rider-applications/"+applicationID.String()+"/review", `{"approve":false,"notes":"blurry licence"}`)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestOperatorHandler_ListPayouts(t *testing.T) {
	operatorID := uuid.New()

	t.Run("defaults to pending", func(t *testing.T) {
		fx := createTestOperatorHandler(t)
		fx.payouts.EXPECT().
			ListByStatus(mock.Anything, entity.PayoutPending, defaultPageSize, 0).
			Return([]*entity.PayoutRequest{}, nil).
			Once()

		rec := serve(t, testRoute{http.MethodGet, "/operator/payouts", fx.handler.ListPayouts, withRoles(operatorID, entity.RoleOperator)},
			http.MethodGet, "/operator/payouts", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		fx := createTestOperatorHandler(t)

		rec := serve(t, testRoute{http.MethodGet, "/operator/payouts", fx.handler.ListPayouts, withRoles(operatorID, entity.RoleOperator)},
			http.MethodGet, "/operator/payouts?status=lost", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOperatorHandler_PayoutSteps(t *testing.T) {
	operatorID, requestID := uuid.New(), uuid.New()

	t.Run("complete", func(t *testing.T) {
		fx := createTestOperatorHandler(t)
		fx.payouts.EXPECT().
			Complete(mock.Anything, operatorID, requestID, "TRF-9").
			Return(&entity.PayoutRequest{ID: requestID, Status: entity.PayoutCompleted}, nil).
			Once()

		rec := serve(t, testRoute{http.MethodPost, "/operator/payouts/:id/complete", fx.handler.CompletePayout, withRoles(operatorID, entity.RoleOperator)},
			http.MethodPost, "/operator/payouts/"+requestID.String()+"/complete", `{"gateway_txn_id":"TRF-9"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, entity.PayoutCompleted, decodeData[PayoutResponse](t, rec).Status)
	})

	t.Run("reject needs a note", func(t *testing.T) {
		fx := createTestOperatorHandler(t)

		rec := serve(t, testRoute{http.MethodPost, "/operator/payouts/:id/reject", fx.handler.RejectPayout, withRoles(operatorID, entity.RoleOperator)},
			http.MethodPost, "/operator/payouts/"+requestID.String()+"/reject", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOperatorHandler_EnqueueMediaJob(t *testing.T) {
	operatorID, productID := uuid.New(), uuid.New()

	tests := []struct {
		operation string
		jobName   string
	}{
		{"remove-background", constants.JobMediaRemoveBackground},
		{"enhance", constants.JobMediaEnhanceImage},
	}

	for _, tt := range tests {
		t.Run(tt.operation, func(t *testing.T) {
			fx := createTestOperatorHandler(t)
			imageURL := "https://cdn.example/p.jpg"
			fx.jobs.EXPECT().
				Enqueue(mock.Anything, tt.jobName, productID.String()+":"+imageURL, usecase.MediaJobPayload{ProductID: productID, ImageURL: imageURL}).
				Return(&entity.Job{ID: uuid.New(), Name: tt.jobName, Status: entity.JobQueued}, nil).
				Once()

			rec := serve(t, testRoute{http.MethodPost, "/operator/media-jobs", fx.handler.EnqueueMediaJob, withRoles(operatorID, entity.RoleOperator)},
				http.MethodPost, "/operator/media-jobs",
				`{"operation":"`+tt.operation+`","product_id":"`+productID.String()+`","image_url":"`+imageURL+`"}`)

			require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
			out := decodeData[jobResponse](t, rec)
			assert.Equal(t, tt.jobName, out.Name)
			assert.Equal(t, entity.JobQueued, out.Status)
		})
	}

	t.Run("unknown operation", func(t *testing.T) {
		fx := createTestOperatorHandler(t)

		rec := serve(t, testRoute{http.MethodPost, "/operator/media-jobs", fx.handler.EnqueueMediaJob, withRoles(operatorID, entity.RoleOperator)},
			http.MethodPost, "/operator/media-jobs",
			`{"operation":"upscale","product_id":"`+productID.String()+`","image_url":"https://cdn.example/p.jpg"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
