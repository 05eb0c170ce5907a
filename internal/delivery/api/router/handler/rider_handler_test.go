package handler

import (
	"net/http"
	"testing"

	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	mockUsecase "nexus/internal/mocks/usecase"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type riderHandlerFixtures struct {
	handler  *RiderHandler
	riders   *mockUsecase.MockRiderUsecase
	dispatch *mockUsecase.MockDispatchUsecase
}

func createTestRiderHandler(t *testing.T) riderHandlerFixtures {
	fx := riderHandlerFixtures{
		riders:   mockUsecase.NewMockRiderUsecase(t),
		dispatch: mockUsecase.NewMockDispatchUsecase(t),
	}
	fx.handler = NewRiderHandler(RiderHandlerParams{RiderUC: fx.riders, DispatchUC: fx.dispatch})

	return fx
}

func TestRiderHandler_Apply(t *testing.T) {
	userID := uuid.New()

	t.Run("submitted", func(t *testing.T) {
		fx := createTestRiderHandler(t)
		fx.riders.EXPECT().
			SubmitApplication(mock.Anything, userID, mock.MatchedBy(func(in *usecase.RiderApplicationInput) bool {
				return in.VehicleType == entity.VehicleMotorcycle && in.AgreedToTerms && in.Phone == "+233200000000"
			})).
			Return(&entity.RiderApplication{ID: uuid.New(), UserID: userID, Status: entity.ApplicationSubmitted}, nil).
			Once()

		rec := serve(t, testRoute{http.MethodPost, "/rider/application", fx.handler.Apply, customer(userID)},
			http.MethodPost, "/rider/application",
			`{"phone":"+233200000000","vehicle_type":"motorcycle","address":"Kumasi","agreed_to_terms":true}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		fx := createTestRiderHandler(t)

		rec := serve(t, testRoute{http.MethodPost, "/rider/application", fx.handler.Apply, customer(userID)},
			http.MethodPost, "/rider/application", `{"phone":"1","vehicle_type":"horse","address":"Kumasi"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"field":"vehicle_type"`)
	})
}

func TestRiderHandler_SetAvailability(t *testing.T) {
	userID := uuid.New()

	t.Run("not approved", func(t *testing.T) {
		fx := createTestRiderHandler(t)
		fx.riders.EXPECT().SetAvailable(mock.Anything, userID, true).Return(nil, domainerrors.ErrNotApproved).Once()

		rec := serve(t, testRoute{http.MethodPut, "/rider/availability", fx.handler.SetAvailability, withRoles(userID, entity.RoleRider)},
			http.MethodPut, "/rider/availability", `{"available":true}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "NOT_APPROVED", decode(t, rec).Error.Code)
	})

	t.Run("going offline is explicit", func(t *testing.T) {
		fx := createTestRiderHandler(t)
		fx.riders.EXPECT().SetAvailable(mock.Anything, userID, false).Return(&entity.RiderProfile{ID: uuid.New()}, nil).Once()

		rec := serve(t, testRoute{http.MethodPut, "/rider/availability", fx.handler.SetAvailability, withRoles(userID, entity.RoleRider)},
			http.MethodPut, "/rider/availability", `{"available":false}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing flag", func(t *testing.T) {
		fx := createTestRiderHandler(t)

		rec := serve(t, testRoute{http.MethodPut, "/rider/availability", fx.handler.SetAvailability, withRoles(userID, entity.RoleRider)},
			http.MethodPut, "/rider/availability", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRiderHandler_UpdateLocation_OutOfRange(t *testing.T) {
	fx := createTestRiderHandler(t)

	rec := serve(t, testRoute{http.MethodPut, "/rider/location", fx.handler.UpdateLocation, withRoles(uuid.New(), entity.RoleRider)},
		http.MethodPut, "/rider/location", `{"latitude":91,"longitude":0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRiderHandler_ActivateBoost_AwaitsPayment(t *testing.T) {
	fx := createTestRiderHandler(t)

	userID, packageID := uuid.New(), uuid.New()
	fx.riders.EXPECT().
		ActivateBoost(mock.Anything, userID, packageID).
		Return(&usecase.BoostActivation{AuthorizationURL: "https://checkout.example/boost", Reference: "BOOST-1"}, nil).
		Once()

	rec := serve(t, testRoute{http.MethodPost, "/rider/boosts", fx.handler.ActivateBoost, withRoles(userID, entity.RoleRider)},
		http.MethodPost, "/rider/boosts", `{"package_id":"`+packageID.String()+`"}`)

	require.Equal(t, http.StatusAccepted, rec.Code)
	out := decodeData[boostActivationResponse](t, rec)
	assert.Nil(t, out.Boost)
	assert.Equal(t, "BOOST-1", out.Reference)
}

func TestRiderHandler_ListTasks_StatusFilter(t *testing.T) {
	userID := uuid.New()

	t.Run("parsed", func(t *testing.T) {
		fx := createTestRiderHandler(t)
		fx.dispatch.EXPECT().
			ListRiderTasks(mock.Anything, userID, []entity.TaskStatus{entity.TaskPickedUp, entity.TaskOutForDelivery}).
			Return([]*entity.DeliveryTask{{ID: uuid.New(), Status: entity.TaskPickedUp}}, nil).
			Once()

		rec := serve(t, testRoute{http.MethodGet, "/rider/tasks", fx.handler.ListTasks, withRoles(userID, entity.RoleRider)},
			http.MethodGet, "/rider/tasks?status=picked_up,%20OUT_FOR_DELIVERY", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeData[[]TaskResponse](t, rec), 1)
	})

	t.Run("unknown status", func(t *testing.T) {
		fx := createTestRiderHandler(t)

		rec := serve(t, testRoute{http.MethodGet, "/rider/tasks", fx.handler.ListTasks, withRoles(userID, entity.RoleRider)},
			http.MethodGet, "/rider/tasks?status=LOST", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRiderHandler_TaskSteps(t *testing.T) {
	userID, taskID := uuid.New(), uuid.New()
	t.Run("claim conflict", func(t *testing.T) {
		fx := createTestRiderHandler(t)
		fx.dispatch.EXPECT().ClaimTask(mock.Anything, userID, taskID).Return(nil, domainerrors.ErrTaskAlreadyClaimed).Once()

		rec := serve(t, testRoute{http.MethodPost, "/rider/tasks/:id/claim", fx.handler.ClaimTask, withRoles(userID, entity.RoleRider)},
			http.MethodPost, "/rider/tasks/"+taskID.String()+"/claim", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "TASK_ALREADY_CLAIMED", decode(t, rec).Error.Code)
	})

	t.Run("deliver with code", func(t *testing.T) {
		fx := createTestRiderHandler(t)
		fx.dispatch.EXPECT().
			MarkDelivered(mock.Anything, userID, taskID, "483920").
			Return(&entity.DeliveryTask{ID: taskID, Status: entity.TaskDelivered}, nil).
			Once()

		rec := serve(t, testRoute{http.MethodPost, "/rider/tasks/:id/deliver", fx.handler.Deliver, withRoles(userID, entity.RoleRider)},
			http.MethodPost, "/rider/tasks/"+taskID.String()+"/deliver", `{"handoff_code":"483920"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, entity.TaskDelivered, decodeData[TaskResponse](t, rec).Status)
	})

	t.Run("deliver without code", func(t *testing.T) {
		fx := createTestRiderHandler(t)

		rec := serve(t, testRoute{http.MethodPost, "/rider/tasks/:id/deliver", fx.handler.Deliver, withRoles(userID, entity.RoleRider)},
			http.MethodPost, "/rider/tasks/"+taskID.String()+"/deliver", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
