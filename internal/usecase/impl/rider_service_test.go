package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"nexus/config"
	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/event"
	"nexus/internal/domain/repository"
	"nexus/internal/domain/service"
	mockRepo "nexus/internal/mocks/repository"
	mockSvc "nexus/internal/mocks/service"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type riderServiceFixtures struct {
	service    usecase.RiderUsecase
	tx         txFixture
	riderRepo  *mockRepo.MockRiderRepository
	userRepo   *mockRepo.MockUserRepository
	ledgerRepo *mockRepo.MockLedgerRepository
	gateway    *mockSvc.MockPaymentGateway
	publisher  *recordingPublisher
}

func createTestRiderService(t *testing.T) riderServiceFixtures {
	fx := riderServiceFixtures{
		tx:         newTxFixture(t),
		riderRepo:  mockRepo.NewMockRiderRepository(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		ledgerRepo: mockRepo.NewMockLedgerRepository(t),
		gateway:    mockSvc.NewMockPaymentGateway(t),
		publisher:  &recordingPublisher{},
	}

	fx.tx.factory.EXPECT().NewRiderRepository().Return(fx.riderRepo).Maybe()
	fx.tx.factory.EXPECT().NewLedgerRepository().Return(fx.ledgerRepo).Maybe()

	fx.service = NewRiderService(RiderServiceParams{
		TxManager:  fx.tx.txManager,
		RiderRepo:  fx.riderRepo,
		UserRepo:   fx.userRepo,
		LedgerRepo: fx.ledgerRepo,
		Gateway:    fx.gateway,
		Publisher:  fx.publisher,
		Policy:     newTestPolicy(t),
		Config:     &config.Config{Gateway: &config.GatewayConfig{CallbackURL: "https://nexus.example/boosts/callback"}},
		Logger:     newDiscardLogger(),
	})

	return fx
}

func validApplication() *usecase.RiderApplicationInput {
	return &usecase.RiderApplicationInput{
		Phone:               " 0240000000 ",
		VehicleType:         entity.VehicleMotorcycle,
		VehicleRegistration: "GR-1234-21",
		Address:             "Osu, Accra",
		Documents:           entity.RiderDocuments{"license_front": "https://cdn/l.jpg"},
		AgreedToTerms:       true,
	}
}

func TestRiderService_SubmitApplication(t *testing.T) {
	t.Run("submitted", func(t *testing.T) {
		fx := createTestRiderService(t)
		userID := uuid.New()
		fx.riderRepo.EXPECT().FindOpenApplicationByUser(mock.Anything, userID).Return(nil, repository.ErrApplicationNotFound).Once()
		fx.riderRepo.EXPECT().CreateApplication(mock.Anything, mock.AnythingOfType("*entity.RiderApplication")).Return(nil).Once()

		app, err := fx.service.SubmitApplication(context.Background(), userID, validApplication())

		require.NoError(t, err)
		assert.Equal(t, entity.ApplicationSubmitted, app.Status)
		assert.Equal(t, "0240000000", app.Phone)
		assert.NotNil(t, app.SubmittedAt)
	})

	t.Run("open application exists", func(t *testing.T) {
		fx := createTestRiderService(t)
		userID := uuid.New()
		fx.riderRepo.EXPECT().FindOpenApplicationByUser(mock.Anything, userID).Return(&entity.RiderApplication{}, nil).Once()

		_, err := fx.service.SubmitApplication(context.Background(), userID, validApplication())

		assert.ErrorIs(t, err, domainerrors.ErrApplicationExists)
	})

	t.Run("terms not accepted", func(t *testing.T) {
		fx := createTestRiderService(t)
		input := validApplication()
		input.AgreedToTerms = false

		_, err := fx.service.SubmitApplication(context.Background(), uuid.New(), input)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		fx := createTestRiderService(t)
		input := validApplication()
		input.VehicleType = entity.VehicleType("hovercraft")

		_, err := fx.service.SubmitApplication(context.Background(), uuid.New(), input)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestRiderService_ReviewApplication(t *testing.T) {
	t.Run("approval creates the profile", func(t *testing.T) {
		fx := createTestRiderService(t)
		app := &entity.RiderApplication{
			ID:          uuid.New(),
			UserID:      uuid.New(),
			Status:      entity.ApplicationSubmitted,
			VehicleType: entity.VehicleBicycle,
			Documents:   entity.RiderDocuments{"id_card_front": "https://cdn/id.jpg"},
		}

		fx.riderRepo.EXPECT().LockApplication(mock.Anything, app.ID).Return(app, nil).Once()
		fx.riderRepo.EXPECT().UpdateApplication(mock.Anything, app).Return(nil).Once()
		fx.riderRepo.EXPECT().LockProfileByUserID(mock.Anything, app.UserID).Return(nil, repository.ErrRiderNotFound).Once()
		fx.riderRepo.EXPECT().
			SaveProfile(mock.Anything, mock.MatchedBy(func(p *entity.RiderProfile) bool {
				return p.UserID == app.UserID && p.IsApproved && !p.IsAvailable &&
					p.Documents["id_card_front"] == "https://cdn/id.jpg"
			})).
			Return(nil).
			Once()

		reviewed, err := fx.service.ReviewApplication(context.Background(), uuid.New(), app.ID, true, " ok ")

		require.NoError(t, err)
		assert.Equal(t, entity.ApplicationApproved, reviewed.Status)
		assert.Equal(t, "ok", reviewed.ReviewNotes)
		assert.Equal(t, []string{event.NameRiderApproved}, fx.publisher.names())
	})

	t.Run("rejecting an approved rider withdraws availability", func(t *testing.T) {
		fx := createTestRiderService(t)
		rider := availableRider()
		app := &entity.RiderApplication{ID: uuid.New(), UserID: rider.UserID, Status: entity.ApplicationApproved}

		fx.riderRepo.EXPECT().LockApplication(mock.Anything, app.ID).Return(app, nil).Once()
		fx.riderRepo.EXPECT().UpdateApplication(mock.Anything, app).Return(nil).Once()
		fx.riderRepo.EXPECT().LockProfileByUserID(mock.Anything, rider.UserID).Return(rider, nil).Once()
		fx.riderRepo.EXPECT().UpdateAvailability(mock.Anything, rider.ID, false, false).Return(nil).Once()

		reviewed, err := fx.service.ReviewApplication(context.Background(), uuid.New(), app.ID, false, "licence expired")

		require.NoError(t, err)
		assert.Equal(t, entity.ApplicationRejected, reviewed.Status)
		assert.Equal(t, []string{event.NameRiderDeapproved}, fx.publisher.names())
	})

	t.Run("rejected application is final", func(t *testing.T) {
		fx := createTestRiderService(t)
		app := &entity.RiderApplication{ID: uuid.New(), Status: entity.ApplicationRejected}
		fx.riderRepo.EXPECT().LockApplication(mock.Anything, app.ID).Return(app, nil).Once()

		_, err := fx.service.ReviewApplication(context.Background(), uuid.New(), app.ID, true, "")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})
}

func TestRiderService_SetAvailable(t *testing.T) {
	t.Run("unapproved rider cannot go online", func(t *testing.T) {
		fx := createTestRiderService(t)
		rider := availableRider()
		rider.IsApproved, rider.IsAvailable = false, false
		fx.riderRepo.EXPECT().LockProfileByUserID(mock.Anything, rider.UserID).Return(rider, nil).Once()

		_, err := fx.service.SetAvailable(context.Background(), rider.UserID, true)

		assert.ErrorIs(t, err, domainerrors.ErrNotApproved)
	})

	t.Run("no profile", func(t *testing.T) {
		fx := createTestRiderService(t)
		userID := uuid.New()
		fx.riderRepo.EXPECT().LockProfileByUserID(mock.Anything, userID).Return(nil, repository.ErrRiderNotFound).Once()

		_, err := fx.service.SetAvailable(context.Background(), userID, true)

		assert.ErrorIs(t, err, domainerrors.ErrNotApproved)
	})

	t.Run("going online publishes once", func(t *testing.T) {
		fx := createTestRiderService(t)
		rider := availableRider()
		rider.IsAvailable = false
		fx.riderRepo.EXPECT().LockProfileByUserID(mock.Anything, rider.UserID).Return(rider, nil).Times(2)
		fx.riderRepo.EXPECT().UpdateAvailability(mock.Anything, rider.ID, true, true).Return(nil).Once()

		profile, err := fx.service.SetAvailable(context.Background(), rider.UserID, true)
		require.NoError(t, err)
		assert.True(t, profile.IsAvailable)

		_, err = fx.service.SetAvailable(context.Background(), rider.UserID, true)
		require.NoError(t, err)
		assert.Equal(t, []string{event.NameRiderAvailabilityChanged}, fx.publisher.names())
	})
}

func TestRiderService_UpdateLocation_Range(t *testing.T) {
	fx := createTestRiderService(t)

	err := fx.service.UpdateLocation(context.Background(), uuid.New(), 91, 0)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRiderService_ActivateBoost(t *testing.T) {
	t.Run("free package is granted at once", func(t *testing.T) {
		fx := createTestRiderService(t)
		rider := availableRider()
		pkg := &entity.BoostPackage{ID: uuid.New(), Kind: entity.BoostSearchTop, Duration: 24 * time.Hour, IsActive: true}

		fx.riderRepo.EXPECT().FindProfileByUserID(mock.Anything, rider.UserID).Return(rider, nil).Once()
		fx.riderRepo.EXPECT().FindBoostPackageByID(mock.Anything, pkg.ID).Return(pkg, nil).Once()
		fx.riderRepo.EXPECT().CreateBoost(mock.Anything, mock.AnythingOfType("*entity.ActiveRiderBoost")).Return(nil).Once()

		activation, err := fx.service.ActivateBoost(context.Background(), rider.UserID, pkg.ID)

		require.NoError(t, err)
		require.NotNil(t, activation.Boost)
		assert.Empty(t, activation.AuthorizationURL)
		assert.Equal(t, rider.ID, activation.Boost.RiderID)
		assert.True(t, activation.Boost.IsEffective(time.Now()))
	})

	t.Run("paid package starts a gateway payment", func(t *testing.T) {
		fx := createTestRiderService(t)
		rider := availableRider()
		pkg := &entity.BoostPackage{ID: uuid.New(), Name: "Top of list", Kind: entity.BoostSearchTop, Price: dec("15.00"), IsActive: true}

		fx.riderRepo.EXPECT().FindProfileByUserID(mock.Anything, rider.UserID).Return(rider, nil).Once()
		fx.riderRepo.EXPECT().FindBoostPackageByID(mock.Anything, pkg.ID).Return(pkg, nil).Once()
		fx.userRepo.EXPECT().FindUserByID(mock.Anything, rider.UserID).Return(&entity.User{ID: rider.UserID, Email: "r@example.com"}, nil).Once()
		fx.gateway.EXPECT().
			Initialize(mock.Anything, mock.MatchedBy(func(req service.InitializeRequest) bool {
				return req.AmountMinor == 1500 && req.Currency == "GHS" && req.Email == "r@example.com" &&
					strings.HasPrefix(req.Reference, "NEXUS_BST_"+rider.ID.String()+"_"+pkg.ID.String()+"_")
			})).
			Return("https://pay/boost", nil).
			Once()
		fx.ledgerRepo.EXPECT().
			CreateTransaction(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
				return txn.Kind == entity.TxnBoostPurchase && txn.Status == entity.TxnPending && txn.Amount.Equal(dec("15.00"))
			})).
			Return(nil).
			Once()

		activation, err := fx.service.ActivateBoost(context.Background(), rider.UserID, pkg.ID)

		require.NoError(t, err)
		assert.Nil(t, activation.Boost)
		assert.Equal(t, "https://pay/boost", activation.AuthorizationURL)
	})

	t.Run("unapproved rider", func(t *testing.T) {
		fx := createTestRiderService(t)
		rider := availableRider()
		rider.IsApproved = false
		fx.riderRepo.EXPECT().FindProfileByUserID(mock.Anything, rider.UserID).Return(rider, nil).Once()

		_, err := fx.service.ActivateBoost(context.Background(), rider.UserID, uuid.New())

		assert.ErrorIs(t, err, domainerrors.ErrNotApproved)
	})
}

func TestRiderService_ConfirmBoostPayment(t *testing.T) {
	riderID, pkgID := uuid.New(), uuid.New()
	reference := "NEXUS_BST_" + riderID.String() + "_" + pkgID.String() + "_A1B2C3"
	pkg := &entity.BoostPackage{ID: pkgID, Kind: entity.BoostSearchTop, Duration: time.Hour, Price: dec("15.00"), IsActive: true}

	pendingPurchase := func() *entity.Transaction {
		return &entity.Transaction{ID: uuid.New(), Kind: entity.TxnBoostPurchase, Amount: dec("15.00"), Currency: "GHS", Status: entity.TxnPending}
	}

	t.Run("verified payment grants the boost", func(t *testing.T) {
		fx := createTestRiderService(t)
		txn := pendingPurchase()

		fx.ledgerRepo.EXPECT().FindTransactionByGatewayTxnID(mock.Anything, entity.TxnBoostPurchase, reference).Return(txn, nil).Once()
		fx.riderRepo.EXPECT().FindBoostPackageByID(mock.Anything, pkgID).Return(pkg, nil).Once()
		fx.gateway.EXPECT().Verify(mock.Anything, reference).
			Return(&service.Verification{Status: "success", Reference: reference, AmountMinor: 1500, Currency: "GHS", GatewayTxnID: "9"}, nil).
			Once()
		fx.ledgerRepo.EXPECT().UpdateTransactionStatus(mock.Anything, txn.ID, entity.TxnCompleted, "").Return(nil).Once()
		fx.riderRepo.EXPECT().CreateBoost(mock.Anything, mock.AnythingOfType("*entity.ActiveRiderBoost")).Return(nil).Once()

		boost, err := fx.service.ConfirmBoostPayment(context.Background(), reference)

		require.NoError(t, err)
		require.NotNil(t, boost)
		assert.Equal(t, riderID, boost.RiderID)
		assert.Equal(t, pkgID, boost.PackageID)
	})

	t.Run("already confirmed", func(t *testing.T) {
		fx := createTestRiderService(t)
		txn := pendingPurchase()
		txn.Status = entity.TxnCompleted
		fx.ledgerRepo.EXPECT().FindTransactionByGatewayTxnID(mock.Anything, entity.TxnBoostPurchase, reference).Return(txn, nil).Once()

		boost, err := fx.service.ConfirmBoostPayment(context.Background(), reference)

		require.NoError(t, err)
		assert.Nil(t, boost)
	})

	t.Run("amount mismatch", func(t *testing.T) {
		fx := createTestRiderService(t)
		fx.ledgerRepo.EXPECT().FindTransactionByGatewayTxnID(mock.Anything, entity.TxnBoostPurchase, reference).Return(pendingPurchase(), nil).Once()
		fx.riderRepo.EXPECT().FindBoostPackageByID(mock.Anything, pkgID).Return(pkg, nil).Once()
		fx.gateway.EXPECT().Verify(mock.Anything, reference).
			Return(&service.Verification{Status: "success", Reference: reference, AmountMinor: 100, Currency: "GHS"}, nil).
			Once()

		_, err := fx.service.ConfirmBoostPayment(context.Background(), reference)

		assert.ErrorIs(t, err, domainerrors.ErrAmountMismatch)
	})

	t.Run("malformed reference", func(t *testing.T) {
		fx := createTestRiderService(t)

		_, err := fx.service.ConfirmBoostPayment(context.Background(), "NEXUS_ORD_X_ABCDEF")

		assert.ErrorIs(t, err, domainerrors.ErrUnknownReference)
	})
}
