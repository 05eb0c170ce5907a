package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"nexus/config"
	deliverycontext "nexus/internal/delivery/context"
	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/event"
	"nexus/internal/domain/repository"
	"nexus/internal/domain/service"
	"nexus/internal/errors"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const boostReferencePrefix = "NEXUS_BST_"

type riderService struct {
	txManager   repository.TransactionManager
	riderRepo   repository.RiderRepository
	userRepo    repository.UserRepository
	ledgerRepo  repository.LedgerRepository
	gateway     service.PaymentGateway
	publisher   event.Publisher
	policy      entity.MarketplacePolicy
	callbackURL string
	logger      *slog.Logger
}

// RiderServiceParams holds dependencies for RiderService, injected by Fx.
type RiderServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RiderRepo  repository.RiderRepository
	UserRepo   repository.UserRepository
	LedgerRepo repository.LedgerRepository
	Gateway    service.PaymentGateway
	Publisher  event.Publisher
	Policy     entity.MarketplacePolicy
	Config     *config.Config
	Logger     *slog.Logger
}

// NewRiderService creates the rider registry usecase.
func NewRiderService(params RiderServiceParams) usecase.RiderUsecase {
	callbackURL := ""
	if params.Config != nil && params.Config.Gateway != nil {
		callbackURL = params.Config.Gateway.CallbackURL
	}

	return &riderService{
		txManager:   params.TxManager,
		riderRepo:   params.RiderRepo,
		userRepo:    params.UserRepo,
		ledgerRepo:  params.LedgerRepo,
		gateway:     params.Gateway,
		publisher:   params.Publisher,
		policy:      params.Policy,
		callbackURL: callbackURL,
		logger:      params.Logger,
	}
}

func (srv *riderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitApplication files a rider application. A user has at most one application under review.
func (srv *riderService) SubmitApplication(
	ctx context.Context,
	userID uuid.UUID,
	input *usecase.RiderApplicationInput,
) (*entity.RiderApplication, error) {
	if !input.AgreedToTerms {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("terms must be accepted")
	}
	if !input.VehicleType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid vehicle type")
	}

	var app *entity.RiderApplication
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		riderRepo := factory.NewRiderRepository()

		_, err := riderRepo.FindOpenApplicationByUser(ctx, userID)
		if err == nil {
			return domainerrors.ErrApplicationExists
		}
		if !errors.Is(err, repository.ErrApplicationNotFound) {
			return errors.Wrap(err, "failed to check open application")
		}

		now := time.Now()
		app = &entity.RiderApplication{
			ID:                  uuid.New(),
			UserID:              userID,
			Status:              entity.ApplicationSubmitted,
			Phone:               strings.TrimSpace(input.Phone),
			VehicleType:         input.VehicleType,
			VehicleRegistration: strings.TrimSpace(input.VehicleRegistration),
			LicenseNumber:       strings.TrimSpace(input.LicenseNumber),
			Address:             strings.TrimSpace(input.Address),
			Documents:           input.Documents,
			AgreedToTerms:       true,
			SubmittedAt:         &now,
			CreatedAt:           now,
			UpdatedAt:           now,
		}

		return riderRepo.CreateApplication(ctx, app)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit rider application")
	}

	srv.log(ctx).Info("Rider application submitted",
		slog.String("user_id", userID.String()),
		slog.String("application_id", app.ID.String()),
	)

	return app, nil
}

// ReviewApplication approves or rejects an application. Rejecting a previously approved application
// withdraws the rider's approval and availability.
func (srv *riderService) ReviewApplication(
	ctx context.Context,
	operatorID, applicationID uuid.UUID,
	approve bool,
	notes string,
) (*entity.RiderApplication, error) {
	var (
		app    *entity.RiderApplication
		events []event.Event
	)

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		riderRepo := factory.NewRiderRepository()

		var err error
		app, err = riderRepo.LockApplication(ctx, applicationID)
		if err != nil {
			return notFound(err, repository.ErrApplicationNotFound, "rider application")
		}

		switch {
		case app.Status == entity.ApplicationSubmitted:
		case app.Status == entity.ApplicationApproved && !approve:
		default:
			return domainerrors.ErrInvalidTransition.WrapMessage("application is " + string(app.Status))
		}

		now := time.Now()
		app.IsReviewed = true
		app.IsApproved = approve
		app.ReviewNotes = strings.TrimSpace(notes)
		app.ReviewedBy = &operatorID
		app.ReviewedAt = &now
		app.UpdatedAt = now
		app.Status = entity.ApplicationRejected
		if approve {
			app.Status = entity.ApplicationApproved
		}

		if err := riderRepo.UpdateApplication(ctx, app); err != nil {
			return errors.Wrap(err, "failed to update application")
		}

		profile, err := riderRepo.LockProfileByUserID(ctx, app.UserID)
		if err != nil && !errors.Is(err, repository.ErrRiderNotFound) {
			return errors.Wrap(err, "failed to load rider profile")
		}

		if approve {
			if profile == nil {
				profile = &entity.RiderProfile{ID: uuid.New(), CreatedAt: now}
			}
			profile.ApplyApplication(app)
			profile.IsApproved = true
			profile.UpdatedAt = now

			if err := riderRepo.SaveProfile(ctx, profile); err != nil {
				return errors.Wrap(err, "failed to save rider profile")
			}
			events = append(events, event.RiderApproved{UserID: app.UserID, ApplicationID: app.ID})

			return nil
		}

		if profile != nil && profile.IsApproved {
			if err := riderRepo.UpdateAvailability(ctx, profile.ID, false, false); err != nil {
				return errors.Wrap(err, "failed to withdraw rider approval")
			}
			events = append(events, event.RiderDeapproved{UserID: app.UserID, ApplicationID: app.ID})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Rider application reviewed",
		slog.String("application_id", app.ID.String()),
		slog.String("operator_id", operatorID.String()),
		slog.Bool("approved", approve),
	)
	publishCommitted(ctx, srv.publisher, srv.log(ctx), events)

	return app, nil
}

func (srv *riderService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.RiderProfile, error) {
	profile, err := srv.riderRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		return nil, notFound(err, repository.ErrRiderNotFound, "rider profile")
	}

	return profile, nil
}

// SetAvailable toggles availability. Only approved riders may become available.
func (srv *riderService) SetAvailable(ctx context.Context, userID uuid.UUID, available bool) (*entity.RiderProfile, error) {
	var (
		profile *entity.RiderProfile
		changed bool
	)

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		riderRepo := factory.NewRiderRepository()

		var err error
		profile, err = riderRepo.LockProfileByUserID(ctx, userID)
		if errors.Is(err, repository.ErrRiderNotFound) {
			return domainerrors.ErrNotApproved
		}
		if err != nil {
			return errors.Wrap(err, "failed to load rider profile")
		}
		if available && !profile.IsApproved {
			return domainerrors.ErrNotApproved
		}
		if profile.IsAvailable == available {
			return nil
		}

		if err := riderRepo.UpdateAvailability(ctx, profile.ID, profile.IsApproved, available); err != nil {
			return errors.Wrap(err, "failed to update availability")
		}
		profile.IsAvailable = available
		changed = true

		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		publishCommitted(ctx, srv.publisher, srv.log(ctx), []event.Event{
			event.RiderAvailabilityChanged{RiderID: profile.ID, Available: available},
		})
	}

	return profile, nil
}

func (srv *riderService) UpdateLocation(ctx context.Context, userID uuid.UUID, lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return domainerrors.ErrValidationFailed.WrapMessage("coordinates out of range")
	}

	profile, err := srv.riderRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		return notFound(err, repository.ErrRiderNotFound, "rider profile")
	}

	return errors.Wrap(srv.riderRepo.UpdateLocation(ctx, profile.ID, lat, lng), "failed to update location")
}

func (srv *riderService) ListBoostPackages(ctx context.Context) ([]*entity.BoostPackage, error) {
	packages, err := srv.riderRepo.FindActiveBoostPackages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list boost packages")
	}

	return packages, nil
}

// ActivateBoost grants a free package at once. A paid package starts a gateway payment and records a
// pending boost purchase; the boost is granted by ConfirmBoostPayment.
func (srv *riderService) ActivateBoost(ctx context.Context, userID, packageID uuid.UUID) (*usecase.BoostActivation, error) {
	profile, err := srv.riderRepo.FindProfileByUserID(ctx, userID)
	if errors.Is(err, repository.ErrRiderNotFound) {
		return nil, domainerrors.ErrNotApproved
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load rider profile")
	}
	if !profile.IsApproved {
		return nil, domainerrors.ErrNotApproved
	}

	pkg, err := srv.riderRepo.FindBoostPackageByID(ctx, packageID)
	if err != nil {
		return nil, notFound(err, repository.ErrBoostPackageNotFound, "boost package")
	}
	if !pkg.IsActive {
		return nil, domainerrors.ErrNotFound.WrapMessage("boost package not found")
	}

	if pkg.IsFree() {
		boost := newBoost(profile.ID, pkg, time.Now())
		if err := srv.riderRepo.CreateBoost(ctx, boost); err != nil {
			return nil, errors.Wrap(err, "failed to create boost")
		}

		return &usecase.BoostActivation{Boost: boost}, nil
	}

	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, repository.ErrUserNotFound, "user")
	}

	reference := pkg.NewReference(profile.ID)
	authURL, err := srv.gateway.Initialize(ctx, service.InitializeRequest{
		Email:       user.Email,
		AmountMinor: entity.MinorUnits(pkg.Price),
		Currency:    srv.policy.Currency(),
		Reference:   reference,
		CallbackURL: srv.callbackURL,
		Metadata: map[string]string{
			"user_id":    userID.String(),
			"package_id": pkg.ID.String(),
		},
	})
	if err != nil {
		return nil, err
	}

	txn, err := newTransaction(&usecase.RecordTransactionInput{
		Kind:         entity.TxnBoostPurchase,
		Amount:       pkg.Price,
		Currency:     srv.policy.Currency(),
		Status:       entity.TxnPending,
		UserID:       &userID,
		GatewayTxnID: reference,
		Description:  "Boost purchase: " + pkg.Name,
	}, srv.policy.Currency())
	if err != nil {
		return nil, err
	}
	if err := srv.ledgerRepo.CreateTransaction(ctx, txn); err != nil {
		return nil, errors.Wrap(err, "failed to record boost purchase")
	}

	return &usecase.BoostActivation{AuthorizationURL: authURL, Reference: reference}, nil
}

// ConfirmBoostPayment verifies a boost payment and grants the boost. A reference that was already
// confirmed returns a nil boost and no error.
func (srv *riderService) ConfirmBoostPayment(ctx context.Context, reference string) (*entity.ActiveRiderBoost, error) {
	riderID, packageID, err := parseBoostReference(reference)
	if err != nil {
		return nil, err
	}

	txn, err := srv.ledgerRepo.FindTransactionByGatewayTxnID(ctx, entity.TxnBoostPurchase, reference)
	if errors.Is(err, repository.ErrTransactionNotFound) {
		return nil, domainerrors.ErrUnknownReference
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load boost purchase")
	}
	if txn.IsCompleted() {
		return nil, nil
	}

	pkg, err := srv.riderRepo.FindBoostPackageByID(ctx, packageID)
	if err != nil {
		return nil, notFound(err, repository.ErrBoostPackageNotFound, "boost package")
	}

	verification, err := srv.gateway.Verify(ctx, reference)
	if err != nil {
		return nil, err
	}
	if !verification.IsSuccess() {
		return nil, domainerrors.ErrPaymentNotSuccessful
	}
	if !verification.IsFor(reference) {
		return nil, domainerrors.ErrUnknownReference
	}
	if verification.AmountMinor != entity.MinorUnits(txn.Amount) {
		return nil, domainerrors.ErrAmountMismatch
	}
	if !strings.EqualFold(verification.Currency, txn.Currency) {
		return nil, domainerrors.ErrCurrencyMismatch
	}

	var boost *entity.ActiveRiderBoost
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		ledgerRepo := factory.NewLedgerRepository()

		err := ledgerRepo.UpdateTransactionStatus(ctx, txn.ID, entity.TxnCompleted, "")
		if errors.Is(err, repository.ErrTransactionImmutable) {
			return domainerrors.ErrAlreadyProcessed
		}
		if err != nil {
			return errors.Wrap(err, "failed to complete boost purchase")
		}

		boost = newBoost(riderID, pkg, time.Now())

		return factory.NewRiderRepository().CreateBoost(ctx, boost)
	})
	if errors.Is(err, domainerrors.ErrAlreadyProcessed) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Boost activated",
		slog.String("rider_id", riderID.String()),
		slog.String("package_id", packageID.String()),
		slog.String("gateway_txn_id", verification.GatewayTxnID),
	)

	return boost, nil
}

// ExpireBoosts deactivates boosts past their expiry.
func (srv *riderService) ExpireBoosts(ctx context.Context) (int64, error) {
	n, err := srv.riderRepo.DeactivateExpiredBoosts(ctx, time.Now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to expire boosts")
	}

	return n, nil
}

func newBoost(riderID uuid.UUID, pkg *entity.BoostPackage, now time.Time) *entity.ActiveRiderBoost {
	return &entity.ActiveRiderBoost{
		ID:          uuid.New(),
		RiderID:     riderID,
		PackageID:   pkg.ID,
		Kind:        pkg.Kind,
		ActivatedAt: now,
		ExpiresAt:   now.Add(pkg.Duration),
		IsActive:    true,
	}
}

// parseBoostReference splits NEXUS_BST_{riderId}_{packageId}_{hex6}.
func parseBoostReference(reference string) (riderID, packageID uuid.UUID, err error) {
	parts := strings.Split(strings.TrimPrefix(reference, boostReferencePrefix), "_")
	if !strings.HasPrefix(reference, boostReferencePrefix) || len(parts) != 3 {
		return uuid.Nil, uuid.Nil, domainerrors.ErrUnknownReference
	}

	if riderID, err = uuid.Parse(parts[0]); err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrUnknownReference
	}
	if packageID, err = uuid.Parse(parts[1]); err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrUnknownReference
	}

	return riderID, packageID, nil
}
