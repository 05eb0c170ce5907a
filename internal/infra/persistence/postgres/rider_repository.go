package postgres

import (
	"context"
	"time"

	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/repository"
	"nexus/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// riderRepository implements the repository.RiderRepository interface.
type riderRepository struct {
	db *gorm.DB
}

// NewRiderRepository is the constructor for riderRepository.
func NewRiderRepository(db *gorm.DB) repository.RiderRepository {
	return &riderRepository{
		db: db,
	}
}

// CreateApplication persists a rider application.
func (repo *riderRepository) CreateApplication(ctx context.Context, app *entity.RiderApplication) error {
	appM := fromApplicationDomain(app)

	if err := repo.db.WithContext(ctx).Create(appM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required application information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rider application")
	}

	app.ID = appM.ID
	app.CreatedAt = appM.CreatedAt
	app.UpdatedAt = appM.UpdatedAt

	return nil
}

// LockApplication selects an application FOR UPDATE.
func (repo *riderRepository) LockApplication(ctx context.Context, id uuid.UUID) (*entity.RiderApplication, error) {
	var appM model.RiderApplicationModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&appM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to lock rider application")
	}

	return toApplicationDomain(&appM), nil
}

// FindOpenApplicationByUser returns the user's newest application still awaiting a decision.
func (repo *riderRepository) FindOpenApplicationByUser(ctx context.Context, userID uuid.UUID) (*entity.RiderApplication, error) {
	var appM model.RiderApplicationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, []string{
			string(entity.ApplicationSubmitted),
			string(entity.ApplicationReviewed),
		}).
		Order("created_at DESC").
		First(&appM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find open rider application")
	}

	return toApplicationDomain(&appM), nil
}

// UpdateApplication writes status and review fields.
func (repo *riderRepository) UpdateApplication(ctx context.Context, app *entity.RiderApplication) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RiderApplicationModel{}).
		Where("id = ?", app.ID).
		Updates(map[string]interface{}{
			"status":       string(app.Status),
			"is_reviewed":  app.IsReviewed,
			"is_approved":  app.IsApproved,
			"review_notes": app.ReviewNotes,
			"reviewed_by":  app.ReviewedBy,
			"reviewed_at":  app.ReviewedAt,
			"updated_at":   time.Now(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rider application")
	}
	if result.RowsAffected == 0 {
		return repository.ErrApplicationNotFound
	}

	return nil
}

// FindProfileByUserID retrieves the rider profile of a user.
func (repo *riderRepository) FindProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.RiderProfile, error) {
	return repo.findProfile(repo.db.WithContext(ctx), "user_id = ?", userID)
}

// FindProfileByID retrieves a rider profile by its unique ID.
func (repo *riderRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.RiderProfile, error) {
	return repo.findProfile(repo.db.WithContext(ctx), "id = ?", id)
}

// LockProfileByUserID selects the user's rider profile FOR UPDATE.
func (repo *riderRepository) LockProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.RiderProfile, error) {
	return repo.findProfile(
		repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}),
		"user_id = ?", userID,
	)
}

func (repo *riderRepository) findProfile(db *gorm.DB, cond string, arg uuid.UUID) (*entity.RiderProfile, error) {
	var profileM model.RiderProfileModel

	if err := db.Where(cond, arg).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRiderNotFound
		}

		return nil, errors.Wrap(err, "failed to find rider profile")
	}

	return toProfileDomain(&profileM), nil
}

// SaveProfile inserts the profile or updates the existing row of the same user.
func (repo *riderRepository) SaveProfile(ctx context.Context, profile *entity.RiderProfile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"phone", "vehicle_type", "vehicle_registration", "license_number",
				"address", "documents", "is_approved", "is_available", "updated_at",
			}),
		}).
		Create(profileM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("an unapproved rider cannot be available")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save rider profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// UpdateAvailability sets approval and availability flags.
func (repo *riderRepository) UpdateAvailability(ctx context.Context, riderID uuid.UUID, isApproved, isAvailable bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RiderProfileModel{}).
		Where("id = ?", riderID).
		Updates(map[string]interface{}{
			"is_approved":  isApproved,
			"is_available": isAvailable,
			"updated_at":   time.Now(),
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrNotApproved
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rider availability")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRiderNotFound
	}

	return nil
}

// UpdateLocation stores the rider's last known coordinates.
func (repo *riderRepository) UpdateLocation(ctx context.Context, riderID uuid.UUID, lat, lng float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RiderProfileModel{}).
		Where("id = ?", riderID).
		Updates(map[string]interface{}{
			"current_latitude":  lat,
			"current_longitude": lng,
			"updated_at":        time.Now(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rider location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRiderNotFound
	}

	return nil
}

// FindDispatchCandidates returns approved, available riders with their boost flag and active load.
func (repo *riderRepository) FindDispatchCandidates(ctx context.Context, now time.Time) ([]*entity.DispatchCandidate, error) {
	activeStatuses := make([]string, 0, len(entity.ActiveTaskStatuses))
	for _, status := range entity.ActiveTaskStatuses {
		activeStatuses = append(activeStatuses, string(status))
	}

	var rows []*model.DispatchCandidateRow
	if err := repo.db.WithContext(ctx).Raw(`
		SELECT rp.*,
			EXISTS (
				SELECT 1 FROM active_rider_boosts b
				WHERE b.rider_id = rp.id AND b.kind = ? AND b.is_active AND b.expires_at > ?
			) AS boosted,
			(
				SELECT COUNT(*) FROM delivery_tasks t
				WHERE t.rider_id = rp.id AND t.status IN ?
			) AS active_load
		FROM rider_profiles rp
		WHERE rp.is_approved AND rp.is_available
		ORDER BY rp.id`,
		string(entity.BoostSearchTop), now, activeStatuses,
	).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find dispatch candidates")
	}

	candidates := make([]*entity.DispatchCandidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, &entity.DispatchCandidate{
			Rider:      toProfileDomain(&row.RiderProfileModel),
			Boosted:    row.Boosted,
			ActiveLoad: row.ActiveLoad,
		})
	}

	return candidates, nil
}

// FindBoostPackageByID retrieves a boost package.
func (repo *riderRepository) FindBoostPackageByID(ctx context.Context, id uuid.UUID) (*entity.BoostPackage, error) {
	var packageM model.BoostPackageModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&packageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBoostPackageNotFound
		}

		return nil, errors.Wrap(err, "failed to find boost package")
	}

	return toBoostPackageDomain(&packageM), nil
}

// FindActiveBoostPackages lists purchasable packages in display order.
func (repo *riderRepository) FindActiveBoostPackages(ctx context.Context) ([]*entity.BoostPackage, error) {
	var packageModels []*model.BoostPackageModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC, price ASC").
		Find(&packageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find boost packages")
	}

	packages := make([]*entity.BoostPackage, 0, len(packageModels))
	for _, packageM := range packageModels {
		packages = append(packages, toBoostPackageDomain(packageM))
	}

	return packages, nil
}

// CreateBoost persists a rider boost.
func (repo *riderRepository) CreateBoost(ctx context.Context, boost *entity.ActiveRiderBoost) error {
	boostM := &model.ActiveRiderBoostModel{
		ID:          boost.ID,
		RiderID:     boost.RiderID,
		PackageID:   boost.PackageID,
		Kind:        string(boost.Kind),
		ActivatedAt: boost.ActivatedAt,
		ExpiresAt:   boost.ExpiresAt,
		IsActive:    boost.IsActive,
	}

	if err := repo.db.WithContext(ctx).Create(boostM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create rider boost")
	}
	boost.ID = boostM.ID

	return nil
}

// FindEffectiveBoosts lists the rider's boosts effective at now.
func (repo *riderRepository) FindEffectiveBoosts(ctx context.Context, riderID uuid.UUID, now time.Time) ([]*entity.ActiveRiderBoost, error) {
	var boostModels []*model.ActiveRiderBoostModel

	if err := repo.db.WithContext(ctx).
		Where("rider_id = ? AND is_active = ? AND expires_at > ?", riderID, true, now).
		Order("expires_at DESC").
		Find(&boostModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find rider boosts")
	}

	boosts := make([]*entity.ActiveRiderBoost, 0, len(boostModels))
	for _, boostM := range boostModels {
		boosts = append(boosts, &entity.ActiveRiderBoost{
			ID:          boostM.ID,
			RiderID:     boostM.RiderID,
			PackageID:   boostM.PackageID,
			Kind:        entity.BoostKind(boostM.Kind),
			ActivatedAt: boostM.ActivatedAt,
			ExpiresAt:   boostM.ExpiresAt,
			IsActive:    boostM.IsActive,
		})
	}

	return boosts, nil
}

// DeactivateExpiredBoosts flips is_active off for boosts that expired.
func (repo *riderRepository) DeactivateExpiredBoosts(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ActiveRiderBoostModel{}).
		Where("is_active = ? AND expires_at <= ?", true, now).
		Update("is_active", false)

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate expired boosts")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toDocuments(data datatypes.JSONMap) entity.RiderDocuments {
	docs := make(entity.RiderDocuments, len(data))
	for kind, value := range data {
		if url, ok := value.(string); ok {
			docs[kind] = url
		}
	}

	return docs
}

func fromDocuments(docs entity.RiderDocuments) datatypes.JSONMap {
	data := make(datatypes.JSONMap, len(docs))
	for kind, url := range docs {
		data[kind] = url
	}

	return data
}

func toApplicationDomain(data *model.RiderApplicationModel) *entity.RiderApplication {
	return &entity.RiderApplication{
		ID:                  data.ID,
		UserID:              data.UserID,
		Status:              entity.ApplicationStatus(data.Status),
		Phone:               data.Phone,
		VehicleType:         entity.VehicleType(data.VehicleType),
		VehicleRegistration: data.VehicleRegistration,
		LicenseNumber:       data.LicenseNumber,
		Address:             data.Address,
		Documents:           toDocuments(data.Documents),
		AgreedToTerms:       data.AgreedToTerms,
		IsReviewed:          data.IsReviewed,
		IsApproved:          data.IsApproved,
		ReviewNotes:         data.ReviewNotes,
		ReviewedBy:          data.ReviewedBy,
		SubmittedAt:         data.SubmittedAt,
		ReviewedAt:          data.ReviewedAt,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromApplicationDomain(data *entity.RiderApplication) *model.RiderApplicationModel {
	return &model.RiderApplicationModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		Status:              string(data.Status),
		Phone:               data.Phone,
		VehicleType:         string(data.VehicleType),
		VehicleRegistration: data.VehicleRegistration,
		LicenseNumber:       data.LicenseNumber,
		Address:             data.Address,
		Documents:           fromDocuments(data.Documents),
		AgreedToTerms:       data.AgreedToTerms,
		IsReviewed:          data.IsReviewed,
		IsApproved:          data.IsApproved,
		ReviewNotes:         data.ReviewNotes,
		ReviewedBy:          data.ReviewedBy,
		SubmittedAt:         data.SubmittedAt,
		ReviewedAt:          data.ReviewedAt,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func toProfileDomain(data *model.RiderProfileModel) *entity.RiderProfile {
	return &entity.RiderProfile{
		ID:                  data.ID,
		UserID:              data.UserID,
		Phone:               data.Phone,
		VehicleType:         entity.VehicleType(data.VehicleType),
		VehicleRegistration: data.VehicleRegistration,
		LicenseNumber:       data.LicenseNumber,
		Address:             data.Address,
		Documents:           toDocuments(data.Documents),
		IsApproved:          data.IsApproved,
		IsAvailable:         data.IsAvailable,
		CurrentLatitude:     data.CurrentLatitude,
		CurrentLongitude:    data.CurrentLongitude,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.RiderProfile) *model.RiderProfileModel {
	return &model.RiderProfileModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		Phone:               data.Phone,
		VehicleType:         string(data.VehicleType),
		VehicleRegistration: data.VehicleRegistration,
		LicenseNumber:       data.LicenseNumber,
		Address:             data.Address,
		Documents:           fromDocuments(data.Documents),
		IsApproved:          data.IsApproved,
		IsAvailable:         data.IsAvailable,
		CurrentLatitude:     data.CurrentLatitude,
		CurrentLongitude:    data.CurrentLongitude,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func toBoostPackageDomain(data *model.BoostPackageModel) *entity.BoostPackage {
	return &entity.BoostPackage{
		ID:           data.ID,
		Name:         data.Name,
		Kind:         entity.BoostKind(data.Kind),
		Duration:     time.Duration(data.DurationSeconds) * time.Second,
		Price:        data.Price,
		IsActive:     data.IsActive,
		DisplayOrder: data.DisplayOrder,
	}
}
