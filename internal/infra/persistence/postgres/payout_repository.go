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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// payoutRepository implements the repository.PayoutRepository interface.
type payoutRepository struct {
	db *gorm.DB
}

// NewPayoutRepository is the constructor for payoutRepository.
func NewPayoutRepository(db *gorm.DB) repository.PayoutRepository {
	return &payoutRepository{
		db: db,
	}
}

// CreatePayoutRequest persists a payout request.
func (repo *payoutRepository) CreatePayoutRequest(ctx context.Context, req *entity.PayoutRequest) error {
	reqM := fromPayoutDomain(req)

	if err := repo.db.WithContext(ctx).Create(reqM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create payout request")
	}

	req.ID = reqM.ID
	req.CreatedAt = reqM.CreatedAt
	req.UpdatedAt = reqM.UpdatedAt

	return nil
}

// FindPayoutRequestByID retrieves a payout request by its unique ID.
func (repo *payoutRepository) FindPayoutRequestByID(ctx context.Context, id uuid.UUID) (*entity.PayoutRequest, error) {
	return repo.findPayout(repo.db.WithContext(ctx), id)
}

// LockPayoutRequest selects the payout request FOR UPDATE.
func (repo *payoutRepository) LockPayoutRequest(ctx context.Context, id uuid.UUID) (*entity.PayoutRequest, error) {
	return repo.findPayout(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (repo *payoutRepository) findPayout(db *gorm.DB, id uuid.UUID) (*entity.PayoutRequest, error) {
	var reqM model.PayoutRequestModel

	if err := db.Where("id = ?", id).First(&reqM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPayoutRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find payout request")
	}

	return toPayoutDomain(&reqM), nil
}

// LockBeneficiary takes a transaction-scoped advisory lock on the beneficiary, serialising payout requests.
func (repo *payoutRepository) LockBeneficiary(ctx context.Context, beneficiary entity.Beneficiary) error {
	key := string(beneficiary.Kind) + ":" + beneficiary.ProfileID.String()
	if err := repo.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to lock payout beneficiary")
	}

	return nil
}

// HasPendingRequest reports whether the beneficiary has a request that is pending or processing.
func (repo *payoutRepository) HasPendingRequest(ctx context.Context, beneficiary entity.Beneficiary) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PayoutRequestModel{}).
		Where("beneficiary_kind = ? AND beneficiary_profile_id = ? AND status IN ?",
			string(beneficiary.Kind), beneficiary.ProfileID,
			[]string{string(entity.PayoutPending), string(entity.PayoutProcessing)}).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check pending payout requests")
	}

	return count > 0, nil
}

// SumCompletedPayouts totals the completed payouts of a beneficiary.
func (repo *payoutRepository) SumCompletedPayouts(ctx context.Context, beneficiary entity.Beneficiary) (decimal.Decimal, error) {
	var total decimal.Decimal

	if err := repo.db.WithContext(ctx).
		Model(&model.PayoutRequestModel{}).
		Select("COALESCE(SUM(amount_requested), 0)").
		Where("beneficiary_kind = ? AND beneficiary_profile_id = ? AND status = ?",
			string(beneficiary.Kind), beneficiary.ProfileID, string(entity.PayoutCompleted)).
		Row().
		Scan(&total); err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum completed payouts")
	}

	return total, nil
}

// UpdatePayoutRequest writes the mutable review fields.
func (repo *payoutRepository) UpdatePayoutRequest(ctx context.Context, req *entity.PayoutRequest) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PayoutRequestModel{}).
		Where("id = ?", req.ID).
		Updates(map[string]interface{}{
			"status":         string(req.Status),
			"admin_notes":    req.AdminNotes,
			"transaction_id": req.TransactionID,
			"processed_at":   req.ProcessedAt,
			"updated_at":     time.Now(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payout request")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPayoutRequestNotFound
	}

	return nil
}

// FindPayoutRequestsByBeneficiary lists a beneficiary's requests, newest first.
func (repo *payoutRepository) FindPayoutRequestsByBeneficiary(ctx context.Context, beneficiary entity.Beneficiary) ([]*entity.PayoutRequest, error) {
	var reqModels []*model.PayoutRequestModel

	if err := repo.db.WithContext(ctx).
		Where("beneficiary_kind = ? AND beneficiary_profile_id = ?", string(beneficiary.Kind), beneficiary.ProfileID).
		Order("created_at DESC").
		Find(&reqModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find payout requests by beneficiary")
	}

	return toPayoutDomains(reqModels), nil
}

// FindPayoutRequestsByStatus lists requests in a status, oldest first.
func (repo *payoutRepository) FindPayoutRequestsByStatus(ctx context.Context, status entity.PayoutStatus, limit, offset int) ([]*entity.PayoutRequest, error) {
	var reqModels []*model.PayoutRequestModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&reqModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find payout requests by status")
	}

	return toPayoutDomains(reqModels), nil
}

// --- Mapper Functions ---

func toPayoutDomains(reqModels []*model.PayoutRequestModel) []*entity.PayoutRequest {
	reqs := make([]*entity.PayoutRequest, 0, len(reqModels))
	for _, reqM := range reqModels {
		reqs = append(reqs, toPayoutDomain(reqM))
	}

	return reqs
}

func toPayoutDomain(data *model.PayoutRequestModel) *entity.PayoutRequest {
	return &entity.PayoutRequest{
		ID: data.ID,
		Beneficiary: entity.Beneficiary{
			Kind:      entity.BeneficiaryKind(data.BeneficiaryKind),
			ProfileID: data.BeneficiaryProfileID,
			UserID:    data.BeneficiaryUserID,
		},
		AmountRequested: data.AmountRequested,
		Status:          entity.PayoutStatus(data.Status),
		PaymentDetails:  data.PaymentDetails,
		AdminNotes:      data.AdminNotes,
		TransactionID:   data.TransactionID,
		ProcessedAt:     data.ProcessedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromPayoutDomain(data *entity.PayoutRequest) *model.PayoutRequestModel {
	return &model.PayoutRequestModel{
		ID:                   data.ID,
		BeneficiaryKind:      string(data.Beneficiary.Kind),
		BeneficiaryProfileID: data.Beneficiary.ProfileID,
		BeneficiaryUserID:    data.Beneficiary.UserID,
		AmountRequested:      data.AmountRequested,
		Status:               string(data.Status),
		PaymentDetails:       data.PaymentDetails,
		AdminNotes:           data.AdminNotes,
		TransactionID:        data.TransactionID,
		ProcessedAt:          data.ProcessedAt,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
