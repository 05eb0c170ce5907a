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
)

// ledgerRepository implements the repository.LedgerRepository interface.
// The transactions table is append-only: there is no delete and completed rows are never updated.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository is the constructor for ledgerRepository.
func NewLedgerRepository(db *gorm.DB) repository.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// CreateTransaction appends a ledger entry.
func (repo *ledgerRepository) CreateTransaction(ctx context.Context, txn *entity.Transaction) error {
	txnM := fromTransactionDomain(txn)

	if err := repo.db.WithContext(ctx).Create(txnM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required transaction information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	txn.ID = txnM.ID
	txn.CreatedAt = txnM.CreatedAt
	txn.UpdatedAt = txnM.UpdatedAt

	return nil
}

// FindTransactionByID retrieves a ledger entry by its unique ID.
func (repo *ledgerRepository) FindTransactionByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var txnM model.TransactionModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&txnM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction by id")
	}

	return toTransactionDomain(&txnM), nil
}

// FindTransactionByGatewayTxnID finds the original entry of a kind for a gateway transaction id.
func (repo *ledgerRepository) FindTransactionByGatewayTxnID(ctx context.Context, kind entity.TransactionKind, gatewayTxnID string) (*entity.Transaction, error) {
	var txnM model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Where("kind = ? AND gateway_txn_id = ? AND reversal_of IS NULL", string(kind), gatewayTxnID).
		Order("created_at ASC").
		First(&txnM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction by gateway id")
	}

	return toTransactionDomain(&txnM), nil
}

// UpdateTransactionStatus moves a non-completed entry to status. An empty gatewayTxnID keeps the stored value.
func (repo *ledgerRepository) UpdateTransactionStatus(
	ctx context.Context,
	id uuid.UUID,
	status entity.TransactionStatus,
	gatewayTxnID string,
) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if gatewayTxnID != "" {
		updates["gateway_txn_id"] = gatewayTxnID
	}

	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ? AND status <> ?", id, string(entity.TxnCompleted)).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update transaction status")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check transaction existence")
	}
	if count == 0 {
		return repository.ErrTransactionNotFound
	}

	return repository.ErrTransactionImmutable
}

// FindTransactionsByUser lists a user's entries, newest first.
func (repo *ledgerRepository) FindTransactionsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Transaction, error) {
	var txnModels []*model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&txnModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find transactions by user")
	}

	txns := make([]*entity.Transaction, 0, len(txnModels))
	for _, txnM := range txnModels {
		txns = append(txns, toTransactionDomain(txnM))
	}

	return txns, nil
}

// SumCompleted totals the completed entries of a kind for a user, reversals included.
func (repo *ledgerRepository) SumCompleted(ctx context.Context, userID uuid.UUID, kind entity.TransactionKind) (decimal.Decimal, error) {
	var total decimal.Decimal

	if err := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND kind = ? AND status = ?", userID, string(kind), string(entity.TxnCompleted)).
		Row().
		Scan(&total); err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum completed transactions")
	}

	return total, nil
}

// --- Mapper Functions ---

func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	return &entity.Transaction{
		ID:           data.ID,
		Kind:         entity.TransactionKind(data.Kind),
		Amount:       data.Amount,
		Currency:     data.Currency,
		Status:       entity.TransactionStatus(data.Status),
		UserID:       data.UserID,
		OrderID:      data.OrderID,
		GatewayTxnID: data.GatewayTxnID,
		Description:  data.Description,
		ReversalOf:   data.ReversalOf,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	return &model.TransactionModel{
		ID:           data.ID,
		Kind:         string(data.Kind),
		Amount:       data.Amount,
		Currency:     data.Currency,
		Status:       string(data.Status),
		UserID:       data.UserID,
		OrderID:      data.OrderID,
		GatewayTxnID: data.GatewayTxnID,
		Description:  data.Description,
		ReversalOf:   data.ReversalOf,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
