package impl

import (
	"context"
	"testing"

	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/repository"
	mockRepo "nexus/internal/mocks/repository"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ledgerServiceFixtures struct {
	service    usecase.LedgerUsecase
	ledgerRepo *mockRepo.MockLedgerRepository
	taskRepo   *mockRepo.MockDeliveryTaskRepository
	orderRepo  *mockRepo.MockOrderRepository
	payoutRepo *mockRepo.MockPayoutRepository
}

func createTestLedgerService(t *testing.T) ledgerServiceFixtures {
	fx := ledgerServiceFixtures{
		ledgerRepo: mockRepo.NewMockLedgerRepository(t),
		taskRepo:   mockRepo.NewMockDeliveryTaskRepository(t),
		orderRepo:  mockRepo.NewMockOrderRepository(t),
		payoutRepo: mockRepo.NewMockPayoutRepository(t),
	}

	fx.service = NewLedgerService(LedgerServiceParams{
		TxManager:  mockRepo.NewMockTransactionManager(t),
		LedgerRepo: fx.ledgerRepo,
		TaskRepo:   fx.taskRepo,
		OrderRepo:  fx.orderRepo,
		PayoutRepo: fx.payoutRepo,
		Policy:     newTestPolicy(t),
		Logger:     newDiscardLogger(),
	})

	return fx
}

func TestLedgerService_Record(t *testing.T) {
	t.Run("defaults status and currency", func(t *testing.T) {
		fx := createTestLedgerService(t)
		fx.ledgerRepo.EXPECT().CreateTransaction(mock.Anything, mock.AnythingOfType("*entity.Transaction")).Return(nil).Once()

		txn, err := fx.service.Record(context.Background(), &usecase.RecordTransactionInput{
			Kind:   entity.TxnBoostPurchase,
			Amount: dec("19.999"),
		})

		require.NoError(t, err)
		assert.Equal(t, entity.TxnPending, txn.Status)
		assert.Equal(t, "GHS", txn.Currency)
		assert.True(t, dec("20.00").Equal(txn.Amount))
	})

	t.Run("unknown kind", func(t *testing.T) {
		fx := createTestLedgerService(t)

		_, err := fx.service.Record(context.Background(), &usecase.RecordTransactionInput{
			Kind:   entity.TransactionKind("gift"),
			Amount: dec("1"),
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestLedgerService_Complete(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "pending entry", repoErr: nil},
		{name: "completed entry is frozen", repoErr: repository.ErrTransactionImmutable, wantErr: domainerrors.ErrLedgerImmutable},
		{name: "unknown entry", repoErr: repository.ErrTransactionNotFound, wantErr: domainerrors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLedgerService(t)
			id := uuid.New()
			fx.ledgerRepo.EXPECT().UpdateTransactionStatus(mock.Anything, id, entity.TxnCompleted, "GW-1").Return(tt.repoErr).Once()

			err := fx.service.Complete(context.Background(), id, "GW-1")

			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLedgerService_Reverse(t *testing.T) {
	userID := uuid.New()
	completed := &entity.Transaction{
		ID:       uuid.New(),
		Kind:     entity.TxnPayment,
		Amount:   dec("62.50"),
		Currency: "GHS",
		Status:   entity.TxnCompleted,
		UserID:   &userID,
	}

	t.Run("offsetting entry", func(t *testing.T) {
		fx := createTestLedgerService(t)
		fx.ledgerRepo.EXPECT().FindTransactionByID(mock.Anything, completed.ID).Return(completed, nil).Once()
		fx.ledgerRepo.EXPECT().CreateTransaction(mock.Anything, mock.AnythingOfType("*entity.Transaction")).Return(nil).Once()

		reversal, err := fx.service.Reverse(context.Background(), completed.ID, " duplicate charge ")

		require.NoError(t, err)
		assert.NotEqual(t, completed.ID, reversal.ID)
		assert.True(t, dec("-62.50").Equal(reversal.Amount))
		assert.Equal(t, entity.TxnCompleted, reversal.Status)
		assert.Equal(t, completed.ID, *reversal.ReversalOf)
		assert.Equal(t, "Reversal of "+completed.ID.String()+": duplicate charge", reversal.Description)
		assert.True(t, dec("62.50").Equal(completed.Amount))
	})

	t.Run("pending entry", func(t *testing.T) {
		fx := createTestLedgerService(t)
		pending := *completed
		pending.Status = entity.TxnPending
		fx.ledgerRepo.EXPECT().FindTransactionByID(mock.Anything, pending.ID).Return(&pending, nil).Once()

		_, err := fx.service.Reverse(context.Background(), pending.ID, "")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})

	t.Run("reversal of a reversal", func(t *testing.T) {
		fx := createTestLedgerService(t)
		reversal := completed.Reversal("x")
		fx.ledgerRepo.EXPECT().FindTransactionByID(mock.Anything, reversal.ID).Return(reversal, nil).Once()

		_, err := fx.service.Reverse(context.Background(), reversal.ID, "")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})
}

func TestLedgerService_Balance(t *testing.T) {
	fx := createTestLedgerService(t)
	b := entity.Beneficiary{Kind: entity.BeneficiaryVendor, ProfileID: uuid.New(), UserID: uuid.New()}
	fx.orderRepo.EXPECT().SumVendorSales(mock.Anything, b.ProfileID).Return(dec("310.455"), nil).Once()
	fx.payoutRepo.EXPECT().SumCompletedPayouts(mock.Anything, b).Return(dec("100.00"), nil).Once()

	balance, err := fx.service.Balance(context.Background(), b)

	require.NoError(t, err)
	assert.Equal(t, "210.46", balance.StringFixed(2))
}

func TestLedgerService_ListForUser_ClampsPage(t *testing.T) {
	fx := createTestLedgerService(t)
	userID := uuid.New()
	fx.ledgerRepo.EXPECT().FindTransactionsByUser(mock.Anything, userID, maxPageSize, 0).Return(nil, nil).Once()

	_, err := fx.service.ListForUser(context.Background(), userID, 5000, -3)

	require.NoError(t, err)
}
