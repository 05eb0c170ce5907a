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

func createTestCartService(t *testing.T) (usecase.CartUsecase, *mockRepo.MockCartRepository, *mockRepo.MockCatalogRepository) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)

	return NewCartService(cartRepo, catalogRepo, newDiscardLogger()), cartRepo, catalogRepo
}

func TestCartService_AddItem(t *testing.T) {
	userID := uuid.New()
	approved := &entity.Vendor{ID: uuid.New(), VerificationStatus: entity.VerificationApproved}

	t.Run("active product", func(t *testing.T) {
		svc, cartRepo, catalogRepo := createTestCartService(t)
		product := &entity.Product{ID: uuid.New(), Vendor: approved, Kind: entity.ProductPhysical, IsActive: true}
		cart := &entity.Cart{ID: uuid.New(), UserID: userID, Status: entity.CartOpen}

		catalogRepo.EXPECT().FindProductByID(mock.Anything, product.ID).Return(product, nil).Once()
		cartRepo.EXPECT().FindOrCreateOpenCart(mock.Anything, userID).Return(cart, nil).Times(2)
		cartRepo.EXPECT().
			UpsertItem(mock.Anything, mock.MatchedBy(func(item *entity.CartItem) bool {
				return item.CartID == cart.ID && *item.ProductID == product.ID && item.Quantity == 2 && item.ServicePackageID == nil
			})).
			Return(nil).
			Once()

		got, err := svc.AddItem(context.Background(), userID, &usecase.AddCartItemInput{ProductID: &product.ID, Quantity: 2})

		require.NoError(t, err)
		assert.Equal(t, cart.ID, got.ID)
	})

	t.Run("inactive product", func(t *testing.T) {
		svc, _, catalogRepo := createTestCartService(t)
		product := &entity.Product{ID: uuid.New(), Vendor: approved, IsActive: false}
		catalogRepo.EXPECT().FindProductByID(mock.Anything, product.ID).Return(product, nil).Once()

		_, err := svc.AddItem(context.Background(), userID, &usecase.AddCartItemInput{ProductID: &product.ID, Quantity: 1})

		assert.ErrorIs(t, err, domainerrors.ErrUnavailable)
	})

	t.Run("unknown service package", func(t *testing.T) {
		svc, _, catalogRepo := createTestCartService(t)
		pkgID := uuid.New()
		catalogRepo.EXPECT().FindServicePackageByID(mock.Anything, pkgID).Return(nil, repository.ErrServicePackageNotFound).Once()

		_, err := svc.AddItem(context.Background(), userID, &usecase.AddCartItemInput{ServicePackageID: &pkgID, Quantity: 1})

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("exactly one reference", func(t *testing.T) {
		svc, _, _ := createTestCartService(t)
		a, b := uuid.New(), uuid.New()

		_, err := svc.AddItem(context.Background(), userID, &usecase.AddCartItemInput{ProductID: &a, ServicePackageID: &b, Quantity: 1})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		_, err = svc.AddItem(context.Background(), userID, &usecase.AddCartItemInput{Quantity: 1})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("zero quantity", func(t *testing.T) {
		svc, _, _ := createTestCartService(t)
		id := uuid.New()

		_, err := svc.AddItem(context.Background(), userID, &usecase.AddCartItemInput{ProductID: &id})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	userID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID, Status: entity.CartOpen}
	itemID := uuid.New()

	t.Run("positive quantity updates the line", func(t *testing.T) {
		svc, cartRepo, _ := createTestCartService(t)
		cartRepo.EXPECT().FindOpenCart(mock.Anything, userID).Return(cart, nil).Once()
		cartRepo.EXPECT().UpdateItemQuantity(mock.Anything, cart.ID, itemID, 4).Return(nil).Once()
		cartRepo.EXPECT().FindOrCreateOpenCart(mock.Anything, userID).Return(cart, nil).Once()

		_, err := svc.UpdateQuantity(context.Background(), userID, itemID, 4)

		require.NoError(t, err)
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		svc, cartRepo, _ := createTestCartService(t)
		cartRepo.EXPECT().FindOpenCart(mock.Anything, userID).Return(cart, nil).Once()
		cartRepo.EXPECT().DeleteItem(mock.Anything, cart.ID, itemID).Return(nil).Once()
		cartRepo.EXPECT().FindOrCreateOpenCart(mock.Anything, userID).Return(cart, nil).Once()

		_, err := svc.UpdateQuantity(context.Background(), userID, itemID, 0)

		require.NoError(t, err)
	})

	t.Run("line of another cart", func(t *testing.T) {
		svc, cartRepo, _ := createTestCartService(t)
		cartRepo.EXPECT().FindOpenCart(mock.Anything, userID).Return(cart, nil).Once()
		cartRepo.EXPECT().UpdateItemQuantity(mock.Anything, cart.ID, itemID, 2).Return(repository.ErrCartItemNotFound).Once()

		_, err := svc.UpdateQuantity(context.Background(), userID, itemID, 2)

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("no open cart", func(t *testing.T) {
		svc, cartRepo, _ := createTestCartService(t)
		cartRepo.EXPECT().FindOpenCart(mock.Anything, userID).Return(nil, repository.ErrCartNotFound).Once()

		_, err := svc.RemoveItem(context.Background(), userID, itemID)

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}
