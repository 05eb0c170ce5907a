package impl

import (
	"context"
	"log/slog"
	"time"

	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/repository"
	"nexus/internal/errors"
	"nexus/internal/usecase"

	"github.com/google/uuid"
)

type cartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(
	cartRepo repository.CartRepository,
	catalogRepo repository.CatalogRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// GetCart returns the open cart, creating an empty one on first use.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.FindOrCreateOpenCart(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

// AddItem puts a product or a service package in the cart. Quantities of the same line are merged.
func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, input *usecase.AddCartItemInput) (*entity.Cart, error) {
	if (input.ProductID == nil) == (input.ServicePackageID == nil) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("exactly one of product_id or service_package_id is required")
	}
	if input.Quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
	}

	if input.ProductID != nil {
		product, err := s.catalogRepo.FindProductByID(ctx, *input.ProductID)
		if err != nil {
			return nil, notFound(err, repository.ErrProductNotFound, "product")
		}
		if !product.IsAvailable() {
			return nil, domainerrors.ErrUnavailable
		}
	} else {
		pkg, err := s.catalogRepo.FindServicePackageByID(ctx, *input.ServicePackageID)
		if err != nil {
			return nil, notFound(err, repository.ErrServicePackageNotFound, "service package")
		}
		if !pkg.IsAvailable() {
			return nil, domainerrors.ErrUnavailable
		}
	}

	cart, err := s.cartRepo.FindOrCreateOpenCart(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	item := &entity.CartItem{
		ID:               uuid.New(),
		CartID:           cart.ID,
		ProductID:        input.ProductID,
		ServicePackageID: input.ServicePackageID,
		Quantity:         input.Quantity,
		CreatedAt:        time.Now(),
	}
	if err := s.cartRepo.UpsertItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}

	return s.GetCart(ctx, userID)
}

func (s *cartService) UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return s.RemoveItem(ctx, userID, itemID)
	}

	cart, err := s.openCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.UpdateItemQuantity(ctx, cart.ID, itemID, quantity); err != nil {
		return nil, notFound(err, repository.ErrCartItemNotFound, "cart item")
	}

	return s.GetCart(ctx, userID)
}

func (s *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.openCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.DeleteItem(ctx, cart.ID, itemID); err != nil {
		return nil, notFound(err, repository.ErrCartItemNotFound, "cart item")
	}

	return s.GetCart(ctx, userID)
}

func (s *cartService) openCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.FindOpenCart(ctx, userID)
	if err != nil {
		return nil, notFound(err, repository.ErrCartNotFound, "cart")
	}

	return cart, nil
}
