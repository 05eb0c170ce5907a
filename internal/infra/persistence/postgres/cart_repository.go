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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindOpenCart returns the user's open cart with its items.
func (repo *cartRepository) FindOpenCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("user_id = ? AND status = ?", userID, string(entity.CartOpen)).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find open cart")
	}

	return toCartDomain(&cartM), nil
}

// FindOrCreateOpenCart returns the open cart, inserting an empty one when the user has none.
// The partial unique index on open carts makes concurrent creation converge on one row.
func (repo *cartRepository) FindOrCreateOpenCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := repo.FindOpenCart(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, err
	}

	cartM := &model.CartModel{
		ID:     uuid.New(),
		UserID: userID,
		Status: string(entity.CartOpen),
	}
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(cartM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	return repo.FindOpenCart(ctx, userID)
}

// UpsertItem merges the quantity into an existing line for the same product or package.
func (repo *cartRepository) UpsertItem(ctx context.Context, item *entity.CartItem) error {
	db := repo.db.WithContext(ctx)

	query := db.Model(&model.CartItemModel{}).Where("cart_id = ?", item.CartID)
	if item.ProductID != nil {
		query = query.Where("product_id = ?", *item.ProductID)
	} else {
		query = query.Where("service_package_id = ?", *item.ServicePackageID)
	}

	result := query.Update("quantity", gorm.Expr("quantity + ?", item.Quantity))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart item")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	itemM := fromCartItemDomain(item)
	if err := db.Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCartNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart item")
	}
	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt

	return nil
}

// UpdateItemQuantity sets the quantity of a cart line.
func (repo *cartRepository) UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Update("quantity", quantity)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart item quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// DeleteItem removes a cart line.
func (repo *cartRepository) DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&model.CartItemModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// MarkOrdered closes an open cart.
func (repo *cartRepository) MarkOrdered(ctx context.Context, cartID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ? AND status = ?", cartID, string(entity.CartOpen)).
		Updates(map[string]interface{}{
			"status":     string(entity.CartOrdered),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to close cart")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	items := make([]*entity.CartItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, &entity.CartItem{
			ID:               itemM.ID,
			CartID:           itemM.CartID,
			ProductID:        itemM.ProductID,
			ServicePackageID: itemM.ServicePackageID,
			Quantity:         itemM.Quantity,
			CreatedAt:        itemM.CreatedAt,
		})
	}

	return &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		Status:    entity.CartStatus(data.Status),
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	return &model.CartItemModel{
		ID:               data.ID,
		CartID:           data.CartID,
		ProductID:        data.ProductID,
		ServicePackageID: data.ServicePackageID,
		Quantity:         data.Quantity,
		CreatedAt:        data.CreatedAt,
	}
}
