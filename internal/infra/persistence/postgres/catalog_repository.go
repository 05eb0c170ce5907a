package postgres

import (
	"context"

	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/repository"
	"nexus/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// FindProductByID retrieves a product together with its vendor.
func (repo *catalogRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Vendor").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// LockProducts selects the product rows FOR UPDATE. Rows are locked in id order so that
// concurrent checkouts over overlapping carts cannot deadlock.
func (repo *catalogRepository) LockProducts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error) {
	result := make(map[uuid.UUID]*entity.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id IN ?", ids).
		Order("id").
		Find(&productModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to lock products")
	}

	vendorIDs := make([]uuid.UUID, 0, len(productModels))
	for _, productM := range productModels {
		vendorIDs = append(vendorIDs, productM.VendorID)
	}

	var vendorModels []*model.VendorModel
	if len(vendorIDs) > 0 {
		if err := repo.db.WithContext(ctx).
			Where("id IN ?", vendorIDs).
			Find(&vendorModels).Error; err != nil {
			return nil, errors.Wrap(err, "failed to load product vendors")
		}
	}
	vendors := make(map[uuid.UUID]*model.VendorModel, len(vendorModels))
	for _, vendorM := range vendorModels {
		vendors[vendorM.ID] = vendorM
	}

	for _, productM := range productModels {
		productM.Vendor = vendors[productM.VendorID]
		result[productM.ID] = toProductDomain(productM)
	}

	return result, nil
}

// AdjustStock adds delta to a physical product's stock, refusing to go below zero.
func (repo *catalogRepository) AdjustStock(ctx context.Context, productID uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND kind = ? AND stock + ? >= 0", productID, string(entity.ProductPhysical), delta).
		Update("stock", gorm.Expr("stock + ?", delta))

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrStockConflict
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to adjust stock")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where("id = ?", productID).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check product existence")
		}
		if count == 0 {
			return repository.ErrProductNotFound
		}

		return repository.ErrStockConflict
	}

	return nil
}

// FindServicePackageByID retrieves a service package together with its provider.
func (repo *catalogRepository) FindServicePackageByID(ctx context.Context, id uuid.UUID) (*entity.ServicePackage, error) {
	var packageM model.ServicePackageModel

	if err := repo.db.WithContext(ctx).
		Preload("Provider").
		Where("id = ?", id).
		First(&packageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServicePackageNotFound
		}

		return nil, errors.Wrap(err, "failed to find service package by ID")
	}

	return toServicePackageDomain(&packageM), nil
}

// FindVendorByID retrieves a vendor by its unique ID.
func (repo *catalogRepository) FindVendorByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	return repo.findVendor(ctx, "id = ?", id)
}

// FindVendorByUserID retrieves the vendor owned by a user.
func (repo *catalogRepository) FindVendorByUserID(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	return repo.findVendor(ctx, "user_id = ?", userID)
}

func (repo *catalogRepository) findVendor(ctx context.Context, cond string, arg uuid.UUID) (*entity.Vendor, error) {
	var vendorM model.VendorModel

	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor")
	}

	return toVendorDomain(&vendorM), nil
}

// FindProviderByUserID retrieves the service provider owned by a user.
func (repo *catalogRepository) FindProviderByUserID(ctx context.Context, userID uuid.UUID) (*entity.ServiceProvider, error) {
	var providerM model.ServiceProviderModel

	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&providerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProviderNotFound
		}

		return nil, errors.Wrap(err, "failed to find service provider by user")
	}

	return toProviderDomain(&providerM), nil
}

// --- Mapper Functions ---

func toVendorDomain(data *model.VendorModel) *entity.Vendor {
	if data == nil {
		return nil
	}

	return &entity.Vendor{
		ID:                       data.ID,
		UserID:                   data.UserID,
		Name:                     data.Name,
		City:                     data.City,
		Country:                  data.Country,
		Latitude:                 data.Latitude,
		Longitude:                data.Longitude,
		VerificationStatus:       entity.VerificationStatus(data.VerificationStatus),
		DefaultFulfillmentMethod: entity.FulfillmentMethod(data.DefaultFulfillmentMethod),
		MobileMoneyProvider:      data.MobileMoneyProvider,
		MobileMoneyNumber:        data.MobileMoneyNumber,
		CreatedAt:                data.CreatedAt,
		UpdatedAt:                data.UpdatedAt,
	}
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:                data.ID,
		VendorID:          data.VendorID,
		Vendor:            toVendorDomain(data.Vendor),
		Name:              data.Name,
		Kind:              entity.ProductKind(data.Kind),
		Stock:             data.Stock,
		Price:             data.Price,
		CategorySlug:      data.CategorySlug,
		VendorDeliveryFee: data.VendorDeliveryFee,
		IsActive:          data.IsActive,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
	if data.FulfillmentMethod != nil {
		method := entity.FulfillmentMethod(*data.FulfillmentMethod)
		product.FulfillmentMethod = &method
	}

	return product
}

func toProviderDomain(data *model.ServiceProviderModel) *entity.ServiceProvider {
	if data == nil {
		return nil
	}

	return &entity.ServiceProvider{
		ID:         data.ID,
		UserID:     data.UserID,
		Name:       data.Name,
		IsApproved: data.IsApproved,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toServicePackageDomain(data *model.ServicePackageModel) *entity.ServicePackage {
	if data == nil {
		return nil
	}

	return &entity.ServicePackage{
		ID:           data.ID,
		ServiceID:    data.ServiceID,
		ProviderID:   data.ProviderID,
		Provider:     toProviderDomain(data.Provider),
		Title:        data.Title,
		Price:        data.Price,
		DeliveryDays: data.DeliveryDays,
		Revisions:    data.Revisions,
		IsActive:     data.IsActive,
	}
}
