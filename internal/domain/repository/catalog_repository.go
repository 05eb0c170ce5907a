package repository

import (
	"context"
	"errors"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrServicePackageNotFound is returned when a service package is not found.
	ErrServicePackageNotFound = errors.New("service package not found")
	// ErrVendorNotFound is returned when a vendor is not found.
	ErrVendorNotFound = errors.New("vendor not found")
	// ErrProviderNotFound is returned when a service provider is not found.
	ErrProviderNotFound = errors.New("service provider not found")
	// ErrStockConflict is returned when a stock update would make stock negative.
	ErrStockConflict = errors.New("stock update conflict")
)

// CatalogRepository reads sellers and their offerings, and moves product stock.
type CatalogRepository interface {
	// FindProductByID retrieves a product together with its vendor.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// LockProducts selects the products FOR UPDATE in id order, with their vendors.
	// Missing ids are absent from the result map.
	LockProducts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error)

	// AdjustStock adds delta to the stock of a physical product. Returns ErrStockConflict if the result would be negative.
	AdjustStock(ctx context.Context, productID uuid.UUID, delta int) error

	// FindServicePackageByID retrieves a service package together with its provider.
	FindServicePackageByID(ctx context.Context, id uuid.UUID) (*entity.ServicePackage, error)

	// FindVendorByID retrieves a vendor.
	FindVendorByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)

	// FindVendorByUserID retrieves the vendor owned by a user.
	FindVendorByUserID(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error)

	// FindProviderByUserID retrieves the service provider owned by a user.
	FindProviderByUserID(ctx context.Context, userID uuid.UUID) (*entity.ServiceProvider, error)
}
