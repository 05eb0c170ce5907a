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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists an order with its items in one statement batch.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("order identifier already exists")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid order data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = orderM.ID
	}

	return nil
}

// FindOrderByID retrieves an order with its items.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOrder(repo.db.WithContext(ctx), "id = ?", id)
}

// FindOrderByPublicID retrieves an order with its items by public identifier.
func (repo *orderRepository) FindOrderByPublicID(ctx context.Context, publicID string) (*entity.Order, error) {
	return repo.findOrder(repo.db.WithContext(ctx), "public_id = ?", publicID)
}

// LockOrder selects the order row FOR UPDATE.
func (repo *orderRepository) LockOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOrder(repo.lockingDB(ctx), "id = ?", id)
}

// LockOrderByGatewayRef selects the order holding reference FOR UPDATE.
func (repo *orderRepository) LockOrderByGatewayRef(ctx context.Context, reference string) (*entity.Order, error) {
	return repo.findOrder(repo.lockingDB(ctx), "gateway_ref = ?", reference)
}

// FindOrderByGatewayRef retrieves the order holding reference.
func (repo *orderRepository) FindOrderByGatewayRef(ctx context.Context, reference string) (*entity.Order, error) {
	return repo.findOrder(repo.db.WithContext(ctx), "gateway_ref = ?", reference)
}

func (repo *orderRepository) lockingDB(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
}

func (repo *orderRepository) findOrder(db *gorm.DB, cond string, arg any) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := db.Where(cond, arg).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	// Items are loaded without the lock clause; they never change after creation.
	if err := repo.db.WithContext(db.Statement.Context).
		Where("order_id = ?", orderM.ID).
		Order("id").
		Find(&orderM.Items).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load order items")
	}

	return toOrderDomain(&orderM)
}

// UpdateOrder writes the non-nil fields of update.
func (repo *orderRepository) UpdateOrder(ctx context.Context, id uuid.UUID, update repository.OrderUpdate) error {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if update.Status != nil {
		updates["status"] = string(*update.Status)
	}
	if update.PaymentMethod != nil {
		updates["payment_method"] = update.PaymentMethod.String()
	}
	if update.GatewayRef != nil {
		updates["gateway_ref"] = *update.GatewayRef
	}
	if update.GatewayTxnID != nil {
		updates["gateway_txn_id"] = *update.GatewayTxnID
	}
	if update.CustomerConfirmedAt != nil {
		updates["customer_confirmed_at"] = *update.CustomerConfirmedAt
	}
	if update.CancelReason != nil {
		updates["cancel_reason"] = *update.CancelReason
	}
	if update.DisputeReason != nil {
		updates["dispute_reason"] = *update.DisputeReason
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("gateway reference already in use")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// FindOrdersByUser lists a customer's orders, newest first.
func (repo *orderRepository) FindOrdersByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	query := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// SumVendorSales sums line totals and item delivery charges of the vendor's product lines in COMPLETED orders.
func (repo *orderRepository) SumVendorSales(ctx context.Context, vendorID uuid.UUID) (decimal.Decimal, error) {
	return repo.sum(ctx, `
		SELECT COALESCE(SUM(oi.unit_price * oi.quantity + oi.item_delivery_charge), 0)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE oi.vendor_id = ? AND oi.product_id IS NOT NULL AND o.status = ?`,
		vendorID, string(entity.OrderCompleted))
}

// SumProviderSales sums line totals of the provider's service lines in COMPLETED orders.
func (repo *orderRepository) SumProviderSales(ctx context.Context, providerID uuid.UUID) (decimal.Decimal, error) {
	return repo.sum(ctx, `
		SELECT COALESCE(SUM(oi.unit_price * oi.quantity), 0)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE oi.provider_id = ? AND oi.service_package_id IS NOT NULL AND o.status = ?`,
		providerID, string(entity.OrderCompleted))
}

func (repo *orderRepository) sum(ctx context.Context, sql string, args ...any) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := repo.db.WithContext(ctx).Raw(sql, args...).Row().Scan(&total); err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum sales")
	}

	return total, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	status, err := entity.ParseOrderStatus(data.Status)
	if err != nil {
		return nil, errors.Wrapf(err, "order %s", data.ID)
	}

	var method entity.PaymentMethod
	if data.PaymentMethod != nil {
		if method, err = entity.ParsePaymentMethod(*data.PaymentMethod); err != nil {
			return nil, errors.Wrapf(err, "order %s", data.ID)
		}
	}

	order := &entity.Order{
		ID:                   data.ID,
		PublicID:             data.PublicID,
		UserID:               data.UserID,
		Status:               status,
		PaymentMethod:        method,
		GatewayTxnID:         data.GatewayTxnID,
		Currency:             data.Currency,
		Subtotal:             data.Subtotal,
		PlatformDeliveryFee:  data.PlatformDeliveryFee,
		VendorDeliveryFeeSum: data.VendorDeliveryFeeSum,
		Total:                data.Total,
		BillingSnapshot:      data.BillingSnapshot,
		ShippingSnapshot:     data.ShippingSnapshot,
		ShippingLatitude:     data.ShippingLatitude,
		ShippingLongitude:    data.ShippingLongitude,
		CustomerConfirmedAt:  data.CustomerConfirmedAt,
		CancelReason:         data.CancelReason,
		DisputeReason:        data.DisputeReason,
		Items:                make([]*entity.OrderItem, 0, len(data.Items)),
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
	if data.GatewayRef != nil {
		order.GatewayRef = *data.GatewayRef
	}

	for _, itemM := range data.Items {
		order.Items = append(order.Items, &entity.OrderItem{
			ID:                 itemM.ID,
			OrderID:            itemM.OrderID,
			ProductID:          itemM.ProductID,
			ServicePackageID:   itemM.ServicePackageID,
			VendorID:           itemM.VendorID,
			ProviderID:         itemM.ProviderID,
			ProductKind:        entity.ProductKind(itemM.ProductKind),
			CategorySlug:       itemM.CategorySlug,
			SnapshotName:       itemM.SnapshotName,
			UnitPrice:          itemM.UnitPrice,
			Quantity:           itemM.Quantity,
			FulfillmentMethod:  entity.FulfillmentMethod(itemM.FulfillmentMethod),
			ItemDeliveryCharge: itemM.ItemDeliveryCharge,
		})
	}

	return order, nil
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	orderM := &model.OrderModel{
		ID:                   data.ID,
		PublicID:             data.PublicID,
		UserID:               data.UserID,
		Status:               string(data.Status),
		GatewayTxnID:         data.GatewayTxnID,
		Currency:             data.Currency,
		Subtotal:             data.Subtotal,
		PlatformDeliveryFee:  data.PlatformDeliveryFee,
		VendorDeliveryFeeSum: data.VendorDeliveryFeeSum,
		Total:                data.Total,
		BillingSnapshot:      data.BillingSnapshot,
		ShippingSnapshot:     data.ShippingSnapshot,
		ShippingLatitude:     data.ShippingLatitude,
		ShippingLongitude:    data.ShippingLongitude,
		CustomerConfirmedAt:  data.CustomerConfirmedAt,
		CancelReason:         data.CancelReason,
		DisputeReason:        data.DisputeReason,
		Items:                make([]*model.OrderItemModel, 0, len(data.Items)),
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
	if data.PaymentMethod != nil {
		name := data.PaymentMethod.String()
		orderM.PaymentMethod = &name
	}
	if data.GatewayRef != "" {
		ref := data.GatewayRef
		orderM.GatewayRef = &ref
	}

	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, &model.OrderItemModel{
			ID:                 item.ID,
			OrderID:            item.OrderID,
			ProductID:          item.ProductID,
			ServicePackageID:   item.ServicePackageID,
			VendorID:           item.VendorID,
			ProviderID:         item.ProviderID,
			ProductKind:        string(item.ProductKind),
			CategorySlug:       item.CategorySlug,
			SnapshotName:       item.SnapshotName,
			UnitPrice:          item.UnitPrice,
			Quantity:           item.Quantity,
			FulfillmentMethod:  string(item.FulfillmentMethod),
			ItemDeliveryCharge: item.ItemDeliveryCharge,
		})
	}

	return orderM
}
