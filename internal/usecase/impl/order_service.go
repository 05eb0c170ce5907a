package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "nexus/internal/delivery/context"
	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/event"
	"nexus/internal/domain/repository"
	"nexus/internal/domain/service"
	"nexus/internal/errors"
	"nexus/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher event.Publisher
	policy    entity.MarketplacePolicy
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher event.Publisher
	Policy    entity.MarketplacePolicy
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewOrderService creates the order assembler.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		policy:    params.Policy,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// cartLine is a cart item resolved against the catalog.
type cartLine struct {
	item    *entity.CartItem
	product *entity.Product
	pkg     *entity.ServicePackage
}

// Assemble turns the customer's open cart into a PENDING order. Product rows stay locked until commit,
// so concurrent checkouts of the same product serialise and cannot oversell. Either every step
// succeeds or nothing is written.
func (srv *orderService) Assemble(ctx context.Context, userID uuid.UUID, input *usecase.AssembleOrderInput) (*usecase.AssembledOrder, error) {
	var (
		order  *entity.Order
		events []event.Event
	)

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		cartRepo := factory.NewCartRepository()
		catalogRepo := factory.NewCatalogRepository()
		orderRepo := factory.NewOrderRepository()

		cart, err := cartRepo.FindOpenCart(ctx, userID)
		if errors.Is(err, repository.ErrCartNotFound) {
			return domainerrors.ErrEmptyCart
		}
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}
		if cart.IsEmpty() {
			return domainerrors.ErrEmptyCart
		}

		lines, err := resolveCartLines(ctx, catalogRepo, cart)
		if err != nil {
			return err
		}

		requiresShipping := slices.ContainsFunc(lines, func(l cartLine) bool {
			return l.product != nil && l.product.IsPhysical()
		})

		addressRepo := factory.NewAddressRepository()
		billing, err := ownedAddress(ctx, addressRepo, userID, &input.BillingAddressID)
		if err != nil {
			return err
		}
		if billing == nil {
			return domainerrors.ErrInvalidAddress.WrapMessage("billing address is required")
		}
		shipping, err := ownedAddress(ctx, addressRepo, userID, input.ShippingAddressID)
		if err != nil {
			return err
		}
		if requiresShipping && shipping == nil {
			return domainerrors.ErrInvalidAddress.WrapMessage("shipping address is required")
		}

		order = srv.buildOrder(userID, lines, billing, shipping)
		if err := orderRepo.CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		for _, l := range lines {
			if l.product == nil || !l.product.IsPhysical() {
				continue
			}
			err := catalogRepo.AdjustStock(ctx, l.product.ID, -l.item.Quantity)
			if errors.Is(err, repository.ErrStockConflict) {
				return domainerrors.ErrInsufficientStock.WrapMessage(l.product.Name)
			}
			if err != nil {
				return errors.Wrap(err, "failed to decrement stock")
			}
		}

		if err := cartRepo.MarkOrdered(ctx, cart.ID); err != nil {
			return errors.Wrap(err, "failed to close cart")
		}

		events = append(events, event.OrderPlaced{
			OrderID:  order.ID,
			PublicID: order.PublicID,
			UserID:   userID,
			Total:    order.Total,
			Currency: order.Currency,
		})

		if input.PaymentMethod == nil {
			return nil
		}

		choice, err := order.PaymentEligibility(srv.policy).Choose(input.PaymentMethod)
		if err != nil {
			return paymentChoiceError(err)
		}
		changed, err := applyPaymentChoice(ctx, orderRepo, order, choice)
		if err != nil {
			return err
		}
		events = append(events, changed)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.metrics.OrderPlaced(entity.PaymentMethodName(order.PaymentMethod))
	srv.log(ctx).Info("Order assembled",
		slog.String("order_id", order.ID.String()),
		slog.String("public_id", order.PublicID),
		slog.String("total", order.Total.StringFixed(2)),
	)
	publishCommitted(ctx, srv.publisher, srv.log(ctx), events)

	return &usecase.AssembledOrder{
		Order:           order,
		EligibleMethods: order.PaymentEligibility(srv.policy).Methods(),
	}, nil
}

// resolveCartLines locks every product of the cart and checks availability and stock.
func resolveCartLines(ctx context.Context, catalogRepo repository.CatalogRepository, cart *entity.Cart) ([]cartLine, error) {
	productIDs := make([]uuid.UUID, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ProductID != nil {
			productIDs = append(productIDs, *item.ProductID)
		}
	}

	products, err := catalogRepo.LockProducts(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock products")
	}

	lines := make([]cartLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.IsService() {
			pkg, err := catalogRepo.FindServicePackageByID(ctx, *item.ServicePackageID)
			if errors.Is(err, repository.ErrServicePackageNotFound) {
				return nil, domainerrors.ErrUnavailable
			}
			if err != nil {
				return nil, errors.Wrap(err, "failed to load service package")
			}
			if !pkg.IsAvailable() {
				return nil, domainerrors.ErrUnavailable.WrapMessage(pkg.Title)
			}
			lines = append(lines, cartLine{item: item, pkg: pkg})

			continue
		}

		product := products[*item.ProductID]
		if !product.IsAvailable() {
			return nil, domainerrors.ErrUnavailable
		}
		if !product.HasStockFor(item.Quantity) {
			return nil, domainerrors.ErrInsufficientStock.WrapMessage(product.Name)
		}
		lines = append(lines, cartLine{item: item, product: product})
	}

	return lines, nil
}

// ownedAddress loads an optional address that must belong to userID.
func ownedAddress(ctx context.Context, addressRepo repository.AddressRepository, userID uuid.UUID, id *uuid.UUID) (*entity.Address, error) {
	if id == nil || *id == uuid.Nil {
		return nil, nil
	}

	address, err := addressRepo.FindAddressByID(ctx, *id)
	if errors.Is(err, repository.ErrAddressNotFound) {
		return nil, domainerrors.ErrInvalidAddress
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load address")
	}
	if !address.BelongsTo(userID) {
		return nil, domainerrors.ErrInvalidAddress
	}

	return address, nil
}

// buildOrder freezes prices, fees and address snapshots.
func (srv *orderService) buildOrder(userID uuid.UUID, lines []cartLine, billing, shipping *entity.Address) *entity.Order {
	now := time.Now()
	order := &entity.Order{
		ID:              uuid.New(),
		PublicID:        entity.NewOrderPublicID(now),
		UserID:          userID,
		Status:          entity.OrderPending,
		Currency:        srv.policy.Currency(),
		BillingSnapshot: billing.Snapshot(),
		Items:           make([]*entity.OrderItem, 0, len(lines)),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if shipping != nil {
		order.ShippingSnapshot = shipping.Snapshot()
		order.ShippingLatitude = shipping.Latitude
		order.ShippingLongitude = shipping.Longitude
	}

	var (
		subtotal   decimal.Decimal
		vendorFees decimal.Decimal
		nexusLines int
	)
	for _, l := range lines {
		item := &entity.OrderItem{
			ID:                 uuid.New(),
			OrderID:            order.ID,
			Quantity:           l.item.Quantity,
			ItemDeliveryCharge: decimal.Zero,
		}

		if l.pkg != nil {
			item.ServicePackageID = &l.pkg.ID
			item.ProviderID = &l.pkg.ProviderID
			item.SnapshotName = l.pkg.Title
			item.UnitPrice = l.pkg.Price
		} else {
			vendorID := l.product.VendorID
			item.ProductID = &l.product.ID
			item.VendorID = &vendorID
			item.ProductKind = l.product.Kind
			item.CategorySlug = l.product.CategorySlug
			item.SnapshotName = l.product.Name
			item.UnitPrice = l.product.Price
			item.FulfillmentMethod = l.product.EffectiveFulfillment()

			if l.product.IsPhysical() {
				switch item.FulfillmentMethod {
				case entity.FulfillmentNexus:
					nexusLines++
				case entity.FulfillmentVendor:
					if l.product.VendorDeliveryFee != nil {
						item.ItemDeliveryCharge = l.product.VendorDeliveryFee.Round(2)
					}
				}
			}
		}

		subtotal = subtotal.Add(item.LineTotal())
		vendorFees = vendorFees.Add(item.ItemDeliveryCharge)
		order.Items = append(order.Items, item)
	}

	order.Subtotal = subtotal.Round(2)
	order.PlatformDeliveryFee = srv.policy.PlatformDeliveryFee(nexusLines)
	order.VendorDeliveryFeeSum = vendorFees.Round(2)
	order.Total = order.Subtotal.Add(order.PlatformDeliveryFee).Add(order.VendorDeliveryFeeSum)

	return order
}

// GetOrder returns an order owned by userID.
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, notFound(err, repository.ErrOrderNotFound, "order")
	}
	if order.UserID != userID {
		return nil, domainerrors.ErrNotFound.WrapMessage("order not found")
	}

	return order, nil
}

func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	limit, offset = normalizePage(limit, offset)

	orders, err := srv.orderRepo.FindOrdersByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}
