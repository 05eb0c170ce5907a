package impl

import (
	"context"
	"log/slog"

	"nexus/internal/domain/entity"
	domainerrors "nexus/internal/domain/errors"
	"nexus/internal/domain/event"
	"nexus/internal/domain/repository"
	"nexus/internal/errors"

	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// publishCommitted delivers events of a committed transaction. The state change already happened,
// so handler failures are logged rather than returned.
func publishCommitted(ctx context.Context, publisher event.Publisher, logger *slog.Logger, events []event.Event) {
	if len(events) == 0 {
		return
	}
	if err := publisher.Publish(ctx, events...); err != nil {
		logger.WarnContext(ctx, "Event handlers reported errors", slog.Any("error", err))
	}
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}

// notFound converts a repository sentinel into the NOT_FOUND application error.
func notFound(err error, sentinel error, what string) error {
	if errors.Is(err, sentinel) {
		return domainerrors.ErrNotFound.WrapMessage(what + " not found")
	}

	return errors.Wrapf(err, "failed to load %s", what)
}

// transitionOrder checks the order status machine and writes the new status.
func transitionOrder(
	ctx context.Context,
	orders repository.OrderRepository,
	order *entity.Order,
	next entity.OrderStatus,
	update repository.OrderUpdate,
) (event.OrderStatusChanged, error) {
	if !order.Status.CanTransitionTo(next) {
		return event.OrderStatusChanged{}, domainerrors.ErrInvalidTransition.WrapMessage(
			string(order.Status) + " -> " + string(next))
	}

	update.Status = &next
	if err := orders.UpdateOrder(ctx, order.ID, update); err != nil {
		return event.OrderStatusChanged{}, errors.Wrap(err, "failed to update order")
	}

	changed := event.OrderStatusChanged{
		OrderID:  order.ID,
		PublicID: order.PublicID,
		UserID:   order.UserID,
		From:     order.Status,
		To:       next,
	}
	order.Status = next

	return changed, nil
}

// balanceSources are the repositories a balance is derived from.
type balanceSources struct {
	tasks   repository.DeliveryTaskRepository
	orders  repository.OrderRepository
	payouts repository.PayoutRepository
}

func sourcesFrom(f repository.RepositoryFactory) balanceSources {
	return balanceSources{
		tasks:   f.NewDeliveryTaskRepository(),
		orders:  f.NewOrderRepository(),
		payouts: f.NewPayoutRepository(),
	}
}

// deriveBalance is credits minus completed payouts, rounded to cents.
//
// Rider credits are the earnings of delivered tasks. Vendor credits are product line totals plus item
// delivery charges of completed orders. Provider credits are service line totals of completed orders
// net of the provider commission.
func deriveBalance(
	ctx context.Context,
	src balanceSources,
	policy entity.MarketplacePolicy,
	beneficiary entity.Beneficiary,
) (decimal.Decimal, error) {
	var (
		credits decimal.Decimal
		err     error
	)

	switch beneficiary.Kind {
	case entity.BeneficiaryRider:
		credits, err = src.tasks.SumRiderEarnings(ctx, beneficiary.ProfileID)
	case entity.BeneficiaryVendor:
		credits, err = src.orders.SumVendorSales(ctx, beneficiary.ProfileID)
	case entity.BeneficiaryProvider:
		credits, err = src.orders.SumProviderSales(ctx, beneficiary.ProfileID)
		credits = credits.Mul(decimal.NewFromInt(1).Sub(policy.ProviderCommissionRate()))
	default:
		return decimal.Zero, domainerrors.ErrValidationFailed.WrapMessage("unknown beneficiary kind")
	}
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum credits")
	}

	paid, err := src.payouts.SumCompletedPayouts(ctx, beneficiary)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum completed payouts")
	}

	return credits.Sub(paid).Round(2), nil
}
