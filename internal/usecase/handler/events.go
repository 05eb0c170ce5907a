package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"nexus/internal/domain/constants"
	"nexus/internal/domain/entity"
	"nexus/internal/domain/event"
	"nexus/internal/errors"
	"nexus/internal/usecase"

	"github.com/google/uuid"
)

// assignPendingBatch bounds one dispatch.assign_pending run.
const assignPendingBatch = 20

type handlers struct {
	deps Deps
}

func orderLink(orderID uuid.UUID) string {
	return "/orders/" + orderID.String()
}

func (h *handlers) notify(ctx context.Context, recipient uuid.UUID, kind entity.NotificationKind, message, link string) error {
	return h.deps.Notifications.Notify(ctx, entity.NewNotification(recipient, kind, message, link))
}

func (h *handlers) onOrderPlaced(ctx context.Context, evt event.OrderPlaced) error {
	return h.notify(ctx, evt.UserID, entity.NotificationOrderPlaced,
		fmt.Sprintf("Your order %s was placed. Total %s %s.", evt.PublicID, evt.Total.StringFixed(2), evt.Currency),
		orderLink(evt.OrderID))
}

func (h *handlers) onOrderPaid(ctx context.Context, evt event.OrderPaid) error {
	return h.notify(ctx, evt.UserID, entity.NotificationPaymentReceived,
		fmt.Sprintf("We received your payment of %s %s for order %s.", evt.Amount.StringFixed(2), evt.Currency, evt.PublicID),
		orderLink(evt.OrderID))
}

// dispatchPaidOrder creates the delivery task of a paid order that carries Nexus-fulfilled items.
// The order is already committed as PROCESSING, so a failed attempt is handed to the job queue;
// task creation is idempotent per order.
func (h *handlers) dispatchPaidOrder(ctx context.Context, evt event.OrderPaid) error {
	_, err := h.deps.Dispatch.CreateTaskForOrder(ctx, evt.OrderID)
	if err == nil {
		return nil
	}

	h.deps.Logger.WarnContext(ctx, "delivery task creation failed, queueing retry",
		slog.String("order_id", evt.OrderID.String()),
		slog.Any("error", err),
	)
	if _, qErr := h.deps.Jobs.Enqueue(ctx, constants.JobDispatchCreateTask, evt.OrderID.String(),
		usecase.CreateTaskPayload{OrderID: evt.OrderID}); qErr != nil {
		return errors.Wrapf(errors.Join(err, qErr), "failed to create delivery task for order %s", evt.PublicID)
	}

	return nil
}

func (h *handlers) recordTransition(_ context.Context, evt event.OrderStatusChanged) error {
	h.deps.Metrics.OrderTransition(string(evt.From), string(evt.To))

	return nil
}

func (h *handlers) onOrderStatusChanged(ctx context.Context, evt event.OrderStatusChanged) error {
	switch evt.To {
	case entity.OrderProcessing, entity.OrderAwaitingEscrowPayment, entity.OrderAwaitingDirectPayment:
		// covered by the payment notifications
		return nil
	}

	return h.notify(ctx, evt.UserID, entity.NotificationOrderStatus,
		fmt.Sprintf("Order %s is now %s.", evt.PublicID, evt.To.Label()),
		orderLink(evt.OrderID))
}

func (h *handlers) onPaymentFlagged(ctx context.Context, evt event.PaymentFlagged) error {
	return h.deps.Notifications.NotifyStaff(ctx, entity.NotificationPaymentReview,
		fmt.Sprintf("Payment for order %s (reference %s) needs review: %s.", evt.PublicID, evt.Reference, evt.Reason),
		orderLink(evt.OrderID))
}

// onRefundDue asks staff to pay back a cancelled escrow order at the gateway.
func (h *handlers) onRefundDue(ctx context.Context, evt event.RefundDue) error {
	message := fmt.Sprintf("Order %s was cancelled after payment. Refund %s %s to the customer.",
		evt.PublicID, evt.Amount.StringFixed(2), evt.Currency)
	if evt.ReversalID == uuid.Nil {
		message += " No payment entry was found to reverse."
	}

	return h.deps.Notifications.NotifyStaff(ctx, entity.NotificationPaymentReview, message, orderLink(evt.OrderID))
}

func (h *handlers) onTaskAssigned(ctx context.Context, evt event.TaskAssigned) error {
	err := h.notify(ctx, evt.RiderUserID, entity.NotificationTaskAssigned,
		fmt.Sprintf("New delivery for order %s. Pickup: %s.", evt.OrderPublicID, evt.PickupText),
		"/rider/tasks/"+evt.TaskID.String())
	if err != nil {
		return err
	}

	order, err := h.deps.OrderRepo.FindOrderByID(ctx, evt.OrderID)
	if err != nil {
		return errors.Wrap(err, "failed to load order")
	}
	rider, err := h.deps.RiderRepo.FindProfileByID(ctx, evt.RiderID)
	if err != nil {
		return errors.Wrap(err, "failed to load rider")
	}

	return h.notify(ctx, order.UserID, entity.NotificationTaskAssigned,
		fmt.Sprintf("A rider (%s) was assigned to your order %s.", rider.VehicleInfo(), order.PublicID),
		orderLink(order.ID))
}

func (h *handlers) onTaskPickedUp(ctx context.Context, evt event.TaskPickedUp) error {
	order, err := h.deps.OrderRepo.FindOrderByID(ctx, evt.OrderID)
	if err != nil {
		return errors.Wrap(err, "failed to load order")
	}

	return h.notify(ctx, order.UserID, entity.NotificationTaskPickedUp,
		fmt.Sprintf("Your order %s was picked up and is on its way.", order.PublicID),
		orderLink(order.ID))
}

// onTaskDelivered tells the customer and every vendor of the order's items.
func (h *handlers) onTaskDelivered(ctx context.Context, evt event.TaskDelivered) error {
	order, err := h.deps.OrderRepo.FindOrderByID(ctx, evt.OrderID)
	if err != nil {
		return errors.Wrap(err, "failed to load order")
	}

	message := fmt.Sprintf("Order %s was delivered.", order.PublicID)
	notifications := []*entity.Notification{
		entity.NewNotification(order.UserID, entity.NotificationTaskDelivered,
			message+" Please confirm receipt.", orderLink(order.ID)),
	}

	seen := make(map[uuid.UUID]bool)
	for _, item := range order.Items {
		if item.VendorID == nil || seen[*item.VendorID] {
			continue
		}
		seen[*item.VendorID] = true

		vendor, err := h.deps.CatalogRepo.FindVendorByID(ctx, *item.VendorID)
		if err != nil {
			h.deps.Logger.WarnContext(ctx, "Vendor of delivered order not found",
				slog.String("vendor_id", item.VendorID.String()),
				slog.Any("error", err),
			)

			continue
		}
		notifications = append(notifications,
			entity.NewNotification(vendor.UserID, entity.NotificationTaskDelivered, message, ""))
	}

	return h.deps.Notifications.Notify(ctx, notifications...)
}

func (h *handlers) onRiderApproved(ctx context.Context, evt event.RiderApproved) error {
	return h.notify(ctx, evt.UserID, entity.NotificationRiderApplication,
		"Your rider application was approved. You can now go available for deliveries.", "/rider")
}

func (h *handlers) onRiderDeapproved(ctx context.Context, evt event.RiderDeapproved) error {
	return h.notify(ctx, evt.UserID, entity.NotificationRiderApplication,
		"Your rider approval was withdrawn. Contact support for details.", "/rider")
}

// onRiderAvailabilityChanged hands pending tasks to a rider who just became available.
func (h *handlers) onRiderAvailabilityChanged(ctx context.Context, evt event.RiderAvailabilityChanged) error {
	if !evt.Available {
		return nil
	}

	key := evt.RiderID.String() + ":" + strconv.FormatInt(time.Now().Unix(), 10)
	_, err := h.deps.Jobs.Enqueue(ctx, constants.JobDispatchAssignPending, key, usecase.AssignPendingPayload{
		RiderID: evt.RiderID,
		Limit:   assignPendingBatch,
	})

	return err
}

func (h *handlers) onPayoutRequested(ctx context.Context, evt event.PayoutRequested) error {
	return h.deps.Notifications.NotifyStaff(ctx, entity.NotificationPayout,
		fmt.Sprintf("New %s payout request of %s.", evt.Beneficiary.Kind, evt.Amount.StringFixed(2)),
		"/operator/payouts/"+evt.RequestID.String())
}

func (h *handlers) onPayoutStatusChanged(ctx context.Context, evt event.PayoutStatusChanged) error {
	message := fmt.Sprintf("Your payout request of %s is now %s.", evt.Amount.StringFixed(2), evt.To)
	if evt.Note != "" {
		message += " Note: " + evt.Note
	}

	return h.notify(ctx, evt.Beneficiary.UserID, entity.NotificationPayout, message, "/payouts")
}

// onJobDeadLettered alerts staff. Dead push jobs are only logged, since alerting about them would
// enqueue more push jobs.
func (h *handlers) onJobDeadLettered(ctx context.Context, evt event.JobDeadLettered) error {
	if evt.Name == constants.JobNotificationPush {
		h.deps.Logger.WarnContext(ctx, "Push job dead-lettered",
			slog.String("job_id", evt.JobID.String()),
			slog.String("error", evt.LastError),
		)

		return nil
	}

	return h.deps.Notifications.NotifyStaff(ctx, entity.NotificationJobFailed,
		fmt.Sprintf("Background job %s (%s) failed permanently: %s", evt.Name, evt.IdempotencyKey, evt.LastError), "")
}
