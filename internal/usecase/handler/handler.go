// Package handler holds the complete table of domain event handlers and background job handlers.
// Both tables are static: Register and JobHandlers are called once while the process starts.
package handler

import (
	"log/slog"

	"nexus/internal/domain/event"
	"nexus/internal/domain/repository"
	"nexus/internal/domain/service"
	"nexus/internal/usecase"

	"go.uber.org/fx"
)

// Deps are the collaborators of the event handlers.
type Deps struct {
	fx.In

	Notifications usecase.NotificationUsecase
	Dispatch      usecase.DispatchUsecase
	Jobs          usecase.JobQueue
	OrderRepo     repository.OrderRepository
	CatalogRepo   repository.CatalogRepository
	RiderRepo     repository.RiderRepository
	Metrics       service.MetricsRecorder
	Logger        *slog.Logger
}

// Register installs every event handler on the bus and seals it.
func Register(bus *event.Bus, deps Deps) {
	h := &handlers{deps: deps}

	event.On(bus, h.onOrderPlaced)
	event.On(bus, h.onOrderPaid)
	event.On(bus, h.dispatchPaidOrder)
	event.On(bus, h.recordTransition)
	event.On(bus, h.onOrderStatusChanged)
	event.On(bus, h.onPaymentFlagged)
	event.On(bus, h.onRefundDue)
	event.On(bus, h.onTaskAssigned)
	event.On(bus, h.onTaskPickedUp)
	event.On(bus, h.onTaskDelivered)
	event.On(bus, h.onRiderApproved)
	event.On(bus, h.onRiderDeapproved)
	event.On(bus, h.onRiderAvailabilityChanged)
	event.On(bus, h.onPayoutRequested)
	event.On(bus, h.onPayoutStatusChanged)
	event.On(bus, h.onJobDeadLettered)

	bus.Seal()
}
