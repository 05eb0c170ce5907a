// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nexus/config"
	"nexus/internal/delivery/api/middleware"
	"nexus/internal/delivery/api/router/handler"
	"nexus/internal/domain/entity"
	"nexus/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler      *handler.AddressHandler
	CartHandler         *handler.CartHandler
	OrderHandler        *handler.OrderHandler
	FulfillmentHandler  *handler.FulfillmentHandler
	PaymentHandler      *handler.PaymentHandler
	RiderHandler        *handler.RiderHandler
	PayoutHandler       *handler.PayoutHandler
	OperatorHandler     *handler.OperatorHandler
	DeviceHandler       *handler.DeviceHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Metrics             *metrics.Metrics
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	address      *handler.AddressHandler
	cart         *handler.CartHandler
	order        *handler.OrderHandler
	fulfillment  *handler.FulfillmentHandler
	payment      *handler.PaymentHandler
	rider        *handler.RiderHandler
	payout       *handler.PayoutHandler
	operator     *handler.OperatorHandler
	device       *handler.DeviceHandler
	notification *handler.NotificationHandler
	auth         *middleware.AuthMiddleware
	metrics      *metrics.Metrics
	config       *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		address:      params.AddressHandler,
		cart:         params.CartHandler,
		order:        params.OrderHandler,
		fulfillment:  params.FulfillmentHandler,
		payment:      params.PaymentHandler,
		rider:        params.RiderHandler,
		payout:       params.PayoutHandler,
		operator:     params.OperatorHandler,
		device:       params.DeviceHandler,
		notification: params.NotificationHandler,
		auth:         params.AuthMiddleware,
		metrics:      params.Metrics,
		config:       params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	// Gateway redirects and notifications carry no bearer token.
	payments := e.Group("/api/v1/payments")
	{
		payments.GET("/callback", r.payment.OrderCallback)
		payments.GET("/boost-callback", r.payment.BoostCallback)
		payments.POST("/ipn", r.payment.IPN)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.auth.Authenticate)
	apiV1.GET("/me", handler.WhoAmI)

	addresses := apiV1.Group("/addresses")
	{
		addresses.GET("", r.address.ListAddresses)
		addresses.POST("", r.address.AddAddress)
		addresses.GET("/:id", r.address.GetAddress)
	}

	cart := apiV1.Group("/cart")
	{
		cart.GET("", r.cart.GetCart)
		cart.POST("/items", r.cart.AddItem)
		cart.PATCH("/items/:id", r.cart.UpdateQuantity)
		cart.DELETE("/items/:id", r.cart.RemoveItem)
	}

	orders := apiV1.Group("/orders")
	{
		orders.POST("", r.order.Assemble)
		orders.GET("", r.order.ListOrders)
		orders.GET("/:id", r.order.GetOrder)
		orders.GET("/:id/payment-methods", r.order.EligibleMethods)
		orders.PUT("/:id/payment-method", r.order.ChoosePayment)
		orders.POST("/:id/payment", r.order.InitiatePayment)
		orders.GET("/:id/handoff-qr", r.order.HandoffQR)
		orders.POST("/:id/confirm-delivery", r.fulfillment.ConfirmDelivery)
		orders.POST("/:id/confirm-completion", r.fulfillment.ConfirmCompletion)
		orders.POST("/:id/cancel", r.fulfillment.Cancel)
		orders.POST("/:id/dispute", r.fulfillment.Dispute)
	}

	vendor := apiV1.Group("/vendor")
	vendor.Use(r.auth.RequireRole(entity.RoleVendor))
	{
		vendor.POST("/orders/:id/ship", r.fulfillment.MarkShipped)
	}

	provider := apiV1.Group("/provider")
	provider.Use(r.auth.RequireRole(entity.RoleProvider))
	{
		provider.POST("/orders/:id/start", r.fulfillment.MarkInProgress)
	}

	// Anyone may apply; the rest of /rider needs an approved profile, which the usecases check.
	apiV1.POST("/rider/application", r.rider.Apply)
	rider := apiV1.Group("/rider")
	rider.Use(r.auth.RequireRole(entity.RoleRider))
	{
		rider.GET("/profile", r.rider.GetProfile)
		rider.PUT("/availability", r.rider.SetAvailability)
		rider.PUT("/location", r.rider.UpdateLocation)
		rider.GET("/boosts/packages", r.rider.ListBoostPackages)
		rider.POST("/boosts", r.rider.ActivateBoost)
		rider.GET("/tasks", r.rider.ListTasks)
		rider.POST("/tasks/:id/claim", r.rider.ClaimTask)
		rider.POST("/tasks/:id/pickup", r.rider.PickUp)
		rider.POST("/tasks/:id/out-for-delivery", r.rider.OutForDelivery)
		rider.POST("/tasks/:id/deliver", r.rider.Deliver)
	}

	payouts := apiV1.Group("/payouts")
	payouts.Use(r.auth.RequireRole(entity.RoleRider, entity.RoleVendor, entity.RoleProvider))
	{
		payouts.GET("/balance", r.payout.Balance)
		payouts.GET("", r.payout.ListRequests)
		payouts.POST("", r.payout.RequestPayout)
	}
	apiV1.GET("/transactions", r.payout.ListTransactions)

	devices := apiV1.Group("/devices")
	{
		devices.POST("", r.device.RegisterDevice)
		devices.GET("", r.device.ListDevices)
		devices.PUT("/:id/token", r.device.UpdateFCMToken)
		devices.DELETE("/:id", r.device.DeactivateDevice)
	}

	notifications := apiV1.Group("/notifications")
	{
		notifications.GET("", r.notification.List)
		notifications.POST("/:id/read", r.notification.MarkRead)
	}

	operator := apiV1.Group("/operator")
	operator.Use(r.auth.RequireRole(entity.RoleOperator))
	{
		operator.POST("/rider-applications/:id/review", r.operator.ReviewApplication)
		operator.POST("/orders/:id/direct-payment", r.operator.MarkDirectPaymentReceived)
		operator.POST("/orders/:id/settle", r.fulfillment.SettleOrder)
		operator.POST("/orders/:id/cancel", r.fulfillment.Cancel)
		operator.GET("/payouts", r.operator.ListPayouts)
		operator.POST("/payouts/:id/start", r.operator.StartPayout)
		operator.POST("/payouts/:id/complete", r.operator.CompletePayout)
		operator.POST("/payouts/:id/fail", r.operator.FailPayout)
		operator.POST("/payouts/:id/reject", r.operator.RejectPayout)
		operator.POST("/transactions/:id/reverse", r.operator.ReverseTransaction)
		operator.POST("/media-jobs", r.operator.EnqueueMediaJob)
	}
}
