package handler

import (
	"time"

	"nexus/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response bodies. Entities are never serialised directly: payment methods are a sum type and
// tasks carry the hand-off code hash.

type CartItemResponse struct {
	ID               uuid.UUID  `json:"id"`
	ProductID        *uuid.UUID `json:"product_id,omitempty"`
	ServicePackageID *uuid.UUID `json:"service_package_id,omitempty"`
	Quantity         int        `json:"quantity"`
}

type CartResponse struct {
	ID     uuid.UUID          `json:"id"`
	Status entity.CartStatus  `json:"status"`
	Items  []CartItemResponse `json:"items"`
}

func newCartResponse(cart *entity.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, CartItemResponse{
			ID:               item.ID,
			ProductID:        item.ProductID,
			ServicePackageID: item.ServicePackageID,
			Quantity:         item.Quantity,
		})
	}

	return CartResponse{ID: cart.ID, Status: cart.Status, Items: items}
}

type OrderItemResponse struct {
	ID                 uuid.UUID                `json:"id"`
	ProductID          *uuid.UUID               `json:"product_id,omitempty"`
	ServicePackageID   *uuid.UUID               `json:"service_package_id,omitempty"`
	Name               string                   `json:"name"`
	UnitPrice          decimal.Decimal          `json:"unit_price"`
	Quantity           int                      `json:"quantity"`
	FulfillmentMethod  entity.FulfillmentMethod `json:"fulfillment_method,omitempty"`
	ItemDeliveryCharge decimal.Decimal          `json:"item_delivery_charge"`
}

type OrderResponse struct {
	ID                   uuid.UUID           `json:"id"`
	PublicID             string              `json:"public_id"`
	Status               entity.OrderStatus  `json:"status"`
	PaymentMethod        string              `json:"payment_method,omitempty"`
	Currency             string              `json:"currency"`
	Subtotal             decimal.Decimal     `json:"subtotal"`
	PlatformDeliveryFee  decimal.Decimal     `json:"platform_delivery_fee"`
	VendorDeliveryFeeSum decimal.Decimal     `json:"vendor_delivery_fee_sum"`
	Total                decimal.Decimal     `json:"total"`
	BillingAddress       string              `json:"billing_address"`
	ShippingAddress      string              `json:"shipping_address,omitempty"`
	CustomerConfirmedAt  *time.Time          `json:"customer_confirmed_at,omitempty"`
	CancelReason         string              `json:"cancel_reason,omitempty"`
	DisputeReason        string              `json:"dispute_reason,omitempty"`
	Items                []OrderItemResponse `json:"items"`
	CreatedAt            time.Time           `json:"created_at"`
}

func newOrderResponse(order *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ID:                 item.ID,
			ProductID:          item.ProductID,
			ServicePackageID:   item.ServicePackageID,
			Name:               item.SnapshotName,
			UnitPrice:          item.UnitPrice,
			Quantity:           item.Quantity,
			FulfillmentMethod:  item.FulfillmentMethod,
			ItemDeliveryCharge: item.ItemDeliveryCharge,
		})
	}

	return OrderResponse{
		ID:                   order.ID,
		PublicID:             order.PublicID,
		Status:               order.Status,
		PaymentMethod:        entity.PaymentMethodName(order.PaymentMethod),
		Currency:             order.Currency,
		Subtotal:             order.Subtotal,
		PlatformDeliveryFee:  order.PlatformDeliveryFee,
		VendorDeliveryFeeSum: order.VendorDeliveryFeeSum,
		Total:                order.Total,
		BillingAddress:       order.BillingSnapshot,
		ShippingAddress:      order.ShippingSnapshot,
		CustomerConfirmedAt:  order.CustomerConfirmedAt,
		CancelReason:         order.CancelReason,
		DisputeReason:        order.DisputeReason,
		Items:                items,
		CreatedAt:            order.CreatedAt,
	}
}

func newOrderResponses(orders []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, newOrderResponse(order))
	}

	return out
}

func methodNames(methods []entity.PaymentMethod) []string {
	names := make([]string, 0, len(methods))
	for _, m := range methods {
		names = append(names, m.String())
	}

	return names
}

type TaskResponse struct {
	ID                  uuid.UUID         `json:"id"`
	OrderID             uuid.UUID         `json:"order_id"`
	RiderID             *uuid.UUID        `json:"rider_id,omitempty"`
	Status              entity.TaskStatus `json:"status"`
	Pickup              entity.Location   `json:"pickup"`
	Dropoff             entity.Location   `json:"dropoff"`
	DistanceKm          *float64          `json:"distance_km,omitempty"`
	DeliveryFee         decimal.Decimal   `json:"delivery_fee"`
	RiderEarning        *decimal.Decimal  `json:"rider_earning,omitempty"`
	SpecialInstructions string            `json:"special_instructions,omitempty"`
	AssignedAt          *time.Time        `json:"assigned_at,omitempty"`
	ActualPickupTime    *time.Time        `json:"actual_pickup_time,omitempty"`
	ActualDeliveryTime  *time.Time        `json:"actual_delivery_time,omitempty"`
}

func newTaskResponse(task *entity.DeliveryTask) TaskResponse {
	return TaskResponse{
		ID:                  task.ID,
		OrderID:             task.OrderID,
		RiderID:             task.RiderID,
		Status:              task.Status,
		Pickup:              task.Pickup,
		Dropoff:             task.Dropoff,
		DistanceKm:          task.DistanceKm,
		DeliveryFee:         task.DeliveryFee,
		RiderEarning:        task.RiderEarning,
		SpecialInstructions: task.SpecialInstructions,
		AssignedAt:          task.AssignedAt,
		ActualPickupTime:    task.ActualPickupTime,
		ActualDeliveryTime:  task.ActualDeliveryTime,
	}
}

type RiderProfileResponse struct {
	ID                  uuid.UUID          `json:"id"`
	Phone               string             `json:"phone"`
	VehicleType         entity.VehicleType `json:"vehicle_type"`
	VehicleRegistration string             `json:"vehicle_registration,omitempty"`
	IsApproved          bool               `json:"is_approved"`
	IsAvailable         bool               `json:"is_available"`
	CurrentLatitude     *float64           `json:"current_latitude,omitempty"`
	CurrentLongitude    *float64           `json:"current_longitude,omitempty"`
}

func newRiderProfileResponse(p *entity.RiderProfile) RiderProfileResponse {
	return RiderProfileResponse{
		ID:                  p.ID,
		Phone:               p.Phone,
		VehicleType:         p.VehicleType,
		VehicleRegistration: p.VehicleRegistration,
		IsApproved:          p.IsApproved,
		IsAvailable:         p.IsAvailable,
		CurrentLatitude:     p.CurrentLatitude,
		CurrentLongitude:    p.CurrentLongitude,
	}
}

type RiderApplicationResponse struct {
	ID          uuid.UUID                `json:"id"`
	UserID      uuid.UUID                `json:"user_id"`
	Status      entity.ApplicationStatus `json:"status"`
	VehicleType entity.VehicleType       `json:"vehicle_type"`
	ReviewNotes string                   `json:"review_notes,omitempty"`
	SubmittedAt *time.Time               `json:"submitted_at,omitempty"`
	ReviewedAt  *time.Time               `json:"reviewed_at,omitempty"`
}

func newRiderApplicationResponse(a *entity.RiderApplication) RiderApplicationResponse {
	return RiderApplicationResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		Status:      a.Status,
		VehicleType: a.VehicleType,
		ReviewNotes: a.ReviewNotes,
		SubmittedAt: a.SubmittedAt,
		ReviewedAt:  a.ReviewedAt,
	}
}

type BoostPackageResponse struct {
	ID       uuid.UUID        `json:"id"`
	Name     string           `json:"name"`
	Kind     entity.BoostKind `json:"kind"`
	Hours    float64          `json:"duration_hours"`
	Price    decimal.Decimal  `json:"price"`
	IsActive bool             `json:"is_active"`
}

func newBoostPackageResponses(packages []*entity.BoostPackage) []BoostPackageResponse {
	out := make([]BoostPackageResponse, 0, len(packages))
	for _, p := range packages {
		out = append(out, BoostPackageResponse{
			ID:       p.ID,
			Name:     p.Name,
			Kind:     p.Kind,
			Hours:    p.Duration.Hours(),
			Price:    p.Price,
			IsActive: p.IsActive,
		})
	}

	return out
}

type BoostResponse struct {
	ID          uuid.UUID        `json:"id"`
	PackageID   uuid.UUID        `json:"package_id"`
	Kind        entity.BoostKind `json:"kind"`
	ActivatedAt time.Time        `json:"activated_at"`
	ExpiresAt   time.Time        `json:"expires_at"`
}

func newBoostResponse(b *entity.ActiveRiderBoost) *BoostResponse {
	if b == nil {
		return nil
	}

	return &BoostResponse{
		ID:          b.ID,
		PackageID:   b.PackageID,
		Kind:        b.Kind,
		ActivatedAt: b.ActivatedAt,
		ExpiresAt:   b.ExpiresAt,
	}
}

type PayoutResponse struct {
	ID              uuid.UUID              `json:"id"`
	Kind            entity.BeneficiaryKind `json:"beneficiary_kind"`
	BeneficiaryID   uuid.UUID              `json:"beneficiary_id"`
	AmountRequested decimal.Decimal        `json:"amount_requested"`
	Status          entity.PayoutStatus    `json:"status"`
	PaymentDetails  string                 `json:"payment_details,omitempty"`
	AdminNotes      string                 `json:"admin_notes,omitempty"`
	TransactionID   *uuid.UUID             `json:"transaction_id,omitempty"`
	ProcessedAt     *time.Time             `json:"processed_at,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

func newPayoutResponse(p *entity.PayoutRequest) PayoutResponse {
	return PayoutResponse{
		ID:              p.ID,
		Kind:            p.Beneficiary.Kind,
		BeneficiaryID:   p.Beneficiary.ProfileID,
		AmountRequested: p.AmountRequested,
		Status:          p.Status,
		PaymentDetails:  p.PaymentDetails,
		AdminNotes:      p.AdminNotes,
		TransactionID:   p.TransactionID,
		ProcessedAt:     p.ProcessedAt,
		CreatedAt:       p.CreatedAt,
	}
}

func newPayoutResponses(requests []*entity.PayoutRequest) []PayoutResponse {
	out := make([]PayoutResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, newPayoutResponse(r))
	}

	return out
}

type TransactionResponse struct {
	ID           uuid.UUID                `json:"id"`
	Kind         entity.TransactionKind   `json:"kind"`
	Amount       decimal.Decimal          `json:"amount"`
	Currency     string                   `json:"currency"`
	Status       entity.TransactionStatus `json:"status"`
	OrderID      *uuid.UUID               `json:"order_id,omitempty"`
	GatewayTxnID string                   `json:"gateway_txn_id,omitempty"`
	Description  string                   `json:"description,omitempty"`
	ReversalOf   *uuid.UUID               `json:"reversal_of,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
}

func newTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		Kind:         t.Kind,
		Amount:       t.Amount,
		Currency:     t.Currency,
		Status:       t.Status,
		OrderID:      t.OrderID,
		GatewayTxnID: t.GatewayTxnID,
		Description:  t.Description,
		ReversalOf:   t.ReversalOf,
		CreatedAt:    t.CreatedAt,
	}
}
