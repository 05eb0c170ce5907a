package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a customer purchase. Once the status leaves PENDING its monetary totals are frozen.
type Order struct {
	ID                   uuid.UUID
	PublicID             string // NEXUS-YYYYMMDD-HEX6
	UserID               uuid.UUID
	Status               OrderStatus
	PaymentMethod        PaymentMethod // nil until chosen
	GatewayRef           string
	GatewayTxnID         string
	Currency             string
	Subtotal             decimal.Decimal
	PlatformDeliveryFee  decimal.Decimal
	VendorDeliveryFeeSum decimal.Decimal
	Total                decimal.Decimal
	BillingSnapshot      string
	ShippingSnapshot     string
	ShippingLatitude     *float64
	ShippingLongitude    *float64
	CustomerConfirmedAt  *time.Time
	CancelReason         string
	DisputeReason        string
	Items                []*OrderItem
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// OrderItem is a frozen order line referencing exactly one of a product or a service package.
type OrderItem struct {
	ID                 uuid.UUID
	OrderID            uuid.UUID
	ProductID          *uuid.UUID
	ServicePackageID   *uuid.UUID
	VendorID           *uuid.UUID // seller of a product line
	ProviderID         *uuid.UUID // seller of a service line
	ProductKind        ProductKind
	CategorySlug       string
	SnapshotName       string
	UnitPrice          decimal.Decimal
	Quantity           int
	FulfillmentMethod  FulfillmentMethod
	ItemDeliveryCharge decimal.Decimal
}

// LineTotal is unit price times quantity.
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// IsService reports whether the line is a service package.
func (i *OrderItem) IsService() bool {
	return i.ServicePackageID != nil
}

// IsPhysical reports whether the line is a physical product.
func (i *OrderItem) IsPhysical() bool {
	return i.ProductID != nil && i.ProductKind == ProductPhysical
}

// IsNexusFulfilledPhysical reports whether a platform rider must deliver the line.
func (i *OrderItem) IsNexusFulfilledPhysical() bool {
	return i.IsPhysical() && i.FulfillmentMethod == FulfillmentNexus
}

// NewOrderPublicID builds a NEXUS-YYYYMMDD-HEX6 identifier.
func NewOrderPublicID(now time.Time) string {
	return fmt.Sprintf("NEXUS-%s-%s", now.Format("20060102"), RandomHex6())
}

// RandomHex6 returns six uppercase hex characters taken from a fresh UUID.
func RandomHex6() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
}

// HasPhysicalItems reports whether any line is a physical product.
func (o *Order) HasPhysicalItems() bool {
	for _, item := range o.Items {
		if item.IsPhysical() {
			return true
		}
	}

	return false
}

// HasServices reports whether any line is a service package.
func (o *Order) HasServices() bool {
	for _, item := range o.Items {
		if item.IsService() {
			return true
		}
	}

	return false
}

// HasOnlyServices is true when the order has service lines and no product lines.
func (o *Order) HasOnlyServices() bool {
	if len(o.Items) == 0 {
		return false
	}
	for _, item := range o.Items {
		if item.ProductID != nil {
			return false
		}
	}

	return true
}

// HasNegotiableCategoryProduct reports whether any product line is in a negotiable category.
func (o *Order) HasNegotiableCategoryProduct(policy MarketplacePolicy) bool {
	for _, item := range o.Items {
		if item.ProductID != nil && policy.IsNegotiable(item.CategorySlug) {
			return true
		}
	}

	return false
}

// PaymentEligibility derives the allowed payment methods from the order lines.
func (o *Order) PaymentEligibility(policy MarketplacePolicy) PaymentEligibility {
	return PaymentEligibility{Direct: o.HasOnlyServices() || o.HasNegotiableCategoryProduct(policy)}
}

// NexusFulfilledPhysicalItems returns the lines a rider has to deliver.
func (o *Order) NexusFulfilledPhysicalItems() []*OrderItem {
	items := make([]*OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		if item.IsNexusFulfilledPhysical() {
			items = append(items, item)
		}
	}

	return items
}

// HasItemFromVendor reports whether vendorID sells a line of the order.
func (o *Order) HasItemFromVendor(vendorID uuid.UUID) bool {
	for _, item := range o.Items {
		if item.VendorID != nil && *item.VendorID == vendorID {
			return true
		}
	}

	return false
}

// HasItemFromProvider reports whether providerID sells a line of the order.
func (o *Order) HasItemFromProvider(providerID uuid.UUID) bool {
	for _, item := range o.Items {
		if item.ProviderID != nil && *item.ProviderID == providerID {
			return true
		}
	}

	return false
}

// IsEscrow reports whether the order is paid through escrow.
func (o *Order) IsEscrow() bool {
	_, ok := o.PaymentMethod.(Escrow)

	return ok
}

// NewEscrowReference builds a gateway reference for the order.
func (o *Order) NewEscrowReference() string {
	return fmt.Sprintf("NEXUS_ORD_%s_%s", o.PublicID, RandomHex6())
}

// MinorUnits converts an amount to integer minor units, rounding half away from zero.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
