package service

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"
)

// InitializeRequest is the payload of a gateway initialize call.
type InitializeRequest struct {
	Email       string
	AmountMinor int64 // amount in minor units
	Currency    string
	Reference   string
	CallbackURL string
	Metadata    map[string]string
}

// Verification is the gateway's view of a transaction.
type Verification struct {
	Status       string // "success" when paid
	Reference    string
	GatewayTxnID string
	AmountMinor  int64
	Currency     string
}

// IsFor reports whether the gateway verified the given reference rather than another one.
func (v *Verification) IsFor(reference string) bool {
	return v != nil && v.Reference == reference
}

// IsSuccess reports whether the gateway settled the payment.
func (v *Verification) IsSuccess() bool {
	return v != nil && v.Status == "success"
}

// IPNMessage is a validated server-to-server payment notification.
type IPNMessage struct {
	Invoice       string
	PaymentStatus string
	ReceiverEmail string
	TxnID         string
	Gross         decimal.Decimal
	Currency      string
}

// PaymentGateway is the external escrow gateway.
type PaymentGateway interface {
	// Initialize starts a transaction and returns the authorization URL.
	Initialize(ctx context.Context, req InitializeRequest) (authorizationURL string, err error)

	// Verify fetches the transaction state for reference.
	Verify(ctx context.Context, reference string) (*Verification, error)

	// VerifyIPN posts the raw form back to the gateway and parses it when the gateway confirms it.
	VerifyIPN(ctx context.Context, form url.Values) (*IPNMessage, error)
}
