package entity

import (
	"github.com/pkg/errors"
)

// PaymentMethod is a closed sum type with the variants Escrow and Direct.
// A nil PaymentMethod means no method has been chosen yet.
type PaymentMethod interface {
	String() string
	isPaymentMethod()
}

// Escrow holds funds on the platform until the customer confirms.
type Escrow struct{}

// Direct is an off-platform arrangement between customer and seller.
type Direct struct{}

func (Escrow) String() string { return "escrow" }
func (Direct) String() string { return "direct" }

func (Escrow) isPaymentMethod() {}
func (Direct) isPaymentMethod() {}

// ErrUnknownPaymentMethod is returned for unsupported method names.
var ErrUnknownPaymentMethod = errors.New("unknown payment method")

// ParsePaymentMethod converts a stored or submitted value into a variant.
// An empty string yields nil.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	switch raw {
	case "":
		return nil, nil
	case "escrow":
		return Escrow{}, nil
	case "direct":
		return Direct{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownPaymentMethod, "%q", raw)
	}
}

// PaymentMethodName returns the stored representation of m, empty for nil.
func PaymentMethodName(m PaymentMethod) string {
	if m == nil {
		return ""
	}

	return m.String()
}

// MatchPaymentMethod dispatches on the variant. Both cases must be supplied.
func MatchPaymentMethod[T any](m PaymentMethod, onEscrow func(Escrow) T, onDirect func(Direct) T) (T, error) {
	var zero T
	switch v := m.(type) {
	case Escrow:
		return onEscrow(v), nil
	case Direct:
		return onDirect(v), nil
	default:
		return zero, ErrUnknownPaymentMethod
	}
}

// PaymentEligibility lists the methods allowed for one order.
type PaymentEligibility struct {
	Direct bool // escrow is always eligible
}

// Methods returns the eligible variants in display order.
func (e PaymentEligibility) Methods() []PaymentMethod {
	methods := []PaymentMethod{Escrow{}}
	if e.Direct {
		methods = append(methods, Direct{})
	}

	return methods
}

// PaymentChoice is a method that has been checked against an order's eligibility.
// It can only be obtained through PaymentEligibility.Choose.
type PaymentChoice struct {
	method PaymentMethod
}

// Method returns the chosen variant.
func (c PaymentChoice) Method() PaymentMethod {
	return c.method
}

// ErrMethodNotEligible is returned when the method is not allowed for the order.
var ErrMethodNotEligible = errors.New("payment method not eligible")

// Choose validates m against the eligibility.
func (e PaymentEligibility) Choose(m PaymentMethod) (PaymentChoice, error) {
	allowed, err := MatchPaymentMethod(m,
		func(Escrow) bool { return true },
		func(Direct) bool { return e.Direct },
	)
	if err != nil {
		return PaymentChoice{}, err
	}
	if !allowed {
		return PaymentChoice{}, ErrMethodNotEligible
	}

	return PaymentChoice{method: m}, nil
}
