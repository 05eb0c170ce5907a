package entity

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// MarketplacePolicy is the process-wide, read-only marketplace configuration.
// It is built once at start-up and passed by value; it has no mutators.
type MarketplacePolicy struct {
	commissionRate         decimal.Decimal
	providerCommissionRate decimal.Decimal
	baseNexusDeliveryFee   decimal.Decimal
	nexusFeePerLineItem    decimal.Decimal
	minPayoutAmount        decimal.Decimal
	currency               string
	boostSelectionBias     float64
	negotiable             map[string]struct{}
}

// PolicyParams carries raw values for NewMarketplacePolicy.
type PolicyParams struct {
	CommissionRate          decimal.Decimal
	ProviderCommissionRate  decimal.Decimal
	BaseNexusDeliveryFee    decimal.Decimal
	NexusFeePerLineItem     decimal.Decimal
	MinPayoutAmount         decimal.Decimal
	Currency                string
	BoostSelectionBias      float64
	NegotiableCategorySlugs []string
}

// NewMarketplacePolicy validates params and freezes them.
func NewMarketplacePolicy(params PolicyParams) (MarketplacePolicy, error) {
	one := decimal.NewFromInt(1)
	if params.CommissionRate.IsNegative() || params.CommissionRate.GreaterThanOrEqual(one) {
		return MarketplacePolicy{}, errors.Errorf("commission rate must be in [0,1), got %s", params.CommissionRate)
	}
	if params.ProviderCommissionRate.IsNegative() || params.ProviderCommissionRate.GreaterThanOrEqual(one) {
		return MarketplacePolicy{}, errors.Errorf("provider commission rate must be in [0,1), got %s", params.ProviderCommissionRate)
	}
	if params.BaseNexusDeliveryFee.IsNegative() || params.NexusFeePerLineItem.IsNegative() {
		return MarketplacePolicy{}, errors.New("delivery fee coefficients must not be negative")
	}
	if params.MinPayoutAmount.IsNegative() {
		return MarketplacePolicy{}, errors.New("minimum payout must not be negative")
	}
	currency := strings.ToUpper(strings.TrimSpace(params.Currency))
	if currency == "" {
		return MarketplacePolicy{}, errors.New("currency is required")
	}

	negotiable := make(map[string]struct{}, len(params.NegotiableCategorySlugs))
	for _, slug := range params.NegotiableCategorySlugs {
		if s := strings.TrimSpace(slug); s != "" {
			negotiable[s] = struct{}{}
		}
	}

	return MarketplacePolicy{
		commissionRate:         params.CommissionRate,
		providerCommissionRate: params.ProviderCommissionRate,
		baseNexusDeliveryFee:   params.BaseNexusDeliveryFee,
		nexusFeePerLineItem:    params.NexusFeePerLineItem,
		minPayoutAmount:        params.MinPayoutAmount,
		currency:               currency,
		boostSelectionBias:     params.BoostSelectionBias,
		negotiable:             negotiable,
	}, nil
}

func (p MarketplacePolicy) CommissionRate() decimal.Decimal         { return p.commissionRate }
func (p MarketplacePolicy) ProviderCommissionRate() decimal.Decimal { return p.providerCommissionRate }
func (p MarketplacePolicy) MinPayoutAmount() decimal.Decimal        { return p.minPayoutAmount }
func (p MarketplacePolicy) Currency() string                        { return p.currency }

// BoostSelectionBias is reserved for weighted rider selection and currently unused by dispatch.
func (p MarketplacePolicy) BoostSelectionBias() float64 { return p.boostSelectionBias }

// IsNegotiable reports whether the category slug enables direct payment.
func (p MarketplacePolicy) IsNegotiable(slug string) bool {
	_, ok := p.negotiable[slug]

	return ok
}

// PlatformDeliveryFee is base + perItem × n, or zero when there are no Nexus-fulfilled physical lines.
func (p MarketplacePolicy) PlatformDeliveryFee(nexusLines int) decimal.Decimal {
	if nexusLines <= 0 {
		return decimal.Zero
	}

	return p.baseNexusDeliveryFee.Add(p.nexusFeePerLineItem.Mul(decimal.NewFromInt(int64(nexusLines)))).Round(2)
}

// SplitDeliveryFee returns (riderEarning, platformCommission) for a delivered task.
// Commission is rounded to cents and the earning is the remainder, so both always sum to fee.
func (p MarketplacePolicy) SplitDeliveryFee(fee decimal.Decimal) (riderEarning, commission decimal.Decimal) {
	fee = fee.Round(2)
	commission = fee.Mul(p.commissionRate).Round(2)

	return fee.Sub(commission), commission
}
