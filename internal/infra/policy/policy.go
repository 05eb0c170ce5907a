// Package policy freezes the marketplace configuration into an immutable value at start-up.
package policy

import (
	"nexus/config"
	"nexus/internal/domain/entity"

	"github.com/pkg/errors"
)

// New validates the marketplace section. An invalid policy aborts start-up.
func New(cfg *config.Config) (entity.MarketplacePolicy, error) {
	m := cfg.Marketplace
	if m == nil {
		return entity.MarketplacePolicy{}, errors.New("marketplace configuration is missing")
	}

	policy, err := entity.NewMarketplacePolicy(entity.PolicyParams{
		CommissionRate:          m.CommissionRate,
		ProviderCommissionRate:  m.ProviderCommissionRate,
		BaseNexusDeliveryFee:    m.BaseNexusDeliveryFee,
		NexusFeePerLineItem:     m.NexusFeePerLineItem,
		MinPayoutAmount:         m.MinPayoutAmount,
		Currency:                m.Currency,
		BoostSelectionBias:      m.BoostAutoSelectionBias,
		NegotiableCategorySlugs: m.NegotiableCategorySlugs,
	})
	if err != nil {
		return entity.MarketplacePolicy{}, errors.Wrap(err, "invalid marketplace policy")
	}

	return policy, nil
}
