package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"nexus/internal/domain/entity"
	"nexus/internal/domain/event"
	"nexus/internal/domain/repository"
	mockRepo "nexus/internal/mocks/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPolicy(t *testing.T) entity.MarketplacePolicy {
	t.Helper()

	policy, err := entity.NewMarketplacePolicy(entity.PolicyParams{
		CommissionRate:          decimal.RequireFromString("0.20"),
		ProviderCommissionRate:  decimal.RequireFromString("0.10"),
		BaseNexusDeliveryFee:    decimal.RequireFromString("10.00"),
		NexusFeePerLineItem:     decimal.RequireFromString("2.50"),
		MinPayoutAmount:         decimal.RequireFromString("5.00"),
		Currency:                "GHS",
		NegotiableCategorySlugs: []string{"custom-furniture"},
	})
	require.NoError(t, err)

	return policy
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}

// recordingPublisher keeps published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) Publish(_ context.Context, events ...event.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, events...)

	return nil
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	names := make([]string, 0, len(p.events))
	for _, evt := range p.events {
		names = append(names, evt.EventName())
	}

	return names
}

// txFixture runs every transaction inline against a factory of repository mocks.
// Transactions are serialised, which stands in for the row locks they would hold.
type txFixture struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
}

func newTxFixture(t *testing.T) txFixture {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)

	var lock sync.Mutex
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			lock.Lock()
			defer lock.Unlock()

			return fn(factory)
		}).
		Maybe()

	return txFixture{txManager: txManager, factory: factory}
}
