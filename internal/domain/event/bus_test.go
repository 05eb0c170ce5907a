package event

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus() *Bus {
	return NewBus(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBus_PublishRunsHandlersInOrder(t *testing.T) {
	bus := newTestBus()

	var calls []string
	On(bus, func(_ context.Context, evt RiderApproved) error {
		calls = append(calls, "first:"+evt.UserID.String())

		return nil
	})
	On(bus, func(context.Context, RiderApproved) error {
		calls = append(calls, "second")

		return nil
	})
	On(bus, func(context.Context, RiderDeapproved) error {
		calls = append(calls, "deapproved")

		return nil
	})
	bus.Seal()

	userID := uuid.New()
	require.NoError(t, bus.Publish(context.Background(), RiderApproved{UserID: userID}))

	assert.Equal(t, []string{"first:" + userID.String(), "second"}, calls)
}

func TestBus_FailingHandlerDoesNotStopOthers(t *testing.T) {
	bus := newTestBus()

	ran := 0
	On(bus, func(context.Context, TaskPickedUp) error { return errors.New("boom") })
	On(bus, func(context.Context, TaskPickedUp) error {
		ran++

		return nil
	})
	On(bus, func(context.Context, OrderPlaced) error {
		ran++

		return nil
	})

	err := bus.Publish(context.Background(), TaskPickedUp{}, OrderPlaced{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "handle task.picked_up")
	assert.Equal(t, 2, ran)
}

func TestBus_NoHandlers(t *testing.T) {
	bus := newTestBus()
	bus.Seal()

	assert.NoError(t, bus.Publish(context.Background(), JobDeadLettered{}))
	assert.Zero(t, bus.Handlers(NameJobDeadLettered))
}

func TestBus_SealedRegisterPanics(t *testing.T) {
	bus := newTestBus()
	bus.Seal()

	assert.Panics(t, func() {
		On(bus, func(context.Context, OrderPaid) error { return nil })
	})
}
