package event

import (
	"context"
	"log/slog"
	"sync"

	"nexus/internal/errors"
)

// Handler consumes one event.
type Handler func(ctx context.Context, evt Event) error

// Bus is a synchronous in-process dispatcher. Handlers are registered during start-up and
// the bus is sealed afterwards; registering on a sealed bus panics.
type Bus struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	sealed   bool
	handlers map[string][]Handler
}

// NewBus creates an empty bus.
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		logger:   logger,
		handlers: make(map[string][]Handler),
	}
}

// Register appends a handler for the event name.
func (b *Bus) Register(name string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sealed {
		panic("event: register on sealed bus: " + name)
	}
	b.handlers[name] = append(b.handlers[name], handler)
}

// Seal freezes the handler table.
func (b *Bus) Seal() {
	b.mu.Lock()
	b.sealed = true
	b.mu.Unlock()
}

// Handlers returns the number of handlers registered for name.
func (b *Bus) Handlers(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.handlers[name])
}

// Publish runs every handler of every event in order. A failing handler does not stop the others;
// all failures are joined into the returned error.
func (b *Bus) Publish(ctx context.Context, events ...Event) error {
	var errs []error
	for _, evt := range events {
		b.mu.RLock()
		handlers := b.handlers[evt.EventName()]
		b.mu.RUnlock()

		for _, handler := range handlers {
			if err := handler(ctx, evt); err != nil {
				b.logger.Error("Event handler failed",
					slog.String("event", evt.EventName()),
					slog.Any("error", err),
				)
				errs = append(errs, errors.Wrapf(err, "handle %s", evt.EventName()))
			}
		}
	}

	return errors.Join(errs...)
}

// On registers a handler typed to a single event type.
func On[E Event](b *Bus, handle func(ctx context.Context, evt E) error) {
	var zero E
	b.Register(zero.EventName(), func(ctx context.Context, evt Event) error {
		typed, ok := evt.(E)
		if !ok {
			return errors.Errorf("unexpected event type %T for %s", evt, zero.EventName())
		}

		return handle(ctx, typed)
	})
}
