// Package dispatch routes domain events to their registered handlers
// after a unit of work commits.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/daybreakhq/daybreak/pkg/domain"
)

// Handler processes one domain event. Handlers are constructed fresh for
// every event via their Factory, so they must not assume any state
// survives between invocations.
type Handler interface {
	// Name identifies the handler in logs.
	Name() string
	// Handle processes the event. A returned error is logged, never
	// propagated: by the time handlers run the originating transaction
	// has already committed.
	Handle(ctx context.Context, evt domain.Event) error
}

// Factory builds a Handler instance for a single dispatch.
type Factory func() Handler

// Registry maps event names to ordered handler factories. Registration
// order is execution order. The registry is populated once at startup
// and read-only afterwards; it is not safe for concurrent mutation.
type Registry struct {
	factories map[string][]Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string][]Factory)}
}

// Register appends a handler factory for the given event name.
func (r *Registry) Register(eventName string, f Factory) {
	r.factories[eventName] = append(r.factories[eventName], f)
}

// Dispatcher runs handlers for committed domain events.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a Dispatcher over the given registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Dispatch runs every registered handler for each event, in registration
// order, sequentially, waiting for each to finish. Handler errors and
// panics are logged and swallowed so one misbehaving handler cannot
// prevent the rest from running.
func (d *Dispatcher) Dispatch(ctx context.Context, evts []domain.Event) {
	for _, evt := range evts {
		for _, factory := range d.registry.factories[evt.Name()] {
			d.run(ctx, factory, evt)
		}
	}
}

func (d *Dispatcher) run(ctx context.Context, factory Factory, evt domain.Event) {
	h := factory()
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Event handler panicked",
				"handler", h.Name(),
				"event", evt.Name(),
				"user_id", evt.Owner(),
				"panic", fmt.Sprintf("%v", r))
		}
	}()

	if err := h.Handle(ctx, evt); err != nil {
		slog.Error("Event handler failed",
			"handler", h.Name(),
			"event", evt.Name(),
			"user_id", evt.Owner(),
			"duration", time.Since(start),
			"error", err)
		return
	}

	slog.Debug("Event handler completed",
		"handler", h.Name(),
		"event", evt.Name(),
		"user_id", evt.Owner(),
		"duration", time.Since(start))
}
