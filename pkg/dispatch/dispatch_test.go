package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/pkg/domain"
)

type recordingHandler struct {
	name string
	log  *[]string
	fail bool
	boom bool
}

func (h *recordingHandler) Name() string { return h.name }

func (h *recordingHandler) Handle(ctx context.Context, evt domain.Event) error {
	*h.log = append(*h.log, h.name)
	if h.boom {
		panic("handler exploded")
	}
	if h.fail {
		return errors.New("handler failed")
	}
	return nil
}

func factoryFor(h *recordingHandler) Factory {
	return func() Handler { return h }
}

func TestDispatch_RunsHandlersInRegistrationOrder(t *testing.T) {
	userID := uuid.New()
	evt := domain.NewDayEventFor(userID, "2026-08-24")

	var log []string
	registry := NewRegistry()
	registry.Register(evt.Name(), factoryFor(&recordingHandler{name: "first", log: &log}))
	registry.Register(evt.Name(), factoryFor(&recordingHandler{name: "second", log: &log}))

	NewDispatcher(registry).Dispatch(context.Background(), []domain.Event{evt})

	assert.Equal(t, []string{"first", "second"}, log)
}

func TestDispatch_FailureDoesNotStopLaterHandlers(t *testing.T) {
	userID := uuid.New()
	evt := domain.NewDayEventFor(userID, "2026-08-24")

	var log []string
	registry := NewRegistry()
	registry.Register(evt.Name(), factoryFor(&recordingHandler{name: "failing", log: &log, fail: true}))
	registry.Register(evt.Name(), factoryFor(&recordingHandler{name: "panicking", log: &log, boom: true}))
	registry.Register(evt.Name(), factoryFor(&recordingHandler{name: "survivor", log: &log}))

	require.NotPanics(t, func() {
		NewDispatcher(registry).Dispatch(context.Background(), []domain.Event{evt})
	})

	assert.Equal(t, []string{"failing", "panicking", "survivor"}, log)
}

func TestDispatch_UnregisteredEventIsIgnored(t *testing.T) {
	registry := NewRegistry()
	d := NewDispatcher(registry)

	evt := domain.NewDayEventFor(uuid.New(), "2026-08-24")
	require.NotPanics(t, func() {
		d.Dispatch(context.Background(), []domain.Event{evt})
	})
}
