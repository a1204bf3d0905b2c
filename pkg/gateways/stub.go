package gateways

import (
	"context"
	"sync"
	"time"

	"github.com/daybreakhq/daybreak/pkg/domain"
)

// StubCalendarGateway returns scripted deltas in order, one per call.
// After the script is exhausted it returns empty deltas, which lets tests
// assert sync idempotency.
type StubCalendarGateway struct {
	mu     sync.Mutex
	Script []*CalendarDelta
	Errs   []error
	Calls  []string // sync tokens received, in call order
}

func (g *StubCalendarGateway) LoadCalendarEvents(_ context.Context, _ domain.CalendarAccount, _ time.Duration, _ domain.AuthToken, syncToken string) (*CalendarDelta, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := len(g.Calls)
	g.Calls = append(g.Calls, syncToken)
	if i < len(g.Errs) && g.Errs[i] != nil {
		return nil, g.Errs[i]
	}
	if i < len(g.Script) {
		return g.Script[i], nil
	}
	return &CalendarDelta{NextSyncToken: syncToken}, nil
}

// StubSMSGateway records sends; Err, when set, fails every call.
type StubSMSGateway struct {
	mu   sync.Mutex
	Err  error
	Sent []SentSMS
}

// SentSMS is one recorded outbound text.
type SentSMS struct {
	To   string
	Body string
}

func (g *StubSMSGateway) SendMessage(_ context.Context, toNumber, body string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Err != nil {
		return g.Err
	}
	g.Sent = append(g.Sent, SentSMS{To: toNumber, Body: body})
	return nil
}

// Messages returns a snapshot of the recorded sends.
func (g *StubSMSGateway) Messages() []SentSMS {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]SentSMS, len(g.Sent))
	copy(out, g.Sent)
	return out
}

// StubPushGateway records deliveries; Err, when set, fails every call.
type StubPushGateway struct {
	mu        sync.Mutex
	Err       error
	Delivered []SentPush
}

// SentPush is one recorded web-push delivery.
type SentPush struct {
	Endpoint string
	Payload  []byte
}

func (g *StubPushGateway) Send(_ context.Context, sub *domain.PushSubscription, payload []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Err != nil {
		return g.Err
	}
	g.Delivered = append(g.Delivered, SentPush{Endpoint: sub.Endpoint, Payload: payload})
	return nil
}

// Pushes returns a snapshot of the recorded deliveries.
func (g *StubPushGateway) Pushes() []SentPush {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]SentPush, len(g.Delivered))
	copy(out, g.Delivered)
	return out
}

// StubTokenRefresher returns a fixed token or error.
type StubTokenRefresher struct {
	Token domain.AuthToken
	Err   error
	Calls int
}

func (r *StubTokenRefresher) Refresh(_ context.Context, _ domain.AuthToken) (domain.AuthToken, error) {
	r.Calls++
	if r.Err != nil {
		return domain.AuthToken{}, r.Err
	}
	return r.Token, nil
}
