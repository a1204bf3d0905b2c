package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// listenTimeout bounds how long a LISTEN command may block when the first
// subscriber joins a PG channel. Without this, a stalled connection would
// block the subscribing goroutine indefinitely.
const listenTimeout = 10 * time.Second

// DeliverFunc receives a broadcast payload for one subscriber. It is
// invoked from the NOTIFY receive loop, so implementations must bound
// their own write time (the WebSocket layer uses a per-write timeout).
type DeliverFunc func(channel string, payload []byte)

// Hub fans NOTIFY payloads out to in-process subscribers. Each Go
// process (pod) has one Hub instance. The transport layer owns the
// client connections; the Hub only routes channel → subscriber.
type Hub struct {
	// subscribers: subscriber id → *Subscriber
	subscribers map[string]*Subscriber
	mu          sync.RWMutex

	// channel subscriptions: channel → set of subscriber ids
	channels  map[string]map[string]bool
	channelMu sync.RWMutex

	// listener for dynamic LISTEN/UNLISTEN (set after construction)
	listener   *NotifyListener
	listenerMu sync.RWMutex
}

// Subscriber is one registered consumer, typically a WebSocket connection.
//
// channels is accessed without a lock: all mutations happen on the single
// goroutine that owns the subscriber (the connection handler and its
// deferred cleanup).
type Subscriber struct {
	ID       string
	deliver  DeliverFunc
	channels map[string]bool
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]*Subscriber),
		channels:    make(map[string]map[string]bool),
	}
}

// SetListener wires the NotifyListener for dynamic LISTEN/UNLISTEN.
// Called once during startup after both Hub and NotifyListener exist.
func (h *Hub) SetListener(l *NotifyListener) {
	h.listenerMu.Lock()
	defer h.listenerMu.Unlock()
	h.listener = l
}

// Attach registers a new subscriber with its delivery callback.
// The caller must Detach it when the underlying connection closes.
func (h *Hub) Attach(deliver DeliverFunc) *Subscriber {
	s := &Subscriber{
		ID:       uuid.New().String(),
		deliver:  deliver,
		channels: make(map[string]bool),
	}
	h.mu.Lock()
	h.subscribers[s.ID] = s
	h.mu.Unlock()
	return s
}

// Detach removes a subscriber and all its channel subscriptions.
func (h *Hub) Detach(s *Subscriber) {
	for ch := range s.channels {
		h.Unsubscribe(s, ch)
	}
	h.mu.Lock()
	delete(h.subscribers, s.ID)
	h.mu.Unlock()
}

// Subscribe registers a subscriber for a channel, issuing LISTEN when it
// is the channel's first subscriber. LISTEN completes before Subscribe
// returns, so a caller that snapshots state right after subscribing
// cannot miss events published in between.
func (h *Hub) Subscribe(s *Subscriber, channel string) error {
	h.channelMu.Lock()
	needsListen := false
	if _, exists := h.channels[channel]; !exists {
		h.channels[channel] = make(map[string]bool)
		needsListen = true
	}
	h.channels[channel][s.ID] = true
	h.channelMu.Unlock()

	if needsListen {
		h.listenerMu.RLock()
		l := h.listener
		h.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
			defer cancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
				h.channelMu.Lock()
				delete(h.channels[channel], s.ID)
				if len(h.channels[channel]) == 0 {
					delete(h.channels, channel)
				}
				h.channelMu.Unlock()
				return fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	s.channels[channel] = true
	return nil
}

// Unsubscribe removes a subscriber from a channel, issuing UNLISTEN when
// the last subscriber leaves. The UNLISTEN goroutine re-checks h.channels
// first so a rapid unsubscribe/resubscribe cycle does not drop the LISTEN.
func (h *Hub) Unsubscribe(s *Subscriber, channel string) {
	h.channelMu.Lock()
	if subs, exists := h.channels[channel]; exists {
		delete(subs, s.ID)
		if len(subs) == 0 {
			delete(h.channels, channel)
			h.listenerMu.RLock()
			l := h.listener
			h.listenerMu.RUnlock()
			if l != nil {
				go func() {
					h.channelMu.RLock()
					_, resubscribed := h.channels[channel]
					h.channelMu.RUnlock()
					if resubscribed {
						return
					}
					if err := l.Unsubscribe(context.Background(), channel); err != nil {
						slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
					}
				}()
			}
		}
	}
	h.channelMu.Unlock()

	delete(s.channels, channel)
}

// Broadcast delivers a payload to every subscriber of the channel.
func (h *Hub) Broadcast(channel string, payload []byte) {
	h.channelMu.RLock()
	ids := make([]string, 0, len(h.channels[channel]))
	for id := range h.channels[channel] {
		ids = append(ids, id)
	}
	h.channelMu.RUnlock()

	if len(ids) == 0 {
		return
	}

	// Snapshot subscriber pointers under the lock, then deliver without
	// holding it so slow consumers cannot stall Attach/Detach.
	h.mu.RLock()
	subs := make([]*Subscriber, 0, len(ids))
	for _, id := range ids {
		if s, ok := h.subscribers[id]; ok {
			subs = append(subs, s)
		}
	}
	h.mu.RUnlock()

	for _, s := range subs {
		s.deliver(channel, payload)
	}
}

// ActiveSubscribers returns the count of attached subscribers.
func (h *Hub) ActiveSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// subscriberCount returns the number of subscribers for a channel.
// Unexported, used by tests to poll instead of sleeping.
func (h *Hub) subscriberCount(channel string) int {
	h.channelMu.RLock()
	defer h.channelMu.RUnlock()
	return len(h.channels[channel])
}
