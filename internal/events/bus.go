// Package events implements the in-process notification channel between the
// state-owning services and the views that render derived statistics. It
// replaces the original's DOM-level custom events with an explicit observer
// list; cross-process visibility stays best-effort via the views' poll.
package events

import (
	"log/slog"
	"sync"

	"petrack/internal/storage"
)

type Type string

const (
	// InventoryUpdated carries the full inventory snapshot after a change.
	InventoryUpdated Type = "inventory.updated"
	// HistoryUpdated carries the affected date and the full history map.
	HistoryUpdated Type = "history.updated"
	// StateChanged is the generic notification naming the changed storage key.
	StateChanged Type = "state.changed"
)

// Event is the payload delivered to subscribers. Only the fields relevant to
// the event type are populated.
type Event struct {
	Type      Type
	Key       string
	Date      string
	Inventory []storage.Item
	History   map[string]int
}

// Handler processes one event. Returned errors are logged, never propagated
// to the publisher.
type Handler func(Event) error

// Bus delivers events synchronously, at-most-once per subscriber. Publishing
// never blocks on or fails because of a subscriber.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[Type]map[int]Handler
	all    map[int]Handler
	logger *slog.Logger
}

func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subs:   make(map[Type]map[int]Handler),
		all:    make(map[int]Handler),
		logger: logger,
	}
}

// Subscribe registers a handler for one event type and returns its
// unsubscribe func. Views call the unsubscribe on teardown.
func (b *Bus) Subscribe(t Type, h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	if b.subs[t] == nil {
		b.subs[t] = make(map[int]Handler)
	}
	b.subs[t][id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[t], id)
	}
}

// SubscribeAll registers a handler for every event type.
func (b *Bus) SubscribeAll(h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.all[id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.all, id)
	}
}

// Publish delivers e to all matching subscribers.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[e.Type])+len(b.all))
	for _, h := range b.subs[e.Type] {
		handlers = append(handlers, h)
	}
	for _, h := range b.all {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		if err := b.safeHandle(h, e); err != nil {
			b.logger.Error("event handler failed", "event_type", e.Type, "error", err)
		}
	}
}

func (b *Bus) safeHandle(h Handler, e Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked", "event_type", e.Type, "panic", r)
		}
	}()
	return h(e)
}
