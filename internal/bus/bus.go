// Package bus implements the in-process fan-out protocol that keeps
// independently mounted views consistent after a mutation. Signals carry no
// deltas: every handler is expected to fully reload its slice of state, which
// makes delivery order-independent and redundant notifications harmless.
package bus

import "sync"

// Signal is the closed set of broadcast notifications. Each concrete type
// carries its own payload; there are no stringly-typed event names.
type Signal interface {
	signal()
}

// TasksChanged reports that the task list for a project changed. Board and
// list views should re-read their project's tasks.
type TasksChanged struct {
	ProjectID string
}

// DueDateChanged reports that a task's due date specifically changed. Views
// that bucket tasks by date must recompute their buckets.
type DueDateChanged struct {
	ProjectID string
}

// DailyRefresh is an explicit request for the daily view to recompute,
// independent of what triggered it.
type DailyRefresh struct{}

// BoardInvalidated is emitted by the undo log after a successful inverse, so
// views scoped to one project can filter on ProjectID and react only to
// their own invalidation.
type BoardInvalidated struct {
	ProjectID string
	Change    string
}

// StoreChanged reports an externally observed write to a stored key, for
// example by another process sharing the data directory. Handlers treat it
// like TasksChanged for the affected key.
type StoreChanged struct {
	Key string
}

func (TasksChanged) signal()     {}
func (DueDateChanged) signal()   {}
func (DailyRefresh) signal()     {}
func (BoardInvalidated) signal() {}
func (StoreChanged) signal()     {}

// Bus fans signals out to all live subscriptions. Publish is synchronous:
// every handler has run by the time Publish returns.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Signal)
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[int]func(Signal))}
}

// Subscribe registers a handler for every published signal and returns its
// cancel handle. The owner must call Cancel when it unmounts.
func (b *Bus) Subscribe(fn func(Signal)) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs[id] = fn
	return &Subscription{bus: b, id: id}
}

// Publish delivers the signal to every live subscription.
func (b *Bus) Publish(sig Signal) {
	b.mu.Lock()
	handlers := make([]func(Signal), 0, len(b.subs))
	for _, fn := range b.subs {
		handlers = append(handlers, fn)
	}
	b.mu.Unlock()

	for _, fn := range handlers {
		fn(sig)
	}
}

// Subscription is the cancel handle returned by Subscribe.
type Subscription struct {
	bus *Bus
	id  int
}

// Cancel removes the subscription. Canceling twice is safe.
func (s *Subscription) Cancel() {
	if s == nil || s.bus == nil {
		return
	}
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	delete(s.bus.subs, s.id)
}
