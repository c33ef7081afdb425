package event

import (
	"sort"
	"sync"
	"time"
)

// Event names mirror the entity lifecycle the services go through. The
// payload is the affected entity itself.
const (
	RequestCreated = "request:created"
	RequestUpdated = "request:updated"
	RequestDeleted = "request:deleted"

	OfferCreated  = "offer:created"
	OfferUpdated  = "offer:updated"
	OfferAccepted = "offer:accepted"
	OfferDeclined = "offer:declined"

	SessionCreated   = "session:created"
	SessionStarted   = "session:started"
	SessionEnded     = "session:ended"
	SessionCancelled = "session:cancelled"

	UserUpdated = "user:updated"
)

type Event struct {
	Name      string      `json:"name"`
	Entity    interface{} `json:"entity"`
	CreatedAt time.Time   `json:"created_at"`
}

type Handler func(Event)

// Bus is a synchronous in-process publisher. Delivery happens on the
// publishing goroutine in subscription order; there is no queueing, so a
// slow handler blocks the publisher.
type Bus struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]Handler
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[int]Handler),
	}
}

// Subscribe registers a handler and returns its unsubscribe function.
// Unsubscribing twice is harmless.
func (b *Bus) Subscribe(h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers, id)
	}
}

// Publish delivers an event to every current subscriber. The handler set
// is snapshotted under lock so handlers may unsubscribe themselves.
func (b *Bus) Publish(name string, entity interface{}) {
	b.mu.Lock()
	ids := make([]int, 0, len(b.handlers))
	for id := range b.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	handlers := make([]Handler, 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, b.handlers[id])
	}
	b.mu.Unlock()

	e := Event{
		Name:      name,
		Entity:    entity,
		CreatedAt: time.Now().UTC(),
	}

	for _, h := range handlers {
		h(e)
	}
}
