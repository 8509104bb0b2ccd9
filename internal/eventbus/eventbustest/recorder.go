// Package eventbustest provides a synchronous event bus for tests.
package eventbustest

import (
	"sync"

	"dispatchdash/internal/eventbus"
)

// Recorder is an EventBus that keeps every published event and calls
// subscribers inline on the publishing goroutine.
type Recorder struct {
	mu       sync.Mutex
	events   []eventbus.DomainEvent
	handlers map[eventbus.EventType][]eventbus.EventHandler
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{handlers: make(map[eventbus.EventType][]eventbus.EventHandler)}
}

func (r *Recorder) Publish(event eventbus.DomainEvent) {
	r.mu.Lock()
	r.events = append(r.events, event)
	handlers := append([]eventbus.EventHandler(nil), r.handlers[event.Type()]...)
	r.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}

func (r *Recorder) Subscribe(eventType eventbus.EventType, handler eventbus.EventHandler) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[eventType] = append(r.handlers[eventType], handler)
	idx := len(r.handlers[eventType]) - 1
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if idx < len(r.handlers[eventType]) {
			r.handlers[eventType][idx] = func(eventbus.DomainEvent) {}
		}
	}
}

// Events returns a copy of everything published so far
func (r *Recorder) Events() []eventbus.DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]eventbus.DomainEvent(nil), r.events...)
}

// OfType returns the published events of one type
func (r *Recorder) OfType(eventType eventbus.EventType) []eventbus.DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []eventbus.DomainEvent
	for _, e := range r.events {
		if e.Type() == eventType {
			out = append(out, e)
		}
	}
	return out
}

// Reset forgets the recorded events
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
