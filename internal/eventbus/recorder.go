package eventbus

import "sync"

// Recorder is a synchronous EventBus that keeps every published event.
// Handlers run on the publishing goroutine.
type Recorder struct {
	mu       sync.Mutex
	events   []DomainEvent
	handlers map[EventType][]EventHandler
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{handlers: make(map[EventType][]EventHandler)}
}

func (r *Recorder) Publish(event DomainEvent) {
	r.mu.Lock()
	r.events = append(r.events, event)
	handlers := append([]EventHandler(nil), r.handlers[event.Type()]...)
	r.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}

func (r *Recorder) Subscribe(eventType EventType, handler EventHandler) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[eventType] = append(r.handlers[eventType], handler)
	idx := len(r.handlers[eventType]) - 1
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.handlers[eventType][idx] = func(DomainEvent) {}
	}
}

// Events returns a copy of the recorded events
func (r *Recorder) Events() []DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]DomainEvent(nil), r.events...)
}

// OfType returns the recorded events of one type, in publish order
func (r *Recorder) OfType(eventType EventType) []DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []DomainEvent
	for _, e := range r.events {
		if e.Type() == eventType {
			out = append(out, e)
		}
	}
	return out
}
