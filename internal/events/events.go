package events

import (
	"encoding/json"
	"sync"
	"time"
)

const (
	EventSearchPerformed  = "search_performed"
	EventBookingCreated   = "booking_created"
	EventBookingCancelled = "booking_cancelled"
	EventUserLoggedIn     = "user_logged_in"
	EventUserLoggedOut    = "user_logged_out"
)

// BookingEventPayload describes the minimal booking snapshot for event consumers.
type BookingEventPayload struct {
	BookingID    string `json:"booking_id"`
	FlightNumber string `json:"flight_number"`
	Airline      string `json:"airline"`
	From         string `json:"from"`
	To           string `json:"to"`
	Class        string `json:"class"`
	Passengers   int    `json:"passengers"`
	Price        int    `json:"price"`
	Status       string `json:"status"`
}

type SearchEventPayload struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Date   string `json:"date"`
	Class  string `json:"class"`
	Offers int    `json:"offers"`
}

type UserEventPayload struct {
	Email string `json:"email,omitempty"`
	Guest bool   `json:"guest,omitempty"`
}

// Event represents a lightweight domain event.
type Event struct {
	Type      string
	Payload   []byte
	CreatedAt time.Time
}

// EventHandler reacts to an event.
type EventHandler func(event *Event) error

// EventBus provides in-process pub/sub for events.
type EventBus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
}

// NewEventBus constructs an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{subscribers: make(map[string][]EventHandler)}
}

// Subscribe registers a handler for a given event type.
func (b *EventBus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// SubscribeAll registers one handler for several event types.
func (b *EventBus) SubscribeAll(handler EventHandler, eventTypes ...string) {
	for _, t := range eventTypes {
		b.Subscribe(t, handler)
	}
}

// Publish notifies subscribers of the event type.
func (b *EventBus) Publish(event *Event) {
	b.mu.RLock()
	handlers := append([]EventHandler(nil), b.subscribers[event.Type]...)
	b.mu.RUnlock()

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	for _, handler := range handlers {
		// Handlers run synchronously; caller decides concurrency model.
		_ = handler(event)
	}
}

// PublishJSON serializes the payload and publishes an event.
func (b *EventBus) PublishJSON(eventType string, payload interface{}) error {
	if b == nil {
		return nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	b.Publish(&Event{Type: eventType, Payload: raw, CreatedAt: time.Now()})
	return nil
}
