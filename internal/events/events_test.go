package events

import (
	"encoding/json"
	"testing"
)

func TestEventBus(t *testing.T) {
	bus := NewEventBus()

	var received *Event
	var callCount int

	handler := func(event *Event) error {
		received = event
		callCount++
		return nil
	}

	bus.Subscribe(EventBookingCreated, handler)

	payload := BookingEventPayload{BookingID: "b1", Class: "first", Price: 70000}
	if err := bus.PublishJSON(EventBookingCreated, payload); err != nil {
		t.Fatalf("PublishJSON failed: %v", err)
	}

	if callCount != 1 {
		t.Errorf("expected 1 call, got %d", callCount)
	}

	if received.Type != EventBookingCreated {
		t.Errorf("expected type %s, got %s", EventBookingCreated, received.Type)
	}
	if received.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	var decoded BookingEventPayload
	if err := json.Unmarshal(received.Payload, &decoded); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}

	if decoded.BookingID != "b1" || decoded.Price != 70000 {
		t.Errorf("unexpected payload: %+v", decoded)
	}
}

func TestEventBusSubscribeAll(t *testing.T) {
	bus := NewEventBus()
	seen := map[string]int{}

	bus.SubscribeAll(func(e *Event) error { seen[e.Type]++; return nil }, EventUserLoggedIn, EventUserLoggedOut)

	bus.Publish(&Event{Type: EventUserLoggedIn})
	bus.Publish(&Event{Type: EventUserLoggedOut})
	bus.Publish(&Event{Type: EventSearchPerformed})

	if seen[EventUserLoggedIn] != 1 || seen[EventUserLoggedOut] != 1 {
		t.Errorf("unexpected deliveries: %v", seen)
	}
	if seen[EventSearchPerformed] != 0 {
		t.Errorf("unsubscribed type delivered: %v", seen)
	}
}

func TestEventBusNoSubscribers(t *testing.T) {
	bus := NewEventBus()
	// Should not panic
	bus.Publish(&Event{Type: "unknown"})
	if err := bus.PublishJSON("unknown", nil); err != nil {
		t.Errorf("PublishJSON failed: %v", err)
	}
}

func TestNilEventBus(t *testing.T) {
	var bus *EventBus
	if err := bus.PublishJSON(EventBookingCreated, BookingEventPayload{}); err != nil {
		t.Errorf("nil bus should be a no-op, got %v", err)
	}
}

func TestPublishJSONMarshalError(t *testing.T) {
	bus := NewEventBus()
	if err := bus.PublishJSON("bad", make(chan int)); err == nil {
		t.Error("expected marshal error")
	}
}
